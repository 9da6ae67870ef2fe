// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partition

import "sort"

func jointKey(a, b int) JointKey {
	if a > b {
		a, b = b, a
	}
	return JointKey{A: a, B: b}
}

func getOrCreateJoint(res *Result, key JointKey) *Joint {
	j, ok := res.Joints[key]
	if !ok {
		j = &Joint{Key: key}
		res.Joints[key] = j
	}
	return j
}

// buildJoints implements §4.10 step 5's chain half: each chain's two
// RBE2 dependent sets vote (by node majority) for the part they belong
// to; a chain spanning two distinct parts becomes part of that pair's
// Joint.
func buildJoints(res *Result, chains []Chain) {
	for _, ch := range chains {
		rbA := res.Store.Rigid[ch.RBE2A]
		rbB := res.Store.Rigid[ch.RBE2B]
		partA := majorityPart(rbA.Dep, res.coreNodePart)
		partB := majorityPart(rbB.Dep, res.coreNodePart)
		if partA == 0 || partB == 0 || partA == partB {
			continue
		}
		j := getOrCreateJoint(res, jointKey(partA, partB))
		j.RBE2IDs = appendUniqueInt(j.RBE2IDs, ch.RBE2A, ch.RBE2B)
		j.CBUSHIDs = appendUniqueInt(j.CBUSHIDs, ch.CBUSH)
		if e := res.Store.Elements[ch.CBUSH]; e != nil && e.PID != 0 {
			j.PropertyIDs = appendUniqueInt(j.PropertyIDs, e.PID)
		}
	}
}

// overlayContact implements step 5's glue-contact overlay: every
// ContactSurface's referenced elements vote for a majority-owning
// part, and every ContactPair whose two surfaces resolve to distinct
// parts accumulates into that pair's Joint (creating one if a chain
// did not already establish it).
func overlayContact(res *Result) {
	surfacePart := make(map[int]int)
	for id, cs := range res.Store.ContactSurfaces {
		votes := map[int]int{}
		for _, eid := range cs.ElemIDs {
			if p, ok := res.partOfElement[eid]; ok {
				votes[p]++
			}
		}
		surfacePart[id] = majorityFromVotes(votes)
	}

	var pairIDs []int
	for id := range res.Store.ContactPairs {
		pairIDs = append(pairIDs, id)
	}
	sort.Ints(pairIDs)

	for _, id := range pairIDs {
		cp := res.Store.ContactPairs[id]
		pa, pb := surfacePart[cp.SurfA], surfacePart[cp.SurfB]
		if pa == 0 || pb == 0 || pa == pb {
			continue
		}
		j := getOrCreateJoint(res, jointKey(pa, pb))
		j.ContactPairIDs = appendUniqueInt(j.ContactPairIDs, id)
	}
}

func majorityFromVotes(votes map[int]int) int {
	var ids []int
	for p := range votes {
		ids = append(ids, p)
	}
	sort.Ints(ids)
	best, bestCount := 0, 0
	for _, p := range ids {
		if votes[p] > bestCount {
			best, bestCount = p, votes[p]
		}
	}
	return best
}

func appendUniqueInt(s []int, vs ...int) []int {
	for _, v := range vs {
		found := false
		for _, e := range s {
			if e == v {
				found = true
				break
			}
		}
		if !found {
			s = append(s, v)
		}
	}
	return s
}
