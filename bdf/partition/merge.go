// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partition

import "github.com/cpmech/gosl/chk"

// MergeParts implements §4.10 step 6: fuse ids (len >= 2) into the
// lowest id, in place. A joint whose both sides land in the merged set
// is absorbed — its CBUSH+RBE2 elements and PBUSH properties migrate
// onto the fused part and the joint disappears; a joint with exactly
// one side in the set has that side rekeyed to the merged id, folding
// into any joint already occupying the new key.
func MergeParts(res *Result, ids []int) error {
	if len(ids) < 2 {
		return chk.Err("partition: MergeParts needs at least 2 part ids, got %d", len(ids))
	}
	merged := map[int]bool{}
	target := ids[0]
	for _, id := range ids {
		if _, ok := res.Parts[id]; !ok {
			return chk.Err("partition: part %d does not exist", id)
		}
		merged[id] = true
		if id < target {
			target = id
		}
	}
	targetPart := res.Parts[target]

	for _, id := range ids {
		if id == target {
			continue
		}
		src := res.Parts[id]
		for eid := range src.Elements {
			targetPart.Elements[eid] = true
			res.partOfElement[eid] = target
		}
		for n := range src.Nodes {
			targetPart.Nodes[n] = true
		}
		for rid := range src.Rigid {
			targetPart.Rigid[rid] = true
		}
		for mid := range src.Mass {
			targetPart.Mass[mid] = true
		}
		for pid := range src.Properties {
			targetPart.Properties[pid] = true
		}
		delete(res.Parts, id)
	}

	absorb := func(j *Joint) {
		for _, rid := range j.RBE2IDs {
			targetPart.Rigid[rid] = true
		}
		for _, eid := range j.CBUSHIDs {
			targetPart.Elements[eid] = true
			res.partOfElement[eid] = target
		}
		for _, pid := range j.PropertyIDs {
			targetPart.Properties[pid] = true
		}
	}

	for key, j := range res.Joints {
		aIn, bIn := merged[key.A], merged[key.B]
		if !aIn && !bIn {
			continue
		}
		if aIn && bIn {
			absorb(j)
			delete(res.Joints, key)
			continue
		}

		newA, newB := key.A, key.B
		if aIn {
			newA = target
		}
		if bIn {
			newB = target
		}
		delete(res.Joints, key)

		if newA == newB {
			// both sides collapsed onto the merged part: the joint is
			// now interior structure, same treatment as both-in-set.
			absorb(j)
			continue
		}

		newKey := jointKey(newA, newB)
		if existing, ok := res.Joints[newKey]; ok {
			existing.RBE2IDs = appendUniqueInt(existing.RBE2IDs, j.RBE2IDs...)
			existing.CBUSHIDs = appendUniqueInt(existing.CBUSHIDs, j.CBUSHIDs...)
			existing.PropertyIDs = appendUniqueInt(existing.PropertyIDs, j.PropertyIDs...)
			existing.ContactPairIDs = appendUniqueInt(existing.ContactPairIDs, j.ContactPairIDs...)
		} else {
			j.Key = newKey
			res.Joints[newKey] = j
		}
	}

	return nil
}
