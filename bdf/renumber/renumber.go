// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package renumber implements the renumber engine (C8): given per-file,
// per-family requested id ranges, it computes an injective old-id ->
// new-id remap and applies it to every card's id slot and reference slot
// (§4.8), plus every integer-id reference in case control.
package renumber

import (
	"sort"

	"github.com/cpmech/bdf/bdf/card"
	"github.com/cpmech/bdf/bdf/include"
	"github.com/cpmech/bdf/bdf/model"
	"github.com/cpmech/gosl/chk"
)

// RangeSpec requests that every id C4 attributes to (FilePath, Family) be
// renumbered into [Start, End], ascending-sort then consecutive-assign
// (§4.8 "Mapping policy").
type RangeSpec struct {
	FilePath string
	Family   card.Family
	Start    int
	End      int
}

// Request bundles one renumber invocation.
type Request struct {
	Store  *model.Store
	Tree   *include.Tree
	Ranges []RangeSpec

	// RemapSets toggles whether set-family ids (spc-id, mpc-id, load-id)
	// participate; when off they are pass-through (§4.8).
	RemapSets bool

	// DryRun computes and validates the plan without mutating Store.
	DryRun bool
}

// BucketPlan reports one (file, family) bucket's assignment.
type BucketPlan struct {
	FilePath string
	Family   card.Family
	OldIDs   []int
	Start    int
	End      int
}

// Plan is the computed remap, ready to apply or merely inspect.
type Plan struct {
	// Remap maps old id -> new id, per family, merged across every bucket.
	Remap map[card.Family]map[int]int
	Buckets []BucketPlan
}

// Validate checks every range for §4.8's pre-apply rules: start >= 1, end
// >= start, capacity >= bucket population, and disjoint ranges for the
// same family across different files. It returns every violation found,
// not just the first, so a caller can report them all at once.
func Validate(req Request) []error {
	var errs []error

	for _, rs := range req.Ranges {
		if rs.Start < 1 {
			errs = append(errs, chk.Err("renumber: %s/%s: start %d must be >= 1", rs.FilePath, rs.Family, rs.Start))
			continue
		}
		if rs.End < rs.Start {
			errs = append(errs, chk.Err("renumber: %s/%s: end %d < start %d", rs.FilePath, rs.Family, rs.End, rs.Start))
			continue
		}
		n := len(bucketOldIDs(req, rs.FilePath, rs.Family))
		capacity := rs.End - rs.Start + 1
		if capacity < n {
			errs = append(errs, chk.Err("renumber: %s/%s: range capacity %d < %d ids owned by this file", rs.FilePath, rs.Family, capacity, n))
		}
	}

	byFamily := make(map[card.Family][]RangeSpec)
	for _, rs := range req.Ranges {
		byFamily[rs.Family] = append(byFamily[rs.Family], rs)
	}
	for fam, specs := range byFamily {
		sort.Slice(specs, func(i, j int) bool { return specs[i].Start < specs[j].Start })
		for i := 1; i < len(specs); i++ {
			if specs[i].Start <= specs[i-1].End {
				errs = append(errs, chk.Err("renumber: family %s: ranges [%d,%d] (%s) and [%d,%d] (%s) overlap",
					fam, specs[i-1].Start, specs[i-1].End, specs[i-1].FilePath,
					specs[i].Start, specs[i].End, specs[i].FilePath))
			}
		}
	}

	return errs
}

// setFamily reports whether fam is one of the set families §4.8 gates
// behind the RemapSets toggle.
func setFamily(fam card.Family) bool {
	return fam == card.FamSPCSet || fam == card.FamMPCSet || fam == card.FamLoadSet
}

// bucketOldIDs returns the sorted ids req.Store attributes to fileIndex
// (resolved from filePath via req.Tree) for family fam, restricted to ids
// that actually exist in that family's bucket.
func bucketOldIDs(req Request, filePath string, fam card.Family) []int {
	idx := fileIndex(req.Tree, filePath)
	if idx < 0 {
		return nil
	}
	var all []int
	switch fam {
	case card.FamNode:
		all = model.SortedNodeIDs(req.Store)
	case card.FamElement:
		all = model.SortedElementIDs(req.Store)
	case card.FamRigid:
		all = model.SortedRigidIDs(req.Store)
	case card.FamMass:
		all = model.SortedMassIDs(req.Store)
	case card.FamProperty:
		all = model.SortedPropertyIDs(req.Store)
	case card.FamMaterial:
		all = model.SortedMaterialIDs(req.Store)
	case card.FamCoord:
		all = model.SortedCoordIDs(req.Store)
	case card.FamSPCSet:
		all = model.SortedSPCSetIDs(req.Store)
	case card.FamMPCSet:
		all = model.SortedMPCSetIDs(req.Store)
	case card.FamLoadSet:
		all = model.SortedLoadSetIDs(req.Store)
	case card.FamSet:
		all = model.SortedSetIDs(req.Store)
	case card.FamMethod:
		all = model.SortedMethodIDs(req.Store)
	case card.FamTable:
		all = model.SortedTableIDs(req.Store)
	case card.FamContact:
		all = append(sortedContactSurfaceIDs(req.Store), sortedContactPairIDs(req.Store)...)
		sort.Ints(all)
	}

	var owned []int
	for _, id := range all {
		if fi, ok := req.Store.SourceOf(fam, id); ok && fi == idx {
			owned = append(owned, id)
		}
	}
	return owned
}

func sortedContactSurfaceIDs(s *model.Store) []int {
	ids := make([]int, 0, len(s.ContactSurfaces))
	for id := range s.ContactSurfaces {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func sortedContactPairIDs(s *model.Store) []int {
	ids := make([]int, 0, len(s.ContactPairs))
	for id := range s.ContactPairs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func fileIndex(tree *include.Tree, path string) int {
	if tree == nil {
		return -1
	}
	for i, cat := range tree.Files {
		if cat.Path == path {
			return i
		}
	}
	return -1
}

// BuildPlan computes the remap without touching req.Store. Callers that
// only want a dry-run report call this directly; Apply calls it as its
// first phase.
func BuildPlan(req Request) (*Plan, []error) {
	if errs := Validate(req); len(errs) > 0 {
		return nil, errs
	}

	plan := &Plan{Remap: make(map[card.Family]map[int]int)}

	for _, rs := range req.Ranges {
		if setFamily(rs.Family) && !req.RemapSets {
			continue
		}
		ids := bucketOldIDs(req, rs.FilePath, rs.Family)
		m, ok := plan.Remap[rs.Family]
		if !ok {
			m = make(map[int]int)
			plan.Remap[rs.Family] = m
		}
		for i, old := range ids {
			m[old] = rs.Start + i
		}
		plan.Buckets = append(plan.Buckets, BucketPlan{
			FilePath: rs.FilePath, Family: rs.Family, OldIDs: ids, Start: rs.Start, End: rs.End,
		})
	}

	return plan, nil
}
