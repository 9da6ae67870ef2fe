// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partition

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cpmech/bdf/bdf/card"
	"github.com/cpmech/bdf/bdf/model"
	"github.com/cpmech/bdf/bdf/writer"
	"github.com/cpmech/gosl/io"
)

// EmitRequest bundles one Emit call.
type EmitRequest struct {
	OutDir               string
	ExecutiveCaseControl []string
}

// Validation is §4.10's "validation output": reported, not enforced,
// since rigid/shared/joint cards legitimately account for any gap
// between the model totals and what lands under part files.
type Validation struct {
	TotalElements             int
	TotalNodes                int
	ElementsWrittenUnderParts int
	NodesWrittenUnderParts    int
}

// EmitReport is the outcome of one Emit call.
type EmitReport struct {
	FilesWritten []string
	Validation   Validation
}

// Emit implements §4.10 step 7: one include file per part, one per
// joint, a shared.bdf carrying the model's cross-cutting cards, and a
// master.bdf tying everything together with INCLUDEs.
func Emit(res *Result, req EmitRequest) (*EmitReport, error) {
	rep := &EmitReport{}
	store := res.Store

	var partIDs []int
	for id := range res.Parts {
		partIDs = append(partIDs, id)
	}
	sort.Ints(partIDs)

	jointOwnedProps := map[int]bool{}
	for _, j := range res.Joints {
		for _, pid := range j.PropertyIDs {
			jointOwnedProps[pid] = true
		}
	}
	for _, p := range res.Parts {
		for pid := range p.Properties {
			jointOwnedProps[pid] = true
		}
	}

	partFiles := make(map[int]string)
	for _, pid := range partIDs {
		part := res.Parts[pid]
		fname := part.Name + ".bdf"
		lines := emitPartLines(res, part)
		io.WriteFileSD(req.OutDir, fname, strings.Join(lines, "\n")+"\n")
		rep.FilesWritten = append(rep.FilesWritten, filepath.Join(req.OutDir, fname))
		partFiles[pid] = fname

		rep.Validation.ElementsWrittenUnderParts += len(part.Elements)
		rep.Validation.NodesWrittenUnderParts += len(part.Nodes)
	}

	var jointKeys []JointKey
	for k := range res.Joints {
		jointKeys = append(jointKeys, k)
	}
	sort.Slice(jointKeys, func(i, j int) bool {
		if jointKeys[i].A != jointKeys[j].A {
			return jointKeys[i].A < jointKeys[j].A
		}
		return jointKeys[i].B < jointKeys[j].B
	})

	jointFiles := make(map[JointKey]string)
	for _, k := range jointKeys {
		j := res.Joints[k]
		fname := fmt.Sprintf("Joint_%d_%d.bdf", k.A, k.B)
		lines := emitJointLines(res, j)
		io.WriteFileSD(req.OutDir, fname, strings.Join(lines, "\n")+"\n")
		rep.FilesWritten = append(rep.FilesWritten, filepath.Join(req.OutDir, fname))
		jointFiles[k] = fname
	}

	sharedLines := emitSharedLines(res, jointOwnedProps)
	io.WriteFileSD(req.OutDir, "shared.bdf", strings.Join(sharedLines, "\n")+"\n")
	rep.FilesWritten = append(rep.FilesWritten, filepath.Join(req.OutDir, "shared.bdf"))

	var master strings.Builder
	for _, raw := range req.ExecutiveCaseControl {
		master.WriteString(raw)
		master.WriteString("\n")
	}
	master.WriteString("BEGIN BULK\n")
	master.WriteString("INCLUDE 'shared.bdf'\n")
	for _, pid := range partIDs {
		fmt.Fprintf(&master, "INCLUDE '%s'\n", partFiles[pid])
	}
	for _, k := range jointKeys {
		fmt.Fprintf(&master, "INCLUDE '%s'\n", jointFiles[k])
	}
	for _, name := range sortedParamNames(store) {
		writeCard(&master, store.Params[name])
	}
	for _, id := range model.SortedMethodIDs(store) {
		writeCard(&master, store.Methods[id])
	}
	master.WriteString("ENDDATA\n")
	io.WriteFileSD(req.OutDir, "master.bdf", master.String())
	rep.FilesWritten = append(rep.FilesWritten, filepath.Join(req.OutDir, "master.bdf"))

	rep.Validation.TotalElements = len(store.Elements)
	rep.Validation.TotalNodes = len(store.Nodes)

	return rep, nil
}

func writeCard(b *strings.Builder, p card.Parsed) {
	lines, err := writer.EmitCard(p)
	if err != nil {
		return
	}
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
}

func emitPartLines(res *Result, part *Part) []string {
	store := res.Store
	var lines []string
	emit := func(p card.Parsed) {
		ls, err := writer.EmitCard(p)
		if err != nil {
			return
		}
		lines = append(lines, ls...)
	}

	var nodeIDs []int
	for n := range part.Nodes {
		nodeIDs = append(nodeIDs, n)
	}
	sort.Ints(nodeIDs)
	for _, n := range nodeIDs {
		if node, ok := store.Nodes[n]; ok {
			emit(node)
		}
	}

	var elemIDs []int
	for e := range part.Elements {
		elemIDs = append(elemIDs, e)
	}
	sort.Ints(elemIDs)
	for _, e := range elemIDs {
		emit(store.Elements[e])
	}

	var rigidIDs []int
	for r := range part.Rigid {
		rigidIDs = append(rigidIDs, r)
	}
	sort.Ints(rigidIDs)
	for _, r := range rigidIDs {
		emit(store.Rigid[r])
	}

	var massIDs []int
	for m := range part.Mass {
		massIDs = append(massIDs, m)
	}
	sort.Ints(massIDs)
	for _, m := range massIDs {
		emit(store.Mass[m])
	}

	var propIDs []int
	for p := range part.Properties {
		propIDs = append(propIDs, p)
	}
	sort.Ints(propIDs)
	for _, p := range propIDs {
		emit(store.Properties[p])
	}

	for _, sid := range model.SortedSPCSetIDs(store) {
		for _, item := range store.SPCSets[sid] {
			if nodes, ok := spcNodeSet(item); ok && nodeSubset(nodes, part.Nodes) {
				emit(item)
			}
		}
	}

	for _, sid := range model.SortedLoadSetIDs(store) {
		for _, item := range store.LoadSets[sid] {
			if l, ok := item.(*card.Load); ok && loadWithin(l, part) {
				emit(item)
			}
		}
	}

	return lines
}

func emitJointLines(res *Result, j *Joint) []string {
	store := res.Store
	var lines []string
	emit := func(p card.Parsed) {
		ls, err := writer.EmitCard(p)
		if err != nil {
			return
		}
		lines = append(lines, ls...)
	}

	ids := append([]int{}, j.CBUSHIDs...)
	sort.Ints(ids)
	for _, id := range ids {
		if e, ok := store.Elements[id]; ok {
			emit(e)
		}
	}

	rids := append([]int{}, j.RBE2IDs...)
	sort.Ints(rids)
	for _, id := range rids {
		if r, ok := store.Rigid[id]; ok {
			emit(r)
		}
	}

	pids := append([]int{}, j.PropertyIDs...)
	sort.Ints(pids)
	for _, id := range pids {
		if p, ok := store.Properties[id]; ok {
			emit(p)
		}
	}

	return lines
}

// emitSharedLines implements step 7's shared.bdf: materials, every
// property not owned by a joint (or migrated onto a part by a merge),
// non-zero coordinate systems, SPCs not fully contained by any part,
// loads not placed in exactly one part, and whatever glue-contact
// surfaces/pairs the joint overlay could not resolve onto a bounded
// pair of parts ("global contact parameters").
func emitSharedLines(res *Result, jointOwnedProps map[int]bool) []string {
	store := res.Store
	var lines []string
	emit := func(p card.Parsed) {
		ls, err := writer.EmitCard(p)
		if err != nil {
			return
		}
		lines = append(lines, ls...)
	}

	for _, id := range model.SortedMaterialIDs(store) {
		emit(store.Materials[id])
	}
	for _, id := range model.SortedPropertyIDs(store) {
		if jointOwnedProps[id] {
			continue
		}
		emit(store.Properties[id])
	}
	for _, id := range model.SortedCoordIDs(store) {
		if id == 0 {
			continue
		}
		emit(store.Coords[id])
	}

	for _, sid := range model.SortedSPCSetIDs(store) {
		if spcFullyContained(res, store.SPCSets[sid]) {
			continue
		}
		for _, item := range store.SPCSets[sid] {
			emit(item)
		}
	}

	for _, sid := range model.SortedLoadSetIDs(store) {
		for _, item := range store.LoadSets[sid] {
			l, ok := item.(*card.Load)
			if !ok {
				emit(item)
				continue
			}
			if !loadPlacedInAnyPart(res, l) {
				emit(item)
			}
		}
	}

	var surfIDs []int
	for id := range store.ContactSurfaces {
		surfIDs = append(surfIDs, id)
	}
	sort.Ints(surfIDs)
	for _, id := range surfIDs {
		emit(store.ContactSurfaces[id])
	}

	consumedPairs := map[int]bool{}
	for _, j := range res.Joints {
		for _, id := range j.ContactPairIDs {
			consumedPairs[id] = true
		}
	}
	var pairIDs []int
	for id := range store.ContactPairs {
		pairIDs = append(pairIDs, id)
	}
	sort.Ints(pairIDs)
	for _, id := range pairIDs {
		if consumedPairs[id] {
			continue
		}
		emit(store.ContactPairs[id])
	}

	return lines
}

func spcNodeSet(item card.Parsed) ([]int, bool) {
	switch v := item.(type) {
	case *card.SPC:
		return []int{v.Node}, true
	case *card.SPC1:
		return v.Nodes, true
	default:
		return nil, false
	}
}

func nodeSubset(nodes []int, set map[int]bool) bool {
	if len(nodes) == 0 {
		return false
	}
	for _, n := range nodes {
		if !set[n] {
			return false
		}
	}
	return true
}

func loadWithin(l *card.Load, part *Part) bool {
	if l.Node != 0 {
		return part.Nodes[l.Node]
	}
	if len(l.EIDs) == 1 {
		return part.Elements[l.EIDs[0]]
	}
	return false
}

func loadPlacedInAnyPart(res *Result, l *card.Load) bool {
	for _, part := range res.Parts {
		if loadWithin(l, part) {
			return true
		}
	}
	return false
}

func spcFullyContained(res *Result, items []card.Parsed) bool {
	any := false
	for _, item := range items {
		nodes, ok := spcNodeSet(item)
		if !ok {
			return false
		}
		any = true
		inSome := false
		for _, part := range res.Parts {
			if nodeSubset(nodes, part.Nodes) {
				inSome = true
				break
			}
		}
		if !inSome {
			return false
		}
	}
	return any
}

func sortedParamNames(s *model.Store) []string {
	names := make([]string, 0, len(s.Params))
	for n := range s.Params {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
