// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package partition implements the partition engine (C10): a flood-fill
// over the structural element/node incidence graph, with two boundary
// kinds (RBE2-CBUSH-RBE2 chains and glue-contact surface pairs), followed
// by joint reconstruction and per-part/per-joint/shared/master file
// emission (§4.10).
package partition

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cpmech/bdf/bdf/card"
	"github.com/cpmech/bdf/bdf/include"
	"github.com/cpmech/bdf/bdf/model"
	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
)

// Part is one flood-filled region, plus the rigid/mass elements step 4
// assigns to it by node-majority vote and any property a merge (C10
// step 6) later folds in from an absorbed joint.
type Part struct {
	ID         int
	Name       string
	Elements   map[int]bool // card.FamElement ids (structural)
	Nodes      map[int]bool
	Rigid      map[int]bool // card.FamRigid ids, excluding the wall set
	Mass       map[int]bool // card.FamMass ids
	Properties map[int]bool // only populated by MergeParts absorption
}

// Chain is one RBE2-A -- CBUSH -- RBE2-B boundary triple (§4.10 step 2).
type Chain struct {
	RBE2A, CBUSH, RBE2B int
	NodeA, NodeB        int
}

// JointKey identifies a joint by the two part ids it bounds, always
// stored with A < B.
type JointKey struct{ A, B int }

// Joint is the boundary hardware between two parts (§4.10 step 5).
type Joint struct {
	Key            JointKey
	CBUSHIDs       []int // card.FamElement ids
	RBE2IDs        []int // card.FamRigid ids
	PropertyIDs    []int // PBUSH property ids the CBUSH elements use
	ContactPairIDs []int
}

// Result is the full partition outcome.
type Result struct {
	Store *model.Store
	Tree  *include.Tree

	Parts  map[int]*Part
	Joints map[JointKey]*Joint

	WallElementIDs map[int]bool // CBUSH ids forming a chain
	WallRigidIDs   map[int]bool // RBE2 ids forming a chain
	WallNodeIDs    map[int]bool // independent nodes of boundary RBE2s

	partOfElement map[int]int // structural element id -> part id
	coreNodePart  map[int]int // node id -> part id, from flood-fill only
}

// Partition runs §4.10 steps 1-5 over store. tree is used only by part
// naming's source-comment lookup; it may be nil, in which case every
// part falls back to its Part_### name.
func Partition(store *model.Store, tree *include.Tree) (*Result, error) {
	wallElems, wallRigid, wallNodes, chains := detectBoundary(store)

	components := floodFill(store, wallElems, wallNodes)

	res := &Result{
		Store:          store,
		Tree:           tree,
		Parts:          make(map[int]*Part),
		Joints:         make(map[JointKey]*Joint),
		WallElementIDs: wallElems,
		WallRigidIDs:   wallRigid,
		WallNodeIDs:    wallNodes,
		partOfElement:  make(map[int]int),
		coreNodePart:   make(map[int]int),
	}

	finalizeParts(res, components)
	assignRigidAndMass(res)
	buildJoints(res, chains)
	overlayContact(res)

	return res, nil
}

// detectBoundary implements step 2: a CBUSH whose two live endpoints
// are each the sole independent node of a (different) RBE2 marks a
// chain; its three element ids are the wall set and the two RBE2
// independent nodes are the wall nodes.
func detectBoundary(store *model.Store) (wallElems, wallRigid, wallNodes map[int]bool, chains []Chain) {
	wallElems = map[int]bool{}
	wallRigid = map[int]bool{}
	wallNodes = map[int]bool{}

	indepRBE2 := map[int][]int{}
	for id, r := range store.Rigid {
		if r.Kind == card.RigidRBE2 {
			indepRBE2[r.Indep] = append(indepRBE2[r.Indep], id)
		}
	}

	var ids []int
	for id, e := range store.Elements {
		if e.Type == card.CBUSH {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	for _, id := range ids {
		e := store.Elements[id]
		if len(e.Nodes) != 2 {
			continue
		}
		ga, gb := e.Nodes[0], e.Nodes[1]
		if _, ok := store.Nodes[ga]; !ok {
			continue
		}
		if _, ok := store.Nodes[gb]; !ok {
			continue
		}
		rbA, rbB := indepRBE2[ga], indepRBE2[gb]
		if len(rbA) != 1 || len(rbB) != 1 {
			continue
		}

		chains = append(chains, Chain{RBE2A: rbA[0], CBUSH: id, RBE2B: rbB[0], NodeA: ga, NodeB: gb})
		wallElems[id] = true
		wallRigid[rbA[0]] = true
		wallRigid[rbB[0]] = true
		wallNodes[ga] = true
		wallNodes[gb] = true
	}

	return
}

// floodFill implements step 3 over an undirected element/node incidence
// graph that omits wall elements entirely and treats wall nodes as
// non-connectors, via lvlath's BFS run once per unvisited element.
func floodFill(store *model.Store, wallElems, wallNodes map[int]bool) [][]int {
	g := core.NewGraph(core.WithDirected(false))

	elemVert := func(id int) string { return fmt.Sprintf("E%d", id) }
	nodeVert := func(id int) string { return fmt.Sprintf("N%d", id) }

	var elemIDs []int
	for id := range store.Elements {
		if wallElems[id] {
			continue
		}
		elemIDs = append(elemIDs, id)
	}
	sort.Ints(elemIDs)

	for _, id := range elemIDs {
		_ = g.AddVertex(elemVert(id))
	}
	nodeAdded := map[int]bool{}
	for _, id := range elemIDs {
		for _, n := range store.Elements[id].Nodes {
			if wallNodes[n] {
				continue
			}
			if !nodeAdded[n] {
				_ = g.AddVertex(nodeVert(n))
				nodeAdded[n] = true
			}
			_, _ = g.AddEdge(elemVert(id), nodeVert(n), 0)
		}
	}

	visited := map[string]bool{}
	var components [][]int
	for _, id := range elemIDs {
		v := elemVert(id)
		if visited[v] {
			continue
		}
		bres, err := bfs.BFS(g, v)
		if err != nil {
			continue
		}
		var comp []int
		for _, vid := range bres.Order {
			visited[vid] = true
			var eid int
			if n, _ := fmt.Sscanf(vid, "E%d", &eid); n == 1 && strings.HasPrefix(vid, "E") {
				comp = append(comp, eid)
			}
		}
		sort.Ints(comp)
		if len(comp) > 0 {
			components = append(components, comp)
		}
	}
	return components
}

// finalizeParts implements step 4: one Part per component, node ids
// widened by any boundary RBE2 dependent set that intersects it, and a
// name derived from the first property's source comment.
func finalizeParts(res *Result, components [][]int) {
	store := res.Store
	usedNames := map[string]int{}

	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })

	for i, comp := range components {
		partID := i + 1
		part := &Part{
			ID: partID, Elements: map[int]bool{}, Nodes: map[int]bool{},
			Rigid: map[int]bool{}, Mass: map[int]bool{}, Properties: map[int]bool{},
		}
		for _, eid := range comp {
			part.Elements[eid] = true
			res.partOfElement[eid] = partID
			for _, n := range store.Elements[eid].Nodes {
				part.Nodes[n] = true
				res.coreNodePart[n] = partID
			}
		}
		part.Name = nameForPart(res, comp, partID, usedNames)
		res.Parts[partID] = part
	}

	for _, r := range store.Rigid {
		if r.Kind != card.RigidRBE2 || !res.WallRigidIDs[r.ID] {
			continue
		}
		for _, part := range res.Parts {
			intersects := part.Nodes[r.Indep]
			if !intersects {
				for _, n := range r.Dep {
					if part.Nodes[n] {
						intersects = true
						break
					}
				}
			}
			if intersects {
				for _, n := range r.Dep {
					part.Nodes[n] = true
				}
			}
		}
	}
}

// nameForPart looks at comp's lowest-id element with a non-zero
// property id, resolves that property's source comment, and sanitizes
// it into a usable file stem; collisions get a numeric suffix.
func nameForPart(res *Result, comp []int, partID int, usedNames map[string]int) string {
	name := ""
	for _, eid := range comp {
		e := res.Store.Elements[eid]
		if e.PID == 0 {
			continue
		}
		if c, ok := propertyComment(res.Tree, e.PID); ok && sanitizeName(c) != "" {
			name = sanitizeName(c)
		}
		break
	}
	if name == "" {
		name = fmt.Sprintf("Part_%03d", partID)
	}
	usedNames[name]++
	if n := usedNames[name]; n > 1 {
		name = fmt.Sprintf("%s_%d", name, n)
	}
	return name
}

func sanitizeName(s string) string {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	return b.String()
}

// assignRigidAndMass implements step 4's last clause: every rigid
// element outside the wall set, and every mass element, is assigned to
// whichever part owns the majority of its referenced nodes.
func assignRigidAndMass(res *Result) {
	store := res.Store
	for id, r := range store.Rigid {
		if res.WallRigidIDs[id] {
			continue
		}
		if p := majorityPart(rigidNodes(r), res.coreNodePart); p != 0 {
			res.Parts[p].Rigid[id] = true
		}
	}
	for id, m := range store.Mass {
		if p := majorityPart(m.Nodes, res.coreNodePart); p != 0 {
			res.Parts[p].Mass[id] = true
		}
	}
}

func rigidNodes(r *card.RigidElement) []int {
	switch r.Kind {
	case card.RigidRBE2:
		return append([]int{r.Indep}, r.Dep...)
	case card.RigidRBE3:
		nodes := []int{r.RefNode}
		for _, g := range r.Groups {
			nodes = append(nodes, g.Nodes...)
		}
		return nodes
	default: // RBAR
		return []int{r.NodeA, r.NodeB}
	}
}

// majorityPart tallies nodePart[n] across nodes and returns the part
// with the most votes, lowest part id breaking ties; 0 if no node
// voted (none of nodes belongs to any flood-filled part).
func majorityPart(nodes []int, nodePart map[int]int) int {
	counts := map[int]int{}
	for _, n := range nodes {
		if p, ok := nodePart[n]; ok {
			counts[p]++
		}
	}
	var ids []int
	for p := range counts {
		ids = append(ids, p)
	}
	sort.Ints(ids)
	best, bestCount := 0, 0
	for _, p := range ids {
		if counts[p] > bestCount {
			best, bestCount = p, counts[p]
		}
	}
	return best
}
