// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model implements the typed heterogeneous model store (C4): one
// mapping per entity family, keyed by primary id, with the constraint/
// load/mpc families keyed by set id onto an ordered list of cards since
// the Nastran "same set-id across multiple cards" rule accumulates them
// (§3 "Lifecycle", §4.4). The store is single-threaded by contract: no
// mutex guards the maps, mirroring fem.Domain's stage-local, unshared
// ownership of its Nodes/Elems slices.
package model

import (
	"sort"

	"github.com/cpmech/bdf/bdf/card"
	"github.com/cpmech/gosl/chk"
)

// Store is the process-local container C5 populates and C6/C8/C9/C10
// operate on in place.
type Store struct {
	Nodes      map[int]*card.Node
	Elements   map[int]*card.Element
	Rigid      map[int]*card.RigidElement
	Mass       map[int]*card.MassElement
	Properties map[int]*card.Property
	Materials  map[int]*card.Material
	Coords     map[int]*card.CoordSys

	SPCSets  map[int][]card.Parsed // *SPC / *SPC1 / *SPCADD sharing one set id
	MPCSets  map[int][]card.Parsed // *MPC / *MPCADD
	LoadSets map[int][]card.Parsed // *Load, any LoadKind, sharing one set id

	ContactSurfaces map[int]*card.ContactSurface
	ContactPairs    map[int]*card.ContactPair

	Sets    map[int]*card.Set
	Methods map[int]*card.Method
	Tables  map[int]*card.Table
	Params  map[string]*card.Param

	CaseControl []card.CaseControlItem

	// Source records, for every (family, id), the index into the include
	// walk's file list that C5 believes owns the card; C7 defers to C3's
	// independently-computed catalog when the two disagree (§4.5).
	Source map[card.Family]map[int]int
}

// New returns an empty store with every bucket initialized.
func New() *Store {
	return &Store{
		Nodes:           make(map[int]*card.Node),
		Elements:        make(map[int]*card.Element),
		Rigid:           make(map[int]*card.RigidElement),
		Mass:            make(map[int]*card.MassElement),
		Properties:      make(map[int]*card.Property),
		Materials:       make(map[int]*card.Material),
		Coords:          make(map[int]*card.CoordSys),
		SPCSets:         make(map[int][]card.Parsed),
		MPCSets:         make(map[int][]card.Parsed),
		LoadSets:        make(map[int][]card.Parsed),
		ContactSurfaces: make(map[int]*card.ContactSurface),
		ContactPairs:    make(map[int]*card.ContactPair),
		Sets:            make(map[int]*card.Set),
		Methods:         make(map[int]*card.Method),
		Tables:          make(map[int]*card.Table),
		Params:          make(map[string]*card.Param),
		Source:          make(map[card.Family]map[int]int),
	}
}

// MarkSource records that fileIndex (an index into the include walk's
// file list) is the source of the card (fam, id). Called by C5 as each
// card is inserted.
func (s *Store) MarkSource(fam card.Family, id, fileIndex int) {
	m, ok := s.Source[fam]
	if !ok {
		m = make(map[int]int)
		s.Source[fam] = m
	}
	m[id] = fileIndex
}

// SourceOf returns the file index C5 attributed to (fam, id), if any.
func (s *Store) SourceOf(fam card.Family, id int) (int, bool) {
	idx, ok := s.Source[fam][id]
	return idx, ok
}

// Insert files a freshly parsed card into the correct bucket, dispatched
// by its concrete Go type. Set-family cards (SPC/SPC1/SPCADD, MPC/
// MPCADD, every Load variant) accumulate under their set id rather than
// overwrite, matching the Nastran union rule.
func (s *Store) Insert(p card.Parsed) error {
	switch v := p.(type) {
	case *card.Node:
		s.Nodes[v.ID] = v
	case *card.Element:
		s.Elements[v.ID] = v
	case *card.RigidElement:
		s.Rigid[v.ID] = v
	case *card.MassElement:
		s.Mass[v.ID] = v
	case *card.Property:
		s.Properties[v.ID] = v
	case *card.Material:
		s.Materials[v.ID] = v
	case *card.CoordSys:
		s.Coords[v.ID] = v
	case *card.SPC:
		s.SPCSets[v.SID] = append(s.SPCSets[v.SID], v)
	case *card.SPC1:
		s.SPCSets[v.SID] = append(s.SPCSets[v.SID], v)
	case *card.SPCADD:
		s.SPCSets[v.SID] = append(s.SPCSets[v.SID], v)
	case *card.MPC:
		s.MPCSets[v.SID] = append(s.MPCSets[v.SID], v)
	case *card.MPCADD:
		s.MPCSets[v.SID] = append(s.MPCSets[v.SID], v)
	case *card.Load:
		s.LoadSets[v.SID] = append(s.LoadSets[v.SID], v)
	case *card.ContactSurface:
		s.ContactSurfaces[v.ID] = v
	case *card.ContactPair:
		s.ContactPairs[v.ID] = v
	case *card.Set:
		s.Sets[v.ID] = v
	case *card.Method:
		s.Methods[v.ID] = v
	case *card.Table:
		s.Tables[v.ID] = v
	case *card.Param:
		s.Params[v.Name] = v
	case card.CaseControlItem:
		s.CaseControl = append(s.CaseControl, v)
	default:
		return chk.Err("model.Insert: unhandled card type %T", p)
	}
	return nil
}

// SortedNodeIDs, SortedElementIDs, ... return a family's ids in
// ascending order; used by the writer's canonical emission and by the
// renumber engine's bucket-sort mapping policy (§4.8).
func SortedNodeIDs(s *Store) []int      { return sortedKeys(s.Nodes) }
func SortedElementIDs(s *Store) []int   { return sortedKeys(s.Elements) }
func SortedRigidIDs(s *Store) []int     { return sortedKeys(s.Rigid) }
func SortedMassIDs(s *Store) []int      { return sortedKeys(s.Mass) }
func SortedPropertyIDs(s *Store) []int  { return sortedKeys(s.Properties) }
func SortedMaterialIDs(s *Store) []int  { return sortedKeys(s.Materials) }
func SortedCoordIDs(s *Store) []int     { return sortedKeys(s.Coords) }
func SortedSPCSetIDs(s *Store) []int    { return sortedKeysSlice(s.SPCSets) }
func SortedMPCSetIDs(s *Store) []int    { return sortedKeysSlice(s.MPCSets) }
func SortedLoadSetIDs(s *Store) []int   { return sortedKeysSlice(s.LoadSets) }
func SortedSetIDs(s *Store) []int       { return sortedKeys(s.Sets) }
func SortedMethodIDs(s *Store) []int    { return sortedKeys(s.Methods) }
func SortedTableIDs(s *Store) []int     { return sortedKeys(s.Tables) }

func sortedKeys[V any](m map[int]V) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func sortedKeysSlice[V any](m map[int][]V) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
