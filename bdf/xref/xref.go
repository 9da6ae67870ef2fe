// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xref implements the cross-referencer (C6): a pure,
// non-destructive derivation over a model store that checks every
// id-valued reference slot against the family it is expected to
// resolve against and reports the ones that do not (§4.6, §9 "Cross-
// references"). Card structs never hold live pointers — the store keeps
// plain integer ids throughout, so there is nothing to "un-resolve";
// Resolve is always safe to call again after a renumber or partition
// pass invalidates a prior Result.
package xref

import (
	"github.com/cpmech/bdf/bdf/card"
	"github.com/cpmech/bdf/bdf/model"
)

// Dangling records one reference slot whose target does not exist in
// the store.
type Dangling struct {
	FromFamily card.Family
	FromID     int
	Slot       string
	ToFamily   card.Family
	ToID       int
}

// Result is the outcome of one Resolve pass.
type Result struct {
	Dangling []Dangling
}

func (r *Result) flag(fromFam card.Family, fromID int, slot string, toFam card.Family, toID int) {
	r.Dangling = append(r.Dangling, Dangling{
		FromFamily: fromFam, FromID: fromID, Slot: slot, ToFamily: toFam, ToID: toID,
	})
}

// Resolve walks every card in s and validates its reference slots
// (§3's per-family reference shapes) against the expected family,
// recording every dangling reference without failing (§4.6: reporting
// dangling ids is non-fatal by default).
func Resolve(s *model.Store) *Result {
	r := &Result{}

	for id, n := range s.Nodes {
		if n.CP != 0 {
			if _, ok := s.Coords[n.CP]; !ok {
				r.flag(card.FamNode, id, "CP", card.FamCoord, n.CP)
			}
		}
		if n.CD != 0 {
			if _, ok := s.Coords[n.CD]; !ok {
				r.flag(card.FamNode, id, "CD", card.FamCoord, n.CD)
			}
		}
	}

	for id, e := range s.Elements {
		for _, nid := range e.Nodes {
			if _, ok := s.Nodes[nid]; !ok {
				r.flag(card.FamElement, id, "Nodes", card.FamNode, nid)
			}
		}
		if e.Type == card.CONROD {
			if e.MID != 0 {
				if _, ok := s.Materials[e.MID]; !ok {
					r.flag(card.FamElement, id, "MID", card.FamMaterial, e.MID)
				}
			}
		} else if e.PID != 0 {
			if _, ok := s.Properties[e.PID]; !ok {
				r.flag(card.FamElement, id, "PID", card.FamProperty, e.PID)
			}
		}
		if e.HasG0 && e.G0 != 0 {
			if _, ok := s.Nodes[e.G0]; !ok {
				r.flag(card.FamElement, id, "G0", card.FamNode, e.G0)
			}
		}
		// theta_mcid resolves against coords only when integer-typed (§3).
		if e.ThetaMCIDIsInt && e.ThetaMCIDInt != 0 {
			if _, ok := s.Coords[e.ThetaMCIDInt]; !ok {
				r.flag(card.FamElement, id, "ThetaMCID", card.FamCoord, e.ThetaMCIDInt)
			}
		}
	}

	for id, g := range s.Rigid {
		switch g.Kind {
		case card.RigidRBE2:
			if g.Indep != 0 {
				if _, ok := s.Nodes[g.Indep]; !ok {
					r.flag(card.FamRigid, id, "Indep", card.FamNode, g.Indep)
				}
			}
			for _, nid := range g.Dep {
				if _, ok := s.Nodes[nid]; !ok {
					r.flag(card.FamRigid, id, "Dep", card.FamNode, nid)
				}
			}
		case card.RigidRBE3:
			if g.RefNode != 0 {
				if _, ok := s.Nodes[g.RefNode]; !ok {
					r.flag(card.FamRigid, id, "RefNode", card.FamNode, g.RefNode)
				}
			}
			for _, grp := range g.Groups {
				for _, nid := range grp.Nodes {
					if _, ok := s.Nodes[nid]; !ok {
						r.flag(card.FamRigid, id, "Groups", card.FamNode, nid)
					}
				}
			}
		case card.RigidRBAR:
			if g.NodeA != 0 {
				if _, ok := s.Nodes[g.NodeA]; !ok {
					r.flag(card.FamRigid, id, "NodeA", card.FamNode, g.NodeA)
				}
			}
			if g.NodeB != 0 {
				if _, ok := s.Nodes[g.NodeB]; !ok {
					r.flag(card.FamRigid, id, "NodeB", card.FamNode, g.NodeB)
				}
			}
		}
	}

	for id, m := range s.Mass {
		for _, nid := range m.Nodes {
			if _, ok := s.Nodes[nid]; !ok {
				r.flag(card.FamMass, id, "Nodes", card.FamNode, nid)
			}
		}
		if m.CID != 0 {
			if _, ok := s.Coords[m.CID]; !ok {
				r.flag(card.FamMass, id, "CID", card.FamCoord, m.CID)
			}
		}
		if m.PID != 0 {
			if _, ok := s.Properties[m.PID]; !ok {
				r.flag(card.FamMass, id, "PID", card.FamProperty, m.PID)
			}
		}
	}

	for id, p := range s.Properties {
		for _, mid := range p.MIDs {
			if mid == 0 {
				continue
			}
			if _, ok := s.Materials[mid]; !ok {
				r.flag(card.FamProperty, id, "MIDs", card.FamMaterial, mid)
			}
		}
		for _, ply := range p.Plies {
			if ply.MID == 0 {
				continue
			}
			if _, ok := s.Materials[ply.MID]; !ok {
				r.flag(card.FamProperty, id, "Plies.MID", card.FamMaterial, ply.MID)
			}
		}
		if p.MatCID != 0 {
			if _, ok := s.Coords[p.MatCID]; !ok {
				r.flag(card.FamProperty, id, "MatCID", card.FamCoord, p.MatCID)
			}
		}
	}

	for id, c := range s.Coords {
		if c.Type2 {
			if c.RID != 0 {
				if _, ok := s.Coords[c.RID]; !ok {
					r.flag(card.FamCoord, id, "RID", card.FamCoord, c.RID)
				}
			}
			continue
		}
		for _, slotNid := range []struct {
			slot string
			nid  int
		}{{"G1", c.G1}, {"G2", c.G2}, {"G3", c.G3}} {
			if slotNid.nid == 0 {
				continue
			}
			if _, ok := s.Nodes[slotNid.nid]; !ok {
				r.flag(card.FamCoord, id, slotNid.slot, card.FamNode, slotNid.nid)
			}
		}
	}

	for sid, terms := range s.SPCSets {
		for _, p := range terms {
			spc, ok := p.(*card.SPC)
			if !ok {
				continue
			}
			if _, ok := s.Nodes[spc.Node]; !ok {
				r.flag(card.FamSPCSet, sid, "Node", card.FamNode, spc.Node)
			}
		}
	}

	for sid, terms := range s.LoadSets {
		for _, p := range terms {
			l, ok := p.(*card.Load)
			if !ok || l.Node == 0 {
				continue
			}
			if _, ok := s.Nodes[l.Node]; !ok {
				r.flag(card.FamLoadSet, sid, "Node", card.FamNode, l.Node)
			}
		}
	}

	return r
}
