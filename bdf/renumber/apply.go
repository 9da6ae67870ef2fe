package renumber

import (
	"github.com/cpmech/bdf/bdf/card"
	"github.com/cpmech/bdf/bdf/model"
)

// Apply validates req, builds the remap plan, and then mutates req.Store
// in place: every card's own id slot is rewritten through its family's
// map, and every reference slot named in §3 is rewritten through
// whichever family it points into (§4.8 "Reference-slot update
// contract"). When req.DryRun is set, the plan is computed and returned
// but the store is left untouched.
func Apply(req Request) (*Plan, []error) {
	plan, errs := BuildPlan(req)
	if len(errs) > 0 {
		return nil, errs
	}
	if req.DryRun {
		return plan, nil
	}
	applyToStore(req.Store, plan.Remap)
	return plan, nil
}

func get(m map[int]int, id int) int {
	if m == nil {
		return id
	}
	if v, ok := m[id]; ok {
		return v
	}
	return id
}

func getList(m map[int]int, ids []int) []int {
	if m == nil || len(ids) == 0 {
		return ids
	}
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = get(m, id)
	}
	return out
}

// applyToStore rewrites every id slot and reference slot the remap
// touches. It walks the same per-family, per-slot shape xref.Resolve
// checks, so every slot xref can flag is a slot this function can also
// rewrite.
func applyToStore(s *model.Store, remap map[card.Family]map[int]int) {
	nodeMap := remap[card.FamNode]
	elemMap := remap[card.FamElement]
	rigidMap := remap[card.FamRigid]
	massMap := remap[card.FamMass]
	propMap := remap[card.FamProperty]
	matMap := remap[card.FamMaterial]
	coordMap := remap[card.FamCoord]
	spcMap := remap[card.FamSPCSet]
	mpcMap := remap[card.FamMPCSet]
	loadMap := remap[card.FamLoadSet]
	contactMap := remap[card.FamContact]
	setMap := remap[card.FamSet]
	methodMap := remap[card.FamMethod]
	tableMap := remap[card.FamTable]

	renumberNodes(s, nodeMap, coordMap)
	renumberElements(s, elemMap, nodeMap, propMap, matMap, coordMap)
	renumberRigid(s, rigidMap, nodeMap)
	renumberMass(s, massMap, nodeMap, coordMap, propMap)
	renumberProperties(s, propMap, matMap, coordMap)
	renumberMaterials(s, matMap)
	renumberCoords(s, coordMap, nodeMap)
	renumberSPC(s, spcMap, nodeMap)
	renumberMPC(s, mpcMap, nodeMap)
	renumberLoads(s, loadMap, nodeMap, elemMap, coordMap)
	renumberContact(s, contactMap, elemMap)
	renumberSets(s, setMap, nodeMap, elemMap)
	renumberMethods(s, methodMap)
	renumberTables(s, tableMap)
}

func renumberNodes(s *model.Store, nodeMap, coordMap map[int]int) {
	out := make(map[int]*card.Node, len(s.Nodes))
	for _, n := range s.Nodes {
		n.CP = get(coordMap, n.CP)
		n.CD = get(coordMap, n.CD)
		n.ID = get(nodeMap, n.ID)
		out[n.ID] = n
	}
	s.Nodes = out
}

func renumberElements(s *model.Store, elemMap, nodeMap, propMap, matMap, coordMap map[int]int) {
	out := make(map[int]*card.Element, len(s.Elements))
	for _, e := range s.Elements {
		e.Nodes = getList(nodeMap, e.Nodes)
		if e.Type == card.CONROD {
			e.MID = get(matMap, e.MID)
		} else {
			e.PID = get(propMap, e.PID)
		}
		if e.HasG0 {
			e.G0 = get(nodeMap, e.G0)
		}
		e.OrientCID = get(coordMap, e.OrientCID)
		if e.ThetaMCIDIsInt {
			e.ThetaMCIDInt = get(coordMap, e.ThetaMCIDInt)
		}
		e.ID = get(elemMap, e.ID)
		out[e.ID] = e
	}
	s.Elements = out
}

func renumberRigid(s *model.Store, rigidMap, nodeMap map[int]int) {
	out := make(map[int]*card.RigidElement, len(s.Rigid))
	for _, g := range s.Rigid {
		switch g.Kind {
		case card.RigidRBE2:
			g.Indep = get(nodeMap, g.Indep)
			g.Dep = getList(nodeMap, g.Dep)
		case card.RigidRBE3:
			g.RefNode = get(nodeMap, g.RefNode)
			for i := range g.Groups {
				g.Groups[i].Nodes = getList(nodeMap, g.Groups[i].Nodes)
			}
		case card.RigidRBAR:
			g.NodeA = get(nodeMap, g.NodeA)
			g.NodeB = get(nodeMap, g.NodeB)
		}
		g.ID = get(rigidMap, g.ID)
		out[g.ID] = g
	}
	s.Rigid = out
}

func renumberMass(s *model.Store, massMap, nodeMap, coordMap, propMap map[int]int) {
	out := make(map[int]*card.MassElement, len(s.Mass))
	for _, m := range s.Mass {
		m.Nodes = getList(nodeMap, m.Nodes)
		m.CID = get(coordMap, m.CID)
		m.PID = get(propMap, m.PID)
		m.ID = get(massMap, m.ID)
		out[m.ID] = m
	}
	s.Mass = out
}

func renumberProperties(s *model.Store, propMap, matMap, coordMap map[int]int) {
	out := make(map[int]*card.Property, len(s.Properties))
	for _, p := range s.Properties {
		p.MIDs = getList(matMap, p.MIDs)
		for i := range p.Plies {
			p.Plies[i].MID = get(matMap, p.Plies[i].MID)
		}
		p.MatCID = get(coordMap, p.MatCID)
		p.ID = get(propMap, p.ID)
		out[p.ID] = p
	}
	s.Properties = out
}

func renumberMaterials(s *model.Store, matMap map[int]int) {
	out := make(map[int]*card.Material, len(s.Materials))
	for _, m := range s.Materials {
		m.ID = get(matMap, m.ID)
		out[m.ID] = m
	}
	s.Materials = out
}

func renumberCoords(s *model.Store, coordMap, nodeMap map[int]int) {
	out := make(map[int]*card.CoordSys, len(s.Coords))
	for _, c := range s.Coords {
		if c.Type2 {
			c.RID = get(coordMap, c.RID)
		} else {
			c.G1 = get(nodeMap, c.G1)
			c.G2 = get(nodeMap, c.G2)
			c.G3 = get(nodeMap, c.G3)
		}
		c.ID = get(coordMap, c.ID)
		out[c.ID] = c
	}
	s.Coords = out
}

func renumberSPC(s *model.Store, spcMap, nodeMap map[int]int) {
	out := make(map[int][]card.Parsed, len(s.SPCSets))
	for sid, terms := range s.SPCSets {
		newSID := get(spcMap, sid)
		for _, p := range terms {
			switch v := p.(type) {
			case *card.SPC:
				v.Node = get(nodeMap, v.Node)
				v.SID = newSID
			case *card.SPC1:
				v.Nodes = getList(nodeMap, v.Nodes)
				v.SID = newSID
			case *card.SPCADD:
				v.SIDs = getList(spcMap, v.SIDs)
				v.SID = newSID
			}
		}
		out[newSID] = append(out[newSID], terms...)
	}
	s.SPCSets = out
}

func renumberMPC(s *model.Store, mpcMap, nodeMap map[int]int) {
	out := make(map[int][]card.Parsed, len(s.MPCSets))
	for sid, terms := range s.MPCSets {
		newSID := get(mpcMap, sid)
		for _, p := range terms {
			switch v := p.(type) {
			case *card.MPC:
				for i := range v.Terms {
					v.Terms[i].Node = get(nodeMap, v.Terms[i].Node)
				}
				v.SID = newSID
			case *card.MPCADD:
				v.SIDs = getList(mpcMap, v.SIDs)
				v.SID = newSID
			}
		}
		out[newSID] = append(out[newSID], terms...)
	}
	s.MPCSets = out
}

// renumberLoads rewrites every Load card. EIDs is interpreted as an
// element-id list (the PLOAD2/PLOAD4 reading); PLOAD's older node-list
// reading is lost once collapsed into this shared struct, the same
// simplification the writer's canonical-name resolution already accepts.
func renumberLoads(s *model.Store, loadMap, nodeMap, elemMap, coordMap map[int]int) {
	out := make(map[int][]card.Parsed, len(s.LoadSets))
	for sid, terms := range s.LoadSets {
		newSID := get(loadMap, sid)
		for _, p := range terms {
			l, ok := p.(*card.Load)
			if !ok {
				continue
			}
			l.Node = get(nodeMap, l.Node)
			l.CID = get(coordMap, l.CID)
			l.EIDs = getList(elemMap, l.EIDs)
			l.G1 = get(nodeMap, l.G1)
			l.G3 = get(nodeMap, l.G3)
			l.G4 = get(nodeMap, l.G4)
			for i := range l.Combo {
				l.Combo[i].SID = get(loadMap, l.Combo[i].SID)
			}
			if len(l.NodeTemp) > 0 {
				remapped := make(map[int]float64, len(l.NodeTemp))
				for nid, v := range l.NodeTemp {
					remapped[get(nodeMap, nid)] = v
				}
				l.NodeTemp = remapped
			}
			l.SID = newSID
		}
		out[newSID] = append(out[newSID], terms...)
	}
	s.LoadSets = out
}

func renumberContact(s *model.Store, contactMap, elemMap map[int]int) {
	surf := make(map[int]*card.ContactSurface, len(s.ContactSurfaces))
	for _, c := range s.ContactSurfaces {
		c.ElemIDs = getList(elemMap, c.ElemIDs)
		c.ID = get(contactMap, c.ID)
		surf[c.ID] = c
	}
	s.ContactSurfaces = surf

	pairs := make(map[int]*card.ContactPair, len(s.ContactPairs))
	for _, c := range s.ContactPairs {
		c.SurfA = get(contactMap, c.SurfA)
		c.SurfB = get(contactMap, c.SurfB)
		c.ID = get(contactMap, c.ID)
		pairs[c.ID] = c
	}
	s.ContactPairs = pairs
}

// renumberSets applies whichever of {nodeMap, elemMap} hits more of a
// SET1/SET3's ids, ties broken toward nodes (§4.8 Appendix).
func renumberSets(s *model.Store, setMap, nodeMap, elemMap map[int]int) {
	out := make(map[int]*card.Set, len(s.Sets))
	for _, set := range s.Sets {
		hitsNode, hitsElem := 0, 0
		for _, id := range set.IDs {
			if _, ok := nodeMap[id]; ok {
				hitsNode++
			}
			if _, ok := elemMap[id]; ok {
				hitsElem++
			}
		}
		if hitsElem > hitsNode {
			set.IDs = getList(elemMap, set.IDs)
		} else {
			set.IDs = getList(nodeMap, set.IDs)
		}
		set.ID = get(setMap, set.ID)
		out[set.ID] = set
	}
	s.Sets = out
}

func renumberMethods(s *model.Store, methodMap map[int]int) {
	out := make(map[int]*card.Method, len(s.Methods))
	for _, m := range s.Methods {
		m.ID = get(methodMap, m.ID)
		out[m.ID] = m
	}
	s.Methods = out
}

func renumberTables(s *model.Store, tableMap map[int]int) {
	out := make(map[int]*card.Table, len(s.Tables))
	for _, t := range s.Tables {
		t.ID = get(tableMap, t.ID)
		out[t.ID] = t
	}
	s.Tables = out
}
