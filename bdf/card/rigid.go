// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package card

import (
	"strconv"

	"github.com/cpmech/bdf/bdf/field"
	"github.com/cpmech/gosl/chk"
)

func init() {
	Register("RBE2", FamRigid, parseRBE2, writeRBE2, firstFieldPrimaryID)
	Register("RBE3", FamRigid, parseRBE3, writeRBE3, firstFieldPrimaryID)
	Register("RBAR", FamRigid, parseRBAR, writeRBAR, firstFieldPrimaryID)
}

// RBE2 eid gn cm gm1 gm2 ... [alpha]
func parseRBE2(c *field.Card) (Parsed, error) {
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("RBE2: bad or missing id: %v", err)
	}
	indep, ok, err := field.ParseInt(c.At(1))
	if err != nil || !ok {
		return nil, chk.Err("RBE2 %d: bad or missing independent node: %v", id, err)
	}
	dof := c.At(2)
	var dep []int
	for i := 3; ; i++ {
		raw := c.At(i)
		if raw == "" && i >= len(c.Fields) {
			break
		}
		v, ok, err := field.ParseInt(raw)
		if err != nil {
			break // trailing ALPHA field, not an id
		}
		if !ok {
			continue
		}
		dep = append(dep, v)
	}
	return &RigidElement{ID: id, Kind: RigidRBE2, Indep: indep, DOF: dof, Dep: dep}, nil
}

func writeRBE2(p Parsed) (string, []string, error) {
	r, ok := p.(*RigidElement)
	if !ok || r.Kind != RigidRBE2 {
		return "", nil, chk.Err("writeRBE2: wrong type")
	}
	fields := append([]string{strconv.Itoa(r.ID), strconv.Itoa(r.Indep), r.DOF}, fmtIntList(r.Dep)...)
	return "RBE2", fields, nil
}

// RBE3 eid blank refgrid refc wt1 c1 g1,1 g1,2 ... wt2 c2 g2,1 ...
// parsed in a simplified, still-typed form: groups are delimited by a
// field that parses as a float (the weight) followed by a dof-mask
// string and then node ids until the next float is seen.
func parseRBE3(c *field.Card) (Parsed, error) {
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("RBE3: bad or missing id: %v", err)
	}
	ref, ok, err := field.ParseInt(c.At(2))
	if err != nil || !ok {
		return nil, chk.Err("RBE3 %d: bad or missing reference node: %v", id, err)
	}
	refDOF := c.At(3)

	r := &RigidElement{ID: id, Kind: RigidRBE3, RefNode: ref, RefDOF: refDOF}
	i := 4
	for i < len(c.Fields) {
		w, ok, err := field.ParseFloat(c.At(i))
		if err != nil || !ok {
			i++
			continue
		}
		dof := c.At(i + 1)
		i += 2
		var nodes []int
		for i < len(c.Fields) {
			if _, ok, _ := field.ParseFloat(c.At(i)); ok {
				if v, iok, _ := field.ParseInt(c.At(i)); !iok || v == 0 {
					break
				}
			}
			v, ok, err := field.ParseInt(c.At(i))
			if err != nil || !ok {
				break
			}
			nodes = append(nodes, v)
			i++
		}
		r.Groups = append(r.Groups, RBE3Group{Weight: w, DOF: dof, Nodes: nodes})
	}
	return r, nil
}

func writeRBE3(p Parsed) (string, []string, error) {
	r, ok := p.(*RigidElement)
	if !ok || r.Kind != RigidRBE3 {
		return "", nil, chk.Err("writeRBE3: wrong type")
	}
	fields := []string{strconv.Itoa(r.ID), "", strconv.Itoa(r.RefNode), r.RefDOF}
	for _, g := range r.Groups {
		fields = append(fields, fmtReal(g.Weight), g.DOF)
		fields = append(fields, fmtIntList(g.Nodes)...)
	}
	return "RBE3", fields, nil
}

// RBAR eid ga gb cna cnb cma cmb
func parseRBAR(c *field.Card) (Parsed, error) {
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("RBAR: bad or missing id: %v", err)
	}
	ga, _, _ := field.ParseInt(c.At(1))
	gb, _, _ := field.ParseInt(c.At(2))
	return &RigidElement{
		ID: id, Kind: RigidRBAR,
		NodeA: ga, NodeB: gb,
		DOFA: c.At(3), DOFB: c.At(4),
	}, nil
}

func writeRBAR(p Parsed) (string, []string, error) {
	r, ok := p.(*RigidElement)
	if !ok || r.Kind != RigidRBAR {
		return "", nil, chk.Err("writeRBAR: wrong type")
	}
	return "RBAR", []string{
		strconv.Itoa(r.ID), strconv.Itoa(r.NodeA), strconv.Itoa(r.NodeB), r.DOFA, r.DOFB,
	}, nil
}
