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
	Register("SPC", FamSPCSet, parseSPCCard, writeSPCCard, firstFieldPrimaryID)
	Register("SPC1", FamSPCSet, parseSPC1, writeSPC1, firstFieldPrimaryID)
	Register("SPCADD", FamSPCSet, parseSPCADD, writeSPCADD, firstFieldPrimaryID)
	Register("MPC", FamMPCSet, parseMPC, writeMPC, firstFieldPrimaryID)
	Register("MPCADD", FamMPCSet, parseMPCADD, writeMPCADD, firstFieldPrimaryID)
}

// SPC sid g1 c1 d1 g2 c2 d2
func parseSPCCard(c *field.Card) (Parsed, error) {
	sid, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("SPC: bad or missing set id: %v", err)
	}
	node, ok, err := field.ParseInt(c.At(1))
	if err != nil || !ok {
		return nil, chk.Err("SPC %d: bad or missing node: %v", sid, err)
	}
	enf, _, _ := field.ParseFloat(c.At(3))
	return &SPC{SID: sid, Node: node, DOF: c.At(2), Enforced: enf}, nil
}

func writeSPCCard(p Parsed) (string, []string, error) {
	s, ok := p.(*SPC)
	if !ok {
		return "", nil, chk.Err("writeSPCCard: wrong type")
	}
	return "SPC", []string{strconv.Itoa(s.SID), strconv.Itoa(s.Node), s.DOF, fmtReal0(s.Enforced)}, nil
}

// SPC1 sid c g1 g2 g3 ... (or "THRU")
func parseSPC1(c *field.Card) (Parsed, error) {
	sid, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("SPC1: bad or missing set id: %v", err)
	}
	s := &SPC1{SID: sid, DOF: c.At(1)}
	for i := 2; i < len(c.Fields); i++ {
		if v, ok, err := field.ParseInt(c.At(i)); err == nil && ok {
			s.Nodes = append(s.Nodes, v)
		}
	}
	return s, nil
}

func writeSPC1(p Parsed) (string, []string, error) {
	s, ok := p.(*SPC1)
	if !ok {
		return "", nil, chk.Err("writeSPC1: wrong type")
	}
	fields := append([]string{strconv.Itoa(s.SID), s.DOF}, fmtIntList(s.Nodes)...)
	return "SPC1", fields, nil
}

// SPCADD sid s1 s2 s3 ...
func parseSPCADD(c *field.Card) (Parsed, error) {
	sid, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("SPCADD: bad or missing set id: %v", err)
	}
	a := &SPCADD{SID: sid}
	for i := 1; i < len(c.Fields); i++ {
		if v, ok, err := field.ParseInt(c.At(i)); err == nil && ok {
			a.SIDs = append(a.SIDs, v)
		}
	}
	return a, nil
}

func writeSPCADD(p Parsed) (string, []string, error) {
	a, ok := p.(*SPCADD)
	if !ok {
		return "", nil, chk.Err("writeSPCADD: wrong type")
	}
	fields := append([]string{strconv.Itoa(a.SID)}, fmtIntList(a.SIDs)...)
	return "SPCADD", fields, nil
}

// MPC sid g1 c1 a1 g2 c2 a2 ...
func parseMPC(c *field.Card) (Parsed, error) {
	sid, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("MPC: bad or missing set id: %v", err)
	}
	m := &MPC{SID: sid}
	for i := 1; i+2 < len(c.Fields)+1 && i+1 < len(c.Fields); i += 3 {
		node, ok, err := field.ParseInt(c.At(i))
		if err != nil || !ok {
			break
		}
		dof := c.At(i + 1)
		coef, _, _ := field.ParseFloat(c.At(i + 2))
		m.Terms = append(m.Terms, MPCTerm{Node: node, DOF: dof, Coef: coef})
	}
	return m, nil
}

func writeMPC(p Parsed) (string, []string, error) {
	m, ok := p.(*MPC)
	if !ok {
		return "", nil, chk.Err("writeMPC: wrong type")
	}
	fields := []string{strconv.Itoa(m.SID)}
	for _, t := range m.Terms {
		fields = append(fields, strconv.Itoa(t.Node), t.DOF, fmtReal(t.Coef))
	}
	return "MPC", fields, nil
}

// MPCADD sid s1 s2 s3 ...
func parseMPCADD(c *field.Card) (Parsed, error) {
	sid, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("MPCADD: bad or missing set id: %v", err)
	}
	a := &MPCADD{SID: sid}
	for i := 1; i < len(c.Fields); i++ {
		if v, ok, err := field.ParseInt(c.At(i)); err == nil && ok {
			a.SIDs = append(a.SIDs, v)
		}
	}
	return a, nil
}

func writeMPCADD(p Parsed) (string, []string, error) {
	a, ok := p.(*MPCADD)
	if !ok {
		return "", nil, chk.Err("writeMPCADD: wrong type")
	}
	fields := append([]string{strconv.Itoa(a.SID)}, fmtIntList(a.SIDs)...)
	return "MPCADD", fields, nil
}
