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
	Register("CONM2", FamMass, parseConm2, writeConm2, firstFieldPrimaryID)
	Register("CONM1", FamMass, parseConm1, writeConm1, firstFieldPrimaryID)
	for _, k := range []MassKind{MassCMASS1, MassCMASS2, MassCMASS3, MassCMASS4} {
		registerCMass(k)
	}
}

// CONM2 eid g cid m x1 x2 x3 i11 i21 i22 i31 i32 i33
func parseConm2(c *field.Card) (Parsed, error) {
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("CONM2: bad or missing id: %v", err)
	}
	node, ok, err := field.ParseInt(c.At(1))
	if err != nil || !ok {
		return nil, chk.Err("CONM2 %d: bad or missing node: %v", id, err)
	}
	m := &MassElement{ID: id, Kind: MassCONM2, Nodes: []int{node}}
	if cid, ok, err := field.ParseInt(c.At(2)); err == nil && ok {
		m.CID = cid
	}
	if v, ok, err := field.ParseFloat(c.At(3)); err == nil && ok {
		m.Mass = v
	}
	for i := 0; i < 3; i++ {
		if v, ok, err := field.ParseFloat(c.At(4 + i)); err == nil && ok {
			m.Offset[i] = v
		}
	}
	for i := 0; i < 6; i++ {
		if v, ok, err := field.ParseFloat(c.At(7 + i)); err == nil && ok {
			m.I[i] = v
		}
	}
	return m, nil
}

func writeConm2(p Parsed) (string, []string, error) {
	m, ok := p.(*MassElement)
	if !ok || m.Kind != MassCONM2 {
		return "", nil, chk.Err("writeConm2: wrong type")
	}
	fields := []string{strconv.Itoa(m.ID), strconv.Itoa(m.Nodes[0]), fmtInt0(m.CID), fmtReal(m.Mass)}
	for _, v := range m.Offset {
		fields = append(fields, fmtReal0(v))
	}
	for _, v := range m.I {
		fields = append(fields, fmtReal0(v))
	}
	return "CONM2", fields, nil
}

// CONM1 eid g cid m11 m21 m22 m31 m32 m33 ... (21 upper-triangle terms)
func parseConm1(c *field.Card) (Parsed, error) {
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("CONM1: bad or missing id: %v", err)
	}
	node, ok, err := field.ParseInt(c.At(1))
	if err != nil || !ok {
		return nil, chk.Err("CONM1 %d: bad or missing node: %v", id, err)
	}
	m := &MassElement{ID: id, Kind: MassCONM1, Nodes: []int{node}, HasMatrix: true}
	if cid, ok, err := field.ParseInt(c.At(2)); err == nil && ok {
		m.CID = cid
	}
	for i := 0; i < 21; i++ {
		if v, ok, err := field.ParseFloat(c.At(3 + i)); err == nil && ok {
			m.Matrix[i] = v
		}
	}
	return m, nil
}

func writeConm1(p Parsed) (string, []string, error) {
	m, ok := p.(*MassElement)
	if !ok || m.Kind != MassCONM1 {
		return "", nil, chk.Err("writeConm1: wrong type")
	}
	fields := []string{strconv.Itoa(m.ID), strconv.Itoa(m.Nodes[0]), fmtInt0(m.CID)}
	for _, v := range m.Matrix {
		fields = append(fields, fmtReal0(v))
	}
	return "CONM1", fields, nil
}

// CMASSn eid (pid|m) g1 c1 g2 c2
func registerCMass(k MassKind) {
	name := map[MassKind]string{
		MassCMASS1: "CMASS1", MassCMASS2: "CMASS2", MassCMASS3: "CMASS3", MassCMASS4: "CMASS4",
	}[k]
	Register(name, FamMass, func(c *field.Card) (Parsed, error) {
		id, ok, err := field.ParseInt(c.At(0))
		if err != nil || !ok {
			return nil, chk.Err("%s: bad or missing id: %v", name, err)
		}
		m := &MassElement{ID: id, Kind: k}
		switch k {
		case MassCMASS2, MassCMASS4:
			if v, ok, err := field.ParseFloat(c.At(1)); err == nil && ok {
				m.Mass = v
			}
		default:
			if pid, ok, err := field.ParseInt(c.At(1)); err == nil && ok {
				m.PID = pid
			}
		}
		if n1, ok, err := field.ParseInt(c.At(2)); err == nil && ok {
			m.Nodes = append(m.Nodes, n1)
		}
		if n2, ok, err := field.ParseInt(c.At(4)); err == nil && ok {
			m.Nodes = append(m.Nodes, n2)
		}
		return m, nil
	}, func(p Parsed) (string, []string, error) {
		m, ok := p.(*MassElement)
		if !ok || m.Kind != k {
			return "", nil, chk.Err("write%s: wrong type", name)
		}
		n1, n2 := 0, 0
		if len(m.Nodes) > 0 {
			n1 = m.Nodes[0]
		}
		if len(m.Nodes) > 1 {
			n2 = m.Nodes[1]
		}
		var second string
		switch k {
		case MassCMASS2, MassCMASS4:
			second = fmtReal(m.Mass)
		default:
			second = strconv.Itoa(m.PID)
		}
		return name, []string{strconv.Itoa(m.ID), second, fmtInt0(n1), "", fmtInt0(n2), ""}, nil
	}, firstFieldPrimaryID)
}
