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
	for _, t := range []ElemType{CTRIA3, CTRIA6, CQUAD4, CQUAD8} {
		registerShell(t)
	}
	for _, t := range []ElemType{CHEXA, CPENTA, CTETRA} {
		registerSolid(t)
	}
	for _, t := range []ElemType{CBAR, CBEAM} {
		registerBarLike(t)
	}
	Register("CROD", FamElement, parseRod, writeRod, firstFieldPrimaryID)
	Register("CONROD", FamElement, parseConrod, writeConrod, firstFieldPrimaryID)
	Register("CBUSH", FamElement, parseBush, writeBush, firstFieldPrimaryID)
	for _, t := range []ElemType{CELAS1, CELAS2, CELAS3, CELAS4} {
		registerScalarPair(t)
	}
	for _, t := range []ElemType{CDAMP1, CDAMP2, CDAMP3, CDAMP4} {
		registerScalarPair(t)
	}
	Register("CGAP", FamElement, parseGap, writeGap, firstFieldPrimaryID)
	registerGenericLine(CWELD)
	registerGenericLine(CFAST)
	registerGenericLine(CVISC)
	Register("CSHEAR", FamElement, parseShear, writeShear, firstFieldPrimaryID)
	Register("PLOTEL", FamElement, parsePlotel, writePlotel, firstFieldPrimaryID)
	Register("CHBDYG", FamElement, parseHeatBoundary, writeHeatBoundary, firstFieldPrimaryID)
}

func nodesFromFields(c *field.Card, start, n int) ([]int, error) {
	nodes := make([]int, n)
	for i := 0; i < n; i++ {
		v, ok, err := field.ParseInt(c.At(start + i))
		if err != nil || !ok {
			return nil, chk.Err("bad or missing node id at field %d", start+i)
		}
		nodes[i] = v
	}
	return nodes, nil
}

// ---- shells: CTRIA3 id pid n1 n2 n3 theta/mcid ... ----

func registerShell(t ElemType) {
	name := string(t)
	n := NodeCount[t]
	Register(name, FamElement, func(c *field.Card) (Parsed, error) {
		e := &Element{Type: t}
		id, ok, err := field.ParseInt(c.At(0))
		if err != nil || !ok {
			return nil, chk.Err("%s: bad or missing id: %v", name, err)
		}
		e.ID = id
		pid, ok, err := field.ParseInt(c.At(1))
		if err == nil && ok {
			e.PID = pid
		} else {
			e.PID = id // PID defaults to EID when blank, a common Nastran shorthand
		}
		nodes, err := nodesFromFields(c, 2, n)
		if err != nil {
			return nil, chk.Err("%s %d: %v", name, id, err)
		}
		e.Nodes = nodes
		parseThetaMCID(c, 2+n, e)
		return e, nil
	}, func(p Parsed) (string, []string, error) {
		e, ok := p.(*Element)
		if !ok || e.Type != t {
			return "", nil, chk.Err("write%s: wrong type", name)
		}
		fields := append([]string{strconv.Itoa(e.ID), strconv.Itoa(e.PID)}, fmtIntList(e.Nodes)...)
		fields = append(fields, writeThetaMCID(e))
		return name, fields, nil
	}, firstFieldPrimaryID)
}

func parseThetaMCID(c *field.Card, idx int, e *Element) {
	raw := c.At(idx)
	if raw == "" {
		return
	}
	if iv, ok, err := field.ParseInt(raw); err == nil && ok {
		e.ThetaMCIDIsInt = true
		e.ThetaMCIDInt = iv
		return
	}
	if fv, ok, err := field.ParseFloat(raw); err == nil && ok {
		e.ThetaMCIDReal = fv
	}
}

func writeThetaMCID(e *Element) string {
	if e.ThetaMCIDIsInt {
		return fmtInt0(e.ThetaMCIDInt)
	}
	return fmtReal0(e.ThetaMCIDReal)
}

// ---- solids: CHEXA/CPENTA/CTETRA id pid n1..nN ----

func registerSolid(t ElemType) {
	name := string(t)
	n := NodeCount[t]
	Register(name, FamElement, func(c *field.Card) (Parsed, error) {
		e := &Element{Type: t}
		id, ok, err := field.ParseInt(c.At(0))
		if err != nil || !ok {
			return nil, chk.Err("%s: bad or missing id: %v", name, err)
		}
		e.ID = id
		pid, ok, err := field.ParseInt(c.At(1))
		if err == nil && ok {
			e.PID = pid
		}
		nodes, err := nodesFromFields(c, 2, n)
		if err != nil {
			return nil, chk.Err("%s %d: %v", name, id, err)
		}
		e.Nodes = nodes
		return e, nil
	}, func(p Parsed) (string, []string, error) {
		e, ok := p.(*Element)
		if !ok || e.Type != t {
			return "", nil, chk.Err("write%s: wrong type", name)
		}
		fields := append([]string{strconv.Itoa(e.ID), strconv.Itoa(e.PID)}, fmtIntList(e.Nodes)...)
		return name, fields, nil
	}, firstFieldPrimaryID)
}

// ---- bar/beam: id pid ga gb [g0|x1 x2 x3] [...] ----

func registerBarLike(t ElemType) {
	name := string(t)
	Register(name, FamElement, func(c *field.Card) (Parsed, error) {
		e := &Element{Type: t}
		id, ok, err := field.ParseInt(c.At(0))
		if err != nil || !ok {
			return nil, chk.Err("%s: bad or missing id: %v", name, err)
		}
		e.ID = id
		pid, ok, err := field.ParseInt(c.At(1))
		if err == nil && ok {
			e.PID = pid
		}
		nodes, err := nodesFromFields(c, 2, 2)
		if err != nil {
			return nil, chk.Err("%s %d: %v", name, id, err)
		}
		e.Nodes = nodes
		parseOrientation(c, 4, e)
		return e, nil
	}, func(p Parsed) (string, []string, error) {
		e, ok := p.(*Element)
		if !ok || e.Type != t {
			return "", nil, chk.Err("write%s: wrong type", name)
		}
		fields := append([]string{strconv.Itoa(e.ID), strconv.Itoa(e.PID)}, fmtIntList(e.Nodes)...)
		fields = append(fields, writeOrientation(e)...)
		return name, fields, nil
	}, firstFieldPrimaryID)
}

func parseOrientation(c *field.Card, idx int, e *Element) {
	raw := c.At(idx)
	if raw == "" {
		return
	}
	if iv, ok, err := field.ParseInt(raw); err == nil && ok {
		e.HasG0 = true
		e.G0 = iv
	} else {
		var v [3]float64
		any := false
		for i := 0; i < 3; i++ {
			fv, ok, err := field.ParseFloat(c.At(idx + i))
			if err == nil && ok {
				v[i] = fv
				any = true
			}
		}
		if any {
			e.HasOrient = true
			e.Orient = v
		}
	}
	if cid, ok, err := field.ParseInt(c.At(idx + 3)); err == nil && ok {
		e.OrientCID = cid
	}
}

func writeOrientation(e *Element) []string {
	if e.HasG0 {
		return []string{strconv.Itoa(e.G0), "", "", fmtInt0(e.OrientCID)}
	}
	if e.HasOrient {
		return []string{fmtReal(e.Orient[0]), fmtReal(e.Orient[1]), fmtReal(e.Orient[2]), fmtInt0(e.OrientCID)}
	}
	return []string{"", "", "", fmtInt0(e.OrientCID)}
}

// ---- CROD id pid n1 n2 ----

func parseRod(c *field.Card) (Parsed, error) {
	e := &Element{Type: CROD}
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("CROD: bad or missing id: %v", err)
	}
	e.ID = id
	if pid, ok, err := field.ParseInt(c.At(1)); err == nil && ok {
		e.PID = pid
	}
	nodes, err := nodesFromFields(c, 2, 2)
	if err != nil {
		return nil, chk.Err("CROD %d: %v", id, err)
	}
	e.Nodes = nodes
	return e, nil
}

func writeRod(p Parsed) (string, []string, error) {
	e, ok := p.(*Element)
	if !ok || e.Type != CROD {
		return "", nil, chk.Err("writeRod: wrong type")
	}
	fields := append([]string{strconv.Itoa(e.ID), strconv.Itoa(e.PID)}, fmtIntList(e.Nodes)...)
	return "CROD", fields, nil
}

// ---- CONROD id n1 n2 mid a [j c nsm] — no PID; carries MID directly ----

func parseConrod(c *field.Card) (Parsed, error) {
	e := &Element{Type: CONROD, Scalars: map[string]float64{}}
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("CONROD: bad or missing id: %v", err)
	}
	e.ID = id
	nodes, err := nodesFromFields(c, 1, 2)
	if err != nil {
		return nil, chk.Err("CONROD %d: %v", id, err)
	}
	e.Nodes = nodes
	if mid, ok, err := field.ParseInt(c.At(3)); err == nil && ok {
		e.MID = mid
	}
	for i, key := range []string{"A", "J", "C", "NSM"} {
		if v, ok, err := field.ParseFloat(c.At(4 + i)); err == nil && ok {
			e.Scalars[key] = v
		}
	}
	return e, nil
}

func writeConrod(p Parsed) (string, []string, error) {
	e, ok := p.(*Element)
	if !ok || e.Type != CONROD {
		return "", nil, chk.Err("writeConrod: wrong type")
	}
	fields := append([]string{strconv.Itoa(e.ID)}, fmtIntList(e.Nodes)...)
	fields = append(fields, strconv.Itoa(e.MID))
	for _, key := range []string{"A", "J", "C", "NSM"} {
		fields = append(fields, fmtReal0(e.Scalars[key]))
	}
	return "CONROD", fields, nil
}

// ---- CBUSH id pid ga gb [g0|x1 x2 x3] cid ----

func parseBush(c *field.Card) (Parsed, error) {
	e := &Element{Type: CBUSH}
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("CBUSH: bad or missing id: %v", err)
	}
	e.ID = id
	if pid, ok, err := field.ParseInt(c.At(1)); err == nil && ok {
		e.PID = pid
	}
	nodes, err := nodesFromFields(c, 2, 2)
	if err != nil {
		return nil, chk.Err("CBUSH %d: %v", id, err)
	}
	e.Nodes = nodes
	parseOrientation(c, 4, e)
	return e, nil
}

func writeBush(p Parsed) (string, []string, error) {
	e, ok := p.(*Element)
	if !ok || e.Type != CBUSH {
		return "", nil, chk.Err("writeBush: wrong type")
	}
	fields := append([]string{strconv.Itoa(e.ID), strconv.Itoa(e.PID)}, fmtIntList(e.Nodes)...)
	fields = append(fields, writeOrientation(e)...)
	return "CBUSH", fields, nil
}

// ---- scalar springs/dampers: CELASn/CDAMPn id (pid|k) n1 c1 n2 c2 ----
// CELAS1/CDAMP1 reference a property; CELAS2/CDAMP2 carry the scalar
// directly; CELAS3/4 and CDAMP3/4 reference scalar points instead of
// dof-coded grid/component pairs. All four variants are kept on one
// Element struct, discriminated by Type, with the scalar bag absorbing
// the per-variant differences.

func registerScalarPair(t ElemType) {
	name := string(t)
	Register(name, FamElement, func(c *field.Card) (Parsed, error) {
		e := &Element{Type: t, Scalars: map[string]float64{}}
		id, ok, err := field.ParseInt(c.At(0))
		if err != nil || !ok {
			return nil, chk.Err("%s: bad or missing id: %v", name, err)
		}
		e.ID = id
		switch t {
		case CELAS2, CDAMP2:
			// id k n1 c1 n2 c2 ge s -- scalar value in field 1, no PID
			if v, ok, err := field.ParseFloat(c.At(1)); err == nil && ok {
				e.Scalars["K"] = v
			}
			if n1, ok, err := field.ParseInt(c.At(2)); err == nil && ok {
				e.Nodes = append(e.Nodes, n1)
			}
			if n2, ok, err := field.ParseInt(c.At(4)); err == nil && ok {
				e.Nodes = append(e.Nodes, n2)
			}
		case CELAS3, CELAS4, CDAMP3, CDAMP4:
			// id pid s1 s2 -- scalar points, no component fields
			if pid, ok, err := field.ParseInt(c.At(1)); err == nil && ok {
				e.PID = pid
			}
			if s1, ok, err := field.ParseInt(c.At(2)); err == nil && ok {
				e.Nodes = append(e.Nodes, s1)
			}
			if s2, ok, err := field.ParseInt(c.At(3)); err == nil && ok {
				e.Nodes = append(e.Nodes, s2)
			}
		default:
			// CELAS1/CDAMP1: id pid n1 c1 n2 c2
			if pid, ok, err := field.ParseInt(c.At(1)); err == nil && ok {
				e.PID = pid
			}
			if n1, ok, err := field.ParseInt(c.At(2)); err == nil && ok {
				e.Nodes = append(e.Nodes, n1)
			}
			if n2, ok, err := field.ParseInt(c.At(4)); err == nil && ok {
				e.Nodes = append(e.Nodes, n2)
			}
		}
		return e, nil
	}, func(p Parsed) (string, []string, error) {
		e, ok := p.(*Element)
		if !ok || e.Type != t {
			return "", nil, chk.Err("write%s: wrong type", name)
		}
		n1, n2 := 0, 0
		if len(e.Nodes) > 0 {
			n1 = e.Nodes[0]
		}
		if len(e.Nodes) > 1 {
			n2 = e.Nodes[1]
		}
		var fields []string
		switch t {
		case CELAS2, CDAMP2:
			fields = []string{strconv.Itoa(e.ID), fmtReal(e.Scalars["K"]), fmtInt0(n1), "", fmtInt0(n2), ""}
		case CELAS3, CELAS4, CDAMP3, CDAMP4:
			fields = []string{strconv.Itoa(e.ID), strconv.Itoa(e.PID), fmtInt0(n1), fmtInt0(n2)}
		default:
			fields = []string{strconv.Itoa(e.ID), strconv.Itoa(e.PID), fmtInt0(n1), "", fmtInt0(n2), ""}
		}
		return name, fields, nil
	}, firstFieldPrimaryID)
}

// ---- CGAP id pid ga gb [g0|x1 x2 x3] cid ----

func parseGap(c *field.Card) (Parsed, error) {
	e := &Element{Type: CGAP}
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("CGAP: bad or missing id: %v", err)
	}
	e.ID = id
	if pid, ok, err := field.ParseInt(c.At(1)); err == nil && ok {
		e.PID = pid
	}
	nodes, err := nodesFromFields(c, 2, 2)
	if err != nil {
		return nil, chk.Err("CGAP %d: %v", id, err)
	}
	e.Nodes = nodes
	parseOrientation(c, 4, e)
	return e, nil
}

func writeGap(p Parsed) (string, []string, error) {
	e, ok := p.(*Element)
	if !ok || e.Type != CGAP {
		return "", nil, chk.Err("writeGap: wrong type")
	}
	fields := append([]string{strconv.Itoa(e.ID), strconv.Itoa(e.PID)}, fmtIntList(e.Nodes)...)
	fields = append(fields, writeOrientation(e)...)
	return "CGAP", fields, nil
}

// ---- CWELD/CFAST/CVISC: id pid n1 n2 [...] — shape close enough to
// CROD that one generic two-node-plus-property parser covers all three.

func registerGenericLine(t ElemType) {
	name := string(t)
	Register(name, FamElement, func(c *field.Card) (Parsed, error) {
		e := &Element{Type: t}
		id, ok, err := field.ParseInt(c.At(0))
		if err != nil || !ok {
			return nil, chk.Err("%s: bad or missing id: %v", name, err)
		}
		e.ID = id
		if pid, ok, err := field.ParseInt(c.At(1)); err == nil && ok {
			e.PID = pid
		}
		nodes, err := nodesFromFields(c, 2, 2)
		if err != nil {
			return nil, chk.Err("%s %d: %v", name, id, err)
		}
		e.Nodes = nodes
		return e, nil
	}, func(p Parsed) (string, []string, error) {
		e, ok := p.(*Element)
		if !ok || e.Type != t {
			return "", nil, chk.Err("write%s: wrong type", name)
		}
		fields := append([]string{strconv.Itoa(e.ID), strconv.Itoa(e.PID)}, fmtIntList(e.Nodes)...)
		return name, fields, nil
	}, firstFieldPrimaryID)
}

// ---- CSHEAR id pid n1 n2 n3 n4 ----

func parseShear(c *field.Card) (Parsed, error) {
	e := &Element{Type: CSHEAR}
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("CSHEAR: bad or missing id: %v", err)
	}
	e.ID = id
	if pid, ok, err := field.ParseInt(c.At(1)); err == nil && ok {
		e.PID = pid
	}
	nodes, err := nodesFromFields(c, 2, 4)
	if err != nil {
		return nil, chk.Err("CSHEAR %d: %v", id, err)
	}
	e.Nodes = nodes
	return e, nil
}

func writeShear(p Parsed) (string, []string, error) {
	e, ok := p.(*Element)
	if !ok || e.Type != CSHEAR {
		return "", nil, chk.Err("writeShear: wrong type")
	}
	fields := append([]string{strconv.Itoa(e.ID), strconv.Itoa(e.PID)}, fmtIntList(e.Nodes)...)
	return "CSHEAR", fields, nil
}

// ---- PLOTEL id n1 n2 — no property/material, display-only connectivity ----

func parsePlotel(c *field.Card) (Parsed, error) {
	e := &Element{Type: PLOTEL}
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("PLOTEL: bad or missing id: %v", err)
	}
	e.ID = id
	nodes, err := nodesFromFields(c, 1, 2)
	if err != nil {
		return nil, chk.Err("PLOTEL %d: %v", id, err)
	}
	e.Nodes = nodes
	return e, nil
}

func writePlotel(p Parsed) (string, []string, error) {
	e, ok := p.(*Element)
	if !ok || e.Type != PLOTEL {
		return "", nil, chk.Err("writePlotel: wrong type")
	}
	fields := append([]string{strconv.Itoa(e.ID)}, fmtIntList(e.Nodes)...)
	return "PLOTEL", fields, nil
}

// ---- CHBDYG id eid2 type n1..n4 — a heat-boundary surface element ----

func parseHeatBoundary(c *field.Card) (Parsed, error) {
	e := &Element{Type: CHBDYG, Scalars: map[string]float64{}}
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("CHBDYG: bad or missing id: %v", err)
	}
	e.ID = id
	nodes, err := nodesFromFields(c, 3, 4)
	if err != nil {
		return nil, chk.Err("CHBDYG %d: %v", id, err)
	}
	e.Nodes = nodes
	return e, nil
}

func writeHeatBoundary(p Parsed) (string, []string, error) {
	e, ok := p.(*Element)
	if !ok || e.Type != CHBDYG {
		return "", nil, chk.Err("writeHeatBoundary: wrong type")
	}
	fields := []string{strconv.Itoa(e.ID), "", "AREA3"}
	fields = append(fields, fmtIntList(e.Nodes)...)
	return "CHBDYG", fields, nil
}
