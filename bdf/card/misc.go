// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package card

import (
	"strconv"
	"strings"

	"github.com/cpmech/bdf/bdf/field"
	"github.com/cpmech/gosl/chk"
)

func init() {
	Register("EIGR", FamMethod, parseMethod("EIGR"), writeMethod, firstFieldPrimaryID)
	Register("EIGRL", FamMethod, parseMethod("EIGRL"), writeMethod, firstFieldPrimaryID)
	Register("TABLED1", FamTable, parseTable("TABLED1"), writeTable, firstFieldPrimaryID)
	Register("TABLEM1", FamTable, parseTable("TABLEM1"), writeTable, firstFieldPrimaryID)
	Register("PARAM", FamParam, parseParam, writeParam, paramPrimaryID)
}

// EIGR sid method f1 f2 ne nd norm g c
// EIGRL sid v1 v2 nd msglvl maxset shfscl norm
func parseMethod(name string) ParseFunc {
	return func(c *field.Card) (Parsed, error) {
		id, ok, err := field.ParseInt(c.At(0))
		if err != nil || !ok {
			return nil, chk.Err("%s: bad or missing set id: %v", name, err)
		}
		m := &Method{ID: id, Kind: name, Params: map[string]float64{}}
		keys := []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8"}
		start := 1 // EIGRL: v1 is field 1
		if name == "EIGR" {
			m.Params["METHOD_STR"] = 0 // method string lives in field 1 untyped; skip to numeric fields
			start = 2
		}
		for i, key := range keys {
			if v, ok, err := field.ParseFloat(c.At(start + i)); err == nil && ok {
				m.Params[key] = v
			}
		}
		return m, nil
	}
}

func writeMethod(p Parsed) (string, []string, error) {
	m, ok := p.(*Method)
	if !ok {
		return "", nil, chk.Err("writeMethod: wrong type")
	}
	fields := []string{strconv.Itoa(m.ID)}
	if m.Kind == "EIGR" {
		fields = append(fields, "") // untyped method-string slot
	}
	for _, key := range []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8"} {
		fields = append(fields, fmtReal0(m.Params[key]))
	}
	return m.Kind, fields, nil
}

// TABLED1/TABLEM1 tid x1 y1 x2 y2 ... "ENDT"
func parseTable(name string) ParseFunc {
	return func(c *field.Card) (Parsed, error) {
		id, ok, err := field.ParseInt(c.At(0))
		if err != nil || !ok {
			return nil, chk.Err("%s: bad or missing table id: %v", name, err)
		}
		t := &Table{ID: id, Kind: name}
		for i := 2; i+1 < len(c.Fields); i += 2 {
			if strings.EqualFold(strings.TrimSpace(c.At(i)), "ENDT") {
				break
			}
			x, ok, err := field.ParseFloat(c.At(i))
			if err != nil || !ok {
				break
			}
			y, ok, err := field.ParseFloat(c.At(i + 1))
			if err != nil || !ok {
				break
			}
			t.X = append(t.X, x)
			t.Y = append(t.Y, y)
		}
		return t, nil
	}
}

func writeTable(p Parsed) (string, []string, error) {
	t, ok := p.(*Table)
	if !ok {
		return "", nil, chk.Err("writeTable: wrong type")
	}
	fields := []string{strconv.Itoa(t.ID), ""}
	for i := range t.X {
		fields = append(fields, fmtReal(t.X[i]), fmtReal(t.Y[i]))
	}
	fields = append(fields, "ENDT")
	return t.Kind, fields, nil
}

// PARAM name v1 v2 — a name plus one or two values kept as raw text since
// the value's type (int, real, or string) depends on the param name.
func parseParam(c *field.Card) (Parsed, error) {
	name := strings.TrimSpace(c.At(0))
	if name == "" {
		return nil, chk.Err("PARAM: missing name")
	}
	p := &Param{Name: name}
	for i := 1; i < len(c.Fields); i++ {
		if v := strings.TrimSpace(c.At(i)); v != "" {
			p.Values = append(p.Values, v)
		}
	}
	return p, nil
}

func writeParam(p Parsed) (string, []string, error) {
	pr, ok := p.(*Param)
	if !ok {
		return "", nil, chk.Err("writeParam: wrong type")
	}
	fields := append([]string{pr.Name}, pr.Values...)
	return "PARAM", fields, nil
}

// paramPrimaryID: PARAM has no numeric id; the model store keys it by
// name, so the registry's int-id slot always reports not-ok for it and
// callers (C3, C4) fall back to the name-keyed bucket.
func paramPrimaryID(c *field.Card) (int, bool) {
	return 0, false
}

// ----------------------------------------------------------------------
// Case control (§3 Case-control item, §9 design note)
// ----------------------------------------------------------------------

// ParseCaseControlLine recognizes a "KEYWORD = VALUE" or
// "KEYWORD(OPT) = VALUE" case-control line and extracts an integer id
// reference when present, leaving Raw as the untouched original text for
// lines the writer must reproduce verbatim (titles, SUBCASE headers,
// output-request flags with no id). This is a small hand-rolled
// finite-state scan rather than a registry entry: case-control syntax
// has no card name/field-width structure for the C2 lexer to key on.
func ParseCaseControlLine(line string) CaseControlItem {
	trimmed := strings.TrimSpace(line)
	item := CaseControlItem{Raw: line}
	eq := strings.IndexByte(trimmed, '=')
	if eq < 0 {
		return item
	}
	lhs := strings.TrimSpace(trimmed[:eq])
	rhs := strings.TrimSpace(trimmed[eq+1:])
	kw := lhs
	opt := ""
	if o := strings.IndexByte(lhs, '('); o >= 0 && strings.HasSuffix(lhs, ")") {
		kw = strings.TrimSpace(lhs[:o])
		opt = strings.TrimSpace(lhs[o+1 : len(lhs)-1])
	}
	item.Keyword = strings.ToUpper(kw)
	item.Opt = opt
	if v, err := strconv.Atoi(rhs); err == nil {
		item.Value = v
	}
	return item
}

// WriteCaseControlLine renders a CaseControlItem back to text. When the
// item carries no recognized keyword (Raw-only passthrough), Raw wins.
func WriteCaseControlLine(item CaseControlItem) string {
	if item.Keyword == "" {
		return item.Raw
	}
	kw := item.Keyword
	if item.Opt != "" {
		kw = kw + "(" + item.Opt + ")"
	}
	return kw + " = " + strconv.Itoa(item.Value)
}
