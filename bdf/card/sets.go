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
	Register("SET1", FamSet, parseSet("SET1"), writeSet, firstFieldPrimaryID)
	Register("SET3", FamSet, parseSet("SET3"), writeSet, firstFieldPrimaryID)
}

// SET1 sid id1 id2 ... (or "THRU")
// SET3 sid desc id1 id2 ...
func parseSet(name string) ParseFunc {
	return func(c *field.Card) (Parsed, error) {
		sid, ok, err := field.ParseInt(c.At(0))
		if err != nil || !ok {
			return nil, chk.Err("%s: bad or missing set id: %v", name, err)
		}
		s := &Set{ID: sid, Kind: name}
		start := 1
		if name == "SET3" {
			start = 2 // skip the descriptor field (GRID/ELEM/...)
		}
		for i := start; i < len(c.Fields); i++ {
			if v, ok, err := field.ParseInt(c.At(i)); err == nil && ok {
				s.IDs = append(s.IDs, v)
			}
		}
		return s, nil
	}
}

func writeSet(p Parsed) (string, []string, error) {
	s, ok := p.(*Set)
	if !ok {
		return "", nil, chk.Err("writeSet: wrong type")
	}
	fields := []string{strconv.Itoa(s.ID)}
	if s.Kind == "SET3" {
		fields = append(fields, "GRID")
	}
	fields = append(fields, fmtIntList(s.IDs)...)
	return s.Kind, fields, nil
}
