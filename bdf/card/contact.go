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
	Register("BSURF", FamContact, parseContactSurface, writeContactSurface("BSURF"), firstFieldPrimaryID)
	Register("BSURFS", FamContact, parseContactSurface, writeContactSurface("BSURFS"), firstFieldPrimaryID)
	Register("BCTSET", FamContact, parseContactPair("BCTSET"), writeContactPair, firstFieldPrimaryID)
	Register("BCTADD", FamContact, parseContactPair("BCTADD"), writeContactPair, firstFieldPrimaryID)
	Register("BCONP", FamContact, parseContactPair("BCONP"), writeContactPair, firstFieldPrimaryID)
	Register("BCBODY", FamContact, parseContactPair("BCBODY"), writeContactPair, firstFieldPrimaryID)
	Register("BCTPARA", FamContact, parseContactPair("BCTPARA"), writeContactPair, firstFieldPrimaryID)
	Register("BCTPARM", FamContact, parseContactPair("BCTPARM"), writeContactPair, firstFieldPrimaryID)
	Register("BLSEG", FamContact, parseContactSurface, writeContactSurface("BLSEG"), firstFieldPrimaryID)
	Register("BFRIC", FamContact, parseContactPair("BFRIC"), writeContactPair, firstFieldPrimaryID)
}

// BSURF/BSURFS/BLSEG id eid1 eid2 ...
func parseContactSurface(c *field.Card) (Parsed, error) {
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("contact surface: bad or missing id: %v", err)
	}
	s := &ContactSurface{ID: id}
	for i := 1; i < len(c.Fields); i++ {
		if v, ok, err := field.ParseInt(c.At(i)); err == nil && ok {
			s.ElemIDs = append(s.ElemIDs, v)
		}
	}
	return s, nil
}

func writeContactSurface(name string) WriteFunc {
	return func(p Parsed) (string, []string, error) {
		s, ok := p.(*ContactSurface)
		if !ok {
			return "", nil, chk.Err("write%s: wrong type", name)
		}
		fields := append([]string{strconv.Itoa(s.ID)}, fmtIntList(s.ElemIDs)...)
		return name, fields, nil
	}
}

// BCTSET/BCTADD/BCONP/BCBODY/BCTPARA/BCTPARM/BFRIC id surfA surfB friction
func parseContactPair(name string) ParseFunc {
	return func(c *field.Card) (Parsed, error) {
		id, ok, err := field.ParseInt(c.At(0))
		if err != nil || !ok {
			return nil, chk.Err("%s: bad or missing id: %v", name, err)
		}
		p := &ContactPair{ID: id, Kind: name}
		p.SurfA, _, _ = field.ParseInt(c.At(1))
		p.SurfB, _, _ = field.ParseInt(c.At(2))
		p.Friction, _, _ = field.ParseFloat(c.At(3))
		return p, nil
	}
}

func writeContactPair(p Parsed) (string, []string, error) {
	pr, ok := p.(*ContactPair)
	if !ok {
		return "", nil, chk.Err("writeContactPair: wrong type")
	}
	return pr.Kind, []string{
		strconv.Itoa(pr.ID), fmtInt0(pr.SurfA), fmtInt0(pr.SurfB), fmtReal0(pr.Friction),
	}, nil
}
