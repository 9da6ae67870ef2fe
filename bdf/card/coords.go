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
	Register("CORD1R", FamCoord, parseCord1(CoordRectangular), writeCord1("CORD1R"), firstFieldPrimaryID)
	Register("CORD1C", FamCoord, parseCord1(CoordCylindrical), writeCord1("CORD1C"), firstFieldPrimaryID)
	Register("CORD1S", FamCoord, parseCord1(CoordSpherical), writeCord1("CORD1S"), firstFieldPrimaryID)
	Register("CORD2R", FamCoord, parseCord2(CoordRectangular), writeCord2("CORD2R"), firstFieldPrimaryID)
	Register("CORD2C", FamCoord, parseCord2(CoordCylindrical), writeCord2("CORD2C"), firstFieldPrimaryID)
	Register("CORD2S", FamCoord, parseCord2(CoordSpherical), writeCord2("CORD2S"), firstFieldPrimaryID)
}

// CORD1x cid g1 g2 g3
func parseCord1(kind CoordKind) ParseFunc {
	return func(c *field.Card) (Parsed, error) {
		id, ok, err := field.ParseInt(c.At(0))
		if err != nil || !ok {
			return nil, chk.Err("CORD1x: bad or missing id: %v", err)
		}
		cs := &CoordSys{ID: id, Kind: kind}
		cs.G1, _, _ = field.ParseInt(c.At(1))
		cs.G2, _, _ = field.ParseInt(c.At(2))
		cs.G3, _, _ = field.ParseInt(c.At(3))
		return cs, nil
	}
}

func writeCord1(name string) WriteFunc {
	return func(p Parsed) (string, []string, error) {
		cs, ok := p.(*CoordSys)
		if !ok {
			return "", nil, chk.Err("write%s: wrong type", name)
		}
		return name, []string{strconv.Itoa(cs.ID), strconv.Itoa(cs.G1), strconv.Itoa(cs.G2), strconv.Itoa(cs.G3)}, nil
	}
}

// CORD2x cid rid a1 a2 a3 b1 b2 b3 c1 c2 c3
func parseCord2(kind CoordKind) ParseFunc {
	return func(c *field.Card) (Parsed, error) {
		id, ok, err := field.ParseInt(c.At(0))
		if err != nil || !ok {
			return nil, chk.Err("CORD2x: bad or missing id: %v", err)
		}
		cs := &CoordSys{ID: id, Kind: kind, Type2: true}
		cs.RID, _, _ = field.ParseInt(c.At(1))
		for i := 0; i < 3; i++ {
			cs.A[i], _, _ = field.ParseFloat(c.At(2 + i))
			cs.B[i], _, _ = field.ParseFloat(c.At(5 + i))
			cs.C[i], _, _ = field.ParseFloat(c.At(8 + i))
		}
		return cs, nil
	}
}

func writeCord2(name string) WriteFunc {
	return func(p Parsed) (string, []string, error) {
		cs, ok := p.(*CoordSys)
		if !ok {
			return "", nil, chk.Err("write%s: wrong type", name)
		}
		fields := []string{strconv.Itoa(cs.ID), fmtInt0(cs.RID)}
		for _, pt := range [][3]float64{cs.A, cs.B, cs.C} {
			fields = append(fields, fmtReal(pt[0]), fmtReal(pt[1]), fmtReal(pt[2]))
		}
		return name, fields, nil
	}
}
