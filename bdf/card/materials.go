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
	Register("MAT1", FamMaterial, parseMat1, writeMat1, firstFieldPrimaryID)
	Register("MAT2", FamMaterial, parseMat2, writeMat2, firstFieldPrimaryID)
	Register("MAT8", FamMaterial, parseMat8, writeMat8, firstFieldPrimaryID)
	Register("MAT9", FamMaterial, parseMat9, writeMat9, firstFieldPrimaryID)
	Register("MAT10", FamMaterial, parseMat10, writeMat10, firstFieldPrimaryID)
}

// MAT1 mid E G nu rho a tref ge st sc ss
func parseMat1(c *field.Card) (Parsed, error) {
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("MAT1: bad or missing id: %v", err)
	}
	m := &Material{ID: id, Kind: MatIsotropic}
	m.E, _, _ = field.ParseFloat(c.At(1))
	m.G, _, _ = field.ParseFloat(c.At(2))
	m.Nu, _, _ = field.ParseFloat(c.At(3))
	m.Rho, _, _ = field.ParseFloat(c.At(4))
	m.Alpha, _, _ = field.ParseFloat(c.At(5))
	m.Tref, _, _ = field.ParseFloat(c.At(6))
	m.GE, _, _ = field.ParseFloat(c.At(7))
	return m, nil
}

func writeMat1(p Parsed) (string, []string, error) {
	m, ok := p.(*Material)
	if !ok || m.Kind != MatIsotropic {
		return "", nil, chk.Err("writeMat1: wrong type")
	}
	return "MAT1", []string{
		strconv.Itoa(m.ID), fmtReal0(m.E), fmtReal0(m.G), fmtReal0(m.Nu),
		fmtReal0(m.Rho), fmtReal0(m.Alpha), fmtReal0(m.Tref), fmtReal0(m.GE),
	}, nil
}

// MAT2: anisotropic-2d (shell-plane) stiffness terms, reuses the
// orthotropic-2d bucket per §3's family grouping.
func parseMat2(c *field.Card) (Parsed, error) {
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("MAT2: bad or missing id: %v", err)
	}
	m := &Material{ID: id, Kind: MatOrtho2D, Extra: map[string]float64{}}
	for i, key := range []string{"G11", "G12", "G13", "G22", "G23", "G33", "RHO"} {
		if v, ok, err := field.ParseFloat(c.At(1 + i)); err == nil && ok {
			m.Extra[key] = v
		}
	}
	return m, nil
}

func writeMat2(p Parsed) (string, []string, error) {
	m, ok := p.(*Material)
	if !ok || m.Kind != MatOrtho2D {
		return "", nil, chk.Err("writeMat2: wrong type")
	}
	fields := []string{strconv.Itoa(m.ID)}
	for _, key := range []string{"G11", "G12", "G13", "G22", "G23", "G33", "RHO"} {
		fields = append(fields, fmtReal0(m.Extra[key]))
	}
	return "MAT2", fields, nil
}

// MAT8 mid E1 E2 nu12 G12 G1z G2z rho a1 a2 tref xt xc yt yc s
func parseMat8(c *field.Card) (Parsed, error) {
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("MAT8: bad or missing id: %v", err)
	}
	m := &Material{ID: id, Kind: MatOrtho2D}
	m.E1, _, _ = field.ParseFloat(c.At(1))
	m.E2, _, _ = field.ParseFloat(c.At(2))
	m.Nu12, _, _ = field.ParseFloat(c.At(3))
	m.G12, _, _ = field.ParseFloat(c.At(4))
	m.G1Z, _, _ = field.ParseFloat(c.At(5))
	m.G2Z, _, _ = field.ParseFloat(c.At(6))
	m.Rho, _, _ = field.ParseFloat(c.At(7))
	m.Xt, _, _ = field.ParseFloat(c.At(11))
	m.Xc, _, _ = field.ParseFloat(c.At(12))
	m.Yt, _, _ = field.ParseFloat(c.At(13))
	m.Yc, _, _ = field.ParseFloat(c.At(14))
	m.S, _, _ = field.ParseFloat(c.At(15))
	return m, nil
}

func writeMat8(p Parsed) (string, []string, error) {
	m, ok := p.(*Material)
	if !ok || m.Kind != MatOrtho2D {
		return "", nil, chk.Err("writeMat8: wrong type")
	}
	return "MAT8", []string{
		strconv.Itoa(m.ID), fmtReal0(m.E1), fmtReal0(m.E2), fmtReal0(m.Nu12),
		fmtReal0(m.G12), fmtReal0(m.G1Z), fmtReal0(m.G2Z), fmtReal0(m.Rho),
		"", "", "", fmtReal0(m.Xt), fmtReal0(m.Xc), fmtReal0(m.Yt), fmtReal0(m.Yc), fmtReal0(m.S),
	}, nil
}

// MAT9 mid g11 g12 ... g66 (21 upper-triangle terms) rho
func parseMat9(c *field.Card) (Parsed, error) {
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("MAT9: bad or missing id: %v", err)
	}
	m := &Material{ID: id, Kind: MatAniso3D}
	for i := 0; i < 21; i++ {
		if v, ok, err := field.ParseFloat(c.At(1 + i)); err == nil && ok {
			m.C[i] = v
		}
	}
	m.Rho, _, _ = field.ParseFloat(c.At(22))
	return m, nil
}

func writeMat9(p Parsed) (string, []string, error) {
	m, ok := p.(*Material)
	if !ok || m.Kind != MatAniso3D {
		return "", nil, chk.Err("writeMat9: wrong type")
	}
	fields := []string{strconv.Itoa(m.ID)}
	for _, v := range m.C {
		fields = append(fields, fmtReal0(v))
	}
	fields = append(fields, fmtReal0(m.Rho))
	return "MAT9", fields, nil
}

// MAT10 mid bulk rho c ge (fluid / hyperelastic-adjacent)
func parseMat10(c *field.Card) (Parsed, error) {
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("MAT10: bad or missing id: %v", err)
	}
	m := &Material{ID: id, Kind: MatHyperelastic, Extra: map[string]float64{}}
	for i, key := range []string{"BULK", "RHO", "C", "GE"} {
		if v, ok, err := field.ParseFloat(c.At(1 + i)); err == nil && ok {
			m.Extra[key] = v
		}
	}
	return m, nil
}

func writeMat10(p Parsed) (string, []string, error) {
	m, ok := p.(*Material)
	if !ok || m.Kind != MatHyperelastic {
		return "", nil, chk.Err("writeMat10: wrong type")
	}
	fields := []string{strconv.Itoa(m.ID)}
	for _, key := range []string{"BULK", "RHO", "C", "GE"} {
		fields = append(fields, fmtReal0(m.Extra[key]))
	}
	return "MAT10", fields, nil
}
