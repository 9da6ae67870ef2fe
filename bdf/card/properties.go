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
	Register("PSHELL", FamProperty, parsePShell, writePShell, firstFieldPrimaryID)
	Register("PCOMP", FamProperty, parsePComp, writePComp, firstFieldPrimaryID)
	Register("PCOMPG", FamProperty, parsePComp, writePComp, firstFieldPrimaryID)
	Register("PSOLID", FamProperty, parsePSolid, writePSolid, firstFieldPrimaryID)
	Register("PLSOLID", FamProperty, parsePSolid, writePSolid, firstFieldPrimaryID)
	Register("PBAR", FamProperty, parseBarSection(PropBar), writeBarSection(PropBar), firstFieldPrimaryID)
	Register("PBARL", FamProperty, parseBarSection(PropBar), writeBarSection(PropBar), firstFieldPrimaryID)
	Register("PBEAM", FamProperty, parseBarSection(PropBeam), writeBarSection(PropBeam), firstFieldPrimaryID)
	Register("PBEAML", FamProperty, parseBarSection(PropBeam), writeBarSection(PropBeam), firstFieldPrimaryID)
	Register("PROD", FamProperty, parseBarSection(PropRod), writeBarSection(PropRod), firstFieldPrimaryID)
	Register("PBUSH", FamProperty, parseScalarProp(PropBush, []string{"K1", "K2", "K3", "K4", "K5", "K6"}), writeScalarProp(PropBush, "PBUSH", []string{"K1", "K2", "K3", "K4", "K5", "K6"}), firstFieldPrimaryID)
	Register("PBUSHT", FamProperty, parseScalarProp(PropBush, []string{"TKID1", "TKID2", "TKID3", "TKID4", "TKID5", "TKID6"}), writeScalarProp(PropBush, "PBUSHT", []string{"TKID1", "TKID2", "TKID3", "TKID4", "TKID5", "TKID6"}), firstFieldPrimaryID)
	Register("PELAS", FamProperty, parseScalarProp(PropElas, []string{"K", "GE", "S"}), writeScalarProp(PropElas, "PELAS", []string{"K", "GE", "S"}), firstFieldPrimaryID)
	Register("PDAMP", FamProperty, parseScalarProp(PropDamp, []string{"B"}), writeScalarProp(PropDamp, "PDAMP", []string{"B"}), firstFieldPrimaryID)
	Register("PGAP", FamProperty, parseScalarProp(PropGap, []string{"U0", "F0", "KA", "KB", "KT", "MU1", "MU2"}), writeScalarProp(PropGap, "PGAP", []string{"U0", "F0", "KA", "KB", "KT", "MU1", "MU2"}), firstFieldPrimaryID)
	Register("PSHEAR", FamProperty, func(c *field.Card) (Parsed, error) {
		return parsePropWithMID(c, PropShear)
	}, writePropWithMID(PropShear, "PSHEAR"), firstFieldPrimaryID)
	Register("PWELD", FamProperty, parseScalarProp(PropWeld, []string{"D"}), writeScalarProp(PropWeld, "PWELD", []string{"D"}), firstFieldPrimaryID)
	Register("PFAST", FamProperty, parseScalarProp(PropFast, []string{"D", "KT1", "KT2", "KT3"}), writeScalarProp(PropFast, "PFAST", []string{"D", "KT1", "KT2", "KT3"}), firstFieldPrimaryID)
	Register("PVISC", FamProperty, parseScalarProp(PropVisc, []string{"CE1", "CE2"}), writeScalarProp(PropVisc, "PVISC", []string{"CE1", "CE2"}), firstFieldPrimaryID)
}

// PSHELL pid mid1 t mid2 12i/t3 mid3 tst/t nsm z1 z2 mid4
func parsePShell(c *field.Card) (Parsed, error) {
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("PSHELL: bad or missing id: %v", err)
	}
	p := &Property{ID: id, Kind: PropShell}
	if mid1, ok, err := field.ParseInt(c.At(1)); err == nil && ok {
		p.MIDs = append(p.MIDs, mid1)
	}
	if t, ok, err := field.ParseFloat(c.At(2)); err == nil && ok {
		p.Thickness = t
	}
	if mid2, ok, err := field.ParseInt(c.At(3)); err == nil && ok {
		p.MIDs = append(p.MIDs, mid2)
	}
	if mid3, ok, err := field.ParseInt(c.At(5)); err == nil && ok {
		p.MIDs = append(p.MIDs, mid3)
	}
	if nsm, ok, err := field.ParseFloat(c.At(7)); err == nil && ok {
		p.NSM = nsm
	}
	if z1, ok, err := field.ParseFloat(c.At(8)); err == nil && ok {
		p.Offsets[0] = z1
	}
	if z2, ok, err := field.ParseFloat(c.At(9)); err == nil && ok {
		p.Offsets[1] = z2
	}
	if mid4, ok, err := field.ParseInt(c.At(10)); err == nil && ok {
		p.MIDs = append(p.MIDs, mid4)
	}
	return p, nil
}

func writePShell(p Parsed) (string, []string, error) {
	pr, ok := p.(*Property)
	if !ok || pr.Kind != PropShell {
		return "", nil, chk.Err("writePShell: wrong type")
	}
	mid := func(i int) string {
		if i < len(pr.MIDs) {
			return strconv.Itoa(pr.MIDs[i])
		}
		return ""
	}
	fields := []string{
		strconv.Itoa(pr.ID), mid(0), fmtReal(pr.Thickness), mid(1), "",
		mid(2), "", fmtReal0(pr.NSM), fmtReal0(pr.Offsets[0]), fmtReal0(pr.Offsets[1]), mid(3),
	}
	return "PSHELL", fields, nil
}

// PCOMP/PCOMPG pid z0 nsm sb ft tref ge lam  mid1 t1 theta1 sout1 ...
func parsePComp(c *field.Card) (Parsed, error) {
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("PCOMP: bad or missing id: %v", err)
	}
	p := &Property{ID: id, Kind: PropComposite}
	if nsm, ok, err := field.ParseFloat(c.At(2)); err == nil && ok {
		p.NSM = nsm
	}
	i := 8
	for i+2 < len(c.Fields) {
		mid, ok, err := field.ParseInt(c.At(i))
		if err != nil || !ok {
			break
		}
		t, _, _ := field.ParseFloat(c.At(i + 1))
		theta, _, _ := field.ParseFloat(c.At(i + 2))
		sout := c.At(i+3) == "YES"
		p.Plies = append(p.Plies, Ply{MID: mid, Thickness: t, Theta: theta, SOut: sout})
		i += 4
	}
	return p, nil
}

func writePComp(p Parsed) (string, []string, error) {
	pr, ok := p.(*Property)
	if !ok || pr.Kind != PropComposite {
		return "", nil, chk.Err("writePComp: wrong type")
	}
	fields := []string{strconv.Itoa(pr.ID), "", fmtReal0(pr.NSM), "", "", "", "", ""}
	for _, ply := range pr.Plies {
		sout := "NO"
		if ply.SOut {
			sout = "YES"
		}
		fields = append(fields, strconv.Itoa(ply.MID), fmtReal(ply.Thickness), fmtReal(ply.Theta), sout)
	}
	return "PCOMP", fields, nil
}

// PSOLID/PLSOLID pid mid cordm
func parsePSolid(c *field.Card) (Parsed, error) {
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("PSOLID: bad or missing id: %v", err)
	}
	p := &Property{ID: id, Kind: PropSolid}
	if mid, ok, err := field.ParseInt(c.At(1)); err == nil && ok {
		p.MIDs = []int{mid}
	}
	if cid, ok, err := field.ParseInt(c.At(2)); err == nil && ok {
		p.MatCID = cid
	}
	return p, nil
}

func writePSolid(p Parsed) (string, []string, error) {
	pr, ok := p.(*Property)
	if !ok || pr.Kind != PropSolid {
		return "", nil, chk.Err("writePSolid: wrong type")
	}
	mid := 0
	if len(pr.MIDs) > 0 {
		mid = pr.MIDs[0]
	}
	return "PSOLID", []string{strconv.Itoa(pr.ID), strconv.Itoa(mid), fmtInt0(pr.MatCID)}, nil
}

// PBAR/PBARL/PBEAM/PBEAML/PROD: pid mid then a loose bag of section
// scalars (area, moments of inertia, torsional constant, nsm, ...). The
// original tool keeps these as a per-kind attribute dict rather than N
// fixed Go fields; bdf/card follows that shape via Property.Scalars.
var barSectionKeys = map[PropKind][]string{
	PropBar:  {"A", "I1", "I2", "J", "NSM"},
	PropBeam: {"A", "I1", "I2", "I12", "J", "NSM"},
	PropRod:  {"A", "J", "C", "NSM"},
}

func parseBarSection(kind PropKind) ParseFunc {
	keys := barSectionKeys[kind]
	return func(c *field.Card) (Parsed, error) {
		id, ok, err := field.ParseInt(c.At(0))
		if err != nil || !ok {
			return nil, chk.Err("bar-section property: bad or missing id: %v", err)
		}
		p := &Property{ID: id, Kind: kind, Scalars: map[string]float64{}}
		if mid, ok, err := field.ParseInt(c.At(1)); err == nil && ok {
			p.MIDs = []int{mid}
		}
		for i, key := range keys {
			if v, ok, err := field.ParseFloat(c.At(2 + i)); err == nil && ok {
				p.Scalars[key] = v
			}
		}
		return p, nil
	}
}

func writeBarSection(kind PropKind) WriteFunc {
	keys := barSectionKeys[kind]
	return func(p Parsed) (string, []string, error) {
		pr, ok := p.(*Property)
		if !ok || pr.Kind != kind {
			return "", nil, chk.Err("writeBarSection: wrong type")
		}
		mid := 0
		if len(pr.MIDs) > 0 {
			mid = pr.MIDs[0]
		}
		fields := []string{strconv.Itoa(pr.ID), strconv.Itoa(mid)}
		for _, key := range keys {
			fields = append(fields, fmtReal0(pr.Scalars[key]))
		}
		name := map[PropKind]string{PropBar: "PBAR", PropBeam: "PBEAM", PropRod: "PROD"}[kind]
		return name, fields, nil
	}
}

// PBUSH/PBUSHT/PELAS/PDAMP/PGAP/PWELD/PFAST/PVISC: pid then a loose bag
// of kind-specific scalars in fixed field order (§3 Property: "Bush/
// Elas/Damp/Gap/Visc/Weld/Fast: kind-specific scalars").
func parseScalarProp(kind PropKind, keys []string) ParseFunc {
	return func(c *field.Card) (Parsed, error) {
		id, ok, err := field.ParseInt(c.At(0))
		if err != nil || !ok {
			return nil, chk.Err("scalar property: bad or missing id: %v", err)
		}
		p := &Property{ID: id, Kind: kind, Scalars: map[string]float64{}}
		for i, key := range keys {
			if v, ok, err := field.ParseFloat(c.At(1 + i)); err == nil && ok {
				p.Scalars[key] = v
			}
		}
		return p, nil
	}
}

func writeScalarProp(kind PropKind, name string, keys []string) WriteFunc {
	return func(p Parsed) (string, []string, error) {
		pr, ok := p.(*Property)
		if !ok || pr.Kind != kind {
			return "", nil, chk.Err("write%s: wrong type", name)
		}
		fields := []string{strconv.Itoa(pr.ID)}
		for _, key := range keys {
			fields = append(fields, fmtReal0(pr.Scalars[key]))
		}
		return name, fields, nil
	}
}

// parsePropWithMID/writePropWithMID: PSHEAR pid mid t nsm ...
func parsePropWithMID(c *field.Card, kind PropKind) (Parsed, error) {
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("property: bad or missing id: %v", err)
	}
	p := &Property{ID: id, Kind: kind}
	if mid, ok, err := field.ParseInt(c.At(1)); err == nil && ok {
		p.MIDs = []int{mid}
	}
	if t, ok, err := field.ParseFloat(c.At(2)); err == nil && ok {
		p.Thickness = t
	}
	if nsm, ok, err := field.ParseFloat(c.At(3)); err == nil && ok {
		p.NSM = nsm
	}
	return p, nil
}

func writePropWithMID(kind PropKind, name string) WriteFunc {
	return func(p Parsed) (string, []string, error) {
		pr, ok := p.(*Property)
		if !ok || pr.Kind != kind {
			return "", nil, chk.Err("write%s: wrong type", name)
		}
		mid := 0
		if len(pr.MIDs) > 0 {
			mid = pr.MIDs[0]
		}
		return name, []string{strconv.Itoa(pr.ID), strconv.Itoa(mid), fmtReal0(pr.Thickness), fmtReal0(pr.NSM)}, nil
	}
}
