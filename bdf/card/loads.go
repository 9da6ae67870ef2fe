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
	Register("FORCE", FamLoadSet, parseForceMoment(LoadForce), writeForceMoment(LoadForce, "FORCE"), firstFieldPrimaryID)
	Register("MOMENT", FamLoadSet, parseForceMoment(LoadMoment), writeForceMoment(LoadMoment, "MOMENT"), firstFieldPrimaryID)
	Register("PLOAD", FamLoadSet, parsePload, writePload, firstFieldPrimaryID)
	Register("PLOAD2", FamLoadSet, parsePload2, writePload2, firstFieldPrimaryID)
	Register("PLOAD4", FamLoadSet, parsePload4, writePload4, firstFieldPrimaryID)
	Register("GRAV", FamLoadSet, parseGrav, writeGrav, firstFieldPrimaryID)
	Register("LOAD", FamLoadSet, parseLoadCombo("LOAD"), writeLoadCombo("LOAD"), firstFieldPrimaryID)
	Register("DLOAD", FamLoadSet, parseLoadCombo("DLOAD"), writeLoadCombo("DLOAD"), firstFieldPrimaryID)
	Register("RFORCE", FamLoadSet, parseRForce, writeRForce, firstFieldPrimaryID)
	Register("TEMP", FamLoadSet, parseTemp, writeTemp, firstFieldPrimaryID)
	Register("TEMPD", FamLoadSet, parseTempD, writeTempD, firstFieldPrimaryID)
	Register("RLOAD1", FamLoadSet, parseDynGeneric(LoadDynamicFreq, "RLOAD1"), writeDynGeneric(LoadDynamicFreq, "RLOAD1"), firstFieldPrimaryID)
	Register("RLOAD2", FamLoadSet, parseDynGeneric(LoadDynamicFreq, "RLOAD2"), writeDynGeneric(LoadDynamicFreq, "RLOAD2"), firstFieldPrimaryID)
	Register("TLOAD1", FamLoadSet, parseDynGeneric(LoadDynamicTime, "TLOAD1"), writeDynGeneric(LoadDynamicTime, "TLOAD1"), firstFieldPrimaryID)
	Register("TLOAD2", FamLoadSet, parseDynGeneric(LoadDynamicTime, "TLOAD2"), writeDynGeneric(LoadDynamicTime, "TLOAD2"), firstFieldPrimaryID)
	Register("DAREA", FamLoadSet, parseDArea, writeDArea, firstFieldPrimaryID)
}

// FORCE/MOMENT sid g cid f n1 n2 n3
func parseForceMoment(kind LoadKind) ParseFunc {
	return func(c *field.Card) (Parsed, error) {
		sid, ok, err := field.ParseInt(c.At(0))
		if err != nil || !ok {
			return nil, chk.Err("FORCE/MOMENT: bad or missing set id: %v", err)
		}
		l := &Load{SID: sid, Kind: kind}
		l.Node, _, _ = field.ParseInt(c.At(1))
		l.CID, _, _ = field.ParseInt(c.At(2))
		l.Scale, _, _ = field.ParseFloat(c.At(3))
		for i := 0; i < 3; i++ {
			l.Dir[i], _, _ = field.ParseFloat(c.At(4 + i))
		}
		return l, nil
	}
}

func writeForceMoment(kind LoadKind, name string) WriteFunc {
	return func(p Parsed) (string, []string, error) {
		l, ok := p.(*Load)
		if !ok || l.Kind != kind {
			return "", nil, chk.Err("write%s: wrong type", name)
		}
		return name, []string{
			strconv.Itoa(l.SID), strconv.Itoa(l.Node), fmtInt0(l.CID), fmtReal(l.Scale),
			fmtReal(l.Dir[0]), fmtReal(l.Dir[1]), fmtReal(l.Dir[2]),
		}, nil
	}
}

// PLOAD sid p g1 g2 g3 g4 — uniform pressure on a 3/4-node face
func parsePload(c *field.Card) (Parsed, error) {
	sid, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("PLOAD: bad or missing set id: %v", err)
	}
	l := &Load{SID: sid, Kind: LoadPressure}
	l.Pressures[0], _, _ = field.ParseFloat(c.At(1))
	for i := 0; i < 4; i++ {
		if v, ok, err := field.ParseInt(c.At(2 + i)); err == nil && ok {
			l.EIDs = append(l.EIDs, v)
		}
	}
	return l, nil
}

func writePload(p Parsed) (string, []string, error) {
	l, ok := p.(*Load)
	if !ok || l.Kind != LoadPressure {
		return "", nil, chk.Err("writePload: wrong type")
	}
	fields := append([]string{strconv.Itoa(l.SID), fmtReal(l.Pressures[0])}, fmtIntList(l.EIDs)...)
	return "PLOAD", fields, nil
}

// PLOAD2 sid p eid1 "THRU" eid2 — uniform pressure over listed elements
func parsePload2(c *field.Card) (Parsed, error) {
	sid, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("PLOAD2: bad or missing set id: %v", err)
	}
	l := &Load{SID: sid, Kind: LoadPressure}
	l.Pressures[0], _, _ = field.ParseFloat(c.At(1))
	for i := 2; i < len(c.Fields); i++ {
		if v, ok, err := field.ParseInt(c.At(i)); err == nil && ok {
			l.EIDs = append(l.EIDs, v)
		}
	}
	return l, nil
}

func writePload2(p Parsed) (string, []string, error) {
	l, ok := p.(*Load)
	if !ok || l.Kind != LoadPressure {
		return "", nil, chk.Err("writePload2: wrong type")
	}
	fields := append([]string{strconv.Itoa(l.SID), fmtReal(l.Pressures[0])}, fmtIntList(l.EIDs)...)
	return "PLOAD2", fields, nil
}

// PLOAD4 sid eid p1 p2 p3 p4 g1 g3/g4
func parsePload4(c *field.Card) (Parsed, error) {
	sid, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("PLOAD4: bad or missing set id: %v", err)
	}
	l := &Load{SID: sid, Kind: LoadPressure}
	if eid, ok, err := field.ParseInt(c.At(1)); err == nil && ok {
		l.EIDs = []int{eid}
	}
	for i := 0; i < 4; i++ {
		l.Pressures[i], _, _ = field.ParseFloat(c.At(2 + i))
	}
	l.G1, _, _ = field.ParseInt(c.At(6))
	l.G3, _, _ = field.ParseInt(c.At(7))
	return l, nil
}

func writePload4(p Parsed) (string, []string, error) {
	l, ok := p.(*Load)
	if !ok || l.Kind != LoadPressure {
		return "", nil, chk.Err("writePload4: wrong type")
	}
	eid := 0
	if len(l.EIDs) > 0 {
		eid = l.EIDs[0]
	}
	fields := []string{strconv.Itoa(l.SID), strconv.Itoa(eid)}
	for _, v := range l.Pressures {
		fields = append(fields, fmtReal0(v))
	}
	fields = append(fields, fmtInt0(l.G1), fmtInt0(l.G3))
	return "PLOAD4", fields, nil
}

// GRAV sid cid g n1 n2 n3
func parseGrav(c *field.Card) (Parsed, error) {
	sid, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("GRAV: bad or missing set id: %v", err)
	}
	l := &Load{SID: sid, Kind: LoadGravity}
	l.CID, _, _ = field.ParseInt(c.At(1))
	l.OverallScale, _, _ = field.ParseFloat(c.At(2))
	for i := 0; i < 3; i++ {
		l.Dir[i], _, _ = field.ParseFloat(c.At(3 + i))
	}
	return l, nil
}

func writeGrav(p Parsed) (string, []string, error) {
	l, ok := p.(*Load)
	if !ok || l.Kind != LoadGravity {
		return "", nil, chk.Err("writeGrav: wrong type")
	}
	return "GRAV", []string{
		strconv.Itoa(l.SID), fmtInt0(l.CID), fmtReal(l.OverallScale),
		fmtReal(l.Dir[0]), fmtReal(l.Dir[1]), fmtReal(l.Dir[2]),
	}, nil
}

// LOAD/DLOAD sid overallFactor s1 l1 s2 l2 ...
func parseLoadCombo(name string) ParseFunc {
	return func(c *field.Card) (Parsed, error) {
		sid, ok, err := field.ParseInt(c.At(0))
		if err != nil || !ok {
			return nil, chk.Err("%s: bad or missing set id: %v", name, err)
		}
		l := &Load{SID: sid, Kind: LoadCombine}
		l.OverallFactor, _, _ = field.ParseFloat(c.At(1))
		for i := 2; i+1 < len(c.Fields); i += 2 {
			scale, ok, err := field.ParseFloat(c.At(i))
			if err != nil || !ok {
				break
			}
			lid, ok, err := field.ParseInt(c.At(i + 1))
			if err != nil || !ok {
				break
			}
			l.Combo = append(l.Combo, LoadCombo{Scale: scale, SID: lid})
		}
		return l, nil
	}
}

func writeLoadCombo(name string) WriteFunc {
	return func(p Parsed) (string, []string, error) {
		l, ok := p.(*Load)
		if !ok || l.Kind != LoadCombine {
			return "", nil, chk.Err("write%s: wrong type", name)
		}
		fields := []string{strconv.Itoa(l.SID), fmtReal(l.OverallFactor)}
		for _, term := range l.Combo {
			fields = append(fields, fmtReal(term.Scale), strconv.Itoa(term.SID))
		}
		return name, fields, nil
	}
}

// RFORCE sid g cid a r1 r2 r3 method racc
func parseRForce(c *field.Card) (Parsed, error) {
	sid, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("RFORCE: bad or missing set id: %v", err)
	}
	l := &Load{SID: sid, Kind: LoadRotational, Extra: map[string]float64{}}
	l.Node, _, _ = field.ParseInt(c.At(1))
	l.CID, _, _ = field.ParseInt(c.At(2))
	l.Scale, _, _ = field.ParseFloat(c.At(3))
	for i, key := range []string{"R1", "R2", "R3"} {
		if v, ok, err := field.ParseFloat(c.At(4 + i)); err == nil && ok {
			l.Extra[key] = v
		}
	}
	return l, nil
}

func writeRForce(p Parsed) (string, []string, error) {
	l, ok := p.(*Load)
	if !ok || l.Kind != LoadRotational {
		return "", nil, chk.Err("writeRForce: wrong type")
	}
	return "RFORCE", []string{
		strconv.Itoa(l.SID), strconv.Itoa(l.Node), fmtInt0(l.CID), fmtReal(l.Scale),
		fmtReal0(l.Extra["R1"]), fmtReal0(l.Extra["R2"]), fmtReal0(l.Extra["R3"]),
	}, nil
}

// TEMP sid g1 t1 g2 t2 g3 t3
func parseTemp(c *field.Card) (Parsed, error) {
	sid, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("TEMP: bad or missing set id: %v", err)
	}
	l := &Load{SID: sid, Kind: LoadTemperature, NodeTemp: map[int]float64{}}
	for i := 1; i+1 < len(c.Fields); i += 2 {
		node, ok, err := field.ParseInt(c.At(i))
		if err != nil || !ok {
			break
		}
		t, _, _ := field.ParseFloat(c.At(i + 1))
		l.NodeTemp[node] = t
	}
	return l, nil
}

func writeTemp(p Parsed) (string, []string, error) {
	l, ok := p.(*Load)
	if !ok || l.Kind != LoadTemperature {
		return "", nil, chk.Err("writeTemp: wrong type")
	}
	fields := []string{strconv.Itoa(l.SID)}
	for node, t := range l.NodeTemp {
		fields = append(fields, strconv.Itoa(node), fmtReal(t))
	}
	return "TEMP", fields, nil
}

// TEMPD sid t — default temperature for unlisted grids
func parseTempD(c *field.Card) (Parsed, error) {
	sid, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("TEMPD: bad or missing set id: %v", err)
	}
	l := &Load{SID: sid, Kind: LoadTemperature}
	l.Temp, _, _ = field.ParseFloat(c.At(1))
	return l, nil
}

func writeTempD(p Parsed) (string, []string, error) {
	l, ok := p.(*Load)
	if !ok || l.Kind != LoadTemperature {
		return "", nil, chk.Err("writeTempD: wrong type")
	}
	return "TEMPD", []string{strconv.Itoa(l.SID), fmtReal(l.Temp)}, nil
}

// RLOAD1/RLOAD2/TLOAD1/TLOAD2: sid excited-id delay-id load-type tabled-ids
// kept as a loose scalar/extra bag; the dynamic-loads payload is
// consumer-defined beyond referencing a DAREA/TABLEDi id (§3 Load).
func parseDynGeneric(kind LoadKind, name string) ParseFunc {
	return func(c *field.Card) (Parsed, error) {
		sid, ok, err := field.ParseInt(c.At(0))
		if err != nil || !ok {
			return nil, chk.Err("%s: bad or missing set id: %v", name, err)
		}
		l := &Load{SID: sid, Kind: kind, Extra: map[string]float64{}}
		for i, key := range []string{"EXCITEID", "DELAY", "DPHASE", "TC", "TD"} {
			if v, ok, err := field.ParseFloat(c.At(1 + i)); err == nil && ok {
				l.Extra[key] = v
			}
		}
		return l, nil
	}
}

func writeDynGeneric(kind LoadKind, name string) WriteFunc {
	return func(p Parsed) (string, []string, error) {
		l, ok := p.(*Load)
		if !ok || l.Kind != kind {
			return "", nil, chk.Err("write%s: wrong type", name)
		}
		fields := []string{strconv.Itoa(l.SID)}
		for _, key := range []string{"EXCITEID", "DELAY", "DPHASE", "TC", "TD"} {
			fields = append(fields, fmtReal0(l.Extra[key]))
		}
		return name, fields, nil
	}
}

// DAREA sid g c a — discrete dynamic excitation amplitude
func parseDArea(c *field.Card) (Parsed, error) {
	sid, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("DAREA: bad or missing set id: %v", err)
	}
	l := &Load{SID: sid, Kind: LoadDynamicFreq, Extra: map[string]float64{}}
	l.Node, _, _ = field.ParseInt(c.At(1))
	if a, ok, err := field.ParseFloat(c.At(3)); err == nil && ok {
		l.Extra["A"] = a
	}
	return l, nil
}

func writeDArea(p Parsed) (string, []string, error) {
	l, ok := p.(*Load)
	if !ok {
		return "", nil, chk.Err("writeDArea: wrong type")
	}
	return "DAREA", []string{strconv.Itoa(l.SID), strconv.Itoa(l.Node), "", fmtReal0(l.Extra["A"])}, nil
}
