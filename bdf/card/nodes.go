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
	Register("GRID", FamNode, parseGrid, writeGrid, firstFieldPrimaryID)
	Register("SPOINT", FamNode, parseSPoint, writeSPoint, firstFieldPrimaryID)
}

// parseGrid parses GRID id cp x1 x2 x3 cd ps seid.
func parseGrid(c *field.Card) (Parsed, error) {
	n := &Node{Kind: Grid}
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("GRID: bad or missing id: %v", err)
	}
	n.ID = id
	if cp, ok, err := field.ParseInt(c.At(1)); err == nil && ok {
		n.CP = cp
	}
	for i := 0; i < 3; i++ {
		v, _, err := field.ParseFloat(c.At(2 + i))
		if err != nil {
			return nil, chk.Err("GRID %d: bad coordinate %d: %v", id, i, err)
		}
		n.X[i] = v
	}
	if cd, ok, err := field.ParseInt(c.At(5)); err == nil && ok {
		n.CD = cd
	}
	n.PS = c.At(6)
	if seid, ok, err := field.ParseInt(c.At(7)); err == nil && ok {
		n.Seid = seid
	}
	return n, nil
}

func writeGrid(p Parsed) (string, []string, error) {
	n, ok := p.(*Node)
	if !ok {
		return "", nil, chk.Err("writeGrid: wrong type")
	}
	fields := []string{
		strconv.Itoa(n.ID),
		fmtInt0(n.CP),
		fmtReal(n.X[0]), fmtReal(n.X[1]), fmtReal(n.X[2]),
		fmtInt0(n.CD),
		n.PS,
		fmtInt0(n.Seid),
	}
	return "GRID", fields, nil
}

// parseSPoint parses SPOINT with one or more ids across its field list
// (the writer always emits one id per card for simplicity).
func parseSPoint(c *field.Card) (Parsed, error) {
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return nil, chk.Err("SPOINT: bad or missing id: %v", err)
	}
	return &Node{ID: id, Kind: ScalarPoint}, nil
}

func writeSPoint(p Parsed) (string, []string, error) {
	n, ok := p.(*Node)
	if !ok {
		return "", nil, chk.Err("writeSPoint: wrong type")
	}
	return "SPOINT", []string{strconv.Itoa(n.ID)}, nil
}
