// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_freeVsShort(tst *testing.T) {

	chk.PrintTitle("freeVsShort")

	free := Line{Text: "GRID, 1, 0, 1.5, -2.0, 0.0", No: 1}
	short := Line{Text: "GRID           1       0     1.5    -2.0     0.0", No: 1}

	cf, err := Lex([]Line{free})
	if err != nil {
		tst.Fatalf("free lex failed: %v", err)
	}
	cs, err := Lex([]Line{short})
	if err != nil {
		tst.Fatalf("short lex failed: %v", err)
	}

	if cf.Name != "GRID" || cs.Name != "GRID" {
		tst.Fatalf("names differ: %q vs %q", cf.Name, cs.Name)
	}

	fcid, _, _ := ParseInt(cf.At(1))
	scid, _, _ := ParseInt(cs.At(1))
	if fcid != 0 || scid != 0 {
		tst.Fatalf("cid mismatch: %d vs %d", fcid, scid)
	}

	for i := 2; i <= 4; i++ {
		fv, _, err1 := ParseFloat(cf.At(i))
		sv, _, err2 := ParseFloat(cs.At(i))
		if err1 != nil || err2 != nil {
			tst.Fatalf("parse error field %d: %v %v", i, err1, err2)
		}
		if fv != sv {
			tst.Fatalf("field %d mismatch: %g vs %g", i, fv, sv)
		}
	}
}

func Test_implicitExponent(tst *testing.T) {

	chk.PrintTitle("implicitExponent")

	cases := map[string]float64{
		"1.2-3":    1.2e-3,
		"1.0+3":    1.0e3,
		"1.0D+3":   1.0e3,
		"-2.5-1":   -2.5e-1,
		"2.1+11":   2.1e11,
		"7850.":    7850.0,
		"":         0.0,
	}
	for raw, want := range cases {
		v, ok, err := ParseFloat(raw)
		if raw == "" {
			if ok {
				tst.Fatalf("blank field should report ok=false")
			}
			continue
		}
		if err != nil {
			tst.Fatalf("%q: unexpected error %v", raw, err)
		}
		if v != want {
			tst.Fatalf("%q: got %g want %g", raw, v, want)
		}
	}
}

func Test_continuationGrouping(tst *testing.T) {

	chk.PrintTitle("continuationGrouping")

	lines := []Line{
		{Text: "GRID    1       0     1.5    -2.0     0.0", No: 1},
		{Text: "GRID    2       0     0.0     0.0     0.0", No: 2},
		{Text: "+       extra", No: 3},
	}
	groups, errs := GroupLogical(lines)
	if len(errs) != 0 {
		tst.Fatalf("unexpected errors: %v", errs)
	}
	if len(groups) != 2 {
		tst.Fatalf("expected 2 logical cards, got %d", len(groups))
	}
	if len(groups[1]) != 2 {
		tst.Fatalf("expected grid 2 to absorb its continuation, got %d lines", len(groups[1]))
	}
}

func Test_orphanContinuation(tst *testing.T) {

	chk.PrintTitle("orphanContinuation")

	lines := []Line{
		{Text: "+       orphan", No: 1},
	}
	_, errs := GroupLogical(lines)
	if len(errs) != 1 {
		tst.Fatalf("expected one orphan-continuation error, got %d", len(errs))
	}
}
