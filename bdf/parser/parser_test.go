// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", p, err)
	}
	return p
}

// Test_scenarioA mirrors spec.md §8 Scenario A's minimal single-file deck.
func Test_scenarioA(t *testing.T) {
	chk.PrintTitle("scenario A: single-file parse")
	dir := t.TempDir()
	main := writeTemp(t, dir, "main.bdf", `SOL 101
CEND
SPC = 10
LOAD = 20
BEGIN BULK
MAT1    1       2.1+11          .3      7850.
PSHELL  1       1       .005
GRID    1               0.      0.      0.
GRID    2               1.      0.      0.
GRID    3               0.      1.      0.
CTRIA3  1       1       1       2       3
SPC1    10      123456  1       2
FORCE   20      3       0       100.    0.      0.      -1.
ENDDATA
`)
	res, err := Parse(main, Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Tree.Files) != 1 {
		t.Fatalf("expected exactly one bulk file, got %d", len(res.Tree.Files))
	}
	if len(res.Store.Nodes) != 3 {
		t.Fatalf("expected 3 grids, got %d", len(res.Store.Nodes))
	}
	if len(res.Store.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(res.Store.Elements))
	}
	mat, ok := res.Store.Materials[1]
	if !ok {
		t.Fatalf("expected MAT1 id 1")
	}
	chk.Scalar(t, "MAT1 rho", 1e-9, mat.Rho, 7850.0)

	spcSet, ok := res.Store.SPCSets[10]
	if !ok || len(spcSet) != 1 {
		t.Fatalf("expected one SPC-family card under set 10")
	}
	loadSet, ok := res.Store.LoadSets[20]
	if !ok || len(loadSet) != 1 {
		t.Fatalf("expected one load under set 20")
	}
	if len(res.Store.CaseControl) != 2 {
		t.Fatalf("expected 2 case-control items, got %d", len(res.Store.CaseControl))
	}
}

func Test_skipList(t *testing.T) {
	chk.PrintTitle("skip-listed card kept verbatim")
	dir := t.TempDir()
	main := writeTemp(t, dir, "main.bdf", `CEND
BEGIN BULK
GRID    1               0.      0.      0.
BSURF   5       1       2       3
ENDDATA
`)
	res, err := Parse(main, Options{Skip: map[string]bool{"BSURF": true}})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Store.ContactSurfaces) != 0 {
		t.Fatalf("expected BSURF to be skip-listed, not typed-parsed")
	}
	verbatim := res.SkippedVerbatim[filepath.Join(dir, "main.bdf")]
	if len(verbatim) != 1 {
		t.Fatalf("expected 1 verbatim skip-listed line, got %d", len(verbatim))
	}
	if verbatim[0][:5] != "BSURF" {
		t.Fatalf("expected verbatim BSURF line, got %q", verbatim[0])
	}
}
