// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/bdf/bdf/parser"
	"github.com/cpmech/gosl/chk"
	"github.com/pmezard/go-difflib/difflib"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", p, err)
	}
	return p
}

func Test_formatRealFitsWidth(t *testing.T) {
	chk.PrintTitle("real values squeeze into 8 columns")
	for _, v := range []float64{2.1e11, -1.23456789e-7, 7850.0, 0.0, 100.0, 1e20} {
		s := FormatReal(v, shortWidth)
		if len(s) > shortWidth {
			t.Fatalf("FormatReal(%v) = %q, exceeds width %d", v, s, shortWidth)
		}
	}
}

func Test_roundTripScenarioA(t *testing.T) {
	chk.PrintTitle("writer round-trips scenario A through the parser")
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
	res, err := parser.Parse(main, parser.Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	outDir := filepath.Join(dir, "out")
	rep, err := Write(Request{
		OutDir:               outDir,
		Store:                res.Store,
		Tree:                 res.Tree,
		ExecutiveCaseControl: res.ExecutiveCaseControl,
		SkippedVerbatim:      res.SkippedVerbatim,
	})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(rep.Failed) != 0 {
		t.Fatalf("expected no card write failures, got %+v", rep.Failed)
	}
	if len(rep.FilesWritten) != 1 {
		t.Fatalf("expected exactly one file written, got %d", len(rep.FilesWritten))
	}

	res2, err := parser.Parse(rep.FilesWritten[0], parser.Options{})
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if len(res2.Store.Nodes) != len(res.Store.Nodes) {
		t.Fatalf("node count drifted: got %d, want %d", len(res2.Store.Nodes), len(res.Store.Nodes))
	}
	if len(res2.Store.Elements) != len(res.Store.Elements) {
		t.Fatalf("element count drifted: got %d, want %d", len(res2.Store.Elements), len(res.Store.Elements))
	}
	mat, ok := res2.Store.Materials[1]
	if !ok {
		t.Fatalf("expected MAT1 id 1 to survive round trip")
	}
	chk.Scalar(t, "MAT1 rho", 1e-6, mat.Rho, res.Store.Materials[1].Rho)

	loadSet, ok := res2.Store.LoadSets[20]
	if !ok || len(loadSet) != 1 {
		t.Fatalf("expected the FORCE load to survive round trip under set 20")
	}
}

// Test_emissionIsStable re-emits an already-written deck a second time
// and diffs the two outputs: since the second Write reads back exactly
// what the first one wrote, the two texts must be identical byte for
// byte (Testable Property 1's round-trip angle, applied to the writer's
// own output rather than just the typed model).
func Test_emissionIsStable(t *testing.T) {
	chk.PrintTitle("writer emission is stable across a second pass")
	dir := t.TempDir()
	main := writeTemp(t, dir, "main.bdf", `CEND
BEGIN BULK
GRID    1               0.      0.      0.
GRID    2               1.      0.      0.
GRID    3               0.      1.      0.
PSHELL  1       1       .005
MAT1    1       2.1+11          .3      7850.
CTRIA3  1       1       1       2       3
ENDDATA
`)
	res1, err := parser.Parse(main, parser.Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pass1 := filepath.Join(dir, "pass1")
	rep1, err := Write(Request{OutDir: pass1, Store: res1.Store, Tree: res1.Tree, ExecutiveCaseControl: res1.ExecutiveCaseControl, SkippedVerbatim: res1.SkippedVerbatim})
	if err != nil {
		t.Fatalf("first Write: %v", err)
	}

	res2, err := parser.Parse(rep1.FilesWritten[0], parser.Options{})
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	pass2 := filepath.Join(dir, "pass2")
	rep2, err := Write(Request{OutDir: pass2, Store: res2.Store, Tree: res2.Tree, ExecutiveCaseControl: res2.ExecutiveCaseControl, SkippedVerbatim: res2.SkippedVerbatim})
	if err != nil {
		t.Fatalf("second Write: %v", err)
	}

	text1, err := os.ReadFile(rep1.FilesWritten[0])
	if err != nil {
		t.Fatalf("read pass1 output: %v", err)
	}
	text2, err := os.ReadFile(rep2.FilesWritten[0])
	if err != nil {
		t.Fatalf("read pass2 output: %v", err)
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(text1)),
		B:        difflib.SplitLines(string(text2)),
		FromFile: "pass1",
		ToFile:   "pass2",
		Context:  2,
	}
	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	if out != "" {
		t.Fatalf("re-emission drifted:\n%s", out)
	}
}
