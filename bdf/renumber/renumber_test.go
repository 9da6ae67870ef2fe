// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package renumber

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/bdf/bdf/card"
	"github.com/cpmech/bdf/bdf/parser"
	"github.com/cpmech/gosl/chk"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", p, err)
	}
	return p
}

func parseScenario(t *testing.T, dir string) *parser.Result {
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
	return res
}

func Test_renumberShiftsIDsAndReferences(t *testing.T) {
	chk.PrintTitle("renumber shifts node/element ids and every reference slot")
	dir := t.TempDir()
	res := parseScenario(t, dir)
	mainPath := res.Tree.Files[0].Path

	req := Request{
		Store: res.Store,
		Tree:  res.Tree,
		Ranges: []RangeSpec{
			{FilePath: mainPath, Family: card.FamNode, Start: 100, End: 199},
			{FilePath: mainPath, Family: card.FamElement, Start: 200, End: 299},
		},
	}

	plan, errs := Apply(req)
	if len(errs) > 0 {
		t.Fatalf("Apply: %v", errs)
	}
	if got := plan.Remap[card.FamNode][1]; got != 100 {
		t.Fatalf("expected old node 1 -> 100, got %d", got)
	}

	elem, ok := res.Store.Elements[200]
	if !ok {
		t.Fatalf("expected element renumbered to id 200")
	}
	for _, nid := range elem.Nodes {
		if nid < 100 || nid > 102 {
			t.Fatalf("element node %d was not remapped into [100,102]", nid)
		}
	}

	spcTerms, ok := res.Store.SPCSets[10]
	if !ok || len(spcTerms) == 0 {
		t.Fatalf("expected SPC set 10 to survive (unremapped, RemapSets off)")
	}
	spc1 := spcTerms[0].(*card.SPC1)
	for _, nid := range spc1.Nodes {
		if nid < 100 || nid > 102 {
			t.Fatalf("SPC1 node %d was not remapped", nid)
		}
	}

	loadTerms := res.Store.LoadSets[20]
	force := loadTerms[0].(*card.Load)
	if force.Node < 100 || force.Node > 102 {
		t.Fatalf("FORCE node %d was not remapped", force.Node)
	}
}

func Test_renumberValidatesCapacityAndOverlap(t *testing.T) {
	chk.PrintTitle("renumber rejects undersized and overlapping ranges")
	dir := t.TempDir()
	res := parseScenario(t, dir)
	mainPath := res.Tree.Files[0].Path

	tooSmall := Request{
		Store: res.Store,
		Tree:  res.Tree,
		Ranges: []RangeSpec{
			{FilePath: mainPath, Family: card.FamNode, Start: 10, End: 11}, // 3 nodes, capacity 2
		},
	}
	if errs := Validate(tooSmall); len(errs) == 0 {
		t.Fatalf("expected a capacity validation error")
	}

	overlap := Request{
		Store: res.Store,
		Tree:  res.Tree,
		Ranges: []RangeSpec{
			{FilePath: mainPath, Family: card.FamNode, Start: 100, End: 110},
			{FilePath: mainPath, Family: card.FamNode, Start: 105, End: 120},
		},
	}
	if errs := Validate(overlap); len(errs) == 0 {
		t.Fatalf("expected a disjointness validation error")
	}
}

func Test_renumberSetsPassThroughUntilToggled(t *testing.T) {
	chk.PrintTitle("set-family ids pass through unless RemapSets is on")
	dir := t.TempDir()
	res := parseScenario(t, dir)
	mainPath := res.Tree.Files[0].Path

	req := Request{
		Store: res.Store,
		Tree:  res.Tree,
		Ranges: []RangeSpec{
			{FilePath: mainPath, Family: card.FamSPCSet, Start: 500, End: 509},
		},
		RemapSets: true,
	}
	plan, errs := Apply(req)
	if len(errs) > 0 {
		t.Fatalf("Apply: %v", errs)
	}
	if _, ok := res.Store.SPCSets[500]; !ok {
		t.Fatalf("expected SPC set remapped to 500 when RemapSets is on")
	}
	if plan.Remap[card.FamSPCSet][10] != 500 {
		t.Fatalf("expected plan to record 10 -> 500")
	}
}

func Test_renumberDryRunLeavesStoreUntouched(t *testing.T) {
	chk.PrintTitle("dry run computes a plan without mutating the store")
	dir := t.TempDir()
	res := parseScenario(t, dir)
	mainPath := res.Tree.Files[0].Path

	req := Request{
		Store: res.Store,
		Tree:  res.Tree,
		Ranges: []RangeSpec{
			{FilePath: mainPath, Family: card.FamNode, Start: 100, End: 199},
		},
		DryRun: true,
	}
	plan, errs := Apply(req)
	if len(errs) > 0 {
		t.Fatalf("Apply: %v", errs)
	}
	if plan.Remap[card.FamNode][1] != 100 {
		t.Fatalf("expected a computed plan even in dry-run mode")
	}
	if _, ok := res.Store.Nodes[1]; !ok {
		t.Fatalf("dry run must not mutate the store: node 1 should still exist")
	}
}
