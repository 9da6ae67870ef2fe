// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package include

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/bdf/bdf/card"
	"github.com/cpmech/gosl/chk"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", p, err)
	}
	return p
}

func Test_singleFileOwnership(t *testing.T) {
	chk.PrintTitle("single file ownership")
	dir := t.TempDir()
	main := writeTemp(t, dir, "main.bdf", `CEND
BEGIN BULK
$ a comment
GRID    1               0.      0.      0.
GRID    2               1.      0.      0.
CTRIA3  1       1       1       2       1
UNKNOWNCARD 99 1 2 3
ENDDATA
`)
	tree, err := Walk(main)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(tree.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(tree.Files))
	}
	cat := tree.Files[0]
	if !cat.Owns(card.FamNode, 1) || !cat.Owns(card.FamNode, 2) {
		t.Fatalf("expected grids 1 and 2 owned, got %v", cat.Owned[card.FamNode])
	}
	if !cat.Owns(card.FamElement, 1) {
		t.Fatalf("expected element 1 owned")
	}
	if len(cat.Passthrough) != 1 {
		t.Fatalf("expected 1 passthrough line, got %d: %v", len(cat.Passthrough), cat.Passthrough)
	}
}

func Test_includeNesting(t *testing.T) {
	chk.PrintTitle("include nesting ownership split")
	dir := t.TempDir()
	writeTemp(t, dir, "shell.inc", `PSHELL  1       1       0.005
CTRIA3  1       1       1       2       3
`)
	main := writeTemp(t, dir, "main.bdf", `CEND
BEGIN BULK
GRID    1               0.      0.      0.
GRID    2               1.      0.      0.
GRID    3               0.      1.      0.
INCLUDE 'shell.inc'
MAT1    1       2.1+11          .3      7850.
ENDDATA
`)
	tree, err := Walk(main)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(tree.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(tree.Files))
	}
	mainCat := tree.Files[0]
	incCat := tree.Files[1]
	if !mainCat.Owns(card.FamNode, 1) || !mainCat.Owns(card.FamMaterial, 1) {
		t.Fatalf("main file missing expected ownership: %v", mainCat.Owned)
	}
	if mainCat.Owns(card.FamElement, 1) {
		t.Fatalf("main file should not own the shell element")
	}
	if !incCat.Owns(card.FamElement, 1) || !incCat.Owns(card.FamProperty, 1) {
		t.Fatalf("include file missing expected ownership: %v", incCat.Owned)
	}
}

func Test_cycleSafety(t *testing.T) {
	chk.PrintTitle("include cycle safety")
	dir := t.TempDir()
	writeTemp(t, dir, "b.inc", `INCLUDE 'a.inc'
GRID    9               0.      0.      0.
`)
	main := writeTemp(t, dir, "a.inc", `CEND
BEGIN BULK
INCLUDE 'b.inc'
GRID    1               0.      0.      0.
ENDDATA
`)
	tree, err := Walk(main)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(tree.Files) != 2 {
		t.Fatalf("expected cycle to stop at 2 files, got %d", len(tree.Files))
	}
}
