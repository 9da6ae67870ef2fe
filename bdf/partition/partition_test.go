// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partition

import (
	"os"
	"path/filepath"
	"testing"

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

// Test_partitionScenarioC reproduces the spec's "one CBUSH-RBE2-RBE2
// chain" scenario: two plates sharing no nodes, each bonded by an RBE2
// to a single independent node, those two independent nodes forming
// one CBUSH. Expect exactly 2 parts and 1 joint.
func Test_partitionScenarioC(t *testing.T) {
	chk.PrintTitle("partition splits a two-plate, one-chain model into 2 parts and 1 joint")
	dir := t.TempDir()

	body := `$ Plate A
GRID,1,,0.,0.,0.
GRID,2,,1.,0.,0.
GRID,3,,1.,1.,0.
GRID,4,,0.,1.,0.
GRID,5,,0.5,0.5,0.
GRID,100,,0.5,0.5,1.
$ Plate B
GRID,6,,10.,0.,0.
GRID,7,,11.,0.,0.
GRID,8,,11.,1.,0.
GRID,9,,10.,1.,0.
GRID,10,,10.5,0.5,0.
GRID,200,,10.5,0.5,1.
CQUAD4,1,10,1,2,3,4
CQUAD4,2,10,6,7,8,9
RBE2,21,100,123456,1,2,3,4,5
RBE2,22,200,123456,6,7,8,9,10
CBUSH,31,40,100,200
PSHELL,10,50,.01
PBUSH,40,1.,1.,1.,1.,1.,1.
MAT1,50,2.1e11,,.3
`
	main := writeTemp(t, dir, "main.bdf", "CEND\nBEGIN BULK\n"+body+"ENDDATA\n")

	res, err := parser.Parse(main, parser.Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	part, err := Partition(res.Store, res.Tree)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}

	if len(part.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d: %+v", len(part.Parts), part.Parts)
	}
	if len(part.Joints) != 1 {
		t.Fatalf("expected 1 joint, got %d", len(part.Joints))
	}

	var joint *Joint
	for _, j := range part.Joints {
		joint = j
	}
	if len(joint.CBUSHIDs) != 1 || joint.CBUSHIDs[0] != 31 {
		t.Fatalf("expected joint to carry CBUSH 31, got %v", joint.CBUSHIDs)
	}
	if len(joint.RBE2IDs) != 2 {
		t.Fatalf("expected joint to carry both RBE2s, got %v", joint.RBE2IDs)
	}
	if len(joint.PropertyIDs) != 1 || joint.PropertyIDs[0] != 40 {
		t.Fatalf("expected joint to carry PBUSH 40, got %v", joint.PropertyIDs)
	}

	for _, p := range part.Parts {
		if len(p.Elements) != 1 {
			t.Fatalf("expected each part to own exactly 1 CQUAD4, got %d", len(p.Elements))
		}
		if len(p.Nodes) != 5 {
			t.Fatalf("expected each part to own 4 plate nodes + the RBE2 dependent set (5), got %d", len(p.Nodes))
		}
	}

	outDir := filepath.Join(dir, "out")
	rep, err := Emit(part, EmitRequest{OutDir: outDir, ExecutiveCaseControl: res.ExecutiveCaseControl})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	// 2 parts + 1 joint + shared.bdf + master.bdf
	if len(rep.FilesWritten) != 5 {
		t.Fatalf("expected 5 files written, got %d: %v", len(rep.FilesWritten), rep.FilesWritten)
	}
	if rep.Validation.TotalElements != 3 { // 2 CQUAD4 + 1 CBUSH
		t.Fatalf("expected 3 total elements, got %d", rep.Validation.TotalElements)
	}
	if rep.Validation.ElementsWrittenUnderParts != 2 {
		t.Fatalf("expected 2 elements written under parts (the CBUSH lives in the joint file), got %d", rep.Validation.ElementsWrittenUnderParts)
	}

	master, err := os.ReadFile(filepath.Join(outDir, "master.bdf"))
	if err != nil {
		t.Fatalf("read master.bdf: %v", err)
	}
	if len(master) == 0 {
		t.Fatalf("expected a non-empty master.bdf")
	}
}

// Test_mergePartsAbsorbsJoint merges the two parts from Scenario C and
// checks that the joint disappears, its hardware migrating into the
// fused part (§4.10 step 6, and the merge-idempotence property).
func Test_mergePartsAbsorbsJoint(t *testing.T) {
	chk.PrintTitle("merge-parts absorbs a joint whose both sides are in the merged set")
	dir := t.TempDir()

	body := `GRID,1,,0.,0.,0.
GRID,2,,1.,0.,0.
GRID,3,,1.,1.,0.
GRID,4,,0.,1.,0.
GRID,5,,0.5,0.5,0.
GRID,100,,0.5,0.5,1.
GRID,6,,10.,0.,0.
GRID,7,,11.,0.,0.
GRID,8,,11.,1.,0.
GRID,9,,10.,1.,0.
GRID,10,,10.5,0.5,0.
GRID,200,,10.5,0.5,1.
CQUAD4,1,10,1,2,3,4
CQUAD4,2,10,6,7,8,9
RBE2,21,100,123456,1,2,3,4,5
RBE2,22,200,123456,6,7,8,9,10
CBUSH,31,40,100,200
PSHELL,10,50,.01
PBUSH,40,1.,1.,1.,1.,1.,1.
MAT1,50,2.1e11,,.3
`
	main := writeTemp(t, dir, "main.bdf", "CEND\nBEGIN BULK\n"+body+"ENDDATA\n")

	res, err := parser.Parse(main, parser.Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	part, err := Partition(res.Store, res.Tree)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}

	var ids []int
	for id := range part.Parts {
		ids = append(ids, id)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 parts before merge, got %d", len(ids))
	}

	if err := MergeParts(part, ids); err != nil {
		t.Fatalf("MergeParts: %v", err)
	}

	if len(part.Parts) != 1 {
		t.Fatalf("expected 1 part after merge, got %d", len(part.Parts))
	}
	if len(part.Joints) != 0 {
		t.Fatalf("expected the joint to be absorbed, got %d remaining", len(part.Joints))
	}

	var merged *Part
	for _, p := range part.Parts {
		merged = p
	}
	if !merged.Elements[31] {
		t.Fatalf("expected the CBUSH to migrate into the merged part")
	}
	if !merged.Rigid[21] || !merged.Rigid[22] {
		t.Fatalf("expected both RBE2s to migrate into the merged part")
	}
	if !merged.Properties[40] {
		t.Fatalf("expected the PBUSH property to migrate into the merged part")
	}
}
