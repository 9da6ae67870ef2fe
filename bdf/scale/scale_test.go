// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"os"
	"path/filepath"
	"strings"
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

// Test_scaleScenarioD reproduces the frame/skin/payload scenario: a
// passthrough file, a density-and-nsm scale, and a mass-and-inertia
// scale, each on its own include.
func Test_scaleScenarioD(t *testing.T) {
	chk.PrintTitle("scale multiplies density, nsm, and mass/inertia per file")
	dir := t.TempDir()

	frameBody := "MAT1,1,2.1e11,,.3,7850.\n"
	skinBody := "MAT1,2,7.0e10,,.33,2700.\nPSHELL,1,2,.002,,,,,1.5\n"
	payloadBody := "GRID,3,,0.,0.,0.\nCONM2,4,3,0,10.,0.,0.,0.,0.1,0.,0.1,0.,0.,0.1\n"

	writeTemp(t, dir, "frame.inc", frameBody)
	writeTemp(t, dir, "skin.inc", skinBody)
	writeTemp(t, dir, "payload.inc", payloadBody)
	main := writeTemp(t, dir, "main.bdf", "CEND\nBEGIN BULK\nINCLUDE 'frame.inc'\nINCLUDE 'skin.inc'\nINCLUDE 'payload.inc'\nENDDATA\n")

	res, err := parser.Parse(main, parser.Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	frameInc := res.Tree.Files[1].Path
	skinInc := res.Tree.Files[2].Path
	payloadInc := res.Tree.Files[3].Path

	outDir := filepath.Join(dir, "out")
	rep, err := Apply(Request{
		Store: res.Store,
		Tree:  res.Tree,
		Scales: []FileFactor{
			{FilePath: frameInc, Factor: 1.0},
			{FilePath: skinInc, Factor: 2.0},
			{FilePath: payloadInc, Factor: 0.5},
		},
		OutDir: outDir,
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	frameOut, err := os.ReadFile(filepath.Join(outDir, "frame.inc"))
	if err != nil {
		t.Fatalf("read frame.inc: %v", err)
	}
	if string(frameOut) != frameBody {
		t.Fatalf("frame.inc must be byte-identical, got:\n%s", frameOut)
	}

	skinOut, err := os.ReadFile(filepath.Join(outDir, "skin.inc"))
	if err != nil {
		t.Fatalf("read skin.inc: %v", err)
	}
	if !strings.Contains(string(skinOut), "5400") {
		t.Fatalf("expected skin.inc's MAT1 density scaled to 5400, got:\n%s", skinOut)
	}

	payloadOut, err := os.ReadFile(filepath.Join(outDir, "payload.inc"))
	if err != nil {
		t.Fatalf("read payload.inc: %v", err)
	}
	if !strings.Contains(string(payloadOut), "GRID") {
		t.Fatalf("expected payload.inc's GRID line preserved verbatim, got:\n%s", payloadOut)
	}
	mat := res.Store.Materials[2]
	chk.Scalar(t, "skin MAT1 density", 1e-6, mat.Rho, 5400)
	prop := res.Store.Properties[1]
	chk.Scalar(t, "skin PSHELL nsm", 1e-6, prop.NSM, 3.0)
	mass := res.Store.Mass[4]
	chk.Scalar(t, "payload CONM2 mass", 1e-6, mass.Mass, 5.0)
	chk.Scalar(t, "payload CONM2 I11", 1e-6, mass.I[0], 0.05)

	if len(rep.FilesWritten) != 4 { // 3 includes + summary
		t.Fatalf("expected 4 files written (3 includes + summary), got %d", len(rep.FilesWritten))
	}
	if !strings.Contains(rep.Summary, "Scale summary") {
		t.Fatalf("expected a rendered summary artifact")
	}
}
