// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"path/filepath"

	"github.com/cpmech/bdf/bdf/card"
	"github.com/cpmech/bdf/bdf/parser"
	"github.com/cpmech/bdf/bdf/renumber"
	"github.com/cpmech/bdf/bdf/writer"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// familyByLabel is the CLI-facing inverse of card.Family.String(), used
// to read the JSON range-map config's family keys.
var familyByLabel = map[string]card.Family{
	"node": card.FamNode, "element": card.FamElement, "rigid": card.FamRigid,
	"mass": card.FamMass, "property": card.FamProperty, "material": card.FamMaterial,
	"coord": card.FamCoord, "spc": card.FamSPCSet, "mpc": card.FamMPCSet,
	"load": card.FamLoadSet, "contact": card.FamContact, "set": card.FamSet,
	"method": card.FamMethod, "table": card.FamTable, "param": card.FamParam,
}

// cmdRenumber implements the renumber per-transform surface (§6):
// -in, -out, -config (the { file -> { family -> [start,end] } } map
// plus the set-id-inclusive flag), and -dry-run for the SUPPLEMENTED
// check-only mode.
func cmdRenumber(args []string) {
	fs := flag.NewFlagSet("renumber", flag.ExitOnError)
	in := fs.String("in", "", "path to the main .bdf file")
	out := fs.String("out", "", "output directory")
	cfgPath := fs.String("config", "", "path to a JSON range-map config")
	dryRun := fs.Bool("dry-run", false, "validate and report without writing files")
	fs.Parse(args)
	if *in == "" || *cfgPath == "" {
		chk.Panic("renumber: -in and -config are required")
	}

	var cfg renumberConfig
	readJSONConfig(*cfgPath, &cfg)

	res, err := parser.Parse(*in, parser.Options{})
	if err != nil {
		chk.Panic("renumber: parse: %v", err)
	}

	req := renumber.Request{Store: res.Store, Tree: res.Tree, RemapSets: cfg.RemapSets, DryRun: *dryRun}
	for filePath, byFamily := range cfg.Files {
		for label, rng := range byFamily {
			fam, ok := familyByLabel[label]
			if !ok {
				chk.Panic("renumber: unknown family %q in config", label)
			}
			req.Ranges = append(req.Ranges, renumber.RangeSpec{FilePath: filePath, Family: fam, Start: rng[0], End: rng[1]})
		}
	}

	if errs := renumber.Validate(req); len(errs) > 0 {
		for _, e := range errs {
			io.PfRed("  validation error: %v\n", e)
		}
		chk.Panic("renumber: pre-validation failed")
	}

	plan, errs := renumber.Apply(req)
	if len(errs) > 0 {
		for _, e := range errs {
			io.PfRed("  error: %v\n", e)
		}
		chk.Panic("renumber: apply failed")
	}
	io.Pf("> renumbered %d buckets\n", len(plan.Buckets))

	if *dryRun || *out == "" {
		io.Pf("  dry-run: no files written\n")
		return
	}

	rep, err := writer.Write(writer.Request{
		OutDir:               *out,
		Store:                res.Store,
		Tree:                 res.Tree,
		ExecutiveCaseControl: res.ExecutiveCaseControl,
		SkippedVerbatim:      res.SkippedVerbatim,
		Remap:                plan.Remap,
	})
	if err != nil {
		chk.Panic("renumber: write: %v", err)
	}
	for _, f := range rep.FilesWritten {
		io.Pf("  wrote %s\n", f)
	}

	post, err := renumber.PostValidate(filepath.Join(*out, filepath.Base(*in)))
	if err != nil {
		io.PfYel("  post-validation: %v\n", err)
		return
	}
	io.Pf("  post-validation re-read: nodes=%d elements=%d\n", post.Nodes, post.Elements)
	for _, d := range post.DanglingElementNodes {
		io.PfYel("  post-validation dangling: element %d -> node %d\n", d.FromID, d.ToID)
	}
}
