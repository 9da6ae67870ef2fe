// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/bdf/bdf/parser"
	"github.com/cpmech/bdf/bdf/writer"
	"github.com/cpmech/bdf/bdf/xref"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// cmdParse parses a deck, optionally cross-references and re-writes it,
// and reports the card counts and any warnings found along the way.
func cmdParse(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	in := fs.String("in", "", "path to the main .bdf file")
	out := fs.String("out", "", "output directory; if set, the parsed deck is re-written")
	fs.Parse(args)
	if *in == "" {
		chk.Panic("parse: -in is required")
	}

	res, err := parser.Parse(*in, parser.Options{})
	if err != nil {
		chk.Panic("parse: %v", err)
	}

	io.Pf("> parsed %s\n", *in)
	io.Pf("  nodes=%d elements=%d rigid=%d mass=%d properties=%d materials=%d\n",
		len(res.Store.Nodes), len(res.Store.Elements), len(res.Store.Rigid),
		len(res.Store.Mass), len(res.Store.Properties), len(res.Store.Materials))
	io.Pf("  include files: %d\n", len(res.Tree.Files))
	for _, w := range res.Warnings {
		io.PfYel("  warning: %v\n", w)
	}

	xres := xref.Resolve(res.Store)
	for _, d := range xres.Dangling {
		io.PfYel("  dangling reference: %s %d .%s -> %s %d\n", d.FromFamily, d.FromID, d.Slot, d.ToFamily, d.ToID)
	}

	if *out == "" {
		return
	}
	rep, err := writer.Write(writer.Request{
		OutDir:               *out,
		Store:                res.Store,
		Tree:                 res.Tree,
		ExecutiveCaseControl: res.ExecutiveCaseControl,
		SkippedVerbatim:      res.SkippedVerbatim,
	})
	if err != nil {
		chk.Panic("parse: write: %v", err)
	}
	for _, f := range rep.FilesWritten {
		io.Pf("  wrote %s\n", f)
	}
	for _, e := range rep.Failed {
		io.PfRed("  write failed: %v\n", e)
	}
}
