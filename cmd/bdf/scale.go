// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/bdf/bdf/parser"
	"github.com/cpmech/bdf/bdf/scale"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// cmdScale implements the scale per-transform surface (§6): -in, -out,
// and -config (the { file -> scale } map).
func cmdScale(args []string) {
	fs := flag.NewFlagSet("scale", flag.ExitOnError)
	in := fs.String("in", "", "path to the main .bdf file")
	out := fs.String("out", "", "output directory")
	cfgPath := fs.String("config", "", "path to a JSON { file: scale } config")
	fs.Parse(args)
	if *in == "" || *out == "" || *cfgPath == "" {
		chk.Panic("scale: -in, -out, and -config are required")
	}

	var cfg scaleConfig
	readJSONConfig(*cfgPath, &cfg)

	res, err := parser.Parse(*in, parser.Options{})
	if err != nil {
		chk.Panic("scale: parse: %v", err)
	}

	req := scale.Request{Store: res.Store, Tree: res.Tree, OutDir: *out}
	for filePath, factor := range cfg.Scales {
		req.Scales = append(req.Scales, scale.FileFactor{FilePath: filePath, Factor: factor})
	}

	rep, err := scale.Apply(req)
	if err != nil {
		chk.Panic("scale: %v", err)
	}
	for _, f := range rep.FilesWritten {
		io.Pf("  wrote %s\n", f)
	}
	io.Pf("  mass before=%.6g after=%.6g\n", rep.MassBefore, rep.MassAfter)
	io.Pf("%s\n", rep.Summary)
}
