// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/bdf/bdf/parser"
	"github.com/cpmech/bdf/bdf/partition"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// cmdPartition implements the partition per-transform surface (§6):
// -in, -out, and an optional -config naming merge sets.
func cmdPartition(args []string) {
	fs := flag.NewFlagSet("partition", flag.ExitOnError)
	in := fs.String("in", "", "path to the main .bdf file")
	out := fs.String("out", "", "output directory")
	cfgPath := fs.String("config", "", "optional path to a JSON { merge_sets: [[id,id,...]] } config")
	fs.Parse(args)
	if *in == "" || *out == "" {
		chk.Panic("partition: -in and -out are required")
	}

	res, err := parser.Parse(*in, parser.Options{})
	if err != nil {
		chk.Panic("partition: parse: %v", err)
	}

	part, err := partition.Partition(res.Store, res.Tree)
	if err != nil {
		chk.Panic("partition: %v", err)
	}
	io.Pf("> partitioned into %d parts, %d joints\n", len(part.Parts), len(part.Joints))

	if *cfgPath != "" {
		var cfg partitionConfig
		readJSONConfig(*cfgPath, &cfg)
		for _, ids := range cfg.MergeSets {
			if err := partition.MergeParts(part, ids); err != nil {
				chk.Panic("partition: merge %v: %v", ids, err)
			}
			io.Pf("  merged %v\n", ids)
		}
	}

	rep, err := partition.Emit(part, partition.EmitRequest{OutDir: *out, ExecutiveCaseControl: res.ExecutiveCaseControl})
	if err != nil {
		chk.Panic("partition: emit: %v", err)
	}
	for _, f := range rep.FilesWritten {
		io.Pf("  wrote %s\n", f)
	}
	io.Pf("  total: elements=%d nodes=%d; under parts: elements=%d nodes=%d\n",
		rep.Validation.TotalElements, rep.Validation.TotalNodes,
		rep.Validation.ElementsWrittenUnderParts, rep.Validation.NodesWrittenUnderParts)
}
