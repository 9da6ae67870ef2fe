// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bdf is the CLI surface over the library's five transforms:
// parse, renumber, scale, partition, and read-op2. Each subcommand is a
// thin wrapper translating flags (and, where a transform's input is
// shaped like a map, a small JSON config file) into the library's typed
// request structs, and prints the returned report with io.Pf*.
package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.PfWhite("\nbdf -- BDF/OP2 model-graph toolkit\n\n")

	flag.Parse()
	if flag.NArg() < 1 {
		chk.Panic("please provide a subcommand: parse, renumber, scale, partition, read-op2")
	}

	args := flag.Args()[1:]
	switch flag.Arg(0) {
	case "parse":
		cmdParse(args)
	case "renumber":
		cmdRenumber(args)
	case "scale":
		cmdScale(args)
	case "partition":
		cmdPartition(args)
	case "read-op2":
		cmdReadOP2(args)
	default:
		chk.Panic("unknown subcommand %q", flag.Arg(0))
	}
}
