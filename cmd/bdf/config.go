// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
)

// renumberConfig is the on-disk shape of §6's renumber input:
// { file -> { family -> [start, end] } }, plus the set-id-inclusive
// (RemapSets) flag.
type renumberConfig struct {
	RemapSets bool                   `json:"remap_sets"`
	Files     map[string]familyRange `json:"files"`
}

type familyRange map[string][2]int

// scaleConfig is §6's scale input: { file-index -> scale }, keyed here
// by file path since that is what the include tree resolves against.
type scaleConfig struct {
	Scales map[string]float64 `json:"scales"`
}

// partitionConfig carries the optional merge-set list §6 allows.
type partitionConfig struct {
	MergeSets [][]int `json:"merge_sets"`
}

func readJSONConfig(path string, v interface{}) {
	buf, err := os.ReadFile(path)
	if err != nil {
		chk.Panic("cannot read config %q: %v", path, err)
	}
	if err := json.Unmarshal(buf, v); err != nil {
		chk.Panic("cannot parse config %q: %v", path, err)
	}
}
