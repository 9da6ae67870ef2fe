// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"flag"

	"github.com/cpmech/bdf/op2"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// op2Summary is the JSON shape the CLI surface's read-op2 subcommand
// dumps: one line per decoded table naming its shape, rather than the
// full numeric payload.
type op2Summary struct {
	Eigenvalues        map[int]int    `json:"eigenvalues_by_subcase"`   // subcase -> mode count
	Displacements      map[int][2]int `json:"displacements_by_subcase"` // subcase -> (n-times, n-nodes)
	Velocities         map[int][2]int `json:"velocities_by_subcase"`
	Accelerations      map[int][2]int `json:"accelerations_by_subcase"`
	SPCForces          map[int][2]int `json:"spc_forces_by_subcase"`
	LoadVectors        map[int][2]int `json:"load_vectors_by_subcase"`
	ElementStress      map[string]int `json:"element_stress_families"` // family -> subcase count
	ElementForce       map[string]int `json:"element_force_families"`
	StrainEnergy       map[string]int `json:"strain_energy_families"`
	ModalEffectiveMass map[int][2]int `json:"modal_effective_mass_by_subcase"` // subcase -> (n-dir, n-modes)
	SkippedTables      []string       `json:"skipped_tables"`
}

// cmdReadOP2 implements the read-op2 CLI surface: decode the file named
// by -in and print a JSON summary of every table found.
func cmdReadOP2(args []string) {
	fs := flag.NewFlagSet("read-op2", flag.ExitOnError)
	in := fs.String("in", "", "path to the .op2 file")
	fs.Parse(args)
	if *in == "" {
		chk.Panic("read-op2: -in is required")
	}

	res, err := op2.Read(*in)
	if err != nil {
		chk.Panic("read-op2: %v", err)
	}

	sum := op2Summary{
		Eigenvalues:        map[int]int{},
		Displacements:      map[int][2]int{},
		Velocities:         map[int][2]int{},
		Accelerations:      map[int][2]int{},
		SPCForces:          map[int][2]int{},
		LoadVectors:        map[int][2]int{},
		ElementStress:      map[string]int{},
		ElementForce:       map[string]int{},
		StrainEnergy:       map[string]int{},
		ModalEffectiveMass: map[int][2]int{},
		SkippedTables:      res.SkippedTables,
	}
	for sub, t := range res.Eigenvalues {
		sum.Eigenvalues[sub] = len(t.Rows)
	}
	for sub, t := range res.Displacements {
		sum.Displacements[sub] = [2]int{t.NTimes, len(t.Index)}
	}
	for sub, t := range res.Velocities {
		sum.Velocities[sub] = [2]int{t.NTimes, len(t.Index)}
	}
	for sub, t := range res.Accelerations {
		sum.Accelerations[sub] = [2]int{t.NTimes, len(t.Index)}
	}
	for sub, t := range res.SPCForces {
		sum.SPCForces[sub] = [2]int{t.NTimes, len(t.Index)}
	}
	for sub, t := range res.LoadVectors {
		sum.LoadVectors[sub] = [2]int{t.NTimes, len(t.Index)}
	}
	for fam, bySub := range res.ElementStress {
		sum.ElementStress[fam] = len(bySub)
	}
	for fam, bySub := range res.ElementForce {
		sum.ElementForce[fam] = len(bySub)
	}
	for fam, bySub := range res.StrainEnergy {
		sum.StrainEnergy[fam] = len(bySub)
	}
	for sub, t := range res.ModalEffectiveMass {
		sum.ModalEffectiveMass[sub] = [2]int{len(t.Data), len(t.Data[0])}
	}

	buf, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		chk.Panic("read-op2: %v", err)
	}
	io.Pf("%s\n", string(buf))
}
