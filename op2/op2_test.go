// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package op2

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// writeRecord appends one Fortran-style length-delimited record to buf.
func writeRecord(buf *bytes.Buffer, payload []byte) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	buf.Write(lenBuf[:])
	buf.Write(payload)
	buf.Write(lenBuf[:])
}

func writeName(buf *bytes.Buffer, name string) {
	writeRecord(buf, []byte(name))
}

func writeHeader(buf *bytes.Buffer, h tableHeader) {
	var b bytes.Buffer
	binary.Write(&b, binary.LittleEndian, h)
	writeRecord(buf, b.Bytes())
}

func writeIndex(buf *bytes.Buffer, pairs []indexPair) {
	var b bytes.Buffer
	for _, p := range pairs {
		binary.Write(&b, binary.LittleEndian, p)
	}
	writeRecord(buf, b.Bytes())
}

func writeFloats(buf *bytes.Buffer, vals []float64) {
	var b bytes.Buffer
	for _, v := range vals {
		binary.Write(&b, binary.LittleEndian, math.Float64bits(v))
	}
	writeRecord(buf, b.Bytes())
}

// buildScenarioE assembles a synthetic OP2 stream for a SOL-103 run
// with 3 modes over 10 grid points: an eigenvalue table, an OUGV1
// displacement (eigenvector) table, and a modal effective-mass
// fraction table, exactly what Scenario E exercises.
func buildScenarioE() []byte {
	var buf bytes.Buffer
	nModes, nNodes := 3, 10

	// eigenvalue table: one row per mode, 5 columns.
	writeName(&buf, "EIGENVALUES")
	writeHeader(&buf, tableHeader{SubcaseID: 1, NTimes: 1, NRows: int32(nModes), NCols: 5, NIndexRows: 0})
	writeIndex(&buf, nil)
	var eigData []float64
	for m := 1; m <= nModes; m++ {
		eigData = append(eigData, float64(m), float64(m)*10.0, float64(m)*62.8, 1.0, float64(m*m))
	}
	writeFloats(&buf, eigData)

	// OUGV1 displacement (eigenvector) table: nModes "times", nNodes rows, 6 cols.
	writeName(&buf, "OUGV1-DISP")
	index := make([]indexPair, nNodes)
	for i := 0; i < nNodes; i++ {
		index[i] = indexPair{ID1: int32(i + 1), ID2: 1}
	}
	writeHeader(&buf, tableHeader{SubcaseID: 1, NTimes: int32(nModes), NRows: int32(nNodes), NCols: 6, NIndexRows: int32(nNodes)})
	writeIndex(&buf, index)
	var vecData []float64
	for t := 0; t < nModes; t++ {
		for n := 0; n < nNodes; n++ {
			for c := 0; c < 6; c++ {
				vecData = append(vecData, float64(t+1)*0.01+float64(n)*0.001+float64(c)*0.0001)
			}
		}
	}
	writeFloats(&buf, vecData)

	// modal effective mass fraction: 6 directions x nModes columns.
	writeName(&buf, "OGPWG-EFM")
	writeHeader(&buf, tableHeader{SubcaseID: 1, NTimes: 1, NRows: 6, NCols: int32(nModes), NIndexRows: 0})
	writeIndex(&buf, nil)
	var effData []float64
	fracs := []float64{0.5, 0.3, 0.2}
	for dir := 0; dir < 6; dir++ {
		for m := 0; m < nModes; m++ {
			effData = append(effData, fracs[m])
		}
	}
	writeFloats(&buf, effData)

	// an unrecognized table at the end of the stream: it must be
	// recorded as skipped without failing the read.
	writeName(&buf, "UNKNOWNTBL")
	writeHeader(&buf, tableHeader{SubcaseID: 1, NTimes: 1, NRows: 1, NCols: 1, NIndexRows: 0})
	writeIndex(&buf, nil)
	writeFloats(&buf, []float64{0})

	return buf.Bytes()
}

// Test_readScenarioE reproduces spec.md's Scenario E end to end.
func Test_readScenarioE(t *testing.T) {
	chk.PrintTitle("op2 decodes a SOL-103 run's eigenvalue, eigenvector and modal effective-mass tables")

	raw := buildScenarioE()
	res, err := ReadStream(bufio.NewReader(bytes.NewReader(raw)))
	if err != nil {
		t.Fatalf("ReadStream: %v", err)
	}

	eig, ok := res.Eigenvalues[1]
	if !ok {
		t.Fatalf("expected an eigenvalue table for subcase 1")
	}
	if len(eig.Rows) != 3 {
		t.Fatalf("expected 3 modes, got %d", len(eig.Rows))
	}

	disp, ok := res.Displacements[1]
	if !ok {
		t.Fatalf("expected a displacement table for subcase 1")
	}
	if disp.NTimes != 3 {
		t.Fatalf("expected 3 times (modes), got %d", disp.NTimes)
	}
	if len(disp.Index) != 10 {
		t.Fatalf("expected 10 nodes, got %d", len(disp.Index))
	}
	for _, slice := range disp.Data {
		if len(slice) != 10 {
			t.Fatalf("expected 10 rows per time, got %d", len(slice))
		}
		for _, row := range slice {
			if len(row) != 6 {
				t.Fatalf("expected 6 columns per row, got %d", len(row))
			}
		}
	}

	meff, ok := res.ModalEffectiveMass[1]
	if !ok {
		t.Fatalf("expected a modal effective-mass table for subcase 1")
	}
	if len(meff.Data) != 6 {
		t.Fatalf("expected 6 rows (directions), got %d", len(meff.Data))
	}
	for _, row := range meff.Data {
		if len(row) != 3 {
			t.Fatalf("expected 3 columns (modes), got %d", len(row))
		}
	}

	running := CumulativeSumByDirection(meff)
	if len(running) != 3 {
		t.Fatalf("expected a (3, 6) running-total matrix, got %d rows", len(running))
	}
	final := running[len(running)-1]
	if len(final) != 6 {
		t.Fatalf("expected 6 columns in the final row, got %d", len(final))
	}
	for _, v := range final {
		if v < 0 || v > 1.0 {
			t.Fatalf("expected the final row's entries in [0, 1.0], got %v", v)
		}
	}

	found := false
	for _, name := range res.SkippedTables {
		if name == "UNKNOWNTBL" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected UNKNOWNTBL to be recorded as skipped, got %v", res.SkippedTables)
	}
}

// Test_strainEnergyMatrixRowSentinel checks §4.11's skip rule for
// strain-energy rows whose element id denotes a matrix-level entry.
func Test_strainEnergyMatrixRowSentinel(t *testing.T) {
	if !IsMatrixRow(100000000) {
		t.Fatalf("expected 1e8 to be a matrix row")
	}
	if IsMatrixRow(99999999) {
		t.Fatalf("expected a real element id below 1e8 not to be a matrix row")
	}
}
