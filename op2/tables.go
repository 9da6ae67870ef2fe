// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package op2

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cpmech/gosl/la"
)

// MatrixRowSentinel is the minimum element id a strain-energy row may
// carry while still denoting a matrix-level entry rather than a real
// element (§4.11, §8 property 9's sibling rule for strain energy).
const MatrixRowSentinel = 100000000

// EigenvalueRow is one row of an eigenvalue table: mode number, cyclic
// and angular frequency, generalized mass and generalized stiffness.
type EigenvalueRow struct {
	Mode     int
	Cycles   float64
	Radians  float64
	GenMass  float64
	GenStiff float64
}

// EigenvalueTable is the named row set §4.11 calls for.
type EigenvalueTable struct {
	Rows []EigenvalueRow
}

// NodeRow identifies one row of a displacement/velocity/acceleration/
// spc-force/load-vector table: the grid id and its Nastran grid-type
// code (1 = scalar/grid point, 2 = scalar point, ...).
type NodeRow struct {
	NodeID   int
	GridType int
}

// VectorTable is the per-subcase 3-D array §4.11 describes for the
// five per-node result families: shape (NTimes, len(Index), 6).
type VectorTable struct {
	NTimes int
	Data   [][][]float64
	Index  []NodeRow
}

// ElementRow identifies one row of an element-result or strain-energy
// table: the element id and, for corner-output families, the node id
// (zero denotes the element centroid, §4.11's "Centroid row vs.
// corner row").
type ElementRow struct {
	ElementID int
	NodeID    int
}

// ElementResultTable is the per-subcase 3-D array §4.11 describes for
// the element-keyed families (stress, force, strain energy): shape
// (NTimes, len(Index), NCols).
type ElementResultTable struct {
	Family string
	NTimes int
	NCols  int
	Data   [][][]float64
	Index  []ElementRow
}

// ModalEffectiveMassTable is the dense 6-by-n-modes matrix of §4.11,
// allocated the way the teacher's own dense-matrix code does it
// (la.MatAlloc's [][]float64, not an object-oriented matrix type).
type ModalEffectiveMassTable struct {
	Data [][]float64 // 6 rows (directions) x n-modes columns
}

func decodeIndex(rec []byte, n int) ([]indexPair, error) {
	if n == 0 {
		return nil, nil
	}
	if len(rec) != n*8 {
		return nil, fmt.Errorf("index record has %d bytes, want %d for %d rows", len(rec), n*8, n)
	}
	out := make([]indexPair, n)
	br := bytes.NewReader(rec)
	for i := range out {
		if err := binary.Read(br, binary.LittleEndian, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func decodeFloats(rec []byte, n int) ([]float64, error) {
	if n == 0 {
		return nil, nil
	}
	if len(rec) != n*8 {
		return nil, fmt.Errorf("data record has %d bytes, want %d for %d float64s", len(rec), n*8, n)
	}
	out := make([]float64, n)
	br := bytes.NewReader(rec)
	for i := range out {
		var bits uint64
		if err := binary.Read(br, binary.LittleEndian, &bits); err != nil {
			return nil, err
		}
		out[i] = math.Float64frombits(bits)
	}
	return out, nil
}

// elementFamilyByType maps the Nastran element-type code carried in a
// table's header to the base family name §4.11's element-result and
// strain-energy families key off. The codes mirror the handful of
// element types the card model (§3) actually knows about.
var elementFamilyByType = map[int32]string{
	33:  "shell",
	39:  "solid",
	34:  "bar",
	2:   "beam",
	102: "bush",
}

// dispatch routes one decoded table to its typed home in res. An
// unrecognized name or element-type code is recorded in
// res.SkippedTables and otherwise ignored, the binary equivalent of
// UnknownCard's downgrade-to-warning policy (§7).
func dispatch(res *Result, name string, hdr tableHeader, index []indexPair, data []float64) error {
	sub := int(hdr.SubcaseID)
	switch name {
	case "EIGENVALUES":
		res.Eigenvalues[sub] = decodeEigenvalue(hdr, data)
	case "OUGV1-DISP":
		res.Displacements[sub] = decodeVector(hdr, index, data)
	case "OUGV1-VELO":
		res.Velocities[sub] = decodeVector(hdr, index, data)
	case "OUGV1-ACCE":
		res.Accelerations[sub] = decodeVector(hdr, index, data)
	case "OQG1":
		res.SPCForces[sub] = decodeVector(hdr, index, data)
	case "OPG1":
		res.LoadVectors[sub] = decodeVector(hdr, index, data)
	case "OES1X1":
		fam, ok := elementFamilyByType[hdr.ElementType]
		if !ok {
			res.SkippedTables = append(res.SkippedTables, fmt.Sprintf("%s/type=%d", name, hdr.ElementType))
			return nil
		}
		key := fam + "-stress"
		if res.ElementStress[key] == nil {
			res.ElementStress[key] = map[int]*ElementResultTable{}
		}
		res.ElementStress[key][sub] = decodeElementResult(key, hdr, index, data)
	case "OEF1":
		fam, ok := elementFamilyByType[hdr.ElementType]
		if !ok {
			res.SkippedTables = append(res.SkippedTables, fmt.Sprintf("%s/type=%d", name, hdr.ElementType))
			return nil
		}
		key := fam + "-force"
		if res.ElementForce[key] == nil {
			res.ElementForce[key] = map[int]*ElementResultTable{}
		}
		res.ElementForce[key][sub] = decodeElementResult(key, hdr, index, data)
	case "ONRGY1":
		fam, ok := elementFamilyByType[hdr.ElementType]
		if !ok {
			res.SkippedTables = append(res.SkippedTables, fmt.Sprintf("%s/type=%d", name, hdr.ElementType))
			return nil
		}
		if res.StrainEnergy[fam] == nil {
			res.StrainEnergy[fam] = map[int]*ElementResultTable{}
		}
		res.StrainEnergy[fam][sub] = decodeElementResult(fam, hdr, index, data)
	case "OGPWG-EFM":
		res.ModalEffectiveMass[sub] = decodeModalEffectiveMass(hdr, data)
	default:
		res.SkippedTables = append(res.SkippedTables, name)
	}
	return nil
}

func decodeEigenvalue(hdr tableHeader, data []float64) *EigenvalueTable {
	t := &EigenvalueTable{Rows: make([]EigenvalueRow, 0, hdr.NRows)}
	cols := int(hdr.NCols)
	for row := 0; row < int(hdr.NRows); row++ {
		base := row * cols
		t.Rows = append(t.Rows, EigenvalueRow{
			Mode:     int(data[base+0]),
			Cycles:   data[base+1],
			Radians:  data[base+2],
			GenMass:  data[base+3],
			GenStiff: data[base+4],
		})
	}
	return t
}

func decodeVector(hdr tableHeader, index []indexPair, data []float64) *VectorTable {
	nTimes := int(hdr.NTimes)
	nRows := int(hdr.NRows)
	cols := int(hdr.NCols)
	vt := &VectorTable{NTimes: nTimes, Index: make([]NodeRow, nRows)}
	for i, p := range index {
		vt.Index[i] = NodeRow{NodeID: int(p.ID1), GridType: int(p.ID2)}
	}
	vt.Data = make([][][]float64, nTimes)
	for t := 0; t < nTimes; t++ {
		vt.Data[t] = la.MatAlloc(nRows, cols)
		for row := 0; row < nRows; row++ {
			base := (t*nRows + row) * cols
			copy(vt.Data[t][row], data[base:base+cols])
		}
	}
	return vt
}

func decodeElementResult(family string, hdr tableHeader, index []indexPair, data []float64) *ElementResultTable {
	nTimes := int(hdr.NTimes)
	nRows := int(hdr.NRows)
	cols := int(hdr.NCols)
	et := &ElementResultTable{Family: family, NTimes: nTimes, NCols: cols, Index: make([]ElementRow, nRows)}
	for i, p := range index {
		et.Index[i] = ElementRow{ElementID: int(p.ID1), NodeID: int(p.ID2)}
	}
	et.Data = make([][][]float64, nTimes)
	for t := 0; t < nTimes; t++ {
		et.Data[t] = la.MatAlloc(nRows, cols)
		for row := 0; row < nRows; row++ {
			base := (t*nRows + row) * cols
			copy(et.Data[t][row], data[base:base+cols])
		}
	}
	return et
}

func decodeModalEffectiveMass(hdr tableHeader, data []float64) *ModalEffectiveMassTable {
	nModes := int(hdr.NCols)
	m := &ModalEffectiveMassTable{Data: la.MatAlloc(6, nModes)}
	for dir := 0; dir < 6; dir++ {
		base := dir * nModes
		copy(m.Data[dir], data[base:base+nModes])
	}
	return m
}

// IsMatrixRow reports whether an element id in a strain-energy table
// is the sentinel §4.11 reserves for matrix-level entries rather than
// real elements.
func IsMatrixRow(elementID int) bool {
	return elementID >= MatrixRowSentinel
}
