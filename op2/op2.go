// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package op2 implements the OP2 reader (C11): decoding the Fortran-style
// record-delimited binary result file Nastran analyses produce into the
// typed, read-only numeric tables described by the eigenvalue,
// displacement/velocity/acceleration/spc-force/load-vector,
// element-result, strain-energy and modal-effective-mass families.
//
// Every "record" in the stream is a run of bytes bracketed by a
// four-byte little-endian length prefix and an identical length
// suffix, the classic Fortran unformatted-sequential convention. One
// table occupies four such records in a row: a name record, a fixed
// header record, an index record (identifying each result row by id,
// empty for tables whose rows need no external identity), and a data
// record holding the dense numeric payload. The reader walks the
// stream table by table, dispatching on the table name — and, for the
// element-keyed families, on the element-type code carried in the
// header — and simply consumes and discards the four records of any
// table it does not recognize, so an unknown table never blocks
// decoding of the tables after it.
package op2

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// record decoding helpers for the per-table payload records live in
// tables.go; this file only walks the Fortran record framing.

// BinaryDecodeError is §7's BinaryDecodeError(table-name, offset, cause).
type BinaryDecodeError struct {
	TableName string
	Offset    int64
	Cause     error
}

func (e *BinaryDecodeError) Error() string {
	return fmt.Sprintf("op2: decode error in table %q at offset %d: %v", e.TableName, e.Offset, e.Cause)
}

func (e *BinaryDecodeError) Unwrap() error { return e.Cause }

// tableHeader is the fixed 28-byte record every table carries right
// after its name record: enough shape information to read the index
// and data records generically before any name-specific dispatch runs.
type tableHeader struct {
	SubcaseID    int32
	ApproachCode int32
	ElementType  int32
	NTimes       int32
	NRows        int32
	NCols        int32
	NIndexRows   int32
}

type indexPair struct {
	ID1 int32
	ID2 int32
}

// Result collects every table a Read call decoded, keyed the way
// §4.11 describes: per-subcase for the eigenvalue and vector families,
// per-family-then-per-subcase for the element-keyed families.
type Result struct {
	Eigenvalues        map[int]*EigenvalueTable
	Displacements      map[int]*VectorTable
	Velocities         map[int]*VectorTable
	Accelerations      map[int]*VectorTable
	SPCForces          map[int]*VectorTable
	LoadVectors        map[int]*VectorTable
	ElementStress      map[string]map[int]*ElementResultTable
	ElementForce       map[string]map[int]*ElementResultTable
	StrainEnergy       map[string]map[int]*ElementResultTable
	ModalEffectiveMass map[int]*ModalEffectiveMassTable

	// SkippedTables records the name of every table the reader did
	// not recognize, in encounter order (the UnknownCard-equivalent
	// warning for this reader: downgraded, never fatal).
	SkippedTables []string
}

func newResult() *Result {
	return &Result{
		Eigenvalues:        map[int]*EigenvalueTable{},
		Displacements:      map[int]*VectorTable{},
		Velocities:         map[int]*VectorTable{},
		Accelerations:      map[int]*VectorTable{},
		SPCForces:          map[int]*VectorTable{},
		LoadVectors:        map[int]*VectorTable{},
		ElementStress:      map[string]map[int]*ElementResultTable{},
		ElementForce:       map[string]map[int]*ElementResultTable{},
		StrainEnergy:       map[string]map[int]*ElementResultTable{},
		ModalEffectiveMass: map[int]*ModalEffectiveMassTable{},
	}
}

// Read decodes the OP2 file at path into a Result. It never fails on
// an unrecognized table name; it only fails on a genuinely malformed
// record stream (a length prefix/suffix mismatch, a short read, or a
// table whose header cannot be decoded).
func Read(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("op2: cannot open %q: %v", path, err)
	}
	defer f.Close()
	return ReadStream(bufio.NewReader(f))
}

// ReadStream decodes an already-open OP2 byte stream; Read is a thin
// file-opening wrapper around this so tests can exercise the decoder
// against an in-memory buffer.
func ReadStream(r *bufio.Reader) (*Result, error) {
	res := newResult()
	var offset int64

	for {
		nameRec, err := readRecord(r, &offset)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &BinaryDecodeError{TableName: "<name>", Offset: offset, Cause: err}
		}
		name := strings.TrimSpace(string(nameRec))
		if name == "" {
			continue
		}

		hdrRec, err := readRecord(r, &offset)
		if err != nil {
			return nil, &BinaryDecodeError{TableName: name, Offset: offset, Cause: err}
		}
		var hdr tableHeader
		if err := binary.Read(bytes.NewReader(hdrRec), binary.LittleEndian, &hdr); err != nil {
			return nil, &BinaryDecodeError{TableName: name, Offset: offset, Cause: err}
		}

		idxRec, err := readRecord(r, &offset)
		if err != nil {
			return nil, &BinaryDecodeError{TableName: name, Offset: offset, Cause: err}
		}
		index, err := decodeIndex(idxRec, int(hdr.NIndexRows))
		if err != nil {
			return nil, &BinaryDecodeError{TableName: name, Offset: offset, Cause: err}
		}

		dataRec, err := readRecord(r, &offset)
		if err != nil {
			return nil, &BinaryDecodeError{TableName: name, Offset: offset, Cause: err}
		}
		data, err := decodeFloats(dataRec, int(hdr.NTimes)*int(hdr.NRows)*int(hdr.NCols))
		if err != nil {
			return nil, &BinaryDecodeError{TableName: name, Offset: offset, Cause: err}
		}

		if err := dispatch(res, name, hdr, index, data); err != nil {
			return nil, &BinaryDecodeError{TableName: name, Offset: offset, Cause: err}
		}
	}

	return res, nil
}

// readRecord consumes one Fortran-style length-delimited record:
// a four-byte little-endian length, that many bytes of payload, and a
// trailing four-byte length repeating the same value.
func readRecord(r *bufio.Reader, offset *int64) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	n := int32(binary.LittleEndian.Uint32(lenBuf[:]))
	if n < 0 {
		return nil, fmt.Errorf("negative record length %d", n)
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("short record payload: %v", err)
	}
	var trailBuf [4]byte
	if _, err := io.ReadFull(r, trailBuf[:]); err != nil {
		return nil, fmt.Errorf("short record trailer: %v", err)
	}
	trail := int32(binary.LittleEndian.Uint32(trailBuf[:]))
	if trail != n {
		return nil, fmt.Errorf("record length prefix %d does not match trailer %d", n, trail)
	}
	*offset += int64(8 + n)
	return payload, nil
}
