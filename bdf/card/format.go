// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package card

import "strconv"

// fmtInt0 renders an integer field, blank when the value is the
// "unspecified" sentinel 0 (used for optional coord/material ids).
func fmtInt0(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

// fmtIntList renders a list of ints as separate fields.
func fmtIntList(vs []int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = strconv.Itoa(v)
	}
	return out
}

// fmtReal renders a float as a plain decimal string; bdf/writer squeezes
// this into the 8-column Nastran exponent form at emission time.
func fmtReal(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// fmtReal0 is fmtReal but blank for exactly zero, for optional real slots
// where a blank field reads back as zero.
func fmtReal0(v float64) string {
	if v == 0 {
		return ""
	}
	return fmtReal(v)
}
