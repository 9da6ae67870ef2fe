// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package writer implements the writer (C7): re-emitting the model store
// back to one text file per entry in the include tree, preserving C3's
// ownership catalog and a canonical per-family card order (§4.7).
package writer

import (
	"strconv"
	"strings"
)

// shortWidth is the fixed-field column width the writer targets by
// default; large-field (16-column) output is a spec Non-goal (§4.7
// "large-field output is optional").
const shortWidth = 8

// FormatField renders one field value into a column of width chars:
// integers right-justified, reals squeezed into the canonical Nastran
// exponent form, everything else upper-cased and left-justified (§4.7
// "Per card").
func FormatField(s string, width int) string {
	if s == "" {
		return strings.Repeat(" ", width)
	}
	if iv, err := strconv.Atoi(s); err == nil {
		return padLeft(strconv.Itoa(iv), width)
	}
	if fv, err := strconv.ParseFloat(s, 64); err == nil {
		return padLeft(FormatReal(fv, width), width)
	}
	return padRight(strings.ToUpper(s), width)
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s[len(s)-width:]
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// FormatReal renders v in the canonical Nastran exponent form, fitting it
// into width columns including sign. Nastran drops the 'E' of a Go
// exponential literal and lets the exponent's own sign stand in its
// place, which is what buys back the column a plain strconv literal
// would otherwise overflow by.
func FormatReal(v float64, width int) string {
	if v == 0 {
		return "0."
	}
	if s := strconv.FormatFloat(v, 'G', -1, 64); len(s) <= width && !strings.ContainsAny(s, "Ee") {
		return s
	}
	for prec := width - 2; prec >= 0; prec-- {
		s := strconv.FormatFloat(v, 'G', prec, 64)
		if len(s) <= width && !strings.ContainsAny(s, "Ee") {
			return s
		}
	}
	for prec := width; prec >= 0; prec-- {
		s := strconv.FormatFloat(v, 'E', prec, 64)
		idx := strings.IndexAny(s, "Ee")
		if idx < 0 {
			continue
		}
		mantissa, exp := s[:idx], s[idx+1:]
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		squeezed := mantissa + sign + digits
		if len(squeezed) <= width {
			return squeezed
		}
	}
	// last resort: an ordinary scientific literal, possibly overflowing
	// width for pathologically large/small magnitudes.
	return strconv.FormatFloat(v, 'E', -1, 64)
}

// CardLines lays out name and fields into the short fixed-field physical
// lines: field 0 is the card name (or blank, on a continuation), fields
// 1..8 are data, field 9 (the continuation label) stays implicit and
// blank (§4.7 "Continuation is implicit").
func CardLines(name string, fields []string) []string {
	if len(fields) == 0 {
		return []string{strings.TrimRight(FormatField(name, shortWidth), " ")}
	}
	var lines []string
	for start := 0; start < len(fields); start += 8 {
		end := start + 8
		if end > len(fields) {
			end = len(fields)
		}
		var b strings.Builder
		if start == 0 {
			b.WriteString(FormatField(name, shortWidth))
		} else {
			b.WriteString(strings.Repeat(" ", shortWidth))
		}
		for _, f := range fields[start:end] {
			b.WriteString(FormatField(f, shortWidth))
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
}
