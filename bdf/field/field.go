// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements the BDF field lexer: splitting one logical
// bulk-data card (a primary line plus its continuations) into an ordered
// list of string fields, and coercing those fields into ints and reals
// using the Fortran-ish numeric conventions Nastran decks rely on.
package field

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// shortWidth and largeWidth are the fixed-field column widths (§4.1).
const (
	shortWidth    = 8
	largeWidth    = 16
	shortPerLine  = 8 // data fields per physical line in short format (excl. name and continuation label)
	largePerLine  = 4 // data fields per physical-line-half in large format
)

// Card is the result of lexing one logical card: its name and the ordered
// list of raw (untyped) field strings. An empty string denotes "blank".
type Card struct {
	Name   string   // upper-cased, trailing '*' stripped
	Large  bool     // true if the card used large (16-column) fields
	Fields []string // fields 1..N, in order (field 0, the name, is not included)
}

// Line is one physical source line together with its source position,
// used for error reporting.
type Line struct {
	Text string
	No   int // 1-based line number in the owning file
}

// MalformedField is returned when a field cannot be coerced to the
// numeric type its slot requires.
type MalformedField struct {
	Line, Col int
	Field     string
	Reason    string
}

func (e *MalformedField) Error() string {
	return chk.Err("malformed field %q at line %d col %d: %s", e.Field, e.Line, e.Col, e.Reason).Error()
}

// UnexpectedContinuation is returned when a continuation line has no
// preceding primary line to attach to.
type UnexpectedContinuation struct {
	Line int
}

func (e *UnexpectedContinuation) Error() string {
	return chk.Err("line %d: orphan continuation line", e.Line).Error()
}

// isBlankField reports whether a field slot should be treated as blank.
func isBlankField(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsContinuation reports whether raw physical line text looks like a
// continuation of a preceding logical card: it starts with '+' or '*'
// in column 1, or (fixed-field) its field-0 slot is blank.
func IsContinuation(text string) bool {
	if len(text) == 0 {
		return false
	}
	if text[0] == '+' || text[0] == '*' {
		return true
	}
	if strings.Contains(text, ",") {
		first := strings.SplitN(text, ",", 2)[0]
		return isBlankField(first)
	}
	w := shortWidth
	if len(text) < w {
		return isBlankField(text)
	}
	return isBlankField(text[:w])
}

// GroupLogical groups a stream of already-comment-stripped, non-blank
// physical lines into logical cards (a primary line plus any
// continuations). It never fails: orphan continuations (a continuation
// with no primary predecessor) are reported as a separate error slice so
// the caller can decide strictness.
func GroupLogical(lines []Line) (groups [][]Line, errs []error) {
	var cur []Line
	for _, ln := range lines {
		if IsContinuation(ln.Text) {
			if len(cur) == 0 {
				errs = append(errs, &UnexpectedContinuation{Line: ln.No})
				continue
			}
			cur = append(cur, ln)
			continue
		}
		if len(cur) > 0 {
			groups = append(groups, cur)
		}
		cur = []Line{ln}
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return
}

// Lex splits one logical card (primary line + continuations) into a
// Card. It auto-detects free-field (a comma anywhere on the primary
// line) vs. fixed-field, and short vs. large fixed-field (name ends in
// '*').
func Lex(group []Line) (*Card, error) {
	if len(group) == 0 {
		return nil, chk.Err("Lex: empty card group")
	}
	primary := group[0].Text
	free := strings.Contains(primary, ",")

	name, large := splitName(primary, free)
	c := &Card{Name: name, Large: large}

	if free {
		for _, ln := range group {
			c.Fields = append(c.Fields, splitFreeFields(ln.Text)...)
		}
		return c, nil
	}

	if large {
		// fields come in pairs of physical lines
		for i := 0; i < len(group); i += 2 {
			first := group[i].Text
			c.Fields = append(c.Fields, splitFixed(first, shortWidth, largeWidth, largePerLine, true)...)
			if i+1 < len(group) {
				second := group[i+1].Text
				c.Fields = append(c.Fields, splitFixed(second, shortWidth, largeWidth, largePerLine, false)...)
			}
		}
		return c, nil
	}

	for _, ln := range group {
		c.Fields = append(c.Fields, splitFixed(ln.Text, shortWidth, shortWidth, shortPerLine, ln.No == group[0].No)...)
	}
	return c, nil
}

// splitName extracts and normalizes the card name from the primary line.
func splitName(primary string, free bool) (name string, large bool) {
	var raw string
	if free {
		raw = strings.SplitN(primary, ",", 2)[0]
	} else {
		w := shortWidth
		if len(primary) < w {
			raw = primary
		} else {
			raw = primary[:w]
		}
	}
	raw = strings.TrimSpace(raw)
	large = strings.HasSuffix(raw, "*")
	raw = strings.TrimSuffix(raw, "*")
	return strings.ToUpper(strings.TrimSpace(raw)), large
}

// splitFixed splits one physical line into data fields, skipping the
// leading name/continuation-label slot (width nameWidth) and reading up
// to n fields of the given width; it never returns the trailing
// continuation-label slot (field 9 / field-after-last).
func splitFixed(line string, nameWidth, width int, n int, isPrimary bool) []string {
	// pad to the length we need
	need := nameWidth + n*width
	if len(line) < need {
		line = line + strings.Repeat(" ", need-len(line))
	}
	fields := make([]string, 0, n)
	pos := nameWidth
	for i := 0; i < n; i++ {
		fields = append(fields, strings.TrimSpace(line[pos:pos+width]))
		pos += width
	}
	return fields
}

// splitFreeFields splits one free-field physical line on commas,
// trimming whitespace, and drops the leading name/continuation token.
func splitFreeFields(line string) []string {
	parts := strings.Split(line, ",")
	if len(parts) == 0 {
		return nil
	}
	out := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// At returns field i (0-based over Fields), or "" if out of range.
func (c *Card) At(i int) string {
	if i < 0 || i >= len(c.Fields) {
		return ""
	}
	return c.Fields[i]
}

// ParseInt coerces a field to an optional integer. ok is false when the
// field is blank (unspecified).
func ParseInt(s string) (v int, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	n, e := strconv.Atoi(s)
	if e != nil {
		return 0, false, &MalformedField{Field: s, Reason: "not an integer"}
	}
	return n, true, nil
}

// ParseFloat coerces a field to an optional real using the Fortran-ish
// conventions: 'D'/'d' as exponent marker, and an implicit exponent sign
// with no E/D marker at all (e.g. "1.2-3" == 1.2e-3). A blank field
// yields (0, false, nil); the caller applies per-card defaults.
func ParseFloat(s string) (v float64, ok bool, err error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, false, nil
	}
	norm := normalizeReal(raw)
	f, e := strconv.ParseFloat(norm, 64)
	if e != nil {
		return 0, false, &MalformedField{Field: s, Reason: "not a real number"}
	}
	return f, true, nil
}

// normalizeReal rewrites Nastran's real-number shorthand into a form
// strconv.ParseFloat accepts.
func normalizeReal(s string) string {
	s = strings.NewReplacer("D", "E", "d", "e").Replace(s)
	if strings.ContainsAny(s, "Ee") {
		return s
	}
	// look for an implicit exponent sign: a +/- that isn't the leading
	// mantissa sign.
	for i := 1; i < len(s); i++ {
		if s[i] == '+' || s[i] == '-' {
			return s[:i] + "E" + s[i:]
		}
	}
	return s
}
