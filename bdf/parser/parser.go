// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser implements the full parser (C5): driving the field
// lexer (C1) and card registry (C2) across the main file plus its
// transitive includes (enumerated by C3's include walk) to populate a
// typed model store (C4).
package parser

import (
	"path/filepath"
	"strings"

	"github.com/cpmech/bdf/bdf/card"
	"github.com/cpmech/bdf/bdf/field"
	"github.com/cpmech/bdf/bdf/include"
	"github.com/cpmech/bdf/bdf/model"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Options configures one parse invocation.
type Options struct {
	// Skip names cards to read as passthrough text instead of typed
	// cards (§4.5 "Skip list"), e.g. contact cards the typed parser does
	// not yet cover fully.
	Skip map[string]bool
}

// Result is everything C5 produces for one invocation: the populated
// store, the include tree C3 computed (authoritative for file
// ownership), the main file's verbatim executive/case-control text, and
// any skip-listed cards' verbatim text keyed by owning file path.
type Result struct {
	Store *model.Store
	Tree  *include.Tree

	// ExecutiveCaseControl holds the main file's non-blank, non-comment
	// lines up to (excluding) "BEGIN BULK", each verbatim, for C7 to copy
	// back (with case-control id
	// rewriting applied by C8 when renumbering).
	ExecutiveCaseControl []string

	// SkippedVerbatim holds, per owning file path, the raw lines of every
	// skip-listed card; C3's catalog still records its ownership, but C7
	// must reproduce the original text rather than re-serialize it.
	SkippedVerbatim map[string][]string

	Warnings []error
}

// Parse drives C1+C2 across mainPath and its transitive includes.
func Parse(mainPath string, opts Options) (*Result, error) {
	abs, err := filepath.Abs(mainPath)
	if err != nil {
		return nil, chk.Err("parser: cannot resolve path %q: %v", mainPath, err)
	}
	tree, err := include.Walk(abs)
	if err != nil {
		return nil, chk.Err("parser: include walk failed: %v", err)
	}

	res := &Result{
		Store:           model.New(),
		Tree:            tree,
		SkippedVerbatim: make(map[string][]string),
	}

	for fileIndex, cat := range tree.Files {
		if err := parseOneFile(res, opts, fileIndex, cat.Path); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// parseOneFile re-walks one file's own text (independent of C3's pass,
// mirroring §4.5's note that C5 and C3 both scan raw text and may
// disagree — C7 is told to prefer C3 on any such disagreement) and
// inserts every typed card it can produce into the store.
func parseOneFile(res *Result, opts Options, fileIndex int, path string) error {
	text, err := io.ReadFile(path)
	if err != nil {
		return chk.Err("parser: cannot read %q: %v", path, err)
	}

	lines := strings.Split(strings.ReplaceAll(string(text), "\r\n", "\n"), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	// an included file is bulk data from its first line; only the main
	// file carries executive/case control ahead of BEGIN BULK
	inBulk := fileIndex != 0
	var bulkLines []field.Line
	for i, raw := range lines {
		if strings.HasPrefix(strings.TrimSpace(raw), "$") {
			continue
		}
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		upper := strings.ToUpper(trimmed)

		if !inBulk {
			if strings.HasPrefix(upper, "BEGIN BULK") {
				inBulk = true
				continue
			}
			if fileIndex == 0 {
				res.ExecutiveCaseControl = append(res.ExecutiveCaseControl, raw)
			}
			continue
		}
		if upper == "ENDDATA" {
			break
		}
		if _, ok := parseIncludeLine(trimmed); ok {
			continue // C3 already resolved the include target
		}
		bulkLines = append(bulkLines, field.Line{Text: raw, No: i + 1})
	}

	groups, groupErrs := field.GroupLogical(bulkLines)
	for _, e := range groupErrs {
		res.Warnings = append(res.Warnings, e)
	}

	for _, g := range groups {
		lexed, err := field.Lex(g)
		if err != nil {
			res.Warnings = append(res.Warnings, chk.Err("parser: %v", err))
			continue
		}
		if !card.Known(lexed.Name) {
			continue // C3's catalog already owns this as passthrough
		}
		if opts.Skip[lexed.Name] {
			for _, ln := range g {
				res.SkippedVerbatim[path] = append(res.SkippedVerbatim[path], ln.Text)
			}
			continue
		}
		parsed, err := card.Parse(lexed.Name, lexed)
		if err != nil {
			res.Warnings = append(res.Warnings, chk.Err("parser: %s: %v", lexed.Name, err))
			continue
		}
		if err := res.Store.Insert(parsed); err != nil {
			res.Warnings = append(res.Warnings, err)
			continue
		}
		fam, _ := card.FamilyOf(lexed.Name)
		if id, ok := card.PrimaryID(lexed.Name, lexed); ok {
			res.Store.MarkSource(fam, id, fileIndex)
		}
	}

	if fileIndex == 0 {
		parseCaseControl(res)
	}
	return nil
}

// parseCaseControl extracts the case-control section (between CEND and
// BEGIN BULK) out of the already-captured executive/case-control
// preamble and records one CaseControlItem per recognized line.
func parseCaseControl(res *Result) {
	inCase := false
	for _, raw := range res.ExecutiveCaseControl {
		trimmed := strings.TrimSpace(raw)
		upper := strings.ToUpper(trimmed)
		if upper == "CEND" {
			inCase = true
			continue
		}
		if !inCase {
			continue
		}
		item := card.ParseCaseControlLine(trimmed)
		if item.Keyword != "" {
			res.Store.CaseControl = append(res.Store.CaseControl, item)
		}
	}
}

func parseIncludeLine(trimmed string) (string, bool) {
	const kw = "INCLUDE"
	upper := strings.ToUpper(trimmed)
	if !strings.HasPrefix(upper, kw) {
		return "", false
	}
	rest := strings.TrimSpace(trimmed[len(kw):])
	if rest == "" {
		return "", false
	}
	return strings.Trim(rest, "'\""), true
}
