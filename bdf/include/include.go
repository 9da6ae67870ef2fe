// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package include implements the include-aware ownership tracker (C3): a
// text-only walk of a main BDF file and its transitive includes that
// records, per file, which (family, primary-id) pairs the file's bulk
// data introduces, and which lines carry a card C2 does not recognize.
package include

import (
	"path/filepath"
	"strings"

	"github.com/cpmech/bdf/bdf/card"
	"github.com/cpmech/bdf/bdf/field"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Catalog is one file's ownership record (§4.3).
type Catalog struct {
	Path string

	// Owned maps family -> set of primary ids this file's bulk data
	// introduces, for every family whose cards carry a numeric primary id.
	Owned map[card.Family]map[int]bool

	// OwnedNames covers families keyed by name instead of id (PARAM).
	OwnedNames map[card.Family]map[string]bool

	// Passthrough holds, in original order, the verbatim physical lines
	// of every card whose name the registry does not recognize.
	Passthrough []string

	// IncludeRefs lists this file's INCLUDE targets, resolved against this
	// file's own directory (absolute paths, since Walk starts from an
	// absolute main path), in encounter order.
	IncludeRefs []string
}

func newCatalog(path string) *Catalog {
	return &Catalog{
		Path:       path,
		Owned:      make(map[card.Family]map[int]bool),
		OwnedNames: make(map[card.Family]map[string]bool),
	}
}

func (c *Catalog) own(fam card.Family, id int) {
	set, ok := c.Owned[fam]
	if !ok {
		set = make(map[int]bool)
		c.Owned[fam] = set
	}
	set[id] = true
}

func (c *Catalog) ownName(fam card.Family, name string) {
	set, ok := c.OwnedNames[fam]
	if !ok {
		set = make(map[string]bool)
		c.OwnedNames[fam] = set
	}
	set[name] = true
}

// Owns reports whether this file's catalog claims (family, id).
func (c *Catalog) Owns(fam card.Family, id int) bool {
	return c.Owned[fam][id]
}

// Tree is the result of walking one main file and its transitive
// includes, one Catalog per file in depth-first encounter order.
type Tree struct {
	Files  []*Catalog
	byPath map[string]*Catalog
}

// CatalogFor looks up the catalog for a resolved file path.
func (t *Tree) CatalogFor(path string) (*Catalog, bool) {
	c, ok := t.byPath[path]
	return c, ok
}

// Walk performs the §4.3 walk starting at mainPath. A file already
// visited on the current recursion path is not re-entered.
func Walk(mainPath string) (*Tree, error) {
	abs, err := filepath.Abs(mainPath)
	if err != nil {
		return nil, chk.Err("include: cannot resolve path %q: %v", mainPath, err)
	}
	t := &Tree{byPath: make(map[string]*Catalog)}
	if err := walkFile(t, abs, make(map[string]bool)); err != nil {
		return nil, err
	}
	return t, nil
}

type rawLine struct {
	raw      string
	stripped string
	no       int
}

func walkFile(t *Tree, path string, visiting map[string]bool) error {
	if visiting[path] {
		return nil // cycle: already on the current walk path (§4.3 "Cycle safety")
	}
	if _, already := t.byPath[path]; already {
		return nil
	}
	visiting[path] = true
	defer delete(visiting, path)

	text, err := io.ReadFile(path)
	if err != nil {
		return chk.Err("include: cannot read %q: %v", path, err)
	}

	cat := newCatalog(path)
	t.byPath[path] = cat
	t.Files = append(t.Files, cat)

	var group []rawLine
	flush := func() {
		if len(group) > 0 {
			processGroup(cat, group)
			group = nil
		}
	}

	// an included file is bulk data from its first line; only the main
	// file carries executive/case control ahead of BEGIN BULK
	inBulk := cat != t.Files[0]
	for i, raw := range splitLines(string(text)) {
		stripped := stripComment(raw)
		trimmed := strings.TrimSpace(stripped)
		if trimmed == "" {
			continue
		}
		upper := strings.ToUpper(trimmed)

		if !inBulk {
			if strings.HasPrefix(upper, "BEGIN BULK") {
				inBulk = true
			}
			continue // executive/case control is not C3's concern
		}
		if upper == "ENDDATA" {
			break
		}
		if incPath, ok := parseIncludeLine(trimmed); ok {
			flush()
			target := filepath.Join(filepath.Dir(path), incPath)
			cat.IncludeRefs = append(cat.IncludeRefs, target)
			if err := walkFile(t, target, visiting); err != nil {
				return err
			}
			continue
		}
		if field.IsContinuation(stripped) {
			group = append(group, rawLine{raw: raw, stripped: stripped, no: i + 1})
			continue
		}
		flush()
		group = append(group, rawLine{raw: raw, stripped: stripped, no: i + 1})
	}
	flush()
	return nil
}

// processGroup lexes one logical card far enough to recover its name and
// primary id (§4.1 applied to fields 0 and 1 only) and files it into the
// catalog, or into the passthrough list if the card is unrecognized.
// Continuations of a passthrough card are themselves passthrough, since
// they arrive in the same group as their primary line.
func processGroup(cat *Catalog, group []rawLine) {
	lines := make([]field.Line, len(group))
	for i, g := range group {
		lines[i] = field.Line{Text: g.stripped, No: g.no}
	}
	lexed, err := field.Lex(lines)
	if err != nil || !card.Known(lexed.Name) {
		for _, g := range group {
			cat.Passthrough = append(cat.Passthrough, g.raw)
		}
		return
	}
	fam, _ := card.FamilyOf(lexed.Name)
	if id, ok := card.PrimaryID(lexed.Name, lexed); ok {
		cat.own(fam, id)
		return
	}
	// known card with no numeric primary id (PARAM): key by name instead.
	cat.ownName(fam, strings.TrimSpace(lexed.At(0)))
}

// splitLines splits file text into physical lines without the trailing
// newline, tolerating both "\n" and "\r\n".
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// stripComment blanks out a whole-line BDF comment ('$' in column 1 of
// the trimmed line); BDF has no trailing/inline comment form.
func stripComment(line string) string {
	if strings.HasPrefix(strings.TrimSpace(line), "$") {
		return ""
	}
	return line
}

// parseIncludeLine recognizes "INCLUDE 'path'" (case-insensitive keyword,
// quote-optional) on its own line.
func parseIncludeLine(trimmed string) (path string, ok bool) {
	const kw = "INCLUDE"
	upper := strings.ToUpper(trimmed)
	if !strings.HasPrefix(upper, kw) {
		return "", false
	}
	rest := strings.TrimSpace(trimmed[len(kw):])
	if rest == "" {
		return "", false
	}
	rest = strings.Trim(rest, "'\"")
	return strings.TrimSpace(rest), true
}
