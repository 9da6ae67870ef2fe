// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partition

import (
	"strings"

	"github.com/cpmech/bdf/bdf/card"
	"github.com/cpmech/bdf/bdf/field"
	"github.com/cpmech/bdf/bdf/include"
	"github.com/cpmech/gosl/io"
)

// propertyComment scans tree's raw source text for the "$ ..." comment
// line immediately preceding propID's property card. Ownership tracking
// (C3/C4) never retains comment text, so this is an independent
// re-scan of each file's physical lines, the same spirit as the scale
// engine's own line-level rescan; it only needs a property card's
// single primary line, so multi-line continuations are not grouped
// here.
func propertyComment(tree *include.Tree, propID int) (string, bool) {
	if tree == nil {
		return "", false
	}
	for _, cat := range tree.Files {
		raw, err := io.ReadFile(cat.Path)
		if err != nil {
			continue
		}
		lines := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")

		pending := ""
		for i, ln := range lines {
			trimmed := strings.TrimSpace(ln)
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, "$") {
				pending = strings.TrimSpace(strings.TrimPrefix(trimmed, "$"))
				continue
			}
			lexed, err := field.Lex([]field.Line{{Text: trimmed, No: i + 1}})
			if err == nil && card.Known(lexed.Name) {
				if fam, ok := card.FamilyOf(lexed.Name); ok && fam == card.FamProperty {
					if id, ok := card.PrimaryID(lexed.Name, lexed); ok && id == propID {
						return pending, pending != ""
					}
				}
			}
			pending = ""
		}
	}
	return "", false
}
