// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package card

import (
	"github.com/cpmech/bdf/bdf/field"
	"github.com/cpmech/gosl/chk"
)

// Parsed is whatever a per-card Parser produces; the full parser (C5)
// type-asserts it against the family's concrete Go type (e.g. *Node,
// *Element) before inserting it into the model store.
type Parsed interface{}

// ParseFunc turns one lexed logical card into a typed Parsed value.
type ParseFunc func(c *field.Card) (Parsed, error)

// WriteFunc renders a typed Parsed value back into the ordered list of
// logical lines it occupies (already column-formatted by bdf/writer's
// field emitter; WriteFunc only supplies field values, in order).
type WriteFunc func(p Parsed) (name string, fields []string, err error)

// PrimaryID extracts the primary id (§GLOSSARY "Primary id") from a lexed
// card without fully parsing it; this is all C3 (the include walker)
// needs.
type PrimaryIDFunc func(c *field.Card) (id int, ok bool)

// entry is one card registration.
type entry struct {
	family  Family
	parse   ParseFunc
	write   WriteFunc
	primary PrimaryIDFunc
}

// registry holds all known cards, keyed by upper-cased card name.
var registry = make(map[string]entry)

// Register adds a new card to the registry. It panics (a programmer
// error, not a runtime condition) if the name is already registered,
// mirroring ele/factory.go's SetAllocator/SetInfoFunc.
func Register(name string, family Family, parse ParseFunc, write WriteFunc, primary PrimaryIDFunc) {
	if _, ok := registry[name]; ok {
		chk.Panic("cannot register card %q because it exists already", name)
	}
	registry[name] = entry{family: family, parse: parse, write: write, primary: primary}
}

// Known reports whether name is a recognized card.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// FamilyOf returns the family a known card belongs to.
func FamilyOf(name string) (Family, bool) {
	e, ok := registry[name]
	if !ok {
		return 0, false
	}
	return e.family, true
}

// Parse dispatches to the registered parser for name.
func Parse(name string, c *field.Card) (Parsed, error) {
	e, ok := registry[name]
	if !ok {
		return nil, chk.Err("cannot parse unknown card %q", name)
	}
	return e.parse(c)
}

// Write dispatches to the registered writer for name.
func Write(name string, p Parsed) (string, []string, error) {
	e, ok := registry[name]
	if !ok {
		return "", nil, chk.Err("cannot write unknown card %q", name)
	}
	return e.write(p)
}

// PrimaryID dispatches to the registered primary-id extractor for name;
// this is the only thing C3 calls.
func PrimaryID(name string, c *field.Card) (int, bool) {
	e, ok := registry[name]
	if !ok {
		return 0, false
	}
	return e.primary(c)
}

// Names returns every registered card name; used to build the writer's
// canonical-order buckets and for diagnostics.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}

// firstFieldPrimaryID is the common PrimaryIDFunc for every card whose
// field 0 is its primary id (the overwhelming majority).
func firstFieldPrimaryID(c *field.Card) (int, bool) {
	id, ok, err := field.ParseInt(c.At(0))
	if err != nil || !ok {
		return 0, false
	}
	return id, true
}
