// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/cpmech/bdf/bdf/card"
	"github.com/cpmech/gosl/chk"
)

func Test_insertAndBuckets(t *testing.T) {
	chk.PrintTitle("model store insert and sorted buckets")
	s := New()
	if err := s.Insert(&card.Node{ID: 3, Kind: card.Grid}); err != nil {
		t.Fatalf("insert node: %v", err)
	}
	if err := s.Insert(&card.Node{ID: 1, Kind: card.Grid}); err != nil {
		t.Fatalf("insert node: %v", err)
	}
	if err := s.Insert(&card.SPC{SID: 10, Node: 1, DOF: "123456"}); err != nil {
		t.Fatalf("insert spc: %v", err)
	}
	if err := s.Insert(&card.SPC1{SID: 10, DOF: "123", Nodes: []int{3}}); err != nil {
		t.Fatalf("insert spc1: %v", err)
	}

	ids := SortedNodeIDs(s)
	chk.Ints(t, "node ids", ids, []int{1, 3})

	set, ok := s.SPCSets[10]
	if !ok || len(set) != 2 {
		t.Fatalf("expected 2 accumulated SPC-family cards under set 10, got %d", len(set))
	}

	s.MarkSource(card.FamNode, 1, 0)
	if idx, ok := s.SourceOf(card.FamNode, 1); !ok || idx != 0 {
		t.Fatalf("expected source file index 0 for node 1")
	}
	if _, ok := s.SourceOf(card.FamNode, 99); ok {
		t.Fatalf("expected no source recorded for unseen node")
	}
}

func Test_insertRejectsUnknownType(t *testing.T) {
	chk.PrintTitle("model store rejects unhandled types")
	s := New()
	if err := s.Insert(42); err == nil {
		t.Fatalf("expected an error inserting a bare int")
	}
}
