// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xref

import (
	"testing"

	"github.com/cpmech/bdf/bdf/card"
	"github.com/cpmech/bdf/bdf/model"
	"github.com/cpmech/gosl/chk"
)

func Test_danglingElementNode(t *testing.T) {
	chk.PrintTitle("xref flags a dangling element node reference")
	s := model.New()
	s.Nodes[1] = &card.Node{ID: 1}
	s.Nodes[2] = &card.Node{ID: 2}
	s.Properties[1] = &card.Property{ID: 1, Kind: card.PropShell}
	s.Elements[10] = &card.Element{ID: 10, Type: card.CTRIA3, PID: 1, Nodes: []int{1, 2, 3}}

	res := Resolve(s)
	found := false
	for _, d := range res.Dangling {
		if d.FromFamily == card.FamElement && d.FromID == 10 && d.ToID == 3 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a dangling reference to missing node 3, got %+v", res.Dangling)
	}
}

func Test_noFalsePositives(t *testing.T) {
	chk.PrintTitle("xref reports nothing for a fully-resolved deck")
	s := model.New()
	s.Nodes[1] = &card.Node{ID: 1}
	s.Nodes[2] = &card.Node{ID: 2}
	s.Nodes[3] = &card.Node{ID: 3}
	s.Properties[1] = &card.Property{ID: 1, Kind: card.PropShell}
	s.Elements[10] = &card.Element{ID: 10, Type: card.CTRIA3, PID: 1, Nodes: []int{1, 2, 3}}

	res := Resolve(s)
	if len(res.Dangling) != 0 {
		t.Fatalf("expected no dangling references, got %+v", res.Dangling)
	}
}
