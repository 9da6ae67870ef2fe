package renumber

import (
	"github.com/cpmech/bdf/bdf/parser"
	"github.com/cpmech/bdf/bdf/xref"
	"github.com/cpmech/gosl/chk"
)

// PostReport is the post-apply validation §4.8 requires: a from-scratch
// re-read of the emitted main file, independent of whatever in-memory
// store Apply just mutated.
type PostReport struct {
	Nodes, Elements, Properties, Materials, Coords int

	// DanglingElementNodes holds every element-node reference that failed
	// to resolve in the re-read deck (§4.8 "confirm every element's nodes
	// resolve").
	DanglingElementNodes []xref.Dangling
}

// PostValidate re-parses mainPath from scratch and reports entity counts
// plus any element whose node references fail to resolve against that
// fresh read.
func PostValidate(mainPath string) (*PostReport, error) {
	res, err := parser.Parse(mainPath, parser.Options{})
	if err != nil {
		return nil, chk.Err("renumber: post-apply re-read failed: %v", err)
	}

	rep := &PostReport{
		Nodes:      len(res.Store.Nodes),
		Elements:   len(res.Store.Elements),
		Properties: len(res.Store.Properties),
		Materials:  len(res.Store.Materials),
		Coords:     len(res.Store.Coords),
	}

	result := xref.Resolve(res.Store)
	for _, d := range result.Dangling {
		if d.Slot == "Nodes" {
			rep.DanglingElementNodes = append(rep.DanglingElementNodes, d)
		}
	}

	return rep, nil
}
