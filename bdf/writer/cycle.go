package writer

import (
	"fmt"

	"github.com/cpmech/bdf/bdf/include"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"
)

// validateIncludeAcyclic builds a directed graph of "file A includes
// file B" edges from the include tree and topologically sorts it.
// C3's own walk already refuses to recurse into a file it is still
// inside (§4.3 "cycle-safety"), so in practice this only re-confirms
// what the walk enforced; it is kept as an independent check the writer
// runs right before emission, the way a linker re-validates a dependency
// graph it did not itself build.
func validateIncludeAcyclic(tree *include.Tree) error {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	for _, cat := range tree.Files {
		if err := ensureVertex(g, cat.Path); err != nil {
			return fmt.Errorf("writer: include graph: %w", err)
		}
	}
	for _, cat := range tree.Files {
		for _, ref := range cat.IncludeRefs {
			if !g.HasVertex(ref) {
				// an include ref the tree did not resolve to a catalog
				// (e.g. a file outside the walked set) cannot close a
				// cycle on its own; skip it.
				continue
			}
			if _, err := g.AddEdge(cat.Path, ref, 0); err != nil {
				return fmt.Errorf("writer: include graph: %w", err)
			}
		}
	}

	if _, err := dfs.TopologicalSort(g); err != nil {
		return fmt.Errorf("writer: include cycle detected: %w", err)
	}
	return nil
}

func ensureVertex(g *core.Graph, id string) error {
	if g.HasVertex(id) {
		return nil
	}
	return g.AddVertex(id)
}
