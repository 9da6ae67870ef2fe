package writer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cpmech/bdf/bdf/card"
	"github.com/cpmech/bdf/bdf/include"
	"github.com/cpmech/bdf/bdf/model"
	"github.com/cpmech/bdf/bdf/renumber"
	"github.com/cpmech/gosl/io"
)

// Request bundles everything one Write call needs: the populated store,
// the include tree C3 computed (authoritative for per-file ownership),
// the main file's verbatim executive/case-control preamble, any
// skip-listed cards' verbatim text, and an optional renumber remap to
// apply to case-control id references.
type Request struct {
	OutDir               string
	Store                *model.Store
	Tree                 *include.Tree
	ExecutiveCaseControl []string
	SkippedVerbatim      map[string][]string
	Remap                map[card.Family]map[int]int
}

// Report summarizes one Write call: every file actually written, and
// every card that failed to serialize (§4.7 "Failure semantics": the
// pass continues past individual card failures).
type Report struct {
	FilesWritten []string
	Failed       []error
}

// Write renders req.Store back to one file per req.Tree entry (§4.7).
func Write(req Request) (*Report, error) {
	if err := validateIncludeAcyclic(req.Tree); err != nil {
		return nil, err
	}
	if len(req.Tree.Files) == 0 {
		return nil, fmt.Errorf("writer: empty include tree")
	}

	views := make([]*catalogView, len(req.Tree.Files))
	for i, cat := range req.Tree.Files {
		views[i] = newCatalogView(cat)
	}

	rep := &Report{}
	outPaths := make([]string, len(req.Tree.Files))
	mainDir := filepath.Dir(req.Tree.Files[0].Path)

	for i, cat := range req.Tree.Files {
		rel, err := filepath.Rel(mainDir, cat.Path)
		if err != nil {
			rel = filepath.Base(cat.Path)
		}
		outPaths[i] = filepath.Join(req.OutDir, rel)
	}

	for i, cat := range req.Tree.Files {
		lines, ferrs := cardsForFile(req.Store, views[i])
		rep.Failed = append(rep.Failed, ferrs...)

		var b strings.Builder
		if i == 0 {
			for _, raw := range req.ExecutiveCaseControl {
				b.WriteString(renumber.RewriteCaseControlLine(raw, req.Remap))
				b.WriteString("\n")
			}
			b.WriteString("BEGIN BULK\n")
		}

		for _, ref := range cat.IncludeRefs {
			idx := fileIndexFor(req.Tree, ref)
			target := ref
			if idx >= 0 {
				rel, err := filepath.Rel(filepath.Dir(outPaths[i]), outPaths[idx])
				if err == nil {
					target = rel
				}
			}
			fmt.Fprintf(&b, "INCLUDE '%s'\n", filepath.ToSlash(target))
		}

		for _, txt := range req.SkippedVerbatim[cat.Path] {
			b.WriteString(txt)
			b.WriteString("\n")
		}

		for _, ln := range lines {
			b.WriteString(ln)
			b.WriteString("\n")
		}

		if i == 0 {
			diag := diagnosticSection(req.Store, views)
			if len(diag) > 0 {
				b.WriteString("$ UNOWNED CARDS (present in the model but not claimed by any file)\n")
				for _, ln := range diag {
					b.WriteString(ln)
					b.WriteString("\n")
				}
			}
			b.WriteString("ENDDATA\n")
		}

		dir := filepath.Dir(outPaths[i])
		base := filepath.Base(outPaths[i])
		io.WriteFileSD(dir, base, b.String())
		rep.FilesWritten = append(rep.FilesWritten, outPaths[i])
	}

	return rep, nil
}

func fileIndexFor(tree *include.Tree, path string) int {
	for i, cat := range tree.Files {
		if cat.Path == path {
			return i
		}
	}
	if cat, ok := tree.CatalogFor(path); ok {
		for i, c := range tree.Files {
			if c == cat {
				return i
			}
		}
	}
	return -1
}

// diagnosticSection renders every card present in s but claimed by no
// file's catalog (§4.7 "Ownership fallback").
func diagnosticSection(s *model.Store, views []*catalogView) []string {
	var lines []string

	emitIfUnowned := func(fam card.Family, id int, p card.Parsed) {
		for _, v := range views {
			if v.seen[fam] != nil && v.seen[fam][id] {
				return
			}
		}
		ls, err := emitOne(p)
		if err != nil {
			return
		}
		lines = append(lines, ls...)
	}

	emitIfUnownedName := func(fam card.Family, name string, p card.Parsed) {
		for _, v := range views {
			if v.seenNm[fam] != nil && v.seenNm[fam][name] {
				return
			}
		}
		ls, err := emitOne(p)
		if err != nil {
			return
		}
		lines = append(lines, ls...)
	}

	for _, id := range model.SortedCoordIDs(s) {
		emitIfUnowned(card.FamCoord, id, s.Coords[id])
	}
	for _, id := range model.SortedNodeIDs(s) {
		emitIfUnowned(card.FamNode, id, s.Nodes[id])
	}
	for _, id := range model.SortedElementIDs(s) {
		emitIfUnowned(card.FamElement, id, s.Elements[id])
	}
	for _, id := range model.SortedRigidIDs(s) {
		emitIfUnowned(card.FamRigid, id, s.Rigid[id])
	}
	for _, id := range model.SortedMassIDs(s) {
		emitIfUnowned(card.FamMass, id, s.Mass[id])
	}
	for _, id := range model.SortedPropertyIDs(s) {
		emitIfUnowned(card.FamProperty, id, s.Properties[id])
	}
	for _, id := range model.SortedMaterialIDs(s) {
		emitIfUnowned(card.FamMaterial, id, s.Materials[id])
	}
	for _, sid := range model.SortedLoadSetIDs(s) {
		for _, p := range s.LoadSets[sid] {
			emitIfUnowned(card.FamLoadSet, sid, p)
		}
	}
	for _, sid := range model.SortedSPCSetIDs(s) {
		for _, p := range s.SPCSets[sid] {
			emitIfUnowned(card.FamSPCSet, sid, p)
		}
	}
	for _, sid := range model.SortedMPCSetIDs(s) {
		for _, p := range s.MPCSets[sid] {
			emitIfUnowned(card.FamMPCSet, sid, p)
		}
	}
	for _, id := range sortedContactSurfaceIDs(s) {
		emitIfUnowned(card.FamContact, id, s.ContactSurfaces[id])
	}
	for _, id := range sortedContactPairIDs(s) {
		emitIfUnowned(card.FamContact, id, s.ContactPairs[id])
	}
	for _, id := range model.SortedSetIDs(s) {
		emitIfUnowned(card.FamSet, id, s.Sets[id])
	}
	for _, id := range model.SortedMethodIDs(s) {
		emitIfUnowned(card.FamMethod, id, s.Methods[id])
	}
	for _, id := range model.SortedTableIDs(s) {
		emitIfUnowned(card.FamTable, id, s.Tables[id])
	}
	for _, name := range sortedParamNames(s) {
		emitIfUnownedName(card.FamParam, name, s.Params[name])
	}

	return lines
}
