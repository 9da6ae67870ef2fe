package writer

import (
	"fmt"

	"github.com/cpmech/bdf/bdf/card"
	"github.com/cpmech/bdf/bdf/model"
)

// writerNameFor picks the registered card name to hand to card.Write for
// one stored value, resolving the families whose Go struct was
// generalized across several Nastran card names (see names.go).
func writerNameFor(p card.Parsed) (string, bool) {
	switch v := p.(type) {
	case *card.Node:
		if v.Kind == card.ScalarPoint {
			return "SPOINT", true
		}
		return "GRID", true
	case *card.Element:
		return string(v.Type), true
	case *card.RigidElement:
		return rigidName(v.Kind), true
	case *card.MassElement:
		return massName(v.Kind), true
	case *card.Property:
		return propName(v.Kind), true
	case *card.Material:
		return matName(v), true
	case *card.CoordSys:
		return coordName(v), true
	case *card.SPC:
		return "SPC", true
	case *card.SPC1:
		return "SPC1", true
	case *card.SPCADD:
		return "SPCADD", true
	case *card.MPC:
		return "MPC", true
	case *card.MPCADD:
		return "MPCADD", true
	case *card.Load:
		return loadName(v), true
	case *card.ContactSurface:
		return contactSurfaceName(), true
	case *card.ContactPair:
		return v.Kind, true
	case *card.Set:
		return v.Kind, true
	case *card.Method:
		return v.Kind, true
	case *card.Table:
		return v.Kind, true
	case *card.Param:
		return "PARAM", true
	default:
		return "", false
	}
}

// emitOne renders one stored card's physical lines, or an error line and
// report entry if it could not be serialized (§4.7 "Failure semantics").
func emitOne(p card.Parsed) ([]string, error) {
	name, ok := writerNameFor(p)
	if !ok {
		return nil, fmt.Errorf("writer: no registered name for %T", p)
	}
	wname, fields, err := card.Write(name, p)
	if err != nil {
		return nil, fmt.Errorf("writer: %s: %w", name, err)
	}
	return CardLines(wname, fields), nil
}

// EmitCard exposes emitOne's canonical-name resolution and serialization
// to other engines (the partition engine reassigns cards across fresh
// per-part files and so, unlike the scale engine, cannot reuse a
// card's original literal source text).
func EmitCard(p card.Parsed) ([]string, error) {
	return emitOne(p)
}

// loadKindBucket partitions the three load sections the canonical order
// names separately: plain loads, load combinations (LOAD/DLOAD), and
// dynamic loads (Rxxxx/Txxxx/DAREA).
func loadKindBucket(l *card.Load) int {
	switch l.Kind {
	case card.LoadCombine:
		return 1
	case card.LoadDynamicTime, card.LoadDynamicFreq:
		return 2
	default:
		return 0
	}
}

// bucketIDs gathers one family's ids that cat owns, in ascending order.
func bucketIDs(ids []int, cat *catalogView, fam card.Family) []int {
	var out []int
	for _, id := range ids {
		if cat.owns(fam, id) {
			out = append(out, id)
		}
	}
	return out
}

// cardsForFile renders every card this file's catalog owns, in the
// canonical family order (§4.7): coords, nodes, structural elements,
// rigid elements, mass elements, properties, materials, loads,
// load-combinations, dynamic loads, constraints, contact, sets, methods,
// tables, params.
func cardsForFile(s *model.Store, cat *catalogView) ([]string, []error) {
	var lines []string
	var errs []error

	emit := func(p card.Parsed) {
		ls, err := emitOne(p)
		if err != nil {
			errs = append(errs, err)
			return
		}
		lines = append(lines, ls...)
	}

	for _, id := range bucketIDs(model.SortedCoordIDs(s), cat, card.FamCoord) {
		emit(s.Coords[id])
	}
	for _, id := range bucketIDs(model.SortedNodeIDs(s), cat, card.FamNode) {
		emit(s.Nodes[id])
	}
	for _, id := range bucketIDs(model.SortedElementIDs(s), cat, card.FamElement) {
		emit(s.Elements[id])
	}
	for _, id := range bucketIDs(model.SortedRigidIDs(s), cat, card.FamRigid) {
		emit(s.Rigid[id])
	}
	for _, id := range bucketIDs(model.SortedMassIDs(s), cat, card.FamMass) {
		emit(s.Mass[id])
	}
	for _, id := range bucketIDs(model.SortedPropertyIDs(s), cat, card.FamProperty) {
		emit(s.Properties[id])
	}
	for _, id := range bucketIDs(model.SortedMaterialIDs(s), cat, card.FamMaterial) {
		emit(s.Materials[id])
	}

	// the three load buckets share one store map (LoadSets) keyed by set
	// id; split by LoadKind at emission time rather than in the store.
	for bucket := 0; bucket < 3; bucket++ {
		for _, sid := range bucketIDs(model.SortedLoadSetIDs(s), cat, card.FamLoadSet) {
			for _, p := range s.LoadSets[sid] {
				l, ok := p.(*card.Load)
				if !ok || loadKindBucket(l) != bucket {
					continue
				}
				emit(l)
			}
		}
	}

	for _, sid := range bucketIDs(model.SortedSPCSetIDs(s), cat, card.FamSPCSet) {
		for _, p := range s.SPCSets[sid] {
			emit(p)
		}
	}
	for _, sid := range bucketIDs(model.SortedMPCSetIDs(s), cat, card.FamMPCSet) {
		for _, p := range s.MPCSets[sid] {
			emit(p)
		}
	}

	for _, id := range bucketIDs(sortedContactSurfaceIDs(s), cat, card.FamContact) {
		emit(s.ContactSurfaces[id])
	}
	for _, id := range bucketIDs(sortedContactPairIDs(s), cat, card.FamContact) {
		emit(s.ContactPairs[id])
	}

	for _, id := range bucketIDs(model.SortedSetIDs(s), cat, card.FamSet) {
		emit(s.Sets[id])
	}
	for _, id := range bucketIDs(model.SortedMethodIDs(s), cat, card.FamMethod) {
		emit(s.Methods[id])
	}
	for _, id := range bucketIDs(model.SortedTableIDs(s), cat, card.FamTable) {
		emit(s.Tables[id])
	}
	for _, name := range sortedParamNames(s) {
		if cat.ownsName(card.FamParam, name) {
			emit(s.Params[name])
		}
	}

	return lines, errs
}

func sortedContactSurfaceIDs(s *model.Store) []int {
	ids := make([]int, 0, len(s.ContactSurfaces))
	for id := range s.ContactSurfaces {
		ids = append(ids, id)
	}
	return sortInts(ids)
}

func sortedContactPairIDs(s *model.Store) []int {
	ids := make([]int, 0, len(s.ContactPairs))
	for id := range s.ContactPairs {
		ids = append(ids, id)
	}
	return sortInts(ids)
}

func sortedParamNames(s *model.Store) []string {
	names := make([]string, 0, len(s.Params))
	for n := range s.Params {
		names = append(names, n)
	}
	return sortStrings(names)
}
