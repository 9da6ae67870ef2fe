package renumber

import "github.com/cpmech/bdf/bdf/card"

// KeywordFamily maps every case-control keyword §4.8 names to the set
// family its integer value references. FREQ, TSTEP, SDAMP, DEFORM, and
// SUPORT1 are recognized but intentionally left unmapped: §3's Family
// enum has no bucket for frequency/time-step/damping/deform/support sets,
// so those keywords' values pass through unrewritten rather than being
// silently pointed at the wrong family.
var KeywordFamily = map[string]card.Family{
	"LOAD":        card.FamLoadSet,
	"DLOAD":       card.FamLoadSet,
	"TEMPERATURE": card.FamLoadSet, // TEMPERATURE(LOAD) and TEMPERATURE(INITIAL)
	"SPC":         card.FamSPCSet,
	"MPC":         card.FamMPCSet,
	"METHOD":      card.FamMethod,
	"CMETHOD":     card.FamMethod,
}

// RewriteCaseControl applies remap to every item whose keyword resolves
// to a mapped family, leaving every other item untouched.
func RewriteCaseControl(items []card.CaseControlItem, remap map[card.Family]map[int]int) []card.CaseControlItem {
	if remap == nil {
		return items
	}
	out := make([]card.CaseControlItem, len(items))
	for i, item := range items {
		fam, ok := KeywordFamily[item.Keyword]
		if !ok {
			out[i] = item
			continue
		}
		m, ok := remap[fam]
		if !ok {
			out[i] = item
			continue
		}
		if newID, ok := m[item.Value]; ok {
			item.Value = newID
		}
		out[i] = item
	}
	return out
}

// RewriteCaseControlLine rewrites one raw executive/case-control line
// through remap, matching the writer's own narrower rewrite (§4.7) but
// against the full §4.8 keyword set.
func RewriteCaseControlLine(raw string, remap map[card.Family]map[int]int) string {
	if remap == nil {
		return raw
	}
	item := card.ParseCaseControlLine(raw)
	if item.Keyword == "" {
		return raw
	}
	fam, ok := KeywordFamily[item.Keyword]
	if !ok {
		return raw
	}
	m, ok := remap[fam]
	if !ok {
		return raw
	}
	if newID, ok := m[item.Value]; ok {
		item.Value = newID
	}
	return card.WriteCaseControlLine(item)
}
