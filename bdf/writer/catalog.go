package writer

import (
	"sort"

	"github.com/cpmech/bdf/bdf/card"
	"github.com/cpmech/bdf/bdf/include"
)

// catalogView adapts one include.Catalog to the family/id and
// family/name ownership queries cardsForFile needs, and records every
// id/name it is asked about so Write can compute the diagnostic
// fallback section (cards C4 holds that no file's catalog claims).
type catalogView struct {
	cat    *include.Catalog
	seen   map[card.Family]map[int]bool
	seenNm map[card.Family]map[string]bool
}

func newCatalogView(cat *include.Catalog) *catalogView {
	return &catalogView{
		cat:    cat,
		seen:   make(map[card.Family]map[int]bool),
		seenNm: make(map[card.Family]map[string]bool),
	}
}

func (v *catalogView) owns(fam card.Family, id int) bool {
	if v.seen[fam] == nil {
		v.seen[fam] = make(map[int]bool)
	}
	ok := v.cat.Owns(fam, id)
	if ok {
		v.seen[fam][id] = true
	}
	return ok
}

func (v *catalogView) ownsName(fam card.Family, name string) bool {
	if v.seenNm[fam] == nil {
		v.seenNm[fam] = make(map[string]bool)
	}
	ok := v.cat.OwnedNames[fam] != nil && v.cat.OwnedNames[fam][name]
	if ok {
		v.seenNm[fam][name] = true
	}
	return ok
}

func sortInts(vs []int) []int {
	sort.Ints(vs)
	return vs
}

func sortStrings(vs []string) []string {
	sort.Strings(vs)
	return vs
}
