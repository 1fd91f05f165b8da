// Package facet implements the dashboard's multi-facet filter: five
// independently selectable dimensions (year, category, channel, weekday,
// hour) combined conjunctively.
package facet

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/BoostMeHQ/boostme-cli/internal/dataset"
	"github.com/BoostMeHQ/boostme-cli/internal/schema"
	"github.com/BoostMeHQ/boostme-cli/internal/table"
)

// Selection holds the values chosen per facet. An empty slice means the
// facet imposes no restriction.
type Selection struct {
	Years      []int
	Categories []string
	Channels   []string
	Weekdays   []string
	Hours      []int
}

// Empty reports whether no facet restricts anything.
func (s Selection) Empty() bool {
	return len(s.Years) == 0 && len(s.Categories) == 0 && len(s.Channels) == 0 &&
		len(s.Weekdays) == 0 && len(s.Hours) == 0
}

// Apply returns the subset of rows matching every active facet: AND across
// facets, OR within a facet's selected values. A facet is skipped when
// nothing is selected for it or its column is absent. The input table is
// never mutated, and the facets may be evaluated in any order.
func Apply(t *table.Table, sel Selection) *table.Table {
	var preds []func(row int) bool
	if p := intPredicate(t, schema.Year, sel.Years); p != nil {
		preds = append(preds, p)
	}
	if p := stringPredicate(t, schema.CategoryName, sel.Categories); p != nil {
		preds = append(preds, p)
	}
	if p := stringPredicate(t, schema.Channel, sel.Channels); p != nil {
		preds = append(preds, p)
	}
	if p := stringPredicate(t, schema.WeekdayName, sel.Weekdays); p != nil {
		preds = append(preds, p)
	}
	if p := intPredicate(t, schema.Hour, sel.Hours); p != nil {
		preds = append(preds, p)
	}
	return t.Filter(func(row int) bool {
		for _, p := range preds {
			if !p(row) {
				return false
			}
		}
		return true
	})
}

func intPredicate(t *table.Table, column string, selected []int) func(int) bool {
	if len(selected) == 0 || !t.Has(column) {
		return nil
	}
	want := make(map[int]struct{}, len(selected))
	for _, v := range selected {
		want[v] = struct{}{}
	}
	cells := t.Column(column)
	return func(row int) bool {
		n, ok := dataset.AsInt(cells[row])
		if !ok {
			return false
		}
		_, hit := want[n]
		return hit
	}
}

func stringPredicate(t *table.Table, column string, selected []string) func(int) bool {
	if len(selected) == 0 || !t.Has(column) {
		return nil
	}
	want := make(map[string]struct{}, len(selected))
	for _, v := range selected {
		want[v] = struct{}{}
	}
	cells := t.Column(column)
	return func(row int) bool {
		s, ok := cells[row].(string)
		if !ok {
			return false
		}
		_, hit := want[s]
		return hit
	}
}

// Facets lists the selectable values per facet, derived from the unfiltered
// table: years and hours ascending, categories and channels in French
// collation order, weekdays Monday-first.
type Facets struct {
	Years      []int
	Categories []string
	Channels   []string
	Weekdays   []string
	Hours      []int
}

var frCollator = collate.New(language.French)

// Available builds the facet catalogs used to populate the filter controls.
func Available(t *table.Table) Facets {
	f := Facets{
		Years:      intValues(t, schema.Year),
		Categories: stringValues(t, schema.CategoryName),
		Channels:   stringValues(t, schema.Channel),
		Hours:      intValues(t, schema.Hour),
	}
	present := make(map[string]bool)
	for _, v := range t.Column(schema.WeekdayName) {
		if s, ok := v.(string); ok {
			present[s] = true
		}
	}
	for _, day := range schema.Weekdays {
		if present[day] {
			f.Weekdays = append(f.Weekdays, day)
		}
	}
	return f
}

// LatestYear returns the most recent year in the catalog; the year facet
// defaults to it when data exists.
func (f Facets) LatestYear() (int, bool) {
	if len(f.Years) == 0 {
		return 0, false
	}
	return f.Years[len(f.Years)-1], true
}

func intValues(t *table.Table, column string) []int {
	seen := make(map[int]struct{})
	for _, v := range t.Column(column) {
		if n, ok := dataset.AsInt(v); ok {
			seen[n] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

func stringValues(t *table.Table, column string) []string {
	seen := make(map[string]struct{})
	for _, v := range t.Column(column) {
		if s, ok := v.(string); ok {
			seen[s] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	frCollator.SortStrings(out)
	return out
}
