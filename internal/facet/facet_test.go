package facet

import (
	"reflect"
	"testing"

	"github.com/BoostMeHQ/boostme-cli/internal/schema"
	"github.com/BoostMeHQ/boostme-cli/internal/table"
)

func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	tb := table.New()
	set := func(name string, cells []any) {
		if err := tb.SetColumn(name, cells); err != nil {
			t.Fatalf("set column %s: %v", name, err)
		}
	}
	set(schema.Year, []any{2023, 2024, 2024, 2024, nil})
	set(schema.CategoryName, []any{"Éducation", "Humour", "Éducation", "Beauté", "Humour"})
	set(schema.Channel, []any{"web", "mobile", "web", "web", nil})
	set(schema.WeekdayName, []any{"Dimanche", "Lundi", "Samedi", "Lundi", nil})
	set(schema.Hour, []any{8, 10, 10, 22, nil})
	return tb
}

func TestApplyEmptySelectionKeepsAllRows(t *testing.T) {
	tb := sampleTable(t)
	out := Apply(tb, Selection{})
	if out.NumRows() != tb.NumRows() {
		t.Fatalf("rows = %d, want %d", out.NumRows(), tb.NumRows())
	}
}

func TestApplySingleFacet(t *testing.T) {
	tb := sampleTable(t)
	out := Apply(tb, Selection{Years: []int{2024}})
	if out.NumRows() != 3 {
		t.Fatalf("rows = %d", out.NumRows())
	}
	out = Apply(tb, Selection{Channels: []string{"mobile"}})
	if out.NumRows() != 1 {
		t.Fatalf("rows = %d", out.NumRows())
	}
}

func TestApplyORWithinFacet(t *testing.T) {
	tb := sampleTable(t)
	out := Apply(tb, Selection{Weekdays: []string{"Lundi", "Samedi"}})
	if out.NumRows() != 3 {
		t.Fatalf("rows = %d", out.NumRows())
	}
}

func TestApplyANDAcrossFacets(t *testing.T) {
	tb := sampleTable(t)
	out := Apply(tb, Selection{Years: []int{2024}, Channels: []string{"web"}})
	if out.NumRows() != 2 {
		t.Fatalf("rows = %d", out.NumRows())
	}
}

func TestApplyOrderIndependent(t *testing.T) {
	tb := sampleTable(t)
	both := Apply(tb, Selection{Years: []int{2024}, Hours: []int{10}})
	aThenB := Apply(Apply(tb, Selection{Years: []int{2024}}), Selection{Hours: []int{10}})
	bThenA := Apply(Apply(tb, Selection{Hours: []int{10}}), Selection{Years: []int{2024}})
	if both.NumRows() != 2 || aThenB.NumRows() != 2 || bThenA.NumRows() != 2 {
		t.Fatalf("rows: both=%d aThenB=%d bThenA=%d", both.NumRows(), aThenB.NumRows(), bThenA.NumRows())
	}
}

func TestApplyNullNeverMatches(t *testing.T) {
	tb := sampleTable(t)
	out := Apply(tb, Selection{Channels: []string{"web", "mobile"}})
	if out.NumRows() != 4 {
		t.Fatalf("rows = %d, null channel should be excluded", out.NumRows())
	}
}

func TestApplyMissingColumnSkipsFacet(t *testing.T) {
	tb := table.New()
	if err := tb.SetColumn(schema.Views, []any{1.0, 2.0}); err != nil {
		t.Fatalf("set column: %v", err)
	}
	out := Apply(tb, Selection{Years: []int{2024}})
	if out.NumRows() != 2 {
		t.Fatalf("rows = %d, absent column should not restrict", out.NumRows())
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	tb := sampleTable(t)
	Apply(tb, Selection{Years: []int{2024}})
	if tb.NumRows() != 5 {
		t.Fatalf("input mutated: rows = %d", tb.NumRows())
	}
}

func TestAvailable(t *testing.T) {
	f := Available(sampleTable(t))
	if !reflect.DeepEqual(f.Years, []int{2023, 2024}) {
		t.Fatalf("years = %v", f.Years)
	}
	if !reflect.DeepEqual(f.Hours, []int{8, 10, 22}) {
		t.Fatalf("hours = %v", f.Hours)
	}
	// French collation: Beauté before Éducation before Humour.
	if !reflect.DeepEqual(f.Categories, []string{"Beauté", "Éducation", "Humour"}) {
		t.Fatalf("categories = %v", f.Categories)
	}
	// Weekdays come back Monday-first regardless of row order.
	if !reflect.DeepEqual(f.Weekdays, []string{"Lundi", "Samedi", "Dimanche"}) {
		t.Fatalf("weekdays = %v", f.Weekdays)
	}
}

func TestLatestYear(t *testing.T) {
	f := Available(sampleTable(t))
	year, ok := f.LatestYear()
	if !ok || year != 2024 {
		t.Fatalf("latest year = %d, %v", year, ok)
	}
	empty := Facets{}
	if _, ok := empty.LatestYear(); ok {
		t.Fatal("empty catalog should have no latest year")
	}
}

func TestSelectionEmpty(t *testing.T) {
	if !(Selection{}).Empty() {
		t.Fatal("zero selection should be empty")
	}
	if (Selection{Hours: []int{10}}).Empty() {
		t.Fatal("selection with hours should not be empty")
	}
}
