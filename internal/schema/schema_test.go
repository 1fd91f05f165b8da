package schema

import (
	"testing"

	"github.com/BoostMeHQ/boostme-cli/internal/table"
)

func tableWith(t *testing.T, cols ...string) *table.Table {
	t.Helper()
	tb := table.New()
	for _, name := range cols {
		if err := tb.SetColumn(name, []any{nil}); err != nil {
			t.Fatalf("set column %s: %v", name, err)
		}
	}
	return tb
}

func TestNormalizeVariants(t *testing.T) {
	tb := tableWith(t, "categoryId", "Vues", "taux_engagement", "Engagement Total", "chaîne", "publishedAt", "catégorie")
	Normalize(tb)
	want := []string{CategoryID, Views, EngagementRate, EngagementTotal, Channel, PublishedAt, CategoryName}
	for _, name := range want {
		if !tb.Has(name) {
			t.Fatalf("missing canonical column %s, have %v", name, tb.Columns())
		}
	}
	if tb.NumCols() != len(want) {
		t.Fatalf("cols = %v", tb.Columns())
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	tb := tableWith(t, "Vues", "Chaine", "extra_field")
	Normalize(tb)
	first := tb.Columns()
	Normalize(tb)
	second := tb.Columns()
	if len(first) != len(second) {
		t.Fatalf("second pass changed shape: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("second pass changed columns: %v vs %v", first, second)
		}
	}
}

func TestNormalizePassthrough(t *testing.T) {
	tb := tableWith(t, "thumbnail_url", "Vues")
	Normalize(tb)
	if !tb.Has("thumbnail_url") {
		t.Fatal("unrecognized column should pass through unchanged")
	}
	if !tb.Has(Views) {
		t.Fatal("vues should normalize to views")
	}
}

func TestNormalizeCollisionSingleSurvivor(t *testing.T) {
	tb := tableWith(t, "views", "Vues")
	Normalize(tb)
	if !tb.Has(Views) {
		t.Fatalf("views missing after collision, have %v", tb.Columns())
	}
	if tb.NumCols() != 1 {
		t.Fatalf("collision should leave one survivor, have %v", tb.Columns())
	}
}

func TestCanonicalNamesAreTheirOwnVariants(t *testing.T) {
	for _, c := range Columns {
		found := false
		for _, v := range c.Variants {
			if v == c.Name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("canonical name %s is not listed among its variants", c.Name)
		}
	}
}
