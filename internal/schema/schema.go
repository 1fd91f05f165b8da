// Package schema defines the canonical dataset schema and maps the column
// name variants found in real exports onto it.
package schema

import (
	"strings"

	"github.com/BoostMeHQ/boostme-cli/internal/table"
)

// Canonical column names.
const (
	CategoryID      = "category_id"
	Views           = "views"
	EngagementRate  = "engagement_rate_pct"
	EngagementTotal = "engagement_total"
	Channel         = "channel"
	PublishedAt     = "published_at"
	Year            = "year"
	WeekdayName     = "weekday_name"
	Hour            = "hour"
	CategoryName    = "category_name"
)

// Required lists the columns every KPI needs. Their absence does not abort a
// load; the affected metrics degrade to placeholders instead.
var Required = []string{CategoryID, Views, EngagementRate, EngagementTotal, Channel, PublishedAt}

// Optional lists the columns that only enable extra filters when present.
var Optional = []string{CategoryName, WeekdayName, Hour, Year}

// Weekdays holds the French weekday names, Monday first. weekday_name cells
// hold one of these.
var Weekdays = [7]string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi", "Dimanche"}

// Column pairs a canonical name with its accepted spellings. Matching is
// case-insensitive. Every canonical name is its own variant, which makes
// normalization idempotent.
type Column struct {
	Name     string
	Variants []string
}

// Columns is the canonical schema. The variant spellings cover the French
// export headers the source dashboards were built against.
var Columns = []Column{
	{Name: CategoryID, Variants: []string{"category_id", "categorie_id", "categoryid"}},
	{Name: Views, Variants: []string{"views", "vues"}},
	{Name: EngagementRate, Variants: []string{"engagement_rate_pct", "engagement_rate", "taux_engagement", "taux d'engagement (%)"}},
	{Name: EngagementTotal, Variants: []string{"engagement_total", "engagement total"}},
	{Name: Channel, Variants: []string{"channel", "chaine", "chaîne"}},
	{Name: PublishedAt, Variants: []string{"published_at", "publishedat", "date_publication"}},
	{Name: Year, Variants: []string{"year", "annee", "année"}},
	{Name: WeekdayName, Variants: []string{"weekday_name", "weekday", "jour de la semaine"}},
	{Name: Hour, Variants: []string{"hour", "heure"}},
	{Name: CategoryName, Variants: []string{"category_name", "categorie", "catégorie", "cats.name"}},
}

// canonicalFor maps a lowercase variant spelling to its canonical name.
// Built once at startup.
var canonicalFor = buildLookup()

func buildLookup() map[string]string {
	m := make(map[string]string)
	for _, c := range Columns {
		for _, v := range c.Variants {
			m[strings.ToLower(v)] = c.Name
		}
	}
	return m
}

// Normalize renames every recognized column of t to its canonical name and
// returns t. Unrecognized columns pass through untouched. When two variants
// of the same canonical name are both present, only one survives and which
// one is unspecified — an accepted ambiguity of the input, not something to
// resolve heuristically.
func Normalize(t *table.Table) *table.Table {
	byLower := make(map[string]string, t.NumCols())
	for _, name := range t.Columns() {
		byLower[strings.ToLower(name)] = name
	}
	for variant, canonical := range canonicalFor {
		actual, ok := byLower[variant]
		if !ok {
			continue
		}
		t.Rename(actual, canonical)
	}
	return t
}
