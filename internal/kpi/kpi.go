// Package kpi computes the four dashboard aggregates over a filtered table.
package kpi

import (
	"math"

	"github.com/BoostMeHQ/boostme-cli/internal/format"
	"github.com/BoostMeHQ/boostme-cli/internal/schema"
	"github.com/BoostMeHQ/boostme-cli/internal/table"
)

// Summary holds the four aggregates. The mean-based metrics are NaN when no
// non-null value exists; the sum-based one is 0 in that case. The asymmetry
// is a deliberate contract inherited from the source dashboards, not a bug.
type Summary struct {
	VideosAnalyzed    int
	AvgViews          float64
	AvgEngagementPct  float64
	TotalInteractions float64
}

// Compute aggregates the (already filtered) table. Missing columns degrade
// to a zero count or NaN means, never an error.
func Compute(t *table.Table) Summary {
	return Summary{
		VideosAnalyzed:    countNonNull(t, schema.CategoryID),
		AvgViews:          mean(t, schema.Views),
		AvgEngagementPct:  mean(t, schema.EngagementRate),
		TotalInteractions: sum(t, schema.EngagementTotal),
	}
}

// Card is one formatted KPI ready for display.
type Card struct {
	Title string
	Value string
}

// Cards renders the summary as the four dashboard cards, titles matching the
// original BoostMe report.
func (s Summary) Cards() []Card {
	return []Card{
		{Title: "Nombre total de vidéos analysées", Value: format.Int(float64(s.VideosAnalyzed))},
		{Title: "Moyenne du nombre de vues par vidéo", Value: format.Int(s.AvgViews)},
		{Title: "Taux d'engagement moyen", Value: percentValue(s.AvgEngagementPct)},
		{Title: "Nombre total d'intéractions", Value: format.Int(s.TotalInteractions)},
	}
}

func percentValue(v float64) string {
	s := format.Decimal(v, 2)
	if s == format.Placeholder {
		return s
	}
	return s + " %"
}

func countNonNull(t *table.Table, column string) int {
	n := 0
	for _, v := range t.Column(column) {
		if v != nil {
			n++
		}
	}
	return n
}

// mean averages the non-null numeric cells; NaN when there are none.
func mean(t *table.Table, column string) float64 {
	var total float64
	n := 0
	for _, v := range t.Column(column) {
		if f, ok := asFloat(v); ok {
			total += f
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return total / float64(n)
}

// sum adds the non-null numeric cells; an empty sum is 0, not null.
func sum(t *table.Table, column string) float64 {
	var total float64
	for _, v := range t.Column(column) {
		if f, ok := asFloat(v); ok {
			total += f
		}
	}
	return total
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}
