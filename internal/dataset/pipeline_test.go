package dataset_test

import (
	"testing"

	"github.com/BoostMeHQ/boostme-cli/internal/dataset"
	"github.com/BoostMeHQ/boostme-cli/internal/facet"
	"github.com/BoostMeHQ/boostme-cli/internal/kpi"
)

// End-to-end pipeline: load, normalize, derive, filter, aggregate, format.
func TestPipeline(t *testing.T) {
	csv := `categoryId,Vues,taux_engagement,Engagement Total,chaine,publishedAt
1,100,2.0,5,web,2023-03-01 10:00:00
2,200,4.0,15,mobile,2024-06-01 18:00:00
3,,,,web,
`
	tb, err := dataset.Load("videos.csv", []byte(csv), dataset.Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// Unfiltered aggregates over all three rows.
	s := kpi.Compute(tb)
	if s.VideosAnalyzed != 3 {
		t.Fatalf("videos = %d", s.VideosAnalyzed)
	}
	if s.AvgViews != 150 {
		t.Fatalf("avg views = %v", s.AvgViews)
	}
	if s.AvgEngagementPct != 3 {
		t.Fatalf("avg engagement = %v", s.AvgEngagementPct)
	}
	if s.TotalInteractions != 20 {
		t.Fatalf("total interactions = %v", s.TotalInteractions)
	}
	cards := s.Cards()
	if cards[1].Value != "150" || cards[2].Value != "3,00 %" || cards[3].Value != "20" {
		t.Fatalf("cards = %+v", cards)
	}

	// Year facet cuts the scope down to the 2024 row.
	filtered := facet.Apply(tb, facet.Selection{Years: []int{2024}})
	s = kpi.Compute(filtered)
	if s.VideosAnalyzed != 1 {
		t.Fatalf("filtered videos = %d", s.VideosAnalyzed)
	}
	if s.AvgViews != 200 {
		t.Fatalf("filtered avg views = %v", s.AvgViews)
	}
	if s.AvgEngagementPct != 4 {
		t.Fatalf("filtered avg engagement = %v", s.AvgEngagementPct)
	}
	if s.TotalInteractions != 15 {
		t.Fatalf("filtered total interactions = %v", s.TotalInteractions)
	}

	// Facet catalog reflects the derived dimensions.
	f := facet.Available(tb)
	if y, ok := f.LatestYear(); !ok || y != 2024 {
		t.Fatalf("latest year = %d, %v", y, ok)
	}
	if len(f.Weekdays) != 2 {
		t.Fatalf("weekdays = %v", f.Weekdays)
	}
}
