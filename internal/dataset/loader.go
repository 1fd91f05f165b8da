// Package dataset loads an uploaded video-performance export into the
// canonical record table: parse by extension, normalize column names, derive
// the temporal dimensions and coerce the metric columns. Cell-level parse
// failures become nulls; only an unknown container format aborts a load.
package dataset

import (
	"path/filepath"
	"time"

	"github.com/BoostMeHQ/boostme-cli/internal/schema"
	"github.com/BoostMeHQ/boostme-cli/internal/table"
)

// metricColumns are coerced to float64 after normalization.
var metricColumns = []string{schema.Views, schema.EngagementRate, schema.EngagementTotal}

// Load decodes, normalizes and coerces one uploaded dataset. No input at all
// is the documented awaiting-input state and yields an empty table, not an
// error.
func Load(filename string, data []byte, opt Options) (*table.Table, error) {
	if filename == "" && len(data) == 0 {
		return table.New(), nil
	}
	for _, r := range readers(opt) {
		if !r.CanRead(filename) {
			continue
		}
		t, err := r.Read(filename, data)
		if err != nil {
			return nil, err
		}
		schema.Normalize(t)
		parsePublishedAt(t)
		deriveTemporal(t)
		coerceMetrics(t)
		return t, nil
	}
	return nil, &UnsupportedFormatError{Name: filepath.Base(filename)}
}

// parsePublishedAt replaces published_at cells with naive UTC timestamps,
// nulling whatever does not parse.
func parsePublishedAt(t *table.Table) {
	cells := t.Column(schema.PublishedAt)
	if cells == nil {
		return
	}
	out := make([]any, len(cells))
	for i, v := range cells {
		if ts, ok := coerceTime(v); ok {
			out[i] = ts
		}
	}
	t.SetColumn(schema.PublishedAt, out)
}

// deriveTemporal adds year, weekday_name and hour from published_at. A
// user-supplied column is never overwritten, and a null timestamp yields
// null derived cells.
func deriveTemporal(t *table.Table) {
	ts := t.Column(schema.PublishedAt)
	if ts == nil {
		return
	}
	if !t.Has(schema.Year) {
		out := make([]any, len(ts))
		for i, v := range ts {
			if x, ok := v.(time.Time); ok {
				out[i] = x.Year()
			}
		}
		t.SetColumn(schema.Year, out)
	}
	if !t.Has(schema.WeekdayName) {
		out := make([]any, len(ts))
		for i, v := range ts {
			if x, ok := v.(time.Time); ok {
				out[i] = schema.Weekdays[mondayIndex(x.Weekday())]
			}
		}
		t.SetColumn(schema.WeekdayName, out)
	}
	if !t.Has(schema.Hour) {
		out := make([]any, len(ts))
		for i, v := range ts {
			if x, ok := v.(time.Time); ok {
				out[i] = x.Hour()
			}
		}
		t.SetColumn(schema.Hour, out)
	}
}

// mondayIndex maps Go's Sunday-first weekday to the Monday-first table.
func mondayIndex(d time.Weekday) int { return (int(d) + 6) % 7 }

func coerceMetrics(t *table.Table) {
	for _, name := range metricColumns {
		cells := t.Column(name)
		if cells == nil {
			continue
		}
		out := make([]any, len(cells))
		for i, v := range cells {
			if f, ok := coerceNumber(v); ok {
				out[i] = f
			}
		}
		t.SetColumn(name, out)
	}
}
