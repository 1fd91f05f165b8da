// Package render draws the dashboard pieces as terminal tables.
package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/BoostMeHQ/boostme-cli/internal/facet"
	"github.com/BoostMeHQ/boostme-cli/internal/format"
	"github.com/BoostMeHQ/boostme-cli/internal/kpi"
	dtable "github.com/BoostMeHQ/boostme-cli/internal/table"
)

// KPICards renders the four KPI cards as a two-column table.
func KPICards(cards []kpi.Card) string {
	tw := newWriter()
	tw.AppendHeader(table.Row{"Indicateur", "Valeur"})
	for _, c := range cards {
		tw.AppendRow(table.Row{c.Title, c.Value})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// FacetCatalog renders the selectable values per facet, labeled like the
// original report's slicers.
func FacetCatalog(f facet.Facets) string {
	tw := newWriter()
	tw.AppendHeader(table.Row{"Filtre", "Valeurs disponibles"})
	tw.AppendRow(table.Row{"Année", joinInts(f.Years)})
	tw.AppendRow(table.Row{"Catégorie", strings.Join(f.Categories, ", ")})
	tw.AppendRow(table.Row{"Chaîne", strings.Join(f.Channels, ", ")})
	tw.AppendRow(table.Row{"Jour", strings.Join(f.Weekdays, ", ")})
	tw.AppendRow(table.Row{"Heure", joinInts(f.Hours)})
	return tw.Render()
}

// Preview renders up to maxRows rows of the table.
func Preview(t *dtable.Table, maxRows int) string {
	columns := t.Columns()
	tw := newWriter()
	header := make(table.Row, len(columns))
	for i, name := range columns {
		header[i] = name
	}
	tw.AppendHeader(header)
	n := t.NumRows()
	if n > maxRows {
		n = maxRows
	}
	for i := 0; i < n; i++ {
		row := make(table.Row, len(columns))
		for j, name := range columns {
			row[j] = cellString(t.Value(name, i))
		}
		tw.AppendRow(row)
	}
	return tw.Render()
}

func newWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return format.Placeholder
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	default:
		return format.Placeholder
	}
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
