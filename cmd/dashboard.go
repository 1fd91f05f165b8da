package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BoostMeHQ/boostme-cli/internal/facet"
	"github.com/BoostMeHQ/boostme-cli/internal/kpi"
	"github.com/BoostMeHQ/boostme-cli/internal/render"
	"github.com/BoostMeHQ/boostme-cli/internal/schema"
)

var (
	dashYears       []int
	dashCategories  []string
	dashChannels    []string
	dashWeekdays    []string
	dashHours       []int
	dashAllYears    bool
	dashPreview     bool
	dashPreviewRows int
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard [file]",
	Short: "Render the four KPI cards for a dataset",
	Long: `Dashboard loads a CSV or Parquet dataset, applies the facet filters given by
flags and prints the four KPI cards. Without --year the most recent available
year is preselected; pass --all-years to aggregate every year.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		ds, err := loadDataset(path)
		if err != nil {
			return err
		}
		t := ds.Table
		if t.NumRows() == 0 && t.NumCols() == 0 {
			printAwaitingInput()
			return nil
		}

		sel := facet.Selection{
			Years:      dashYears,
			Categories: dashCategories,
			Channels:   dashChannels,
			Weekdays:   dashWeekdays,
			Hours:      dashHours,
		}
		if !cmd.Flags().Changed("year") && !dashAllYears && latestYearDefault() {
			if y, ok := facet.Available(t).LatestYear(); ok {
				sel.Years = []int{y}
			}
		}

		filtered := facet.Apply(t, sel)
		fmt.Println(render.KPICards(kpi.Compute(filtered).Cards()))

		if dashPreview {
			rows := dashPreviewRows
			if rows <= 0 || rows > previewCap() {
				rows = previewCap()
			}
			fmt.Println(render.Preview(filtered, rows))
		}
		return nil
	},
}

// printAwaitingInput is the documented empty-input state: guidance instead of
// an error.
func printAwaitingInput() {
	fmt.Println("Import a dataset (CSV/Parquet) to display the KPIs.")
	fmt.Println()
	fmt.Println("Expected columns (at minimum):")
	for _, name := range schema.Required {
		fmt.Printf("  - %s\n", name)
	}
	fmt.Printf("Optional: %s\n", strings.Join(schema.Optional, ", "))
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().IntSliceVar(&dashYears, "year", nil, "filter on publication years (repeatable)")
	dashboardCmd.Flags().StringSliceVar(&dashCategories, "category", nil, "filter on category names (repeatable)")
	dashboardCmd.Flags().StringSliceVar(&dashChannels, "channel", nil, "filter on channels (repeatable)")
	dashboardCmd.Flags().StringSliceVar(&dashWeekdays, "weekday", nil, "filter on weekday names, e.g. Lundi (repeatable)")
	dashboardCmd.Flags().IntSliceVar(&dashHours, "hour", nil, "filter on publication hours 0-23 (repeatable)")
	dashboardCmd.Flags().BoolVar(&dashAllYears, "all-years", false, "disable the latest-year default selection")
	dashboardCmd.Flags().BoolVar(&dashPreview, "preview", false, "also print a preview of the filtered rows")
	dashboardCmd.Flags().IntVar(&dashPreviewRows, "preview-rows", 0, "preview row count (capped by preview_rows config)")
}
