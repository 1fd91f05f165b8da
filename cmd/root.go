package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/BoostMeHQ/boostme-cli/internal/config"
	"github.com/BoostMeHQ/boostme-cli/internal/dataset"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global

	// Session cache: one normalized table per uploaded content identity.
	cache = dataset.NewCache()
)

var rootCmd = &cobra.Command{
	Use:   "boostme",
	Short: "BoostMe CLI: KPI dashboard over video performance datasets",
	Long: `BoostMe is a CLI dashboard for video performance exports. It loads a CSV or
Parquet dataset, normalizes inconsistent column names to a canonical schema,
derives the temporal dimensions, applies year/category/channel/weekday/hour
filters and renders four locale-formatted KPI cards.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.boostme/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: defaults still let every command run
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// loadDataset reads and parses path through the session cache. An empty path
// is the awaiting-input state and yields an empty dataset.
func loadDataset(path string) (*dataset.Dataset, error) {
	if strings.TrimSpace(path) == "" {
		t, err := dataset.Load("", nil, loadOptions())
		if err != nil {
			return nil, err
		}
		return &dataset.Dataset{Table: t}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	ds, hit, err := cache.Load(path, data, loadOptions())
	if err != nil {
		return nil, err
	}
	if debug {
		state := "parsed"
		if hit {
			state = "cache hit"
		}
		fmt.Fprintf(os.Stderr, "✓ Dataset %s: %d rows (%s)\n", ds.ID, ds.Table.NumRows(), state)
	}
	return ds, nil
}

func loadOptions() dataset.Options {
	var opt dataset.Options
	if cfg != nil {
		switch strings.ToLower(strings.TrimSpace(cfg.CSVDelimiter)) {
		case ",", "comma":
			opt.Delimiter = ','
		case ";":
			opt.Delimiter = ';'
		case "tab", "\t":
			opt.Delimiter = '\t'
		}
	}
	return opt
}

// previewCap is the bounded row count any preview may display.
func previewCap() int {
	if cfg != nil && cfg.PreviewRows > 0 {
		return cfg.PreviewRows
	}
	return 200
}

func latestYearDefault() bool {
	if cfg == nil {
		return true
	}
	return cfg.LatestYearDefault
}
