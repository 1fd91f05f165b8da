package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/BoostMeHQ/boostme-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set BoostMe configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("preview_rows: %d\n", cfg.PreviewRows)
		fmt.Printf("csv_delimiter: %s\n", cfg.CSVDelimiter)
		fmt.Printf("latest_year_default: %t\n", cfg.LatestYearDefault)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "preview_rows":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid positive int for preview_rows: %v", val)
			}
			cfg.PreviewRows = i
		case "csv_delimiter":
			switch val {
			case "", ",", ";", "tab":
				cfg.CSVDelimiter = val
			default:
				return fmt.Errorf("invalid csv_delimiter: %s (use ','|';'|'tab')", val)
			}
		case "latest_year_default":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for latest_year_default: %v", val)
			}
			cfg.LatestYearDefault = b
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
