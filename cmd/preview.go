package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BoostMeHQ/boostme-cli/internal/render"
)

var previewRowsFlag int

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Print the first rows of the normalized dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		rows := previewRowsFlag
		if rows <= 0 || rows > previewCap() {
			rows = previewCap()
		}
		fmt.Println(render.Preview(ds.Table, rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().IntVar(&previewRowsFlag, "rows", 0, "row count (capped by preview_rows config)")
}
