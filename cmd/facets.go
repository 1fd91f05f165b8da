package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BoostMeHQ/boostme-cli/internal/facet"
	"github.com/BoostMeHQ/boostme-cli/internal/render"
)

var facetsCmd = &cobra.Command{
	Use:   "facets <file>",
	Short: "List the selectable filter values of a dataset",
	Long: `Facets prints the available values per filter dimension, derived from the
unfiltered normalized table: the same catalogs a dashboard would use to
populate its filter controls.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		fmt.Println(render.FacetCatalog(facet.Available(ds.Table)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(facetsCmd)
}
