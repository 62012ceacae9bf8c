package cmd

import (
	"nomi/src/catalog"
	"nomi/src/format"

	"github.com/spf13/cobra"
)

var (
	catalogOutput  string
	catalogDisplay bool
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog [category]",
	Short: "List feature categories and their labels",
	Long: `List the built-in appearance categories and the labels each offers.

Examples:
  nomi catalog
  nomi catalog "eye color"
  nomi catalog --display
  nomi catalog --output yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := format.ValidateFormat(catalogOutput); err != nil {
			return err
		}

		c := catalog.Default()
		categories := c.Categories()
		if len(args) == 1 {
			cat, err := c.Lookup(args[0])
			if err != nil {
				return err
			}
			categories = []catalog.Category{cat}
		}

		return format.DisplayCatalog(cmd.OutOrStdout(), categories, catalogOutput, catalogDisplay)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVarP(&catalogOutput, "output", "o", "text", "Output format: text, json, or yaml")
	catalogCmd.Flags().BoolVar(&catalogDisplay, "display", false, "Show labels title-cased as in the form")
}
