package cmd

import (
	"fmt"
	"io"
	"strings"

	"nomi/src/catalog"
	"nomi/src/clipboard"
	"nomi/src/describe"
	nomierrors "nomi/src/errors"
	"nomi/src/format"
	"nomi/src/selection"

	"github.com/spf13/cobra"
)

var (
	generateName     string
	generateFeatures []string
	generateCopy     bool
	generateOutput   string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a description without opening the form",
	Long: `Generate the shared-note description from flags.

Each --feature takes "Category=label". Categories match case-insensitively;
labels are the lowercase catalog labels (see 'nomi catalog').

Examples:
  nomi generate --name Bob --feature "Hair Color=red hair"
  nomi generate -f "eye color=blue eyes" -f "body=toned body" --copy
  nomi generate --name Alice --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var exporter *clipboard.Exporter
		if generateCopy {
			settings, err := GetSettings()
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}
			exporter = newExporter(settings)
		}
		return runGenerate(cmd.OutOrStdout(), catalog.Default(), exporter, generateOptions{
			Name:     generateName,
			Features: generateFeatures,
			Output:   generateOutput,
		})
	},
}

type generateOptions struct {
	Name     string
	Features []string
	Output   string
}

// runGenerate builds the selection from options and writes the result.
// A nil exporter skips the clipboard.
func runGenerate(w io.Writer, c *catalog.Catalog, exporter *clipboard.Exporter, opts generateOptions) error {
	if err := format.ValidateFormat(opts.Output); err != nil {
		return err
	}

	actions, err := parseFeatures(c, opts.Features)
	if err != nil {
		return err
	}
	actions = append([]selection.Action{selection.SetName{Text: opts.Name}}, actions...)

	st := selection.New(c).Apply(actions...)
	result := format.NewResult(st, describe.Describe(st))

	if exporter != nil {
		result.Copy = exporter.Copy(result.Description).String()
	}

	return format.DisplayResult(w, result, opts.Output)
}

// parseFeatures turns "Category=label" pairs into toggles. A pair given
// twice is only selected once.
func parseFeatures(c *catalog.Catalog, pairs []string) ([]selection.Action, error) {
	var actions []selection.Action
	seen := make(map[string]bool)

	for _, pair := range pairs {
		category, feature, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, &nomierrors.ValidationError{
				Field:   "feature",
				Value:   pair,
				Message: `expected "Category=label"`,
			}
		}

		name, label, err := c.ResolveFeature(category, feature)
		if err != nil {
			return nil, err
		}

		key := name + "\x00" + label
		if seen[key] {
			continue
		}
		seen[key] = true
		actions = append(actions, selection.Toggle{Category: name, Feature: label})
	}

	return actions, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateName, "name", "n", "", "Nomi name")
	generateCmd.Flags().StringArrayVarP(&generateFeatures, "feature", "f", nil, `Feature as "Category=label" (repeatable)`)
	generateCmd.Flags().BoolVar(&generateCopy, "copy", false, "Also copy the description to the clipboard")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "text", "Output format: text, json, or yaml")
}
