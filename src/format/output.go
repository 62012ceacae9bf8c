package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"nomi/src/catalog"
	nomierrors "nomi/src/errors"
	"nomi/src/selection"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Formats accepted by --output
var Formats = []string{"text", "json", "yaml"}

// Group is one category's checked features
type Group struct {
	Category string   `json:"category" yaml:"category"`
	Features []string `json:"features" yaml:"features"`
}

// Result is a generated description with the selection that produced it
type Result struct {
	Name        string  `json:"name,omitempty" yaml:"name,omitempty"`
	Selections  []Group `json:"selections" yaml:"selections"`
	Description string  `json:"description" yaml:"description"`
	Copy        string  `json:"copy,omitempty" yaml:"copy,omitempty"`
}

// NewResult captures a state and its description. Categories with nothing
// checked are left out.
func NewResult(st selection.State, description string) Result {
	r := Result{
		Name:        st.TrimmedName(),
		Selections:  []Group{},
		Description: description,
	}
	if c := st.Catalog(); c != nil {
		for _, name := range c.Names() {
			if features := st.Selected(name); len(features) > 0 {
				r.Selections = append(r.Selections, Group{Category: name, Features: features})
			}
		}
	}
	return r
}

// ValidateFormat rejects anything not in Formats
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return &nomierrors.ValidationError{
		Field:   "output",
		Value:   format,
		Message: "must be one of " + strings.Join(Formats, ", "),
		Err:     nomierrors.ErrUnknownFormat,
	}
}

// DisplayResult writes a generated description in the requested format
func DisplayResult(w io.Writer, r Result, format string) error {
	switch format {
	case "json":
		return displayJSON(w, r)
	case "yaml":
		return displayYAML(w, r)
	case "text", "":
		displayResultText(w, r)
		return nil
	default:
		return ValidateFormat(format)
	}
}

// DisplayCatalog writes categories in the requested format. With display
// set, text output shows title-cased labels.
func DisplayCatalog(w io.Writer, categories []catalog.Category, format string, display bool) error {
	switch format {
	case "json":
		return displayJSON(w, categories)
	case "yaml":
		return displayYAML(w, categories)
	case "text", "":
		displayCatalogText(w, categories, display)
		return nil
	default:
		return ValidateFormat(format)
	}
}

func displayJSON(w io.Writer, v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func displayYAML(w io.Writer, v interface{}) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(output))
	return err
}

func displayResultText(w io.Writer, r Result) {
	fmt.Fprintln(w, r.Description)

	switch r.Copy {
	case "":
	case "success":
		color.New(color.FgGreen).Fprintln(w, "Copied to clipboard!")
	case "failure":
		color.New(color.FgRed).Fprintln(w, "Failed to copy.")
	default:
		color.New(color.FgYellow).Fprintln(w, "No description to copy!")
	}
}

func displayCatalogText(w io.Writer, categories []catalog.Category, display bool) {
	cyan := color.New(color.FgCyan, color.Bold)

	for i, cat := range categories {
		if i > 0 {
			fmt.Fprintln(w)
		}
		cyan.Fprintf(w, "%s (%d):\n", cat.Name, len(cat.Features))
		for _, f := range cat.Features {
			if display {
				f = catalog.DisplayLabel(f)
			}
			fmt.Fprintf(w, "  • %s\n", f)
		}
	}
}
