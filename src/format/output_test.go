package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"nomi/src/catalog"
	"nomi/src/describe"
	nomierrors "nomi/src/errors"
	"nomi/src/selection"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

func init() {
	color.NoColor = true
}

func sampleResult() Result {
	st := selection.New(catalog.Default()).Apply(
		selection.SetName{Text: " Bob "},
		selection.Toggle{Category: "Body", Feature: "toned body"},
		selection.Toggle{Category: "Eye Color", Feature: "blue eyes"},
	)
	return NewResult(st, describe.Describe(st))
}

func TestNewResultGroupsInCatalogOrder(t *testing.T) {
	r := sampleResult()

	if r.Name != "Bob" {
		t.Errorf("Name = %q, want trimmed", r.Name)
	}
	if len(r.Selections) != 2 {
		t.Fatalf("Selections = %+v, want 2 groups", r.Selections)
	}
	if r.Selections[0].Category != "Eye Color" || r.Selections[1].Category != "Body" {
		t.Errorf("groups out of catalog order: %+v", r.Selections)
	}
	if r.Description != "Bob has blue eyes, toned body." {
		t.Errorf("Description = %q", r.Description)
	}
}

func TestDisplayResult(t *testing.T) {
	tests := []struct {
		name   string
		format string
		copy   string
		check  func(t *testing.T, out string)
	}{
		{
			name:   "text",
			format: "text",
			check: func(t *testing.T, out string) {
				if out != "Bob has blue eyes, toned body.\n" {
					t.Errorf("output = %q", out)
				}
			},
		},
		{
			name:   "text with copy feedback",
			format: "text",
			copy:   "failure",
			check: func(t *testing.T, out string) {
				if !strings.HasSuffix(out, "Failed to copy.\n") {
					t.Errorf("output = %q", out)
				}
			},
		},
		{
			name:   "json",
			format: "json",
			check: func(t *testing.T, out string) {
				var got Result
				if err := json.Unmarshal([]byte(out), &got); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if got.Description != "Bob has blue eyes, toned body." {
					t.Errorf("description = %q", got.Description)
				}
			},
		},
		{
			name:   "yaml",
			format: "yaml",
			check: func(t *testing.T, out string) {
				var got Result
				if err := yaml.Unmarshal([]byte(out), &got); err != nil {
					t.Fatalf("invalid yaml: %v", err)
				}
				if len(got.Selections) != 2 || got.Selections[1].Features[0] != "toned body" {
					t.Errorf("selections = %+v", got.Selections)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sampleResult()
			r.Copy = tt.copy

			var buf bytes.Buffer
			if err := DisplayResult(&buf, r, tt.format); err != nil {
				t.Fatalf("DisplayResult() error = %v", err)
			}
			tt.check(t, buf.String())
		})
	}
}

func TestDisplayRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := DisplayResult(&buf, sampleResult(), "xml")
	if !errors.Is(err, nomierrors.ErrUnknownFormat) {
		t.Errorf("DisplayResult(xml) error = %v, want ErrUnknownFormat", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote output for unknown format: %q", buf.String())
	}
}

func TestDisplayCatalogText(t *testing.T) {
	cats := []catalog.Category{{Name: "Bangs", Features: []string{"side-swept bangs", "wispy bangs"}}}

	var buf bytes.Buffer
	if err := DisplayCatalog(&buf, cats, "text", true); err != nil {
		t.Fatal(err)
	}
	want := "Bangs (2):\n  • Side-swept Bangs\n  • Wispy Bangs\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := DisplayCatalog(&buf, cats, "text", false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "  • side-swept bangs\n") {
		t.Errorf("raw labels missing: %q", buf.String())
	}
}
