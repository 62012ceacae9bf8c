package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"testing"

	"nomi/src/catalog"
	"nomi/src/clipboard"
	nomierrors "nomi/src/errors"
	"nomi/src/format"

	"github.com/fatih/color"
)

type stubWriter struct {
	texts []string
	err   error
}

func (s *stubWriter) WriteAll(text string) error {
	s.texts = append(s.texts, text)
	return s.err
}

func init() {
	color.NoColor = true
}

func TestRunGenerate(t *testing.T) {
	tests := []struct {
		name    string
		opts    generateOptions
		want    string
		wantErr error
	}{
		{
			name: "empty",
			opts: generateOptions{Output: "text"},
			want: "Please enter a Nomi name or select at least one feature.\n",
		},
		{
			name: "name and feature",
			opts: generateOptions{Name: "Bob", Features: []string{"Hair Color=red hair"}, Output: "text"},
			want: "Bob has red hair.\n",
		},
		{
			name: "catalog order regardless of flag order",
			opts: generateOptions{Features: []string{"body=toned body", "Eye Color=Blue Eyes"}, Output: "text"},
			want: "Your Nomi has blue eyes, toned body.\n",
		},
		{
			name: "repeated flag selects once",
			opts: generateOptions{Name: "Kit", Features: []string{"Nose=snub nose", "Nose=snub nose"}, Output: "text"},
			want: "Kit has snub nose.\n",
		},
		{
			name:    "foreign feature",
			opts:    generateOptions{Features: []string{"Eye Color=red hair"}, Output: "text"},
			wantErr: nomierrors.ErrUnknownFeature,
		},
		{
			name:    "unknown category",
			opts:    generateOptions{Features: []string{"Tail=fluffy tail"}, Output: "text"},
			wantErr: nomierrors.ErrUnknownCategory,
		},
		{
			name:    "missing separator",
			opts:    generateOptions{Features: []string{"red hair"}, Output: "text"},
			wantErr: nomierrors.ErrInvalidInput,
		},
		{
			name:    "bad output",
			opts:    generateOptions{Output: "xml"},
			wantErr: nomierrors.ErrUnknownFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runGenerate(&buf, catalog.Default(), nil, tt.opts)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("runGenerate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("runGenerate() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestRunGenerateCopies(t *testing.T) {
	w := &stubWriter{}
	exporter := clipboard.NewExporter(w, clipboard.WithLogger(log.New(&bytes.Buffer{}, "", 0)))

	var buf bytes.Buffer
	err := runGenerate(&buf, catalog.Default(), exporter, generateOptions{
		Name:     "Alice",
		Features: []string{"Lips=full lips"},
		Output:   "json",
	})
	if err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	var got format.Result
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got.Copy != "success" {
		t.Errorf("Copy = %q, want success", got.Copy)
	}
	if len(w.texts) != 1 || w.texts[0] != "Alice has full lips." {
		t.Errorf("clipboard got %v", w.texts)
	}
}

func TestFlattenMap(t *testing.T) {
	got := flattenMap("", map[string]interface{}{
		"theme":    map[string]interface{}{"dark": true},
		"feedback": map[string]interface{}{"delay": "3s"},
		"tags":     []interface{}{"a", "b"},
	})

	want := map[string]interface{}{
		"theme.dark":     true,
		"feedback.delay": "3s",
		"tags":           "a, b",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("flattenMap()[%q] = %v, want %v", k, got[k], v)
		}
	}
}
