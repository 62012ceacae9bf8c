package catalog

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	nomierrors "nomi/src/errors"

	"github.com/BurntSushi/toml"
)

//go:embed data/catalog.toml
var embeddedCatalog embed.FS

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Category is a named group of feature labels, sorted for display
type Category struct {
	Name     string   `toml:"name" json:"name" yaml:"name"`
	Features []string `toml:"features" json:"features" yaml:"features"`
}

// Catalog is the fixed table of categories. It is never mutated after load.
type Catalog struct {
	categories []Category
	index      map[string]int
}

type catalogFile struct {
	Category []Category `toml:"category"`
}

// Default returns the built-in catalog. A malformed embedded table is a
// build defect, so it panics instead of returning an error.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		data, err := embeddedCatalog.ReadFile("data/catalog.toml")
		if err != nil {
			panic(fmt.Sprintf("catalog: read embedded table: %v", err))
		}
		c, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse decodes a TOML catalog, sorting each category's labels and
// rejecting duplicates within a category.
func Parse(data []byte) (*Catalog, error) {
	var cf catalogFile
	if _, err := toml.Decode(string(data), &cf); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(cf.Category)
}

// New builds a catalog from categories in declaration order
func New(categories []Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}

	for _, cat := range categories {
		if strings.TrimSpace(cat.Name) == "" {
			return nil, &nomierrors.ValidationError{Field: "category", Message: "name is required", Err: nomierrors.ErrMissingRequired}
		}
		if _, exists := c.index[cat.Name]; exists {
			return nil, &nomierrors.ValidationError{Field: "category", Value: cat.Name, Message: "declared twice", Err: nomierrors.ErrDuplicateFeature}
		}

		features := append([]string(nil), cat.Features...)
		sort.Strings(features)
		for i := 1; i < len(features); i++ {
			if features[i] == features[i-1] {
				return nil, &nomierrors.ValidationError{
					Field:   cat.Name,
					Value:   features[i],
					Message: "duplicate feature label",
					Err:     nomierrors.ErrDuplicateFeature,
				}
			}
		}

		c.index[cat.Name] = len(c.categories)
		c.categories = append(c.categories, Category{Name: cat.Name, Features: features})
	}

	return c, nil
}

// Categories returns all categories in declaration order
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i := range c.categories {
		out[i] = c.category(i)
	}
	return out
}

func (c *Catalog) category(i int) Category {
	cat := c.categories[i]
	return Category{Name: cat.Name, Features: append([]string(nil), cat.Features...)}
}

// Names returns category names in declaration order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Len returns the number of categories
func (c *Catalog) Len() int {
	return len(c.categories)
}

// Features returns the sorted labels of a category
func (c *Catalog) Features(category string) ([]string, bool) {
	i, ok := c.index[category]
	if !ok {
		return nil, false
	}
	return append([]string(nil), c.categories[i].Features...), true
}

// Contains reports whether feature belongs to category
func (c *Catalog) Contains(category, feature string) bool {
	i, ok := c.index[category]
	if !ok {
		return false
	}
	features := c.categories[i].Features
	j := sort.SearchStrings(features, feature)
	return j < len(features) && features[j] == feature
}

// Lookup resolves a category name case-insensitively, for CLI input
func (c *Catalog) Lookup(name string) (Category, error) {
	name = strings.TrimSpace(name)
	if i, ok := c.index[name]; ok {
		return c.category(i), nil
	}
	for i, cat := range c.categories {
		if strings.EqualFold(cat.Name, name) {
			return c.category(i), nil
		}
	}
	return Category{}, &nomierrors.ValidationError{
		Field:   "category",
		Value:   name,
		Message: "not in catalog",
		Err:     nomierrors.ErrUnknownCategory,
	}
}

// ResolveFeature resolves a category/feature pair from free text, matching
// the category case-insensitively and the label after lowercasing.
func (c *Catalog) ResolveFeature(category, feature string) (string, string, error) {
	cat, err := c.Lookup(category)
	if err != nil {
		return "", "", err
	}
	label := strings.ToLower(strings.TrimSpace(feature))
	if !c.Contains(cat.Name, label) {
		return "", "", &nomierrors.ValidationError{
			Field:   cat.Name,
			Value:   feature,
			Message: "not a feature of this category",
			Err:     nomierrors.ErrUnknownFeature,
		}
	}
	return cat.Name, label, nil
}

// DisplayLabel capitalizes the first letter of each space-separated word.
// The rest of each word is left as is, so "side-swept bangs" becomes
// "Side-swept Bangs".
func DisplayLabel(feature string) string {
	words := strings.Split(feature, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
