package selection

import (
	"strings"

	"nomi/src/catalog"
)

// State is the name field plus the checked features of every category.
// Values are treated as immutable: actions return a new State.
type State struct {
	catalog  *catalog.Catalog
	name     string
	selected map[string][]string
}

// New returns an empty state with one entry per catalog category
func New(c *catalog.Catalog) State {
	st := State{
		catalog:  c,
		selected: make(map[string][]string, c.Len()),
	}
	for _, name := range c.Names() {
		st.selected[name] = nil
	}
	return st
}

// Catalog returns the catalog the state was built from
func (s State) Catalog() *catalog.Catalog {
	return s.catalog
}

// Name returns the name field exactly as entered
func (s State) Name() string {
	return s.name
}

// TrimmedName returns the name with surrounding whitespace removed
func (s State) TrimmedName() string {
	return strings.TrimSpace(s.name)
}

// Selected returns the checked features of a category in the order they
// were checked
func (s State) Selected(category string) []string {
	return append([]string(nil), s.selected[category]...)
}

// IsSelected reports whether feature is checked under category
func (s State) IsSelected(category, feature string) bool {
	return indexOf(s.selected[category], feature) >= 0
}

// Flatten returns every checked feature, category by category in catalog
// order, each category in check order.
func (s State) Flatten() []string {
	var all []string
	if s.catalog == nil {
		return all
	}
	for _, name := range s.catalog.Names() {
		all = append(all, s.selected[name]...)
	}
	return all
}

// Count returns the number of checked features
func (s State) Count() int {
	n := 0
	for _, features := range s.selected {
		n += len(features)
	}
	return n
}

// Empty reports whether nothing is checked and the trimmed name is blank
func (s State) Empty() bool {
	return s.Count() == 0 && s.TrimmedName() == ""
}

// Apply runs actions in order and returns the resulting state
func (s State) Apply(actions ...Action) State {
	for _, a := range actions {
		s = a.Apply(s)
	}
	return s
}

func (s State) clone() State {
	out := State{
		catalog:  s.catalog,
		name:     s.name,
		selected: make(map[string][]string, len(s.selected)),
	}
	for k, v := range s.selected {
		out.selected[k] = append([]string(nil), v...)
	}
	return out
}

func indexOf(list []string, v string) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}
	return -1
}
