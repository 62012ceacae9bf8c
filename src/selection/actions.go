package selection

// Action is a user interaction applied to a State
type Action interface {
	Apply(State) State
}

// Toggle checks feature under category, or unchecks it if already checked.
// Pairs outside the catalog leave the state unchanged.
type Toggle struct {
	Category string
	Feature  string
}

func (t Toggle) Apply(s State) State {
	if s.catalog == nil || !s.catalog.Contains(t.Category, t.Feature) {
		return s
	}

	out := s.clone()
	current := out.selected[t.Category]
	if i := indexOf(current, t.Feature); i >= 0 {
		remaining := append(current[:i:i], current[i+1:]...)
		if len(remaining) == 0 {
			remaining = nil
		}
		out.selected[t.Category] = remaining
	} else {
		out.selected[t.Category] = append(current, t.Feature)
	}
	return out
}

// SetName replaces the name field verbatim; trimming happens on read
type SetName struct {
	Text string
}

func (n SetName) Apply(s State) State {
	out := s.clone()
	out.name = n.Text
	return out
}

// Clear unchecks everything and empties the name field
type Clear struct{}

func (Clear) Apply(s State) State {
	if s.catalog == nil {
		return State{}
	}
	return New(s.catalog)
}
