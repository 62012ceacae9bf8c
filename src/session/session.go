package session

import (
	"nomi/src/catalog"
	"nomi/src/clipboard"
	"nomi/src/describe"
	"nomi/src/selection"
)

// Ticket identifies the copy that scheduled a feedback expiry
type Ticket uint64

// Session is everything the form shows: the selection, the last generated
// description and the copy feedback line. Like selection.State it is a
// value; every method returns the updated Session.
type Session struct {
	State       selection.State
	Description string
	Feedback    string
	Outcome     clipboard.Outcome

	// StrictExpiry makes ExpireFeedback ignore tickets from older copies
	StrictExpiry bool

	lastTicket Ticket
}

// New starts an empty session over c
func New(c *catalog.Catalog) Session {
	return Session{State: selection.New(c)}
}

// Do applies selection actions. The cached description is left as is, so
// it goes stale until the next Generate.
func (s Session) Do(actions ...selection.Action) Session {
	s.State = s.State.Apply(actions...)
	return s
}

// Generate recomputes and caches the description, dropping any feedback
func (s Session) Generate() Session {
	s.Description = describe.Describe(s.State)
	s.Feedback = ""
	return s
}

// Copy exports the cached description and returns the ticket the caller
// should hand back to ExpireFeedback once the feedback delay has elapsed.
func (s Session) Copy(e *clipboard.Exporter) (Session, clipboard.Outcome, Ticket) {
	outcome := e.Copy(s.Description)
	s.lastTicket++
	s.Outcome = outcome
	s.Feedback = outcome.Feedback()
	return s, outcome, s.lastTicket
}

// ExpireFeedback clears the feedback line. By default any ticket clears it,
// even one from an earlier copy whose timer fires after a newer copy.
func (s Session) ExpireFeedback(t Ticket) Session {
	if s.StrictExpiry && t != s.lastTicket {
		return s
	}
	s.Feedback = ""
	return s
}

// Clear resets the selection, the name, the description and the feedback
func (s Session) Clear() Session {
	s.State = s.State.Apply(selection.Clear{})
	s.Description = ""
	s.Feedback = ""
	return s
}

// HasDescription reports whether the result panel should be shown
func (s Session) HasDescription() bool {
	return s.Description != ""
}
