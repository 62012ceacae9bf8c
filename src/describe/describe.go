package describe

import (
	"strings"

	"nomi/src/selection"
)

const (
	// EmptyPrompt is shown when there is neither a name nor a feature
	EmptyPrompt = "Please enter a Nomi name or select at least one feature."

	defaultSubject = "Your Nomi"
	noFeatures     = "no features selected"
	separator      = ", "
)

// Generate builds the shared-note sentence for a name and selection.
// The name is trimmed; the selection's own name field is ignored.
func Generate(name string, st selection.State) string {
	features := st.Flatten()
	subject := strings.TrimSpace(name)

	if len(features) == 0 && subject == "" {
		return EmptyPrompt
	}

	if subject == "" {
		subject = defaultSubject
	}

	body := noFeatures
	if len(features) > 0 {
		body = strings.Join(features, separator)
	}

	return subject + " has " + body + "."
}

// Describe generates the sentence using the state's own name field
func Describe(st selection.State) string {
	return Generate(st.Name(), st)
}
