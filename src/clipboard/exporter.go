package clipboard

import (
	"log"
	"time"

	nomierrors "nomi/src/errors"

	sysclip "github.com/atotto/clipboard"
)

// DefaultFeedbackDelay is how long copy feedback stays on screen
const DefaultFeedbackDelay = 3 * time.Second

// Outcome is the result of a copy request
type Outcome int

const (
	NothingToCopy Outcome = iota
	Success
	Failure
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "nothing to copy"
	}
}

// Feedback returns the transient message shown for an outcome
func (o Outcome) Feedback() string {
	switch o {
	case Success:
		return "Copied to clipboard!"
	case Failure:
		return "Failed to copy."
	default:
		return "No description to copy!"
	}
}

// Writer places plain text on a clipboard
type Writer interface {
	WriteAll(text string) error
}

// SystemWriter writes to the platform clipboard
type SystemWriter struct{}

func (SystemWriter) WriteAll(text string) error {
	if sysclip.Unsupported {
		return nomierrors.ErrClipboardUnavailable
	}
	return sysclip.WriteAll(text)
}

// DisabledWriter refuses every write, for --no-clipboard
type DisabledWriter struct{}

func (DisabledWriter) WriteAll(string) error {
	return nomierrors.ErrClipboardDisabled
}

// Exporter copies generated descriptions and reports the outcome
type Exporter struct {
	writer        Writer
	feedbackDelay time.Duration
	logger        *log.Logger
}

// Option configures an Exporter
type Option func(*Exporter)

// WithFeedbackDelay overrides how long feedback is shown
func WithFeedbackDelay(d time.Duration) Option {
	return func(e *Exporter) {
		if d > 0 {
			e.feedbackDelay = d
		}
	}
}

// WithLogger sets where platform errors are logged
func WithLogger(l *log.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewExporter creates an exporter writing through w. A nil writer uses the
// system clipboard.
func NewExporter(w Writer, opts ...Option) *Exporter {
	if w == nil {
		w = SystemWriter{}
	}
	e := &Exporter{
		writer:        w,
		feedbackDelay: DefaultFeedbackDelay,
		logger:        log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FeedbackDelay returns how long copy feedback should stay visible
func (e *Exporter) FeedbackDelay() time.Duration {
	return e.feedbackDelay
}

// Copy places text on the clipboard. Empty text never reaches the writer.
// Failures are logged and reported only through the outcome.
func (e *Exporter) Copy(text string) Outcome {
	if text == "" {
		return NothingToCopy
	}
	if err := e.writer.WriteAll(text); err != nil {
		e.logger.Printf("Failed to copy text: %v", nomierrors.NewClipboardError("write", err))
		return Failure
	}
	return Success
}
