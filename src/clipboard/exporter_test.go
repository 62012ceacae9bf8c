package clipboard

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"
)

type fakeWriter struct {
	calls []string
	err   error
}

func (f *fakeWriter) WriteAll(text string) error {
	f.calls = append(f.calls, text)
	return f.err
}

func TestCopy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		writerErr error
		want      Outcome
		wantCalls int
		feedback  string
	}{
		{
			name:      "empty text skips clipboard",
			text:      "",
			want:      NothingToCopy,
			wantCalls: 0,
			feedback:  "No description to copy!",
		},
		{
			name:      "successful copy",
			text:      "Bob has red hair.",
			want:      Success,
			wantCalls: 1,
			feedback:  "Copied to clipboard!",
		},
		{
			name:      "platform failure",
			text:      "Bob has red hair.",
			writerErr: errors.New("no clipboard utility"),
			want:      Failure,
			wantCalls: 1,
			feedback:  "Failed to copy.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			w := &fakeWriter{err: tt.writerErr}
			e := NewExporter(w, WithLogger(log.New(&logs, "", 0)))

			got := e.Copy(tt.text)
			if got != tt.want {
				t.Errorf("Copy() = %v, want %v", got, tt.want)
			}
			if len(w.calls) != tt.wantCalls {
				t.Errorf("writer called %d times, want %d", len(w.calls), tt.wantCalls)
			}
			if got.Feedback() != tt.feedback {
				t.Errorf("Feedback() = %q, want %q", got.Feedback(), tt.feedback)
			}
			if tt.writerErr != nil && !strings.Contains(logs.String(), tt.writerErr.Error()) {
				t.Errorf("platform error not logged, got %q", logs.String())
			}
			if tt.writerErr == nil && logs.Len() != 0 {
				t.Errorf("unexpected log output %q", logs.String())
			}
		})
	}
}

func TestDisabledWriterFails(t *testing.T) {
	t.Parallel()

	e := NewExporter(DisabledWriter{}, WithLogger(log.New(&bytes.Buffer{}, "", 0)))
	if got := e.Copy("Your Nomi has blue eyes."); got != Failure {
		t.Errorf("Copy() with disabled clipboard = %v, want %v", got, Failure)
	}
}

func TestFeedbackDelay(t *testing.T) {
	t.Parallel()

	if got := NewExporter(&fakeWriter{}).FeedbackDelay(); got != DefaultFeedbackDelay {
		t.Errorf("default FeedbackDelay() = %v, want %v", got, DefaultFeedbackDelay)
	}
	if got := NewExporter(&fakeWriter{}, WithFeedbackDelay(500*time.Millisecond)).FeedbackDelay(); got != 500*time.Millisecond {
		t.Errorf("FeedbackDelay() = %v, want 500ms", got)
	}
	if got := NewExporter(&fakeWriter{}, WithFeedbackDelay(0)).FeedbackDelay(); got != DefaultFeedbackDelay {
		t.Errorf("zero delay should keep default, got %v", got)
	}
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	for o, want := range map[Outcome]string{
		NothingToCopy: "nothing to copy",
		Success:       "success",
		Failure:       "failure",
	} {
		if o.String() != want {
			t.Errorf("%d.String() = %q, want %q", o, o.String(), want)
		}
	}
}
