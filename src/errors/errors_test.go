package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationErrorUnwrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{
			name:   "defaults to invalid input",
			err:    &ValidationError{Field: "feature", Value: "x", Message: "bad"},
			target: ErrInvalidInput,
		},
		{
			name:   "wraps unknown category",
			err:    &ValidationError{Field: "category", Value: "Tail", Message: "not in catalog", Err: ErrUnknownCategory},
			target: ErrUnknownCategory,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !errors.Is(tt.err, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.target)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "category", Value: "Tail", Message: "not in catalog"}
	want := "validation failed for category (value: Tail): not in catalog"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &ValidationError{Field: "name", Message: "required"}
	want = "validation failed for name: required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsNotFound(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", ErrUnknownFeature)
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound() = false for wrapped ErrUnknownFeature")
	}
	if IsNotFound(ErrInvalidInput) {
		t.Error("IsNotFound() = true for ErrInvalidInput")
	}
}

func TestIsClipboard(t *testing.T) {
	platform := errors.New("exec: \"xclip\": executable file not found in $PATH")
	err := WrapWithContext(NewClipboardError("write", platform), "copy description")

	if !IsClipboard(err) {
		t.Error("IsClipboard() = false for wrapped ClipboardError")
	}
	if !errors.Is(err, platform) {
		t.Error("ClipboardError does not unwrap to the platform error")
	}
	if IsClipboard(ErrUnknownCategory) {
		t.Error("IsClipboard() = true for ErrUnknownCategory")
	}
}

func TestWrapWithContextNil(t *testing.T) {
	if err := WrapWithContext(nil, "anything %d", 1); err != nil {
		t.Errorf("WrapWithContext(nil) = %v, want nil", err)
	}
}
