package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios
var (
	// Catalog errors
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownFeature   = errors.New("unknown feature")
	ErrDuplicateFeature = errors.New("duplicate feature")

	// Clipboard errors
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	ErrClipboardDisabled    = errors.New("clipboard disabled")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrUnknownFormat   = errors.New("unknown output format")
)

// ClipboardError represents a failed clipboard write
type ClipboardError struct {
	Op  string // Operation that failed (e.g., "write")
	Err error  // Underlying platform error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("clipboard %s: %v", e.Op, e.Err)
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}

// NewClipboardError creates a new clipboard error
func NewClipboardError(op string, err error) error {
	return &ClipboardError{
		Op:  op,
		Err: err,
	}
}

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed for %s (value: %v): %s",
			e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// Helper functions for common error patterns

// IsNotFound checks if error indicates a category or feature outside the catalog
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUnknownCategory) ||
		errors.Is(err, ErrUnknownFeature)
}

// IsClipboard checks if error came from the clipboard layer
func IsClipboard(err error) bool {
	var ce *ClipboardError
	return errors.As(err, &ce) ||
		errors.Is(err, ErrClipboardUnavailable) ||
		errors.Is(err, ErrClipboardDisabled)
}

// WrapWithContext adds context to an error
func WrapWithContext(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
