package serialization

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrIO                 = stderrors.New("model file I/O error")
	ErrCorruptFile        = stderrors.New("corrupt model file")
	ErrUnsupportedVersion = stderrors.New("unsupported format version")
	ErrChecksumMismatch   = fmt.Errorf("%w: checksum mismatch", ErrCorruptFile)
)

// ValidationError provides detailed information about a structurally invalid file.
type ValidationError struct {
	Type    string // Type of error (e.g., "layer_count", "layer_size")
	Field   string // Field involved (e.g., "sizes[2]")
	Details string // Additional details
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Field, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}

// kindError tags a wrapped cause with one of the sentinel errors above, so callers can
// match on both with errors.Is / errors.As.
type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *kindError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

func ioErrorf(cause error, format string, args ...any) error {
	return &kindError{kind: ErrIO, cause: errors.Wrapf(cause, format, args...)}
}

func corruptf(cause error, format string, args ...any) error {
	if cause == nil {
		return &kindError{kind: ErrCorruptFile, cause: errors.Errorf(format, args...)}
	}
	return &kindError{kind: ErrCorruptFile, cause: errors.Wrapf(cause, format, args...)}
}

func unsupportedf(format string, args ...any) error {
	return &kindError{kind: ErrUnsupportedVersion, cause: errors.Errorf(format, args...)}
}
