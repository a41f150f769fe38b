package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidTopology   = errors.New("invalid network topology")
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// dimensionError wraps ErrDimensionMismatch with the offending lengths.
func dimensionError(what string, got, want int) error {
	return fmt.Errorf("%w: %s has length %d, want %d", ErrDimensionMismatch, what, got, want)
}
