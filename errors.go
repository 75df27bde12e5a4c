package spiro

import (
	"errors"
	"fmt"
)

// Sentinel errors for the spiro package.
var (
	// ErrInvalidParams is returned when curve parameters cannot produce a
	// closed curve (non-positive radii, inner radius larger than outer).
	ErrInvalidParams = errors.New("spiro: invalid curve parameters")

	// ErrInvalidCount is returned when an animator is asked for fewer than
	// one instance.
	ErrInvalidCount = errors.New("spiro: instance count must be positive")

	// ErrInvalidExtent is returned when the drawing extent is too small for
	// the randomization policy (min(W, H)/2 must be at least MinRadius).
	ErrInvalidExtent = errors.New("spiro: extent too small for random curves")
)

// ParamsError describes which parameter failed validation.
// It unwraps to ErrInvalidParams.
type ParamsError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParamsError) Error() string {
	return fmt.Sprintf("spiro: invalid %s=%g: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidParams.
func (e *ParamsError) Unwrap() error {
	return ErrInvalidParams
}
