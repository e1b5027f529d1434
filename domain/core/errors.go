package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidParameter covers any configuration value that violates its
	// stated constraint: non-positive spread, sample size < 1, inverted grid
	// bounds, grid point count < 2.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDimensionMismatch means two sequences expected to share a length
	// (grid vs. curve, curve vs. curve) do not. Caller-assembly error.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrDegenerateNormalization means a normalization denominator summed to
	// zero. Surfaced instead of dividing by zero and producing NaN.
	ErrDegenerateNormalization = errors.New("degenerate normalization")
)

// Error constructors with context
func NewInvalidParameterError(param string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidParameter, param, reason)
}

func NewDimensionMismatchError(what string, want, got int) error {
	return fmt.Errorf("%w: %s has length %d, want %d", ErrDimensionMismatch, what, got, want)
}

func NewDegenerateNormalizationError(curve string) error {
	return fmt.Errorf("%w: %s sums to zero", ErrDegenerateNormalization, curve)
}

// Error checking helpers
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

func IsDimensionMismatch(err error) bool {
	return errors.Is(err, ErrDimensionMismatch)
}

func IsDegenerateNormalization(err error) bool {
	return errors.Is(err, ErrDegenerateNormalization)
}
