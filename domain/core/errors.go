package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Structural errors: the pipeline cannot proceed and the caller must be told.
	ErrMissingPositionColumn      = errors.New("no chainage column found")
	ErrInvalidRange               = errors.New("invalid chainage range")
	ErrInsufficientNumericColumns = errors.New("insufficient numeric columns for analysis")
	ErrColumnNotFound             = errors.New("column not found")
	ErrEmptyTable                 = errors.New("table has no rows")

	// Per-pair errors: the affected pair is omitted, the pipeline continues.
	ErrUndefinedCorrelation = errors.New("correlation undefined")
	ErrDegenerateFit        = errors.New("degenerate trend fit")
	ErrInsufficientData     = errors.New("insufficient data points")
)

// NewColumnNotFoundError reports a missing column by name.
func NewColumnNotFoundError(name string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// NewInvalidRangeError reports rejected filter bounds.
func NewInvalidRangeError(low, high float64, reason string) error {
	return fmt.Errorf("%w: [%g, %g] %s", ErrInvalidRange, low, high, reason)
}

// IsStructuralError reports whether err aborts the whole pipeline, as opposed
// to a per-pair condition that only drops the affected result.
func IsStructuralError(err error) bool {
	return errors.Is(err, ErrMissingPositionColumn) ||
		errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrInsufficientNumericColumns) ||
		errors.Is(err, ErrColumnNotFound) ||
		errors.Is(err, ErrEmptyTable)
}

// IsPairError reports whether err is local to a single column pair.
func IsPairError(err error) bool {
	return errors.Is(err, ErrUndefinedCorrelation) ||
		errors.Is(err, ErrDegenerateFit) ||
		errors.Is(err, ErrInsufficientData)
}
