// Package therr defines the error taxonomy shared by every layer of the
// engine: contract violations, property-table misses, and network-level
// failures. Errors are kinds, not types: callers compare with errors.Is
// against the sentinels below.
package therr

import (
	"errors"
	"fmt"
)

// Sentinels for the five error kinds the engine distinguishes. Wrap
// these with fmt.Errorf("...: %w", ErrX) to attach context; errors.Is
// still matches.
var (
	// ErrInvalidInput marks a violated contract on an input value: a
	// negative/zero value where positive is required, a non-finite
	// value, or a value of the wrong category.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfRange marks a property lookup outside the tabulated
	// domain (air outside [-40,50]°C, water outside [0,100]°C or
	// [1,10] bar).
	ErrOutOfRange = errors.New("out of range")

	// ErrUnknownMaterial marks a material id absent from the registry.
	ErrUnknownMaterial = errors.New("unknown material")

	// ErrPressureExhausted marks cumulative pressure drop driving the
	// running pressure to zero or below during network integration.
	ErrPressureExhausted = errors.New("pressure exhausted")

	// ErrNumericFailure marks non-convergence of an iterative
	// correlation (Colebrook) within its iteration cap. Solvers treat
	// this as non-fatal by falling back to an explicit correlation and
	// emitting a warning; it only escalates to a returned error if the
	// fallback also fails.
	ErrNumericFailure = errors.New("numeric failure")
)

// InvalidInputf builds an ErrInvalidInput wrapping a formatted message
// naming the offending field and value.
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}

// OutOfRangef builds an ErrOutOfRange wrapping a formatted message.
func OutOfRangef(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrOutOfRange)
}

// UnknownMaterial builds an ErrUnknownMaterial naming the missing id.
func UnknownMaterial(id string) error {
	return fmt.Errorf("material %q: %w", id, ErrUnknownMaterial)
}

// PressureExhaustedError reports the segment at which cumulative pressure
// drop drove the running pressure to zero or below.
type PressureExhaustedError struct {
	SegmentIndex  int
	InitialBar    float64
	CumulativeBar float64
}

func (e *PressureExhaustedError) Error() string {
	return fmt.Sprintf(
		"pressure exhausted at segment %d: initial %.4f bar, cumulative drop %.4f bar",
		e.SegmentIndex, e.InitialBar, e.CumulativeBar,
	)
}

func (e *PressureExhaustedError) Unwrap() error { return ErrPressureExhausted }

// NumericFailuref builds an ErrNumericFailure wrapping a formatted message.
func NumericFailuref(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNumericFailure)
}
