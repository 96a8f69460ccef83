package pulse

import (
	"errors"
	"fmt"
)

// Sentinel errors for package pulse.
var (
	// ErrEmptyText is returned when the mask text is empty.
	ErrEmptyText = errors.New("pulse: empty mask text")

	// ErrInvalidSampleSize is returned when the offscreen sample size is not positive.
	ErrInvalidSampleSize = errors.New("pulse: sample size must be positive")

	// ErrInvalidCanvasSize is returned when the target canvas is not positive.
	ErrInvalidCanvasSize = errors.New("pulse: canvas size must be positive")

	// ErrUnknownVariant is returned by Variant for names with no preset.
	ErrUnknownVariant = errors.New("pulse: unknown variant")
)

// ParamError reports an animation parameter outside its allowed range.
type ParamError struct {
	Field string
	Value float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("pulse: invalid parameter %s: %g", e.Field, e.Value)
}
