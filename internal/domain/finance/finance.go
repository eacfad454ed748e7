// Package finance implements the pure calculation core of Smart Paisa:
// loan amortization, periodic-contribution growth projections, share order
// settlement and insurance maturity values. All functions are stateless and
// operate on validated numeric input; callers are responsible for parsing
// user input before calling in.
package finance

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a calculator receives out-of-domain
// arguments (non-positive principal, negative rate, zero-length term).
// It is always detected before any computation proceeds.
var ErrInvalidInput = errors.New("invalid input")

func invalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Round2 rounds a value to two decimal places for presentation.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
