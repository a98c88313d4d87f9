package hsize

import "errors"

// Sentinel errors. Wrapped values carry the offending input; match with
// errors.Is.
var (
	// ErrInvalidInput marks non-finite numbers and strings that do not look
	// like a byte size at all.
	ErrInvalidInput = errors.New("invalid byte size input")
	// ErrInvalidOption marks malformed option values (negative decimals,
	// out-of-range exponent, negative fixed width). These are programmer
	// errors and are reported regardless of Strict.
	ErrInvalidOption = errors.New("invalid option")
	// ErrUnknownUnit marks unit tokens that resolve to no known tier.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrOverflow marks parsed magnitudes outside the finite float64 range.
	ErrOverflow = errors.New("value overflows float64 range")
	// ErrPrecisionLoss marks big integers beyond ±(2^53-1), which cannot be
	// narrowed to float64 without losing digits.
	ErrPrecisionLoss = errors.New("integer exceeds float64 precision")
	// ErrEmptyInput marks empty or all-whitespace parse input.
	ErrEmptyInput = errors.New("empty input")
)
