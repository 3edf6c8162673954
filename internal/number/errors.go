package number

import "errors"

// Errors returned by number operations.
var (
	// ErrInvalidNumber indicates text that does not follow the number grammar.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrOutOfBounds indicates a value outside the configured bounds or the
	// limits of its type.
	ErrOutOfBounds = errors.New("value out of bounds")

	// ErrSignMismatch indicates a sign that the bounds do not allow.
	ErrSignMismatch = errors.New("sign not allowed by bounds")

	// ErrPrecision indicates more digits than the precision allows.
	ErrPrecision = errors.New("precision exceeded")
)
