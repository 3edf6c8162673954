package pattern

import "errors"

var (
	// ErrOverflow is returned when an edit has more characters than the
	// pattern has placeholders.
	ErrOverflow = errors.New("pattern overflow")

	// ErrMismatch is returned when a character is rejected by its
	// placeholder.
	ErrMismatch = errors.New("pattern mismatch")
)
