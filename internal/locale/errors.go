package locale

import "errors"

// Errors returned while building locale data.
var (
	// ErrNonLocalizable indicates a glyph the locale data cannot provide.
	ErrNonLocalizable = errors.New("glyph not localizable")

	// ErrUnknownCurrency indicates a currency code that is not ISO 4217.
	ErrUnknownCurrency = errors.New("unknown currency")
)
