// Package numeric implements styles for numbers, currency amounts and
// percentages.
//
// A style renders values with the glyphs of its locale and validates every
// keystroke: text that does not parse, leaves the bounds or exceeds the
// precision is rejected, while harmless slips such as a separator with no
// room for fraction digits are repaired silently.
//
// Basic usage:
//
//	style := numeric.Currency[decimal.Decimal](number.Decimal{}, "EUR").
//		WithLocale(language.German).
//		Bounds(decimal.Zero, decimal.NewFromInt(1_000_000))
//
//	style.Format(decimal.RequireFromString("1234.5")) // "€ 1.234,50"
//
//	field := engine.NewField[decimal.Decimal](style, decimal.Zero)
//
// Typing a lone minus or plus sign toggles or sets the sign instead of
// inserting it; typing a lone dot or comma inserts the locale's fraction
// separator.
package numeric
