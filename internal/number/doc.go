// Package number provides the locale-neutral numeric model behind
// as-you-type numeric styles.
//
// # Number
//
// A Number is an ASCII view of a numeric literal: a sign, integer digits,
// an optional fraction separator and fraction digits. It is produced by
// parsing text that has already been mapped from localized glyphs to
// ASCII:
//
//	n, err := number.Parse("-0012.50") // "-12.50"
//	n.Count()                          // {Value: 4, Integer: 2, Fraction: 2}
//
// # Traits
//
// Traits describe a concrete value type: its limits, its maximum number of
// significant digits and how it converts to and from canonical ASCII.
// Implementations exist for signed and unsigned integers, floats and
// shopspring decimals:
//
//	traits := number.Int[int32]{}
//	traits.Precision() // 10
//
// # Bounds and Precision
//
// Bounds and Precision constrain a value. Each offers a forgiving
// Autocorrect used when a value comes from outside the editor, and a strict
// Autovalidate used while the user types:
//
//	bounds := number.NewBounds[int](number.Int[int]{}, 0, 100)
//	bounds.Autocorrect(250) // 100
//
//	precision := number.NewPrecision[int](number.Int[int]{}, number.Span{Lower: 1, Upper: 3}, number.Span{})
//	n, _ := number.Parse("1234")
//	_, err := precision.Autovalidate(&n) // ErrPrecision
package number
