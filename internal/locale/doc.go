// Package locale supplies the locale-derived collaborators of numeric
// styles: the lexicon of localized glyphs, currency and percent labels and
// a formatter that renders numbers into annotated snapshots.
//
// All locale data is probed from golang.org/x/text, so glyphs always match
// what its CLDR-backed printer produces for the same locale.
//
// Basic usage:
//
//	scheme, err := locale.Default.Get(locale.Key{
//		Locale:   language.German,
//		Kind:     locale.Currency,
//		Currency: "EUR",
//	})
//	f := locale.NewFormatter(scheme)
//	f.Format(number.MustParse("-1234.5")) // "€ -1.234,5"
//
// Schemes are expensive to build and are shared through a bounded,
// process-wide LRU cache. A Scheme is immutable and safe for concurrent use.
package locale
