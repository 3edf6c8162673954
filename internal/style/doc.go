// Package style provides decorators that compose engine styles.
//
// Decorators wrap a base style and change one aspect of it: labels around
// the text, a locale that never changes, equality by proxy, or who owns the
// base style's cache. Decorators forward caching to their base so a field
// keeps owning the cache of a decorated style.
//
//	price := style.From[float64](numeric.Number[float64](number.Float[float64]{})).
//		Suffix(" USD").
//		Constant().
//		Build()
package style
