package numeric

import (
	"github.com/go-logr/logr"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/dshills/difftext/internal/engine"
	"github.com/dshills/difftext/internal/locale"
	"github.com/dshills/difftext/internal/number"
)

// Style formats and validates values of type V.
// Style is an immutable value type; builder methods return copies.
type Style[V any] struct {
	traits       number.Traits[V]
	key          locale.Key
	bounds       number.Bounds[V]
	precision    number.Precision[V]
	hasPrecision bool

	schemes *locale.Schemes
	cache   *Cache
	logger  logr.Logger
}

var (
	_ engine.Style[int]     = Style[int]{}
	_ engine.Cacheable[int] = Style[int]{}
)

func newStyle[V any](traits number.Traits[V], key locale.Key) Style[V] {
	return Style[V]{
		traits:    traits,
		key:       key,
		bounds:    number.DefaultBounds(traits),
		precision: number.DefaultPrecision(traits),
		schemes:   locale.Default,
		logger:    logr.Discard(),
	}
}

// Number creates a style for plain numbers in the root locale.
func Number[V any](traits number.Traits[V]) Style[V] {
	return newStyle(traits, locale.Key{Locale: language.Und, Kind: locale.Plain})
}

// Currency creates a style for amounts of the ISO 4217 currency code.
// Unless Precision is set, the fraction digits follow the currency.
func Currency[V any](traits number.Traits[V], code string) Style[V] {
	return newStyle(traits, locale.Key{Locale: language.Und, Kind: locale.Currency, Currency: code})
}

// Percent creates a style for percentages. Fractional value types are
// displayed multiplied by 100; integer types are displayed as is.
func Percent[V any](traits number.Traits[V]) Style[V] {
	return newStyle(traits, locale.Key{Locale: language.Und, Kind: locale.Percent})
}

// Bounds returns the style limited to [min, max].
// It panics if min > max.
func (s Style[V]) Bounds(min, max V) Style[V] {
	s.bounds = number.NewBounds(s.traits, min, max)
	return s
}

// Precision returns the style with the given digit spans.
func (s Style[V]) Precision(integer, fraction number.Span) Style[V] {
	s.precision = number.NewPrecision(s.traits, integer, fraction)
	s.hasPrecision = true
	return s
}

// WithLocale returns the style using the glyphs and labels of tag.
func (s Style[V]) WithLocale(tag language.Tag) Style[V] {
	s.key.Locale = tag
	return s
}

// Logger returns the style reporting autocorrections and configuration
// errors to logger.
func (s Style[V]) Logger(logger logr.Logger) Style[V] {
	s.logger = logger
	return s
}

// Schemes returns the style taking its locale data from schemes instead of
// locale.Default.
func (s Style[V]) Schemes(schemes *locale.Schemes) Style[V] {
	s.schemes = schemes
	return s
}

// Key returns the locale key of the style.
func (s Style[V]) Key() locale.Key { return s.key }

// Traits returns the value traits of the style.
func (s Style[V]) Traits() number.Traits[V] { return s.traits }

// Locale implements engine.Style.
func (s Style[V]) Locale(tag language.Tag) engine.Style[V] {
	return s.WithLocale(tag)
}

// Equal reports whether other is a numeric style with the same
// configuration. Loggers and caches are ignored.
func (s Style[V]) Equal(other engine.Style[V]) bool {
	o, ok := other.(Style[V])
	if !ok {
		return false
	}
	t := s.traits
	return s.key == o.key &&
		t.Name() == o.traits.Name() &&
		t.Compare(s.bounds.Min(), o.bounds.Min()) == 0 &&
		t.Compare(s.bounds.Max(), o.bounds.Max()) == 0 &&
		s.precision == o.precision &&
		s.hasPrecision == o.hasPrecision &&
		s.schemes == o.schemes
}

// Identity implements engine.Cacheable. It changes exactly when the locale
// data of the style changes.
func (s Style[V]) Identity() any {
	return s.key
}

// NewCache implements engine.Cacheable. A broken locale configuration
// falls back to the root locale and is logged, so the error is always nil.
func (s Style[V]) NewCache() (engine.Cache, error) {
	return fallbackCache(s.schemes, s.key, s.logger), nil
}

// WithCache implements engine.Cacheable.
func (s Style[V]) WithCache(cache engine.Cache) engine.Style[V] {
	if c, ok := cache.(*Cache); ok {
		s.cache = c
	}
	return s
}

// resolve returns the attached cache when it matches the style, otherwise a
// transient one backed by the scheme cache.
func (s Style[V]) resolve() *Cache {
	if s.cache != nil && s.cache.key == s.key {
		return s.cache
	}
	return fallbackCache(s.schemes, s.key, s.logger)
}

// effectivePrecision applies the currency's fraction digits unless a
// precision was set explicitly.
func (s Style[V]) effectivePrecision(c *Cache) number.Precision[V] {
	if s.hasPrecision || c.scheme.Fraction < 0 || c.scheme.Key != s.key {
		return s.precision
	}
	limit := s.traits.Precision()
	digits := c.scheme.Fraction
	return number.NewPrecision(s.traits,
		number.Span{Lower: 1, Upper: limit},
		number.Span{Lower: digits, Upper: digits})
}

// scaled reports whether displayed digits are the value times 100.
func (s Style[V]) scaled() bool {
	return s.key.Kind == locale.Percent && !s.traits.Integer()
}

// toNumber converts a value into displayed digits.
func (s Style[V]) toNumber(v V) number.Number {
	text := s.traits.Format(v)
	if s.scaled() {
		text = decimal.RequireFromString(text).Shift(2).String()
	}
	return number.MustParse(text)
}

// toValue converts displayed digits into a value.
func (s Style[V]) toValue(n number.Number) (V, error) {
	if !s.scaled() {
		return number.Value(s.traits, n)
	}
	d, err := decimal.NewFromString(n.Canonical())
	if err != nil {
		var zero V
		return zero, err
	}
	return s.traits.Parse(d.Shift(-2).String())
}

// Format renders v for display. The value is clamped to the bounds and
// rounded to the precision; fraction digits are padded to the lower bound
// of the precision.
func (s Style[V]) Format(v V) string {
	c := s.resolve()
	p := s.effectivePrecision(c)
	n := s.toNumber(s.bounds.Autocorrect(v))
	n = n.Round(p.Fraction().Upper)
	p.Autocorrect(&n)
	n = n.Pad(p.Integer().Lower, p.Fraction().Lower)
	return c.formatter.Format(n)
}

// Interpret turns v into an editable commit. Out of range values are
// clamped, signs forced and excess digits trimmed; each repair is logged
// as an autocorrection.
func (s Style[V]) Interpret(v V) engine.Commit[V] {
	c := s.resolve()
	p := s.effectivePrecision(c)

	corrected := s.bounds.Autocorrect(v)
	if s.traits.Compare(corrected, v) != 0 {
		engine.Autocorrection(s.logger, "value clamped to bounds",
			"value", s.traits.Format(v), "bounds", s.bounds.String())
	}
	n := s.toNumber(corrected)
	if s.bounds.AutocorrectSign(&n) {
		engine.Autocorrection(s.logger, "sign forced by bounds", "number", n.String())
	}
	if p.Autocorrect(&n) {
		engine.Autocorrection(s.logger, "digits trimmed to precision", "number", n.String())
	}
	if value, err := s.toValue(n); err == nil {
		corrected = s.bounds.Autocorrect(value)
		if s.traits.Compare(corrected, value) != 0 {
			n = s.toNumber(corrected)
		}
	}
	return engine.Commit[V]{Value: corrected, Snapshot: c.formatter.Snapshot(n)}
}
