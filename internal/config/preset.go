package config

import (
	"fmt"
	"maps"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/go-logr/logr"
	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/dshills/difftext/internal/engine"
	"github.com/dshills/difftext/internal/number"
	"github.com/dshills/difftext/internal/style"
	"github.com/dshills/difftext/internal/style/numeric"
	"github.com/dshills/difftext/internal/style/pattern"
)

// Style kinds.
const (
	KindNumber   = "number"
	KindCurrency = "currency"
	KindPercent  = "percent"
	KindPattern  = "pattern"
)

// File is a decoded preset file.
type File struct {
	Styles map[string]Preset `toml:"styles"`
}

// Preset describes a style and the initial value of a field using it.
type Preset struct {
	// Kind is one of number, currency, percent or pattern. Defaults to number.
	Kind string `toml:"kind"`
	// Type is the value type of numeric kinds: int, int8, int16, int32,
	// int64, uint, uint8, uint16, uint32, uint64, float32, float64 or
	// decimal. Defaults to decimal.
	Type string `toml:"type"`
	// Locale is a BCP 47 tag. Defaults to the root locale.
	Locale   string `toml:"locale"`
	Currency string `toml:"currency"`

	// Min and Max bound numeric values. Either may be omitted.
	Min any `toml:"min"`
	Max any `toml:"max"`
	// Integer and Fraction are [lower, upper] digit counts.
	Integer  []int `toml:"integer"`
	Fraction []int `toml:"fraction"`

	Prefix   string `toml:"prefix"`
	Suffix   string `toml:"suffix"`
	Constant bool   `toml:"constant"`

	// Pattern is the template of the pattern kind.
	Pattern string `toml:"pattern"`
	// Placeholders maps placeholder characters to a class: digit, letter,
	// upper, lower, alnum or any.
	Placeholders map[string]string `toml:"placeholders"`
	// Visible shows the unfilled part of a pattern.
	Visible bool `toml:"visible"`

	// Value is the initial value.
	Value any `toml:"value"`
}

// Decode converts a raw configuration map into a File.
func Decode(raw map[string]any) (*File, error) {
	data, err := toml.Marshal(raw)
	if err != nil {
		return nil, &ParseError{Path: "<merged>", Message: err.Error(), Err: err}
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, &ParseError{Path: "<merged>", Message: err.Error(), Err: err}
	}
	return &f, nil
}

// Names returns the preset names in order.
func (f *File) Names() []string {
	return slices.Sorted(maps.Keys(f.Styles))
}

// Preset returns the preset called name.
func (f *File) Preset(name string) (Preset, error) {
	p, ok := f.Styles[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return p, nil
}

// Build creates an editor for the preset. logger receives the style's
// autocorrections and configuration errors.
func (p Preset) Build(logger logr.Logger, opts ...engine.Option) (Editor, error) {
	switch p.Kind {
	case KindPattern:
		return p.buildPattern(logger, opts)
	case "", KindNumber, KindCurrency, KindPercent:
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrInvalidPreset, p.Kind)
	}

	switch p.Type {
	case "int":
		return buildNumeric[int](p, number.Int[int]{}, logger, opts)
	case "int8":
		return buildNumeric[int8](p, number.Int[int8]{}, logger, opts)
	case "int16":
		return buildNumeric[int16](p, number.Int[int16]{}, logger, opts)
	case "int32":
		return buildNumeric[int32](p, number.Int[int32]{}, logger, opts)
	case "int64":
		return buildNumeric[int64](p, number.Int[int64]{}, logger, opts)
	case "uint":
		return buildNumeric[uint](p, number.Uint[uint]{}, logger, opts)
	case "uint8":
		return buildNumeric[uint8](p, number.Uint[uint8]{}, logger, opts)
	case "uint16":
		return buildNumeric[uint16](p, number.Uint[uint16]{}, logger, opts)
	case "uint32":
		return buildNumeric[uint32](p, number.Uint[uint32]{}, logger, opts)
	case "uint64":
		return buildNumeric[uint64](p, number.Uint[uint64]{}, logger, opts)
	case "float32":
		return buildNumeric[float32](p, number.Float[float32]{}, logger, opts)
	case "float64":
		return buildNumeric[float64](p, number.Float[float64]{}, logger, opts)
	case "", "decimal":
		return buildNumeric[decimal.Decimal](p, number.Decimal{}, logger, opts)
	default:
		return nil, fmt.Errorf("%w: type %q", ErrInvalidPreset, p.Type)
	}
}

func buildNumeric[V any](p Preset, traits number.Traits[V], logger logr.Logger, opts []engine.Option) (Editor, error) {
	var s numeric.Style[V]
	switch p.Kind {
	case KindCurrency:
		if p.Currency == "" {
			return nil, fmt.Errorf("%w: currency kind without a currency code", ErrInvalidPreset)
		}
		s = numeric.Currency[V](traits, p.Currency)
	case KindPercent:
		s = numeric.Percent[V](traits)
	default:
		s = numeric.Number[V](traits)
	}
	s = s.Logger(logger)

	if p.Locale != "" {
		tag, err := language.Parse(p.Locale)
		if err != nil {
			return nil, fmt.Errorf("%w: locale %q: %v", ErrInvalidPreset, p.Locale, err)
		}
		s = s.WithLocale(tag)
	}

	if p.Min != nil || p.Max != nil {
		lowest, highest := traits.Limits()
		lo, err := parseOr(traits, p.Min, lowest)
		if err != nil {
			return nil, fmt.Errorf("%w: min: %w", ErrInvalidPreset, err)
		}
		hi, err := parseOr(traits, p.Max, highest)
		if err != nil {
			return nil, fmt.Errorf("%w: max: %w", ErrInvalidPreset, err)
		}
		if traits.Compare(lo, hi) > 0 {
			return nil, fmt.Errorf("%w: min %s is greater than max %s", ErrInvalidPreset, traits.Format(lo), traits.Format(hi))
		}
		s = s.Bounds(lo, hi)
	}

	if p.Integer != nil || p.Fraction != nil {
		limit := traits.Precision()
		integer, err := span(p.Integer, number.Span{Lower: 1, Upper: limit})
		if err != nil {
			return nil, fmt.Errorf("%w: integer: %w", ErrInvalidPreset, err)
		}
		fraction, err := span(p.Fraction, number.Span{Lower: 0, Upper: limit})
		if err != nil {
			return nil, fmt.Errorf("%w: fraction: %w", ErrInvalidPreset, err)
		}
		s = s.Precision(integer, fraction)
	}

	value, err := parseOr(traits, p.Value, traits.Zero())
	if err != nil {
		return nil, fmt.Errorf("%w: value: %w", ErrInvalidPreset, err)
	}
	return newEditor(decorate[V](p, s), value, traits.Format, opts), nil
}

func (p Preset) buildPattern(logger logr.Logger, opts []engine.Option) (Editor, error) {
	if p.Pattern == "" {
		return nil, fmt.Errorf("%w: pattern kind without a pattern", ErrInvalidPreset)
	}
	s := pattern.New(p.Pattern).Visible(p.Visible).Logger(logger)
	for _, key := range slices.Sorted(maps.Keys(p.Placeholders)) {
		r, size := utf8.DecodeRuneInString(key)
		if size != len(key) || r == utf8.RuneError {
			return nil, fmt.Errorf("%w: placeholder %q is not a single character", ErrInvalidPreset, key)
		}
		accepts, ok := classes[p.Placeholders[key]]
		if !ok {
			return nil, fmt.Errorf("%w: placeholder class %q", ErrInvalidPreset, p.Placeholders[key])
		}
		s = s.Placeholder(r, accepts)
	}

	value := ""
	if p.Value != nil {
		value = fmt.Sprint(p.Value)
	}
	// Predicates cannot be compared; their class names can.
	proxy := fmt.Sprintf("%s|%t|%v", p.Pattern, p.Visible, p.Placeholders)
	identity := func(v string) string { return v }
	return newEditor(decorate(p, style.Equals[string](s, proxy)), value, identity, opts), nil
}

// classes are the placeholder predicates available to presets.
var classes = map[string]pattern.Predicate{
	"digit":  unicode.IsDigit,
	"letter": unicode.IsLetter,
	"upper":  unicode.IsUpper,
	"lower":  unicode.IsLower,
	"alnum":  func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) },
	"any":    func(r rune) bool { return !unicode.IsControl(r) },
}

// decorate applies labels and locale pinning.
func decorate[V any](p Preset, s engine.Style[V]) engine.Style[V] {
	b := style.From(s)
	if p.Prefix != "" || p.Suffix != "" {
		b = b.Labels(p.Prefix, p.Suffix)
	}
	if p.Constant {
		b = b.Constant()
	}
	return b.Build()
}

// parseOr parses a configured value with traits, or returns fallback when
// raw is nil.
func parseOr[V any](traits number.Traits[V], raw any, fallback V) (V, error) {
	if raw == nil {
		return fallback, nil
	}
	return traits.Parse(fmt.Sprint(raw))
}

// span reads a [lower, upper] pair.
func span(pair []int, fallback number.Span) (number.Span, error) {
	switch len(pair) {
	case 0:
		return fallback, nil
	case 2:
		if pair[0] > pair[1] {
			return number.Span{}, fmt.Errorf("lower %d is greater than upper %d", pair[0], pair[1])
		}
		return number.Span{Lower: pair[0], Upper: pair[1]}, nil
	default:
		return number.Span{}, fmt.Errorf("want [lower, upper], got %d values", len(pair))
	}
}
