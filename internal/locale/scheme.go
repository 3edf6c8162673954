package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	textnumber "golang.org/x/text/number"
)

// Kind selects the labels a scheme decorates numbers with.
type Kind uint8

const (
	// Plain numbers have no labels.
	Plain Kind = iota
	// Currency numbers carry a currency symbol.
	Currency
	// Percent numbers carry a percent sign.
	Percent
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "number"
	case Currency:
		return "currency"
	case Percent:
		return "percent"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Key identifies a scheme. Currency is only meaningful for the Currency kind.
type Key struct {
	Locale   language.Tag
	Kind     Kind
	Currency string
}

// String returns a string representation of the key.
func (k Key) String() string {
	if k.Kind == Currency {
		return fmt.Sprintf("%s/%s/%s", k.Locale, k.Kind, k.Currency)
	}
	return fmt.Sprintf("%s/%s", k.Locale, k.Kind)
}

// Labels are the texts surrounding a number.
type Labels struct {
	Prefix string
	Suffix string
}

// IsEmpty reports whether there are no labels.
func (l Labels) IsEmpty() bool {
	return l.Prefix == "" && l.Suffix == ""
}

// Scheme is the locale data for one Key.
type Scheme struct {
	Key     Key
	Lexicon *Lexicon
	Labels  Labels

	// Fraction is the currency's standard number of fraction digits,
	// or -1 when the scheme has no currency.
	Fraction int
}

// NewScheme probes the locale data for key.
func NewScheme(key Key) (*Scheme, error) {
	lexicon, err := NewLexicon(key.Locale)
	if err != nil {
		return nil, err
	}
	s := &Scheme{Key: key, Lexicon: lexicon, Fraction: -1}
	p := message.NewPrinter(key.Locale)

	switch key.Kind {
	case Currency:
		unit, err := currency.ParseISO(key.Currency)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnknownCurrency, key.Currency, err)
		}
		s.Fraction, _ = currency.Standard.Rounding(unit)
		s.Labels = lexicon.labels(p.Sprint(currency.Symbol(unit.Amount(0))))
		if strings.TrimSpace(s.Labels.Prefix+s.Labels.Suffix) == "" {
			return nil, fmt.Errorf("%w: symbol of %s in %s", ErrNonLocalizable, unit, key.Locale)
		}
	case Percent:
		s.Labels = lexicon.labels(p.Sprint(textnumber.Percent(0)))
		if s.Labels.IsEmpty() {
			return nil, fmt.Errorf("%w: percent sign in %s", ErrNonLocalizable, key.Locale)
		}
	}
	return s, nil
}

// labels splits a formatted sample around its digits.
func (l *Lexicon) labels(sample string) Labels {
	gs := graphemes(sample)
	first, last := -1, -1
	for i, g := range gs {
		if l.digit(g) >= 0 {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return Labels{Prefix: sample}
	}
	return Labels{
		Prefix: strings.Join(gs[:first], ""),
		Suffix: strings.Join(gs[last+1:], ""),
	}
}
