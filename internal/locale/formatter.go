package locale

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/difftext/internal/engine/snapshot"
	"github.com/dshills/difftext/internal/number"
)

// Formatter renders numbers with the glyphs and labels of a scheme and
// parses its own output back. Parse is the left inverse of Format.
type Formatter struct {
	scheme *Scheme
}

// NewFormatter creates a formatter for scheme.
func NewFormatter(scheme *Scheme) Formatter {
	return Formatter{scheme: scheme}
}

// Scheme returns the scheme the formatter renders with.
func (f Formatter) Scheme() *Scheme {
	return f.scheme
}

// Format renders n with labels, localized digits and grouping.
// Every digit of n is rendered; no rounding takes place. A minus sign is
// placed in front of a prefix label, as in "-$ 5.00".
func (f Formatter) Format(n number.Number) string {
	labels := f.scheme.Labels
	lex := f.scheme.Lexicon
	if n.Sign == number.Negative && labels.Prefix != "" {
		n.Sign = number.Positive
		return lex.Minus() + labels.Prefix + lex.Localize(n) + labels.Suffix
	}
	return labels.Prefix + lex.Localize(n) + labels.Suffix
}

// Snapshot renders n and annotates the result.
func (f Formatter) Snapshot(n number.Number) snapshot.Snapshot {
	return f.Annotate(f.Format(n))
}

// Annotate tags the symbols of formatted text. Labels found at the edges
// become Prefix and Suffix, glyphs of the value become Content and
// everything else, such as grouping separators, becomes Phantom.
func (f Formatter) Annotate(text string) snapshot.Snapshot {
	sign, prefix, suffix := f.labelLengths(text)
	symbols := snapshot.Symbols(text, snapshot.Phantom)
	for i := range symbols {
		switch {
		case i < sign:
			symbols[i].Attribute = snapshot.Content
		case i < sign+prefix:
			symbols[i].Attribute = snapshot.Prefix
		case i >= len(symbols)-suffix:
			symbols[i].Attribute = snapshot.Suffix
		case f.scheme.Lexicon.Recognizes(symbols[i].Character):
			symbols[i].Attribute = snapshot.Content
		}
	}
	return snapshot.New(symbols...)
}

// labelLengths returns the grapheme lengths of a minus sign leading the
// prefix label and of the labels found at the edges of text.
func (f Formatter) labelLengths(text string) (sign, prefix, suffix int) {
	labels := f.scheme.Labels
	minus, rest := f.detachMinus(text)
	if minus != "" {
		sign, text = 1, rest
	}
	if labels.Prefix != "" && strings.HasPrefix(text, labels.Prefix) {
		prefix = uniseg.GraphemeClusterCount(labels.Prefix)
		text = text[len(labels.Prefix):]
	}
	if labels.Suffix != "" && strings.HasSuffix(text, labels.Suffix) {
		suffix = uniseg.GraphemeClusterCount(labels.Suffix)
	}
	return sign, prefix, suffix
}

// detachMinus splits a minus sign placed in front of the prefix label off
// text. It returns "" and text unchanged when there is none.
func (f Formatter) detachMinus(text string) (minus, rest string) {
	prefix := f.scheme.Labels.Prefix
	if prefix == "" {
		return "", text
	}
	g, after, _, _ := uniseg.FirstGraphemeClusterInString(text, -1)
	if sign, ok := f.scheme.Lexicon.IsSign(g); !ok || sign != number.Negative {
		return "", text
	}
	if !strings.HasPrefix(after, prefix) {
		return "", text
	}
	return g, after
}

// Parse parses text produced by Format.
func (f Formatter) Parse(text string) (number.Number, error) {
	labels := f.scheme.Labels
	minus, text := f.detachMinus(text)
	text = strings.TrimPrefix(text, labels.Prefix)
	text = strings.TrimSuffix(text, labels.Suffix)
	return number.Parse(f.scheme.Lexicon.Unformat(minus + text))
}

// Unformat maps the content of s to unformatted ASCII.
func (f Formatter) Unformat(s snapshot.Snapshot) string {
	return f.scheme.Lexicon.Unformat(s.Content())
}
