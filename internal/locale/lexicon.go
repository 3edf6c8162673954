package locale

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	textnumber "golang.org/x/text/number"
	"golang.org/x/text/unicode/norm"

	"github.com/dshills/difftext/internal/number"
)

// Lexicon maps between the ASCII alphabet of number.Number and the glyphs
// a locale uses for digits, signs and separators.
type Lexicon struct {
	digits    [10]string
	minus     string
	fraction  string
	grouping  string
	primary   int // digits in the rightmost group
	secondary int // digits in every other group
	minimum   int // smallest integer length that is grouped

	// glyphs maps localized glyphs to ASCII, longest glyph first.
	glyphs []glyph
}

type glyph struct {
	text  string
	ascii string
}

// NewLexicon probes the glyphs of tag.
func NewLexicon(tag language.Tag) (*Lexicon, error) {
	p := message.NewPrinter(tag)
	l := &Lexicon{}

	for d := range l.digits {
		text := norm.NFC.String(p.Sprint(textnumber.Decimal(d)))
		if uniseg.GraphemeClusterCount(text) != 1 {
			return nil, fmt.Errorf("%w: digit %d in %s renders as %q", ErrNonLocalizable, d, tag, text)
		}
		l.digits[d] = text
	}

	l.fraction = l.strip(p.Sprint(textnumber.Decimal(1.5, textnumber.Scale(1))))
	if l.fraction == "" {
		return nil, fmt.Errorf("%w: fraction separator in %s", ErrNonLocalizable, tag)
	}
	l.minus = l.strip(p.Sprint(textnumber.Decimal(-1)))
	if l.minus == "" {
		return nil, fmt.Errorf("%w: minus sign in %s", ErrNonLocalizable, tag)
	}
	l.probeGrouping(p)
	l.index()
	return l, nil
}

// probeGrouping reads the grouping glyph and sizes from a ten digit number.
func (l *Lexicon) probeGrouping(p *message.Printer) {
	text := norm.NFC.String(p.Sprint(textnumber.Decimal(1234567890)))
	for _, g := range graphemes(text) {
		if l.digit(g) < 0 {
			l.grouping = g
			break
		}
	}
	if l.grouping == "" {
		return
	}
	groups := strings.Split(text, l.grouping)
	l.primary = uniseg.GraphemeClusterCount(groups[len(groups)-1])
	l.secondary = l.primary
	if len(groups) > 2 {
		l.secondary = uniseg.GraphemeClusterCount(groups[len(groups)-2])
	}
	l.minimum = l.primary + 1
	if !strings.Contains(p.Sprint(textnumber.Decimal(1234)), l.grouping) {
		l.minimum = l.primary + 2
	}
}

// index builds the glyph lookup table. ASCII fallbacks are added only for
// characters the locale does not already use.
func (l *Lexicon) index() {
	seen := map[string]bool{}
	add := func(text, ascii string) {
		if text == "" || seen[text] {
			return
		}
		seen[text] = true
		l.glyphs = append(l.glyphs, glyph{text: text, ascii: ascii})
	}
	for d, text := range l.digits {
		add(text, string(rune('0'+d)))
	}
	add(l.minus, string(number.MinusGlyph))
	add(l.fraction, string(number.SeparatorGlyph))
	add(l.grouping, "")
	for d := range l.digits {
		add(string(rune('0'+d)), string(rune('0'+d)))
	}
	add(string(number.MinusGlyph), string(number.MinusGlyph))
	add(string(number.PlusGlyph), string(number.PlusGlyph))
	add(string(number.SeparatorGlyph), string(number.SeparatorGlyph))
	sort.SliceStable(l.glyphs, func(i, j int) bool {
		return len(l.glyphs[i].text) > len(l.glyphs[j].text)
	})
}

// strip removes every digit glyph from text.
func (l *Lexicon) strip(text string) string {
	var b strings.Builder
	for _, g := range graphemes(norm.NFC.String(text)) {
		if l.digit(g) < 0 {
			b.WriteString(g)
		}
	}
	return b.String()
}

// digit returns the value of a localized digit glyph, or -1.
func (l *Lexicon) digit(g string) int {
	for d, text := range l.digits {
		if text == g {
			return d
		}
	}
	return -1
}

// Digit returns the localized glyph of digit d.
func (l *Lexicon) Digit(d int) string { return l.digits[d] }

// Minus returns the localized minus sign.
func (l *Lexicon) Minus() string { return l.minus }

// Fraction returns the localized fraction separator.
func (l *Lexicon) Fraction() string { return l.fraction }

// Grouping returns the localized grouping separator, or "" if the locale
// does not group digits.
func (l *Lexicon) Grouping() string { return l.grouping }

// IsSeparator reports whether text is a glyph users type to start a
// fraction: the localized separators or an ASCII dot or comma.
func (l *Lexicon) IsSeparator(text string) bool {
	switch text {
	case ".", ",", l.fraction:
		return true
	}
	return l.grouping != "" && text == l.grouping
}

// IsSign reports whether text is a plus or minus glyph and which one.
func (l *Lexicon) IsSign(text string) (sign number.Sign, ok bool) {
	switch text {
	case string(number.MinusGlyph), l.minus, "−":
		return number.Negative, true
	case string(number.PlusGlyph):
		return number.Positive, true
	}
	return number.Positive, false
}

// Recognizes reports whether g is part of a number's value: a digit, sign
// or fraction separator. Grouping separators are not.
func (l *Lexicon) Recognizes(g string) bool {
	for _, gl := range l.glyphs {
		if gl.text == g {
			return gl.ascii != ""
		}
	}
	return false
}

// Unformat maps localized text to the ASCII alphabet of number.Parse.
// Grouping separators are dropped. Unknown characters are kept so that
// parsing rejects them.
func (l *Lexicon) Unformat(text string) string {
	text = norm.NFC.String(text)
	var b strings.Builder
	for len(text) > 0 {
		matched := false
		for _, gl := range l.glyphs {
			if strings.HasPrefix(text, gl.text) {
				b.WriteString(gl.ascii)
				text = text[len(gl.text):]
				matched = true
				break
			}
		}
		if !matched {
			g, rest, _, _ := uniseg.FirstGraphemeClusterInString(text, -1)
			b.WriteString(g)
			text = rest
		}
	}
	return b.String()
}

// Localize renders ASCII digits of n with localized glyphs and grouping.
// Labels are not added.
func (l *Lexicon) Localize(n number.Number) string {
	var b strings.Builder
	if n.Sign == number.Negative {
		b.WriteString(l.minus)
	}
	l.writeGrouped(&b, n.Integer)
	if n.Separator {
		b.WriteString(l.fraction)
		l.writeDigits(&b, n.Fraction)
	}
	return b.String()
}

func (l *Lexicon) writeGrouped(b *strings.Builder, digits string) {
	if l.grouping == "" || len(digits) < l.minimum {
		l.writeDigits(b, digits)
		return
	}
	// Group sizes from the right: primary first, then secondary.
	var cuts []int
	for end, size := len(digits)-l.primary, l.secondary; end > 0; end -= size {
		cuts = append([]int{end}, cuts...)
	}
	start := 0
	for _, cut := range cuts {
		l.writeDigits(b, digits[start:cut])
		b.WriteString(l.grouping)
		start = cut
	}
	l.writeDigits(b, digits[start:])
}

func (l *Lexicon) writeDigits(b *strings.Builder, digits string) {
	for i := 0; i < len(digits); i++ {
		b.WriteString(l.digits[digits[i]-'0'])
	}
}

// graphemes splits text into grapheme clusters.
func graphemes(text string) []string {
	var out []string
	state := -1
	for len(text) > 0 {
		var g string
		g, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		out = append(out, g)
	}
	return out
}
