package number

import (
	"fmt"
	"strings"
)

// ASCII glyphs of the unformatted alphabet.
const (
	PlusGlyph      = '+'
	MinusGlyph     = '-'
	SeparatorGlyph = '.'
)

// Sign is the sign of a number.
type Sign uint8

const (
	Positive Sign = iota
	Negative
)

// String returns the ASCII glyph of the sign.
func (s Sign) String() string {
	if s == Negative {
		return string(MinusGlyph)
	}
	return string(PlusGlyph)
}

// Toggled returns the opposite sign.
func (s Sign) Toggled() Sign {
	if s == Negative {
		return Positive
	}
	return Negative
}

// IsDigit reports whether b is an ASCII digit.
func IsDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// Number is a locale-neutral numeric literal.
//
// Integer always holds at least one digit and has no leading zeros unless it
// is exactly "0". Fraction is empty unless Separator is set.
type Number struct {
	Sign      Sign
	Integer   string
	Separator bool
	Fraction  string
}

// Parse parses unformatted ASCII text with the grammar
// sign? digit* ('.' digit*)?. Missing integer digits read as zero, so ""
// is 0 and "-" is -0.
func Parse(text string) (Number, error) {
	var n Number
	i := 0
	if i < len(text) && (text[i] == PlusGlyph || text[i] == MinusGlyph) {
		if text[i] == MinusGlyph {
			n.Sign = Negative
		}
		i++
	}
	start := i
	for i < len(text) && IsDigit(text[i]) {
		i++
	}
	n.Integer = text[start:i]
	if i < len(text) && text[i] == SeparatorGlyph {
		n.Separator = true
		i++
		start = i
		for i < len(text) && IsDigit(text[i]) {
			i++
		}
		n.Fraction = text[start:i]
	}
	if i != len(text) {
		return Number{}, fmt.Errorf("%w: %q has trailing %q", ErrInvalidNumber, text, text[i:])
	}
	n.normalize()
	return n, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Number {
	n, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return n
}

// normalize strips the zero prefix and makes the integer at least zero.
func (n *Number) normalize() {
	n.Integer = strings.TrimLeft(n.Integer, "0")
	if n.Integer == "" {
		n.Integer = "0"
	}
}

// String returns the number as unformatted ASCII.
func (n Number) String() string {
	var b strings.Builder
	if n.Sign == Negative {
		b.WriteByte(MinusGlyph)
	}
	b.WriteString(n.Integer)
	if n.Separator {
		b.WriteByte(SeparatorGlyph)
		b.WriteString(n.Fraction)
	}
	return b.String()
}

// IsZero reports whether every digit is zero.
func (n Number) IsZero() bool {
	return strings.Trim(n.Integer, "0") == "" && strings.Trim(n.Fraction, "0") == ""
}

// Toggle flips the sign.
func (n *Number) Toggle() {
	n.Sign = n.Sign.Toggled()
}

// RemoveSeparatorAsSuffix drops a separator that has no fraction digits.
// It returns true if the number changed.
func (n *Number) RemoveSeparatorAsSuffix() bool {
	if !n.Separator || n.Fraction != "" {
		return false
	}
	n.Separator = false
	return true
}

// Count returns the digit counts of the number.
func (n Number) Count() Count {
	digits := n.Integer + n.Fraction
	zeros := len(digits) - len(strings.TrimLeft(digits, "0"))
	return Count{
		Value:    len(digits) - zeros,
		Integer:  len(n.Integer),
		Fraction: len(n.Fraction),
	}
}

// Trim removes digits until every count fits limit. Fraction digits are
// removed from the end and integer digits from the start. It returns true
// if the number changed.
func (n *Number) Trim(limit Count) bool {
	before := *n
	if len(n.Fraction) > limit.Fraction {
		n.Fraction = n.Fraction[:max(limit.Fraction, 0)]
	}
	if len(n.Integer) > limit.Integer {
		n.Integer = n.Integer[len(n.Integer)-max(limit.Integer, 1):]
	}
	n.normalize()
	for n.Count().Value > max(limit.Value, 0) {
		switch {
		case n.Fraction != "":
			n.Fraction = n.Fraction[:len(n.Fraction)-1]
		case len(n.Integer) > 1:
			n.Integer = n.Integer[1:]
			n.normalize()
		default:
			n.Integer = "0"
		}
	}
	if before.Fraction != "" && n.Fraction == "" {
		n.Separator = false
	}
	return *n != before
}

// Round rounds the fraction to at most places digits, half away from zero.
func (n Number) Round(places int) Number {
	places = max(places, 0)
	if len(n.Fraction) <= places {
		return n
	}
	up := n.Fraction[places] >= '5'
	digits := []byte(n.Integer + n.Fraction[:places])
	if up {
		i := len(digits) - 1
		for ; i >= 0; i-- {
			if digits[i] < '9' {
				digits[i]++
				break
			}
			digits[i] = '0'
		}
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		}
	}
	split := len(digits) - places
	n.Integer = string(digits[:split])
	n.Fraction = string(digits[split:])
	n.Separator = places > 0
	n.normalize()
	if n.IsZero() {
		n.Sign = Positive
	}
	return n
}

// Pad returns the number with at least integer integer digits and fraction
// fraction digits, adding zeros as needed. Padded numbers are for display
// and may have leading zeros.
func (n Number) Pad(integer, fraction int) Number {
	if missing := integer - len(n.Integer); missing > 0 {
		n.Integer = strings.Repeat("0", missing) + n.Integer
	}
	if missing := fraction - len(n.Fraction); missing > 0 {
		n.Fraction += strings.Repeat("0", missing)
		n.Separator = true
	}
	return n
}

// Canonical returns the shortest ASCII text of the same value: no dangling
// separator, no trailing fraction zeros and no sign on zero.
func (n Number) Canonical() string {
	fraction := strings.TrimRight(n.Fraction, "0")
	text := n.Integer
	if fraction != "" {
		text += string(SeparatorGlyph) + fraction
	}
	if n.Sign == Negative && !n.IsZero() {
		text = string(MinusGlyph) + text
	}
	return text
}

// Count holds digit counts: Value counts significant digits, i.e. all
// digits minus the leading zeros of integer and fraction combined.
type Count struct {
	Value    int
	Integer  int
	Fraction int
}

// Sub returns the componentwise difference c - other.
func (c Count) Sub(other Count) Count {
	return Count{
		Value:    c.Value - other.Value,
		Integer:  c.Integer - other.Integer,
		Fraction: c.Fraction - other.Fraction,
	}
}

// String returns a debug representation of the count.
func (c Count) String() string {
	return fmt.Sprintf("{value: %d, integer: %d, fraction: %d}", c.Value, c.Integer, c.Fraction)
}
