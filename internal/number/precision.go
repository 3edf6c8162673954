package number

import "fmt"

// Span is a closed range of digit counts.
type Span struct {
	Lower int
	Upper int
}

// clamp returns the span limited to [lowest, highest] with Lower <= Upper.
func (s Span) clamp(lowest, highest int) Span {
	lower := min(max(s.Lower, lowest), highest)
	upper := min(max(s.Upper, lower), highest)
	return Span{Lower: lower, Upper: upper}
}

// Precision constrains integer and fraction digit counts.
// Precision is an immutable value type.
type Precision[V any] struct {
	limit    int
	integer  Span
	fraction Span
}

// NewPrecision creates a precision clamped to the limits of the traits'
// type. The integer span is at least one digit; integer types allow no
// fraction digits.
func NewPrecision[V any](traits Traits[V], integer, fraction Span) Precision[V] {
	limit := traits.Precision()
	fractionLimit := limit
	if traits.Integer() {
		fractionLimit = 0
	}
	return Precision[V]{
		limit:    limit,
		integer:  integer.clamp(1, limit),
		fraction: fraction.clamp(0, fractionLimit),
	}
}

// DefaultPrecision allows every digit the traits' type can hold.
func DefaultPrecision[V any](traits Traits[V]) Precision[V] {
	limit := traits.Precision()
	return NewPrecision(traits, Span{Lower: 1, Upper: limit}, Span{Lower: 0, Upper: limit})
}

// Integer returns the integer digit span.
func (p Precision[V]) Integer() Span { return p.integer }

// Fraction returns the fraction digit span.
func (p Precision[V]) Fraction() Span { return p.fraction }

// Lower returns the smallest counts any precision accepts.
func (p Precision[V]) Lower() Count {
	return Count{Value: 1, Integer: 1, Fraction: 0}
}

// Upper returns the largest counts this precision accepts.
func (p Precision[V]) Upper() Count {
	return Count{Value: p.limit, Integer: p.integer.Upper, Fraction: p.fraction.Upper}
}

// Autocorrect trims n to the upper counts. It returns true if n changed.
func (p Precision[V]) Autocorrect(n *Number) bool {
	return n.Trim(p.Upper())
}

// Autovalidate returns ErrPrecision if n has more digits than allowed,
// naming the component that overflowed. When no further fraction digit
// fits, a dangling separator is removed; changed reports that removal.
func (p Precision[V]) Autovalidate(n *Number) (changed bool, err error) {
	capacity := p.Upper().Sub(n.Count())
	switch {
	case capacity.Value < 0:
		return false, fmt.Errorf("%w: value has %d digits, max %d", ErrPrecision, n.Count().Value, p.limit)
	case capacity.Integer < 0:
		return false, fmt.Errorf("%w: integer has %d digits, max %d", ErrPrecision, n.Count().Integer, p.integer.Upper)
	case capacity.Fraction < 0:
		return false, fmt.Errorf("%w: fraction has %d digits, max %d", ErrPrecision, n.Count().Fraction, p.fraction.Upper)
	}
	if capacity.Fraction == 0 || capacity.Value == 0 {
		changed = n.RemoveSeparatorAsSuffix()
	}
	return changed, nil
}

// String returns a string representation of the precision.
func (p Precision[V]) String() string {
	return fmt.Sprintf("integer %d...%d, fraction %d...%d", p.integer.Lower, p.integer.Upper, p.fraction.Lower, p.fraction.Upper)
}
