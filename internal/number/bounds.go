package number

import "fmt"

// SignRule is the sign a number must have to fit its bounds.
type SignRule uint8

const (
	// Unconstrained allows both signs.
	Unconstrained SignRule = iota
	// ForcePositive applies when the bounds exclude negative values.
	ForcePositive
	// ForceNegative applies when the bounds exclude positive values.
	ForceNegative
)

// Location describes where a value sits within its bounds.
type Location uint8

const (
	// Body is strictly inside the bounds, or at a bound that leaves room
	// for more digits.
	Body Location = iota
	// Edge is a bound that no further digit can move away from.
	Edge
)

// String returns a string representation of the location.
func (l Location) String() string {
	if l == Edge {
		return "edge"
	}
	return "body"
}

// Bounds is a closed range [Min, Max] of values.
// Bounds is an immutable value type.
type Bounds[V any] struct {
	traits Traits[V]
	min    V
	max    V
}

// NewBounds creates bounds over [min, max]. It panics if min > max.
func NewBounds[V any](traits Traits[V], min, max V) Bounds[V] {
	if traits.Compare(min, max) > 0 {
		panic(fmt.Sprintf("number: bounds min %s is greater than max %s", traits.Format(min), traits.Format(max)))
	}
	return Bounds[V]{traits: traits, min: min, max: max}
}

// DefaultBounds returns the limits of the traits' type.
func DefaultBounds[V any](traits Traits[V]) Bounds[V] {
	lowest, highest := traits.Limits()
	return NewBounds(traits, lowest, highest)
}

// Min returns the lower bound.
func (b Bounds[V]) Min() V { return b.min }

// Max returns the upper bound.
func (b Bounds[V]) Max() V { return b.max }

// Sign returns the sign rule derived from the bounds.
func (b Bounds[V]) Sign() SignRule {
	zero := b.traits.Zero()
	switch {
	case b.traits.Compare(b.min, zero) >= 0:
		return ForcePositive
	case b.traits.Compare(b.max, zero) <= 0:
		return ForceNegative
	default:
		return Unconstrained
	}
}

// Contains reports whether v lies within the bounds.
func (b Bounds[V]) Contains(v V) bool {
	return b.traits.Compare(b.min, v) <= 0 && b.traits.Compare(v, b.max) <= 0
}

// Autocorrect clamps v into the bounds.
func (b Bounds[V]) Autocorrect(v V) V {
	if b.traits.Compare(v, b.min) < 0 {
		return b.min
	}
	if b.traits.Compare(v, b.max) > 0 {
		return b.max
	}
	return v
}

// AutocorrectSign forces the sign of n to match the bounds.
// It returns true if the sign changed.
func (b Bounds[V]) AutocorrectSign(n *Number) bool {
	want, ok := b.forcedSign()
	if !ok || n.Sign == want {
		return false
	}
	n.Sign = want
	return true
}

// AutovalidateSign returns ErrSignMismatch if the bounds do not allow the
// sign of n.
func (b Bounds[V]) AutovalidateSign(n Number) error {
	want, ok := b.forcedSign()
	if ok && n.Sign != want {
		return fmt.Errorf("%w: %s in [%s, %s]", ErrSignMismatch, n.Sign, b.traits.Format(b.min), b.traits.Format(b.max))
	}
	return nil
}

// Autovalidate locates v within the bounds. Values outside return
// ErrOutOfBounds. At an edge a dangling separator is removed from n since
// no fraction digit could follow; changed reports that removal.
func (b Bounds[V]) Autovalidate(v V, n *Number) (loc Location, changed bool, err error) {
	loc, err = b.Location(v)
	if err != nil {
		return loc, false, err
	}
	if loc == Edge {
		changed = n.RemoveSeparatorAsSuffix()
	}
	return loc, changed, nil
}

// Location returns where v sits within the bounds.
func (b Bounds[V]) Location(v V) (Location, error) {
	t := b.traits
	zero := t.Zero()
	switch {
	case t.Compare(v, b.max) == 0:
		if t.Compare(v, zero) > 0 || t.Compare(b.min, b.max) == 0 {
			return Edge, nil
		}
		return Body, nil
	case t.Compare(v, b.min) == 0:
		if t.Compare(v, zero) < 0 {
			return Edge, nil
		}
		return Body, nil
	case t.Compare(b.min, v) < 0 && t.Compare(v, b.max) < 0:
		return Body, nil
	default:
		return Body, fmt.Errorf("%w: %s not in [%s, %s]", ErrOutOfBounds, t.Format(v), t.Format(b.min), t.Format(b.max))
	}
}

// String returns a string representation of the bounds.
func (b Bounds[V]) String() string {
	return fmt.Sprintf("[%s, %s]", b.traits.Format(b.min), b.traits.Format(b.max))
}

func (b Bounds[V]) forcedSign() (Sign, bool) {
	switch b.Sign() {
	case ForcePositive:
		return Positive, true
	case ForceNegative:
		return Negative, true
	default:
		return Positive, false
	}
}
