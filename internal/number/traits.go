package number

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Traits describe how a value type takes part in numeric editing.
type Traits[V any] interface {
	// Name identifies the type in diagnostics.
	Name() string
	// Limits returns the smallest and largest editable values.
	Limits() (min, max V)
	// Precision returns the maximum number of significant digits.
	Precision() int
	// Integer reports whether the type has no fraction digits.
	Integer() bool
	// Zero returns the zero value.
	Zero() V
	// Compare returns -1, 0 or 1 as a is less than, equal to or greater than b.
	Compare(a, b V) int
	// Parse converts canonical ASCII text into a value. Values the type
	// cannot represent return ErrOutOfBounds.
	Parse(text string) (V, error)
	// Format converts a value into ASCII text accepted by number.Parse.
	Format(v V) string
}

// Value converts n into a value of the traits' type.
func Value[V any](traits Traits[V], n Number) (V, error) {
	return traits.Parse(n.Canonical())
}

// FromValue converts v into a number.
func FromValue[V any](traits Traits[V], v V) Number {
	return MustParse(traits.Format(v))
}

// Significant digits per integer width.
var (
	signedPrecision   = map[int]int{8: 3, 16: 5, 32: 10, 64: 19}
	unsignedPrecision = map[int]int{8: 3, 16: 5, 32: 10, 64: 20}
)

// Int implements Traits for signed integers.
type Int[V constraints.Signed] struct{}

// bits returns the width of V.
func (Int[V]) bits() int {
	n := 1
	for x := V(1); x > 0; x <<= 1 {
		n++
	}
	return n
}

func (t Int[V]) Name() string { return fmt.Sprintf("int%d", t.bits()) }

func (t Int[V]) Limits() (V, V) {
	lowest := V(-1) << (t.bits() - 1)
	return lowest, ^lowest
}

func (t Int[V]) Precision() int { return signedPrecision[t.bits()] }

func (Int[V]) Integer() bool { return true }

func (Int[V]) Zero() V { return 0 }

func (Int[V]) Compare(a, b V) int { return compareOrdered(a, b) }

func (t Int[V]) Parse(text string) (V, error) {
	x, err := strconv.ParseInt(text, 10, t.bits())
	if err != nil {
		return 0, parseError(t.Name(), text, err)
	}
	return V(x), nil
}

func (Int[V]) Format(v V) string { return strconv.FormatInt(int64(v), 10) }

// Uint implements Traits for unsigned integers.
type Uint[V constraints.Unsigned] struct{}

func (Uint[V]) bits() int {
	n := 0
	for x := V(1); x != 0; x <<= 1 {
		n++
	}
	return n
}

func (t Uint[V]) Name() string { return fmt.Sprintf("uint%d", t.bits()) }

func (Uint[V]) Limits() (V, V) { return 0, ^V(0) }

func (t Uint[V]) Precision() int { return unsignedPrecision[t.bits()] }

func (Uint[V]) Integer() bool { return true }

func (Uint[V]) Zero() V { return 0 }

func (Uint[V]) Compare(a, b V) int { return compareOrdered(a, b) }

func (t Uint[V]) Parse(text string) (V, error) {
	if len(text) > 0 && text[0] == MinusGlyph {
		return 0, fmt.Errorf("%w: %s cannot hold %s", ErrOutOfBounds, t.Name(), text)
	}
	x, err := strconv.ParseUint(text, 10, t.bits())
	if err != nil {
		return 0, parseError(t.Name(), text, err)
	}
	return V(x), nil
}

func (Uint[V]) Format(v V) string { return strconv.FormatUint(uint64(v), 10) }

// Float implements Traits for floating point numbers. Precision is limited
// to the digits the type represents exactly: 15 for float64, 7 for float32.
type Float[V constraints.Float] struct{}

// single reports whether V is a float32.
func (Float[V]) single() bool {
	return V(1<<24+1) == V(1<<24)
}

func (t Float[V]) bits() int {
	if t.single() {
		return 32
	}
	return 64
}

func (t Float[V]) Name() string { return fmt.Sprintf("float%d", t.bits()) }

func (t Float[V]) Limits() (V, V) {
	if t.single() {
		return -9_999_999, 9_999_999
	}
	return -999_999_999_999_999, 999_999_999_999_999
}

func (t Float[V]) Precision() int {
	if t.single() {
		return 7
	}
	return 15
}

func (Float[V]) Integer() bool { return false }

func (Float[V]) Zero() V { return 0 }

func (Float[V]) Compare(a, b V) int { return compareOrdered(a, b) }

func (t Float[V]) Parse(text string) (V, error) {
	x, err := strconv.ParseFloat(text, t.bits())
	if err != nil {
		return 0, parseError(t.Name(), text, err)
	}
	return V(x), nil
}

func (t Float[V]) Format(v V) string {
	return strconv.FormatFloat(float64(v), 'f', -1, t.bits())
}

// Decimal implements Traits for shopspring decimals with up to 38
// significant digits.
type Decimal struct{}

var decimalLimit = decimal.RequireFromString("99999999999999999999999999999999999999")

func (Decimal) Name() string { return "decimal" }

func (Decimal) Limits() (decimal.Decimal, decimal.Decimal) {
	return decimalLimit.Neg(), decimalLimit
}

func (Decimal) Precision() int { return 38 }

func (Decimal) Integer() bool { return false }

func (Decimal) Zero() decimal.Decimal { return decimal.Zero }

func (Decimal) Compare(a, b decimal.Decimal) int { return a.Cmp(b) }

func (Decimal) Parse(text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: decimal %q: %v", ErrInvalidNumber, text, err)
	}
	return d, nil
}

func (Decimal) Format(v decimal.Decimal) string { return v.String() }

func compareOrdered[V constraints.Ordered](a, b V) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func parseError(name, text string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %s cannot hold %s", ErrOutOfBounds, name, text)
	}
	return fmt.Errorf("%w: %s %q", ErrInvalidNumber, name, text)
}
