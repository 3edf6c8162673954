package snapshot

import "fmt"

// Index is a symbol position in a snapshot.
// Valid indices are 0 through Len(), inclusive.
type Index = int

// Range represents a range of symbols.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start Index // Inclusive start position
	End   Index // Exclusive end position
}

// NewRange creates a new Range from start and end indices.
func NewRange(start, end Index) Range {
	return Range{Start: start, End: end}
}

// Caret creates an empty range at the given index.
func Caret(at Index) Range {
	return Range{Start: at, End: at}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the number of symbols in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if the range is valid (Start <= End).
func (r Range) IsValid() bool {
	return r.Start <= r.End
}

// Contains returns true if the given index is within the range.
func (r Range) Contains(i Index) bool {
	return i >= r.Start && i < r.End
}

// ContainsRange returns true if the given range is entirely within this range.
func (r Range) ContainsRange(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Shift returns a new range shifted by the given delta.
func (r Range) Shift(delta int) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}

// Clamp returns the range clamped to [lower, upper].
func (r Range) Clamp(lower, upper Index) Range {
	return Range{Start: clamp(r.Start, lower, upper), End: clamp(r.End, lower, upper)}
}

func clamp(i, lower, upper Index) Index {
	if i < lower {
		return lower
	}
	if i > upper {
		return upper
	}
	return i
}
