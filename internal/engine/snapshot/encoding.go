package snapshot

import (
	"fmt"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Encoding is a unit system for measuring distances in text.
type Encoding uint8

const (
	// Character counts grapheme clusters, i.e. snapshot symbols.
	Character Encoding = iota
	// UnicodeScalar counts code points.
	UnicodeScalar
	// UTF16 counts UTF-16 code units, as reported by most platform widgets.
	UTF16
)

// String returns a string representation of the encoding.
func (e Encoding) String() string {
	switch e {
	case Character:
		return "character"
	case UnicodeScalar:
		return "scalar"
	case UTF16:
		return "utf16"
	default:
		return fmt.Sprintf("encoding(%d)", uint8(e))
	}
}

// units returns the size of one grapheme cluster in this encoding.
func (e Encoding) units(cluster string) int {
	switch e {
	case UnicodeScalar:
		return utf8.RuneCountInString(cluster)
	case UTF16:
		n := 0
		for _, r := range cluster {
			if r >= 0x10000 {
				n += 2 // Surrogate pair
			} else {
				n++
			}
		}
		return n
	default:
		return 1
	}
}

// Distance returns the distance between two snapshot indices.
// The result is negative when to is before from.
func (e Encoding) Distance(s Snapshot, from, to Index) int {
	from = clamp(from, 0, s.Len())
	to = clamp(to, 0, s.Len())
	if e == Character {
		return to - from
	}
	lower, upper, sign := from, to, 1
	if to < from {
		lower, upper, sign = to, from, -1
	}
	n := 0
	for i := lower; i < upper; i++ {
		n += e.units(s.symbols[i].Character)
	}
	return sign * n
}

// Index returns the snapshot index reached by moving distance units from
// index from. A move that would end inside a symbol rounds down to the
// symbol's lower bound. The result is clamped to [0, s.Len()].
func (e Encoding) Index(s Snapshot, from Index, distance int) Index {
	from = clamp(from, 0, s.Len())
	if e == Character {
		return clamp(from+distance, 0, s.Len())
	}
	target := e.Distance(s, 0, from) + distance
	if target <= 0 {
		return 0
	}
	position := 0
	for i, sym := range s.symbols {
		next := position + e.units(sym.Character)
		if next > target {
			return i
		}
		position = next
	}
	return s.Len()
}

// DistanceString returns the distance between two byte indices of text.
// Byte indices inside a grapheme cluster are first rounded down to its
// lower bound.
func (e Encoding) DistanceString(text string, from, to int) int {
	bounds := boundaries(text)
	return e.positionString(text, bounds, to) - e.positionString(text, bounds, from)
}

// IndexString returns the byte index reached by moving distance units from
// byte index from, rounded down to a grapheme cluster boundary.
func (e Encoding) IndexString(text string, from, distance int) int {
	bounds := boundaries(text)
	target := e.positionString(text, bounds, from) + distance
	if target <= 0 {
		return 0
	}
	position := 0
	for i := 0; i+1 < len(bounds); i++ {
		next := position + e.units(text[bounds[i]:bounds[i+1]])
		if next > target {
			return bounds[i]
		}
		position = next
	}
	return len(text)
}

// positionString measures the units from the start of text to the
// boundary at or before byte index i.
func (e Encoding) positionString(text string, bounds []int, i int) int {
	position := 0
	for k := 0; k+1 < len(bounds) && bounds[k+1] <= i; k++ {
		position += e.units(text[bounds[k]:bounds[k+1]])
	}
	return position
}

// boundaries returns the byte offsets of every grapheme cluster boundary,
// including 0 and len(text).
func boundaries(text string) []int {
	bounds := []int{0}
	offset := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		offset += len(cluster)
		bounds = append(bounds, offset)
	}
	return bounds
}

// Offset is a signed distance measured in one Encoding.
// Arithmetic is only defined between offsets of the same encoding.
type Offset struct {
	Encoding Encoding
	Value    int
}

// NewOffset creates an offset.
func NewOffset(e Encoding, value int) Offset {
	return Offset{Encoding: e, Value: value}
}

// OffsetOf returns the offset of index i from the start of s.
func OffsetOf(s Snapshot, i Index, e Encoding) Offset {
	return Offset{Encoding: e, Value: e.Distance(s, 0, i)}
}

// Add returns o + other. It panics if the encodings differ.
func (o Offset) Add(other Offset) Offset {
	o.mustMatch(other)
	return Offset{Encoding: o.Encoding, Value: o.Value + other.Value}
}

// Sub returns o - other. It panics if the encodings differ.
func (o Offset) Sub(other Offset) Offset {
	o.mustMatch(other)
	return Offset{Encoding: o.Encoding, Value: o.Value - other.Value}
}

// Neg returns -o.
func (o Offset) Neg() Offset {
	return Offset{Encoding: o.Encoding, Value: -o.Value}
}

// Convert re-measures o, taken from the start of s, in another encoding.
func (o Offset) Convert(s Snapshot, to Encoding) Offset {
	return OffsetOf(s, o.Resolve(s), to)
}

// Resolve returns the snapshot index o units from the start of s.
func (o Offset) Resolve(s Snapshot) Index {
	return o.Encoding.Index(s, 0, o.Value)
}

// String returns a human-readable representation of the offset.
func (o Offset) String() string {
	return fmt.Sprintf("%d(%s)", o.Value, o.Encoding)
}

func (o Offset) mustMatch(other Offset) {
	if o.Encoding != other.Encoding {
		panic(fmt.Sprintf("snapshot: offset encoding mismatch: %s and %s", o.Encoding, other.Encoding))
	}
}

// Position locates a boundary between symbols of a snapshot.
type Position interface {
	Resolve(s Snapshot) Index
}

// Absolute is a Position given as a raw snapshot index.
type Absolute Index

// Resolve returns the index clamped to the snapshot.
func (a Absolute) Resolve(s Snapshot) Index {
	return clamp(Index(a), 0, s.Len())
}

// ResolveRange resolves two positions into an ordered range.
func ResolveRange(s Snapshot, lower, upper Position) Range {
	start, end := lower.Resolve(s), upper.Resolve(s)
	if end < start {
		start, end = end, start
	}
	return Range{Start: start, End: end}
}
