package caret

import (
	"fmt"

	"github.com/dshills/difftext/internal/engine/snapshot"
)

// Index is an alias for snapshot.Index for convenience.
type Index = snapshot.Index

// Range is an alias for snapshot.Range for convenience.
type Range = snapshot.Range

// Selection represents a range of selected symbols.
// Anchor is where the selection started; Head is the current caret position.
// When Anchor == Head, this represents a caret with no selection.
// Selection is an immutable value type.
type Selection struct {
	Anchor Index // Where selection started
	Head   Index // Current caret position (where typing occurs)
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head Index) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// NewCaret creates a selection representing just a caret (no extent).
func NewCaret(at Index) Selection {
	return Selection{Anchor: at, Head: at}
}

// NewRangeSelection creates a forward selection covering the given range.
func NewRangeSelection(r Range) Selection {
	return Selection{Anchor: r.Start, Head: r.End}
}

// IsCaret returns true if the selection has no extent.
func (s Selection) IsCaret() bool {
	return s.Anchor == s.Head
}

// Len returns the number of selected symbols.
func (s Selection) Len() int {
	return s.Upper() - s.Lower()
}

// Range returns the selection as a range (always Start <= End).
func (s Selection) Range() Range {
	return Range{Start: s.Lower(), End: s.Upper()}
}

// Lower returns the lower bound of the selection.
func (s Selection) Lower() Index {
	if s.Anchor <= s.Head {
		return s.Anchor
	}
	return s.Head
}

// Upper returns the upper bound of the selection.
func (s Selection) Upper() Index {
	if s.Anchor >= s.Head {
		return s.Anchor
	}
	return s.Head
}

// IsBackward returns true if the selection extends backward (head < anchor).
func (s Selection) IsBackward() bool {
	return s.Head < s.Anchor
}

// Collapse collapses the selection to a caret at the head.
func (s Selection) Collapse() Selection {
	return Selection{Anchor: s.Head, Head: s.Head}
}

// CollapseToUpper collapses the selection to its upper bound.
func (s Selection) CollapseToUpper() Selection {
	upper := s.Upper()
	return Selection{Anchor: upper, Head: upper}
}

// MoveBy returns a new selection shifted by delta symbols.
func (s Selection) MoveBy(delta int) Selection {
	return Selection{Anchor: s.Anchor + delta, Head: s.Head + delta}
}

// Clamp returns a selection clamped to the valid range [0, maxIndex].
func (s Selection) Clamp(maxIndex Index) Selection {
	return Selection{Anchor: clamp(s.Anchor, maxIndex), Head: clamp(s.Head, maxIndex)}
}

// withBounds returns a selection over [lower, upper] keeping the direction
// of s. A caret stays a caret.
func (s Selection) withBounds(lower, upper Index) Selection {
	if s.IsCaret() {
		return NewCaret(upper)
	}
	if upper < lower {
		lower = upper
	}
	if s.IsBackward() {
		return Selection{Anchor: upper, Head: lower}
	}
	return Selection{Anchor: lower, Head: upper}
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsCaret() {
		return fmt.Sprintf("Caret(%d)", s.Head)
	}
	dir := "→"
	if s.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%d%s%d)", s.Anchor, dir, s.Head)
}

// Equals returns true if two selections have the same anchor and head.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor == other.Anchor && s.Head == other.Head
}

func clamp(i, maxIndex Index) Index {
	if i < 0 {
		return 0
	}
	if i > maxIndex {
		return maxIndex
	}
	return i
}
