package caret

import "github.com/dshills/difftext/internal/engine/snapshot"

// Reconcile re-threads a selection made in prev onto next, the snapshot
// rendered after an edit.
//
// Reconciliation rules:
//   - Upper bound: align prev[upper:] with the tail of next, scanning backward
//   - Lower bound: align prev[:lower] with next[:upper], scanning forward
//   - Symbols with equal characters match; unmatched virtual symbols on
//     either side are skipped; two different content symbols end the scan
//   - The backward scan stops as soon as prev is exhausted, so the caret
//     lands just past the last matched character
//   - A caret stays a caret and the selection keeps its direction
func Reconcile(prev, next snapshot.Snapshot, sel Selection) Selection {
	sel = sel.Clamp(prev.Len())
	upper := alignSuffix(prev, sel.Upper(), next)
	lower := upper
	if !sel.IsCaret() {
		lower = min(alignPrefix(prev, sel.Lower(), next, upper), upper)
	}
	return sel.withBounds(lower, upper)
}

// alignSuffix returns the index in next matching index from in prev when the
// texts are aligned from their ends.
func alignSuffix(prev snapshot.Snapshot, from Index, next snapshot.Snapshot) Index {
	i, j := prev.Len(), next.Len()
	for i > from && j > 0 {
		o, n := prev.At(i-1), next.At(j-1)
		switch {
		case o.Character == n.Character:
			i--
			j--
		case o.Attribute.Removable():
			i--
		case n.Attribute.Insertable():
			j--
		default:
			return j
		}
	}
	return j
}

// alignPrefix returns the index in next[:limit] matching index to in prev
// when the texts are aligned from their starts.
func alignPrefix(prev snapshot.Snapshot, to Index, next snapshot.Snapshot, limit Index) Index {
	i, j := 0, 0
	for i < to && j < limit {
		o, n := prev.At(i), next.At(j)
		switch {
		case o.Character == n.Character:
			i++
			j++
		case o.Attribute.Removable():
			i++
		case n.Attribute.Insertable():
			j++
		default:
			return j
		}
	}
	return j
}

// Snap moves both ends of a selection out of leading and trailing
// formatting so neither rests on a virtual symbol run at an edge.
//
// Snapping rules:
//   - A position before the first content symbol moves forward to it
//   - A position after the last content symbol moves backward to it
//   - Without content, the snapshot anchor is used if present, otherwise
//     the position just past the last prefix symbol
func Snap(s snapshot.Snapshot, sel Selection) Selection {
	lower, upper, ok := contentBounds(s)
	if !ok {
		at := fallback(s)
		return NewCaret(at)
	}
	return Selection{
		Anchor: max(lower, min(sel.Anchor, upper)),
		Head:   max(lower, min(sel.Head, upper)),
	}
}

// contentBounds returns the index of the first content symbol and the index
// just past the last one.
func contentBounds(s snapshot.Snapshot) (lower, upper Index, ok bool) {
	lower = -1
	for i := 0; i < s.Len(); i++ {
		if s.At(i).Attribute.Virtual() {
			continue
		}
		if lower < 0 {
			lower = i
		}
		upper = i + 1
	}
	return lower, upper, lower >= 0
}

func fallback(s snapshot.Snapshot) Index {
	if anchor, ok := s.Anchor(); ok {
		return anchor
	}
	at := 0
	for i := 0; i < s.Len(); i++ {
		if s.At(i).Attribute == snapshot.Prefix {
			at = i + 1
		}
	}
	return at
}
