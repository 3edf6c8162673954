package snapshot

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Snapshot is an ordered sequence of symbols plus an optional anchor.
//
// The anchor is the caret position preferred when the snapshot offers no
// content to land next to, e.g. the first unfilled placeholder of a pattern.
// The zero value is an empty snapshot without an anchor.
type Snapshot struct {
	symbols   []Symbol
	anchor    Index
	hasAnchor bool
}

// New creates a snapshot from symbols.
func New(symbols ...Symbol) Snapshot {
	return Snapshot{symbols: append([]Symbol(nil), symbols...)}
}

// FromString creates a snapshot with every grapheme cluster of text
// tagged with attr.
func FromString(text string, attr Attribute) Snapshot {
	return Snapshot{symbols: Symbols(text, attr)}
}

// Symbols splits text into grapheme clusters tagged with attr.
func Symbols(text string, attr Attribute) []Symbol {
	var symbols []Symbol
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		symbols = append(symbols, Symbol{Character: cluster, Attribute: attr})
	}
	return symbols
}

// Len returns the number of symbols.
func (s Snapshot) Len() int {
	return len(s.symbols)
}

// IsEmpty returns true if the snapshot has no symbols.
func (s Snapshot) IsEmpty() bool {
	return len(s.symbols) == 0
}

// At returns the symbol at index i.
func (s Snapshot) At(i Index) Symbol {
	return s.symbols[i]
}

// Symbols returns a copy of the symbols.
func (s Snapshot) Symbols() []Symbol {
	return append([]Symbol(nil), s.symbols...)
}

// Characters returns the full text.
func (s Snapshot) Characters() string {
	var b strings.Builder
	for _, sym := range s.symbols {
		b.WriteString(sym.Character)
	}
	return b.String()
}

// Content returns the text of all non-virtual symbols.
func (s Snapshot) Content() string {
	var b strings.Builder
	for _, sym := range s.symbols {
		if !sym.Attribute.Virtual() {
			b.WriteString(sym.Character)
		}
	}
	return b.String()
}

// Attributes returns the attributes, parallel to the symbols.
func (s Snapshot) Attributes() []Attribute {
	attrs := make([]Attribute, len(s.symbols))
	for i, sym := range s.symbols {
		attrs[i] = sym.Attribute
	}
	return attrs
}

// HasContent reports whether any symbol is non-virtual.
func (s Snapshot) HasContent() bool {
	for _, sym := range s.symbols {
		if !sym.Attribute.Virtual() {
			return true
		}
	}
	return false
}

// Slice returns the symbols in r as a new snapshot.
// The anchor is kept when it lies within r.
func (s Snapshot) Slice(r Range) Snapshot {
	r = r.Clamp(0, len(s.symbols))
	out := Snapshot{symbols: append([]Symbol(nil), s.symbols[r.Start:r.End]...)}
	if s.hasAnchor && s.anchor >= r.Start && s.anchor <= r.End {
		out.SetAnchor(s.anchor - r.Start)
	}
	return out
}

// Anchor returns the anchor, if any.
func (s Snapshot) Anchor() (Index, bool) {
	return s.anchor, s.hasAnchor
}

// SetAnchor records a preferred caret index.
func (s *Snapshot) SetAnchor(i Index) {
	s.anchor = clamp(i, 0, len(s.symbols))
	s.hasAnchor = true
}

// ClearAnchor removes the anchor.
func (s *Snapshot) ClearAnchor() {
	s.anchor = 0
	s.hasAnchor = false
}

// Append adds symbols at the end. The anchor is kept.
func (s *Snapshot) Append(symbols ...Symbol) {
	n := len(s.symbols)
	s.symbols = append(s.symbols[:n:n], symbols...)
}

// AppendString adds every grapheme cluster of text tagged with attr.
func (s *Snapshot) AppendString(text string, attr Attribute) {
	s.Append(Symbols(text, attr)...)
}

// Insert inserts symbols before index at. The anchor is cleared.
func (s *Snapshot) Insert(at Index, symbols ...Symbol) {
	s.ReplaceSubrange(Caret(at), symbols)
}

// Remove deletes the symbols in r. The anchor is cleared.
func (s *Snapshot) Remove(r Range) {
	s.ReplaceSubrange(r, nil)
}

// ReplaceSubrange replaces the symbols in r with symbols.
// The range is clamped to the snapshot. The anchor is cleared.
func (s *Snapshot) ReplaceSubrange(r Range, symbols []Symbol) {
	r = r.Clamp(0, len(s.symbols))
	if r.End < r.Start {
		r.End = r.Start
	}
	out := make([]Symbol, 0, len(s.symbols)-r.Len()+len(symbols))
	out = append(out, s.symbols[:r.Start]...)
	out = append(out, symbols...)
	out = append(out, s.symbols[r.End:]...)
	s.symbols = out
	s.ClearAnchor()
}

// Transform applies fn to the attributes in r without changing characters.
func (s *Snapshot) Transform(r Range, fn func(Attribute) Attribute) {
	r = r.Clamp(0, len(s.symbols))
	out := append([]Symbol(nil), s.symbols...)
	for i := r.Start; i < r.End; i++ {
		out[i].Attribute = fn(out[i].Attribute)
	}
	s.symbols = out
}

// Concat returns s followed by other.
// The left anchor wins; otherwise the right anchor is shifted by s.Len().
func (s Snapshot) Concat(other Snapshot) Snapshot {
	out := Snapshot{symbols: make([]Symbol, 0, len(s.symbols)+len(other.symbols))}
	out.symbols = append(out.symbols, s.symbols...)
	out.symbols = append(out.symbols, other.symbols...)
	switch {
	case s.hasAnchor:
		out.SetAnchor(s.anchor)
	case other.hasAnchor:
		out.SetAnchor(len(s.symbols) + other.anchor)
	}
	return out
}

// Equal reports whether two snapshots have the same symbols and anchor.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.symbols) != len(other.symbols) || s.hasAnchor != other.hasAnchor {
		return false
	}
	if s.hasAnchor && s.anchor != other.anchor {
		return false
	}
	for i := range s.symbols {
		if s.symbols[i] != other.symbols[i] {
			return false
		}
	}
	return true
}

// String returns the characters of the snapshot.
func (s Snapshot) String() string {
	return s.Characters()
}
