package engine

import (
	"golang.org/x/text/language"

	"github.com/dshills/difftext/internal/engine/snapshot"
)

// Style formats, interprets and validates values of type V.
// Styles are immutable values; configuration methods return new styles.
type Style[V any] interface {
	// Locale returns the style adapted to tag.
	Locale(tag language.Tag) Style[V]
	// Format renders v for display while the field is idle.
	Format(v V) string
	// Interpret turns v into an editable commit, correcting v as needed.
	Interpret(v V) Commit[V]
	// Merge validates an edit and returns the resulting commit.
	// Any error rejects the edit.
	Merge(changes Changes) (Commit[V], error)
	// Equal reports whether other behaves identically.
	Equal(other Style[V]) bool
}

// Cache holds expensive state derived from a style's identity.
// A Cache is owned by one field and is not safe for concurrent use.
type Cache interface {
	// Identity returns the identity of the style the cache was built for.
	Identity() any
}

// Cacheable is a style whose expensive state can be owned by its caller.
type Cacheable[V any] interface {
	Style[V]
	// Identity returns a comparable value that changes exactly when the
	// cache must be rebuilt.
	Identity() any
	// NewCache builds the cache for the current identity.
	NewCache() (Cache, error)
	// WithCache returns the style using cache.
	WithCache(cache Cache) Style[V]
}

// Commit is a value and the text that exactly reproduces it.
type Commit[V any] struct {
	Value    V
	Snapshot snapshot.Snapshot
}

// Changes is a proposed edit: the replacement of a range of a snapshot.
type Changes struct {
	Snapshot    snapshot.Snapshot
	Range       snapshot.Range
	Replacement string
}

// Proposal returns the snapshot with the edit applied. Replacement symbols
// are content.
func (c Changes) Proposal() snapshot.Snapshot {
	proposal := c.Snapshot
	proposal.ReplaceSubrange(c.Range, snapshot.Symbols(c.Replacement, snapshot.Content))
	return proposal
}

// Caret returns the index just past the replacement in the proposal.
func (c Changes) Caret() snapshot.Index {
	r := c.Range.Clamp(0, c.Snapshot.Len())
	return r.Start + len(snapshot.Symbols(c.Replacement, snapshot.Content))
}
