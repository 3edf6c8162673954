package style

import (
	"golang.org/x/text/language"

	"github.com/dshills/difftext/internal/engine"
	"github.com/dshills/difftext/internal/engine/snapshot"
)

type labels[V any] struct {
	base   engine.Style[V]
	prefix string
	suffix string
}

var _ engine.Cacheable[int] = labels[int]{}

// Labels surrounds the text of base with fixed labels. Labels are virtual
// symbols: they are not part of the value and edits cannot reach them.
func Labels[V any](base engine.Style[V], prefix, suffix string) engine.Style[V] {
	return labels[V]{base: base, prefix: prefix, suffix: suffix}
}

// Prefix puts a fixed label before the text of base.
func Prefix[V any](base engine.Style[V], text string) engine.Style[V] {
	return Labels(base, text, "")
}

// Suffix puts a fixed label after the text of base.
func Suffix[V any](base engine.Style[V], text string) engine.Style[V] {
	return Labels(base, "", text)
}

func (l labels[V]) Locale(tag language.Tag) engine.Style[V] {
	l.base = l.base.Locale(tag)
	return l
}

func (l labels[V]) Format(v V) string {
	return l.prefix + l.base.Format(v) + l.suffix
}

func (l labels[V]) Interpret(v V) engine.Commit[V] {
	commit := l.base.Interpret(v)
	commit.Snapshot = l.wrap(commit.Snapshot)
	return commit
}

// Merge forwards the edit to base with the range moved inside the labels.
func (l labels[V]) Merge(changes engine.Changes) (engine.Commit[V], error) {
	full := changes.Snapshot
	lower := min(len(snapshot.Symbols(l.prefix, snapshot.Prefix)), full.Len())
	upper := max(full.Len()-len(snapshot.Symbols(l.suffix, snapshot.Suffix)), lower)

	inner := engine.Changes{
		Snapshot:    full.Slice(snapshot.NewRange(lower, upper)),
		Range:       changes.Range.Clamp(lower, upper).Shift(-lower),
		Replacement: changes.Replacement,
	}
	commit, err := l.base.Merge(inner)
	if err != nil {
		return engine.Commit[V]{}, err
	}
	commit.Snapshot = l.wrap(commit.Snapshot)
	return commit, nil
}

func (l labels[V]) wrap(s snapshot.Snapshot) snapshot.Snapshot {
	return snapshot.FromString(l.prefix, snapshot.Prefix).
		Concat(s).
		Concat(snapshot.FromString(l.suffix, snapshot.Suffix))
}

func (l labels[V]) Equal(other engine.Style[V]) bool {
	o, ok := other.(labels[V])
	return ok && o.prefix == l.prefix && o.suffix == l.suffix && l.base.Equal(o.base)
}

func (l labels[V]) Identity() any { return identity(l.base) }

func (l labels[V]) NewCache() (engine.Cache, error) { return newCache(l.base) }

func (l labels[V]) WithCache(cache engine.Cache) engine.Style[V] {
	l.base = withCache(l.base, cache)
	return l
}
