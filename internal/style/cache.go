package style

import (
	"golang.org/x/text/language"

	"github.com/dshills/difftext/internal/engine"
)

// slot holds the cache of a standalone style and its copies.
type slot struct {
	cache engine.Cache
}

type standalone[V any] struct {
	base engine.Cacheable[V]
	slot *slot
}

// Standalone makes base own its cache so it formats efficiently outside
// a field. The returned style is not cacheable itself and, like a field,
// is not safe for concurrent use.
func Standalone[V any](base engine.Cacheable[V]) engine.Style[V] {
	return standalone[V]{base: base, slot: &slot{}}
}

func (s standalone[V]) resolved() engine.Style[V] {
	id := s.base.Identity()
	if s.slot.cache == nil || s.slot.cache.Identity() != id {
		cache, err := s.base.NewCache()
		if err != nil {
			s.slot.cache = nil
			return s.base
		}
		s.slot.cache = cache
	}
	return s.base.WithCache(s.slot.cache)
}

func (s standalone[V]) Locale(tag language.Tag) engine.Style[V] {
	next := s.base.Locale(tag)
	c, ok := next.(engine.Cacheable[V])
	if !ok {
		return next
	}
	s.base = c
	return s
}

func (s standalone[V]) Format(v V) string { return s.resolved().Format(v) }

func (s standalone[V]) Interpret(v V) engine.Commit[V] { return s.resolved().Interpret(v) }

func (s standalone[V]) Merge(changes engine.Changes) (engine.Commit[V], error) {
	return s.resolved().Merge(changes)
}

func (s standalone[V]) Equal(other engine.Style[V]) bool {
	o, ok := other.(standalone[V])
	return ok && s.base.Equal(o.base)
}

type isolated[V any] struct {
	base engine.Cacheable[V]
}

// Isolated builds a fresh cache for every operation so that no state is
// shared between calls. The returned style is not cacheable itself.
func Isolated[V any](base engine.Cacheable[V]) engine.Style[V] {
	return isolated[V]{base: base}
}

func (i isolated[V]) resolved() engine.Style[V] {
	cache, err := i.base.NewCache()
	if err != nil {
		return i.base
	}
	return i.base.WithCache(cache)
}

func (i isolated[V]) Locale(tag language.Tag) engine.Style[V] {
	next := i.base.Locale(tag)
	c, ok := next.(engine.Cacheable[V])
	if !ok {
		return next
	}
	i.base = c
	return i
}

func (i isolated[V]) Format(v V) string { return i.resolved().Format(v) }

func (i isolated[V]) Interpret(v V) engine.Commit[V] { return i.resolved().Interpret(v) }

func (i isolated[V]) Merge(changes engine.Changes) (engine.Commit[V], error) {
	return i.resolved().Merge(changes)
}

func (i isolated[V]) Equal(other engine.Style[V]) bool {
	o, ok := other.(isolated[V])
	return ok && i.base.Equal(o.base)
}
