package style

import (
	"golang.org/x/text/language"

	"github.com/dshills/difftext/internal/engine"
)

type constant[V any] struct {
	base engine.Style[V]
}

var _ engine.Cacheable[int] = constant[int]{}

// Constant ignores locale changes: Locale returns the style unchanged.
func Constant[V any](base engine.Style[V]) engine.Style[V] {
	return constant[V]{base: base}
}

func (c constant[V]) Locale(language.Tag) engine.Style[V] { return c }

func (c constant[V]) Format(v V) string { return c.base.Format(v) }

func (c constant[V]) Interpret(v V) engine.Commit[V] { return c.base.Interpret(v) }

func (c constant[V]) Merge(changes engine.Changes) (engine.Commit[V], error) {
	return c.base.Merge(changes)
}

func (c constant[V]) Equal(other engine.Style[V]) bool {
	o, ok := other.(constant[V])
	return ok && c.base.Equal(o.base)
}

func (c constant[V]) Identity() any { return identity(c.base) }

func (c constant[V]) NewCache() (engine.Cache, error) { return newCache(c.base) }

func (c constant[V]) WithCache(cache engine.Cache) engine.Style[V] {
	c.base = withCache(c.base, cache)
	return c
}

type equals[V any, P comparable] struct {
	base  engine.Style[V]
	proxy P
}

var _ engine.Cacheable[int] = equals[int, string]{}

// Equals compares styles by proxy instead of by configuration. It lets
// styles that cannot compare themselves, such as those holding functions,
// avoid needless re-interpretation.
func Equals[V any, P comparable](base engine.Style[V], proxy P) engine.Style[V] {
	return equals[V, P]{base: base, proxy: proxy}
}

func (e equals[V, P]) Locale(tag language.Tag) engine.Style[V] {
	e.base = e.base.Locale(tag)
	return e
}

func (e equals[V, P]) Format(v V) string { return e.base.Format(v) }

func (e equals[V, P]) Interpret(v V) engine.Commit[V] { return e.base.Interpret(v) }

func (e equals[V, P]) Merge(changes engine.Changes) (engine.Commit[V], error) {
	return e.base.Merge(changes)
}

func (e equals[V, P]) Equal(other engine.Style[V]) bool {
	o, ok := other.(equals[V, P])
	return ok && o.proxy == e.proxy
}

func (e equals[V, P]) Identity() any { return identity(e.base) }

func (e equals[V, P]) NewCache() (engine.Cache, error) { return newCache(e.base) }

func (e equals[V, P]) WithCache(cache engine.Cache) engine.Style[V] {
	e.base = withCache(e.base, cache)
	return e
}
