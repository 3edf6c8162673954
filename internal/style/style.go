package style

import (
	"github.com/dshills/difftext/internal/engine"
)

// none is the cache of a base style that has none.
type none struct{}

func (none) Identity() any { return nil }

func identity[V any](base engine.Style[V]) any {
	if c, ok := base.(engine.Cacheable[V]); ok {
		return c.Identity()
	}
	return nil
}

func newCache[V any](base engine.Style[V]) (engine.Cache, error) {
	if c, ok := base.(engine.Cacheable[V]); ok {
		return c.NewCache()
	}
	return none{}, nil
}

func withCache[V any](base engine.Style[V], cache engine.Cache) engine.Style[V] {
	if c, ok := base.(engine.Cacheable[V]); ok {
		return c.WithCache(cache)
	}
	return base
}

// Builder composes decorators fluently.
type Builder[V any] struct {
	style engine.Style[V]
}

// From starts a builder on base.
func From[V any](base engine.Style[V]) Builder[V] {
	return Builder[V]{style: base}
}

// Prefix adds a prefix label.
func (b Builder[V]) Prefix(text string) Builder[V] {
	b.style = Prefix(b.style, text)
	return b
}

// Suffix adds a suffix label.
func (b Builder[V]) Suffix(text string) Builder[V] {
	b.style = Suffix(b.style, text)
	return b
}

// Labels adds prefix and suffix labels.
func (b Builder[V]) Labels(prefix, suffix string) Builder[V] {
	b.style = Labels(b.style, prefix, suffix)
	return b
}

// Constant pins the locale.
func (b Builder[V]) Constant() Builder[V] {
	b.style = Constant(b.style)
	return b
}

// Standalone makes the style own its cache. Styles without a cache are
// left unchanged.
func (b Builder[V]) Standalone() Builder[V] {
	if c, ok := b.style.(engine.Cacheable[V]); ok {
		b.style = Standalone(c)
	}
	return b
}

// Isolated makes the style build a fresh cache for every operation.
// Styles without a cache are left unchanged.
func (b Builder[V]) Isolated() Builder[V] {
	if c, ok := b.style.(engine.Cacheable[V]); ok {
		b.style = Isolated(c)
	}
	return b
}

// Build returns the composed style.
func (b Builder[V]) Build() engine.Style[V] {
	return b.style
}
