package numeric

import (
	"fmt"

	"github.com/go-logr/logr"
	"golang.org/x/text/language"

	"github.com/dshills/difftext/internal/locale"
)

// Cache holds the locale data of a style: its scheme and formatter.
type Cache struct {
	key       locale.Key
	scheme    *locale.Scheme
	formatter locale.Formatter
}

// NewCache builds a cache for key, reusing schemes from schemes.
func NewCache(schemes *locale.Schemes, key locale.Key) (*Cache, error) {
	scheme, err := schemes.Get(key)
	if err != nil {
		return nil, fmt.Errorf("numeric cache %s: %w", key, err)
	}
	return &Cache{key: key, scheme: scheme, formatter: locale.NewFormatter(scheme)}, nil
}

// rootKey is used when a style's own locale data cannot be built.
var rootKey = locale.Key{Locale: language.Und, Kind: locale.Plain}

// fallbackCache builds the cache for key, or for the root locale when key
// is broken. The failure is logged as a configuration error.
func fallbackCache(schemes *locale.Schemes, key locale.Key, logger logr.Logger) *Cache {
	c, err := NewCache(schemes, key)
	if err == nil {
		return c
	}
	logger.Error(err, "falling back to root locale", "key", key.String())
	c, err = NewCache(schemes, rootKey)
	if err != nil {
		panic(fmt.Sprintf("numeric: root locale unavailable: %v", err))
	}
	c.key = key
	return c
}

// Identity returns the key the cache was built for.
func (c *Cache) Identity() any {
	return c.key
}

// Scheme returns the cached scheme.
func (c *Cache) Scheme() *locale.Scheme {
	return c.scheme
}

// Formatter returns the cached formatter.
func (c *Cache) Formatter() locale.Formatter {
	return c.formatter
}
