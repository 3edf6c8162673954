package locale

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity is the capacity of the Default scheme cache.
const DefaultCapacity = 64

// Default is the process-wide scheme cache.
var Default = MustNewSchemes(DefaultCapacity)

// Schemes is a bounded cache of schemes keyed by Key. The least recently
// used scheme is evicted first. Schemes is safe for concurrent use.
type Schemes struct {
	cache *lru.Cache[Key, *Scheme]
}

// NewSchemes creates a cache holding at most size schemes.
func NewSchemes(size int) (*Schemes, error) {
	cache, err := lru.New[Key, *Scheme](size)
	if err != nil {
		return nil, err
	}
	return &Schemes{cache: cache}, nil
}

// MustNewSchemes is like NewSchemes but panics on error.
func MustNewSchemes(size int) *Schemes {
	s, err := NewSchemes(size)
	if err != nil {
		panic(err)
	}
	return s
}

// Get returns the scheme for key, building and caching it when missing.
// Failed builds are not cached.
func (s *Schemes) Get(key Key) (*Scheme, error) {
	if scheme, ok := s.cache.Get(key); ok {
		return scheme, nil
	}
	scheme, err := NewScheme(key)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, scheme)
	return scheme, nil
}

// Contains reports whether key is cached without updating its recency.
func (s *Schemes) Contains(key Key) bool {
	return s.cache.Contains(key)
}

// Len returns the number of cached schemes.
func (s *Schemes) Len() int {
	return s.cache.Len()
}

// Purge removes every cached scheme.
func (s *Schemes) Purge() {
	s.cache.Purge()
}
