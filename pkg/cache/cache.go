// Package cache memoizes transcode results, keyed by a hash of the
// program's AST, so the replay server or the transcode command doesn't
// re-walk a script it has already transcoded (SPEC_FULL.md's Transcode
// Cache module).
package cache

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/twmb/murmur3"
)

// Cache is a fixed-size LRU cache of transcoded uLisp output keyed by
// AST content hash.
type Cache struct {
	lru *lru.Cache
}

// New returns a Cache holding at most size entries. size must be positive.
func New(size int) (*Cache, error) {
	l, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// Key hashes astJSON (the program's JSON-encoded AST) with murmur3 to
// produce a cache key. Callers hash once and reuse the key for both Get
// and Put.
func Key(astJSON []byte) uint64 {
	return murmur3.Sum64(astJSON)
}

// Get returns the cached uLisp text for key, if present.
func (c *Cache) Get(key uint64) (string, bool) {
	v, ok := c.lru.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Put stores uLisp text under key, evicting the least recently used
// entry if the cache is full.
func (c *Cache) Put(key uint64, ulisp string) {
	c.lru.Add(key, ulisp)
}

// Len reports the number of entries currently cached.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge empties the cache.
func (c *Cache) Purge() {
	c.lru.Purge()
}
