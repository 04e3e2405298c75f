package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/ppiankov/evenodd/internal/model"
)

// MemoryCache implements in-memory verdict caching
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves an entry from the cache
func (c *MemoryCache) Get(key string) (model.Entry, bool) {
	if val, found := c.cache.Get(key); found {
		if entry, ok := val.(model.Entry); ok {
			return entry, true
		}
	}
	return model.Entry{}, false
}

// Set stores an entry. A zero ttl uses the cache default.
func (c *MemoryCache) Set(key string, entry model.Entry, ttl time.Duration) {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(key, entry, ttl)
}

// Delete removes an entry from the cache
func (c *MemoryCache) Delete(key string) {
	c.cache.Delete(key)
}

// Clear removes all entries from the cache
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}

// Len returns the number of entries, including expired ones not yet cleaned up
func (c *MemoryCache) Len() int {
	return c.cache.ItemCount()
}

// Nop is a Cache that stores nothing
type Nop struct{}

func (Nop) Get(string) (model.Entry, bool)         { return model.Entry{}, false }
func (Nop) Set(string, model.Entry, time.Duration) {}
func (Nop) Delete(string)                          {}
func (Nop) Clear()                                 {}
func (Nop) Len() int                               { return 0 }
