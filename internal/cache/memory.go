package cache

import (
	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache implements in-memory caching without expiration
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache. Entries never expire, so no
// cleanup janitor is started.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

// Set stores a value in the cache
func (c *MemoryCache) Set(key string, value interface{}) {
	c.cache.Set(key, value, gocache.NoExpiration)
}

// Flush removes all values from the cache
func (c *MemoryCache) Flush() {
	c.cache.Flush()
}
