// Package respcache implements the TTL- and capacity-bounded response
// cache that short-circuits repeat queries. It is in-memory and scoped to
// the process lifetime; nothing is persisted.
package respcache

import (
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/inquest-dev/inquest/internal/model"
)

// Cache stores complete response bundles keyed by normalized query. Entries
// are evicted by age (TTL) or, once the capacity bound is exceeded, oldest
// first. There is no request coalescing: concurrent misses for the same
// query each run the pipeline and the last writer wins.
type Cache struct {
	store      *gocache.Cache
	mu         sync.Mutex
	order      []string // normalized keys in insertion order
	ttl        time.Duration
	maxEntries int
}

// New creates a response cache with the given TTL and capacity bound.
func New(ttl time.Duration, maxEntries int) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if maxEntries <= 0 {
		maxEntries = 100
	}
	return &Cache{
		store:      gocache.New(ttl, ttl/2),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// Normalize case-folds and trims a query into its cache key.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Get returns the cached bundle for a query, if present and unexpired.
func (c *Cache) Get(query string) (model.Bundle, bool) {
	value, found := c.store.Get(Normalize(query))
	if !found {
		return nil, false
	}
	bundle, ok := value.(model.Bundle)
	return bundle, ok
}

// Set stores the complete bundle for a query and enforces the capacity
// bound by evicting the oldest entries first.
func (c *Cache) Set(query string, bundle model.Bundle) {
	key := Normalize(query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.store.Get(key); !exists {
		c.order = append(c.order, key)
	}
	c.store.Set(key, bundle, c.ttl)

	// Drop expired-but-unswept entries so the capacity check counts only
	// live ones.
	c.store.DeleteExpired()

	for c.store.ItemCount() > c.maxEntries && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		if oldest == key {
			continue
		}
		c.store.Delete(oldest)
	}
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	return c.store.ItemCount()
}
