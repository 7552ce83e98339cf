package mcpserver

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/milonpl/prototools/parser"
)

// cacheEntry holds a cached directory load with TTL expiry.
type cacheEntry struct {
	loaded    *parser.LoadResult
	expiresAt time.Time
}

// storeCacheStore provides a session-scoped cache for loaded prototype
// directories, keyed by absolute directory path. Loading a large prototype
// tree dominates tool latency; within a session the same tree is queried
// repeatedly.
type storeCacheStore struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

var storeCache = &storeCacheStore{entries: make(map[string]*cacheEntry)}

// get returns a cached load result or nil. Expired entries are lazily removed.
func (c *storeCacheStore) get(key string) *parser.LoadResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		return e.loaded
	}
	return nil
}

// put stores a load result with the configured TTL.
func (c *storeCacheStore) put(key string, loaded *parser.LoadResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &cacheEntry{loaded: loaded, expiresAt: time.Now().Add(ttl)}
}

// reset drops all cached entries. Used by tests.
func (c *storeCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// loadStore loads the prototype directory, consulting the session cache.
func loadStore(dir string) (*parser.LoadResult, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if cfg.CacheEnabled {
		if loaded := storeCache.get(abs); loaded != nil {
			return loaded, nil
		}
	}

	p := parser.New()
	loaded, err := p.LoadDir(abs)
	if err != nil {
		return nil, err
	}
	if cfg.CacheEnabled {
		storeCache.put(abs, loaded, cfg.CacheTTL)
	}
	return loaded, nil
}
