package fileops

import (
	"os"
	"sync"
	"time"
)

// cacheItem is a cached value with the file metadata used for invalidation
type cacheItem[T any] struct {
	value   T
	modTime time.Time
	size    int64
}

// Cache is a generic cache keyed by file path with mod-time/size validation.
// A cached entry is dropped as soon as the backing file changes or vanishes,
// so repeated reads within one pipeline run stay cheap without ever serving
// stale content.
type Cache[V any] struct {
	items map[string]*cacheItem[V]
	mutex sync.RWMutex
}

// NewCache creates a new cache
func NewCache[V any]() *Cache[V] {
	return &Cache[V]{
		items: make(map[string]*cacheItem[V]),
	}
}

// Get retrieves a cached value, validating it against the file on disk
func (c *Cache[V]) Get(path string) (V, bool) {
	c.mutex.RLock()
	item, exists := c.items[path]
	c.mutex.RUnlock()

	var zero V
	if !exists {
		return zero, false
	}

	stat, err := os.Stat(path)
	if err != nil {
		c.Delete(path)
		return zero, false
	}
	if stat.ModTime().After(item.modTime) || stat.Size() != item.size {
		c.Delete(path)
		return zero, false
	}

	return item.value, true
}

// Set stores a value together with the file's current metadata
func (c *Cache[V]) Set(path string, value V) {
	stat, err := os.Stat(path)
	if err != nil {
		return // no file metadata, don't cache
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items[path] = &cacheItem[V]{
		value:   value,
		modTime: stat.ModTime(),
		size:    stat.Size(),
	}
}

// Delete removes a cached value
func (c *Cache[V]) Delete(path string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.items, path)
}

// Len returns the number of cached entries
func (c *Cache[V]) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.items)
}
