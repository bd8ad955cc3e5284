// This file memoizes ClassLocator lookups. A single Build call may resolve
// the same CLASS schema many times (every map family sharing a value class,
// every renamed-but-otherwise-unchanged column), and concurrent resolutions
// of the same class name should not race each other into the locator twice.
// This mirrors the per-key locking the teacher used to guard its own
// partition cache.
//
// It was originally a separate `classcache` package, but it needs this root
// package's ClassLocator/ResolvedSchema types, so splitting it out would
// have created an import cycle the same way `internal/build` did (see
// build_context.go and friends) — folded in here for the same reason.
package layout

import (
	"sync"

	"github.com/docker/docker/pkg/locker"
)

type classCacheEntry struct {
	schema ResolvedSchema
	found  bool
}

// ClassCache wraps a ClassLocator with a per-class-name lock and memoized
// results, so a name is only ever handed to the underlying locator once.
type ClassCache struct {
	locks    *locker.Locker
	mu       sync.RWMutex
	entries  map[string]classCacheEntry
	upstream ClassLocator
}

// NewClassCache wraps upstream in a ClassCache.
func NewClassCache(upstream ClassLocator) *ClassCache {
	return &ClassCache{
		locks:    locker.New(),
		entries:  make(map[string]classCacheEntry),
		upstream: upstream,
	}
}

// Locate implements ClassLocator, consulting the cache before falling
// through to the wrapped locator.
func (c *ClassCache) Locate(className string) (ResolvedSchema, bool) {
	if e, ok := c.get(className); ok {
		return e.schema, e.found
	}
	c.locks.Lock(className)
	defer c.locks.Unlock(className)
	// another goroutine may have populated the entry while we waited for the lock
	if e, ok := c.get(className); ok {
		return e.schema, e.found
	}
	schema, found := c.upstream.Locate(className)
	c.put(className, classCacheEntry{schema: schema, found: found})
	return schema, found
}

func (c *ClassCache) get(className string) (classCacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[className]
	return e, ok
}

func (c *ClassCache) put(className string, e classCacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[className] = e
}
