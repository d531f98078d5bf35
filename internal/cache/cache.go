// Package cache implements the process-wide compiled-AST cache described in
// spec.md §5: source text (after safety gating) maps to a parsed
// ast.Expr, bounded by maxCacheSize with coarse FIFO eviction.
package cache

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/go-formula/internal/ast"
)

// DefaultMaxSize is the default entry bound, per spec.md §5.
const DefaultMaxSize = 1000

// evictionFraction is the share of entries a single eviction pass removes.
const evictionFraction = 0.2

type entry struct {
	expr  ast.Expr
	order int64
}

// Cache is a bounded, concurrency-safe source-text -> ast.Expr cache.
// Lookups use sync.Map and need no lock; only eviction (triggered on
// Store once the bound is exceeded) takes evictMu, matching spec.md §5's
// "reads are lock-free, eviction is serialized under a single mutex".
type Cache struct {
	entries sync.Map // string -> *entry
	size    int64    // atomic approximate occupancy
	seq     int64    // atomic monotonic insertion counter, for FIFO order

	evictMu sync.Mutex
	maxSize atomic.Int64
}

// New builds an empty Cache with the given bound. A non-positive maxSize
// is treated as DefaultMaxSize.
func New(maxSize int) *Cache {
	c := &Cache{}
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	c.maxSize.Store(int64(maxSize))
	return c
}

// MaxSize returns the current entry bound.
func (c *Cache) MaxSize() int { return int(c.maxSize.Load()) }

// SetMaxSize updates the entry bound. It does not retroactively evict; the
// next Store past the new bound will.
func (c *Cache) SetMaxSize(n int) {
	if n <= 0 {
		n = DefaultMaxSize
	}
	c.maxSize.Store(int64(n))
}

// Get returns the cached expression for key, if present. Lock-free.
func (c *Cache) Get(key string) (ast.Expr, bool) {
	v, ok := c.entries.Load(key)
	if !ok {
		return nil, false
	}
	return v.(*entry).expr, true
}

// Store records expr under key, then evicts the oldest ~20% of entries if
// the new entry took occupancy past the bound. Two concurrent Store calls racing on the same
// key may both compile upstream (per spec.md §5); whichever Store runs
// last here wins and the other's expr is simply discarded.
func (c *Cache) Store(key string, expr ast.Expr) {
	if _, loaded := c.entries.LoadOrStore(key, &entry{expr: expr, order: atomic.AddInt64(&c.seq, 1)}); loaded {
		c.entries.Store(key, &entry{expr: expr, order: atomic.AddInt64(&c.seq, 1)})
		return
	}
	n := atomic.AddInt64(&c.size, 1)
	if n > c.maxSize.Load() {
		c.evict()
	}
}

// evict removes the oldest-inserted ~20% of entries under evictMu.
func (c *Cache) evict() {
	c.evictMu.Lock()
	defer c.evictMu.Unlock()

	// Re-check under the lock: another goroutine may have already
	// evicted enough while we were waiting.
	if atomic.LoadInt64(&c.size) <= c.maxSize.Load() {
		return
	}

	type keyOrder struct {
		key   string
		order int64
	}
	var all []keyOrder
	c.entries.Range(func(k, v any) bool {
		all = append(all, keyOrder{k.(string), v.(*entry).order})
		return true
	})

	target := int(float64(len(all)) * evictionFraction)
	if target < 1 {
		target = 1
	}
	sort.Slice(all, func(i, j int) bool { return all[i].order < all[j].order })

	evicted := 0
	for i := 0; i < target && i < len(all); i++ {
		if _, ok := c.entries.LoadAndDelete(all[i].key); ok {
			evicted++
		}
	}
	atomic.AddInt64(&c.size, int64(-evicted))
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.evictMu.Lock()
	defer c.evictMu.Unlock()
	c.entries.Range(func(k, _ any) bool {
		c.entries.Delete(k)
		return true
	})
	atomic.StoreInt64(&c.size, 0)
}

// Stats returns the cache's current occupancy, matching pkg/formula's
// stats() -> (compiled_scripts, options_cache) surface (spec.md §6);
// options_cache is always 0 here since this engine has no secondary
// options cache (see SPEC_FULL.md's Open Question resolution).
func (c *Cache) Stats() (compiledScripts int, optionsCache int) {
	return int(atomic.LoadInt64(&c.size)), 0
}
