package memo

import "container/list"

// Stats reports cache effectiveness counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
}

// Cache is a memo table from K to V. The zero value is not usable; build one
// with New or NewBounded.
type Cache[K comparable, V any] struct {
	capacity int // 0 = unbounded
	items    map[K]*list.Element
	order    *list.List // front = most recently used; only maintained when bounded
	values   map[K]V    // used when unbounded

	stats Stats
}

// entry is the list payload of a bounded cache.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// New returns an unbounded cache. sizeHint pre-sizes the table and may be 0.
func New[K comparable, V any](sizeHint int) *Cache[K, V] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Cache[K, V]{values: make(map[K]V, sizeHint)}
}

// NewBounded returns a cache holding at most capacity entries, evicting the
// least recently used entry when full. A capacity <= 0 yields an unbounded
// cache.
func NewBounded[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		return New[K, V](0)
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get returns the memoized value for k.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	if c.capacity == 0 {
		v, ok := c.values[k]
		c.count(ok)
		return v, ok
	}
	el, ok := c.items[k]
	c.count(ok)
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*entry[K, V]).value, true
}

// Put stores v under k, replacing any previous value.
func (c *Cache[K, V]) Put(k K, v V) {
	if c.capacity == 0 {
		c.values[k] = v
		return
	}
	if el, ok := c.items[k]; ok {
		el.Value.(*entry[K, V]).value = v
		c.order.MoveToFront(el)
		return
	}
	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*entry[K, V]).key)
		c.stats.Evictions++
	}
	c.items[k] = c.order.PushFront(&entry[K, V]{key: k, value: v})
}

// Do returns the memoized value for k, computing and storing it on a miss.
// compute may itself call Do on the same cache (recursion); the entry for k is
// written only after compute returns.
func (c *Cache[K, V]) Do(k K, compute func() V) V {
	if v, ok := c.Get(k); ok {
		return v
	}
	v := compute()
	c.Put(k, v)
	return v
}

// Len returns the number of stored entries.
func (c *Cache[K, V]) Len() int {
	if c.capacity == 0 {
		return len(c.values)
	}
	return c.order.Len()
}

// Stats returns a snapshot of the hit/miss/eviction counters.
func (c *Cache[K, V]) Stats() Stats { return c.stats }

func (c *Cache[K, V]) count(hit bool) {
	if hit {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
}

// Recursive memoizes a recursive definition. fn receives the memoized
// function itself as self and must recurse only through it. The returned
// cache is the one backing the function, exposed for inspection or reuse.
func Recursive[K comparable, V any](fn func(self func(K) V, k K) V) (func(K) V, *Cache[K, V]) {
	cache := New[K, V](0)
	var self func(K) V
	self = func(k K) V {
		return cache.Do(k, func() V { return fn(self, k) })
	}
	return self, cache
}
