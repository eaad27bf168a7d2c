package lru

import (
	"container/list"

	"github.com/rs/zerolog"
)

// Cache is a bounded-memory, recency-ordered map from string keys to
// string values. See doc.go for the concurrency contract: Cache is not
// safe for concurrent use and expects external serialization.
type Cache struct {
	index       map[string]*list.Element
	order       *list.List // Value of each element is an *entry; head = MRU, tail = LRU.
	maxSize     int
	currentSize int
	stats       Stats
	log         zerolog.Logger
}

// New returns a Cache bounded to maxSize bytes of key+value data.
//
// Precondition: maxSize > 0. A non-positive maxSize is a programming
// error — per spec.md §7's "Fatal conditions", construction aborts
// rather than returning a cache that can never hold anything.
func New(maxSize int, opts ...Option) *Cache {
	if maxSize <= 0 {
		panic("lru: max_size must be positive")
	}

	c := &Cache{
		index:   make(map[string]*list.Element),
		order:   list.New(),
		maxSize: maxSize,
		log:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Put inserts key with value, or overwrites it if already present,
// promoting it to the head either way. It fails only when the entry
// alone — key plus value — exceeds max_size; on failure the cache is
// left unchanged.
func (c *Cache) Put(key, value string) bool {
	if elem, ok := c.index[key]; ok {
		return c.overwrite(elem, value)
	}
	return c.insert(key, value)
}

// PutIfAbsent inserts key with value only if key is not already
// present. It never promotes or touches an existing entry's recency.
func (c *Cache) PutIfAbsent(key, value string) bool {
	if _, ok := c.index[key]; ok {
		return false
	}
	return c.insert(key, value)
}

// Set updates the value of an existing key and promotes it to the
// head. It returns false — leaving the cache unchanged — if key is
// absent, or if the new value does not fit even after the old entry's
// bytes are reclaimed.
func (c *Cache) Set(key, value string) bool {
	elem, ok := c.index[key]
	if !ok {
		return false
	}
	return c.overwrite(elem, value)
}

// Delete removes key if present. It does not affect the recency of any
// other entry.
func (c *Cache) Delete(key string) bool {
	elem, ok := c.index[key]
	if !ok {
		return false
	}
	c.removeElement(elem)
	return true
}

// Get returns the value stored for key and promotes it to the head.
// The second return value is false if key is absent.
func (c *Cache) Get(key string) (string, bool) {
	elem, ok := c.index[key]
	if !ok {
		c.stats.Misses++
		return "", false
	}
	c.order.MoveToFront(elem)
	c.stats.Hits++
	return elem.Value.(*entry).value, true
}

// Stats returns a snapshot of the cache's hit/miss/eviction counters.
func (c *Cache) Stats() Stats {
	return c.stats
}

// Len returns the number of entries currently stored.
func (c *Cache) Len() int {
	return c.order.Len()
}

// Size returns current_size: the sum of len(key)+len(value) over every
// stored entry.
func (c *Cache) Size() int {
	return c.currentSize
}

// insert adds a brand-new entry for key, evicting from the tail as
// needed. It fails without side effects if the entry alone doesn't
// fit in max_size.
func (c *Cache) insert(key, value string) bool {
	need := len(key) + len(value)
	if need > c.maxSize {
		return false
	}

	c.makeRoom(need)

	elem := c.order.PushFront(&entry{key: key, value: value})
	c.index[key] = elem
	c.currentSize += need
	return true
}

// overwrite replaces the value of an already-indexed element and
// promotes it to the head. If the new value is larger, room is made by
// evicting other entries; if the grown entry could not fit even alone,
// the overwrite is refused before anything is mutated, leaving the
// cache exactly as it was (spec.md §9's
// "shrinking value" / "rollback" open question, resolved with signed
// arithmetic and an up-front fits-after-reclaim check).
func (c *Cache) overwrite(elem *list.Element, value string) bool {
	ent := elem.Value.(*entry)
	oldSize := ent.size()
	newSize := len(ent.key) + len(value)

	if newSize > oldSize {
		if newSize > c.maxSize {
			return false
		}
		// Detach elem from the recency list before evicting for its own
		// growth: if elem happens to be the current tail, makeRoom must
		// not be able to pick it as its own eviction victim. currentSize
		// now reflects only the other entries, so makeRoom must be asked
		// to fit newSize in full, not just the delta over oldSize.
		c.order.Remove(elem)
		c.currentSize -= oldSize
		c.makeRoom(newSize)
		elem = c.order.PushFront(ent)
		c.index[ent.key] = elem
		c.currentSize += oldSize
	} else {
		c.order.MoveToFront(elem)
	}

	ent.value = value
	c.currentSize += newSize - oldSize
	return true
}
