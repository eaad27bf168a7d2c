package lru

import "container/list"

// makeRoom evicts tail entries, oldest first, until the cache can fit
// need additional bytes without exceeding max_size. The caller must
// already have verified need <= max_size — makeRoom does not check
// that the eventually-inserted entry fits on its own, only that
// existing entries get out of its way.
func (c *Cache) makeRoom(need int) {
	for c.currentSize+need > c.maxSize {
		tail := c.order.Back()
		if tail == nil {
			// current_size is 0 but need still doesn't fit: unreachable
			// as long as callers check need <= max_size first.
			return
		}
		key := tail.Value.(*entry).key
		c.removeElement(tail)
		c.stats.Evictions++
		c.log.Debug().Str("key", key).Msg("lru: evicted")
	}
}

// removeElement detaches e from both the recency list and the index.
// Callers must hold whatever external lock the cache requires; this
// performs no synchronization of its own (see doc.go).
func (c *Cache) removeElement(e *list.Element) {
	c.order.Remove(e)
	ent := e.Value.(*entry)
	delete(c.index, ent.key)
	c.currentSize -= ent.size()
}
