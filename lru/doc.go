/*
Package lru implements a bounded-memory, recency-ordered key/value
store: the Afina storage primitive.

================================================================================
ARCHITECTURAL OVERVIEW
================================================================================

Cache combines two data structures:

1. Hash Map (map[string]*list.Element)
   - Provides O(1) key lookup.
   - Maps keys to their corresponding recency-list elements.

2. Doubly Linked List (*list.List)
   - Maintains recency ordering.
   - Most recently used entries sit at the front (head).
   - Least recently used entries sit at the back (tail), first to be
     evicted.

================================================================================
CONCURRENCY MODEL
================================================================================

Cache is deliberately NOT thread-safe. It assumes a single-threaded
caller, or a caller that serializes access with its own lock — in the
Afina server this is the command dispatcher's global mutex, held across
every cache call including the ones inside tasks running on the
executor. There is no internal locking here to avoid paying for
synchronization twice and to keep every operation a straight-line,
allocation-free (on the hot path) O(1) amortized call.

================================================================================
EVICTION POLICY
================================================================================

Strict least-recently-used: Put, PutIfAbsent (on insert), Set, and Get
all promote the touched entry to the head. When an insert or a grown
Set needs more room than max_size - current_size provides, the tail is
evicted repeatedly until it fits. Evictions are silent — there is no
callback, only the Stats() counter and an optional debug log line.

================================================================================
SIZE ACCOUNTING
================================================================================

current_size is the sum of len(key)+len(value) over every stored entry,
tracked incrementally rather than recomputed, and never exceeds
max_size at the end of any public method.
*/
package lru
