package lru

import "testing"

/*
cache_test.go validates the Cache contract from spec.md §4.2 and §8:

1. Functional correctness of Put / PutIfAbsent / Set / Delete / Get.
2. The eviction policy (strict LRU, silent, tail-first).
3. Recency promotion rules, including the one operation that must NOT
   promote (PutIfAbsent on an already-present key).
4. Size accounting staying within max_size after every call.

These mirror the end-to-end scenarios enumerated in spec.md §8 almost
verbatim, since that section was written as a set of worked examples
rather than abstract properties.
*/

func TestPutAndGet(t *testing.T) {
	c := New(10)

	if !c.Put("aa", "11") {
		t.Fatal("expected Put to succeed")
	}

	val, found := c.Get("aa")
	if !found || val != "11" {
		t.Fatalf("expected (true, %q), got (%v, %q)", "11", found, val)
	}
}

// TestScenario1Eviction replays spec.md §8 scenario 1 exactly: a
// max_size=10 cache where a third insert evicts the first key, and a
// fourth insert evicts the third key rather than the just-promoted
// second, because Get("bb") moved it to the head.
func TestScenario1Eviction(t *testing.T) {
	c := New(10)

	if !c.Put("aa", "11") {
		t.Fatal("put aa: expected true")
	}
	if !c.Put("bb", "22") {
		t.Fatal("put bb: expected true")
	}
	if !c.Put("cc", "33") {
		t.Fatal("put cc: expected true")
	}
	if _, found := c.Get("aa"); found {
		t.Fatal("get aa: expected eviction, got found")
	}
	if val, found := c.Get("bb"); !found || val != "22" {
		t.Fatalf("get bb: expected (true, 22), got (%v, %q)", found, val)
	}
	if !c.Put("dd", "44") {
		t.Fatal("put dd: expected true")
	}
	if _, found := c.Get("cc"); found {
		t.Fatal("get cc: expected eviction (cc, not the promoted bb)")
	}
	if _, found := c.Get("bb"); !found {
		t.Fatal("get bb: expected bb to have survived, it was promoted before dd's insert")
	}
}

// TestOversizedPutFails replays spec.md §8 scenario 2: an entry that
// alone exceeds max_size is rejected and the cache stays empty.
func TestOversizedPutFails(t *testing.T) {
	c := New(4)

	if c.Put("key", "value") {
		t.Fatal("expected Put to fail: 6 bytes > max_size 4")
	}
	if c.Len() != 0 || c.Size() != 0 {
		t.Fatalf("expected empty cache after failed put, got len=%d size=%d", c.Len(), c.Size())
	}
}

// TestPutIfAbsentDoesNotPromote replays spec.md §8 scenario 3.
func TestPutIfAbsentDoesNotPromote(t *testing.T) {
	c := New(6)

	if !c.Put("a", "1") {
		t.Fatal("put a: expected true")
	}
	if c.PutIfAbsent("a", "2") {
		t.Fatal("put_if_absent on present key: expected false")
	}
	val, found := c.Get("a")
	if !found || val != "1" {
		t.Fatalf("expected (true, 1), got (%v, %q) — put_if_absent must not have overwritten", found, val)
	}
}

// TestSetGrowsAndPromotes replays spec.md §8 scenario 4, including the
// size accounting after a value grows in place.
func TestSetGrowsAndPromotes(t *testing.T) {
	c := New(6)

	c.Put("a", "1")
	if !c.Set("a", "22") {
		t.Fatal("set a: expected true")
	}
	val, found := c.Get("a")
	if !found || val != "22" {
		t.Fatalf("expected (true, 22), got (%v, %q)", found, val)
	}
	if c.Size() != 3 {
		t.Fatalf("expected current_size 3, got %d", c.Size())
	}
}

func TestSetOnAbsentKeyFails(t *testing.T) {
	c := New(10)
	if c.Set("missing", "x") {
		t.Fatal("expected Set on absent key to return false")
	}
}

// TestSetRollsBackWhenItDoesNotFit exercises the §9 "shrinking/growing
// value" open question: growing a value past what eviction can free
// must fail without mutating the cache.
func TestSetRollsBackWhenItDoesNotFit(t *testing.T) {
	c := New(4)

	if !c.Put("a", "1") { // size 2
		t.Fatal("put a: expected true")
	}
	if c.Set("a", "toolong") { // would need 1+7=8 > max_size 4
		t.Fatal("expected Set to fail when the grown value cannot fit even alone")
	}
	val, found := c.Get("a")
	if !found || val != "1" {
		t.Fatalf("expected cache unchanged after failed Set, got (%v, %q)", found, val)
	}
}

// TestSetGrowsTailEntryInPlace exercises growing the value of the
// entry that is itself the current LRU tail — makeRoom must not be
// able to evict the very entry it's making room for.
func TestSetGrowsTailEntryInPlace(t *testing.T) {
	c := New(6)

	c.Put("a", "1") // order: [a]
	c.Put("b", "2") // order: [b, a], a is tail

	if !c.Set("a", "11") { // a grows from size 2 to size 3; total would be 2+3=5 <= 6
		t.Fatal("expected Set to succeed by evicting around, not through, its own entry")
	}
	val, found := c.Get("a")
	if !found || val != "11" {
		t.Fatalf("expected (true, 11), got (%v, %q)", found, val)
	}
	if _, found := c.Get("b"); !found {
		t.Fatal("expected b to have survived: growing a only needed 1 extra byte, which was free")
	}
}

// TestSetGrowingNonTailEntryEvictsOthers exercises growing an entry
// that is NOT the one makeRoom would otherwise reach for: the room
// freed must account for the entry's full new size, not just the
// delta over its old size, or current_size can end up above max_size.
func TestSetGrowingNonTailEntryEvictsOthers(t *testing.T) {
	c := New(10)

	c.Put("y", "22") // size 3, order: [y]
	c.Put("x", "1")  // size 2, order: [x, y], y is tail, current_size=5

	if !c.Set("x", "abcdefg") { // x grows from size 2 to size 8
		t.Fatal("expected Set to succeed by evicting y to make room for x's growth")
	}
	if c.Size() > 10 {
		t.Fatalf("current_size %d exceeds max_size 10 after Set", c.Size())
	}
	val, found := c.Get("x")
	if !found || val != "abcdefg" {
		t.Fatalf("expected (true, abcdefg), got (%v, %q)", found, val)
	}
	if _, found := c.Get("y"); found {
		t.Fatal("expected y to have been evicted to make room for x's growth")
	}
}

func TestIdempotentDelete(t *testing.T) {
	c := New(10)
	c.Put("k", "v")

	if !c.Delete("k") {
		t.Fatal("first delete: expected true")
	}
	if c.Delete("k") {
		t.Fatal("second delete: expected false")
	}
}

func TestDeleteDoesNotTouchOtherRecency(t *testing.T) {
	c := New(10)
	c.Put("a", "1")
	c.Put("b", "2")
	c.Put("c", "3") // order: [c, b, a]

	c.Delete("b") // order: [c, a], recency of c and a untouched

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries after delete, got %d", c.Len())
	}
	if head := c.order.Front().Value.(*entry).key; head != "c" {
		t.Fatalf("expected c to stay at the head after delete, got %q", head)
	}
	if tail := c.order.Back().Value.(*entry).key; tail != "a" {
		t.Fatalf("expected a to stay at the tail after delete, got %q", tail)
	}
}

func TestSizeNeverExceedsMax(t *testing.T) {
	c := New(20)
	keys := []string{"one", "two", "three", "four", "five", "six", "seven"}
	for i, k := range keys {
		c.Put(k, k)
		if c.Size() > 20 {
			t.Fatalf("after put %d (%q): current_size %d exceeds max_size 20", i, k, c.Size())
		}
	}
}

func TestUniqueKeysAcrossIndexAndList(t *testing.T) {
	c := New(100)
	for _, k := range []string{"a", "b", "c", "d"} {
		c.Put(k, k)
	}
	c.Delete("b")

	if len(c.index) != c.order.Len() {
		t.Fatalf("index has %d keys but list has %d elements", len(c.index), c.order.Len())
	}
	for k, elem := range c.index {
		if elem.Value.(*entry).key != k {
			t.Fatalf("index key %q maps to element with key %q", k, elem.Value.(*entry).key)
		}
	}
}

func TestStatsTracking(t *testing.T) {
	c := New(10)
	c.Put("a", "1")

	c.Get("a") // hit
	c.Get("b") // miss

	stats := c.Stats()
	if stats.Hits != 1 {
		t.Fatalf("expected 1 hit, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Fatalf("expected 1 miss, got %d", stats.Misses)
	}
}

func TestStatsEvictionCounter(t *testing.T) {
	c := New(4)
	c.Put("aa", "1") // size 3
	c.Put("bb", "1") // size 3, evicts aa

	stats := c.Stats()
	if stats.Evictions != 1 {
		t.Fatalf("expected 1 eviction, got %d", stats.Evictions)
	}
}
