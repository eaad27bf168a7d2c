package executor

// Stats is a point-in-time snapshot of a Pool's size and lifetime
// worker churn. It is not part of spec.md's core design — it exists so
// the watermark-sizing property in spec.md §8 ("N never exceeds
// high_watermark, never drops below low_watermark while Running") can
// be asserted directly in tests instead of inferred indirectly,
// mirroring the lru package's own Stats.
type Stats struct {
	Workers    int    // live worker goroutines right now
	Busy       int    // of those, currently executing a task
	QueueDepth int    // tasks currently buffered, waiting for a worker
	Spawned    uint64 // lifetime count of workers started
	Retired    uint64 // lifetime count of workers retired
}
