/*
Package executor implements Afina's elastic task executor: a worker
pool that accepts deferred work, queues it FIFO up to a configured
capacity, and dispatches it to a set of worker goroutines whose count
floats between a low and a high watermark based on load.

================================================================================
CONCURRENCY MODEL
================================================================================

The task queue itself is a buffered channel of capacity max_queue_size:
FIFO ordering and the bounded-capacity "reject when full" behavior both
fall out of the channel for free, and a worker waiting idle_time for
work is a natural select against time.After rather than a hand-rolled
timed condition-variable wait. A separate mutex protects the bookkeeping
the channel can't express by itself — the live worker count, how many
of them are currently busy, and the Running/Stopping/Stopped state —
and a sync.Cond (shutdownDone) built on that same mutex lets Stop(true)
block until the last worker retires.

Submit's send onto the channel happens while holding the pool mutex
(via a non-blocking select/default), which is what keeps it safe to
decide "should a new worker be spawned" from the same snapshot of queue
depth and worker-busy state that the send just produced.

================================================================================
LIFECYCLE
================================================================================

State moves Running -> Stopping -> Stopped and never backward. New
spawns exactly low_watermark workers. Submit may spawn additional
workers up to high_watermark when the queue is under pressure. Workers
above low_watermark retire themselves after idle_time with nothing to
do; the floor workers wait unboundedly. Stop closes the queue channel:
workers already holding buffered tasks keep draining them (the pool
never discards submitted work just because Stop was called), and each
worker retires as soon as it observes the channel closed and empty.
Stop(await=true) blocks until the last worker has retired; Stop(false)
returns immediately without waiting.
*/
package executor
