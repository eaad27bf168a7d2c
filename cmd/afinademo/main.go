// Command afinademo exercises the lru and executor packages together:
// a pool of workers handle simulated "client connections", each of
// which runs a short burst of Put/PutIfAbsent/Get/Delete calls against
// a single shared, mutex-guarded cache. It stands in for the server
// loop spec.md's PURPOSE & SCOPE excludes from the library itself.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	_ "go.uber.org/automaxprocs"
	"golang.org/x/sync/errgroup"

	"github.com/rs/zerolog"

	"github.com/afina-kv/afina/executor"
	"github.com/afina-kv/afina/lru"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	// automaxprocs (imported for its init side effect above) has already
	// adjusted GOMAXPROCS to the container's CPU quota by the time we
	// read it here, so the watermarks below scale with what the process
	// actually gets to run on rather than the host's full core count.
	procs := runtime.GOMAXPROCS(0)
	low := procs
	high := procs * 4

	cache := lru.NewSync(1<<20, lru.WithLogger(log.With().Str("component", "lru").Logger()))

	pool := executor.New(low, high, 256, 2*time.Second,
		executor.WithLogger(log.With().Str("component", "executor").Logger()))

	log.Info().Int("low_watermark", low).Int("high_watermark", high).Msg("afinademo: pool started")

	const connections = 64
	group, ctx := errgroup.WithContext(context.Background())

	for i := 0; i < connections; i++ {
		conn := i
		group.Go(func() error {
			return simulateConnection(ctx, pool, cache, conn)
		})
	}

	if err := group.Wait(); err != nil {
		log.Error().Err(err).Msg("afinademo: simulation failed")
		os.Exit(1)
	}

	pool.Stop(true)

	stats := cache.Stats()
	poolStats := pool.Stats()
	log.Info().
		Uint64("cache_hits", stats.Hits).
		Uint64("cache_misses", stats.Misses).
		Uint64("cache_evictions", stats.Evictions).
		Uint64("workers_spawned", poolStats.Spawned).
		Uint64("workers_retired", poolStats.Retired).
		Msg("afinademo: done")

	fmt.Printf("final cache size: %d bytes across %d entries\n", cache.Size(), cache.Len())
}

// simulateConnection submits a handful of cache operations as
// individual tasks, the way a real server would submit one task per
// inbound request. It reports an error only if the pool refuses every
// submission attempt, which would mean the demo's own load exceeds
// what it configured the pool to absorb.
func simulateConnection(ctx context.Context, pool *executor.Pool, cache *lru.SyncCache, id int) error {
	for op := 0; op < 8; op++ {
		key := fmt.Sprintf("conn-%d-key-%d", id, op%3)
		value := fmt.Sprintf("value-%d-%d", id, op)

		done := make(chan struct{})
		submitted := submitWithRetry(ctx, pool, func() {
			defer close(done)
			switch op % 4 {
			case 0:
				cache.Put(key, value)
			case 1:
				cache.PutIfAbsent(key, value)
			case 2:
				cache.Get(key)
			case 3:
				cache.Delete(key)
			}
		})
		if !submitted {
			return fmt.Errorf("afinademo: connection %d could not submit op %d", id, op)
		}

		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}

		time.Sleep(time.Duration(rand.Intn(5)) * time.Millisecond)
	}
	return nil
}

// submitWithRetry backs off briefly and retries when the pool's queue
// is momentarily full, rather than treating a transient rejection as a
// hard failure — Submit's fail-fast contract is about not blocking
// inside the pool, not about giving callers a single attempt.
func submitWithRetry(ctx context.Context, pool *executor.Pool, task executor.Task) bool {
	for attempt := 0; attempt < 20; attempt++ {
		if pool.Submit(task) {
			return true
		}
		select {
		case <-time.After(time.Millisecond):
		case <-ctx.Done():
			return false
		}
	}
	return false
}
