package executor

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type poolState int32

const (
	stateRunning poolState = iota
	stateStopping
	stateStopped
)

// Pool is Afina's elastic task executor. See doc.go for the full
// concurrency model.
type Pool struct {
	mu           sync.Mutex
	shutdownDone *sync.Cond

	tasks chan Task
	state poolState

	low, high int
	qmax      int
	idle      time.Duration

	workers int // live worker goroutines, low <= workers <= high while Running
	busy    int // of those, currently executing a task

	spawned uint64 // monotonic count of workers ever started
	retired uint64 // monotonic count of workers ever retired

	log zerolog.Logger
}

// New constructs a Pool and immediately spawns low_watermark workers,
// leaving it in the Running state.
//
// Preconditions (spec.md §4.1): 0 < low <= high, qmax > 0, idle > 0.
// Violating one is a programming error and panics rather than
// returning an error — per spec.md §7's "Fatal conditions", this is
// never something a caller should retry or branch on.
func New(low, high, qmax int, idle time.Duration, opts ...Option) *Pool {
	if low <= 0 {
		panic("executor: low_watermark must be positive")
	}
	if low > high {
		panic("executor: low_watermark must not exceed high_watermark")
	}
	if qmax <= 0 {
		panic("executor: max_queue_size must be positive")
	}
	if idle <= 0 {
		panic("executor: idle_time must be positive")
	}

	p := &Pool{
		tasks: make(chan Task, qmax),
		low:   low,
		high:  high,
		qmax:  qmax,
		idle:  idle,
		log:   zerolog.Nop(),
	}
	p.shutdownDone = sync.NewCond(&p.mu)

	for _, opt := range opts {
		opt(p)
	}

	p.mu.Lock()
	for i := 0; i < low; i++ {
		p.spawnWorkerLocked()
	}
	p.mu.Unlock()

	return p
}

// Submit appends task to the queue and returns true, or returns false
// without running task when the pool is not Running or the queue is
// already at max_queue_size. Submit never blocks (spec.md §5): the
// send onto the internal channel happens under the pool mutex using a
// non-blocking select, so a full queue fails fast instead of waiting
// for a worker to make room.
//
// On success, if the pool has room to grow (workers < high_watermark)
// and the queue was already non-empty or every live worker is
// currently busy, a new worker is spawned before Submit returns.
func (p *Pool) Submit(task Task) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != stateRunning {
		return false
	}

	select {
	case p.tasks <- task:
	default:
		return false
	}

	queueWasNonEmpty := len(p.tasks) > 1 // our own task is already counted
	allBusy := p.busy == p.workers
	if p.workers < p.high && (queueWasNonEmpty || allBusy) {
		p.spawnWorkerLocked()
	}

	return true
}

// Stop transitions the pool from Running to Stopping. It is
// idempotent: calling it again while already Stopping or Stopped only
// affects whether this call blocks. Queued tasks are never discarded —
// workers keep draining the channel after Stop returns; Stop only
// decides whether new Submit calls are accepted (spec.md §4.1, §9's
// resolved destructor-shutdown question).
//
// If await is true, Stop blocks until every worker has retired
// (state == Stopped). If false, it returns immediately.
func (p *Pool) Stop(await bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == stateRunning {
		p.state = stateStopping
		close(p.tasks)
		p.log.Debug().Msg("executor: stop requested")
	}

	for await && p.state != stateStopped {
		p.shutdownDone.Wait()
	}
}

// Stats returns a snapshot of the pool's current size and lifetime
// worker churn, for the sizing property in spec.md §8.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Workers:    p.workers,
		Busy:       p.busy,
		QueueDepth: len(p.tasks),
		Spawned:    p.spawned,
		Retired:    p.retired,
	}
}

// spawnWorkerLocked starts a new worker goroutine. Callers must hold mu.
func (p *Pool) spawnWorkerLocked() {
	p.workers++
	p.spawned++
	p.log.Debug().Int("workers", p.workers).Msg("executor: worker spawned")
	go p.workerLoop()
}

// retireLocked removes the calling worker from the live set. If it was
// the last worker and the pool is Stopping, the pool becomes Stopped
// and shutdownDone wakes any Stop(await=true) caller. Callers must
// hold mu.
func (p *Pool) retireLocked() {
	p.workers--
	p.retired++
	p.log.Debug().Int("workers", p.workers).Msg("executor: worker retired")
	if p.state == stateStopping && p.workers == 0 {
		p.state = stateStopped
		p.log.Debug().Msg("executor: stopped")
		p.shutdownDone.Broadcast()
	}
}

// workerLoop is the body run by every worker goroutine (spec.md §4.1's
// worker-loop design, steps 1-5).
func (p *Pool) workerLoop() {
	for {
		p.mu.Lock()
		aboveFloor := p.workers > p.low
		p.mu.Unlock()

		var task Task
		var ok bool

		if aboveFloor {
			select {
			case task, ok = <-p.tasks:
			case <-time.After(p.idle):
				p.mu.Lock()
				if p.state != stateRunning || (len(p.tasks) == 0 && p.workers > p.low) {
					p.retireLocked()
					p.mu.Unlock()
					return
				}
				p.mu.Unlock()
				continue
			}
		} else {
			task, ok = <-p.tasks
		}

		if !ok {
			// Channel closed and fully drained: the pool is shutting down
			// and there is no more work for this worker.
			p.mu.Lock()
			p.retireLocked()
			p.mu.Unlock()
			return
		}

		p.mu.Lock()
		p.busy++
		p.mu.Unlock()

		runTask(task)

		p.mu.Lock()
		p.busy--
		p.mu.Unlock()
	}
}

// runTask invokes task, recovering any panic so a failing task can
// never kill its worker (spec.md §4.1 step 4, §5, §7). The executor
// has no channel to report the failure back to the submitter — a task
// that needs its errors observed must capture and report them itself.
func runTask(task Task) {
	defer func() {
		_ = recover()
	}()
	task()
}
