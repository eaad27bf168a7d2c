package executor

// Task is an opaque, no-argument, no-return unit of deferred work.
// Parameter binding happens at the call site via closure, not through
// the executor — submit a task like:
//
//	conn := acceptedConn
//	pool.Submit(func() { handleConnection(conn) })
//
// A task that panics is recovered inside the worker loop and never
// kills the worker or propagates out of the pool (spec.md §4.1 step 4,
// §7): the executor has no channel back to the caller for task-level
// failure, so a task that wants its errors observed must capture and
// report them itself.
type Task func()
