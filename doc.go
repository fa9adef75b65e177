// Package threadpool provides a fixed-size worker pool over a bounded FIFO
// queue, built on three exported synchronization primitives: Mutex,
// ConditionVariable, and CountingSemaphore.
//
// The pool decouples producers from a fixed set of worker goroutines.
// Producers call TrySubmit, which never blocks: a full queue rejects the task
// immediately so the caller can apply its own backpressure policy. Every
// accepted task is executed exactly once, in FIFO order across the workers
// collectively.
//
// # Quick Start
//
// Initialize the global pool at application startup:
//
//	threadpool.InitGlobalThreadPool(8, 10000) // 8 workers, queue depth 10000
//	defer threadpool.ShutdownGlobalThreadPool()
//
//	pool := threadpool.GetGlobalThreadPool()
//	accepted := pool.TrySubmit(threadpool.TaskFunc(func() {
//		// Your code here
//	}))
//	if !accepted {
//		// Queue full: retry, drop, or queue elsewhere
//	}
//
// Or create a pool directly:
//
//	pool, err := threadpool.New(4, 256)
//	if err != nil {
//		// non-positive worker count or queue depth
//	}
//	defer pool.Stop()
//
// # Key Concepts
//
// Task: an opaque unit of work with a single Execute operation. Any caller
// type can implement it; TaskFunc adapts plain functions.
//
// Backpressure: TrySubmit returning false means the queue already holds the
// maximum number of tasks. This is an expected, recoverable condition, not an
// error.
//
// Shutdown: Stop wakes every worker, including those blocked waiting for
// work, and joins them before returning. StopGraceful drains the queue first.
//
// # Fault Isolation
//
// A panic inside Task.Execute is recovered by the worker, reported to the
// pool's PanicHandler and Metrics, and the worker keeps running. The pool
// never shrinks because a task misbehaved.
//
// # Primitives
//
// The core package also exports the three primitives the pool is built on,
// usable on their own: Mutex (exclusive lock), ConditionVariable
// (wait/notify with TimedWait), and CountingSemaphore (blocking counter with
// a close-to-wake-waiters shutdown extension).
package threadpool
