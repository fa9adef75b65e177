package core

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"
)

// WorkerPool owns a bounded FIFO queue of task handles and a fixed set of
// worker goroutines that pull from it. Producers call TrySubmit; rejection is
// immediate and non-blocking when the queue is full (backpressure). Each
// accepted task runs exactly once, on exactly one worker.
//
// Coordination follows the classic mutex + counting-semaphore discipline: the
// queue is guarded exclusively by the pool's Mutex, and the semaphore count
// always equals the number of queued tasks outside a critical section. Every
// enqueue is paired with one Post, every dequeue attempt with one Wait.
type WorkerPool struct {
	id            string
	workerCount   int
	maxQueueDepth int

	// queueLock guards queue and stopped. No code path reads or writes the
	// queue without holding it.
	queueLock *Mutex
	queue     *workQueue
	queueStat *CountingSemaphore
	stopped   bool

	wg sync.WaitGroup

	panicHandler        PanicHandler
	metrics             Metrics
	rejectedTaskHandler RejectedTaskHandler
	logger              Logger

	active    atomic.Int32
	submitted atomic.Int64
	rejected  atomic.Int64
	completed atomic.Int64
	panicked  atomic.Int64
}

// NewWorkerPool creates a pool with workerCount workers and a queue bounded
// at maxQueueDepth, spawning all workers before returning.
//
// It returns a ConfigError if either argument is non-positive, and a
// ResourceError if a synchronization primitive cannot be created. On error no
// goroutines are spawned.
func NewWorkerPool(workerCount, maxQueueDepth int, config *WorkerPoolConfig) (*WorkerPool, error) {
	if workerCount <= 0 {
		return nil, &ConfigError{Param: "worker count", Value: workerCount}
	}
	if maxQueueDepth <= 0 {
		return nil, &ConfigError{Param: "max queue depth", Value: maxQueueDepth}
	}

	queueStat, err := NewCountingSemaphore(0)
	if err != nil {
		return nil, err
	}

	p := &WorkerPool{
		workerCount:   workerCount,
		maxQueueDepth: maxQueueDepth,
		queueLock:     NewMutex(),
		queue:         newWorkQueue(maxQueueDepth),
		queueStat:     queueStat,
	}

	if config == nil {
		config = DefaultWorkerPoolConfig()
	}
	p.id = config.ID
	p.panicHandler = config.PanicHandler
	p.metrics = config.Metrics
	p.rejectedTaskHandler = config.RejectedTaskHandler
	p.logger = config.Logger

	// Use defaults if not provided
	if p.id == "" {
		p.id = "worker-pool"
	}
	if p.panicHandler == nil {
		p.panicHandler = &DefaultPanicHandler{}
	}
	if p.metrics == nil {
		p.metrics = &NilMetrics{}
	}
	if p.rejectedTaskHandler == nil {
		p.rejectedTaskHandler = &DefaultRejectedTaskHandler{}
	}
	if p.logger == nil {
		p.logger = NewDefaultLogger()
	}

	for i := 0; i < workerCount; i++ {
		p.wg.Add(1)
		go p.workerLoop(i)
	}

	p.logger.Info("worker pool started",
		F("pool", p.id),
		F("workers", workerCount),
		F("queue_capacity", maxQueueDepth))

	return p, nil
}

// TrySubmit offers a task to the pool. It returns true if the task was
// enqueued and false if it was rejected. Rejection signals backpressure when
// the queue already holds the maximum number of tasks; the caller decides
// whether to retry, drop, or queue elsewhere.
//
// Nil tasks are rejected here rather than discovered by a worker later.
// TrySubmit never blocks: the lock-held critical section is O(1).
func (p *WorkerPool) TrySubmit(task Task) bool {
	if task == nil {
		p.reject(RejectReasonNilTask)
		return false
	}

	p.queueLock.Acquire()
	if p.stopped {
		p.queueLock.Release()
		p.reject(RejectReasonShutdown)
		return false
	}
	if !p.queue.push(task) {
		p.queueLock.Release()
		p.reject(RejectReasonQueueFull)
		return false
	}
	depth := p.queue.len()
	p.queueLock.Release()

	p.queueStat.Post()
	p.submitted.Add(1)
	p.metrics.RecordQueueDepth(p.id, depth)
	return true
}

// workerLoop is the dispatch loop run by each worker until shutdown.
func (p *WorkerPool) workerLoop(workerID int) {
	defer p.wg.Done()

	for {
		// Suspend until at least one task is known to be queued, or the
		// semaphore is closed and drained (shutdown).
		if !p.queueStat.Wait() {
			return
		}

		p.queueLock.Acquire()
		task, ok := p.queue.pop()
		p.queueLock.Release()

		if !ok {
			// Another worker raced to the head, or Stop cleared the queue
			// while permits were still outstanding. Harmless: re-loop.
			continue
		}
		if task == nil {
			// Unreachable via TrySubmit, which rejects nil tasks. Kept as a
			// defensive no-op against direct queue corruption.
			continue
		}

		p.execute(workerID, task)
	}
}

// execute runs a single task, isolating panics so the worker survives.
func (p *WorkerPool) execute(workerID int, task Task) {
	p.active.Add(1)
	start := time.Now()

	defer func() {
		p.active.Add(-1)
		p.metrics.RecordTaskDuration(p.id, time.Since(start))
		if r := recover(); r != nil {
			p.panicked.Add(1)
			p.metrics.RecordTaskPanic(p.id, r)
			p.panicHandler.HandlePanic(p.id, workerID, r, debug.Stack())
			p.logger.Error("task panicked",
				F("pool", p.id),
				F("worker", workerID),
				F("task", taskName(task)))
			return
		}
		p.completed.Add(1)
	}()

	task.Execute()
}

// Stop shuts the pool down immediately. Queued tasks that have not started
// are dropped; tasks already executing run to completion. Every worker,
// including those blocked waiting for work, is woken and joined: when Stop
// returns the pool has zero running workers. Stop is idempotent and safe to
// call concurrently.
func (p *WorkerPool) Stop() {
	p.queueLock.Acquire()
	already := p.stopped
	p.stopped = true
	var dropped int
	if !already {
		dropped = p.queue.len()
		p.queue.clear()
	}
	p.queueLock.Release()

	if !already {
		// Discard the permits paired with the dropped tasks, then wake every
		// blocked worker so none sleeps through shutdown.
		p.queueStat.Drain()
		p.queueStat.Close()
	}

	p.wg.Wait()

	if !already {
		if dropped > 0 {
			p.rejected.Add(int64(dropped))
			p.logger.Warn("worker pool stopped with tasks still queued",
				F("pool", p.id),
				F("dropped", dropped))
		}
		p.logger.Info("worker pool stopped", F("pool", p.id))
	}
}

// StopGraceful stops accepting new tasks and waits for all queued tasks to
// finish. Workers drain the remaining permits of the closed semaphore before
// exiting. If the drain does not complete within timeout, the remaining
// queued tasks are dropped and an error is returned; tasks already executing
// still run to completion (call Stop to join them).
func (p *WorkerPool) StopGraceful(timeout time.Duration) error {
	p.queueLock.Acquire()
	if p.stopped {
		p.queueLock.Release()
		return nil
	}
	p.stopped = true
	p.queueLock.Release()

	p.queueStat.Close()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		p.logger.Info("worker pool stopped gracefully", F("pool", p.id))
		return nil
	case <-timer.C:
		p.queueLock.Acquire()
		dropped := p.queue.len()
		p.queue.clear()
		p.queueLock.Release()
		p.queueStat.Drain()

		if dropped > 0 {
			p.rejected.Add(int64(dropped))
		}
		p.logger.Warn("graceful stop timed out",
			F("pool", p.id),
			F("dropped", dropped))
		return fmt.Errorf("worker pool %s: graceful stop timed out after %v", p.id, timeout)
	}
}

// Stats returns a snapshot of the pool's runtime state.
func (p *WorkerPool) Stats() PoolStats {
	p.queueLock.Acquire()
	queued := p.queue.len()
	running := !p.stopped
	p.queueLock.Release()

	return PoolStats{
		ID:        p.id,
		Workers:   p.workerCount,
		Queued:    queued,
		Capacity:  p.maxQueueDepth,
		Active:    int(p.active.Load()),
		Submitted: p.submitted.Load(),
		Rejected:  p.rejected.Load(),
		Completed: p.completed.Load(),
		Panicked:  p.panicked.Load(),
		Running:   running,
	}
}

// ID returns the pool's identifier.
func (p *WorkerPool) ID() string {
	return p.id
}

// WorkerCount returns the fixed number of workers.
func (p *WorkerPool) WorkerCount() int {
	return p.workerCount
}

// QueueDepth returns the current number of queued tasks.
func (p *WorkerPool) QueueDepth() int {
	p.queueLock.Acquire()
	defer p.queueLock.Release()
	return p.queue.len()
}

// QueueCapacity returns the maximum queue depth.
func (p *WorkerPool) QueueCapacity() int {
	return p.maxQueueDepth
}

// IsRunning reports whether the pool is accepting tasks.
func (p *WorkerPool) IsRunning() bool {
	p.queueLock.Acquire()
	defer p.queueLock.Release()
	return !p.stopped
}

func (p *WorkerPool) reject(reason string) {
	p.rejected.Add(1)
	p.rejectedTaskHandler.HandleRejectedTask(p.id, reason)
	p.metrics.RecordTaskRejected(p.id, reason)
}
