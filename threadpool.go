package threadpool

import (
	"sync"

	"github.com/poolkit/go-thread-pool/core"
)

// New creates a WorkerPool with the given worker count and queue depth using
// default configuration. It returns a ConfigError if either argument is
// non-positive. Workers are spawned before New returns.
func New(workers, queueDepth int) (*WorkerPool, error) {
	return core.NewWorkerPool(workers, queueDepth, nil)
}

// NewWithConfig creates a WorkerPool with custom handlers, metrics, and
// logging.
func NewWithConfig(workers, queueDepth int, config *WorkerPoolConfig) (*WorkerPool, error) {
	return core.NewWorkerPool(workers, queueDepth, config)
}

// =============================================================================
// Global Thread Pool Helper (Singleton)
// =============================================================================

var (
	globalThreadPool *WorkerPool
	globalMu         sync.Mutex
)

// InitGlobalThreadPool initializes the global worker pool with the specified
// worker count and queue depth. The pool starts immediately. Repeated calls
// are no-ops once a pool exists.
func InitGlobalThreadPool(workers, queueDepth int) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalThreadPool != nil {
		return nil // Already initialized
	}

	config := core.DefaultWorkerPoolConfig()
	config.ID = "global-pool"
	pool, err := core.NewWorkerPool(workers, queueDepth, config)
	if err != nil {
		return err
	}
	globalThreadPool = pool
	return nil
}

// GetGlobalThreadPool returns the global pool instance.
// It panics if InitGlobalThreadPool has not been called.
func GetGlobalThreadPool() *WorkerPool {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalThreadPool == nil {
		panic("GlobalThreadPool not initialized. Call InitGlobalThreadPool() first.")
	}
	return globalThreadPool
}

// ShutdownGlobalThreadPool stops the global pool and releases it.
func ShutdownGlobalThreadPool() {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalThreadPool != nil {
		globalThreadPool.Stop()
		globalThreadPool = nil
	}
}
