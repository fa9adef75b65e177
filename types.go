package threadpool

import "github.com/poolkit/go-thread-pool/core"

// Re-export commonly used types from core package for convenience.
// This allows users to import only the threadpool package for most use cases.

// Task is the unit of work: an opaque capability with a single Execute operation
type Task = core.Task

// TaskFunc adapts a plain function to the Task interface
type TaskFunc = core.TaskFunc

// NamedTask wraps a Task with a name used in logs
type NamedTask = core.NamedTask

// WorkerPool executes tasks from a bounded FIFO queue on a fixed set of workers
type WorkerPool = core.WorkerPool

// WorkerPoolConfig holds optional pool configuration (handlers, metrics, logger)
type WorkerPoolConfig = core.WorkerPoolConfig

// PoolStats is a snapshot of a pool's runtime state
type PoolStats = core.PoolStats

// Mutex is the exclusive-lock primitive
type Mutex = core.Mutex

// ConditionVariable is the wait/notify primitive
type ConditionVariable = core.ConditionVariable

// CountingSemaphore is the blocking-counter primitive
type CountingSemaphore = core.CountingSemaphore

// ConfigError reports invalid construction parameters
type ConfigError = core.ConfigError

// ResourceError reports primitive or worker allocation failure
type ResourceError = core.ResourceError

// Logger is the structured logging interface used by the pool
type Logger = core.Logger

// Field is a key-value pair for structured logging
type Field = core.Field

// PanicHandler receives recovered task panics
type PanicHandler = core.PanicHandler

// Metrics receives pool execution metrics
type Metrics = core.Metrics

// RejectedTaskHandler receives task rejection events
type RejectedTaskHandler = core.RejectedTaskHandler

// Rejection reasons reported to RejectedTaskHandler and Metrics
const (
	RejectReasonQueueFull = core.RejectReasonQueueFull
	RejectReasonNilTask   = core.RejectReasonNilTask
	RejectReasonShutdown  = core.RejectReasonShutdown
)

// Convenience constructors re-exported from core
var (
	NewMutex                = core.NewMutex
	NewConditionVariable    = core.NewConditionVariable
	NewCountingSemaphore    = core.NewCountingSemaphore
	NewNamedTask            = core.NewNamedTask
	DefaultWorkerPoolConfig = core.DefaultWorkerPoolConfig
	NewDefaultLogger        = core.NewDefaultLogger
	NewNoOpLogger           = core.NewNoOpLogger
	F                       = core.F
)
