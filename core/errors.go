package core

import "fmt"

// ConfigError reports invalid construction parameters. It is fatal and
// surfaced at construction time; a pool is never created from one.
type ConfigError struct {
	Param string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("threadpool: invalid %s %d (must be positive)", e.Param, e.Value)
}

// ResourceError reports a failure to allocate a synchronization primitive or
// spawn a worker. It is fatal at construction time.
type ResourceError struct {
	Op     string
	Reason string
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("threadpool: %s: %s", e.Op, e.Reason)
}

// Rejection reasons passed to RejectedTaskHandler and Metrics.
const (
	RejectReasonQueueFull = "queue_full"
	RejectReasonNilTask   = "nil_task"
	RejectReasonShutdown  = "shutdown"
)
