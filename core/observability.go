package core

// PoolStats represents runtime observability state for a worker pool.
type PoolStats struct {
	ID        string
	Workers   int
	Queued    int
	Capacity  int
	Active    int
	Submitted int64
	Rejected  int64
	Completed int64
	Panicked  int64
	Running   bool
}
