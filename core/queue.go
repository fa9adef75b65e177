package core

const (
	defaultQueueCap     = 16
	compactMinCap       = 64 // Don't compact if capacity is less than this
	compactShrinkFactor = 4  // Trigger compaction when len < cap/4
)

// workQueue is a bounded FIFO of task handles. Insertion only at the tail,
// removal only at the head.
//
// The queue is deliberately not synchronized: the owning pool's Mutex is its
// only guard, and no code path may touch it without holding that lock.
type workQueue struct {
	tasks    []Task
	maxDepth int
}

func newWorkQueue(maxDepth int) *workQueue {
	capHint := maxDepth
	if capHint > defaultQueueCap {
		capHint = defaultQueueCap
	}
	return &workQueue{
		tasks:    make([]Task, 0, capHint),
		maxDepth: maxDepth,
	}
}

// push appends t at the tail. It returns false when the queue is at capacity.
func (q *workQueue) push(t Task) bool {
	if len(q.tasks) >= q.maxDepth {
		return false
	}
	q.tasks = append(q.tasks, t)
	return true
}

// pop removes and returns the head task.
func (q *workQueue) pop() (Task, bool) {
	if len(q.tasks) == 0 {
		return nil, false
	}

	t := q.tasks[0]
	// Zero out the slot in the underlying array to release the task reference
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]
	q.maybeCompact()

	return t, true
}

func (q *workQueue) len() int {
	return len(q.tasks)
}

func (q *workQueue) full() bool {
	return len(q.tasks) >= q.maxDepth
}

// clear removes all queued tasks and releases their references.
func (q *workQueue) clear() {
	q.tasks = make([]Task, 0, defaultQueueCap)
}

// maybeCompact reallocates the backing array once the live window has shrunk
// well below capacity, so repeated head-slicing doesn't pin memory.
func (q *workQueue) maybeCompact() {
	n := len(q.tasks)
	c := cap(q.tasks)

	if c < compactMinCap {
		return
	}
	if n == 0 {
		q.tasks = make([]Task, 0, defaultQueueCap)
		return
	}
	if n*compactShrinkFactor >= c {
		return
	}

	newCap := max(max(c/2, defaultQueueCap), n)

	newSlice := make([]Task, n, newCap)
	copy(newSlice, q.tasks)
	q.tasks = newSlice
}
