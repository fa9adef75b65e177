package core

// CountingSemaphore maintains a non-negative counter with a blocking
// decrement (Wait) and a non-blocking increment (Post). The worker pool uses
// it as the "work available" signal: every successful enqueue is paired with
// exactly one Post, and every dequeue attempt is preceded by exactly one
// successful Wait.
//
// Unlike the POSIX primitive it is modeled on, a CountingSemaphore can be
// closed. Closing wakes every blocked waiter so that long-lived consumers can
// observe shutdown instead of sleeping forever. A closed semaphore still
// hands out any permits that were posted before the close; Wait only returns
// false once the semaphore is both closed and drained.
type CountingSemaphore struct {
	m      *Mutex
	cond   *ConditionVariable
	count  int
	closed bool
}

// NewCountingSemaphore creates a semaphore initialized to the given count.
// It returns a ResourceError if initial is negative.
func NewCountingSemaphore(initial int) (*CountingSemaphore, error) {
	if initial < 0 {
		return nil, &ResourceError{Op: "semaphore init", Reason: "negative initial count"}
	}
	return &CountingSemaphore{
		m:     NewMutex(),
		cond:  NewConditionVariable(),
		count: initial,
	}, nil
}

// Wait blocks until the count is positive, then atomically decrements it and
// returns true. It returns false only when the semaphore has been closed and
// no permits remain.
func (s *CountingSemaphore) Wait() bool {
	s.m.Acquire()
	for s.count == 0 && !s.closed {
		s.cond.Wait(s.m)
	}
	if s.count > 0 {
		s.count--
		s.m.Release()
		return true
	}
	s.m.Release()
	return false
}

// TryWait takes a permit without blocking. It returns false if none is
// available.
func (s *CountingSemaphore) TryWait() bool {
	s.m.Acquire()
	defer s.m.Release()
	if s.count == 0 {
		return false
	}
	s.count--
	return true
}

// Post atomically increments the count and, if any goroutine is blocked in
// Wait, unblocks exactly one of them.
func (s *CountingSemaphore) Post() {
	s.m.Acquire()
	s.count++
	s.cond.Signal()
	s.m.Release()
}

// Count returns the current permit count.
func (s *CountingSemaphore) Count() int {
	s.m.Acquire()
	defer s.m.Release()
	return s.count
}

// Drain discards all available permits and returns how many were discarded.
func (s *CountingSemaphore) Drain() int {
	s.m.Acquire()
	n := s.count
	s.count = 0
	s.m.Release()
	return n
}

// Close marks the semaphore closed and wakes all blocked waiters. Permits
// already posted remain consumable; once they are gone, Wait returns false.
// Closing an already closed semaphore is a no-op.
func (s *CountingSemaphore) Close() {
	s.m.Acquire()
	if !s.closed {
		s.closed = true
		s.cond.Broadcast()
	}
	s.m.Release()
}

// IsClosed reports whether Close has been called.
func (s *CountingSemaphore) IsClosed() bool {
	s.m.Acquire()
	defer s.m.Release()
	return s.closed
}
