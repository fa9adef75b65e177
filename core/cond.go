package core

import (
	"sync"
	"time"
)

// waiter is a single parked goroutine. The channel is buffered so a signal
// delivered after the waiter registered but before it blocked is retained
// rather than lost.
type waiter chan struct{}

// ConditionVariable is a blocking wait/notify primitive used together with a
// Mutex to coordinate on a shared predicate without busy-waiting.
//
// The core contract: Wait atomically releases the held mutex and suspends the
// caller, and the caller reacquires the mutex before Wait returns. A Signal
// issued at any point after the release cannot be lost. Spurious wakeups are
// possible, so callers must re-check the guarded predicate in a loop:
//
//	m.Acquire()
//	for !predicate() {
//		cv.Wait(m)
//	}
//	// ... predicate holds, m is held ...
//	m.Release()
type ConditionVariable struct {
	mu      sync.Mutex
	waiters []waiter
}

// NewConditionVariable creates a new ConditionVariable.
func NewConditionVariable() *ConditionVariable {
	return &ConditionVariable{}
}

// Wait atomically releases m and suspends the caller until another goroutine
// calls Signal or Broadcast on this condition variable. The caller must hold
// m; m is reacquired before Wait returns.
func (cv *ConditionVariable) Wait(m *Mutex) {
	w := cv.enqueue()

	m.Release()
	<-w
	m.Acquire()
}

// TimedWait behaves like Wait but also returns after d has elapsed without a
// concurrent signal. It returns true if the waiter was signaled and false on
// timeout. When a signal and the timeout race, the signal wins: it is either
// consumed by this waiter (returning true) or left for another waiter, never
// swallowed. m is reacquired before TimedWait returns either way.
func (cv *ConditionVariable) TimedWait(m *Mutex, d time.Duration) bool {
	w := cv.enqueue()

	m.Release()

	timer := time.NewTimer(d)
	defer timer.Stop()

	signaled := false
	select {
	case <-w:
		signaled = true
	case <-timer.C:
		// A signal may have dequeued this waiter concurrently with the
		// timeout. If so, the notification is already in the channel and
		// belongs to us; take it so it is not lost.
		cv.mu.Lock()
		removed := cv.removeLocked(w)
		cv.mu.Unlock()
		if !removed {
			<-w
			signaled = true
		}
	}

	m.Acquire()
	return signaled
}

// Signal wakes at most one waiter. Calling Signal with no waiters is a no-op.
func (cv *ConditionVariable) Signal() {
	cv.mu.Lock()
	if len(cv.waiters) > 0 {
		w := cv.waiters[0]
		cv.waiters[0] = nil
		cv.waiters = cv.waiters[1:]
		w <- struct{}{}
	}
	cv.mu.Unlock()
}

// Broadcast wakes all current waiters.
func (cv *ConditionVariable) Broadcast() {
	cv.mu.Lock()
	for _, w := range cv.waiters {
		w <- struct{}{}
	}
	cv.waiters = nil
	cv.mu.Unlock()
}

// enqueue registers the caller as a waiter. Registration happens before the
// caller releases its mutex, which is what makes release-then-block atomic
// with respect to notification.
func (cv *ConditionVariable) enqueue() waiter {
	w := make(waiter, 1)
	cv.mu.Lock()
	cv.waiters = append(cv.waiters, w)
	cv.mu.Unlock()
	return w
}

// removeLocked removes w from the waiter list if still present.
// Returns false if w was already dequeued by a signal.
func (cv *ConditionVariable) removeLocked(w waiter) bool {
	for i, cand := range cv.waiters {
		if cand == w {
			cv.waiters = append(cv.waiters[:i], cv.waiters[i+1:]...)
			return true
		}
	}
	return false
}
