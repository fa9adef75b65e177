package core

import "sync"

// Mutex is an exclusive lock guarding a critical section.
//
// It wraps the runtime lock so the pool's locking discipline has a single
// named type, mirroring the layering of ConditionVariable and
// CountingSemaphore. No re-entrancy is supported: acquiring a Mutex the
// caller already owns deadlocks.
type Mutex struct {
	mu sync.Mutex
}

// NewMutex creates a new unlocked Mutex.
func NewMutex() *Mutex {
	return &Mutex{}
}

// Acquire blocks the calling goroutine until exclusive ownership is obtained.
func (m *Mutex) Acquire() {
	m.mu.Lock()
}

// Release relinquishes ownership. It must be called by the same logical
// owner that acquired the lock.
func (m *Mutex) Release() {
	m.mu.Unlock()
}

// TryAcquire attempts to take ownership without blocking.
// It returns true if the lock was acquired.
func (m *Mutex) TryAcquire() bool {
	return m.mu.TryLock()
}
