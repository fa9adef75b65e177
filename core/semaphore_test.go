package core

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// TestNewCountingSemaphore_NegativeInitial verifies construction validation
// Given: a negative initial count
// When: NewCountingSemaphore is called
// Then: it returns a ResourceError and no semaphore
func TestNewCountingSemaphore_NegativeInitial(t *testing.T) {
	s, err := NewCountingSemaphore(-1)

	if s != nil {
		t.Error("semaphore = non-nil, want nil on error")
	}
	var resErr *ResourceError
	if !errors.As(err, &resErr) {
		t.Errorf("error = %v, want *ResourceError", err)
	}
}

// TestCountingSemaphore_WaitPostPairing verifies count bookkeeping
// Given: a semaphore initialized to 2
// When: Wait is called twice and TryWait once more
// Then: both Waits succeed immediately and the TryWait fails
func TestCountingSemaphore_WaitPostPairing(t *testing.T) {
	s, err := NewCountingSemaphore(2)
	if err != nil {
		t.Fatalf("NewCountingSemaphore failed: %v", err)
	}

	if !s.Wait() {
		t.Error("first Wait = false, want true")
	}
	if !s.Wait() {
		t.Error("second Wait = false, want true")
	}
	if s.TryWait() {
		t.Error("TryWait on empty semaphore = true, want false")
	}
	if got := s.Count(); got != 0 {
		t.Errorf("count = %d, want 0", got)
	}
}

// TestCountingSemaphore_WaitBlocksUntilPost verifies the blocking decrement
// Given: a semaphore with zero count and a goroutine blocked in Wait
// When: Post is called
// Then: the waiter is unblocked and takes the permit
func TestCountingSemaphore_WaitBlocksUntilPost(t *testing.T) {
	// Arrange
	s, err := NewCountingSemaphore(0)
	if err != nil {
		t.Fatalf("NewCountingSemaphore failed: %v", err)
	}
	got := make(chan bool, 1)

	go func() {
		got <- s.Wait()
	}()

	// Assert - Wait must still be blocked with a zero count
	select {
	case <-got:
		t.Fatal("Wait returned on a zero-count semaphore without Post")
	case <-time.After(50 * time.Millisecond):
	}

	// Act
	s.Post()

	// Assert
	select {
	case ok := <-got:
		if !ok {
			t.Error("Wait = false, want true after Post")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after Post")
	}
	if got := s.Count(); got != 0 {
		t.Errorf("count = %d, want 0 after paired Wait/Post", got)
	}
}

// TestCountingSemaphore_PostWakesExactlyOne verifies one wakeup per Post
// Given: 3 goroutines blocked in Wait
// When: Post is called once
// Then: exactly one waiter proceeds
func TestCountingSemaphore_PostWakesExactlyOne(t *testing.T) {
	s, err := NewCountingSemaphore(0)
	if err != nil {
		t.Fatalf("NewCountingSemaphore failed: %v", err)
	}
	proceeded := make(chan bool, 3)

	for i := 0; i < 3; i++ {
		go func() {
			proceeded <- s.Wait()
		}()
	}
	// Let the waiters park.
	time.Sleep(50 * time.Millisecond)

	s.Post()

	select {
	case ok := <-proceeded:
		if !ok {
			t.Error("Wait = false, want true")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no waiter proceeded after Post")
	}
	select {
	case <-proceeded:
		t.Fatal("single Post unblocked more than one waiter")
	case <-time.After(50 * time.Millisecond):
	}

	// Cleanup
	s.Close()
	for i := 0; i < 2; i++ {
		<-proceeded
	}
}

// TestCountingSemaphore_CloseWakesAllWaiters verifies the shutdown extension
// Given: 4 goroutines blocked in Wait on a zero-count semaphore
// When: Close is called
// Then: every waiter returns false promptly
func TestCountingSemaphore_CloseWakesAllWaiters(t *testing.T) {
	s, err := NewCountingSemaphore(0)
	if err != nil {
		t.Fatalf("NewCountingSemaphore failed: %v", err)
	}
	var returnedFalse atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !s.Wait() {
				returnedFalse.Add(1)
			}
		}()
	}
	time.Sleep(50 * time.Millisecond)

	s.Close()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("waiters still blocked after Close")
	}

	if got := returnedFalse.Load(); got != 4 {
		t.Errorf("waiters returning false = %d, want 4", got)
	}
}

// TestCountingSemaphore_ClosedDrainsRemainingPermits verifies drain-then-false
// Given: a semaphore with 2 permits that is then closed
// When: Wait is called three times
// Then: the first two return true (permits drained), the third returns false
func TestCountingSemaphore_ClosedDrainsRemainingPermits(t *testing.T) {
	s, err := NewCountingSemaphore(0)
	if err != nil {
		t.Fatalf("NewCountingSemaphore failed: %v", err)
	}
	s.Post()
	s.Post()

	s.Close()

	if !s.Wait() {
		t.Error("first Wait after Close = false, want true (permit remained)")
	}
	if !s.Wait() {
		t.Error("second Wait after Close = false, want true (permit remained)")
	}
	if s.Wait() {
		t.Error("third Wait after Close = true, want false (closed and drained)")
	}
}

// TestCountingSemaphore_Drain verifies bulk permit disposal
// Given: a semaphore with 3 permits
// When: Drain is called
// Then: it returns 3 and the count drops to zero
func TestCountingSemaphore_Drain(t *testing.T) {
	s, err := NewCountingSemaphore(3)
	if err != nil {
		t.Fatalf("NewCountingSemaphore failed: %v", err)
	}

	if got := s.Drain(); got != 3 {
		t.Errorf("Drain = %d, want 3", got)
	}
	if got := s.Count(); got != 0 {
		t.Errorf("count after Drain = %d, want 0", got)
	}
	if s.TryWait() {
		t.Error("TryWait after Drain = true, want false")
	}
}
