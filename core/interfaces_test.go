package core

import (
	"testing"
	"time"
)

func TestDefaultPanicHandler(t *testing.T) {
	// Given: A DefaultPanicHandler
	handler := &DefaultPanicHandler{}

	// When: HandlePanic is called
	handler.HandlePanic("test-pool", 42, "test panic", []byte("stack trace"))

	// Then: No panic should occur (handler should not crash)
	// This is just a sanity test to ensure the handler works
}

func TestNilMetrics(t *testing.T) {
	// Given: A NilMetrics
	metrics := &NilMetrics{}

	// When: All methods are called
	metrics.RecordTaskDuration("test-pool", time.Second)
	metrics.RecordTaskPanic("test-pool", "panic")
	metrics.RecordQueueDepth("test-pool", 10)
	metrics.RecordTaskRejected("test-pool", RejectReasonShutdown)

	// Then: No panic should occur (all methods are no-ops)
	// This is just a sanity test to ensure the no-op implementation works
}

func TestDefaultRejectedTaskHandler(t *testing.T) {
	// Given: A DefaultRejectedTaskHandler
	handler := &DefaultRejectedTaskHandler{}

	// When: HandleRejectedTask is called
	handler.HandleRejectedTask("test-pool", RejectReasonQueueFull)

	// Then: No panic should occur (handler should not crash)
	// This is just a sanity test to ensure the handler works
}

func TestDefaultWorkerPoolConfig(t *testing.T) {
	// Given: Default config
	config := DefaultWorkerPoolConfig()

	// Then: All handlers should be non-nil
	if config.ID == "" {
		t.Error("ID should not be empty")
	}
	if config.PanicHandler == nil {
		t.Error("PanicHandler should not be nil")
	}
	if config.Metrics == nil {
		t.Error("Metrics should not be nil")
	}
	if config.RejectedTaskHandler == nil {
		t.Error("RejectedTaskHandler should not be nil")
	}
	if config.Logger == nil {
		t.Error("Logger should not be nil")
	}

	// Verify types
	if _, ok := config.PanicHandler.(*DefaultPanicHandler); !ok {
		t.Errorf("PanicHandler should be *DefaultPanicHandler, got %T", config.PanicHandler)
	}
	if _, ok := config.Metrics.(*NilMetrics); !ok {
		t.Errorf("Metrics should be *NilMetrics, got %T", config.Metrics)
	}
	if _, ok := config.RejectedTaskHandler.(*DefaultRejectedTaskHandler); !ok {
		t.Errorf("RejectedTaskHandler should be *DefaultRejectedTaskHandler, got %T", config.RejectedTaskHandler)
	}
}

func TestWorkerPoolConfig_PartialConfig(t *testing.T) {
	// Given: Partial config (only Metrics set)
	metrics := &NilMetrics{}
	config := &WorkerPoolConfig{
		Metrics: metrics,
	}

	// When: A pool is created with the partial config
	pool, err := NewWorkerPool(1, 1, config)
	if err != nil {
		t.Fatalf("NewWorkerPool failed: %v", err)
	}
	defer pool.Stop()

	// Then: Unset fields fall back to defaults instead of staying nil
	if pool.metrics != metrics {
		t.Error("Metrics not taken from config")
	}
	if pool.panicHandler == nil {
		t.Error("PanicHandler default not applied")
	}
	if pool.rejectedTaskHandler == nil {
		t.Error("RejectedTaskHandler default not applied")
	}
	if pool.logger == nil {
		t.Error("Logger default not applied")
	}
	if pool.id == "" {
		t.Error("ID default not applied")
	}
}
