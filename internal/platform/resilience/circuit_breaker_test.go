package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	t.Parallel()

	breaker := NewCircuitBreaker(3, time.Minute, 1)

	for i := 0; i < 2; i++ {
		breaker.RecordFailure()
		if err := breaker.Allow(); err != nil {
			t.Fatalf("breaker opened early after %d failures: %v", i+1, err)
		}
	}

	breaker.RecordFailure()
	if err := breaker.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if breaker.State() != CircuitStateOpen {
		t.Fatalf("state = %s, want open", breaker.State())
	}
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	t.Parallel()

	breaker := NewCircuitBreaker(2, time.Minute, 1)

	breaker.RecordFailure()
	breaker.RecordSuccess()
	breaker.RecordFailure()

	if err := breaker.Allow(); err != nil {
		t.Fatalf("expected closed circuit after interleaved success: %v", err)
	}
}

func TestCircuitBreaker_HalfOpenAfterTimeout(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	breaker := NewCircuitBreaker(1, 15*time.Second, 1)
	breaker.now = func() time.Time { return now }

	breaker.RecordFailure()
	if err := breaker.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}

	now = now.Add(16 * time.Second)
	if err := breaker.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass: %v", err)
	}
	// A second probe above the half-open budget is rejected.
	if err := breaker.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected half-open budget exhaustion, got %v", err)
	}
}

func TestCircuitBreaker_HalfOpenSuccessCloses(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	breaker := NewCircuitBreaker(1, 15*time.Second, 1)
	breaker.now = func() time.Time { return now }

	breaker.RecordFailure()
	now = now.Add(16 * time.Second)

	if err := breaker.Allow(); err != nil {
		t.Fatalf("half-open probe: %v", err)
	}
	breaker.RecordSuccess()

	if breaker.State() != CircuitStateClosed {
		t.Fatalf("state = %s, want closed", breaker.State())
	}
	if err := breaker.Allow(); err != nil {
		t.Fatalf("expected closed circuit: %v", err)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	breaker := NewCircuitBreaker(1, 15*time.Second, 1)
	breaker.now = func() time.Time { return now }

	breaker.RecordFailure()
	now = now.Add(16 * time.Second)

	if err := breaker.Allow(); err != nil {
		t.Fatalf("half-open probe: %v", err)
	}
	breaker.RecordFailure()

	if err := breaker.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected reopened circuit, got %v", err)
	}
}

func TestNormalizeCircuitBreakerConfig(t *testing.T) {
	t.Parallel()

	cfg := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true})
	defaults := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold != defaults.FailureThreshold {
		t.Fatalf("FailureThreshold = %d", cfg.FailureThreshold)
	}
	if cfg.OpenTimeout != defaults.OpenTimeout {
		t.Fatalf("OpenTimeout = %s", cfg.OpenTimeout)
	}
	if cfg.HalfOpenMaxReq != defaults.HalfOpenMaxReq {
		t.Fatalf("HalfOpenMaxReq = %d", cfg.HalfOpenMaxReq)
	}

	custom := CircuitBreakerConfig{Enabled: true, FailureThreshold: 9, OpenTimeout: time.Minute, HalfOpenMaxReq: 4}
	if got := NormalizeCircuitBreakerConfig(custom); got != custom {
		t.Fatalf("expected custom config untouched, got %+v", got)
	}
}
