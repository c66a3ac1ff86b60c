// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package breaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/wayfarer/internal/metrics"
)

func testConfig(name string) Config {
	return Config{
		Name:         name,
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      100 * time.Millisecond,
		MinRequests:  2,
		FailureRatio: 0.5,
	}
}

func TestBreaker_Success(t *testing.T) {
	b := New[string](DefaultConfig("breaker-success"))

	got, err := b.Execute(func() (string, error) { return "ok", nil })
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != "ok" {
		t.Errorf("Execute() = %q, want ok", got)
	}
	if b.State() != "closed" {
		t.Errorf("State() = %q, want closed", b.State())
	}
	if b.Name() != "breaker-success" {
		t.Errorf("Name() = %q", b.Name())
	}
	if v := testutil.ToFloat64(metrics.CircuitBreakerRequests.WithLabelValues("breaker-success", "success")); v != 1 {
		t.Errorf("success requests = %v, want 1", v)
	}
}

func TestBreaker_OpensAfterFailures(t *testing.T) {
	b := New[int](testConfig("breaker-open"))
	failure := errors.New("remote down")

	for i := 0; i < 2; i++ {
		if _, err := b.Execute(func() (int, error) { return 0, failure }); !errors.Is(err, failure) {
			t.Fatalf("call %d error = %v, want %v", i, err, failure)
		}
	}

	called := false
	_, err := b.Execute(func() (int, error) {
		called = true
		return 1, nil
	})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Execute() error = %v, want ErrOpenState", err)
	}
	if !IsRejected(err) {
		t.Error("IsRejected() = false for open circuit error")
	}
	if called {
		t.Error("function ran while circuit was open")
	}
	if b.State() != "open" {
		t.Errorf("State() = %q, want open", b.State())
	}
	if v := testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues("breaker-open")); v != 2 {
		t.Errorf("state gauge = %v, want 2 (open)", v)
	}
}

func TestBreaker_Recovery(t *testing.T) {
	b := New[string](testConfig("breaker-recovery"))
	for i := 0; i < 2; i++ {
		_, _ = b.Execute(func() (string, error) { return "", errors.New("fail") })
	}
	if b.State() != "open" {
		t.Fatalf("State() = %q, want open", b.State())
	}

	time.Sleep(150 * time.Millisecond)

	got, err := b.Execute(func() (string, error) { return "recovered", nil })
	if err != nil {
		t.Fatalf("Execute() after timeout error = %v", err)
	}
	if got != "recovered" {
		t.Errorf("Execute() = %q, want recovered", got)
	}
	if b.State() != "closed" {
		t.Errorf("State() = %q, want closed", b.State())
	}
}

func TestBreaker_CanceledCallsDoNotTrip(t *testing.T) {
	b := New[int](testConfig("breaker-canceled"))

	for i := 0; i < 5; i++ {
		_, err := b.Execute(func() (int, error) { return 0, context.Canceled })
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Execute() error = %v, want context.Canceled", err)
		}
	}
	if b.State() != "closed" {
		t.Errorf("State() = %q, want closed", b.State())
	}
}

func TestStateString(t *testing.T) {
	t.Parallel()

	tests := map[gobreaker.State]string{
		gobreaker.StateClosed:   "closed",
		gobreaker.StateHalfOpen: "half-open",
		gobreaker.StateOpen:     "open",
		gobreaker.State(42):     "unknown",
	}
	for state, want := range tests {
		if got := StateString(state); got != want {
			t.Errorf("StateString(%d) = %q, want %q", state, got, want)
		}
	}
}
