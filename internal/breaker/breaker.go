// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package breaker wraps sony/gobreaker with the logging and Prometheus
// metrics shared by every external capability client (geocoder, sentiment).
package breaker

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/metrics"
)

// Config holds circuit breaker settings.
type Config struct {
	Name         string
	MaxRequests  uint32        // Requests allowed in half-open state
	Interval     time.Duration // Count reset period in closed state
	Timeout      time.Duration // Open state duration before half-open
	MinRequests  uint32        // Requests needed before the ratio is evaluated
	FailureRatio float64       // Failure ratio that opens the circuit
}

// DefaultConfig returns settings for a remote lookup service:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 30 second timeout before attempting recovery
// - Opens after 60% failure rate with minimum 5 requests
func DefaultConfig(name string) Config {
	return Config{
		Name:         name,
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
		MinRequests:  5,
		FailureRatio: 0.6,
	}
}

// Breaker protects calls returning T.
//
// The breaker uses real time (via sony/gobreaker) for its interval and
// timeout. Tests that need a deterministic breaker should exercise the
// wrapped client directly.
type Breaker[T any] struct {
	cb   *gobreaker.CircuitBreaker[T]
	name string
}

// New creates a breaker and registers its initial state metric.
func New[T any](cfg Config) *Breaker[T] {
	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(0) // 0 = closed

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				logging.Warn().
					Str("breaker", cfg.Name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		// A caller giving up is not a failure of the remote service.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := StateString(from), StateString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	}

	return &Breaker[T]{cb: gobreaker.NewCircuitBreaker[T](settings), name: cfg.Name}
}

// Execute runs fn unless the circuit is open.
func (b *Breaker[T]) Execute(fn func() (T, error)) (T, error) {
	result, err := b.cb.Execute(fn)
	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	case IsRejected(err):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		logging.Debug().Str("breaker", b.name).Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
	}
	return result, err
}

// State returns the current state as "closed", "half-open" or "open".
func (b *Breaker[T]) State() string {
	return StateString(b.cb.State())
}

// Name returns the breaker name used in logs and metrics.
func (b *Breaker[T]) Name() string {
	return b.name
}

// IsRejected reports whether err means the call was never attempted.
func IsRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// StateString converts a gobreaker state to its metric label.
func StateString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
