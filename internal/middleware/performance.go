// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/wayfarer/internal/logging"
)

// RequestMetrics is one observed request.
type RequestMetrics struct {
	Path       string
	Method     string
	DurationMS int64
	StatusCode int
	Timestamp  time.Time
}

// PerformanceMonitor keeps a sliding window of recent requests and
// reports latency percentiles per endpoint. The health endpoint serves
// its stats so an operator can spot slow insight runs without Prometheus.
type PerformanceMonitor struct {
	mu              sync.RWMutex
	metrics         []RequestMetrics
	maxMetrics      int
	slowThresholdMS int64
}

// EndpointStats contains aggregated statistics for an endpoint
type EndpointStats struct {
	Endpoint     string  `json:"endpoint"`
	RequestCount int64   `json:"request_count"`
	AvgDuration  float64 `json:"avg_ms"`
	P50Duration  int64   `json:"p50_ms"`
	P95Duration  int64   `json:"p95_ms"`
	P99Duration  int64   `json:"p99_ms"`
	MaxDuration  int64   `json:"max_ms"`
}

// NewPerformanceMonitor keeps the last maxMetrics requests and logs any
// request slower than slowThreshold.
func NewPerformanceMonitor(maxMetrics int, slowThreshold time.Duration) *PerformanceMonitor {
	if maxMetrics <= 0 {
		maxMetrics = 1000
	}
	return &PerformanceMonitor{
		metrics:         make([]RequestMetrics, 0, maxMetrics),
		maxMetrics:      maxMetrics,
		slowThresholdMS: slowThreshold.Milliseconds(),
	}
}

// RecordRequest adds a request metric
func (pm *PerformanceMonitor) RecordRequest(metric *RequestMetrics) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.metrics = append(pm.metrics, *metric)
	if len(pm.metrics) > pm.maxMetrics {
		pm.metrics = pm.metrics[1:]
	}
}

// GetStats returns per-endpoint statistics over the window, busiest first.
func (pm *PerformanceMonitor) GetStats() []EndpointStats {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	endpointMetrics := make(map[string][]int64)
	for _, m := range pm.metrics {
		key := m.Method + " " + m.Path
		endpointMetrics[key] = append(endpointMetrics[key], m.DurationMS)
	}

	stats := make([]EndpointStats, 0, len(endpointMetrics))
	for endpoint, durations := range endpointMetrics {
		sorted := make([]int64, len(durations))
		copy(sorted, durations)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		var sum int64
		for _, d := range sorted {
			sum += d
		}

		stats = append(stats, EndpointStats{
			Endpoint:     endpoint,
			RequestCount: int64(len(sorted)),
			AvgDuration:  float64(sum) / float64(len(sorted)),
			P50Duration:  percentile(sorted, 0.50),
			P95Duration:  percentile(sorted, 0.95),
			P99Duration:  percentile(sorted, 0.99),
			MaxDuration:  sorted[len(sorted)-1],
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].RequestCount != stats[j].RequestCount {
			return stats[i].RequestCount > stats[j].RequestCount
		}
		return stats[i].Endpoint < stats[j].Endpoint
	})

	return stats
}

// GetRecentMetrics returns the most recent N metrics
func (pm *PerformanceMonitor) GetRecentMetrics(n int) []RequestMetrics {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	if n > len(pm.metrics) {
		n = len(pm.metrics)
	}

	recent := make([]RequestMetrics, n)
	copy(recent, pm.metrics[len(pm.metrics)-n:])
	return recent
}

// Middleware records every request passing through it.
func (pm *PerformanceMonitor) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next(rec, r)

		duration := time.Since(start).Milliseconds()
		path := routePattern(r)
		pm.RecordRequest(&RequestMetrics{
			Path:       path,
			Method:     r.Method,
			DurationMS: duration,
			StatusCode: rec.status,
			Timestamp:  time.Now(),
		})

		if pm.slowThresholdMS > 0 && duration > pm.slowThresholdMS {
			logging.Ctx(r.Context()).Warn().
				Str("method", r.Method).
				Str("path", path).
				Int64("duration_ms", duration).
				Int64("threshold_ms", pm.slowThresholdMS).
				Msg("Slow request detected")
		}
	}
}

// percentile calculates the percentile value from a sorted slice
func percentile(sorted []int64, p float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	index := int(float64(len(sorted)-1) * p)
	return sorted[index]
}
