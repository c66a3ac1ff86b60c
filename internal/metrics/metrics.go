// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - API endpoint latency and throughput
// - Insight pipeline runs and per-analyzer health
// - Record normalization skips
// - Geocoder and sentiment scorer calls
// - Cache efficiency and circuit breakers

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Insight Pipeline Metrics
	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_pipeline_runs_total",
			Help: "Total number of insight pipeline runs",
		},
		[]string{"outcome"}, // "complete", "degraded"
	)

	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wayfarer_pipeline_duration_seconds",
			Help:    "Duration of a full insight pipeline run in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	PipelineEntries = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wayfarer_pipeline_entries",
			Help:    "Number of normalized entries per pipeline run",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	AnalyzerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wayfarer_analyzer_duration_seconds",
			Help:    "Duration of a single analyzer in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"analyzer"},
	)

	AnalyzerFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_analyzer_failures_total",
			Help: "Total number of analyzer failures that degraded a section to its default",
		},
		[]string{"analyzer", "kind"}, // kind: "error", "panic", "timeout", "external"
	)

	// Normalizer Metrics
	NormalizerSkippedFields = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_normalizer_skipped_fields_total",
			Help: "Total number of page fields dropped as malformed",
		},
		[]string{"field"},
	)

	// External Capability Metrics
	GeocoderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_geocoder_requests_total",
			Help: "Total number of geocoder lookups",
		},
		[]string{"provider", "result"}, // result: "found", "not_found", "error"
	)

	GeocoderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wayfarer_geocoder_duration_seconds",
			Help:    "Duration of geocoder lookups in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	SentimentRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_sentiment_requests_total",
			Help: "Total number of sentiment scorer calls",
		},
		[]string{"provider", "result"}, // result: "success", "error"
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "geocode", "geocode_store", "sentiment"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordPipelineRun records one full engine run.
func RecordPipelineRun(duration time.Duration, entries, failed int) {
	outcome := "complete"
	if failed > 0 {
		outcome = "degraded"
	}
	PipelineRuns.WithLabelValues(outcome).Inc()
	PipelineDuration.Observe(duration.Seconds())
	PipelineEntries.Observe(float64(entries))
}

// RecordAnalyzer records the outcome of one analyzer invocation.
// kind is empty on success, otherwise "error", "panic", "timeout" or
// "external" when a backing service failed.
func RecordAnalyzer(analyzer string, duration time.Duration, kind string) {
	AnalyzerDuration.WithLabelValues(analyzer).Observe(duration.Seconds())
	if kind != "" {
		AnalyzerFailures.WithLabelValues(analyzer, kind).Inc()
	}
}

// RecordGeocode records a geocoder lookup.
func RecordGeocode(provider, result string, duration time.Duration) {
	GeocoderRequests.WithLabelValues(provider, result).Inc()
	GeocoderDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordSentiment records a sentiment scorer call.
func RecordSentiment(provider string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	SentimentRequests.WithLabelValues(provider, result).Inc()
}

// RecordCacheLookup records a hit or miss for the given cache.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
		return
	}
	CacheMisses.WithLabelValues(cacheType).Inc()
}

// StatusLabel formats an HTTP status code as a metric label.
func StatusLabel(code int) string {
	return strconv.Itoa(code)
}
