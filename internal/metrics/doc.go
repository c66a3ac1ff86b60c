// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed by the API router at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
  - api_active_requests: In-flight requests (gauge)

Pipeline Metrics:
  - wayfarer_pipeline_runs_total: Engine runs (counter)
    Labels: outcome (complete, degraded)
  - wayfarer_pipeline_duration_seconds: Engine run latency (histogram)
  - wayfarer_pipeline_entries: Entries per run (histogram)
  - wayfarer_analyzer_duration_seconds: Per analyzer latency (histogram)
    Labels: analyzer
  - wayfarer_analyzer_failures_total: Sections degraded to defaults (counter)
    Labels: analyzer, kind (error, panic, timeout, external)
  - wayfarer_normalizer_skipped_fields_total: Malformed page fields (counter)
    Labels: field

External Capability Metrics:
  - wayfarer_geocoder_requests_total: Geocoder lookups (counter)
    Labels: provider, result (found, not_found, error)
  - wayfarer_geocoder_duration_seconds: Geocoder latency (histogram)
  - wayfarer_sentiment_requests_total: Scorer calls (counter)
    Labels: provider, result

Cache and Circuit Breaker Metrics:
  - cache_hits_total, cache_misses_total (counter)
    Labels: cache_type (geocode, geocode_store, sentiment)
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Labels name, result
  - circuit_breaker_state_transitions_total: Labels name, from_state, to_state
*/
package metrics
