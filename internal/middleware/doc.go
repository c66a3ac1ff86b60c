// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package middleware provides the HTTP middleware used by the insights API.

Every middleware has the signature func(http.HandlerFunc) http.HandlerFunc.
The api package adapts them to chi's func(http.Handler) http.Handler.

Key Components:

  - RequestID: X-Request-ID propagation plus a correlation ID in the logging context
  - RequestLogger: one structured log line per request
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by route pattern
  - Compression: gzip for clients sending Accept-Encoding: gzip
  - PerformanceMonitor: sliding window latency percentiles served by the health endpoint

Usage:

	perf := middleware.NewPerformanceMonitor(1000, 2*time.Second)
	handler := middleware.RequestID(
	    middleware.RequestLogger(
	        middleware.PrometheusMetrics(
	            perf.Middleware(middleware.Compression(insightsHandler)),
	        ),
	    ),
	)

Thread Safety:

All middleware is safe for concurrent use. PerformanceMonitor guards its
window with a sync.RWMutex; gzip writers come from a sync.Pool.
*/
package middleware
