// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/wayfarer/internal/metrics"
)

// PrometheusMetrics records request count, latency and in-flight requests.
// The endpoint label is the chi route pattern, so path parameters such as
// the section name do not create a new series per value.
func PrometheusMetrics(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		start := time.Now()
		rec := newStatusRecorder(w)

		next(rec, r)

		metrics.RecordAPIRequest(
			r.Method,
			routePattern(r),
			metrics.StatusLabel(rec.status),
			time.Since(start),
		)
	}
}

// routePattern returns the matched chi pattern, or the raw path outside a
// chi router.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
