// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/wayfarer/internal/metrics"
)

func TestPrometheusMetrics_UsesRoutePattern(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Post("/metrics-test/sections/{section}", PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodPost, "/metrics-test/sections/{section}", "404")
	before := testutil.ToFloat64(counter)

	for _, section := range []string{"weather", "tides", "moon"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/metrics-test/sections/"+section, nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("Expected 404, got %d", rec.Code)
		}
	}

	if got := testutil.ToFloat64(counter) - before; got != 3 {
		t.Errorf("Expected 3 requests under the route pattern, got %v", got)
	}
}

func TestPrometheusMetrics_FallsBackToPath(t *testing.T) {
	t.Parallel()

	handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-test/plain", "200")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/metrics-test/plain", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("Expected 1 request recorded, got %v", got)
	}
}

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantBytes  int64
	}{
		{
			name:       "implicit 200",
			write:      func(w http.ResponseWriter) { _, _ = w.Write([]byte("hello")) },
			wantStatus: http.StatusOK,
			wantBytes:  5,
		},
		{
			name:       "explicit status",
			write:      func(w http.ResponseWriter) { w.WriteHeader(http.StatusRequestEntityTooLarge) },
			wantStatus: http.StatusRequestEntityTooLarge,
		},
		{
			name: "first status wins",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusBadRequest)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := newStatusRecorder(httptest.NewRecorder())
			tt.write(rec)
			if rec.status != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.status, tt.wantStatus)
			}
			if rec.bytes != tt.wantBytes {
				t.Errorf("bytes = %d, want %d", rec.bytes, tt.wantBytes)
			}
		})
	}
}
