// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/wayfarer/internal/geo"
	"github.com/tomtom215/wayfarer/internal/middleware"
)

// HealthStatus is the body of the health endpoint.
type HealthStatus struct {
	Status    string                     `json:"status"`
	Version   string                     `json:"version"`
	Uptime    float64                    `json:"uptime_seconds"`
	Ready     bool                       `json:"ready"`
	Geocoder  string                     `json:"geocoder"`
	Sentiment string                     `json:"sentiment"`
	Sections  []string                   `json:"sections"`
	Requests  []middleware.EndpointStats `json:"requests"`
	// GeocodeCache is omitted when no geocoder is configured.
	GeocodeCache *geo.CacheStats `json:"geocode_cache,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}

// Health reports process status, the configured backends and recent
// request latencies.
//
// @Summary Get service health
// @Description Returns uptime, readiness, the configured backends, the available insight sections, geocode cache counters and latency percentiles for recent requests.
// @Tags Core
// @Produce json
// @Success 200 {object} HealthStatus "Health status"
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if !h.ready.Load() {
		status = "starting"
	}

	body := &HealthStatus{
		Status:    status,
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Ready:     h.ready.Load(),
		Geocoder:  h.geocoderName,
		Sentiment: h.scorerName,
		Sections:  h.engine.Sections(),
		Requests:  h.PerformanceMonitor().GetStats(),
		Timestamp: time.Now().UTC(),
	}
	if h.geocodeCache != nil {
		stats := h.geocodeCache.Stats()
		body.GeocodeCache = &stats
	}
	respondJSON(w, r, http.StatusOK, body)
}

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of readiness.
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]any{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests.
// Returns 503 until the server is accepting traffic and during shutdown.
//
// @Summary Readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} models.FailureResponse "Service is not ready"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.ready.Load() {
		respondFailure(w, r, http.StatusServiceUnavailable, "service not ready", nil)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"ready": true})
}
