// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/geo"
	"github.com/tomtom215/wayfarer/internal/insights"
	"github.com/tomtom215/wayfarer/internal/middleware"
	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/normalize"
)

// Handler serves the insight endpoints.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, shared pipeline step
//   - handlers_insights.go: report, section and word frequency endpoints
//   - handlers_health.go: health and probe endpoints
type Handler struct {
	engine     *insights.Engine
	normalizer *normalize.Normalizer
	config     *config.Config
	perfMon    *middleware.PerformanceMonitor
	startTime  time.Time
	version    string

	// Names of the collaborators, reported by the health endpoint.
	geocoderName string
	scorerName   string
	geocodeCache GeocodeCache

	ready atomic.Bool
}

// HandlerOption configures optional Handler fields.
type HandlerOption func(*Handler)

// WithBackends records which geocoder and scorer the engine was built with.
func WithBackends(geocoder, scorer string) HandlerOption {
	return func(h *Handler) {
		h.geocoderName = geocoder
		h.scorerName = scorer
	}
}

// GeocodeCache is the part of geo.CachedGeocoder the health endpoint reads.
type GeocodeCache interface {
	Stats() geo.CacheStats
}

// WithGeocodeCache reports the geocode cache counters on the health endpoint.
func WithGeocodeCache(c GeocodeCache) HandlerOption {
	return func(h *Handler) {
		h.geocodeCache = c
	}
}

// WithVersion sets the version reported by the health endpoint.
func WithVersion(version string) HandlerOption {
	return func(h *Handler) {
		h.version = version
	}
}

// NewHandler creates the API handler. The handler starts not ready; call
// SetReady once the server is listening.
//
//	engine := insights.NewEngine(cfg.Insights, scorer, geocoder)
//	handler := api.NewHandler(engine, cfg)
//	router := api.NewRouter(handler, cfg)
func NewHandler(engine *insights.Engine, cfg *config.Config, opts ...HandlerOption) *Handler {
	h := &Handler{
		engine:       engine,
		normalizer:   normalize.New(),
		config:       cfg,
		perfMon:      middleware.NewPerformanceMonitor(1000, 2*time.Second),
		startTime:    time.Now(),
		version:      "dev",
		geocoderName: "none",
		scorerName:   "unknown",
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SetReady flips the readiness probe.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// PerformanceMonitor returns the monitor fed by the API route middleware.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perfMon
}

// entries normalizes the request pages. Dropped fields are reported in a
// response header; they never fail the request.
func (h *Handler) entries(ctx context.Context, req *InsightsRequest) ([]models.Entry, int) {
	result := h.normalizer.Normalize(ctx, req.AllPages)
	return result.Entries, len(result.Skipped)
}
