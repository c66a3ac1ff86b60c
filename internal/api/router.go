// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/middleware"
)

// Router wires the handlers to their routes.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router using the security settings in cfg.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFrom(&cfg.Security)),
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi builds the HTTP handler with every route and middleware.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.RequestLogger))
	r.Use(chimiddleware.RealIP)
	r.Use(RecoverJSON())
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondFailure(w, req, http.StatusNotFound, "not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondFailure(w, req, http.StatusMethodNotAllowed, "method not allowed", nil)
	})

	// Health
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Insights
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(router.handler.PerformanceMonitor().Middleware))
		r.Use(chiMiddleware(middleware.Compression))

		r.Post("/process-insights", router.handler.ProcessInsights)
		r.Route("/api/v1/insights", func(r chi.Router) {
			r.Post("/", router.handler.ProcessInsights)
			r.Post("/sections/{section}", router.handler.InsightSection)
			r.Post("/word-frequencies", router.handler.WordFrequencies)
		})
	})

	// Observability
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
