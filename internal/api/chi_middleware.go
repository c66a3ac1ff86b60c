// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/middleware"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	// CORS configuration
	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSExposedHeaders   []string
	CORSAllowCredentials bool
	CORSMaxAge           int // seconds

	// Rate limiting configuration
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
}

// DefaultChiMiddlewareConfig returns the defaults. CORS origins default to
// empty, requiring explicit configuration.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{},
		CORSAllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		CORSAllowedHeaders: []string{"Content-Type", "Accept", middleware.RequestIDHeader},
		CORSExposedHeaders: []string{middleware.RequestIDHeader, HeaderDegraded, HeaderSkippedFields},
		CORSMaxAge:         86400,

		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	}
}

// ChiMiddlewareConfigFrom builds the middleware configuration from the
// security section of the application config.
func ChiMiddlewareConfigFrom(sec *config.SecurityConfig) *ChiMiddlewareConfig {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = sec.CORSOrigins
	cfg.RateLimitRequests = sec.RateLimitReqs
	cfg.RateLimitWindow = sec.RateLimitWindow
	cfg.RateLimitDisabled = sec.RateLimitDisabled
	return cfg
}

// ChiMiddleware provides Chi-compatible middleware factories.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates a new Chi middleware factory with the given configuration.
func NewChiMiddleware(cfg *ChiMiddlewareConfig) *ChiMiddleware {
	if cfg == nil {
		cfg = DefaultChiMiddlewareConfig()
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   cfg.CORSAllowedMethods,
		AllowedHeaders:   cfg.CORSAllowedHeaders,
		ExposedHeaders:   cfg.CORSExposedHeaders,
		AllowCredentials: cfg.CORSAllowCredentials,
		MaxAge:           cfg.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: cfg,
		cors:   corsHandler,
	}
}

// CORS returns the go-chi/cors middleware.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit returns the per-IP limiter for the insight endpoints.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitConfig{Requests: m.config.RateLimitRequests, Window: m.config.RateLimitWindow})
}

// RateLimitConfig defines rate limit parameters for specific endpoints.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// RateLimitHealth is permissive so monitoring can poll frequently.
var RateLimitHealth = RateLimitConfig{Requests: 1000, Window: time.Minute}

// RateLimitCustom returns a per-IP rate limiter. Rejections use the
// standard failure body.
func (m *ChiMiddleware) RateLimitCustom(limit RateLimitConfig) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		limit.Requests,
		limit.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			respondFailure(w, r, http.StatusTooManyRequests, "rate limit exceeded", nil)
		}),
	)
}

// RateLimitHealth returns the limiter for health endpoints.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitHealth)
}

// APISecurityHeaders adds security headers to API responses.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RecoverJSON recovers a panic raised outside the analyzers, logs it with
// the stack and answers 500 with the standard failure body. Analyzer panics
// never get here; the engine isolates them per section.
func RecoverJSON() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				logging.Ctx(r.Context()).Error().
					Str("panic", fmt.Sprint(rec)).
					Bytes("stack", debug.Stack()).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("Recovered from panic")
				respondFailure(w, r, http.StatusInternalServerError, "internal server error", nil)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
