// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/wayfarer/internal/logging"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds IDs accepted from upstream proxies.
const maxRequestIDLength = 128

// RequestID assigns every request an ID, echoes it in the response header
// and stores it, with a fresh correlation ID, in the logging context. An ID
// supplied by an upstream proxy is kept.
func RequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		ctx = logging.ContextWithNewCorrelationID(ctx)

		next(w, r.WithContext(ctx))
	}
}

// RequestLogger logs one line per request once the handler returns. It
// must run inside RequestID so the line carries the request ID.
func RequestLogger(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next(rec, r)

		logger := logging.Ctx(r.Context())
		event := logger.Info()
		switch {
		case rec.status >= http.StatusInternalServerError:
			event = logger.Error()
		case rec.status >= http.StatusBadRequest:
			event = logger.Warn()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Int64("bytes", rec.bytes).
			Dur("duration", time.Since(start)).
			Msg("HTTP request")
	}
}
