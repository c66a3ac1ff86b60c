// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/models"
)

// Response headers set by the insight handlers.
const (
	HeaderDegraded      = "X-Insights-Degraded"
	HeaderSkippedFields = "X-Insights-Skipped-Fields"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON marshals v and writes it with the given status.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		status = http.StatusInternalServerError
		data = []byte(`{"error":"failed to encode response","status":"failed"}`)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// respondFailure writes the failure body. err, when given, is logged but
// never sent to the client.
func respondFailure(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.
			Int("status", status).
			Str("path", r.URL.Path).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("Request failed")
	}
	respondJSON(w, r, status, &models.FailureResponse{Error: message, Status: models.StatusFailed})
}

// setDegraded lists failed sections in the degraded header.
func setDegraded(w http.ResponseWriter, failed []string) {
	if len(failed) > 0 {
		w.Header().Set(HeaderDegraded, strings.Join(failed, ","))
	}
}
