// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/geo"
	"github.com/tomtom215/wayfarer/internal/insights"
	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/sentiment"
)

const samplePages = `{"allPages": [
	{"textData": "What a wonderful sunny day at the beach, we loved the amazing views", "location": "Lisbon, Portugal",
	 "updatedAt": "2024-07-14T10:00:00", "tags": ["beach", "food"],
	 "media": [{"type": "image", "value": "lisbon.jpg"}]},
	{"textData": "Museum morning then a quiet walk", "location": "Paris, France", "updatedAt": "2024-10-01T09:30:00",
	 "tags": ["museum"]},
	{"textData": 42, "location": "Paris, France"}
]}`

// testConfig returns defaults with rate limiting off so tests do not
// interfere with each other.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Security.RateLimitDisabled = true
	return cfg
}

func newTestHandler(t *testing.T, cfg *config.Config, scorer sentiment.Scorer) *Handler {
	t.Helper()
	if scorer == nil {
		scorer = sentiment.NewLexiconScorer(sentiment.DefaultLexicon())
	}
	engine := insights.NewEngine(cfg.Insights, scorer, geo.NewOfflineGeocoder(nil))
	h := NewHandler(engine, cfg, WithBackends("offline", scorer.Name()), WithVersion("test"))
	h.SetReady(true)
	return h
}

// newTestRouter returns the full routed handler.
func newTestRouter(t *testing.T, cfg *config.Config, scorer sentiment.Scorer) http.Handler {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	return NewRouter(newTestHandler(t, cfg, scorer), cfg).SetupChi()
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", rec.Body.String(), err)
	}
	return v
}

func assertFailure(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int) models.FailureResponse {
	t.Helper()
	if rec.Code != wantStatus {
		t.Fatalf("Expected status %d, got %d: %s", wantStatus, rec.Code, rec.Body.String())
	}
	body := decodeBody[models.FailureResponse](t, rec)
	if body.Status != models.StatusFailed {
		t.Errorf("Expected status %q, got %q", models.StatusFailed, body.Status)
	}
	if body.Error == "" {
		t.Error("Expected a non-empty error message")
	}
	return body
}

var errScorerDown = errors.New("scorer down")

func failingScorer() sentiment.Scorer {
	return sentiment.ScorerFunc(func(context.Context, string) (models.SentimentScore, error) {
		return models.NeutralScore, &models.ExternalServiceError{Service: "sentiment", Err: errScorerDown}
	})
}
