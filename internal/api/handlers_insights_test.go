// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/models"
)

func TestProcessInsights_FullReport(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil, nil)
	for _, path := range []string{"/api/v1/insights", "/process-insights"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()
			rec := postJSON(t, router, path, samplePages)
			if rec.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if got := rec.Header().Get(HeaderDegraded); got != "" {
				t.Errorf("Expected no degraded sections, got %q", got)
			}
			if got := rec.Header().Get(HeaderSkippedFields); got != "1" {
				t.Errorf("Expected 1 skipped field, got %q", got)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
				t.Errorf("Expected JSON content type, got %q", ct)
			}

			report := decodeBody[models.Report](t, rec)
			if report.Status != models.StatusSuccess {
				t.Errorf("status = %q", report.Status)
			}
			if report.UniqueLocationsCount != 2 {
				t.Errorf("unique_locations_count = %d, want 2", report.UniqueLocationsCount)
			}
			if len(report.Sentiment.Timeline) != 2 {
				t.Errorf("Expected 2 timeline points, got %d", len(report.Sentiment.Timeline))
			}
			if report.SeasonalPatterns.MostCommonSeason != "Summer" {
				t.Errorf("most_common_season = %q, want Summer", report.SeasonalPatterns.MostCommonSeason)
			}
			if len(report.PhotoTimeline) != 1 || report.PhotoTimeline[0].Image != "lisbon.jpg" {
				t.Errorf("Unexpected photo timeline %+v", report.PhotoTimeline)
			}
			if report.TotalDistanceKm < 1000 {
				t.Errorf("total_distance_km = %v, want Lisbon to Paris", report.TotalDistanceKm)
			}
		})
	}
}

func TestProcessInsights_EmptyPages(t *testing.T) {
	t.Parallel()

	rec := postJSON(t, newTestRouter(t, nil, nil), "/api/v1/insights", `{"allPages": []}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"unique_locations_count", "total_distance_km"} {
		if string(raw[key]) != "0" {
			t.Errorf("%s = %s, want 0", key, raw[key])
		}
	}
	if string(raw["highlights"]) != "[]" {
		t.Errorf("highlights = %s, want []", raw["highlights"])
	}
}

func TestProcessInsights_RequestErrors(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Security.MaxBodyBytes = 1024
	router := newTestRouter(t, cfg, nil)

	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
		wantError   string
	}{
		{"missing allPages", "application/json", `{"pages": []}`, http.StatusBadRequest, "allPages is required"},
		{"null allPages", "application/json", `{"allPages": null}`, http.StatusBadRequest, "allPages is required"},
		{"malformed json", "application/json", `{"allPages": [`, http.StatusBadRequest, "malformed JSON body"},
		{"bare array", "application/json", `[{"textData": "hi"}]`, http.StatusBadRequest, "malformed JSON body"},
		{"empty body", "application/json", ``, http.StatusBadRequest, "malformed JSON body"},
		{"text content type", "text/plain", `{"allPages": []}`, http.StatusUnsupportedMediaType, "application/json"},
		{"missing content type", "", `{"allPages": []}`, http.StatusUnsupportedMediaType, "application/json"},
		{"too large", "application/json", `{"allPages": ["` + strings.Repeat("x", 2048) + `"]}`, http.StatusRequestEntityTooLarge, "too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/insights", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			body := assertFailure(t, rec, tt.wantStatus)
			if !strings.Contains(body.Error, tt.wantError) {
				t.Errorf("Expected error containing %q, got %q", tt.wantError, body.Error)
			}
		})
	}
}

func TestProcessInsights_JSONContentTypeVariants(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil, nil)
	for _, ct := range []string{"application/json; charset=utf-8", "application/vnd.wayfarer+json"} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/insights", strings.NewReader(`{"allPages": []}`))
		req.Header.Set("Content-Type", ct)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("Content-Type %q: expected 200, got %d", ct, rec.Code)
		}
	}
}

func TestProcessInsights_DegradedSections(t *testing.T) {
	t.Parallel()

	rec := postJSON(t, newTestRouter(t, nil, failingScorer()), "/api/v1/insights", samplePages)
	if rec.Code != http.StatusOK {
		t.Fatalf("Partial failure must still answer 200, got %d", rec.Code)
	}

	degraded := strings.Split(rec.Header().Get(HeaderDegraded), ",")
	for _, want := range []string{"sentiment", "mood_timeline"} {
		found := false
		for _, d := range degraded {
			found = found || d == want
		}
		if !found {
			t.Errorf("Expected %s in degraded header %v", want, degraded)
		}
	}

	report := decodeBody[models.Report](t, rec)
	if report.MoodTimeline.AvgMood != 0.5 {
		t.Errorf("avg_mood = %v, want neutral default", report.MoodTimeline.AvgMood)
	}
	if report.UniqueLocationsCount != 2 {
		t.Errorf("Sections without sentiment must be intact, unique = %d", report.UniqueLocationsCount)
	}
}

func TestProcessInsights_Gzip(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/insights", strings.NewReader(samplePages))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	newTestRouter(t, nil, nil).ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("Expected gzip response")
	}
	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	var report models.Report
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("Failed to decode gzipped report: %v", err)
	}
	if report.UniqueLocationsCount != 2 {
		t.Errorf("unique_locations_count = %d", report.UniqueLocationsCount)
	}
}

func TestInsightSection(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil, nil)

	t.Run("known section", func(t *testing.T) {
		t.Parallel()
		rec := postJSON(t, router, "/api/v1/insights/sections/location_repeats", samplePages)
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := decodeBody[map[string]json.RawMessage](t, rec)
		if string(body["unique_locations_count"]) != "2" {
			t.Errorf("unique_locations_count = %s", body["unique_locations_count"])
		}
		if _, ok := body["location_repeats"]; !ok {
			t.Errorf("Expected location_repeats key in %s", rec.Body.String())
		}
	})

	t.Run("unknown section", func(t *testing.T) {
		t.Parallel()
		rec := postJSON(t, router, "/api/v1/insights/sections/weather", samplePages)
		body := assertFailure(t, rec, http.StatusNotFound)
		if !strings.Contains(body.Error, "weather") {
			t.Errorf("Expected section name in error, got %q", body.Error)
		}
	})

	t.Run("unknown section wins over bad body", func(t *testing.T) {
		t.Parallel()
		rec := postJSON(t, router, "/api/v1/insights/sections/weather", `{`)
		assertFailure(t, rec, http.StatusNotFound)
	})
}

func TestInsightSection_Degraded(t *testing.T) {
	t.Parallel()

	rec := postJSON(t, newTestRouter(t, nil, failingScorer()), "/api/v1/insights/sections/mood_timeline", samplePages)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get(HeaderDegraded); got != "mood_timeline" {
		t.Errorf("degraded header = %q, want mood_timeline", got)
	}

	body := decodeBody[map[string]models.MoodTimeline](t, rec)
	if body["mood_timeline"].AvgMood != 0.5 {
		t.Errorf("Expected default mood timeline, got %+v", body["mood_timeline"])
	}
}

func TestWordFrequencies(t *testing.T) {
	t.Parallel()

	body := `{"allPages": [
		{"textData": "Temple after temple, the temples of Kyoto"},
		{"textData": "Another temple garden"}
	]}`
	rec := postJSON(t, newTestRouter(t, nil, nil), "/api/v1/insights/word-frequencies", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeBody[WordFrequencyResponse](t, rec)
	if resp.Status != models.StatusSuccess {
		t.Errorf("status = %q", resp.Status)
	}
	if len(resp.Words) == 0 || resp.Words[0] != (models.WordCount{Word: "temple", Count: 3}) {
		t.Errorf("Expected temple x3 first, got %+v", resp.Words)
	}
}

func TestWordFrequencies_NoText(t *testing.T) {
	t.Parallel()

	rec := postJSON(t, newTestRouter(t, nil, nil), "/api/v1/insights/word-frequencies", `{"allPages": [{}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"words":[]`) {
		t.Errorf("Expected empty words array, got %s", rec.Body.String())
	}
}
