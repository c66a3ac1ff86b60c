// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/wayfarer/internal/insights"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/models"
)

// WordFrequencyResponse is the body of the word frequency endpoint.
type WordFrequencyResponse struct {
	Status string             `json:"status"`
	Words  []models.WordCount `json:"words"`
}

// decode runs the shared request decoding and writes the failure response
// itself. It returns nil when the request was rejected.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request) *InsightsRequest {
	req, rerr := decodeInsightsRequest(w, r, h.config.Security.MaxBodyBytes)
	if rerr != nil {
		respondFailure(w, r, rerr.status, rerr.message, rerr)
		return nil
	}
	return req
}

// ProcessInsights produces the full insight report.
//
// @Summary Generate travel insights
// @Description Normalizes the journal pages and runs every insight section. Sections that fail degrade to their empty value and are listed in the X-Insights-Degraded header.
// @Tags Insights
// @Accept json
// @Produce json
// @Param request body InsightsRequest true "Journal pages"
// @Success 200 {object} models.Report "Insight report"
// @Header 200 {string} X-Insights-Degraded "Comma separated list of degraded sections"
// @Failure 400 {object} models.FailureResponse "Malformed JSON or missing allPages"
// @Failure 413 {object} models.FailureResponse "Body too large"
// @Failure 415 {object} models.FailureResponse "Content-Type is not JSON"
// @Failure 500 {object} models.FailureResponse "Unexpected failure"
// @Router /process-insights [post]
// @Router /api/v1/insights [post]
func (h *Handler) ProcessInsights(w http.ResponseWriter, r *http.Request) {
	req := h.decode(w, r)
	if req == nil {
		return
	}

	entries, skipped := h.entries(r.Context(), req)
	report, summary := h.engine.Run(r.Context(), entries)

	setDegraded(w, summary.Failed)
	w.Header().Set(HeaderSkippedFields, strconv.Itoa(skipped))

	logging.Ctx(r.Context()).Debug().
		Int("pages", len(req.AllPages)).
		Int("skipped_fields", skipped).
		Strs("failed_sections", summary.Failed).
		Msg("Insight report generated")

	respondJSON(w, r, http.StatusOK, report)
}

// InsightSection produces a single section of the report.
//
// @Summary Generate one insight section
// @Description Runs a single analyzer. The response maps the section name to its payload; location_repeats and geographic_facts also carry their promoted top-level value.
// @Tags Insights
// @Accept json
// @Produce json
// @Param section path string true "Section name, e.g. seasonal_patterns"
// @Param request body InsightsRequest true "Journal pages"
// @Success 200 {object} map[string]interface{} "Section payload"
// @Failure 400 {object} models.FailureResponse "Malformed JSON or missing allPages"
// @Failure 404 {object} models.FailureResponse "Unknown section"
// @Failure 415 {object} models.FailureResponse "Content-Type is not JSON"
// @Router /api/v1/insights/sections/{section} [post]
func (h *Handler) InsightSection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "section")
	if !h.hasSection(name) {
		respondFailure(w, r, http.StatusNotFound, "unknown insight section: "+name, nil)
		return
	}

	req := h.decode(w, r)
	if req == nil {
		return
	}

	entries, skipped := h.entries(r.Context(), req)
	out, err := h.engine.RunSection(r.Context(), entries, name)
	switch {
	case errors.Is(err, insights.ErrUnknownSection):
		respondFailure(w, r, http.StatusNotFound, "unknown insight section: "+name, err)
		return
	case err != nil:
		setDegraded(w, []string{name})
	}
	w.Header().Set(HeaderSkippedFields, strconv.Itoa(skipped))

	respondJSON(w, r, http.StatusOK, out)
}

// WordFrequencies returns the most frequent words across all entry texts.
//
// @Summary Word frequencies
// @Description Counts lowercase words of three or more letters across every entry text, excluding stop words. Most frequent first; ties keep first-seen order.
// @Tags Insights
// @Accept json
// @Produce json
// @Param request body InsightsRequest true "Journal pages"
// @Success 200 {object} WordFrequencyResponse "Word counts"
// @Failure 400 {object} models.FailureResponse "Malformed JSON or missing allPages"
// @Failure 415 {object} models.FailureResponse "Content-Type is not JSON"
// @Router /api/v1/insights/word-frequencies [post]
func (h *Handler) WordFrequencies(w http.ResponseWriter, r *http.Request) {
	req := h.decode(w, r)
	if req == nil {
		return
	}

	entries, skipped := h.entries(r.Context(), req)
	w.Header().Set(HeaderSkippedFields, strconv.Itoa(skipped))

	respondJSON(w, r, http.StatusOK, &WordFrequencyResponse{
		Status: models.StatusSuccess,
		Words:  h.engine.WordFrequencies(entries),
	})
}

func (h *Handler) hasSection(name string) bool {
	for _, s := range h.engine.Sections() {
		if s == name {
			return true
		}
	}
	return false
}
