// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package insights

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/sentiment"
)

// polarityScorer scores texts from a fixed table; unknown texts are neutral.
func polarityScorer(scores map[string]float64) sentiment.Scorer {
	return sentiment.ScorerFunc(func(_ context.Context, text string) (models.SentimentScore, error) {
		return models.SentimentScore{Polarity: scores[text], Subjectivity: 0.5}, nil
	})
}

var errScorerDown = errors.New("scorer down")

func failingScorer() sentiment.Scorer {
	return sentiment.ScorerFunc(func(context.Context, string) (models.SentimentScore, error) {
		return models.NeutralScore, &models.ExternalServiceError{Service: "sentiment", Err: errScorerDown}
	})
}

func newInput(entries []models.Entry, scores map[string]float64) *Input {
	return NewInput(entries, polarityScorer(scores))
}

func testConfig() *config.InsightsConfig {
	cfg := config.Default().Insights
	return &cfg
}

// day parses a YYYY-MM-DD date at midnight UTC.
func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

// trip returns an entry spanning the given number of days.
func trip(days int) models.Entry {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, days)
	return models.Entry{StartDate: &start, EndDate: &end}
}
