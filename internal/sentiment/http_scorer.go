// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package sentiment

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/breaker"
	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/models"
)

// HTTPScorer delegates scoring to a remote service:
//
//	POST {url}  {"text": "..."}  ->  {"polarity": 0.4, "subjectivity": 0.6}
//
// Calls go through a circuit breaker so an unavailable service fails fast.
// Every failure is returned as a *models.ExternalServiceError.
type HTTPScorer struct {
	client  *resty.Client
	url     string
	breaker *breaker.Breaker[models.SentimentScore]
}

type scoreRequest struct {
	Text string `json:"text"`
}

type scoreResponse struct {
	Polarity     *float64 `json:"polarity"`
	Subjectivity *float64 `json:"subjectivity"`
}

// NewHTTPScorer creates a scorer for the service at url.
func NewHTTPScorer(url string, timeout time.Duration) *HTTPScorer {
	c := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &HTTPScorer{
		client:  c,
		url:     url,
		breaker: breaker.New[models.SentimentScore](breaker.DefaultConfig("sentiment-http")),
	}
}

// Name implements Scorer.
func (s *HTTPScorer) Name() string { return "http" }

// Score implements Scorer.
func (s *HTTPScorer) Score(ctx context.Context, text string) (models.SentimentScore, error) {
	if strings.TrimSpace(text) == "" {
		return models.NeutralScore, nil
	}

	score, err := s.breaker.Execute(func() (models.SentimentScore, error) {
		return s.call(ctx, text)
	})
	metrics.RecordSentiment(s.Name(), err)
	if err != nil {
		return models.NeutralScore, &models.ExternalServiceError{Service: "sentiment", Err: err}
	}
	return score, nil
}

func (s *HTTPScorer) call(ctx context.Context, text string) (models.SentimentScore, error) {
	body, err := json.Marshal(scoreRequest{Text: text})
	if err != nil {
		return models.NeutralScore, fmt.Errorf("encode request: %w", err)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(s.url)
	if err != nil {
		return models.NeutralScore, fmt.Errorf("sentiment request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return models.NeutralScore, fmt.Errorf("sentiment status %d: %s", resp.StatusCode(), truncate(resp.String(), 200))
	}

	var sr scoreResponse
	if err := json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.NeutralScore, fmt.Errorf("decode response: %w", err)
	}
	if sr.Polarity == nil || sr.Subjectivity == nil {
		return models.NeutralScore, fmt.Errorf("response missing polarity or subjectivity")
	}
	if math.IsNaN(*sr.Polarity) || math.IsNaN(*sr.Subjectivity) {
		return models.NeutralScore, fmt.Errorf("response contains NaN")
	}

	return models.SentimentScore{Polarity: *sr.Polarity, Subjectivity: *sr.Subjectivity}.Clamp(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
