// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package sentiment

import (
	"context"
	"sync"

	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/models"
)

// Memo memoizes a Scorer per distinct text. One Memo is created per request
// and shared by all analyzers of that request, so a text is scored once even
// when several sections need it. Errors are not cached.
type Memo struct {
	scorer Scorer

	mu     sync.Mutex
	scores map[string]models.SentimentScore
}

// NewMemo wraps scorer.
func NewMemo(scorer Scorer) *Memo {
	return &Memo{
		scorer: scorer,
		scores: make(map[string]models.SentimentScore),
	}
}

// Name implements Scorer.
func (m *Memo) Name() string { return m.scorer.Name() }

// Score implements Scorer.
func (m *Memo) Score(ctx context.Context, text string) (models.SentimentScore, error) {
	m.mu.Lock()
	score, ok := m.scores[text]
	m.mu.Unlock()
	metrics.RecordCacheLookup("sentiment", ok)
	if ok {
		return score, nil
	}

	// Two analyzers may score the same text concurrently; both results are
	// equal, so the duplicate call is harmless.
	score, err := m.scorer.Score(ctx, text)
	if err != nil {
		return models.NeutralScore, err
	}

	m.mu.Lock()
	m.scores[text] = score
	m.mu.Unlock()
	return score, nil
}

// Len returns the number of memoized texts.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.scores)
}
