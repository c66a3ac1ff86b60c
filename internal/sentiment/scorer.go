// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package sentiment

import (
	"context"
	"fmt"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/models"
)

// Scorer rates the sentiment of a piece of text.
//
// Implementations must return models.NeutralScore and a nil error for blank
// text and must be safe for concurrent use.
type Scorer interface {
	Name() string
	Score(ctx context.Context, text string) (models.SentimentScore, error)
}

// ScorerFunc adapts a function to the Scorer interface. It is mostly useful
// in tests.
type ScorerFunc func(ctx context.Context, text string) (models.SentimentScore, error)

// Name implements Scorer.
func (f ScorerFunc) Name() string { return "func" }

// Score implements Scorer.
func (f ScorerFunc) Score(ctx context.Context, text string) (models.SentimentScore, error) {
	return f(ctx, text)
}

// NewFromConfig builds the scorer selected by cfg.Provider.
func NewFromConfig(cfg *config.SentimentConfig) (Scorer, error) {
	switch cfg.Provider {
	case "", "lexicon":
		lex := DefaultLexicon()
		if cfg.LexiconPath != "" {
			extra, err := LoadLexicon(cfg.LexiconPath)
			if err != nil {
				return nil, err
			}
			lex = lex.Merge(extra)
		}
		return NewLexiconScorer(lex), nil
	case "http":
		return NewHTTPScorer(cfg.URL, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown sentiment provider %q", cfg.Provider)
	}
}
