// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package sentiment

import (
	"context"
	"math"
	"strings"
	"unicode"

	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/models"
)

const (
	intensifierFactor = 1.3
	negationFactor    = -0.5
)

// fillers do not break the link between a modifier and the scored word,
// so "not a good day" is negated.
var fillers = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "that": {}, "this": {},
}

// LexiconScorer is an offline, deterministic scorer. Polarity and
// subjectivity are the means over the lexicon words found in the text.
// A word preceded by an intensifier is scaled by 1.3 and one preceded by a
// negator by -0.5; modifiers chain ("not very good").
type LexiconScorer struct {
	words        map[string]WordScore
	intensifiers map[string]struct{}
	negators     map[string]struct{}
}

// NewLexiconScorer creates a scorer over lex.
func NewLexiconScorer(lex *Lexicon) *LexiconScorer {
	s := &LexiconScorer{
		words:        make(map[string]WordScore, len(lex.Words)),
		intensifiers: make(map[string]struct{}, len(lex.Intensifiers)),
		negators:     make(map[string]struct{}, len(lex.Negators)),
	}
	for word, score := range lex.Words {
		s.words[strings.ToLower(word)] = score
	}
	for _, w := range lex.Intensifiers {
		s.intensifiers[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range lex.Negators {
		s.negators[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Name implements Scorer.
func (s *LexiconScorer) Name() string { return "lexicon" }

// Score implements Scorer. It never returns an error.
func (s *LexiconScorer) Score(_ context.Context, text string) (models.SentimentScore, error) {
	score := s.score(text)
	metrics.RecordSentiment(s.Name(), nil)
	return score, nil
}

func (s *LexiconScorer) score(text string) models.SentimentScore {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return models.NeutralScore
	}

	var polarity, subjectivity float64
	scored := 0
	modifier := 1.0

	for _, tok := range tokens {
		if _, ok := s.intensifiers[tok]; ok {
			modifier *= intensifierFactor
			continue
		}
		if _, ok := s.negators[tok]; ok {
			modifier *= negationFactor
			continue
		}
		if ws, ok := s.words[tok]; ok {
			polarity += ws.Polarity * modifier
			subjectivity += math.Min(1, ws.Subjectivity*math.Abs(modifier))
			scored++
			modifier = 1
			continue
		}
		if _, ok := fillers[tok]; !ok {
			modifier = 1
		}
	}

	if scored == 0 {
		return models.NeutralScore
	}
	return models.SentimentScore{
		Polarity:     polarity / float64(scored),
		Subjectivity: subjectivity / float64(scored),
	}.Clamp()
}

// tokenize lowercases text and splits it into words. Apostrophes stay inside
// words so that contractions such as "didn't" survive.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}
