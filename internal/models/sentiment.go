// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package models

// SentimentScore is the output of a sentiment scorer for one text.
//
// Polarity is in [-1, 1] where negative means unfavorable. Subjectivity is in
// [0, 1] where 0 is factual and 1 is pure opinion.
type SentimentScore struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// NeutralScore is returned for empty text.
var NeutralScore = SentimentScore{}

// Mood rescales polarity from [-1, 1] to [0, 1].
func (s SentimentScore) Mood() float64 {
	return (s.Polarity + 1) / 2
}

// Clamp returns a copy of s with both components forced into their ranges.
func (s SentimentScore) Clamp() SentimentScore {
	return SentimentScore{
		Polarity:     clamp(s.Polarity, -1, 1),
		Subjectivity: clamp(s.Subjectivity, 0, 1),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
