// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package insights

import (
	"context"

	"github.com/tomtom215/wayfarer/internal/cache"
	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/models"
)

// summarySnippetRunes is the length of the text quoted in a travel summary.
const summarySnippetRunes = 100

// Mood map labels.
const (
	moodPositive = "positive"
	moodNegative = "negative"
)

// Travel styles.
const (
	styleAdventurous = "adventurous"
	styleRelaxed     = "relaxed"
	styleCultural    = "cultural"
	styleBalanced    = "balanced"
)

// styleMatcher lists the styles in rule priority: an entry counts toward the
// first style whose keywords it mentions.
var styleMatcher = cache.NewKeywordGroups(
	[]string{styleAdventurous, styleRelaxed, styleCultural},
	map[string][]string{
		styleAdventurous: {"adventure", "hiking", "trekking"},
		styleRelaxed:     {"relax", "spa", "chill"},
		styleCultural:    {"museum", "history", "culture"},
	},
)

// TravelSummaries quotes the first very positive, long entry of each
// location, up to the configured limit, in first-seen order.
func TravelSummaries(ctx context.Context, in *Input, cfg *config.InsightsConfig) (models.TravelSummaries, error) {
	out := emptyTravelSummaries()
	done := make(map[string]bool)

	for i := range in.Entries {
		if len(out.Summaries) >= cfg.SummaryLimit {
			break
		}
		e := &in.Entries[i]
		if !e.HasText() || !e.HasLocation() || done[e.Location] {
			continue
		}
		if e.WordCount() <= cfg.SummaryMinWords {
			continue
		}
		score, err := in.Score(ctx, e.Text)
		if err != nil {
			return out, err
		}
		if score.Polarity <= cfg.SummaryMinPolarity {
			continue
		}

		done[e.Location] = true
		text := []rune(e.Text)
		if len(text) > summarySnippetRunes {
			text = text[:summarySnippetRunes]
		}
		out.Summaries = append(out.Summaries, models.TravelSummary{
			Location:  e.Location,
			Highlight: "Loved " + e.Location + ": " + string(text) + "...",
		})
	}
	return out, nil
}

// MoodMapping ranks the happiest locations and labels every location
// positive (average polarity above zero) or negative.
func MoodMapping(ctx context.Context, in *Input, topN int) (models.MoodMapping, error) {
	out := emptyMoodMapping()

	averages, err := locationAverages(ctx, in)
	if err != nil {
		return out, err
	}

	for _, a := range averages {
		if a.Score > 0 {
			out.MoodMap[a.Location] = moodPositive
		} else {
			out.MoodMap[a.Location] = moodNegative
		}
	}
	out.HappiestPlaces = rankLocations(averages, topN, true)
	return out, nil
}

// TravelStyle returns the style most entries point to, earliest seen on
// ties, or "balanced" when no entry mentions any style keyword.
func TravelStyle(entries []models.Entry) models.TravelStyle {
	styles := newCounter()
	for i := range entries {
		if style, ok := styleMatcher.First(entries[i].Text); ok {
			styles.add(style)
		}
	}
	if style, ok := styles.top(); ok {
		return models.TravelStyle{Style: style}
	}
	return defaultTravelStyle()
}
