// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package insights

import (
	"context"
	"sort"
	"strings"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/models"
)

// timelineDateLayout renders entry timestamps in the sentiment timeline.
const timelineDateLayout = "2006-01-02T15:04:05"

// SentimentTimeline scores every entry that has both text and a timestamp,
// in input order.
func SentimentTimeline(ctx context.Context, in *Input) (models.SentimentTimeline, error) {
	out := emptySentimentTimeline()
	var sum float64

	for i := range in.Entries {
		e := &in.Entries[i]
		if !e.HasText() || !e.HasTimestamp() {
			continue
		}
		score, err := in.Score(ctx, e.Text)
		if err != nil {
			return out, err
		}
		out.Timeline = append(out.Timeline, models.TimelinePoint{
			Date:         e.Timestamp.Format(timelineDateLayout),
			Score:        score.Polarity,
			Subjectivity: score.Subjectivity,
		})
		sum += score.Polarity
	}

	if n := len(out.Timeline); n > 0 {
		out.AverageScore = sum / float64(n)
	}
	return out, nil
}

// locationAverages returns the mean polarity of every location that has at
// least one entry with text, in first-seen order.
func locationAverages(ctx context.Context, in *Input) ([]models.LocationScore, error) {
	var order []string
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for i := range in.Entries {
		e := &in.Entries[i]
		if !e.HasText() || !e.HasLocation() {
			continue
		}
		score, err := in.Score(ctx, e.Text)
		if err != nil {
			return nil, err
		}
		if _, seen := counts[e.Location]; !seen {
			order = append(order, e.Location)
		}
		sums[e.Location] += score.Polarity
		counts[e.Location]++
	}

	averages := make([]models.LocationScore, len(order))
	for i, loc := range order {
		averages[i] = models.LocationScore{Location: loc, Score: sums[loc] / float64(counts[loc])}
	}
	return averages, nil
}

// rankLocations returns up to n scores sorted descending (or ascending),
// stable on the first-seen order of the input.
func rankLocations(scores []models.LocationScore, n int, descending bool) []models.LocationScore {
	ranked := append([]models.LocationScore(nil), scores...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if descending {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Score < ranked[j].Score
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	if ranked == nil {
		ranked = []models.LocationScore{}
	}
	return ranked
}

// LocationSentiment averages polarity per location. The overall average is
// the mean of the location averages, not of the entries.
func LocationSentiment(ctx context.Context, in *Input, topN int) (models.LocationSentiment, error) {
	out := emptyLocationSentiment()

	averages, err := locationAverages(ctx, in)
	if err != nil {
		return out, err
	}
	if len(averages) == 0 {
		return out, nil
	}

	var sum float64
	for _, a := range averages {
		out.AverageByLocation[a.Location] = a.Score
		sum += a.Score
	}
	out.TopLocations = rankLocations(averages, topN, true)
	out.BottomLocations = rankLocations(averages, topN, false)
	out.OverallAverage = sum / float64(len(averages))
	return out, nil
}

// Highlights returns snippets of the positive, non-trivial entries in input
// order, up to the configured limit.
func Highlights(ctx context.Context, in *Input, cfg *config.InsightsConfig) ([]string, error) {
	out := emptyStrings()

	for i := range in.Entries {
		if len(out) >= cfg.HighlightLimit {
			break
		}
		e := &in.Entries[i]
		if !e.HasText() || e.WordCount() <= cfg.HighlightMinWords {
			continue
		}
		score, err := in.Score(ctx, e.Text)
		if err != nil {
			return out, err
		}
		if score.Polarity > cfg.HighlightMinPolarity {
			out = append(out, snippet(e.Text, cfg.SnippetLength))
		}
	}
	return out, nil
}

// snippet cuts s to at most n runes, marking the cut with "...".
func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimRight(string(runes[:n]), " \t\n") + "..."
}
