// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package insights

import (
	"context"
	"sort"
	"time"

	"github.com/tomtom215/wayfarer/internal/models"
)

// Season names in enumeration order. Ties for the most common season
// resolve to the earliest season in this order.
const (
	SeasonWinter = "Winter"
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
	SeasonFall   = "Fall"
)

// neutralMood is the average mood reported when no entry can be scored.
const neutralMood = 0.5

// SeasonOf maps a month to its meteorological season.
func SeasonOf(m time.Month) string {
	switch m {
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

// SeasonalPatterns counts timestamped entries per season. With no
// timestamped entries every count is zero and MostCommonSeason is "".
func SeasonalPatterns(entries []models.Entry) models.SeasonalPatterns {
	var out models.SeasonalPatterns
	for i := range entries {
		e := &entries[i]
		if !e.HasTimestamp() {
			continue
		}
		switch SeasonOf(e.Timestamp.Month()) {
		case SeasonWinter:
			out.BySeason.Winter++
		case SeasonSpring:
			out.BySeason.Spring++
		case SeasonSummer:
			out.BySeason.Summer++
		case SeasonFall:
			out.BySeason.Fall++
		}
	}

	best := 0
	for _, s := range []struct {
		name  string
		count int
	}{
		{SeasonWinter, out.BySeason.Winter},
		{SeasonSpring, out.BySeason.Spring},
		{SeasonSummer, out.BySeason.Summer},
		{SeasonFall, out.BySeason.Fall},
	} {
		if s.count > best {
			best = s.count
			out.MostCommonSeason = s.name
		}
	}
	return out
}

type yearMonth struct {
	year  int
	month time.Month
}

// MoodTimeline averages mood per calendar month over entries with text and
// a timestamp, ascending by (year, month). AvgMood is the mean over all
// those entries, or 0.5 when there are none.
func MoodTimeline(ctx context.Context, in *Input) (models.MoodTimeline, error) {
	out := emptyMoodTimeline()

	sums := make(map[yearMonth]float64)
	counts := make(map[yearMonth]int)
	var total float64
	var n int

	for i := range in.Entries {
		e := &in.Entries[i]
		if !e.HasText() || !e.HasTimestamp() {
			continue
		}
		score, err := in.Score(ctx, e.Text)
		if err != nil {
			return out, err
		}
		mood := score.Mood()
		key := yearMonth{year: e.Timestamp.Year(), month: e.Timestamp.Month()}
		sums[key] += mood
		counts[key]++
		total += mood
		n++
	}
	if n == 0 {
		return out, nil
	}

	keys := make([]yearMonth, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	for _, k := range keys {
		out.Timeline = append(out.Timeline, models.MoodPoint{
			Month: int(k.month),
			Year:  k.year,
			Mood:  sums[k] / float64(counts[k]),
		})
	}
	out.AvgMood = total / float64(n)
	return out, nil
}

// PhotoTimeline lists every image of the timestamped entries, oldest first.
// Images of the same instant keep their input order.
func PhotoTimeline(entries []models.Entry) []models.PhotoEntry {
	type photo struct {
		at    time.Time
		entry models.PhotoEntry
	}
	var photos []photo

	for i := range entries {
		e := &entries[i]
		if !e.HasTimestamp() {
			continue
		}
		for _, m := range e.Images() {
			photos = append(photos, photo{
				at: *e.Timestamp,
				entry: models.PhotoEntry{
					Date:     e.Timestamp.Format(timelineDateLayout),
					Image:    m.Value,
					Location: e.Location,
				},
			})
		}
	}

	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].at.Before(photos[j].at)
	})

	out := emptyPhotoTimeline()
	for _, p := range photos {
		out = append(out, p.entry)
	}
	return out
}
