// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package insights

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/wayfarer/internal/models"
)

func TestSeasonOf(t *testing.T) {
	t.Parallel()

	want := map[time.Month]string{
		time.January: SeasonWinter, time.February: SeasonWinter, time.December: SeasonWinter,
		time.March: SeasonSpring, time.April: SeasonSpring, time.May: SeasonSpring,
		time.June: SeasonSummer, time.July: SeasonSummer, time.August: SeasonSummer,
		time.September: SeasonFall, time.October: SeasonFall, time.November: SeasonFall,
	}
	for m, season := range want {
		assert.Equal(t, season, SeasonOf(m), m.String())
	}
}

func TestSeasonalPatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		date string
		want string
	}{
		{"january is winter", "2024-01-15", SeasonWinter},
		{"april is spring", "2024-04-15", SeasonSpring},
		{"july is summer", "2024-07-15", SeasonSummer},
		{"october is fall", "2024-10-15", SeasonFall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SeasonalPatterns([]models.Entry{{Timestamp: day(tt.date)}})
			assert.Equal(t, tt.want, got.MostCommonSeason)
		})
	}
}

func TestSeasonalPatterns_CountsAndTies(t *testing.T) {
	t.Parallel()

	entries := []models.Entry{
		{Timestamp: day("2024-07-01")},
		{Timestamp: day("2024-12-01")},
		{Timestamp: day("2023-08-01")},
		{Timestamp: day("2024-01-20")},
		{Text: "undated"},
	}
	got := SeasonalPatterns(entries)
	assert.Equal(t, models.SeasonCounts{Winter: 2, Summer: 2}, got.BySeason)
	// Winter and Summer tie; Winter comes first in enumeration order.
	assert.Equal(t, SeasonWinter, got.MostCommonSeason)
}

func TestSeasonalPatterns_Empty(t *testing.T) {
	t.Parallel()

	got := SeasonalPatterns(nil)
	assert.Equal(t, models.SeasonCounts{}, got.BySeason)
	assert.Equal(t, "", got.MostCommonSeason)
}

func TestMoodTimeline(t *testing.T) {
	t.Parallel()

	entries := []models.Entry{
		{Text: "best", Timestamp: day("2024-05-02")},
		{Text: "worst", Timestamp: day("2023-11-20")},
		{Text: "meh", Timestamp: day("2024-05-28")},
		{Text: "undated"},
	}
	in := newInput(entries, map[string]float64{"best": 1, "worst": -1, "meh": 0, "undated": 1})

	got, err := MoodTimeline(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, got.Timeline, 2)

	assert.Equal(t, models.MoodPoint{Month: 11, Year: 2023, Mood: 0}, got.Timeline[0])
	assert.Equal(t, 5, got.Timeline[1].Month)
	assert.Equal(t, 2024, got.Timeline[1].Year)
	// mood(1.0) = 1 and mood(0) = 0.5 average to 0.75
	assert.InDelta(t, 0.75, got.Timeline[1].Mood, 1e-9)
	assert.InDelta(t, 0.5, got.AvgMood, 1e-9)
}

func TestMoodTimeline_Extremes(t *testing.T) {
	t.Parallel()

	for polarity, mood := range map[float64]float64{1: 1, -1: 0, 0: 0.5} {
		in := newInput([]models.Entry{{Text: "x", Timestamp: day("2024-02-01")}}, map[string]float64{"x": polarity})
		got, err := MoodTimeline(context.Background(), in)
		require.NoError(t, err)
		require.Len(t, got.Timeline, 1)
		assert.InDelta(t, mood, got.Timeline[0].Mood, 1e-9)
	}
}

func TestMoodTimeline_EmptyIsNeutral(t *testing.T) {
	t.Parallel()

	got, err := MoodTimeline(context.Background(), newInput([]models.Entry{{Text: "no date"}}, nil))
	require.NoError(t, err)
	assert.Empty(t, got.Timeline)
	assert.Equal(t, 0.5, got.AvgMood)
}

func TestPhotoTimeline(t *testing.T) {
	t.Parallel()

	entries := []models.Entry{
		{Timestamp: day("2024-06-10"), Location: "Oslo", Media: []models.Media{
			{Type: "image", Value: "fjord.jpg"},
			{Type: "video", Value: "clip.mp4"},
			{Type: "IMAGE", Value: "boat.jpg"},
		}},
		{Media: []models.Media{{Type: "image", Value: "undated.jpg"}}},
		{Timestamp: day("2024-01-05"), Media: []models.Media{{Type: "image", Value: "snow.jpg"}}},
	}

	got := PhotoTimeline(entries)
	require.Len(t, got, 3)
	assert.Equal(t, models.PhotoEntry{Date: "2024-01-05T00:00:00", Image: "snow.jpg"}, got[0])
	assert.Equal(t, "fjord.jpg", got[1].Image)
	assert.Equal(t, "Oslo", got[1].Location)
	assert.Equal(t, "boat.jpg", got[2].Image)

	assert.NotNil(t, PhotoTimeline(nil))
}
