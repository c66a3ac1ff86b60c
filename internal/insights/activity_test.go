// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package insights

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/wayfarer/internal/models"
)

func tagged(tags ...[]string) []models.Entry {
	entries := make([]models.Entry, len(tags))
	for i, t := range tags {
		entries[i] = models.Entry{Tags: t}
	}
	return entries
}

func TestActivityPatterns(t *testing.T) {
	t.Parallel()

	entries := tagged(
		[]string{"Hiking", "museum"},
		[]string{"hiking", "street food"},
		[]string{"nightlife", "Hiking", "art gallery"},
		[]string{"museum", "sleeping"},
	)
	got := ActivityPatterns(entries, 10, 4)

	assert.Equal(t, []models.TagCount{
		{Tag: "hiking", Count: 3},
		{Tag: "museum", Count: 2},
		{Tag: "street food", Count: 1},
		{Tag: "nightlife", Count: 1},
		{Tag: "art gallery", Count: 1},
		{Tag: "sleeping", Count: 1},
	}, got.Patterns)

	assert.Equal(t, map[string][]string{
		ClusterOutdoor:  {"hiking"},
		ClusterCultural: {"museum", "art gallery"},
		ClusterUrban:    {"street food", "nightlife"},
	}, got.Clusters)
}

func TestActivityPatterns_TopN(t *testing.T) {
	t.Parallel()

	var tags []string
	for i := 0; i < 15; i++ {
		tags = append(tags, fmt.Sprintf("tag%02d", i))
	}
	got := ActivityPatterns(tagged(tags), 10, 4)
	assert.Len(t, got.Patterns, 10)
	assert.Equal(t, "tag00", got.Patterns[0].Tag)
	assert.Empty(t, got.Clusters, "no tag matches a cluster keyword")
}

func TestActivityPatterns_GeneralFallback(t *testing.T) {
	t.Parallel()

	got := ActivityPatterns(tagged([]string{"hiking", "beach"}, []string{"museum"}), 10, 4)
	assert.Equal(t, map[string][]string{ClusterGeneral: {"hiking", "beach", "museum"}}, got.Clusters)
}

func TestActivityPatterns_Empty(t *testing.T) {
	t.Parallel()

	got := ActivityPatterns(nil, 10, 4)
	assert.NotNil(t, got.Patterns)
	assert.Empty(t, got.Patterns)
	assert.NotNil(t, got.Clusters)
	assert.Empty(t, got.Clusters)
}

func TestTravelPersonality(t *testing.T) {
	t.Parallel()

	many := func(n int) []models.Entry {
		var entries []models.Entry
		for i := 0; i < n; i++ {
			entries = append(entries, models.Entry{Location: fmt.Sprintf("Place %d, Country", i)})
		}
		return entries
	}

	tests := []struct {
		name       string
		entries    []models.Entry
		scores     map[string]float64
		wantLabel  string
		wantTraits []string
	}{
		{
			name:       "long trips",
			entries:    []models.Entry{trip(20), trip(20)},
			wantLabel:  "The Immerser",
			wantTraits: []string{"Deep cultural experiences"},
		},
		{
			name:       "short trips",
			entries:    []models.Entry{trip(1)},
			wantLabel:  "The Quick Adventurer",
			wantTraits: []string{"Fast-paced travel"},
		},
		{
			name:       "no dates",
			entries:    []models.Entry{{Location: "Rome"}},
			wantLabel:  "The Explorer",
			wantTraits: []string{},
		},
		{
			name:       "medium trips",
			entries:    []models.Entry{trip(7)},
			wantLabel:  "The Explorer",
			wantTraits: []string{},
		},
		{
			name:       "wanderlust",
			entries:    many(11),
			wantLabel:  "The Explorer with Wanderlust",
			wantTraits: []string{"Loves variety"},
		},
		{
			name:       "exactly ten places",
			entries:    many(10),
			wantLabel:  "The Explorer",
			wantTraits: []string{},
		},
		{
			name:       "adventurous tags",
			entries:    []models.Entry{{Tags: []string{"Adventure"}}},
			wantLabel:  "The Explorer",
			wantTraits: []string{"Adventurous"},
		},
		{
			name:       "positive",
			entries:    []models.Entry{{Text: "joy"}},
			scores:     map[string]float64{"joy": 0.6},
			wantLabel:  "The Explorer",
			wantTraits: []string{"Positive traveler"},
		},
		{
			name:       "thoughtful",
			entries:    []models.Entry{{Text: "gloom"}},
			scores:     map[string]float64{"gloom": -0.5},
			wantLabel:  "The Explorer",
			wantTraits: []string{"Thoughtful traveler"},
		},
		{
			name: "everything",
			entries: append(append(many(11), trip(30)),
				models.Entry{Text: "joy", Tags: []string{"hiking"}}),
			scores:    map[string]float64{"joy": 0.9},
			wantLabel: "The Immerser with Wanderlust",
			wantTraits: []string{
				"Deep cultural experiences", "Loves variety", "Adventurous", "Positive traveler",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := TravelPersonality(context.Background(), newInput(tt.entries, tt.scores), testConfig())
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantTraits, got.Traits)
		})
	}
}

func TestTravelPersonality_Metrics(t *testing.T) {
	t.Parallel()

	entries := []models.Entry{
		{Location: "Kyoto, Japan", Text: "a"},
		{Location: "kyoto, Kansai, Japan", Text: "b"},
		{Location: "Osaka, Japan"},
		trip(4),
		trip(6),
	}
	got, err := TravelPersonality(context.Background(), newInput(entries, map[string]float64{"a": 0.2, "b": 0.4}), testConfig())
	require.NoError(t, err)

	assert.InDelta(t, 5.0, got.AvgTripDuration, 1e-9)
	assert.Equal(t, 2, got.LocationDiversity)
	assert.InDelta(t, 0.3, got.AvgSentiment, 1e-9)
}
