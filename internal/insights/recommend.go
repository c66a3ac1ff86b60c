// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package insights

import (
	"fmt"
	"strings"

	"github.com/tomtom215/wayfarer/internal/cache"
	"github.com/tomtom215/wayfarer/internal/models"
)

const fallbackRecommendation = "Explore new places"

var (
	activityKeywords = cache.NewKeywordGroups(
		[]string{"hiking", "culture"},
		map[string][]string{
			"hiking":  {"hiking", "trek"},
			"culture": {"museum", "gallery"},
		},
	)
	placeTypeKeywords = cache.NewKeywordGroups(
		[]string{"beach", "mountain"},
		map[string][]string{
			"beach":    {"beach", "coast"},
			"mountain": {"mountain", "alps"},
		},
	)
)

// counter tallies values and remembers the order they were first seen in,
// which breaks ties.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(value string) {
	if _, ok := c.counts[value]; !ok {
		c.order = append(c.order, value)
	}
	c.counts[value]++
}

// top returns the most counted value, the earliest seen on ties.
func (c *counter) top() (string, bool) {
	best, bestCount := "", 0
	for _, v := range c.order {
		if c.counts[v] > bestCount {
			best, bestCount = v, c.counts[v]
		}
	}
	return best, bestCount > 0
}

// Recommendations suggests more of the most mentioned activity and place
// type, falling back to a generic suggestion.
func Recommendations(entries []models.Entry) models.Recommendations {
	activities := newCounter()
	placeTypes := newCounter()

	for i := range entries {
		e := &entries[i]
		if !e.HasText() {
			continue
		}
		for _, a := range activityKeywords.Values(e.Text) {
			activities.add(a)
		}
		for _, p := range placeTypeKeywords.Values(e.Text) {
			placeTypes.add(p)
		}
	}

	var recs []string
	if a, ok := activities.top(); ok {
		recs = append(recs, fmt.Sprintf("Try more %s activities", a))
	}
	if p, ok := placeTypes.top(); ok {
		recs = append(recs, fmt.Sprintf("Visit more %s destinations", p))
	}
	if len(recs) == 0 {
		return defaultRecommendations()
	}
	return models.Recommendations{Recommendations: recs}
}

// bucketActivity is one row of the activity keyed bucket list table.
// keywords match anywhere in a tag or text; tags match whole tags only, for
// stems too short to search text with.
type bucketActivity struct {
	keywords   []string
	tags       []string
	suggestion string
}

// bucketActivities is ordered by priority; hiking comes first.
var bucketActivities = []bucketActivity{
	{[]string{"hiking", "hike", "trek"}, nil, "Trek to Everest Base Camp"},
	{[]string{"beach", "island"}, nil, "Relax on the beaches of the Maldives"},
	{[]string{"museum", "culture", "gallery", "history"}, nil, "Explore the Louvre in Paris"},
	{[]string{"food", "cooking", "culinary"}, []string{"cook"}, "Take a cooking class in Tuscany"},
	{[]string{"diving", "scuba", "snorkel"}, []string{"dive"}, "Dive the Great Barrier Reef"},
	{[]string{"skiing", "snowboard"}, []string{"ski"}, "Ski the Swiss Alps"},
	{[]string{"safari", "wildlife"}, nil, "Go on safari in the Serengeti"},
	{[]string{"photography", "photo"}, nil, "Photograph the Northern Lights in Norway"},
}

// bucketTagRows maps a whole tag to its bucketActivities row.
var bucketTagRows = func() map[string]int {
	rows := make(map[string]int)
	for i, row := range bucketActivities {
		for _, tag := range row.tags {
			rows[tag] = i
		}
	}
	return rows
}()

// bucketRegions is the fallback when no activity matched.
var bucketRegions = cache.NewKeywordGroups(
	[]string{"Cruise the Norwegian fjords", "Explore the temples of Angkor Wat"},
	map[string][]string{
		"Cruise the Norwegian fjords":       {"europe"},
		"Explore the temples of Angkor Wat": {"asia"},
	},
)

// defaultBucketItems pads the bucket list, in order.
var defaultBucketItems = []string{
	"See the Northern Lights",
	"Walk the Great Wall of China",
	"Visit Machu Picchu",
	"Road trip along the Pacific Coast Highway",
	"Hot-air balloon over Cappadocia",
}

var bucketActivityMatcher = func() *cache.KeywordMatcher[int] {
	var kws []cache.Keyword[int]
	for i, row := range bucketActivities {
		for _, kw := range row.keywords {
			kws = append(kws, cache.Keyword[int]{Text: kw, Value: i})
		}
	}
	return cache.NewKeywordMatcher(kws...)
}()

// BucketList suggests between minItems and maxItems future trips.
//
// Activities are the distinct tags plus the activity keywords found in the
// texts. Activity suggestions come first in table order; only when none
// matched do the region suggestions run ("Europe" or "Asia" in a location).
// The list is then padded from the default list without duplicates.
func BucketList(entries []models.Entry, minItems, maxItems int) models.BucketList {
	out := defaultBucketList()
	out.Items = []string{}

	activities := distinctTags(entries)
	seenActivity := make(map[string]bool, len(activities))
	for _, a := range activities {
		seenActivity[a] = true
	}
	for i := range entries {
		for _, m := range bucketActivityMatcher.Search(entries[i].Text) {
			if !seenActivity[m.Keyword] {
				seenActivity[m.Keyword] = true
				activities = append(activities, m.Keyword)
			}
		}
	}

	var locations []string
	seenLocation := make(map[string]bool)
	for i := range entries {
		loc := entries[i].Location
		if loc != "" && !seenLocation[loc] {
			seenLocation[loc] = true
			locations = append(locations, loc)
		}
	}

	add := func(item string) {
		if len(out.Items) >= maxItems {
			return
		}
		for _, existing := range out.Items {
			if existing == item {
				return
			}
		}
		out.Items = append(out.Items, item)
	}

	matchedRows := make([]bool, len(bucketActivities))
	for _, a := range activities {
		for _, row := range bucketActivityMatcher.Values(a) {
			matchedRows[row] = true
		}
		if row, ok := bucketTagRows[a]; ok {
			matchedRows[row] = true
		}
	}
	for i, matched := range matchedRows {
		if matched {
			add(bucketActivities[i].suggestion)
		}
	}

	if len(out.Items) == 0 {
		for _, suggestion := range bucketRegions.Values(strings.Join(locations, "\n")) {
			add(suggestion)
		}
	}

	for _, item := range defaultBucketItems {
		if len(out.Items) >= minItems {
			break
		}
		add(item)
	}

	if activities != nil {
		out.GeneratedFrom.Activities = activities
	}
	if locations != nil {
		out.GeneratedFrom.Locations = locations
	}
	return out
}
