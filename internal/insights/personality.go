// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package insights

import (
	"context"
	"strings"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/models"
)

// Personality labels and traits.
const (
	labelExplorer        = "The Explorer"
	labelImmerser        = "The Immerser"
	labelQuickAdventurer = "The Quick Adventurer"
	labelWanderlust      = " with Wanderlust"

	traitDeepCulture = "Deep cultural experiences"
	traitFastPaced   = "Fast-paced travel"
	traitVariety     = "Loves variety"
	traitAdventurous = "Adventurous"
	traitPositive    = "Positive traveler"
	traitThoughtful  = "Thoughtful traveler"
)

// TravelPersonality derives a label and traits from trip length, location
// diversity, tags and sentiment:
//
//  1. Base label "The Explorer".
//  2. Average trip longer than LongTripDays: "The Immerser".
//  3. Otherwise shorter than ShortTripDays: "The Quick Adventurer".
//  4. More than WanderlustLocations distinct places: " with Wanderlust".
//  5. A "hiking" or "adventure" tag: trait "Adventurous".
//  6. Average sentiment above PositiveTraveler or below ThoughtfulTraveler.
//
// The average trip duration is 0 when no entry has both trip dates, which
// keeps the duration rules from firing.
func TravelPersonality(ctx context.Context, in *Input, cfg *config.InsightsConfig) (models.TravelPersonality, error) {
	out := defaultTravelPersonality()

	var durationSum float64
	var trips int
	places := make(map[string]struct{})
	var sentimentSum float64
	var scored int

	for i := range in.Entries {
		e := &in.Entries[i]
		if d, ok := e.Duration(); ok {
			durationSum += d
			trips++
		}
		if e.HasLocation() {
			if top := strings.ToLower(e.TopLevelLocation()); top != "" {
				places[top] = struct{}{}
			}
		}
		if e.HasText() {
			score, err := in.Score(ctx, e.Text)
			if err != nil {
				return out, err
			}
			sentimentSum += score.Polarity
			scored++
		}
	}

	if trips > 0 {
		out.AvgTripDuration = durationSum / float64(trips)
	}
	if scored > 0 {
		out.AvgSentiment = sentimentSum / float64(scored)
	}
	out.LocationDiversity = len(places)

	switch {
	case trips > 0 && out.AvgTripDuration > cfg.LongTripDays:
		out.Label = labelImmerser
		out.Traits = append(out.Traits, traitDeepCulture)
	case trips > 0 && out.AvgTripDuration < cfg.ShortTripDays:
		out.Label = labelQuickAdventurer
		out.Traits = append(out.Traits, traitFastPaced)
	}

	if out.LocationDiversity > cfg.WanderlustLocations {
		out.Label += labelWanderlust
		out.Traits = append(out.Traits, traitVariety)
	}

	for _, tag := range distinctTags(in.Entries) {
		if tag == "hiking" || tag == "adventure" {
			out.Traits = append(out.Traits, traitAdventurous)
			break
		}
	}

	switch {
	case out.AvgSentiment > cfg.PositiveTraveler:
		out.Traits = append(out.Traits, traitPositive)
	case out.AvgSentiment < cfg.ThoughtfulTraveler:
		out.Traits = append(out.Traits, traitThoughtful)
	}
	return out, nil
}
