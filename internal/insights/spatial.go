// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package insights

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/geo"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/models"
)

// Spot types.
const (
	SpotHiddenGem = "hidden_gem"
	SpotHotspot   = "hotspot"
)

// visitCounts counts entries per location in first-seen order.
func visitCounts(entries []models.Entry) []models.LocationCount {
	return countLocations(entries, false)
}

// reviewedCounts counts only entries that carry text as well as a location.
func reviewedCounts(entries []models.Entry) []models.LocationCount {
	return countLocations(entries, true)
}

func countLocations(entries []models.Entry, requireText bool) []models.LocationCount {
	var counts []models.LocationCount
	index := make(map[string]int)
	for i := range entries {
		e := &entries[i]
		if !e.HasLocation() || (requireText && !e.HasText()) {
			continue
		}
		if j, ok := index[e.Location]; ok {
			counts[j].Count++
			continue
		}
		index[e.Location] = len(counts)
		counts = append(counts, models.LocationCount{Location: e.Location, Count: 1})
	}
	return counts
}

// LocationRepeats returns the most visited locations, descending by count
// with ties in first-seen order, and the number of distinct locations.
func LocationRepeats(entries []models.Entry, limit int) models.LocationRepeats {
	out := emptyLocationRepeats()

	counts := visitCounts(entries)
	out.TotalUnique = len(counts)

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > limit {
		counts = counts[:limit]
	}
	out.MostVisited = append(out.MostVisited, counts...)
	return out
}

// SpotAnalysis classifies locations against the mean visit count over
// distinct locations. Only entries with both text and a location count as
// visits here. A hidden gem is visited less than the mean and has an
// average polarity above the configured threshold; a hotspot is visited
// more than HotspotMultiplier times the mean.
func SpotAnalysis(ctx context.Context, in *Input, cfg *config.InsightsConfig) (models.SpotAnalysis, error) {
	out := emptySpotAnalysis()

	counts := reviewedCounts(in.Entries)
	if len(counts) == 0 {
		return out, nil
	}

	averages, err := locationAverages(ctx, in)
	if err != nil {
		return out, err
	}
	sentimentByLocation := make(map[string]float64, len(averages))
	for _, a := range averages {
		sentimentByLocation[a.Location] = a.Score
	}

	total := 0
	for _, c := range counts {
		total += c.Count
	}
	mean := float64(total) / float64(len(counts))

	for _, c := range counts {
		count := float64(c.Count)
		avg, scored := sentimentByLocation[c.Location]
		switch {
		case count < mean && scored && avg > cfg.HiddenGemMinPolarity:
			if len(out.HiddenGems) < cfg.SpotLimit {
				out.HiddenGems = append(out.HiddenGems, models.Spot{Location: c.Location, Type: SpotHiddenGem})
			}
		case count > cfg.HotspotMultiplier*mean:
			if len(out.Hotspots) < cfg.SpotLimit {
				out.Hotspots = append(out.Hotspots, models.Spot{Location: c.Location, Type: SpotHotspot})
			}
		}
	}
	return out, nil
}

type placedLocation struct {
	name  string
	point geo.Point
}

// GeographicFacts geocodes the distinct locations (first-seen, at most
// maxLocations) and derives distance, climate zones and a few facts. Names
// the geocoder cannot resolve are skipped. A nil geocoder yields the empty
// result; a geocoder failure or timeout is returned so the section degrades.
func GeographicFacts(ctx context.Context, entries []models.Entry, geocoder geo.Geocoder, maxLocations int, timeout time.Duration) (models.GeographicFacts, error) {
	out := emptyGeographicFacts()
	if geocoder == nil {
		return out, nil
	}

	counts := visitCounts(entries)
	if len(counts) == 0 {
		return out, nil
	}
	if len(counts) > maxLocations {
		logging.Ctx(ctx).Debug().
			Int("locations", len(counts)).
			Int("max_locations", maxLocations).
			Msg("Geocoding only the first locations")
		counts = counts[:maxLocations]
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resolved := make(map[string]geo.Point, len(counts))
	var places []placedLocation
	for _, c := range counts {
		p, found, err := geocoder.Geocode(ctx, c.Location)
		if err != nil {
			return emptyGeographicFacts(), fmt.Errorf("geocode %q: %w", c.Location, err)
		}
		if !found {
			logging.Ctx(ctx).Debug().Str("location", c.Location).Msg("Location not resolved")
			continue
		}
		resolved[c.Location] = p
		places = append(places, placedLocation{name: c.Location, point: p})
	}

	// Travel path: located entries in input order, consecutive repeats collapsed.
	var path []geo.Point
	prev := ""
	for i := range entries {
		loc := entries[i].Location
		p, ok := resolved[loc]
		if !ok || loc == prev {
			continue
		}
		path = append(path, p)
		prev = loc
	}
	var distance float64
	for i := 1; i < len(path); i++ {
		distance += geo.Distance(path[i-1], path[i])
	}
	out.TotalDistance = math.Round(distance*100) / 100

	seenZone := make(map[string]bool)
	for _, pl := range places {
		zone := geo.ClimateZone(pl.point.Lat)
		if !seenZone[zone] {
			seenZone[zone] = true
			out.ClimateZones = append(out.ClimateZones, zone)
		}
	}

	out.Facts = geographicFactLines(entries, places, len(path), out.TotalDistance, out.ClimateZones)
	return out, nil
}

func geographicFactLines(entries []models.Entry, places []placedLocation, stops int, distance float64, zones []string) []string {
	facts := []string{}

	if countries := visitedCountries(entries); len(countries) > 0 {
		noun := "countries"
		if len(countries) == 1 {
			noun = "country"
		}
		facts = append(facts, fmt.Sprintf("Visited %d %s: %s", len(countries), noun, strings.Join(countries, ", ")))
	}

	if stops > 1 {
		facts = append(facts, fmt.Sprintf("Traveled about %.2f km across %d stops", distance, stops))
	}

	if len(places) > 1 {
		north, south := places[0], places[0]
		for _, pl := range places[1:] {
			if pl.point.Lat > north.point.Lat {
				north = pl
			}
			if pl.point.Lat < south.point.Lat {
				south = pl
			}
		}
		facts = append(facts,
			fmt.Sprintf("Northernmost stop: %s (%.2f°)", north.name, north.point.Lat),
			fmt.Sprintf("Southernmost stop: %s (%.2f°)", south.name, south.point.Lat),
		)
		if north.point.Lat > 0 && south.point.Lat < 0 {
			facts = append(facts, "Crossed the equator")
		}
	}

	if len(zones) > 0 {
		facts = append(facts, fmt.Sprintf("Experienced %d climate zone(s): %s", len(zones), strings.Join(zones, ", ")))
	}
	return facts
}

// visitedCountries returns the distinct last components of multi-part
// locations ("Kyoto, Japan" -> "Japan"), case-insensitive, first-seen.
func visitedCountries(entries []models.Entry) []string {
	var countries []string
	seen := make(map[string]bool)
	for i := range entries {
		e := &entries[i]
		if !strings.Contains(e.Location, ",") {
			continue
		}
		country := e.Country()
		key := strings.ToLower(country)
		if country == "" || seen[key] {
			continue
		}
		seen[key] = true
		countries = append(countries, country)
	}
	return countries
}
