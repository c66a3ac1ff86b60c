// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package insights

import (
	"context"

	"github.com/tomtom215/wayfarer/internal/models"
)

// Section names. They double as the JSON keys of the report.
const (
	SectionSentiment         = "sentiment"
	SectionLocationSentiment = "location_sentiment"
	SectionHighlights        = "highlights"
	SectionLocationRepeats   = "location_repeats"
	SectionSeasonalPatterns  = "seasonal_patterns"
	SectionPhotoTimeline     = "photo_timeline"
	SectionTravelPersonality = "travel_personality"
	SectionGeographicFacts   = "geographic_facts"
	SectionActivityPatterns  = "activity_patterns"
	SectionMoodTimeline      = "mood_timeline"
	SectionBucketList        = "bucket_list"
	SectionRecommendations   = "recommendations"
	SectionSpotAnalysis      = "spot_analysis"
	SectionTravelSummaries   = "travel_summaries"
	SectionMoodMapping       = "mood_mapping"
	SectionTravelStyle       = "travel_style"
)

// section adapts a typed analyzer function to the Analyzer interface.
type section[T any] struct {
	name string
	run  func(ctx context.Context, in *Input) (T, error)
	def  func() T
}

func newSection[T any](name string, run func(context.Context, *Input) (T, error), def func() T) Analyzer {
	return &section[T]{name: name, run: run, def: def}
}

func (s *section[T]) Name() string { return s.name }

func (s *section[T]) Analyze(ctx context.Context, in *Input) (any, error) {
	return s.run(ctx, in)
}

func (s *section[T]) Default() any { return s.def() }

// registry returns the built-in analyzers in report order.
func (e *Engine) registry() []Analyzer {
	cfg := &e.cfg
	return []Analyzer{
		newSection(SectionSentiment, func(ctx context.Context, in *Input) (models.SentimentTimeline, error) {
			return SentimentTimeline(ctx, in)
		}, emptySentimentTimeline),
		newSection(SectionLocationSentiment, func(ctx context.Context, in *Input) (models.LocationSentiment, error) {
			return LocationSentiment(ctx, in, cfg.TopLocations)
		}, emptyLocationSentiment),
		newSection(SectionHighlights, func(ctx context.Context, in *Input) ([]string, error) {
			return Highlights(ctx, in, cfg)
		}, emptyStrings),
		newSection(SectionLocationRepeats, func(_ context.Context, in *Input) (models.LocationRepeats, error) {
			return LocationRepeats(in.Entries, cfg.MostVisitedLimit), nil
		}, emptyLocationRepeats),
		newSection(SectionSeasonalPatterns, func(_ context.Context, in *Input) (models.SeasonalPatterns, error) {
			return SeasonalPatterns(in.Entries), nil
		}, emptySeasonalPatterns),
		newSection(SectionPhotoTimeline, func(_ context.Context, in *Input) ([]models.PhotoEntry, error) {
			return PhotoTimeline(in.Entries), nil
		}, emptyPhotoTimeline),
		newSection(SectionTravelPersonality, func(ctx context.Context, in *Input) (models.TravelPersonality, error) {
			return TravelPersonality(ctx, in, cfg)
		}, defaultTravelPersonality),
		newSection(SectionGeographicFacts, func(ctx context.Context, in *Input) (models.GeographicFacts, error) {
			return GeographicFacts(ctx, in.Entries, e.geocoder, e.geoMaxLocations, e.geoTimeout)
		}, emptyGeographicFacts),
		newSection(SectionActivityPatterns, func(_ context.Context, in *Input) (models.ActivityPatterns, error) {
			return ActivityPatterns(in.Entries, cfg.ActivityTopN, cfg.ClusterMinTags), nil
		}, emptyActivityPatterns),
		newSection(SectionMoodTimeline, func(ctx context.Context, in *Input) (models.MoodTimeline, error) {
			return MoodTimeline(ctx, in)
		}, emptyMoodTimeline),
		newSection(SectionBucketList, func(_ context.Context, in *Input) (models.BucketList, error) {
			return BucketList(in.Entries, cfg.BucketListMin, cfg.BucketListMax), nil
		}, defaultBucketList),
		newSection(SectionRecommendations, func(_ context.Context, in *Input) (models.Recommendations, error) {
			return Recommendations(in.Entries), nil
		}, defaultRecommendations),
		newSection(SectionSpotAnalysis, func(ctx context.Context, in *Input) (models.SpotAnalysis, error) {
			return SpotAnalysis(ctx, in, cfg)
		}, emptySpotAnalysis),
		newSection(SectionTravelSummaries, func(ctx context.Context, in *Input) (models.TravelSummaries, error) {
			return TravelSummaries(ctx, in, cfg)
		}, emptyTravelSummaries),
		newSection(SectionMoodMapping, func(ctx context.Context, in *Input) (models.MoodMapping, error) {
			return MoodMapping(ctx, in, cfg.TopLocations)
		}, emptyMoodMapping),
		newSection(SectionTravelStyle, func(_ context.Context, in *Input) (models.TravelStyle, error) {
			return TravelStyle(in.Entries), nil
		}, defaultTravelStyle),
	}
}

// applySection stores value in its report field. It returns false when the
// value has the wrong type for the section or the section is unknown.
func applySection(r *models.Report, name string, value any) bool {
	switch name {
	case SectionSentiment:
		return assign(&r.Sentiment, value)
	case SectionLocationSentiment:
		return assign(&r.LocationSentiment, value)
	case SectionHighlights:
		return assign(&r.Highlights, value)
	case SectionLocationRepeats:
		ok := assign(&r.LocationRepeats, value)
		r.UniqueLocationsCount = r.LocationRepeats.TotalUnique
		return ok
	case SectionSeasonalPatterns:
		return assign(&r.SeasonalPatterns, value)
	case SectionPhotoTimeline:
		return assign(&r.PhotoTimeline, value)
	case SectionTravelPersonality:
		return assign(&r.TravelPersonality, value)
	case SectionGeographicFacts:
		ok := assign(&r.GeographicFacts, value)
		r.TotalDistanceKm = r.GeographicFacts.TotalDistance
		return ok
	case SectionActivityPatterns:
		return assign(&r.ActivityPatterns, value)
	case SectionMoodTimeline:
		return assign(&r.MoodTimeline, value)
	case SectionBucketList:
		return assign(&r.BucketList, value)
	case SectionRecommendations:
		return assign(&r.Recommendations, value)
	case SectionSpotAnalysis:
		return assign(&r.SpotAnalysis, value)
	case SectionTravelSummaries:
		return assign(&r.TravelSummaries, value)
	case SectionMoodMapping:
		return assign(&r.MoodMapping, value)
	case SectionTravelStyle:
		return assign(&r.TravelStyle, value)
	default:
		return false
	}
}

func assign[T any](dst *T, value any) bool {
	v, ok := value.(T)
	if ok {
		*dst = v
	}
	return ok
}

// Defaults. Slices and maps are non-nil so they encode as [] and {}.

func emptyStrings() []string { return []string{} }

func emptySentimentTimeline() models.SentimentTimeline {
	return models.SentimentTimeline{Timeline: []models.TimelinePoint{}}
}

func emptyLocationSentiment() models.LocationSentiment {
	return models.LocationSentiment{
		AverageByLocation: map[string]float64{},
		TopLocations:      []models.LocationScore{},
		BottomLocations:   []models.LocationScore{},
	}
}

func emptyLocationRepeats() models.LocationRepeats {
	return models.LocationRepeats{MostVisited: []models.LocationCount{}}
}

func emptySeasonalPatterns() models.SeasonalPatterns {
	return models.SeasonalPatterns{}
}

func emptyPhotoTimeline() []models.PhotoEntry { return []models.PhotoEntry{} }

func defaultTravelPersonality() models.TravelPersonality {
	return models.TravelPersonality{Label: labelExplorer, Traits: []string{}}
}

func emptyGeographicFacts() models.GeographicFacts {
	return models.GeographicFacts{Facts: []string{}, ClimateZones: []string{}}
}

func emptyActivityPatterns() models.ActivityPatterns {
	return models.ActivityPatterns{Patterns: []models.TagCount{}, Clusters: map[string][]string{}}
}

func emptyMoodTimeline() models.MoodTimeline {
	return models.MoodTimeline{Timeline: []models.MoodPoint{}, AvgMood: neutralMood}
}

func defaultBucketList() models.BucketList {
	return models.BucketList{
		Items:         append([]string(nil), defaultBucketItems[:3]...),
		GeneratedFrom: models.BucketListSource{Activities: []string{}, Locations: []string{}},
	}
}

func defaultRecommendations() models.Recommendations {
	return models.Recommendations{Recommendations: []string{fallbackRecommendation}}
}

func emptySpotAnalysis() models.SpotAnalysis {
	return models.SpotAnalysis{HiddenGems: []models.Spot{}, Hotspots: []models.Spot{}}
}

func emptyTravelSummaries() models.TravelSummaries {
	return models.TravelSummaries{Summaries: []models.TravelSummary{}}
}

func emptyMoodMapping() models.MoodMapping {
	return models.MoodMapping{HappiestPlaces: []models.LocationScore{}, MoodMap: map[string]string{}}
}

func defaultTravelStyle() models.TravelStyle {
	return models.TravelStyle{Style: styleBalanced}
}
