// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package models

// Report status values.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Report is the full insight bundle returned for one batch of pages.
//
// Two values are promoted out of their sections: the unique location count
// of location_repeats becomes unique_locations_count, and the total distance
// of geographic_facts becomes total_distance_km. Field order is the wire
// order.
type Report struct {
	Status               string            `json:"status"`
	Sentiment            SentimentTimeline `json:"sentiment"`
	LocationSentiment    LocationSentiment `json:"location_sentiment"`
	Highlights           []string          `json:"highlights"`
	LocationRepeats      LocationRepeats   `json:"location_repeats"`
	UniqueLocationsCount int               `json:"unique_locations_count"`
	SeasonalPatterns     SeasonalPatterns  `json:"seasonal_patterns"`
	PhotoTimeline        []PhotoEntry      `json:"photo_timeline"`
	TravelPersonality    TravelPersonality `json:"travel_personality"`
	GeographicFacts      GeographicFacts   `json:"geographic_facts"`
	TotalDistanceKm      float64           `json:"total_distance_km"`
	ActivityPatterns     ActivityPatterns  `json:"activity_patterns"`
	MoodTimeline         MoodTimeline      `json:"mood_timeline"`
	BucketList           BucketList        `json:"bucket_list"`
	Recommendations      Recommendations   `json:"recommendations"`
	SpotAnalysis         SpotAnalysis      `json:"spot_analysis"`
	TravelSummaries      TravelSummaries   `json:"travel_summaries"`
	MoodMapping          MoodMapping       `json:"mood_mapping"`
	TravelStyle          TravelStyle       `json:"travel_style"`
}

// FailureResponse is the body returned when a request cannot be processed.
type FailureResponse struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}

// SentimentTimeline is the per-entry sentiment series.
type SentimentTimeline struct {
	Timeline     []TimelinePoint `json:"timeline"`
	AverageScore float64         `json:"average_score"`
}

// TimelinePoint is one scored, dated entry.
type TimelinePoint struct {
	Date         string  `json:"date"`
	Score        float64 `json:"score"`
	Subjectivity float64 `json:"subjectivity"`
}

// LocationScore pairs a location with an average polarity.
type LocationScore struct {
	Location string  `json:"location"`
	Score    float64 `json:"score"`
}

// LocationSentiment aggregates polarity per location.
type LocationSentiment struct {
	AverageByLocation map[string]float64 `json:"average_by_location"`
	TopLocations      []LocationScore    `json:"top_locations"`
	BottomLocations   []LocationScore    `json:"bottom_locations"`
	OverallAverage    float64            `json:"overall_average"`
}

// LocationCount pairs a location with its visit count.
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// LocationRepeats lists the most visited places. TotalUnique is promoted to
// the top level of the report and is not serialized here.
type LocationRepeats struct {
	MostVisited []LocationCount `json:"most_visited"`
	TotalUnique int             `json:"-"`
}

// SeasonCounts holds entry counts per meteorological season.
type SeasonCounts struct {
	Winter int `json:"Winter"`
	Spring int `json:"Spring"`
	Summer int `json:"Summer"`
	Fall   int `json:"Fall"`
}

// SeasonalPatterns is the season histogram of dated entries.
type SeasonalPatterns struct {
	BySeason         SeasonCounts `json:"by_season"`
	MostCommonSeason string       `json:"most_common_season"`
}

// PhotoEntry is one image on the photo timeline.
type PhotoEntry struct {
	Date     string `json:"date"`
	Image    string `json:"image"`
	Location string `json:"location,omitempty"`
}

// TravelPersonality is the derived traveler profile.
type TravelPersonality struct {
	Label             string   `json:"travel_personality"`
	Traits            []string `json:"personality_traits"`
	AvgTripDuration   float64  `json:"avg_trip_duration"`
	LocationDiversity int      `json:"location_diversity"`
	AvgSentiment      float64  `json:"avg_sentiment"`
}

// GeographicFacts holds human readable facts about the trip geography.
// TotalDistance is promoted to the top level of the report.
type GeographicFacts struct {
	Facts         []string `json:"geographic_facts"`
	TotalDistance float64  `json:"-"`
	ClimateZones  []string `json:"climate_zones"`
}

// TagCount pairs an activity tag with its frequency.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// ActivityPatterns is the tag histogram and the rule based tag clusters.
type ActivityPatterns struct {
	Patterns []TagCount          `json:"activity_patterns"`
	Clusters map[string][]string `json:"activity_clusters"`
}

// MoodPoint is the average mood of one calendar month.
type MoodPoint struct {
	Month int     `json:"month"`
	Year  int     `json:"year"`
	Mood  float64 `json:"mood"`
}

// MoodTimeline is the month grouped mood series.
type MoodTimeline struct {
	Timeline []MoodPoint `json:"mood_timeline"`
	AvgMood  float64     `json:"avg_mood"`
}

// BucketListSource records the signals a bucket list was built from.
type BucketListSource struct {
	Activities []string `json:"activities"`
	Locations  []string `json:"locations"`
}

// BucketList holds suggested future trips.
type BucketList struct {
	Items         []string         `json:"bucket_list"`
	GeneratedFrom BucketListSource `json:"generated_from"`
}

// Recommendations holds short suggestions derived from journal keywords.
type Recommendations struct {
	Recommendations []string `json:"recommendations"`
}

// Spot is a classified location.
type Spot struct {
	Location string `json:"location"`
	Type     string `json:"type"`
}

// SpotAnalysis separates hidden gems from crowded hotspots.
type SpotAnalysis struct {
	HiddenGems []Spot `json:"hidden_gems"`
	Hotspots   []Spot `json:"tourist_hotspots"`
}

// TravelSummary is a one line highlight for a location.
type TravelSummary struct {
	Location  string `json:"location"`
	Highlight string `json:"highlight"`
}

// TravelSummaries holds the best highlight per location.
type TravelSummaries struct {
	Summaries []TravelSummary `json:"summaries"`
}

// MoodMapping labels each location positive or negative.
type MoodMapping struct {
	HappiestPlaces []LocationScore   `json:"happiest_places"`
	MoodMap        map[string]string `json:"mood_map"`
}

// TravelStyle is the dominant style of the journal.
type TravelStyle struct {
	Style string `json:"travel_style"`
}

// WordCount pairs a word with its frequency.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}
