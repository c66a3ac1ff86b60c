// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package config

import (
	"time"
)

// Config holds all application configuration.
//
// Configuration is loaded in layers (see LoadWithKoanf):
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file (CONFIG_PATH or config.yaml)
//  3. Environment variables (see envMappings)
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Insights  InsightsConfig  `koanf:"insights"`
	Geocoder  GeocoderConfig  `koanf:"geocoder"`
	Sentiment SentimentConfig `koanf:"sentiment"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	Environment     string        `koanf:"environment" validate:"oneof=development production"`
}

// SecurityConfig holds transport hardening settings. Wayfarer has no
// authentication; these only bound what a client can send.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests" validate:"min=1,max=100000"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gte=1s"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	MaxBodyBytes      int64         `koanf:"max_body_bytes" validate:"min=1024"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// InsightsConfig holds engine settings and every classification threshold
// used by the analyzers.
type InsightsConfig struct {
	Parallel        bool          `koanf:"parallel"`
	AnalyzerTimeout time.Duration `koanf:"analyzer_timeout" validate:"gt=0"`

	// Sentiment sections
	HighlightMinWords    int     `koanf:"highlight_min_words" validate:"gte=0"`
	HighlightMinPolarity float64 `koanf:"highlight_min_polarity" validate:"gte=-1,lte=1"`
	HighlightLimit       int     `koanf:"highlight_limit" validate:"min=1"`
	SnippetLength        int     `koanf:"snippet_length" validate:"min=20"`
	TopLocations         int     `koanf:"top_locations" validate:"min=1"`

	// Spatial sections
	MostVisitedLimit     int     `koanf:"most_visited_limit" validate:"min=1"`
	SpotLimit            int     `koanf:"spot_limit" validate:"min=1"`
	HotspotMultiplier    float64 `koanf:"hotspot_multiplier" validate:"gt=1"`
	HiddenGemMinPolarity float64 `koanf:"hidden_gem_min_polarity" validate:"gte=-1,lte=1"`

	// Activity and personality
	ActivityTopN        int     `koanf:"activity_top_n" validate:"min=1"`
	ClusterMinTags      int     `koanf:"cluster_min_tags" validate:"min=1"`
	LongTripDays        float64 `koanf:"long_trip_days" validate:"gt=0"`
	ShortTripDays       float64 `koanf:"short_trip_days" validate:"gt=0"`
	WanderlustLocations int     `koanf:"wanderlust_locations" validate:"min=1"`
	PositiveTraveler    float64 `koanf:"positive_traveler" validate:"gte=-1,lte=1"`
	ThoughtfulTraveler  float64 `koanf:"thoughtful_traveler" validate:"gte=-1,lte=1"`
	BucketListMin       int     `koanf:"bucket_list_min" validate:"min=1"`
	BucketListMax       int     `koanf:"bucket_list_max" validate:"min=1"`
	SummaryMinPolarity  float64 `koanf:"summary_min_polarity" validate:"gte=-1,lte=1"`
	SummaryMinWords     int     `koanf:"summary_min_words" validate:"gte=0"`
	SummaryLimit        int     `koanf:"summary_limit" validate:"min=1"`
	WordFrequencyLimit  int     `koanf:"word_frequency_limit" validate:"min=1"`
}

// GeocoderConfig selects and tunes the geocoding backend used by the
// geographic facts section.
type GeocoderConfig struct {
	// Provider is one of: none, offline, nominatim.
	Provider     string        `koanf:"provider" validate:"oneof=none offline nominatim"`
	BaseURL      string        `koanf:"base_url"`
	UserAgent    string        `koanf:"user_agent"`
	Timeout      time.Duration `koanf:"timeout" validate:"gt=0"`
	MinDelay     time.Duration `koanf:"min_delay" validate:"gte=0"`
	MaxLocations int           `koanf:"max_locations" validate:"min=1"`
	// SectionTimeout bounds all geocoding done for one request.
	SectionTimeout time.Duration `koanf:"section_timeout" validate:"gt=0"`
	CacheSize      int           `koanf:"cache_size" validate:"gte=0"`
	CacheTTL       time.Duration `koanf:"cache_ttl" validate:"gte=0"`
	// StorePath enables a badger backed geocode cache that survives restarts.
	StorePath string `koanf:"store_path"`
	// GCInterval is how often expired lookups are swept and the store collected.
	GCInterval time.Duration `koanf:"gc_interval" validate:"gte=1m"`
}

// SentimentConfig selects the sentiment scorer.
type SentimentConfig struct {
	// Provider is one of: lexicon, http.
	Provider    string        `koanf:"provider" validate:"oneof=lexicon http"`
	URL         string        `koanf:"url"`
	Timeout     time.Duration `koanf:"timeout" validate:"gt=0"`
	LexiconPath string        `koanf:"lexicon_path"`
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
