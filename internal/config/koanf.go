// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths searched for a config file, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/wayfarer/config.yaml",
	"/etc/wayfarer/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the built-in defaults. They are applied first and
// then overridden by the config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			MaxBodyBytes:      10 << 20, // 10MB
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Insights: InsightsConfig{
			Parallel:        false,
			AnalyzerTimeout: 15 * time.Second,

			HighlightMinWords:    5,
			HighlightMinPolarity: 0.2,
			HighlightLimit:       10,
			SnippetLength:        200,
			TopLocations:         3,

			MostVisitedLimit:     5,
			SpotLimit:            3,
			HotspotMultiplier:    1.5,
			HiddenGemMinPolarity: 0.3,

			ActivityTopN:        10,
			ClusterMinTags:      4,
			LongTripDays:        14,
			ShortTripDays:       3,
			WanderlustLocations: 10,
			PositiveTraveler:    0.3,
			ThoughtfulTraveler:  -0.1,
			BucketListMin:       3,
			BucketListMax:       5,
			SummaryMinPolarity:  0.6,
			SummaryMinWords:     15,
			SummaryLimit:        5,
			WordFrequencyLimit:  50,
		},
		Geocoder: GeocoderConfig{
			Provider:       "offline",
			BaseURL:        "https://nominatim.openstreetmap.org",
			UserAgent:      "wayfarer/1.0 (+https://github.com/tomtom215/wayfarer)",
			Timeout:        5 * time.Second,
			MinDelay:       time.Second, // Nominatim usage policy: max 1 request per second
			MaxLocations:   25,
			SectionTimeout: 10 * time.Second,
			CacheSize:      10000,
			CacheTTL:       7 * 24 * time.Hour,
			StorePath:      "",
			GCInterval:     10 * time.Minute,
		},
		Sentiment: SentimentConfig{
			Provider:    "lexicon",
			URL:         "",
			Timeout:     5 * time.Second,
			LexiconPath: "",
		},
	}
}

// Default returns the built-in configuration without reading any file or
// environment variable.
func Default() *Config {
	return defaultConfig()
}

// Load loads, merges and validates the configuration.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// LoadWithKoanf loads configuration with Koanf v2 from layered sources:
//  1. Defaults: built-in values from defaultConfig
//  2. Config file: optional YAML file
//  3. Environment variables: override any mapped setting
//
// Precedence is ENV > File > Defaults.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// HTTP_PORT -> server.port, GEOCODER_PROVIDER -> geocoder.provider
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed as comma separated lists when set from env.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma separated env values for slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"http_host":        "server.host",
	"server_timeout":   "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_requests",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"max_body_bytes":      "security.max_body_bytes",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Insights engine
	"insights_parallel":             "insights.parallel",
	"insights_analyzer_timeout":     "insights.analyzer_timeout",
	"insights_hotspot_multiplier":   "insights.hotspot_multiplier",
	"insights_hidden_gem_polarity":  "insights.hidden_gem_min_polarity",
	"insights_highlight_limit":      "insights.highlight_limit",
	"insights_word_frequency_limit": "insights.word_frequency_limit",

	// Geocoder
	"geocoder_provider":        "geocoder.provider",
	"geocoder_base_url":        "geocoder.base_url",
	"geocoder_user_agent":      "geocoder.user_agent",
	"geocoder_timeout":         "geocoder.timeout",
	"geocoder_min_delay":       "geocoder.min_delay",
	"geocoder_max_locations":   "geocoder.max_locations",
	"geocoder_section_timeout": "geocoder.section_timeout",
	"geocoder_cache_size":      "geocoder.cache_size",
	"geocoder_cache_ttl":       "geocoder.cache_ttl",
	"geocoder_store_path":      "geocoder.store_path",
	"geocoder_gc_interval":     "geocoder.gc_interval",

	// Sentiment
	"sentiment_provider":     "sentiment.provider",
	"sentiment_url":          "sentiment.url",
	"sentiment_timeout":      "sentiment.timeout",
	"sentiment_lexicon_path": "sentiment.lexicon_path",
}

// envTransformFunc maps an environment variable name to a koanf path.
// Unmapped variables return "" and are ignored, so unrelated environment
// variables never leak into the configuration.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
