// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package config provides layered configuration for the Wayfarer server and CLI.

Configuration is assembled with Koanf v2 from three sources, later sources
overriding earlier ones:

  - Built-in defaults (defaultConfig)
  - An optional YAML file (CONFIG_PATH, ./config.yaml, /etc/wayfarer/config.yaml)
  - Environment variables listed in envMappings

After merging, Validate applies go-playground/validator struct tags and the
cross-field rules that tags cannot express (nominatim needs a base URL, the
http sentiment provider needs a URL, threshold pairs must stay ordered).

# Configuration Groups

  - ServerConfig: listen address, request timeout, shutdown grace period
  - SecurityConfig: CORS origins, rate limiting, request body limit
  - LoggingConfig: zerolog level, format and caller annotation
  - InsightsConfig: engine mode and every analyzer threshold
  - GeocoderConfig: geocoding backend, rate limit and cache
  - SentimentConfig: sentiment scorer selection

# Environment Variables

Selected variables (see envMappings for the full list):

  - HTTP_PORT: Listen port (default: 8080)
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - CORS_ORIGINS: Comma separated allowed origins (default: *)
  - MAX_BODY_BYTES: Request body limit (default: 10MB)
  - INSIGHTS_PARALLEL: Run analyzers concurrently (default: false)
  - GEOCODER_PROVIDER: none, offline, nominatim (default: offline)
  - GEOCODER_STORE_PATH: Badger directory for a persistent geocode cache
  - SENTIMENT_PROVIDER: lexicon, http (default: lexicon)
  - SENTIMENT_URL: Scoring endpoint for the http provider

# Example

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	engine := insights.NewEngine(cfg.Insights, scorer, geocoder)

# Thread Safety

Config values are read-only after Load and safe for concurrent reads.
*/
package config
