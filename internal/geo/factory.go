// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package geo

import (
	"fmt"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/logging"
)

// NewFromConfig builds the configured geocoder wrapped in a cache.
// Provider "none" returns a nil geocoder, which disables coordinate based
// facts. The caller owns the returned geocoder and should Close it.
func NewFromConfig(cfg *config.GeocoderConfig) (*CachedGeocoder, error) {
	var inner Geocoder
	switch cfg.Provider {
	case "none":
		return nil, nil
	case "offline":
		inner = NewOfflineGeocoder(nil)
	case "nominatim":
		inner = NewNominatimGeocoder(cfg.BaseURL, cfg.UserAgent, cfg.Timeout, cfg.MinDelay)
	default:
		return nil, fmt.Errorf("unknown geocoder provider %q", cfg.Provider)
	}

	var store Store
	if cfg.StorePath != "" {
		s, err := OpenBadgerStore(cfg.StorePath, cfg.CacheTTL)
		if err != nil {
			return nil, err
		}
		store = s
	}

	logging.Info().
		Str("provider", cfg.Provider).
		Int("cache_size", cfg.CacheSize).
		Bool("persistent", store != nil).
		Msg("Geocoder initialized")

	return NewCachedGeocoder(inner, cfg.CacheSize, cfg.CacheTTL, store), nil
}
