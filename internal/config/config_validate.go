// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package config

import (
	"fmt"

	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/validation"
)

// Validate checks struct tag rules first and then the cross-field rules
// that tags cannot express.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	validators := []func() error{
		c.validateLogging,
		c.validateInsights,
		c.validateGeocoder,
		c.validateSentiment,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, panic, disabled; got %q", c.Logging.Level)
	}
	return nil
}

// validateInsights checks threshold pairs that must stay ordered.
func (c *Config) validateInsights() error {
	in := &c.Insights
	if in.BucketListMin > in.BucketListMax {
		return fmt.Errorf("insights.bucket_list_min (%d) must not exceed insights.bucket_list_max (%d)",
			in.BucketListMin, in.BucketListMax)
	}
	if in.ShortTripDays >= in.LongTripDays {
		return fmt.Errorf("insights.short_trip_days (%g) must be less than insights.long_trip_days (%g)",
			in.ShortTripDays, in.LongTripDays)
	}
	if in.ThoughtfulTraveler >= in.PositiveTraveler {
		return fmt.Errorf("insights.thoughtful_traveler (%g) must be less than insights.positive_traveler (%g)",
			in.ThoughtfulTraveler, in.PositiveTraveler)
	}
	return nil
}

func (c *Config) validateGeocoder() error {
	if c.Geocoder.Provider != "nominatim" {
		return nil
	}
	if c.Geocoder.BaseURL == "" {
		return fmt.Errorf("GEOCODER_BASE_URL is required when GEOCODER_PROVIDER=nominatim")
	}
	if err := validateBaseURL(c.Geocoder.BaseURL, "GEOCODER_BASE_URL"); err != nil {
		return fmt.Errorf("GEOCODER_BASE_URL is invalid: %w", err)
	}
	// Nominatim's usage policy rejects requests without an identifying agent.
	if c.Geocoder.UserAgent == "" {
		return fmt.Errorf("GEOCODER_USER_AGENT is required when GEOCODER_PROVIDER=nominatim")
	}
	return nil
}

func (c *Config) validateSentiment() error {
	if c.Sentiment.Provider != "http" {
		return nil
	}
	if c.Sentiment.URL == "" {
		return fmt.Errorf("SENTIMENT_URL is required when SENTIMENT_PROVIDER=http")
	}
	if err := validateHTTPURL(c.Sentiment.URL, "SENTIMENT_URL"); err != nil {
		return fmt.Errorf("SENTIMENT_URL is invalid: %w", err)
	}
	return nil
}
