// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process wide; it caches struct
// metadata after the first call. It backs two callers:
//
//   - the API, which validates decoded request bodies (allPages is required)
//   - the config package, which validates the merged koanf configuration
//
// Field names in error messages come from json tags for request structs and
// koanf tags for configuration, e.g. "allPages is required" or
// "geocoder.min_delay must be greater than or equal to 0s".
package validation
