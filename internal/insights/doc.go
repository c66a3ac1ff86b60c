// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package insights derives the report sections from normalized journal entries
and merges them into a models.Report.

Each section is an Analyzer. The Engine runs all of them over the same
read-only entries, sequentially or in parallel, and isolates failures: an
analyzer that returns an error, panics or exceeds its timeout contributes its
Default payload instead, and the run is reported as degraded.

Sections:

  - sentiment, location_sentiment, highlights (sentiment.go)
  - seasonal_patterns, mood_timeline, photo_timeline (temporal.go)
  - location_repeats, spot_analysis, geographic_facts (spatial.go)
  - activity_patterns (activity.go), travel_personality (personality.go)
  - recommendations, bucket_list (recommend.go)
  - travel_summaries, mood_mapping, travel_style (summaries.go)

Sentiment is scored through a per-run sentiment.Memo, so each distinct text
is scored once however many sections read it. Geocoding goes through the
geo.Geocoder injected into NewEngine.

Usage:

	engine := insights.NewEngine(cfg.Insights, scorer, geocoder,
	    insights.WithGeoLimits(cfg.Geocoder.MaxLocations, cfg.Geocoder.SectionTimeout))
	report, summary := engine.Run(ctx, entries)
	if summary.Degraded() {
	    // report is complete; failed sections hold their defaults
	}
*/
package insights
