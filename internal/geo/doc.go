// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package geo resolves free-text location names to coordinates and provides
the spherical math used by the geographic facts section.

Providers:

  - offline: built-in gazetteer of major cities and countries (default)
  - nominatim: OpenStreetMap Nominatim, rate limited and circuit broken
  - none: no geocoding; geographic facts degrade to empty

Every provider is wrapped in a CachedGeocoder (in-memory LRU, optional
BadgerDB store) keyed by the normalized name.
*/
package geo
