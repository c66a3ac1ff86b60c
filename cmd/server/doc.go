// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package main is the entry point for the Wayfarer insights server.

Wayfarer accepts a travel journal export as JSON, normalizes each page into
an entry and returns a report of sixteen independently computed insight
sections: sentiment highlights, seasonal patterns, spatial clusters,
travel personality and more.

# Startup

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog with JSON or console output
 3. Sentiment scorer: built-in lexicon or remote HTTP scorer
 4. Geocoder: offline gazetteer or Nominatim, behind an LRU and optional badger store
 5. Insights engine and Chi router
 6. Supervisor tree: HTTP server plus geocode store GC

# Signals

SIGINT and SIGTERM cancel the supervisor context. The readiness probe fails
first, then in-flight requests drain for SHUTDOWN_TIMEOUT.

# Example

	export HTTP_PORT=8080
	export GEOCODER_PROVIDER=nominatim
	export GEOCODER_STORE_PATH=/var/lib/wayfarer/geocode
	./wayfarer-server

	curl -s -X POST localhost:8080/process-insights \
	  -H 'Content-Type: application/json' \
	  -d @journal.json
*/
package main
