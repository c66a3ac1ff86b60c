// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package cache holds the in-memory lookup structures used by the insight
pipeline.

LRUCache is a generic, size bounded cache with optional TTL. The geocoder
keeps one in front of the provider so repeated place names across requests
never hit Nominatim twice:

	lru := cache.NewLRUCache[geo.Lookup](10000, 7*24*time.Hour)
	lru.Add("lisbon, portugal", lookup)

Expired entries are dropped lazily on Get; CleanupExpired sweeps the rest
and runs on the same schedule as the geocode store GC.

KeywordMatcher is an Aho-Corasick automaton over a fixed keyword set. One
pass over an entry text finds every keyword it contains, which the insight
analyzers use for activity and mood classification:

	m := cache.NewKeywordGroups(order, map[string][]string{
	    "beach":  {"beach", "ocean", "surf"},
	    "museum": {"museum", "gallery"},
	})
	kinds := m.Values(strings.ToLower(text))

Both types are safe for concurrent use; KeywordMatcher is immutable after
construction.
*/
package cache
