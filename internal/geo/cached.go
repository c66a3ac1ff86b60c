// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package geo

import (
	"context"
	"time"

	"github.com/tomtom215/wayfarer/internal/cache"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/metrics"
)

// Lookup is a cached geocode result. Misses are cached too so that an
// unknown place is not asked for again on every request.
type Lookup struct {
	Point Point `json:"point"`
	Found bool  `json:"found"`
}

// CachedGeocoder puts an in-memory LRU and an optional persistent Store in
// front of another Geocoder. Errors from the inner geocoder are never cached.
type CachedGeocoder struct {
	inner Geocoder
	lru   *cache.LRUCache[Lookup]
	store Store
}

// NewCachedGeocoder wraps inner. store may be nil.
func NewCachedGeocoder(inner Geocoder, size int, ttl time.Duration, store Store) *CachedGeocoder {
	return &CachedGeocoder{
		inner: inner,
		lru:   cache.NewLRUCache[Lookup](size, ttl),
		store: store,
	}
}

// Name implements Geocoder and reports the inner provider.
func (g *CachedGeocoder) Name() string { return g.inner.Name() }

// Geocode implements Geocoder.
func (g *CachedGeocoder) Geocode(ctx context.Context, name string) (Point, bool, error) {
	key := NormalizeName(name)
	if key == "" {
		return Point{}, false, nil
	}

	if l, ok := g.lru.Get(key); ok {
		metrics.RecordCacheLookup("geocode", true)
		return l.Point, l.Found, nil
	}
	metrics.RecordCacheLookup("geocode", false)

	if g.store != nil {
		l, ok, err := g.store.Get(key)
		switch {
		case err != nil:
			logging.Ctx(ctx).Warn().Err(err).Str("location", key).Msg("Geocode store read failed")
		case ok:
			metrics.RecordCacheLookup("geocode_store", true)
			g.lru.Add(key, l)
			return l.Point, l.Found, nil
		default:
			metrics.RecordCacheLookup("geocode_store", false)
		}
	}

	p, found, err := g.inner.Geocode(ctx, name)
	if err != nil {
		return Point{}, false, err
	}

	l := Lookup{Point: p, Found: found}
	g.lru.Add(key, l)
	if g.store != nil {
		if err := g.store.Put(key, l); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("location", key).Msg("Geocode store write failed")
		}
	}
	return p, found, nil
}

// CacheStats describes the in-memory layer of a CachedGeocoder.
type CacheStats struct {
	Hits       int64 `json:"hits"`
	Misses     int64 `json:"misses"`
	Size       int   `json:"size"`
	Persistent bool  `json:"persistent"`
}

// Stats returns the in-memory hit and miss counters and the current size.
func (g *CachedGeocoder) Stats() CacheStats {
	hits, misses, size := g.lru.Stats()
	return CacheStats{Hits: hits, Misses: misses, Size: size, Persistent: g.Persistent()}
}

// Collector is implemented by stores that need periodic garbage collection.
type Collector interface {
	RunGC(discardRatio float64) error
}

// RunGC drops expired in-memory lookups, then collects the persistent store
// when it supports it.
func (g *CachedGeocoder) RunGC(discardRatio float64) error {
	if removed := g.lru.CleanupExpired(); removed > 0 {
		logging.Debug().Int("removed", removed).Msg("Expired geocode lookups dropped")
	}
	c, ok := g.store.(Collector)
	if !ok {
		return nil
	}
	return c.RunGC(discardRatio)
}

// Persistent reports whether results survive restarts.
func (g *CachedGeocoder) Persistent() bool { return g.store != nil }

// Close closes the persistent store, if any.
func (g *CachedGeocoder) Close() error {
	if g.store == nil {
		return nil
	}
	return g.store.Close()
}
