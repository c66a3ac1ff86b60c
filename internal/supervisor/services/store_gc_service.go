// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/wayfarer/internal/logging"
)

// DefaultDiscardRatio is the value log discard ratio passed to badger.
const DefaultDiscardRatio = 0.5

// GarbageCollector is satisfied by *geo.CachedGeocoder and *geo.BadgerStore.
type GarbageCollector interface {
	RunGC(discardRatio float64) error
}

// StoreGCService periodically garbage collects the geocode cache: expired
// in-memory lookups and, when configured, the badger value log. A failed
// collection returns an error so suture restarts the service with backoff.
type StoreGCService struct {
	store        GarbageCollector
	interval     time.Duration
	discardRatio float64
	name         string
}

// NewStoreGCService collects store every interval. A non-positive interval
// means 10 minutes.
func NewStoreGCService(store GarbageCollector, interval time.Duration) *StoreGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &StoreGCService{
		store:        store,
		interval:     interval,
		discardRatio: DefaultDiscardRatio,
		name:         "geocode-cache-gc",
	}
}

// Serve implements suture.Service.
func (s *StoreGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.store.RunGC(s.discardRatio); err != nil {
				return fmt.Errorf("geocode cache gc failed: %w", err)
			}
			logging.Debug().Dur("duration", time.Since(start)).Msg("Geocode cache collected")
		}
	}
}

// String implements fmt.Stringer.
func (s *StoreGCService) String() string {
	return s.name
}
