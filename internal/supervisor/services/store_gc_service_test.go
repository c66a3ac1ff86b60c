// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type fakeCollector struct {
	runs  atomic.Int32
	ratio atomic.Value
	err   error
}

func (f *fakeCollector) RunGC(discardRatio float64) error {
	f.runs.Add(1)
	f.ratio.Store(discardRatio)
	return f.err
}

func TestNewStoreGCServiceDefaults(t *testing.T) {
	t.Parallel()

	svc := NewStoreGCService(&fakeCollector{}, 0)
	if svc.interval != 10*time.Minute {
		t.Errorf("interval = %v, want 10m", svc.interval)
	}
	if svc.discardRatio != DefaultDiscardRatio {
		t.Errorf("discardRatio = %v, want %v", svc.discardRatio, DefaultDiscardRatio)
	}
	if svc.String() != "geocode-cache-gc" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestStoreGCServiceRunsPeriodically(t *testing.T) {
	t.Parallel()

	store := &fakeCollector{}
	svc := NewStoreGCService(store, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(time.Second)
	for store.runs.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if store.runs.Load() < 2 {
		t.Errorf("gc runs = %d, want at least 2", store.runs.Load())
	}
	if got := store.ratio.Load(); got != DefaultDiscardRatio {
		t.Errorf("discard ratio = %v, want %v", got, DefaultDiscardRatio)
	}
}

func TestStoreGCServiceFailure(t *testing.T) {
	t.Parallel()

	gcErr := errors.New("value log corrupted")
	svc := NewStoreGCService(&fakeCollector{err: gcErr}, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, gcErr) {
		t.Errorf("Serve() = %v, want %v", err, gcErr)
	}
}
