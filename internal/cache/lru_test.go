// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package cache

import (
	"strconv"
	"sync"
	"testing"
	"time"
)

type point struct{ lat, lon float64 }

func cacheSize[V any](c *LRUCache[V]) int {
	_, _, size := c.Stats()
	return size
}

func TestLRUCache_BasicOperations(t *testing.T) {
	t.Parallel()

	c := NewLRUCache[point](3, time.Minute)
	c.Add("paris", point{48.85, 2.35})
	c.Add("tokyo", point{35.68, 139.69})

	got, found := c.Get("paris")
	if !found {
		t.Fatal("expected to find paris")
	}
	if got.lat != 48.85 {
		t.Errorf("paris lat = %v, want 48.85", got.lat)
	}
	if _, found := c.Get("lima"); found {
		t.Error("lima should not be cached")
	}
	hits, misses, size := c.Stats()
	if hits != 1 || misses != 1 || size != 2 {
		t.Errorf("Stats() = (%d, %d, %d), want (1, 1, 2)", hits, misses, size)
	}
}

func TestLRUCache_Eviction(t *testing.T) {
	t.Parallel()

	c := NewLRUCache[int](3, time.Minute)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	// 'a' becomes most recently used, so 'b' is evicted next.
	c.Get("a")
	c.Add("d", 4)

	if _, found := c.Get("b"); found {
		t.Error("expected 'b' to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, found := c.Get(key); !found {
			t.Errorf("expected %q to be present", key)
		}
	}
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	t.Parallel()

	c := NewLRUCache[string](2, time.Minute)
	c.Add("k", "old")
	c.Add("k", "new")

	if v, _ := c.Get("k"); v != "new" {
		t.Errorf("Get(k) = %q, want new", v)
	}
	if size := cacheSize(c); size != 1 {
		t.Errorf("size = %d, want 1", size)
	}
}

func TestLRUCache_TTLExpiration(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewLRUCache[int](10, time.Minute)
	c.now = func() time.Time { return now }

	c.Add("a", 1)
	c.Add("b", 2)
	if _, found := c.Get("a"); !found {
		t.Fatal("expected to find 'a' before expiry")
	}

	now = now.Add(2 * time.Minute)
	if _, found := c.Get("a"); found {
		t.Error("expected 'a' to be expired")
	}
	if removed := c.CleanupExpired(); removed != 1 {
		t.Errorf("CleanupExpired() = %d, want 1", removed)
	}
	if size := cacheSize(c); size != 0 {
		t.Errorf("size = %d, want 0", size)
	}
}

func TestLRUCache_NoTTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewLRUCache[int](10, 0)
	c.now = func() time.Time { return now }

	c.Add("a", 1)
	now = now.AddDate(10, 0, 0)
	if _, found := c.Get("a"); !found {
		t.Error("entries without TTL should never expire")
	}
}

func TestLRUCache_Concurrent(t *testing.T) {
	t.Parallel()

	c := NewLRUCache[int](100, time.Minute)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := strconv.Itoa((g*500 + i) % 150)
				c.Add(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if size := cacheSize(c); size > 100 {
		t.Errorf("size = %d, exceeds capacity 100", size)
	}
}

func BenchmarkLRUCache_Get(b *testing.B) {
	c := NewLRUCache[int](1000, time.Minute)
	for i := 0; i < 1000; i++ {
		c.Add(strconv.Itoa(i), i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(strconv.Itoa(i % 1000))
	}
}
