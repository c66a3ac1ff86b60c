// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package cache

import (
	"sync"
	"time"
)

// lruEntry is a node of the LRU list.
type lruEntry[V any] struct {
	key       string
	value     V
	prev      *lruEntry[V]
	next      *lruEntry[V]
	expiresAt time.Time
}

// LRUCache is a thread-safe Least Recently Used cache with TTL support.
//
// Key features:
//   - O(1) Get and Add operations
//   - O(1) LRU eviction when capacity is reached
//   - TTL support with lazy expiration
//
// The geocoder uses it to memoize place name lookups across requests, so a
// location mentioned in every journal is resolved once per TTL.
type LRUCache[V any] struct {
	mu sync.Mutex

	capacity int
	ttl      time.Duration
	now      func() time.Time

	// items maps keys to list nodes for O(1) lookup
	items map[string]*lruEntry[V]

	// head.next is the most recently used, tail.prev the least recently used
	head *lruEntry[V]
	tail *lruEntry[V]

	hits   int64
	misses int64
}

// NewLRUCache creates an LRU cache. A non-positive capacity defaults to
// 10000 entries and a non-positive ttl disables expiration.
func NewLRUCache[V any](capacity int, ttl time.Duration) *LRUCache[V] {
	if capacity <= 0 {
		capacity = 10000
	}

	c := &LRUCache[V]{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[string]*lruEntry[V], capacity),
		head:     &lruEntry[V]{},
		tail:     &lruEntry[V]{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// Get returns the value and true if key is present and not expired.
// Found entries become the most recently used.
func (c *LRUCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	entry, exists := c.items[key]
	if !exists {
		c.misses++
		return zero, false
	}
	if c.expired(entry) {
		c.removeEntry(entry)
		c.misses++
		return zero, false
	}

	c.moveToFront(entry)
	c.hits++
	return entry.value, true
}

// Add inserts or updates key. The least recently used entry is evicted when
// the cache is full.
func (c *LRUCache[V]) Add(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = c.now().Add(c.ttl)
	}

	if entry, exists := c.items[key]; exists {
		entry.value = value
		entry.expiresAt = expiresAt
		c.moveToFront(entry)
		return
	}

	entry := &lruEntry[V]{key: key, value: value, expiresAt: expiresAt}
	c.addToFront(entry)
	c.items[key] = entry

	for len(c.items) > c.capacity {
		c.evictOldest()
	}
}

// CleanupExpired removes all expired entries and returns how many were removed.
func (c *LRUCache[V]) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for entry := c.tail.prev; entry != c.head; {
		prev := entry.prev
		if c.expired(entry) {
			c.removeEntry(entry)
			removed++
		}
		entry = prev
	}
	return removed
}

// Stats returns hit/miss counters and the current size.
func (c *LRUCache[V]) Stats() (hits, misses int64, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, len(c.items)
}

// Internal methods (must be called with lock held)

func (c *LRUCache[V]) expired(entry *lruEntry[V]) bool {
	return !entry.expiresAt.IsZero() && c.now().After(entry.expiresAt)
}

func (c *LRUCache[V]) addToFront(entry *lruEntry[V]) {
	entry.prev = c.head
	entry.next = c.head.next
	c.head.next.prev = entry
	c.head.next = entry
}

func (c *LRUCache[V]) moveToFront(entry *lruEntry[V]) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	c.addToFront(entry)
}

func (c *LRUCache[V]) removeEntry(entry *lruEntry[V]) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	delete(c.items, entry.key)
}

func (c *LRUCache[V]) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	c.removeEntry(oldest)
}
