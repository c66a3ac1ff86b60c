// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package geo

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const storeKeyPrefix = "geocode:"

// Store persists geocode results across restarts.
type Store interface {
	Get(key string) (Lookup, bool, error)
	Put(key string, l Lookup) error
	Close() error
}

// BadgerStore is a Store backed by an embedded BadgerDB. Entries expire
// after the configured TTL; a TTL of zero keeps them forever.
type BadgerStore struct {
	db  *badger.DB
	ttl time.Duration
}

// OpenBadgerStore opens (or creates) a store in the directory at path.
func OpenBadgerStore(path string, ttl time.Duration) (*BadgerStore, error) {
	if path == "" {
		return nil, fmt.Errorf("geocode store path is required")
	}

	opts := badger.DefaultOptions(path)
	opts.Logger = nil // zerolog handles our logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open geocode store: %w", err)
	}
	return &BadgerStore{db: db, ttl: ttl}, nil
}

// Get returns the stored lookup for key. The second result is false when
// nothing is stored or the entry has expired.
func (s *BadgerStore) Get(key string) (Lookup, bool, error) {
	var l Lookup
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(storeKeyPrefix + key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &l)
		})
	})
	if err != nil {
		return Lookup{}, false, fmt.Errorf("failed to read geocode %q: %w", key, err)
	}
	return l, found, nil
}

// Put stores l under key.
func (s *BadgerStore) Put(key string, l Lookup) error {
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to encode geocode: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(storeKeyPrefix+key), data)
		if s.ttl > 0 {
			entry = entry.WithTTL(s.ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("failed to store geocode %q: %w", key, err)
	}
	return nil
}

// RunGC reclaims value log space until badger reports nothing left to
// rewrite.
func (s *BadgerStore) RunGC(discardRatio float64) error {
	for {
		err := s.db.RunValueLogGC(discardRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("geocode store gc: %w", err)
		}
	}
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
