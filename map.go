// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lru

import "time"

// Map is the capability set the cache exposes: an expiration-aware mutable
// key/value container. *Cache implements it; wrappers such as metercacher
// decorate it.
type Map[K comparable, V any] interface {
	// Get returns the value for key, or ErrNotFound if the key is absent
	// or its entry has expired.
	Get(key K) (V, error)

	// Set stores value under key with the cache's default TTL.
	Set(key K, value V) error

	// SetTTL stores value under key with an explicit TTL for this entry
	// only. A ttl of zero or less means the entry never expires.
	SetTTL(key K, value V, ttl time.Duration) error

	// Delete removes key, or returns ErrNotFound if it is absent or
	// already expired.
	Delete(key K) error

	// Contains reports whether key maps to a live, unexpired entry.
	Contains(key K) bool

	// Len returns the number of stored entries. It may transiently count
	// entries past their deadline that no access path has touched yet.
	Len() int

	// Keys returns the live keys in most- to least-recently-used order.
	Keys() []K

	// Values returns the live values in most- to least-recently-used order.
	Values() []V

	// Items returns the live pairs in most- to least-recently-used order.
	Items() []Item[K, V]

	// Flush removes all entries.
	Flush()

	// Close releases the cache and stops its reclaimer, if any.
	Close() error
}

// Item is a key/value pair, as returned by Items and consumed by Update.
type Item[K comparable, V any] struct {
	Key   K
	Value V
}
