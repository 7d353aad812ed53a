// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package lru implements an in-memory key/value cache that combines
// capacity-bound least-recently-used eviction with per-entry time-to-live
// expiration.
//
// Three indexes cover one entry set: a map for equality lookup, a doubly
// linked list for recency order, and a min-heap for expiration order. The
// heap is never searched when a key is updated, deleted, or evicted;
// superseded references go stale and are discarded when they surface,
// validated by a per-entry generation counter.
//
//	cache, err := lru.New(lru.Config[string, int]{
//		MaxSize:    128,
//		TTL:        time.Minute,
//		Concurrent: true,
//	})
//	if err != nil {
//		return err
//	}
//	defer cache.Close()
//
//	cache.Set("foo", 42)
//	v, err := cache.Get("foo")
//
// A concurrent cache owns one background goroutine, the reclaimer, which
// sleeps until the earliest scheduled deadline and removes entries as they
// expire. A non-concurrent cache has no locking and no reclaimer; expired
// entries are removed only when an access path touches them.
package lru
