// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memoize

import (
	"fmt"
	"sync"
	"time"
)

// Lazy memoizes compute over a plain bounded map. Results expire after the
// configured TTL, checked only on access; there is no recency index and no
// background reclaimer. When the map reaches capacity it is cleared
// wholesale rather than evicting selectively — the weaker policy is the
// price of keeping zero per-entry bookkeeping.
type Lazy[K comparable, V any] struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	results map[K]lazyResult[V]
	compute func(K) (V, error)
	now     func() time.Time
}

type lazyResult[V any] struct {
	value     V
	expiresAt time.Time // zero means the result never goes stale
}

// NewLazy wraps compute with a clear-on-full result map.
func NewLazy[K comparable, V any](cfg Config, compute func(K) (V, error)) (*Lazy[K, V], error) {
	if cfg.MaxSize <= 0 {
		return nil, fmt.Errorf("memoize: max size must be positive, got %d", cfg.MaxSize)
	}
	return &Lazy[K, V]{
		maxSize: cfg.MaxSize,
		ttl:     cfg.TTL,
		results: make(map[K]lazyResult[V]),
		compute: compute,
		now:     time.Now,
	}, nil
}

// Call returns the result for key, computing it on a miss or after the
// stored result has gone stale. The lock is held across compute, so
// concurrent calls serialize.
func (l *Lazy[K, V]) Call(key K) (V, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if r, ok := l.results[key]; ok {
		if r.expiresAt.IsZero() || now.Before(r.expiresAt) {
			return r.value, nil
		}
		delete(l.results, key)
	}

	if len(l.results) >= l.maxSize {
		clear(l.results)
	}

	v, err := l.compute(key)
	if err != nil {
		var zero V
		return zero, err
	}

	var expiresAt time.Time
	if l.ttl > 0 {
		expiresAt = now.Add(l.ttl)
	}
	l.results[key] = lazyResult[V]{value: v, expiresAt: expiresAt}
	return v, nil
}

// Len returns the number of stored results, stale ones included.
func (l *Lazy[K, V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.results)
}
