// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memoize

import (
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/luxfi/lru"
)

// Config bounds a memoized function's result cache.
type Config struct {
	// MaxSize is the result capacity. It must be positive.
	MaxSize int

	// TTL is how long a result stays valid. Zero means results never
	// expire.
	TTL time.Duration
}

// Func memoizes compute over an expiring LRU cache. Results live until
// they expire or are pushed out of the LRU tail. Close releases the
// underlying cache and its reclaimer.
type Func[K comparable, V any] struct {
	cache   *lru.Cache[K, V]
	group   singleflight.Group
	compute func(K) (V, error)
}

// New wraps compute with a bounded, expiring result cache.
func New[K comparable, V any](cfg Config, compute func(K) (V, error)) (*Func[K, V], error) {
	cache, err := lru.New(lru.Config[K, V]{
		MaxSize:    cfg.MaxSize,
		TTL:        cfg.TTL,
		Concurrent: true,
	})
	if err != nil {
		return nil, err
	}
	return &Func[K, V]{cache: cache, compute: compute}, nil
}

// Call returns the result for key, computing and storing it on a miss.
// Concurrent misses for the same key share one computation; which caller
// runs it is not specified. Errors from compute are returned to every
// sharing caller and nothing is stored.
func (f *Func[K, V]) Call(key K) (V, error) {
	if v, err := f.cache.Get(key); err == nil {
		return v, nil
	}

	v, err, _ := f.group.Do(fmt.Sprintf("%v", key), func() (any, error) {
		// Re-check: a sharing caller may have stored the result between
		// the miss above and acquiring the flight.
		if v, err := f.cache.Get(key); err == nil {
			return v, nil
		}
		v, err := f.compute(key)
		if err != nil {
			return nil, err
		}
		if err := f.cache.Set(key, v); err != nil {
			return nil, err
		}
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Len returns the number of cached results.
func (f *Func[K, V]) Len() int { return f.cache.Len() }

// Close stops the result cache's reclaimer.
func (f *Func[K, V]) Close() error { return f.cache.Close() }
