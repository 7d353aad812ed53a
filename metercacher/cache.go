// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metercacher provides metered cache implementations.
package metercacher

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/lru"
)

var _ lru.Map[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache wraps a Map with metrics.
type Cache[K comparable, V any] struct {
	lru.Map[K, V]
	metrics *cacheMetrics
}

// New creates a new metered cache wrapper.
func New[K comparable, V any](
	namespace string,
	registry prometheus.Registerer,
	c lru.Map[K, V],
) (*Cache[K, V], error) {
	metrics, err := newMetrics(namespace, registry)
	return &Cache[K, V]{
		Map:     c,
		metrics: metrics,
	}, err
}

func (c *Cache[K, V]) Set(key K, value V) error {
	start := time.Now()
	err := c.Map.Set(key, value)
	setDuration := time.Since(start)

	c.metrics.setCount.Inc()
	c.metrics.setTime.Add(setDuration.Seconds())
	c.metrics.len.Set(float64(c.Map.Len()))
	return err
}

func (c *Cache[K, V]) SetTTL(key K, value V, ttl time.Duration) error {
	start := time.Now()
	err := c.Map.SetTTL(key, value, ttl)
	setDuration := time.Since(start)

	c.metrics.setCount.Inc()
	c.metrics.setTime.Add(setDuration.Seconds())
	c.metrics.len.Set(float64(c.Map.Len()))
	return err
}

func (c *Cache[K, V]) Get(key K) (V, error) {
	start := time.Now()
	value, err := c.Map.Get(key)
	getDuration := time.Since(start)

	if err == nil {
		c.metrics.getCount.With(hitLabels).Inc()
		c.metrics.getTime.With(hitLabels).Add(getDuration.Seconds())
	} else {
		c.metrics.getCount.With(missLabels).Inc()
		c.metrics.getTime.With(missLabels).Add(getDuration.Seconds())
	}

	return value, err
}

func (c *Cache[K, _]) Delete(key K) error {
	err := c.Map.Delete(key)
	c.metrics.len.Set(float64(c.Map.Len()))
	return err
}

func (c *Cache[_, _]) Flush() {
	c.Map.Flush()
	c.metrics.len.Set(float64(c.Map.Len()))
}
