// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metercacher

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/lru"
)

func newMetered(t *testing.T) *Cache[string, int] {
	t.Helper()

	inner, err := lru.New(lru.Config[string, int]{MaxSize: 4, Concurrent: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = inner.Close() })

	metered, err := New[string, int]("test", prometheus.NewRegistry(), inner)
	require.NoError(t, err)
	return metered
}

func TestMeteredHitsAndMisses(t *testing.T) {
	require := require.New(t)

	cache := newMetered(t)

	require.NoError(cache.Set("a", 1))

	v, err := cache.Get("a")
	require.NoError(err)
	require.Equal(1, v)

	_, err = cache.Get("missing")
	require.ErrorIs(err, lru.ErrNotFound)

	require.Equal(1.0, testutil.ToFloat64(cache.metrics.setCount))
	require.Equal(1.0, testutil.ToFloat64(cache.metrics.getCount.With(hitLabels)))
	require.Equal(1.0, testutil.ToFloat64(cache.metrics.getCount.With(missLabels)))
	require.Equal(1.0, testutil.ToFloat64(cache.metrics.len))
}

func TestMeteredTracksLen(t *testing.T) {
	require := require.New(t)

	cache := newMetered(t)

	require.NoError(cache.SetTTL("a", 1, time.Hour))
	require.NoError(cache.Set("b", 2))
	require.Equal(2.0, testutil.ToFloat64(cache.metrics.len))

	require.NoError(cache.Delete("a"))
	require.Equal(1.0, testutil.ToFloat64(cache.metrics.len))

	cache.Flush()
	require.Equal(0.0, testutil.ToFloat64(cache.metrics.len))
}

func TestMeteredDuplicateRegistration(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	inner, err := lru.New(lru.Config[string, int]{MaxSize: 4})
	require.NoError(err)

	_, err = New[string, int]("dup", registry, inner)
	require.NoError(err)

	_, err = New[string, int]("dup", registry, inner)
	require.Error(err)
}
