// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memoize

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFuncMemoizes(t *testing.T) {
	require := require.New(t)

	var calls atomic.Int64
	f, err := New(Config{MaxSize: 8}, func(x int) (int, error) {
		calls.Add(1)
		return x * x, nil
	})
	require.NoError(err)
	defer f.Close()

	v, err := f.Call(3)
	require.NoError(err)
	require.Equal(9, v)

	v, err = f.Call(3)
	require.NoError(err)
	require.Equal(9, v)
	require.Equal(int64(1), calls.Load())

	_, err = f.Call(5)
	require.NoError(err)
	require.Equal(int64(2), calls.Load())
}

func TestFuncRecomputesAfterExpiry(t *testing.T) {
	require := require.New(t)

	var calls atomic.Int64
	f, err := New(Config{MaxSize: 8, TTL: 50 * time.Millisecond}, func(x int) (int, error) {
		calls.Add(1)
		return x, nil
	})
	require.NoError(err)
	defer f.Close()

	_, err = f.Call(1)
	require.NoError(err)

	time.Sleep(100 * time.Millisecond)

	_, err = f.Call(1)
	require.NoError(err)
	require.Equal(int64(2), calls.Load())
}

func TestFuncEvictsLRU(t *testing.T) {
	require := require.New(t)

	var calls atomic.Int64
	f, err := New(Config{MaxSize: 2}, func(x int) (int, error) {
		calls.Add(1)
		return x, nil
	})
	require.NoError(err)
	defer f.Close()

	_, _ = f.Call(1)
	_, _ = f.Call(2)
	_, _ = f.Call(3) // evicts 1
	_, _ = f.Call(1) // recompute
	require.Equal(int64(4), calls.Load())
}

func TestFuncDoesNotCacheErrors(t *testing.T) {
	require := require.New(t)

	fail := errors.New("compute failed")
	var calls atomic.Int64
	f, err := New(Config{MaxSize: 8}, func(x int) (int, error) {
		if calls.Add(1) == 1 {
			return 0, fail
		}
		return x, nil
	})
	require.NoError(err)
	defer f.Close()

	_, err = f.Call(1)
	require.ErrorIs(err, fail)

	v, err := f.Call(1)
	require.NoError(err)
	require.Equal(1, v)
	require.Equal(int64(2), calls.Load())
}

func TestFuncCollapsesConcurrentMisses(t *testing.T) {
	require := require.New(t)

	var calls atomic.Int64
	f, err := New(Config{MaxSize: 8}, func(x int) (int, error) {
		calls.Add(1)
		time.Sleep(50 * time.Millisecond)
		return x, nil
	})
	require.NoError(err)
	defer f.Close()

	const workers = 8
	results := make([]int, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w], errs[w] = f.Call(7)
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(errs[w])
		require.Equal(7, results[w])
	}
	require.Equal(int64(1), calls.Load())
}

func TestKey(t *testing.T) {
	require := require.New(t)

	require.Equal(Key("f", 1, "a"), Key("f", 1, "a"))
	require.NotEqual(Key("f", 1), Key("f", 2))
	require.NotEqual(Key("f", 1), Key("g", 1))
	require.NotEqual(Key("f", 1, 2), Key("f", 12))
	require.Len(Key("f"), 32)
}
