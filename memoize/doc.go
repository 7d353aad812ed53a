// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package memoize caches the results of a computation keyed by its input.
//
// Two variants exist with deliberately different capacity policies:
//
//   - [Func] stores results in the full expiring LRU cache: at capacity the
//     least recently used result is evicted, and concurrent misses for the
//     same key are collapsed into a single computation.
//   - [Lazy] stores results in a plain bounded map with TTL only: at
//     capacity the whole map is cleared at once. It needs no recency
//     bookkeeping at all, which is the point.
//
// [Key] builds a cache key out of a function name and its arguments, for
// callers memoizing multi-argument computations through a string key.
package memoize
