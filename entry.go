// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lru

import "time"

// Reason reports why an entry was removed from the cache.
type Reason int

const (
	// ReasonExpired means the entry passed its deadline.
	ReasonExpired Reason = iota
	// ReasonEvicted means the entry was pushed out of the LRU tail to make
	// room at capacity.
	ReasonEvicted
	// ReasonDeleted means the entry was removed by Delete or Flush.
	ReasonDeleted
)

func (r Reason) String() string {
	switch r {
	case ReasonExpired:
		return "expired"
	case ReasonEvicted:
		return "evicted"
	case ReasonDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// entry is the single physical record all three indexes observe. The
// equality index maps the key to the list element holding it, the list
// element position is the recency order, and the expiration heap refers to
// it by (key, gen).
type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time // zero means the entry never expires
	gen       uint64
}

func (e *entry[K, V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}
