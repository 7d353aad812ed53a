// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lru

import (
	"container/heap"
	"time"
)

// deadlineRef is a scheduled expiration. It refers to an entry by key and
// generation rather than by pointer: when the entry is updated, deleted, or
// evicted the reference is left behind as an inert record, and whoever pops
// it must validate (key, gen) against the equality index before acting.
type deadlineRef[K comparable] struct {
	at  time.Time
	key K
	gen uint64
}

// deadlineHeap orders scheduled expirations by soonest deadline. Callers
// use schedule, peekEarliest, and popEarliest under the cache lock; the
// heap.Interface methods exist only to serve those three.
type deadlineHeap[K comparable] struct {
	refs []deadlineRef[K]
}

func (h *deadlineHeap[K]) Len() int { return len(h.refs) }

func (h *deadlineHeap[K]) Less(i, j int) bool { return h.refs[i].at.Before(h.refs[j].at) }

func (h *deadlineHeap[K]) Swap(i, j int) { h.refs[i], h.refs[j] = h.refs[j], h.refs[i] }

func (h *deadlineHeap[K]) Push(x any) { h.refs = append(h.refs, x.(deadlineRef[K])) }

func (h *deadlineHeap[K]) Pop() any {
	old := h.refs
	n := len(old)
	ref := old[n-1]
	h.refs = old[:n-1]
	return ref
}

func (h *deadlineHeap[K]) schedule(at time.Time, key K, gen uint64) {
	heap.Push(h, deadlineRef[K]{at: at, key: key, gen: gen})
}

func (h *deadlineHeap[K]) peekEarliest() (deadlineRef[K], bool) {
	if len(h.refs) == 0 {
		var zero deadlineRef[K]
		return zero, false
	}
	return h.refs[0], true
}

func (h *deadlineHeap[K]) popEarliest() (deadlineRef[K], bool) {
	if len(h.refs) == 0 {
		var zero deadlineRef[K]
		return zero, false
	}
	return heap.Pop(h).(deadlineRef[K]), true
}

func (h *deadlineHeap[K]) reset() { h.refs = nil }
