// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lru

import (
	"container/list"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

var _ Map[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Config configures a Cache.
type Config[K comparable, V any] struct {
	// MaxSize is the entry capacity. It must be positive.
	MaxSize int

	// TTL is the default time-to-live applied by Set. Zero means entries
	// stored without a per-call TTL never expire.
	TTL time.Duration

	// Concurrent makes the cache safe for use from multiple goroutines and
	// starts the background reclaimer. When false the cache does no locking
	// and expiration is enforced only on access.
	Concurrent bool

	// Logger receives reclaimer fault reports. Defaults to slog.Default().
	Logger *slog.Logger

	// OnEvict, if set, is called after an entry has been removed, with the
	// reason. It runs with the cache lock held and must not call back into
	// the cache.
	OnEvict func(key K, value V, reason Reason)
}

// Cache is an expiring LRU cache. One mutex spans the equality index, the
// recency list, and the deadline heap, so every public operation is a
// single atomic step with respect to the reclaimer and other callers.
type Cache[K comparable, V any] struct {
	mu         sync.Mutex
	concurrent bool
	closed     bool

	maxSize    int
	defaultTTL time.Duration

	items     map[K]*list.Element // each element holds an *entry[K, V]
	order     *list.List          // Front = MRU, Back = LRU
	deadlines deadlineHeap[K]
	gen       uint64

	now func() time.Time

	log     *slog.Logger
	onEvict func(K, V, Reason)

	// Reclaimer state, concurrent mode only. waitingOn is the deadline the
	// reclaimer is currently blocked on; zero while it waits indefinitely
	// on an empty heap (or is between waits).
	wake      chan struct{}
	done      chan struct{}
	wg        sync.WaitGroup
	waitingOn time.Time
}

// New constructs a cache. A non-positive MaxSize is a configuration error.
// A concurrent cache starts its reclaimer immediately; the caller owns it
// and must Close the cache to stop it.
func New[K comparable, V any](cfg Config[K, V]) (*Cache[K, V], error) {
	if cfg.MaxSize <= 0 {
		return nil, fmt.Errorf("lru: max size must be positive, got %d", cfg.MaxSize)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	c := &Cache[K, V]{
		concurrent: cfg.Concurrent,
		maxSize:    cfg.MaxSize,
		defaultTTL: cfg.TTL,
		items:      make(map[K]*list.Element),
		order:      list.New(),
		now:        time.Now,
		log:        logger,
		onEvict:    cfg.OnEvict,
	}
	if cfg.Concurrent {
		c.wake = make(chan struct{}, 1)
		c.done = make(chan struct{})
		c.wg.Add(1)
		go c.reclaim()
	}
	return c, nil
}

func (c *Cache[K, V]) lock() {
	if c.concurrent {
		c.mu.Lock()
	}
}

func (c *Cache[K, V]) unlock() {
	if c.concurrent {
		c.mu.Unlock()
	}
}

// Get returns the value for key and promotes it to most recently used. A
// key whose entry has passed its deadline is treated as absent and reaped
// on the spot, without waiting for the reclaimer.
func (c *Cache[K, V]) Get(key K) (V, error) {
	c.lock()
	defer c.unlock()

	var zero V
	el, ok := c.items[key]
	if !ok {
		return zero, ErrNotFound
	}
	e := el.Value.(*entry[K, V])
	if e.expired(c.now()) {
		c.reapLocked(el, ReasonExpired)
		return zero, ErrNotFound
	}
	c.order.MoveToFront(el)
	return e.value, nil
}

// Set stores value under key with the cache's default TTL.
func (c *Cache[K, V]) Set(key K, value V) error {
	return c.SetTTL(key, value, c.defaultTTL)
}

// SetTTL stores value under key, expiring ttl from now. A ttl of zero or
// less means this entry never expires.
//
// Updating an existing key bumps its generation, turning any scheduled
// deadline for the old version into an inert reference; the key keeps its
// capacity slot. A new key evicts the LRU tail first when the cache is
// full.
func (c *Cache[K, V]) SetTTL(key K, value V, ttl time.Duration) error {
	c.lock()
	defer c.unlock()

	if c.closed {
		return ErrClosed
	}

	now := c.now()
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = now.Add(ttl)
	}

	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry[K, V])
		c.gen++
		e.gen = c.gen
		e.value = value
		e.expiresAt = expiresAt
		c.order.MoveToFront(el)
		c.scheduleLocked(expiresAt, key, e.gen)
		return nil
	}

	if len(c.items) >= c.maxSize {
		c.makeRoomLocked(now)
	}

	c.gen++
	e := &entry[K, V]{key: key, value: value, expiresAt: expiresAt, gen: c.gen}
	c.items[key] = c.order.PushFront(e)
	c.scheduleLocked(expiresAt, key, e.gen)
	return nil
}

// Delete removes key. A key whose entry has already expired is reaped but
// still reported as ErrNotFound. The scheduled deadline is left behind as
// a stale reference.
func (c *Cache[K, V]) Delete(key K) error {
	c.lock()
	defer c.unlock()

	if c.closed {
		return ErrClosed
	}

	el, ok := c.items[key]
	if !ok {
		return ErrNotFound
	}
	if el.Value.(*entry[K, V]).expired(c.now()) {
		c.reapLocked(el, ReasonExpired)
		return ErrNotFound
	}
	c.reapLocked(el, ReasonDeleted)
	return nil
}

// Contains is Get without promotion or value return.
func (c *Cache[K, V]) Contains(key K) bool {
	c.lock()
	defer c.unlock()

	el, ok := c.items[key]
	if !ok {
		return false
	}
	if el.Value.(*entry[K, V]).expired(c.now()) {
		c.reapLocked(el, ReasonExpired)
		return false
	}
	return true
}

// Len returns the equality-index size. Entries past their deadline that no
// access path has touched yet are still counted until the reclaimer (or a
// read) removes them; trading that bounded staleness for not sweeping on
// every size query is intentional.
func (c *Cache[K, V]) Len() int {
	c.lock()
	defer c.unlock()
	return len(c.items)
}

// Keys returns the live keys in MRU to LRU order, skipping expired entries.
func (c *Cache[K, V]) Keys() []K {
	c.lock()
	defer c.unlock()

	now := c.now()
	keys := make([]K, 0, len(c.items))
	for el := c.order.Front(); el != nil; el = el.Next() {
		e := el.Value.(*entry[K, V])
		if e.expired(now) {
			continue
		}
		keys = append(keys, e.key)
	}
	return keys
}

// Values returns the live values in MRU to LRU order, skipping expired
// entries.
func (c *Cache[K, V]) Values() []V {
	c.lock()
	defer c.unlock()

	now := c.now()
	values := make([]V, 0, len(c.items))
	for el := c.order.Front(); el != nil; el = el.Next() {
		e := el.Value.(*entry[K, V])
		if e.expired(now) {
			continue
		}
		values = append(values, e.value)
	}
	return values
}

// Items returns the live pairs in MRU to LRU order, skipping expired
// entries.
func (c *Cache[K, V]) Items() []Item[K, V] {
	c.lock()
	defer c.unlock()

	now := c.now()
	items := make([]Item[K, V], 0, len(c.items))
	for el := c.order.Front(); el != nil; el = el.Next() {
		e := el.Value.(*entry[K, V])
		if e.expired(now) {
			continue
		}
		items = append(items, Item[K, V]{Key: e.key, Value: e.value})
	}
	return items
}

// Update sets every item in order, as if by repeated Set.
func (c *Cache[K, V]) Update(items []Item[K, V]) error {
	for _, it := range items {
		if err := c.Set(it.Key, it.Value); err != nil {
			return err
		}
	}
	return nil
}

// Flush removes all entries. The deadline heap is reset wholesale; the
// reclaimer finds it empty on its next wake and waits indefinitely.
func (c *Cache[K, V]) Flush() {
	c.lock()
	defer c.unlock()

	for el := c.order.Front(); el != nil; {
		next := el.Next()
		c.reapLocked(el, ReasonDeleted)
		el = next
	}
	c.deadlines.reset()
}

// Close stops the reclaimer, waits for it to exit, and rejects further
// writes with ErrClosed. It is safe to call more than once.
func (c *Cache[K, V]) Close() error {
	c.lock()
	if c.closed {
		c.unlock()
		return nil
	}
	c.closed = true
	c.unlock()

	if c.concurrent {
		close(c.done)
		c.wg.Wait()
	}
	return nil
}

// reapLocked removes the entry held by el from the equality index and the
// recency list. Its deadline reference, if any, stays in the heap until it
// surfaces and fails generation validation.
func (c *Cache[K, V]) reapLocked(el *list.Element, reason Reason) {
	e := el.Value.(*entry[K, V])
	delete(c.items, e.key)
	c.order.Remove(el)
	if c.onEvict != nil {
		c.onEvict(e.key, e.value, reason)
	}
}

// scheduleLocked records a deadline for (key, gen) and wakes the reclaimer
// when the new deadline precedes the one it is blocked on. The wake channel
// is buffered and the send never blocks; a missed send means a wake is
// already pending.
func (c *Cache[K, V]) scheduleLocked(at time.Time, key K, gen uint64) {
	if at.IsZero() {
		return
	}
	c.deadlines.schedule(at, key, gen)
	if !c.concurrent {
		return
	}
	if c.waitingOn.IsZero() || at.Before(c.waitingOn) {
		select {
		case c.wake <- struct{}{}:
		default:
		}
	}
}

// makeRoomLocked frees a slot for one new entry. Entries already past their
// deadline are reclaimed first so that logically dead entries never cost a
// live one its slot; only then is the LRU tail evicted.
func (c *Cache[K, V]) makeRoomLocked(now time.Time) {
	c.sweepLocked(now)
	for len(c.items) >= c.maxSize {
		el := c.order.Back()
		if el == nil {
			return
		}
		c.reapLocked(el, ReasonEvicted)
	}
}

// sweepLocked pops every scheduled deadline that has passed. A reference
// whose key no longer resolves, or resolves to a different generation, is
// stale and is dropped without effect.
func (c *Cache[K, V]) sweepLocked(now time.Time) {
	for {
		ref, ok := c.deadlines.peekEarliest()
		if !ok || now.Before(ref.at) {
			return
		}
		c.deadlines.popEarliest()

		el, ok := c.items[ref.key]
		if !ok {
			continue
		}
		if el.Value.(*entry[K, V]).gen != ref.gen {
			continue
		}
		c.reapExpiredLocked(el)
	}
}

// reapExpiredLocked removes one expired entry, containing any fault (in
// practice a panicking OnEvict callback) to that entry so the rest of the
// sweep proceeds.
func (c *Cache[K, V]) reapExpiredLocked(el *list.Element) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("lru: fault while reaping expired entry", "panic", r)
		}
	}()
	c.reapLocked(el, ReasonExpired)
}
