// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lru

import "time"

// reclaim is the background loop of a concurrent-mode cache. It sweeps
// whatever has expired, then blocks until the earliest remaining deadline.
// Three things end the wait: the deadline elapses, a write schedules a
// sooner deadline and signals the wake channel, or Close closes done.
//
// A wake that arrives before anything has actually expired is harmless:
// the sweep pops nothing and the loop re-reads the earliest deadline and
// waits again, now against the shorter target. The loop never exits on an
// empty heap; it parks on the wake channel with no timer at all.
func (c *Cache[K, V]) reclaim() {
	defer c.wg.Done()

	timer := time.NewTimer(0)
	timer.Stop()

	for {
		c.mu.Lock()
		c.sweepLocked(c.now())
		ref, ok := c.deadlines.peekEarliest()
		if ok {
			c.waitingOn = ref.at
		} else {
			c.waitingOn = time.Time{}
		}
		var wait time.Duration
		if ok {
			wait = ref.at.Sub(c.now())
		}
		c.mu.Unlock()

		if !ok {
			select {
			case <-c.wake:
			case <-c.done:
				return
			}
			continue
		}

		timer.Reset(wait)
		select {
		case <-timer.C:
		case <-c.wake:
			timer.Stop()
		case <-c.done:
			timer.Stop()
			return
		}
	}
}
