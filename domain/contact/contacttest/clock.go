// Package contacttest provides a manual clock for driving the contact form's
// timers deterministically in tests.
package contacttest

import (
	"sort"
	"sync"
	"time"

	"github.com/Narturebelle/Narturebelle/domain/contact"
)

// ManualClock only moves when Advance is called. Due callbacks run
// synchronously on the goroutine calling Advance, earliest deadline first.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*manualTimer
}

var _ contact.Clock = (*ManualClock)(nil)

type manualTimer struct {
	clock    *ManualClock
	deadline time.Time
	seq      int
	fn       func()
	done     bool
}

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) AfterFunc(d time.Duration, f func()) contact.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &manualTimer{clock: c, deadline: c.now.Add(d), seq: c.seq, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every callback that comes
// due, including ones scheduled by callbacks fired along the way.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDueLocked(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.deadline
		next.done = true
		c.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of callbacks that have not fired or stopped.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.done {
			n++
		}
	}
	return n
}

func (c *ManualClock) nextDueLocked(target time.Time) *manualTimer {
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.done && !t.deadline.After(target) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline.Equal(due[j].deadline) {
			return due[i].seq < due[j].seq
		}
		return due[i].deadline.Before(due[j].deadline)
	})
	return due[0]
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}
