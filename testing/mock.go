// Package timevaltest provides test utilities for code built on
// timeval: a deterministic mock clock and helpers that install it
// (or a fixed location) for the duration of a test.
package timevaltest

import (
	"sync"
	"sync/atomic"

	"github.com/blockberries/timeval"
)

// Compile-time check that Clock satisfies the capability interface.
var _ timeval.Clock = (*Clock)(nil)

// Clock is a deterministic timeval.Clock for tests. It returns a
// fixed instant until moved with Set or Advance, and counts how
// often it was read.
//
// Clock is safe for concurrent use.
type Clock struct {
	mu   sync.Mutex
	sec  int64
	usec int64

	// NowCalls counts Now invocations.
	NowCalls atomic.Int64
}

// NewClock returns a Clock fixed at the given seconds and
// microseconds.
func NewClock(sec, usec int64) *Clock {
	return &Clock{sec: sec, usec: usec}
}

// Now returns the clock's current instant.
func (c *Clock) Now() (int64, int64) {
	c.NowCalls.Add(1)
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sec, c.usec
}

// Set moves the clock to the given instant.
func (c *Clock) Set(sec, usec int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sec, c.usec = sec, usec
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d timeval.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := timeval.New(c.sec, c.usec).Add(d)
	c.sec, c.usec = t.Seconds(), t.Micros()
}
