// Package testutil provides deterministic test collaborators.
package testutil

import (
	"sync"

	"github.com/trustedtext/trusted/internal/item"
)

// FixedClock is a date provider pinned to a settable calendar day.
//
// The engine never reads the wall clock itself - it takes a date
// provider - so tests pin "today" here and tickler/overdue evaluation
// becomes reproducible. Unlike a real clock, FixedClock can be moved
// backwards for test reuse.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex, though the engine's single-caller model rarely needs it.
type FixedClock struct {
	mu  sync.Mutex
	day item.Date
}

// NewFixedClock creates a clock pinned to the given date.
func NewFixedClock(day item.Date) *FixedClock {
	return &FixedClock{day: day}
}

// Today returns the pinned date. Pass this method as the engine's date
// provider.
func (c *FixedClock) Today() item.Date {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.day
}

// Set pins the clock to a new date.
func (c *FixedClock) Set(day item.Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.day = day
}

// Advance moves the pinned date forward by n days (n may be negative).
func (c *FixedClock) Advance(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.day = c.day.AddDays(n)
}
