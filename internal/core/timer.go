package core

import "time"

// Cadence gates an action to a fixed wall-clock interval. The caller
// supplies the current time, which keeps the gate testable without a
// real clock.
type Cadence struct {
	interval time.Duration
	last     time.Time
}

// NewCadence constructs a gate firing once per interval.
func NewCadence(interval time.Duration) *Cadence {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Cadence{interval: interval}
}

// Due reports whether a full interval has elapsed since the last firing
// and, if so, marks now as the new reference point. The first call only
// arms the gate.
func (c *Cadence) Due(now time.Time) bool {
	if c.last.IsZero() {
		c.last = now
		return false
	}
	if now.Sub(c.last) >= c.interval {
		c.last = now
		return true
	}
	return false
}

// Reset rearms the gate so the next firing is a full interval after now.
func (c *Cadence) Reset(now time.Time) {
	c.last = now
}
