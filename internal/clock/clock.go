package clock

import "time"

// Clock provides the current time so date rules can be tested
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant until moved
type FixedClock struct {
	CurrentTime time.Time
}

// Ensure FixedClock implements Clock
var _ Clock = (*FixedClock)(nil)

// NewFixed creates a FixedClock set to t
func NewFixed(t time.Time) *FixedClock {
	return &FixedClock{CurrentTime: t}
}

// Now returns the fixed time
func (c *FixedClock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward by d
func (c *FixedClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
