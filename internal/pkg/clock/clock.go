// Package clock provides an injectable time source.
package clock

import "time"

// Clock provides the current time. The legacy board-population mode
// reseeds its random generator from this, so tests can pin the seed.
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time.
type Real struct{}

// Now returns the current time.
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock.
func New() Clock {
	return &Real{}
}

// Fixed implements Clock with a constant time, for tests.
type Fixed struct {
	T time.Time
}

// Now returns the fixed time.
func (c *Fixed) Now() time.Time {
	return c.T
}
