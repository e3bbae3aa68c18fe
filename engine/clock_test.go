package engine

import (
	"time"
)

// steppingClock advances a fixed step on every Now call, so a measured
// body always reports exactly one step of elapsed time.
type steppingClock struct {
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}
