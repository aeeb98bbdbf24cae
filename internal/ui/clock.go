package ui

import (
	"fmt"
	"time"
)

// RunClock measures wall time since the simulation was first started. The
// displayed value only advances while running and is cleared by Reset.
type RunClock struct {
	start time.Time
	shown time.Duration
}

// Tick updates the displayed time. It starts the clock on the first running tick.
func (c *RunClock) Tick(now time.Time, running bool) {
	if !running {
		return
	}
	if c.start.IsZero() {
		c.start = now
	}
	c.shown = now.Sub(c.start)
}

// Elapsed returns the last displayed duration.
func (c *RunClock) Elapsed() time.Duration { return c.shown }

// Reset stops the clock and zeroes the display.
func (c *RunClock) Reset() {
	c.start = time.Time{}
	c.shown = 0
}

// FormatElapsed renders d as MM:SS. Minutes are not wrapped into hours.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
