package core

import "time"

// FixedStep decides when a driver running at frame rate should advance the
// simulation so that it produces a steady number of generations per second.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
// The first call to ShouldStep fires immediately.
func NewFixedStep(perSecond int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(perSecond)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the number of steps per second. It is safe to call from the main loop.
func (f *FixedStep) SetRate(perSecond int) {
	if perSecond <= 0 {
		perSecond = 1
	}
	f.step = time.Second / time.Duration(perSecond)
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
}

// Interval returns the time between steps.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset restarts timing so the next ShouldStep measures from now.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = 0
}

// ShouldStep reports whether the simulation should advance by one generation.
// At most one step is granted per call; backlog beyond one interval is dropped.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// SetClock replaces the time source. Intended for tests and replay drivers.
func (f *FixedStep) SetClock(now func() time.Time) {
	if now != nil {
		f.now = now
	}
}
