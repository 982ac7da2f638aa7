package timer

import "time"

// Clock is a pause-aware stopwatch. Elapsed time accumulates only while
// running, so any number of pause/resume cycles never drifts the total.
// It is not safe for concurrent use; the recorder is the single writer.
type Clock struct {
	// anchor is the wall-clock instant of the last Start. It is the zero
	// value while paused or idle.
	anchor time.Time
	// accumulated is the elapsed time banked before the current run.
	accumulated time.Duration
	running     bool
	// now is swapped out in tests to control the wall clock.
	now func() time.Time
}

// NewClock returns an idle clock with zero elapsed time.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Start begins or resumes timing. Calling Start on a running clock is a
// no-op.
func (c *Clock) Start() {
	if c.running {
		return
	}

	c.anchor = c.now()
	c.running = true
}

// Pause freezes the elapsed time. Calling Pause on a clock that is not
// running is a no-op.
func (c *Clock) Pause() {
	if !c.running {
		return
	}

	c.accumulated += c.now().Sub(c.anchor)
	c.anchor = time.Time{}
	c.running = false
}

// Reset returns the clock to idle with zero elapsed time. Valid in any
// state.
func (c *Clock) Reset() {
	c.anchor = time.Time{}
	c.accumulated = 0
	c.running = false
}

// Elapsed reports the total running time so far. It is a pure read and is
// valid in any state: frozen while paused, advancing while running.
func (c *Clock) Elapsed() time.Duration {
	if c.running {
		return c.accumulated + c.now().Sub(c.anchor)
	}

	return c.accumulated
}

// Running reports whether the clock is currently timing.
func (c *Clock) Running() bool {
	return c.running
}

// Idle reports whether the clock has never run since creation or the last
// reset.
func (c *Clock) Idle() bool {
	return !c.running && c.accumulated == 0
}
