package core

import "time"

// Clock supplies monotonic timestamps measured from an arbitrary origin.
// The simulation never reads wall time directly; frontends pass Now() into
// each step so tests can drive time by hand.
type Clock interface {
	Now() time.Duration
}

// SystemClock reports time elapsed since it was created.
// time.Since uses the monotonic reading, so wall clock jumps are ignored.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the elapsed time since the clock was created.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when told to.
type ManualClock struct {
	now time.Duration
}

// NewManualClock creates a manual clock starting at the given time.
func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}

// Set jumps the clock to t.
func (c *ManualClock) Set(t time.Duration) {
	c.now = t
}

// Timer fires once per interval, measured from its last firing.
// A timer with a non-positive interval never fires.
type Timer struct {
	interval time.Duration
	last     time.Duration
}

// NewTimer creates a timer whose first period starts at now.
func NewTimer(interval, now time.Duration) Timer {
	return Timer{interval: interval, last: now}
}

// Interval returns the configured period.
func (t Timer) Interval() time.Duration {
	return t.interval
}

// Last returns the time of the last firing (or reset).
func (t Timer) Last() time.Duration {
	return t.last
}

// Due reports whether strictly more than one interval has passed since the
// last firing.
func (t Timer) Due(now time.Duration) bool {
	return t.interval > 0 && now-t.last > t.interval
}

// Fire reports whether the timer is due at now and, if so, restarts the
// period from now.
func (t *Timer) Fire(now time.Duration) bool {
	if !t.Due(now) {
		return false
	}
	t.last = now
	return true
}

// Reset restarts the period from now without firing.
func (t *Timer) Reset(now time.Duration) {
	t.last = now
}

// FrameInterval converts a tick rate to the duration of one tick.
// Non-positive rates fall back to 60 ticks per second.
func FrameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}
