package core

import "time"

// FrameDuration is the wall time of one nominal frame (dt = 1.0).
const FrameDuration = time.Second / 60

// MaxDT caps a single step so a suspended surface does not teleport entities.
// 3.0 is a 50ms frame.
const MaxDT = 3.0

// DT converts an elapsed wall duration into a normalized, capped time delta.
func DT(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	dt := float64(elapsed) / float64(FrameDuration)
	if dt > MaxDT {
		return MaxDT
	}
	return dt
}

// Clock turns frame callback timestamps into dt values.
// The first tick after Reset yields a nominal 1.0.
type Clock struct {
	last    time.Time
	started bool
}

// NewClock creates a clock that has not seen a frame yet.
func NewClock() *Clock {
	return &Clock{}
}

// Tick records a frame callback at now and returns the dt since the previous one.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 1.0
	}
	dt := DT(now.Sub(c.last))
	c.last = now
	return dt
}

// Reset forgets the previous frame, e.g. after the surface was paused.
func (c *Clock) Reset() {
	c.started = false
}
