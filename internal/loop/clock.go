// Package loop drives the authoritative frame loop: drain input, update,
// render, present, then hold the frame rate.
package loop

import "time"

// Clock caps the loop at a fixed number of frames per second.
type Clock struct {
	fps   int
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClock returns a clock capped at fps frames per second.
// A non-positive fps disables the cap.
func NewClock(fps int) *Clock {
	return &Clock{
		fps:   fps,
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// FPS returns the configured frame cap.
func (c *Clock) FPS() int {
	return c.fps
}

// Budget returns the target duration of one frame.
func (c *Clock) Budget() time.Duration {
	if c.fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.fps)
}

// Tick blocks for whatever remains of the frame budget since the previous
// call and returns the time elapsed since then. The first call only starts
// the clock.
func (c *Clock) Tick() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	elapsed := now.Sub(c.last)
	if remaining := c.Budget() - elapsed; remaining > 0 {
		c.sleep(remaining)
		now = c.now()
		elapsed = now.Sub(c.last)
	}
	c.last = now
	return elapsed
}
