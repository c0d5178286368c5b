package main

import "time"

// frameClock throttles a loop to a target rate and counts frames per second
// over one-second windows.
type frameClock struct {
	now   func() float64 // seconds
	sleep func(time.Duration)

	started     bool
	last        float64
	lastFpsTime float64
	frameCount  int
	fps         float64
}

func newFrameClock(now func() float64, sleep func(time.Duration)) *frameClock {
	return &frameClock{now: now, sleep: sleep}
}

func (c *frameClock) Tick(targetFPS int) float64 {
	now := c.now()
	if !c.started {
		c.started = true
		c.lastFpsTime = now
	} else if targetFPS > 0 {
		if wait := c.last + 1/float64(targetFPS) - now; wait > 0 {
			c.sleep(time.Duration(wait * float64(time.Second)))
			now = c.now()
		}
	}
	c.last = now

	c.frameCount++
	if elapsed := now - c.lastFpsTime; elapsed >= 1.0 {
		c.fps = float64(c.frameCount) / elapsed
		c.frameCount = 0
		c.lastFpsTime = now
	}
	return c.fps
}
