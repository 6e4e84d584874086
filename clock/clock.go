// Package clock tracks simulation time in ticks and schedules deferred callbacks
// against it. Nothing here reads the wall clock: time only moves when Advance is called
package clock

import "time"

// Clock accumulates tick time and counts frames
type Clock struct {
	elapsed float64 // seconds
	frame   int64
}

// Advance adds dt seconds and increments the frame counter
func (c *Clock) Advance(dt float64) {
	c.elapsed += dt
	c.frame++
}

// Elapsed returns total simulated seconds
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// ElapsedDuration returns total simulated time as a Duration
func (c *Clock) ElapsedDuration() time.Duration {
	return time.Duration(c.elapsed * float64(time.Second))
}

// Frame returns the number of completed ticks
func (c *Clock) Frame() int64 {
	return c.frame
}
