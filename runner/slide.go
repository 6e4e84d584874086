package runner

import (
	"github.com/lixenwraith/vi-runner/clock"
	"github.com/lixenwraith/vi-runner/event"
	"github.com/lixenwraith/vi-runner/physics"
)

// slideState is the Idle -> Sliding -> Idle timed sub-state
type slideState struct {
	active bool
	saved  physics.Collider // standing collider, restored on exit
	timer  clock.TimerID
}

// RequestSlide shrinks the collider for the animation duration
// Ignored while already sliding or airborne; never queued or restarted
func (c *Controller) RequestSlide() {
	if !c.alive || c.slide.active || !c.isGrounded(c.tuning.GroundProbeLength) {
		return
	}

	duration := c.animator.PlaySlide()
	if duration <= 0 {
		duration = c.tuning.SlideDuration()
	}

	c.slide.active = true
	c.slide.saved = c.body.Collider
	c.body.Collider = c.slide.saved.Shrunk()
	c.slide.timer = c.timers.After(duration, c.endSlide)
	c.stats.Slides++

	c.log.Debug().Float64("duration", duration).Msg("slide started")
	c.emit(event.EventSlideStarted, &event.SlidePayload{Duration: duration})
}

// SlideRemaining returns seconds until the slide ends, false when not sliding
func (c *Controller) SlideRemaining() (float64, bool) {
	if !c.slide.active {
		return 0, false
	}
	return c.timers.Remaining(c.slide.timer)
}

func (c *Controller) endSlide() {
	if !c.alive || !c.slide.active {
		return
	}
	c.body.Collider = c.slide.saved
	c.slide.active = false

	c.log.Debug().Msg("slide ended")
	c.emit(event.EventSlideEnded, &event.SlidePayload{})
}
