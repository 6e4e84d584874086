package physics

import (
	"math"

	"github.com/lixenwraith/vi-runner/vmath"
)

// JumpVelocity returns the launch speed for a jump of the given apex height
// gravity is negative; the result is sqrt(height * gravity * -3)
func JumpVelocity(height, gravity float64) float64 {
	return math.Sqrt(height * gravity * -3)
}

// IntegrateVertical applies gravity for dt
// A grounded agent that is falling first has its vertical velocity zeroed so
// downward speed does not accumulate while resting
func IntegrateVertical(vy, gravity, dt float64, grounded bool) float64 {
	if grounded && vy < 0 {
		vy = 0
	}
	return vy + gravity*dt
}

// RampSpeed accelerates forward speed by rate*dt and caps it at maxSpeed
func RampSpeed(speed, rate, maxSpeed, dt float64) float64 {
	return vmath.Clamp(speed+rate*dt, speed, maxSpeed)
}
