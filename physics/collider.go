package physics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-runner/track"
)

// Collider is the agent's collision volume, a capsule approximated by its box
// Center is relative to the agent position, which sits at the feet
type Collider struct {
	Height float64
	Radius float64
	Center mgl64.Vec3
}

// Validate rejects degenerate volumes
func (c Collider) Validate() error {
	if c.Height <= 0 || c.Radius <= 0 {
		return fmt.Errorf("collider height %g and radius %g must be positive", c.Height, c.Radius)
	}
	return nil
}

// Bottom returns the world height of the footprint contact point
func (c Collider) Bottom(pos mgl64.Vec3) float64 {
	return pos.Y() + c.Center.Y() - c.Height/2
}

// Top returns the world height of the head
func (c Collider) Top(pos mgl64.Vec3) float64 {
	return pos.Y() + c.Center.Y() + c.Height/2
}

// Box returns the world-space bounds at pos
func (c Collider) Box(pos mgl64.Vec3) track.AABB {
	center := pos.Add(c.Center)
	return track.BoxAround(center, mgl64.Vec3{c.Radius, c.Height / 2, c.Radius})
}

// Shrunk halves the height and lowers the center by half the new height
// The bottom stays where it was so the footprint does not sink or rise
func (c Collider) Shrunk() Collider {
	h := c.Height / 2
	center := c.Center
	center[1] -= h / 2
	return Collider{Height: h, Radius: c.Radius, Center: center}
}
