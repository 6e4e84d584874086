package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-runner/track"
)

// MoveResult reports what a move touched
type MoveResult struct {
	Landed  bool // downward motion was stopped by ground
	Contact bool // collider ended overlapping an obstacle
}

// Body moves a collider through the track, resolving ground and detecting obstacles
// It plays the role of a character controller: downward motion never passes
// through ground, and obstacle overlap is reported rather than resolved
type Body struct {
	query  track.SpatialQuery
	layers track.Layers
	skin   float64

	Position mgl64.Vec3
	Collider Collider

	collision bool
}

// NewBody places a collider at pos with collision enabled
func NewBody(q track.SpatialQuery, layers track.Layers, skin float64, pos mgl64.Vec3, c Collider) *Body {
	return &Body{
		query:     q,
		layers:    layers,
		skin:      skin,
		Position:  pos,
		Collider:  c,
		collision: true,
	}
}

// CollisionEnabled reports whether moves are resolved against the track
func (b *Body) CollisionEnabled() bool {
	return b.collision
}

// Move displaces the body by delta
func (b *Body) Move(delta mgl64.Vec3) MoveResult {
	if !b.collision {
		b.Position = b.Position.Add(delta)
		return MoveResult{}
	}

	var res MoveResult
	next := b.Position.Add(mgl64.Vec3{delta.X(), 0, delta.Z()})

	dy := delta.Y()
	if dy < 0 {
		bottom := b.Collider.Bottom(next)
		origin := mgl64.Vec3{next.X(), bottom + b.skin, next.Z()}
		if hit, ok := b.query.Raycast(origin, track.Down, b.skin-dy, b.layers.Ground); ok {
			// Rest the footprint on the ground top instead of penetrating
			dy = hit.Point.Y() - bottom
			res.Landed = true
		}
	}
	next[1] += dy
	b.Position = next

	res.Contact = b.query.Overlaps(b.Collider.Box(b.Position), b.layers.Obstacle)
	return res
}

// Teleport sets the position with collision suspended for the single operation
func (b *Body) Teleport(pos mgl64.Vec3) {
	b.collision = false
	b.Move(pos.Sub(b.Position))
	b.collision = true
}

// Contact reports whether the collider currently overlaps an obstacle
func (b *Body) Contact() bool {
	return b.query.Overlaps(b.Collider.Box(b.Position), b.layers.Obstacle)
}
