package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-runner/track"
)

// GroundProbe places two short downward rays ahead of and behind the footprint
type GroundProbe struct {
	Offset float64 // distance along facing for each probe
	Skin   float64 // lift above the collider bottom
}

// Origins returns the rear and front probe origins
func (p GroundProbe) Origins(pos, facing mgl64.Vec3, c Collider) [2]mgl64.Vec3 {
	base := mgl64.Vec3{pos.X(), c.Bottom(pos) + p.Skin, pos.Z()}
	off := facing.Mul(p.Offset)
	return [2]mgl64.Vec3{base.Sub(off), base.Add(off)}
}

// Grounded reports whether either probe reaches a ground surface within length
func (p GroundProbe) Grounded(q track.SpatialQuery, ground track.Layer, pos, facing mgl64.Vec3, c Collider, length float64) bool {
	for _, origin := range p.Origins(pos, facing, c) {
		if _, ok := q.Raycast(origin, track.Down, length, ground); ok {
			return true
		}
	}
	return false
}
