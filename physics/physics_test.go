package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-runner/parameter"
	"github.com/lixenwraith/vi-runner/track"
	"github.com/lixenwraith/vi-runner/vmath"
)

func defaultCollider() Collider {
	return Collider{
		Height: parameter.ColliderHeight,
		Radius: parameter.ColliderRadius,
		Center: mgl64.Vec3{0, parameter.ColliderCenterY, 0},
	}
}

func defaultProbe() GroundProbe {
	return GroundProbe{Offset: parameter.GroundProbeOffset, Skin: parameter.GroundProbeSkin}
}

func straightCourse(t *testing.T, fn func(b *track.Builder)) *track.Course {
	t.Helper()
	b := track.NewBuilder(track.DefaultLayers(), mgl64.Vec3{}, vmath.North)
	fn(b)
	c, err := b.Build()
	require.NoError(t, err)
	return c
}

func TestJumpVelocity(t *testing.T) {
	// sqrt(1.0 * 9.81 * 3)
	assert.InDelta(t, 5.4249, JumpVelocity(1.0, -9.81), 1e-4)
	assert.InDelta(t, 0, JumpVelocity(0, -9.81), 1e-12)
}

func TestIntegrateVerticalResetsWhenGroundedAndFalling(t *testing.T) {
	dt := 1.0 / 60
	vy := IntegrateVertical(-3, -9.81, dt, true)
	assert.InDelta(t, -9.81*dt, vy, 1e-12)

	// Rising while grounded keeps momentum
	vy = IntegrateVertical(5, -9.81, dt, true)
	assert.InDelta(t, 5-9.81*dt, vy, 1e-12)

	// Airborne falling accumulates
	vy = IntegrateVertical(-3, -9.81, dt, false)
	assert.InDelta(t, -3-9.81*dt, vy, 1e-12)
}

func TestRampSpeed(t *testing.T) {
	assert.InDelta(t, 4.1, RampSpeed(4, 0.1, 30, 1), 1e-12)
	assert.Equal(t, 30.0, RampSpeed(29.99, 0.1, 30, 1))
	assert.Equal(t, 30.0, RampSpeed(30, 0.1, 30, 1))
}

func TestColliderShrinkKeepsBottom(t *testing.T) {
	c := defaultCollider()
	pos := mgl64.Vec3{3, 0.25, -2}
	s := c.Shrunk()

	assert.Equal(t, c.Height/2, s.Height)
	assert.Equal(t, c.Radius, s.Radius)
	assert.InDelta(t, c.Bottom(pos), s.Bottom(pos), 1e-12)
	assert.Less(t, s.Top(pos), c.Top(pos))
}

func TestColliderValidate(t *testing.T) {
	assert.NoError(t, defaultCollider().Validate())
	assert.Error(t, Collider{Height: 0, Radius: 1}.Validate())
	assert.Error(t, Collider{Height: 1, Radius: -1}.Validate())
}

func TestGroundProbe(t *testing.T) {
	c := straightCourse(t, func(b *track.Builder) { b.Straight(1) })
	layers := c.Layers()
	probe := defaultProbe()
	col := defaultCollider()
	fwd := vmath.North.Vec()

	assert.True(t, probe.Grounded(c, layers.Ground, mgl64.Vec3{0, 0, 0}, fwd, col, parameter.GroundProbeLength))

	// Airborne beyond tolerance
	assert.False(t, probe.Grounded(c, layers.Ground, mgl64.Vec3{0, 0.5, 0}, fwd, col, parameter.GroundProbeLength))
	// Long probe still finds it
	assert.True(t, probe.Grounded(c, layers.Ground, mgl64.Vec3{0, 0.5, 0}, fwd, col, parameter.FallProbeLength))

	// Only the rear probe is over the tile edge at z=5
	assert.True(t, probe.Grounded(c, layers.Ground, mgl64.Vec3{0, 0, 5.1}, fwd, col, parameter.GroundProbeLength))
	// Both probes past the edge
	assert.False(t, probe.Grounded(c, layers.Ground, mgl64.Vec3{0, 0, 5.3}, fwd, col, parameter.FallProbeLength))
}

func TestBodyMoveLandsOnGround(t *testing.T) {
	c := straightCourse(t, func(b *track.Builder) { b.Straight(2) })
	body := NewBody(c, c.Layers(), parameter.GroundProbeSkin, mgl64.Vec3{0, 0, 0}, defaultCollider())

	res := body.Move(mgl64.Vec3{0, -0.5, 1})
	assert.True(t, res.Landed)
	assert.False(t, res.Contact)
	assert.InDelta(t, 0, body.Position.Y(), 1e-12)
	assert.InDelta(t, 1, body.Position.Z(), 1e-12)

	// Upward motion is free
	res = body.Move(mgl64.Vec3{0, 0.3, 0})
	assert.False(t, res.Landed)
	assert.InDelta(t, 0.3, body.Position.Y(), 1e-12)
}

func TestBodyMoveFallsThroughGap(t *testing.T) {
	c := straightCourse(t, func(b *track.Builder) { b.Straight(1).Gap(1).Straight(1) })
	body := NewBody(c, c.Layers(), parameter.GroundProbeSkin, mgl64.Vec3{0, 0, 10}, defaultCollider())

	res := body.Move(mgl64.Vec3{0, -0.5, 0})
	assert.False(t, res.Landed)
	assert.InDelta(t, -0.5, body.Position.Y(), 1e-12)
}

func TestBodyMoveReportsObstacleContact(t *testing.T) {
	c := straightCourse(t, func(b *track.Builder) { b.Straight(1).Obstacle(2, 0, 1) })
	body := NewBody(c, c.Layers(), parameter.GroundProbeSkin, mgl64.Vec3{0, 0, 0}, defaultCollider())

	assert.False(t, body.Move(mgl64.Vec3{0, 0, 1}).Contact)
	assert.True(t, body.Move(mgl64.Vec3{0, 0, 0.8}).Contact)
	assert.True(t, body.Contact())
}

func TestBodyTeleportSkipsCollision(t *testing.T) {
	c := straightCourse(t, func(b *track.Builder) { b.Straight(1).Obstacle(2, 0, 1) })
	body := NewBody(c, c.Layers(), parameter.GroundProbeSkin, mgl64.Vec3{0, 0, 0}, defaultCollider())

	// Into the obstacle and below ground: no resolution applied
	target := mgl64.Vec3{0, -0.2, 2}
	body.Teleport(target)
	assert.Equal(t, target, body.Position)
	assert.True(t, body.CollisionEnabled())
}
