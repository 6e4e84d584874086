package vmath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadingTurnRight(t *testing.T) {
	assert.Equal(t, East, North.Turn(TurnRight))
	assert.Equal(t, South, East.Turn(TurnRight))
	assert.Equal(t, West, South.Turn(TurnRight))
	assert.Equal(t, North, West.Turn(TurnRight))
}

func TestHeadingTurnLeft(t *testing.T) {
	assert.Equal(t, West, North.Turn(TurnLeft))
	assert.Equal(t, South, West.Turn(TurnLeft))
	assert.Equal(t, East, South.Turn(TurnLeft))
	assert.Equal(t, North, East.Turn(TurnLeft))
}

// Four quarter turns in either direction return to the starting heading
func TestHeadingFullRotation(t *testing.T) {
	for _, dir := range []TurnDirection{TurnLeft, TurnRight} {
		h := North
		for i := 0; i < 4; i++ {
			h = h.Turn(dir)
		}
		assert.Equal(t, North, h, "dir=%s", dir)
	}
}

// Turned heading vector is the start vector rotated by exactly +/-90 degrees
func TestHeadingTurnIsQuarterRotation(t *testing.T) {
	for h := North; h <= West; h++ {
		for _, dir := range []TurnDirection{TurnLeft, TurnRight} {
			before := h.Vec()
			after := h.Turn(dir).Vec()
			assert.InDelta(t, 0, before.Dot(after), Epsilon)
			cross := before.Cross(after)
			assert.InDelta(t, float64(dir), cross.Y(), Epsilon, "h=%s dir=%s", h, dir)
		}
	}
}

func TestHeadingFromVec(t *testing.T) {
	assert.Equal(t, East, HeadingFromVec(mgl64.Vec3{0.9, 5, 0.1}))
	assert.Equal(t, West, HeadingFromVec(mgl64.Vec3{-2, 0, 1}))
	assert.Equal(t, South, HeadingFromVec(mgl64.Vec3{0.2, 0, -1}))
	assert.Equal(t, North, HeadingFromVec(mgl64.Vec3{}))
}

func TestParseHeading(t *testing.T) {
	h, err := ParseHeading("west")
	require.NoError(t, err)
	assert.Equal(t, West, h)

	_, err = ParseHeading("up")
	assert.Error(t, err)
}

func TestTurnDirectionValid(t *testing.T) {
	assert.True(t, TurnLeft.Valid())
	assert.True(t, TurnRight.Valid())
	assert.False(t, TurnDirection(0).Valid())
	assert.False(t, TurnDirection(2).Valid())
	assert.Equal(t, "invalid(0)", TurnDirection(0).String())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 4.0, Clamp(1, 4, 30))
	assert.Equal(t, 30.0, Clamp(31, 4, 30))
	assert.Equal(t, 12.5, Clamp(12.5, 4, 30))
}
