package vmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the vertical axis, turns rotate around it
var Up = mgl64.Vec3{0, 1, 0}

// Heading is one of the four cardinal lane directions on the XZ plane
type Heading uint8

const (
	North Heading = iota // +Z
	East                 // +X
	South                // -Z
	West                 // -X
)

var headingVectors = [4]mgl64.Vec3{
	North: {0, 0, 1},
	East:  {1, 0, 0},
	South: {0, 0, -1},
	West:  {-1, 0, 0},
}

var headingNames = [4]string{"north", "east", "south", "west"}

// Vec returns the unit forward vector for the heading
func (h Heading) Vec() mgl64.Vec3 {
	return headingVectors[h&3]
}

func (h Heading) String() string {
	return headingNames[h&3]
}

// Turn rotates the heading by 90 degrees per step around Up
// Right (+1) from North yields East
func (h Heading) Turn(dir TurnDirection) Heading {
	q := mgl64.QuatRotate(QuarterTurn(dir), Up)
	return HeadingFromVec(q.Rotate(h.Vec()))
}

// QuarterTurn returns the rotation angle in radians for a turn direction
// Positive angles around +Y rotate +Z toward +X
func QuarterTurn(dir TurnDirection) float64 {
	return float64(dir) * math.Pi / 2
}

// HeadingFromVec snaps a planar vector to the nearest cardinal heading
// Y component is ignored; zero vector maps to North
func HeadingFromVec(v mgl64.Vec3) Heading {
	x, z := v.X(), v.Z()
	if math.Abs(x) > math.Abs(z) {
		if x > 0 {
			return East
		}
		return West
	}
	if z < 0 {
		return South
	}
	return North
}

// ParseHeading converts a lowercase heading name
func ParseHeading(s string) (Heading, error) {
	for i, name := range headingNames {
		if name == s {
			return Heading(i), nil
		}
	}
	return North, fmt.Errorf("unknown heading %q", s)
}

// TurnDirection is -1 for left and +1 for right
type TurnDirection int8

const (
	TurnLeft  TurnDirection = -1
	TurnRight TurnDirection = 1
)

// Valid reports whether d is exactly left or right
func (d TurnDirection) Valid() bool {
	return d == TurnLeft || d == TurnRight
}

func (d TurnDirection) String() string {
	switch d {
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	default:
		return fmt.Sprintf("invalid(%d)", int8(d))
	}
}
