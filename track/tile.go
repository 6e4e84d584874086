package track

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-runner/vmath"
)

var (
	// ErrMissingPivot marks a turnable tile without a pivot anchor
	ErrMissingPivot = errors.New("turnable tile has no pivot")
	// ErrInvalidTile marks malformed tile data
	ErrInvalidTile = errors.New("invalid tile")
)

// TileKind classifies which turns a tile permits
type TileKind uint8

const (
	Straight TileKind = iota
	Left
	Right
	Sideways // turnable in either direction
)

var tileKindNames = [...]string{"straight", "left", "right", "sideways"}

func (k TileKind) String() string {
	if int(k) < len(tileKindNames) {
		return tileKindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseTileKind converts a lowercase kind name
func ParseTileKind(s string) (TileKind, error) {
	for i, name := range tileKindNames {
		if name == s {
			return TileKind(i), nil
		}
	}
	return Straight, fmt.Errorf("%w: unknown kind %q", ErrInvalidTile, s)
}

// Turnable reports whether any turn is possible on this kind
func (k TileKind) Turnable() bool {
	return k == Left || k == Right || k == Sideways
}

// Allows reports whether a turn in dir is legal on this kind
// Straight never allows; Sideways allows both directions
func (k TileKind) Allows(dir vmath.TurnDirection) bool {
	switch k {
	case Left:
		return dir == vmath.TurnLeft
	case Right:
		return dir == vmath.TurnRight
	case Sideways:
		return dir.Valid()
	default:
		return false
	}
}

// Tile is a read-only course segment owned by the track system
type Tile struct {
	ID      int
	Kind    TileKind
	Heading vmath.Heading // travel direction when entering the tile
	Center  mgl64.Vec3    // center of the ground top face
	Size    float64       // edge length of the square footprint
	Pivot   *mgl64.Vec3   // snap/rotation anchor, turnable kinds only
}

// Validate checks tile invariants at load time
func (t Tile) Validate() error {
	if int(t.Kind) >= len(tileKindNames) {
		return fmt.Errorf("%w: tile %d has kind %d", ErrInvalidTile, t.ID, t.Kind)
	}
	if t.Size <= 0 {
		return fmt.Errorf("%w: tile %d has size %g", ErrInvalidTile, t.ID, t.Size)
	}
	if t.Kind.Turnable() && t.Pivot == nil {
		return fmt.Errorf("tile %d (%s): %w", t.ID, t.Kind, ErrMissingPivot)
	}
	return nil
}

// Footprint returns the ground slab box of the tile
func (t Tile) Footprint(thickness float64) AABB {
	half := t.Size / 2
	return AABB{
		Min: mgl64.Vec3{t.Center[0] - half, t.Center[1] - thickness, t.Center[2] - half},
		Max: mgl64.Vec3{t.Center[0] + half, t.Center[1], t.Center[2] + half},
	}
}
