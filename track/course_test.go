package track

import (
	"errors"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-runner/vmath"
)

func buildCourse(t *testing.T, fn func(b *Builder)) *Course {
	t.Helper()
	b := NewBuilder(DefaultLayers(), mgl64.Vec3{}, vmath.North)
	fn(b)
	c, err := b.Build()
	require.NoError(t, err)
	return c
}

func TestTileKindAllows(t *testing.T) {
	tests := []struct {
		kind TileKind
		dir  vmath.TurnDirection
		want bool
	}{
		{Straight, vmath.TurnLeft, false},
		{Straight, vmath.TurnRight, false},
		{Left, vmath.TurnLeft, true},
		{Left, vmath.TurnRight, false},
		{Right, vmath.TurnRight, true},
		{Right, vmath.TurnLeft, false},
		{Sideways, vmath.TurnLeft, true},
		{Sideways, vmath.TurnRight, true},
		{Sideways, vmath.TurnDirection(0), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.Allows(tt.dir), "%s/%s", tt.kind, tt.dir)
	}
}

func TestParseTileKind(t *testing.T) {
	k, err := ParseTileKind("sideways")
	require.NoError(t, err)
	assert.Equal(t, Sideways, k)

	_, err = ParseTileKind("diagonal")
	assert.ErrorIs(t, err, ErrInvalidTile)
}

func TestBuildRejectsTurnableTileWithoutPivot(t *testing.T) {
	b := NewBuilder(DefaultLayers(), mgl64.Vec3{}, vmath.North)
	b.Straight(1).Add(Tile{Kind: Right})
	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingPivot))
}

func TestBuildRejectsMismatchedBranch(t *testing.T) {
	b := NewBuilder(DefaultLayers(), mgl64.Vec3{}, vmath.North)
	b.Junction(Left, vmath.TurnRight)
	_, err := b.Build()
	assert.ErrorIs(t, err, ErrInvalidTile)
}

func TestBuildRejectsEmptyCourse(t *testing.T) {
	_, err := NewBuilder(DefaultLayers(), mgl64.Vec3{}, vmath.North).Build()
	assert.ErrorIs(t, err, ErrInvalidTile)
}

func TestBuilderLaysTilesAlongHeading(t *testing.T) {
	c := buildCourse(t, func(b *Builder) {
		b.Straight(2).Junction(Right, vmath.TurnRight).Straight(1)
	})
	tiles := c.Tiles()
	require.Len(t, tiles, 4)
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, tiles[0].Center)
	assert.Equal(t, mgl64.Vec3{0, 0, 10}, tiles[1].Center)
	assert.Equal(t, mgl64.Vec3{0, 0, 20}, tiles[2].Center)
	require.NotNil(t, tiles[2].Pivot)
	assert.Equal(t, mgl64.Vec3{0, 0, 20}, *tiles[2].Pivot)
	// After a right turn from north the course continues east
	assert.Equal(t, vmath.East, tiles[3].Heading)
	assert.Equal(t, mgl64.Vec3{10, 0, 20}, tiles[3].Center)
}

func TestRaycastGround(t *testing.T) {
	c := buildCourse(t, func(b *Builder) { b.Straight(3) })
	layers := c.Layers()

	hit, ok := c.Raycast(mgl64.Vec3{0, 0.1, 3}, Down, 0.2, layers.Ground)
	require.True(t, ok)
	assert.InDelta(t, 0.1, hit.Distance, 1e-9)
	assert.InDelta(t, 0.0, hit.Point.Y(), 1e-9)
	assert.Equal(t, 0, hit.TileID)

	// Too short to reach
	_, ok = c.Raycast(mgl64.Vec3{0, 1, 3}, Down, 0.2, layers.Ground)
	assert.False(t, ok)

	// Off the side of the course
	_, ok = c.Raycast(mgl64.Vec3{6, 0.1, 3}, Down, 20, layers.Ground)
	assert.False(t, ok)

	// Wrong mask
	_, ok = c.Raycast(mgl64.Vec3{0, 0.1, 3}, Down, 0.2, layers.Obstacle)
	assert.False(t, ok)
}

func TestRaycastGap(t *testing.T) {
	c := buildCourse(t, func(b *Builder) { b.Straight(1).Gap(1).Straight(1) })
	_, ok := c.Raycast(mgl64.Vec3{0, 0.1, 10}, Down, 20, c.Layers().Ground)
	assert.False(t, ok)
	_, ok = c.Raycast(mgl64.Vec3{0, 0.1, 20}, Down, 20, c.Layers().Ground)
	assert.True(t, ok)
}

func TestTilesNearFindsJunctionSensor(t *testing.T) {
	c := buildCourse(t, func(b *Builder) {
		b.Straight(1).Junction(Sideways, vmath.TurnLeft).Straight(1)
	})

	near := c.TilesNear(mgl64.Vec3{0.4, 0, 10.3}, 0.1)
	require.Len(t, near, 1)
	assert.Equal(t, Sideways, near[0].Kind)
	assert.Equal(t, 1, near[0].ID)

	// Straight tile has no sensor
	assert.Empty(t, c.TilesNear(mgl64.Vec3{0, 0, 0}, 0.1))
	// Just outside the sensor box
	assert.Empty(t, c.TilesNear(mgl64.Vec3{0, 0, 11.2}, 0.1))
}

func TestOverlapsObstacle(t *testing.T) {
	c := buildCourse(t, func(b *Builder) {
		b.Straight(1).Obstacle(2, 0, 1).Straight(1).Obstacle(0, 1.2, 3)
	})
	layers := c.Layers()
	require.Len(t, c.Obstacles(), 2)

	standing := AABB{Min: mgl64.Vec3{-0.5, 0, 1.6}, Max: mgl64.Vec3{0.5, 2, 2.6}}
	assert.True(t, c.Overlaps(standing, layers.Obstacle))

	// Jumped above the low block
	airborne := AABB{Min: mgl64.Vec3{-0.5, 1.1, 1.6}, Max: mgl64.Vec3{0.5, 3.1, 2.6}}
	assert.False(t, c.Overlaps(airborne, layers.Obstacle))

	// Overhead bar at tile 1: full height hits, half height passes
	tall := AABB{Min: mgl64.Vec3{-0.5, 0, 9.5}, Max: mgl64.Vec3{0.5, 2, 10.5}}
	short := AABB{Min: mgl64.Vec3{-0.5, 0, 9.5}, Max: mgl64.Vec3{0.5, 1, 10.5}}
	assert.True(t, c.Overlaps(tall, layers.Obstacle))
	assert.False(t, c.Overlaps(short, layers.Obstacle))

	// Ground is not an obstacle
	assert.False(t, c.Overlaps(AABB{Min: mgl64.Vec3{-1, -0.5, 5}, Max: mgl64.Vec3{1, 0.5, 6}}, layers.Obstacle))
}

func TestCourseConcurrentReads(t *testing.T) {
	c := buildCourse(t, func(b *Builder) {
		b.Straight(4).Junction(Left, vmath.TurnLeft).Straight(4)
	})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = c.Raycast(mgl64.Vec3{0, 0.1, float64(j % 40)}, Down, 20, c.Layers().Ground)
				_ = c.TilesNear(mgl64.Vec3{0, 0, 40}, 0.1)
			}
		}()
	}
	wg.Wait()
}

func TestNewLayers(t *testing.T) {
	ls, err := NewLayers(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, Layer(2), ls.Ground)
	assert.Equal(t, "obstacle", ls.Name(ls.Obstacle))

	_, err = NewLayers(1, 1, 3)
	assert.Error(t, err)
	_, err = NewLayers(1, 2, 32)
	assert.Error(t, err)
}
