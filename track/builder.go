package track

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-runner/parameter"
	"github.com/lixenwraith/vi-runner/vmath"
)

// Builder lays out a fixed course tile by tile along the current heading
// It is a fixture for demos and tests, not a procedural generator
type Builder struct {
	layers    Layers
	tileSize  float64
	thickness float64
	sensor    float64

	cursor  mgl64.Vec3 // center of the next tile's top face
	heading vmath.Heading

	course *Course
	errs   []error
}

// NewBuilder starts a course at origin heading in h
// The first tile is centered on origin
func NewBuilder(layers Layers, origin mgl64.Vec3, h vmath.Heading) *Builder {
	return &Builder{
		layers:    layers,
		tileSize:  parameter.TileSize,
		thickness: parameter.GroundThickness,
		sensor:    parameter.JunctionSensorHalfExtent,
		cursor:    origin,
		heading:   h,
		course:    newCourse(layers, parameter.TileSize),
	}
}

// TileSize overrides the tile edge length, call before laying tiles
func (b *Builder) TileSize(size float64) *Builder {
	if size <= 0 {
		b.errs = append(b.errs, fmt.Errorf("%w: tile size %g", ErrInvalidTile, size))
		return b
	}
	b.tileSize = size
	b.course.cellSize = size
	return b
}

// Heading returns the direction the next tile is laid in
func (b *Builder) Heading() vmath.Heading {
	return b.heading
}

// Straight appends n straight tiles
func (b *Builder) Straight(n int) *Builder {
	for i := 0; i < n; i++ {
		b.place(Tile{Kind: Straight}, nil)
	}
	return b
}

// Gap advances the cursor by n tiles without ground
func (b *Builder) Gap(n int) *Builder {
	b.advance(n)
	return b
}

// Junction appends a turnable tile and continues along branch
// Left and Right kinds require the matching branch; Sideways accepts either
func (b *Builder) Junction(kind TileKind, branch vmath.TurnDirection) *Builder {
	if !kind.Turnable() {
		b.errs = append(b.errs, fmt.Errorf("%w: junction of kind %s", ErrInvalidTile, kind))
		return b
	}
	if !kind.Allows(branch) {
		b.errs = append(b.errs, fmt.Errorf("%w: %s junction cannot branch %s", ErrInvalidTile, kind, branch))
		return b
	}
	pivot := b.cursor
	b.place(Tile{Kind: kind, Pivot: &pivot}, func(t Tile) {
		// Sensor spans from inside the slab up to head height so airborne agents still sense it
		box := AABB{
			Min: pivot.Sub(mgl64.Vec3{b.sensor, b.thickness / 2, b.sensor}),
			Max: pivot.Add(mgl64.Vec3{b.sensor, parameter.ColliderHeight, b.sensor}),
		}
		b.course.add(surface{box: box, layer: b.layers.Junction, tileID: t.ID})
	})
	// place advanced along the entry heading; rewind and step out along the branch
	b.cursor = pivot
	b.heading = b.heading.Turn(branch)
	b.advance(1)
	return b
}

// Add appends a caller-made tile at the cursor, used for malformed-data tests
// and imported layouts; the tile's center, size and heading are overwritten
func (b *Builder) Add(t Tile) *Builder {
	b.place(t, nil)
	return b
}

// Obstacle places a block on the last laid tile, along meters past its center
// bottom and top are heights above the ground top; a bottom above the collider
// head clearance makes an overhead bar to slide under
func (b *Builder) Obstacle(along, bottom, top float64) *Builder {
	if len(b.course.tiles) == 0 {
		b.errs = append(b.errs, errors.New("obstacle placed before any tile"))
		return b
	}
	if top <= bottom {
		b.errs = append(b.errs, fmt.Errorf("obstacle top %g not above bottom %g", top, bottom))
		return b
	}
	last := b.course.tiles[len(b.course.tiles)-1]
	fwd := last.Heading.Vec()
	side := mgl64.Vec3{fwd[2], 0, fwd[0]} // lateral axis, sign irrelevant for a symmetric box
	center := last.Center.Add(fwd.Mul(along))

	const depth = 0.5
	halfLateral := last.Size / 2
	half := mgl64.Vec3{
		math.Abs(fwd[0])*depth/2 + math.Abs(side[0])*halfLateral,
		(top - bottom) / 2,
		math.Abs(fwd[2])*depth/2 + math.Abs(side[2])*halfLateral,
	}
	center[1] = last.Center[1] + bottom + half[1]
	b.course.add(surface{box: BoxAround(center, half), layer: b.layers.Obstacle, tileID: last.ID})
	return b
}

// Build validates every tile and returns the finished course
func (b *Builder) Build() (*Course, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, fmt.Errorf("building course: %w", err)
	}
	if len(b.course.tiles) == 0 {
		return nil, fmt.Errorf("building course: %w: no tiles", ErrInvalidTile)
	}
	for _, t := range b.course.tiles {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("building course: %w", err)
		}
	}
	return b.course, nil
}

func (b *Builder) place(t Tile, extra func(Tile)) {
	t.ID = len(b.course.tiles)
	t.Center = b.cursor
	t.Size = b.tileSize
	t.Heading = b.heading
	b.course.tiles = append(b.course.tiles, t)
	b.course.add(surface{box: t.Footprint(b.thickness), layer: b.layers.Ground, tileID: t.ID})
	if extra != nil {
		extra(t)
	}
	b.advance(1)
}

func (b *Builder) advance(n int) {
	b.cursor = b.cursor.Add(b.heading.Vec().Mul(b.tileSize * float64(n)))
}
