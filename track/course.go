package track

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// cellKey addresses a column of the sparse XZ bucket grid
type cellKey struct {
	X, Z int
}

// surface is a collidable box with its classification
type surface struct {
	box    AABB
	layer  Layer
	tileID int
}

// Course is an in-memory SpatialQuery backend
// Surfaces are bucketed in a sparse XZ grid; every query only scans buckets its
// bounds touch. A built Course is never mutated and is safe for concurrent reads
type Course struct {
	layers   Layers
	cellSize float64

	tiles    []Tile
	surfaces []surface
	buckets  map[cellKey][]int32 // indices into surfaces, ascending
}

var _ SpatialQuery = (*Course)(nil)

func newCourse(layers Layers, cellSize float64) *Course {
	return &Course{
		layers:   layers,
		cellSize: cellSize,
		buckets:  make(map[cellKey][]int32),
	}
}

// add inserts a surface into every bucket its XZ footprint covers
func (c *Course) add(s surface) {
	idx := int32(len(c.surfaces))
	c.surfaces = append(c.surfaces, s)
	c.forCells(s.box, func(k cellKey) {
		c.buckets[k] = append(c.buckets[k], idx)
	})
}

func (c *Course) forCells(box AABB, fn func(cellKey)) {
	x0 := int(math.Floor(box.Min[0] / c.cellSize))
	x1 := int(math.Floor(box.Max[0] / c.cellSize))
	z0 := int(math.Floor(box.Min[2] / c.cellSize))
	z1 := int(math.Floor(box.Max[2] / c.cellSize))
	for x := x0; x <= x1; x++ {
		for z := z0; z <= z1; z++ {
			fn(cellKey{x, z})
		}
	}
}

// candidates returns surface indices near box in insertion order, filtered by mask
func (c *Course) candidates(box AABB, mask Layer) []int32 {
	var out []int32
	seen := make(map[int32]struct{})
	c.forCells(box, func(k cellKey) {
		for _, idx := range c.buckets[k] {
			if _, dup := seen[idx]; dup {
				continue
			}
			seen[idx] = struct{}{}
			if c.surfaces[idx].layer.Has(mask) {
				out = append(out, idx)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Layers returns the classifications surfaces were tagged with
func (c *Course) Layers() Layers {
	return c.layers
}

// Tiles returns the course tiles in build order
func (c *Course) Tiles() []Tile {
	return c.tiles
}

// Obstacles returns obstacle boxes, used by renderers
func (c *Course) Obstacles() []AABB {
	var out []AABB
	for _, s := range c.surfaces {
		if s.layer.Has(c.layers.Obstacle) {
			out = append(out, s.box)
		}
	}
	return out
}

// TilesNear returns tiles whose junction sensor overlaps the sphere
func (c *Course) TilesNear(point mgl64.Vec3, radius float64) []Tile {
	query := BoxAround(point, mgl64.Vec3{radius, radius, radius})
	var out []Tile
	for _, idx := range c.candidates(query, c.layers.Junction) {
		s := c.surfaces[idx]
		if s.box.IntersectsSphere(point, radius) {
			out = append(out, c.tiles[s.tileID])
		}
	}
	return out
}

// Raycast returns the closest surface hit along dir
func (c *Course) Raycast(origin, dir mgl64.Vec3, maxDistance float64, mask Layer) (Hit, bool) {
	if maxDistance <= 0 {
		return Hit{}, false
	}
	dir = dir.Normalize()
	end := origin.Add(dir.Mul(maxDistance))
	span := AABB{Min: origin, Max: origin}.Expand(AABB{Min: end, Max: end})

	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, idx := range c.candidates(span, mask) {
		s := c.surfaces[idx]
		if t, ok := s.box.Raycast(origin, dir, maxDistance); ok && t < best.Distance {
			best = Hit{
				Point:    origin.Add(dir.Mul(t)),
				Distance: t,
				Layer:    s.layer,
				TileID:   s.tileID,
			}
			found = true
		}
	}
	return best, found
}

// Overlaps reports strict intersection of box with any surface matching mask
func (c *Course) Overlaps(box AABB, mask Layer) bool {
	for _, idx := range c.candidates(box, mask) {
		if c.surfaces[idx].box.Intersects(box) {
			return true
		}
	}
	return false
}
