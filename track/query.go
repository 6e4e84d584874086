package track

import "github.com/go-gl/mathgl/mgl64"

// Down is the probe direction for ground checks
var Down = mgl64.Vec3{0, -1, 0}

// Hit describes the nearest surface found by a ray
type Hit struct {
	Point    mgl64.Vec3
	Distance float64
	Layer    Layer
	TileID   int
}

// SpatialQuery is the read-only track capability the locomotion core needs
// Implementations must be safe for concurrent read-only use
type SpatialQuery interface {
	// TilesNear returns tiles whose turn sensor overlaps the sphere, in query order
	TilesNear(point mgl64.Vec3, radius float64) []Tile

	// Raycast returns the nearest surface matching mask within maxDistance
	Raycast(origin, dir mgl64.Vec3, maxDistance float64, mask Layer) (Hit, bool)

	// Overlaps reports whether any surface matching mask intersects box
	Overlaps(box AABB, mask Layer) bool
}
