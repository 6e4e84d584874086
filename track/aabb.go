package track

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned box in world space
type AABB struct {
	Min, Max mgl64.Vec3
}

// BoxAround builds a box from a center and half extents
func BoxAround(center, half mgl64.Vec3) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Intersects reports strict overlap, touching faces do not count
func (b AABB) Intersects(o AABB) bool {
	return b.Min[0] < o.Max[0] && b.Max[0] > o.Min[0] &&
		b.Min[1] < o.Max[1] && b.Max[1] > o.Min[1] &&
		b.Min[2] < o.Max[2] && b.Max[2] > o.Min[2]
}

// IntersectsSphere reports whether the sphere touches or enters the box
func (b AABB) IntersectsSphere(center mgl64.Vec3, radius float64) bool {
	var distSq float64
	for i := 0; i < 3; i++ {
		c := center[i]
		if c < b.Min[i] {
			d := b.Min[i] - c
			distSq += d * d
		} else if c > b.Max[i] {
			d := c - b.Max[i]
			distSq += d * d
		}
	}
	return distSq <= radius*radius
}

// Raycast performs a slab test and returns the entry distance along dir
// dir must be normalized; rays starting inside the box hit at distance 0
func (b AABB) Raycast(origin, dir mgl64.Vec3, maxDistance float64) (float64, bool) {
	tMin, tMax := 0.0, maxDistance
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < b.Min[i] || origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1.0 / dir[i]
		t1 := (b.Min[i] - origin[i]) * inv
		t2 := (b.Max[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// Expand grows the box to include o
func (b AABB) Expand(o AABB) AABB {
	return AABB{
		Min: mgl64.Vec3{math.Min(b.Min[0], o.Min[0]), math.Min(b.Min[1], o.Min[1]), math.Min(b.Min[2], o.Min[2])},
		Max: mgl64.Vec3{math.Max(b.Max[0], o.Max[0]), math.Max(b.Max[1], o.Max[1]), math.Max(b.Max[2], o.Max[2])},
	}
}
