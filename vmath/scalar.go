package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the default tolerance for float comparisons in the simulation
const Epsilon = 1e-9

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApproxEqual compares floats with an absolute tolerance
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// V3ApproxEqual compares vectors component-wise with an absolute tolerance
func V3ApproxEqual(a, b mgl64.Vec3, tol float64) bool {
	return ApproxEqual(a[0], b[0], tol) && ApproxEqual(a[1], b[1], tol) && ApproxEqual(a[2], b[2], tol)
}
