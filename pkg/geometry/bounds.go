package geometry

import (
	stdmath "math"

	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
)

// Bounds is an axis-aligned bounding box in some shape's object space.
// Infinite marks boxes with unbounded extents (planes, open cylinders)
// that can never reject a ray.
type Bounds struct {
	Min, Max math.Tuple
	Infinite bool
}

// NewBounds builds a bounding box from two corner points.
func NewBounds(min, max math.Tuple) Bounds {
	return Bounds{Min: min, Max: max}
}

// InfiniteBounds returns a box that contains everything.
func InfiniteBounds() Bounds {
	return Bounds{
		Min:      math.NewPoint(stdmath.Inf(-1), stdmath.Inf(-1), stdmath.Inf(-1)),
		Max:      math.NewPoint(stdmath.Inf(1), stdmath.Inf(1), stdmath.Inf(1)),
		Infinite: true,
	}
}

// emptyBounds is the identity for Merge: any real box absorbs it.
func emptyBounds() Bounds {
	return Bounds{
		Min: math.NewPoint(stdmath.Inf(1), stdmath.Inf(1), stdmath.Inf(1)),
		Max: math.NewPoint(stdmath.Inf(-1), stdmath.Inf(-1), stdmath.Inf(-1)),
	}
}

// AddPoint grows the box to contain p.
func (b Bounds) AddPoint(p math.Tuple) Bounds {
	b.Min.X = stdmath.Min(b.Min.X, p.X)
	b.Min.Y = stdmath.Min(b.Min.Y, p.Y)
	b.Min.Z = stdmath.Min(b.Min.Z, p.Z)
	b.Max.X = stdmath.Max(b.Max.X, p.X)
	b.Max.Y = stdmath.Max(b.Max.Y, p.Y)
	b.Max.Z = stdmath.Max(b.Max.Z, p.Z)
	return b
}

// Merge returns the smallest box containing both b and other.
func (b Bounds) Merge(other Bounds) Bounds {
	merged := b.AddPoint(other.Min).AddPoint(other.Max)
	merged.Infinite = b.Infinite || other.Infinite
	return merged
}

// Transform applies m to all eight corners of the box and returns the
// axis-aligned box around the result. Infinite boxes stay infinite.
func (b Bounds) Transform(m math.Matrix4) Bounds {
	if b.Infinite {
		return b
	}

	corners := [8]math.Tuple{
		math.NewPoint(b.Min.X, b.Min.Y, b.Min.Z),
		math.NewPoint(b.Min.X, b.Min.Y, b.Max.Z),
		math.NewPoint(b.Min.X, b.Max.Y, b.Min.Z),
		math.NewPoint(b.Min.X, b.Max.Y, b.Max.Z),
		math.NewPoint(b.Max.X, b.Min.Y, b.Min.Z),
		math.NewPoint(b.Max.X, b.Min.Y, b.Max.Z),
		math.NewPoint(b.Max.X, b.Max.Y, b.Min.Z),
		math.NewPoint(b.Max.X, b.Max.Y, b.Max.Z),
	}

	out := emptyBounds()
	for _, c := range corners {
		out = out.AddPoint(m.MultiplyTuple(c))
	}
	return out
}

// IntersectsRay reports whether the ray passes through the box. It uses
// the same slab test as the cube intersection but only needs the boolean
// answer.
func (b Bounds) IntersectsRay(ray math.Ray) bool {
	if b.Infinite {
		return true
	}

	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z)

	tMin := stdmath.Max(xtMin, stdmath.Max(ytMin, ztMin))
	tMax := stdmath.Min(xtMax, stdmath.Min(ytMax, ztMax))

	return tMin <= tMax
}

// checkAxis intersects the ray's 1D projection with one pair of parallel
// planes. Division by a zero direction component yields ±Inf, which the
// min/max combination handles without a special case.
func checkAxis(origin, direction, min, max float64) (float64, float64) {
	tMin := (min - origin) / direction
	tMax := (max - origin) / direction
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}
