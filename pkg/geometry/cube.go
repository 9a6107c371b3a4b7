package geometry

import (
	stdmath "math"

	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
)

// Cube is the axis-aligned cube from (-1,-1,-1) to (1,1,1).
type Cube struct {
	shapeBase
}

// NewCube creates a unit cube with the default material.
func NewCube() *Cube {
	return &Cube{shapeBase: newShapeBase()}
}

// LocalIntersect runs the slab test against all three axis pairs. The ray
// misses when the largest entry t exceeds the smallest exit t.
func (c *Cube) LocalIntersect(ray math.Ray) []Intersection {
	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X, -1, 1)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y, -1, 1)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z, -1, 1)

	tMin := stdmath.Max(xtMin, stdmath.Max(ytMin, ztMin))
	tMax := stdmath.Min(xtMax, stdmath.Min(ytMax, ztMax))

	if tMin > tMax {
		return nil
	}
	return []Intersection{{T: tMin, Object: c}, {T: tMax, Object: c}}
}

// LocalNormalAt picks the face whose coordinate has the largest absolute
// value. Ties on edges and corners resolve in x, then y order.
func (c *Cube) LocalNormalAt(point math.Tuple, _ Intersection) math.Tuple {
	absX := stdmath.Abs(point.X)
	absY := stdmath.Abs(point.Y)
	absZ := stdmath.Abs(point.Z)
	maxC := stdmath.Max(absX, stdmath.Max(absY, absZ))

	switch maxC {
	case absX:
		return math.NewVector(point.X, 0, 0)
	case absY:
		return math.NewVector(0, point.Y, 0)
	}
	return math.NewVector(0, 0, point.Z)
}

// Bounds returns the cube's own extents.
func (c *Cube) Bounds() Bounds {
	return NewBounds(math.NewPoint(-1, -1, -1), math.NewPoint(1, 1, 1))
}
