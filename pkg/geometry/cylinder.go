package geometry

import (
	stdmath "math"

	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
)

// Cylinder is the unit-radius cylinder around the y axis. It extends from
// Minimum to Maximum exclusive; the default is infinite in both
// directions. Closed adds end caps.
type Cylinder struct {
	shapeBase
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder with the default material.
func NewCylinder() *Cylinder {
	return &Cylinder{
		shapeBase: newShapeBase(),
		Minimum:   stdmath.Inf(-1),
		Maximum:   stdmath.Inf(1),
	}
}

// LocalIntersect intersects the side wall, truncated to (Minimum, Maximum),
// then the end caps when the cylinder is closed.
func (c *Cylinder) LocalIntersect(ray math.Ray) []Intersection {
	var xs []Intersection

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if stdmath.Abs(a) >= math.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return nil
		}

		sqrtD := stdmath.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		for _, t := range []float64{t0, t1} {
			y := ray.Origin.Y + t*ray.Direction.Y
			if c.Minimum < y && y < c.Maximum {
				xs = append(xs, Intersection{T: t, Object: c})
			}
		}
	}

	return c.intersectCaps(ray, xs)
}

// intersectCaps adds hits on the two end disks for closed cylinders.
func (c *Cylinder) intersectCaps(ray math.Ray, xs []Intersection) []Intersection {
	if !c.Closed || stdmath.Abs(ray.Direction.Y) < math.Epsilon {
		return xs
	}

	for _, y := range []float64{c.Minimum, c.Maximum} {
		t := (y - ray.Origin.Y) / ray.Direction.Y
		if checkCap(ray, t, 1) {
			xs = append(xs, Intersection{T: t, Object: c})
		}
	}
	return xs
}

// checkCap reports whether the ray at t lands within radius of the y axis.
func checkCap(ray math.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}

// LocalNormalAt distinguishes the caps from the wall by comparing the hit's
// squared distance from the axis against the cap radius.
func (c *Cylinder) LocalNormalAt(point math.Tuple, _ Intersection) math.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= c.Maximum-math.Epsilon {
		return math.NewVector(0, 1, 0)
	}
	if dist < 1 && point.Y <= c.Minimum+math.Epsilon {
		return math.NewVector(0, -1, 0)
	}
	return math.NewVector(point.X, 0, point.Z)
}

// Bounds is infinite along y for untruncated cylinders.
func (c *Cylinder) Bounds() Bounds {
	if stdmath.IsInf(c.Minimum, 0) || stdmath.IsInf(c.Maximum, 0) {
		return InfiniteBounds()
	}
	return NewBounds(math.NewPoint(-1, c.Minimum, -1), math.NewPoint(1, c.Maximum, 1))
}
