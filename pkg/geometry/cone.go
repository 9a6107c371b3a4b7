package geometry

import (
	stdmath "math"

	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
)

// Cone is the double-napped cone around the y axis with its apex at the
// origin; the radius at height y is |y|. Like the cylinder it can be
// truncated to (Minimum, Maximum) and optionally closed with caps.
type Cone struct {
	shapeBase
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite open double cone with the default material.
func NewCone() *Cone {
	return &Cone{
		shapeBase: newShapeBase(),
		Minimum:   stdmath.Inf(-1),
		Maximum:   stdmath.Inf(1),
	}
}

// LocalIntersect intersects the cone wall, then the caps. When the
// quadratic degenerates to a linear equation the ray is parallel to one
// half of the cone and can still hit the other half once.
func (c *Cone) LocalIntersect(ray math.Ray) []Intersection {
	var xs []Intersection

	d, o := ray.Direction, ray.Origin
	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	if stdmath.Abs(a) < math.Epsilon {
		if stdmath.Abs(b) >= math.Epsilon {
			t := -cc / (2 * b)
			y := o.Y + t*d.Y
			if c.Minimum < y && y < c.Maximum {
				xs = append(xs, Intersection{T: t, Object: c})
			}
		}
		return c.intersectCaps(ray, xs)
	}

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return c.intersectCaps(ray, xs)
	}

	sqrtD := stdmath.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	for _, t := range []float64{t0, t1} {
		y := o.Y + t*d.Y
		if c.Minimum < y && y < c.Maximum {
			xs = append(xs, Intersection{T: t, Object: c})
		}
	}
	return c.intersectCaps(ray, xs)
}

// intersectCaps adds cap hits for closed cones. Unlike the cylinder the
// cap radius equals the cap's |y|.
func (c *Cone) intersectCaps(ray math.Ray, xs []Intersection) []Intersection {
	if !c.Closed || stdmath.Abs(ray.Direction.Y) < math.Epsilon {
		return xs
	}

	for _, y := range []float64{c.Minimum, c.Maximum} {
		t := (y - ray.Origin.Y) / ray.Direction.Y
		if checkCap(ray, t, stdmath.Abs(y)) {
			xs = append(xs, Intersection{T: t, Object: c})
		}
	}
	return xs
}

// LocalNormalAt returns the cap normals near the truncation planes,
// otherwise the wall normal with its y component sloped by the distance
// from the axis.
func (c *Cone) LocalNormalAt(point math.Tuple, _ Intersection) math.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < c.Maximum*c.Maximum && point.Y >= c.Maximum-math.Epsilon {
		return math.NewVector(0, 1, 0)
	}
	if dist < c.Minimum*c.Minimum && point.Y <= c.Minimum+math.Epsilon {
		return math.NewVector(0, -1, 0)
	}

	y := stdmath.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return math.NewVector(point.X, y, point.Z)
}

// Bounds uses the larger truncation radius; untruncated cones are
// unbounded.
func (c *Cone) Bounds() Bounds {
	if stdmath.IsInf(c.Minimum, 0) || stdmath.IsInf(c.Maximum, 0) {
		return InfiniteBounds()
	}
	r := stdmath.Max(stdmath.Abs(c.Minimum), stdmath.Abs(c.Maximum))
	return NewBounds(math.NewPoint(-r, c.Minimum, -r), math.NewPoint(r, c.Maximum, r))
}
