package geometry

import (
	stdmath "math"

	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
)

// Plane is the infinite xz plane through the origin.
type Plane struct {
	shapeBase
}

// NewPlane creates an xz plane with the default material.
func NewPlane() *Plane {
	return &Plane{shapeBase: newShapeBase()}
}

// LocalIntersect hits the plane unless the ray runs parallel to it. Rays
// with a y direction component below Epsilon count as parallel, including
// coplanar rays.
func (p *Plane) LocalIntersect(ray math.Ray) []Intersection {
	if stdmath.Abs(ray.Direction.Y) < math.Epsilon {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return []Intersection{{T: t, Object: p}}
}

// LocalNormalAt is constant everywhere on the plane.
func (p *Plane) LocalNormalAt(_ math.Tuple, _ Intersection) math.Tuple {
	return math.NewVector(0, 1, 0)
}

// Bounds is unbounded in x and z.
func (p *Plane) Bounds() Bounds {
	return InfiniteBounds()
}
