package geometry

import (
	stdmath "math"

	"github.com/alexmoore/go-whitted-raytracer/pkg/material"
	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
)

// Sphere is the unit sphere centered on the origin. Position and size come
// from the shape transform.
type Sphere struct {
	shapeBase
}

// NewSphere creates a unit sphere with the default material.
func NewSphere() *Sphere {
	return &Sphere{shapeBase: newShapeBase()}
}

// NewGlassSphere creates a unit sphere with a fully transparent glass
// material, the standard refraction test subject.
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.SetMaterial(material.GlassMaterial())
	return s
}

// LocalIntersect solves the quadratic for the unit sphere. A tangent ray
// reports the same t twice.
func (s *Sphere) LocalIntersect(ray math.Ray) []Intersection {
	sphereToRay := ray.Origin.Subtract(math.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := stdmath.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return []Intersection{{T: t1, Object: s}, {T: t2, Object: s}}
}

// LocalNormalAt returns the vector from the center to the point, which on
// a unit sphere is already the normal.
func (s *Sphere) LocalNormalAt(point math.Tuple, _ Intersection) math.Tuple {
	return point.Subtract(math.NewPoint(0, 0, 0))
}

// Bounds returns the unit box around the sphere.
func (s *Sphere) Bounds() Bounds {
	return NewBounds(math.NewPoint(-1, -1, -1), math.NewPoint(1, 1, 1))
}
