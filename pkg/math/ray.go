package math

// Ray is a half-line with an origin point and a direction vector. The
// direction is not required to be normalized for intersection math; the
// camera normalizes the rays it hands to the shading engine.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a new ray.
func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parametric distance t along the ray.
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray with origin and direction transformed by m.
// The direction is deliberately not renormalized: its scaled length is what
// keeps t values comparable across object and world space.
func (r Ray) Transform(m Matrix4) Ray {
	return Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
	}
}
