// Package math provides the linear algebra substrate for the ray tracer:
// homogeneous 4-tuples, 4x4 matrices, affine transform builders, rays and
// colors. All comparisons use Epsilon rather than exact equality because
// transform composition accumulates rounding error.
package math

import "math"

// Epsilon is the tolerance used for every floating point comparison in the
// tracer: tuple and matrix equality, parallel-ray tests, cap checks, the
// shadow/refraction surface bias and the singular-matrix determinant check.
const Epsilon = 1e-5

// EqualFloat reports whether a and b are equal within Epsilon.
func EqualFloat(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Tuple is a homogeneous 4-component value. W tags the kind: 1 for points,
// 0 for free vectors. The arithmetic preserves the tag algebraically
// (vector+vector=vector, point+vector=point, point-point=vector).
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint creates a point (w=1).
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a free vector (w=0).
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is tagged as a point.
func (t Tuple) IsPoint() bool {
	return EqualFloat(t.W, 1)
}

// IsVector reports whether the tuple is tagged as a free vector.
func (t Tuple) IsVector() bool {
	return EqualFloat(t.W, 0)
}

// Add returns the component-wise sum of two tuples.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference of two tuples.
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated.
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar.
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar.
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the length of the tuple.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit tuple in the same direction. A zero-magnitude
// tuple normalizes to the zero vector rather than dividing by zero.
func (t Tuple) Normalize() Tuple {
	mag := t.Magnitude()
	if mag == 0 {
		return Tuple{}
	}
	return Tuple{t.X / mag, t.Y / mag, t.Z / mag, t.W / mag}
}

// Dot returns the dot product of two tuples.
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors.
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns the tuple reflected about the given normal.
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Vectorize returns the tuple with w forced to 0, turning it into a free
// vector. Used after transforming normals by an inverse-transpose matrix,
// which can smear a translation component into w.
func (t Tuple) Vectorize() Tuple {
	return Tuple{t.X, t.Y, t.Z, 0}
}

// Equals reports whether two tuples are equal within Epsilon.
func (t Tuple) Equals(other Tuple) bool {
	return EqualFloat(t.X, other.X) &&
		EqualFloat(t.Y, other.Y) &&
		EqualFloat(t.Z, other.Z) &&
		EqualFloat(t.W, other.W)
}
