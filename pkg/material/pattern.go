// Package material defines surface materials and the procedural patterns
// that drive their color.
package material

import (
	stdmath "math"

	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
)

// Pattern maps a pattern-space point to a color. Callers are expected to
// bring the point into pattern space first via InverseTransform; shapes do
// this through their own object-space conversion.
type Pattern interface {
	ColorAt(point math.Tuple) math.Color
	InverseTransform() math.Matrix4
}

// patternBase carries the pattern-space transform and its cached inverse.
type patternBase struct {
	transform math.Matrix4
	inverse   math.Matrix4
}

func newPatternBase() patternBase {
	return patternBase{transform: math.Identity(), inverse: math.Identity()}
}

// SetTransform sets the pattern transform and caches its inverse. It fails
// with math.ErrDegenerateTransform for singular transforms.
func (p *patternBase) SetTransform(m math.Matrix4) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	p.transform = m
	p.inverse = inv
	return nil
}

// Transform returns the pattern-space transform.
func (p *patternBase) Transform() math.Matrix4 {
	return p.transform
}

// InverseTransform returns the cached inverse of the pattern transform.
func (p *patternBase) InverseTransform() math.Matrix4 {
	return p.inverse
}

// SolidPattern is a single color everywhere. It is the default pattern, so
// a plain-colored material is just a material with a solid pattern.
type SolidPattern struct {
	patternBase
	Color math.Color
}

// NewSolidPattern creates a pattern with a single color.
func NewSolidPattern(c math.Color) *SolidPattern {
	return &SolidPattern{patternBase: newPatternBase(), Color: c}
}

// ColorAt returns the solid color regardless of position.
func (p *SolidPattern) ColorAt(math.Tuple) math.Color {
	return p.Color
}

// StripePattern alternates between two colors in unit bands along x.
type StripePattern struct {
	patternBase
	A, B math.Color
}

// NewStripePattern creates a stripe pattern alternating between a and b.
func NewStripePattern(a, b math.Color) *StripePattern {
	return &StripePattern{patternBase: newPatternBase(), A: a, B: b}
}

// ColorAt returns A on even integer bands of x and B on odd ones.
func (p *StripePattern) ColorAt(point math.Tuple) math.Color {
	if int(stdmath.Floor(point.X))%2 == 0 {
		return p.A
	}
	return p.B
}

// GradientPattern blends linearly from A to B as x goes from 0 to 1.
type GradientPattern struct {
	patternBase
	A, B math.Color
}

// NewGradientPattern creates a linear gradient from a to b.
func NewGradientPattern(a, b math.Color) *GradientPattern {
	return &GradientPattern{patternBase: newPatternBase(), A: a, B: b}
}

// ColorAt linearly interpolates between A and B by the fractional distance
// along x.
func (p *GradientPattern) ColorAt(point math.Tuple) math.Color {
	distance := p.B.Subtract(p.A)
	fraction := point.X - stdmath.Floor(point.X)
	return p.A.Add(distance.Multiply(fraction))
}

// RingPattern alternates two colors in concentric rings on the xz plane.
type RingPattern struct {
	patternBase
	A, B math.Color
}

// NewRingPattern creates a ring pattern alternating between a and b.
func NewRingPattern(a, b math.Color) *RingPattern {
	return &RingPattern{patternBase: newPatternBase(), A: a, B: b}
}

// ColorAt returns A when the xz distance from the origin falls on an even
// integer band.
func (p *RingPattern) ColorAt(point math.Tuple) math.Color {
	distance := stdmath.Sqrt(point.X*point.X + point.Z*point.Z)
	if int(stdmath.Floor(distance))%2 == 0 {
		return p.A
	}
	return p.B
}

// CheckerPattern alternates two colors in a 3D checkerboard of unit cubes.
type CheckerPattern struct {
	patternBase
	A, B math.Color
}

// NewCheckerPattern creates a 3D checker pattern alternating between a and b.
func NewCheckerPattern(a, b math.Color) *CheckerPattern {
	return &CheckerPattern{patternBase: newPatternBase(), A: a, B: b}
}

// ColorAt sums the floors of all three coordinates; even sums get A.
func (p *CheckerPattern) ColorAt(point math.Tuple) math.Color {
	sum := stdmath.Floor(point.X) + stdmath.Floor(point.Y) + stdmath.Floor(point.Z)
	if int(sum)%2 == 0 {
		return p.A
	}
	return p.B
}
