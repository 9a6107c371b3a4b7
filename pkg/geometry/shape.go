// Package geometry implements the ray-intersectable primitives and the
// scene graph nodes that compose them. Every shape works in its own object
// space; world rays are brought into object space through the cached
// inverse transform before the shape-specific intersection runs.
package geometry

import (
	"github.com/alexmoore/go-whitted-raytracer/pkg/material"
	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
)

// Shape is the interface implemented by all primitives and graph nodes.
// LocalIntersect and LocalNormalAt operate in object space; the package
// level Intersect and NormalAt functions handle the world/object
// conversions.
type Shape interface {
	// LocalIntersect returns all intersections of an object-space ray with
	// the shape, in no particular order.
	LocalIntersect(ray math.Ray) []Intersection

	// LocalNormalAt returns the object-space normal at an object-space
	// point. The hit carries extra context for shapes that need it.
	LocalNormalAt(point math.Tuple, hit Intersection) math.Tuple

	// Bounds returns the shape's object-space bounding box.
	Bounds() Bounds

	Transform() math.Matrix4
	InverseTransform() math.Matrix4
	InverseTransposeTransform() math.Matrix4
	SetTransform(m math.Matrix4) error

	Material() material.Material
	SetMaterial(m material.Material)

	Parent() Shape
	setParent(p Shape)

	// childBoundsChanged tells a node that a descendant's extents moved so
	// cached bounding volumes up the chain can be rebuilt.
	childBoundsChanged()
}

// shapeBase carries the state common to every shape: the transform with its
// cached inverses, the material, and the parent link for graph nodes.
type shapeBase struct {
	transform        math.Matrix4
	inverse          math.Matrix4
	inverseTranspose math.Matrix4
	material         material.Material
	parent           Shape
}

func newShapeBase() shapeBase {
	return shapeBase{
		transform:        math.Identity(),
		inverse:          math.Identity(),
		inverseTranspose: math.Identity(),
		material:         material.DefaultMaterial(),
	}
}

func (s *shapeBase) Transform() math.Matrix4 {
	return s.transform
}

func (s *shapeBase) InverseTransform() math.Matrix4 {
	return s.inverse
}

func (s *shapeBase) InverseTransposeTransform() math.Matrix4 {
	return s.inverseTranspose
}

// SetTransform replaces the shape's transform and recomputes the cached
// inverse and inverse transpose. Singular transforms are rejected so every
// stored transform stays invertible. Ancestors are notified because their
// cached bounds depend on this transform.
func (s *shapeBase) SetTransform(m math.Matrix4) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	s.transform = m
	s.inverse = inv
	s.inverseTranspose = inv.Transpose()
	s.childBoundsChanged()
	return nil
}

func (s *shapeBase) Material() material.Material {
	return s.material
}

func (s *shapeBase) SetMaterial(m material.Material) {
	s.material = m
}

func (s *shapeBase) Parent() Shape {
	return s.parent
}

func (s *shapeBase) setParent(p Shape) {
	s.parent = p
}

// childBoundsChanged forwards the notification to the parent. Nodes that
// cache derived bounds override this to rebuild them first.
func (s *shapeBase) childBoundsChanged() {
	if s.parent != nil {
		s.parent.childBoundsChanged()
	}
}

// Intersect transforms the world ray into the shape's object space and
// delegates to the shape's LocalIntersect.
func Intersect(s Shape, ray math.Ray) []Intersection {
	localRay := ray.Transform(s.InverseTransform())
	return s.LocalIntersect(localRay)
}

// NormalAt computes the world-space surface normal at a world point,
// walking the parent chain so shapes nested in groups get correctly
// transformed normals.
func NormalAt(s Shape, worldPoint math.Tuple, hit Intersection) math.Tuple {
	localPoint := WorldToObject(s, worldPoint)
	localNormal := s.LocalNormalAt(localPoint, hit)
	return NormalToWorld(s, localNormal)
}

// WorldToObject converts a world-space point into the shape's object space,
// applying ancestor transforms from the root down.
func WorldToObject(s Shape, point math.Tuple) math.Tuple {
	if parent := s.Parent(); parent != nil {
		point = WorldToObject(parent, point)
	}
	return s.InverseTransform().MultiplyTuple(point)
}

// NormalToWorld converts an object-space normal into world space, passing
// it up through every ancestor. The w component is forced back to zero
// because the inverse transpose of a translation bleeds into it.
func NormalToWorld(s Shape, normal math.Tuple) math.Tuple {
	normal = s.InverseTransposeTransform().MultiplyTuple(normal)
	normal = normal.Vectorize().Normalize()

	if parent := s.Parent(); parent != nil {
		normal = NormalToWorld(parent, normal)
	}
	return normal
}

// PatternColorAt evaluates a pattern at a world point, converting through
// object space and then pattern space.
func PatternColorAt(s Shape, p material.Pattern, worldPoint math.Tuple) math.Color {
	objectPoint := WorldToObject(s, worldPoint)
	patternPoint := p.InverseTransform().MultiplyTuple(objectPoint)
	return p.ColorAt(patternPoint)
}
