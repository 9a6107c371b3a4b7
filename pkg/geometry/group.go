package geometry

import "github.com/alexmoore/go-whitted-raytracer/pkg/math"

// Group is a scene graph node that composes child shapes under a shared
// transform. Groups have no surface of their own; intersections always
// report the concrete child that was hit.
type Group struct {
	shapeBase
	children []Shape
	bounds   Bounds
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{shapeBase: newShapeBase(), bounds: emptyBounds()}
}

// AddChild attaches a shape to the group, reparenting it and growing the
// group's cached bounds by the child's transformed box. Ancestor groups are
// notified so their caches grow too.
func (g *Group) AddChild(child Shape) {
	child.setParent(g)
	g.children = append(g.children, child)
	g.bounds = g.bounds.Merge(child.Bounds().Transform(child.Transform()))
	g.shapeBase.childBoundsChanged()
}

// childBoundsChanged rebuilds the cached bounds and keeps propagating up.
// It fires whenever a descendant's transform changes or a subtree gains a
// shape, so the cache is always current when rendering starts.
func (g *Group) childBoundsChanged() {
	b := emptyBounds()
	for _, child := range g.children {
		b = b.Merge(child.Bounds().Transform(child.Transform()))
	}
	g.bounds = b
	g.shapeBase.childBoundsChanged()
}

// Children returns the group's direct children.
func (g *Group) Children() []Shape {
	return g.children
}

// LocalIntersect tests the group's bounding box first, then merges the
// children's intersections into one sorted list.
func (g *Group) LocalIntersect(ray math.Ray) []Intersection {
	if len(g.children) == 0 || !g.bounds.IntersectsRay(ray) {
		return nil
	}

	var xs Intersections
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}
	xs.Sort()
	return xs
}

// LocalNormalAt never runs for groups; hits always resolve to leaf shapes.
func (g *Group) LocalNormalAt(_ math.Tuple, _ Intersection) math.Tuple {
	panic("geometry: group has no surface normal")
}

// Bounds returns the cached union of the children's transformed bounds.
func (g *Group) Bounds() Bounds {
	if len(g.children) == 0 {
		return NewBounds(math.NewPoint(0, 0, 0), math.NewPoint(0, 0, 0))
	}
	return g.bounds
}

// Includes reports whether the shape is this group or any descendant,
// used by CSG filtering when operands are whole subtrees.
func (g *Group) Includes(s Shape) bool {
	if Shape(g) == s {
		return true
	}
	for _, child := range g.children {
		if includes(child, s) {
			return true
		}
	}
	return false
}

// includes resolves shape membership through groups and CSG nodes; plain
// primitives match only themselves.
func includes(node, target Shape) bool {
	switch n := node.(type) {
	case *Group:
		return n.Includes(target)
	case *CSG:
		return n.Includes(target)
	default:
		return node == target
	}
}
