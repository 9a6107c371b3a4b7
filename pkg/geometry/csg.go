package geometry

import "github.com/alexmoore/go-whitted-raytracer/pkg/math"

// CSGOperation selects how a CSG node combines its operands.
type CSGOperation int

const (
	// CSGUnion keeps surface on the outside of both operands.
	CSGUnion CSGOperation = iota
	// CSGIntersection keeps surface of one operand inside the other.
	CSGIntersection
	// CSGDifference keeps the left operand's surface outside the right,
	// and the right operand's surface inside the left.
	CSGDifference
)

// CSG combines two shapes with a boolean set operation. The operands may
// themselves be groups or other CSG nodes.
type CSG struct {
	shapeBase
	Operation CSGOperation
	Left      Shape
	Right     Shape
}

// NewCSG creates a CSG node over left and right, reparenting both.
func NewCSG(op CSGOperation, left, right Shape) *CSG {
	c := &CSG{shapeBase: newShapeBase(), Operation: op, Left: left, Right: right}
	left.setParent(c)
	right.setParent(c)
	return c
}

// LocalIntersect collects both operands' intersections and filters them
// down to the ones on the combined surface.
func (c *CSG) LocalIntersect(ray math.Ray) []Intersection {
	var xs Intersections
	xs = append(xs, Intersect(c.Left, ray)...)
	xs = append(xs, Intersect(c.Right, ray)...)
	xs.Sort()
	return c.filterIntersections(xs)
}

// LocalNormalAt never runs for CSG nodes; hits resolve to leaf shapes.
func (c *CSG) LocalNormalAt(_ math.Tuple, _ Intersection) math.Tuple {
	panic("geometry: csg node has no surface normal")
}

// Bounds unions the operands' transformed bounds.
func (c *CSG) Bounds() Bounds {
	lb := c.Left.Bounds().Transform(c.Left.Transform())
	rb := c.Right.Bounds().Transform(c.Right.Transform())
	return lb.Merge(rb)
}

// Includes reports whether the shape belongs to either operand subtree.
func (c *CSG) Includes(s Shape) bool {
	return Shape(c) == s || includes(c.Left, s) || includes(c.Right, s)
}

// IntersectionAllowed is the truth table deciding whether a surface hit
// survives the boolean operation. lhit is true when the left operand was
// hit; inLeft and inRight report whether the hit lies inside each operand.
func IntersectionAllowed(op CSGOperation, lhit, inLeft, inRight bool) bool {
	switch op {
	case CSGUnion:
		return (lhit && !inRight) || (!lhit && !inLeft)
	case CSGIntersection:
		return (lhit && inRight) || (!lhit && inLeft)
	case CSGDifference:
		return (lhit && !inRight) || (!lhit && inLeft)
	}
	return false
}

// filterIntersections walks the sorted intersection list, tracking
// containment in each operand, and keeps only the allowed hits.
func (c *CSG) filterIntersections(xs Intersections) Intersections {
	inLeft := false
	inRight := false

	var result Intersections
	for _, x := range xs {
		lhit := includes(c.Left, x.Object)

		if IntersectionAllowed(c.Operation, lhit, inLeft, inRight) {
			result = append(result, x)
		}

		if lhit {
			inLeft = !inLeft
		} else {
			inRight = !inRight
		}
	}
	return result
}
