package geometry

import "sort"

// Intersection records where a ray hit a shape. T is the distance along
// the ray in world units; Object is the concrete shape that was hit, even
// when the ray entered through a group or CSG node.
type Intersection struct {
	T      float64
	Object Shape
}

// Intersections is a list of hits along one ray.
type Intersections []Intersection

// Sort orders the intersections by increasing t.
func (xs Intersections) Sort() {
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Hit returns the visible intersection, the one with the lowest
// non-negative t. The second return is false when the ray missed
// everything in front of its origin. The receiver must already be sorted.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}
