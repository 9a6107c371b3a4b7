package geometry

import (
	stdmath "math"
	"testing"

	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
)

func TestCone_LocalIntersect(t *testing.T) {
	c := NewCone()

	tests := []struct {
		name      string
		origin    math.Tuple
		direction math.Tuple
		expected  []float64
	}{
		{"straight through", math.NewPoint(0, 0, -5), math.NewVector(0, 0, 1), []float64{5, 5}},
		{"diagonal", math.NewPoint(0, 0, -5), math.NewVector(1, 1, 1), []float64{8.66025, 8.66025}},
		{"both halves", math.NewPoint(1, 1, -5), math.NewVector(-0.5, -1, 1), []float64{4.55006, 49.44994}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := math.NewRay(tt.origin, tt.direction.Normalize())
			assertTValues(t, c.LocalIntersect(ray), tt.expected)
		})
	}
}

func TestCone_RayParallelToOneHalf(t *testing.T) {
	c := NewCone()
	ray := math.NewRay(math.NewPoint(0, 0, -1), math.NewVector(0, 1, 1).Normalize())

	xs := c.LocalIntersect(ray)
	if len(xs) != 1 {
		t.Fatalf("got %d intersections, expected 1", len(xs))
	}
	if !math.EqualFloat(xs[0].T, 0.35355) {
		t.Errorf("t = %f, expected 0.35355", xs[0].T)
	}
}

func TestCone_Capped(t *testing.T) {
	c := NewCone()
	c.Minimum = -0.5
	c.Maximum = 0.5
	c.Closed = true

	tests := []struct {
		name      string
		origin    math.Tuple
		direction math.Tuple
		count     int
	}{
		{"parallel beside the cone", math.NewPoint(0, 0, -5), math.NewVector(0, 1, 0), 0},
		{"through wall and cap", math.NewPoint(0, 0, -0.25), math.NewVector(0, 1, 1), 2},
		{"up the axis through both caps", math.NewPoint(0, 0, -0.25), math.NewVector(0, 1, 0), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := math.NewRay(tt.origin, tt.direction.Normalize())
			if xs := c.LocalIntersect(ray); len(xs) != tt.count {
				t.Errorf("got %d intersections, expected %d", len(xs), tt.count)
			}
		})
	}
}

func TestCone_LocalNormalAt(t *testing.T) {
	c := NewCone()

	tests := []struct {
		point    math.Tuple
		expected math.Tuple
	}{
		{math.NewPoint(0, 0, 0), math.NewVector(0, 0, 0)},
		{math.NewPoint(1, 1, 1), math.NewVector(1, -stdmath.Sqrt2, 1)},
		{math.NewPoint(-1, -1, 0), math.NewVector(-1, 1, 0)},
	}

	for _, tt := range tests {
		if got := c.LocalNormalAt(tt.point, Intersection{}); !got.Equals(tt.expected) {
			t.Errorf("at %v: got %v, expected %v", tt.point, got, tt.expected)
		}
	}
}
