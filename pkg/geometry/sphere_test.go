package geometry

import (
	stdmath "math"
	"testing"

	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
)

func TestSphere_LocalIntersect(t *testing.T) {
	tests := []struct {
		name     string
		ray      math.Ray
		expected []float64
	}{
		{
			name:     "through the center",
			ray:      math.NewRay(math.NewPoint(0, 0, -5), math.NewVector(0, 0, 1)),
			expected: []float64{4, 6},
		},
		{
			name:     "tangent",
			ray:      math.NewRay(math.NewPoint(0, 1, -5), math.NewVector(0, 0, 1)),
			expected: []float64{5, 5},
		},
		{
			name:     "miss",
			ray:      math.NewRay(math.NewPoint(0, 2, -5), math.NewVector(0, 0, 1)),
			expected: nil,
		},
		{
			name:     "origin inside",
			ray:      math.NewRay(math.NewPoint(0, 0, 0), math.NewVector(0, 0, 1)),
			expected: []float64{-1, 1},
		},
		{
			name:     "sphere behind the ray",
			ray:      math.NewRay(math.NewPoint(0, 0, 5), math.NewVector(0, 0, 1)),
			expected: []float64{-6, -4},
		},
	}

	s := NewSphere()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := s.LocalIntersect(tt.ray)
			assertTValues(t, xs, tt.expected)
			for _, x := range xs {
				if x.Object != Shape(s) {
					t.Errorf("intersection should reference the sphere")
				}
			}
		})
	}
}

func TestSphere_IntersectAppliesTransform(t *testing.T) {
	ray := math.NewRay(math.NewPoint(0, 0, -5), math.NewVector(0, 0, 1))

	scaled := NewSphere()
	if err := scaled.SetTransform(math.Scaling(2, 2, 2)); err != nil {
		t.Fatal(err)
	}
	assertTValues(t, Intersect(scaled, ray), []float64{3, 7})

	translated := NewSphere()
	if err := translated.SetTransform(math.Translation(5, 0, 0)); err != nil {
		t.Fatal(err)
	}
	assertTValues(t, Intersect(translated, ray), nil)
}

func TestSphere_NormalAt(t *testing.T) {
	s := NewSphere()
	third := stdmath.Sqrt(3) / 3

	tests := []struct {
		name     string
		point    math.Tuple
		expected math.Tuple
	}{
		{"x axis", math.NewPoint(1, 0, 0), math.NewVector(1, 0, 0)},
		{"y axis", math.NewPoint(0, 1, 0), math.NewVector(0, 1, 0)},
		{"z axis", math.NewPoint(0, 0, 1), math.NewVector(0, 0, 1)},
		{"nonaxial", math.NewPoint(third, third, third), math.NewVector(third, third, third)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalAt(s, tt.point, Intersection{})
			if !got.Equals(tt.expected) {
				t.Errorf("got %v, expected %v", got, tt.expected)
			}
			if !got.Equals(got.Normalize()) {
				t.Errorf("normal should be unit length")
			}
		})
	}
}

func TestSphere_NormalAtWithTransform(t *testing.T) {
	s := NewSphere()
	if err := s.SetTransform(math.Translation(0, 1, 0)); err != nil {
		t.Fatal(err)
	}
	got := NormalAt(s, math.NewPoint(0, 1.70711, -0.70711), Intersection{})
	if !got.Equals(math.NewVector(0, 0.70711, -0.70711)) {
		t.Errorf("translated: got %v", got)
	}

	s = NewSphere()
	if err := s.SetTransform(math.Scaling(1, 0.5, 1).Multiply(math.RotationZ(stdmath.Pi / 5))); err != nil {
		t.Fatal(err)
	}
	half := stdmath.Sqrt2 / 2
	got = NormalAt(s, math.NewPoint(0, half, -half), Intersection{})
	if !got.Equals(math.NewVector(0, 0.97014, -0.24254)) {
		t.Errorf("scaled and rotated: got %v", got)
	}
}

func TestNewGlassSphere(t *testing.T) {
	s := NewGlassSphere()
	m := s.Material()
	if m.Transparency != 1.0 || m.RefractiveIndex != 1.5 {
		t.Errorf("glass sphere material: %+v", m)
	}
}

// assertTValues compares intersection distances against the expected list.
func assertTValues(t *testing.T, xs []Intersection, expected []float64) {
	t.Helper()
	if len(xs) != len(expected) {
		t.Fatalf("got %d intersections, expected %d", len(xs), len(expected))
	}
	for i, want := range expected {
		if !math.EqualFloat(xs[i].T, want) {
			t.Errorf("xs[%d].T = %f, expected %f", i, xs[i].T, want)
		}
	}
}
