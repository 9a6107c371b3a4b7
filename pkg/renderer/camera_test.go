package renderer

import (
	stdmath "math"
	"testing"

	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
)

func TestCamera_PixelSize(t *testing.T) {
	horizontal := NewCamera(200, 125, stdmath.Pi/2)
	if !math.EqualFloat(horizontal.PixelSize(), 0.01) {
		t.Errorf("horizontal canvas: pixel size %f", horizontal.PixelSize())
	}

	vertical := NewCamera(125, 200, stdmath.Pi/2)
	if !math.EqualFloat(vertical.PixelSize(), 0.01) {
		t.Errorf("vertical canvas: pixel size %f", vertical.PixelSize())
	}
}

func TestCamera_RayForPixel(t *testing.T) {
	t.Run("through the center", func(t *testing.T) {
		c := NewCamera(201, 101, stdmath.Pi/2)
		r := c.RayForPixel(100, 50)
		if !r.Origin.Equals(math.NewPoint(0, 0, 0)) {
			t.Errorf("origin %v", r.Origin)
		}
		if !r.Direction.Equals(math.NewVector(0, 0, -1)) {
			t.Errorf("direction %v", r.Direction)
		}
	})

	t.Run("through a corner", func(t *testing.T) {
		c := NewCamera(201, 101, stdmath.Pi/2)
		r := c.RayForPixel(0, 0)
		if !r.Origin.Equals(math.NewPoint(0, 0, 0)) {
			t.Errorf("origin %v", r.Origin)
		}
		if !r.Direction.Equals(math.NewVector(0.66519, 0.33259, -0.66851)) {
			t.Errorf("direction %v", r.Direction)
		}
	})

	t.Run("with a transformed camera", func(t *testing.T) {
		c := NewCamera(201, 101, stdmath.Pi/2)
		err := c.SetTransform(math.RotationY(stdmath.Pi / 4).Multiply(math.Translation(0, -2, 5)))
		if err != nil {
			t.Fatal(err)
		}

		r := c.RayForPixel(100, 50)
		half := stdmath.Sqrt2 / 2
		if !r.Origin.Equals(math.NewPoint(0, 2, -5)) {
			t.Errorf("origin %v", r.Origin)
		}
		if !r.Direction.Equals(math.NewVector(half, 0, -half)) {
			t.Errorf("direction %v", r.Direction)
		}
	})
}

func TestCamera_SetTransformRejectsSingular(t *testing.T) {
	c := NewCamera(10, 10, stdmath.Pi/2)
	if err := c.SetTransform(math.Scaling(0, 1, 1)); err == nil {
		t.Error("expected error for degenerate view transform")
	}
}
