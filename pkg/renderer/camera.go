// Package renderer maps camera rays onto a canvas and runs the render
// loop, sequentially or across a worker pool.
package renderer

import (
	stdmath "math"

	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
)

// Camera projects canvas pixels into world-space rays. HSize and VSize are
// in pixels; FieldOfView is the horizontal or vertical angle in radians,
// whichever dimension is smaller.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transform math.Matrix4
	inverse   math.Matrix4

	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera at the origin looking down -z.
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   math.Identity(),
		inverse:     math.Identity(),
	}

	halfView := stdmath.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)

	return c
}

// Transform returns the camera's view transform.
func (c *Camera) Transform() math.Matrix4 {
	return c.transform
}

// SetTransform installs a view transform, caching its inverse. Singular
// transforms are rejected.
func (c *Camera) SetTransform(m math.Matrix4) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// PixelSize is the world-space side length of one canvas pixel.
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the world-space ray through the center of the given
// canvas pixel. The canvas sits one world unit in front of the camera.
func (c *Camera) RayForPixel(px, py int) math.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(math.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(math.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return math.NewRay(origin, direction)
}
