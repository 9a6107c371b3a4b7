// Package lights provides light sources and the Phong shading model.
package lights

import "github.com/alexmoore/go-whitted-raytracer/pkg/math"

// PointLight is an infinitesimal light source radiating equally in all
// directions.
type PointLight struct {
	Position  math.Tuple
	Intensity math.Color
}

// NewPointLight creates a point light at the given position.
func NewPointLight(position math.Tuple, intensity math.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
