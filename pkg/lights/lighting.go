package lights

import (
	stdmath "math"

	"github.com/alexmoore/go-whitted-raytracer/pkg/geometry"
	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
)

// Lighting evaluates the Phong model for one light at one surface point.
// The surface color comes from the shape's pattern evaluated in pattern
// space. Shadowed points get the ambient term only.
func Lighting(object geometry.Shape, light PointLight, point, eye, normal math.Tuple, inShadow bool) math.Color {
	m := object.Material()
	surface := geometry.PatternColorAt(object, m.Pattern, point)

	effective := surface.Hadamard(light.Intensity)
	ambient := effective.Multiply(m.Ambient)

	if inShadow {
		return ambient
	}

	lightVec := light.Position.Subtract(point).Normalize()

	diffuse := math.Black()
	specular := math.Black()

	// A negative cosine means the light is on the other side of the
	// surface.
	lightDotNormal := lightVec.Dot(normal)
	if lightDotNormal >= 0 {
		diffuse = effective.Multiply(m.Diffuse * lightDotNormal)

		reflectVec := lightVec.Negate().Reflect(normal)
		reflectDotEye := reflectVec.Dot(eye)
		if reflectDotEye > 0 {
			factor := stdmath.Pow(reflectDotEye, m.Shininess)
			specular = light.Intensity.Multiply(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}
