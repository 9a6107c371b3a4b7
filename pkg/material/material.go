package material

import "github.com/alexmoore/go-whitted-raytracer/pkg/math"

// Refractive indices for common media.
const (
	RefractiveIndexVacuum = 1.0
	RefractiveIndexGlass  = 1.5
)

// Material holds the Phong shading coefficients plus the reflection and
// refraction parameters for a surface. Color comes from the Pattern; a
// plain-colored surface uses a SolidPattern.
type Material struct {
	Pattern         Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // [0,1]
	Transparency    float64 // [0,1]
	RefractiveIndex float64
	CastsShadow     bool
}

// DefaultMaterial returns the standard white matte material.
func DefaultMaterial() Material {
	return Material{
		Pattern:         NewSolidPattern(math.White()),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: RefractiveIndexVacuum,
		CastsShadow:     true,
	}
}

// GlassMaterial returns a fully transparent, refractive material.
func GlassMaterial() Material {
	m := DefaultMaterial()
	m.Transparency = 1.0
	m.RefractiveIndex = RefractiveIndexGlass
	return m
}

// Color is the accessor for solid-pattern materials only: it returns the
// SolidPattern's color, or white when the material carries any other
// pattern. Patterned surfaces are shaded through the pattern itself.
func (m Material) Color() math.Color {
	if solid, ok := m.Pattern.(*SolidPattern); ok {
		return solid.Color
	}
	return math.White()
}
