// Package scene assembles shapes and lights into renderable worlds and
// implements the recursive Whitted shading that colors camera rays.
package scene

import (
	"errors"
	stdmath "math"

	"github.com/alexmoore/go-whitted-raytracer/pkg/geometry"
	"github.com/alexmoore/go-whitted-raytracer/pkg/lights"
	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
)

// MaxRecursionDepth bounds reflection and refraction recursion.
const MaxRecursionDepth = 5

var (
	// ErrNoLights marks a world that cannot be shaded.
	ErrNoLights = errors.New("scene: world has no lights")
	// ErrNoShapes marks a world with nothing to render.
	ErrNoShapes = errors.New("scene: world has no shapes")
)

// World holds the top-level shapes and lights of a scene.
type World struct {
	Shapes []geometry.Shape
	Lights []lights.PointLight
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// Validate reports whether the world can be rendered at all.
func (w *World) Validate() error {
	if len(w.Shapes) == 0 {
		return ErrNoShapes
	}
	if len(w.Lights) == 0 {
		return ErrNoLights
	}
	return nil
}

// Intersect collects the sorted intersections of a world ray with every
// top-level shape.
func (w *World) Intersect(ray math.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, s := range w.Shapes {
		xs = append(xs, geometry.Intersect(s, ray)...)
	}
	xs.Sort()
	return xs
}

// Computations carries everything shading needs about one hit, precomputed
// once so the shading passes never re-derive geometry.
type Computations struct {
	T      float64
	Object geometry.Shape
	Point  math.Tuple
	// OverPoint sits a hair above the surface along the normal; shadow
	// and reflection rays start there so they cannot re-hit the surface
	// they left.
	OverPoint math.Tuple
	// UnderPoint sits just below the surface; refraction rays start there.
	UnderPoint math.Tuple
	Eye        math.Tuple
	Normal     math.Tuple
	Reflect    math.Tuple
	Inside     bool
	// N1 and N2 are the refractive indices either side of the surface
	// along the incoming ray.
	N1, N2 float64
}

// PrepareComputations resolves the hit into shading state. The full sorted
// intersection list is needed to track which media the ray is passing
// through for N1 and N2.
func (w *World) PrepareComputations(hit geometry.Intersection, ray math.Ray, xs geometry.Intersections) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
	}

	comps.Point = ray.Position(hit.T)
	comps.Eye = ray.Direction.Negate()
	comps.Normal = geometry.NormalAt(hit.Object, comps.Point, hit)

	if comps.Normal.Dot(comps.Eye) < 0 {
		comps.Inside = true
		comps.Normal = comps.Normal.Negate()
	}

	comps.Reflect = ray.Direction.Reflect(comps.Normal)

	offset := comps.Normal.Multiply(math.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)

	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks the intersection list in t order, maintaining
// the stack of objects the ray is currently inside, and reads off the
// indices on both sides of the hit.
func refractiveIndices(hit geometry.Intersection, xs geometry.Intersections) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	var containers []geometry.Shape

	for _, x := range xs {
		if x == hit {
			if len(containers) == 0 {
				n1 = 1.0
			} else {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		if idx := indexOf(containers, x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if x == hit {
			if len(containers) == 0 {
				n2 = 1.0
			} else {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}
	return n1, n2
}

func indexOf(shapes []geometry.Shape, s geometry.Shape) int {
	for i, candidate := range shapes {
		if candidate == s {
			return i
		}
	}
	return -1
}

// ColorAt traces a ray into the world and returns its color. remaining
// bounds how many more reflection or refraction bounces are allowed; rays
// that miss everything are black.
func (w *World) ColorAt(ray math.Ray, remaining int) math.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return math.Black()
	}

	comps := w.PrepareComputations(hit, ray, xs)
	return w.shadeHit(comps, remaining)
}

// shadeHit combines the Phong surface term over all lights with the
// reflected and refracted contributions. Surfaces that are both reflective
// and transparent blend the two by the Schlick approximation of the
// Fresnel equations.
func (w *World) shadeHit(comps Computations, remaining int) math.Color {
	surface := math.Black()
	for _, light := range w.Lights {
		shadowed := w.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(lights.Lighting(
			comps.Object, light, comps.OverPoint, comps.Eye, comps.Normal, shadowed))
	}

	reflected := w.reflectedColor(comps, remaining)
	refracted := w.refractedColor(comps, remaining)

	m := comps.Object.Material()
	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// IsShadowed reports whether a point is cut off from a light. Shapes whose
// material opts out of shadow casting are skipped, which keeps thin glass
// from blacking out everything beneath it.
func (w *World) IsShadowed(point math.Tuple, light lights.PointLight) bool {
	toLight := light.Position.Subtract(point)
	distance := toLight.Magnitude()
	ray := math.NewRay(point, toLight.Normalize())

	for _, x := range w.Intersect(ray) {
		if x.T < 0 {
			continue
		}
		if x.T >= distance {
			break
		}
		if x.Object.Material().CastsShadow {
			return true
		}
	}
	return false
}

// reflectedColor traces the mirror bounce off a reflective surface.
func (w *World) reflectedColor(comps Computations, remaining int) math.Color {
	reflective := comps.Object.Material().Reflective
	if remaining <= 0 || reflective == 0 {
		return math.Black()
	}

	reflectRay := math.NewRay(comps.OverPoint, comps.Reflect)
	return w.ColorAt(reflectRay, remaining-1).Multiply(reflective)
}

// refractedColor traces the ray bent through a transparent surface using
// Snell's law. Total internal reflection contributes nothing here; the
// energy shows up in the reflected term instead.
func (w *World) refractedColor(comps Computations, remaining int) math.Color {
	transparency := comps.Object.Material().Transparency
	if remaining <= 0 || transparency == 0 {
		return math.Black()
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return math.Black()
	}

	cosT := stdmath.Sqrt(1 - sin2T)
	direction := comps.Normal.Multiply(nRatio*cosI - cosT).
		Subtract(comps.Eye.Multiply(nRatio))

	refractRay := math.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Multiply(transparency)
}

// Schlick approximates the Fresnel reflectance for the hit. The result is
// the fraction of light that reflects; the remainder refracts.
func Schlick(comps Computations) float64 {
	cos := comps.Eye.Dot(comps.Normal)

	if comps.N1 > comps.N2 {
		nRatio := comps.N1 / comps.N2
		sin2T := nRatio * nRatio * (1 - cos*cos)
		if sin2T > 1 {
			return 1.0
		}
		// Under total-internal-reflection conditions the grazing angle
		// matters, so use the transmitted cosine.
		cos = stdmath.Sqrt(1 - sin2T)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 *= r0
	return r0 + (1-r0)*stdmath.Pow(1-cos, 5)
}
