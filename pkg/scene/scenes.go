package scene

import (
	"fmt"
	stdmath "math"
	"sort"

	"github.com/alexmoore/go-whitted-raytracer/pkg/geometry"
	"github.com/alexmoore/go-whitted-raytracer/pkg/lights"
	"github.com/alexmoore/go-whitted-raytracer/pkg/material"
	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
)

// View describes where the camera sits for a built-in scene. The field of
// view is in radians.
type View struct {
	From, To, Up math.Tuple
	FieldOfView  float64
}

// Builder constructs a world together with its suggested viewpoint.
type Builder func() (*World, View)

var builders = map[string]Builder{
	"default":  NewDefaultScene,
	"showcase": NewShowcaseScene,
	"hexagon":  NewHexagonScene,
	"csg":      NewCSGScene,
}

// Get looks up a scene builder by name.
func Get(name string) (Builder, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q", name)
	}
	return b, nil
}

// List returns the registered scene names in sorted order.
func List() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDefaultWorld builds the canonical two-sphere test world: an outer
// green-tinted sphere around a half-size inner one, lit from the upper
// left. Most shading tests reference its exact colors.
func NewDefaultWorld() *World {
	outer := geometry.NewSphere()
	m := material.DefaultMaterial()
	m.Pattern = material.NewSolidPattern(math.NewColor(0.8, 1.0, 0.6))
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.SetMaterial(m)

	inner := geometry.NewSphere()
	if err := inner.SetTransform(math.Scaling(0.5, 0.5, 0.5)); err != nil {
		panic(err)
	}

	w := NewWorld()
	w.Shapes = []geometry.Shape{outer, inner}
	w.Lights = []lights.PointLight{
		lights.NewPointLight(math.NewPoint(-10, 10, -10), math.White()),
	}
	return w
}

// NewDefaultScene wraps NewDefaultWorld with its standard viewpoint.
func NewDefaultScene() (*World, View) {
	return NewDefaultWorld(), View{
		From:        math.NewPoint(0, 0, -5),
		To:          math.NewPoint(0, 0, 0),
		Up:          math.NewVector(0, 1, 0),
		FieldOfView: stdmath.Pi / 2,
	}
}

// NewShowcaseScene builds a room with a checkered floor, a reflective
// middle sphere, a glass sphere, and a striped cylinder. It exercises
// every optical path: patterns, shadows, reflection, and refraction.
func NewShowcaseScene() (*World, View) {
	floor := geometry.NewPlane()
	fm := material.DefaultMaterial()
	fm.Pattern = material.NewCheckerPattern(
		math.NewColor(0.85, 0.85, 0.85), math.NewColor(0.15, 0.15, 0.15))
	fm.Specular = 0.1
	fm.Reflective = 0.08
	floor.SetMaterial(fm)

	middle := geometry.NewSphere()
	mustTransform(middle, math.Translation(-0.5, 1, 0.5))
	mm := material.DefaultMaterial()
	mm.Pattern = material.NewSolidPattern(math.NewColor(0.1, 0.3, 0.2))
	mm.Diffuse = 0.7
	mm.Specular = 0.9
	mm.Shininess = 300
	mm.Reflective = 0.4
	middle.SetMaterial(mm)

	glass := geometry.NewGlassSphere()
	mustTransform(glass, math.Translation(1.6, 0.75, -0.6).Multiply(math.Scaling(0.75, 0.75, 0.75)))
	gm := glass.Material()
	gm.Reflective = 0.9
	gm.Specular = 1
	gm.Shininess = 300
	gm.Diffuse = 0.1
	gm.Ambient = 0.05
	gm.CastsShadow = false
	glass.SetMaterial(gm)

	cyl := geometry.NewCylinder()
	cyl.Minimum = 0
	cyl.Maximum = 1.25
	cyl.Closed = true
	mustTransform(cyl, math.Translation(-2.2, 0, 1.5).Multiply(math.Scaling(0.5, 1, 0.5)))
	cm := material.DefaultMaterial()
	stripes := material.NewStripePattern(
		math.NewColor(0.9, 0.4, 0.2), math.NewColor(0.95, 0.75, 0.4))
	if err := stripes.SetTransform(math.Scaling(0.25, 0.25, 0.25).Multiply(math.RotationZ(stdmath.Pi / 2))); err != nil {
		panic(err)
	}
	cm.Pattern = stripes
	cyl.SetMaterial(cm)

	w := NewWorld()
	w.Shapes = []geometry.Shape{floor, middle, glass, cyl}
	w.Lights = []lights.PointLight{
		lights.NewPointLight(math.NewPoint(-10, 10, -10), math.White()),
	}

	return w, View{
		From:        math.NewPoint(0, 1.5, -5),
		To:          math.NewPoint(0, 1, 0),
		Up:          math.NewVector(0, 1, 0),
		FieldOfView: stdmath.Pi / 3,
	}
}

// NewHexagonScene builds a hexagonal ring of spheres joined by cylinder
// edges, nested two groups deep to exercise group transforms.
func NewHexagonScene() (*World, View) {
	hex := hexagon()
	mustTransform(hex, math.Translation(0, 1, 0).Multiply(math.RotationX(-stdmath.Pi/6)))

	floor := geometry.NewPlane()
	fm := material.DefaultMaterial()
	fm.Pattern = material.NewRingPattern(
		math.NewColor(0.7, 0.7, 0.8), math.NewColor(0.3, 0.3, 0.4))
	floor.SetMaterial(fm)

	w := NewWorld()
	w.Shapes = []geometry.Shape{floor, hex}
	w.Lights = []lights.PointLight{
		lights.NewPointLight(math.NewPoint(-5, 8, -8), math.White()),
	}

	return w, View{
		From:        math.NewPoint(0, 2.5, -4),
		To:          math.NewPoint(0, 1, 0),
		Up:          math.NewVector(0, 1, 0),
		FieldOfView: stdmath.Pi / 3,
	}
}

func hexagon() *geometry.Group {
	hex := geometry.NewGroup()
	for i := 0; i < 6; i++ {
		side := hexagonSide()
		mustTransform(side, math.RotationY(float64(i)*stdmath.Pi/3))
		hex.AddChild(side)
	}
	return hex
}

func hexagonSide() *geometry.Group {
	side := geometry.NewGroup()
	side.AddChild(hexagonCorner())
	side.AddChild(hexagonEdge())
	return side
}

func hexagonCorner() *geometry.Sphere {
	corner := geometry.NewSphere()
	mustTransform(corner, math.Translation(0, 0, -1).Multiply(math.Scaling(0.25, 0.25, 0.25)))
	return corner
}

func hexagonEdge() *geometry.Cylinder {
	edge := geometry.NewCylinder()
	edge.Minimum = 0
	edge.Maximum = 1
	mustTransform(edge, math.Translation(0, 0, -1).
		Multiply(math.RotationY(-stdmath.Pi/6)).
		Multiply(math.RotationZ(-stdmath.Pi/2)).
		Multiply(math.Scaling(0.25, 1, 0.25)))
	return edge
}

// NewCSGScene builds a die-like shape: a rounded cube (cube intersected
// with a sphere) with a cylinder bored out of it.
func NewCSGScene() (*World, View) {
	cube := geometry.NewCube()
	cm := material.DefaultMaterial()
	cm.Pattern = material.NewSolidPattern(math.NewColor(0.8, 0.2, 0.2))
	cm.Reflective = 0.1
	cube.SetMaterial(cm)

	sphere := geometry.NewSphere()
	mustTransform(sphere, math.Scaling(1.35, 1.35, 1.35))
	sm := material.DefaultMaterial()
	sm.Pattern = material.NewSolidPattern(math.NewColor(0.8, 0.2, 0.2))
	sphere.SetMaterial(sm)

	rounded := geometry.NewCSG(geometry.CSGIntersection, cube, sphere)

	bore := geometry.NewCylinder()
	bore.Minimum = -2
	bore.Maximum = 2
	bore.Closed = true
	mustTransform(bore, math.Scaling(0.5, 1, 0.5))
	bm := material.DefaultMaterial()
	bm.Pattern = material.NewSolidPattern(math.NewColor(0.2, 0.2, 0.8))
	bore.SetMaterial(bm)

	die := geometry.NewCSG(geometry.CSGDifference, rounded, bore)
	mustTransform(die, math.Translation(0, 1, 0).Multiply(math.RotationY(stdmath.Pi/5)))

	floor := geometry.NewPlane()
	fm := material.DefaultMaterial()
	fm.Pattern = material.NewCheckerPattern(
		math.NewColor(0.9, 0.9, 0.9), math.NewColor(0.4, 0.4, 0.4))
	floor.SetMaterial(fm)

	w := NewWorld()
	w.Shapes = []geometry.Shape{floor, die}
	w.Lights = []lights.PointLight{
		lights.NewPointLight(math.NewPoint(-6, 8, -6), math.White()),
	}

	return w, View{
		From:        math.NewPoint(0, 3, -5),
		To:          math.NewPoint(0, 1, 0),
		Up:          math.NewVector(0, 1, 0),
		FieldOfView: stdmath.Pi / 3,
	}
}

// mustTransform panics on singular transforms, which in the built-in
// scenes would be a programming error.
func mustTransform(s geometry.Shape, m math.Matrix4) {
	if err := s.SetTransform(m); err != nil {
		panic(err)
	}
}
