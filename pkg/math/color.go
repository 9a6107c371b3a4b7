package math

// Color is an RGB triple with components nominally in [0,1]. Intermediate
// shading results may exceed 1; clamping happens at quantization time.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns the zero color, also used as the background.
func Black() Color {
	return Color{}
}

// White returns full-intensity white.
func White() Color {
	return Color{R: 1, G: 1, B: 1}
}

// Add returns the component-wise sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference of two colors.
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar.
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Hadamard returns the component-wise product of two colors, used to blend
// a surface color with a light's intensity.
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals reports whether two colors are equal within Epsilon.
func (c Color) Equals(other Color) bool {
	return EqualFloat(c.R, other.R) &&
		EqualFloat(c.G, other.G) &&
		EqualFloat(c.B, other.B)
}
