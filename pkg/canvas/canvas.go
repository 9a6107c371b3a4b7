// Package canvas accumulates rendered pixels and exports them as images.
package canvas

import (
	"fmt"
	"image"
	stdmath "math"
	"strings"

	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
)

// Canvas is a fixed-size grid of linear float colors. Pixel writes outside
// the bounds are ignored so workers never have to range-check.
type Canvas struct {
	Width, Height int
	pixels        []math.Color
}

// New creates a canvas of the given size with all pixels black.
func New(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]math.Color, width*height),
	}
}

// WritePixel stores a color at (x, y).
func (c *Canvas) WritePixel(x, y int, color math.Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = color
}

// PixelAt returns the color at (x, y).
func (c *Canvas) PixelAt(x, y int) math.Color {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return math.Black()
	}
	return c.pixels[y*c.Width+x]
}

// ToImage converts the canvas to an 8-bit RGBA image, clamping each channel
// to [0, 1] before quantizing.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.pixels[y*c.Width+x]
			idx := img.PixOffset(x, y)
			img.Pix[idx+0] = quantize(p.R)
			img.Pix[idx+1] = quantize(p.G)
			img.Pix[idx+2] = quantize(p.B)
			img.Pix[idx+3] = 255
		}
	}
	return img
}

func quantize(v float64) uint8 {
	return uint8(stdmath.Round(clamp(v) * 255))
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ToPPM renders the canvas as a plain-text PPM (P3) file. Lines wrap at 70
// characters and the output ends with a newline, which keeps older image
// viewers happy.
func (c *Canvas) ToPPM() string {
	var b strings.Builder
	fmt.Fprintf(&b, "P3\n%d %d\n255\n", c.Width, c.Height)

	for y := 0; y < c.Height; y++ {
		lineLen := 0
		for x := 0; x < c.Width; x++ {
			p := c.pixels[y*c.Width+x]
			for _, v := range []float64{p.R, p.G, p.B} {
				sample := fmt.Sprintf("%d", quantize(v))
				if lineLen == 0 {
					b.WriteString(sample)
					lineLen = len(sample)
				} else if lineLen+1+len(sample) > 70 {
					b.WriteByte('\n')
					b.WriteString(sample)
					lineLen = len(sample)
				} else {
					b.WriteByte(' ')
					b.WriteString(sample)
					lineLen += 1 + len(sample)
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
