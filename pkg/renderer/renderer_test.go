package renderer

import (
	"context"
	"errors"
	stdmath "math"
	"sync/atomic"
	"testing"

	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
)

// flatWorld shades every ray the same color and can be told to panic on
// rays pointing into a particular half-space.
type flatWorld struct {
	color       math.Color
	panicOnLeft bool
	rays        int64
	validateErr error
}

func (w *flatWorld) ColorAt(ray math.Ray, _ int) math.Color {
	atomic.AddInt64(&w.rays, 1)
	if w.panicOnLeft && ray.Direction.X < -0.1 {
		panic("bad pixel")
	}
	return w.color
}

func (w *flatWorld) Validate() error {
	return w.validateErr
}

func TestRender_FillsCanvas(t *testing.T) {
	w := &flatWorld{color: math.NewColor(0.2, 0.4, 0.6)}
	cam := NewCamera(16, 12, stdmath.Pi/2)

	img, stats, err := Render(context.Background(), w, cam, Config{NumWorkers: 3, BandHeight: 2})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if stats.Pixels != 16*12 {
		t.Errorf("stats.Pixels = %d", stats.Pixels)
	}
	if got := atomic.LoadInt64(&w.rays); got != 16*12 {
		t.Errorf("traced %d rays, expected %d", got, 16*12)
	}
	if !img.PixelAt(0, 0).Equals(w.color) || !img.PixelAt(15, 11).Equals(w.color) {
		t.Error("canvas corners not shaded")
	}
}

func TestRender_InvalidWorldFails(t *testing.T) {
	w := &flatWorld{validateErr: errors.New("empty")}
	cam := NewCamera(4, 4, stdmath.Pi/2)

	if _, _, err := Render(context.Background(), w, cam, Config{}); err == nil {
		t.Error("expected validation error")
	}
	if _, _, err := RenderSequential(w, cam, Config{}); err == nil {
		t.Error("expected validation error")
	}
}

func TestRender_PanicsAreIsolatedToPixels(t *testing.T) {
	w := &flatWorld{color: math.White(), panicOnLeft: true}
	cam := NewCamera(11, 11, stdmath.Pi/2)

	img, stats, err := Render(context.Background(), w, cam, Config{NumWorkers: 2, BandHeight: 3})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if stats.RecoveredPixels == 0 {
		t.Fatal("expected some recovered pixels")
	}

	// Rays through the left edge panic and fall back to black; the right
	// edge still renders.
	if !img.PixelAt(0, 5).Equals(math.Black()) {
		t.Errorf("left pixel should be black, got %v", img.PixelAt(0, 5))
	}
	if !img.PixelAt(10, 5).Equals(math.White()) {
		t.Errorf("right pixel should be shaded, got %v", img.PixelAt(10, 5))
	}
}

func TestRender_CancellationStopsFeeding(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &flatWorld{color: math.White()}
	cam := NewCamera(64, 64, stdmath.Pi/2)

	_, _, err := Render(ctx, w, cam, Config{NumWorkers: 2, BandHeight: 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRender_ProgressReachesTotal(t *testing.T) {
	w := &flatWorld{color: math.White()}
	cam := NewCamera(8, 10, stdmath.Pi/2)

	var last int64
	_, _, err := Render(context.Background(), w, cam, Config{
		NumWorkers: 4,
		BandHeight: 3,
		Progress: func(rowsDone, totalRows int) {
			if totalRows != 10 {
				t.Errorf("totalRows = %d", totalRows)
			}
			for {
				prev := atomic.LoadInt64(&last)
				if int64(rowsDone) <= prev || atomic.CompareAndSwapInt64(&last, prev, int64(rowsDone)) {
					break
				}
			}
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if atomic.LoadInt64(&last) != 10 {
		t.Errorf("final progress %d, expected 10", last)
	}
}
