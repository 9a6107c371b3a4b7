package renderer

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alexmoore/go-whitted-raytracer/pkg/canvas"
	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
)

// World is the surface the renderer needs from a scene. Keeping it local
// avoids a circular import with the scene package.
type World interface {
	// ColorAt traces a ray with the given remaining recursion budget.
	ColorAt(ray math.Ray, remaining int) math.Color
	// Validate reports whether the world is renderable.
	Validate() error
}

// Config tunes the render loop. The zero value picks sensible defaults.
type Config struct {
	// MaxDepth bounds reflection and refraction recursion. Defaults to 5.
	MaxDepth int
	// NumWorkers is the worker pool size. Defaults to GOMAXPROCS.
	NumWorkers int
	// BandHeight is how many rows one work item covers. Defaults to 8.
	BandHeight int
	// Progress, when set, is called after each finished band with the
	// total rows completed so far. Calls arrive from worker goroutines.
	Progress func(rowsDone, totalRows int)
	// Logger receives render lifecycle events. Defaults to the package
	// default logger.
	Logger *log.Logger
}

func (c Config) withDefaults() Config {
	if c.MaxDepth <= 0 {
		c.MaxDepth = 5
	}
	if c.NumWorkers <= 0 {
		c.NumWorkers = runtime.GOMAXPROCS(0)
	}
	if c.BandHeight <= 0 {
		c.BandHeight = 8
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	return c
}

// Stats summarizes one render.
type Stats struct {
	Pixels          int
	RecoveredPixels int64
	Workers         int
	Elapsed         time.Duration
}

// Render draws the world through the camera using a pool of workers, each
// claiming bands of rows from a shared channel. Workers write to disjoint
// canvas rows, so the output is identical to a sequential render.
func Render(ctx context.Context, world World, camera *Camera, cfg Config) (*canvas.Canvas, Stats, error) {
	cfg = cfg.withDefaults()
	if err := world.Validate(); err != nil {
		return nil, Stats{}, err
	}

	start := time.Now()
	img := canvas.New(camera.HSize, camera.VSize)

	bands := make(chan int)
	var wg sync.WaitGroup
	var recovered int64
	var rowsDone int64

	cfg.Logger.Debug("render started",
		"width", camera.HSize, "height", camera.VSize,
		"workers", cfg.NumWorkers, "maxDepth", cfg.MaxDepth)

	for i := 0; i < cfg.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for startRow := range bands {
				endRow := startRow + cfg.BandHeight
				if endRow > camera.VSize {
					endRow = camera.VSize
				}
				for y := startRow; y < endRow; y++ {
					renderRow(world, camera, img, y, cfg.MaxDepth, &recovered)
				}

				done := atomic.AddInt64(&rowsDone, int64(endRow-startRow))
				if cfg.Progress != nil {
					cfg.Progress(int(done), camera.VSize)
				}
			}
		}()
	}

	var err error
feed:
	for startRow := 0; startRow < camera.VSize; startRow += cfg.BandHeight {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case bands <- startRow:
		}
	}
	close(bands)
	wg.Wait()

	stats := Stats{
		Pixels:          camera.HSize * camera.VSize,
		RecoveredPixels: atomic.LoadInt64(&recovered),
		Workers:         cfg.NumWorkers,
		Elapsed:         time.Since(start),
	}

	if err != nil {
		cfg.Logger.Warn("render canceled", "rowsDone", atomic.LoadInt64(&rowsDone))
		return img, stats, err
	}

	cfg.Logger.Debug("render finished",
		"elapsed", stats.Elapsed, "recoveredPixels", stats.RecoveredPixels)
	return img, stats, nil
}

// RenderSequential draws the world on the calling goroutine. It produces
// the same canvas as Render and exists for tests and tiny images where
// pool setup is not worth it.
func RenderSequential(world World, camera *Camera, cfg Config) (*canvas.Canvas, Stats, error) {
	cfg = cfg.withDefaults()
	if err := world.Validate(); err != nil {
		return nil, Stats{}, err
	}

	start := time.Now()
	img := canvas.New(camera.HSize, camera.VSize)

	var recovered int64
	for y := 0; y < camera.VSize; y++ {
		renderRow(world, camera, img, y, cfg.MaxDepth, &recovered)
	}

	return img, Stats{
		Pixels:          camera.HSize * camera.VSize,
		RecoveredPixels: recovered,
		Workers:         1,
		Elapsed:         time.Since(start),
	}, nil
}

// renderRow shades every pixel of one canvas row. A panic while shading a
// pixel is contained to that pixel, which stays black.
func renderRow(world World, camera *Camera, img *canvas.Canvas, y, maxDepth int, recovered *int64) {
	for x := 0; x < camera.HSize; x++ {
		img.WritePixel(x, y, renderPixel(world, camera, x, y, maxDepth, recovered))
	}
}

func renderPixel(world World, camera *Camera, x, y, maxDepth int, recovered *int64) (c math.Color) {
	defer func() {
		if r := recover(); r != nil {
			atomic.AddInt64(recovered, 1)
			c = math.Black()
		}
	}()

	ray := camera.RayForPixel(x, y)
	return world.ColorAt(ray, maxDepth)
}
