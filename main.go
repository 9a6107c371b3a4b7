package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	stdmath "math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/alexmoore/go-whitted-raytracer/pkg/canvas"
	"github.com/alexmoore/go-whitted-raytracer/pkg/config"
	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
	"github.com/alexmoore/go-whitted-raytracer/pkg/renderer"
	"github.com/alexmoore/go-whitted-raytracer/pkg/scene"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	sceneName := flag.String("scene", "", "Scene to render (overrides config): "+strings.Join(scene.List(), ", "))
	output := flag.String("out", "", "Output image path, .png or .ppm (overrides config)")
	width := flag.Int("width", 0, "Image width in pixels (overrides config)")
	height := flag.Int("height", 0, "Image height in pixels (overrides config)")
	workers := flag.Int("workers", 0, "Worker pool size, 0 for one per CPU")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "raytracer",
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal("failed to load config", "error", err)
		}
		cfg = loaded
	}

	if *sceneName != "" {
		cfg.Scene = *sceneName
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid settings", "error", err)
	}

	build, err := scene.Get(cfg.Scene)
	if err != nil {
		logger.Fatal("unknown scene", "scene", cfg.Scene, "available", strings.Join(scene.List(), ", "))
	}
	world, view := build()

	cam := renderer.NewCamera(cfg.Width, cfg.Height, cfg.FOVDegrees*stdmath.Pi/180)
	if err := cam.SetTransform(math.ViewTransform(view.From, view.To, view.Up)); err != nil {
		logger.Fatal("invalid view transform", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("rendering", "scene", cfg.Scene, "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))

	img, stats, err := renderer.Render(ctx, world, cam, renderer.Config{
		MaxDepth:   cfg.MaxDepth,
		NumWorkers: cfg.Workers,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("render failed", "error", err)
	}

	logger.Info("render complete",
		"elapsed", stats.Elapsed,
		"workers", stats.Workers,
		"recoveredPixels", stats.RecoveredPixels)

	if err := writeImage(img, cfg.Output); err != nil {
		logger.Fatal("failed to write image", "error", err)
	}
	logger.Info("image saved", "path", cfg.Output)
}

// writeImage saves the canvas in the format implied by the file extension.
func writeImage(img *canvas.Canvas, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return os.WriteFile(path, []byte(img.ToPPM()), 0o644)
	case ".png":
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		return png.Encode(file, img.ToImage())
	default:
		return fmt.Errorf("unsupported image format %q", filepath.Ext(path))
	}
}
