// Package config loads render settings from TOML files and merges them
// with defaults and command line overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig wraps all validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds everything the command line renderer needs to produce an
// image.
type Config struct {
	// Width and Height are the output size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// FOVDegrees is the camera field of view in degrees.
	FOVDegrees float64 `toml:"fov_degrees"`
	// MaxDepth bounds reflection and refraction recursion.
	MaxDepth int `toml:"max_depth"`
	// Workers is the render pool size; 0 means one per CPU.
	Workers int `toml:"workers"`
	// Scene names a registered scene builder.
	Scene string `toml:"scene"`
	// Output is the image path; the extension picks the format
	// (.png or .ppm).
	Output string `toml:"output"`
}

// Default returns the settings used when no file or flags are given.
func Default() Config {
	return Config{
		Width:      800,
		Height:     600,
		FOVDegrees: 60,
		MaxDepth:   5,
		Workers:    0,
		Scene:      "showcase",
		Output:     "render.png",
	}
}

// Load reads a TOML config file over the defaults. Unknown keys are
// rejected so typos fail loudly.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges. It does not check the scene name; the scene
// registry owns that.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Width > 8192 || c.Height > 8192 {
		return fmt.Errorf("%w: image size %dx%d exceeds 8192", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.FOVDegrees <= 0 || c.FOVDegrees >= 180 {
		return fmt.Errorf("%w: field of view %g degrees", ErrInvalidConfig, c.FOVDegrees)
	}
	if c.MaxDepth < 0 || c.MaxDepth > 64 {
		return fmt.Errorf("%w: max depth %d", ErrInvalidConfig, c.MaxDepth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: empty output path", ErrInvalidConfig)
	}
	return nil
}
