// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/debugdraw/internal/debugdraw"
	"github.com/Faultbox/debugdraw/internal/query"
)

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Debug   DebugConfig   `yaml:"debug"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FovY       float32 `yaml:"fov_y"` // degrees
}

// DebugConfig holds debug drawing settings. Durations are in milliseconds.
type DebugConfig struct {
	IconDir        string      `yaml:"icon_dir"`
	WatchIcons     bool        `yaml:"watch_icons"`
	IconPixelSize  float32     `yaml:"icon_pixel_size"`
	CircleVertices int         `yaml:"circle_vertices"`
	HitScale       float32     `yaml:"hit_scale"`
	CastDuration   float32     `yaml:"cast_duration_ms"`
	HitDuration    float32     `yaml:"hit_duration_ms"`
	Colors         ColorConfig `yaml:"colors"`
}

// ColorConfig holds query visualization colors as "#RRGGBB" or "#RRGGBBAA".
type ColorConfig struct {
	Ray     string `yaml:"ray"`
	Sphere  string `yaml:"sphere"`
	Capsule string `yaml:"capsule"`
	Box     string `yaml:"box"`
	Hit     string `yaml:"hit"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
			FovY:   60,
		},
		Debug: DebugConfig{
			IconDir:        "icons",
			IconPixelSize:  debugdraw.DefaultIconPixelSize,
			CircleVertices: debugdraw.DefaultCircleVertices,
			HitScale:       debugdraw.DefaultHitScale,
			HitDuration:    2000,
			Colors: ColorConfig{
				Ray:     "#00ff00",
				Sphere:  "#00ff00",
				Capsule: "#00ff00",
				Box:     "#00ff00",
				Hit:     "#ff0000",
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks value ranges and color syntax.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.FovY <= 0 || c.Window.FovY >= 180 {
		errs = append(errs, fmt.Errorf("fov_y %.1f must be between 0 and 180", c.Window.FovY))
	}
	if c.Debug.IconPixelSize <= 0 {
		errs = append(errs, fmt.Errorf("icon_pixel_size %.1f must be positive", c.Debug.IconPixelSize))
	}
	if c.Debug.CircleVertices < 3 {
		errs = append(errs, fmt.Errorf("circle_vertices %d must be at least 3", c.Debug.CircleVertices))
	}
	if c.Debug.HitScale <= 0 {
		errs = append(errs, fmt.Errorf("hit_scale %.3f must be positive", c.Debug.HitScale))
	}
	if _, err := c.Debug.TraceSettings(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// TraceSettings converts the configured colors and durations for a query.Tracer.
func (d DebugConfig) TraceSettings() (query.Settings, error) {
	s := query.Settings{
		CastDuration: d.CastDuration,
		HitDuration:  d.HitDuration,
	}

	fields := []struct {
		name string
		hex  string
		dst  *debugdraw.Color
	}{
		{"ray", d.Colors.Ray, &s.RayColor},
		{"sphere", d.Colors.Sphere, &s.SphereColor},
		{"capsule", d.Colors.Capsule, &s.CapsuleColor},
		{"box", d.Colors.Box, &s.BoxColor},
		{"hit", d.Colors.Hit, &s.HitColor},
	}
	for _, f := range fields {
		c, err := debugdraw.ParseColor(f.hex)
		if err != nil {
			return query.Settings{}, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return s, nil
}
