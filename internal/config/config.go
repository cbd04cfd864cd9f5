// Package config handles day cycle configuration loading and management.
package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/sunlight/internal/engine/lighting"
)

// Config holds all settings for the day cycle tools.
type Config struct {
	DayCycle   DayCycleConfig   `yaml:"day_cycle"`
	Viewer     ViewerConfig     `yaml:"viewer"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// DayCycleConfig holds the sun controller settings.
type DayCycleConfig struct {
	DayDuration      float64 `yaml:"day_duration"`      // Real seconds per full rotation
	StartOrientation float64 `yaml:"start_orientation"` // Degrees, 0 = noon

	ControlIntensity bool    `yaml:"control_intensity"`
	MinIntensity     float64 `yaml:"min_intensity"`
	MaxIntensity     float64 `yaml:"max_intensity"`

	ControlColor bool `yaml:"control_color"`
	SunriseColor RGB  `yaml:"sunrise_color"`
	NoonColor    RGB  `yaml:"noon_color"`
	NightColor   RGB  `yaml:"night_color"`
}

// ViewerConfig holds preview window settings.
type ViewerConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	SunSize    int    `yaml:"sun_size"` // Sun marker edge in pixels

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// SimulationConfig holds headless stepping settings.
type SimulationConfig struct {
	StepSeconds float64 `yaml:"step_seconds"`
	Steps       int     `yaml:"steps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	s := lighting.DefaultSettings()
	a := s.Appearance
	return &Config{
		DayCycle: DayCycleConfig{
			DayDuration:      s.DayDurationSeconds,
			StartOrientation: s.StartOrientation,
			ControlIntensity: a.ControlIntensity,
			MinIntensity:     a.MinIntensity,
			MaxIntensity:     a.MaxIntensity,
			ControlColor:     a.ControlColor,
			SunriseColor:     RGB(a.SunriseColor),
			NoonColor:        RGB(a.NoonColor),
			NightColor:       RGB(a.NightColor),
		},
		Viewer: ViewerConfig{
			Title:      "Sunlight",
			Width:      960,
			Height:     540,
			Fullscreen: false,
			VSync:      true,
			SunSize:    24,

			ScreenshotDir: "screenshots",
		},
		Simulation: SimulationConfig{
			StepSeconds: 1.0,
			Steps:       120,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DayCycleSettings converts the day cycle section to controller settings.
func (c *Config) DayCycleSettings() lighting.Settings {
	d := c.DayCycle
	return lighting.Settings{
		DayDurationSeconds: d.DayDuration,
		StartOrientation:   d.StartOrientation,
		Appearance: lighting.Appearance{
			ControlIntensity: d.ControlIntensity,
			MinIntensity:     d.MinIntensity,
			MaxIntensity:     d.MaxIntensity,
			ControlColor:     d.ControlColor,
			SunriseColor:     colorful.Color(d.SunriseColor),
			NoonColor:        colorful.Color(d.NoonColor),
			NightColor:       colorful.Color(d.NightColor),
		},
	}
}

// Validate checks every section. Day cycle problems wrap
// lighting.ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := c.DayCycleSettings().Validate(); err != nil {
		return fmt.Errorf("day_cycle: %w", err)
	}
	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		return fmt.Errorf("viewer: window size must be positive, got %dx%d", c.Viewer.Width, c.Viewer.Height)
	}
	if c.Viewer.SunSize <= 0 {
		return fmt.Errorf("viewer: sun_size must be positive, got %d", c.Viewer.SunSize)
	}
	if c.Simulation.StepSeconds < 0 {
		return fmt.Errorf("simulation: step_seconds must not be negative, got %v", c.Simulation.StepSeconds)
	}
	if c.Simulation.Steps < 0 {
		return fmt.Errorf("simulation: steps must not be negative, got %d", c.Simulation.Steps)
	}
	return nil
}
