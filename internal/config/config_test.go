package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/sunlight/internal/engine/lighting"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DayCycle.DayDuration != 120 {
		t.Errorf("expected day duration 120, got %v", cfg.DayCycle.DayDuration)
	}
	if cfg.DayCycle.StartOrientation != 0 {
		t.Errorf("expected start orientation 0, got %v", cfg.DayCycle.StartOrientation)
	}
	if !cfg.DayCycle.ControlIntensity || !cfg.DayCycle.ControlColor {
		t.Error("expected intensity and color control enabled by default")
	}
	if cfg.DayCycle.MinIntensity != 0.1 || cfg.DayCycle.MaxIntensity != 1.0 {
		t.Errorf("expected intensity [0.1, 1.0], got [%v, %v]", cfg.DayCycle.MinIntensity, cfg.DayCycle.MaxIntensity)
	}
	if got := colorful.Color(cfg.DayCycle.SunriseColor).Hex(); got != "#ff9933" {
		t.Errorf("expected sunrise #ff9933, got %s", got)
	}

	if cfg.Viewer.Width != 960 || cfg.Viewer.Height != 540 {
		t.Errorf("expected 960x540, got %dx%d", cfg.Viewer.Width, cfg.Viewer.Height)
	}
	if !cfg.Viewer.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
day_cycle:
  day_duration: 600
  start_orientation: 90
  control_intensity: false
  min_intensity: 0.2
  max_intensity: 1.5
  sunrise_color: "#ff8000"
  noon_color: [1.0, 0.95, 0.9]

viewer:
  width: 1920
  height: 1080
  fullscreen: true

simulation:
  step_seconds: 0.5
  steps: 10

logging:
  level: "debug"
  log_file: "sun.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	d := cfg.DayCycle
	if d.DayDuration != 600 {
		t.Errorf("expected day duration 600, got %v", d.DayDuration)
	}
	if d.StartOrientation != 90 {
		t.Errorf("expected start orientation 90, got %v", d.StartOrientation)
	}
	if d.ControlIntensity {
		t.Error("expected control_intensity false")
	}
	if !d.ControlColor {
		t.Error("expected control_color to keep its default")
	}
	if d.MaxIntensity != 1.5 {
		t.Errorf("expected max intensity 1.5, got %v", d.MaxIntensity)
	}
	if got := colorful.Color(d.SunriseColor).Hex(); got != "#ff8000" {
		t.Errorf("expected sunrise #ff8000, got %s", got)
	}
	if d.NoonColor != (RGB{R: 1.0, G: 0.95, B: 0.9}) {
		t.Errorf("expected noon [1 0.95 0.9], got %v", d.NoonColor)
	}
	if d.NightColor != Default().DayCycle.NightColor {
		t.Errorf("expected night color to keep its default, got %v", d.NightColor)
	}

	if cfg.Viewer.Width != 1920 || !cfg.Viewer.Fullscreen {
		t.Errorf("expected fullscreen 1920 wide, got %+v", cfg.Viewer)
	}
	if cfg.Simulation.StepSeconds != 0.5 || cfg.Simulation.Steps != 10 {
		t.Errorf("unexpected simulation section %+v", cfg.Simulation)
	}
	if cfg.Logging.LogFile != "sun.log" {
		t.Errorf("expected log file 'sun.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"syntax", "day_cycle:\n  day_duration: not a number\n  invalid syntax here\n"},
		{"bad hex", "day_cycle:\n  noon_color: \"#zzzzzz\"\n"},
		{"short sequence", "day_cycle:\n  noon_color: [1, 1]\n"},
		{"mapping color", "day_cycle:\n  noon_color: {r: 1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(tt.yaml), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if err := loadFromFile(Default(), configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		dayCycle bool // expect lighting.ErrInvalidConfig
	}{
		{"zero day", func(c *Config) { c.DayCycle.DayDuration = 0 }, true},
		{"negative day", func(c *Config) { c.DayCycle.DayDuration = -5 }, true},
		{"inverted intensity", func(c *Config) {
			c.DayCycle.MinIntensity = 0.5
			c.DayCycle.MaxIntensity = 0.1
		}, true},
		{"color out of range", func(c *Config) { c.DayCycle.NightColor = RGB{R: 2} }, true},
		{"zero width", func(c *Config) { c.Viewer.Width = 0 }, false},
		{"zero sun size", func(c *Config) { c.Viewer.SunSize = 0 }, false},
		{"negative step", func(c *Config) { c.Simulation.StepSeconds = -1 }, false},
		{"negative steps", func(c *Config) { c.Simulation.Steps = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if got := errors.Is(err, lighting.ErrInvalidConfig); got != tt.dayCycle {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v, want %v (%v)", got, tt.dayCycle, err)
			}
		})
	}
}

func TestDayCycleSettings(t *testing.T) {
	cfg := Default()
	cfg.DayCycle.DayDuration = 60
	cfg.DayCycle.ControlColor = false

	s := cfg.DayCycleSettings()
	if s.DayDurationSeconds != 60 {
		t.Errorf("expected 60s day, got %v", s.DayDurationSeconds)
	}
	if s.Appearance.ControlColor {
		t.Error("expected color control disabled")
	}
	if s.Appearance.NightColor != lighting.DefaultAppearance().NightColor {
		t.Errorf("expected default night color, got %v", s.Appearance.NightColor)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.DayCycle.DayDuration = 300
	cfg.DayCycle.NightColor = RGB{R: 0.1, G: 0.15, B: 0.35}

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.DayCycle.DayDuration != 300 {
		t.Errorf("expected 300s day after reload, got %v", loaded.DayCycle.DayDuration)
	}
	if loaded.DayCycle.NightColor != cfg.DayCycle.NightColor {
		t.Errorf("night color changed across save: %v -> %v", cfg.DayCycle.NightColor, loaded.DayCycle.NightColor)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("APPDATA", dir)

	cfg := Default()
	cfg.DayCycle.DayDuration = 45
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, filepath.Join(ConfigDir(), "config.yaml")); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.DayCycle.DayDuration != 45 {
		t.Errorf("expected 45s day after reload, got %v", loaded.DayCycle.DayDuration)
	}
}

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	if _, err := Default().WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"day_cycle:", "day_duration: 120", "sunrise_color: [1, 0.6, 0.2]"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "sunlight.yaml"), []byte("day_cycle:\n  day_duration: 30\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find sunlight.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "day flag",
			setup: func() { *flagDay = 45 },
			verify: func(cfg *Config) {
				if cfg.DayCycle.DayDuration != 45 {
					t.Errorf("expected day duration 45, got %v", cfg.DayCycle.DayDuration)
				}
			},
			teardown: func() { *flagDay = 0 },
		},
		{
			name:  "start flag",
			setup: func() { *flagStart = 180 },
			verify: func(cfg *Config) {
				if cfg.DayCycle.StartOrientation != 180 {
					t.Errorf("expected start 180, got %v", cfg.DayCycle.StartOrientation)
				}
			},
			teardown: func() { *flagStart = -1 },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Viewer.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Viewer.Width != 2560 || cfg.Viewer.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Viewer.Width, cfg.Viewer.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
day_cycle:
  day_duration: 600
  start_orientation: 45
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagDay = 90
	defer func() {
		*flagConfig = ""
		*flagDay = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.DayCycle.DayDuration != 90 {
		t.Errorf("expected day duration 90 from flag, got %v", cfg.DayCycle.DayDuration)
	}
	if cfg.DayCycle.StartOrientation != 45 {
		t.Errorf("expected start 45 from file, got %v", cfg.DayCycle.StartOrientation)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("day_cycle:\n  day_duration: -5\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, lighting.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
