// Package viewer runs the realtime day cycle preview window.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/sunlight/internal/config"
	"github.com/Faultbox/sunlight/internal/engine/debug"
	"github.com/Faultbox/sunlight/internal/engine/input"
	"github.com/Faultbox/sunlight/internal/engine/lighting"
	"github.com/Faultbox/sunlight/internal/engine/window"
	"github.com/Faultbox/sunlight/internal/logger"
	"github.com/Faultbox/sunlight/internal/viewer/layout"
)

// Viewer is the preview application.
type Viewer struct {
	cfg     config.ViewerConfig
	running bool
	paused  bool
	capture bool

	window *window.Window
	input  *input.Input
	cycle  *lighting.DayCycle
	light  *lighting.DirectionalLight
	sun    *lighting.Transform
	shots  *debug.Capture
	log    *zap.Logger
}

// New creates the window and the day cycle driving it.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:   cfg.Viewer,
		light: &lighting.DirectionalLight{},
		sun:   lighting.NewTransform(),
		shots: debug.NewCapture(cfg.Viewer.ScreenshotDir, "sunlight"),
		log:   logger.Named("viewer"),
	}

	var err error
	v.cycle, err = lighting.New(cfg.DayCycleSettings(),
		lighting.WithLight(v.light),
		lighting.WithTransform(v.sun),
		lighting.WithLogger(logger.Named("daycycle")),
	)
	if err != nil {
		return nil, fmt.Errorf("creating day cycle: %w", err)
	}

	// Seed the light so disabled controls still show something sensible.
	first := v.cycle.Sample()
	v.light.Intensity = first.Intensity
	v.light.Color = first.Color

	v.window, err = window.New(window.Config{
		Title:      cfg.Viewer.Title,
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v.input = input.New()

	v.log.Info("viewer initialized",
		zap.Float64("day_duration", v.cycle.DayDuration()),
		zap.Float64("orientation", v.cycle.Orientation()),
	)
	return v, nil
}

// Run starts the frame loop and returns when the window closes.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		for _, a := range v.input.Actions() {
			v.handle(a)
		}

		if v.paused {
			dt = 0
		}
		v.cycle.Update(dt)

		v.render()
		if v.capture {
			v.saveScreenshot()
			v.capture = false
		}
		v.window.Present()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			v.window.SetTitle(fmt.Sprintf("%s - %.1f deg, progress %.2f",
				v.cfg.Title, v.cycle.Orientation(), v.cycle.DayProgress()))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handle(a input.Action) {
	switch a {
	case input.ActionQuit:
		v.running = false
	case input.ActionNoon:
		v.cycle.SetToNoon()
	case input.ActionMidnight:
		v.cycle.SetToMidnight()
	case input.ActionSunrise:
		v.cycle.SetToSunrise()
	case input.ActionPause:
		v.paused = !v.paused
	case input.ActionFaster:
		v.setDayDuration(v.cycle.DayDuration() / 2)
	case input.ActionSlower:
		v.setDayDuration(v.cycle.DayDuration() * 2)
	case input.ActionCapture:
		v.capture = true
	}
	v.log.Debug("action", zap.Stringer("action", a), zap.Bool("paused", v.paused))
}

func (v *Viewer) setDayDuration(seconds float64) {
	if err := v.cycle.SetDayDuration(seconds); err != nil {
		v.log.Warn("day duration rejected", zap.Error(err))
	}
}

func (v *Viewer) saveScreenshot() {
	pixels, w, h, pitch, err := v.window.ReadPixels()
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	path, err := v.shots.SaveRGBA(pixels, w, h, pitch)
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path), zap.Float64("orientation", v.cycle.Orientation()))
}

// render draws the sky, ground and sun marker from the light state.
func (v *Viewer) render() {
	w, h := v.window.GetSize()
	s := v.cycle.Sample()
	// The sinks hold what the controller actually wrote.
	s.Orientation = v.sun.EulerX()
	s.Intensity = v.light.Intensity
	s.Color = v.light.Color

	f := layout.Compose(s, w, h, v.cfg.SunSize)

	v.window.Clear(f.Sky.R, f.Sky.G, f.Sky.B)
	v.window.FillRect(0, f.HorizonY, w, h-f.HorizonY, f.Ground.R, f.Ground.G, f.Ground.B)
	v.window.FillRect(f.Sun.X, f.Sun.Y, f.Sun.W, f.Sun.H, f.SunColor.R, f.SunColor.G, f.SunColor.B)
	v.window.DrawLine(0, f.HorizonY, w, f.HorizonY, 200, 200, 200)
}

// Close releases the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")
	if v.window != nil {
		v.window.Close()
	}
}
