package lighting

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	smath "github.com/Faultbox/sunlight/pkg/math"
)

// FullCircle is the rotation covered by one day.
const FullCircle = 360.0

// Settings configure a DayCycle.
type Settings struct {
	// DayDurationSeconds is the real time for one full rotation. Must be > 0.
	DayDurationSeconds float64
	// StartOrientation is the initial angle in degrees; wrapped into [0,360).
	StartOrientation float64
	Appearance       Appearance
}

// DefaultSettings returns a two minute day starting at noon.
func DefaultSettings() Settings {
	return Settings{
		DayDurationSeconds: 120,
		StartOrientation:   NoonDegrees,
		Appearance:         DefaultAppearance(),
	}
}

// Validate reports ErrInvalidConfig for unusable settings.
func (s Settings) Validate() error {
	if err := validateDayDuration(s.DayDurationSeconds); err != nil {
		return err
	}
	if !isFinite(s.StartOrientation) {
		return fmt.Errorf("%w: start orientation must be finite, got %v", ErrInvalidConfig, s.StartOrientation)
	}
	return s.Appearance.Validate()
}

func validateDayDuration(d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return fmt.Errorf("%w: day duration must be a positive number of seconds, got %v", ErrInvalidConfig, d)
	}
	if math.IsInf(FullCircle/d, 0) {
		return fmt.Errorf("%w: day duration %v is too short to derive a rotation speed", ErrInvalidConfig, d)
	}
	return nil
}

// Sample is the derived state of a DayCycle at one instant.
type Sample struct {
	Orientation float64
	DayProgress float64
	Intensity   float64
	Color       colorful.Color
}

// Option customizes a DayCycle.
type Option func(*DayCycle)

// WithLight sets the sink that receives intensity and color.
func WithLight(l LightSink) Option {
	return func(d *DayCycle) { d.light = l }
}

// WithTransform sets the sink that receives the orientation.
func WithTransform(t OrientationSink) Option {
	return func(d *DayCycle) { d.transform = t }
}

// WithLogger sets the logger used for configuration changes.
func WithLogger(l *zap.Logger) Option {
	return func(d *DayCycle) { d.log = l }
}

// DayCycle rotates the sun and updates the light each frame.
// It is not safe for concurrent use.
type DayCycle struct {
	dayDuration float64
	speed       float64 // degrees per second
	orientation float64
	appearance  Appearance

	light     LightSink
	transform OrientationSink
	log       *zap.Logger
}

// New validates s and creates a controller. The start orientation is pushed
// to the transform sink immediately.
func New(s Settings, opts ...Option) (*DayCycle, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	d := &DayCycle{
		dayDuration: s.DayDurationSeconds,
		speed:       FullCircle / s.DayDurationSeconds,
		orientation: smath.WrapDegrees(s.StartOrientation),
		appearance:  s.Appearance,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.log.Debug("day cycle created",
		zap.Float64("day_duration", d.dayDuration),
		zap.Float64("speed_deg_per_sec", d.speed),
		zap.Float64("orientation", d.orientation),
	)

	d.pushOrientation()
	return d, nil
}

// Update advances the cycle by dt seconds and writes the new orientation and
// appearance to the sinks. Negative or NaN dt counts as no elapsed time.
func (d *DayCycle) Update(dt float64) {
	if dt > 0 && !math.IsInf(dt, 1) {
		// Whole days are dropped first so speed*dt cannot overflow.
		step := math.Mod(dt, d.dayDuration)
		d.orientation = smath.WrapDegrees(d.orientation + d.speed*step)
	}
	d.pushOrientation()
	d.applyAppearance()
}

// applyAppearance writes only the properties whose control flag is set.
func (d *DayCycle) applyAppearance() {
	if d.light == nil {
		return
	}
	p := d.DayProgress()
	if d.appearance.ControlIntensity {
		d.light.SetIntensity(d.appearance.Intensity(p))
	}
	if d.appearance.ControlColor {
		d.light.SetColor(d.appearance.Color(p))
	}
}

func (d *DayCycle) pushOrientation() {
	if d.transform != nil {
		d.transform.SetRotationX(d.orientation)
	}
}

// SetToNoon jumps to 0 degrees.
func (d *DayCycle) SetToNoon() { d.SetOrientation(NoonDegrees) }

// SetToMidnight jumps to 180 degrees.
func (d *DayCycle) SetToMidnight() { d.SetOrientation(MidnightDegrees) }

// SetToSunrise jumps to 90 degrees.
func (d *DayCycle) SetToSunrise() { d.SetOrientation(SunriseDegrees) }

// SetOrientation assigns the angle directly, bypassing rotation. The light is
// refreshed on the next Update. Non-finite angles are ignored.
func (d *DayCycle) SetOrientation(degrees float64) {
	if !isFinite(degrees) {
		return
	}
	d.orientation = smath.WrapDegrees(degrees)
	d.pushOrientation()
}

// SetDayDuration changes the day length and re-derives the rotation speed.
// The current orientation is kept.
func (d *DayCycle) SetDayDuration(seconds float64) error {
	if err := validateDayDuration(seconds); err != nil {
		return err
	}
	d.dayDuration = seconds
	d.speed = FullCircle / seconds
	d.log.Debug("day duration changed",
		zap.Float64("day_duration", seconds),
		zap.Float64("speed_deg_per_sec", d.speed),
	)
	return nil
}

// SetAppearance replaces the appearance after validating it. On error the
// previous appearance stays in effect.
func (d *DayCycle) SetAppearance(a Appearance) error {
	if err := a.Validate(); err != nil {
		return err
	}
	d.appearance = a
	d.log.Debug("appearance changed",
		zap.Bool("control_intensity", a.ControlIntensity),
		zap.Bool("control_color", a.ControlColor),
	)
	return nil
}

// Orientation returns the current angle in [0,360).
func (d *DayCycle) Orientation() float64 { return d.orientation }

// DayDuration returns the configured day length in seconds.
func (d *DayCycle) DayDuration() float64 { return d.dayDuration }

// RotationSpeed returns degrees per second.
func (d *DayCycle) RotationSpeed() float64 { return d.speed }

// Appearance returns the active appearance.
func (d *DayCycle) Appearance() Appearance { return d.appearance }

// DayProgress maps the current orientation to [0,1].
func (d *DayCycle) DayProgress() float64 { return DayProgress(d.orientation) }

// Sample computes the derived state regardless of the control flags.
func (d *DayCycle) Sample() Sample {
	p := d.DayProgress()
	return Sample{
		Orientation: d.orientation,
		DayProgress: p,
		Intensity:   d.appearance.Intensity(p),
		Color:       d.appearance.Color(p),
	}
}
