package lighting

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color band edges over day progress. Above NoonBand the light is flat
// noon; at or below SunriseBand it blends from night.
const (
	SunriseBand = 0.2
	NoonBand    = 0.8
)

// Appearance maps day progress to light intensity and color.
type Appearance struct {
	ControlIntensity bool
	MinIntensity     float64
	MaxIntensity     float64

	ControlColor bool
	SunriseColor colorful.Color
	NoonColor    colorful.Color
	NightColor   colorful.Color
}

// DefaultAppearance returns the stock palette: orange sunrise, white noon,
// blue night, intensity between 0.1 and 1.0.
func DefaultAppearance() Appearance {
	return Appearance{
		ControlIntensity: true,
		MinIntensity:     0.1,
		MaxIntensity:     1.0,
		ControlColor:     true,
		SunriseColor:     colorful.Color{R: 1, G: 0.6, B: 0.2},
		NoonColor:        colorful.Color{R: 1, G: 1, B: 1},
		NightColor:       colorful.Color{R: 0.2, G: 0.3, B: 0.8},
	}
}

// Validate checks intensity bounds and that every color lies in [0,1]^3.
func (a Appearance) Validate() error {
	if !isFinite(a.MinIntensity) || !isFinite(a.MaxIntensity) {
		return fmt.Errorf("%w: intensity bounds must be finite, got [%v, %v]",
			ErrInvalidConfig, a.MinIntensity, a.MaxIntensity)
	}
	if a.MinIntensity < 0 {
		return fmt.Errorf("%w: min intensity %v is negative", ErrInvalidConfig, a.MinIntensity)
	}
	if a.MinIntensity > a.MaxIntensity {
		return fmt.Errorf("%w: min intensity %v exceeds max intensity %v",
			ErrInvalidConfig, a.MinIntensity, a.MaxIntensity)
	}

	colors := []struct {
		name string
		c    colorful.Color
	}{
		{"sunrise", a.SunriseColor},
		{"noon", a.NoonColor},
		{"night", a.NightColor},
	}
	for _, nc := range colors {
		if !nc.c.IsValid() {
			return fmt.Errorf("%w: %s color %v outside [0,1]", ErrInvalidConfig, nc.name, nc.c)
		}
	}
	return nil
}

// Intensity interpolates between the bounds. progress is expected in [0,1].
func (a Appearance) Intensity(progress float64) float64 {
	return a.MinIntensity + (a.MaxIntensity-a.MinIntensity)*progress
}

// Color blends the three key colors over four bands of day progress:
// flat noon above 0.8, sunrise->noon down to 0.2, night->sunrise down to 0,
// flat night at 0. Blending is per channel in linear RGB.
func (a Appearance) Color(progress float64) colorful.Color {
	switch {
	case progress > NoonBand:
		return a.NoonColor
	case progress > SunriseBand:
		t := (progress - SunriseBand) / (NoonBand - SunriseBand)
		return a.SunriseColor.BlendRgb(a.NoonColor, t)
	case progress > 0:
		t := progress / SunriseBand
		return a.NightColor.BlendRgb(a.SunriseColor, t)
	default:
		return a.NightColor
	}
}

// DayProgress maps an orientation in [0,360) to daylight: 1 at noon (0),
// falling linearly to 0 at 180. The whole night half stays at 0.
func DayProgress(orientationDegrees float64) float64 {
	if orientationDegrees <= MidnightDegrees {
		return 1 - orientationDegrees/MidnightDegrees
	}
	return 0
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
