package report

import (
	"github.com/Faultbox/sunlight/internal/engine/lighting"
	"github.com/Faultbox/sunlight/pkg/math"
)

// Simulate steps d by dt for the given number of frames and prints a row
// after every frame. Frame 0 is the state before the first update.
func Simulate(p *Printer, d *lighting.DayCycle, dt float64, steps int) error {
	if err := p.Header(); err != nil {
		return err
	}
	if err := p.Row(0, 0, d.Sample()); err != nil {
		return err
	}
	for i := 1; i <= steps; i++ {
		d.Update(dt)
		if err := p.Row(i, float64(i)*dt, d.Sample()); err != nil {
			return err
		}
	}
	return nil
}

// Sweep prints n evenly spaced orientations over a full rotation.
func Sweep(p *Printer, a lighting.Appearance, n int) error {
	if err := p.Header(); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := p.Row(-1, 0, At(a, float64(i)*lighting.FullCircle/float64(n))); err != nil {
			return err
		}
	}
	return nil
}

// At computes the sample for a fixed orientation.
func At(a lighting.Appearance, orientation float64) lighting.Sample {
	o := math.WrapDegrees(orientation)
	p := lighting.DayProgress(o)
	return lighting.Sample{
		Orientation: o,
		DayProgress: p,
		Intensity:   a.Intensity(p),
		Color:       a.Color(p),
	}
}
