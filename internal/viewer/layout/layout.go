// Package layout computes what the preview window draws for a sample.
// It has no SDL dependency so it can be tested headless.
package layout

import (
	"github.com/Faultbox/sunlight/internal/engine/lighting"
)

// RGB8 is an 8-bit color.
type RGB8 struct {
	R, G, B uint8
}

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, W, H int
}

// Frame is one rendered preview frame.
type Frame struct {
	Sky      RGB8 // light color scaled by intensity
	Sun      Rect
	SunColor RGB8
	HorizonY int
	Ground   RGB8
}

var groundColor = RGB8{R: 28, G: 32, B: 24}

// Compose lays out a frame of size width x height. The sun marker moves on a
// circle through the Y/Z plane of the light direction: the Z axis maps to
// screen X and the light shines down from the marker, so the marker sits above
// the horizon when the light points downwards.
func Compose(s lighting.Sample, width, height, sunSize int) Frame {
	c := s.Color.Clamped()
	sky := c
	// Intensity above 1 saturates.
	k := s.Intensity
	if k > 1 {
		k = 1
	}
	if k < 0 {
		k = 0
	}
	sky.R, sky.G, sky.B = c.R*k, c.G*k, c.B*k

	horizon := height * 2 / 3
	radius := min(width/2, horizon) - sunSize
	if radius < 0 {
		radius = 0
	}

	dir := lighting.SunDirection(s.Orientation)
	cx := width / 2
	sx := cx + int(float64(radius)*dir.Z)
	sy := horizon + int(float64(radius)*dir.Y)

	return Frame{
		Sky:      toRGB8(sky.RGB255()),
		Sun:      Rect{X: sx - sunSize/2, Y: sy - sunSize/2, W: sunSize, H: sunSize},
		SunColor: toRGB8(c.RGB255()),
		HorizonY: horizon,
		Ground:   groundColor,
	}
}

func toRGB8(r, g, b uint8) RGB8 {
	return RGB8{R: r, G: g, B: b}
}
