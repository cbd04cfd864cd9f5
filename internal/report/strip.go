package report

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/sunlight/internal/engine/lighting"
)

// Strip renders a full rotation left to right, one orientation per column.
// The top half shows the light color, the bottom half the color scaled by
// intensity (saturating at 1).
func Strip(a lighting.Appearance, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	half := height / 2
	for x := 0; x < width; x++ {
		s := At(a, float64(x)*lighting.FullCircle/float64(width))
		top := s.Color.Clamped()
		k := min(max(s.Intensity, 0), 1)
		bottom := colorful.Color{R: top.R * k, G: top.G * k, B: top.B * k}

		tc, bc := toRGBA(top), toRGBA(bottom)
		for y := 0; y < height; y++ {
			if y < half {
				img.SetRGBA(x, y, tc)
			} else {
				img.SetRGBA(x, y, bc)
			}
		}
	}
	return img
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
