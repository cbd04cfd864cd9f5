// Package report formats day cycle samples for terminal output.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/fatih/color"

	"github.com/Faultbox/sunlight/internal/engine/lighting"
)

// Band names a day progress range.
func Band(progress float64) string {
	switch {
	case progress > lighting.NoonBand:
		return "noon"
	case progress > lighting.SunriseBand:
		return "day"
	case progress > 0:
		return "twilight"
	default:
		return "night"
	}
}

// ParseOrientation parses a command line angle in degrees. Non-finite
// values are rejected.
func ParseOrientation(s string) (float64, error) {
	deg, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid orientation %q: %w", s, err)
	}
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0, fmt.Errorf("invalid orientation %q: must be finite", s)
	}
	return deg, nil
}

// Printer writes one line per sample, with an optional colored swatch.
type Printer struct {
	w       io.Writer
	colored bool
	header  *color.Color
}

// NewPrinter creates a printer. colored forces swatches on or off regardless
// of terminal detection.
func NewPrinter(w io.Writer, colored bool) *Printer {
	h := color.New(color.Bold)
	if colored {
		h.EnableColor()
	} else {
		h.DisableColor()
	}
	return &Printer{w: w, colored: colored, header: h}
}

// Header writes the column titles.
func (p *Printer) Header() error {
	_, err := p.header.Fprintf(p.w, "%6s %9s %8s %8s %9s %-8s %-8s\n",
		"frame", "elapsed", "angle", "progress", "intensity", "color", "band")
	return err
}

// Row writes a single sample. frame < 0 omits the frame and elapsed columns.
func (p *Printer) Row(frame int, elapsed float64, s lighting.Sample) error {
	c := s.Color.Clamped()
	frameCol, elapsedCol := "-", "-"
	if frame >= 0 {
		frameCol = fmt.Sprintf("%d", frame)
		elapsedCol = fmt.Sprintf("%.2fs", elapsed)
	}

	if _, err := fmt.Fprintf(p.w, "%6s %9s %8.2f %8.3f %9.3f %-8s ",
		frameCol, elapsedCol, s.Orientation, s.DayProgress, s.Intensity, c.Hex()); err != nil {
		return err
	}
	if err := p.swatch(c.RGB255()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.w, " %s\n", Band(s.DayProgress))
	return err
}

func (p *Printer) swatch(r, g, b uint8) error {
	if !p.colored {
		_, err := io.WriteString(p.w, "   ")
		return err
	}
	sw := color.BgRGB(int(r), int(g), int(b))
	sw.EnableColor()
	_, err := sw.Fprint(p.w, "   ")
	return err
}
