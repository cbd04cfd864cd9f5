// Package debug provides capture utilities for the preview tools.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Capture writes timestamped PNG files.
type Capture struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewCapture creates a capture handler. An empty outputDir means the
// working directory.
func NewCapture(outputDir, prefix string) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// Filename returns the path the next capture will be written to.
func (c *Capture) Filename() string {
	timestamp := c.now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s.png", c.prefix, timestamp)
	if c.outputDir != "" {
		filename = filepath.Join(c.outputDir, filename)
	}
	return filename
}

// SaveRGBA writes tightly or loosely packed RGBA pixels with the given row
// pitch in bytes. Rows are top to bottom.
func (c *Capture) SaveRGBA(pixels []byte, width, height, pitch int) (string, error) {
	if pitch < width*4 {
		return "", fmt.Errorf("pitch %d smaller than row size %d", pitch, width*4)
	}
	if height > 0 && len(pixels) < pitch*(height-1)+width*4 {
		return "", fmt.Errorf("pixel data size mismatch: need %d bytes, got %d", pitch*(height-1)+width*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[y*pitch:y*pitch+rowSize])
	}
	return c.SaveImage(img)
}

// SaveImage encodes img as PNG and returns the written path.
func (c *Capture) SaveImage(img image.Image) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}
