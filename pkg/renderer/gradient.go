package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/df07/go-gradient-ppm/pkg/core"
	"github.com/df07/go-gradient-ppm/pkg/ppm"
)

// GradientRenderer emits a deterministic red/green gradient image.
// Red increases left to right, green increases top to bottom, blue is zero.
type GradientRenderer struct {
	width  int
	height int
	logger core.Logger
}

// NewGradientRenderer creates a renderer for the given image dimensions
func NewGradientRenderer(width, height int, logger core.Logger) *GradientRenderer {
	return &GradientRenderer{
		width:  width,
		height: height,
		logger: logger,
	}
}

// PixelColor computes the color at (row, col) from normalized coordinates.
// Coordinates are normalized by dimension-1 so the last row/column reaches
// exactly 1.0. Deterministic: no randomness, no time dependence.
func (gr *GradientRenderer) PixelColor(row, col int) core.Vec3 {
	r := float64(col) / float64(gr.width-1)
	g := float64(row) / float64(gr.height-1)
	return core.NewVec3(r, g, 0)
}

// Render writes the image as plain-text PPM to out, top to bottom,
// left to right within each row. Progress goes to the diagnostic logger:
// a remaining-scanline count per row and a completion message at the end.
func (gr *GradientRenderer) Render(out io.Writer) (RenderStats, error) {
	if gr.width < 2 || gr.height < 2 {
		return RenderStats{}, fmt.Errorf("render: dimensions must be at least 2x2, got %dx%d", gr.width, gr.height)
	}

	startTime := time.Now()
	stats := RenderStats{
		TotalPixels: gr.width * gr.height,
	}

	writer := ppm.NewWriter(out)
	if err := writer.WriteHeader(gr.width, gr.height); err != nil {
		return stats, err
	}

	for row := 0; row < gr.height; row++ {
		// Carriage return overwrites the previous count in place
		gr.logger.Printf("\rScanlines remaining: %d ", gr.height-row)

		for col := 0; col < gr.width; col++ {
			if err := writer.WriteColor(gr.PixelColor(row, col)); err != nil {
				return stats, err
			}
			stats.PixelsWritten++
		}
		stats.Scanlines++
	}

	if err := writer.Flush(); err != nil {
		return stats, err
	}

	// Trailing spaces blank out the longest remaining-count line
	gr.logger.Printf("\rDone.                 \n")

	stats.ElapsedTime = time.Since(startTime)
	return stats, nil
}
