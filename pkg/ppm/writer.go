package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-gradient-ppm/pkg/core"
)

const (
	// MagicNumber identifies the plain-text (ASCII) PPM variant
	MagicNumber = "P3"

	// MaxChannelValue is the largest intensity a channel can carry
	MaxChannelValue = 255

	// channelScale converts a normalized channel in [0,1] to an integer
	// intensity. 255.999 instead of 256 keeps a channel of exactly 1.0 at
	// 255 under integer truncation; changing it breaks byte-for-byte
	// reproducibility of the output.
	channelScale = 255.999
)

// Writer encodes colors as plain-text PPM, one pixel per line.
// Writes are buffered; callers must Flush before relying on the output.
type Writer struct {
	out *bufio.Writer
}

// NewWriter creates a PPM writer on top of out
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: bufio.NewWriter(out)}
}

// WriteHeader emits the three header lines: magic number, dimensions, max value.
// Both dimensions must be at least 2 since pixel coordinates are normalized
// by dimension-1.
func (w *Writer) WriteHeader(width, height int) error {
	if width < 2 || height < 2 {
		return fmt.Errorf("ppm: dimensions must be at least 2x2, got %dx%d", width, height)
	}
	if _, err := fmt.Fprintf(w.out, "%s\n%d %d\n%d\n", MagicNumber, width, height, MaxChannelValue); err != nil {
		return fmt.Errorf("ppm: writing header: %w", err)
	}
	return nil
}

// WriteColor emits one pixel line "R G B". Channels are clamped to [0,1]
// and converted by truncation, so 1.0 maps to 255 and never overflows.
func (w *Writer) WriteColor(c core.Vec3) error {
	ir := channelValue(c.X)
	ig := channelValue(c.Y)
	ib := channelValue(c.Z)

	if _, err := fmt.Fprintf(w.out, "%d %d %d\n", ir, ig, ib); err != nil {
		return fmt.Errorf("ppm: writing pixel: %w", err)
	}
	return nil
}

// Flush writes any buffered output to the underlying writer
func (w *Writer) Flush() error {
	if err := w.out.Flush(); err != nil {
		return fmt.Errorf("ppm: flushing output: %w", err)
	}
	return nil
}

// channelValue converts a normalized channel to an integer intensity.
// Truncation (round toward zero), not rounding.
func channelValue(c float64) int {
	return int(channelScale * core.UnitInterval.Clamp(c))
}
