package main

import (
	"fmt"
	"io"
	"os"

	"github.com/df07/go-gradient-ppm/pkg/renderer"
)

const (
	imageWidth  = 256
	imageHeight = 256
)

func main() {
	if err := run(os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering image: %v\n", err)
		os.Exit(1)
	}
}

// run wires the renderer to the two output channels: image data on out,
// progress and stats on diag.
func run(out io.Writer, diag io.Writer) error {
	logger := renderer.NewWriterLogger(diag)

	gradient := renderer.NewGradientRenderer(imageWidth, imageHeight, logger)

	stats, err := gradient.Render(out)
	if err != nil {
		return err
	}

	logger.Printf("Render completed in %v (%d pixels, %d scanlines)\n",
		stats.ElapsedTime, stats.PixelsWritten, stats.Scanlines)
	return nil
}
