package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels   int           // Total number of pixels in the image
	PixelsWritten int           // Number of pixels actually emitted
	Scanlines     int           // Number of scanlines emitted
	ElapsedTime   time.Duration // Wall-clock time for the pass
}
