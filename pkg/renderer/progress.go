package renderer

import (
	"fmt"
	"io"
	"os"

	"github.com/df07/go-gradient-ppm/pkg/core"
)

// StderrLogger implements core.Logger by writing to a diagnostic stream.
// Stdout carries the image data, so progress must go elsewhere.
type StderrLogger struct {
	out io.Writer
}

// NewStderrLogger creates a logger writing to os.Stderr
func NewStderrLogger() core.Logger {
	return &StderrLogger{out: os.Stderr}
}

// NewWriterLogger creates a logger writing to the given stream
func NewWriterLogger(out io.Writer) core.Logger {
	return &StderrLogger{out: out}
}

func (sl *StderrLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(sl.out, format, args...)
}
