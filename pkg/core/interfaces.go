package core

// Logger interface for renderer diagnostic output
type Logger interface {
	Printf(format string, args ...interface{})
}
