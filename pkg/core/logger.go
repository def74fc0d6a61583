package core

import "fmt"

// Logger receives progress and warning output from the renderer
type Logger interface {
	Printf(format string, args ...interface{})
}

// StdoutLogger implements Logger by writing to stdout
type StdoutLogger struct{}

func (sl *StdoutLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewStdoutLogger creates a new stdout logger
func NewStdoutLogger() Logger {
	return &StdoutLogger{}
}

// NullLogger implements Logger by discarding all output
type NullLogger struct{}

func (nl *NullLogger) Printf(format string, args ...interface{}) {}

// NewNullLogger creates a logger that discards all output
func NewNullLogger() Logger {
	return &NullLogger{}
}
