package render

import "time"

// Stats summarizes a trace
type Stats struct {
	Pixels   int           // Pixels written
	Rays     int           // Primary plus jittered rays cast
	Hits     int           // Rays that crossed the zero level set
	Duration time.Duration // Wall-clock time for the trace
}

// Complete reports whether every pixel of a width×height film was
// written, i.e. the trace was not interrupted.
func (s Stats) Complete(width, height int) bool {
	return s.Pixels == width*height
}
