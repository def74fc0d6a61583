package core

import "errors"

// Error categories shared across the renderer. Callers match them with
// errors.Is; the wrapping message carries the details.
var (
	// ErrInvalidArgument reports bad construction parameters such as
	// zero image dimensions, a non-positive sample count or an invalid
	// clipping interval.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange reports a pixel index outside the framebuffer.
	ErrOutOfRange = errors.New("out of range")

	// ErrIO reports an unwritable or unreadable image destination.
	ErrIO = errors.New("i/o error")

	// ErrUnsupportedValueType reports a grid whose class or value type
	// cannot be ray traced. Batch callers skip the grid and continue.
	ErrUnsupportedValueType = errors.New("unsupported value type")
)
