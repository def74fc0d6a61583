package film

import (
	"fmt"
	"math"

	"github.com/chinhan1991/openvdb-dev/pkg/core"
)

// Film is a dense width×height buffer of RGBA pixels, updated
// concurrently during tracing (by disjoint row ranges) and read in
// full for image export. Pixels are stored row-major, top row first.
type Film struct {
	width, height int
	pixels        []RGBA
}

// New creates a film of the given dimensions with every pixel set to
// opaque black. Dimensions must be positive and the pixel count must
// not overflow.
func New(width, height int) (*Film, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("film: dimensions %dx%d: %w", width, height, core.ErrInvalidArgument)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("film: dimensions %dx%d overflow: %w", width, height, core.ErrInvalidArgument)
	}
	f := &Film{
		width:  width,
		height: height,
		pixels: make([]RGBA, width*height),
	}
	f.Fill(RGBA{A: 1})
	return f, nil
}

// NewWithBackground creates a film pre-filled with the given background
// color. Tracers use the current pixel value as the miss color, so the
// background shows wherever no surface is hit.
func NewWithBackground(width, height int, bg RGBA) (*Film, error) {
	f, err := New(width, height)
	if err != nil {
		return nil, err
	}
	f.Fill(bg)
	return f, nil
}

// Width returns the image width in pixels
func (f *Film) Width() int { return f.width }

// Height returns the image height in pixels
func (f *Film) Height() int { return f.height }

// NumPixels returns the total pixel count
func (f *Film) NumPixels() int { return f.width * f.height }

// Pixels returns the underlying row-major pixel buffer
func (f *Film) Pixels() []RGBA { return f.pixels }

func (f *Film) checkBounds(i, j int) {
	if i < 0 || i >= f.width || j < 0 || j >= f.height {
		panic(fmt.Errorf("film: pixel (%d,%d) outside %dx%d image: %w",
			i, j, f.width, f.height, core.ErrOutOfRange))
	}
}

// Pixel returns the pixel in column i, row j. Out-of-range access is a
// programming error and fails fast.
func (f *Film) Pixel(i, j int) RGBA {
	f.checkBounds(i, j)
	return f.pixels[i+j*f.width]
}

// SetPixel writes the pixel in column i, row j
func (f *Film) SetPixel(i, j int, c RGBA) {
	f.checkBounds(i, j)
	f.pixels[i+j*f.width] = c
}

// Fill sets every pixel to the given color
func (f *Film) Fill(c RGBA) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// Checkerboard fills the film with a two-color checker pattern. The
// tile boundary is decided by (i & size) xor (j & size), so size
// should be a power of two giving square tiles of that many pixels.
func (f *Film) Checkerboard(c1, c2 RGBA, size int) {
	p := 0
	for j := 0; j < f.height; j++ {
		for i := 0; i < f.width; i++ {
			if (i&size)^(j&size) != 0 {
				f.pixels[p] = c1
			} else {
				f.pixels[p] = c2
			}
			p++
		}
	}
}
