package film

import (
	"fmt"
	"image"

	"github.com/mrjoshuak/go-openexr/exr"

	"github.com/chinhan1991/openvdb-dev/pkg/core"
)

// Compression selects the EXR compression scheme
type Compression int

const (
	CompressionNone Compression = iota
	CompressionRLE
	CompressionZip
)

// ParseCompression maps the option strings accepted by the render CLI
// ("none", "rle", "zip") to a Compression value.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "none":
		return CompressionNone, nil
	case "rle":
		return CompressionRLE, nil
	case "zip":
		return CompressionZip, nil
	}
	return 0, fmt.Errorf("film: expected none, rle or zip compression, got %q: %w",
		s, core.ErrInvalidArgument)
}

func (c Compression) exr() exr.Compression {
	switch c {
	case CompressionNone:
		return exr.CompressionNone
	case CompressionRLE:
		return exr.CompressionRLE
	default:
		return exr.CompressionZIP
	}
}

// SaveEXR writes the film to the given path as a scanline EXR image
// with R, G, B and A channels. Unlike PPM output the float pixel
// values are preserved, alpha included.
func (f *Film) SaveEXR(path string, compression Compression) error {
	out, err := exr.NewRGBAOutputFile(path, f.width, f.height)
	if err != nil {
		return fmt.Errorf("film: open %q: %w: %v", path, core.ErrIO, err)
	}
	out.Header().SetCompression(compression.exr())

	img := exr.NewRGBAImage(image.Rect(0, 0, f.width, f.height))
	p := 0
	for j := 0; j < f.height; j++ {
		for i := 0; i < f.width; i++ {
			c := f.pixels[p]
			img.SetRGBA(i, j, c.R, c.G, c.B, c.A)
			p++
		}
	}
	if err := out.WriteRGBA(img); err != nil {
		return fmt.Errorf("film: write %q: %w: %v", path, core.ErrIO, err)
	}
	return nil
}
