package film

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chinhan1991/openvdb-dev/pkg/core"
)

// quantize maps a float channel to an 8-bit value: floor(255·v)
// clamped to [0,255].
func quantize(v float32) byte {
	n := int(255 * v)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return byte(n)
}

// WritePPM writes the film as a binary PPM (P6) image: an ASCII header
// "P6\n<width> <height>\n255\n" followed by raw 8-bit R,G,B triples,
// row-major top-to-bottom. Alpha is dropped.
func (f *Film) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", f.width, f.height); err != nil {
		return err
	}
	buf := make([]byte, 0, 3*len(f.pixels))
	for _, p := range f.pixels {
		buf = append(buf, quantize(p.R), quantize(p.G), quantize(p.B))
	}
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	return bw.Flush()
}

// SavePPM writes the film to the given path as a binary PPM image
func (f *Film) SavePPM(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("film: open %q: %w: %v", path, core.ErrIO, err)
	}
	defer file.Close()
	if err := f.WritePPM(file); err != nil {
		return fmt.Errorf("film: write %q: %w: %v", path, core.ErrIO, err)
	}
	return file.Close()
}
