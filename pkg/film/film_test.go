package film

import (
	"errors"
	"testing"

	"github.com/chinhan1991/openvdb-dev/pkg/core"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {5, -1}} {
		_, err := New(dims[0], dims[1])
		if !errors.Is(err, core.ErrInvalidArgument) {
			t.Errorf("New(%d,%d): got %v, want ErrInvalidArgument", dims[0], dims[1], err)
		}
	}
}

func TestNewStartsOpaqueBlack(t *testing.T) {
	f, err := New(3, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if f.Width() != 3 || f.Height() != 2 || f.NumPixels() != 6 {
		t.Fatalf("dimensions: %dx%d (%d pixels)", f.Width(), f.Height(), f.NumPixels())
	}
	for j := 0; j < 2; j++ {
		for i := 0; i < 3; i++ {
			if got := f.Pixel(i, j); got != (RGBA{A: 1}) {
				t.Errorf("Pixel(%d,%d): got %v, want opaque black", i, j, got)
			}
		}
	}
}

func TestFillAndSetPixel(t *testing.T) {
	f, _ := New(4, 4)
	bg := NewRGBA(0.1, 0.2, 0.3, 1)
	f.Fill(bg)
	f.SetPixel(2, 3, Gray(1))

	if got := f.Pixel(2, 3); got != Gray(1) {
		t.Errorf("SetPixel: got %v", got)
	}
	if got := f.Pixel(3, 2); got != bg {
		t.Errorf("neighbor clobbered: got %v", got)
	}
}

func TestCheckerboard(t *testing.T) {
	f, _ := New(96, 96)
	c1, c2 := Gray(0.3), Gray(0.6)
	f.Checkerboard(c1, c2, 32)

	// Pixels within the same 32x32 tile share a color
	if f.Pixel(0, 0) != f.Pixel(31, 31) {
		t.Error("pixels in the same tile differ")
	}
	// Horizontally and vertically adjacent tiles alternate
	if f.Pixel(0, 0) == f.Pixel(32, 0) {
		t.Error("adjacent tiles match across x")
	}
	if f.Pixel(0, 0) == f.Pixel(0, 32) {
		t.Error("adjacent tiles match across y")
	}
	// Diagonal tiles match again
	if f.Pixel(0, 0) != f.Pixel(32, 32) {
		t.Error("diagonal tiles differ")
	}
	if f.Pixel(0, 0) != c2 {
		t.Errorf("origin tile: got %v, want %v", f.Pixel(0, 0), c2)
	}
}

func TestPixelOutOfRangePanics(t *testing.T) {
	f, _ := New(2, 2)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, core.ErrOutOfRange) {
			t.Fatalf("panic value: %v, want ErrOutOfRange", r)
		}
	}()
	f.Pixel(2, 0)
}
