package render_test

import (
	"testing"

	"github.com/chinhan1991/openvdb-dev/pkg/camera"
	"github.com/chinhan1991/openvdb-dev/pkg/core"
	"github.com/chinhan1991/openvdb-dev/pkg/film"
	"github.com/chinhan1991/openvdb-dev/pkg/levelset"
	"github.com/chinhan1991/openvdb-dev/pkg/render"
	"github.com/chinhan1991/openvdb-dev/pkg/shader"
)

// Renders a level-set sphere end to end and checks the silhouette:
// rays through the middle of the frame hit the sphere, rays near the
// frame corners keep the background.
func TestRenderLevelSetSphere(t *testing.T) {
	const size = 64

	grid, err := levelset.NewLevelSetSphere(1, core.Vec3{}, 0.05, 3)
	if err != nil {
		t.Fatalf("NewLevelSetSphere: %v", err)
	}
	inter, err := levelset.NewIntersector(grid)
	if err != nil {
		t.Fatalf("NewIntersector: %v", err)
	}

	blue := film.NewRGBA(0, 0, 1, 1)
	f, err := film.NewWithBackground(size, size, blue)
	if err != nil {
		t.Fatalf("NewWithBackground: %v", err)
	}
	cam, err := camera.NewOrthographic(f, camera.Config{
		Translation: core.NewVec3(0, 0, 5),
		FrameWidth:  4,
	})
	if err != nil {
		t.Fatalf("NewOrthographic: %v", err)
	}

	white := film.NewRGBA(1, 1, 1, 1)
	stats, err := render.RayTrace(inter, shader.NewMatte(white), cam, 1, 0, false)
	if err != nil {
		t.Fatalf("RayTrace: %v", err)
	}
	if !stats.Complete(size, size) {
		t.Fatalf("incomplete trace: %+v", stats)
	}
	if stats.Hits == 0 {
		t.Fatal("no rays hit the sphere")
	}

	// The frame is 4 units wide and the sphere 2, so the middle of the
	// image is covered and the corners are not.
	if got := f.Pixel(size/2, size/2); got != white {
		t.Errorf("center pixel: got %v, want %v", got, white)
	}
	for _, c := range [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}} {
		if got := f.Pixel(c[0], c[1]); got != blue {
			t.Errorf("corner (%d,%d): got %v, want background", c[0], c[1], got)
		}
	}
}

// The normal shader gives the sphere a characteristic shading: the
// pixel facing the camera has a +z normal.
func TestRenderNormalShading(t *testing.T) {
	const size = 32

	grid, err := levelset.NewLevelSetSphere(1, core.Vec3{}, 0.05, 3)
	if err != nil {
		t.Fatalf("NewLevelSetSphere: %v", err)
	}
	inter, err := levelset.NewIntersector(grid)
	if err != nil {
		t.Fatalf("NewIntersector: %v", err)
	}

	f, err := film.New(size, size)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cam, err := camera.NewOrthographic(f, camera.Config{
		Translation: core.NewVec3(0, 0, 5),
		FrameWidth:  4,
	})
	if err != nil {
		t.Fatalf("NewOrthographic: %v", err)
	}

	if _, err := render.RayTrace(inter, shader.NewNormal(film.Gray(1)), cam, 1, 0, false); err != nil {
		t.Fatalf("RayTrace: %v", err)
	}

	// A normal of (0,0,1) maps to roughly (0.5, 0.5, 1)
	c := f.Pixel(size/2, size/2)
	if c.B < 0.95 || c.R < 0.4 || c.R > 0.6 || c.G < 0.4 || c.G > 0.6 {
		t.Errorf("center shading: got %v", c)
	}
}
