package camera

import (
	"errors"
	"math"
	"testing"

	"github.com/chinhan1991/openvdb-dev/pkg/core"
	"github.com/chinhan1991/openvdb-dev/pkg/film"
)

func newTestFilm(t *testing.T, w, h int) *film.Film {
	t.Helper()
	f, err := film.New(w, h)
	if err != nil {
		t.Fatalf("film.New: %v", err)
	}
	return f
}

func TestNewBaseRejectsBadPlanes(t *testing.T) {
	f := newTestFilm(t, 8, 8)
	for _, cfg := range []Config{
		{NearPlane: -1},
		{NearPlane: 2, FarPlane: 1},
		{NearPlane: 1, FarPlane: 1},
	} {
		if _, err := NewPerspective(f, cfg); !errors.Is(err, core.ErrInvalidArgument) {
			t.Errorf("NewPerspective(%+v): got %v, want ErrInvalidArgument", cfg, err)
		}
		if _, err := NewOrthographic(f, cfg); !errors.Is(err, core.ErrInvalidArgument) {
			t.Errorf("NewOrthographic(%+v): got %v, want ErrInvalidArgument", cfg, err)
		}
	}
}

func TestGetRayIsPure(t *testing.T) {
	f := newTestFilm(t, 16, 8)
	cfg := Config{
		Rotation:    core.NewVec3(10, 20, 30),
		Translation: core.NewVec3(1, 2, 3),
	}
	persp, err := NewPerspective(f, cfg)
	if err != nil {
		t.Fatalf("NewPerspective: %v", err)
	}
	ortho, err := NewOrthographic(f, cfg)
	if err != nil {
		t.Fatalf("NewOrthographic: %v", err)
	}

	// Repeated calls with the same arguments return bit-identical rays
	for _, c := range []interface {
		GetRay(i, j int, iOffset, jOffset float64) core.Ray
	}{persp, ortho} {
		a := c.GetRay(5, 3, 0.25, 0.75)
		b := c.GetRay(5, 3, 0.25, 0.75)
		if a != b {
			t.Errorf("GetRay not deterministic: %+v vs %+v", a, b)
		}
	}
}

func TestPerspectiveRaysShareEye(t *testing.T) {
	f := newTestFilm(t, 16, 16)
	translation := core.NewVec3(1, -2, 5)
	c, err := NewPerspective(f, Config{Translation: translation})
	if err != nil {
		t.Fatalf("NewPerspective: %v", err)
	}

	r0 := c.GetRay(0, 0, 0.5, 0.5)
	r1 := c.GetRay(15, 15, 0.5, 0.5)
	if r0.Eye != translation || r1.Eye != translation {
		t.Errorf("eyes: %v, %v, want %v", r0.Eye, r1.Eye, translation)
	}
	if r0.Dir == r1.Dir {
		t.Error("corner rays should diverge")
	}
	if math.Abs(r0.Dir.Length()-1) > 1e-12 {
		t.Errorf("direction not unit length: %v", r0.Dir.Length())
	}
}

func TestPerspectiveClipRescaling(t *testing.T) {
	f := newTestFilm(t, 16, 16)
	c, err := NewPerspective(f, Config{NearPlane: 1, FarPlane: 10})
	if err != nil {
		t.Fatalf("NewPerspective: %v", err)
	}

	// The center ray runs along the optical axis, so its interval is
	// the configured near/far unchanged.
	center := c.GetRay(8, 8, 0, 0)
	if math.Abs(center.T0-1) > 1e-12 || math.Abs(center.T1-10) > 1e-12 {
		t.Errorf("center clip: [%v,%v]", center.T0, center.T1)
	}

	// An off-axis ray is longer per unit of optical-axis depth, so its
	// interval stretches by 1/cos.
	corner := c.GetRay(0, 0, 0, 0)
	cos := corner.Dir.Dot(core.NewVec3(0, 0, -1))
	if math.Abs(corner.T0*cos-1) > 1e-12 || math.Abs(corner.T1*cos-10) > 1e-9 {
		t.Errorf("corner clip: [%v,%v], cos %v", corner.T0, corner.T1, cos)
	}
}

func TestOrthographicRaysAreParallel(t *testing.T) {
	f := newTestFilm(t, 16, 8)
	c, err := NewOrthographic(f, Config{
		Rotation:   core.NewVec3(0, 45, 0),
		FrameWidth: 4,
	})
	if err != nil {
		t.Fatalf("NewOrthographic: %v", err)
	}

	r0 := c.GetRay(0, 0, 0.5, 0.5)
	r1 := c.GetRay(15, 7, 0.5, 0.5)
	if r0.Dir != r1.Dir {
		t.Errorf("directions differ: %v vs %v", r0.Dir, r1.Dir)
	}
	if r0.Eye == r1.Eye {
		t.Error("eyes should vary across the screen window")
	}
}

func TestOrthographicFrameWidth(t *testing.T) {
	f := newTestFilm(t, 10, 10)
	c, err := NewOrthographic(f, Config{FrameWidth: 4})
	if err != nil {
		t.Fatalf("NewOrthographic: %v", err)
	}

	// Raster 0 maps to screen -halfWidth, raster width to +halfWidth
	left := c.GetRay(0, 5, 0, 0)
	right := c.GetRay(9, 5, 1, 0)
	if math.Abs(left.Eye.X+2) > 1e-12 || math.Abs(right.Eye.X-2) > 1e-12 {
		t.Errorf("frame edges: %v .. %v", left.Eye.X, right.Eye.X)
	}
}

func TestFocalFieldOfViewRoundTrip(t *testing.T) {
	const aperture = 41.2136
	for _, focal := range []float64{20, 50, 135} {
		fov := FocalLengthToFieldOfView(focal, aperture)
		back := FieldOfViewToFocalLength(fov, aperture)
		if math.Abs(back-focal) > 1e-9*focal {
			t.Errorf("focal %g: round trip gave %g (fov %g)", focal, back, fov)
		}
	}

	// The Houdini default lens covers roughly 45 degrees
	fov := FocalLengthToFieldOfView(50, aperture)
	if math.Abs(fov-44.9) > 0.2 {
		t.Errorf("default fov: got %g", fov)
	}
}
