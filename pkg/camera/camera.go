// Package camera maps discrete pixel coordinates plus continuous
// sub-pixel offsets to world-space rays. The perspective and
// orthographic cameras mimic a Houdini camera: rotation is applied
// about the X, then Y, then Z axis, translation after rotation, and
// the camera looks down the negative z-axis when both are zero.
package camera

import (
	"fmt"
	"math"

	"github.com/chinhan1991/openvdb-dev/pkg/core"
	"github.com/chinhan1991/openvdb-dev/pkg/film"
)

// Config holds the placement and lens parameters shared by the two
// camera types. Zero values select the defaults noted per field.
type Config struct {
	Rotation    core.Vec3 // degrees, applied about X then Y then Z
	Translation core.Vec3 // world units, applied after rotation
	FocalLength float64   // mm, perspective only (default 50)
	Aperture    float64   // mm, perspective only (default 41.2136)
	FrameWidth  float64   // world units, orthographic only (default 1)
	NearPlane   float64   // world units along the optical axis (default 1e-3)
	FarPlane    float64   // world units along the optical axis (default +Inf)
}

// base carries the state shared by both camera types: the film
// reference, the screen half-extents, the screen-to-world map and the
// near/far-clipped base ray along the optical axis.
type base struct {
	film          *film.Film
	scaleWidth    float64
	scaleHeight   float64
	ray           core.Ray
	screenToWorld *core.AffineMap
}

func newBase(f *film.Film, cfg Config, halfWidth float64) (base, error) {
	near, far := cfg.NearPlane, cfg.FarPlane
	if near == 0 {
		near = 1e-3
	}
	if far == 0 {
		far = math.MaxFloat64
	}
	if near <= 0 || far <= near {
		return base{}, fmt.Errorf("camera: near %g, far %g: %w", near, far, core.ErrInvalidArgument)
	}
	m := core.NewAffineMap(cfg.Rotation, cfg.Translation)
	b := base{
		film:          f,
		scaleWidth:    halfWidth,
		scaleHeight:   halfWidth * float64(f.Height()) / float64(f.Width()),
		screenToWorld: m,
	}
	b.ray = core.NewRay(
		m.ApplyMap(core.Vec3{}),
		m.ApplyJacobian(core.NewVec3(0, 0, -1)),
		near, far)
	return b, nil
}

// Film returns the film the camera renders onto
func (b *base) Film() *film.Film { return b.film }

// rasterToScreen maps a continuous raster coordinate to a point on the
// screen plane at depth z, in camera-local coordinates.
func (b *base) rasterToScreen(i, j, z float64) core.Vec3 {
	return core.NewVec3(
		(2*i/float64(b.film.Width())-1)*b.scaleWidth,
		(1-2*j/float64(b.film.Height()))*b.scaleHeight,
		z)
}
