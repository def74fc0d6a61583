package camera

import (
	"math"

	"github.com/chinhan1991/openvdb-dev/pkg/core"
	"github.com/chinhan1991/openvdb-dev/pkg/film"
)

// Perspective is a pinhole camera whose screen window half-width is
// 0.5·aperture/focalLength. All rays share the eye point.
type Perspective struct {
	base
}

// NewPerspective creates a perspective camera rendering onto f. The
// default focal length of 50mm and aperture of 41.2136mm match
// Houdini's camera.
func NewPerspective(f *film.Film, cfg Config) (*Perspective, error) {
	focal := cfg.FocalLength
	if focal == 0 {
		focal = 50.0
	}
	aperture := cfg.Aperture
	if aperture == 0 {
		aperture = 41.2136
	}
	b, err := newBase(f, cfg, 0.5*aperture/focal)
	if err != nil {
		return nil, err
	}
	return &Perspective{base: b}, nil
}

// GetRay returns a world-space ray through pixel (i,j). The offsets
// select a point within the pixel footprint in [0,1); 0.5 is the pixel
// center. The ray's clipping interval is rescaled by
// 1/(dir·baseDir) so the near and far planes stay measured along the
// optical axis rather than the individual ray.
func (c *Perspective) GetRay(i, j int, iOffset, jOffset float64) core.Ray {
	ray := c.ray
	dir := c.rasterToScreen(float64(i)+iOffset, float64(j)+jOffset, -1)
	dir = c.screenToWorld.ApplyJacobian(dir).Normalize()
	ray = ray.ScaleTimes(1.0 / dir.Dot(ray.Dir))
	ray.Dir = dir
	return ray
}

// FocalLengthToFieldOfView returns the horizontal field of view in
// degrees given a focal length in mm and the specified aperture in mm.
func FocalLengthToFieldOfView(length, aperture float64) float64 {
	return 360.0 / math.Pi * math.Atan(aperture/(2.0*length))
}

// FieldOfViewToFocalLength returns the focal length in mm given a
// horizontal field of view in degrees and the specified aperture in mm.
func FieldOfViewToFocalLength(fov, aperture float64) float64 {
	return aperture / (2.0 * math.Tan(fov*math.Pi/360.0))
}
