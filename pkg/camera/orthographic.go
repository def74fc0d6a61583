package camera

import (
	"github.com/chinhan1991/openvdb-dev/pkg/core"
	"github.com/chinhan1991/openvdb-dev/pkg/film"
)

// Orthographic is a parallel-projection camera whose screen window
// half-width is 0.5·frameWidth in world units. All rays share the base
// direction; only the eye point varies per pixel.
type Orthographic struct {
	base
}

// NewOrthographic creates an orthographic camera rendering onto f
func NewOrthographic(f *film.Film, cfg Config) (*Orthographic, error) {
	frameWidth := cfg.FrameWidth
	if frameWidth == 0 {
		frameWidth = 1.0
	}
	b, err := newBase(f, cfg, 0.5*frameWidth)
	if err != nil {
		return nil, err
	}
	return &Orthographic{base: b}, nil
}

// GetRay returns a world-space ray through pixel (i,j). The offsets
// select a point within the pixel footprint in [0,1); 0.5 is the pixel
// center.
func (c *Orthographic) GetRay(i, j int, iOffset, jOffset float64) core.Ray {
	ray := c.ray
	eye := c.rasterToScreen(float64(i)+iOffset, float64(j)+jOffset, 0)
	ray.Eye = c.screenToWorld.ApplyMap(eye)
	return ray
}
