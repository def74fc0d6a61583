package levelset

import (
	"math"

	"github.com/chinhan1991/openvdb-dev/pkg/core"
)

// NewLevelSetSphere builds a narrow-band level set of a sphere: signed
// distance to the sphere surface, clamped to ±halfWidth·voxelSize.
// halfWidth is the band half-width in voxel units; 3 is a common
// choice. The grid is padded so its boundary lies outside the band.
func NewLevelSetSphere(radius float64, center core.Vec3, voxelSize, halfWidth float64) (*Grid, error) {
	if radius <= 0 {
		return nil, errInvalid("sphere radius %g", radius)
	}
	if voxelSize <= 0 {
		return nil, errInvalid("voxel size %g", voxelSize)
	}
	if halfWidth <= 0 {
		return nil, errInvalid("half width %g", halfWidth)
	}

	background := halfWidth * voxelSize
	extent := radius + background + 2*voxelSize
	n := 2*int(math.Ceil(extent/voxelSize)) + 1
	origin := center.Subtract(core.NewVec3(extent, extent, extent))

	g, err := NewGrid("sphere", ClassLevelSet, n, n, n, voxelSize, origin, background)
	if err != nil {
		return nil, err
	}
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				d := g.IndexToWorld(i, j, k).Subtract(center).Length() - radius
				if d > background {
					d = background
				} else if d < -background {
					d = -background
				}
				g.SetValue(i, j, k, float32(d))
			}
		}
	}
	return g, nil
}
