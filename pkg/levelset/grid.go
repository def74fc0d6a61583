// Package levelset provides a dense narrow-band signed-distance grid
// and a ray intersector over it. It stands in for the sparse
// hierarchical grid library the renderer is normally paired with; the
// tracer only sees the intersector capability.
package levelset

import (
	"fmt"

	"github.com/chinhan1991/openvdb-dev/pkg/core"
)

// GridClass describes how a grid's values are to be interpreted
type GridClass int

const (
	ClassUnknown GridClass = iota
	ClassLevelSet
	ClassFogVolume
)

func (c GridClass) String() string {
	switch c {
	case ClassLevelSet:
		return "level set"
	case ClassFogVolume:
		return "fog volume"
	}
	return "unknown"
}

// ValueType describes the per-voxel value type
type ValueType int

const (
	ValueFloat ValueType = iota
	ValueVec3
)

func (v ValueType) String() string {
	if v == ValueVec3 {
		return "vec3"
	}
	return "float"
}

// Grid is a dense grid of float values on a uniform transform: value
// (i,j,k) lives at world position origin + (i,j,k)·voxelSize. For a
// level set the values are signed distances to the surface, clamped to
// ±background outside the narrow band.
type Grid struct {
	name       string
	class      GridClass
	valueType  ValueType
	voxelSize  float64
	background float64
	origin     core.Vec3
	nx, ny, nz int
	values     []float32
}

// NewGrid creates a float grid with every value set to background.
// Dimensions must be at least 2 per axis and the voxel size positive.
func NewGrid(name string, class GridClass, nx, ny, nz int, voxelSize float64, origin core.Vec3, background float64) (*Grid, error) {
	if nx < 2 || ny < 2 || nz < 2 {
		return nil, fmt.Errorf("levelset: grid dimensions %dx%dx%d: %w", nx, ny, nz, core.ErrInvalidArgument)
	}
	if voxelSize <= 0 {
		return nil, fmt.Errorf("levelset: voxel size %g: %w", voxelSize, core.ErrInvalidArgument)
	}
	g := &Grid{
		name:       name,
		class:      class,
		valueType:  ValueFloat,
		voxelSize:  voxelSize,
		background: background,
		origin:     origin,
		nx:         nx,
		ny:         ny,
		nz:         nz,
		values:     make([]float32, nx*ny*nz),
	}
	bg := float32(background)
	for i := range g.values {
		g.values[i] = bg
	}
	return g, nil
}

// NewVec3Grid creates a three-component grid. Vector grids exist so
// grid collections have something the renderer must skip; the
// intersector rejects them.
func NewVec3Grid(name string, class GridClass, nx, ny, nz int, voxelSize float64, origin core.Vec3) (*Grid, error) {
	g, err := NewGrid(name, class, nx, ny, nz, voxelSize, origin, 0)
	if err != nil {
		return nil, err
	}
	g.valueType = ValueVec3
	g.values = make([]float32, 3*nx*ny*nz)
	return g, nil
}

// Name returns the grid's name
func (g *Grid) Name() string { return g.name }

// Class returns the grid class
func (g *Grid) Class() GridClass { return g.class }

// ValueType returns the per-voxel value type
func (g *Grid) ValueType() ValueType { return g.valueType }

// VoxelSize returns the uniform voxel size in world units
func (g *Grid) VoxelSize() float64 { return g.voxelSize }

// Background returns the value outside the narrow band
func (g *Grid) Background() float64 { return g.background }

// Dims returns the grid dimensions
func (g *Grid) Dims() (nx, ny, nz int) { return g.nx, g.ny, g.nz }

// Value returns the value at index (i,j,k)
func (g *Grid) Value(i, j, k int) float32 {
	return g.values[i+g.nx*(j+g.ny*k)]
}

// SetValue writes the value at index (i,j,k)
func (g *Grid) SetValue(i, j, k int, v float32) {
	g.values[i+g.nx*(j+g.ny*k)] = v
}

// IndexToWorld returns the world position of index (i,j,k)
func (g *Grid) IndexToWorld(i, j, k int) core.Vec3 {
	return core.NewVec3(
		g.origin.X+float64(i)*g.voxelSize,
		g.origin.Y+float64(j)*g.voxelSize,
		g.origin.Z+float64(k)*g.voxelSize)
}

// Bounds returns the world-space bounding box spanned by the grid
func (g *Grid) Bounds() (min, max core.Vec3) {
	min = g.origin
	max = core.NewVec3(
		g.origin.X+float64(g.nx-1)*g.voxelSize,
		g.origin.Y+float64(g.ny-1)*g.voxelSize,
		g.origin.Z+float64(g.nz-1)*g.voxelSize)
	return min, max
}

func errInvalid(format string, args ...interface{}) error {
	args = append(args, core.ErrInvalidArgument)
	return fmt.Errorf("levelset: "+format+": %w", args...)
}

func clampIndex(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFrac(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SampleWorld returns the trilinearly interpolated value at world
// position p. Positions outside the grid clamp to the boundary, which
// holds the background value for a properly padded narrow-band grid.
func (g *Grid) SampleWorld(p core.Vec3) float64 {
	x := (p.X - g.origin.X) / g.voxelSize
	y := (p.Y - g.origin.Y) / g.voxelSize
	z := (p.Z - g.origin.Z) / g.voxelSize

	i0 := clampIndex(int(x), g.nx-2)
	j0 := clampIndex(int(y), g.ny-2)
	k0 := clampIndex(int(z), g.nz-2)
	fx := clampFrac(x - float64(i0))
	fy := clampFrac(y - float64(j0))
	fz := clampFrac(z - float64(k0))

	v000 := float64(g.Value(i0, j0, k0))
	v100 := float64(g.Value(i0+1, j0, k0))
	v010 := float64(g.Value(i0, j0+1, k0))
	v110 := float64(g.Value(i0+1, j0+1, k0))
	v001 := float64(g.Value(i0, j0, k0+1))
	v101 := float64(g.Value(i0+1, j0, k0+1))
	v011 := float64(g.Value(i0, j0+1, k0+1))
	v111 := float64(g.Value(i0+1, j0+1, k0+1))

	v00 := v000 + fx*(v100-v000)
	v10 := v010 + fx*(v110-v010)
	v01 := v001 + fx*(v101-v001)
	v11 := v011 + fx*(v111-v011)

	v0 := v00 + fy*(v10-v00)
	v1 := v01 + fy*(v11-v01)
	return v0 + fz*(v1-v0)
}
