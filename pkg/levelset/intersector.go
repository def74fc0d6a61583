package levelset

import (
	"fmt"
	"math"

	"github.com/chinhan1991/openvdb-dev/pkg/core"
	"github.com/chinhan1991/openvdb-dev/pkg/render"
)

// refinement iterations for locating the zero crossing once a sign
// change has been bracketed
const bisections = 8

// Intersector marches world-space rays through a level-set grid
// looking for the zero crossing. The grid payload is immutable and
// shared between copies; Clone exists so each render worker owns its
// intersector value.
type Intersector struct {
	grid     *Grid
	bmin     core.Vec3
	bmax     core.Vec3
	minStep  float64 // world units
	gradStep float64 // central-difference half step, world units
}

// NewIntersector creates an intersector over g. Only scalar float
// level sets can be marched; other classes and value types are
// rejected with an unsupported-value-type error.
func NewIntersector(g *Grid) (*Intersector, error) {
	if err := validate(g); err != nil {
		return nil, err
	}
	bmin, bmax := g.Bounds()
	return &Intersector{
		grid:     g,
		bmin:     bmin,
		bmax:     bmax,
		minStep:  0.5 * g.VoxelSize(),
		gradStep: 0.5 * g.VoxelSize(),
	}, nil
}

func validate(g *Grid) error {
	if g.Class() != ClassLevelSet {
		return fmt.Errorf("levelset: grid %q is a %s, expected a level set: %w",
			g.Name(), g.Class(), core.ErrUnsupportedValueType)
	}
	if g.ValueType() != ValueFloat {
		return fmt.Errorf("levelset: grid %q holds %s values, expected float: %w",
			g.Name(), g.ValueType(), core.ErrUnsupportedValueType)
	}
	return nil
}

// Grid returns the grid being intersected
func (in *Intersector) Grid() *Grid { return in.grid }

// Clone returns an independent copy sharing only the immutable grid
func (in *Intersector) Clone() render.Intersector {
	cp := *in
	return &cp
}

// clip intersects the ray's [T0,T1] interval with the grid bounds,
// returning the clipped interval.
func (in *Intersector) clip(ray core.Ray) (t0, t1 float64, ok bool) {
	t0, t1 = ray.T0, ray.T1
	lo := [3]float64{in.bmin.X, in.bmin.Y, in.bmin.Z}
	hi := [3]float64{in.bmax.X, in.bmax.Y, in.bmax.Z}
	eye := [3]float64{ray.Eye.X, ray.Eye.Y, ray.Eye.Z}
	dir := [3]float64{ray.Dir.X, ray.Dir.Y, ray.Dir.Z}
	for a := 0; a < 3; a++ {
		if dir[a] == 0 {
			if eye[a] < lo[a] || eye[a] > hi[a] {
				return 0, 0, false
			}
			continue
		}
		inv := 1.0 / dir[a]
		ta := (lo[a] - eye[a]) * inv
		tb := (hi[a] - eye[a]) * inv
		if ta > tb {
			ta, tb = tb, ta
		}
		if ta > t0 {
			t0 = ta
		}
		if tb < t1 {
			t1 = tb
		}
		if t0 > t1 {
			return 0, 0, false
		}
	}
	return t0, t1, true
}

// IntersectsWorldSpace marches the ray from its near to far clip
// looking for a sign change in the sampled distance field, then
// bisects to locate the crossing. It reports the hit position and the
// surface normal (the normalized distance-field gradient).
func (in *Intersector) IntersectsWorldSpace(ray core.Ray) (point, normal core.Vec3, ok bool) {
	t0, t1, ok := in.clip(ray)
	if !ok {
		return core.Vec3{}, core.Vec3{}, false
	}
	invLen := 1.0 / ray.Dir.Length()

	tPrev := t0
	dPrev := in.grid.SampleWorld(ray.At(t0))
	if dPrev == 0 {
		p := ray.At(t0)
		return p, in.gradient(p), true
	}
	for t := t0; t < t1; {
		// Sphere-trace step: the clamped distance value is a lower
		// bound on the distance to the surface.
		step := math.Abs(dPrev)
		if step < in.minStep {
			step = in.minStep
		}
		t += step * invLen
		if t > t1 {
			t = t1
		}
		d := in.grid.SampleWorld(ray.At(t))
		if d == 0 || (d < 0) != (dPrev < 0) {
			tHit := in.bisect(ray, tPrev, t, dPrev)
			p := ray.At(tHit)
			return p, in.gradient(p), true
		}
		tPrev, dPrev = t, d
		if t >= t1 {
			break
		}
	}
	return core.Vec3{}, core.Vec3{}, false
}

// bisect narrows [a,b], where the sampled field changes sign, down to
// the zero crossing.
func (in *Intersector) bisect(ray core.Ray, a, b, da float64) float64 {
	aNeg := da < 0
	for i := 0; i < bisections; i++ {
		m := 0.5 * (a + b)
		dm := in.grid.SampleWorld(ray.At(m))
		if dm == 0 {
			return m
		}
		if (dm < 0) == aNeg {
			a = m
		} else {
			b = m
		}
	}
	return 0.5 * (a + b)
}

// gradient returns the normalized central-difference gradient of the
// distance field at p.
func (in *Intersector) gradient(p core.Vec3) core.Vec3 {
	h := in.gradStep
	g := core.NewVec3(
		in.grid.SampleWorld(core.NewVec3(p.X+h, p.Y, p.Z))-in.grid.SampleWorld(core.NewVec3(p.X-h, p.Y, p.Z)),
		in.grid.SampleWorld(core.NewVec3(p.X, p.Y+h, p.Z))-in.grid.SampleWorld(core.NewVec3(p.X, p.Y-h, p.Z)),
		in.grid.SampleWorld(core.NewVec3(p.X, p.Y, p.Z+h))-in.grid.SampleWorld(core.NewVec3(p.X, p.Y, p.Z-h)))
	return g.Normalize()
}
