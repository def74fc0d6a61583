// Package render drives the ray-marching pipeline: for every film
// pixel it generates one primary ray plus optional jittered rays,
// intersects them against a level-set volume, shades the hits and
// averages the samples, parallelized across disjoint row ranges.
package render

import (
	"fmt"
	"math/rand"

	"github.com/chinhan1991/openvdb-dev/pkg/core"
	"github.com/chinhan1991/openvdb-dev/pkg/film"
	"github.com/chinhan1991/openvdb-dev/pkg/shader"
)

// Camera generates world-space rays for film pixels. It is read-only
// during a trace except for pixel writes into its film.
type Camera interface {
	GetRay(i, j int, iOffset, jOffset float64) core.Ray
	Film() *film.Film
}

// Intersector reports whether a world-space ray crosses the zero level
// set and, if so, the hit position and surface normal. Implementations
// may keep mutable traversal scratch state, so Clone must return a
// copy that shares no such state with the original; the tracer gives
// each parallel worker its own copy.
type Intersector interface {
	IntersectsWorldSpace(ray core.Ray) (point, normal core.Vec3, ok bool)
	Clone() Intersector
}

// The jitter table holds this many deterministic pseudo-random
// offsets in [0,1), drawn round-robin by the sub-pixel loop.
const jitterTableSize = 16

// LevelSetTracer renders a narrow-band level set onto a camera's film.
// Where a ray misses the volume, the film's current pixel value is
// kept as the miss color, so callers may pre-seed the film with a
// background image before tracing.
type LevelSetTracer struct {
	inter       Intersector
	shader      shader.Shader
	camera      Camera
	subPixels   int
	jitter      []float64
	interrupter func() bool
}

// NewLevelSetTracer creates a tracer from an intersector, a shader
// prototype (cloned, never shared), a camera and a per-pixel sample
// count. The seed fixes the jitter offsets; a given (seed, sample
// count) pair always produces the same image.
func NewLevelSetTracer(inter Intersector, s shader.Shader, camera Camera, pixelSamples int, seed int64) (*LevelSetTracer, error) {
	t := &LevelSetTracer{
		inter:  inter,
		shader: s.Clone(),
		camera: camera,
	}
	if err := t.SetPixelSamples(pixelSamples, seed); err != nil {
		return nil, err
	}
	return t, nil
}

// SetIntersector replaces the tracer's intersector
func (t *LevelSetTracer) SetIntersector(inter Intersector) {
	t.inter = inter
}

// SetShader replaces the tracer's shader with a clone of s
func (t *LevelSetTracer) SetShader(s shader.Shader) {
	t.shader = s.Clone()
}

// SetCamera replaces the tracer's camera
func (t *LevelSetTracer) SetCamera(camera Camera) {
	t.camera = camera
}

// SetPixelSamples sets the number of rays per pixel and rebuilds the
// jitter table from the seed. With a single sample per pixel no table
// is built and only the primary ray is traced.
func (t *LevelSetTracer) SetPixelSamples(pixelSamples int, seed int64) error {
	if pixelSamples < 1 {
		return fmt.Errorf("render: pixel samples %d: %w", pixelSamples, core.ErrInvalidArgument)
	}
	t.subPixels = pixelSamples - 1
	t.jitter = nil
	if t.subPixels > 0 {
		random := rand.New(rand.NewSource(seed))
		t.jitter = make([]float64, jitterTableSize)
		for i := range t.jitter {
			t.jitter[i] = random.Float64()
		}
	}
	return nil
}

// SetInterrupter installs a callback polled between rows. When it
// returns true the tracer stops issuing new work and Trace returns
// with whatever pixels were already written.
func (t *LevelSetTracer) SetInterrupter(interrupter func() bool) {
	t.interrupter = interrupter
}

// clone produces a worker copy: an owned intersector and shader, the
// jitter table and camera shared by reference. The table is read-only
// after construction, and workers write disjoint film rows, so no
// further synchronization is needed.
func (t *LevelSetTracer) clone() *LevelSetTracer {
	return &LevelSetTracer{
		inter:       t.inter.Clone(),
		shader:      t.shader.Clone(),
		camera:      t.camera,
		subPixels:   t.subPixels,
		jitter:      t.jitter,
		interrupter: t.interrupter,
	}
}

func (t *LevelSetTracer) interrupted() bool {
	return t.interrupter != nil && t.interrupter()
}

// renderRows traces rows [j0,j1). It returns true if the trace was
// interrupted before finishing the range.
func (t *LevelSetTracer) renderRows(j0, j1 int, stats *Stats) bool {
	f := t.camera.Film()
	width := f.Width()
	frac := 1.0 / float32(1+t.subPixels)
	for j := j0; j < j1; j++ {
		if t.interrupted() {
			return true
		}
		for i := 0; i < width; i++ {
			bg := f.Pixel(i, j)
			ray := t.camera.GetRay(i, j, 0.5, 0.5)
			c := bg
			if p, n, ok := t.inter.IntersectsWorldSpace(ray); ok {
				c = t.shader.Shade(p, n, ray)
				stats.Hits++
			}
			r, g, b, a := c.R, c.G, c.B, c.A
			// Jitter offsets are indexed by pixel coordinate so the
			// image does not depend on how rows were partitioned.
			n := 2 * (j*width + i)
			for k := 0; k < t.subPixels; k++ {
				ray = t.camera.GetRay(i, j,
					t.jitter[(n+2*k)&(jitterTableSize-1)],
					t.jitter[(n+2*k+1)&(jitterTableSize-1)])
				c = bg
				if p, nml, ok := t.inter.IntersectsWorldSpace(ray); ok {
					c = t.shader.Shade(p, nml, ray)
					stats.Hits++
				}
				r += c.R
				g += c.G
				b += c.B
				a += c.A
			}
			f.SetPixel(i, j, film.NewRGBA(r*frac, g*frac, b*frac, a*frac))
			stats.Pixels++
			stats.Rays += 1 + t.subPixels
		}
	}
	return false
}

// RayTrace renders a volume in one call: it builds a tracer from the
// given intersector, shader and camera and traces the whole film.
func RayTrace(inter Intersector, s shader.Shader, camera Camera, pixelSamples int, seed int64, threaded bool) (Stats, error) {
	t, err := NewLevelSetTracer(inter, s, camera, pixelSamples, seed)
	if err != nil {
		return Stats{}, err
	}
	return t.Trace(threaded), nil
}
