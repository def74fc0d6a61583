// Package shader maps surface hit points to colors. Shaders are
// deliberately naive test-rendering shaders, not production materials:
// each is a pure function of (hit point, normal, ray) plus a fixed
// color set at construction.
package shader

import (
	"math"

	"github.com/chinhan1991/openvdb-dev/pkg/core"
	"github.com/chinhan1991/openvdb-dev/pkg/film"
)

// Shader computes the color of a surface sample. Shade must be a pure
// function with no observable side effects. Clone returns an
// independent copy with identical configuration; the tracer gives each
// of its parallel workers an owned instance so shaders themselves need
// not be thread-safe.
type Shader interface {
	Shade(point, normal core.Vec3, ray core.Ray) film.RGBA
	Clone() Shader
}

// Matte ignores its inputs and returns a fixed color
type Matte struct {
	rgba film.RGBA
}

// NewMatte creates a matte shader with the given color
func NewMatte(c film.RGBA) *Matte {
	return &Matte{rgba: c}
}

func (s *Matte) Shade(point, normal core.Vec3, ray core.Ray) film.RGBA {
	return s.rgba
}

func (s *Matte) Clone() Shader {
	c := *s
	return &c
}

// Normal visualizes the surface normal: each signed unit-normal
// component is mapped from [-1,1] into [0,1] and tinted by the
// configured color.
type Normal struct {
	rgba film.RGBA
}

// NewNormal creates a normal-visualization shader tinted by c
func NewNormal(c film.RGBA) *Normal {
	return &Normal{rgba: c.Scale(0.5)}
}

func (s *Normal) Shade(point, normal core.Vec3, ray core.Ray) film.RGBA {
	return s.rgba.Mul(film.NewRGBA(
		float32(normal.X+1),
		float32(normal.Y+1),
		float32(normal.Z+1), 1))
}

func (s *Normal) Clone() Shader {
	c := *s
	return &c
}

// Diffuse is a simple Lambertian surface lit by a single directional
// light co-located with the ray origin. The absolute value of the
// cosine term makes the shading two-sided, as if light sources sat at
// both +dir and -dir.
type Diffuse struct {
	rgba film.RGBA
}

// NewDiffuse creates a diffuse shader with the given base color
func NewDiffuse(c film.RGBA) *Diffuse {
	return &Diffuse{rgba: c}
}

func (s *Diffuse) Shade(point, normal core.Vec3, ray core.Ray) film.RGBA {
	return s.rgba.Scale(float32(math.Abs(normal.Dot(ray.Dir))))
}

func (s *Diffuse) Clone() Shader {
	c := *s
	return &c
}
