package core

// Ray represents a ray with an origin (eye), a direction and a
// parametric clipping interval [T0, T1]. The direction is not required
// to be unit length until the ray is consumed by an intersector.
type Ray struct {
	Eye    Vec3
	Dir    Vec3
	T0, T1 float64
}

// NewRay creates a new ray with the given clipping interval
func NewRay(eye, dir Vec3, t0, t1 float64) Ray {
	return Ray{Eye: eye, Dir: dir, T0: t0, T1: t1}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Eye.Add(r.Dir.Multiply(t))
}

// Start returns the point at the near end of the clipping interval
func (r Ray) Start() Vec3 {
	return r.At(r.T0)
}

// ScaleTimes returns a copy of the ray with both interval endpoints
// scaled by s. Cameras use this to keep clipping planes measured along
// the optical axis when the ray direction diverges from it.
func (r Ray) ScaleTimes(s float64) Ray {
	r.T0 *= s
	r.T1 *= s
	return r
}

// WithDir returns a copy of the ray pointing in the given direction
func (r Ray) WithDir(dir Vec3) Ray {
	r.Dir = dir
	return r
}
