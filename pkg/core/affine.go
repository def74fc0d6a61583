package core

import "github.com/go-gl/mathgl/mgl64"

// AffineMap transforms camera-local screen coordinates into world
// space. It is built from a rotation applied about the X, then Y, then
// Z axis, followed by a translation. The map is immutable once built
// and safe for concurrent use.
type AffineMap struct {
	mat mgl64.Mat4
	lin mgl64.Mat3
}

// NewAffineMap builds the screen-to-world map from a rotation in
// degrees and a translation in world units.
func NewAffineMap(rotation, translation Vec3) *AffineMap {
	m := mgl64.Translate3D(translation.X, translation.Y, translation.Z).
		Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(rotation.Z))).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(rotation.Y))).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(rotation.X)))
	return &AffineMap{mat: m, lin: m.Mat3()}
}

// ApplyMap transforms a point by the full affine map, translation included
func (m *AffineMap) ApplyMap(p Vec3) Vec3 {
	v := m.mat.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// ApplyJacobian transforms a vector by the linear (rotation) part only
func (m *AffineMap) ApplyJacobian(v Vec3) Vec3 {
	w := m.lin.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return Vec3{X: w[0], Y: w[1], Z: w[2]}
}
