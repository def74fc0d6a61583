package core

import "testing"

func TestRayAt(t *testing.T) {
	r := NewRay(NewVec3(1, 0, 0), NewVec3(0, 0, -2), 0.5, 10)
	if got := r.At(2); got != NewVec3(1, 0, -4) {
		t.Errorf("At(2): got %v", got)
	}
	if got := r.Start(); got != NewVec3(1, 0, -1) {
		t.Errorf("Start: got %v", got)
	}
}

func TestRayScaleTimes(t *testing.T) {
	r := NewRay(Vec3{}, NewVec3(0, 0, -1), 2, 8)
	s := r.ScaleTimes(0.5)
	if s.T0 != 1 || s.T1 != 4 {
		t.Errorf("ScaleTimes: got [%v,%v]", s.T0, s.T1)
	}
	// The receiver is unchanged
	if r.T0 != 2 || r.T1 != 8 {
		t.Errorf("ScaleTimes mutated receiver: [%v,%v]", r.T0, r.T1)
	}
}

func TestRayWithDir(t *testing.T) {
	r := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -1), 0, 1)
	s := r.WithDir(NewVec3(0, 1, 0))
	if s.Dir != NewVec3(0, 1, 0) || s.Eye != r.Eye || s.T0 != r.T0 || s.T1 != r.T1 {
		t.Errorf("WithDir: got %+v", s)
	}
}
