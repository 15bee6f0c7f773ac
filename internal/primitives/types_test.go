package primitives

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"ballmachine/internal/vecmath"
)

func TestMatrixKeepsTranslation(t *testing.T) {
	m := Matrix(mgl32.Translate3D(1, 2, 3))
	if m.M12 != 1 || m.M13 != 2 || m.M14 != 3 || m.M15 != 1 {
		t.Errorf("expected translation (1,2,3) in M12..M14, got %v %v %v", m.M12, m.M13, m.M14)
	}
	if m.M0 != 1 || m.M5 != 1 || m.M10 != 1 {
		t.Errorf("expected an identity rotation, got %+v", m)
	}
}

func TestMatrixKeepsRotation(t *testing.T) {
	tr := vecmath.Transform{Yaw: 0.5}
	src := tr.Matrix()
	m := Matrix(src)
	// Column 0 of a yaw rotation is (cos, 0, -sin).
	if m.M0 != src.At(0, 0) || m.M2 != src.At(2, 0) || m.M8 != src.At(0, 2) {
		t.Errorf("expected elements copied column by column, got %+v", m)
	}
}

func TestVector3(t *testing.T) {
	v := Vector3(vecmath.Vec3{1, -2, 3})
	if v.X != 1 || v.Y != -2 || v.Z != 3 {
		t.Errorf("expected (1,-2,3), got %+v", v)
	}
}
