package vecmath

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func nearVec(a, b Vec3) bool {
	return near(a[0], b[0]) && near(a[1], b[1]) && near(a[2], b[2])
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 {
		t.Error("expected clamp to lower bound")
	}
	if Clamp(2, 0, 1) != 1 {
		t.Error("expected clamp to upper bound")
	}
	if Clamp(0.5, 0, 1) != 0.5 {
		t.Error("expected value inside range to pass through")
	}
}

func TestLerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{2, 4, -6}
	got := Lerp(a, b, 0.5)
	if !nearVec(got, Vec3{1, 2, -3}) {
		t.Errorf("expected midpoint (1,2,-3), got %v", got)
	}
}

func TestNormalizeZeroUsesFallback(t *testing.T) {
	n, l := Normalize(Vec3{}, Up)
	if l != 0 || n != Up {
		t.Errorf("expected fallback Up with length 0, got %v len %f", n, l)
	}
}

func TestReflectSplitsNormalAndTangent(t *testing.T) {
	v := Vec3{3, -4, 0}
	got := Reflect(v, Up, 0.5, 0.8)
	if !nearVec(got, Vec3{2.4, 2, 0}) {
		t.Errorf("expected (2.4,2,0), got %v", got)
	}
}

func TestDirection(t *testing.T) {
	if d := Direction(0, 0); !nearVec(d, Vec3{0, 0, -1}) {
		t.Errorf("yaw 0 should face -Z, got %v", d)
	}
	if d := Direction(math.Pi/2, 0); !nearVec(d, Vec3{-1, 0, 0}) {
		t.Errorf("yaw +90deg should face -X, got %v", d)
	}
	if d := Direction(0, math.Pi/2); !nearVec(d, Vec3{0, 1, 0}) {
		t.Errorf("pitch +90deg should face up, got %v", d)
	}
}

func TestAABBClosestPointAndDistance(t *testing.T) {
	box := NewAABB(Vec3{0, 1, 0}, Vec3{2, 2, 2})
	p := Vec3{3, 1, 0}
	if cp := box.ClosestPoint(p); !nearVec(cp, Vec3{1, 1, 0}) {
		t.Errorf("expected closest point (1,1,0), got %v", cp)
	}
	if d := box.Distance(p); !near(d, 2) {
		t.Errorf("expected distance 2, got %f", d)
	}
	if d := box.Distance(Vec3{0, 1, 0}); d != 0 {
		t.Errorf("expected 0 distance for interior point, got %f", d)
	}
}

func TestAABBIntersectSegment(t *testing.T) {
	box := NewAABB(Vec3{0, 0, 0}, Vec3{2, 2, 2})

	tHit, ok := box.IntersectSegment(Vec3{-3, 0, 0}, Vec3{3, 0, 0})
	if !ok || !near(tHit, 2.0/6.0) {
		t.Errorf("expected entry at t=1/3, got %f ok=%v", tHit, ok)
	}

	if _, ok := box.IntersectSegment(Vec3{-3, 5, 0}, Vec3{3, 5, 0}); ok {
		t.Error("segment above the box should miss")
	}

	if _, ok := box.IntersectSegment(Vec3{-5, 0, 0}, Vec3{-3, 0, 0}); ok {
		t.Error("segment ending before the box should miss")
	}

	if _, ok := box.IntersectSegment(Vec3{0, 0, 0}, Vec3{0, 0, 0}); ok {
		t.Error("zero-length segment should never hit")
	}

	tHit, ok = box.IntersectSegment(Vec3{0, 0, 0}, Vec3{4, 0, 0})
	if !ok || !near(tHit, 0.25) {
		t.Errorf("segment starting inside should report exit at t=0.25, got %f ok=%v", tHit, ok)
	}
}

func TestAABBFaceNormal(t *testing.T) {
	box := NewAABB(Vec3{0, 0, 0}, Vec3{2, 2, 2})
	if n := box.FaceNormal(Vec3{0.99, 0, 0}); n != (Vec3{1, 0, 0}) {
		t.Errorf("expected +X face, got %v", n)
	}
	if n := box.FaceNormal(Vec3{0, -0.95, 0.1}); n != (Vec3{0, -1, 0}) {
		t.Errorf("expected -Y face, got %v", n)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := Transform{Position: Vec3{8, 2.5, -12}, Yaw: math.Pi}
	world := tr.Matrix()
	inv := world.Inv()

	p := Vec3{7, 3, -11}
	local := ToLocal(inv, p)
	back := ToWorld(world, local)
	if !nearVec(back, p) {
		t.Errorf("expected round trip to %v, got %v", p, back)
	}

	if n := NormalZ(world); !nearVec(n, Vec3{0, 0, -1}) {
		t.Errorf("yaw pi should flip the surface normal to -Z, got %v", n)
	}
}
