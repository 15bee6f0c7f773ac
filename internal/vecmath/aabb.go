package vecmath

import "github.com/chewxy/math32"

// AABB is an axis-aligned box given by its min and max corners.
type AABB struct {
	Min Vec3 `yaml:"min"`
	Max Vec3 `yaml:"max"`
}

// NewAABB returns the box centred on center with the given full size.
func NewAABB(center, size Vec3) AABB {
	half := size.Mul(0.5)
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the box centre.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the full extent on each axis.
func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Expand grows the box by r on every side.
func (b AABB) Expand(r float32) AABB {
	d := Vec3{r, r, r}
	return AABB{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// Contains reports whether p lies inside or on the box.
func (b AABB) Contains(p Vec3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// ClosestPoint clamps p onto the box, per axis.
func (b AABB) ClosestPoint(p Vec3) Vec3 {
	return Vec3{
		Clamp(p[0], b.Min[0], b.Max[0]),
		Clamp(p[1], b.Min[1], b.Max[1]),
		Clamp(p[2], b.Min[2], b.Max[2]),
	}
}

// Distance returns the distance from p to the box surface, 0 when p is inside.
func (b AABB) Distance(p Vec3) float32 {
	return p.Sub(b.ClosestPoint(p)).Len()
}

// IntersectSegment runs a slab test of the segment p0->p1 against the box.
// It returns the segment parameter in [0,1] of the contact: the entry point, or
// the exit point when p0 already lies inside. Zero-length segments never hit.
func (b AABB) IntersectSegment(p0, p1 Vec3) (float32, bool) {
	d := p1.Sub(p0)
	if d.LenSqr() < degenerateLenSq {
		return 0, false
	}
	tmin := float32(math32.Inf(-1))
	tmax := float32(math32.Inf(1))
	for axis := 0; axis < 3; axis++ {
		if math32.Abs(d[axis]) < 1e-9 {
			if p0[axis] < b.Min[axis] || p0[axis] > b.Max[axis] {
				return 0, false
			}
			continue
		}
		inv := 1 / d[axis]
		t1 := (b.Min[axis] - p0[axis]) * inv
		t2 := (b.Max[axis] - p0[axis]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > 1 {
		return 0, false
	}
	return t, true
}

// FaceNormal returns the outward normal of the face of b nearest to p.
// Ties resolve in the order +Y, -Y, +X, -X, +Z, -Z.
func (b AABB) FaceNormal(p Vec3) Vec3 {
	faces := [6]struct {
		dist   float32
		normal Vec3
	}{
		{b.Max[1] - p[1], Vec3{0, 1, 0}},
		{p[1] - b.Min[1], Vec3{0, -1, 0}},
		{b.Max[0] - p[0], Vec3{1, 0, 0}},
		{p[0] - b.Min[0], Vec3{-1, 0, 0}},
		{b.Max[2] - p[2], Vec3{0, 0, 1}},
		{p[2] - b.Min[2], Vec3{0, 0, -1}},
	}
	best := 0
	for i := 1; i < len(faces); i++ {
		if faces[i].dist < faces[best].dist {
			best = i
		}
	}
	return faces[best].normal
}
