package targets

import (
	"github.com/chewxy/math32"

	"ballmachine/internal/vecmath"
)

type contact struct {
	point  vecmath.Vec3
	normal vecmath.Vec3
	t      float32
}

func sweep(t *Target, p0, p1 vecmath.Vec3, r float32) (contact, bool) {
	if t.Shape == Box {
		return sweepBox(t, p0, p1, r)
	}
	return sweepPlane(t, p0, p1, r)
}

// sweepPlane intersects the segment with the surface plane z=0 in local space and
// accepts the crossing when it lies within the shape grown by r. The returned
// normal is the surface's +Z axis whichever side the ball came from.
func sweepPlane(t *Target, p0, p1 vecmath.Vec3, r float32) (contact, bool) {
	l0 := vecmath.ToLocal(t.inv, p0)
	l1 := vecmath.ToLocal(t.inv, p1)
	hx, hy, hz := t.HalfExtents[0], t.HalfExtents[1], t.HalfExtents[2]

	thick := math32.Max(hz+r, r)
	z0, z1 := l0[2], l1[2]
	if (z0 > thick && z1 > thick) || (z0 < -thick && z1 < -thick) {
		return contact{}, false
	}
	dz := z1 - z0
	if math32.Abs(dz) < 1e-9 {
		return contact{}, false
	}
	s := -z0 / dz
	if s < 0 || s > 1 {
		return contact{}, false
	}

	hit := vecmath.Lerp(l0, l1, s)
	if t.Shape == Circle {
		rs := math32.Max(hx, hy) + r
		if hit[0]*hit[0]+hit[1]*hit[1] > rs*rs {
			return contact{}, false
		}
	} else if math32.Abs(hit[0]) > hx+r || math32.Abs(hit[1]) > hy+r {
		return contact{}, false
	}

	return contact{
		point:  vecmath.ToWorld(t.world, hit),
		normal: vecmath.NormalZ(t.world),
		t:      s,
	}, true
}

// sweepBox runs a slab test against the box grown by r. The normal is the face
// nearest the contact, turned to oppose the motion.
func sweepBox(t *Target, p0, p1 vecmath.Vec3, r float32) (contact, bool) {
	l0 := vecmath.ToLocal(t.inv, p0)
	l1 := vecmath.ToLocal(t.inv, p1)
	box := vecmath.AABB{Min: t.HalfExtents.Mul(-1), Max: t.HalfExtents}.Expand(r)

	s, ok := box.IntersectSegment(l0, l1)
	if !ok {
		return contact{}, false
	}
	hit := vecmath.Lerp(l0, l1, s)
	n := box.FaceNormal(hit)
	if n.Dot(l1.Sub(l0)) > 0 {
		n = n.Mul(-1)
	}

	return contact{
		point:  vecmath.ToWorld(t.world, hit),
		normal: vecmath.ToWorldDir(t.world, n),
		t:      s,
	}, true
}
