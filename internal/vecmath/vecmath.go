// Package vecmath holds the float32 vector and box helpers shared by the physics and
// target packages. Vectors are mgl32 values so they can be fed straight into matrix
// transforms; scalar math goes through math32 to stay in float32.
package vecmath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a 3D vector (X, Y, Z). Y is up.
type Vec3 = mgl32.Vec3

// Mat4 is a column-major 4x4 matrix.
type Mat4 = mgl32.Mat4

// Up is the world up axis. Also the fallback normal when a contact has no direction.
var Up = Vec3{0, 1, 0}

// degenerateLenSq: below this squared length a vector is treated as zero.
const degenerateLenSq = 1e-12

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b; t=0 gives a, t=1 gives b.
func Lerp(a, b Vec3, t float32) Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// LerpScalar interpolates between two scalars.
func LerpScalar(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Normalize returns v scaled to unit length together with its original length.
// A zero-length v returns (fallback, 0) instead of NaNs.
func Normalize(v, fallback Vec3) (Vec3, float32) {
	lsq := v.LenSqr()
	if lsq < degenerateLenSq {
		return fallback, 0
	}
	l := math32.Sqrt(lsq)
	return v.Mul(1 / l), l
}

// HorizontalLen returns the length of v projected on the XZ plane.
func HorizontalLen(v Vec3) float32 {
	return math32.Hypot(v[0], v[2])
}

// Reflect decomposes v along unit normal n and returns the response velocity:
// the normal part reversed and scaled by normalScale, the tangential part scaled by tangentScale.
func Reflect(v, n Vec3, normalScale, tangentScale float32) Vec3 {
	vn := n.Mul(v.Dot(n))
	vt := v.Sub(vn)
	return vt.Mul(tangentScale).Sub(vn.Mul(normalScale))
}

// Direction returns the unit vector for a yaw (around +Y) and pitch (up from the XZ plane).
// Yaw 0 / pitch 0 points along -Z; positive yaw turns toward -X.
func Direction(yaw, pitch float32) Vec3 {
	cp := math32.Cos(pitch)
	return Vec3{-math32.Sin(yaw) * cp, math32.Sin(pitch), -math32.Cos(yaw) * cp}
}

// CosSin returns cos(a) and sin(a).
func CosSin(a float32) (float32, float32) {
	return math32.Cos(a), math32.Sin(a)
}
