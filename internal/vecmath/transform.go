package vecmath

import "github.com/go-gl/mathgl/mgl32"

// Transform places a flat object in the world: translation, then yaw around +Y,
// then tilt around the local X axis. The object's surface normal is its local +Z.
type Transform struct {
	Position Vec3
	Yaw      float32
	Tilt     float32
}

// Matrix returns the local-to-world matrix.
func (t Transform) Matrix() Mat4 {
	m := mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2])
	if t.Yaw != 0 {
		m = m.Mul4(mgl32.HomogRotate3DY(t.Yaw))
	}
	if t.Tilt != 0 {
		m = m.Mul4(mgl32.HomogRotate3DX(t.Tilt))
	}
	return m
}

// ToLocal maps a world point into the frame described by world (a local-to-world matrix)
// using its precomputed inverse.
func ToLocal(inv Mat4, p Vec3) Vec3 {
	return mgl32.TransformCoordinate(p, inv)
}

// ToWorld maps a local point to world space.
func ToWorld(world Mat4, p Vec3) Vec3 {
	return mgl32.TransformCoordinate(p, world)
}

// NormalZ returns the normalized third basis column of a local-to-world matrix,
// i.e. the world direction of local +Z.
func NormalZ(world Mat4) Vec3 {
	n, _ := Normalize(world.Col(2).Vec3(), Vec3{0, 0, 1})
	return n
}

// ToWorldDir rotates a local direction into world space and normalizes it.
func ToWorldDir(world Mat4, d Vec3) Vec3 {
	n, _ := Normalize(world.Mul4x1(d.Vec4(0)).Vec3(), d)
	return n
}
