package physics

import "ballmachine/internal/vecmath"

// Ball is a projectile fired by the launcher.
// PrevPos is the position at the end of the previous rendered frame; the target
// engine sweeps PrevPos->Pos.
type Ball struct {
	Pos     vecmath.Vec3
	PrevPos vecmath.Vec3
	Vel     vecmath.Vec3
	Age     float32

	// Spin is the accumulated roll angle in radians, for rendering.
	Spin float32

	trail []vecmath.Vec3
	head  int
}

func newBall(pos, vel vecmath.Vec3) *Ball {
	return &Ball{Pos: pos, PrevPos: pos, Vel: vel}
}

// Trail returns the recorded frame positions, oldest first. Empty when trails are off.
func (b *Ball) Trail() []vecmath.Vec3 {
	n := len(b.trail)
	out := make([]vecmath.Vec3, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, b.trail[(b.head+i)%n])
	}
	return out
}

func (b *Ball) recordTrail(limit int) {
	if len(b.trail) < limit {
		b.trail = append(b.trail, b.Pos)
		return
	}
	b.trail[b.head] = b.Pos
	b.head = (b.head + 1) % limit
}
