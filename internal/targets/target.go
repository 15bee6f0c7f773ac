// Package targets moves the scoring targets and detects balls crossing them.
//
// A ball is tested with the segment it travelled during the frame
// (Ball.PrevPos -> Ball.Pos) so fast shots cannot tunnel through thin panels.
package targets

import (
	"ballmachine/internal/physics"
	"ballmachine/internal/vecmath"
)

// Kind selects how a target moves.
type Kind int

const (
	Static Kind = iota
	Oscillating
	Orbiting
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Oscillating:
		return "oscillating"
	case Orbiting:
		return "orbiting"
	}
	return "unknown"
}

// Shape selects the swept test used for a target surface.
type Shape int

const (
	// Circle is a flat disc in the local XY plane, radius HalfExtents.X.
	Circle Shape = iota
	// Rect is a flat panel in the local XY plane with half thickness HalfExtents.Z.
	Rect
	// Box is a solid box tested with a segment-vs-expanded-box slab test.
	Box
)

// Plane is the world plane an orbiting target circles in.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
)

// Motion holds the per-kind movement state. Anchors (StartX, Center) are taken
// from the target's position when it is added to an Engine.
type Motion struct {
	Speed float32

	// oscillating
	Range     float32
	StartX    float32
	Direction float32

	// orbiting
	Radius float32
	Angle  float32
	Plane  Plane
	Center vecmath.Vec3
}

// Surface overrides the engine's default bounce response.
type Surface struct {
	Restitution float32
	Friction    float32
}

// HitFunc runs once per registered hit, after the ball has been bounced.
type HitFunc func(t *Target, b *physics.Ball, e *Engine)

// Target is one scoring (or purely physical) surface on the court.
type Target struct {
	Name  string
	Kind  Kind
	Shape Shape

	// Transform places the target's group; Offset places the hit surface inside it.
	Transform   vecmath.Transform
	Offset      vecmath.Vec3
	HalfExtents vecmath.Vec3

	// Surface may be nil to use the engine defaults.
	Surface *Surface
	Score   int
	Motion  Motion
	OnHit   HitFunc

	Cooldown float32
	Hits     int

	world vecmath.Mat4
	inv   vecmath.Mat4
}

// World returns the hit surface's local-to-world matrix as of the last update.
func (t *Target) World() vecmath.Mat4 {
	return t.world
}

// Center returns the hit surface centre in world space.
func (t *Target) Center() vecmath.Vec3 {
	return vecmath.ToWorld(t.world, vecmath.Vec3{})
}

// Normal returns the world direction of the surface's local +Z axis.
func (t *Target) Normal() vecmath.Vec3 {
	return vecmath.NormalZ(t.world)
}

func (t *Target) refresh() {
	m := t.Transform.Matrix()
	if t.Offset != (vecmath.Vec3{}) {
		m = m.Mul4(vecmath.Transform{Position: t.Offset}.Matrix())
	}
	t.world = m
	t.inv = m.Inv()
}

func (t *Target) move(dt float32) {
	m := &t.Motion
	switch t.Kind {
	case Oscillating:
		x := t.Transform.Position[0] + m.Direction*m.Speed*dt
		if x > m.StartX+m.Range {
			x = m.StartX + m.Range
			m.Direction = -1
		} else if x < m.StartX-m.Range {
			x = m.StartX - m.Range
			m.Direction = 1
		}
		t.Transform.Position[0] = x
	case Orbiting:
		m.Angle += m.Speed * dt
		c, s := vecmath.CosSin(m.Angle)
		p := m.Center
		p[0] += m.Radius * c
		if m.Plane == PlaneXZ {
			p[2] += m.Radius * s
		} else {
			p[1] += m.Radius * s
		}
		t.Transform.Position = p
	}
}

func (t *Target) surface(cfg Config) Surface {
	if t.Surface != nil {
		return *t.Surface
	}
	return Surface{Restitution: cfg.DefaultRestitution, Friction: cfg.DefaultFriction}
}
