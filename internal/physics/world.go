package physics

import (
	"github.com/chewxy/math32"

	"ballmachine/internal/vecmath"
)

// World holds the launcher, the live balls and the static colliders, and runs the
// fixed-step simulation: drag, gravity, integration, ground and box collisions,
// then ball-ball contacts.
type World struct {
	cfg      Config
	listener ShotListener

	launcher  *Launcher
	balls     []*Ball
	colliders Colliders
	broad     *Broadphase
	stepper   Stepper
	mega      *megaSpawner
}

// NewWorld validates cfg and returns an empty world. listener may be nil.
func NewWorld(cfg Config, listener ShotListener) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		cfg:      cfg,
		listener: listener,
		broad:    NewBroadphase(cfg.BallRadius),
		stepper:  Stepper{Fixed: cfg.FixedStep, MaxSteps: cfg.MaxSteps},
	}
	w.launcher = newLauncher(cfg.Launcher, w)
	if cfg.MegaBall.Enabled {
		w.mega = newMegaSpawner(cfg.MegaBall)
	}
	return w, nil
}

// Config returns the configuration the world was built with.
func (w *World) Config() Config {
	return w.cfg
}

// Launcher returns the world's cannon.
func (w *World) Launcher() *Launcher {
	return w.launcher
}

// Balls returns the live balls in spawn order. Callers may modify the balls but not
// the slice.
func (w *World) Balls() []*Ball {
	return w.balls
}

// MegaBall returns the active hazard ball, or nil.
func (w *World) MegaBall() *MegaBall {
	if w.mega == nil {
		return nil
	}
	return w.mega.active
}

// AddCollider registers a static box. Order is preserved.
func (w *World) AddCollider(box vecmath.AABB) {
	w.colliders.Add(box)
}

// ClearColliders drops every static box.
func (w *World) ClearColliders() {
	w.colliders.Clear()
}

// Colliders returns the registered static boxes.
func (w *World) Colliders() []vecmath.AABB {
	return w.colliders.All()
}

// Spawn adds a ball directly, bypassing the launcher.
func (w *World) Spawn(pos, vel vecmath.Vec3) *Ball {
	return w.spawn(pos, vel)
}

func (w *World) spawn(pos, vel vecmath.Vec3) *Ball {
	b := newBall(pos, vel)
	w.balls = append(w.balls, b)
	return b
}

// ClearBalls removes every ball and resets the hazard.
func (w *World) ClearBalls() {
	w.balls = w.balls[:0]
	if w.mega != nil {
		w.mega.reset()
	}
}

// Update runs one rendered frame of dt seconds: previous positions are recorded,
// then as many fixed steps as the accumulator allows, then per-frame bookkeeping.
// It returns the number of fixed steps taken.
func (w *World) Update(dt float32) int {
	for _, b := range w.balls {
		b.PrevPos = b.Pos
	}
	n := w.stepper.Advance(dt, w.Step)
	w.endFrame(dt)
	return n
}

// Step advances the launcher and the balls by one fixed step of dt seconds.
func (w *World) Step(dt float32) {
	w.launcher.Update(dt)

	subDt := dt / float32(w.cfg.Substeps)
	for s := 0; s < w.cfg.Substeps; s++ {
		for _, b := range w.balls {
			w.integrate(b, subDt)
			w.collideGround(b)
			w.colliders.collideSphere(&b.Pos, &b.Vel, w.cfg.BallRadius, w.cfg.Restitution, w.cfg.GroundFriction, w.cfg.PushOutEpsilon)
		}
		for _, p := range w.broad.Pairs(w.balls) {
			w.resolveBallBall(w.balls[p.I], w.balls[p.J])
		}
	}

	if w.mega != nil {
		w.mega.update(dt, w.balls, w.cfg.BallRadius)
	}
}

func (w *World) integrate(b *Ball, dt float32) {
	b.Vel = b.Vel.Mul(w.cfg.AirDrag)
	b.Vel = b.Vel.Add(w.cfg.Gravity.Mul(dt))
	b.Pos = b.Pos.Add(b.Vel.Mul(dt))
}

func (w *World) collideGround(b *Ball) {
	r := w.cfg.BallRadius
	if b.Pos[1] >= r {
		return
	}
	b.Pos[1] = r
	b.Vel[1] = -b.Vel[1] * w.cfg.Restitution
	b.Vel[0] *= w.cfg.GroundFriction
	b.Vel[2] *= w.cfg.GroundFriction
	if math32.Abs(b.Vel[1]) < w.cfg.RestVertical {
		b.Vel[1] = 0
	}
	// Only a ball that has stopped bouncing comes to rest; a bouncing ball keeps its drift.
	if b.Vel[1] == 0 && vecmath.HorizontalLen(b.Vel) < w.cfg.RestHorizontal {
		b.Vel = vecmath.Vec3{}
	}
}

// resolveBallBall separates two overlapping equal-mass balls and applies the
// restitution impulse along the contact normal.
func (w *World) resolveBallBall(a, b *Ball) {
	r := w.cfg.BallRadius
	delta := b.Pos.Sub(a.Pos)
	distSq := delta.LenSqr()
	minDist := 2 * r
	if distSq >= minDist*minDist {
		return
	}
	n, dist := vecmath.Normalize(delta, vecmath.Up)
	if dist == 0 {
		return
	}

	corr := math32.Max(minDist-dist-w.cfg.PushOutEpsilon, 0) * 0.5
	a.Pos = a.Pos.Sub(n.Mul(corr))
	b.Pos = b.Pos.Add(n.Mul(corr))

	vn := b.Vel.Sub(a.Vel).Dot(n)
	if vn > 0 {
		return
	}
	invM := 1 / w.cfg.BallMass
	j := -(1 + w.cfg.Restitution) * vn / (2 * invM)
	impulse := n.Mul(j)
	a.Vel = a.Vel.Sub(impulse.Mul(invM))
	b.Vel = b.Vel.Add(impulse.Mul(invM))
}

// endFrame ages balls, accumulates spin, records trails and drops balls that left
// the world bounds, compacting in place.
func (w *World) endFrame(dt float32) {
	kept := w.balls[:0]
	for _, b := range w.balls {
		b.Age += dt
		if speed := b.Vel.Len(); speed > 1e-3 {
			b.Spin += w.cfg.SpinFactor * speed * dt / w.cfg.BallRadius
		}
		if w.cfg.BallTrail {
			b.recordTrail(w.cfg.TrailLength)
		}
		if w.outOfBounds(b.Pos) {
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(w.balls); i++ {
		w.balls[i] = nil
	}
	w.balls = kept
}

func (w *World) outOfBounds(p vecmath.Vec3) bool {
	return p[1] < w.cfg.YMin || math32.Abs(p[0]) > w.cfg.BoundsX || math32.Abs(p[2]) > w.cfg.BoundsZ
}
