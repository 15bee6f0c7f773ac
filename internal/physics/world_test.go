package physics

import (
	"errors"
	"math"
	"testing"

	"ballmachine/internal/vecmath"
)

func newTestWorld(t *testing.T, mutate func(*Config)) *World {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	w, err := NewWorld(cfg, nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func approx(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BallRadius = -1
	if _, err := NewWorld(cfg, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Launcher.ChargeMax = cfg.Launcher.ChargeMin - 1
	if _, err := NewWorld(cfg, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for inverted charge range, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Substeps = 0
	if _, err := NewWorld(cfg, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for zero substeps, got %v", err)
	}
}

func TestGroundBounceScalesVerticalSpeedByRestitution(t *testing.T) {
	w := newTestWorld(t, nil)
	r := w.cfg.BallRadius
	for _, vy := range []float32{-1, -3.5, -12} {
		b := &Ball{Pos: vecmath.Vec3{0, r - 0.01, 0}, Vel: vecmath.Vec3{0, vy, 0}}
		w.collideGround(b)
		want := -vy * w.cfg.Restitution
		if !approx(b.Vel[1], want, 1e-6) {
			t.Errorf("vy=%v: expected bounce speed %v, got %v", vy, want, b.Vel[1])
		}
		if b.Vel[1] > -vy {
			t.Errorf("vy=%v: bounce gained energy (%v)", vy, b.Vel[1])
		}
		if b.Pos[1] != r {
			t.Errorf("expected ball clamped to y=%v, got %v", r, b.Pos[1])
		}
	}
}

func TestGroundBounceKillsMicroBounce(t *testing.T) {
	w := newTestWorld(t, nil)
	r := w.cfg.BallRadius
	b := &Ball{Pos: vecmath.Vec3{0, r - 0.001, 0}, Vel: vecmath.Vec3{1, -0.3, 0}}
	w.collideGround(b)
	if b.Vel[1] != 0 {
		t.Errorf("expected vertical speed zeroed, got %v", b.Vel[1])
	}
	if !approx(b.Vel[0], 0.82, 1e-6) {
		t.Errorf("expected horizontal speed scaled by friction, got %v", b.Vel[0])
	}
}

func TestRestingBallSettles(t *testing.T) {
	w := newTestWorld(t, nil)
	b := w.Spawn(vecmath.Vec3{0, 1, 0}, vecmath.Vec3{0.5, 0, 0})

	settled := false
	for i := 0; i < 120*10; i++ {
		w.Update(w.cfg.FixedStep)
		if b.Vel == (vecmath.Vec3{}) {
			settled = true
			break
		}
	}
	if !settled {
		t.Fatalf("ball did not come to rest, vel=%v pos=%v", b.Vel, b.Pos)
	}
	if b.Pos[1] != w.cfg.BallRadius {
		t.Errorf("expected resting height %v, got %v", w.cfg.BallRadius, b.Pos[1])
	}

	for i := 0; i < 60; i++ {
		w.Update(w.cfg.FixedStep)
	}
	if b.Vel != (vecmath.Vec3{}) {
		t.Errorf("expected ball to stay at rest, got vel %v", b.Vel)
	}
}

func TestColliderPushOutAndReflect(t *testing.T) {
	w := newTestWorld(t, nil)
	box := vecmath.NewAABB(vecmath.Vec3{0, 1, 0}, vecmath.Vec3{1, 2, 1})
	w.AddCollider(box)

	r := w.cfg.BallRadius
	b := &Ball{Pos: vecmath.Vec3{0.6, 1, 0}, Vel: vecmath.Vec3{-3, 0, 0.5}}
	w.colliders.collideSphere(&b.Pos, &b.Vel, r, w.cfg.Restitution, w.cfg.GroundFriction, w.cfg.PushOutEpsilon)

	if d := box.Distance(b.Pos); d < r-1e-5 {
		t.Errorf("expected ball outside the box by at least %v, got %v", r, d)
	}
	if !approx(b.Vel[0], 3*0.55, 1e-5) {
		t.Errorf("expected normal speed reflected to %v, got %v", 3*0.55, b.Vel[0])
	}
	if !approx(b.Vel[2], 0.5*0.82, 1e-5) {
		t.Errorf("expected tangential speed damped to %v, got %v", 0.5*0.82, b.Vel[2])
	}
}

func TestColliderLeavesSeparatingBallVelocity(t *testing.T) {
	w := newTestWorld(t, nil)
	box := vecmath.NewAABB(vecmath.Vec3{0, 1, 0}, vecmath.Vec3{1, 2, 1})
	w.AddCollider(box)

	b := &Ball{Pos: vecmath.Vec3{0.6, 1, 0}, Vel: vecmath.Vec3{2, 0, 0}}
	w.colliders.collideSphere(&b.Pos, &b.Vel, w.cfg.BallRadius, w.cfg.Restitution, w.cfg.GroundFriction, w.cfg.PushOutEpsilon)
	if b.Vel != (vecmath.Vec3{2, 0, 0}) {
		t.Errorf("expected separating velocity untouched, got %v", b.Vel)
	}
}

func TestColliderDampsSlidingContact(t *testing.T) {
	w := newTestWorld(t, nil)
	box := vecmath.NewAABB(vecmath.Vec3{0, 1, 0}, vecmath.Vec3{1, 2, 1})
	w.AddCollider(box)

	b := &Ball{Pos: vecmath.Vec3{0.6, 1, 0}, Vel: vecmath.Vec3{0, 0, 0.5}}
	w.colliders.collideSphere(&b.Pos, &b.Vel, w.cfg.BallRadius, w.cfg.Restitution, w.cfg.GroundFriction, w.cfg.PushOutEpsilon)
	if !approx(b.Vel[2], 0.5*0.82, 1e-5) {
		t.Errorf("expected sliding speed damped to %v, got %v", 0.5*0.82, b.Vel[2])
	}
	if b.Vel[0] != 0 {
		t.Errorf("expected no normal speed, got %v", b.Vel[0])
	}
}

func TestGroundRestOnlyAfterBouncingStops(t *testing.T) {
	w := newTestWorld(t, nil)
	r := w.cfg.BallRadius

	bouncing := &Ball{Pos: vecmath.Vec3{0, r - 0.01, 0}, Vel: vecmath.Vec3{0.01, -2, 0}}
	w.collideGround(bouncing)
	if !approx(bouncing.Vel[1], 1.1, 1e-5) {
		t.Errorf("expected rebound speed 1.1, got %v", bouncing.Vel[1])
	}
	if !approx(bouncing.Vel[0], 0.0082, 1e-6) {
		t.Errorf("expected a bouncing ball to keep its drift, got %v", bouncing.Vel[0])
	}

	settling := &Ball{Pos: vecmath.Vec3{0, r - 0.01, 0}, Vel: vecmath.Vec3{0.01, -0.3, 0}}
	w.collideGround(settling)
	if settling.Vel != (vecmath.Vec3{}) {
		t.Errorf("expected a settled ball at rest, got %v", settling.Vel)
	}
}

func TestBallNeverPenetratesLampPole(t *testing.T) {
	w := newTestWorld(t, func(c *Config) { c.Gravity = vecmath.Vec3{} })
	pole := vecmath.AABB{Min: vecmath.Vec3{-0.1, 0, -0.1}, Max: vecmath.Vec3{0.1, 7.5, 0.1}}
	w.AddCollider(pole)
	r := w.cfg.BallRadius

	b := w.Spawn(vecmath.Vec3{-3, 2, 0.05}, vecmath.Vec3{8, 0, 0})
	for i := 0; i < 120; i++ {
		w.Update(w.cfg.FixedStep)
		if d := pole.Distance(b.Pos); d < r-1e-3 {
			t.Fatalf("frame %d: ball penetrated the pole, distance %v", i, d)
		}
	}
	if b.Vel[0] >= 0 {
		t.Errorf("expected the ball to bounce back off the pole, vel %v", b.Vel)
	}
}

func TestBallBallSeparationAndImpulse(t *testing.T) {
	w := newTestWorld(t, nil)
	r := w.cfg.BallRadius
	a := &Ball{Pos: vecmath.Vec3{0, 1, 0}, Vel: vecmath.Vec3{1, 0, 0}}
	b := &Ball{Pos: vecmath.Vec3{0.1, 1, 0}, Vel: vecmath.Vec3{-1, 0, 0}}

	w.resolveBallBall(a, b)

	if d := b.Pos.Sub(a.Pos).Len(); d < 2*r-2e-4 {
		t.Errorf("expected separation >= %v, got %v", 2*r, d)
	}
	if !approx(a.Vel[0], -0.55, 1e-5) || !approx(b.Vel[0], 0.55, 1e-5) {
		t.Errorf("expected velocities -0.55/0.55, got %v/%v", a.Vel[0], b.Vel[0])
	}
}

func TestBallBallSeparatingPairKeepsVelocity(t *testing.T) {
	w := newTestWorld(t, nil)
	a := &Ball{Pos: vecmath.Vec3{0, 1, 0}, Vel: vecmath.Vec3{-1, 0, 0}}
	b := &Ball{Pos: vecmath.Vec3{0.1, 1, 0}, Vel: vecmath.Vec3{1, 0, 0}}

	w.resolveBallBall(a, b)
	if a.Vel[0] != -1 || b.Vel[0] != 1 {
		t.Errorf("expected velocities untouched, got %v/%v", a.Vel, b.Vel)
	}
}

func TestBallBallCoincidentCentersAreSkipped(t *testing.T) {
	w := newTestWorld(t, nil)
	a := &Ball{Pos: vecmath.Vec3{0, 1, 0}, Vel: vecmath.Vec3{1, 0, 0}}
	b := &Ball{Pos: vecmath.Vec3{0, 1, 0}}
	w.resolveBallBall(a, b)
	if a.Pos != b.Pos || a.Vel != (vecmath.Vec3{1, 0, 0}) {
		t.Errorf("expected coincident pair left untouched, got %v %v", a, b)
	}
}

func TestOutOfBoundsBallsAreRemoved(t *testing.T) {
	w := newTestWorld(t, nil)
	inside := w.Spawn(vecmath.Vec3{0, 1, 0}, vecmath.Vec3{})
	w.Spawn(vecmath.Vec3{0, 1, w.cfg.BoundsZ + 1}, vecmath.Vec3{})
	w.Spawn(vecmath.Vec3{-w.cfg.BoundsX - 1, 1, 0}, vecmath.Vec3{})

	w.Update(w.cfg.FixedStep)

	balls := w.Balls()
	if len(balls) != 1 || balls[0] != inside {
		t.Errorf("expected only the in-bounds ball to survive, got %d balls", len(balls))
	}
}

func TestUpdateSnapshotsPreviousPosition(t *testing.T) {
	w := newTestWorld(t, func(c *Config) { c.Gravity = vecmath.Vec3{} })
	b := w.Spawn(vecmath.Vec3{0, 1, 0}, vecmath.Vec3{0, 0, -10})

	w.Update(w.cfg.FixedStep)
	first := b.Pos
	w.Update(2 * w.cfg.FixedStep)

	if b.PrevPos != first {
		t.Errorf("expected PrevPos %v, got %v", first, b.PrevPos)
	}
	if b.Pos[2] >= first[2] {
		t.Errorf("expected ball to keep moving along -Z, %v -> %v", first, b.Pos)
	}
}

func TestBallAgeAndSpinAccumulate(t *testing.T) {
	w := newTestWorld(t, func(c *Config) { c.Gravity = vecmath.Vec3{} })
	b := w.Spawn(vecmath.Vec3{0, 1, 0}, vecmath.Vec3{0, 0, -5})
	for i := 0; i < 10; i++ {
		w.Update(w.cfg.FixedStep)
	}
	if !approx(b.Age, 10*w.cfg.FixedStep, 1e-5) {
		t.Errorf("expected age %v, got %v", 10*w.cfg.FixedStep, b.Age)
	}
	if b.Spin <= 0 {
		t.Errorf("expected spin to accumulate, got %v", b.Spin)
	}
}

func TestTrailKeepsLastPositions(t *testing.T) {
	w := newTestWorld(t, func(c *Config) {
		c.BallTrail = true
		c.TrailLength = 3
	})
	b := w.Spawn(vecmath.Vec3{0, 2, 0}, vecmath.Vec3{0, 0, -5})
	for i := 0; i < 5; i++ {
		w.Update(w.cfg.FixedStep)
	}
	trail := b.Trail()
	if len(trail) != 3 {
		t.Fatalf("expected 3 trail points, got %d", len(trail))
	}
	if trail[2] != b.Pos {
		t.Errorf("expected newest trail point %v, got %v", b.Pos, trail[2])
	}
	if trail[0][2] <= trail[2][2] {
		t.Errorf("expected oldest point first, got %v", trail)
	}
}

func TestTrailDisabledRecordsNothing(t *testing.T) {
	w := newTestWorld(t, nil)
	b := w.Spawn(vecmath.Vec3{0, 2, 0}, vecmath.Vec3{0, 0, -5})
	w.Update(w.cfg.FixedStep)
	if n := len(b.Trail()); n != 0 {
		t.Errorf("expected no trail, got %d points", n)
	}
}

func TestClearCollidersAndBalls(t *testing.T) {
	w := newTestWorld(t, nil)
	w.AddCollider(vecmath.NewAABB(vecmath.Vec3{}, vecmath.Vec3{1, 1, 1}))
	w.Spawn(vecmath.Vec3{0, 1, 0}, vecmath.Vec3{})
	w.ClearColliders()
	w.ClearBalls()
	if len(w.Colliders()) != 0 || len(w.Balls()) != 0 {
		t.Errorf("expected empty world, got %d colliders %d balls", len(w.Colliders()), len(w.Balls()))
	}
}
