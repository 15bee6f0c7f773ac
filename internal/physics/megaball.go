package physics

import (
	"math/rand/v2"

	"ballmachine/internal/vecmath"
)

// MegaBall is the large hazard ball that periodically rolls across the court and
// knocks player balls away.
type MegaBall struct {
	Pos    vecmath.Vec3
	Vel    vecmath.Vec3
	Age    float32
	Radius float32
}

type megaSpawner struct {
	cfg    MegaBallConfig
	rng    *rand.Rand
	active *MegaBall
	timer  float32
	next   float32
}

func newMegaSpawner(cfg MegaBallConfig) *megaSpawner {
	m := &megaSpawner{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
	m.next = m.nextDelay()
	return m
}

func (m *megaSpawner) nextDelay() float32 {
	return m.cfg.SpawnMin + m.rng.Float32()*(m.cfg.SpawnMax-m.cfg.SpawnMin)
}

// update runs one step: the spawn timer only runs while the court is clear.
func (m *megaSpawner) update(dt float32, balls []*Ball, ballRadius float32) {
	if m.active == nil {
		m.timer += dt
		if m.timer > m.next {
			m.active = &MegaBall{Pos: m.cfg.SpawnPos, Vel: m.cfg.SpawnVel, Radius: m.cfg.Radius}
			m.timer = 0
			m.next = m.nextDelay()
		}
		return
	}

	mb := m.active
	mb.Age += dt
	mb.Vel = mb.Vel.Add(m.cfg.Gravity.Mul(dt))
	mb.Pos = mb.Pos.Add(mb.Vel.Mul(dt))
	if mb.Pos[1] < mb.Radius {
		mb.Pos[1] = mb.Radius
		mb.Vel[1] *= -m.cfg.Restitution
		mb.Vel[0] *= m.cfg.GroundFriction
		mb.Vel[2] *= m.cfg.GroundFriction
	}

	minDist := mb.Radius + ballRadius
	for _, b := range balls {
		if mb.Pos.Sub(b.Pos).LenSqr() >= minDist*minDist {
			continue
		}
		kept := mb.Vel.Mul(m.cfg.VelocityKeep)
		mb.Vel = b.Vel
		b.Vel = kept
	}

	if mb.Age > m.cfg.Lifetime || mb.Pos[0] > m.cfg.LimitX || mb.Pos[0] < -m.cfg.LimitX {
		m.active = nil
	}
}

func (m *megaSpawner) reset() {
	m.active = nil
	m.timer = 0
	m.next = m.nextDelay()
}
