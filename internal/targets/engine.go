package targets

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"ballmachine/internal/physics"
	"ballmachine/internal/vecmath"
)

//go:generate go tool mockgen -destination=./mocks/score_listener_mock.go -package=mocks . ScoreListener

// ScoreListener receives the points of every scoring hit.
type ScoreListener interface {
	OnScore(points int)
}

// ErrInvalidConfig is returned (wrapped) for unusable target settings.
var ErrInvalidConfig = errors.New("invalid target config")

// Config holds the hit response constants shared by every target.
type Config struct {
	BallRestitution    float32 `yaml:"ball_restitution"`
	DefaultRestitution float32 `yaml:"default_restitution"`
	DefaultFriction    float32 `yaml:"default_friction"`
	HitCooldown        float32 `yaml:"hit_cooldown"`
	// PushOut is how far (in seconds of the new velocity) a bounced ball is moved
	// off the surface.
	PushOut float32 `yaml:"push_out"`
	// AdvanceRemainder moves the bounced ball along its new velocity for the part of
	// the frame left after the contact.
	AdvanceRemainder bool `yaml:"advance_remainder"`
}

// DefaultConfig returns the standard hit response.
func DefaultConfig() Config {
	return Config{
		BallRestitution:    0.6,
		DefaultRestitution: 0.55,
		DefaultFriction:    0.15,
		HitCooldown:        0.2,
		PushOut:            1e-4,
	}
}

// Validate checks the ranges of the response constants.
func (c Config) Validate() error {
	switch {
	case c.BallRestitution < 0 || c.BallRestitution > 1:
		return fmt.Errorf("ball restitution %v outside [0, 1]: %w", c.BallRestitution, ErrInvalidConfig)
	case c.DefaultRestitution < 0 || c.DefaultRestitution > 1:
		return fmt.Errorf("default restitution %v outside [0, 1]: %w", c.DefaultRestitution, ErrInvalidConfig)
	case c.DefaultFriction < 0:
		return fmt.Errorf("default friction %v is negative: %w", c.DefaultFriction, ErrInvalidConfig)
	case c.HitCooldown < 0:
		return fmt.Errorf("hit cooldown %v is negative: %w", c.HitCooldown, ErrInvalidConfig)
	case c.PushOut < 0:
		return fmt.Errorf("push out %v is negative: %w", c.PushOut, ErrInvalidConfig)
	}
	return nil
}

// Engine owns the targets, moves them and resolves ball hits.
type Engine struct {
	cfg      Config
	listener ScoreListener
	targets  []*Target
}

// NewEngine validates cfg and returns an engine with no targets. listener may be nil.
func NewEngine(cfg Config, listener ScoreListener) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, listener: listener}, nil
}

// Config returns the engine's response constants.
func (e *Engine) Config() Config {
	return e.cfg
}

// Add registers t. Targets are tested in registration order. Motion anchors are
// taken from the current position; a nil OnHit awards t.Score.
func (e *Engine) Add(t *Target) {
	switch t.Kind {
	case Oscillating:
		t.Motion.StartX = t.Transform.Position[0]
		if t.Motion.Direction == 0 {
			t.Motion.Direction = 1
		}
	case Orbiting:
		t.Motion.Center = t.Transform.Position
	}
	if t.OnHit == nil {
		t.OnHit = AwardScore
	}
	t.refresh()
	e.targets = append(e.targets, t)
}

// Targets returns the registered targets.
func (e *Engine) Targets() []*Target {
	return e.targets
}

// Award forwards points to the listener.
func (e *Engine) Award(points int) {
	if e.listener != nil {
		e.listener.OnScore(points)
	}
}

// AwardScore is the default HitFunc: it awards the target's score, if any.
func AwardScore(t *Target, _ *physics.Ball, e *Engine) {
	if t.Score > 0 {
		e.Award(t.Score)
	}
}

// Update ticks cooldowns, moves the targets and resolves this frame's hits for
// balls of the given radius. Each ball registers at most one hit per frame. It
// returns the number of hits.
func (e *Engine) Update(dt float32, balls []*physics.Ball, radius float32) int {
	for _, t := range e.targets {
		t.Cooldown = math32.Max(0, t.Cooldown-dt)
		t.move(dt)
		t.refresh()
	}

	hits := 0
	for _, b := range balls {
		if b == nil {
			continue
		}
		for _, t := range e.targets {
			if t.Cooldown > 0 {
				continue
			}
			c, ok := sweep(t, b.PrevPos, b.Pos, radius)
			if !ok {
				continue
			}
			e.respond(t, b, c, dt)
			hits++
			break
		}
	}
	return hits
}

func (e *Engine) respond(t *Target, b *physics.Ball, c contact, dt float32) {
	s := t.surface(e.cfg)
	restitution := vecmath.Clamp((e.cfg.BallRestitution+s.Restitution)*0.5, 0, 1)
	keep := math32.Max(0, 1-s.Friction)

	b.Vel = vecmath.Reflect(b.Vel, c.normal, restitution, keep)
	b.Pos = c.point.Add(b.Vel.Mul(e.cfg.PushOut))
	if e.cfg.AdvanceRemainder {
		b.Pos = b.Pos.Add(b.Vel.Mul((1 - c.t) * dt))
	}

	t.Cooldown = e.cfg.HitCooldown
	t.Hits++
	t.OnHit(t, b, e)
}
