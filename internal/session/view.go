package session

import (
	"ballmachine/internal/targets"
	"ballmachine/internal/vecmath"
)

// View is a copy of everything the renderers draw, taken under the session lock so
// drawing never races a frame.
type View struct {
	State       State
	Difficulty  string
	Score       int
	TargetScore int
	BallsLeft   int

	Launcher   LauncherView
	BallRadius float32
	Balls      []BallView
	Targets    []TargetView
	Colliders  []vecmath.AABB
	Mega       *MegaView
}

// LauncherView is the cannon pose and charge state.
type LauncherView struct {
	Position    vecmath.Vec3
	Heading     float32
	Yaw         float32
	Pitch       float32
	Pivot       vecmath.Vec3
	Tip         vecmath.Vec3
	Dir         vecmath.Vec3
	Speed       float32
	MuzzleSpeed float32
	SpeedName   string
	Charge      float32
	Charging    bool
	AutoShoot   bool

	Laser              bool
	LaserFrom, LaserTo vecmath.Vec3
}

type BallView struct {
	Pos   vecmath.Vec3
	Spin  float32
	Trail []vecmath.Vec3
}

type TargetView struct {
	Name        string
	Kind        targets.Kind
	Shape       targets.Shape
	World       vecmath.Mat4
	HalfExtents vecmath.Vec3
	Score       int
	Cooldown    float32
	Hits        int
}

type MegaView struct {
	Pos    vecmath.Vec3
	Radius float32
}

// Snapshot copies the current round.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		State:       s.state,
		Difficulty:  s.difficulty,
		Score:       s.score,
		TargetScore: s.setup.Rules.TargetScore,
		BallsLeft:   s.ballsLeft,
		BallRadius:  s.setup.Physics.BallRadius,
	}

	l := s.world.Launcher()
	tip, dir := l.Muzzle()
	charge, charging := l.Charge()
	from, to, laser := l.AimLine()
	v.Launcher = LauncherView{
		Position:    l.Position,
		Heading:     l.Heading(),
		Yaw:         l.Yaw(),
		Pitch:       l.Pitch(),
		Pivot:       l.Position.Add(vecmath.Vec3{0, s.setup.Physics.Launcher.MuzzleHeight, 0}),
		Tip:         tip,
		Dir:         dir,
		Speed:       l.Speed(),
		MuzzleSpeed: l.MuzzleSpeed(),
		SpeedName:   l.SpeedName(),
		Charge:      charge,
		Charging:    charging,
		AutoShoot:   l.AutoShoot(),
		Laser:       laser,
		LaserFrom:   from,
		LaserTo:     to,
	}

	balls := s.world.Balls()
	v.Balls = make([]BallView, 0, len(balls))
	for _, b := range balls {
		v.Balls = append(v.Balls, BallView{Pos: b.Pos, Spin: b.Spin, Trail: b.Trail()})
	}

	ts := s.engine.Targets()
	v.Targets = make([]TargetView, 0, len(ts))
	for _, t := range ts {
		v.Targets = append(v.Targets, TargetView{
			Name:        t.Name,
			Kind:        t.Kind,
			Shape:       t.Shape,
			World:       t.World(),
			HalfExtents: t.HalfExtents,
			Score:       t.Score,
			Cooldown:    t.Cooldown,
			Hits:        t.Hits,
		})
	}

	v.Colliders = append([]vecmath.AABB(nil), s.world.Colliders()...)

	if m := s.world.MegaBall(); m != nil {
		v.Mega = &MegaView{Pos: m.Pos, Radius: m.Radius}
	}
	return v
}
