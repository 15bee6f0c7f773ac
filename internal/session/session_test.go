package session

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"ballmachine/internal/logger"
	"ballmachine/internal/physics"
)

func newTestSession(t *testing.T, difficulty string) *Session {
	t.Helper()
	setup := DefaultSetup()
	setup.Rules.Difficulty = difficulty
	s, err := New(setup, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// tick runs n fixed steps, enough for the launcher cooldown to clear between shots.
func tick(s *Session, n int) {
	step := s.Setup().Physics.FixedStep
	for i := 0; i < n; i++ {
		s.Frame(step)
	}
}

// shoot fires one ball away from the targets.
func shoot(s *Session) bool {
	var fired bool
	s.Control(func(l *physics.Launcher) {
		l.SetYaw(math.Pi)
		fired = l.Shoot() != nil
	})
	tick(s, 12)
	return fired
}

func TestNewRejectsInvalidRules(t *testing.T) {
	setup := DefaultSetup()
	setup.Rules.TargetScore = 0
	if _, err := New(setup, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	setup = DefaultSetup()
	setup.Rules.Difficulty = "nightmare"
	if _, err := New(setup, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected unknown default difficulty to be rejected, got %v", err)
	}

	setup = DefaultSetup()
	setup.Physics.Substeps = 0
	if _, err := New(setup, nil); !errors.Is(err, physics.ErrInvalidConfig) {
		t.Errorf("expected the physics error to surface, got %v", err)
	}
}

func TestDifficultyLoadsMagazine(t *testing.T) {
	easy := newTestSession(t, "easy")
	if easy.BallsLeft() != 40 {
		t.Errorf("expected 40 balls on easy, got %d", easy.BallsLeft())
	}
	hard := newTestSession(t, "hard")
	if hard.BallsLeft() != 10 {
		t.Errorf("expected 10 balls on hard, got %d", hard.BallsLeft())
	}
	if got := easy.Setup().Rules.Difficulties(); len(got) != 2 || got[0] != "easy" || got[1] != "hard" {
		t.Errorf("expected sorted difficulties [easy hard], got %v", got)
	}
}

func TestLastShotWithoutEnoughPointsLoses(t *testing.T) {
	s := newTestSession(t, "hard")
	for i := 0; i < 10; i++ {
		if !shoot(s) {
			t.Fatalf("shot %d refused", i+1)
		}
	}
	if s.BallsLeft() != 0 {
		t.Errorf("expected an empty magazine, got %d", s.BallsLeft())
	}
	if s.State() != Lost {
		t.Fatalf("expected the round lost, got %v", s.State())
	}

	events := s.DrainEvents()
	if len(events) != 11 {
		t.Fatalf("expected 10 shots and a loss, got %d events", len(events))
	}
	if events[9].Kind != EventShot || events[9].Balls != 0 {
		t.Errorf("expected the last shot to report 0 balls, got %+v", events[9])
	}
	if events[10].Kind != EventLose {
		t.Errorf("expected EventLose last, got %+v", events[10])
	}

	if s.Control(func(l *physics.Launcher) { l.Shoot() }) {
		t.Error("expected input to be ignored after the round is lost")
	}
}

func TestReachingTargetScoreWins(t *testing.T) {
	s := newTestSession(t, "easy")
	s.scored(150)
	s.scored(150)
	s.scored(150)
	if s.State() != Playing {
		t.Fatalf("expected still playing at 450, got %v", s.State())
	}
	s.scored(150)
	if s.State() != Won {
		t.Fatalf("expected the round won at 600, got %v", s.State())
	}

	s.scored(50)
	s.shot()
	if s.Score() != 600 || s.BallsLeft() != 40 {
		t.Errorf("expected no changes after the win, got score %d balls %d", s.Score(), s.BallsLeft())
	}

	events := s.DrainEvents()
	last := events[len(events)-1]
	if last.Kind != EventWin || last.Score != 600 {
		t.Errorf("expected EventWin with score 600, got %+v", last)
	}
	if again := s.DrainEvents(); again != nil {
		t.Errorf("expected an empty queue after draining, got %v", again)
	}
}

func TestScoreOnLastBallStillWins(t *testing.T) {
	s := newTestSession(t, "hard")
	s.scored(550)
	for i := 0; i < 9; i++ {
		s.shot()
	}
	s.scored(50)
	if s.State() != Won {
		t.Errorf("expected a win before the last shot, got %v", s.State())
	}
}

func TestRestart(t *testing.T) {
	s := newTestSession(t, "easy")
	shoot(s)
	s.scored(100)

	if err := s.Restart("impossible"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("expected ErrUnknownDifficulty, got %v", err)
	}
	if s.Score() != 100 {
		t.Error("expected a failed restart to leave the round alone")
	}

	if err := s.Restart("hard"); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	v := s.Snapshot()
	if v.Score != 0 || v.BallsLeft != 10 || v.State != Playing || v.Difficulty != "hard" {
		t.Errorf("expected a fresh hard round, got %+v", v)
	}
	if len(v.Balls) != 0 {
		t.Errorf("expected no balls in a fresh world, got %d", len(v.Balls))
	}
	if events := s.DrainEvents(); events != nil {
		t.Errorf("expected restart to clear pending events, got %v", events)
	}
}

func TestReconfigureKeepsDifficulty(t *testing.T) {
	s := newTestSession(t, "hard")
	setup := DefaultSetup()
	setup.Court.Lamps = false
	if err := s.Reconfigure(setup); err != nil {
		t.Fatalf("Reconfigure: %v", err)
	}
	v := s.Snapshot()
	if v.Difficulty != "hard" || len(v.Colliders) != 0 {
		t.Errorf("expected hard without poles, got %s with %d colliders", v.Difficulty, len(v.Colliders))
	}

	bad := DefaultSetup()
	bad.Physics.BallRadius = 0
	if err := s.Reconfigure(bad); err == nil {
		t.Error("expected an invalid setup to be rejected")
	}
}

func TestSnapshot(t *testing.T) {
	s := newTestSession(t, "easy")
	shoot(s)
	v := s.Snapshot()

	if len(v.Colliders) != 6 || len(v.Targets) != 4 {
		t.Errorf("expected 6 poles and 4 targets, got %d and %d", len(v.Colliders), len(v.Targets))
	}
	if len(v.Balls) != 1 {
		t.Fatalf("expected the fired ball, got %d", len(v.Balls))
	}
	if v.BallsLeft != 39 || v.TargetScore != 600 {
		t.Errorf("expected 39 balls and target 600, got %d and %d", v.BallsLeft, v.TargetScore)
	}
	if !v.Launcher.Laser {
		t.Error("expected the laser sight on by default")
	}
	if v.Launcher.SpeedName != "medium" {
		t.Errorf("expected medium speed, got %q", v.Launcher.SpeedName)
	}

	v.Balls[0].Pos = v.Balls[0].Pos.Add(v.Balls[0].Pos)
	if s.Snapshot().Balls[0].Pos == v.Balls[0].Pos {
		t.Error("expected the snapshot to be a copy")
	}
}

func TestSessionLogsRoundEvents(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)
	s, err := New(DefaultSetup(), log)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.scored(150)
	out := buf.String()
	if !strings.Contains(out, "round started") || !strings.Contains(out, "points=150") {
		t.Errorf("expected round start and hit in the log, got %q", out)
	}
}

func TestStateString(t *testing.T) {
	if Playing.String() != "playing" || Won.String() != "won" || Lost.String() != "lost" {
		t.Error("unexpected state names")
	}
}

func TestLosingHaltsLauncher(t *testing.T) {
	s := newTestSession(t, "hard")
	s.Control(func(l *physics.Launcher) {
		l.DriveForward(1)
		l.DriveTurn(0.5)
	})
	for i := 0; i < 10; i++ {
		shoot(s)
	}
	if s.State() != Lost {
		t.Fatalf("expected the round lost, got %v", s.State())
	}

	before := s.Snapshot().Launcher
	tick(s, 600)
	after := s.Snapshot().Launcher
	if after.Position != before.Position || after.Heading != before.Heading {
		t.Errorf("expected the launcher parked at %v, got %v", before.Position, after.Position)
	}
	if after.Speed != 0 {
		t.Errorf("expected zero drive speed, got %v", after.Speed)
	}
}

func TestWinningCancelsAutoFireAndCharge(t *testing.T) {
	s := newTestSession(t, "easy")
	s.Control(func(l *physics.Launcher) {
		l.SetAutoShoot(true)
		l.BeginCharge()
	})
	s.scored(600)
	if s.State() != Won {
		t.Fatalf("expected the round won, got %v", s.State())
	}

	tick(s, 600)
	v := s.Snapshot().Launcher
	if v.AutoShoot || v.Charging {
		t.Errorf("expected auto-fire and charge cancelled, got auto=%v charging=%v", v.AutoShoot, v.Charging)
	}
	if n := s.world.Launcher().Magazine(); n != 40 {
		t.Errorf("expected the magazine untouched at 40, got %d", n)
	}
	if n := len(s.world.Balls()); n != 0 {
		t.Errorf("expected no balls fired after the win, got %d", n)
	}
}
