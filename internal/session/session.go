// Package session runs one game: it owns the physics world and the target engine,
// keeps score and ammo, and decides when the round is won or lost.
package session

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"ballmachine/internal/court"
	"ballmachine/internal/logger"
	"ballmachine/internal/physics"
	"ballmachine/internal/targets"
)

var (
	ErrInvalidConfig     = errors.New("invalid session config")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// Config holds the round rules.
type Config struct {
	TargetScore int            `yaml:"target_score"`
	Balls       map[string]int `yaml:"balls"`
	Difficulty  string         `yaml:"difficulty"`
}

// DefaultConfig returns the standard rules: 600 points to win, 40 balls on easy and
// 10 on hard.
func DefaultConfig() Config {
	return Config{
		TargetScore: 600,
		Balls:       map[string]int{"easy": 40, "hard": 10},
		Difficulty:  "easy",
	}
}

// Validate reports the first problem found in c.
func (c Config) Validate() error {
	if c.TargetScore <= 0 {
		return fmt.Errorf("target score %d must be positive: %w", c.TargetScore, ErrInvalidConfig)
	}
	if len(c.Balls) == 0 {
		return fmt.Errorf("no difficulties defined: %w", ErrInvalidConfig)
	}
	for name, n := range c.Balls {
		if n <= 0 {
			return fmt.Errorf("difficulty %q has %d balls: %w", name, n, ErrInvalidConfig)
		}
	}
	if _, ok := c.Balls[c.Difficulty]; !ok {
		return fmt.Errorf("default difficulty %q: %w", c.Difficulty, ErrInvalidConfig)
	}
	return nil
}

// Difficulties returns the difficulty names in alphabetical order.
func (c Config) Difficulties() []string {
	names := make([]string, 0, len(c.Balls))
	for name := range c.Balls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Setup is everything needed to build a round.
type Setup struct {
	Physics physics.Config `yaml:"physics"`
	Targets targets.Config `yaml:"targets"`
	Court   court.Options  `yaml:"court"`
	Rules   Config         `yaml:"rules"`
}

// DefaultSetup returns the standard court with default physics and rules.
func DefaultSetup() Setup {
	return Setup{
		Physics: physics.DefaultConfig(),
		Targets: targets.DefaultConfig(),
		Court:   court.DefaultOptions(),
		Rules:   DefaultConfig(),
	}
}

// Validate checks every part of s.
func (s Setup) Validate() error {
	if err := s.Physics.Validate(); err != nil {
		return err
	}
	if err := s.Targets.Validate(); err != nil {
		return err
	}
	return s.Rules.Validate()
}

// State of a round.
type State int

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// EventKind tags an Event.
type EventKind int

const (
	EventShot EventKind = iota
	EventScore
	EventWin
	EventLose
)

// Event is something the presentation should react to (a sound, a banner).
type Event struct {
	Kind   EventKind
	Points int
	Score  int
	Balls  int
}

// Session is a running round. All methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	setup      Setup
	difficulty string
	log        *logger.Logger

	world  *physics.World
	engine *targets.Engine

	score     int
	ballsLeft int
	state     State
	events    []Event
}

// New validates setup and starts a round at the setup's default difficulty. log may
// be nil.
func New(setup Setup, log *logger.Logger) (*Session, error) {
	if err := setup.Validate(); err != nil {
		return nil, err
	}
	s := &Session{setup: setup, log: log}
	if err := s.restart(setup.Rules.Difficulty); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart begins a new round at difficulty. The world, the targets and the score
// are rebuilt from the setup.
func (s *Session) Restart(difficulty string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restart(difficulty)
}

// Reconfigure swaps the setup and restarts at the current difficulty, or at the new
// setup's default one if the current name no longer exists.
func (s *Session) Reconfigure(setup Setup) error {
	if err := setup.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.setup
	s.setup = setup
	difficulty := s.difficulty
	if _, ok := setup.Rules.Balls[difficulty]; !ok {
		difficulty = setup.Rules.Difficulty
	}
	if err := s.restart(difficulty); err != nil {
		s.setup = old
		return err
	}
	return nil
}

func (s *Session) restart(difficulty string) error {
	balls, ok := s.setup.Rules.Balls[difficulty]
	if !ok {
		return fmt.Errorf("%q: %w", difficulty, ErrUnknownDifficulty)
	}
	world, err := physics.NewWorld(s.setup.Physics, rules{s})
	if err != nil {
		return err
	}
	engine, err := targets.NewEngine(s.setup.Targets, rules{s})
	if err != nil {
		return err
	}
	court.Standard(s.setup.Court).Install(world, engine)
	world.Launcher().Load(balls)

	s.world = world
	s.engine = engine
	s.difficulty = difficulty
	s.score = 0
	s.ballsLeft = balls
	s.state = Playing
	s.events = s.events[:0]
	s.logInfo("round started", "difficulty", difficulty, "balls", balls, "target", s.setup.Rules.TargetScore)
	return nil
}

// rules receives shots from the world and hits from the target engine. Both arrive
// while Frame or Control holds the session lock.
type rules struct{ s *Session }

func (r rules) OnShoot() {
	r.s.shot()
}

func (r rules) OnScore(points int) {
	r.s.scored(points)
}

func (s *Session) shot() {
	if s.state != Playing {
		return
	}
	if s.ballsLeft > 0 {
		s.ballsLeft--
	}
	s.events = append(s.events, Event{Kind: EventShot, Score: s.score, Balls: s.ballsLeft})
	s.logDebug("shot", "balls", s.ballsLeft)
	if s.ballsLeft == 0 && s.score < s.setup.Rules.TargetScore {
		s.state = Lost
		s.world.Launcher().Halt()
		s.events = append(s.events, Event{Kind: EventLose, Score: s.score})
		s.logInfo("round lost", "score", s.score)
	}
}

func (s *Session) scored(points int) {
	if s.state != Playing {
		return
	}
	s.score += points
	s.events = append(s.events, Event{Kind: EventScore, Points: points, Score: s.score, Balls: s.ballsLeft})
	s.logInfo("target hit", "points", points, "score", s.score)
	if s.score >= s.setup.Rules.TargetScore {
		s.state = Won
		s.world.Launcher().Halt()
		s.events = append(s.events, Event{Kind: EventWin, Score: s.score, Balls: s.ballsLeft})
		s.logInfo("round won", "score", s.score, "balls", s.ballsLeft)
	}
}

// Frame advances the round by dt seconds: physics first, then the target pass.
// Balls keep flying after the round ends, but nothing more is scored and the launcher
// stays halted.
func (s *Session) Frame(dt float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.world.Update(dt)
	s.engine.Update(dt, s.world.Balls(), s.setup.Physics.BallRadius)
}

// Control runs fn against the launcher under the session lock. Input is dropped once
// the round is over; the return value reports whether fn ran.
func (s *Session) Control(fn func(l *physics.Launcher)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Playing {
		return false
	}
	fn(s.world.Launcher())
	return true
}

// DrainEvents returns the queued events and empties the queue.
func (s *Session) DrainEvents() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == 0 {
		return nil
	}
	out := make([]Event, len(s.events))
	copy(out, s.events)
	s.events = s.events[:0]
	return out
}

// Score returns the current score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// BallsLeft returns the shots remaining this round.
func (s *Session) BallsLeft() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ballsLeft
}

// State returns the round state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Difficulty returns the difficulty the round was started with.
func (s *Session) Difficulty() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.difficulty
}

// Setup returns the setup the round was built from.
func (s *Session) Setup() Setup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setup
}

func (s *Session) logInfo(msg string, keyvals ...any) {
	if s.log != nil {
		s.log.Info(msg, keyvals...)
	}
}

func (s *Session) logDebug(msg string, keyvals ...any) {
	if s.log != nil {
		s.log.Debug(msg, keyvals...)
	}
}
