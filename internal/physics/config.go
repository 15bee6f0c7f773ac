package physics

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"ballmachine/internal/vecmath"
)

// ErrInvalidConfig is returned (wrapped) when a Config cannot drive a world.
var ErrInvalidConfig = errors.New("invalid physics config")

// DefaultWorldScale is the court scale the standard layout is tuned for.
const DefaultWorldScale = 1.6

// Config holds every constant of the ball simulation. Values are copied into the
// World at construction; the World never reads package-level state.
type Config struct {
	WorldScale     float32      `yaml:"world_scale"`
	BallRadius     float32      `yaml:"ball_radius"`
	BallMass       float32      `yaml:"ball_mass"`
	Gravity        vecmath.Vec3 `yaml:"gravity"`
	Restitution    float32      `yaml:"restitution"`
	GroundFriction float32      `yaml:"ground_friction"`
	AirDrag        float32      `yaml:"air_drag"`
	SpinFactor     float32      `yaml:"spin_factor"`

	Substeps  int     `yaml:"substeps"`
	FixedStep float32 `yaml:"fixed_step"`
	MaxSteps  int     `yaml:"max_steps"`

	BoundsX float32 `yaml:"bounds_x"`
	BoundsZ float32 `yaml:"bounds_z"`
	YMin    float32 `yaml:"y_min"`

	PushOutEpsilon float32 `yaml:"push_out_epsilon"`
	RestVertical   float32 `yaml:"rest_vertical"`
	RestHorizontal float32 `yaml:"rest_horizontal"`

	BallTrail   bool `yaml:"ball_trail"`
	TrailLength int  `yaml:"trail_length"`

	Launcher LauncherConfig `yaml:"launcher"`
	MegaBall MegaBallConfig `yaml:"mega_ball"`
}

// LauncherConfig describes the motorized cannon.
type LauncherConfig struct {
	Position vecmath.Vec3 `yaml:"position"`
	Yaw      float32      `yaml:"yaw"`
	Pitch    float32      `yaml:"pitch"`
	PitchMin float32      `yaml:"pitch_min"`
	PitchMax float32      `yaml:"pitch_max"`

	MaxDriveSpeed float32 `yaml:"max_drive_speed"`
	TurnRate      float32 `yaml:"turn_rate"`
	SmoothedDrive bool    `yaml:"smoothed_drive"`
	DriveAccel    float32 `yaml:"drive_accel"`
	CourtHalfX    float32 `yaml:"court_half_x"`
	CourtHalfZ    float32 `yaml:"court_half_z"`

	Speeds       map[string]float32 `yaml:"speeds"`
	DefaultSpeed string             `yaml:"default_speed"`
	ChargeMin    float32            `yaml:"charge_min"`
	ChargeMax    float32            `yaml:"charge_max"`
	ChargeRate   float32            `yaml:"charge_rate"`

	ShotCooldown float32 `yaml:"shot_cooldown"`
	AutoShoot    bool    `yaml:"auto_shoot"`
	ShotInterval float32 `yaml:"shot_interval"`

	MuzzleHeight float32 `yaml:"muzzle_height"`
	BarrelLength float32 `yaml:"barrel_length"`
	LaserSight   bool    `yaml:"laser_sight"`
	LaserLength  float32 `yaml:"laser_length"`
}

// MegaBallConfig describes the wandering hazard ball.
type MegaBallConfig struct {
	Enabled        bool         `yaml:"enabled"`
	Radius         float32      `yaml:"radius"`
	Gravity        vecmath.Vec3 `yaml:"gravity"`
	Restitution    float32      `yaml:"restitution"`
	GroundFriction float32      `yaml:"ground_friction"`
	Lifetime       float32      `yaml:"lifetime"`
	SpawnMin       float32      `yaml:"spawn_min"`
	SpawnMax       float32      `yaml:"spawn_max"`
	SpawnPos       vecmath.Vec3 `yaml:"spawn_pos"`
	SpawnVel       vecmath.Vec3 `yaml:"spawn_vel"`
	LimitX         float32      `yaml:"limit_x"`
	VelocityKeep   float32      `yaml:"velocity_keep"`
	Seed           uint64       `yaml:"seed"`
}

// NewConfig returns the default simulation for world scale s. Lengths scale with s,
// launch speeds with sqrt(s).
func NewConfig(s float32) Config {
	vs := math32.Sqrt(s)
	return Config{
		WorldScale:     s,
		BallRadius:     0.1 * s,
		BallMass:       0.057,
		Gravity:        vecmath.Vec3{0, -9.81, 0},
		Restitution:    0.55,
		GroundFriction: 0.82,
		AirDrag:        0.998,
		SpinFactor:     2.0,
		Substeps:       4,
		FixedStep:      1.0 / 120.0,
		MaxSteps:       3,
		BoundsX:        25 * s,
		BoundsZ:        20 * s,
		YMin:           -2 * s,
		PushOutEpsilon: 1e-4,
		RestVertical:   0.25,
		RestHorizontal: 0.02,
		TrailLength:    8,
		Launcher: LauncherConfig{
			Position:      vecmath.Vec3{0, 0, 3 * s},
			PitchMin:      -0.2,
			PitchMax:      0.6,
			MaxDriveSpeed: 2.5 * s,
			TurnRate:      1.6,
			DriveAccel:    6,
			Speeds: map[string]float32{
				"slow":   10 * vs,
				"medium": 15 * vs,
				"fast":   22 * vs,
			},
			DefaultSpeed: "medium",
			ChargeMin:    8 * vs,
			ChargeMax:    28 * vs,
			ChargeRate:   1.6,
			ShotCooldown: 0.08,
			ShotInterval: 3.0,
			MuzzleHeight: 0.6 * s,
			BarrelLength: 1.1 * s,
			LaserSight:   true,
			LaserLength:  50,
		},
		MegaBall: MegaBallConfig{
			Radius:         1.5,
			Gravity:        vecmath.Vec3{0, -5, 0},
			Restitution:    0.4,
			GroundFriction: 0.95,
			Lifetime:       15,
			SpawnMin:       10,
			SpawnMax:       20,
			SpawnPos:       vecmath.Vec3{-15, 4, -5},
			SpawnVel:       vecmath.Vec3{4, 0, 0},
			LimitX:         20,
			VelocityKeep:   0.1,
			Seed:           1,
		},
	}
}

// DefaultConfig returns NewConfig(DefaultWorldScale).
func DefaultConfig() Config {
	return NewConfig(DefaultWorldScale)
}

// Validate reports the first setting that would make the simulation ill-defined.
func (c Config) Validate() error {
	switch {
	case c.BallRadius <= 0:
		return fmt.Errorf("ball radius %v must be positive: %w", c.BallRadius, ErrInvalidConfig)
	case c.BallMass <= 0:
		return fmt.Errorf("ball mass %v must be positive: %w", c.BallMass, ErrInvalidConfig)
	case c.Substeps <= 0:
		return fmt.Errorf("substeps %d must be positive: %w", c.Substeps, ErrInvalidConfig)
	case c.FixedStep <= 0:
		return fmt.Errorf("fixed step %v must be positive: %w", c.FixedStep, ErrInvalidConfig)
	case c.MaxSteps <= 0:
		return fmt.Errorf("max steps %d must be positive: %w", c.MaxSteps, ErrInvalidConfig)
	case c.BallTrail && c.TrailLength <= 0:
		return fmt.Errorf("trail length %d must be positive: %w", c.TrailLength, ErrInvalidConfig)
	}
	if err := c.Launcher.Validate(); err != nil {
		return err
	}
	return c.MegaBall.Validate()
}

// Validate checks the hazard settings. A disabled hazard is always valid.
func (c MegaBallConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	switch {
	case c.Radius <= 0:
		return fmt.Errorf("mega ball radius %v must be positive: %w", c.Radius, ErrInvalidConfig)
	case c.SpawnMax < c.SpawnMin:
		return fmt.Errorf("mega ball spawn window [%v, %v] is inverted: %w", c.SpawnMin, c.SpawnMax, ErrInvalidConfig)
	}
	return nil
}

// Validate checks the launcher ranges.
func (c LauncherConfig) Validate() error {
	switch {
	case c.PitchMin > c.PitchMax:
		return fmt.Errorf("pitch range [%v, %v] is inverted: %w", c.PitchMin, c.PitchMax, ErrInvalidConfig)
	case c.ChargeMax < c.ChargeMin:
		return fmt.Errorf("charge range [%v, %v] is inverted: %w", c.ChargeMin, c.ChargeMax, ErrInvalidConfig)
	case c.ChargeRate < 0:
		return fmt.Errorf("charge rate %v is negative: %w", c.ChargeRate, ErrInvalidConfig)
	case c.AutoShoot && c.ShotInterval <= 0:
		return fmt.Errorf("shot interval %v must be positive with auto-shoot: %w", c.ShotInterval, ErrInvalidConfig)
	case c.DefaultSpeed != "":
		if _, ok := c.Speeds[c.DefaultSpeed]; !ok {
			return fmt.Errorf("default speed %q is not a named speed: %w", c.DefaultSpeed, ErrInvalidConfig)
		}
	}
	return nil
}
