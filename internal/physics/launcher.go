package physics

import (
	"github.com/chewxy/math32"

	"ballmachine/internal/vecmath"
)

// Launcher is the motorized ball cannon. It drives on the court, aims with an
// independent yaw/pitch head, and spawns balls into its World.
type Launcher struct {
	cfg   LauncherConfig
	world *World

	Position vecmath.Vec3
	heading  float32
	yaw      float32
	pitch    float32

	forward  float32
	turn     float32
	velocity float32

	muzzleSpeed float32
	speedName   string

	charging bool
	charge   float32

	cooldown  float32
	magazine  int
	autoShoot bool
	shotAcc   float32
}

func newLauncher(cfg LauncherConfig, w *World) *Launcher {
	l := &Launcher{
		cfg:       cfg,
		world:     w,
		Position:  cfg.Position,
		heading:   cfg.Yaw,
		autoShoot: cfg.AutoShoot,
	}
	l.SetPitch(cfg.Pitch)
	if !l.SetSpeed(cfg.DefaultSpeed) {
		l.muzzleSpeed = cfg.ChargeMin
	}
	return l
}

// DriveForward sets the throttle, clamped to [-1, 1].
func (l *Launcher) DriveForward(v float32) {
	l.forward = vecmath.Clamp(v, -1, 1)
}

// DriveTurn sets the steering input, clamped to [-1, 1].
func (l *Launcher) DriveTurn(v float32) {
	l.turn = vecmath.Clamp(v, -1, 1)
}

// SetPitch sets the barrel elevation, clamped to the configured range.
func (l *Launcher) SetPitch(rad float32) {
	l.pitch = vecmath.Clamp(rad, l.cfg.PitchMin, l.cfg.PitchMax)
}

// ChangePitch adds delta to the barrel elevation.
func (l *Launcher) ChangePitch(delta float32) {
	l.SetPitch(l.pitch + delta)
}

// SetYaw sets the head rotation relative to the chassis. Unbounded.
func (l *Launcher) SetYaw(rad float32) {
	l.yaw = rad
}

// ChangeYaw adds delta to the head rotation.
func (l *Launcher) ChangeYaw(delta float32) {
	l.SetYaw(l.yaw + delta)
}

// SetSpeed selects a named muzzle speed. Unknown names leave the speed unchanged.
func (l *Launcher) SetSpeed(name string) bool {
	v, ok := l.cfg.Speeds[name]
	if !ok {
		return false
	}
	l.muzzleSpeed = v
	l.speedName = name
	return true
}

// SetAutoShoot turns periodic firing on or off.
func (l *Launcher) SetAutoShoot(on bool) {
	l.autoShoot = on
	l.shotAcc = 0
}

// AutoShoot reports whether periodic firing is on.
func (l *Launcher) AutoShoot() bool {
	return l.autoShoot
}

// BeginCharge starts charging a shot. No-op while already charging.
func (l *Launcher) BeginCharge() {
	if l.charging {
		return
	}
	l.charging = true
	l.charge = 0
	l.shotAcc = 0
}

// EndCharge releases a charging shot: the muzzle speed is interpolated from the
// charge level and one shot is attempted. Returns nil when not charging or when the
// shot is refused.
func (l *Launcher) EndCharge() *Ball {
	if !l.charging {
		return nil
	}
	l.charging = false
	l.muzzleSpeed = l.cfg.ChargeMin + (l.cfg.ChargeMax-l.cfg.ChargeMin)*l.charge
	l.speedName = ""
	l.shotAcc = 0
	return l.Shoot()
}

// Shoot fires one ball. It returns nil while the cooldown runs or when the magazine
// is empty. Every attempt past the cooldown check re-arms the cooldown.
func (l *Launcher) Shoot() *Ball {
	if l.cooldown > 0 {
		return nil
	}
	l.cooldown = l.cfg.ShotCooldown
	if l.magazine <= 0 {
		return nil
	}
	l.magazine--
	if l.world.listener != nil {
		l.world.listener.OnShoot()
	}

	tip, dir := l.Muzzle()
	r := l.world.cfg.BallRadius
	return l.world.spawn(tip.Add(dir.Mul(r)), dir.Mul(l.muzzleSpeed))
}

// Load sets the magazine to n balls.
func (l *Launcher) Load(n int) {
	l.magazine = max(n, 0)
}

// Magazine returns the number of balls left to fire.
func (l *Launcher) Magazine() int {
	return l.magazine
}

// Halt stops the chassis and cancels auto-fire and any charge in progress. Aim and the
// selected speed are kept.
func (l *Launcher) Halt() {
	l.forward, l.turn, l.velocity = 0, 0, 0
	l.autoShoot = false
	l.shotAcc = 0
	l.charging = false
	l.charge = 0
}

// Update advances cooldown, auto-fire, charge and driving by dt.
func (l *Launcher) Update(dt float32) {
	l.cooldown = math32.Max(0, l.cooldown-dt)

	if l.autoShoot && !l.charging {
		l.shotAcc += dt
		if l.shotAcc >= l.cfg.ShotInterval {
			l.shotAcc -= l.cfg.ShotInterval
			l.Shoot()
		}
	}

	if l.charging {
		l.charge = math32.Min(1, l.charge+l.cfg.ChargeRate*dt)
	}

	l.heading += l.turn * l.cfg.TurnRate * dt

	target := l.forward * l.cfg.MaxDriveSpeed
	if l.cfg.SmoothedDrive {
		l.velocity += (target - l.velocity) * (1 - math32.Exp(-l.cfg.DriveAccel*dt))
	} else {
		l.velocity = target
	}

	fwd := vecmath.Direction(l.heading, 0)
	pos := l.Position.Add(fwd.Mul(l.velocity * dt))

	clamped := false
	if hx := l.cfg.CourtHalfX; hx > 0 {
		if x := vecmath.Clamp(pos[0], -hx, hx); x != pos[0] {
			pos[0] = x
			clamped = true
		}
	}
	if hz := l.cfg.CourtHalfZ; hz > 0 {
		if z := vecmath.Clamp(pos[2], -hz, hz); z != pos[2] {
			pos[2] = z
			clamped = true
		}
	}
	if clamped && l.velocity != 0 {
		l.velocity = 0
	}
	l.Position = pos
}

// Direction returns the unit aim vector of the barrel.
func (l *Launcher) Direction() vecmath.Vec3 {
	return vecmath.Direction(l.heading+l.yaw, l.pitch)
}

// Muzzle returns the barrel tip in world space and the aim direction.
func (l *Launcher) Muzzle() (tip, dir vecmath.Vec3) {
	dir = l.Direction()
	pivot := l.Position.Add(vecmath.Vec3{0, l.cfg.MuzzleHeight, 0})
	return pivot.Add(dir.Mul(l.cfg.BarrelLength * 0.5)), dir
}

// AimLine returns the laser sight segment from the muzzle tip. ok is false when the
// sight is disabled.
func (l *Launcher) AimLine() (from, to vecmath.Vec3, ok bool) {
	if !l.cfg.LaserSight {
		return from, to, false
	}
	tip, dir := l.Muzzle()
	return tip, tip.Add(dir.Mul(l.cfg.LaserLength)), true
}

// Speed returns the current driving speed. Always non-negative; reversing shows up
// as the chassis moving against its heading.
func (l *Launcher) Speed() float32 {
	return math32.Abs(l.velocity)
}

// MuzzleSpeed returns the launch speed the next shot will use.
func (l *Launcher) MuzzleSpeed() float32 {
	return l.muzzleSpeed
}

// SpeedName returns the selected named speed, or "" after a charged shot.
func (l *Launcher) SpeedName() string {
	return l.speedName
}

// Charge returns the charge level in [0, 1] and whether a charge is in progress.
func (l *Launcher) Charge() (float32, bool) {
	return l.charge, l.charging
}

// Heading returns the chassis yaw.
func (l *Launcher) Heading() float32 {
	return l.heading
}

// Yaw returns the head rotation relative to the chassis.
func (l *Launcher) Yaw() float32 {
	return l.yaw
}

// Pitch returns the barrel elevation.
func (l *Launcher) Pitch() float32 {
	return l.pitch
}
