package game

import "ballmachine/internal/physics"

// Input is one frame of player intent, already decoded from the keyboard.
type Input struct {
	// Forward and Turn are the drive axes in [-1, 1].
	Forward, Turn float32
	// PitchSteps and YawSteps count aim key presses this frame; negative lowers or turns right.
	PitchSteps, YawSteps int
	// Speed selects a named muzzle speed when non-empty.
	Speed string
	// ChargeDown starts a charge; ChargeUp releases it.
	ChargeDown, ChargeUp bool
	// Fire shoots at the current muzzle speed without charging.
	Fire bool
}

// Apply feeds in to the launcher. It returns false once the round is over.
func (c *Controller) Apply(in Input) bool {
	return c.sess.Control(func(l *physics.Launcher) {
		l.DriveForward(in.Forward)
		l.DriveTurn(in.Turn)
		if in.PitchSteps != 0 {
			l.ChangePitch(float32(in.PitchSteps) * PitchStep)
		}
		if in.YawSteps != 0 {
			l.ChangeYaw(float32(in.YawSteps) * YawStep)
		}
		if in.Speed != "" {
			l.SetSpeed(in.Speed)
		}
		if in.ChargeDown {
			l.BeginCharge()
		}
		if in.ChargeUp {
			l.EndCharge()
		}
		if in.Fire {
			l.Shoot()
		}
	})
}
