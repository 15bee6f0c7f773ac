// Package game glues a session to its presets and to player input. The console and
// the window loop drive it; it never touches the screen.
package game

import (
	"errors"
	"fmt"

	"ballmachine/internal/engineconfig"
	"ballmachine/internal/logger"
	"ballmachine/internal/physics"
	"ballmachine/internal/session"
)

// Aim steps per key press, in radians.
const (
	PitchStep = 0.04
	YawStep   = 0.06
)

var (
	ErrRoundOver    = errors.New("round is over, restart to play again")
	ErrUnknownSpeed = errors.New("unknown speed")
)

// Controller owns the running session and the preset table it was built from.
type Controller struct {
	sess   *session.Session
	file   engineconfig.File
	preset string
	log    *logger.Logger
}

// New starts a session from prefs.Preset, at prefs.Difficulty when set. log may be nil.
func New(file engineconfig.File, prefs engineconfig.EnginePrefs, log *logger.Logger) (*Controller, error) {
	setup, err := file.Preset(prefs.Preset)
	if err != nil {
		return nil, err
	}
	if prefs.Difficulty != "" {
		setup.Rules.Difficulty = prefs.Difficulty
	}
	sess, err := session.New(setup, log)
	if err != nil {
		return nil, err
	}
	c := &Controller{sess: sess, file: file, preset: prefs.Preset, log: log}
	c.info("preset selected", "name", prefs.Preset)
	return c, nil
}

// Session returns the running session.
func (c *Controller) Session() *session.Session {
	return c.sess
}

// Preset returns the active preset name.
func (c *Controller) Preset() string {
	return c.preset
}

func (c *Controller) control(fn func(l *physics.Launcher)) error {
	if !c.sess.Control(fn) {
		return ErrRoundOver
	}
	return nil
}

// SetSpeed selects a named muzzle speed.
func (c *Controller) SetSpeed(name string) error {
	var ok bool
	if err := c.control(func(l *physics.Launcher) { ok = l.SetSpeed(name) }); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownSpeed)
	}
	c.info("speed", "name", name)
	return nil
}

// ChangePitch raises the barrel by delta radians, within the launcher limits.
func (c *Controller) ChangePitch(delta float32) error {
	return c.control(func(l *physics.Launcher) { l.ChangePitch(delta) })
}

// ChangeYaw turns the head by delta radians.
func (c *Controller) ChangeYaw(delta float32) error {
	return c.control(func(l *physics.Launcher) { l.ChangeYaw(delta) })
}

// Restart begins a new round. An empty difficulty keeps the current one.
func (c *Controller) Restart(difficulty string) error {
	if difficulty == "" {
		difficulty = c.sess.Difficulty()
	}
	return c.sess.Restart(difficulty)
}

// UsePreset rebuilds the session from another preset and restarts the round.
func (c *Controller) UsePreset(name string) error {
	setup, err := c.file.Preset(name)
	if err != nil {
		return err
	}
	if err := c.sess.Reconfigure(setup); err != nil {
		return err
	}
	c.preset = name
	c.info("preset selected", "name", name)
	return nil
}

// SetAutoShoot toggles periodic firing.
func (c *Controller) SetAutoShoot(on bool) error {
	return c.control(func(l *physics.Launcher) { l.SetAutoShoot(on) })
}

func (c *Controller) info(msg string, keyvals ...any) {
	if c.log != nil {
		c.log.Info(msg, keyvals...)
	}
}
