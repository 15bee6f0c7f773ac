package commands

import (
	"errors"
	"flag"
	"io"
	"strings"
)

//go:generate go tool mockgen -destination=./mocks/game_mock.go -package=mocks . Game

// Game is what the console drives.
type Game interface {
	SetSpeed(name string) error
	ChangePitch(delta float32) error
	ChangeYaw(delta float32) error
	Restart(difficulty string) error
	UsePreset(name string) error
	SetAutoShoot(on bool) error
}

var errMissingFlag = errors.New("missing required flag")

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// RegisterGame adds the launcher and session commands:
//
//	cmd speed -name fast
//	cmd pitch -delta 0.1
//	cmd yaw -delta -0.2
//	cmd restart -difficulty hard
//	cmd preset -name arcade
//	cmd autoshoot -on=false
//
// Flag values are reset after every run so an omitted flag never repeats the last one.
func RegisterGame(r *Registry, g Game) {
	speed := newFlagSet("speed")
	speedName := speed.String("name", "", "slow, medium or fast")
	r.Register("speed", speed, func() error {
		defer func() { *speedName = "" }()
		if *speedName == "" {
			return errMissingFlag
		}
		return g.SetSpeed(*speedName)
	})

	pitch := newFlagSet("pitch")
	pitchDelta := pitch.Float64("delta", 0, "radians to raise (negative lowers)")
	r.Register("pitch", pitch, func() error {
		defer func() { *pitchDelta = 0 }()
		return g.ChangePitch(float32(*pitchDelta))
	})

	yaw := newFlagSet("yaw")
	yawDelta := yaw.Float64("delta", 0, "radians to turn left (negative turns right)")
	r.Register("yaw", yaw, func() error {
		defer func() { *yawDelta = 0 }()
		return g.ChangeYaw(float32(*yawDelta))
	})

	restart := newFlagSet("restart")
	difficulty := restart.String("difficulty", "", "easy or hard; empty keeps the current one")
	r.Register("restart", restart, func() error {
		defer func() { *difficulty = "" }()
		return g.Restart(*difficulty)
	})

	preset := newFlagSet("preset")
	presetName := preset.String("name", "", "preset from config/engine.yaml")
	r.Register("preset", preset, func() error {
		defer func() { *presetName = "" }()
		if *presetName == "" {
			return errMissingFlag
		}
		return g.UsePreset(*presetName)
	})

	auto := newFlagSet("autoshoot")
	autoOn := auto.Bool("on", true, "fire every few seconds")
	r.Register("autoshoot", auto, func() error {
		defer func() { *autoOn = true }()
		return g.SetAutoShoot(*autoOn)
	})
}

// Help returns a one-line summary of the registered commands.
func Help(r *Registry) string {
	return "commands: " + strings.Join(r.Names(), ", ")
}
