package main

import (
	"flag"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"ballmachine/internal/audio"
	"ballmachine/internal/commands"
	"ballmachine/internal/debug"
	"ballmachine/internal/engineconfig"
	"ballmachine/internal/fonts"
	"ballmachine/internal/game"
	"ballmachine/internal/graphics"
	"ballmachine/internal/logger"
	"ballmachine/internal/scene"
	"ballmachine/internal/terminal"
)

func main() {
	fullscreen := flag.Bool("fullscreen", false, "run fullscreen at the monitor resolution")
	fontName := flag.String("font", "Inter", "HUD font family under assets/fonts")
	flag.Parse()

	log := logger.New()
	defer log.Close()

	file, err := engineconfig.Load()
	if err != nil {
		log.Warn("engine config unreadable, using defaults", "err", err)
	}
	prefs := file.Prefs
	engineconfig.LoadEnv(&prefs)
	log.SetLevel(prefs.LogLevel)

	ctl, err := game.New(file, prefs, log)
	if err != nil {
		log.Error("cannot start session", "preset", prefs.Preset, "err", err)
		os.Exit(1)
	}
	sess := ctl.Session()

	reg := commands.NewRegistry()
	commands.RegisterGame(reg, ctl)
	term := terminal.New(log, reg)

	player := audio.NewPlayer(prefs.Audio)
	if err := player.Init(); err != nil {
		log.Warn("audio disabled", "err", err)
		_ = player.SetEnabled(false)
	}
	defer player.Close()

	scn := scene.New(sess.Setup().Physics.WorldScale)
	scn.SetGridVisible(prefs.GridVisible)
	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)

	var font rl.Font
	fontLoaded := false

	update := func(dt float32) {
		if !fontLoaded {
			fontLoaded = true
			if f, ok := fonts.Load(*fontName, 32); ok {
				font = f
				term.SetFont(f)
				dbg.SetFont(f)
			}
		}
		term.Update()
		if !term.IsOpen() {
			handleKeys(ctl, scn, dbg, player, log)
		} else {
			ctl.Apply(game.Input{})
		}
		sess.Frame(dt)
		player.Play(sess.DrainEvents())
	}
	draw := func() {
		v := sess.Snapshot()
		scn.Update(v)
		scn.Draw(v)
		debug.DrawHUD(v, font)
		dbg.Draw(len(v.Balls))
		term.Draw()
	}

	opts := graphics.DefaultOptions()
	opts.Fullscreen = *fullscreen
	graphics.Run(opts, update, draw)
	scn.Unload()
}

// handleKeys maps the keyboard onto the launcher and the view toggles.
//
//	W/S drive, A/D turn, arrows aim, 1/2/3 speed, SPACE hold to charge,
//	F fire, C camera, G grid, F1 FPS, F2 memory, F3 simulation, M mute.
func handleKeys(ctl *game.Controller, scn *scene.Scene, dbg *debug.Debug, player *audio.Player, log *logger.Logger) {
	var in game.Input
	if rl.IsKeyDown(rl.KeyW) {
		in.Forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		in.Forward--
	}
	if rl.IsKeyDown(rl.KeyA) {
		in.Turn++
	}
	if rl.IsKeyDown(rl.KeyD) {
		in.Turn--
	}
	in.PitchSteps = pressed(rl.KeyUp) - pressed(rl.KeyDown)
	in.YawSteps = pressed(rl.KeyLeft) - pressed(rl.KeyRight)
	switch {
	case rl.IsKeyPressed(rl.KeyOne):
		in.Speed = "slow"
	case rl.IsKeyPressed(rl.KeyTwo):
		in.Speed = "medium"
	case rl.IsKeyPressed(rl.KeyThree):
		in.Speed = "fast"
	}
	in.ChargeDown = rl.IsKeyPressed(rl.KeySpace)
	in.ChargeUp = rl.IsKeyReleased(rl.KeySpace)
	in.Fire = rl.IsKeyPressed(rl.KeyF)
	ctl.Apply(in)

	if rl.IsKeyPressed(rl.KeyC) {
		scn.NextMode()
	}
	if rl.IsKeyPressed(rl.KeyG) {
		scn.SetGridVisible(!scn.GridVisible)
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		dbg.SetShowFPS(!dbg.ShowFPS)
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		dbg.SetShowMemAlloc(!dbg.ShowMemAlloc)
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		dbg.ShowSim = !dbg.ShowSim
	}
	if rl.IsKeyPressed(rl.KeyM) {
		if err := player.SetEnabled(!player.Enabled()); err != nil {
			log.Warn("audio unavailable", "err", err)
		}
	}
}

// pressed counts a key press plus its auto-repeats this frame.
func pressed(key int32) int {
	if rl.IsKeyPressed(key) || rl.IsKeyPressedRepeat(key) {
		return 1
	}
	return 0
}
