// Command range-tui plays a round in the terminal from a top-down view. It shares the
// session, presets and audio cues with the windowed game.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"ballmachine/internal/audio"
	"ballmachine/internal/engineconfig"
	"ballmachine/internal/game"
	"ballmachine/internal/logger"
	"ballmachine/internal/tui"
)

const frameTime = 16 * time.Millisecond

func main() {
	preset := flag.String("preset", "", "preset name, overrides the engine config")
	difficulty := flag.String("difficulty", "", "easy or hard, overrides the engine config")
	flag.Parse()

	log := logger.New()
	defer log.Close()

	file, err := engineconfig.Load()
	if err != nil {
		log.Warn("engine config unreadable, using defaults", "err", err)
	}
	prefs := file.Prefs
	engineconfig.LoadEnv(&prefs)
	if *preset != "" {
		prefs.Preset = *preset
	}
	if *difficulty != "" {
		prefs.Difficulty = *difficulty
	}
	log.SetLevel(prefs.LogLevel)

	ctl, err := game.New(file, prefs, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot start session: %v\n", err)
		os.Exit(1)
	}

	player := audio.NewPlayer(prefs.Audio)
	if err := player.Init(); err != nil {
		log.Warn("audio disabled", "err", err)
		_ = player.SetEnabled(false)
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "cannot init terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	run(screen, ctl, player, log)
}

func run(screen tcell.Screen, ctl *game.Controller, player *audio.Player, log *logger.Logger) {
	sess := ctl.Session()
	var keys tui.Keys

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch keys.Handle(ev) {
				case tui.Quit:
					return
				case tui.Restart:
					keys.Reset()
					if err := ctl.Restart(""); err != nil {
						log.Warn("restart failed", "err", err)
					}
				case tui.ToggleAuto:
					on := !sess.Snapshot().Launcher.AutoShoot
					if err := ctl.SetAutoShoot(on); err != nil {
						log.Debug("auto-shoot unchanged", "err", err)
					}
				case tui.ToggleMute:
					if err := player.SetEnabled(!player.Enabled()); err != nil {
						log.Warn("audio unavailable", "err", err)
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now
			ctl.Apply(keys.Input(dt))
			sess.Frame(dt)
			player.Play(sess.DrainEvents())
			tui.Draw(screen, sess.Snapshot())
		}
	}
}
