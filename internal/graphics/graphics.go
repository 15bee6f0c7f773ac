package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options configures the window.
type Options struct {
	Title string
	// Width and Height are ignored in fullscreen, which uses the monitor size.
	Width, Height int32
	Fullscreen    bool
	TargetFPS     int32
}

// DefaultOptions returns a 1280x720 window at 60 FPS.
func DefaultOptions() Options {
	return Options{Title: "ballmachine", Width: 1280, Height: 720, TargetFPS: 60}
}

// Run starts the window and main loop. Each frame it calls update with the frame time
// in seconds (input and simulation), then clears the screen and calls draw.
// ESC toggles the terminal; close via window button.
func Run(opts Options, update func(dt float32), draw func()) {
	if opts.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode | rl.FlagMsaa4xHint)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), opts.Title)
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
		rl.InitWindow(opts.Width, opts.Height, opts.Title)
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC is used to toggle terminal, not to quit; close via window button
	rl.SetTargetFPS(opts.TargetFPS)

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(12, 16, 28, 255))
		draw()
		rl.EndDrawing()
	}
}
