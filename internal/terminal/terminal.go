package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"ballmachine/internal/commands"
	"ballmachine/internal/logger"
)

const (
	BarHeight = 40
	// WindowedBarOffset lifts the bar clear of the window border when not fullscreen.
	WindowedBarOffset = 56
	prompt            = "> "
	fontSize          = 20
	padding           = 8
	maxLinesOnScreen  = 14
	lineHeight        = fontSize + 4
	maxLineChars      = 200
	maxHistory        = 50
)

var (
	termBarColor   = rl.NewColor(40, 40, 40, 255)
	termLineColor  = rl.NewColor(80, 80, 80, 255)
	termLogBgColor = rl.NewColor(24, 24, 24, 240)
	termScrollHint = rl.NewColor(250, 200, 60, 255)
)

// Terminal is the console at the bottom of the screen, toggled with ESC. While open it
// owns the keyboard. Lines starting with "cmd " run through the command registry; any
// other line is kept in the session log as a note.
type Terminal struct {
	log  *logger.Logger
	reg  *commands.Registry
	font rl.Font

	open  bool
	input string

	history []string
	// recall indexes history while browsing with Up/Down; len(history) means the live line.
	recall int
	draft  string

	// scroll is how many lines the log view sits above the newest line.
	scroll int
}

// New returns a closed Terminal logging to log and running commands through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFont sets the console font. A zero texture keeps raylib's default font.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Input returns the line being typed.
func (t *Terminal) Input() string {
	return t.input
}

// Update reads the keyboard for one frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
	}
	if !t.open {
		return
	}
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	if ctrl && rl.IsKeyPressed(rl.KeyV) {
		t.Type(rl.GetClipboardText())
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.Type(string(rune(c)))
		}
	}
	switch {
	case repeated(rl.KeyBackspace):
		t.Backspace()
	case repeated(rl.KeyUp):
		t.Recall(-1)
	case repeated(rl.KeyDown):
		t.Recall(1)
	case repeated(rl.KeyPageUp):
		t.Scroll(maxLinesOnScreen / 2)
	case repeated(rl.KeyPageDown):
		t.Scroll(-maxLinesOnScreen / 2)
	case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter):
		t.Enter()
	}
}

func repeated(key int32) bool {
	return rl.IsKeyPressed(key) || rl.IsKeyPressedRepeat(key)
}

// Type appends s to the input line.
func (t *Terminal) Type(s string) {
	t.input += s
}

// Backspace removes the last rune of the input line.
func (t *Terminal) Backspace() {
	if t.input == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(t.input)
	t.input = t.input[:len(t.input)-size]
}

// Enter submits the input line, if any, and resets history browsing.
func (t *Terminal) Enter() {
	if t.input == "" {
		return
	}
	line := t.input
	t.input = ""
	t.Submit(line)
}

// Recall moves through earlier lines: -1 is older, +1 newer. Moving past the newest
// line restores what was being typed.
func (t *Terminal) Recall(delta int) {
	if len(t.history) == 0 {
		return
	}
	if t.recall == len(t.history) {
		t.draft = t.input
	}
	t.recall = min(max(t.recall+delta, 0), len(t.history))
	if t.recall == len(t.history) {
		t.input = t.draft
		return
	}
	t.input = t.history[t.recall]
}

// Scroll moves the log view by n lines; positive is back in time.
func (t *Terminal) Scroll(n int) {
	limit := max(len(t.log.Lines())-maxLinesOnScreen, 0)
	t.scroll = min(max(t.scroll+n, 0), limit)
}

// Submit logs line and runs it when it is a command. Command errors go to the log.
func (t *Terminal) Submit(line string) {
	t.remember(line)
	t.scroll = 0
	t.log.Log(line)
	args, isCmd := commands.Parse(line)
	if !isCmd {
		return
	}
	switch {
	case len(args) == 0 || (args[0] == "help" && len(args) == 1):
		t.log.Log(commands.Help(t.reg))
		return
	case args[0] == "help":
		usage, err := t.reg.Usage(args[1])
		if err != nil {
			t.log.Warn("no such command", "cmd", args[1])
			return
		}
		t.log.Log(usage)
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Warn("command failed", "cmd", args[0], "err", err)
	}
}

func (t *Terminal) remember(line string) {
	if n := len(t.history); n == 0 || t.history[n-1] != line {
		t.history = append(t.history, line)
	}
	if len(t.history) > maxHistory {
		t.history = t.history[len(t.history)-maxHistory:]
	}
	t.recall = len(t.history)
	t.draft = ""
}

// visible returns the window of log lines to draw and whether older ones are hidden.
func (t *Terminal) visible() ([]string, bool) {
	lines := t.log.Lines()
	end := len(lines) - t.scroll
	start := max(end-maxLinesOnScreen, 0)
	return lines[start:end], t.scroll > 0
}

// Draw draws the log and the input bar when open, in screen coordinates.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - BarHeight
	if !rl.IsWindowFullscreen() {
		barY -= WindowedBarOffset
	}

	logHeight := maxLinesOnScreen * lineHeight
	logY := barY - logHeight
	if logY < 0 {
		logHeight = barY
		logY = 0
	}
	if logHeight > 0 {
		rl.DrawRectangle(0, int32(logY), int32(screenW), int32(logHeight), termLogBgColor)
	}
	lines, scrolled := t.visible()
	for i, line := range lines {
		if len(line) > maxLineChars {
			line = line[:maxLineChars-3] + "..."
		}
		t.text(line, padding, logY+i*lineHeight+padding, rl.LightGray)
	}
	if scrolled {
		t.text("-- scrolled, PgDn for newer --", screenW-320, logY+padding, termScrollHint)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(BarHeight), termBarColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, termLineColor)
	t.text(prompt+t.input+"|", padding, barY+padding, rl.White)
}

func (t *Terminal) text(s string, x, y int, color rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, s, rl.NewVector2(float32(x), float32(y)), fontSize, 1, color)
		return
	}
	rl.DrawText(s, int32(x), int32(y), fontSize, color)
}
