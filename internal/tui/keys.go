package tui

import (
	"github.com/gdamore/tcell/v2"

	"ballmachine/internal/game"
)

// HoldTime is how long a drive key counts as held after its last event. Terminals
// only report presses and auto-repeat, never releases.
const HoldTime = 0.2

// Action is a key that acts outside the launcher.
type Action int

const (
	None Action = iota
	Quit
	Restart
	ToggleAuto
	ToggleMute
)

// Keys turns terminal key events into per-frame launcher input.
type Keys struct {
	forward, turn         float32
	forwardHold, turnHold float32
	pending               game.Input
	charging              bool
}

// Handle records one key event.
func (k *Keys) Handle(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit
	case tcell.KeyUp:
		k.pending.PitchSteps++
		return None
	case tcell.KeyDown:
		k.pending.PitchSteps--
		return None
	case tcell.KeyLeft:
		k.pending.YawSteps++
		return None
	case tcell.KeyRight:
		k.pending.YawSteps--
		return None
	case tcell.KeyRune:
	default:
		return None
	}

	switch ev.Rune() {
	case 'q':
		return Quit
	case 'r':
		return Restart
	case 't':
		return ToggleAuto
	case 'm':
		return ToggleMute
	case 'w':
		k.forward, k.forwardHold = 1, HoldTime
	case 's':
		k.forward, k.forwardHold = -1, HoldTime
	case 'a':
		k.turn, k.turnHold = 1, HoldTime
	case 'd':
		k.turn, k.turnHold = -1, HoldTime
	case '1':
		k.pending.Speed = "slow"
	case '2':
		k.pending.Speed = "medium"
	case '3':
		k.pending.Speed = "fast"
	case 'f':
		k.pending.Fire = true
	case ' ':
		if k.charging {
			k.pending.ChargeUp = true
		} else {
			k.pending.ChargeDown = true
		}
		k.charging = !k.charging
	}
	return None
}

// Input returns the input for a frame of dt seconds and clears the one-shot keys.
func (k *Keys) Input(dt float32) game.Input {
	in := k.pending
	k.pending = game.Input{}

	if k.forwardHold > 0 {
		in.Forward = k.forward
		k.forwardHold -= dt
	}
	if k.turnHold > 0 {
		in.Turn = k.turn
		k.turnHold -= dt
	}
	return in
}

// Reset drops held keys and any charge in progress, for a new round.
func (k *Keys) Reset() {
	*k = Keys{}
}
