// Package tui draws a top-down view of a session in a terminal and turns key events
// into launcher input. North (-Z, where the targets stand) is up.
package tui

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/gdamore/tcell/v2"

	"ballmachine/internal/court"
	"ballmachine/internal/session"
	"ballmachine/internal/targets"
	"ballmachine/internal/vecmath"
)

const (
	margin      = 2
	statusLines = 2
	aimDots     = 12
)

var (
	styleField    = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePole     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTarget   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHit      = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBase     = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleLauncher = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleAim      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBall     = tcell.StyleDefault.Foreground(tcell.ColorGreenYellow)
	styleMega     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleWon      = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleLost     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Grid maps court coordinates onto a w x h character area.
type Grid struct {
	W, H int
}

// Cell returns the character cell of p, or ok=false when p is off the map.
func (g Grid) Cell(p vecmath.Vec3) (x, y int, ok bool) {
	halfW := float32(court.FieldWidth/2 + margin)
	halfL := float32(court.FieldLength/2 + margin)
	if g.W < 2 || g.H < 2 {
		return 0, 0, false
	}
	u := (p[0] + halfW) / (2 * halfW)
	v := (p[2] + halfL) / (2 * halfL)
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return 0, 0, false
	}
	return int(u*float32(g.W-1) + 0.5), int(v*float32(g.H-1) + 0.5), true
}

// Draw renders v onto screen and shows it.
func Draw(screen tcell.Screen, v session.View) {
	screen.Clear()
	w, h := screen.Size()
	g := Grid{W: w, H: h - statusLines}

	drawCourt(screen, g)
	for _, box := range v.Colliders {
		put(screen, g, box.Center(), '|', stylePole)
	}
	for _, t := range v.Targets {
		drawTarget(screen, g, t)
	}
	for i := 1; i <= aimDots; i++ {
		p := v.Launcher.Tip.Add(v.Launcher.Dir.Mul(float32(i)))
		put(screen, g, p, '.', styleAim)
	}
	for _, b := range v.Balls {
		put(screen, g, b.Pos, 'o', styleBall)
	}
	if v.Mega != nil {
		put(screen, g, v.Mega.Pos, '@', styleMega)
	}
	put(screen, g, v.Launcher.Position, Arrow(v.Launcher.Heading+v.Launcher.Yaw), styleLauncher)

	drawStatus(screen, v, w, h)
	screen.Show()
}

func put(screen tcell.Screen, g Grid, p vecmath.Vec3, r rune, style tcell.Style) {
	if x, y, ok := g.Cell(p); ok {
		screen.SetContent(x, y, r, nil, style)
	}
}

func drawCourt(screen tcell.Screen, g Grid) {
	hx, hz := float32(court.FieldWidth/2), float32(court.FieldLength/2)
	x0, y0, _ := g.Cell(vecmath.Vec3{-hx, 0, -hz})
	x1, y1, _ := g.Cell(vecmath.Vec3{hx, 0, hz})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r, style := ' ', styleField
			switch {
			case (y == y0 || y == y1) && (x == x0 || x == x1):
				r, style = '+', styleBorder
			case y == y0 || y == y1:
				r, style = '-', styleBorder
			case x == x0 || x == x1:
				r, style = '|', styleBorder
			case y == (y0+y1)/2:
				r = '-'
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

func drawTarget(screen tcell.Screen, g Grid, t session.TargetView) {
	style := styleTarget
	if t.Cooldown > 0 {
		style = styleHit
	}
	r := 'T'
	switch t.Shape {
	case targets.Box:
		r, style = '#', styleBase
	case targets.Circle:
		r = 'A'
	default:
		if t.Kind == targets.Oscillating {
			r = 'S'
		} else {
			r = 'K'
		}
	}
	c := vecmath.ToWorld(t.World, vecmath.Vec3{})
	put(screen, g, c, r, style)
}

// Arrow picks the glyph closest to the aim heading. Heading 0 faces north and
// positive headings turn west.
func Arrow(heading float32) rune {
	arrows := [8]rune{'^', '\\', '<', '/', 'v', '\\', '>', '/'}
	i := int(math32.Round(heading/(math32.Pi/4))) % 8
	if i < 0 {
		i += 8
	}
	return arrows[i]
}

func drawStatus(screen tcell.Screen, v session.View, w, h int) {
	speed := v.Launcher.SpeedName
	if speed == "" {
		speed = fmt.Sprintf("%.1f", v.Launcher.MuzzleSpeed)
	}
	line := fmt.Sprintf(" score %d/%d  balls %d (%s)  speed %s  pitch %.2f", v.Score, v.TargetScore, v.BallsLeft, v.Difficulty, speed, v.Launcher.Pitch)
	if v.Launcher.Charging {
		line += fmt.Sprintf("  charge %3.0f%%", v.Launcher.Charge*100)
	}
	text(screen, 0, h-2, line, styleStatus)

	switch v.State {
	case session.Won:
		text(screen, 0, h-1, fmt.Sprintf(" YOU WIN with %d points - r to restart, q to quit", v.Score), styleWon)
	case session.Lost:
		text(screen, 0, h-1, " OUT OF BALLS - r to restart, q to quit", styleLost)
	default:
		text(screen, 0, h-1, " wasd drive  arrows aim  1-3 speed  space charge/release  f fire  t auto  m mute  q quit", styleStatus)
	}
}

func text(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
