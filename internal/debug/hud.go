package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"ballmachine/internal/session"
)

const (
	hudFontSize   = 22
	hudPadding    = 14
	hudLineHeight = hudFontSize + 6
	chargeBarW    = 220
	chargeBarH    = 14
	bannerSize    = 64
)

var (
	hudBgColor    = rl.NewColor(0, 0, 0, 140)
	chargeEmpty   = rl.NewColor(60, 60, 60, 220)
	chargeFull    = rl.NewColor(240, 120, 40, 255)
	wonColor      = rl.NewColor(90, 230, 120, 255)
	lostColor     = rl.NewColor(240, 80, 70, 255)
	bannerBgColor = rl.NewColor(0, 0, 0, 170)
)

// HUDLines returns the status lines shown at the top-left.
func HUDLines(v session.View) []string {
	speed := v.Launcher.SpeedName
	if speed == "" {
		speed = fmt.Sprintf("%.1f m/s", v.Launcher.MuzzleSpeed)
	}
	lines := []string{
		fmt.Sprintf("Score: %d / %d", v.Score, v.TargetScore),
		fmt.Sprintf("Balls: %d (%s)", v.BallsLeft, v.Difficulty),
		fmt.Sprintf("Speed: %s", speed),
	}
	if v.Launcher.AutoShoot {
		lines = append(lines, "Auto-shoot: on")
	}
	return lines
}

// Banner returns the end-of-round message, or "" while playing.
func Banner(v session.View) string {
	switch v.State {
	case session.Won:
		return fmt.Sprintf("YOU WIN! %d points", v.Score)
	case session.Lost:
		return fmt.Sprintf("OUT OF BALLS - %d points", v.Score)
	}
	return ""
}

// DrawHUD draws the score panel, the charge bar while charging and the end-of-round banner.
func DrawHUD(v session.View, font rl.Font) {
	lines := HUDLines(v)
	h := int32(len(lines))*hudLineHeight + 2*hudPadding
	if v.Launcher.Charging {
		h += chargeBarH + hudPadding
	}
	rl.DrawRectangle(hudPadding/2, hudPadding/2, chargeBarW+2*hudPadding, h, hudBgColor)

	y := int32(hudPadding)
	for _, line := range lines {
		drawText(font, line, hudPadding, y, hudFontSize, rl.White)
		y += hudLineHeight
	}
	if v.Launcher.Charging {
		rl.DrawRectangle(hudPadding, y, chargeBarW, chargeBarH, chargeEmpty)
		rl.DrawRectangle(hudPadding, y, int32(float32(chargeBarW)*v.Launcher.Charge), chargeBarH, chargeFull)
	}

	if msg := Banner(v); msg != "" {
		color := wonColor
		if v.State == session.Lost {
			color = lostColor
		}
		screenW := int32(rl.GetScreenWidth())
		screenH := int32(rl.GetScreenHeight())
		rl.DrawRectangle(0, screenH/2-bannerSize, screenW, 2*bannerSize, bannerBgColor)
		w := rl.MeasureText(msg, bannerSize)
		drawText(font, msg, (screenW-w)/2, screenH/2-bannerSize/2, bannerSize, color)
		hint := "cmd restart -difficulty easy|hard"
		hw := rl.MeasureText(hint, hudFontSize)
		drawText(font, hint, (screenW-hw)/2, screenH/2+bannerSize/2, hudFontSize, rl.LightGray)
	}
}

func drawText(font rl.Font, text string, x, y, size int32, color rl.Color) {
	if font.Texture.ID != 0 {
		rl.DrawTextEx(font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
		return
	}
	rl.DrawText(text, x, y, size, color)
}
