package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem/step text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging overlays (FPS, heap, simulation load). All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowSim      bool
	font         rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastSimText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetFont sets the font used for the overlays. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Draw renders any enabled overlays at the top-right. balls is the live projectile
// count shown by the simulation line.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(balls int) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if (d.ShowFPS && d.lastFpsText == "") || (d.ShowMemAlloc && d.lastMemText == "") || (d.ShowSim && d.lastSimText == "") {
		update = true
	}

	y := int32(fpsPadding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawRight(d.lastFpsText, y)
		y += fpsLineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024))
		}
		d.drawRight(d.lastMemText, y)
		y += fpsLineHeight
	}
	if d.ShowSim {
		if update {
			d.lastSimText = fmt.Sprintf("Balls in flight: %d", balls)
		}
		d.drawRight(d.lastSimText, y)
	}
}

func (d *Debug) drawRight(text string, y int32) {
	if text == "" {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		sz := float32(fpsFontSize)
		pos := rl.NewVector2(float32(screenW)-rl.MeasureTextEx(d.font, text, sz, 1).X-float32(fpsPadding), float32(y))
		rl.DrawTextEx(d.font, text, pos, sz, 1, rl.Green)
		return
	}
	w := rl.MeasureText(text, fpsFontSize)
	rl.DrawText(text, screenW-w-fpsPadding, y, fpsFontSize, rl.Green)
}
