package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"ballmachine/internal/court"
	"ballmachine/internal/primitives"
	"ballmachine/internal/session"
	"ballmachine/internal/targets"
	"ballmachine/internal/vecmath"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220

	lampHeadRadius = 0.35
	lineLift       = 0.01
)

// CameraMode selects how the camera follows the game.
type CameraMode int

const (
	// Chase sits behind and above the launcher, looking along its aim.
	Chase CameraMode = iota
	// Overview looks down the court from behind the baseline.
	Overview
	// Free is the raylib free camera (mouse + WASD), for inspecting the court.
	Free
)

func (m CameraMode) String() string {
	switch m {
	case Chase:
		return "chase"
	case Overview:
		return "overview"
	case Free:
		return "free"
	}
	return "unknown"
}

var (
	fieldColor    = rl.NewColor(34, 92, 60, 255)
	outColor      = rl.NewColor(28, 60, 44, 255)
	lineColor     = rl.NewColor(235, 235, 235, 255)
	poleColor     = rl.NewColor(90, 94, 100, 255)
	lampColor     = rl.NewColor(255, 244, 200, 255)
	chassisColor  = rl.NewColor(60, 70, 90, 255)
	barrelColor   = rl.NewColor(40, 40, 44, 255)
	ballColor     = rl.NewColor(214, 236, 60, 255)
	trailColor    = rl.NewColor(214, 236, 60, 110)
	laserColor    = rl.NewColor(255, 40, 40, 200)
	megaColor     = rl.NewColor(200, 40, 60, 255)
	targetColor   = rl.NewColor(230, 230, 230, 255)
	bullseyeColor = rl.NewColor(220, 50, 40, 255)
	baseColor     = rl.NewColor(120, 84, 52, 255)
	flashColor    = rl.NewColor(255, 210, 60, 255)
)

// Scene holds a 3D camera and draws a session view. Update moves the camera; Draw
// renders between BeginMode3D and EndMode3D.
type Scene struct {
	Camera      rl.Camera3D
	Mode        CameraMode
	GridVisible bool
	Scale       float32

	prims      *primitives.Registry
	cursorDone bool
}

// New returns a scene with a perspective chase camera. scale is the world scale the
// physics runs at; it sizes the camera offsets.
func New(scale float32) *Scene {
	s := &Scene{Scale: scale, prims: primitives.NewRegistry()}
	s.Camera.Position = rl.NewVector3(0, 4, 14)
	s.Camera.Target = rl.NewVector3(0, 1, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 60
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// NextMode cycles chase, overview, free.
func (s *Scene) NextMode() {
	s.Mode = (s.Mode + 1) % 3
	if s.Mode == Free {
		rl.DisableCursor()
		s.cursorDone = true
	} else if s.cursorDone {
		rl.EnableCursor()
		s.cursorDone = false
	}
}

// Update runs once per frame and places the camera for the current mode.
func (s *Scene) Update(v session.View) {
	switch s.Mode {
	case Chase:
		pos, target := ChaseCamera(v.Launcher, s.Scale)
		s.Camera.Position = primitives.Vector3(pos)
		s.Camera.Target = primitives.Vector3(target)
	case Overview:
		s.Camera.Position = rl.NewVector3(0, 12*s.Scale, court.FieldLength/2+6)
		s.Camera.Target = rl.NewVector3(0, 0, -court.FieldLength/4)
	case Free:
		rl.UpdateCamera(&s.Camera, rl.CameraFree)
	}
}

// ChaseCamera returns the camera position and look-at point behind the launcher.
func ChaseCamera(l session.LauncherView, scale float32) (pos, target vecmath.Vec3) {
	flat := vecmath.Direction(l.Heading+l.Yaw, 0)
	pos = l.Position.Add(flat.Mul(-2.5 * scale)).Add(vecmath.Vec3{0, 2.2 * scale, 0})
	target = l.Tip.Add(l.Dir.Mul(8 * scale))
	return pos, target
}

// Draw renders the court and everything on it. Call after ClearBackground and before 2D overlays.
func (s *Scene) Draw(v session.View) {
	cam := s.Camera.Position
	s.prims.SetView([3]float32{cam.X, cam.Y, cam.Z}, [3]float32{0.3, 1, 0.4})

	rl.BeginMode3D(s.Camera)
	drawField()
	if s.GridVisible {
		drawEditorGrid()
	}
	for _, box := range v.Colliders {
		s.drawPole(box)
	}
	for _, t := range v.Targets {
		s.drawTarget(t)
	}
	s.drawLauncher(v.Launcher, v.BallRadius)
	for _, b := range v.Balls {
		s.drawBall(b, v.BallRadius)
	}
	if v.Mega != nil {
		d := 2 * v.Mega.Radius
		s.prims.DrawAt(primitives.Sphere, v.Mega.Pos, [3]float32{d, d, d}, megaColor)
	}
	rl.EndMode3D()
}

// Unload releases GPU resources.
func (s *Scene) Unload() {
	s.prims.Unload()
}

func drawField() {
	rl.DrawPlane(rl.NewVector3(0, -lineLift, 0), rl.NewVector2(court.FieldWidth+12, court.FieldLength+12), outColor)
	rl.DrawPlane(rl.NewVector3(0, 0, 0), rl.NewVector2(court.FieldWidth, court.FieldLength), fieldColor)

	hx, hz := float32(court.FieldWidth/2), float32(court.FieldLength/2)
	corners := [4]rl.Vector3{
		rl.NewVector3(-hx, lineLift, -hz), rl.NewVector3(hx, lineLift, -hz),
		rl.NewVector3(hx, lineLift, hz), rl.NewVector3(-hx, lineLift, hz),
	}
	for i := range corners {
		rl.DrawLine3D(corners[i], corners[(i+1)%4], lineColor)
	}
	rl.DrawLine3D(rl.NewVector3(-hx, lineLift, 0), rl.NewVector3(hx, lineLift, 0), lineColor)
	rl.DrawLine3D(rl.NewVector3(0, lineLift, -hz/2), rl.NewVector3(0, lineLift, hz/2), lineColor)
}

func (s *Scene) drawPole(box vecmath.AABB) {
	c, size := box.Center(), box.Size()
	s.prims.DrawAt(primitives.Cylinder, c, [3]float32{size[0], size[1], size[2]}, poleColor)
	head := vecmath.Vec3{c[0], box.Max[1], c[2]}
	rl.DrawSphere(primitives.Vector3(head), lampHeadRadius, lampColor)
}

func (s *Scene) drawTarget(t session.TargetView) {
	world := primitives.Matrix(t.World)
	h := t.HalfExtents
	color := targetColor
	if t.Cooldown > 0 {
		color = flashColor
	}
	switch t.Shape {
	case targets.Circle:
		d := 2 * h[0]
		s.prims.Draw(primitives.Disc, world, [3]float32{d, d, 0.08}, color)
		inner := primitives.Matrix(t.World.Mul4(vecmath.Transform{Position: vecmath.Vec3{0, 0, 0.05}}.Matrix()))
		s.prims.Draw(primitives.Disc, inner, [3]float32{d / 3, d / 3, 0.02}, bullseyeColor)
	case targets.Rect:
		s.prims.Draw(primitives.Box, world, [3]float32{2 * h[0], 2 * h[1], max(2*h[2], 0.02)}, color)
	case targets.Box:
		s.prims.Draw(primitives.Cylinder, world, [3]float32{2 * h[0], 2 * h[1], 2 * h[2]}, baseColor)
	}
}

func (s *Scene) drawLauncher(l session.LauncherView, r float32) {
	sc := s.Scale
	chassis := vecmath.Transform{
		Position: l.Position.Add(vecmath.Vec3{0, 0.2 * sc, 0}),
		Yaw:      l.Heading,
	}
	s.prims.Draw(primitives.Box, primitives.Matrix(chassis.Matrix()), [3]float32{0.8 * sc, 0.4 * sc, 1.2 * sc}, chassisColor)

	rl.DrawSphere(primitives.Vector3(l.Pivot), 1.6*r, chassisColor)
	rl.DrawCylinderEx(primitives.Vector3(l.Pivot), primitives.Vector3(l.Tip), 1.3*r, 1.2*r, 12, barrelColor)

	if l.Laser {
		rl.DrawLine3D(primitives.Vector3(l.LaserFrom), primitives.Vector3(l.LaserTo), laserColor)
	}
}

func (s *Scene) drawBall(b session.BallView, r float32) {
	for i := 1; i < len(b.Trail); i++ {
		rl.DrawLine3D(primitives.Vector3(b.Trail[i-1]), primitives.Vector3(b.Trail[i]), trailColor)
	}
	world := vecmath.Transform{Position: b.Pos, Tilt: b.Spin}.Matrix()
	d := 2 * r
	s.prims.Draw(primitives.Sphere, primitives.Matrix(world), [3]float32{d, d, d}, ballColor)
}

// drawEditorGrid draws an infinite-style grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), lineLift, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), lineLift, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), lineLift, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), lineLift, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = float32(-gridExtent), lineLift, 0
	end.X, end.Y, end.Z = float32(gridExtent), lineLift, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, lineLift, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, lineLift, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
