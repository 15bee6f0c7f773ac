// Package court describes the standard tennis-court range: the floodlight poles
// balls bounce off and the three scoring stations.
package court

import (
	"math"

	"ballmachine/internal/physics"
	"ballmachine/internal/targets"
	"ballmachine/internal/vecmath"
)

// Field dimensions of the playing surface.
const (
	FieldWidth  = 28.5
	FieldLength = 35.66
)

const (
	poleHeight = 7.5
	poleRadius = 0.1
)

// Options toggles the parts of the standard layout.
type Options struct {
	Lamps   bool `yaml:"lamps"`
	Targets bool `yaml:"targets"`
}

// DefaultOptions enables everything.
func DefaultOptions() Options {
	return Options{Lamps: true, Targets: true}
}

// Layout is a set of static colliders and targets ready to be installed.
type Layout struct {
	Lamps     []vecmath.Vec3
	Colliders []vecmath.AABB
	Targets   []*targets.Target
}

// LampPositions returns the base of every floodlight pole.
func LampPositions() []vecmath.Vec3 {
	return []vecmath.Vec3{
		{-13, 0, -19}, {13, 0, -19},
		{-13, 0, 19}, {13, 0, 19},
		{0, 0, -19},
		{0, 0, 19},
	}
}

// LampColliders returns one box per pole.
func LampColliders() []vecmath.AABB {
	lamps := LampPositions()
	out := make([]vecmath.AABB, 0, len(lamps))
	for _, p := range lamps {
		out = append(out, vecmath.NewAABB(
			vecmath.Vec3{p[0], poleHeight / 2, p[2]},
			vecmath.Vec3{2 * poleRadius, poleHeight, 2 * poleRadius},
		))
	}
	return out
}

// StandardTargets returns fresh copies of the three stations: the orbiting archery
// disc, the knockdown panel on its base, and the sliding panel.
func StandardTargets() []*targets.Target {
	const (
		knockW, knockH, knockD = 2.2, 2.8, 0.1
		baseHeight             = 0.4
		slideW, slideH, slideD = 2.5, 1.5, 0.1
		slidePole              = 1.8
	)
	baseRadius := float32(knockW / 1.7)

	return []*targets.Target{
		{
			Name:        "archery",
			Kind:        targets.Orbiting,
			Shape:       targets.Circle,
			Transform:   vecmath.Transform{Position: vecmath.Vec3{0, 5, -15}},
			HalfExtents: vecmath.Vec3{1.3, 1.3, 0},
			Surface:     &targets.Surface{Restitution: 0.8, Friction: 0.4},
			Score:       150,
			Motion:      targets.Motion{Speed: 1, Radius: 3, Plane: targets.PlaneXY},
		},
		{
			Name:        "knockdown-base",
			Kind:        targets.Static,
			Shape:       targets.Box,
			Transform:   vecmath.Transform{Position: vecmath.Vec3{-8, 0, -12}, Yaw: math.Pi},
			Offset:      vecmath.Vec3{0, baseHeight / 2, 0},
			HalfExtents: vecmath.Vec3{baseRadius, baseHeight / 2, baseRadius},
			Surface:     &targets.Surface{Restitution: 0.4, Friction: 0.8},
		},
		{
			Name:        "knockdown",
			Kind:        targets.Static,
			Shape:       targets.Rect,
			Transform:   vecmath.Transform{Position: vecmath.Vec3{-8, 0, -12}, Yaw: math.Pi},
			Offset:      vecmath.Vec3{0, baseHeight + knockH/2, 0},
			HalfExtents: vecmath.Vec3{knockW / 2, knockH / 2, knockD / 2},
			Surface:     &targets.Surface{Restitution: 0.3, Friction: 0.2},
			Score:       50,
		},
		{
			Name:        "slider",
			Kind:        targets.Oscillating,
			Shape:       targets.Rect,
			Transform:   vecmath.Transform{Position: vecmath.Vec3{8, 0, -12}, Yaw: math.Pi},
			Offset:      vecmath.Vec3{0, slidePole + slideH/2, 0},
			HalfExtents: vecmath.Vec3{slideW / 2, slideH / 2, slideD / 2},
			Surface:     &targets.Surface{Restitution: 0.65, Friction: 0.12},
			Score:       100,
			Motion:      targets.Motion{Speed: 2.5, Range: 2.5},
		},
	}
}

// Standard builds the layout selected by opts.
func Standard(opts Options) Layout {
	var l Layout
	if opts.Lamps {
		l.Lamps = LampPositions()
		l.Colliders = LampColliders()
	}
	if opts.Targets {
		l.Targets = StandardTargets()
	}
	return l
}

// Install registers the colliders with w and the targets with e, in layout order.
func (l Layout) Install(w *physics.World, e *targets.Engine) {
	for _, c := range l.Colliders {
		w.AddCollider(c)
	}
	for _, t := range l.Targets {
		e.Add(t)
	}
}
