package robot

import (
	"math"

	"github.com/zeusync/centurion/internal/core/systems/physics"
	"github.com/zeusync/centurion/internal/core/world"
)

// Move drives the body along its heading.
func Move(b *world.Body, distance float64) {
	MoveWithDrift(b, distance, 0)
}

// MoveWithDrift drives the body along its heading offset by drift radians.
// The heading itself is not changed.
func MoveWithDrift(b *world.Body, distance, drift float64) {
	a := b.Heading + drift
	b.Circle.Center.X += math.Cos(a) * distance
	b.Circle.Center.Y += math.Sin(a) * distance
}

// Turn rotates the body counter-clockwise by rad and keeps the heading in [0, TwoPi).
func Turn(b *world.Body, rad float64) {
	b.Heading = NormalizeHeading(b.Heading + rad)
}

// NormalizeHeading wraps h into [0, TwoPi). Non-finite headings are returned unchanged.
func NormalizeHeading(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return h
	}
	h = math.Mod(h, physics.TwoPi)
	if h < 0 {
		h += physics.TwoPi
	}
	// a tiny negative remainder rounds up to TwoPi itself
	if h >= physics.TwoPi {
		h = 0
	}
	return h
}
