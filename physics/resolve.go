package physics

import (
	"math"

	"github.com/lixenwraith/simple2d/component"
	"github.com/lixenwraith/simple2d/vmath"
)

// Correction is the change owed by one body on the impact axis
type Correction struct {
	// Share is the body's part of the next-tick overlap, the two shares sum to 1
	Share float64

	// Moved reports whether Position must be written
	Moved bool

	// Position is the new coordinate on the impact axis, chosen so the next motion step
	// lands the striking edge on the contact point
	Position float64

	// Stop zeroes velocity and acceleration on the impact axis
	Stop bool
}

// Resolution is the outcome of one contact, computed without touching either body
type Resolution struct {
	Axis vmath.Axis

	// ContactPoint is where both striking edges meet after the next motion step
	ContactPoint float64

	A, B Correction
}

// Resolve splits the next-tick edge distance between A and B by their next-tick speeds on the impact axis
// The faster body takes the larger share. When both are at rest next tick this tick's speeds decide,
// and only bodies at rest on both ticks split evenly
// A body whose striking edge is advancing toward the other is stopped on that axis
func Resolve(a, b Body, c Contact) Resolution {
	axis := c.Type.Axis()
	pair := pairFor(c.Type)

	shareA, shareB, ok := shares(a.Motion.PredictedNextVelocity().Get(axis), b.Motion.PredictedNextVelocity().Get(axis))
	if !ok {
		// A body braking to rest next tick still moved this tick
		shareA, shareB, ok = shares(a.Motion.Velocity.Get(axis), b.Motion.Velocity.Get(axis))
	}
	if !ok {
		shareA, shareB = 0.5, 0.5
	}

	curA, nextA := a.CurrentBox(), a.NextTickBox()
	curB, nextB := b.CurrentBox(), b.NextTickBox()
	edgeA, edgeB := edgeCoord(nextA, pair.sideA), edgeCoord(nextB, pair.sideB)

	// Weighted form keeps the contact exactly on a static body's edge
	contact := edgeA*(1-shareA) + edgeB*shareA

	return Resolution{
		Axis:         axis,
		ContactPoint: contact,
		A:            correct(a, axis, pair.sideA, shareA, contact, edgeCoord(curA, pair.sideA), edgeA),
		B:            correct(b, axis, pair.sideB, shareB, contact, edgeCoord(curB, pair.sideB), edgeB),
	}
}

// shares splits by speed, false when both are at rest
func shares(va, vb float64) (float64, float64, bool) {
	sa, sb := math.Abs(va), math.Abs(vb)
	total := sa + sb
	if total <= 0 {
		return 0, 0, false
	}
	return sa / total, sb / total, true
}

func correct(b Body, axis vmath.Axis, side vmath.Side, share, contact, curEdge, nextEdge float64) Correction {
	c := Correction{
		Share: share,
		Stop:  (nextEdge-curEdge)*sideDir(side) > vmath.Epsilon,
	}
	if share == 0 {
		return c
	}

	target := contact - b.Shape.Offset.Get(axis) - sideExtent(side, b.Shape.Size)
	if !c.Stop {
		// Velocity survives, back off so the motion step lands on target
		target -= b.Motion.Velocity.Get(axis)
	}
	c.Moved = true
	c.Position = target
	return c
}

// Apply writes a resolution into the two motion components
func Apply(r Resolution, a, b *component.MotionComponent) {
	applyCorrection(r.Axis, r.A, a)
	applyCorrection(r.Axis, r.B, b)
}

func applyCorrection(axis vmath.Axis, c Correction, m *component.MotionComponent) {
	if c.Stop {
		m.SetVelocityAxis(axis, 0)
		m.SetAccelerationAxis(axis, 0)
	}
	if c.Moved {
		m.SetPositionAxis(axis, c.Position)
	}
}
