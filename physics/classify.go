package physics

import (
	"github.com/lixenwraith/simple2d/component"
	"github.com/lixenwraith/simple2d/vmath"
)

// Contact is a classified collision of A against B
type Contact struct {
	Type component.CollisionType

	// Distance is the next-tick gap between the two striking edges
	Distance float64
}

// edgePair describes one way A can strike B
// approach is A's edge relative to B's edge before impact, cross is after
type edgePair struct {
	typ      component.CollisionType
	sideA    vmath.Side
	sideB    vmath.Side
	approach vmath.RelPos
	cross    vmath.RelPos
}

// Vertical pairs first, equal distances resolve on the vertical axis
var edgePairs = [...]edgePair{
	{component.BottomHitsTop, vmath.SideBottom, vmath.SideTop, vmath.Above, vmath.Below},
	{component.TopHitsBottom, vmath.SideTop, vmath.SideBottom, vmath.Below, vmath.Above},
	{component.LeftHitsRight, vmath.SideLeft, vmath.SideRight, vmath.RightOf, vmath.LeftOf},
	{component.RightHitsLeft, vmath.SideRight, vmath.SideLeft, vmath.LeftOf, vmath.RightOf},
}

func pairFor(t component.CollisionType) edgePair {
	for _, p := range edgePairs {
		if p.typ == t {
			return p
		}
	}
	return edgePairs[0]
}

// Classify finds which edge of A strikes which edge of B between this tick and the next
// An edge pair qualifies when it is on the approach side (or aligned) now and crossed (or aligned) next tick
// With one qualifying pair per axis, the smaller next-tick edge distance wins
// Returns false when no pair qualifies
func Classify(curA, nextA, curB, nextB vmath.Rect) (Contact, bool) {
	var best Contact
	found := false

	for _, p := range edgePairs {
		now := vmath.MustRelativePosition(curA.Edge(p.sideA), curB.Edge(p.sideB))
		if now != p.approach && now != vmath.Aligned {
			continue
		}

		edgeA, edgeB := nextA.Edge(p.sideA), nextB.Edge(p.sideB)
		next := vmath.MustRelativePosition(edgeA, edgeB)
		if next != p.cross && next != vmath.Aligned {
			continue
		}

		d := vmath.MustDistance(edgeA, edgeB)
		if !found || d < best.Distance {
			best = Contact{Type: p.typ, Distance: d}
			found = true
		}
	}

	return best, found
}
