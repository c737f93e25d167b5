package physics

import (
	"github.com/lixenwraith/simple2d/component"
	"github.com/lixenwraith/simple2d/vmath"
)

// Body pairs the motion and collision components of one entity
// Functions in this package read through it and never write
type Body struct {
	Motion *component.MotionComponent
	Shape  *component.CollisionBodyComponent
}

// CurrentBox is the body rectangle at the motion position
func (b Body) CurrentBox() vmath.Rect {
	return vmath.RectAt(b.Motion.Position.Add(b.Shape.Offset), b.Shape.Size)
}

// NextTickBox is the body rectangle after the next motion step
func (b Body) NextTickBox() vmath.Rect {
	return vmath.RectAt(b.Motion.PredictedNextPosition().Add(b.Shape.Offset), b.Shape.Size)
}

// edgeCoord is the coordinate of a rectangle side along its normal
func edgeCoord(r vmath.Rect, s vmath.Side) float64 {
	switch s {
	case vmath.SideTop:
		return r.TopLeft.Y
	case vmath.SideBottom:
		return r.BottomRight.Y
	case vmath.SideLeft:
		return r.TopLeft.X
	default:
		return r.BottomRight.X
	}
}

// sideDir is +1 for sides facing positive coordinates (bottom, right), -1 otherwise
func sideDir(s vmath.Side) float64 {
	if s == vmath.SideBottom || s == vmath.SideRight {
		return 1
	}
	return -1
}

// sideExtent is the distance from the box origin to the side along its normal
func sideExtent(s vmath.Side, size vmath.Size) float64 {
	switch s {
	case vmath.SideBottom:
		return size.H
	case vmath.SideRight:
		return size.W
	default:
		return 0
	}
}
