package vmath

import (
	"fmt"
	"math"

	"github.com/lixenwraith/simple2d/core"
)

// Side names one of the four edges of a rectangle
type Side uint8

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

var sideNames = [...]string{"top", "bottom", "left", "right"}

func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return "unknown"
}

// Edge is an axis-aligned segment starting at Origin
// AxisX edges are horizontal, AxisY edges are vertical
type Edge struct {
	Origin Vec2
	Axis   Axis
	Length float64
}

// RelPos is the position of one parallel edge relative to another
type RelPos uint8

const (
	Above RelPos = iota
	Below
	LeftOf
	RightOf
	Aligned
	Intersecting
)

var relPosNames = [...]string{"above", "below", "left_of", "right_of", "aligned", "intersecting"}

func (p RelPos) String() string {
	if int(p) < len(relPosNames) {
		return relPosNames[p]
	}
	return "unknown"
}

// coordinate returns the coordinate that differs between parallel edges of this axis
func (e Edge) coordinate() float64 {
	if e.Axis == AxisX {
		return e.Origin.Y
	}
	return e.Origin.X
}

func checkParallel(e1, e2 Edge) error {
	if e1.Axis != e2.Axis {
		return fmt.Errorf("edges not parallel (%s, %s): %w", e1.Axis, e2.Axis, core.ErrInvalidInput)
	}
	return nil
}

// RelativePosition classifies e1 against e2
// Horizontal edges compare y (Above/Below), vertical edges compare x (LeftOf/RightOf)
func RelativePosition(e1, e2 Edge) (RelPos, error) {
	if err := checkParallel(e1, e2); err != nil {
		return Intersecting, err
	}

	c1, c2 := e1.coordinate(), e2.coordinate()
	switch {
	case nearlyEqual(c1, c2):
		return Aligned, nil
	case e1.Axis == AxisX && c1 < c2:
		return Above, nil
	case e1.Axis == AxisX:
		return Below, nil
	case c1 < c2:
		return LeftOf, nil
	default:
		return RightOf, nil
	}
}

// Distance returns the gap between two parallel edges
func Distance(e1, e2 Edge) (float64, error) {
	if err := checkParallel(e1, e2); err != nil {
		return 0, err
	}
	return math.Abs(e1.coordinate() - e2.coordinate()), nil
}

// MustRelativePosition panics on non-parallel edges
func MustRelativePosition(e1, e2 Edge) RelPos {
	p, err := RelativePosition(e1, e2)
	if err != nil {
		panic(err)
	}
	return p
}

// MustDistance panics on non-parallel edges
func MustDistance(e1, e2 Edge) float64 {
	d, err := Distance(e1, e2)
	if err != nil {
		panic(err)
	}
	return d
}
