package vmath

import "math"

// Epsilon is the tolerance for coordinate equality in edge classification
const Epsilon = 1e-9

// Axis selects a coordinate of a vector, or the alignment of an edge
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Other returns the perpendicular axis
func (a Axis) Other() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// Vec2 is a 2D float vector in world units, y grows downward
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Get returns the coordinate on axis
func (v Vec2) Get(a Axis) float64 {
	if a == AxisX {
		return v.X
	}
	return v.Y
}

// With returns a copy with the coordinate on axis replaced
func (v Vec2) With(a Axis, val float64) Vec2 {
	if a == AxisX {
		v.X = val
	} else {
		v.Y = val
	}
	return v
}

// Size is a width/height pair
type Size struct {
	W, H float64
}

// Vec returns the size as an extent vector
func (s Size) Vec() Vec2 {
	return Vec2{X: s.W, Y: s.H}
}

// Get returns the extent along axis
func (s Size) Get(a Axis) float64 {
	if a == AxisX {
		return s.W
	}
	return s.H
}

// nearlyEqual compares within Epsilon
func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}
