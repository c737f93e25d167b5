package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rect(x1, y1, x2, y2 float64) Rect {
	return Rect{TopLeft: Vec2{X: x1, Y: y1}, BottomRight: Vec2{X: x2, Y: y2}}
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"disjoint x", rect(0, 0, 10, 10), rect(11, 0, 20, 10), false},
		{"disjoint y", rect(0, 0, 10, 10), rect(0, 20, 10, 30), false},
		{"touching edge", rect(0, 0, 10, 10), rect(10, 0, 20, 10), true},
		{"touching corner", rect(0, 0, 10, 10), rect(10, 10, 20, 20), true},
		{"contained", rect(0, 0, 10, 10), rect(2, 2, 4, 4), true},
		{"partial", rect(0, 12, 10, 22), rect(0, 20, 10, 30), true},
		{"diagonal apart", rect(0, 0, 10, 10), rect(11, 11, 20, 20), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlap(tt.a, tt.b))
			assert.Equal(t, Overlap(tt.a, tt.b), Overlap(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestOverlapSymmetryGrid(t *testing.T) {
	base := rect(10, 10, 20, 20)
	for x := -5.0; x <= 25; x += 2.5 {
		for y := -5.0; y <= 25; y += 2.5 {
			other := RectAt(Vec2{X: x, Y: y}, Size{W: 5, H: 5})
			assert.Equal(t, Overlap(base, other), Overlap(other, base), "x=%v y=%v", x, y)
		}
	}
}

func TestPenetrates(t *testing.T) {
	assert.False(t, Penetrates(rect(0, 0, 10, 10), rect(10, 0, 20, 10)), "touching is not penetrating")
	assert.False(t, Penetrates(rect(0, 0, 10, 10), rect(0, 10, 10, 20)))
	assert.True(t, Penetrates(rect(0, 0, 10, 10), rect(5, 5, 15, 15)))
	assert.False(t, Penetrates(rect(0, 0, 10, 10), rect(20, 20, 30, 30)))
}

func TestRectEdges(t *testing.T) {
	r := rect(2, 4, 12, 24)

	top := r.Edge(SideTop)
	assert.Equal(t, Edge{Origin: Vec2{X: 2, Y: 4}, Axis: AxisX, Length: 10}, top)

	bottom := r.Edge(SideBottom)
	assert.Equal(t, Edge{Origin: Vec2{X: 2, Y: 24}, Axis: AxisX, Length: 10}, bottom)

	left := r.Edge(SideLeft)
	assert.Equal(t, Edge{Origin: Vec2{X: 2, Y: 4}, Axis: AxisY, Length: 20}, left)

	right := r.Edge(SideRight)
	assert.Equal(t, Edge{Origin: Vec2{X: 12, Y: 4}, Axis: AxisY, Length: 20}, right)
}

func TestRectUnionAndCorners(t *testing.T) {
	u := rect(0, 0, 10, 10).Union(rect(5, -5, 20, 8))
	assert.Equal(t, rect(0, -5, 20, 10), u)

	c := rect(1, 2, 3, 4).Corners()
	assert.Equal(t, Vec2{X: 3, Y: 2}, c[1])
	assert.Equal(t, Vec2{X: 1, Y: 4}, c[2])
}
