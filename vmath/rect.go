package vmath

// Rect is an axis-aligned rectangle given by its top-left and bottom-right corners
type Rect struct {
	TopLeft     Vec2
	BottomRight Vec2
}

// RectAt builds a rectangle from an origin and a size
func RectAt(origin Vec2, size Size) Rect {
	return Rect{TopLeft: origin, BottomRight: origin.Add(size.Vec())}
}

func (r Rect) Width() float64  { return r.BottomRight.X - r.TopLeft.X }
func (r Rect) Height() float64 { return r.BottomRight.Y - r.TopLeft.Y }

// Corners returns top-left, top-right, bottom-left, bottom-right
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		r.TopLeft,
		{X: r.BottomRight.X, Y: r.TopLeft.Y},
		{X: r.TopLeft.X, Y: r.BottomRight.Y},
		r.BottomRight,
	}
}

// Translate returns the rectangle moved by d
func (r Rect) Translate(d Vec2) Rect {
	return Rect{TopLeft: r.TopLeft.Add(d), BottomRight: r.BottomRight.Add(d)}
}

// Union returns the smallest rectangle containing both
func (r Rect) Union(o Rect) Rect {
	return Rect{
		TopLeft:     Vec2{X: min(r.TopLeft.X, o.TopLeft.X), Y: min(r.TopLeft.Y, o.TopLeft.Y)},
		BottomRight: Vec2{X: max(r.BottomRight.X, o.BottomRight.X), Y: max(r.BottomRight.Y, o.BottomRight.Y)},
	}
}

// Edge returns one side of the rectangle as an axis-aligned edge
func (r Rect) Edge(side Side) Edge {
	switch side {
	case SideTop:
		return Edge{Origin: r.TopLeft, Axis: AxisX, Length: r.Width()}
	case SideBottom:
		return Edge{Origin: Vec2{X: r.TopLeft.X, Y: r.BottomRight.Y}, Axis: AxisX, Length: r.Width()}
	case SideLeft:
		return Edge{Origin: r.TopLeft, Axis: AxisY, Length: r.Height()}
	default:
		return Edge{Origin: Vec2{X: r.BottomRight.X, Y: r.TopLeft.Y}, Axis: AxisY, Length: r.Height()}
	}
}

// Overlap reports whether two rectangles share any point, touching edges included
func Overlap(a, b Rect) bool {
	if a.TopLeft.X > b.BottomRight.X+Epsilon || a.BottomRight.X < b.TopLeft.X-Epsilon {
		return false
	}
	if a.TopLeft.Y > b.BottomRight.Y+Epsilon || a.BottomRight.Y < b.TopLeft.Y-Epsilon {
		return false
	}
	return true
}

// Penetrates reports whether two rectangles share interior area on both axes
// Touching rectangles do not penetrate
func Penetrates(a, b Rect) bool {
	dx := min(a.BottomRight.X, b.BottomRight.X) - max(a.TopLeft.X, b.TopLeft.X)
	dy := min(a.BottomRight.Y, b.BottomRight.Y) - max(a.TopLeft.Y, b.TopLeft.Y)
	return dx > Epsilon && dy > Epsilon
}
