package render

import "github.com/lixenwraith/simple2d/vmath"

// Camera is the visible window into the world, in world units
type Camera struct {
	Position vmath.Vec2
	Size     vmath.Size
	Margin   float64
	// Bounds clamps the camera, zero size means unbounded
	Bounds vmath.Size
}

// View is the world rectangle currently visible
func (c *Camera) View() vmath.Rect {
	return vmath.RectAt(c.Position, c.Size)
}

// Follow scrolls just enough to keep target Margin inside the view on each axis
// A margin larger than half the view centers the target instead
func (c *Camera) Follow(target vmath.Rect) {
	c.Position.X = follow1(c.Position.X, c.Size.W, c.Margin, target.TopLeft.X, target.BottomRight.X)
	c.Position.Y = follow1(c.Position.Y, c.Size.H, c.Margin, target.TopLeft.Y, target.BottomRight.Y)
	c.clamp()
}

func follow1(pos, extent, margin, lo, hi float64) float64 {
	if 2*margin+(hi-lo) > extent {
		return (lo+hi)/2 - extent/2
	}
	if lo < pos+margin {
		pos = lo - margin
	}
	if hi > pos+extent-margin {
		pos = hi - extent + margin
	}
	return pos
}

func (c *Camera) clamp() {
	if c.Bounds.W > 0 {
		c.Position.X = clamp1(c.Position.X, c.Bounds.W-c.Size.W)
	}
	if c.Bounds.H > 0 {
		c.Position.Y = clamp1(c.Position.Y, c.Bounds.H-c.Size.H)
	}
}

func clamp1(v, hi float64) float64 {
	if hi < 0 {
		return 0
	}
	return max(0, min(v, hi))
}
