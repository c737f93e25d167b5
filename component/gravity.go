package component

import "github.com/lixenwraith/simple2d/parameter"

// GravityComponent pulls its entity's motion downward
type GravityComponent struct {
	Strength float64
}

// NewGravity uses the default gravity strength
func NewGravity() GravityComponent {
	return GravityComponent{Strength: parameter.Gravity}
}

// Apply overwrites the vertical acceleration, other forces on y do not accumulate
func (g *GravityComponent) Apply(m *MotionComponent) {
	m.Acceleration.Y = g.Strength
}
