package component

import (
	"github.com/lixenwraith/simple2d/core"
	"github.com/lixenwraith/simple2d/vmath"
)

// CollisionType names which edge of self struck which edge of other
type CollisionType uint8

const (
	BottomHitsTop CollisionType = iota // self's bottom edge met other's top edge
	TopHitsBottom
	LeftHitsRight
	RightHitsLeft
)

var collisionTypeNames = [...]string{"bottom_hits_top", "top_hits_bottom", "left_hits_right", "right_hits_left"}

func (t CollisionType) String() string {
	if int(t) < len(collisionTypeNames) {
		return collisionTypeNames[t]
	}
	return "unknown"
}

// Mirror returns the same collision seen from the other body
func (t CollisionType) Mirror() CollisionType {
	switch t {
	case BottomHitsTop:
		return TopHitsBottom
	case TopHitsBottom:
		return BottomHitsTop
	case LeftHitsRight:
		return RightHitsLeft
	default:
		return LeftHitsRight
	}
}

// Axis is the axis along which the bodies are separated
func (t CollisionType) Axis() vmath.Axis {
	if t == BottomHitsTop || t == TopHitsBottom {
		return vmath.AxisY
	}
	return vmath.AxisX
}

// CollisionCallback is invoked once per colliding pair per tick
type CollisionCallback func(self, other core.Entity, t CollisionType)

// CollisionBodyComponent is the rectangular proxy of an entity for collision purposes
// The box is derived from the entity's motion position plus Offset
type CollisionBodyComponent struct {
	Enabled  bool
	Size     vmath.Size
	Offset   vmath.Vec2
	Callback CollisionCallback
}

// NewCollisionBody returns an enabled body of the given size
func NewCollisionBody(size vmath.Size) CollisionBodyComponent {
	return CollisionBodyComponent{Enabled: true, Size: size}
}

// Step is a no-op, pair logic lives in the collision manager
func (c *CollisionBodyComponent) Step() error { return nil }

// Notify invokes the callback if one is registered
func (c *CollisionBodyComponent) Notify(self, other core.Entity, t CollisionType) {
	if c.Callback != nil {
		c.Callback(self, other, t)
	}
}
