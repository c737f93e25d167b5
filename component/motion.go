package component

import "github.com/lixenwraith/simple2d/vmath"

// MotionComponent holds per-entity kinematics in world units per tick
type MotionComponent struct {
	Position     vmath.Vec2
	Velocity     vmath.Vec2
	Acceleration vmath.Vec2
}

// Step advances position by velocity, then velocity by acceleration
// Acceleration reaches position one tick later, matching the predictions below
func (m *MotionComponent) Step() error {
	m.Position = m.Position.Add(m.Velocity)
	m.Velocity = m.Velocity.Add(m.Acceleration)
	return nil
}

// PredictedNextPosition is the position after the next Step
func (m *MotionComponent) PredictedNextPosition() vmath.Vec2 {
	return m.Position.Add(m.Velocity)
}

// PredictedNextVelocity is the velocity after the next Step
func (m *MotionComponent) PredictedNextVelocity() vmath.Vec2 {
	return m.Velocity.Add(m.Acceleration)
}

func (m *MotionComponent) PositionAxis(a vmath.Axis) float64     { return m.Position.Get(a) }
func (m *MotionComponent) VelocityAxis(a vmath.Axis) float64     { return m.Velocity.Get(a) }
func (m *MotionComponent) AccelerationAxis(a vmath.Axis) float64 { return m.Acceleration.Get(a) }

func (m *MotionComponent) SetPositionAxis(a vmath.Axis, v float64) {
	m.Position = m.Position.With(a, v)
}

func (m *MotionComponent) SetVelocityAxis(a vmath.Axis, v float64) {
	m.Velocity = m.Velocity.With(a, v)
}

func (m *MotionComponent) SetAccelerationAxis(a vmath.Axis, v float64) {
	m.Acceleration = m.Acceleration.With(a, v)
}

func (m *MotionComponent) IncPositionAxis(a vmath.Axis, d float64) {
	m.SetPositionAxis(a, m.Position.Get(a)+d)
}

func (m *MotionComponent) IncVelocityAxis(a vmath.Axis, d float64) {
	m.SetVelocityAxis(a, m.Velocity.Get(a)+d)
}

func (m *MotionComponent) IncAccelerationAxis(a vmath.Axis, d float64) {
	m.SetAccelerationAxis(a, m.Acceleration.Get(a)+d)
}
