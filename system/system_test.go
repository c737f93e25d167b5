package system

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/simple2d/component"
	"github.com/lixenwraith/simple2d/core"
	"github.com/lixenwraith/simple2d/engine"
	"github.com/lixenwraith/simple2d/input"
)

func TestRegisterFillsEverySlot(t *testing.T) {
	w, _ := newWorld(t, nil, DefaultOptions())
	for k := component.Kind(0); k < component.KindCount; k++ {
		m, err := w.Manager(k)
		require.NoError(t, err, k.String())
		assert.Equal(t, k, m.Kind())
	}

	m, err := w.ManagerByName("collision_body")
	require.NoError(t, err)
	assert.IsType(t, &CollisionManager{}, m)
}

func TestRegisterRejectsBadCellSize(t *testing.T) {
	w := engine.NewWorld(engine.Dimensions{Width: 640, Height: 480}, nil)
	_, err := Register(w, Options{CellSize: -1})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestGravityAcceleratesMotion(t *testing.T) {
	w, _ := newWorld(t, nil, DefaultOptions())
	e := w.CreateEntity()
	w.Motions.Add(e, component.MotionComponent{})
	w.Gravities.Add(e, component.GravityComponent{Strength: 0.5})

	w.Step()
	m, _ := w.Motions.Get(e)
	assert.Equal(t, 0.5, m.Acceleration.Y)
	assert.Equal(t, 0.0, m.Position.Y, "position moves by the old velocity")
	assert.Equal(t, 0.5, m.Velocity.Y)

	w.Step()
	assert.Equal(t, 0.5, m.Position.Y)
	assert.Equal(t, 1.0, m.Velocity.Y)
}

func TestGravityWithoutMotionFails(t *testing.T) {
	w := engine.NewWorld(engine.Dimensions{Width: 640, Height: 480}, nil)
	e := w.CreateEntity()
	w.Gravities.Attach(e)

	err := NewGravityManager().Step(w)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestBehaviorRunsEventsBeforeTick(t *testing.T) {
	w, _ := newWorld(t, nil, DefaultOptions())
	e := w.CreateEntity()

	var trace []string
	w.Behaviors.Add(e, component.BehaviorComponent{
		OnKeyDown: func(_ core.Entity, k input.Key) { trace = append(trace, "down:"+k.String()) },
		OnKeyUp:   func(_ core.Entity, k input.Key) { trace = append(trace, "up:"+k.String()) },
		OnTick: func(core.Entity) error {
			trace = append(trace, "tick")
			return nil
		},
	})

	w.PushInput(input.Press(input.KeyLeft))
	w.PushInput(input.Release(input.KeyLeft))
	w.Step()
	w.Step()

	assert.Equal(t, []string{"down:left", "up:left", "tick", "tick"}, trace)
}

func TestBehaviorErrorsJoined(t *testing.T) {
	w := engine.NewWorld(engine.Dimensions{Width: 640, Height: 480}, nil)
	boom := errors.New("boom")
	for i := 0; i < 2; i++ {
		w.Behaviors.Add(w.CreateEntity(), component.BehaviorComponent{
			OnTick: func(core.Entity) error { return boom },
		})
	}

	err := NewBehaviorManager().Step(w)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
