package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/simple2d/component"
	"github.com/lixenwraith/simple2d/core"
	"github.com/lixenwraith/simple2d/input"
	"github.com/lixenwraith/simple2d/vmath"
)

type recordingManager struct {
	kind component.Kind
	log  *[]component.Kind
	err  error
}

func (m *recordingManager) Kind() component.Kind { return m.kind }

func (m *recordingManager) Step(*World) error {
	*m.log = append(*m.log, m.kind)
	return m.err
}

func newTestWorld() *World {
	return NewWorld(Dimensions{Width: 640, Height: 480}, zap.NewNop())
}

func TestWorldStepOrder(t *testing.T) {
	w := newTestWorld()
	var order []component.Kind

	// Install in reverse to show slots, not insertion, decide the order
	for k := int(component.KindCount) - 1; k >= 0; k-- {
		w.SetManager(&recordingManager{kind: component.Kind(k), log: &order})
	}

	w.Step()

	assert.Equal(t, []component.Kind{
		component.KindBehavior,
		component.KindGravity,
		component.KindSprite,
		component.KindCollision,
		component.KindMotion,
		component.KindAnimatedSprite,
		component.KindRepetitiveSprite,
	}, order)
	assert.Equal(t, uint64(1), w.Tick())
}

func TestWorldStepContinuesAfterFailure(t *testing.T) {
	obs, logs := observer.New(zapcore.WarnLevel)
	w := NewWorld(Dimensions{Width: 100, Height: 100}, zap.New(obs))

	var order []component.Kind
	w.SetManager(&recordingManager{kind: component.KindGravity, log: &order, err: errors.New("boom")})
	w.SetManager(&recordingManager{kind: component.KindMotion, log: &order})

	w.Step()

	assert.Equal(t, []component.Kind{component.KindGravity, component.KindMotion}, order)
	assert.Equal(t, uint64(1), w.Failures())
	assert.Equal(t, int64(1), w.Status.Counter("world.failures").Load())
	require.Equal(t, 1, logs.FilterMessage("manager step failed").Len())
	assert.Equal(t, "downward_gravity", logs.All()[0].ContextMap()["kind"])
}

func TestWorldFactory(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	for _, name := range []string{"motion", "collision_body", "downward_gravity", "json", "static_sprite"} {
		require.NoError(t, w.AddComponent(e, name), name)
	}

	body, ok := w.Bodies.Get(e)
	require.True(t, ok)
	assert.True(t, body.Enabled, "attached bodies start enabled")

	tag, ok := w.Tags.Get(e)
	require.True(t, ok)
	assert.NotNil(t, tag.Data)

	err := w.AddComponent(e, "particle_emitter")
	assert.ErrorIs(t, err, core.ErrNotFound)

	w.DestroyEntity(e)
	assert.False(t, w.Motions.Has(e))
	assert.False(t, w.Bodies.Has(e))
	assert.False(t, w.Gravities.Has(e))
	assert.False(t, w.Tags.Has(e))
}

func TestWorldDestroyEntityBatch(t *testing.T) {
	w := NewWorld(Dimensions{Width: 100, Height: 100}, nil)
	var all []core.Entity
	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		w.Motions.Add(e, component.MotionComponent{})
		if i%2 == 0 {
			w.Bodies.Add(e, component.NewCollisionBody(vmath.Size{W: 1, H: 1}))
		}
		all = append(all, e)
	}

	w.DestroyEntity(all[0], all[3])
	assert.Equal(t, []core.Entity{all[1], all[2], all[4]}, w.Motions.All())
	assert.Equal(t, []core.Entity{all[2], all[4]}, w.Bodies.All())

	w.DestroyEntity()
	assert.Equal(t, 3, w.Motions.Count())
}

func TestWorldManagerLookup(t *testing.T) {
	w := newTestWorld()

	_, err := w.Manager(component.KindMotion)
	assert.ErrorIs(t, err, core.ErrNotFound)

	var order []component.Kind
	w.SetManager(&recordingManager{kind: component.KindMotion, log: &order})

	m, err := w.ManagerByName("motion")
	require.NoError(t, err)
	assert.Equal(t, component.KindMotion, m.Kind())

	_, err = w.ManagerByName("renderer")
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = w.Store(component.KindCount)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestWorldInputsClearedAfterTick(t *testing.T) {
	w := newTestWorld()
	w.PushInput(input.Press(input.KeyJump))
	assert.Len(t, w.Inputs(), 1)

	w.Step()
	assert.Empty(t, w.Inputs())
}

func TestWorldClose(t *testing.T) {
	w := newTestWorld()
	e := With(w.NewEntity(), w.Motions, component.MotionComponent{}).Build()
	var order []component.Kind
	w.SetManager(&recordingManager{kind: component.KindMotion, log: &order})

	w.Close()

	assert.False(t, w.Motions.Has(e))
	_, err := w.Manager(component.KindMotion)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestEntityBuilder(t *testing.T) {
	w := newTestWorld()

	e := With(
		With(w.NewEntity(), w.Motions, component.MotionComponent{Position: vmath.Vec2{X: 5, Y: 10}}),
		w.Bodies, component.NewCollisionBody(vmath.Size{W: 2, H: 2}),
	).WithKind("downward_gravity").Build()

	assert.NotZero(t, e)
	m, ok := w.Motions.Get(e)
	require.True(t, ok)
	assert.Equal(t, vmath.Vec2{X: 5, Y: 10}, m.Position)
	assert.True(t, w.Bodies.Has(e))
	assert.True(t, w.Gravities.Has(e))

	builder := w.NewEntity()
	reserved := builder.Entity()
	assert.Equal(t, reserved, builder.Build())
	assert.Panics(t, func() { With(builder, w.Motions, component.MotionComponent{}) })
	assert.Panics(t, func() { w.NewEntity().WithKind("unknown") })
}

func TestQuery(t *testing.T) {
	w := newTestWorld()

	e1 := w.CreateEntity()
	w.Motions.Add(e1, component.MotionComponent{})
	w.Sprites.Add(e1, component.SpriteComponent{Glyph: 'A'})

	e2 := w.CreateEntity()
	w.Motions.Add(e2, component.MotionComponent{})

	e3 := w.CreateEntity()
	w.Sprites.Add(e3, component.SpriteComponent{Glyph: 'B'})

	assert.Equal(t, []core.Entity{e1}, w.Query().With(w.Motions).With(w.Sprites).Execute())
	assert.Len(t, w.Query().With(w.Motions).Execute(), 2)
	assert.Empty(t, w.Query().Execute())

	q := w.Query().With(w.Motions)
	q.Execute()
	assert.Panics(t, func() { q.With(w.Sprites) })
}

func TestWorldDigestDeterministic(t *testing.T) {
	build := func() *World {
		w := newTestWorld()
		e := w.CreateEntity()
		w.Motions.Add(e, component.MotionComponent{Velocity: vmath.Vec2{X: 1, Y: 0.5}, Acceleration: vmath.Vec2{Y: 0.2}})
		w.Bodies.Add(e, component.NewCollisionBody(vmath.Size{W: 1, H: 1}))
		w.SetManager(NewKindManager[component.MotionComponent](w.Motions))
		return w
	}

	a, b := build(), build()
	for i := 0; i < 30; i++ {
		a.Step()
		b.Step()
	}
	assert.Equal(t, a.Digest(), b.Digest())

	a.Step()
	assert.NotEqual(t, a.Digest(), b.Digest())
}

func TestKindManagerReportsFailures(t *testing.T) {
	w := newTestWorld()
	good := w.CreateEntity()
	bad := w.CreateEntity()
	w.Animations.Add(good, component.AnimatedSpriteComponent{Frames: []component.Frame{{Glyph: 'a', Ticks: 1}, {Glyph: 'b', Ticks: 1}}})
	w.Animations.Add(bad, component.AnimatedSpriteComponent{Frames: []component.Frame{{Glyph: 'x', Ticks: 0}}})

	m := NewKindManager[component.AnimatedSpriteComponent](w.Animations)
	err := m.Step(w)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	a, _ := w.Animations.Get(good)
	assert.Equal(t, 'b', a.Glyph(), "other components still step")
}
