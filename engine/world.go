package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/simple2d/component"
	"github.com/lixenwraith/simple2d/core"
	"github.com/lixenwraith/simple2d/input"
	"github.com/lixenwraith/simple2d/status"
)

// TickOrder is the fixed order managers are stepped in every tick
var TickOrder = [...]component.Kind{
	component.KindBehavior,
	component.KindGravity,
	component.KindSprite,
	component.KindCollision,
	component.KindMotion,
	component.KindAnimatedSprite,
	component.KindRepetitiveSprite,
}

// Dimensions is the world extent in world units, fixed for the world's lifetime
type Dimensions struct {
	Width, Height float64
}

// World is the simulation context: typed component stores, manager slots and the tick counter
// It is passed explicitly to every manager step
type World struct {
	ID     uuid.UUID
	Dims   Dimensions
	Log    *zap.Logger
	Status *status.Registry

	Behaviors  *Store[component.BehaviorComponent]
	Gravities  *Store[component.GravityComponent]
	Sprites    *Store[component.SpriteComponent]
	Bodies     *Store[component.CollisionBodyComponent]
	Motions    *Store[component.MotionComponent]
	Animations *Store[component.AnimatedSpriteComponent]
	Tiles      *Store[component.RepetitiveSpriteComponent]
	Tags       *Store[component.TagComponent]

	// Indexed by component.Kind
	stores   [component.KindCount]AnyStore
	managers [component.KindCount]Manager

	tick     uint64
	failures uint64
	inputs   []input.Event

	tickCounter    *atomic.Int64
	failureCounter *atomic.Int64
}

// NewWorld creates an empty world, nil logger discards output
func NewWorld(dims Dimensions, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.New()
	reg := status.NewRegistry()

	w := &World{
		ID:     id,
		Dims:   dims,
		Log:    log.With(zap.String("scene", id.String())),
		Status: reg,

		Behaviors:  NewStore[component.BehaviorComponent](component.KindBehavior, nil),
		Gravities:  NewStore(component.KindGravity, component.NewGravity),
		Sprites:    NewStore[component.SpriteComponent](component.KindSprite, nil),
		Bodies:     NewStore(component.KindCollision, func() component.CollisionBodyComponent { return component.CollisionBodyComponent{Enabled: true} }),
		Motions:    NewStore[component.MotionComponent](component.KindMotion, nil),
		Animations: NewStore[component.AnimatedSpriteComponent](component.KindAnimatedSprite, nil),
		Tiles:      NewStore[component.RepetitiveSpriteComponent](component.KindRepetitiveSprite, nil),
		Tags:       NewStore(component.KindTag, component.NewTag),

		tickCounter:    reg.Counter("world.ticks"),
		failureCounter: reg.Counter("world.failures"),
	}

	for _, s := range []AnyStore{w.Behaviors, w.Gravities, w.Sprites, w.Bodies, w.Motions, w.Animations, w.Tiles, w.Tags} {
		w.stores[s.Kind()] = s
	}
	return w
}

// CreateEntity allocates a new entity id, components are added through the stores or AddComponent
func (w *World) CreateEntity() core.Entity {
	return core.NewEntity()
}

// DestroyEntity removes every component of the given entities, one compaction pass per store
func (w *World) DestroyEntity(entities ...core.Entity) {
	if len(entities) == 0 {
		return
	}
	for _, s := range w.stores {
		s.RemoveBatch(entities)
	}
}

// AddComponent attaches a default component by kind name
func (w *World) AddComponent(e core.Entity, kindName string) error {
	kind, err := component.ParseKind(kindName)
	if err != nil {
		return err
	}
	w.stores[kind].Attach(e)
	return nil
}

// Store returns the type-erased store for kind
func (w *World) Store(kind component.Kind) (AnyStore, error) {
	if kind >= component.KindCount {
		return nil, fmt.Errorf("store %s: %w", kind, core.ErrNotFound)
	}
	return w.stores[kind], nil
}

// SetManager installs the manager into its kind slot, replacing any previous one
func (w *World) SetManager(m Manager) {
	w.managers[m.Kind()] = m
}

// Manager returns the manager in the kind slot
func (w *World) Manager(kind component.Kind) (Manager, error) {
	if kind >= component.KindCount || w.managers[kind] == nil {
		return nil, fmt.Errorf("manager %s: %w", kind, core.ErrNotFound)
	}
	return w.managers[kind], nil
}

// ManagerByName resolves a kind name then its manager
func (w *World) ManagerByName(name string) (Manager, error) {
	kind, err := component.ParseKind(name)
	if err != nil {
		return nil, err
	}
	return w.Manager(kind)
}

// PushInput queues an input event for the next tick's behavior step
func (w *World) PushInput(ev input.Event) {
	w.inputs = append(w.inputs, ev)
}

// Inputs returns the events queued for the current tick
func (w *World) Inputs() []input.Event {
	return w.inputs
}

// Tick returns the number of completed ticks
func (w *World) Tick() uint64 {
	return w.tick
}

// Failures returns the number of manager steps that reported an error
func (w *World) Failures() uint64 {
	return w.failures
}

// Step runs one tick: every installed manager in TickOrder
// A failing manager is logged and the tick continues
func (w *World) Step() {
	w.tick++
	w.tickCounter.Add(1)
	for _, kind := range TickOrder {
		m := w.managers[kind]
		if m == nil {
			continue
		}
		if err := m.Step(w); err != nil {
			w.failures++
			w.failureCounter.Add(1)
			w.Log.Warn("manager step failed",
				zap.Stringer("kind", kind),
				zap.Uint64("tick", w.tick),
				zap.Error(err))
		}
	}
	w.inputs = w.inputs[:0]
}

// Close tears the world down in reverse kind order
func (w *World) Close() {
	for k := int(component.KindCount) - 1; k >= 0; k-- {
		w.managers[k] = nil
		w.stores[k].Clear()
	}
	w.inputs = nil
	_ = w.Log.Sync()
}
