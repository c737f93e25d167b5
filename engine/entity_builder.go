package engine

import "github.com/lixenwraith/simple2d/core"

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components
//
// Example usage:
//
//	e := engine.With(
//	    engine.With(world.NewEntity(), world.Motions, motion),
//	    world.Bodies, body,
//	).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity reserves an entity id and returns a builder for it
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built
// Panics if called after Build()
func With[T any](eb *EntityBuilder, store *Store[T], c T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.Add(eb.entity, c)
	return eb
}

// WithKind attaches a default component by kind name, panics on an unknown kind
func (eb *EntityBuilder) WithKind(kindName string) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	if err := eb.world.AddComponent(eb.entity, kindName); err != nil {
		panic(err)
	}
	return eb
}

// Entity returns the reserved id without finishing the build
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build finalizes entity construction and returns the entity ID
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
