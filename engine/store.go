package engine

import (
	"github.com/lixenwraith/simple2d/component"
	"github.com/lixenwraith/simple2d/core"
)

// Store is a generic container for a specific component type T
// Uses sparse set pattern: map for lookup, slice for insertion-ordered iteration
// Not safe for concurrent use, the simulation is single-threaded
type Store[T any] struct {
	kind       component.Kind
	components map[core.Entity]*T
	entities   []core.Entity
	factory    func() T
}

// NewStore creates a store for kind, factory builds the default component for Attach
func NewStore[T any](kind component.Kind, factory func() T) *Store[T] {
	if factory == nil {
		factory = func() T {
			var zero T
			return zero
		}
	}
	return &Store[T]{
		kind:       kind,
		components: make(map[core.Entity]*T),
		entities:   make([]core.Entity, 0, 64),
		factory:    factory,
	}
}

// Kind returns the component kind held by this store
func (s *Store[T]) Kind() component.Kind {
	return s.kind
}

// Add inserts or replaces the component for an entity and returns the stored instance
// Replacing keeps the existing pointer valid
func (s *Store[T]) Add(e core.Entity, val T) *T {
	if c, exists := s.components[e]; exists {
		*c = val
		return c
	}
	c := new(T)
	*c = val
	s.components[e] = c
	s.entities = append(s.entities, e)
	return c
}

// Attach adds a default component built by the store factory
func (s *Store[T]) Attach(e core.Entity) {
	s.Add(e, s.factory())
}

// Get retrieves the component of an entity
func (s *Store[T]) Get(e core.Entity) (*T, bool) {
	c, ok := s.components[e]
	return c, ok
}

// Remove deletes the component of an entity, iteration order of the rest is kept
func (s *Store[T]) Remove(e core.Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// All returns a copy of the entities in insertion order
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.components = make(map[core.Entity]*T)
	s.entities = make([]core.Entity, 0, 64)
}

// RemoveBatch deletes the components of several entities with a single compaction of the order slice
// Entities without this component are ignored
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	if len(entities) == 0 || len(s.components) == 0 {
		return
	}

	toRemove := make(map[core.Entity]struct{}, len(entities))
	for _, e := range entities {
		if _, exists := s.components[e]; exists {
			toRemove[e] = struct{}{}
			delete(s.components, e)
		}
	}
	if len(toRemove) == 0 {
		return
	}

	writeIdx := 0
	for _, e := range s.entities {
		if _, remove := toRemove[e]; !remove {
			s.entities[writeIdx] = e
			writeIdx++
		}
	}
	s.entities = s.entities[:writeIdx]
}
