package engine

import (
	"github.com/lixenwraith/simple2d/component"
	"github.com/lixenwraith/simple2d/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World uses it for entity destruction, the kind factory and teardown without knowing the concrete type
type AnyStore interface {
	Kind() component.Kind

	// Attach adds a default component of the store's kind
	Attach(e core.Entity)

	Remove(e core.Entity)
	RemoveBatch(entities []core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()

	// All returns the entities holding this component in insertion order
	All() []core.Entity
}

var (
	_ AnyStore = (*Store[component.MotionComponent])(nil)
	_ AnyStore = (*Store[component.TagComponent])(nil)
)
