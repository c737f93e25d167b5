package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/simple2d/component"
)

// Manager advances every component of one kind by one tick
// The world is passed explicitly, managers hold no global state
type Manager interface {
	Kind() component.Kind
	Step(w *World) error
}

// Stepper constrains PT to a pointer to T implementing component.Component
type Stepper[T any] interface {
	*T
	component.Component
}

// KindManager steps self-contained components in store order
// A failing component is reported and the rest are still stepped
type KindManager[T any, PT Stepper[T]] struct {
	store *Store[T]
}

// NewKindManager wraps a store
func NewKindManager[T any, PT Stepper[T]](store *Store[T]) *KindManager[T, PT] {
	return &KindManager[T, PT]{store: store}
}

func (m *KindManager[T, PT]) Kind() component.Kind {
	return m.store.Kind()
}

func (m *KindManager[T, PT]) Step(_ *World) error {
	var errs []error
	for _, e := range m.store.All() {
		c, ok := m.store.Get(e)
		if !ok {
			continue
		}
		if err := PT(c).Step(); err != nil {
			errs = append(errs, fmt.Errorf("entity %d: %w", e, err))
		}
	}
	return errors.Join(errs...)
}
