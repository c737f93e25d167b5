package system

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/simple2d/component"
	"github.com/lixenwraith/simple2d/engine"
)

// BehaviorManager runs entity scripts: queued key events first, then the tick handler
type BehaviorManager struct{}

func NewBehaviorManager() *BehaviorManager {
	return &BehaviorManager{}
}

func (m *BehaviorManager) Kind() component.Kind {
	return component.KindBehavior
}

func (m *BehaviorManager) Step(w *engine.World) error {
	events := w.Inputs()

	var errs []error
	for _, e := range w.Behaviors.All() {
		b, ok := w.Behaviors.Get(e)
		if !ok {
			// Removed by an earlier script this tick
			continue
		}
		b.Dispatch(e, events)
		if err := b.Tick(e); err != nil {
			errs = append(errs, fmt.Errorf("entity %d behavior: %w", e, err))
		}
	}
	return errors.Join(errs...)
}
