package system

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/simple2d/component"
	"github.com/lixenwraith/simple2d/core"
	"github.com/lixenwraith/simple2d/engine"
)

// GravityManager sets the downward acceleration of every entity with a gravity component
type GravityManager struct{}

func NewGravityManager() *GravityManager {
	return &GravityManager{}
}

func (m *GravityManager) Kind() component.Kind {
	return component.KindGravity
}

func (m *GravityManager) Step(w *engine.World) error {
	var errs []error
	for _, e := range w.Gravities.All() {
		g, ok := w.Gravities.Get(e)
		if !ok {
			continue
		}
		motion, ok := w.Motions.Get(e)
		if !ok {
			errs = append(errs, fmt.Errorf("entity %d gravity needs motion: %w", e, core.ErrNotFound))
			continue
		}
		g.Apply(motion)
	}
	return errors.Join(errs...)
}
