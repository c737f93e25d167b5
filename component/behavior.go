package component

import (
	"github.com/lixenwraith/simple2d/core"
	"github.com/lixenwraith/simple2d/input"
)

// BehaviorComponent is a per-entity script driven by the behavior manager
// Key handlers run for every queued event before OnTick
type BehaviorComponent struct {
	OnKeyDown func(self core.Entity, key input.Key)
	OnKeyUp   func(self core.Entity, key input.Key)
	OnTick    func(self core.Entity) error
}

// Dispatch delivers events to the key handlers in order
func (b *BehaviorComponent) Dispatch(self core.Entity, events []input.Event) {
	for _, ev := range events {
		if ev.Pressed {
			if b.OnKeyDown != nil {
				b.OnKeyDown(self, ev.Key)
			}
		} else if b.OnKeyUp != nil {
			b.OnKeyUp(self, ev.Key)
		}
	}
}

// Tick runs the per-tick script
func (b *BehaviorComponent) Tick(self core.Entity) error {
	if b.OnTick == nil {
		return nil
	}
	return b.OnTick(self)
}
