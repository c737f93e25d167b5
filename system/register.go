package system

import (
	"github.com/lixenwraith/simple2d/component"
	"github.com/lixenwraith/simple2d/engine"
	"github.com/lixenwraith/simple2d/parameter"
)

// Managers for kinds whose components step themselves
type (
	MotionManager           = engine.KindManager[component.MotionComponent, *component.MotionComponent]
	SpriteManager           = engine.KindManager[component.SpriteComponent, *component.SpriteComponent]
	AnimationManager        = engine.KindManager[component.AnimatedSpriteComponent, *component.AnimatedSpriteComponent]
	RepetitiveSpriteManager = engine.KindManager[component.RepetitiveSpriteComponent, *component.RepetitiveSpriteComponent]
	TagManager              = engine.KindManager[component.TagComponent, *component.TagComponent]
)

// Options configures the managers installed by Register
type Options struct {
	CellSize   float64
	BroadPhase BroadPhase
}

// DefaultOptions uses the default cell size and current-box broad phase
func DefaultOptions() Options {
	return Options{CellSize: parameter.CollisionCellSize, BroadPhase: BroadPhaseCurrent}
}

// Register installs a manager into every kind slot of the world and returns the collision manager
func Register(w *engine.World, opts Options) (*CollisionManager, error) {
	if opts.CellSize == 0 {
		opts.CellSize = parameter.CollisionCellSize
	}

	collision, err := NewCollisionManager(w, opts.CellSize, opts.BroadPhase)
	if err != nil {
		return nil, err
	}

	w.SetManager(NewBehaviorManager())
	w.SetManager(NewGravityManager())
	w.SetManager(engine.NewKindManager[component.SpriteComponent](w.Sprites))
	w.SetManager(collision)
	w.SetManager(engine.NewKindManager[component.MotionComponent](w.Motions))
	w.SetManager(engine.NewKindManager[component.AnimatedSpriteComponent](w.Animations))
	w.SetManager(engine.NewKindManager[component.RepetitiveSpriteComponent](w.Tiles))
	w.SetManager(engine.NewKindManager[component.TagComponent](w.Tags))

	return collision, nil
}

var (
	_ engine.Manager = (*MotionManager)(nil)
	_ engine.Manager = (*SpriteManager)(nil)
	_ engine.Manager = (*AnimationManager)(nil)
	_ engine.Manager = (*RepetitiveSpriteManager)(nil)
	_ engine.Manager = (*TagManager)(nil)
	_ engine.Manager = (*CollisionManager)(nil)
	_ engine.Manager = (*GravityManager)(nil)
	_ engine.Manager = (*BehaviorManager)(nil)
)
