package system

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/simple2d/component"
	"github.com/lixenwraith/simple2d/core"
	"github.com/lixenwraith/simple2d/engine"
	"github.com/lixenwraith/simple2d/physics"
	"github.com/lixenwraith/simple2d/vmath"
)

// BroadPhase selects the box inserted into the collision grid
type BroadPhase uint8

const (
	// BroadPhaseCurrent inserts the current-tick box
	BroadPhaseCurrent BroadPhase = iota
	// BroadPhaseSwept inserts the union of the current and next-tick boxes
	BroadPhaseSwept
)

// ParseBroadPhase resolves "current" or "swept", empty means current
func ParseBroadPhase(s string) (BroadPhase, error) {
	switch s {
	case "", "current":
		return BroadPhaseCurrent, nil
	case "swept":
		return BroadPhaseSwept, nil
	}
	return BroadPhaseCurrent, fmt.Errorf("broad phase %q: %w", s, core.ErrInvalidInput)
}

// CollisionStats counts what happened to candidate pairs in one tick
type CollisionStats struct {
	Pairs       int // pairs narrow-phase tested
	Collisions  int // pairs resolved and notified
	Overlapping int // pairs already penetrating, left unresolved
	Skipped     int // pairs dropped on a lookup failure or unclassifiable contact
}

type pairKey struct {
	lo, hi core.Entity
}

func makePairKey(a, b core.Entity) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// CollisionManager detects and resolves swept collisions between body pairs sharing a grid cell
// Each pair is evaluated at most once per tick regardless of how many cells it shares
type CollisionManager struct {
	grid       *engine.CollisionGrid
	broadPhase BroadPhase
	log        *zap.Logger

	seen  map[pairKey]struct{}
	stats CollisionStats

	// Running totals in the world's status registry
	totalPairs, totalCollisions, totalOverlapping, totalSkipped *atomic.Int64
}

// NewCollisionManager sizes the grid from the world dimensions
func NewCollisionManager(w *engine.World, cellSize float64, broadPhase BroadPhase) (*CollisionManager, error) {
	grid, err := engine.NewCollisionGrid(w.Dims, cellSize)
	if err != nil {
		return nil, fmt.Errorf("collision manager: %w", err)
	}
	return &CollisionManager{
		grid:       grid,
		broadPhase: broadPhase,
		log:        w.Log.With(zap.String("manager", "collision")),
		seen:       make(map[pairKey]struct{}, 64),

		totalPairs:       w.Status.Counter("collision.pairs"),
		totalCollisions:  w.Status.Counter("collision.collisions"),
		totalOverlapping: w.Status.Counter("collision.overlapping"),
		totalSkipped:     w.Status.Counter("collision.skipped"),
	}, nil
}

func (m *CollisionManager) Kind() component.Kind {
	return component.KindCollision
}

// Grid exposes the spatial hash as rebuilt by the last step
func (m *CollisionManager) Grid() *engine.CollisionGrid {
	return m.grid
}

// Stats returns the counters of the last step
func (m *CollisionManager) Stats() CollisionStats {
	return m.stats
}

// Body joins the collision and motion components of an entity
func (m *CollisionManager) Body(w *engine.World, e core.Entity) (physics.Body, error) {
	shape, ok := w.Bodies.Get(e)
	if !ok {
		return physics.Body{}, fmt.Errorf("entity %d collision body: %w", e, core.ErrNotFound)
	}
	motion, ok := w.Motions.Get(e)
	if !ok {
		return physics.Body{}, fmt.Errorf("entity %d motion: %w", e, core.ErrNotFound)
	}
	return physics.Body{Motion: motion, Shape: shape}, nil
}

// CurrentBox is the entity's collision box at its motion position
func (m *CollisionManager) CurrentBox(w *engine.World, e core.Entity) (vmath.Rect, error) {
	b, err := m.Body(w, e)
	if err != nil {
		return vmath.Rect{}, err
	}
	return b.CurrentBox(), nil
}

// NextTickBox is the entity's collision box after the next motion step
func (m *CollisionManager) NextTickBox(w *engine.World, e core.Entity) (vmath.Rect, error) {
	b, err := m.Body(w, e)
	if err != nil {
		return vmath.Rect{}, err
	}
	return b.NextTickBox(), nil
}

// Step rebuilds the grid, then tests every unordered pair per occupied cell
func (m *CollisionManager) Step(w *engine.World) error {
	m.stats = CollisionStats{}
	clear(m.seen)

	m.rebuild(w)

	for _, id := range m.grid.Occupied() {
		cell := m.grid.At(id)
		for i := 0; i < len(cell); i++ {
			for j := i + 1; j < len(cell); j++ {
				key := makePairKey(cell[i], cell[j])
				if _, done := m.seen[key]; done {
					continue
				}
				m.seen[key] = struct{}{}
				m.resolvePair(w, cell[i], cell[j])
			}
		}
	}

	m.totalPairs.Add(int64(m.stats.Pairs))
	m.totalCollisions.Add(int64(m.stats.Collisions))
	m.totalOverlapping.Add(int64(m.stats.Overlapping))
	m.totalSkipped.Add(int64(m.stats.Skipped))
	return nil
}

func (m *CollisionManager) rebuild(w *engine.World) {
	m.grid.Clear()
	for _, e := range w.Bodies.All() {
		shape, _ := w.Bodies.Get(e)
		if !shape.Enabled {
			continue
		}
		motion, ok := w.Motions.Get(e)
		if !ok {
			m.log.Debug("collision body without motion", zap.Uint64("entity", uint64(e)))
			continue
		}

		b := physics.Body{Motion: motion, Shape: shape}
		box := b.CurrentBox()
		if m.broadPhase == BroadPhaseSwept {
			box = box.Union(b.NextTickBox())
		}
		m.grid.Insert(e, box)
	}
}

func (m *CollisionManager) resolvePair(w *engine.World, ea, eb core.Entity) {
	a, err := m.Body(w, ea)
	if err != nil {
		m.skip(ea, eb, err)
		return
	}
	b, err := m.Body(w, eb)
	if err != nil {
		m.skip(ea, eb, err)
		return
	}
	m.collide(ea, eb, a, b)
}

func (m *CollisionManager) skip(ea, eb core.Entity, err error) {
	m.stats.Skipped++
	m.log.Warn("pair lookup failed",
		zap.Uint64("entity", uint64(ea)),
		zap.Uint64("other", uint64(eb)),
		zap.Error(err))
}

func (m *CollisionManager) collide(ea, eb core.Entity, a, b physics.Body) {
	// A callback earlier this tick may have disabled either body
	if !a.Shape.Enabled || !b.Shape.Enabled {
		return
	}
	m.stats.Pairs++

	curA, curB := a.CurrentBox(), b.CurrentBox()
	if vmath.Penetrates(curA, curB) {
		m.stats.Overlapping++
		m.log.Warn("bodies already overlapping, pair left unresolved",
			zap.Uint64("entity", uint64(ea)),
			zap.Uint64("other", uint64(eb)))
		return
	}

	nextA, nextB := a.NextTickBox(), b.NextTickBox()
	if !vmath.Overlap(nextA, nextB) {
		return
	}

	contact, ok := physics.Classify(curA, nextA, curB, nextB)
	if !ok {
		m.stats.Skipped++
		m.log.Debug("contact without striking edge pair",
			zap.Uint64("entity", uint64(ea)),
			zap.Uint64("other", uint64(eb)))
		return
	}

	physics.Apply(physics.Resolve(a, b, contact), a.Motion, b.Motion)
	m.stats.Collisions++

	a.Shape.Notify(ea, eb, contact.Type)
	b.Shape.Notify(eb, ea, contact.Type.Mirror())
}
