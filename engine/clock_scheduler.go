package engine

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/simple2d/parameter"
	"github.com/lixenwraith/simple2d/status"
)

// FrameHooks run once per outer iteration of the scheduler, never inside a tick
type FrameHooks struct {
	// Poll moves pending input into the world, returning false requests quit
	Poll func(w *World) bool

	// Render draws the world after the due ticks have run
	Render func(w *World)
}

// ClockScheduler drives the world on a fixed tick
// Elapsed game time divided by the tick interval gives the ticks to run per outer iteration
type ClockScheduler struct {
	world *World
	clock *PausableClock

	tickInterval time.Duration
	maxCatchUp   int
	lastTick     time.Time // game time of the last tick boundary

	tickCount atomic.Uint64
	dropped   atomic.Uint64

	droppedCounter *atomic.Int64
	catchUpGauge   *status.Gauge
}

// NewClockScheduler creates a scheduler with the given interval, maxCatchUp <= 0 uses the default bound
func NewClockScheduler(w *World, clock *PausableClock, tickInterval time.Duration, maxCatchUp int) *ClockScheduler {
	if tickInterval <= 0 {
		tickInterval = parameter.TickInterval
	}
	if maxCatchUp <= 0 {
		maxCatchUp = parameter.MaxCatchUpTicks
	}
	return &ClockScheduler{
		world:        w,
		clock:        clock,
		tickInterval: tickInterval,
		maxCatchUp:   maxCatchUp,
		lastTick:     clock.Now(),

		droppedCounter: w.Status.Counter("scheduler.dropped"),
		catchUpGauge:   w.Status.Gauge("scheduler.catch_up"),
	}
}

// TickCount returns ticks run by this scheduler
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Dropped returns ticks skipped because the backlog exceeded the catch-up bound
func (cs *ClockScheduler) Dropped() uint64 {
	return cs.dropped.Load()
}

// Advance runs every tick due at game time now and returns how many ran
func (cs *ClockScheduler) Advance(now time.Time) int {
	elapsed := now.Sub(cs.lastTick)
	if elapsed < cs.tickInterval {
		return 0
	}

	due := int(elapsed / cs.tickInterval)
	if due > cs.maxCatchUp {
		skipped := due - cs.maxCatchUp
		cs.dropped.Add(uint64(skipped))
		cs.droppedCounter.Add(int64(skipped))
		cs.world.Log.Debug("tick backlog dropped",
			zap.Int("skipped", skipped),
			zap.Duration("behind", elapsed))
		due = cs.maxCatchUp
		cs.lastTick = now.Add(-time.Duration(due) * cs.tickInterval)
	}

	for i := 0; i < due; i++ {
		cs.world.Step()
		cs.tickCount.Add(1)
	}
	cs.lastTick = cs.lastTick.Add(time.Duration(due) * cs.tickInterval)
	cs.catchUpGauge.Set(float64(due))
	return due
}

// Run loops until ctx is done or Poll requests quit
// Both are checked once per outer iteration, a running tick always completes
func (cs *ClockScheduler) Run(ctx context.Context, hooks FrameHooks) error {
	cs.lastTick = cs.clock.Now()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if hooks.Poll != nil && !hooks.Poll(cs.world) {
			return nil
		}

		cs.Advance(cs.clock.Now())

		if hooks.Render != nil {
			hooks.Render(cs.world)
		}

		var sleepDuration time.Duration
		if cs.clock.IsPaused() {
			// Game time is frozen, only input and rendering need attention
			sleepDuration = cs.tickInterval * 2
		} else {
			sleepDuration = cs.lastTick.Add(cs.tickInterval).Sub(cs.clock.Now())
		}
		if sleepDuration <= 0 {
			continue
		}

		timer.Reset(sleepDuration)
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil
		}
	}
}
