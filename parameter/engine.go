package parameter

import "time"

// Simulation loop timing
const (
	// TicksPerSecond is the fixed simulation rate
	TicksPerSecond = 60

	// TickInterval is the duration of one simulation tick
	TickInterval = time.Second / TicksPerSecond

	// MaxCatchUpTicks bounds the ticks run in one outer iteration after a stall
	MaxCatchUpTicks = 10

	// InputQueueSize is the capacity of the poller to simulation event channel
	InputQueueSize = 64
)

// World defaults
const (
	// WorldWidth and WorldHeight size the collision grid in world units
	WorldWidth  = 1280
	WorldHeight = 1024

	// CollisionCellSize is the side of one square spatial hash cell
	CollisionCellSize = 32.0
)
