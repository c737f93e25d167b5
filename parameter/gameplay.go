package parameter

// Player
const (
	PlayerWidth     = 40.0
	PlayerHeight    = 80.0
	PlayerStartX    = 120.0
	PlayerStartY    = 200.0
	PlayerMoveSpeed = 3.0
	PlayerJumpSpeed = 15.0
	PlayerLives     = 3

	// KeyReleaseTicks is how long a terminal key press is held before a synthetic release
	// Terminals report no key-up events
	KeyReleaseTicks = 8
)

// Enemy
const (
	EnemyStartX = 600.0
	EnemyStartY = 200.0
	EnemyWidth  = 60.0
	EnemyHeight = 112.0
	EnemySpeed  = 2.0
	// EnemyKnockSpeed is the upward kick given to an enemy the player lands on
	EnemyKnockSpeed = 6.0
)

// Ground
const (
	GroundX      = 100.0
	GroundY      = 400.0
	GroundWidth  = 600.0
	GroundHeight = 100.0
)
