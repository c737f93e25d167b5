package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/simple2d/audio"
	"github.com/lixenwraith/simple2d/component"
	"github.com/lixenwraith/simple2d/core"
	"github.com/lixenwraith/simple2d/engine"
	"github.com/lixenwraith/simple2d/vmath"
)

// Tag keys shared by the scene's scripts
const (
	tagRole        = "role"
	tagMovingLeft  = "isMovingLeft"
	tagMovingRight = "isMovingRight"
	tagWantToJump  = "wantToJump"
	tagJumping     = "isJumping"
	tagLives       = "lives"
	tagScore       = "score"
	tagSpeed       = "speed"
	tagDirection   = "direction"
	tagKnocked     = "knocked"
)

// Roles stored under tagRole
const (
	rolePlayer = "player"
	roleEnemy  = "enemy"
	roleGround = "ground"
)

// Scene is the platformer: a player, one walking enemy and a ground slab
// All behavior is driven by scripts and collision callbacks reading and writing tags
type Scene struct {
	world   *engine.World
	sound   audio.Player
	log     *zap.Logger
	gravity float64

	player core.Entity
	enemy  core.Entity
	ground core.Entity

	hold [holdCount]int // ticks left before a synthetic key release
}

// NewScene populates w, sound may be nil
// gravity is the strength given to the player and enemy gravity components
func NewScene(w *engine.World, sound audio.Player, gravity float64) *Scene {
	if sound == nil {
		sound = audio.Nop{}
	}
	s := &Scene{
		world:   w,
		sound:   sound,
		log:     w.Log.With(zap.String("subsystem", "game")),
		gravity: gravity,
	}
	s.ground = s.buildGround()
	s.player = s.buildPlayer()
	s.enemy = s.buildEnemy()

	s.log.Info("scene built",
		zap.Uint64("player", uint64(s.player)),
		zap.Uint64("enemy", uint64(s.enemy)),
		zap.Uint64("ground", uint64(s.ground)))
	return s
}

func (s *Scene) Player() core.Entity { return s.player }
func (s *Scene) Enemy() core.Entity  { return s.enemy }
func (s *Scene) Ground() core.Entity { return s.ground }

func (s *Scene) tag(e core.Entity) *component.TagComponent {
	t, ok := s.world.Tags.Get(e)
	if !ok {
		// Destroyed entities read as an empty blob, writes are discarded
		empty := component.NewTag()
		return &empty
	}
	return t
}

func (s *Scene) role(e core.Entity) string {
	return s.tag(e).String(tagRole)
}

// Lives left, zero is game over
func (s *Scene) Lives() int { return s.tag(s.player).Int(tagLives) }

// Score counts stomped enemies
func (s *Scene) Score() int { return s.tag(s.player).Int(tagScore) }

// Over reports that the player ran out of lives
func (s *Scene) Over() bool { return s.Lives() <= 0 }

// PlayerBox is the rectangle the camera follows
func (s *Scene) PlayerBox() (vmath.Rect, bool) {
	m, ok := s.world.Motions.Get(s.player)
	if !ok {
		return vmath.Rect{}, false
	}
	body, ok := s.world.Bodies.Get(s.player)
	if !ok {
		return vmath.Rect{}, false
	}
	return vmath.RectAt(m.Position.Add(body.Offset), body.Size), true
}

// Status is the one-line HUD text
func (s *Scene) Status() string {
	if s.Over() {
		return fmt.Sprintf(" GAME OVER  score %d  [q] quit", s.Score())
	}
	return fmt.Sprintf(" lives %d  score %d  tick %d", s.Lives(), s.Score(), s.world.Tick())
}
