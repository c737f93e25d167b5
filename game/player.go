package game

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/simple2d/audio"
	"github.com/lixenwraith/simple2d/component"
	"github.com/lixenwraith/simple2d/core"
	"github.com/lixenwraith/simple2d/engine"
	"github.com/lixenwraith/simple2d/input"
	"github.com/lixenwraith/simple2d/parameter"
	"github.com/lixenwraith/simple2d/vmath"
)

// Held keys with a synthetic release
const (
	holdLeft = iota
	holdRight
	holdJump
	holdCount
)

var (
	playerStart = vmath.Vec2{X: parameter.PlayerStartX, Y: parameter.PlayerStartY}
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

var holdFlags = [holdCount]string{tagMovingLeft, tagMovingRight, tagWantToJump}

func holdFor(k input.Key) (int, bool) {
	switch k {
	case input.KeyLeft:
		return holdLeft, true
	case input.KeyRight:
		return holdRight, true
	case input.KeyJump:
		return holdJump, true
	}
	return 0, false
}

func (s *Scene) buildPlayer() core.Entity {
	size := vmath.Size{W: parameter.PlayerWidth, H: parameter.PlayerHeight}

	tag := component.NewTag()
	tag.Set(tagRole, rolePlayer)
	tag.Set(tagLives, parameter.PlayerLives)
	tag.Set(tagScore, 0)
	for _, f := range holdFlags {
		tag.Set(f, false)
	}
	// Spawned in the air
	tag.Set(tagJumping, true)

	body := component.NewCollisionBody(size)
	body.Callback = s.onPlayerCollision

	eb := s.world.NewEntity()
	eb = engine.With(eb, s.world.Motions, component.MotionComponent{Position: playerStart})
	eb = engine.With(eb, s.world.Gravities, component.GravityComponent{Strength: s.gravity})
	eb = engine.With(eb, s.world.Sprites, component.SpriteComponent{Glyph: '@', Style: playerStyle, Size: size})
	eb = engine.With(eb, s.world.Bodies, body)
	eb = engine.With(eb, s.world.Tags, tag)
	eb = engine.With(eb, s.world.Behaviors, component.BehaviorComponent{
		OnKeyDown: s.onPlayerKeyDown,
		OnKeyUp:   s.onPlayerKeyUp,
		OnTick:    s.onPlayerTick,
	})
	return eb.Build()
}

// Terminals repeat a held key as presses, each press re-arms the release timer
func (s *Scene) onPlayerKeyDown(self core.Entity, k input.Key) {
	h, ok := holdFor(k)
	if !ok || s.Over() {
		return
	}
	s.hold[h] = parameter.KeyReleaseTicks
	s.tag(self).Set(holdFlags[h], true)
}

func (s *Scene) onPlayerKeyUp(self core.Entity, k input.Key) {
	h, ok := holdFor(k)
	if !ok {
		return
	}
	s.hold[h] = 0
	s.tag(self).Set(holdFlags[h], false)
}

func (s *Scene) onPlayerTick(self core.Entity) error {
	m, ok := s.world.Motions.Get(self)
	if !ok {
		return nil
	}
	tag := s.tag(self)

	if s.Over() {
		m.Velocity.X = 0
		return nil
	}

	vx := 0.0
	if tag.Bool(tagMovingLeft) {
		vx -= parameter.PlayerMoveSpeed
	}
	if tag.Bool(tagMovingRight) {
		vx += parameter.PlayerMoveSpeed
	}
	m.Velocity.X = vx

	if tag.Bool(tagWantToJump) && !tag.Bool(tagJumping) {
		m.Velocity.Y = -parameter.PlayerJumpSpeed
		tag.Set(tagJumping, true)
		tag.Set(tagWantToJump, false)
		s.hold[holdJump] = 0
		s.sound.Play(audio.CueJump)
	}

	for h := range s.hold {
		if s.hold[h] == 0 {
			continue
		}
		s.hold[h]--
		if s.hold[h] == 0 {
			tag.Set(holdFlags[h], false)
		}
	}

	if m.Position.Y > s.world.Dims.Height {
		s.loseLife(self, "fell")
	}
	return nil
}

func (s *Scene) onPlayerCollision(self, other core.Entity, t component.CollisionType) {
	tag := s.tag(self)
	switch t {
	case component.BottomHitsTop:
		if tag.Bool(tagJumping) {
			tag.Set(tagJumping, false)
			s.sound.Play(audio.CueLand)
		}
		if s.role(other) == roleEnemy {
			s.stomp(self, other)
		}
	case component.LeftHitsRight, component.RightHitsLeft:
		if s.role(other) == roleEnemy {
			s.loseLife(self, "hit")
		}
	}
}

// stomp knocks the enemy off the ground, it falls through and leaves the world
func (s *Scene) stomp(self, enemy core.Entity) {
	et := s.tag(enemy)
	if et.Bool(tagKnocked) {
		return
	}
	et.Set(tagKnocked, true)

	if b, ok := s.world.Bodies.Get(enemy); ok {
		b.Enabled = false
	}
	if m, ok := s.world.Motions.Get(enemy); ok {
		m.Velocity = vmath.Vec2{X: 0, Y: -parameter.EnemyKnockSpeed}
	}

	tag := s.tag(self)
	tag.Set(tagScore, tag.Int(tagScore)+1)
	s.sound.Play(audio.CueStomp)
	s.log.Debug("enemy stomped", zap.Uint64("entity", uint64(enemy)), zap.Uint64("tick", s.world.Tick()))
}

// loseLife respawns the player at the start, overriding this tick's resolution
func (s *Scene) loseLife(self core.Entity, reason string) {
	tag := s.tag(self)
	lives := tag.Int(tagLives) - 1
	tag.Set(tagLives, lives)
	tag.Set(tagJumping, true)
	s.sound.Play(audio.CueHurt)

	if m, ok := s.world.Motions.Get(self); ok {
		m.Position = playerStart
		m.Velocity = vmath.Vec2{}
		m.Acceleration = vmath.Vec2{}
	}
	s.log.Info("player lost a life",
		zap.String("reason", reason),
		zap.Int("lives", lives),
		zap.Uint64("tick", s.world.Tick()))
}
