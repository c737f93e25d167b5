package game

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/simple2d/component"
	"github.com/lixenwraith/simple2d/core"
	"github.com/lixenwraith/simple2d/engine"
	"github.com/lixenwraith/simple2d/parameter"
	"github.com/lixenwraith/simple2d/vmath"
)

var enemyStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)

// enemyFrames alternate legs while walking
var enemyFrames = []component.Frame{{Glyph: 'M', Ticks: 15}, {Glyph: 'W', Ticks: 15}}

func (s *Scene) buildEnemy() core.Entity {
	size := vmath.Size{W: parameter.EnemyWidth, H: parameter.EnemyHeight}

	tag := component.NewTag()
	tag.Set(tagRole, roleEnemy)
	tag.Set(tagSpeed, parameter.EnemySpeed)
	tag.Set(tagDirection, -1)
	tag.Set(tagKnocked, false)

	body := component.NewCollisionBody(size)
	body.Callback = s.onEnemyCollision

	frames := make([]component.Frame, len(enemyFrames))
	copy(frames, enemyFrames)

	eb := s.world.NewEntity()
	eb = engine.With(eb, s.world.Motions, component.MotionComponent{
		Position: vmath.Vec2{X: parameter.EnemyStartX, Y: parameter.EnemyStartY},
	})
	eb = engine.With(eb, s.world.Gravities, component.GravityComponent{Strength: s.gravity})
	eb = engine.With(eb, s.world.Animations, component.AnimatedSpriteComponent{Frames: frames, Style: enemyStyle, Size: size})
	eb = engine.With(eb, s.world.Bodies, body)
	eb = engine.With(eb, s.world.Tags, tag)
	eb = engine.With(eb, s.world.Behaviors, component.BehaviorComponent{OnTick: s.onEnemyTick})
	return eb.Build()
}

func (s *Scene) onEnemyTick(self core.Entity) error {
	m, ok := s.world.Motions.Get(self)
	if !ok {
		return nil
	}
	tag := s.tag(self)

	if m.Position.Y > s.world.Dims.Height {
		s.log.Debug("enemy left the world", zap.Uint64("entity", uint64(self)))
		s.world.DestroyEntity(self)
		return nil
	}
	if tag.Bool(tagKnocked) {
		return nil
	}

	speed, _ := tag.Get(tagSpeed)
	v, _ := speed.(float64)
	m.Velocity.X = float64(tag.Int(tagDirection)) * v
	return nil
}

// Walking into anything but the player turns the enemy around
func (s *Scene) onEnemyCollision(self, other core.Entity, t component.CollisionType) {
	if t.Axis() != vmath.AxisX || s.role(other) == rolePlayer {
		return
	}
	tag := s.tag(self)
	tag.Set(tagDirection, -tag.Int(tagDirection))
}
