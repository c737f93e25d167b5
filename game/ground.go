package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simple2d/component"
	"github.com/lixenwraith/simple2d/core"
	"github.com/lixenwraith/simple2d/engine"
	"github.com/lixenwraith/simple2d/parameter"
	"github.com/lixenwraith/simple2d/vmath"
)

var groundStyle = tcell.StyleDefault.Foreground(tcell.ColorOliveDrab)

func (s *Scene) buildGround() core.Entity {
	size := vmath.Size{W: parameter.GroundWidth, H: parameter.GroundHeight}
	tag := component.NewTag()
	tag.Set(tagRole, roleGround)

	return engine.With(
		engine.With(
			engine.With(
				engine.With(s.world.NewEntity(), s.world.Motions, component.MotionComponent{
					Position: vmath.Vec2{X: parameter.GroundX, Y: parameter.GroundY},
				}),
				s.world.Tiles, component.RepetitiveSpriteComponent{Glyph: '▒', Style: groundStyle, Size: size},
			),
			s.world.Bodies, component.NewCollisionBody(size),
		),
		s.world.Tags, tag,
	).Build()
}
