package component

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simple2d/core"
	"github.com/lixenwraith/simple2d/vmath"
)

// SpriteComponent is a single glyph filling a rectangle relative to the motion position
type SpriteComponent struct {
	Glyph  rune
	Style  tcell.Style
	Size   vmath.Size
	Offset vmath.Vec2
	Hidden bool
}

func (s *SpriteComponent) Step() error { return nil }

// Frame is one image of an animation, shown for Ticks ticks
type Frame struct {
	Glyph rune
	Ticks int
}

// AnimatedSpriteComponent cycles through frames, looping at the end
type AnimatedSpriteComponent struct {
	Frames  []Frame
	Style   tcell.Style
	Size    vmath.Size
	Offset  vmath.Vec2
	Current int
	Elapsed int
	Paused  bool
}

// Step advances the frame clock by one tick
func (a *AnimatedSpriteComponent) Step() error {
	if a.Paused || len(a.Frames) == 0 {
		return nil
	}
	frame := a.Frames[a.Current]
	if frame.Ticks <= 0 {
		return fmt.Errorf("frame %d length %d: %w", a.Current, frame.Ticks, core.ErrInvalidInput)
	}

	a.Elapsed++
	if a.Elapsed >= frame.Ticks {
		a.Elapsed = 0
		a.Current = (a.Current + 1) % len(a.Frames)
	}
	return nil
}

// Glyph is the rune of the current frame
func (a *AnimatedSpriteComponent) Glyph() rune {
	if len(a.Frames) == 0 {
		return ' '
	}
	return a.Frames[a.Current].Glyph
}

// RepetitiveSpriteComponent tiles a glyph over Size
type RepetitiveSpriteComponent struct {
	Glyph  rune
	Style  tcell.Style
	Size   vmath.Size
	Offset vmath.Vec2
}

func (r *RepetitiveSpriteComponent) Step() error { return nil }
