package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/simple2d/component"
	"github.com/lixenwraith/simple2d/engine"
	"github.com/lixenwraith/simple2d/vmath"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func TestBufferFillClipsAndClears(t *testing.T) {
	b := NewRenderBuffer(4, 3)
	b.Fill(-2, -2, 2, 2, '#', tcell.StyleDefault)

	assert.Equal(t, '#', b.Get(0, 0).Rune)
	assert.Equal(t, '#', b.Get(1, 1).Rune)
	assert.Equal(t, ' ', b.Get(2, 1).Rune)
	assert.Equal(t, ' ', b.Get(9, 9).Rune, "out of bounds reads empty")

	b.Clear()
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, ' ', b.Get(x, y).Rune)
		}
	}
}

func TestCameraFollow(t *testing.T) {
	tests := []struct {
		name   string
		start  vmath.Vec2
		target vmath.Rect
		want   vmath.Vec2
	}{
		{"inside margin stays", vmath.Vec2{}, vmath.RectAt(vmath.Vec2{X: 300, Y: 200}, vmath.Size{W: 40, H: 80}), vmath.Vec2{}},
		{"right edge scrolls", vmath.Vec2{}, vmath.RectAt(vmath.Vec2{X: 700, Y: 200}, vmath.Size{W: 40, H: 80}), vmath.Vec2{X: 140, Y: 0}},
		{"left edge scrolls back", vmath.Vec2{X: 400}, vmath.RectAt(vmath.Vec2{X: 500, Y: 200}, vmath.Size{W: 40, H: 80}), vmath.Vec2{X: 300, Y: 0}},
		{"clamped at world origin", vmath.Vec2{X: 100}, vmath.RectAt(vmath.Vec2{X: 10, Y: 200}, vmath.Size{W: 40, H: 80}), vmath.Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Camera{
				Position: tt.start,
				Size:     vmath.Size{W: 800, H: 480},
				Margin:   200,
				Bounds:   vmath.Size{W: 2000, H: 1000},
			}
			c.Follow(tt.target)
			assert.Equal(t, tt.want, c.Position)
		})
	}
}

func TestCameraCentersWhenMarginTooWide(t *testing.T) {
	c := &Camera{Size: vmath.Size{W: 100, H: 100}, Margin: 80}
	c.Follow(vmath.RectAt(vmath.Vec2{X: 500, Y: 500}, vmath.Size{W: 10, H: 10}))
	assert.Equal(t, vmath.Vec2{X: 455, Y: 455}, c.Position)
}

func TestRendererDrawsSpritesThroughCamera(t *testing.T) {
	screen := newScreen(t)
	w := engine.NewWorld(engine.Dimensions{Width: 2000, Height: 1000}, nil)
	r := NewRenderer(screen, 10, vmath.Size{W: 2000, H: 1000})
	assert.Equal(t, vmath.Size{W: 800, H: 480}, r.Camera.Size)

	player := w.CreateEntity()
	w.Motions.Add(player, component.MotionComponent{Position: vmath.Vec2{X: 100, Y: 40}})
	w.Sprites.Add(player, component.SpriteComponent{Glyph: '@', Size: vmath.Size{W: 20, H: 40}})

	ground := w.CreateEntity()
	w.Motions.Add(ground, component.MotionComponent{Position: vmath.Vec2{X: 0, Y: 400}})
	w.Tiles.Add(ground, component.RepetitiveSpriteComponent{Glyph: '=', Size: vmath.Size{W: 800, H: 40}})

	hidden := w.CreateEntity()
	w.Motions.Add(hidden, component.MotionComponent{})
	w.Sprites.Add(hidden, component.SpriteComponent{Glyph: '?', Size: vmath.Size{W: 10, H: 20}, Hidden: true})

	// No motion means no position, the sprite is skipped
	unplaced := w.CreateEntity()
	w.Sprites.Add(unplaced, component.SpriteComponent{Glyph: '!', Size: vmath.Size{W: 10, H: 20}})

	r.Draw(w, "lives 3")

	get := func(x, y int) rune {
		main, _, _, _ := screen.GetContent(x, y)
		return main
	}
	assert.Equal(t, '@', get(10, 2))
	assert.Equal(t, '@', get(11, 3))
	assert.Equal(t, ' ', get(12, 2))
	assert.Equal(t, '=', get(0, 20))
	assert.Equal(t, '=', get(79, 21))
	assert.Equal(t, ' ', get(0, 0), "hidden and unplaced sprites not drawn")
	assert.Equal(t, 'l', get(0, 23))

	// Scrolling the camera moves the sprite left on screen
	r.Camera.Position.X = 50
	r.Draw(w, "")
	assert.Equal(t, '@', get(5, 2))
	assert.Equal(t, ' ', get(10, 2))
}

func TestRendererDebugOutline(t *testing.T) {
	screen := newScreen(t)
	w := engine.NewWorld(engine.Dimensions{Width: 800, Height: 480}, nil)
	r := NewRenderer(screen, 10, vmath.Size{})
	r.Debug = true

	e := w.CreateEntity()
	w.Motions.Add(e, component.MotionComponent{Position: vmath.Vec2{X: 100, Y: 100}})
	w.Bodies.Add(e, component.NewCollisionBody(vmath.Size{W: 50, H: 60}))

	r.Compose(w, "")
	buf := r.Buffer()
	assert.Equal(t, '·', buf.Get(10, 5).Rune)
	assert.Equal(t, '·', buf.Get(14, 7).Rune)
	assert.Equal(t, ' ', buf.Get(12, 6).Rune, "interior untouched")
}
