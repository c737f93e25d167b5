package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simple2d/core"
	"github.com/lixenwraith/simple2d/engine"
	"github.com/lixenwraith/simple2d/parameter"
	"github.com/lixenwraith/simple2d/vmath"
)

var (
	debugStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// Renderer draws the world's sprites through a camera onto a terminal screen
// A terminal row is twice as tall as a column is wide, so rows cover 2*Scale world units
type Renderer struct {
	screen tcell.Screen
	buf    *RenderBuffer
	Camera *Camera
	Scale  float64
	Debug  bool // outline collision bodies
}

// NewRenderer sizes the buffer and camera from the screen, bounds clamps the camera to the world
func NewRenderer(screen tcell.Screen, scale float64, bounds vmath.Size) *Renderer {
	if scale <= 0 {
		scale = parameter.RenderScale
	}
	r := &Renderer{
		screen: screen,
		buf:    NewRenderBuffer(0, 0),
		Camera: &Camera{Margin: parameter.CameraMargin, Bounds: bounds},
		Scale:  scale,
	}
	r.Resize()
	return r
}

// Resize re-reads the screen size, call on tcell.EventResize
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.buf.Resize(w, h)
	r.Camera.Size = vmath.Size{W: float64(w) * r.Scale, H: float64(h) * 2 * r.Scale}
}

// Buffer exposes the last composed frame
func (r *Renderer) Buffer() *RenderBuffer {
	return r.buf
}

// cellRange maps a world rectangle to the half-open cell range it covers, at least one cell
func (r *Renderer) cellRange(rect vmath.Rect) (x0, y0, x1, y1 int) {
	cam := r.Camera.Position
	sx, sy := r.Scale, 2*r.Scale
	x0 = int(math.Floor((rect.TopLeft.X - cam.X) / sx))
	y0 = int(math.Floor((rect.TopLeft.Y - cam.Y) / sy))
	x1 = int(math.Ceil((rect.BottomRight.X - cam.X) / sx))
	y1 = int(math.Ceil((rect.BottomRight.Y - cam.Y) / sy))
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)
	return
}

func (r *Renderer) origin(w *engine.World, e core.Entity) vmath.Vec2 {
	m, _ := w.Motions.Get(e)
	return m.Position
}

func (r *Renderer) fill(rect vmath.Rect, glyph rune, style tcell.Style) {
	if !vmath.Overlap(rect, r.Camera.View()) {
		return
	}
	x0, y0, x1, y1 := r.cellRange(rect)
	r.buf.Fill(x0, y0, x1, y1, glyph, style)
}

// Compose draws the frame into the buffer without touching the screen
// Layers bottom to top: tiles, static sprites, animated sprites, debug overlay, status line
func (r *Renderer) Compose(w *engine.World, status string) {
	r.buf.Clear()

	// Entities without motion have no position and are not drawn
	for _, e := range w.Query().With(w.Motions).With(w.Tiles).Execute() {
		t, _ := w.Tiles.Get(e)
		r.fill(vmath.RectAt(r.origin(w, e).Add(t.Offset), t.Size), t.Glyph, t.Style)
	}

	for _, e := range w.Query().With(w.Motions).With(w.Sprites).Execute() {
		s, _ := w.Sprites.Get(e)
		if s.Hidden {
			continue
		}
		r.fill(vmath.RectAt(r.origin(w, e).Add(s.Offset), s.Size), s.Glyph, s.Style)
	}

	for _, e := range w.Query().With(w.Motions).With(w.Animations).Execute() {
		a, _ := w.Animations.Get(e)
		r.fill(vmath.RectAt(r.origin(w, e).Add(a.Offset), a.Size), a.Glyph(), a.Style)
	}

	if r.Debug {
		for _, e := range w.Query().With(w.Motions).With(w.Bodies).Execute() {
			b, _ := w.Bodies.Get(e)
			if !b.Enabled {
				continue
			}
			r.outline(vmath.RectAt(r.origin(w, e).Add(b.Offset), b.Size))
		}
	}

	if r.Debug {
		r.buf.Text(0, 0, w.Status.Format(), debugStyle)
	}

	if status != "" {
		width, h := r.buf.Bounds()
		r.buf.Fill(0, h-1, width, h, ' ', statusStyle)
		r.buf.Text(0, h-1, status, statusStyle)
	}
}

// outline marks the border cells of rect that no sprite covers
func (r *Renderer) outline(rect vmath.Rect) {
	x0, y0, x1, y1 := r.cellRange(rect)
	mark := func(x, y int) {
		if r.buf.Get(x, y).Rune == ' ' {
			r.buf.Set(x, y, '·', debugStyle)
		}
	}
	for x := x0; x < x1; x++ {
		mark(x, y0)
		mark(x, y1-1)
	}
	for y := y0; y < y1; y++ {
		mark(x0, y)
		mark(x1-1, y)
	}
}

// Draw composes the frame and flushes it to the screen
func (r *Renderer) Draw(w *engine.World, status string) {
	r.Compose(w, status)
	r.buf.Flush(r.screen)
}
