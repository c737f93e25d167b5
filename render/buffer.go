package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal character with its style
type Cell struct {
	Rune  rune
	Style tcell.Style
}

var emptyCell = Cell{Rune: ' ', Style: tcell.StyleDefault}

// RenderBuffer is a frame composed off-screen and flushed to the terminal in one pass
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a cleared buffer
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns width and height in cells
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell, out of bounds writes are dropped
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at x, y or an empty cell out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// Fill sets every cell of the half-open cell rectangle [x0,x1) x [y0,y1), clipped to the buffer
func (b *RenderBuffer) Fill(x0, y0, x1, y1 int, r rune, style tcell.Style) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, b.width), min(y1, b.height)
	for y := y0; y < y1; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := x0; x < x1; x++ {
			row[x] = Cell{Rune: r, Style: style}
		}
	}
}

// Text writes s left to right from x, y
func (b *RenderBuffer) Text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		b.Set(x, y, r, style)
		x++
	}
}

// Flush copies the buffer to screen and shows it
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
