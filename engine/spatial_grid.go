package engine

import (
	"fmt"
	"math"
	"slices"

	"github.com/lixenwraith/simple2d/core"
	"github.com/lixenwraith/simple2d/vmath"
)

// CollisionGrid is the broad-phase spatial hash, a dense array of square cells
// Cell index = row*Cols + col, cell k on an axis covers (CellSize*(k-1), CellSize*k]
// The grid is rebuilt every tick and keeps no state across ticks
type CollisionGrid struct {
	CellSize float64
	Cols     int
	Rows     int

	cells    [][]core.Entity
	occupied []int // cell ids that became non-empty since the last Clear
}

// NewCollisionGrid sizes the grid once from the world dimensions
func NewCollisionGrid(dims Dimensions, cellSize float64) (*CollisionGrid, error) {
	if cellSize <= 0 || dims.Width <= 0 || dims.Height <= 0 {
		return nil, fmt.Errorf("grid %vx%v cell %v: %w", dims.Width, dims.Height, cellSize, core.ErrInvalidInput)
	}

	cols := int(math.Ceil(dims.Width/cellSize)) + 1
	rows := int(math.Ceil(dims.Height/cellSize)) + 1
	return &CollisionGrid{
		CellSize: cellSize,
		Cols:     cols,
		Rows:     rows,
		cells:    make([][]core.Entity, cols*rows),
		occupied: make([]int, 0, 64),
	}, nil
}

// cellCoord maps a world coordinate to a cell coordinate, rounding up unless on an exact multiple
// Out-of-world coordinates clamp to the border cells
func (g *CollisionGrid) cellCoord(v float64, limit int) int {
	c := int(math.Ceil(v / g.CellSize))
	return max(0, min(c, limit-1))
}

// CellID returns the dense index of a cell
func (g *CollisionGrid) CellID(col, row int) int {
	return row*g.Cols + col
}

// CellRange returns the inclusive column and row range spanned by the box corners
func (g *CollisionGrid) CellRange(box vmath.Rect) (col0, row0, col1, row1 int) {
	col0, row0 = g.Cols, g.Rows
	col1, row1 = -1, -1
	for _, p := range box.Corners() {
		col := g.cellCoord(p.X, g.Cols)
		row := g.cellCoord(p.Y, g.Rows)
		col0, col1 = min(col0, col), max(col1, col)
		row0, row1 = min(row0, row), max(row1, row)
	}
	return col0, row0, col1, row1
}

// Insert adds the entity to every cell its box touches and returns the number of cells
func (g *CollisionGrid) Insert(e core.Entity, box vmath.Rect) int {
	col0, row0, col1, row1 := g.CellRange(box)
	n := 0
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			id := g.CellID(col, row)
			cell := g.cells[id]
			if slices.Contains(cell, e) {
				continue
			}
			if len(cell) == 0 {
				g.occupied = append(g.occupied, id)
			}
			g.cells[id] = append(cell, e)
			n++
		}
	}
	return n
}

// Clear empties all occupied cells, keeping their capacity
func (g *CollisionGrid) Clear() {
	for _, id := range g.occupied {
		g.cells[id] = g.cells[id][:0]
	}
	g.occupied = g.occupied[:0]
}

// Occupied returns the non-empty cell ids in ascending order
func (g *CollisionGrid) Occupied() []int {
	slices.Sort(g.occupied)
	return g.occupied
}

// At returns the entities in a cell in insertion order
func (g *CollisionGrid) At(id int) []core.Entity {
	if id < 0 || id >= len(g.cells) {
		return nil
	}
	return g.cells[id]
}

// CellsOf returns the ids of the cells holding e
func (g *CollisionGrid) CellsOf(e core.Entity) []int {
	var ids []int
	for _, id := range g.Occupied() {
		if slices.Contains(g.cells[id], e) {
			ids = append(ids, id)
		}
	}
	return ids
}
