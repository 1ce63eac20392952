package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Cell is one grid position with its running live-neighbor count
type Cell struct {
	alive     bool
	neighbors uint8
	row, col  int
}

// Alive reports whether the cell is currently alive
func (c Cell) Alive() bool { return c.alive }

// Neighbors returns the number of currently-alive neighbors
func (c Cell) Neighbors() int { return int(c.neighbors) }

// Row returns the cell's fixed row
func (c Cell) Row() int { return c.row }

// Col returns the cell's fixed column
func (c Cell) Col() int { return c.col }

// Grid represents the game board as a row-major collection of cells
type Grid struct {
	width      int
	height     int
	cells      [][]Cell
	population int
}

// NewGrid creates a new grid with the specified dimensions, all cells dead
func NewGrid(height, width int) *Grid {
	if height <= 0 {
		height = 1
	}
	if width <= 0 {
		width = 1
	}
	cells := make([][]Cell, height)
	for row := range cells {
		cells[row] = make([]Cell, width)
		for col := range cells[row] {
			cells[row][col] = Cell{row: row, col: col}
		}
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// InBounds reports whether (row, col) addresses a cell of the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Get returns a copy of the cell at (row, col), or false if out of bounds
func (g *Grid) Get(row, col int) (Cell, bool) {
	if !g.InBounds(row, col) {
		return Cell{}, false
	}
	return g.cells[row][col], true
}

// Alive returns the state of a cell; out-of-bounds cells are dead
func (g *Grid) Alive(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[row][col].alive
}

// Toggle flips the cell at (row, col) and returns its new state.
// Out-of-bounds coordinates are a no-op and report ok=false.
func (g *Grid) Toggle(row, col int) (alive, ok bool) {
	if !g.InBounds(row, col) {
		return false, false
	}
	c := &g.cells[row][col]
	c.alive = !c.alive
	if c.alive {
		g.population++
	} else {
		g.population--
	}
	return c.alive, true
}

// Population returns the number of living cells, maintained by Toggle
func (g *Grid) Population() int {
	return g.population
}

// CountLivingCells returns the total number of living cells by scanning the grid
func (g *Grid) CountLivingCells() (count int) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.cells[row][col].alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 hash of the alive flags of the grid
func (g *Grid) Hash() string {
	h := md5.New()
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.cells[row][col].alive {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Verify recomputes every neighbor count from scratch and reports the first
// cell whose stored count disagrees with the topology.
func (g *Grid) Verify(topology Topology) error {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			want := 0
			for _, n := range topology.Neighbors(row, col, g.height, g.width) {
				if g.cells[n.Row][n.Col].alive {
					want++
				}
			}
			if got := int(g.cells[row][col].neighbors); got != want {
				return errors.Errorf("[Verify] cell (%d,%d) has neighbor count %d, expected %d", row, col, got, want)
			}
		}
	}
	if living := g.CountLivingCells(); living != g.population {
		return errors.Errorf("[Verify] population %d, expected %d", g.population, living)
	}
	return nil
}

// adjust applies a ±1 neighbor-count delta to the cell at (row, col).
// It reports false when the decrement would underflow.
func (g *Grid) adjust(row, col int, born bool) bool {
	if !g.InBounds(row, col) {
		return true
	}
	c := &g.cells[row][col]
	if born {
		c.neighbors++
		return true
	}
	if c.neighbors == 0 {
		return false
	}
	c.neighbors--
	return true
}
