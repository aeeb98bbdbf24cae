package life

import (
	"fmt"
	"math/rand/v2"

	"lifebox/pkg/core"
)

// Cell is the state of a single grid cell.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Point is an integer cell coordinate or offset.
type Point struct {
	X, Y int
}

// Grid is a fixed-size, hard-edged board of binary cells stored row-major.
// It owns two equally sized buffers: cur holds the visible generation and nxt
// is scratch space that Step fills before the two are swapped.
type Grid struct {
	w, h int
	cur  []uint8
	nxt  []uint8
}

// NewGrid allocates a grid with every cell dead.
func NewGrid(w, h int) (*Grid, error) {
	if err := checkDimensions(w, h); err != nil {
		return nil, err
	}
	g := &Grid{}
	g.alloc(w, h)
	return g, nil
}

func checkDimensions(w, h int) error {
	if w < 1 || h < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	return nil
}

func (g *Grid) alloc(w, h int) {
	g.w, g.h = w, h
	g.cur = make([]uint8, w*h)
	g.nxt = make([]uint8, w*h)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the current buffer, one 0/1 byte per cell in row-major order.
// The slice is invalidated by the next Step or Resize.
func (g *Grid) Cells() []uint8 { return g.cur }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

func (g *Grid) index(x, y int) int { return y*g.w + x }

func (g *Grid) checkBounds(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, g.w, g.h)
	}
	return nil
}

// Get returns the state of the cell at (x, y).
func (g *Grid) Get(x, y int) (Cell, error) {
	if err := g.checkBounds(x, y); err != nil {
		return Dead, err
	}
	return Cell(g.cur[g.index(x, y)]), nil
}

// Alive reports whether (x, y) is a live cell. Out-of-bounds cells are dead.
func (g *Grid) Alive(x, y int) bool {
	return g.InBounds(x, y) && g.cur[g.index(x, y)] != 0
}

// Set writes the state of the cell at (x, y) in the current buffer.
func (g *Grid) Set(x, y int, c Cell) error {
	if err := g.checkBounds(x, y); err != nil {
		return err
	}
	if c != Dead {
		c = Alive
	}
	g.cur[g.index(x, y)] = uint8(c)
	return nil
}

// Toggle flips the cell at (x, y) and returns its new state.
func (g *Grid) Toggle(x, y int) (Cell, error) {
	if err := g.checkBounds(x, y); err != nil {
		return Dead, err
	}
	idx := g.index(x, y)
	g.cur[idx] ^= 1
	return Cell(g.cur[idx]), nil
}

// Randomize sets each cell alive independently with probability density.
func (g *Grid) Randomize(density float64, rng *rand.Rand) {
	core.FillDensity(rng, g.cur, density)
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = 0
	}
}

// Resize discards both buffers and reallocates them with the new dimensions.
// On error the grid is left unchanged.
func (g *Grid) Resize(w, h int) error {
	if err := checkDimensions(w, h); err != nil {
		return err
	}
	g.alloc(w, h)
	return nil
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		n += int(c)
	}
	return n
}

// LiveCells returns the coordinates of every live cell in row-major order.
func (g *Grid) LiveCells() []Point {
	var pts []Point
	for i, c := range g.cur {
		if c != 0 {
			pts = append(pts, Point{X: i % g.w, Y: i / g.w})
		}
	}
	return pts
}

func (g *Grid) swap() { g.cur, g.nxt = g.nxt, g.cur }
