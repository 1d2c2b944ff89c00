// Package grid implements Funge-Space: the lazily-growing, self-modifiable
// 2D store of program cells, ported from
// original_source/src/program/grid.rs. It stores only non-blank cells in a
// map (the "chunked store" alternative spec.md's design notes explicitly
// allow in place of the original's row-of-rows Vec<Vec<T>>), so reads
// outside the tracked Bounds return blank without ever allocating.
package grid

import (
	"funge98/internal/bounds"
	"funge98/internal/cellkind"
)

// Point is a Funge-Space coordinate. Grid keys are plain int64 pairs
// rather than cellkind.Cell values: a cell128 wraps a *big.Int pointer and
// is therefore unsuitable as a comparable map key by value, and in
// practice no Funge-Space position ever needs more than 63 bits of range
// even when the configured cell width is 128 bits.
type Point struct {
	X, Y int64
}

// Grid is Funge-Space for one interpreter run.
type Grid struct {
	factory cellkind.Factory
	cells   map[Point]cellkind.Cell
	bounds  bounds.Bounds
}

// New constructs an empty Grid bounded to a single blank cell at the
// origin — the "empty program loops forever on a one-cell blank grid"
// case spec.md's error-handling section calls out explicitly.
func New(f cellkind.Factory) *Grid {
	return &Grid{
		factory: f,
		cells:   make(map[Point]cellkind.Cell),
		bounds:  bounds.New(0, 0, 1, 1),
	}
}

// FromLines builds Funge-Space from already-split source lines, one row
// per line, left-aligned; short lines are implicitly blank-padded because
// unset cells already read as blank.
func FromLines(f cellkind.Factory, lines [][]byte) *Grid {
	g := New(f)
	height := int64(len(lines))
	if height == 0 {
		return g
	}
	var width int64
	for _, line := range lines {
		if int64(len(line)) > width {
			width = int64(len(line))
		}
	}
	if width == 0 {
		width = 1
	}
	g.bounds = bounds.New(0, 0, width, height)
	for y, line := range lines {
		for x, b := range line {
			if b == cellkind.Blank {
				continue
			}
			g.cells[Point{int64(x), int64(y)}] = f.FromByte(b)
		}
	}
	return g
}

// Bounds returns the current tracked rectangle.
func (g *Grid) Bounds() bounds.Bounds { return g.bounds }

// Factory returns the cell factory this grid was constructed with.
func (g *Grid) Factory() cellkind.Factory { return g.factory }

// Get reads the cell at (x, y). Coordinates outside Bounds read as blank
// and never grow the grid.
func (g *Grid) Get(x, y int64) cellkind.Cell {
	if c, ok := g.cells[Point{x, y}]; ok {
		return c
	}
	return g.factory.Blank()
}

// Put writes v at (x, y), growing Bounds to cover the point if it falls
// outside the current rectangle, and shrinking Bounds afterwards if v is
// blank and (x, y) sat on the boundary.
func (g *Grid) Put(x, y int64, v cellkind.Cell) {
	blank := v.Int64() == cellkind.Blank
	if blank {
		delete(g.cells, Point{x, y})
	} else {
		g.cells[Point{x, y}] = v
		g.growTo(x, y)
	}
	if blank {
		g.shrink(x, y)
	}
}

func (g *Grid) growTo(x, y int64) {
	if x < g.bounds.LowerX {
		g.bounds.LowerX = x
	}
	if y < g.bounds.LowerY {
		g.bounds.LowerY = y
	}
	if x >= g.bounds.UpperX {
		g.bounds.UpperX = x + 1
	}
	if y >= g.bounds.UpperY {
		g.bounds.UpperY = y + 1
	}
}

// shrink removes trailing all-blank rows/columns from whichever side(s)
// position coincided with, moving Bounds inward. Mirrors grid.rs's shrink,
// adapted to the sparse representation: "all blank" means "no stored cell
// on that line" rather than scanning every column of a dense row.
func (g *Grid) shrink(x, y int64) {
	if y == g.bounds.UpperY-1 {
		for g.bounds.UpperY > g.bounds.LowerY && !g.rowHasCell(g.bounds.UpperY-1) {
			g.bounds.UpperY--
		}
	} else if y == g.bounds.LowerY {
		for g.bounds.LowerY < g.bounds.UpperY && !g.rowHasCell(g.bounds.LowerY) {
			g.bounds.LowerY++
		}
	}
	if x == g.bounds.UpperX-1 {
		for g.bounds.UpperX > g.bounds.LowerX && !g.colHasCell(g.bounds.UpperX-1) {
			g.bounds.UpperX--
		}
	} else if x == g.bounds.LowerX {
		for g.bounds.LowerX < g.bounds.UpperX && !g.colHasCell(g.bounds.LowerX) {
			g.bounds.LowerX++
		}
	}
	if g.bounds.UpperX <= g.bounds.LowerX || g.bounds.UpperY <= g.bounds.LowerY {
		g.bounds = bounds.New(0, 0, 1, 1)
	}
}

func (g *Grid) rowHasCell(y int64) bool {
	for p := range g.cells {
		if p.Y == y {
			return true
		}
	}
	return false
}

func (g *Grid) colHasCell(x int64) bool {
	for p := range g.cells {
		if p.X == x {
			return true
		}
	}
	return false
}

// LeastPoint returns the least-indexed coordinate holding a non-blank
// cell (absolute coordinates), used by the `y` report's query 13.
func (g *Grid) LeastPoint() (int64, int64) {
	if len(g.cells) == 0 {
		return 0, 0
	}
	x, y := g.bounds.UpperX, g.bounds.UpperY
	for p := range g.cells {
		if p.X < x {
			x = p.X
		}
		if p.Y < y {
			y = p.Y
		}
	}
	return x, y
}

// GreatestPoint returns the greatest-indexed non-blank coordinate,
// relative to LeastPoint, used by the `y` report's query 14.
func (g *Grid) GreatestPoint() (int64, int64) {
	if len(g.cells) == 0 {
		return 0, 0
	}
	lx, ly := g.LeastPoint()
	gx, gy := lx, ly
	for p := range g.cells {
		if p.X > gx {
			gx = p.X
		}
		if p.Y > gy {
			gy = p.Y
		}
	}
	return gx - lx, gy - ly
}
