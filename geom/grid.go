package geom

import (
	"math"
)

// Grid provides an interface for reasoning over a 1D slice as if it were a
// periodic 3D grid of cubic cells covering a box of width BoxWidth.
type Grid struct {
	Length, Area, Volume int
	BoxWidth, CellWidth float64
}

// NewGrid returns a new Grid instance.
func NewGrid(cells int, boxWidth float64) *Grid {
	g := &Grid{}
	g.Init(cells, boxWidth)
	return g
}

// Init initializes a Grid instance.
func (g *Grid) Init(cells int, boxWidth float64) {
	g.Length = cells
	g.Area = cells * cells
	g.Volume = cells * cells * cells

	g.BoxWidth = boxWidth
	g.CellWidth = boxWidth / float64(cells)
}

// Idx returns the grid index corresponding to a set of coordinates.
func (g *Grid) Idx(x, y, z int) int {
	return x + y*g.Length + z*g.Area
}

// IdxCheck returns an index and true if the given coordinate are valid and
// false otherwise.
func (g *Grid) IdxCheck(x, y, z int) (idx int, ok bool) {
	if !g.BoundsCheck(x, y, z) {
		return -1, false
	}

	return g.Idx(x, y, z), true
}

// BoundsCheck returns true if the given coordinates are within the Grid and
// false otherwise.
func (g *Grid) BoundsCheck(x, y, z int) bool {
	return (0 <= x && 0 <= y && 0 <= z) &&
		(x < g.Length && y < g.Length && z < g.Length)
}

// Coords returns the x, y, z coordinates of a point from its grid index.
func (g *Grid) Coords(idx int) (x, y, z int) {
	x = idx % g.Length
	y = (idx % g.Area) / g.Length
	z = idx / g.Area
	return x, y, z
}

// CellCoords returns the coordinates of the cell containing the spatial part
// of a position. Positions are truncated onto the grid and anything outside
// the box is brought back in periodically.
func (g *Grid) CellCoords(pos *FourVector) (x, y, z int) {
	return g.cell(pos[1]), g.cell(pos[2]), g.cell(pos[3])
}

func (g *Grid) cell(x float64) int {
	if x >= 0 && x < g.BoxWidth {
		i := int(x / g.BoxWidth * float64(g.Length))
		// x = BoxWidth - tiny can round up to Length.
		if i >= g.Length {
			i = g.Length - 1
		}
		return i
	}
	return pMod(int(math.Floor(x/g.BoxWidth*float64(g.Length))), g.Length)
}

// Wrap maps a neighbor coordinate which may lie one cell outside the grid
// back into [0, Length). It also returns the shift which must be added to the
// positions of particles in the wrapped cell so that they are the periodic
// images adjacent to the original coordinate.
func (g *Grid) Wrap(i int) (wrapped int, shift float64) {
	if i < 0 {
		return pMod(i, g.Length), -g.BoxWidth
	} else if i >= g.Length {
		return pMod(i, g.Length), g.BoxWidth
	}
	return i, 0
}

// pMod computes the positive modulo x % y.
func pMod(x, y int) int {
	m := x % y
	if m < 0 {
		m += y
	}
	return m
}
