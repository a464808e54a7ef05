package collide

import (
	gc "github.com/phil-mansfield/gocollide"
	"github.com/phil-mansfield/gocollide/geom"
)

// CellList is a cell list over a periodic box: an arena of buckets of particle
// IDs, one per grid cell. It is cleared and refilled every step, and only
// reallocated when the grid resolution changes.
type CellList struct {
	geom.Grid
	cells [][]int
}

// neighbor is a cell adjacent to some origin cell, together with the shift
// that moves the particles in it next to the origin cell.
type neighbor struct {
	idx   int
	shift geom.FourVector
}

// Reset empties the cell list and sets its resolution.
func (cl *CellList) Reset(cells int, boxWidth float64) {
	if cl.Length == cells && len(cl.cells) == cells*cells*cells {
		for i := range cl.cells {
			cl.cells[i] = cl.cells[i][:0]
		}
		cl.Grid.Init(cells, boxWidth)
		return
	}

	cl.Grid.Init(cells, boxWidth)
	cl.cells = make([][]int, cl.Volume)
}

// Insert places every particle into the cell containing it.
func (cl *CellList) Insert(ps *gc.Particles) {
	for id := 0; id < ps.Len(); id++ {
		x, y, z := cl.CellCoords(&ps.At(id).X)
		idx := cl.Idx(x, y, z)
		cl.cells[idx] = append(cl.cells[idx], id)
	}
}

// Cell returns the IDs of the particles in the cell with the given index.
func (cl *CellList) Cell(idx int) []int { return cl.cells[idx] }

// neighbors appends the 3x3x3 block of cells around (x, y, z), including the
// cell itself, to buf. Indices outside the grid wrap to the opposite face and
// carry a shift of one box width. A wrapped cell which is reached by more than
// one offset (only possible on very coarse grids) is listed once, for the
// first offset in z-y-x order.
func (cl *CellList) neighbors(x, y, z int, buf []neighbor) []neighbor {
	for dz := -1; dz <= 1; dz++ {
		sz, shiftZ := cl.Wrap(z + dz)
		for dy := -1; dy <= 1; dy++ {
			sy, shiftY := cl.Wrap(y + dy)
			for dx := -1; dx <= 1; dx++ {
				sx, shiftX := cl.Wrap(x + dx)

				idx := cl.Idx(sx, sy, sz)
				if containsCell(buf, idx) {
					continue
				}
				buf = append(buf, neighbor{
					idx, geom.FourVector{0, shiftX, shiftY, shiftZ},
				})
			}
		}
	}
	return buf
}

func containsCell(buf []neighbor, idx int) bool {
	for i := range buf {
		if buf[i].idx == idx {
			return true
		}
	}
	return false
}
