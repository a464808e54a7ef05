/*package collide finds and executes elastic binary collisions between the
particles inside a periodic box.

One time step is split into a detection phase and an execution phase.
Detection searches for candidate pairs with a cell list, applies the
geometric and temporal collision criteria to each pair in its
center-of-momentum frame, and resolves conflicts so that every particle ends
up with at most one mutual pending partner. Execution then exchanges momenta
between the partners in their center-of-momentum frame.
*/
package collide

import (
	"math"
)

const (
	// FmSqPerMb converts cross sections from millibarns to fm^2.
	FmSqPerMb = 0.1

	// The broad phase falls back to an exhaustive pair search below these.
	minGridCells     = 4
	minGridParticles = 10
	// Cells per axis never exceed this, so the cell list holds at most
	// maxGridCells^3 buckets however small the cross section is.
	maxGridCells = 64
)

// Params are the per-step inputs of the collision search.
type Params struct {
	Length       float64 // box width [fm]
	Eps          float64 // time step [fm/c]
	CrossSection float64 // elastic cross section [mb]
}

// MaxDistanceSquared returns the largest squared transverse distance at which
// two particles still collide [fm^2].
func (p *Params) MaxDistanceSquared() float64 {
	return p.CrossSection * FmSqPerMb / math.Pi
}

// InteractionLength returns the transverse interaction radius [fm].
func (p *Params) InteractionLength() float64 {
	return math.Sqrt(p.MaxDistanceSquared())
}

// GridCells returns the number of cells along each axis of the cell list.
// Cells are at least twice the interaction length wide and there are at most
// maxGridCells of them.
func (p *Params) GridCells() int {
	cells := p.Length / (2 * p.InteractionLength())
	if !(cells < maxGridCells) {
		return maxGridCells
	}
	return int(cells)
}
