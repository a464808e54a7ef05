package collide

import (
	gc "github.com/phil-mansfield/gocollide"
	"github.com/phil-mansfield/gocollide/geom"
)

// Stats counts what happened during collision detection. They accumulate
// over every step a Detector runs.
type Stats struct {
	Evaluated  int // pairs the collision criteria were applied to
	Accepted   int // pairs which passed the criteria
	Conflicts  int // pending collisions replaced by earlier ones
	Collisions int // executed collisions
}

// Detector finds the collisions of a set of particles one step at a time. Its
// buffers are reused between steps.
type Detector struct {
	// Debug makes DetectAndResolve panic if it ever leaves a pending
	// collision which is not mutual.
	Debug bool
	Stats Stats

	cells CellList
	list  *List
	res   Resolver
	nbuf  []neighbor
}

// NewDetector returns a Detector with empty buffers.
func NewDetector() *Detector {
	return &Detector{list: NewList()}
}

// List returns the collision list built by the last call to
// DetectAndResolve.
func (d *Detector) List() *List { return d.list }

// DetectAndResolve runs the detection phase of one step: it finds every pair
// which collides within the step, resolves conflicts so each particle has at
// most one pending partner, and builds the collision list. It returns the
// number of pending collisions. Markers of the previous step's collisions are
// consumed.
func (d *Detector) DetectAndResolve(ps *gc.Particles, params *Params) int {
	d.list.Clear()
	conflicts := d.res.Conflicts

	cells := params.GridCells()
	if cells < minGridCells || ps.Len() < minGridParticles {
		d.searchAllPairs(ps, params)
	} else {
		d.searchGrid(ps, params, cells)
	}

	d.list.Finalize()
	ps.ClearMarkers()
	d.Stats.Conflicts += d.res.Conflicts - conflicts

	if d.Debug {
		if err := ps.CheckConsistency(); err != nil {
			panic(err.Error())
		}
	}

	return d.list.Len()
}

// Step runs the detection phase followed by the execution phase and returns
// the number of executed collisions.
func (d *Detector) Step(
	ps *gc.Particles, params *Params, sink EventSink,
) (int, error) {
	d.DetectAndResolve(ps, params)
	n, err := Execute(ps, d.list, sink)
	d.Stats.Collisions += n
	return n, err
}

// searchAllPairs checks every pair of particles, skipping pairs whose
// nearest periodic images are more than two interaction lengths apart along
// any axis.
func (d *Detector) searchAllPairs(ps *gc.Particles, params *Params) {
	maxDist := 2 * params.InteractionLength()

	for id := 0; id < ps.Len()-1; id++ {
		a := ps.At(id)
		for other := id + 1; other < ps.Len(); other++ {
			b := ps.At(other)

			shift := geom.MinImageShift(&a.X, &b.X, params.Length)
			if farApart(&a.X, &b.X, &shift, maxDist) {
				continue
			}
			d.check(ps, params, a, b, &shift)
		}
	}
}

func farApart(xa, xb, shift *geom.FourVector, maxDist float64) bool {
	for i := 1; i < 4; i++ {
		dx := xa[i] - xb[i] - shift[i]
		if dx > maxDist || dx < -maxDist {
			return true
		}
	}
	return false
}

// searchGrid checks every pair of particles in neighboring cells of a cell
// list. Each pair is checked once, from the particle with the lower ID.
func (d *Detector) searchGrid(ps *gc.Particles, params *Params, cells int) {
	d.cells.Reset(cells, params.Length)
	d.cells.Insert(ps)

	for id := 0; id < ps.Len()-1; id++ {
		a := ps.At(id)
		x, y, z := d.cells.CellCoords(&a.X)

		d.nbuf = d.cells.neighbors(x, y, z, d.nbuf[:0])
		for i := range d.nbuf {
			nb := &d.nbuf[i]
			for _, other := range d.cells.Cell(nb.idx) {
				if other <= id {
					continue
				}
				d.check(ps, params, a, ps.At(other), &nb.shift)
			}
		}
	}
}

func (d *Detector) check(
	ps *gc.Particles, params *Params, a, b *gc.Particle, shift *geom.FourVector,
) {
	d.Stats.Evaluated++
	c, ok := Evaluate(a, b, shift, params)
	if !ok {
		return
	}
	d.Stats.Accepted++
	d.res.Register(ps, d.list, c)
}
