/*package modus contains the geometries particles can evolve in. A Modus sets
up the initial state of the particles, moves them between collisions and
enforces its boundary conditions.
*/
package modus

import (
	"fmt"
	"sort"
	"strings"

	gc "github.com/phil-mansfield/gocollide"
	"github.com/phil-mansfield/gocollide/geom"
	"github.com/phil-mansfield/gocollide/io"
	"github.com/phil-mansfield/gocollide/rand"
)

// Modus is the geometry a run takes place in.
type Modus interface {
	// InitialConditions sets the positions and momenta of every particle.
	InitialConditions(ps *gc.Particles, gen *rand.Generator) error
	// Propagate moves every particle freely for a time eps and applies the
	// boundary conditions. It returns the number of boundary crossings.
	Propagate(ps *gc.Particles, eps float64) int
	// ApplyBoundary maps a position onto the simulation volume and returns
	// true if it had to be changed.
	ApplyBoundary(x geom.FourVector) (geom.FourVector, bool)
	// SanityCheck returns the number of particles outside of the simulation
	// volume.
	SanityCheck(ps *gc.Particles) int
	// Volume returns the size of the simulation volume [fm^3].
	Volume() float64
}

type Constructor func(con *io.BoxConfig) (Modus, error)

var (
	Modi = map[string]Constructor{
		"Box": newBox,
	}
)

func newBox(con *io.BoxConfig) (Modus, error) {
	box, err := NewBox(con)
	if err != nil {
		return nil, err
	}
	return box, nil
}

// New creates the Modus named by con.Modus.
func New(con *io.BoxConfig) (Modus, error) {
	f, ok := Modi[con.Modus]
	if !ok {
		return nil, fmt.Errorf(
			"Unrecognized 'Modus' value, '%s'. The only accepted values "+
				"are: %s.", con.Modus, strings.Join(Names(), ", "),
		)
	}
	return f(con)
}

// Names returns the names of every registered Modus in sorted order.
func Names() []string {
	names := []string{}
	for name := range Modi {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
