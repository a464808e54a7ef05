/*package io handles the files gocollide reads and writes: [Box] config files,
plain-text particle tables and OSCAR1999A collision histories.
*/
package io

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/phil-mansfield/table"

	gc "github.com/phil-mansfield/gocollide"
)

// Column layout of particle tables.
const (
	tCol = iota
	xCol
	yCol
	zCol
	eCol
	pxCol
	pyCol
	pzCol
	tableCols
)

// ReadParticleTable reads a particle table: a whitespace separated text file
// with one particle per line and the columns
//
//	t x y z E px py pz
//
// Lines starting with '#' are comments. Particle IDs are assigned in file
// order and masses are computed from the momenta.
func ReadParticleTable(file string) (*gc.Particles, error) {
	colIdxs := make([]int, tableCols)
	for i := range colIdxs {
		colIdxs[i] = i
	}

	cols, err := table.ReadTable(file, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	n := len(cols[tCol])
	ps := gc.NewParticles(n)
	for id := 0; id < n; id++ {
		p := ps.At(id)
		for k := 0; k < 4; k++ {
			p.X[k] = cols[tCol+k][id]
			p.P[k] = cols[eCol+k][id]
		}

		m2 := p.P.Dot(&p.P)
		if p.P[0] <= 0 || m2 < -1e-9*p.P[0]*p.P[0] {
			return nil, fmt.Errorf(
				"Particle %d in '%s' has the space-like momentum %v.",
				id, file, p.P,
			)
		}
		p.Mass = math.Sqrt(math.Max(m2, 0))
	}

	return ps, nil
}

// WriteParticleTable writes ps to w in the format read by
// ReadParticleTable.
func WriteParticleTable(w io.Writer, ps *gc.Particles) error {
	buf := bufio.NewWriter(w)

	fmt.Fprintf(buf, "# %d particles\n", ps.Len())
	fmt.Fprintln(buf, "# t [fm/c] x y z [fm] E [GeV] px py pz [GeV/c]")
	for id := 0; id < ps.Len(); id++ {
		p := ps.At(id)
		fmt.Fprintf(buf, "%.12g %.12g %.12g %.12g %.12g %.12g %.12g %.12g\n",
			p.X[0], p.X[1], p.X[2], p.X[3], p.P[0], p.P[1], p.P[2], p.P[3])
	}

	return buf.Flush()
}
