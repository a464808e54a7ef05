package io

import (
	"bufio"
	"fmt"
	"io"

	gc "github.com/phil-mansfield/gocollide"
	"github.com/phil-mansfield/gocollide/collide"
	"github.com/phil-mansfield/gocollide/geom"
)

const (
	oscarVersion = "OSC1999A"
	// DefaultPDG is the PDG code written for every particle (pi0).
	DefaultPDG = 111
)

// OscarWriter writes the full collision history of a run in the OSCAR1999A
// format. A run is a single event made of three kinds of blocks:
//
//	0 n 1            the n particles of the initial state
//	2 2 1            the two incoming and two outgoing particles of a collision
//	n 0 1            the n particles of the final state
//	0 0 1            end of event
//
// Every particle line has the columns
//
//	id pdg 0 px py pz E m x y z t
//
// OscarWriter implements collide.EventSink.
type OscarWriter struct {
	PDG   int
	Event int

	buf        *bufio.Writer
	collisions int
}

// NewOscarWriter creates an OscarWriter which writes to w.
func NewOscarWriter(w io.Writer, program string) (*OscarWriter, error) {
	ow := &OscarWriter{PDG: DefaultPDG, Event: 1, buf: bufio.NewWriter(w)}

	fmt.Fprintf(ow.buf, "# %s\n", oscarVersion)
	fmt.Fprintln(ow.buf, "# full_event_history")
	fmt.Fprintf(ow.buf, "# %s\n", program)
	fmt.Fprintln(ow.buf, "# Block format:")
	fmt.Fprintln(ow.buf, "# nin nout event_number")
	fmt.Fprintln(ow.buf, "# id pdg 0 px py pz p0 mass x y z t")
	fmt.Fprintln(ow.buf, "# End of event: 0 0 event_number")
	fmt.Fprintln(ow.buf, "#")

	return ow, ow.err()
}

// Collisions returns the number of collision blocks written so far.
func (ow *OscarWriter) Collisions() int { return ow.collisions }

// WriteInitial writes the initial state block.
func (ow *OscarWriter) WriteInitial(ps *gc.Particles) error {
	fmt.Fprintf(ow.buf, "0 %d %d\n", ps.Len(), ow.Event)
	for _, p := range ps.Slice() {
		ow.writeParticle(&p, &p.X)
	}
	return ow.err()
}

// WriteCollision writes a collision block. The incoming particles are
// streamed to the collision time and the outgoing particles start from the
// same vertices.
func (ow *OscarWriter) WriteCollision(ev *collide.Event) error {
	ow.collisions++
	var vertices [2]geom.FourVector
	for i := range ev.Before {
		vertices[i] = streamed(&ev.Before[i], ev.Time)
	}

	fmt.Fprintf(ow.buf, "2 2 %d\n", ow.Event)
	for i := range ev.Before {
		ow.writeParticle(&ev.Before[i], &vertices[i])
	}
	for i := range ev.After {
		ow.writeParticle(&ev.After[i], &vertices[i])
	}
	return ow.err()
}

// WriteFinal writes the final state block and the end of the event.
func (ow *OscarWriter) WriteFinal(ps *gc.Particles) error {
	fmt.Fprintf(ow.buf, "%d 0 %d\n", ps.Len(), ow.Event)
	for _, p := range ps.Slice() {
		ow.writeParticle(&p, &p.X)
	}
	fmt.Fprintf(ow.buf, "0 0 %d\n", ow.Event)
	return ow.err()
}

// Flush writes any buffered data to the underlying writer.
func (ow *OscarWriter) Flush() error { return ow.buf.Flush() }

// streamed returns the position of p after it has free streamed for a time
// dt.
func streamed(p *gc.Particle, dt float64) geom.FourVector {
	v := p.P.Velocity()
	v.ScaleSelf(dt)
	return *p.X.Add(&v)
}

// writeParticle writes the momentum of p at the position x.
func (ow *OscarWriter) writeParticle(p *gc.Particle, x *geom.FourVector) {
	fmt.Fprintf(
		ow.buf, "%d %d 0 %.9g %.9g %.9g %.9g %.9g %.9g %.9g %.9g %.9g\n",
		p.ID, ow.PDG, p.P[1], p.P[2], p.P[3], p.P[0], p.Mass,
		x[1], x[2], x[3], x[0],
	)
}

// err returns the first error hit by the buffered writer, if any. bufio
// writers keep returning it once it has happened.
func (ow *OscarWriter) err() error {
	_, err := ow.buf.Write(nil)
	return err
}
