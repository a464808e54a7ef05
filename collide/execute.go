package collide

import (
	gc "github.com/phil-mansfield/gocollide"
	"github.com/phil-mansfield/gocollide/geom"
)

// Event records both particles of an executed collision before and after the
// momentum exchange.
type Event struct {
	Time          float64 // collision time offset within the step [fm/c]
	Before, After [2]gc.Particle
}

// EventSink consumes executed collisions, e.g. to write them to an event log.
type EventSink interface {
	WriteCollision(ev *Event) error
}

// Execute performs every collision in l in FIFO order and empties l. For
// each pair, the momenta are boosted into the pair's center-of-momentum
// frame, their three-momenta are exchanged, and everything is boosted back.
// Both particles keep each other's ID as their most recent partner. Each
// collision is passed to sink if it is non-nil; the first error returned by
// the sink is returned after all collisions have been performed.
func Execute(ps *gc.Particles, l *List, sink EventSink) (n int, err error) {
	for _, id := range l.IDs() {
		a := ps.At(id)
		if !a.Pending() {
			continue
		}
		b := ps.At(a.PartnerID)

		ev := Event{Time: a.CollisionTime, Before: [2]gc.Particle{*a, *b}}

		exchange(a, b)
		a.CollisionTime, b.CollisionTime = 0, 0

		ev.After = [2]gc.Particle{*a, *b}
		n++

		if sink != nil {
			if sinkErr := sink.WriteCollision(&ev); sinkErr != nil && err == nil {
				err = sinkErr
			}
		}
	}

	l.Clear()
	return n, err
}

// exchange swaps the three-momenta of two particles in their
// center-of-momentum frame. There the momenta are back to back, so each
// particle keeps its energy and the pair's total four-momentum is unchanged.
func exchange(a, b *gc.Particle) {
	u := geom.BoostToCM(&a.P, &b.P, &a.X, &b.X)

	for i := 1; i < 4; i++ {
		a.P[i], b.P[i] = b.P[i], a.P[i]
	}

	geom.BoostFromCM(&a.P, &b.P, &a.X, &b.X, u)
}
