package collide

import (
	gc "github.com/phil-mansfield/gocollide"
)

// Resolver registers accepted candidates as pending collisions, making sure
// every particle keeps at most one partner: the earliest one.
type Resolver struct {
	// Conflicts counts pending collisions which were dropped because one of
	// their particles found an earlier partner.
	Conflicts int
}

// precedes returns true if a collision at time t1 with partner1 takes priority
// over a collision at time t2 with partner2. Exactly equal times go to the
// lower partner ID.
func precedes(t1 float64, partner1 int, t2 float64, partner2 int) bool {
	if t1 != t2 {
		return t1 < t2
	}
	return partner1 < partner2
}

// stale returns true if p collided with other in the previous step and has
// not found a new partner since.
func stale(p *gc.Particle, other int) bool {
	return !p.Pending() && p.PartnerID == other
}

// Register tries to add the candidate c as a pending collision and returns
// true if it was added. It is rejected if its time is zero, if either
// particle just collided with the other, or if either particle already has a
// pending collision which precedes c. Otherwise any later pending collisions
// of the two particles are undone on both sides and queued for removal from l.
func (r *Resolver) Register(ps *gc.Particles, l *List, c Candidate) bool {
	a, b := ps.At(c.A), ps.At(c.B)

	// A zero time cannot be told apart from no collision at all.
	if c.Time <= 0 {
		return false
	}

	if stale(a, c.B) || stale(b, c.A) {
		return false
	}

	if a.Pending() && !precedes(c.Time, c.B, a.CollisionTime, a.PartnerID) {
		return false
	} else if b.Pending() &&
		!precedes(c.Time, c.A, b.CollisionTime, b.PartnerID) {
		return false
	}

	r.invalidate(ps, l, a)
	r.invalidate(ps, l, b)

	ps.SetCollision(c.A, c.B, c.Time)
	l.Push(c.A, c.B)

	return true
}

func (r *Resolver) invalidate(ps *gc.Particles, l *List, p *gc.Particle) {
	if !p.Pending() {
		return
	}

	old := p.PartnerID
	l.Remove(p.ID, old)
	ps.ClearCollision(old)
	ps.ClearCollision(p.ID)
	r.Conflicts++
}
