package gocollide

import (
	"fmt"

	"github.com/phil-mansfield/gocollide/geom"
)

// Particles is a fixed-size store of particles. A particle's ID is its index
// in the store and never changes.
type Particles struct {
	ps []Particle
}

// NewParticles creates a store of n particles at rest at the origin with no
// collision state.
func NewParticles(n int) *Particles {
	ps := &Particles{make([]Particle, n)}
	for i := range ps.ps {
		ps.ps[i].ID = i
		ps.ps[i].PartnerID = NoPartner
	}
	return ps
}

// Len returns the number of particles.
func (ps *Particles) Len() int { return len(ps.ps) }

// At returns the particle with the given ID.
func (ps *Particles) At(id int) *Particle { return &ps.ps[id] }

// Slice returns the underlying particle slice. Changing the IDs of the
// returned particles invalidates the store.
func (ps *Particles) Slice() []Particle { return ps.ps }

// SetCollision registers a pending collision between a and b at time t on
// both particles.
func (ps *Particles) SetCollision(a, b int, t float64) {
	ps.ps[a].CollisionTime, ps.ps[a].PartnerID = t, b
	ps.ps[b].CollisionTime, ps.ps[b].PartnerID = t, a
}

// ClearCollision unsets the collision time and partner of a single particle.
func (ps *Particles) ClearCollision(id int) {
	ps.ps[id].CollisionTime = 0
	ps.ps[id].PartnerID = NoPartner
}

// ClearMarkers forgets the most recent collision partner of every particle
// without a pending collision.
func (ps *Particles) ClearMarkers() {
	for i := range ps.ps {
		if !ps.ps[i].Pending() {
			ps.ps[i].PartnerID = NoPartner
		}
	}
}

// Pending returns the number of particles with a pending collision.
func (ps *Particles) Pending() int {
	n := 0
	for i := range ps.ps {
		if ps.ps[i].Pending() {
			n++
		}
	}
	return n
}

// TotalMomentum returns the summed four-momentum of all particles.
func (ps *Particles) TotalMomentum() geom.FourVector {
	sum := geom.FourVector{}
	for i := range ps.ps {
		sum.AddSelf(&ps.ps[i].P)
	}
	return sum
}

// TotalEnergy returns the summed energy of all particles.
func (ps *Particles) TotalEnergy() float64 {
	sum := 0.0
	for i := range ps.ps {
		sum += ps.ps[i].P[0]
	}
	return sum
}

// CheckConsistency returns an error if any pending collision is not mutual:
// every particle with a pending collision must name a partner which names it
// back with the same collision time.
func (ps *Particles) CheckConsistency() error {
	for i := range ps.ps {
		p := &ps.ps[i]
		if !p.Pending() {
			continue
		}

		if p.PartnerID < 0 || p.PartnerID >= len(ps.ps) || p.PartnerID == i {
			return fmt.Errorf(
				"Particle %d has a pending collision with invalid partner %d.",
				i, p.PartnerID,
			)
		}

		q := &ps.ps[p.PartnerID]
		if q.PartnerID != i {
			return fmt.Errorf(
				"Particle %d collides with %d, but %d collides with %d.",
				i, p.PartnerID, p.PartnerID, q.PartnerID,
			)
		} else if q.CollisionTime != p.CollisionTime {
			return fmt.Errorf(
				"Particles %d and %d have collision times %g and %g.",
				i, q.ID, p.CollisionTime, q.CollisionTime,
			)
		}
	}
	return nil
}
