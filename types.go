package gocollide

import (
	"github.com/phil-mansfield/gocollide/geom"
)

// NoPartner is the PartnerID of a particle which has neither a pending
// collision nor a recent collision partner.
const NoPartner = -1

// Particle is a point particle inside the simulation volume.
type Particle struct {
	ID   int
	X, P geom.FourVector // (t, x, y, z) [fm] and (E, px, py, pz) [GeV]
	Mass float64

	// CollisionTime is the offset of a pending collision within the current
	// time step, or 0 if there is no pending collision.
	CollisionTime float64
	// PartnerID is the pending collision partner. If CollisionTime is 0 it is
	// the particle most recently collided with (or NoPartner), which blocks an
	// immediate re-collision for one step.
	PartnerID int
}

// Pending returns true if the particle has a pending collision.
func (p *Particle) Pending() bool { return p.CollisionTime > 0 }

// Header describes the volume a set of particles lives in.
type Header struct {
	// Box info
	Length float64
	Count  int
	// time stepping info
	Step int
	Eps  float64
}

// Time returns the simulation time at the start of the current step.
func (h *Header) Time() float64 { return float64(h.Step) * h.Eps }
