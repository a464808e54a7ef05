package modus

import (
	"fmt"
	"math"
	"strings"

	gc "github.com/phil-mansfield/gocollide"
	"github.com/phil-mansfield/gocollide/geom"
	"github.com/phil-mansfield/gocollide/io"
	"github.com/phil-mansfield/gocollide/rand"
)

// InitialCondition is a way of choosing the initial particle momenta.
type InitialCondition int

const (
	Thermal InitialCondition = iota
	Uniform
	File
	EndInitialCondition
)

var initialConditionNames = []string{"Thermal", "Uniform", "File"}

func (ic InitialCondition) String() string {
	if ic < 0 || ic >= EndInitialCondition {
		return fmt.Sprintf("InitialCondition(%d)", int(ic))
	}
	return initialConditionNames[ic]
}

// InitialConditionFromString returns the InitialCondition with the given
// name. Case is ignored.
func InitialConditionFromString(s string) (InitialCondition, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for ic := Thermal; ic < EndInitialCondition; ic++ {
		if strings.ToLower(ic.String()) == s {
			return ic, true
		}
	}
	return -1, false
}

// Box is a cube with periodic boundary conditions spanning [0, Length) along
// each axis.
type Box struct {
	Length      float64 // [fm]
	Temperature float64 // [GeV]
	Mass        float64 // [GeV]

	InitialCondition InitialCondition
	InitialFile      string
}

// NewBox creates a Box from the relevant fields of con.
func NewBox(con *io.BoxConfig) (*Box, error) {
	ic, ok := InitialConditionFromString(con.InitialCondition)
	if !ok {
		return nil, fmt.Errorf(
			"Unrecognized 'InitialCondition' value, '%s'. The only accepted "+
				"values are: %s.", con.InitialCondition,
			strings.Join(initialConditionNames, ", "),
		)
	}

	return &Box{
		Length:           con.Length,
		Temperature:      con.Temperature,
		Mass:             con.Mass,
		InitialCondition: ic,
		InitialFile:      con.InitialFile,
	}, nil
}

// InitialConditions places particles uniformly in the box at t = 0 and draws
// their momenta according to box.InitialCondition. Thermal momenta have a
// massless Boltzmann magnitude distribution, p^2 exp(-p/T), isotropic
// directions and zero total momentum. With File, both positions and momenta
// are read from box.InitialFile, which must contain exactly ps.Len()
// particles.
func (box *Box) InitialConditions(ps *gc.Particles, gen *rand.Generator) error {
	switch box.InitialCondition {
	case Thermal:
		box.place(ps, gen)
		for id := 0; id < ps.Len(); id++ {
			p := gen.Gamma(3, 1/box.Temperature)
			dir := gen.Direction()
			box.setMomentum(ps.At(id), p*dir[0], p*dir[1], p*dir[2])
		}
		box.removeTotalMomentum(ps)

	case Uniform:
		box.place(ps, gen)
		for id := 0; id < ps.Len(); id++ {
			temp := box.Temperature
			box.setMomentum(ps.At(id), gen.Uniform(-temp, temp),
				gen.Uniform(-temp, temp), gen.Uniform(-temp, temp))
		}

	case File:
		read, err := io.ReadParticleTable(box.InitialFile)
		if err != nil {
			return err
		} else if read.Len() != ps.Len() {
			return fmt.Errorf(
				"InitialFile '%s' contains %d particles, but %d are needed.",
				box.InitialFile, read.Len(), ps.Len(),
			)
		}
		for id := 0; id < ps.Len(); id++ {
			p := ps.At(id)
			*p = *read.At(id)
			p.X, _ = box.ApplyBoundary(p.X)
		}

	default:
		return fmt.Errorf(
			"Box has unknown initial condition %s.", box.InitialCondition,
		)
	}

	return nil
}

func (box *Box) place(ps *gc.Particles, gen *rand.Generator) {
	for id := 0; id < ps.Len(); id++ {
		p := ps.At(id)
		p.X = geom.FourVector{}
		gen.UniformAt(0, box.Length, p.X[1:])
		p.Mass = box.Mass
		p.CollisionTime, p.PartnerID = 0, gc.NoPartner
	}
}

func (box *Box) setMomentum(p *gc.Particle, px, py, pz float64) {
	e := math.Sqrt(p.Mass*p.Mass + px*px + py*py + pz*pz)
	p.P = geom.FourVector{e, px, py, pz}
}

// removeTotalMomentum shifts every three-momentum by the same amount so that
// they sum to zero. Energies are recomputed.
func (box *Box) removeTotalMomentum(ps *gc.Particles) {
	if ps.Len() == 0 {
		return
	}
	total := ps.TotalMomentum()
	n := float64(ps.Len())
	for id := 0; id < ps.Len(); id++ {
		p := ps.At(id)
		box.setMomentum(p,
			p.P[1]-total[1]/n, p.P[2]-total[2]/n, p.P[3]-total[3]/n)
	}
}

// Propagate moves every particle freely for a time eps, x += eps p / E, and
// wraps it back into the box.
func (box *Box) Propagate(ps *gc.Particles, eps float64) int {
	crossings := 0
	for id := 0; id < ps.Len(); id++ {
		p := ps.At(id)
		v := p.P.Velocity()
		p.X.AddSelf(v.ScaleSelf(eps))

		var hit bool
		p.X, hit = box.ApplyBoundary(p.X)
		if hit {
			crossings++
		}
	}
	return crossings
}

// ApplyBoundary wraps every spatial coordinate of x into [0, Length).
func (box *Box) ApplyBoundary(x geom.FourVector) (geom.FourVector, bool) {
	wrapped := x
	wrapped.ModSelf(box.Length)
	return wrapped, wrapped != x
}

// SanityCheck returns the number of particles with a coordinate outside of
// [0, Length).
func (box *Box) SanityCheck(ps *gc.Particles) int {
	n := 0
	for id := 0; id < ps.Len(); id++ {
		x := &ps.At(id).X
		for k := 1; k < 4; k++ {
			if x[k] < 0 || x[k] >= box.Length {
				n++
				break
			}
		}
	}
	return n
}

// Volume returns the volume of the box [fm^3].
func (box *Box) Volume() float64 {
	return box.Length * box.Length * box.Length
}
