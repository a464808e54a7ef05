/*package experiment runs particles in a box forward in time, colliding them
along the way and recording conserved quantities and collision rates.

Each time step runs collision detection, executes the collisions that were
found and then propagates every particle freely over the step.
*/
package experiment

import (
	"fmt"
	"log"
	"math"

	gc "github.com/phil-mansfield/gocollide"
	"github.com/phil-mansfield/gocollide/collide"
	"github.com/phil-mansfield/gocollide/io"
	"github.com/phil-mansfield/gocollide/modus"
	"github.com/phil-mansfield/gocollide/rand"
)

// Measurables are the quantities recorded at every output step.
type Measurables struct {
	Step        int
	Time        float64 // [fm/c]
	Energy      float64 // total energy [GeV]
	EnergyDrift float64 // (Energy - initial energy) / initial energy
	Momentum    float64 // magnitude of the total three-momentum [GeV/c]
	Executed    int     // collisions executed in the last step
	Collisions  int     // collisions executed so far
	// Rate is the number of collisions per particle per fm/c since the
	// previous output step.
	Rate float64
	// Crossings is the number of boundary crossings since the previous output
	// step.
	Crossings int
}

// Experiment owns everything needed for a single run.
type Experiment struct {
	Header    gc.Header
	Particles *gc.Particles
	Modus     modus.Modus
	Detector  *collide.Detector
	Gen       *rand.Generator

	con           *io.BoxConfig
	params        collide.Params
	sink          collide.EventSink
	energyInitial float64
}

// New sets up a run described by con. Executed collisions are passed to sink
// if it is non-nil.
func New(con *io.BoxConfig, sink collide.EventSink) (*Experiment, error) {
	if err := con.CheckInit(); err != nil {
		return nil, err
	}

	m, err := modus.New(con)
	if err != nil {
		return nil, err
	}

	gen := rand.NewGenerator(uint64(con.Seed))
	n, err := particleCount(con, m, gen)
	if err != nil {
		return nil, err
	}

	e := &Experiment{
		Header: gc.Header{
			Length: con.Length, Count: n, Step: 0, Eps: con.Eps,
		},
		Particles: gc.NewParticles(n),
		Modus:     m,
		Detector:  collide.NewDetector(),
		Gen:       gen,
		con:       con,
		params: collide.Params{
			Length: con.Length, Eps: con.Eps, CrossSection: con.CrossSection,
		},
		sink: sink,
	}
	e.Detector.Debug = con.Debug

	if err = m.InitialConditions(e.Particles, gen); err != nil {
		return nil, err
	}
	if out := m.SanityCheck(e.Particles); out > 0 {
		return nil, fmt.Errorf(
			"%d particles are outside the simulation volume after "+
				"initialization.", out,
		)
	}

	e.energyInitial = e.Particles.TotalEnergy()
	return e, nil
}

// particleCount returns the number of particles requested by con. If only a
// number density is given, the count is Poisson distributed around
// NumberDensity times the volume of m. Particle files set their own count.
func particleCount(
	con *io.BoxConfig, m modus.Modus, gen *rand.Generator,
) (int, error) {
	if con.IsFileInit() {
		ps, err := io.ReadParticleTable(con.InitialFile)
		if err != nil {
			return 0, err
		}
		return ps.Len(), nil
	}

	if con.ValidParticles() {
		return con.Particles, nil
	}

	n := gen.Poisson(con.NumberDensity * m.Volume())
	if n < 2 {
		return 0, fmt.Errorf(
			"NumberDensity %g only placed %d particles in the box.",
			con.NumberDensity, n,
		)
	}
	return n, nil
}

// Params returns the collision search parameters used every step.
func (e *Experiment) Params() *collide.Params { return &e.params }

// Step advances the run by one time step and returns the number of
// collisions executed and the number of boundary crossings.
func (e *Experiment) Step() (collisions, crossings int, err error) {
	ps := e.Particles

	collisions, err = e.Detector.Step(ps, &e.params, e.sink)
	if err != nil {
		return collisions, 0, err
	}

	crossings = e.Modus.Propagate(ps, e.params.Eps)
	e.Header.Step++

	if e.con.Debug {
		if out := e.Modus.SanityCheck(ps); out > 0 {
			panic(fmt.Sprintf(
				"%d particles left the box in step %d.", out, e.Header.Step,
			))
		}
	}

	return collisions, crossings, nil
}

// Measure returns the current Measurables. prev is the previous output, or
// nil, and is used to compute rates.
func (e *Experiment) Measure(
	executed, crossings int, prev *Measurables,
) Measurables {
	ps := e.Particles
	total := ps.TotalMomentum()

	m := Measurables{
		Step:       e.Header.Step,
		Time:       e.Header.Time(),
		Energy:     total[0],
		Momentum:   math.Sqrt(total.DotThree(&total)),
		Executed:   executed,
		Collisions: e.Detector.Stats.Collisions,
		Crossings:  crossings,
	}
	if e.energyInitial != 0 {
		m.EnergyDrift = (m.Energy - e.energyInitial) / e.energyInitial
	}

	prevTime, prevCollisions := 0.0, 0
	if prev != nil {
		prevTime, prevCollisions = prev.Time, prev.Collisions
	}
	if dt := m.Time - prevTime; dt > 0 && e.Header.Count > 0 {
		m.Rate = float64(m.Collisions-prevCollisions) /
			(float64(e.Header.Count) * dt)
	}

	return m
}

// Run evolves the particles for con.Steps steps, logging and returning the
// Measurables every con.OutputInterval steps. The first element is always the
// initial state. An error is returned if an event sink fails or if the total
// energy drifts by more than con.EnergyTolerance.
func (e *Experiment) Run() ([]Measurables, error) {
	log.Printf(
		"Box: length = %g fm, %d particles, sigma = %g mb, eps = %g fm/c, "+
			"%d steps, seed = %d, initial energy = %.6g GeV",
		e.con.Length, e.Particles.Len(), e.con.CrossSection, e.con.Eps,
		e.con.Steps, e.con.Seed, e.energyInitial,
	)

	out := []Measurables{e.Measure(0, 0, nil)}
	crossings := 0

	for step := 0; step < e.con.Steps; step++ {
		executed, c, err := e.Step()
		crossings += c
		if err != nil {
			return out, err
		}

		if e.Header.Step%e.con.OutputInterval == 0 || step == e.con.Steps-1 {
			m := e.Measure(executed, crossings, &out[len(out)-1])
			logMeasurables(&m)
			out = append(out, m)
			crossings = 0
		}
	}

	st := &e.Detector.Stats
	log.Printf(
		"Done: %d collisions, %d candidates evaluated, %d accepted, "+
			"%d rejection conflicts.",
		st.Collisions, st.Evaluated, st.Accepted, st.Conflicts,
	)

	last := out[len(out)-1]
	if math.Abs(last.EnergyDrift) > e.con.EnergyTolerance {
		return out, fmt.Errorf(
			"Total energy drifted from %.9g to %.9g GeV, beyond the "+
				"tolerance of %g.", e.energyInitial, last.Energy,
			e.con.EnergyTolerance,
		)
	}

	return out, nil
}

func logMeasurables(m *Measurables) {
	log.Printf(
		"Step %d: t = %.4g fm/c, E = %.9g GeV (drift %.3g), |P| = %.3g GeV/c, "+
			"%d executed, %d collisions, rate %.4g c/fm, %d crossings",
		m.Step, m.Time, m.Energy, m.EnergyDrift, m.Momentum, m.Executed,
		m.Collisions, m.Rate, m.Crossings,
	)
}
