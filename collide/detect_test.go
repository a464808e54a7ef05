package collide

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gc "github.com/phil-mansfield/gocollide"
	"github.com/phil-mansfield/gocollide/geom"
	"github.com/phil-mansfield/gocollide/rand"
)

// randomGas fills a box with n particles of mass m with uniform positions and
// momentum components uniform in [-pMax, pMax).
func randomGas(
	n int, length, m, pMax float64, gen *rand.Generator,
) *gc.Particles {
	ps := gc.NewParticles(n)
	for id := 0; id < n; id++ {
		p := ps.At(id)
		p.Mass = m
		p.X = geom.FourVector{
			0, gen.Uniform(0, length), gen.Uniform(0, length),
			gen.Uniform(0, length),
		}
		p.P = onShell(m, gen.Uniform(-pMax, pMax),
			gen.Uniform(-pMax, pMax), gen.Uniform(-pMax, pMax))
	}
	return ps
}

// drift moves every particle freely for a time eps and wraps it back into
// the box.
func drift(ps *gc.Particles, eps, length float64) {
	for id := 0; id < ps.Len(); id++ {
		p := ps.At(id)
		v := p.P.Velocity()
		v.ScaleSelf(eps)
		p.X.AddSelf(&v)
		p.X.ModSelf(length)
	}
}

func TestDetectHeadOn(t *testing.T) {
	params := &Params{Length: 10, Eps: 0.5, CrossSection: 200}
	ps := gc.NewParticles(2)
	ps.At(0).P = geom.FourVector{1, 1, 0, 0}
	ps.At(1).X = geom.FourVector{0, 0.8, 0, 0}
	ps.At(1).P = geom.FourVector{1, -1, 0, 0}

	d := NewDetector()
	d.Debug = true

	require.Equal(t, 1, d.DetectAndResolve(ps, params))
	assert.NoError(t, ps.CheckConsistency())
	assert.Equal(t, 1, ps.At(0).PartnerID)
	assert.Equal(t, 0, ps.At(1).PartnerID)
	assert.InDelta(t, 0.4, ps.At(0).CollisionTime, 1e-12)

	n, err := Execute(ps, d.List(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0, d.List().Len())

	assert.Equal(t, geom.FourVector{1, -1, 0, 0}, ps.At(0).P)
	assert.Equal(t, geom.FourVector{1, 1, 0, 0}, ps.At(1).P)
	assert.Equal(t, 0.0, ps.At(0).CollisionTime)
	assert.Equal(t, 0.0, ps.At(1).CollisionTime)
	// Markers survive until the next detection phase.
	assert.Equal(t, 1, ps.At(0).PartnerID)
	assert.Equal(t, 0, ps.At(1).PartnerID)

	assert.Equal(t, 0, d.DetectAndResolve(ps, params))
	assert.Equal(t, gc.NoPartner, ps.At(0).PartnerID)
	assert.Equal(t, gc.NoPartner, ps.At(1).PartnerID)
}

func TestDetectBlocksRecollision(t *testing.T) {
	params := &Params{Length: 10, Eps: 0.5, CrossSection: 200}
	ps := gc.NewParticles(2)
	ps.At(0).P = geom.FourVector{1, 1, 0, 0}
	ps.At(1).X = geom.FourVector{0, 0.8, 0, 0}
	ps.At(1).P = geom.FourVector{1, -1, 0, 0}

	d := NewDetector()
	require.Equal(t, 1, d.DetectAndResolve(ps, params))

	// Pretend the pair is still approaching after colliding.
	d.List().Clear()
	ps.At(0).CollisionTime, ps.At(1).CollisionTime = 0, 0
	assert.Equal(t, 0, d.DetectAndResolve(ps, params))
	assert.Equal(t, 1, d.DetectAndResolve(ps, params))
}

func TestDetectPeriodicAllPairs(t *testing.T) {
	params := &Params{Length: 10, Eps: 0.1, CrossSection: 10}
	ps := gc.NewParticles(2)
	ps.At(0).X = geom.FourVector{0, 9.99, 5, 5}
	ps.At(0).P = geom.FourVector{1, 1, 0, 0}
	ps.At(1).X = geom.FourVector{0, 0.01, 5, 5}
	ps.At(1).P = geom.FourVector{1, -1, 0, 0}

	d := NewDetector()
	require.Equal(t, 1, d.DetectAndResolve(ps, params))
	assert.InDelta(t, 0.01, ps.At(0).CollisionTime, 1e-9)
}

func TestDetectPeriodicGrid(t *testing.T) {
	params := &Params{Length: 40, Eps: 0.1, CrossSection: 10}
	require.Equal(t, 35, params.GridCells())

	ps := gc.NewParticles(12)
	ps.At(0).X = geom.FourVector{0, 39.99, 20, 20}
	ps.At(0).P = geom.FourVector{1, 1, 0, 0}
	ps.At(1).X = geom.FourVector{0, 0.01, 20, 20}
	ps.At(1).P = geom.FourVector{1, -1, 0, 0}
	for id := 2; id < ps.Len(); id++ {
		p := ps.At(id)
		p.Mass = 0.138
		p.X = geom.FourVector{0, float64(3 * id), 5, 5}
		p.P = onShell(p.Mass, 0, 0, 0)
	}

	d := NewDetector()
	d.Debug = true
	require.Equal(t, 1, d.DetectAndResolve(ps, params))
	assert.Equal(t, 1, ps.At(0).PartnerID)
	assert.InDelta(t, 0.01, ps.At(0).CollisionTime, 1e-9)
	assert.Equal(t, 2, ps.Pending())
}

func TestDetectLargeSparseBox(t *testing.T) {
	table := []struct {
		length, crossSection float64
	}{
		{2000, 0.01},
		{200, 1},
	}
	for i, test := range table {
		params := &Params{Length: test.length, CrossSection: test.crossSection}
		if cells := params.GridCells(); cells != maxGridCells {
			t.Errorf("%d) expected %d cells, got %d", i+1, maxGridCells, cells)
		}
	}

	params := &Params{Length: 2000, Eps: 0.5, CrossSection: 0.01}
	ps := gc.NewParticles(12)
	ps.At(0).X = geom.FourVector{0, 1999.999, 1000, 1000}
	ps.At(0).P = geom.FourVector{1, 1, 0, 0}
	ps.At(1).X = geom.FourVector{0, 0.001, 1000, 1000}
	ps.At(1).P = geom.FourVector{1, -1, 0, 0}
	for id := 2; id < ps.Len(); id++ {
		p := ps.At(id)
		p.Mass = 0.138
		p.X = geom.FourVector{0, float64(100 * id), 500, 500}
		p.P = onShell(p.Mass, 0, 0, 0)
	}

	d := NewDetector()
	d.Debug = true
	require.Equal(t, 1, d.DetectAndResolve(ps, params))
	assert.Equal(t, 1, ps.At(0).PartnerID)
	assert.InDelta(t, 0.001, ps.At(0).CollisionTime, 1e-9)
}

func TestDetectParallelGas(t *testing.T) {
	params := &Params{Length: 10, Eps: 0.5, CrossSection: 1}
	ps := gc.NewParticles(50)
	gen := rand.NewGenerator(3)
	for id := 0; id < ps.Len(); id++ {
		p := ps.At(id)
		p.X = geom.FourVector{
			0, gen.Uniform(0, 10), gen.Uniform(0, 10), gen.Uniform(0, 10),
		}
		p.P = onShell(0.138, 0.3, -0.2, 0.1)
	}

	d := NewDetector()
	assert.Equal(t, 0, d.DetectAndResolve(ps, params))
	assert.Equal(t, 0, ps.Pending())
	assert.Equal(t, 0, d.Stats.Accepted)
}

func TestDetectSingleCell(t *testing.T) {
	params := &Params{Length: 10, Eps: 0.5, CrossSection: 10 * math.Pi}
	require.Equal(t, 5, params.GridCells())

	ps := gc.NewParticles(12)
	for id := 0; id < ps.Len(); id++ {
		f := 4 + float64(id)/6
		ps.At(id).X = geom.FourVector{0, f, f, 5}
		ps.At(id).P = onShell(1, 0, 0, 0)
	}

	d := NewDetector()
	d.DetectAndResolve(ps, params)
	assert.Equal(t, 12*11/2, d.Stats.Evaluated)
}

func TestGridMatchesAllPairs(t *testing.T) {
	params := &Params{Length: 10, Eps: 0.5, CrossSection: 10}
	require.Equal(t, 8, params.GridCells())
	maxDist := 2 * params.InteractionLength()

	for seed := uint64(0); seed < 5; seed++ {
		ps := randomGas(300, params.Length, 1, 0.1, rand.NewGenerator(seed))

		accepted := 0
		for a := 0; a < ps.Len(); a++ {
			for b := a + 1; b < ps.Len(); b++ {
				pa, pb := ps.At(a), ps.At(b)
				shift := geom.MinImageShift(&pa.X, &pb.X, params.Length)
				if farApart(&pa.X, &pb.X, &shift, maxDist) {
					continue
				}
				if _, ok := Evaluate(pa, pb, &shift, params); ok {
					accepted++
				}
			}
		}

		d := NewDetector()
		d.Debug = true
		d.DetectAndResolve(ps, params)
		if d.Stats.Accepted != accepted {
			t.Errorf("%d) Grid search accepted %d pairs, exhaustive search "+
				"accepted %d.", seed, d.Stats.Accepted, accepted)
		}
		if d.Stats.Evaluated >= ps.Len()*(ps.Len()-1)/2 {
			t.Errorf("%d) Grid search evaluated all %d pairs.",
				seed, d.Stats.Evaluated)
		}
	}
}

func TestStepConservation(t *testing.T) {
	params := &Params{Length: 10, Eps: 0.2, CrossSection: 40}
	ps := randomGas(300, params.Length, 0.138, 0.3, rand.NewGenerator(7))
	p0 := ps.TotalMomentum()

	d := NewDetector()
	d.Debug = true
	for step := 0; step < 10; step++ {
		_, err := d.Step(ps, params, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, ps.Pending())
		drift(ps, params.Eps, params.Length)
	}

	assert.True(t, d.Stats.Collisions > 0)
	assert.True(t, d.Stats.Accepted >= d.Stats.Collisions)

	p1 := ps.TotalMomentum()
	for i := 0; i < 4; i++ {
		assert.InDelta(t, p0[i], p1[i], 1e-9*p0[0])
	}
	for id := 0; id < ps.Len(); id++ {
		p := ps.At(id)
		assert.InDelta(t, p.Mass*p.Mass, p.P.Dot(&p.P), 1e-9)
	}
}

func BenchmarkDetectAndResolve(b *testing.B) {
	params := &Params{Length: 10, Eps: 0.2, CrossSection: 40}
	ps := randomGas(1000, params.Length, 0.138, 0.3, rand.NewGenerator(1))
	d := NewDetector()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.DetectAndResolve(ps, params)
		for id := 0; id < ps.Len(); id++ {
			ps.ClearCollision(id)
		}
	}
}
