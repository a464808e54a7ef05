package collide

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gc "github.com/phil-mansfield/gocollide"
	"github.com/phil-mansfield/gocollide/geom"
	"github.com/phil-mansfield/gocollide/rand"
)

type recordingSink struct {
	events []Event
	err    error
}

func (s *recordingSink) WriteCollision(ev *Event) error {
	s.events = append(s.events, *ev)
	return s.err
}

func TestExchangeConservation(t *testing.T) {
	gen := rand.NewGenerator(11)

	for i := 0; i < 100; i++ {
		ma, mb := 0.1+gen.Canonical(), 0.1+gen.Canonical()
		a := particle(0, geom.FourVector{0, 1, 2, 3}, onShell(ma,
			gen.Uniform(-1, 1), gen.Uniform(-1, 1), gen.Uniform(-1, 1)))
		b := particle(1, geom.FourVector{0, 1.5, 2, 3}, onShell(mb,
			gen.Uniform(-1, 1), gen.Uniform(-1, 1), gen.Uniform(-1, 1)))
		a.Mass, b.Mass = ma, mb

		before := *a.P.Add(&b.P)
		exchange(&a, &b)
		after := *a.P.Add(&b.P)

		for k := 0; k < 4; k++ {
			if diff := before[k] - after[k]; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("%d) Total momentum changed from %v to %v.",
					i, before, after)
				break
			}
		}
		assert.InDelta(t, ma*ma, a.P.Dot(&a.P), 1e-9)
		assert.InDelta(t, mb*mb, b.P.Dot(&b.P), 1e-9)
		assert.InDelta(t, 1.5, b.X[1], 1e-9, "positions are unchanged")
	}
}

func TestExchangeEqualMassAtRest(t *testing.T) {
	// For equal masses with zero total momentum, the momenta just swap.
	a := particle(0, geom.FourVector{}, onShell(0.5, 0.3, -0.1, 0.2))
	b := particle(1, geom.FourVector{}, onShell(0.5, -0.3, 0.1, -0.2))
	pa, pb := a.P, b.P

	exchange(&a, &b)
	assert.Equal(t, pb, a.P)
	assert.Equal(t, pa, b.P)
}

func TestExecuteEvents(t *testing.T) {
	ps := gc.NewParticles(4)
	ps.At(0).P = onShell(0.138, 0.5, 0, 0)
	ps.At(1).P = onShell(0.138, -0.5, 0, 0)
	ps.At(2).P = onShell(0.938, 0, 0.2, 0)
	ps.At(3).P = onShell(0.138, 0, -0.4, 0)

	l := NewList()
	ps.SetCollision(2, 3, 0.3)
	l.Push(3, 2)
	ps.SetCollision(0, 1, 0.1)
	l.Push(0, 1)

	sink := &recordingSink{}
	n, err := Execute(ps, l, sink)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, ps.Pending())

	require.Len(t, sink.events, 2)
	ev := sink.events[0]
	assert.Equal(t, 0.3, ev.Time)
	assert.Equal(t, 3, ev.Before[0].ID)
	assert.Equal(t, 2, ev.Before[1].ID)
	assert.Equal(t, 0.3, ev.Before[0].CollisionTime)
	assert.Equal(t, 0.0, ev.After[0].CollisionTime)
	assert.Equal(t, *ps.At(3), ev.After[0])
	assert.Equal(t, *ps.At(2), ev.After[1])

	assert.Equal(t, 0, sink.events[1].Before[0].ID)
	assert.Equal(t, 1, sink.events[1].After[1].ID)

	assert.Equal(t, 3, ps.At(2).PartnerID)
	assert.Equal(t, 2, ps.At(3).PartnerID)
}

func TestExecuteSkipsStaleEntries(t *testing.T) {
	ps := gc.NewParticles(2)
	l := NewList()
	l.Push(0, 1)

	n, err := Execute(ps, l, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, l.Len())
}

func TestExecuteSinkError(t *testing.T) {
	ps := gc.NewParticles(4)
	for id := 0; id < 4; id++ {
		ps.At(id).P = onShell(0.138, float64(id)-1.5, 0, 0)
	}

	l := NewList()
	ps.SetCollision(0, 1, 0.1)
	l.Push(0, 1)
	ps.SetCollision(2, 3, 0.2)
	l.Push(2, 3)

	sink := &recordingSink{err: fmt.Errorf("Disk full.")}
	n, err := Execute(ps, l, sink)
	assert.EqualError(t, err, "Disk full.")
	assert.Equal(t, 2, n, "every collision runs despite sink errors")
	assert.Len(t, sink.events, 2)
	assert.Equal(t, 0, ps.Pending())
}
