package rand

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministic(t *testing.T) {
	g1, g2 := NewGenerator(17), NewGenerator(17)
	for i := 0; i < 100; i++ {
		assert.Equal(t, g1.Uniform(-3, 5), g2.Uniform(-3, 5))
		assert.Equal(t, g1.Gamma(3, 1), g2.Gamma(3, 1))
		assert.Equal(t, g1.Poisson(4), g2.Poisson(4))
	}
	assert.Equal(t, uint64(17), g1.Seed())
}

func TestUniformRange(t *testing.T) {
	gen := NewGenerator(1)
	xs := make([]float64, 10000)
	gen.UniformAt(2, 3, xs)

	sum := 0.0
	for i, x := range xs {
		if x < 2 || x >= 3 {
			t.Fatalf("%d) %g is outside [2, 3)", i, x)
		}
		sum += x
	}
	assert.InDelta(t, 2.5, sum/float64(len(xs)), 0.02)

	for i := 0; i < 1000; i++ {
		c := gen.Canonical()
		if c < 0 || c >= 1 {
			t.Fatalf("%d) Canonical gave %g", i, c)
		}
	}
}

func TestMoments(t *testing.T) {
	gen := NewGenerator(2)
	n := 20000

	var poisson, gamma float64
	for i := 0; i < n; i++ {
		poisson += float64(gen.Poisson(3))
		gamma += gen.Gamma(3, 2)
	}

	assert.InDelta(t, 3.0, poisson/float64(n), 0.1)
	assert.InDelta(t, 1.5, gamma/float64(n), 0.05)

	assert.Equal(t, 0, gen.Poisson(0))
}

func TestDirection(t *testing.T) {
	gen := NewGenerator(3)
	var sum [3]float64
	n := 20000
	for i := 0; i < n; i++ {
		d := gen.Direction()
		norm := math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
		if math.Abs(norm-1) > 1e-12 {
			t.Fatalf("%d) Direction %v has norm %g", i, d, norm)
		}
		for j := range sum {
			sum[j] += d[j]
		}
	}

	for j := range sum {
		assert.InDelta(t, 0, sum[j]/float64(n), 0.02)
	}
}
