/*package rand provides the seeded random number generator which is threaded
through everything in gocollide that needs randomness.

There is no package-level generator: a run creates one Generator from its
configured seed and passes it to the functions that sample from it. Two
Generators created with the same seed produce identical sequences.
*/
package rand

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator is a seeded source of random numbers.
type Generator struct {
	seed uint64
	src  rand.Source
	rng  *rand.Rand
}

// NewGenerator returns a generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	src := rand.NewSource(seed)
	return &Generator{seed: seed, src: src, rng: rand.New(src)}
}

// Seed returns the seed the generator was created with.
func (gen *Generator) Seed() uint64 { return gen.seed }

// Canonical returns a uniformly distributed number in [0, 1).
func (gen *Generator) Canonical() float64 { return gen.rng.Float64() }

// Uniform returns a uniformly distributed number in [min, max).
func (gen *Generator) Uniform(min, max float64) float64 {
	d := distuv.Uniform{Min: min, Max: max, Src: gen.src}
	return d.Rand()
}

// UniformAt fills out with uniformly distributed numbers in [min, max).
func (gen *Generator) UniformAt(min, max float64, out []float64) {
	d := distuv.Uniform{Min: min, Max: max, Src: gen.src}
	for i := range out {
		out[i] = d.Rand()
	}
}

// Poisson returns a Poisson distributed integer with mean lambda.
func (gen *Generator) Poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	d := distuv.Poisson{Lambda: lambda, Src: gen.src}
	return int(d.Rand())
}

// Gamma returns a number distributed as x^(alpha-1) exp(-beta * x). beta is a
// rate, not a scale.
func (gen *Generator) Gamma(alpha, beta float64) float64 {
	d := distuv.Gamma{Alpha: alpha, Beta: beta, Src: gen.src}
	return d.Rand()
}

// Direction returns an isotropically distributed unit vector.
func (gen *Generator) Direction() [3]float64 {
	cosTheta := gen.Uniform(-1, 1)
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
	phi := 2 * math.Pi * gen.Canonical()

	return [3]float64{
		sinTheta * math.Cos(phi), sinTheta * math.Sin(phi), cosTheta,
	}
}
