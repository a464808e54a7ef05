package experiment

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	gc "github.com/phil-mansfield/gocollide"
)

// HistInfo describes the binning of a histogram.
type HistInfo struct {
	Min, Max float64
	Bins     int
	Scale    string // "Log" or "Linear"
}

func (info *HistInfo) isLog() bool {
	return strings.ToLower(info.Scale) == "log"
}

// Edges returns the Bins + 1 bin edges. Log-scaled bins need Min > 0.
func (info *HistInfo) Edges() []float64 {
	edges := make([]float64, info.Bins+1)
	if info.isLog() {
		floats.LogSpan(edges, info.Min, info.Max)
	} else {
		floats.Span(edges, info.Min, info.Max)
	}
	// Exact end points keep every value in [Min, Max) inside the edges.
	edges[0], edges[info.Bins] = info.Min, info.Max
	return edges
}

// Centers returns the center of every bin. Log-scaled bins use the geometric
// mean of their edges.
func (info *HistInfo) Centers() []float64 {
	edges := info.Edges()
	centers := make([]float64, info.Bins)
	for i := range centers {
		if info.isLog() {
			centers[i] = math.Sqrt(edges[i] * edges[i+1])
		} else {
			centers[i] = (edges[i] + edges[i+1]) / 2
		}
	}
	return centers
}

// MomentumHist counts the particles in each bin of |p|. Particles outside of
// [Min, Max) are skipped.
func MomentumHist(ps *gc.Particles, info *HistInfo) []float64 {
	xs := make([]float64, 0, ps.Len())
	for id := 0; id < ps.Len(); id++ {
		p := &ps.At(id).P
		x := math.Sqrt(p.DotThree(p))
		if x >= info.Min && x < info.Max {
			xs = append(xs, x)
		}
	}
	sort.Float64s(xs)

	counts := make([]float64, info.Bins)
	return stat.Histogram(counts, info.Edges(), xs, nil)
}

// ThermalHist returns the expected bin counts of n massless particles with
// Boltzmann distributed momenta, p^2 exp(-p/T) / (2 T^3).
func ThermalHist(n int, temp float64, info *HistInfo) []float64 {
	// Integral of the normalized distribution from 0 to x.
	cdf := func(x float64) float64 {
		y := x / temp
		return 1 - math.Exp(-y)*(1+y+y*y/2)
	}

	edges := info.Edges()
	counts := make([]float64, info.Bins)
	for i := range counts {
		counts[i] = float64(n) * (cdf(edges[i+1]) - cdf(edges[i]))
	}
	return counts
}
