package collide

import (
	gc "github.com/phil-mansfield/gocollide"
	"github.com/phil-mansfield/gocollide/geom"
)

// Candidate is a pair of particles which pass the collision criteria in the
// current step.
type Candidate struct {
	A, B            int
	DistanceSquared float64 // in the pair's center-of-momentum frame [fm^2]
	Time            float64 // offset within the step [fm/c]
}

// Evaluate applies the collision criteria to a pair of particles. If shift is
// non-nil it is added to a copy of b's position first so that periodic images
// can be tested; neither particle is modified. ok is false if the pair does
// not collide within this step.
func Evaluate(
	a, b *gc.Particle, shift *geom.FourVector, params *Params,
) (c Candidate, ok bool) {
	xa, xb := a.X, b.X
	if shift != nil {
		xb.AddSelf(shift)
	}
	pa, pb := a.P, b.P

	d2, ok := distanceSquared(pa, pb, xa, xb)
	if !ok || !(d2 < params.MaxDistanceSquared()) {
		return c, false
	}

	t := collisionTime(&pa, &pb, &xa, &xb)
	if !(t >= 0 && t < params.Eps) {
		return c, false
	}

	return Candidate{A: a.ID, B: b.ID, DistanceSquared: d2, Time: t}, true
}

// distanceSquared computes the squared transverse distance of closest approach
// of two particles in their center-of-momentum frame,
//   d^2 = (x1 - x2)^2 - ((x1 - x2).(p1 - p2))^2 / (p1 - p2)^2
// (UrQMD, arXiv:nucl-th/9803035 eq. 3.27). ok is false when the momentum
// difference vanishes, since such a pair never gets any closer.
func distanceSquared(pa, pb, xa, xb geom.FourVector) (d2 float64, ok bool) {
	geom.BoostToCM(&pa, &pb, &xa, &xb)

	dx := xa.Sub(&xb)
	dp := pa.Sub(&pb)
	if dp.ZeroThree() {
		return 0, false
	}

	dxdp := dx.DotThree(dp)
	return dx.DotThree(dx) - dxdp*dxdp/dp.DotThree(dp), true
}

// collisionTime computes the time of closest approach of two particles in the
// lab frame, t = -(x1 - x2).(v1 - v2) / (v1 - v2)^2 (arXiv:1203.4418 eq. 5.15).
func collisionTime(pa, pb, xa, xb *geom.FourVector) float64 {
	dx := xa.Sub(xb)
	va, vb := pa.Velocity(), pb.Velocity()
	dv := va.Sub(&vb)
	return -dx.DotThree(dv) / dv.DotThree(dv)
}
