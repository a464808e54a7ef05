package geom

import (
	"go-hep.org/x/hep/fmom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Boost returns v as seen from a frame moving with the four-velocity u
// relative to the current frame. u must have the form (1, beta) with
// |beta| < 1. Boosting with (1, -beta) undoes a boost with (1, beta).
//
// fmom boosts actively (it gives the vector the velocity beta), so the frame
// transformation passes -beta.
func Boost(v, u FourVector) FourVector {
	if u.ZeroThree() {
		return v
	}

	p := fmom.NewPxPyPzE(v[1], v[2], v[3], v[0])
	b := fmom.Boost(&p, r3.Vec{X: -u[1], Y: -u[2], Z: -u[3]})

	return FourVector{b.E(), b.Px(), b.Py(), b.Pz()}
}

// BoostSelf boosts v in-place. See Boost.
func (v *FourVector) BoostSelf(u *FourVector) *FourVector {
	*v = Boost(*v, *u)
	return v
}

// CMVelocity returns the four-velocity of the center-of-momentum frame of two
// momenta: (1, (p1 + p2) / (E1 + E2)).
func CMVelocity(p1, p2 *FourVector) FourVector {
	e := p1[0] + p2[0]
	return FourVector{
		1, (p1[1] + p2[1]) / e, (p1[2] + p2[2]) / e, (p1[3] + p2[3]) / e,
	}
}

// BoostToCM boosts the momenta and positions of two particles in-place into
// their center-of-momentum frame and returns the four-velocity that was used.
func BoostToCM(p1, p2, x1, x2 *FourVector) FourVector {
	u := CMVelocity(p1, p2)

	p1.BoostSelf(&u)
	p2.BoostSelf(&u)
	x1.BoostSelf(&u)
	x2.BoostSelf(&u)

	return u
}

// BoostFromCM undoes BoostToCM given the four-velocity it returned. The
// spatial part of u is negated and its time-like component reset to 1.
func BoostFromCM(p1, p2, x1, x2 *FourVector, u FourVector) {
	u.ScaleSelf(-1)
	u[0] = 1

	p1.BoostSelf(&u)
	p2.BoostSelf(&u)
	x1.BoostSelf(&u)
	x2.BoostSelf(&u)
}
