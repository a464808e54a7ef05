/*package geom contains the relativistic vector arithmetic used by gocollide and
the index math for periodic cell grids.

All vector methods which return vectors also come in *Self() and *At()
variants which compute the operation in-place and at the specified location,
respectively. All output vectors are valid unless they overlap with an input
vector but are not equal to that vector.
*/
package geom

// FourVector is a relativistic four-vector. Component 0 is time-like (time
// for positions, energy for momenta) and components 1-3 are spatial.
type FourVector [4]float64

func (v *FourVector) X0() float64 { return v[0] }
func (v *FourVector) X1() float64 { return v[1] }
func (v *FourVector) X2() float64 { return v[2] }
func (v *FourVector) X3() float64 { return v[3] }

// Add adds two vectors together component-wise.
func (v *FourVector) Add(u *FourVector) *FourVector {
	return v.AddAt(u, &FourVector{})
}

func (v *FourVector) AddSelf(u *FourVector) *FourVector {
	return v.AddAt(u, v)
}

func (v *FourVector) AddAt(u, out *FourVector) *FourVector {
	for i := 0; i < 4; i++ {
		out[i] = v[i] + u[i]
	}
	return out
}

// Sub subtracts u from v component-wise.
func (v *FourVector) Sub(u *FourVector) *FourVector {
	return v.SubAt(u, &FourVector{})
}

func (v *FourVector) SubSelf(u *FourVector) *FourVector {
	return v.SubAt(u, v)
}

func (v *FourVector) SubAt(u, out *FourVector) *FourVector {
	for i := 0; i < 4; i++ {
		out[i] = v[i] - u[i]
	}
	return out
}

// Scale multiplies all components of a vector by a constant.
func (v *FourVector) Scale(k float64) *FourVector {
	return v.ScaleAt(k, &FourVector{})
}

func (v *FourVector) ScaleSelf(k float64) *FourVector {
	return v.ScaleAt(k, v)
}

func (v *FourVector) ScaleAt(k float64, out *FourVector) *FourVector {
	for i := 0; i < 4; i++ {
		out[i] = v[i] * k
	}
	return out
}

// DotThree computes the dot product of the spatial components of two vectors.
// Component 0 is ignored.
func (v *FourVector) DotThree(u *FourVector) float64 {
	return v[1]*u[1] + v[2]*u[2] + v[3]*u[3]
}

// Dot computes the Minkowski product of two vectors with signature (+, -, -, -).
func (v *FourVector) Dot(u *FourVector) float64 {
	return v[0]*u[0] - v.DotThree(u)
}

// ZeroThree returns true if every spatial component of v is exactly zero.
func (v *FourVector) ZeroThree() bool {
	return v[1] == 0 && v[2] == 0 && v[3] == 0
}

// Velocity returns the three-velocity of a momentum vector, p / E, with the
// time-like component set to 1. This is the four-velocity form expected by
// Boost.
func (v *FourVector) Velocity() FourVector {
	return FourVector{1, v[1] / v[0], v[2] / v[0], v[3] / v[0]}
}
