package geom

import (
	"math"
)

// Mod calculates the value of a position within the fundamental domain of a
// box with periodic boundary conditions of the given width. Only the spatial
// components are changed.
func (v *FourVector) Mod(width float64) *FourVector {
	return v.ModAt(width, &FourVector{})
}

func (v *FourVector) ModSelf(width float64) *FourVector {
	return v.ModAt(width, v)
}

func (v *FourVector) ModAt(width float64, out *FourVector) *FourVector {
	out[0] = v[0]
	for i := 1; i < 4; i++ {
		out[i] = v[i]
		if out[i] >= width || out[i] < 0 {
			out[i] -= width * math.Floor(out[i]/width)
			// Floating point error can leave -tiny + width == width.
			if out[i] >= width {
				out[i] = 0
			}
		}
	}
	return out
}

// MinImageShift returns the shift which needs to be added to the position b so
// that it becomes the periodic image closest to a. The time-like component of
// the shift is always zero.
func MinImageShift(a, b *FourVector, width float64) FourVector {
	shift := FourVector{}
	half := width / 2
	for i := 1; i < 4; i++ {
		d := a[i] - b[i]
		if d > half {
			shift[i] = width
		} else if d < -half {
			shift[i] = -width
		}
	}
	return shift
}
