package core

import (
	"math"
	"math/cmplx"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// NearlyEqualComplex reports whether both components of a and b are
// nearly equal within eps.
func NearlyEqualComplex(a, b complex128, eps float64) bool {
	return NearlyEqual(real(a), real(b), eps) && NearlyEqual(imag(a), imag(b), eps)
}

// Unit returns the point on the unit circle at the given phase, exp(i*phase).
func Unit(phase float64) complex128 {
	return cmplx.Rect(1, phase)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
