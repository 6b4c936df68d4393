package testutil

import (
	"math"

	"github.com/cwbudde/algo-ntt/internal/prng"
)

// ComplexImpulse returns a length-n sequence with 1 at pos and 0 elsewhere.
// An out-of-range pos yields all zeros.
func ComplexImpulse(n, pos int) []complex128 {
	out := make([]complex128, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}
	return out
}

// ComplexTone returns exp(2*pi*i*bin*k/n) for k = 0..n-1. Its forward
// transform is n at index bin and 0 elsewhere.
func ComplexTone(n, bin int) []complex128 {
	out := make([]complex128, n)
	for k := range out {
		phase := 2 * math.Pi * float64(bin*k%n) / float64(n)
		out[k] = complex(math.Cos(phase), math.Sin(phase))
	}
	return out
}

// ComplexNoise returns n reproducible complex samples with parts in
// [-amplitude, amplitude).
func ComplexNoise(seed uint64, amplitude float64, n int) []complex128 {
	return prng.New(seed).Complex(n, amplitude)
}

// ComplexDC returns n copies of v.
func ComplexDC(v complex128, n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = v
	}
	return out
}
