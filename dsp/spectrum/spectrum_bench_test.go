package spectrum

import (
	"fmt"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-ntt/internal/testutil"
)

func magnitudeNaive(bins []complex128) []float64 {
	out := make([]float64, len(bins))
	for i, c := range bins {
		out[i] = cmplx.Abs(c)
	}
	return out
}

func BenchmarkMagnitude(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		bins := testutil.ComplexNoise(1, 1, n)
		b.Run(fmt.Sprintf("vecmath/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = Magnitude(bins)
			}
		})
		b.Run(fmt.Sprintf("naive/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = magnitudeNaive(bins)
			}
		})
	}
}

func BenchmarkPower(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		bins := testutil.ComplexNoise(2, 1, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = Power(bins)
			}
		})
	}
}
