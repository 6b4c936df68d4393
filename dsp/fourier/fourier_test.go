package fourier

import (
	"errors"
	"fmt"
	"math"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
	godspfft "github.com/mjibson/go-dsp/fft"
	gonumfourier "gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-ntt/dsp/core"
	"github.com/cwbudde/algo-ntt/internal/testutil"
)

const tol = 1e-9

func TestDFTMatchesFFT(t *testing.T) {
	for _, n := range []int{8, 16} {
		x := testutil.ComplexNoise(uint64(n), 1, n)

		slow, err := DFT(x)
		if err != nil {
			t.Fatalf("DFT(n=%d): %v", n, err)
		}
		fast, err := FFT(x)
		if err != nil {
			t.Fatalf("FFT(n=%d): %v", n, err)
		}
		testutil.RequireComplexNearlyEqual(t, fast, slow, 1e-4)
	}
}

func TestFFTBaseSizes(t *testing.T) {
	x := testutil.ComplexNoise(3, 1, 64)
	want, err := DFT(x)
	if err != nil {
		t.Fatal(err)
	}

	for _, base := range []int{1, 2, 4, 8, 64, 128} {
		t.Run(fmt.Sprintf("base=%d", base), func(t *testing.T) {
			got, err := FFT(x, core.WithBaseSize(base))
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireComplexNearlyEqual(t, got, want, tol)
		})
	}
}

func TestImpulseResponse(t *testing.T) {
	const n = 32

	// impulse at 0 is flat
	got, err := FFT(testutil.ComplexImpulse(n, 0))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireComplexNearlyEqual(t, got, testutil.ComplexDC(1, n), tol)

	// impulse at 1 gives the twiddle factors
	got, err = FFT(testutil.ComplexImpulse(n, 1))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireComplexNearlyEqual(t, got, Twiddles(n), tol)
}

func TestToneLandsInOneBin(t *testing.T) {
	const n, bin = 64, 5
	got, err := FFT(testutil.ComplexTone(n, bin))
	if err != nil {
		t.Fatal(err)
	}
	want := testutil.ComplexImpulse(n, bin)
	for i := range want {
		want[i] *= n
	}
	testutil.RequireComplexNearlyEqual(t, got, want, 1e-9)
}

func TestFFTMatchesAlgoFFT(t *testing.T) {
	for _, n := range []int{4, 16, 256, 1024} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			x := testutil.ComplexNoise(7, 1, n)

			plan, err := algofft.NewPlan64(n)
			if err != nil {
				t.Fatalf("NewPlan64(%d): %v", n, err)
			}
			want := make([]complex128, n)
			if err := plan.Forward(want, x); err != nil {
				t.Fatalf("Forward: %v", err)
			}

			got, err := FFT(x)
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireComplexNearlyEqual(t, got, want, 1e-8)
		})
	}
}

func TestFFTMatchesGonum(t *testing.T) {
	for _, n := range []int{2, 8, 128} {
		x := testutil.ComplexNoise(11, 2, n)
		want := gonumfourier.NewCmplxFFT(n).Coefficients(nil, x)

		got, err := FFT(x)
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireComplexNearlyEqual(t, got, want, 1e-8)
	}
}

func TestIFFTMatchesGoDSP(t *testing.T) {
	for _, n := range []int{4, 32, 512} {
		x := testutil.ComplexNoise(13, 1, n)
		want := godspfft.IFFT(x)

		got, err := IFFT(x)
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireComplexNearlyEqual(t, got, want, 1e-9)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 4, 64, 1024} {
		x := testutil.ComplexNoise(uint64(n)+1, 1, n)

		y, err := FFT(x)
		if err != nil {
			t.Fatal(err)
		}
		back, err := IFFT(y)
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireComplexNearlyEqual(t, back, x, 1e-9)
	}
}

func TestFFTInPlace(t *testing.T) {
	for _, n := range []int{1, 2, 8, 256} {
		x := testutil.ComplexNoise(17, 1, n)
		want, err := FFT(x)
		if err != nil {
			t.Fatal(err)
		}

		got := core.Clone(x)
		if err := FFTInPlace(got); err != nil {
			t.Fatal(err)
		}
		testutil.RequireComplexNearlyEqual(t, got, want, 1e-9)
	}
}

func TestInputNotModified(t *testing.T) {
	x := testutil.ComplexNoise(19, 1, 16)
	before := core.Clone(x)

	if _, err := DFT(x); err != nil {
		t.Fatal(err)
	}
	if _, err := FFT(x); err != nil {
		t.Fatal(err)
	}
	if _, err := IFFT(x); err != nil {
		t.Fatal(err)
	}

	for i := range x {
		if x[i] != before[i] {
			t.Fatalf("input modified at index %d", i)
		}
	}
}

func TestInvalidLength(t *testing.T) {
	for _, n := range []int{0, 3, 12} {
		x := make([]complex128, n)
		if _, err := DFT(x); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("DFT(n=%d) err = %v, want ErrInvalidLength", n, err)
		}
		if _, err := FFT(x); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("FFT(n=%d) err = %v, want ErrInvalidLength", n, err)
		}
		if _, err := IFFT(x); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("IFFT(n=%d) err = %v, want ErrInvalidLength", n, err)
		}
		if err := FFTInPlace(x); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("FFTInPlace(n=%d) err = %v, want ErrInvalidLength", n, err)
		}
	}
}

func TestMatrix(t *testing.T) {
	m := Matrix(4)
	want := [][]complex128{
		{1, 1, 1, 1},
		{1, -1i, -1, 1i},
		{1, -1, 1, -1},
		{1, 1i, -1, -1i},
	}
	for j := range want {
		testutil.RequireComplexNearlyEqual(t, m[j], want[j], 1e-12)
	}
	if Matrix(0) != nil {
		t.Fatal("Matrix(0) should be nil")
	}
}

func TestTwiddlesUnitCircle(t *testing.T) {
	tw := Twiddles(8)
	if tw[0] != 1 {
		t.Fatalf("tw[0] = %v, want 1", tw[0])
	}
	s := math.Sqrt2 / 2
	if !core.NearlyEqualComplex(tw[1], complex(s, -s), 1e-12) {
		t.Fatalf("tw[1] = %v, want (%v-%vi)", tw[1], s, s)
	}
	if !core.NearlyEqualComplex(tw[4], -1, 1e-12) {
		t.Fatalf("tw[4] = %v, want -1", tw[4])
	}
}
