// Command nttdemo compares the complex transforms and exercises the
// number-theoretic transform.
//
// Usage:
//
//	nttdemo [flags]
//
// It times the direct DFT against the recursive FFT on unit impulses at
// index 0 and 1, then runs a forward/inverse NTT over Z/qZ on random input.
//
// Examples:
//
//	nttdemo
//	nttdemo -size 4096 -reference
//	nttdemo -q 65537 -n 256 -seed 7
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-ntt/dsp/core"
	"github.com/cwbudde/algo-ntt/dsp/field"
	"github.com/cwbudde/algo-ntt/dsp/fourier"
	"github.com/cwbudde/algo-ntt/dsp/ntt"
	"github.com/cwbudde/algo-ntt/dsp/spectrum"
	"github.com/cwbudde/algo-ntt/internal/prng"
)

type config struct {
	size      int
	q         int64
	n         int
	seed      uint64
	reference bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.size, "size", 1024, "complex transform length (power of two)")
	flag.Int64Var(&cfg.q, "q", 12289, "prime modulus for the NTT")
	flag.IntVar(&cfg.n, "n", 16, "NTT length (power of two dividing q-1)")
	flag.Uint64Var(&cfg.seed, "seed", 1, "seed for the random NTT input")
	flag.BoolVar(&cfg.reference, "reference", false, "also time the algo-fft plan and report deviation")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: nttdemo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Times DFT against FFT and round-trips an NTT over Z/qZ.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(os.Stdout, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, cfg config) error {
	if err := printTransforms(w, cfg.size, cfg.reference); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return printNTT(w, cfg.q, cfg.n, cfg.seed)
}

func impulse(n, pos int) []complex128 {
	x := make([]complex128, n)
	x[pos] = 1
	return x
}

func timed(f func() ([]complex128, error)) ([]complex128, time.Duration, error) {
	start := time.Now()
	y, err := f()
	return y, time.Since(start), err
}

func maxDeviation(a, b []complex128) float64 {
	re := make([]float64, len(a))
	im := make([]float64, len(a))
	for i := range a {
		d := a[i] - b[i]
		re[i], im[i] = real(d), imag(d)
	}
	mag := make([]float64, len(a))
	spectrum.MagnitudeFromParts(mag, re, im)
	return slices.Max(mag)
}

func printTransforms(w io.Writer, size int, reference bool) error {
	if !core.IsPowerOfTwo(size) || size < 2 {
		return fmt.Errorf("size %d: %w", size, fourier.ErrInvalidLength)
	}

	var plan *algofft.Plan[complex128]
	if reference {
		var err error
		if plan, err = algofft.NewPlan64(size); err != nil {
			return fmt.Errorf("create reference plan: %w", err)
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := "Impulse\tSize\tDFT\tFFT\tMax |FFT-DFT|\tPeak bin\tGroup delay"
	if reference {
		header += "\talgo-fft\tMax |FFT-ref|"
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, pos := range []int{0, 1} {
		x := impulse(size, pos)

		slow, dftTime, err := timed(func() ([]complex128, error) { return fourier.DFT(x) })
		if err != nil {
			return err
		}
		fast, fftTime, err := timed(func() ([]complex128, error) { return fourier.FFT(x) })
		if err != nil {
			return err
		}

		peak, _, err := spectrum.PeakBin(fast)
		if err != nil {
			return err
		}
		delay, err := spectrum.GroupDelay(spectrum.UnwrapPhase(spectrum.Phase(fast[:size/2])), size)
		if err != nil {
			return err
		}

		row := fmt.Sprintf("x[%d]=1\t%d\t%v\t%v\t%.3g\t%d\t%.3f",
			pos, size, dftTime, fftTime, maxDeviation(fast, slow), peak, delay[0])

		if reference {
			ref, refTime, err := timed(func() ([]complex128, error) {
				out := make([]complex128, size)
				return out, plan.Forward(out, x)
			})
			if err != nil {
				return fmt.Errorf("reference forward: %w", err)
			}
			row += fmt.Sprintf("\t%v\t%.3g", refTime, maxDeviation(fast, ref))
		}

		if _, err := fmt.Fprintln(tw, row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func printNTT(w io.Writer, q int64, n int, seed uint64) error {
	f, err := field.New(q, field.WithPrimeCheck())
	if err != nil {
		return err
	}
	omega, err := f.RootOfUnity(n)
	if err != nil {
		return err
	}

	x := f.Elements(prng.New(seed).Residues(n, q)...)

	y, err := ntt.Forward(x, omega)
	if err != nil {
		return err
	}
	back, err := ntt.Inverse(y, omega)
	if err != nil {
		return err
	}
	direct, err := ntt.DFT(x, omega)
	if err != nil {
		return err
	}

	fixed, err := ntt.Forward(x, omega, core.WithFixedRoot())
	if err != nil {
		return err
	}
	fixedBack, err := ntt.Inverse(fixed, omega, core.WithFixedRoot())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Field", f.String()},
		{"Length", fmt.Sprint(n)},
		{"Root", omega.String()},
		{"Forward matches DFT", fmt.Sprint(slices.Equal(field.Values(y), field.Values(direct)))},
		{"Round trip", fmt.Sprint(slices.Equal(field.Values(back), field.Values(x)))},
		{"Fixed-root round trip", fmt.Sprint(slices.Equal(field.Values(fixedBack), field.Values(x)))},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1]); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
