package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ntt/dsp/core"
)

// ErrEmpty is returned when an operation needs at least one bin.
var ErrEmpty = errors.New("spectrum: no bins")

// parts holds pooled real/imaginary split buffers.
type parts struct {
	data []float64
}

var partsPool = sync.Pool{
	New: func() any { return &parts{} },
}

// split copies the real and imaginary parts of bins into pooled storage.
// The caller must hand p back with partsPool.Put.
func split(bins []complex128) (re, im []float64, p *parts) {
	p = partsPool.Get().(*parts)
	n := len(bins)
	p.data = core.EnsureLen(p.data, 2*n)
	re, im = p.data[:n], p.data[n:2*n]
	for i, c := range bins {
		re[i], im[i] = real(c), imag(c)
	}
	return re, im, p
}

// Magnitude returns |X[k]| for every bin.
func Magnitude(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}
	out := make([]float64, len(bins))
	re, im, p := split(bins)
	vecmath.Magnitude(out, re, im)
	partsPool.Put(p)
	return out
}

// MagnitudeFromParts writes sqrt(re[k]^2 + im[k]^2) into dst. All three
// slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// Power returns |X[k]|^2 for every bin.
func Power(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}
	out := make([]float64, len(bins))
	re, im, p := split(bins)
	vecmath.Power(out, re, im)
	partsPool.Put(p)
	return out
}

// PowerFromParts writes re[k]^2 + im[k]^2 into dst. All three slices must
// have the same length.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// MagnitudeDB returns 20*log10|X[k]|; empty bins map to -Inf.
func MagnitudeDB(bins []complex128) []float64 {
	mag := Magnitude(bins)
	for i, m := range mag {
		mag[i] = core.LinearToDB(m)
	}
	return mag
}

// Phase returns arg(X[k]) in radians.
func Phase(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}
	out := make([]float64, len(bins))
	for i, c := range bins {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// UnwrapPhase removes jumps larger than pi between neighbouring bins.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		switch d := phase[i] - phase[i-1]; {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

// GroupDelay returns -dphi/domega in samples for unwrapped phase sampled on
// the bins of an n-point transform. Interior bins use a centred difference.
func GroupDelay(unwrapped []float64, n int) ([]float64, error) {
	if len(unwrapped) < 2 {
		return nil, fmt.Errorf("spectrum: group delay needs at least 2 bins, got %d", len(unwrapped))
	}
	if n <= 0 {
		return nil, fmt.Errorf("spectrum: group delay transform size must be > 0, got %d", n)
	}

	dw := 2 * math.Pi / float64(n)
	last := len(unwrapped) - 1
	out := make([]float64, len(unwrapped))
	for i := range unwrapped {
		var dphi float64
		switch i {
		case 0:
			dphi = unwrapped[1] - unwrapped[0]
		case last:
			dphi = unwrapped[last] - unwrapped[last-1]
		default:
			dphi = (unwrapped[i+1] - unwrapped[i-1]) / 2
		}
		out[i] = -dphi / dw
	}
	return out, nil
}

// PeakBin returns the index and magnitude of the strongest bin. Ties go to
// the lowest index.
func PeakBin(bins []complex128) (int, float64, error) {
	if len(bins) == 0 {
		return 0, 0, ErrEmpty
	}
	mag := Magnitude(bins)
	best := 0
	for i, m := range mag {
		if m > mag[best] {
			best = i
		}
	}
	return best, mag[best], nil
}
