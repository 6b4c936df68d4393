package fourier

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-ntt/dsp/core"
)

// ErrInvalidLength is returned when the input length is not a power of two.
var ErrInvalidLength = errors.New("fourier: length must be a power of two")

// Matrix returns the n×n forward transform matrix M[j][k] = exp(-2πi·jk/n).
func Matrix(n int) [][]complex128 {
	if n <= 0 {
		return nil
	}
	m := make([][]complex128, n)
	for j := range m {
		m[j] = make([]complex128, n)
		for k := range m[j] {
			m[j][k] = root(j*k, n)
		}
	}
	return m
}

// DFT computes the transform of x as the matrix-vector product M·x.
func DFT(x []complex128) ([]complex128, error) {
	if err := validate(len(x)); err != nil {
		return nil, err
	}

	m := Matrix(len(x))
	out := make([]complex128, len(x))
	for j, row := range m {
		var acc complex128
		for k, w := range row {
			acc += w * x[k]
		}
		out[j] = acc
	}
	return out, nil
}

// FFT computes the transform of x by recursive even/odd splitting.
func FFT(x []complex128, opts ...core.TransformOption) ([]complex128, error) {
	if err := validate(len(x)); err != nil {
		return nil, err
	}

	cfg := core.ApplyTransformOptions(opts...)
	out := make([]complex128, len(x))
	fft(out, x, 0, 1, cfg.BaseSize)
	return out, nil
}

// IFFT computes the inverse transform conj(FFT(conj(x)))/n.
func IFFT(x []complex128, opts ...core.TransformOption) ([]complex128, error) {
	if err := validate(len(x)); err != nil {
		return nil, err
	}

	conj := make([]complex128, len(x))
	for i, v := range x {
		conj[i] = complex(real(v), -imag(v))
	}

	y, err := FFT(conj, opts...)
	if err != nil {
		return nil, err
	}

	scale := 1 / float64(len(x))
	for i, v := range y {
		y[i] = complex(real(v)*scale, -imag(v)*scale)
	}
	return y, nil
}

// FFTInPlace overwrites x with its transform using iterative radix-2
// butterflies over bit-reversed input order.
func FFTInPlace(x []complex128) error {
	if err := validate(len(x)); err != nil {
		return err
	}

	n := len(x)
	for i, j := range core.BitReversalIndices(n) {
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
	}

	tw := Twiddles(n)
	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		step := n / size
		for start := 0; start < n; start += size {
			for j := range half {
				t := tw[j*step] * x[start+j+half]
				u := x[start+j]
				x[start+j] = u + t
				x[start+j+half] = u - t
			}
		}
	}
	return nil
}

// Twiddles returns exp(-2πi·k/n) for k = 0..n-1.
func Twiddles(n int) []complex128 {
	if n <= 0 {
		return nil
	}
	tw := make([]complex128, n)
	for k := range tw {
		tw[k] = root(k, n)
	}
	return tw
}

func validate(n int) error {
	if !core.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	return nil
}

// root returns exp(-2πi·k/n). k is reduced first so that large products
// j*k in the matrix keep full phase precision.
func root(k, n int) complex128 {
	return core.Unit(-2 * math.Pi * float64(k%n) / float64(n))
}

// fft transforms the len(dst) entries of src starting at offset and spaced
// stride apart into dst.
func fft(dst, src []complex128, offset, stride, base int) {
	n := len(dst)
	if n <= base || n == 1 {
		dft(dst, src, offset, stride)
		return
	}

	half := n / 2
	fft(dst[:half], src, offset, 2*stride, base)
	fft(dst[half:], src, offset+stride, 2*stride, base)

	tw := Twiddles(n)
	for j := range half {
		even, odd := dst[j], dst[j+half]
		dst[j] = even + odd*tw[j]
		dst[j+half] = even + odd*tw[j+half]
	}
}

// dft is the direct O(n²) evaluation on a strided view of src.
func dft(dst, src []complex128, offset, stride int) {
	n := len(dst)
	for j := range n {
		var acc complex128
		for k := range n {
			acc += root(j*k, n) * src[offset+k*stride]
		}
		dst[j] = acc
	}
}
