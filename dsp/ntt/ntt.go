package ntt

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ntt/dsp/core"
	"github.com/cwbudde/algo-ntt/dsp/field"
)

// ErrInvalidLength is returned when the sequence length is not a power of two.
var ErrInvalidLength = errors.New("ntt: length must be a power of two")

// Forward computes the number-theoretic transform of x with root omega.
//
// omega must belong to the field of x and should be a primitive len(x)-th
// root of unity; this is the caller's contract and is not verified.
func Forward(x []field.Element, omega field.Element, opts ...core.TransformOption) ([]field.Element, error) {
	if err := validate(x, omega); err != nil {
		return nil, err
	}

	cfg := core.ApplyTransformOptions(opts...)

	out := make([]field.Element, len(x))
	if err := forward(out, x, 0, 1, omega, cfg.FixedRoot); err != nil {
		return nil, err
	}

	return out, nil
}

// Inverse computes the inverse transform: Forward with omega^-1, with every
// entry divided by len(x). It fails with field.ErrNotInvertible when the
// modulus divides len(x).
func Inverse(x []field.Element, omega field.Element, opts ...core.TransformOption) ([]field.Element, error) {
	if err := validate(x, omega); err != nil {
		return nil, err
	}

	omegaInv, err := omega.Inverse()
	if err != nil {
		return nil, fmt.Errorf("ntt: invert root %v: %w", omega, err)
	}

	n := omega.Field().Element(int64(len(x)))
	if _, err := n.Inverse(); err != nil {
		return nil, fmt.Errorf("ntt: scale by length %d: %w", len(x), err)
	}

	scaled, err := Forward(x, omegaInv, opts...)
	if err != nil {
		return nil, err
	}

	for i := range scaled {
		if scaled[i], err = scaled[i].Div(n); err != nil {
			return nil, err
		}
	}

	return scaled, nil
}

// DFT evaluates y_j = sum_k omega^(jk) x_k directly in O(n^2) field
// operations. It is the reference Forward is checked against.
func DFT(x []field.Element, omega field.Element) ([]field.Element, error) {
	if err := validate(x, omega); err != nil {
		return nil, err
	}

	n := len(x)
	out := make([]field.Element, n)
	for j := range n {
		acc := omega.Field().Zero()
		for k := range n {
			m, err := omega.ModPow(int64(j * k))
			if err != nil {
				return nil, err
			}
			term, err := m.Mul(x[k])
			if err != nil {
				return nil, err
			}
			if acc, err = acc.Add(term); err != nil {
				return nil, err
			}
		}
		out[j] = acc
	}

	return out, nil
}

// Twiddles returns omega^j for j = 0..n-1.
func Twiddles(omega field.Element, n int) ([]field.Element, error) {
	tw := make([]field.Element, n)
	for j := range tw {
		w, err := omega.ModPow(int64(j))
		if err != nil {
			return nil, err
		}
		tw[j] = w
	}
	return tw, nil
}

func validate(x []field.Element, omega field.Element) error {
	if !core.IsPowerOfTwo(len(x)) {
		return fmt.Errorf("%w: %d", ErrInvalidLength, len(x))
	}
	return field.SameField(omega, x)
}

// forward transforms the len(dst) entries of src starting at offset and
// spaced stride apart, writing the result to dst.
func forward(dst, src []field.Element, offset, stride int, w field.Element, fixed bool) error {
	n := len(dst)
	switch {
	case n == 1:
		dst[0] = src[offset]
		return nil
	case n == 2:
		return base2(dst, src[offset], src[offset+stride], w)
	case n%2 != 0:
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	sub := w
	if !fixed {
		var err error
		if sub, err = w.Mul(w); err != nil {
			return err
		}
	}

	half := n / 2
	if err := forward(dst[:half], src, offset, 2*stride, sub, fixed); err != nil {
		return err
	}
	if err := forward(dst[half:], src, offset+stride, 2*stride, sub, fixed); err != nil {
		return err
	}

	tw, err := Twiddles(w, n)
	if err != nil {
		return err
	}

	for j := range half {
		even, odd := dst[j], dst[j+half]
		lo, err := mulAdd(even, odd, tw[j])
		if err != nil {
			return err
		}
		hi, err := mulAdd(even, odd, tw[j+half])
		if err != nil {
			return err
		}
		dst[j], dst[j+half] = lo, hi
	}

	return nil
}

// base2 applies the 2-point transform [[1, 1], [1, w]].
func base2(dst []field.Element, x0, x1, w field.Element) error {
	y0, err := x0.Add(x1)
	if err != nil {
		return err
	}
	y1, err := mulAdd(x0, x1, w)
	if err != nil {
		return err
	}
	dst[0], dst[1] = y0, y1
	return nil
}

// mulAdd returns a + b*t.
func mulAdd(a, b, t field.Element) (field.Element, error) {
	p, err := b.Mul(t)
	if err != nil {
		return field.Element{}, err
	}
	return a.Add(p)
}
