package field

import (
	"fmt"
	"math/bits"
)

// Element is a residue of a prime field. The value always lies in [0, q).
//
// Elements are small values and are passed by value; the Field they belong to
// is referenced, never copied. The zero Element has no field and every
// operation on it fails with ErrNoField.
type Element struct {
	value int64
	field *Field
}

// NewElement reduces v into f using a sign-aware modulo.
// It returns the zero Element when f is nil.
func NewElement(v int64, f *Field) Element {
	if f == nil {
		return Element{}
	}
	return Element{value: canonical(v, f.q), field: f}
}

// Value returns the canonical residue in [0, q).
func (a Element) Value() int64 { return a.value }

// Field returns the field a belongs to.
func (a Element) Field() *Field { return a.field }

// Valid reports whether a belongs to a field.
func (a Element) Valid() bool { return a.field != nil }

// IsZero reports whether a is the additive identity.
func (a Element) IsZero() bool { return a.value == 0 }

// IsOne reports whether a is the multiplicative identity.
func (a Element) IsOne() bool { return a.value == 1 }

// Equal reports whether a and b hold the same residue of the same field.
func (a Element) Equal(b Element) bool {
	return a.value == b.value && sameField(a.field, b.field)
}

// String formats a as "v mod q".
func (a Element) String() string {
	if a.field == nil {
		return fmt.Sprintf("%d mod ?", a.value)
	}
	return fmt.Sprintf("%d mod %d", a.value, a.field.q)
}

// Add returns a + b.
func (a Element) Add(b Element) (Element, error) {
	if err := a.check(b); err != nil {
		return Element{}, err
	}
	return a.with(addmod(a.value, b.value, a.field.q)), nil
}

// Sub returns a - b.
func (a Element) Sub(b Element) (Element, error) {
	if err := a.check(b); err != nil {
		return Element{}, err
	}
	return a.with(submod(a.value, b.value, a.field.q)), nil
}

// Mul returns a * b.
func (a Element) Mul(b Element) (Element, error) {
	if err := a.check(b); err != nil {
		return Element{}, err
	}
	return a.with(mulmod(a.value, b.value, a.field.q)), nil
}

// Div returns a * b^-1. It fails with ErrNotInvertible when b is zero or
// shares a factor with the modulus.
func (a Element) Div(b Element) (Element, error) {
	if err := a.check(b); err != nil {
		return Element{}, err
	}

	inv, err := b.Inverse()
	if err != nil {
		return Element{}, err
	}

	return a.with(mulmod(a.value, inv.value, a.field.q)), nil
}

// Neg returns -a. The zero Element is returned unchanged.
func (a Element) Neg() Element {
	if a.field == nil || a.value == 0 {
		return a
	}
	return a.with(a.field.q - a.value)
}

// Inverse returns the multiplicative inverse of a, computed with the extended
// Euclidean algorithm on (q, a).
func (a Element) Inverse() (Element, error) {
	if a.field == nil {
		return Element{}, ErrNoField
	}
	if a.value == 0 {
		return Element{}, fmt.Errorf("%w: 0 mod %d", ErrNotInvertible, a.field.q)
	}

	g, _, t := EGCD(a.field.q, a.value)
	if g != 1 {
		return Element{}, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNotInvertible, a.value, a.field.q, g)
	}

	return a.with(canonical(t, a.field.q)), nil
}

// ModPow returns a^e by binary square-and-multiply. a^0 is one for every a,
// including zero. Negative exponents fail with ErrInvalidExponent.
func (a Element) ModPow(e int64) (Element, error) {
	if a.field == nil {
		return Element{}, ErrNoField
	}
	if e < 0 {
		return Element{}, fmt.Errorf("%w: %d", ErrInvalidExponent, e)
	}

	q := a.field.q
	acc := int64(1)
	base := a.value
	for e > 0 {
		if e&1 == 1 {
			acc = mulmod(acc, base, q)
		}
		base = mulmod(base, base, q)
		e >>= 1
	}

	return a.with(acc), nil
}

// LegendreSymbol returns a^((q-1)/2) as an integer. For prime q the result
// is 0 for zero, 1 for a quadratic residue and q-1 for a non-residue.
func (a Element) LegendreSymbol() (int64, error) {
	if a.field == nil {
		return 0, ErrNoField
	}

	r, err := a.ModPow((a.field.q - 1) / 2)
	if err != nil {
		return 0, err
	}

	return r.value, nil
}

// SameField reports whether every element of xs belongs to the field of ref.
// It returns the first offending error otherwise.
func SameField(ref Element, xs []Element) error {
	if ref.field == nil {
		return ErrNoField
	}
	for i, x := range xs {
		if err := ref.check(x); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	return nil
}

// Values returns the residues of xs.
func Values(xs []Element) []int64 {
	out := make([]int64, len(xs))
	for i, x := range xs {
		out[i] = x.value
	}
	return out
}

func (a Element) with(v int64) Element {
	return Element{value: v, field: a.field}
}

func (a Element) check(b Element) error {
	if a.field == nil || b.field == nil {
		return ErrNoField
	}
	if !sameField(a.field, b.field) {
		return fmt.Errorf("%w: q=%d, q=%d", ErrFieldMismatch, a.field.q, b.field.q)
	}
	return nil
}

func sameField(f, g *Field) bool {
	if f == g {
		return true
	}
	return f != nil && g != nil && f.q == g.q
}

func addmod(a, b, q int64) int64 {
	return int64((uint64(a) + uint64(b)) % uint64(q))
}

func submod(a, b, q int64) int64 {
	d := a - b
	if d < 0 {
		d += q
	}
	return d
}

// mulmod reduces the full 128-bit product, so q may be as large as MaxInt64.
func mulmod(a, b, q int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return int64(bits.Rem64(hi, lo, uint64(q)))
}
