package field

import (
	"errors"
	"fmt"

	"github.com/tuneinsight/lattigo/v6/ring"
)

// ErrNoNonResidue is returned by FirstNonResidue when every nonzero element
// of the field is a square, which only happens for q = 2.
var ErrNoNonResidue = errors.New("field: no quadratic non-residue")

// Field is the prime field Z/qZ. It is immutable after construction and is
// shared read-only by every Element built from it.
type Field struct {
	q int64
}

type config struct {
	primeCheck bool
}

// Option configures field construction.
type Option func(*config)

// WithPrimeCheck makes New reject composite moduli with ErrNotPrime.
func WithPrimeCheck() Option {
	return func(cfg *config) {
		cfg.primeCheck = true
	}
}

// New returns the field with modulus q.
//
// q must be greater than 1. The modulus is intended to be prime; without
// WithPrimeCheck a composite q is accepted and only the operations that
// depend on primality (RootOfUnity, Generator) will refuse it.
func New(q int64, opts ...Option) (*Field, error) {
	if q <= 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidModulus, q)
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	f := &Field{q: q}
	if cfg.primeCheck && !f.IsPrime() {
		return nil, fmt.Errorf("%w: %d", ErrNotPrime, q)
	}

	return f, nil
}

// Modulus returns q.
func (f *Field) Modulus() int64 { return f.q }

// String returns the field in Z/qZ notation.
func (f *Field) String() string { return fmt.Sprintf("Z/%dZ", f.q) }

// IsPrime reports whether the modulus is prime.
func (f *Field) IsPrime() bool {
	return ring.IsPrime(uint64(f.q))
}

// Element returns v reduced into the field.
func (f *Field) Element(v int64) Element {
	return NewElement(v, f)
}

// Elements returns the reductions of vs, in order.
func (f *Field) Elements(vs ...int64) []Element {
	out := make([]Element, len(vs))
	for i, v := range vs {
		out[i] = NewElement(v, f)
	}
	return out
}

// Zero returns the additive identity.
func (f *Field) Zero() Element { return Element{value: 0, field: f} }

// One returns the multiplicative identity.
func (f *Field) One() Element { return Element{value: 1, field: f} }

// Generator returns an element generating the multiplicative group of the
// field, i.e. an element of order q-1.
//
// The candidate comes from lattigo's primitive root search; it is verified
// against the factorisation of q-1 and the search falls back to a linear scan
// if the candidate is not a generator of this field.
func (f *Field) Generator() (Element, error) {
	if !f.IsPrime() {
		return Element{}, fmt.Errorf("%w: %d", ErrNotPrime, f.q)
	}
	if f.q == 2 {
		return f.One(), nil
	}

	q := uint64(f.q)
	g, factors, err := ring.PrimitiveRoot(q, nil)
	if err != nil {
		return Element{}, fmt.Errorf("field: generator of %s: %w", f, err)
	}

	if f.hasFullOrder(g%q, factors) {
		return f.Element(int64(g % q)), nil
	}

	for c := uint64(2); c < q; c++ {
		if f.hasFullOrder(c, factors) {
			return f.Element(int64(c)), nil
		}
	}

	return Element{}, fmt.Errorf("field: no generator found for %s", f)
}

// hasFullOrder reports whether g has order q-1, given the distinct prime
// factors of q-1.
func (f *Field) hasFullOrder(g uint64, factors []uint64) bool {
	if g == 0 {
		return false
	}

	e := f.Element(int64(g))
	for _, p := range factors {
		r, err := e.ModPow((f.q - 1) / int64(p))
		if err != nil || r.IsOne() {
			return false
		}
	}

	return true
}

// RootOfUnity returns a primitive n-th root of unity: an element w with
// w^n = 1 and w^k != 1 for 0 < k < n.
//
// It fails with ErrNotPrime for composite moduli and with ErrNoRootOfUnity
// when n does not divide q-1.
func (f *Field) RootOfUnity(n int) (Element, error) {
	if n <= 0 {
		return Element{}, fmt.Errorf("%w: order %d", ErrNoRootOfUnity, n)
	}
	if !f.IsPrime() {
		return Element{}, fmt.Errorf("%w: %d", ErrNotPrime, f.q)
	}
	if (f.q-1)%int64(n) != 0 {
		return Element{}, fmt.Errorf("%w: order %d does not divide %d", ErrNoRootOfUnity, n, f.q-1)
	}

	g, err := f.Generator()
	if err != nil {
		return Element{}, err
	}

	return g.ModPow((f.q - 1) / int64(n))
}

// FirstNonResidue returns the smallest quadratic non-residue of the field,
// found by scanning the Legendre symbol upwards from 2.
//
// When q-1 is a power of two (q = 3, 5, 17, 257, 65537) every non-residue
// generates the multiplicative group.
func (f *Field) FirstNonResidue() (Element, error) {
	if !f.IsPrime() {
		return Element{}, fmt.Errorf("%w: %d", ErrNotPrime, f.q)
	}

	for v := int64(2); v < f.q; v++ {
		ls, err := f.Element(v).LegendreSymbol()
		if err != nil {
			return Element{}, err
		}
		if ls == f.q-1 {
			return f.Element(v), nil
		}
	}

	return Element{}, fmt.Errorf("%w in %s", ErrNoNonResidue, f)
}
