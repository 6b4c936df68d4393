// Package field implements arithmetic in prime fields Z/qZ over int64
// residues.
//
// A [Field] is created once and shared by pointer; every [Element] carries a
// reference to the field it was built from and always holds a canonical
// residue in [0, q). Operations combining elements of different fields fail
// with [ErrFieldMismatch] instead of producing a value.
//
// # Usage
//
//	f, err := field.New(17, field.WithPrimeCheck())
//	a := f.Element(5)
//	b := f.Element(-3)           // canonicalised to 14
//	c, err := a.Mul(b)           // 70 mod 17 = 2
//	inv, err := a.Inverse()      // 7, since 5*7 = 35 = 1 mod 17
//	w, err := f.RootOfUnity(8)   // primitive 8th root of unity
//
// Products are reduced through a 128-bit intermediate, so any modulus up to
// math.MaxInt64 is handled exactly.
package field
