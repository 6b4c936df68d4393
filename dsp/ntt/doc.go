// Package ntt implements the Number-Theoretic Transform, the exact analogue
// of the discrete Fourier transform over a prime field.
//
// The caller supplies the field elements and a primitive n-th root of unity
// omega from the same field. [Forward] evaluates y_j = sum_k omega^(jk) x_k
// with a recursive radix-2 Cooley-Tukey decomposition; [Inverse] undoes it by
// transforming with omega^-1 and dividing by n. Results are bit-exact.
//
//	f, _ := field.New(12289)
//	w, _ := f.RootOfUnity(8)
//	y, err := ntt.Forward(x, w)
//	x2, err := ntt.Inverse(y, w) // x2 equals x element-wise
//
// Lengths must be powers of two. Every call returns a new slice and never
// modifies its input.
//
// [core.WithFixedRoot] switches the recursion to pass omega unchanged to the
// half-size sub-transforms rather than omega^2. It exists for compatibility
// with outputs produced by that legacy recursion; only the top level is then
// a true DFT and Inverse no longer round-trips for lengths above 2 in general.
package ntt
