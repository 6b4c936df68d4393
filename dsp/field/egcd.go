package field

// EGCD runs the extended Euclidean algorithm on x and y.
//
// It returns g = gcd(x, y) together with Bézout coefficients s and t
// satisfying s*x + t*y = g.
func EGCD(x, y int64) (g, s, t int64) {
	s0, s1 := int64(1), int64(0)
	t0, t1 := int64(0), int64(1)

	for y != 0 {
		q, r := x/y, x%y
		x, y = y, r
		s0, s1 = s1, s0-q*s1
		t0, t1 = t1, t0-q*t1
	}

	return x, s0, t0
}

// canonical maps v into [0, q).
func canonical(v, q int64) int64 {
	r := v % q
	if r < 0 {
		r += q
	}
	return r
}
