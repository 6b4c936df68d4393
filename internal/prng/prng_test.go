package prng

import "testing"

func TestSourceReproducible(t *testing.T) {
	a := New(42).Residues(32, 12289)
	b := New(42).Residues(32, 12289)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %d != %d", i, a[i], b[i])
		}
	}
}

func TestSourceDifferentSeeds(t *testing.T) {
	a := New(1).Uint64()
	b := New(2).Uint64()
	if a == b {
		t.Fatal("different seeds produced the same first value")
	}
}

func TestResiduesInRange(t *testing.T) {
	const q = 17
	for i, v := range New(7).Residues(1000, q) {
		if v < 0 || v >= q {
			t.Fatalf("index %d: %d out of [0, %d)", i, v, q)
		}
	}
}

func TestInt63nNonPositive(t *testing.T) {
	s := New(3)
	if got := s.Int63n(0); got != 0 {
		t.Fatalf("Int63n(0) = %d, want 0", got)
	}
	if got := s.Int63n(-5); got != 0 {
		t.Fatalf("Int63n(-5) = %d, want 0", got)
	}
}

func TestFloat64Range(t *testing.T) {
	s := New(9)
	for range 1000 {
		v := s.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v out of [0, 1)", v)
		}
	}
}

func TestComplexAmplitude(t *testing.T) {
	const amp = 2.5
	for i, c := range New(11).Complex(256, amp) {
		if real(c) < -amp || real(c) >= amp || imag(c) < -amp || imag(c) >= amp {
			t.Fatalf("index %d: %v outside amplitude %v", i, c, amp)
		}
	}
}
