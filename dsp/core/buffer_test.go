package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestEnsureLenGrow(t *testing.T) {
	out := EnsureLen([]complex128{1}, 3)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
}

func TestCloneIndependent(t *testing.T) {
	src := []complex128{1, 2i}
	out := Clone(src)
	out[0] = 5

	if src[0] != 1 {
		t.Fatalf("Clone aliased its input: %v", src)
	}
	if Clone[int](nil) != nil {
		t.Fatal("Clone(nil) should stay nil")
	}
}
