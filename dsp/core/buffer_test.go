package core

import "testing"

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 4, 16)

	out := EnsureLen(buf, 8)
	if len(out) != 8 {
		t.Fatalf("len=%d, want 8", len(out))
	}
	if &out[0] != &buf[0] {
		t.Fatal("expected capacity reuse")
	}

	out = EnsureLen(buf, 32)
	if len(out) != 32 {
		t.Fatalf("len=%d, want 32", len(out))
	}

	if got := EnsureLen(buf, 0); len(got) != 0 {
		t.Fatalf("len=%d, want 0", len(got))
	}
}

func TestEnsureComplexLen(t *testing.T) {
	buf := make([]complex128, 2, 8)

	out := EnsureComplexLen(buf, 8)
	if len(out) != 8 {
		t.Fatalf("len=%d, want 8", len(out))
	}
	if &out[0] != &buf[0] {
		t.Fatal("expected capacity reuse")
	}

	out = EnsureComplexLen(buf, 9)
	if len(out) != 9 {
		t.Fatalf("len=%d, want 9", len(out))
	}
}
