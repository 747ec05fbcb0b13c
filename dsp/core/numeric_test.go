package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Fatalf("Clamp(5,0,1)=%v, want 1", got)
	}

	if got := Clamp(-5, 0, 1); got != 0 {
		t.Fatalf("Clamp(-5,0,1)=%v, want 0", got)
	}

	if got := Clamp(0.5, 1, 0); got != 0.5 {
		t.Fatalf("Clamp with swapped bounds = %v, want 0.5", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1, 1+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}

	if NearlyEqual(1, 1.1, 1e-12) {
		t.Fatal("expected values to differ")
	}
}

func TestDBConversions(t *testing.T) {
	if got := LinearToDB(1); got != 0 {
		t.Fatalf("LinearToDB(1)=%v, want 0", got)
	}

	if got := LinearToDB(0.1); math.Abs(got+20) > 1e-12 {
		t.Fatalf("LinearToDB(0.1)=%v, want -20", got)
	}

	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("LinearToDB(0) should be -Inf")
	}

	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("LinearToDB(-1) should be NaN")
	}

	if got := DBToLinear(-20); math.Abs(got-0.1) > 1e-12 {
		t.Fatalf("DBToLinear(-20)=%v, want 0.1", got)
	}
}
