package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	// First sample of a sine at phase 0 should be 0.
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	// All values in [-1, 1].
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestZeroEndpointSine(t *testing.T) {
	s := ZeroEndpointSine(5, 256)
	if len(s) != 256 {
		t.Fatalf("len = %d, want 256", len(s))
	}
	if math.Abs(s[0]) > 1e-15 || math.Abs(s[len(s)-1]) > 1e-12 {
		t.Fatalf("endpoints not zero: %v, %v", s[0], s[len(s)-1])
	}
}

func TestTwoTone(t *testing.T) {
	s := TwoTone(128)
	if len(s) != 128 {
		t.Fatalf("len = %d, want 128", len(s))
	}
	// Amplitude bounded by 1.3.
	for i, v := range s {
		if math.Abs(v) > 1.3 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
	// Deterministic.
	b := TwoTone(128)
	for i := range s {
		if s[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestDC(t *testing.T) {
	d := DC(0.5, 4)
	for i, v := range d {
		if v != 0.5 {
			t.Fatalf("DC[%d] = %v, want 0.5", i, v)
		}
	}
}
