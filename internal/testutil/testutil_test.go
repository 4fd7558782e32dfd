package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 8000, 1, 8)
	if len(s) != 8 {
		t.Fatalf("len = %d, want 8", len(s))
	}

	if s[0] != 0 {
		t.Errorf("s[0] = %v, want 0", s[0])
	}

	// Quarter period of a 1 kHz tone at 8 kHz is 2 samples.
	if math.Abs(s[2]-1) > 1e-12 {
		t.Errorf("s[2] = %v, want 1", s[2])
	}
}

func TestGaussianNoise_Reproducible(t *testing.T) {
	a := GaussianNoise(11, 1, 32)
	b := GaussianNoise(11, 1, 32)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(4, 2)
	want := []float64{0, 0, 1, 0}

	for i := range want {
		if imp[i] != want[i] {
			t.Errorf("imp[%d] = %v, want %v", i, imp[i], want[i])
		}
	}
}

func TestRamp(t *testing.T) {
	r := Ramp(3)
	if r[0] != 0 || r[1] != 1 || r[2] != 2 {
		t.Fatalf("Ramp = %v", r)
	}
}
