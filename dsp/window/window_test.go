package window

import (
	"math"
	"testing"
)

func TestMake_Rectangular(t *testing.T) {
	w := Make(TypeRectangular, 8)
	for i, v := range w {
		if v != 1 {
			t.Errorf("w[%d] = %v, want 1", i, v)
		}
	}
}

func TestMake_HannEndpoints(t *testing.T) {
	// Periodic form: zero at the left edge, nonzero at the right.
	w := Make(TypeHann, 16)

	if math.Abs(w[0]) > 1e-12 {
		t.Errorf("w[0] = %v, want 0", w[0])
	}

	if math.Abs(w[8]-1) > 1e-12 {
		t.Errorf("w[N/2] = %v, want 1", w[8])
	}
}

func TestMake_CoefficientsInUnitRange(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman} {
		for i, v := range Make(typ, 64) {
			if v < -1e-12 || v > 1+1e-12 {
				t.Errorf("%v w[%d] = %v, outside [0, 1]", typ, i, v)
			}
		}
	}
}

func TestMake_Invalid(t *testing.T) {
	if Make(TypeHann, 0) != nil {
		t.Error("expected nil for zero length")
	}

	if Make(Type(99), 8) != nil {
		t.Error("expected nil for unknown type")
	}
}

func TestApply(t *testing.T) {
	buf := []float64{1, 1, 1, 1}
	Apply(TypeHann, buf)

	want := Make(TypeHann, 4)
	for i := range buf {
		if math.Abs(buf[i]-want[i]) > 1e-12 {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestTypeString(t *testing.T) {
	if TypeHamming.String() != "Hamming" {
		t.Errorf("String() = %q", TypeHamming.String())
	}

	if Type(99).Valid() {
		t.Error("Type(99) should not be valid")
	}
}
