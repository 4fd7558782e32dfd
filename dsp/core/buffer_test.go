package core

import "testing"

func TestZero(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestCopyInto(t *testing.T) {
	dst := make([]float64, 2)

	if n := CopyInto(dst, []float64{1, 2, 3}); n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}

	if dst[0] != 1 || dst[1] != 2 {
		t.Fatalf("dst = %v", dst)
	}

	big := make([]float64, 4)
	if n := CopyInto(big, []float64{7}); n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
}
