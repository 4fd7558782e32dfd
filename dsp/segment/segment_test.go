package segment

import "testing"

func ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

func TestSegments_ShapeAndBounds(t *testing.T) {
	s := New(WithSeed(3))
	x := ramp(100)

	segs, err := s.Segments(x, 25, 40)
	if err != nil {
		t.Fatalf("Segments: %v", err)
	}

	if len(segs) != 40 {
		t.Fatalf("count = %d, want 40", len(segs))
	}

	for i, seg := range segs {
		if len(seg) != 25 {
			t.Fatalf("segment %d length = %d, want 25", i, len(seg))
		}

		start := int(seg[0])
		if start < 0 || start > 75 {
			t.Errorf("segment %d start = %d, outside [0, 75]", i, start)
		}

		// Contiguity: the ramp exposes the original indices.
		for j := 1; j < len(seg); j++ {
			if seg[j] != seg[j-1]+1 {
				t.Fatalf("segment %d not contiguous at %d", i, j)
			}
		}
	}
}

func TestSegments_ExactFit(t *testing.T) {
	s := New(WithSeed(1))
	x := ramp(10)

	segs, err := s.Segments(x, 10, 3)
	if err != nil {
		t.Fatalf("Segments: %v", err)
	}

	for i, seg := range segs {
		if seg[0] != 0 || len(seg) != 10 {
			t.Errorf("segment %d: start %v len %d, want 0/10", i, seg[0], len(seg))
		}
	}
}

func TestSegments_ViewsShareBacking(t *testing.T) {
	s := New(WithSeed(1))
	x := ramp(8)

	segs, err := s.Segments(x, 8, 1)
	if err != nil {
		t.Fatalf("Segments: %v", err)
	}

	x[0] = -1
	if segs[0][0] != -1 {
		t.Fatal("segment is not a view into the input")
	}
}

func TestSegments_TooShort(t *testing.T) {
	s := New(WithSeed(1))

	if _, err := s.Segments(ramp(5), 6, 1); err == nil {
		t.Fatal("expected error when length exceeds signal")
	}
}

func TestSegments_InvalidArgs(t *testing.T) {
	s := New(WithSeed(1))

	if _, err := s.Segments(ramp(5), 0, 1); err == nil {
		t.Fatal("expected error for zero length")
	}

	if _, err := s.Segments(ramp(5), 2, -1); err == nil {
		t.Fatal("expected error for negative count")
	}
}

func TestSegments_Deterministic(t *testing.T) {
	x := ramp(1000)

	a, err := New(WithSeed(9)).Segments(x, 100, 20)
	if err != nil {
		t.Fatalf("Segments: %v", err)
	}

	b, err := New(WithSeed(9)).Segments(x, 100, 20)
	if err != nil {
		t.Fatalf("Segments: %v", err)
	}

	for i := range a {
		if a[i][0] != b[i][0] {
			t.Fatalf("draw %d: start %v != %v", i, a[i][0], b[i][0])
		}
	}
}

func TestPairs_Aligned(t *testing.T) {
	s := New(WithSeed(5))
	x := ramp(200)
	y := ramp(150) // shorter signal bounds the offsets

	xs, ys, err := s.Pairs(x, y, 30, 25)
	if err != nil {
		t.Fatalf("Pairs: %v", err)
	}

	if len(xs) != 25 || len(ys) != 25 {
		t.Fatalf("counts = %d/%d, want 25/25", len(xs), len(ys))
	}

	for i := range xs {
		if len(xs[i]) != 30 || len(ys[i]) != 30 {
			t.Fatalf("pair %d lengths = %d/%d, want 30/30", i, len(xs[i]), len(ys[i]))
		}

		// Both ramps expose indices, so alignment means equal first values.
		if xs[i][0] != ys[i][0] {
			t.Errorf("pair %d: offsets %v != %v", i, xs[i][0], ys[i][0])
		}

		start := int(ys[i][0])
		if start < 0 || start > 120 {
			t.Errorf("pair %d start = %d, outside [0, 120]", i, start)
		}
	}
}

func TestPairs_TooShort(t *testing.T) {
	s := New(WithSeed(1))

	if _, _, err := s.Pairs(ramp(100), ramp(10), 11, 1); err == nil {
		t.Fatal("expected error when length exceeds shorter signal")
	}
}
