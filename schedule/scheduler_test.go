package schedule

import (
	"math"
	"testing"
)

func TestParseLinearUntagged(t *testing.T) {
	s, err := Parse("[0.01,0.01]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for c := 0; c < 10; c++ {
		if got := s.ValueAt(c, 10); math.Abs(got-0.01) > 1e-12 {
			t.Fatalf("ValueAt(%d) = %v, want 0.01", c, got)
		}
	}
}

func TestScheduleBoundaryS5(t *testing.T) {
	s, err := Parse("[5,l,1]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{5, 4, 3, 2, 1}
	for c, w := range want {
		if got := s.ValueAt(c, 5); math.Abs(got-w) > 1e-9 {
			t.Fatalf("ValueAt(%d,5) = %v, want %v", c, got, w)
		}
	}
}

func TestScheduleEndpointsLaw(t *testing.T) {
	s, err := Parse("[10,iF,0.01]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	const steps = 1000
	if got := s.ValueAt(0, steps); got != 10 {
		t.Fatalf("first anchor not exact: got %v", got)
	}
	if got := s.ValueAt(steps-1, steps); got != 0.01 {
		t.Fatalf("last anchor not exact: got %v", got)
	}
}

func TestParseUnknownTagMalformed(t *testing.T) {
	if _, err := Parse("[10,bogus,1]"); err != ErrScheduleMalformed {
		t.Fatalf("expected ErrScheduleMalformed, got %v", err)
	}
}

func TestParseSingleAnchorMalformed(t *testing.T) {
	if _, err := Parse("[10]"); err != ErrScheduleMalformed {
		t.Fatalf("expected ErrScheduleMalformed, got %v", err)
	}
}

func TestInverseSlowFastMirror(t *testing.T) {
	// a<b: iS should take the first branch, iF the mirror.
	a, b, p := 1.0, 10.0, 0.5
	slow := eval(MethodInverseSlow, a, b, p)
	fast := eval(MethodInverseFast, a, b, p)
	if slow == fast {
		t.Fatalf("iS and iF should diverge for a<b, got equal values %v", slow)
	}
}

func TestSquareSlowFastFormulas(t *testing.T) {
	a, b, p := 0.0, 10.0, 0.5
	if got := eval(MethodSquareSlow, a, b, p); math.Abs(got-2.5) > 1e-9 {
		t.Fatalf("sS(0,10,0.5) = %v, want 2.5", got)
	}
	if got := eval(MethodSquareFast, a, b, p); math.Abs(got-7.5) > 1e-9 {
		t.Fatalf("sF(0,10,0.5) = %v, want 7.5", got)
	}
}

func TestProgressClamped(t *testing.T) {
	if got := eval(MethodLinear, 0, 10, -1); got != 0 {
		t.Fatalf("negative progress should clamp to 0, got %v", got)
	}
	if got := eval(MethodLinear, 0, 10, 2); got != 10 {
		t.Fatalf("progress>1 should clamp to 1, got %v", got)
	}
}

func TestMultiAnchorSchedule(t *testing.T) {
	s, err := New([]float64{0, 5, 10}, []Method{MethodLinear, MethodLinear})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	const steps = 11
	if got := s.ValueAt(0, steps); got != 0 {
		t.Fatalf("first anchor mismatch: %v", got)
	}
	if got := s.ValueAt(steps-1, steps); got != 10 {
		t.Fatalf("last anchor mismatch: %v", got)
	}
	if got := s.ValueAt(5, steps); math.Abs(got-5) > 1e-9 {
		t.Fatalf("midpoint anchor mismatch: %v", got)
	}
}

// TestMultiAnchorSchedulePartitioningUnevenSplit covers the case where
// steps-1 does not divide evenly by the segment count: with 3 segments over
// 11 steps (last=10), the continuous partitioning floor(3*c/10) places c=3
// in segment 0 and c=6 in segment 1, not at the evenly-spaced thirds
// {0,3,6,10} a naive precomputed boundary table would produce.
func TestMultiAnchorSchedulePartitioningUnevenSplit(t *testing.T) {
	s, err := New([]float64{0, 30, 60, 90}, []Method{MethodLinear, MethodLinear, MethodLinear})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	const steps = 11

	if got := s.ValueAt(3, steps); math.Abs(got-27) > 1e-9 {
		t.Fatalf("step 3 should fall in segment 0: got %v", got)
	}
	if got := s.ValueAt(6, steps); math.Abs(got-54) > 1e-9 {
		t.Fatalf("step 6 should fall in segment 1: got %v", got)
	}
}
