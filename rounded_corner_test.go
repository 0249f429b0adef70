package shapes

import (
	"math"
	"testing"
)

func TestRoundedCorner_GetCubics_ContinuousChain(t *testing.T) {
	p0, p1, p2 := Pt(0, 0), Pt(10, 0), Pt(10, 10)
	rc := NewRoundedCorner(p0, p1, p2, NewCornerRounding(3))

	cubics := rc.GetCubics(5, 5)
	if len(cubics) != 3 {
		t.Fatalf("expected 3 cubics for a non-degenerate corner, got %d", len(cubics))
	}
	for i := 0; i+1 < len(cubics); i++ {
		a1 := cubics[i].Anchor1()
		a0 := cubics[i+1].Anchor0()
		if !pointsApproxEqual(a1, a0, 1e-6) {
			t.Errorf("cubic %d end %v does not match cubic %d start %v", i, a1, i+1, a0)
		}
	}
}

func TestRoundedCorner_ZeroRadiusIsDegenerate(t *testing.T) {
	rc := NewRoundedCorner(Pt(0, 0), Pt(10, 0), Pt(10, 10), Unrounded)
	cubics := rc.GetCubics(5, 5)
	if len(cubics) != 1 {
		t.Fatalf("expected a single zero-length cubic, got %d cubics", len(cubics))
	}
	if !cubics[0].ZeroLength() {
		t.Errorf("expected zero-length cubic, got %v", cubics[0])
	}
}

func TestRoundedCorner_TightBudgetStillFinite(t *testing.T) {
	// A very small allowed cut relative to a large requested radius must
	// still produce finite, non-NaN geometry (spec.md S5 "tight side budget").
	rc := NewRoundedCorner(Pt(0, 0), Pt(10, 0), Pt(10, 10), NewCornerRounding(100))
	cubics := rc.GetCubics(5, 5)
	if len(cubics) != 3 {
		t.Fatalf("expected 3 cubics, got %d", len(cubics))
	}
	for _, c := range cubics {
		for _, v := range c {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("cubic has non-finite component: %v", c)
			}
		}
	}
}

func TestRoundedCorner_SmoothingRampsWithBudget(t *testing.T) {
	rc := NewRoundedCorner(Pt(0, 0), Pt(10, 0), Pt(10, 10), NewCornerRounding(2, 0.6))
	roundCut := rc.ExpectedRoundCut()
	// At exactly the round cut, smoothing factor should be ~0.
	s0 := rc.smoothingFactor(roundCut, roundCut)
	if s0 > 1e-6 {
		t.Errorf("smoothingFactor at bare round cut = %v, want ~0", s0)
	}
	// At the full expected cut, smoothing factor should reach the requested smoothing.
	s1 := rc.smoothingFactor(roundCut, rc.ExpectedCut())
	if math.Abs(s1-0.6) > 1e-6 {
		t.Errorf("smoothingFactor at full expected cut = %v, want 0.6", s1)
	}
}
