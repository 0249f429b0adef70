package shapes

import (
	"math"
	"sort"
	"testing"
)

func verifySolverRoots(t *testing.T, name string, roots, expected []float64, epsilon float64) {
	t.Helper()

	if len(roots) != len(expected) {
		t.Errorf("%s: got %d roots %v, want %d roots %v", name, len(roots), roots, len(expected), expected)
		return
	}

	sortedRoots := append([]float64(nil), roots...)
	sort.Float64s(sortedRoots)
	sortedExpected := append([]float64(nil), expected...)
	sort.Float64s(sortedExpected)

	for i := range sortedRoots {
		if !approxEqual(sortedRoots[i], sortedExpected[i], epsilon) {
			t.Errorf("%s: root[%d] = %v, want %v (roots=%v, expected=%v)",
				name, i, sortedRoots[i], sortedExpected[i], sortedRoots, sortedExpected)
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  float64
		expected []float64
	}{
		{"two distinct roots", 1, -3, 2, []float64{1, 2}},
		{"double root", 1, -2, 1, []float64{1}},
		{"no real roots", 1, 0, 1, nil},
		{"linear fallback (a=0)", 0, 2, -4, []float64{2}},
		{"all zero", 0, 0, 0, []float64{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := solveQuadratic(tt.a, tt.b, tt.c)
			verifySolverRoots(t, tt.name, roots, tt.expected, 1e-9)
		})
	}
}

func TestSolveQuadraticInUnitInterval(t *testing.T) {
	// Roots at -0.5 and 0.5: only 0.5 lies in [0,1].
	roots := solveQuadraticInUnitInterval(1, 0, -0.25)
	verifySolverRoots(t, "clip to unit interval", roots, []float64{0.5}, 1e-9)
}

func TestIsFinite(t *testing.T) {
	if !isFinite(1.0) {
		t.Error("1.0 should be finite")
	}
	if isFinite(math.NaN()) {
		t.Error("NaN should not be finite")
	}
	if isFinite(math.Inf(1)) {
		t.Error("+Inf should not be finite")
	}
}
