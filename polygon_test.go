package shapes

import (
	"math"
	"testing"
)

func TestRoundedPolygon_Closure(t *testing.T) {
	p := FromNumVertices(6, 250, 400, 400, NewCornerRounding(20), nil)
	cubics := p.Cubics()
	if len(cubics) == 0 {
		t.Fatal("expected a non-empty cubic list")
	}
	first, last := cubics[0], cubics[len(cubics)-1]
	if !pointsApproxEqual(last.Anchor1(), first.Anchor0(), 1e-6) {
		t.Errorf("last.Anchor1() = %v, want first.Anchor0() = %v", last.Anchor1(), first.Anchor0())
	}
}

func TestRoundedPolygon_Continuity(t *testing.T) {
	p := Star(6, 250, 125, NewCornerRounding(20), Unrounded, nil, 400, 400)
	cubics := p.Cubics()
	for i := 0; i+1 < len(cubics); i++ {
		a1 := cubics[i].Anchor1()
		a0 := cubics[i+1].Anchor0()
		if !pointsApproxEqual(a1, a0, 1e-6) {
			t.Errorf("cubic %d end %v does not match cubic %d start %v", i, a1, i+1, a0)
		}
	}
}

func TestRoundedPolygon_FromVertices_RequiresTriangle(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for n < 3 vertices")
		}
	}()
	FromVertices([]float64{0, 0, 1, 1}, Unrounded, nil, nil)
}

func TestRoundedPolygon_Circle_ApproximatesCircle(t *testing.T) {
	p := Circle(8, 100, 0, 0)
	corners := 0
	for _, f := range p.Features() {
		if _, ok := f.(CornerFeature); ok {
			corners++
			for _, c := range f.Cubics() {
				r := c.Anchor0().Length()
				if math.Abs(r-100) > 1.0 {
					t.Errorf("corner anchor radius = %v, want within 1.0 of 100", r)
				}
			}
		}
	}
	if corners != 8 {
		t.Errorf("expected 8 corners, got %d", corners)
	}
}

func TestRoundedPolygon_Rectangle_FourCorners(t *testing.T) {
	p := Rectangle(200, 200, NewCornerRounding(50), nil, 0, 0)
	corners := 0
	for _, f := range p.Features() {
		if _, ok := f.(CornerFeature); ok {
			corners++
		}
	}
	if corners != 4 {
		t.Errorf("expected 4 corners, got %d", corners)
	}
}

func TestRoundedPolygon_Normalized_FitsUnitSquare(t *testing.T) {
	p := Rectangle(200, 100, Unrounded, nil, 50, 25)
	norm := p.Normalized()
	bounds := norm.CalculateBounds(nil, false)

	const eps = 1e-6
	if bounds.Min.X < -eps || bounds.Min.Y < -eps || bounds.Max.X > 1+eps || bounds.Max.Y > 1+eps {
		t.Errorf("normalized bounds %v not within [0,1]^2", bounds)
	}
	maxDim := math.Max(bounds.Width(), bounds.Height())
	if math.Abs(maxDim-1) > eps {
		t.Errorf("normalized max(width,height) = %v, want 1", maxDim)
	}
}

func TestRoundedPolygon_TightSideBudget(t *testing.T) {
	// Equilateral-ish triangle with side length 10 and a requested rounding
	// radius far larger than what the sides can support (spec.md S5).
	p := FromVertices([]float64{0, 0, 10, 0, 5, 8.66}, NewCornerRounding(100), nil, nil)
	for _, c := range p.Cubics() {
		for _, v := range c {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite cubic component: %v", c)
			}
		}
	}
}

func TestRoundedPolygon_Transformed(t *testing.T) {
	p := FromNumVertices(5, 10, 0, 0, Unrounded, nil)
	moved := p.Transformed(func(x, y float64) (float64, float64) {
		return x + 100, y + 50
	})
	for i, c := range p.Cubics() {
		want := c.Anchor0().Add(Pt(100, 50))
		got := moved.Cubics()[i].Anchor0()
		if !pointsApproxEqual(got, want, 1e-9) {
			t.Errorf("cubic %d anchor0 = %v, want %v", i, got, want)
		}
	}
	if !pointsApproxEqual(moved.Center(), p.Center().Add(Pt(100, 50)), 1e-9) {
		t.Errorf("center = %v, want %v", moved.Center(), p.Center().Add(Pt(100, 50)))
	}
}

func TestRoundedPolygon_SquareToRoundedSquare_HalfwayIsUniform(t *testing.T) {
	sharp := Rectangle(200, 200, Unrounded, nil, 0, 0)
	rounded := Rectangle(200, 200, NewCornerRounding(50), nil, 0, 0)
	morph := NewMorph(sharp, rounded)
	cubics := morph.AsCubics(0.5)
	if len(cubics) == 0 {
		t.Fatal("expected non-empty interpolated cubics")
	}
	// All four corners are blended alike, so the anchor set is unchanged by
	// a quarter turn about the center. Outline progress comes from chord
	// approximations of arc length, and the first corner's arc is measured
	// as two halves, so the corners agree to within a fraction of a unit.
	for i, c := range cubics {
		rotated := Pt(-c.Anchor0Y(), c.Anchor0X())
		found := false
		for _, other := range cubics {
			if pointsApproxEqual(rotated, other.Anchor0(), 0.5) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("cubic %d anchor0 %v has no quarter-turn counterpart %v", i, c.Anchor0(), rotated)
		}
	}
}
