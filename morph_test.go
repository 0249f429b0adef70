package shapes

import (
	"math"
	"testing"
)

func TestMorph_Identity_ReproducesOriginal(t *testing.T) {
	p1 := FromNumVertices(6, 100, 0, 0, NewCornerRounding(15), nil)
	p2 := FromNumVertices(6, 100, 0, 0, NewCornerRounding(15), nil)

	morph := NewMorph(p1, p2)
	for _, progress := range []float64{0, 0.25, 0.5, 0.75, 1} {
		cubics := morph.AsCubics(progress)
		if len(cubics) == 0 {
			t.Fatalf("progress %v: expected non-empty cubic list", progress)
		}
		for i := 0; i+1 < len(cubics); i++ {
			if !pointsApproxEqual(cubics[i].Anchor1(), cubics[i+1].Anchor0(), 1e-6) {
				t.Errorf("progress %v: cubic %d end does not match cubic %d start", progress, i, i+1)
			}
		}
		want := p1.Cubics()
		if len(cubics) != len(want) {
			t.Fatalf("progress %v: got %d cubics, want %d (the original's)", progress, len(cubics), len(want))
		}
		for i := range want {
			if !pointsApproxEqual(cubics[i].Anchor0(), want[i].Anchor0(), 1e-6) {
				t.Errorf("progress %v: cubic %d anchor0 = %v, want original %v", progress, i, cubics[i].Anchor0(), want[i].Anchor0())
			}
		}
	}
}

func TestMorph_EndpointsMatchStartAndEnd(t *testing.T) {
	sharp := Rectangle(200, 200, Unrounded, nil, 0, 0)
	rounded := Rectangle(200, 200, NewCornerRounding(50), nil, 0, 0)
	morph := NewMorph(sharp, rounded)

	at0 := morph.AsCubics(0)
	at1 := morph.AsCubics(1)
	if len(at0) == 0 || len(at1) == 0 {
		t.Fatal("expected non-empty cubic lists at progress 0 and 1")
	}

	// At progress 0 and 1 every matched cubic should equal its
	// corresponding start/end sub-cubic exactly (spec.md §8 property 2).
	for i, match := range morph.matches {
		for k := range match.cubic1 {
			if !approxEqual(at0[i][k], match.cubic1[k], 1e-9) {
				t.Errorf("progress 0: cubic %d = %v, want start sub-cubic %v", i, at0[i], match.cubic1)
				break
			}
		}
		for k := range match.cubic2 {
			if !approxEqual(at1[i][k], match.cubic2[k], 1e-9) {
				t.Errorf("progress 1: cubic %d = %v, want end sub-cubic %v", i, at1[i], match.cubic2)
				break
			}
		}
	}
	for i := range at0 {
		for _, v := range at0[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("progress 0: non-finite cubic component at %d: %v", i, at0[i])
			}
		}
	}
	for i := range at1 {
		for _, v := range at1[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("progress 1: non-finite cubic component at %d: %v", i, at1[i])
			}
		}
	}
}

func TestMorph_SameLengthAtEveryProgress(t *testing.T) {
	hexagon := FromNumVertices(6, 100, 0, 0, NewCornerRounding(15), nil)
	star := Star(6, 100, 50, NewCornerRounding(8), NewCornerRounding(8), nil, 0, 0)
	morph := NewMorph(hexagon, star)

	want := len(morph.AsCubics(0))
	for _, progress := range []float64{0, 0.2, 0.4, 0.6, 0.8, 1} {
		if got := len(morph.AsCubics(progress)); got != want {
			t.Errorf("progress %v: cubic count = %d, want %d (spec.md §8 property 3)", progress, got, want)
		}
	}
}

func TestMorph_HexagonToStar_ContinuousChain(t *testing.T) {
	hexagon := FromNumVertices(6, 100, 0, 0, NewCornerRounding(15), nil)
	star := Star(6, 100, 50, NewCornerRounding(8), NewCornerRounding(8), nil, 0, 0)
	morph := NewMorph(hexagon, star)

	for _, progress := range []float64{0, 0.3, 0.5, 0.7, 1} {
		cubics := morph.AsCubics(progress)
		if len(cubics) == 0 {
			t.Fatalf("progress %v: expected non-empty cubic list", progress)
		}
		for i := 0; i+1 < len(cubics); i++ {
			if !pointsApproxEqual(cubics[i].Anchor1(), cubics[i+1].Anchor0(), 1e-6) {
				t.Errorf("progress %v: cubic %d end %v does not match cubic %d start %v",
					progress, i, cubics[i].Anchor1(), i+1, cubics[i+1].Anchor0())
			}
		}
		last, first := cubics[len(cubics)-1], cubics[0]
		if !pointsApproxEqual(last.Anchor1(), first.Anchor0(), 1e-6) {
			t.Errorf("progress %v: outline does not close, last.Anchor1()=%v first.Anchor0()=%v",
				progress, last.Anchor1(), first.Anchor0())
		}
	}
}

func TestMorph_ForEachCubic_MatchesAsCubics(t *testing.T) {
	hexagon := FromNumVertices(6, 100, 0, 0, NewCornerRounding(15), nil)
	star := Star(6, 100, 50, NewCornerRounding(8), NewCornerRounding(8), nil, 0, 0)
	morph := NewMorph(hexagon, star)

	want := morph.AsCubics(0.4)
	var got []Cubic
	var scratch Cubic
	morph.ForEachCubic(0.4, &scratch, func(c Cubic) {
		got = append(got, c)
	})

	if len(got) != len(want) {
		t.Fatalf("ForEachCubic produced %d cubics, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cubic %d = %v, want %v", i, got[i], want[i])
		}
	}
}
