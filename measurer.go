package shapes

// Measurer abstracts the notion of "how far along a cubic" a point is, so
// that feature matching and morphing can be parameterized by arc length
// rather than raw Bezier t (spec.md §4.4, GLOSSARY "Measurer").
type Measurer interface {
	// MeasureCubic returns the non-negative length of c.
	MeasureCubic(c Cubic) float64
	// FindCubicCutPoint returns the t in [0,1] at which the measured length
	// from c's start first reaches m. Callers only ever pass m in
	// [0, MeasureCubic(c)].
	FindCubicCutPoint(c Cubic, m float64) float64
}

// LengthMeasurer is the default Measurer: it approximates a cubic's length
// by subdividing it into a fixed number of equal-t chords and summing their
// straight-line lengths (spec.md §4.4 "LengthMeasurer (default)").
type LengthMeasurer struct{}

// lengthMeasurerSegments is the number of equal-t chords LengthMeasurer
// subdivides a cubic into when approximating its length.
const lengthMeasurerSegments = 3

// MeasureCubic sums the lengths of lengthMeasurerSegments equal-t chords
// along c.
func (LengthMeasurer) MeasureCubic(c Cubic) float64 {
	total := 0.0
	prev := c.Eval(0)
	for i := 1; i <= lengthMeasurerSegments; i++ {
		t := float64(i) / float64(lengthMeasurerSegments)
		next := c.Eval(t)
		total += prev.Distance(next)
		prev = next
	}
	return total
}

// FindCubicCutPoint walks the same chord subdivision MeasureCubic uses,
// returning the t at which cumulative chord length first reaches m.
// Within the chord containing the crossing, t is interpolated linearly
// against that chord's length.
func (lm LengthMeasurer) FindCubicCutPoint(c Cubic, m float64) float64 {
	if m <= 0 {
		return 0
	}
	total := 0.0
	prev := c.Eval(0)
	prevT := 0.0
	for i := 1; i <= lengthMeasurerSegments; i++ {
		t := float64(i) / float64(lengthMeasurerSegments)
		next := c.Eval(t)
		segLen := prev.Distance(next)
		if total+segLen >= m {
			if segLen < DistanceEpsilon {
				return t
			}
			frac := (m - total) / segLen
			return interpolateFloat(prevT, t, frac)
		}
		total += segLen
		prev = next
		prevT = t
	}
	return 1
}

// ProgressableFeature pairs a Corner feature with its position, expressed as
// outline progress in [0,1), along the polygon it was measured from
// (spec.md §4.4 step 3). Only corners are progress-tagged; edges carry no
// matching significance.
type ProgressableFeature struct {
	Progress float64
	Feature  Feature
}

// MeasuredCubic is one cubic of a measured outline, tagged with the range
// of outline progress — in [0,1] — that it spans.
type MeasuredCubic struct {
	Cubic                Cubic
	StartOutlineProgress float64
	EndOutlineProgress   float64
}

// MeasuredPolygon is a RoundedPolygon's outline re-expressed as a sequence
// of MeasuredCubics whose progress ranges exactly tile [0,1], plus the
// outline-progress position of each of its corners (spec.md §4.4).
type MeasuredPolygon struct {
	measurer Measurer
	features []ProgressableFeature
	cubics   []MeasuredCubic
}

// Features returns the polygon's progress-tagged corners, in outline order.
func (mp *MeasuredPolygon) Features() []ProgressableFeature { return mp.features }

// Cubics returns the measured cubics, in outline order, whose progress
// ranges exactly tile [0,1] (the first starts at 0, the last ends at 1).
func (mp *MeasuredPolygon) Cubics() []MeasuredCubic { return mp.cubics }

// measurePolygon re-flattens polygon's features (applying the same
// first-corner rotation buildCubicList uses, via flattenRotated) and
// measures the result with measurer, producing outline-progress values for
// every cubic boundary and every corner (spec.md §4.4):
//
//  1. Flatten feature cubics in rotated order, remembering each corner's
//     designated "mid" cubic (flattenRotated / cubicOwner).
//  2. Measure every raw cubic and accumulate outline progress in [0,1] at
//     every boundary.
//  3. A corner's progress is the midpoint progress of its mid cubic, modulo
//     1; the rotated first corner's mid cubic straddles the seam by
//     construction, so its progress is exactly 0.
//  4. Drop zero-length cubics (as RoundedPolygon.cubics does, patching
//     anchor continuity), then force the last retained cubic's end progress
//     to exactly 1 to absorb floating-point drift.
func measurePolygon(measurer Measurer, polygon *RoundedPolygon) *MeasuredPolygon {
	raw, owners := flattenRotated(polygon.features)

	lengths := make([]float64, len(raw))
	total := 0.0
	for i, c := range raw {
		l := measurer.MeasureCubic(c)
		if l < 0 {
			panic("shapes: Measurer.MeasureCubic returned a negative length")
		}
		lengths[i] = l
		total += l
	}
	if total <= 0 {
		panic("shapes: polygon has zero measured outline length")
	}

	rawStart := make([]float64, len(raw))
	rawEnd := make([]float64, len(raw))
	cum := 0.0
	for i := range raw {
		rawStart[i] = cum / total
		cum += lengths[i]
		rawEnd[i] = cum / total
	}

	progressByFeature := map[int]float64{0: 0}
	for i, own := range owners {
		if !own.isMid || own.featureIndex == 0 {
			continue
		}
		if _, already := progressByFeature[own.featureIndex]; already {
			continue
		}
		mid := (rawStart[i] + rawEnd[i]) / 2
		progressByFeature[own.featureIndex] = positiveModulo(mid, 1)
	}

	var cubics []MeasuredCubic
	for i, c := range raw {
		if c.ZeroLength() {
			if len(cubics) > 0 {
				last := &cubics[len(cubics)-1]
				last.Cubic[6], last.Cubic[7] = c[6], c[7]
			}
			continue
		}
		cubics = append(cubics, MeasuredCubic{
			Cubic:                c,
			StartOutlineProgress: rawStart[i],
			EndOutlineProgress:   rawEnd[i],
		})
	}
	if len(cubics) == 0 {
		panic("shapes: polygon has no non-degenerate cubics to measure")
	}
	cubics[0].StartOutlineProgress = 0
	cubics[len(cubics)-1].EndOutlineProgress = 1

	var features []ProgressableFeature
	for i, f := range polygon.features {
		if _, ok := f.(CornerFeature); !ok {
			continue
		}
		features = append(features, ProgressableFeature{Progress: progressByFeature[i], Feature: f})
	}

	return &MeasuredPolygon{measurer: measurer, features: features, cubics: cubics}
}

// cutAndShift rotates the measured cubic sequence so that it starts at
// outline progress cuttingPoint, splitting the cubic straddling that point
// in two (spec.md §4.7 step 2, "cut and align"). cuttingPoint must be in
// [0,1). The returned polygon's cubics again tile [0,1] exactly, with
// progress re-based so that the old cuttingPoint is now 0.
func (mp *MeasuredPolygon) cutAndShift(cuttingPoint float64) *MeasuredPolygon {
	cuttingPoint = positiveModulo(cuttingPoint, 1)
	if cuttingPoint < DistanceEpsilon {
		return mp
	}

	cutIndex := -1
	for i, c := range mp.cubics {
		if cuttingPoint >= c.StartOutlineProgress && cuttingPoint < c.EndOutlineProgress {
			cutIndex = i
			break
		}
	}
	if cutIndex == -1 {
		cutIndex = len(mp.cubics) - 1
	}
	target := mp.cubics[cutIndex]

	span := target.EndOutlineProgress - target.StartOutlineProgress
	var localT float64
	if span > DistanceEpsilon {
		localT = (cuttingPoint - target.StartOutlineProgress) / span
	}
	localT = coerceIn(localT, 0, 1)

	left, right := target.Cubic.Split(localT)

	rebase := func(progress float64) float64 {
		return positiveModulo(progress-cuttingPoint, 1)
	}

	var reordered []MeasuredCubic
	reordered = append(reordered, MeasuredCubic{
		Cubic:                right,
		StartOutlineProgress: 0,
		EndOutlineProgress:   rebase(target.EndOutlineProgress),
	})
	for i := cutIndex + 1; i < len(mp.cubics); i++ {
		c := mp.cubics[i]
		reordered = append(reordered, MeasuredCubic{
			Cubic:                c.Cubic,
			StartOutlineProgress: rebase(c.StartOutlineProgress),
			EndOutlineProgress:   rebase(c.EndOutlineProgress),
		})
	}
	for i := 0; i < cutIndex; i++ {
		c := mp.cubics[i]
		reordered = append(reordered, MeasuredCubic{
			Cubic:                c.Cubic,
			StartOutlineProgress: rebase(c.StartOutlineProgress),
			EndOutlineProgress:   rebase(c.EndOutlineProgress),
		})
	}
	if !left.ZeroLength() {
		reordered = append(reordered, MeasuredCubic{
			Cubic:                left,
			StartOutlineProgress: rebase(target.StartOutlineProgress),
			EndOutlineProgress:   1,
		})
	}
	reordered[len(reordered)-1].EndOutlineProgress = 1

	newFeatures := make([]ProgressableFeature, len(mp.features))
	for i, f := range mp.features {
		newFeatures[i] = ProgressableFeature{Progress: rebase(f.Progress), Feature: f.Feature}
	}

	return &MeasuredPolygon{measurer: mp.measurer, features: newFeatures, cubics: reordered}
}
