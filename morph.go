package shapes

import "math"

// morphMatch is one pair of corresponding sub-cubics, one cut from the
// start outline and one from the end outline, that together span the same
// range of aligned outline progress (spec.md §4.7 step 3).
type morphMatch struct {
	startProgress, endProgress float64
	cubic1, cubic2             Cubic
}

// Morph holds a precomputed correspondence between a start and an end
// RoundedPolygon, letting any intermediate shape along the transition be
// produced in O(matched segments) without re-measuring or re-matching
// (spec.md §4.7, GLOSSARY "Morph").
type Morph struct {
	matches []morphMatch
}

// NewMorph builds the start/end correspondence (spec.md §4.7):
//  1. Measure both outlines with the default LengthMeasurer.
//  2. Match corners between the two measured feature lists (featureMapper),
//     producing a DoubleMapper between their progress domains.
//  3. Cut and shift the end outline so it starts at the point the mapper
//     says corresponds to the start outline's progress 0 (the start outline
//     is already cut at 0, since measurePolygon always begins there).
//  4. Merge the two cubic-boundary sequences into matched same-progress-span
//     pairs, splitting a cubic whenever the other side has a boundary it
//     doesn't.
func NewMorph(start, end *RoundedPolygon) *Morph {
	measurer := LengthMeasurer{}
	ms1 := measurePolygon(measurer, start)
	ms2 := measurePolygon(measurer, end)

	dm := featureMapper(ms1.Features(), ms2.Features())
	cutPoint2 := dm.Map(0)
	bs2 := ms2.cutAndShift(cutPoint2)

	return &Morph{matches: matchCubics(ms1, bs2, dm, cutPoint2)}
}

// AsCubics renders the morph at the given progress in [0,1]: 0 reproduces
// the start outline, 1 reproduces the end outline, and intermediate values
// linearly interpolate each matched cubic's control points (spec.md §4.7,
// §8 properties 2-4). The returned slice has len(morphMatch)+1 entries: one
// interpolated cubic per matched pair, plus a synthetic closing cubic
// (spec.md §4.7 step 5, §8 property 3) that forces the outline to close
// exactly even if the first and last interpolated anchors have drifted
// apart by a floating-point hair — the same pattern buildCubicList (§4.3)
// uses to close RoundedPolygon.Cubics().
func (m *Morph) AsCubics(progress float64) []Cubic {
	n := len(m.matches)
	if n == 0 {
		return nil
	}
	out := make([]Cubic, n, n+1)
	for i, match := range m.matches {
		out[i] = InterpolateCubic(match.cubic1, match.cubic2, progress)
	}
	return append(out, closingCubic(out[0], out[n-1]))
}

// ForEachCubic renders the morph at progress exactly as AsCubics does,
// including the trailing synthetic closing cubic, but calls callback with
// each cubic in turn instead of allocating a slice. scratch is reused
// across calls as interpolation scratch space; callback must not retain it
// past the call.
func (m *Morph) ForEachCubic(progress float64, scratch *Cubic, callback func(Cubic)) {
	n := len(m.matches)
	if n == 0 {
		return
	}
	var first Cubic
	for i, match := range m.matches {
		*scratch = InterpolateCubic(match.cubic1, match.cubic2, progress)
		if i == 0 {
			first = *scratch
		}
		callback(*scratch)
	}
	*scratch = closingCubic(first, *scratch)
	callback(*scratch)
}

// closingCubic builds the synthetic terminal segment that bridges the last
// interpolated cubic's real end point to the first interpolated cubic's
// start point: anchor0/control0 continue from last (preserving §8 property
// 4 continuity), while control1/anchor1 collapse onto first's anchor0 to
// force exact seam closure (spec.md §4.7 step 5).
func closingCubic(first, last Cubic) Cubic {
	return Cubic{
		last.Anchor1().X, last.Anchor1().Y,
		last.Control1().X, last.Control1().Y,
		first.Anchor0().X, first.Anchor0().Y,
		first.Anchor0().X, first.Anchor0().Y,
	}
}

// matchCubics merges bs1's and bs2's cubic-boundary sequences into matched
// pairs spanning identical ranges of *aligned* outline progress (spec.md
// §4.7 step 4). bs1's own progress values are used directly as the common
// ("canonical") domain; bs2 lives in its own cut-and-shifted domain, so
// every one of its boundaries is translated into the canonical domain via
// dm.MapBack (and every canonical split point is translated back into bs2's
// domain via dm.Map) before the two sequences are compared — a plain
// same-domain merge would only be correct if dm were the identity, which it
// generally is not.
func matchCubics(bs1, bs2 *MeasuredPolygon, dm *DoubleMapper, cut float64) []morphMatch {
	c1s, c2s := bs1.cubics, bs2.cubics
	if len(c1s) == 0 || len(c2s) == 0 {
		return nil
	}

	i1, i2 := 0, 0
	cur1, cur2 := c1s[0], c2s[0]
	pos := 0.0

	var result []morphMatch
	// Each iteration strictly advances pos (or the loop exits), so the
	// total iteration count is bounded by the number of distinct
	// boundaries across both sequences.
	for iterations := 0; iterations <= len(c1s)+len(c2s)+2; iterations++ {
		last1 := i1 == len(c1s)-1
		last2 := i2 == len(c2s)-1

		a1 := 1.0
		if !last1 {
			a1 = cur1.EndOutlineProgress
		}
		a2 := 1.0
		if !last2 {
			a2 = dm.MapBack(positiveModulo(cur2.EndOutlineProgress+cut, 1))
		}

		m := math.Min(a1, a2)
		if m <= pos+AngleEpsilon {
			m = math.Max(a1, a2)
			if m <= pos+AngleEpsilon {
				break
			}
		}

		// localEnd2 is m translated into bs2's own (cut-and-shifted) domain,
		// i.e. the point at which cur2 must be split to land exactly on the
		// canonical boundary m.
		localEnd2 := cur2.EndOutlineProgress
		if !last2 {
			localEnd2 = positiveModulo(dm.Map(m)-cut, 1)
		}

		seg1 := subCubicByProgress(cur1, pos, m)
		seg2 := subCubicByProgress(cur2, cur2.StartOutlineProgress, localEnd2)
		result = append(result, morphMatch{startProgress: pos, endProgress: m, cubic1: seg1, cubic2: seg2})

		if m >= 1-1e-9 {
			break
		}

		if a1 <= m+AngleEpsilon {
			i1++
			if i1 < len(c1s) {
				cur1 = c1s[i1]
			}
		} else {
			cur1 = remainderAfter(cur1, m)
		}
		if a2 <= m+AngleEpsilon {
			i2++
			if i2 < len(c2s) {
				cur2 = c2s[i2]
			}
		} else {
			cur2 = remainderAfter(cur2, localEnd2)
		}
		pos = m
	}
	return result
}

// subCubicByProgress extracts the portion of mc.Cubic spanning outline
// progress [start, end], where [start, end] is contained in
// [mc.StartOutlineProgress, mc.EndOutlineProgress].
func subCubicByProgress(mc MeasuredCubic, start, end float64) Cubic {
	span := mc.EndOutlineProgress - mc.StartOutlineProgress
	if span <= DistanceEpsilon {
		return mc.Cubic
	}
	t0 := coerceIn((start-mc.StartOutlineProgress)/span, 0, 1)
	t1 := coerceIn((end-mc.StartOutlineProgress)/span, 0, 1)
	if t1 <= t0 {
		return mc.Cubic
	}

	c := mc.Cubic
	if t1 < 1-1e-12 {
		c, _ = c.Split(t1)
	}
	if t0 > 1e-12 {
		_, c = c.Split(t0 / t1)
	}
	return c
}

// remainderAfter returns the MeasuredCubic for the portion of mc after
// outline progress cut, re-tagged with its (unchanged) progress range
// clipped to start at cut.
func remainderAfter(mc MeasuredCubic, cut float64) MeasuredCubic {
	span := mc.EndOutlineProgress - mc.StartOutlineProgress
	if span <= DistanceEpsilon {
		return mc
	}
	t := coerceIn((cut-mc.StartOutlineProgress)/span, 0, 1)
	_, right := mc.Cubic.Split(t)
	return MeasuredCubic{Cubic: right, StartOutlineProgress: cut, EndOutlineProgress: mc.EndOutlineProgress}
}
