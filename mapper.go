package shapes

import (
	"math"
	"sort"
)

// anchorPair is one matched (x, y) point of a DoubleMapper, each coordinate
// an outline progress value in [0,1).
type anchorPair struct {
	x, y float64
}

// DoubleMapper is a piecewise-linear, cyclically monotonic bijection between
// two outlines' progress domains, used to align a start and end polygon
// before morphing between them (spec.md §4.5/§4.6, GLOSSARY "DoubleMapper").
// Both Map and MapBack walk the same anchor list; cyclic monotonicity of the
// anchors (enforced at construction) is what makes interpolating either
// direction well-defined from a single sorted-by-x list.
type DoubleMapper struct {
	anchors []anchorPair
}

// newIdentityDoubleMapper returns the trivial mapper used when there is
// nothing to match: two anchors, (0,0) and (0.5,0.5), which — under cyclic
// interpolation — map every progress value to itself.
func newIdentityDoubleMapper() *DoubleMapper {
	return &DoubleMapper{anchors: []anchorPair{{0, 0}, {0.5, 0.5}}}
}

// Map returns the progress on the second outline corresponding to progress x
// on the first.
func (dm *DoubleMapper) Map(x float64) float64 { return dm.interpolate(x, true) }

// MapBack returns the progress on the first outline corresponding to
// progress y on the second.
func (dm *DoubleMapper) MapBack(y float64) float64 { return dm.interpolate(y, false) }

// interpolate walks the cyclic anchor list looking for the segment that
// brackets v in the "from" domain (x if forward, y if backward), then
// linearly interpolates the corresponding "to" domain value across that
// segment, wrapping at 1 as needed.
func (dm *DoubleMapper) interpolate(v float64, forward bool) float64 {
	v = positiveModulo(v, 1)
	n := len(dm.anchors)
	for i := 0; i < n; i++ {
		a := dm.anchors[i]
		b := dm.anchors[(i+1)%n]

		from, to := a.x, b.x
		outFrom, outTo := a.y, b.y
		if !forward {
			from, to = a.y, b.y
			outFrom, outTo = a.x, b.x
		}

		toWrapped := to
		if toWrapped <= from {
			toWrapped += 1
		}
		vAdj := v
		if vAdj < from {
			vAdj += 1
		}
		if vAdj < from || vAdj > toWrapped {
			continue
		}

		frac := 0.0
		if toWrapped > from {
			frac = (vAdj - from) / (toWrapped - from)
		}
		outToWrapped := outTo
		if outToWrapped <= outFrom {
			outToWrapped += 1
		}
		return positiveModulo(outFrom+frac*(outToWrapped-outFrom), 1)
	}
	panic("shapes: DoubleMapper has no segment containing the given progress")
}

// cornerConvex reports the convexity of a Corner feature. featureMapper only
// ever receives Corner features (measurePolygon produces ProgressableFeature
// entries exclusively for corners), so the type assertion is never expected
// to fail; it panics rather than silently treating an edge as non-convex.
func cornerConvex(f Feature) bool {
	c, ok := f.(CornerFeature)
	if !ok {
		panic("shapes: featureMapper received a non-Corner feature")
	}
	return c.Convex
}

// cyclicDistance is the shortest distance between a and b on the progress
// circle [0,1).
func cyclicDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 0.5 {
		d = 1 - d
	}
	return d
}

// featureMatchProximityEpsilon rejects a candidate match whose progress on
// either outline lands too close to an already-accepted anchor — two
// corners that close together would produce a degenerate (near-zero-length)
// mapping segment (spec.md §4.6 "cyclic proximity rejection").
const featureMatchProximityEpsilon = 1e-3

// featureMapper greedily matches corners between two progress-tagged
// feature lists (spec.md §4.5/§4.6): candidate pairs are scored by the
// distance between their representative points and considered in ascending
// distance order; a pair is accepted only if its outline-progress position
// on each side is not already claimed or too close to one that is, and if
// adding it preserves a cyclically monotonic matching (so the resulting
// anchors, walked once around the circle, wrap exactly once in each
// domain — no two matched segments cross). If no pair survives, matching
// degenerates to the identity mapper; a single surviving pair is kept and
// paired with its antipode on both axes.
func featureMapper(features1, features2 []ProgressableFeature) *DoubleMapper {
	type candidate struct {
		i1, i2               int
		progress1, progress2 float64
		distance             float64
	}

	candidates := make([]candidate, 0, len(features1)*len(features2))
	for i, f1 := range features1 {
		for j, f2 := range features2 {
			// Cross-convexity pairs never become candidates (spec.md §4.5
			// step 2, §9 "forbid cross-matching", §8 property 10): a convex
			// corner may only match another convex corner.
			if cornerConvex(f1.Feature) != cornerConvex(f2.Feature) {
				continue
			}
			d := representativePoint(f1.Feature).DistanceSquared(representativePoint(f2.Feature))
			candidates = append(candidates, candidate{
				i1: i, i2: j,
				progress1: f1.Progress, progress2: f2.Progress,
				distance: d,
			})
		}
	}
	sort.Slice(candidates, func(a, b int) bool { return candidates[a].distance < candidates[b].distance })

	usedF1 := make([]bool, len(features1))
	usedF2 := make([]bool, len(features2))
	var matched []anchorPair

	for _, c := range candidates {
		if usedF1[c.i1] || usedF2[c.i2] {
			continue
		}
		if tooClose(matched, c.progress1, c.progress2) {
			continue
		}
		if !preservesCyclicMonotonicity(matched, c.progress1, c.progress2) {
			continue
		}
		matched = append(matched, anchorPair{x: c.progress1, y: c.progress2})
		usedF1[c.i1] = true
		usedF2[c.i2] = true
	}

	switch len(matched) {
	case 0:
		return newIdentityDoubleMapper()
	case 1:
		// A single matched pair cannot anchor a piecewise-linear cyclic
		// bijection on its own (it would collapse both segments onto the
		// same point); pair it with its antipode on both axes, mirroring
		// the identity mapper's own (0,0)/(0.5,0.5) construction (spec.md
		// §4.5 step 4).
		m := matched[0]
		matched = append(matched, anchorPair{
			x: positiveModulo(m.x+0.5, 1),
			y: positiveModulo(m.y+0.5, 1),
		})
	}

	sort.Slice(matched, func(a, b int) bool { return matched[a].x < matched[b].x })
	return &DoubleMapper{anchors: matched}
}

// tooClose reports whether (x, y) lands within featureMatchProximityEpsilon
// of any already-accepted anchor, in either domain.
func tooClose(accepted []anchorPair, x, y float64) bool {
	for _, a := range accepted {
		if cyclicDistance(x, a.x) < featureMatchProximityEpsilon || cyclicDistance(y, a.y) < featureMatchProximityEpsilon {
			return true
		}
	}
	return false
}

// preservesCyclicMonotonicity reports whether adding (x, y) to accepted
// still yields a point set that, sorted by x, has a y sequence wrapping at
// most once around the progress circle — the discrete analogue of a
// monotonic (non-crossing) cyclic bijection.
func preservesCyclicMonotonicity(accepted []anchorPair, x, y float64) bool {
	all := make([]anchorPair, len(accepted)+1)
	copy(all, accepted)
	all[len(accepted)] = anchorPair{x: x, y: y}
	sort.Slice(all, func(a, b int) bool { return all[a].x < all[b].x })

	wraps := 0
	for i := range all {
		next := all[(i+1)%len(all)]
		if next.y < all[i].y {
			wraps++
		}
	}
	return wraps <= 1
}
