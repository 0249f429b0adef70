package shapes

import "math"

// RoundedCorner computes the cubic segments that round off the vertex p1
// shared by the sides p0->p1 and p1->p2, subject to a CornerRounding
// request and a caller-supplied budget of how much of each side may be
// consumed by the fillet (spec.md §4.2). All derived quantities are
// computed once at construction and reused across GetCubics calls, which
// matters because RoundedPolygon.FromVertices calls GetCubics only once
// per corner but the type is kept separate so corners could, in principle,
// be re-evaluated against a different side budget.
type RoundedCorner struct {
	p0, p1, p2 Point
	rounding   CornerRounding

	d1, d2             Point
	cosAngle, sinAngle float64
	expectedRoundCut   float64
	expectedCut        float64
}

// NewRoundedCorner derives the per-corner geometry for the triplet
// (p0, p1, p2) and the requested rounding.
func NewRoundedCorner(p0, p1, p2 Point, rounding CornerRounding) *RoundedCorner {
	rc := &RoundedCorner{p0: p0, p1: p1, p2: p2, rounding: rounding}

	rc.d1 = directionVector(p0, p1)
	rc.d2 = directionVector(p2, p1)
	rc.cosAngle = rc.d1.Dot(rc.d2)
	rc.sinAngle = math.Sqrt(math.Max(0, 1-rc.cosAngle*rc.cosAngle))

	if rc.sinAngle > 1e-3 {
		rc.expectedRoundCut = rounding.Radius * (rc.cosAngle + 1) / rc.sinAngle
	}
	rc.expectedCut = (1 + rounding.Smoothing) * rc.expectedRoundCut
	return rc
}

// ExpectedRoundCut is the along-side length required to fit the requested
// radius alone, with no smoothing. RoundedPolygon.FromVertices uses it to
// arbitrate the side budget between two adjacent corners (spec.md §4.3).
func (rc *RoundedCorner) ExpectedRoundCut() float64 { return rc.expectedRoundCut }

// ExpectedCut is the along-side length required for the fillet arc plus its
// full requested smoothing.
func (rc *RoundedCorner) ExpectedCut() float64 { return rc.expectedCut }

// GetCubics returns the cubics that round this corner, given the maximum
// along-side length allowed on the p0 side and the p2 side respectively.
// It always returns exactly three cubics, or a single zero-length cubic at
// p1 when the rounding request is degenerate (spec.md §4.2).
func (rc *RoundedCorner) GetCubics(allowedCut0, allowedCut1 float64) []Cubic {
	allowedCut := math.Min(allowedCut0, allowedCut1)
	if rc.expectedRoundCut < DistanceEpsilon || allowedCut < DistanceEpsilon || rc.rounding.Radius < DistanceEpsilon {
		if rc.rounding.Radius >= DistanceEpsilon {
			Logger().Warn("shapes: corner rounding collapsed to a point", "requestedRadius", rc.rounding.Radius, "allowedCut", allowedCut)
		}
		return []Cubic{NewCubic(rc.p1, rc.p1, rc.p1, rc.p1)}
	}

	actualRoundCut := math.Min(allowedCut, rc.expectedRoundCut)
	actualSmoothing0 := rc.smoothingFactor(actualRoundCut, allowedCut0)
	actualSmoothing1 := rc.smoothingFactor(actualRoundCut, allowedCut1)
	actualR := rc.rounding.Radius * actualRoundCut / rc.expectedRoundCut

	centerDistance := math.Sqrt(actualR*actualR + actualRoundCut*actualRoundCut)
	bisector := rc.d1.Add(rc.d2).Normalize()
	center := rc.p1.Add(bisector.Times(centerDistance))

	circleIntersection0 := rc.p1.Add(rc.d1.Times(actualRoundCut))
	circleIntersection2 := rc.p1.Add(rc.d2.Times(actualRoundCut))
	// The point on the fillet circle nearest the corner, i.e. the midpoint
	// (along the minor arc) between the two tangent points.
	arcMidpoint := center.Add(rc.p1.Sub(center).Normalize().Times(actualR))

	flanking0 := computeFlankingCurve(rc.p1, rc.d1, actualRoundCut, actualSmoothing0, circleIntersection0, arcMidpoint, center)
	flanking2 := computeFlankingCurve(rc.p1, rc.d2, actualRoundCut, actualSmoothing1, circleIntersection2, arcMidpoint, center).Reverse()

	arc := CircularArc(center, flanking0.Anchor1(), flanking2.Anchor0())

	return []Cubic{flanking0, arc, flanking2}
}

// smoothingFactor ramps the per-side smoothing from 0 (at allowedCut ==
// expectedRoundCut, i.e. exactly enough room for the bare arc) up to the
// requested Smoothing (at allowedCut == expectedCut, i.e. enough room for
// the fully smoothed cut), clamped to that range (spec.md §4.2 step 2).
func (rc *RoundedCorner) smoothingFactor(actualRoundCut, allowedCut float64) float64 {
	if rc.expectedCut <= rc.expectedRoundCut+DistanceEpsilon {
		return 0
	}
	t := (allowedCut - rc.expectedRoundCut) / (rc.expectedCut - rc.expectedRoundCut)
	return rc.rounding.Smoothing * coerceIn(t, 0, 1)
}

// computeFlankingCurve builds the cubic that blends the straight side,
// starting at corner and running along sideDir, into the fillet arc. Its
// anchor0 lies on the side at a distance scaled by (1+smoothing) past the
// pure round cut; its anchor1 lies on the fillet circle, interpolated
// between the plain tangent point and the arc's own midpoint by the
// smoothing factor. Control points come from intersecting the side line
// with the arc's tangent line at anchor1, then splitting that intersection
// 2/3 and 1/3 of the way to each anchor (the same raise-a-quadratic
// heuristic CubicBez.Raise uses to convert a control-polygon apex into
// cubic controls).
func computeFlankingCurve(corner, sideDir Point, roundCut, smoothing float64, circleTangentPoint, arcMidpoint, center Point) Cubic {
	anchor0 := corner.Add(sideDir.Times(roundCut * (1 + smoothing)))
	anchor1 := circleTangentPoint.Lerp(arcMidpoint, smoothing)

	tangentAtAnchor1 := anchor1.Sub(center).Rotate90()
	apex, ok := lineIntersection(anchor0, sideDir, anchor1, tangentAtAnchor1)
	if !ok {
		apex = anchor0.Lerp(anchor1, 0.5)
	}

	control0 := anchor0.Lerp(apex, 2.0/3.0)
	control1 := anchor1.Lerp(apex, 1.0/3.0)

	return NewCubic(anchor0, control0, control1, anchor1)
}

// lineIntersection finds the intersection of the line through p0 in
// direction d0 and the line through p1 in direction d1. Reports ok=false
// if the directions are (nearly) parallel.
func lineIntersection(p0, d0, p1, d1 Point) (Point, bool) {
	denom := d0.Cross(d1)
	if math.Abs(denom) < 1e-9 {
		return Point{}, false
	}
	t := p1.Sub(p0).Cross(d1) / denom
	return p0.Add(d0.Times(t)), true
}
