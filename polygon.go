package shapes

import "math"

// RoundedPolygon is a closed planar outline built from vertices with
// optional per-corner rounding (spec.md §3). Instances are immutable after
// construction and safe to use concurrently from multiple goroutines
// (spec.md §5).
type RoundedPolygon struct {
	features []Feature
	center   Point
	cubics   []Cubic
	vertices []Point // raw, un-rounded vertex positions, for CalculateMaxBounds.
}

// Features returns the polygon's ordered list of Edge/Corner features.
func (p *RoundedPolygon) Features() []Feature { return p.features }

// Center returns the polygon's center point.
func (p *RoundedPolygon) Center() Point { return p.center }

// Cubics returns the closed, flattened list of cubics making up the
// outline: cubics[len-1].Anchor1() == cubics[0].Anchor0() exactly
// (spec.md §8 property 1).
func (p *RoundedPolygon) Cubics() []Cubic { return p.cubics }

// FromVertices builds a RoundedPolygon from a flat (x0,y0,x1,y1,...) vertex
// list. rounding is applied to every vertex unless perVertexRounding is
// non-nil, in which case it must have one entry per vertex. center, if
// non-nil, overrides the computed centroid.
//
// Vertex count n < 3 is undefined behavior per spec.md §7; this
// implementation chooses to validate and panics rather than producing a
// garbage outline.
func FromVertices(vertices []float64, rounding CornerRounding, perVertexRounding []CornerRounding, center *Point) *RoundedPolygon {
	if len(vertices)%2 != 0 {
		panic("shapes: vertices must be a flat list of (x, y) pairs")
	}
	n := len(vertices) / 2
	if n < 3 {
		panic("shapes: a polygon requires at least 3 vertices")
	}
	if perVertexRounding != nil && len(perVertexRounding) != n {
		panic("shapes: perVertexRounding must have exactly one entry per vertex")
	}

	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Pt(vertices[2*i], vertices[2*i+1])
	}

	roundingFor := func(i int) CornerRounding {
		if perVertexRounding != nil {
			return perVertexRounding[i]
		}
		return rounding
	}

	corners := make([]*RoundedCorner, n)
	for i := 0; i < n; i++ {
		prev := pts[(i-1+n)%n]
		next := pts[(i+1)%n]
		corners[i] = NewRoundedCorner(prev, pts[i], next, roundingFor(i))
	}

	// Per-side round/smooth ratios (spec.md §4.3 step 2).
	type sideRatio struct{ round, smooth float64 }
	ratios := make([]sideRatio, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sideLen := pts[i].Distance(pts[j])

		cutI := corners[i].ExpectedRoundCut()
		cutJ := corners[j].ExpectedRoundCut()
		fullI := corners[i].ExpectedCut()
		fullJ := corners[j].ExpectedCut()

		switch {
		case cutI+cutJ > sideLen:
			round := 1.0
			if cutI+cutJ > DistanceEpsilon {
				round = sideLen / (cutI + cutJ)
			}
			Logger().Debug("shapes: side too short for requested rounding, scaling back",
				"side", i, "length", sideLen, "requestedCut", cutI+cutJ, "roundRatio", round)
			ratios[i] = sideRatio{round: coerceIn(round, 0, 1), smooth: 0}
		case fullI+fullJ > sideLen:
			remaining := sideLen - (cutI + cutJ)
			neededForSmoothing := (fullI - cutI) + (fullJ - cutJ)
			smooth := 1.0
			if neededForSmoothing > DistanceEpsilon {
				smooth = coerceIn(remaining/neededForSmoothing, 0, 1)
			}
			ratios[i] = sideRatio{round: 1, smooth: smooth}
		default:
			ratios[i] = sideRatio{round: 1, smooth: 1}
		}
	}

	allowedCut := func(corner int, ratio sideRatio) float64 {
		roundCut := corners[corner].ExpectedRoundCut()
		smoothBudget := corners[corner].ExpectedCut() - roundCut
		return roundCut*ratio.round + smoothBudget*ratio.smooth
	}

	features := make([]Feature, 0, 2*n)
	cornerCubics := make([][]Cubic, n)
	for i := 0; i < n; i++ {
		prevSideRatio := ratios[(i-1+n)%n]
		nextSideRatio := ratios[i]
		allowed0 := allowedCut(i, prevSideRatio)
		allowed1 := allowedCut(i, nextSideRatio)
		cornerCubics[i] = corners[i].GetCubics(allowed0, allowed1)
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		convex := clockwise(pts[(i-1+n)%n], pts[i], pts[(i+1)%n])
		features = append(features, NewCornerFeature(cornerCubics[i], convex))

		edgeStart := cornerCubics[i][len(cornerCubics[i])-1].Anchor1()
		edgeEnd := cornerCubics[j][0].Anchor0()
		features = append(features, NewEdgeFeature([]Cubic{StraightLine(edgeStart, edgeEnd)}))
	}

	c := centroid(pts)
	if center != nil {
		c = *center
	}

	cubics := buildCubicList(features)

	return &RoundedPolygon{features: features, center: c, cubics: cubics, vertices: pts}
}

// cubicOwner identifies which feature a raw flattened cubic came from, and
// whether it is that corner's designated "mid" cubic (the fillet arc, or
// the sole cubic of a degenerate corner) — the one whose progress midpoint
// becomes the corner's ProgressableFeature.Progress in measurePolygon.
type cubicOwner struct {
	featureIndex int
	isMid        bool
}

// flattenRotated flattens an ordered feature list into a single raw cubic
// stream, applying the spec.md §4.3 rotation rule: if the first feature is
// a non-degenerate (3-cubic) corner, its arc cubic is split at t=0.5 and
// the tail half is moved to the front, so the cyclic seam lands mid-arc
// rather than at a sharp vertex. No zero-length filtering or closing cubic
// is applied here — that is left to callers, since RoundedPolygon.cubics
// and MeasuredPolygon.cubics need it applied slightly differently (the
// former appends a synthetic closing cubic; the latter instead forces its
// last progress endpoint to exactly 1, per spec.md §4.4 step 4).
func flattenRotated(features []Feature) ([]Cubic, []cubicOwner) {
	firstCubics := features[0].Cubics()

	var raw []Cubic
	var owners []cubicOwner
	appendFeature := func(i int, cubics []Cubic) {
		mid := 0
		if len(cubics) == 3 {
			mid = 1
		}
		for j, c := range cubics {
			raw = append(raw, c)
			owners = append(owners, cubicOwner{featureIndex: i, isMid: j == mid})
		}
	}

	if len(firstCubics) == 3 {
		left, right := firstCubics[1].Split(0.5)
		raw = append(raw, right, firstCubics[2])
		owners = append(owners, cubicOwner{featureIndex: 0, isMid: true}, cubicOwner{featureIndex: 0, isMid: false})
		for i, f := range features[1:] {
			appendFeature(i+1, f.Cubics())
		}
		raw = append(raw, firstCubics[0], left)
		owners = append(owners, cubicOwner{featureIndex: 0, isMid: false}, cubicOwner{featureIndex: 0, isMid: true})
	} else {
		for i, f := range features {
			appendFeature(i, f.Cubics())
		}
	}

	return raw, owners
}

// dropZeroLength filters zero-length cubics out of cubics, patching the
// previous retained cubic's anchor1 to the dropped cubic's anchor1 to
// preserve anchor continuity (spec.md §4.3/§4.5 "zero-length cubic
// handling").
func dropZeroLength(cubics []Cubic) []Cubic {
	retained := make([]Cubic, 0, len(cubics))
	for _, c := range cubics {
		if c.ZeroLength() {
			if len(retained) > 0 {
				last := retained[len(retained)-1]
				last[6], last[7] = c[6], c[7]
				retained[len(retained)-1] = last
			}
			continue
		}
		retained = append(retained, c)
	}
	return retained
}

// buildCubicList flattens an ordered feature list into the closed cubic
// list described by spec.md §4.3: rotate (flattenRotated), drop zero-length
// cubics (patching anchor continuity), then append a final closing cubic
// whose controls come from the last retained cubic and whose anchor1 is
// the first retained cubic's anchor0, guaranteeing an exactly closed loop.
func buildCubicList(features []Feature) []Cubic {
	raw, _ := flattenRotated(features)
	retained := dropZeroLength(raw)
	if len(retained) == 0 {
		return retained
	}

	last := retained[len(retained)-1]
	first := retained[0]
	closing := Cubic{
		last.Anchor1().X, last.Anchor1().Y,
		last.Control1().X, last.Control1().Y,
		first.Anchor0().X, first.Anchor0().Y,
		first.Anchor0().X, first.Anchor0().Y,
	}
	return append(retained, closing)
}

// FromNumVertices builds a regular n-gon of polygon radius r centered at
// (cx, cy), with optional rounding.
func FromNumVertices(n int, radius float64, cx, cy float64, rounding CornerRounding, perVertexRounding []CornerRounding) *RoundedPolygon {
	center := Pt(cx, cy)
	vertices := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		p := radialToCartesian(radius, angle, center)
		vertices = append(vertices, p.X, p.Y)
	}
	return FromVertices(vertices, rounding, perVertexRounding, &center)
}

// Circle builds a regular n-gon whose corners are rounded with radius so
// heavily that the outline approximates a circle of the given radius
// (spec.md §6, scenario S3): the polygon itself is inscribed at
// radius/cos(pi/n) so that, once every corner is rounded to `radius`, the
// rounded outline's extremes land on the circle of the requested radius.
func Circle(n int, radius, cx, cy float64) *RoundedPolygon {
	if n < 3 {
		n = 8
	}
	polygonRadius := radius / math.Cos(math.Pi/float64(n))
	return FromNumVertices(n, polygonRadius, cx, cy, NewCornerRounding(radius), nil)
}

// Rectangle builds a (w x h) rectangle centered at (cx, cy), with optional
// rounding.
func Rectangle(width, height float64, rounding CornerRounding, perVertexRounding []CornerRounding, cx, cy float64) *RoundedPolygon {
	halfW, halfH := width/2, height/2
	vertices := []float64{
		cx + halfW, cy - halfH,
		cx + halfW, cy + halfH,
		cx - halfW, cy + halfH,
		cx - halfW, cy - halfH,
	}
	center := Pt(cx, cy)
	return FromVertices(vertices, rounding, perVertexRounding, &center)
}

// Star builds a star polygon alternating numPerRadius outer vertices (at
// outerRadius) with numPerRadius inner vertices (at innerRadius). When
// innerRounding is supplied and perVertexRounding is not, the alternating
// [rounding, innerRounding, ...] list is synthesized AND passed onward to
// FromVertices — spec.md §9 flags an apparent bug in the system this
// library is modeled on, where that synthesized list was built but then
// discarded in favor of the un-augmented argument; we implement the
// corrected behavior.
func Star(numPerRadius int, outerRadius, innerRadius float64, rounding, innerRounding CornerRounding, perVertexRounding []CornerRounding, cx, cy float64) *RoundedPolygon {
	n := 2 * numPerRadius
	center := Pt(cx, cy)
	vertices := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		angle := -math.Pi/2 + math.Pi*float64(i)/float64(numPerRadius)
		p := radialToCartesian(r, angle, center)
		vertices = append(vertices, p.X, p.Y)
	}

	effectivePerVertex := perVertexRounding
	if effectivePerVertex == nil && innerRounding != (CornerRounding{}) {
		effectivePerVertex = make([]CornerRounding, n)
		for i := 0; i < n; i++ {
			if i%2 == 0 {
				effectivePerVertex[i] = rounding
			} else {
				effectivePerVertex[i] = innerRounding
			}
		}
	}

	return FromVertices(vertices, rounding, effectivePerVertex, &center)
}

// Transformed applies f to every control point of every cubic in the
// polygon (features and the flattened cubic list alike) and to its center,
// returning a new RoundedPolygon. f receives (x, y) and returns the
// transformed (x, y).
func (p *RoundedPolygon) Transformed(f func(x, y float64) (float64, float64)) *RoundedPolygon {
	transformFeature := func(ft Feature) Feature {
		cubics := ft.Cubics()
		out := make([]Cubic, len(cubics))
		for i, c := range cubics {
			out[i] = c.Transformed(f)
		}
		switch v := ft.(type) {
		case CornerFeature:
			return NewCornerFeature(out, v.Convex)
		case EdgeFeature:
			return NewEdgeFeature(out)
		default:
			panic("shapes: unknown Feature implementation")
		}
	}

	newFeatures := make([]Feature, len(p.features))
	for i, ft := range p.features {
		newFeatures[i] = transformFeature(ft)
	}
	newCubics := make([]Cubic, len(p.cubics))
	for i, c := range p.cubics {
		newCubics[i] = c.Transformed(f)
	}
	newVertices := make([]Point, len(p.vertices))
	for i, v := range p.vertices {
		newVertices[i].X, newVertices[i].Y = f(v.X, v.Y)
	}
	cx, cy := f(p.center.X, p.center.Y)

	return &RoundedPolygon{features: newFeatures, center: Pt(cx, cy), cubics: newCubics, vertices: newVertices}
}

// Normalized returns a copy of the polygon translated and scaled to fit
// within the unit square [0,1]x[0,1], preserving aspect ratio (spec.md §8
// property 9: max(width,height) == 1 after normalization).
func (p *RoundedPolygon) Normalized() *RoundedPolygon {
	bounds := p.CalculateBounds(nil, false)
	w, h := bounds.Width(), bounds.Height()
	scale := 1.0
	if m := math.Max(w, h); m > 0 {
		scale = 1.0 / m
	}
	return p.Transformed(func(x, y float64) (float64, float64) {
		return (x - bounds.Min.X) * scale, (y - bounds.Min.Y) * scale
	})
}

// CalculateBounds returns the exact (or, if approximate, the cheap
// conservative) axis-aligned bounding box of the polygon's outline.
func (p *RoundedPolygon) CalculateBounds(dst *Rect, approximate bool) Rect {
	if len(p.cubics) == 0 {
		var r Rect
		if dst != nil {
			*dst = r
		}
		return r
	}
	r := p.cubics[0].Bounds(nil, approximate)
	for _, c := range p.cubics[1:] {
		r = r.Union(c.Bounds(nil, approximate))
	}
	if dst != nil {
		*dst = r
	}
	return r
}

// CalculateMaxBounds returns a cheap upper bound on the polygon's extent,
// computed from the raw (un-rounded) vertex positions. Rounding a corner
// only ever pulls it inward, so the vertex bounding box always contains the
// rounded outline, making this a fast safe bound when exactness is not
// required.
func (p *RoundedPolygon) CalculateMaxBounds(dst *Rect) Rect {
	if len(p.vertices) == 0 {
		var r Rect
		if dst != nil {
			*dst = r
		}
		return r
	}
	r := NewRect(p.vertices[0], p.vertices[0])
	for _, v := range p.vertices[1:] {
		r = r.Union(NewRect(v, v))
	}
	if dst != nil {
		*dst = r
	}
	return r
}

// centroid returns the arithmetic mean of the given points.
func centroid(pts []Point) Point {
	var sum Point
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(pts)))
}
