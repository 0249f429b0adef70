package shapes

import "math"

// Cubic is a single cubic Bezier segment, stored as a flat 8-wide array
// (a0x, a0y, c0x, c0y, c1x, c1y, a1x, a1y) — this is
// intentionally a numeric array rather than four Points, for cache
// friendliness and trivial componentwise interpolation (see
// InterpolateCubic, used by Morph.AsCubics and Morph.ForEachCubic). The
// named accessors below are a view over it.
type Cubic [8]float64

// NewCubic builds a Cubic from its four control points.
func NewCubic(anchor0, control0, control1, anchor1 Point) Cubic {
	return Cubic{anchor0.X, anchor0.Y, control0.X, control0.Y, control1.X, control1.Y, anchor1.X, anchor1.Y}
}

// Anchor0 returns the starting on-curve point.
func (c Cubic) Anchor0() Point { return Point{c[0], c[1]} }

// Control0 returns the first off-curve control point.
func (c Cubic) Control0() Point { return Point{c[2], c[3]} }

// Control1 returns the second off-curve control point.
func (c Cubic) Control1() Point { return Point{c[4], c[5]} }

// Anchor1 returns the ending on-curve point.
func (c Cubic) Anchor1() Point { return Point{c[6], c[7]} }

// Anchor0X, Anchor0Y, Control0X, Control0Y, Control1X, Control1Y, Anchor1X,
// Anchor1Y are the individual-coordinate accessors.
func (c Cubic) Anchor0X() float64  { return c[0] }
func (c Cubic) Anchor0Y() float64  { return c[1] }
func (c Cubic) Control0X() float64 { return c[2] }
func (c Cubic) Control0Y() float64 { return c[3] }
func (c Cubic) Control1X() float64 { return c[4] }
func (c Cubic) Control1Y() float64 { return c[5] }
func (c Cubic) Anchor1X() float64  { return c[6] }
func (c Cubic) Anchor1Y() float64  { return c[7] }

// StraightLine builds the Cubic that represents the straight segment from
// p0 to p1, with control points at the 1/3 and 2/3 linear interpolants.
func StraightLine(p0, p1 Point) Cubic {
	return NewCubic(p0, p0.Lerp(p1, 1.0/3.0), p0.Lerp(p1, 2.0/3.0), p1)
}

// CircularArc builds a single cubic approximation of the minor arc from p0
// to p1 about center. Near-colinear inputs (cos(angle) >
// 0.999) fall back to a straight line, since a cubic approximation of a
// near-zero-degree arc is numerically unstable and visually indistinguishable
// from a line anyway.
func CircularArc(center, p0, p1 Point) Cubic {
	p0d := p0.Sub(center)
	p1d := p1.Sub(center)
	radius := (p0d.Length() + p1d.Length()) / 2.0

	if radius < DistanceEpsilon {
		return StraightLine(p0, p1)
	}

	p0n := p0d.Normalize()
	p1n := p1d.Normalize()
	cosa := p0n.Dot(p1n)
	if cosa > 0.999 {
		return StraightLine(p0, p1)
	}

	// Direction sign: does the 90-degree-rotated tangent at p0 point toward
	// p1? If so the arc sweeps counter-clockwise (positive k), else
	// clockwise (negative k).
	tangentP0 := p0n.Rotate90()
	direction := 1.0
	if tangentP0.Dot(p1.Sub(p0)) < 0 {
		direction = -1.0
	}

	k := radius * (4.0 / 3.0) * (math.Sqrt(2*(1-cosa)) - math.Sqrt(1-cosa*cosa)) / (1 - cosa)
	k *= direction

	control0 := p0.Add(tangentP0.Times(k))
	tangentP1 := p1n.Rotate90()
	control1 := p1.Sub(tangentP1.Times(k))

	return NewCubic(p0, control0, control1, p1)
}

// Eval evaluates the cubic at parameter t using the Bernstein form.
func (c Cubic) Eval(t float64) Point {
	mt := 1 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	a0, c0, c1, a1 := c.Anchor0(), c.Control0(), c.Control1(), c.Anchor1()
	return Point{
		X: mt3*a0.X + 3*mt2*t*c0.X + 3*mt*t2*c1.X + t3*a1.X,
		Y: mt3*a0.Y + 3*mt2*t*c0.Y + 3*mt*t2*c1.Y + t3*a1.Y,
	}
}

// Split divides the cubic at parameter t via de Casteljau subdivision,
// returning the two halves. left.Anchor1() == right.Anchor0() == c.Eval(t).
func (c Cubic) Split(t float64) (left, right Cubic) {
	a0, c0, c1, a1 := c.Anchor0(), c.Control0(), c.Control1(), c.Anchor1()

	p01 := a0.Lerp(c0, t)
	p12 := c0.Lerp(c1, t)
	p23 := c1.Lerp(a1, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)

	return NewCubic(a0, p01, p012, mid), NewCubic(mid, p123, p23, a1)
}

// Reverse returns a copy of the cubic with its anchors and controls swapped,
// i.e. traversing the same curve in the opposite direction.
func (c Cubic) Reverse() Cubic {
	return NewCubic(c.Anchor1(), c.Control1(), c.Control0(), c.Anchor0())
}

// Plus adds two cubics componentwise.
func (c Cubic) Plus(other Cubic) Cubic {
	var out Cubic
	for i := range c {
		out[i] = c[i] + other[i]
	}
	return out
}

// Times scales every component of the cubic by s.
func (c Cubic) Times(s float64) Cubic {
	var out Cubic
	for i := range c {
		out[i] = c[i] * s
	}
	return out
}

// InterpolateCubic linearly interpolates every component of a and b by
// progress, as required for the per-component cubic blending Morph.AsCubics
// does between a matched start/end segment pair.
func InterpolateCubic(a, b Cubic, progress float64) Cubic {
	var out Cubic
	for i := range a {
		out[i] = interpolateFloat(a[i], b[i], progress)
	}
	return out
}

// ZeroLength reports whether the cubic's two anchors are coincident within
// DistanceEpsilon on both axes.
func (c Cubic) ZeroLength() bool {
	return math.Abs(c[0]-c[6]) < DistanceEpsilon && math.Abs(c[1]-c[7]) < DistanceEpsilon
}

// Transformed applies f to every control point of the cubic and returns the
// result. f receives (x, y) and returns the transformed (x, y).
func (c Cubic) Transformed(f func(x, y float64) (float64, float64)) Cubic {
	var out Cubic
	for i := 0; i < 8; i += 2 {
		out[i], out[i+1] = f(c[i], c[i+1])
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the cubic, expanding dst
// (or a fresh Rect if dst is nil). When approximate is true the bounds are
// simply the AABB of the four control points (cheap, conservative). When
// false, the exact bounds are found by solving for the parameter values
// where each axis's derivative vanishes.
func (c Cubic) Bounds(dst *Rect, approximate bool) Rect {
	a0, c0, c1, a1 := c.Anchor0(), c.Control0(), c.Control1(), c.Anchor1()

	var r Rect
	if approximate {
		r = NewRect(a0, c0)
		r = r.Union(NewRect(c1, a1))
	} else {
		r = NewRect(a0, a1)
		for _, t := range c.extrema() {
			r = r.Union(NewRect(c.Eval(t), c.Eval(t)))
		}
	}
	if dst != nil {
		*dst = r
		return *dst
	}
	return r
}

// extrema returns the interior parameter values where the cubic's
// derivative is zero on either axis, used by the exact Bounds path.
func (c Cubic) extrema() []float64 {
	a0, c0, c1, a1 := c.Anchor0(), c.Control0(), c.Control1(), c.Anchor1()

	d0 := c0.Sub(a0)
	d1 := c1.Sub(c0)
	d2 := a1.Sub(c1)

	var result []float64

	ax := d0.X - 2*d1.X + d2.X
	bx := 2 * (d1.X - d0.X)
	cx := d0.X
	result = append(result, solveQuadraticInUnitInterval(ax, bx, cx)...)

	ay := d0.Y - 2*d1.Y + d2.Y
	by := 2 * (d1.Y - d0.Y)
	cy := d0.Y
	result = append(result, solveQuadraticInUnitInterval(ay, by, cy)...)

	return result
}

// Rect is an axis-aligned bounding rectangle, used by Cubic.Bounds,
// RoundedPolygon.CalculateBounds and RoundedPolygon.CalculateMaxBounds.
type Rect struct {
	Min, Max Point
}

// NewRect builds a Rect from two corner points, normalizing so Min <= Max
// on both axes.
func NewRect(p0, p1 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p0.X, p1.X), Y: math.Min(p0.Y, p1.Y)},
		Max: Point{X: math.Max(p0.X, p1.X), Y: math.Max(p0.Y, p1.Y)},
	}
}

// Union returns the smallest Rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Width returns the rectangle's extent along X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the rectangle's extent along Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }
