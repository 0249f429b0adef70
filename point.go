package shapes

import "math"

// DistanceEpsilon is the tolerance used to treat two coordinates, or the
// endpoints of a Cubic, as coincident.
const DistanceEpsilon = 1e-4

// AngleEpsilon is the tolerance used when comparing outline-progress values
// that are conceptually angles measured around the closed curve.
const AngleEpsilon = 1e-6

// Point is an immutable 2D point or displacement vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Times scales p by s.
func (p Point) Times(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div divides p by s.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D (scalar) cross product of p and q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// DistanceSquared returns the squared Euclidean distance between p and q,
// used by the feature matcher where the square root would be wasted work.
func (p Point) DistanceSquared(q Point) float64 {
	d := p.Sub(q)
	return d.X*d.X + d.Y*d.Y
}

// Length returns the magnitude of p treated as a vector from the origin.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Normalize returns a unit vector in the same direction as p, or the zero
// vector if p is zero-length. Degenerate (zero-length) sides are tolerated
// by this package, not treated as errors (spec.md §7).
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Rotate90 returns p rotated 90 degrees counter-clockwise about the origin.
func (p Point) Rotate90() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Lerp linearly interpolates between p (progress=0) and q (progress=1).
func (p Point) Lerp(q Point, progress float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*progress,
		Y: p.Y + (q.Y-p.Y)*progress,
	}
}

// directionVector returns the unit vector pointing from corner towards
// neighbor, i.e. the d1/d2 direction used by RoundedCorner (spec.md §4.2).
func directionVector(neighbor, corner Point) Point {
	return neighbor.Sub(corner).Normalize()
}

// radialToCartesian converts a polar coordinate (radius, angle in radians
// measured counter-clockwise from the positive X axis) around center into a
// Cartesian Point. Used by the regular-polygon constructors.
func radialToCartesian(radius, angleRadians float64, center Point) Point {
	return Point{
		X: center.X + radius*math.Cos(angleRadians),
		Y: center.Y + radius*math.Sin(angleRadians),
	}
}

// clockwise reports whether the path p0 -> p1 -> p2 turns clockwise at p1.
// This is the "fast but not reliable" convexity primitive spec.md §9
// accepts as definitional for the Corner.convex flag.
func clockwise(p0, p1, p2 Point) bool {
	a := p1.Sub(p0)
	b := p2.Sub(p1)
	return a.Cross(b) > 0
}

// positiveModulo returns x mod m folded into [0, m), unlike Go's % operator
// which preserves the sign of x. Panics if m is not positive: a non-positive
// modulus is a malformed range, per spec.md §7's coerceIn/positiveModulo
// "invalid argument" failure class.
func positiveModulo(x, m float64) float64 {
	if m <= 0 {
		panic("shapes: positiveModulo requires a positive modulus")
	}
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// coerceIn clamps x into [lo, hi]. Panics if lo > hi.
func coerceIn(x, lo, hi float64) float64 {
	if lo > hi {
		panic("shapes: coerceIn requires lo <= hi")
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// interpolateFloat linearly interpolates between a (progress=0) and b
// (progress=1).
func interpolateFloat(a, b, progress float64) float64 {
	return a + (b-a)*progress
}
