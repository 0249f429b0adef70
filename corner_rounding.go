package shapes

// CornerRounding describes how a RoundedPolygon vertex should be rounded:
// Radius is the requested fillet radius, Smoothing is the fraction (in
// [0,1]) of additional side length consumed past the pure-arc cut to
// produce a G2-like blended transition into the adjacent edges.
type CornerRounding struct {
	Radius    float64
	Smoothing float64
}

// Unrounded is the zero-value CornerRounding: a sharp corner.
var Unrounded = CornerRounding{Radius: 0, Smoothing: 0}

// NewCornerRounding builds a CornerRounding with the given radius and, by
// default, no smoothing.
func NewCornerRounding(radius float64, smoothing ...float64) CornerRounding {
	s := 0.0
	if len(smoothing) > 0 {
		s = smoothing[0]
	}
	return CornerRounding{Radius: radius, Smoothing: s}
}
