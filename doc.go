// Package shapes builds closed 2D outlines from polygon vertices with
// optional per-corner rounding, and morphs smoothly between two such
// outlines.
//
// # Overview
//
// A RoundedPolygon describes a closed outline as a sequence of straight
// edges and (optionally) rounded corners, each corner replaced by a
// tangent-continuous blend of a circular fillet arc and flanking smoothing
// curves. Outlines are flattened to a list of cubic Bezier segments
// (Cubic) for rendering or further processing.
//
// # Quick Start
//
//	import "github.com/gogpu/shapes"
//
//	hexagon := shapes.FromNumVertices(6, 200, 256, 256, shapes.NewCornerRounding(20), nil)
//	star := shapes.Star(6, 200, 100, shapes.NewCornerRounding(8), shapes.NewCornerRounding(8), nil, 256, 256)
//
//	morph := shapes.NewMorph(hexagon, star)
//	halfway := morph.AsCubics(0.5)
//
// # Morphing
//
// NewMorph measures both outlines' arc length, greedily matches their
// corners by proximity (featureMapper), cuts and aligns the two outlines at
// corresponding points, and pairs up their cubic segments so that
// Morph.AsCubics(progress) can linearly interpolate every matched pair in
// constant work per segment, for any progress in [0,1].
//
// # Coordinate System
//
// Points use a Y-down coordinate system, as is conventional for 2D
// graphics: X increases right, Y increases down. Angles are in radians,
// with angle 0 pointing right.
//
// # Concurrency
//
// RoundedPolygon and Morph values are immutable after construction and safe
// for concurrent use by multiple goroutines.
package shapes
