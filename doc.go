// Package segment provides quadratic Bézier path segments and the algebra
// needed to build vector graphics and path operations on top of them.
//
// # Segments
//
// A [Segment] is a single piece of a path, parametrized over t ∈ [0, 1]. The
// central type is [Quadratic], a quadratic Bézier segment with one control
// point. [Line] and [Cubic] implement the same contract: lines are what
// degenerate quadratics reduce to (see [Quadratic.NondegenerateSegments]),
// and cubics are what quadratics are raised to (see [Quadratic.Raise]).
//
// Segments are immutable values. Every operation that changes a segment
// returns a new one, so segments can be shared freely between goroutines.
//
// # Operations
//
// Segments can be evaluated ([Segment.Eval], [Segment.Tangent],
// [Segment.Curvature]), split ([Quadratic.Subdivided]), bounded
// ([Segment.Bounds]), transformed ([Segment.TransformSegment]), offset
// ([Quadratic.OffsetTo], [Quadratic.StrokeLeft], [Quadratic.StrokeRight]) and
// intersected with rays ([Segment.Intersection]). The winding contribution of
// a segment to a point-in-path test is given by
// [Segment.WindingIntersection].
//
// Two segments that trace the same points under a linear change of parameter
// are detected by [Quadratic.Overlaps], which reports the mapping as an
// [Overlap].
//
// # Output
//
// Segments can be emitted as SVG path commands ([Segment.PathFragment],
// [SVG]), drawn to any [Context] ([Segment.Draw], [DrawSegments]), such as a
// rasterizer wrapped with [NewRasterContext], and serialized to JSON (see
// [Quadratic.Serialize] and [Deserialize]).
//
// # Coordinate system
//
// We make no assumptions about the orientation of the y axis. Signs of
// curvature, normals and winding contributions are defined in terms of
// [Vec2.Perpendicular], which maps (x, y) to (y, −x).
//
// # Debugging
//
// Building with the segmentdebug tag enables precondition checks that panic
// when a parameter lies outside [0, 1] or a segment contains non-finite
// coordinates. Without the tag the checks cost nothing. Run the tests with
// go test -tags segmentdebug to exercise them.
package segment
