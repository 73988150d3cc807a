package segment

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// DefaultAccuracy is a default value for methods that take an accuracy or
// epsilon argument. It is suitable for general-purpose use, such as 2D
// graphics.
const DefaultAccuracy = 1e-6

// OffsetSubdivisionDepth is the number of times a curve is halved before its
// pieces are offset individually, yielding 2^OffsetSubdivisionDepth pieces.
const OffsetSubdivisionDepth = 5

var (
	// ErrNonFinite is returned when a segment would contain an infinite or NaN
	// coordinate.
	ErrNonFinite = errors.New("non-finite coordinate")
	// ErrUnknownType is returned when deserializing a record with an
	// unrecognized type discriminator.
	ErrUnknownType = errors.New("unknown segment type")
)

// Kind identifies the concrete type of a [Segment].
type Kind int

const (
	LineKind Kind = iota + 1
	QuadraticKind
	CubicKind
)

// String returns the kind's serialization discriminator.
func (k Kind) String() string {
	switch k {
	case LineKind:
		return "Line"
	case QuadraticKind:
		return "Quadratic"
	case CubicKind:
		return "Cubic"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Segment is a single piece of a path, parametrized over t ∈ [0, 1].
//
// The set of implementations is closed: [Line], [Quadratic] and [Cubic].
// Switch on [Segment.Kind] or use a type switch to access the concrete value.
//
// Methods that derive new segments have kind-specific counterparts on the
// concrete types that return the concrete type instead. For example,
// [Quadratic.Reversed] returns a Quadratic while [Quadratic.ReversedSegment]
// returns a Segment.
type Segment interface {
	json.Marshaler

	Kind() Kind
	Start() Point
	End() Point

	// Eval evaluates the segment at parameter t.
	Eval(t float64) Point
	// Tangent returns the (non-normalized) derivative at parameter t.
	Tangent(t float64) Vec2
	// Curvature returns the signed curvature at parameter t.
	Curvature(t float64) float64
	// StartTangent returns the unit tangent at the start of the segment.
	StartTangent() Vec2
	// EndTangent returns the unit tangent at the end of the segment.
	EndTangent() Vec2

	// Bounds returns the smallest axis-aligned box enclosing the segment.
	Bounds() Bounds
	// SignedArea returns the segment's contribution to the signed area of a
	// closed path, via Green's theorem.
	SignedArea() float64

	// Intersection returns the points where ray crosses the segment.
	Intersection(ray Ray) []RayHit
	// WindingIntersection returns the sum of winding contributions of all
	// crossings of ray with the segment.
	WindingIntersection(ray Ray) int

	// NondegenerateSegments returns an equivalent list of segments with
	// degenerate cases (points, straight curves, loops back onto the start)
	// reduced to lines. The list may be empty.
	NondegenerateSegments() []Segment
	SubdividedSegments(t float64) []Segment
	ReversedSegment() Segment
	TransformSegment(aff Affine) Segment
	// OffsetSegments approximates the curve offset by r along its normal.
	OffsetSegments(r float64, reverse bool) []Segment
	// OverlapsSegment returns the linear reparameterization under which seg
	// and o coincide, if any. Segments of different kinds never overlap.
	OverlapsSegment(o Segment, epsilon float64) []Overlap

	// PathFragment returns the SVG path command drawing the segment from its
	// start point, without the leading move-to.
	PathFragment() string
	// Draw issues the drawing command for the segment to ctx. The current
	// position of ctx must already be at the segment's start.
	Draw(ctx Context)

	segment()
}

// Context is a 2D drawing context that accepts path commands.
type Context interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticCurveTo(cpx, cpy, x, y float64)
	BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64)
}

// DrawSegments draws a sequence of segments to ctx, issuing a move-to
// whenever a segment doesn't start where the previous one ended.
func DrawSegments(ctx Context, segs []Segment) {
	var current Point
	first := true
	for _, seg := range segs {
		start := seg.Start()
		if first || current != start {
			ctx.MoveTo(start.X, start.Y)
		}
		first = false
		seg.Draw(ctx)
		current = seg.End()
	}
}

// SVG converts a sequence of segments to a string of SVG path commands,
// issuing a move-to whenever a segment doesn't start where the previous one
// ended.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func SVG(segs []Segment) string {
	sb := &strings.Builder{}
	var current Point
	first := true
	for _, seg := range segs {
		start := seg.Start()
		if first || current != start {
			if !first {
				sb.WriteByte(' ')
			}
			sb.WriteString("M ")
			sb.WriteString(formatNumber(start.X))
			sb.WriteByte(' ')
			sb.WriteString(formatNumber(start.Y))
		}
		first = false
		sb.WriteByte(' ')
		sb.WriteString(seg.PathFragment())
		current = seg.End()
	}
	return sb.String()
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func pathCommand(cmd byte, pts ...Point) string {
	sb := &strings.Builder{}
	sb.WriteByte(cmd)
	for _, pt := range pts {
		sb.WriteByte(' ')
		sb.WriteString(formatNumber(pt.X))
		sb.WriteByte(' ')
		sb.WriteString(formatNumber(pt.Y))
	}
	return sb.String()
}
