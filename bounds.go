package segment

import "math"

// Bounds is an axis-aligned bounding box.
//
// A valid box has MinX <= MaxX and MinY <= MaxY. The zero value is the
// degenerate box containing only the origin; use [EmptyBounds] as the
// starting point when accumulating points.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyBounds contains no points. Its union with any box or point yields
// that box or point.
var EmptyBounds = Bounds{
	MinX: math.Inf(1),
	MinY: math.Inf(1),
	MaxX: math.Inf(-1),
	MaxY: math.Inf(-1),
}

// NewBoundsFromPoints returns the smallest box containing p0 and p1.
func NewBoundsFromPoints(p0, p1 Point) Bounds {
	return Bounds{
		MinX: min(p0.X, p1.X),
		MinY: min(p0.Y, p1.Y),
		MaxX: max(p0.X, p1.X),
		MaxY: max(p0.Y, p1.Y),
	}
}

// IsEmpty reports whether the box contains no points.
func (b Bounds) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Width returns MaxX − MinX.
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns MaxY − MinY.
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Center returns the center of the box.
func (b Bounds) Center() Point {
	return Point{
		X: 0.5 * (b.MinX + b.MaxX),
		Y: 0.5 * (b.MinY + b.MaxY),
	}
}

// Contains reports whether pt lies inside the box or on its boundary.
func (b Bounds) Contains(pt Point) bool {
	return pt.X >= b.MinX &&
		pt.X <= b.MaxX &&
		pt.Y >= b.MinY &&
		pt.Y <= b.MaxY
}

// Union returns the smallest box enclosing b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points, starting from
// [EmptyBounds], yields their enclosing box.
func (b Bounds) UnionPoint(pt Point) Bounds {
	return Bounds{
		MinX: min(b.MinX, pt.X),
		MinY: min(b.MinY, pt.Y),
		MaxX: max(b.MaxX, pt.X),
		MaxY: max(b.MaxY, pt.Y),
	}
}

// Inflate expands the box by a constant amount in both directions.
func (b Bounds) Inflate(width, height float64) Bounds {
	return Bounds{
		MinX: b.MinX - width,
		MinY: b.MinY - height,
		MaxX: b.MaxX + width,
		MaxY: b.MaxY + height,
	}
}

// SegmentsBounds returns the union of the bounds of all segments.
func SegmentsBounds(segs []Segment) Bounds {
	bbox := EmptyBounds
	for _, seg := range segs {
		bbox = bbox.Union(seg.Bounds())
	}
	return bbox
}
