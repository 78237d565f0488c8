package geometrics

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rect is an axis-aligned rectangle. It describes the extent of a curve, or
// the index domain of a surface.
type Rect struct {
	X0, Y0 decimal.Decimal
	X1, Y1 decimal.Decimal
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point2D) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: decimal.Min(r.X0, r.X1),
		Y0: decimal.Min(r.Y0, r.Y1),
		X1: decimal.Max(r.X0, r.X1),
		Y1: decimal.Max(r.Y0, r.Y1),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%s, %s]×[%s, %s]", r.X0, r.X1, r.Y0, r.Y1)
}

func (r Rect) Width() decimal.Decimal  { return r.X1.Sub(r.X0) }
func (r Rect) Height() decimal.Decimal { return r.Y1.Sub(r.Y0) }

// UnionPoint returns the smallest rectangle enclosing r and pt.
func (r Rect) UnionPoint(pt Point2D) Rect {
	return Rect{
		X0: decimal.Min(r.X0, pt.X),
		Y0: decimal.Min(r.Y0, pt.Y),
		X1: decimal.Max(r.X1, pt.X),
		Y1: decimal.Max(r.Y1, pt.Y),
	}
}

// Intersect returns the overlap of two rectangles. The second return value
// is false if they don't overlap. Rectangles that only touch overlap in a
// degenerate rectangle.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	out := Rect{
		X0: decimal.Max(r.X0, o.X0),
		Y0: decimal.Max(r.Y0, o.Y0),
		X1: decimal.Min(r.X1, o.X1),
		Y1: decimal.Min(r.Y1, o.Y1),
	}
	if out.X0.GreaterThan(out.X1) || out.Y0.GreaterThan(out.Y1) {
		return Rect{}, false
	}
	return out, true
}

// Contains reports whether pt lies inside r or on its border.
func (r Rect) Contains(pt Point2D) bool {
	return pt.X.GreaterThanOrEqual(r.X0) && pt.X.LessThanOrEqual(r.X1) &&
		pt.Y.GreaterThanOrEqual(r.Y0) && pt.Y.LessThanOrEqual(r.Y1)
}

// ContainsX reports whether x lies within the horizontal extent of r.
func (r Rect) ContainsX(x decimal.Decimal) bool {
	return x.GreaterThanOrEqual(r.X0) && x.LessThanOrEqual(r.X1)
}

// rectOf returns the bounding box of the points' index coordinates.
func rectOf(pts []Point2D) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}
