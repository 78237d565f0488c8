package geometrics

import (
	"github.com/shopspring/decimal"
)

// Line represents a line segment between two samples.
type Line struct {
	// The line's start point.
	P0 Point2D
	// The line's end point.
	P1 Point2D
}

func (l Line) Eval(t decimal.Decimal) Point2D {
	return l.P0.Lerp(l.P1, t)
}

// Slope returns dy/dx of the line. It reports false for vertical lines.
func (l Line) Slope() (decimal.Decimal, bool) {
	d := l.P1.Sub(l.P0)
	if d.X.IsZero() {
		return decimal.Zero, false
	}
	return div(d.Y, d.X), true
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// Intersect returns the point where two segments cross, including their end
// points. Parallel and coincident segments report no intersection.
func (l Line) Intersect(o Line) (Point2D, bool) {
	p0 := o.P0
	p1 := o.P1
	dx := p1.X.Sub(p0.X)
	dy := p1.Y.Sub(p0.Y)

	det := dx.Mul(l.P1.Y.Sub(l.P0.Y)).Sub(dy.Mul(l.P1.X.Sub(l.P0.X)))
	if det.IsZero() {
		return Point2D{}, false
	}
	// t = position on l
	t := div(dx.Mul(p0.Y.Sub(l.P0.Y)).Sub(dy.Mul(p0.X.Sub(l.P0.X))), det)
	if t.Sign() < 0 || t.GreaterThan(decimal.NewFromInt(1)) {
		return Point2D{}, false
	}
	// u = position on o
	u := div(
		l.P0.X.Sub(p0.X).Mul(l.P1.Y.Sub(l.P0.Y)).Sub(l.P0.Y.Sub(p0.Y).Mul(l.P1.X.Sub(l.P0.X))),
		det,
	)
	if u.Sign() < 0 || u.GreaterThan(decimal.NewFromInt(1)) {
		return Point2D{}, false
	}
	return l.Eval(t), true
}
