package geometrics

import (
	"github.com/shopspring/decimal"
)

// CubicInterpolate estimates the point at x with a Catmull-Rom segment
// through four consecutive samples around x. Near the ends of the curve the
// first or last four samples are used instead. The curve must have at least
// four samples and a single y per x.
func (c *Curve) CubicInterpolate(x decimal.Decimal) (Point2D, error) {
	i, exact, err := c.prepare(Cubic, x)
	if err != nil {
		return Point2D{}, err
	}
	if exact != nil {
		return *exact, nil
	}
	n := len(c.points)
	var w [4]Point2D
	switch {
	case i == 0:
		copy(w[:], c.points[:4])
	case i == n-2:
		copy(w[:], c.points[n-4:])
	default:
		copy(w[:], c.points[i-1:i+3])
	}
	t := div(x.Sub(w[1].X), w[2].X.Sub(w[1].X))
	return Point2D{X: x, Y: catmullRom(w[0].Y, w[1].Y, w[2].Y, w[3].Y, t)}, nil
}

// catmullRom evaluates the uniform Catmull-Rom segment between y1 and y2 at
// parameter t. t may lie outside [0, 1].
func catmullRom(y0, y1, y2, y3, t decimal.Decimal) decimal.Decimal {
	t2 := t.Mul(t)
	t3 := t2.Mul(t)
	a := two.Mul(y1)
	b := y2.Sub(y0).Mul(t)
	c := two.Mul(y0).Sub(five.Mul(y1)).Add(four.Mul(y2)).Sub(y3).Mul(t2)
	d := three.Mul(y1).Sub(y0).Sub(three.Mul(y2)).Add(y3).Mul(t3)
	return a.Add(b).Add(c).Add(d).Mul(half)
}
