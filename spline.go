package geometrics

import (
	"github.com/shopspring/decimal"
)

// SplineInterpolate estimates the point at x with a natural cubic spline
// through all samples. The second derivatives are zero at both ends. The
// curve must have at least three samples and a single y per x.
func (c *Curve) SplineInterpolate(x decimal.Decimal) (Point2D, error) {
	i, exact, err := c.prepare(Spline, x)
	if err != nil {
		return Point2D{}, err
	}
	if exact != nil {
		return *exact, nil
	}
	m := splineMoments(c.points)
	p0, p1 := c.points[i], c.points[i+1]
	h := p1.X.Sub(p0.X)
	dl := x.Sub(p0.X)
	dr := p1.X.Sub(x)
	h6 := six.Mul(h)

	y := div(m[i].Mul(dr.Mul(dr).Mul(dr)), h6).
		Add(div(m[i+1].Mul(dl.Mul(dl).Mul(dl)), h6)).
		Add(div(p0.Y, h).Sub(div(m[i].Mul(h), six)).Mul(dr)).
		Add(div(p1.Y, h).Sub(div(m[i+1].Mul(h), six)).Mul(dl))
	return Point2D{X: x, Y: y}, nil
}

// splineMoments returns the second derivatives of the natural cubic spline
// through pts, solving the tridiagonal system with the Thomas algorithm. pts
// must have strictly increasing x.
func splineMoments(pts []Point2D) []decimal.Decimal {
	n := len(pts)
	buf := make([]decimal.Decimal, 4*n)
	sub, diag, sup, rhs := buf[:n], buf[n:2*n], buf[2*n:3*n], buf[3*n:]

	diag[0] = decimal.NewFromInt(1)
	diag[n-1] = decimal.NewFromInt(1)
	for k := 1; k < n-1; k++ {
		h0 := pts[k].X.Sub(pts[k-1].X)
		h1 := pts[k+1].X.Sub(pts[k].X)
		sub[k] = h0
		diag[k] = two.Mul(h0.Add(h1))
		sup[k] = h1
		s0 := div(pts[k].Y.Sub(pts[k-1].Y), h0)
		s1 := div(pts[k+1].Y.Sub(pts[k].Y), h1)
		rhs[k] = six.Mul(s1.Sub(s0))
	}

	for k := 1; k < n; k++ {
		w := div(sub[k], diag[k-1])
		diag[k] = diag[k].Sub(w.Mul(sup[k-1]))
		rhs[k] = rhs[k].Sub(w.Mul(rhs[k-1]))
	}
	rhs[n-1] = div(rhs[n-1], diag[n-1])
	for k := n - 2; k >= 0; k-- {
		rhs[k] = div(rhs[k].Sub(sup[k].Mul(rhs[k+1])), diag[k])
	}
	return rhs
}
