package geometrics

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// triangle is a plane through three samples with non-collinear (x, y).
type triangle struct {
	p [3]Point3D
	// det is twice the signed area of the projected triangle.
	det decimal.Decimal
}

// weights returns the barycentric coordinates of k.
func (t triangle) weights(k Point2D) [3]decimal.Decimal {
	o := t.p[0].XY()
	v0 := t.p[1].XY().Sub(o)
	v1 := t.p[2].XY().Sub(o)
	v2 := k.Sub(o)
	w1 := div(v2.Cross(v1), t.det)
	w2 := div(v0.Cross(v2), t.det)
	return [3]decimal.Decimal{decimal.NewFromInt(1).Sub(w1).Sub(w2), w1, w2}
}

func (t triangle) eval(k Point2D) decimal.Decimal {
	w := t.weights(k)
	return w[0].Mul(t.p[0].Z).Add(w[1].Mul(t.p[1].Z)).Add(w[2].Mul(t.p[2].Z))
}

// gradient returns the partial derivatives of the plane.
func (t triangle) gradient() (dx, dy decimal.Decimal) {
	o := t.p[0]
	dx1, dy1, dz1 := t.p[1].X.Sub(o.X), t.p[1].Y.Sub(o.Y), t.p[1].Z.Sub(o.Z)
	dx2, dy2, dz2 := t.p[2].X.Sub(o.X), t.p[2].Y.Sub(o.Y), t.p[2].Z.Sub(o.Z)
	dx = div(dz1.Mul(dy2).Sub(dz2.Mul(dy1)), t.det)
	dy = div(dx1.Mul(dz2).Sub(dx2.Mul(dz1)), t.det)
	return dx, dy
}

// triangle selects the samples nearest to k: the closest sample, the next
// closest with different (x, y), and the next closest that isn't collinear
// with both.
func (s *Surface) triangle(k Point2D) (triangle, error) {
	if n := len(s.points); n < 3 {
		return triangle{}, errors.Wrapf(ErrInsufficientPoints, "have %d, need 3", n)
	}
	if !s.domain.Contains(k) {
		return triangle{}, errors.Wrapf(ErrOutOfRange, "domain is %s", s.domain)
	}
	byDist := slices.Clone(s.points)
	slices.SortStableFunc(byDist, func(a, b Point3D) int {
		return a.XY().DistanceSquared(k).Cmp(b.XY().DistanceSquared(k))
	})

	t := triangle{p: [3]Point3D{byDist[0]}}
	rest := byDist[1:]
	i := slices.IndexFunc(rest, func(pt Point3D) bool { return !pt.XY().Equal(t.p[0].XY()) })
	if i < 0 {
		return triangle{}, errors.Wrap(ErrBracketNotFound, "all samples share one coordinate")
	}
	t.p[1] = rest[i]
	rest = rest[i+1:]
	v0 := t.p[1].XY().Sub(t.p[0].XY())
	for _, pt := range rest {
		det := v0.Cross(pt.XY().Sub(t.p[0].XY()))
		if !det.IsZero() {
			t.p[2] = pt
			t.det = det
			return t, nil
		}
	}
	return triangle{}, errors.Wrap(ErrBracketNotFound, "all samples are collinear")
}

// BilinearInterpolate estimates the point at k from the plane through the
// three nearest samples that span a triangle. Samples are returned unchanged.
func (s *Surface) BilinearInterpolate(k Point2D) (Point3D, error) {
	if pt, ok := s.Point(k); ok && len(s.points) >= 3 {
		return pt, nil
	}
	t, err := s.triangle(k)
	if err != nil {
		return Point3D{}, s.interpolationError(Bilinear, k, err)
	}
	return Point3D{X: k.X, Y: k.Y, Z: t.eval(k)}, nil
}
