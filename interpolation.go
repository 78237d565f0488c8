package geometrics

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// minPoints returns the number of samples a method needs along one axis.
func (kind InterpolationType) minPoints() int {
	switch kind {
	case Cubic:
		return 4
	case Spline:
		return 3
	default:
		return 2
	}
}

func (c *Curve) interpolationError(kind InterpolationType, x decimal.Decimal, err error) error {
	return &InterpolationError{Shape: ShapeCurve, Method: kind, Coordinate: x.String(), Err: err}
}

// Interpolate estimates the point at x with the method selected by kind.
func (c *Curve) Interpolate(x decimal.Decimal, kind InterpolationType) (Point2D, error) {
	switch kind {
	case Linear:
		return c.LinearInterpolate(x)
	case Bilinear:
		return c.BilinearInterpolate(x)
	case Cubic:
		return c.CubicInterpolate(x)
	case Spline:
		return c.SplineInterpolate(x)
	default:
		return Point2D{}, c.interpolationError(kind, x, errors.Wrapf(ErrInvalidParameters, "interpolation type %d", kind))
	}
}

// LinearInterpolate connects the two samples around x with a straight line.
// Samples are returned unchanged; if x has several samples, the one with the
// smallest y is returned.
func (c *Curve) LinearInterpolate(x decimal.Decimal) (Point2D, error) {
	return c.linear(Linear, x)
}

// BilinearInterpolate is identical to [Curve.LinearInterpolate], as a curve
// has a single index dimension.
func (c *Curve) BilinearInterpolate(x decimal.Decimal) (Point2D, error) {
	return c.linear(Bilinear, x)
}

func (c *Curve) linear(kind InterpolationType, x decimal.Decimal) (Point2D, error) {
	i, j, err := c.FindBracketPoints(x)
	if err != nil {
		return Point2D{}, c.interpolationError(kind, x, err)
	}
	if pt, ok := c.Point(x); ok {
		return pt, nil
	}
	p0, p1 := c.points[i], c.points[j]
	t := div(x.Sub(p0.X), p1.X.Sub(p0.X))
	return Point2D{X: x, Y: p0.Y.Add(p1.Y.Sub(p0.Y).Mul(t))}, nil
}

// prepare runs the checks shared by the higher-order methods. It returns the
// bracket around x, or the sample at x if there is one.
func (c *Curve) prepare(kind InterpolationType, x decimal.Decimal) (i int, exact *Point2D, err error) {
	if n, need := len(c.points), kind.minPoints(); n < need {
		return 0, nil, c.interpolationError(kind, x, errors.Wrapf(ErrInsufficientPoints, "have %d, need %d", n, need))
	}
	i, _, err = c.FindBracketPoints(x)
	if err != nil {
		return 0, nil, c.interpolationError(kind, x, err)
	}
	if pt, ok := c.Point(x); ok {
		return i, &pt, nil
	}
	if c.multi {
		return 0, nil, c.interpolationError(kind, x, ErrMultiValued)
	}
	return i, nil, nil
}
