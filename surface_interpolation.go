package geometrics

import (
	"github.com/pkg/errors"
)

func (s *Surface) interpolationError(kind InterpolationType, k Point2D, err error) error {
	return &InterpolationError{Shape: ShapeSurface, Method: kind, Coordinate: k.String(), Err: err}
}

// Interpolate estimates the point at k with the method selected by kind.
func (s *Surface) Interpolate(k Point2D, kind InterpolationType) (Point3D, error) {
	switch kind {
	case Linear:
		return s.LinearInterpolate(k)
	case Bilinear:
		return s.BilinearInterpolate(k)
	case Cubic:
		return s.CubicInterpolate(k)
	case Spline:
		return s.SplineInterpolate(k)
	default:
		return Point3D{}, s.interpolationError(kind, k, errors.Wrapf(ErrInvalidParameters, "interpolation type %d", kind))
	}
}

// LinearInterpolate interpolates linearly along every row of samples sharing
// a y, then linearly across the rows.
func (s *Surface) LinearInterpolate(k Point2D) (Point3D, error) {
	return s.separable(Linear, k)
}

// CubicInterpolate is the separable form of [Curve.CubicInterpolate]. Rows
// with fewer than four samples are skipped.
func (s *Surface) CubicInterpolate(k Point2D) (Point3D, error) {
	return s.separable(Cubic, k)
}

// SplineInterpolate is the separable form of [Curve.SplineInterpolate]. Rows
// with fewer than three samples are skipped.
func (s *Surface) SplineInterpolate(k Point2D) (Point3D, error) {
	return s.separable(Spline, k)
}

// separable interpolates every row that covers k.X at k.X, then
// interpolates the resulting column at k.Y.
func (s *Surface) separable(kind InterpolationType, k Point2D) (Point3D, error) {
	if n, need := len(s.points), kind.minPoints(); n < need {
		return Point3D{}, s.interpolationError(kind, k, errors.Wrapf(ErrInsufficientPoints, "have %d, need %d", n, need))
	}
	if !s.domain.Contains(k) {
		return Point3D{}, s.interpolationError(kind, k, errors.Wrapf(ErrOutOfRange, "domain is %s", s.domain))
	}
	if pt, ok := s.Point(k); ok {
		return pt, nil
	}

	var column []Point2D
	short := 0
	for y, row := range s.rows() {
		rc := NewCurve(row...)
		if !rc.bbox.ContainsX(k.X) {
			continue
		}
		if rc.Len() < kind.minPoints() {
			short++
			continue
		}
		pt, err := rc.Interpolate(k.X, kind)
		if err != nil {
			if errors.Is(err, ErrMultiValued) {
				return Point3D{}, s.interpolationError(kind, k, ErrMultiValued)
			}
			continue
		}
		if y.Equal(k.Y) {
			return Point3D{X: k.X, Y: k.Y, Z: pt.Y}, nil
		}
		column = append(column, Pt(y, pt.Y))
	}
	if len(column) == 0 && short > 0 {
		return Point3D{}, s.interpolationError(kind, k, errors.Wrapf(ErrInsufficientPoints, "%d rows cover the coordinate, none with %d samples", short, kind.minPoints()))
	}
	if len(column) == 0 {
		return Point3D{}, s.interpolationError(kind, k, errors.Wrap(ErrBracketNotFound, "no row covers the coordinate"))
	}

	cc := NewCurve(column...)
	pt, err := cc.Interpolate(k.Y, kind)
	if err != nil {
		var ie *InterpolationError
		if errors.As(err, &ie) {
			err = ie.Err
		}
		return Point3D{}, s.interpolationError(kind, k, err)
	}
	return Point3D{X: k.X, Y: k.Y, Z: pt.Y}, nil
}
