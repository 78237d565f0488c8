package geometrics

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Coordinate describes the index type of a geometric object: the x
// coordinate of a curve, or the (x, y) pair of a surface. Coordinates are
// compared by value, never with ==, as decimals with equal values may differ
// in representation.
type Coordinate[K any] interface {
	// Cmp returns -1, 0 or +1 depending on whether the receiver sorts before,
	// equal to or after o.
	Cmp(o K) int
}

// GeometricObject describes an entity built from an ordered, de-duplicated
// set of points.
type GeometricObject[P any] interface {
	// Points returns an iterator over the points in ascending order.
	Points() iter.Seq[P]
	// Vector returns a copy of the points in ascending order.
	Vector() []P
	Len() int
	// At returns the i-th point in ascending order.
	At(i int) P
}

// Interpolator describes objects that can estimate a point at an arbitrary
// coordinate within their sampled domain. None of the methods extrapolate.
type Interpolator[P any, K any] interface {
	// Interpolate dispatches to the method selected by kind.
	Interpolate(k K, kind InterpolationType) (P, error)
	LinearInterpolate(k K) (P, error)
	BilinearInterpolate(k K) (P, error)
	CubicInterpolate(k K) (P, error)
	SplineInterpolate(k K) (P, error)
}

// AxisOperations describes lookups along the index axis of an object.
type AxisOperations[P any, K Coordinate[K]] interface {
	ContainsPoint(k K) bool
	// IndexValues returns the distinct coordinates in ascending order.
	IndexValues() []K
	// Values returns all dependent values sampled at k. Objects may sample
	// more than one value at the same coordinate.
	Values(k K) []decimal.Decimal
	// ClosestPoint returns the point whose coordinate is nearest to k. It
	// only fails if the object has no points.
	ClosestPoint(k K) (P, error)
	// Point returns the first point sampled exactly at k.
	Point(k K) (P, bool)
	// MergeIndexes returns the sorted, de-duplicated union of the object's
	// coordinates and keys.
	MergeIndexes(keys []K) []K
}

// MergeAxisInterpolate describes objects that can be aligned onto a common
// set of coordinates.
type MergeAxisInterpolate[T any, P any, K Coordinate[K]] interface {
	AxisOperations[P, K]
	// MergeAxisIndex returns the union of both objects' coordinates.
	MergeAxisIndex(other T) []K
	// MergeAxisInterpolate re-samples both objects onto the union of their
	// coordinates within their shared domain. Coordinates that an object
	// doesn't sample are interpolated using kind.
	MergeAxisInterpolate(other T, kind InterpolationType) (T, T, error)
}

// Arithmetic describes objects that can be combined point-wise.
type Arithmetic[T any] interface {
	MergeWith(other T, op MergeOperation, opts ...MergeOption) (T, error)
}

// MetricsExtractor describes objects that compute statistics over their
// dependent values. Each computation fails independently.
type MetricsExtractor[P any] interface {
	ComputeBasicMetrics() (BasicMetrics, error)
	ComputeShapeMetrics() (ShapeMetrics[P], error)
	ComputeRangeMetrics() (RangeMetrics[P], error)
	ComputeTrendMetrics(opts ...MetricsOption) (TrendMetrics, error)
	ComputeRiskMetrics(opts ...MetricsOption) (RiskMetrics, error)
	// ComputeMetrics computes all five categories and returns the first
	// error unchanged.
	ComputeMetrics(opts ...MetricsOption) (Metrics[P], error)
}

// GeometricTransformations describes operations that derive new objects or
// values from an object without modifying it.
type GeometricTransformations[T any, P any] interface {
	// Translate moves every point by one delta per dimension.
	Translate(deltas ...decimal.Decimal) (T, error)
	// Scale multiplies every coordinate by one factor per dimension.
	Scale(factors ...decimal.Decimal) (T, error)
	IntersectWith(other T, opts ...IntersectOption) ([]P, error)
	// DerivativeAt returns the derivative of the dependent value with respect
	// to each index dimension.
	DerivativeAt(p P) ([]decimal.Decimal, error)
	// Extrema returns the points with the smallest and largest dependent
	// value.
	Extrema() (lo, hi P, err error)
	// MeasureUnder returns the absolute area (curves) or volume (surfaces)
	// between the object and base.
	MeasureUnder(base decimal.Decimal) (decimal.Decimal, error)
}

// InterpolationType selects an interpolation method.
type InterpolationType uint8

const (
	Linear InterpolationType = iota
	Bilinear
	Cubic
	Spline
)

func (kind InterpolationType) String() string {
	switch kind {
	case Linear:
		return "linear"
	case Bilinear:
		return "bilinear"
	case Cubic:
		return "cubic"
	case Spline:
		return "spline"
	default:
		return fmt.Sprintf("InterpolationType(%d)", kind)
	}
}

func (kind InterpolationType) valid() bool {
	return kind <= Spline
}

// MergeOperation is the point-wise operation applied by merges.
type MergeOperation uint8

const (
	Add MergeOperation = iota
	// Subtract subtracts all following operands from the first.
	Subtract
	Multiply
	// Divide divides the first operand by all following operands.
	Divide
	Max
	Min
)

func (op MergeOperation) String() string {
	switch op {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	case Max:
		return "max"
	case Min:
		return "min"
	default:
		return fmt.Sprintf("MergeOperation(%d)", op)
	}
}

// ConstructionMethod describes how to produce the points of a new object. It
// is consumed by [ConstructCurve] and [ConstructSurface] and not retained.
//
// The implementations are [FromData], [CurveParametric] and
// [SurfaceParametric].
type ConstructionMethod[P any] interface {
	generate() ([]P, error)
}

// FromData constructs an object from explicit points.
type FromData[P any] struct {
	Points []P
}

func (m FromData[P]) generate() ([]P, error) {
	if len(m.Points) == 0 {
		return nil, ErrEmptyPoints
	}
	return m.Points, nil
}

// CurveParametric samples F at Steps+1 evenly spaced parameters in
// [Start, End].
type CurveParametric struct {
	F     func(t decimal.Decimal) (Point2D, error)
	Start decimal.Decimal
	End   decimal.Decimal
	Steps int
}

func (m CurveParametric) generate() ([]Point2D, error) {
	if m.F == nil {
		return nil, errors.Wrap(ErrInvalidParameters, "no generator")
	}
	ts, err := steps(m.Start, m.End, m.Steps)
	if err != nil {
		return nil, err
	}
	out := make([]Point2D, 0, len(ts))
	for _, t := range ts {
		pt, err := m.F(t)
		if err != nil {
			return nil, errors.Wrapf(err, "generator failed at t=%s", t)
		}
		out = append(out, pt)
	}
	Logger().Debug("sampled parametric curve",
		zap.Stringer("start", m.Start),
		zap.Stringer("end", m.End),
		zap.Int("points", len(out)))
	return out, nil
}

// SurfaceParametric samples F on a grid of (XSteps+1)×(YSteps+1) evenly
// spaced coordinates in [XStart, XEnd]×[YStart, YEnd].
type SurfaceParametric struct {
	F      func(x, y decimal.Decimal) (Point3D, error)
	XStart decimal.Decimal
	XEnd   decimal.Decimal
	YStart decimal.Decimal
	YEnd   decimal.Decimal
	XSteps int
	YSteps int
}

func (m SurfaceParametric) generate() ([]Point3D, error) {
	if m.F == nil {
		return nil, errors.Wrap(ErrInvalidParameters, "no generator")
	}
	xs, err := steps(m.XStart, m.XEnd, m.XSteps)
	if err != nil {
		return nil, errors.WithMessage(err, "x")
	}
	ys, err := steps(m.YStart, m.YEnd, m.YSteps)
	if err != nil {
		return nil, errors.WithMessage(err, "y")
	}
	out := make([]Point3D, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			pt, err := m.F(x, y)
			if err != nil {
				return nil, errors.Wrapf(err, "generator failed at (%s, %s)", x, y)
			}
			out = append(out, pt)
		}
	}
	Logger().Debug("sampled parametric surface",
		zap.Int("x_steps", m.XSteps),
		zap.Int("y_steps", m.YSteps),
		zap.Int("points", len(out)))
	return out, nil
}

// steps returns n+1 evenly spaced values from start to end, inclusive.
func steps(start, end decimal.Decimal, n int) ([]decimal.Decimal, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameters, "step count %d", n)
	}
	if !end.GreaterThan(start) {
		return nil, errors.Wrapf(ErrInvalidParameters, "empty domain [%s, %s]", start, end)
	}
	size := div(end.Sub(start), decimal.NewFromInt(int64(n)))
	out := make([]decimal.Decimal, n+1)
	for i := range n {
		out[i] = start.Add(size.Mul(decimal.NewFromInt(int64(i))))
	}
	// Avoid accumulating rounding error in the last sample.
	out[n] = end
	return out, nil
}
