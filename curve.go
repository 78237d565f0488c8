package geometrics

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	_ GeometricObject[Point2D]                               = (*Curve)(nil)
	_ Interpolator[Point2D, decimal.Decimal]                 = (*Curve)(nil)
	_ MergeAxisInterpolate[*Curve, Point2D, decimal.Decimal] = (*Curve)(nil)
	_ Arithmetic[*Curve]                                     = (*Curve)(nil)
	_ MetricsExtractor[Point2D]                              = (*Curve)(nil)
	_ GeometricTransformations[*Curve, Point2D]              = (*Curve)(nil)
)

// Curve is an ordered set of 2D samples y = f(x). Points are kept sorted by x,
// then y, without duplicates. A curve may sample more than one y at the same
// x; see [Curve.MultiValued].
//
// Curves are immutable. All operations return new values.
type Curve struct {
	points []Point2D
	bbox   Rect
	multi  bool
}

// NewCurve returns a curve through the given points. The points are sorted
// and exact duplicates are dropped.
func NewCurve(points ...Point2D) *Curve {
	return newCurve(normalize(points))
}

// CurveFromVector builds a curve from any type convertible into points.
func CurveFromVector[T Point2DConverter](items []T) *Curve {
	pts := make([]Point2D, len(items))
	for i, it := range items {
		pts[i] = it.ToPoint2D()
	}
	return newCurve(normalize(pts))
}

// ConstructCurve builds a curve with the given construction method.
func ConstructCurve(method ConstructionMethod[Point2D]) (*Curve, error) {
	if method == nil {
		return nil, &ConstructionError{ShapeCurve, errors.Wrap(ErrInvalidParameters, "no construction method")}
	}
	pts, err := method.generate()
	if err != nil {
		return nil, &ConstructionError{ShapeCurve, err}
	}
	c := NewCurve(pts...)
	Logger().Debug("constructed curve", zap.Int("points", c.Len()), zap.Stringer("bbox", c.bbox))
	return c, nil
}

// newCurve takes ownership of pts, which must already be sorted and free of
// duplicates.
func newCurve(pts []Point2D) *Curve {
	c := &Curve{points: pts, bbox: rectOf(pts)}
	for i := 1; i < len(pts); i++ {
		if pts[i].X.Equal(pts[i-1].X) {
			c.multi = true
			break
		}
	}
	return c
}

// normalize returns a sorted copy of pts without duplicates.
func normalize[P interface{ Cmp(P) int }](pts []P) []P {
	out := slices.Clone(pts)
	slices.SortFunc(out, func(a, b P) int { return a.Cmp(b) })
	return slices.CompactFunc(out, func(a, b P) bool { return a.Cmp(b) == 0 })
}

func (c *Curve) Points() iter.Seq[Point2D] {
	return func(yield func(Point2D) bool) {
		for _, pt := range c.points {
			if !yield(pt) {
				return
			}
		}
	}
}

func (c *Curve) Vector() []Point2D { return slices.Clone(c.points) }
func (c *Curve) Len() int          { return len(c.points) }
func (c *Curve) At(i int) Point2D  { return c.points[i] }

// Clone returns an independent copy of c.
func (c *Curve) Clone() *Curve {
	return &Curve{points: slices.Clone(c.points), bbox: c.bbox, multi: c.multi}
}

// MultiValued reports whether the curve samples more than one y at some x.
func (c *Curve) MultiValued() bool { return c.multi }

// BoundingBox returns the extent of the curve. It is the zero rectangle for
// an empty curve.
func (c *Curve) BoundingBox() Rect { return c.bbox }

// XRange returns the smallest and largest x of the curve.
func (c *Curve) XRange() (lo, hi decimal.Decimal) { return c.bbox.X0, c.bbox.X1 }

// YRange returns the smallest and largest y of the curve.
func (c *Curve) YRange() (lo, hi decimal.Decimal) { return c.bbox.Y0, c.bbox.Y1 }

func (c *Curve) String() string {
	var sb strings.Builder
	sb.WriteString("Curve{")
	for i, pt := range c.points {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, pt)
	}
	sb.WriteString("}")
	return sb.String()
}

// Equal reports whether both curves contain numerically equal points.
func (c *Curve) Equal(o *Curve) bool {
	return slices.EqualFunc(c.points, o.points, Point2D.Equal)
}

// search returns the index of the first point with X >= x, and whether that
// point lies exactly at x.
func (c *Curve) search(x decimal.Decimal) (int, bool) {
	return slices.BinarySearchFunc(c.points, x, func(pt Point2D, x decimal.Decimal) int {
		return pt.X.Cmp(x)
	})
}

// FindBracketPoints returns the indices of two consecutive samples with
// distinct x such that points[i].X <= x <= points[j].X.
func (c *Curve) FindBracketPoints(x decimal.Decimal) (i, j int, err error) {
	n := len(c.points)
	if n < 2 {
		return 0, 0, errors.Wrapf(ErrInsufficientPoints, "have %d, need 2", n)
	}
	if x.LessThan(c.bbox.X0) || x.GreaterThan(c.bbox.X1) {
		return 0, 0, errors.Wrapf(ErrOutOfRange, "x range is [%s, %s]", c.bbox.X0, c.bbox.X1)
	}
	j, _ = c.search(x)
	if j > 0 {
		return j - 1, j, nil
	}
	// x is the smallest sample; pair it with the next distinct x.
	for j = 1; j < n; j++ {
		if c.points[j].X.GreaterThan(x) {
			return 0, j, nil
		}
	}
	return 0, 0, errors.Wrap(ErrBracketNotFound, "all samples share one x")
}

func (c *Curve) ContainsPoint(x decimal.Decimal) bool {
	_, ok := c.search(x)
	return ok
}

func (c *Curve) IndexValues() []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(c.points))
	for i, pt := range c.points {
		if i > 0 && pt.X.Equal(c.points[i-1].X) {
			continue
		}
		out = append(out, pt.X)
	}
	return out
}

func (c *Curve) Values(x decimal.Decimal) []decimal.Decimal {
	i, ok := c.search(x)
	if !ok {
		return nil
	}
	var out []decimal.Decimal
	for ; i < len(c.points) && c.points[i].X.Equal(x); i++ {
		out = append(out, c.points[i].Y)
	}
	return out
}

func (c *Curve) Point(x decimal.Decimal) (Point2D, bool) {
	i, ok := c.search(x)
	if !ok {
		return Point2D{}, false
	}
	return c.points[i], true
}

// ClosestPoint returns the sample whose x is nearest to x. Ties resolve to the
// smaller x.
func (c *Curve) ClosestPoint(x decimal.Decimal) (Point2D, error) {
	if len(c.points) == 0 {
		return Point2D{}, &AxisError{ShapeCurve, ErrNoPoints}
	}
	j, ok := c.search(x)
	switch {
	case ok:
		return c.points[j], nil
	case j == 0:
		return c.points[0], nil
	case j == len(c.points):
		return c.points[j-1], nil
	}
	// Report the first sample of the run below x, like Point does.
	lo, hi := c.points[j-1], c.points[j]
	if hi.X.Sub(x).LessThan(x.Sub(lo.X)) {
		return hi, nil
	}
	i, _ := c.search(lo.X)
	return c.points[i], nil
}

func (c *Curve) MergeIndexes(keys []decimal.Decimal) []decimal.Decimal {
	return unionKeys(nil, c.IndexValues(), keys)
}

func (c *Curve) MergeAxisIndex(other *Curve) []decimal.Decimal {
	return c.MergeIndexes(other.IndexValues())
}

func (c *Curve) MergeAxisInterpolate(other *Curve, kind InterpolationType) (*Curve, *Curve, error) {
	if !kind.valid() {
		return nil, nil, &AxisError{ShapeCurve, errors.Wrapf(ErrInvalidParameters, "interpolation type %d", kind)}
	}
	return alignPair(curveOps, c, other, kind)
}

func (c *Curve) MergeWith(other *Curve, op MergeOperation, opts ...MergeOption) (*Curve, error) {
	return MergeCurves([]*Curve{c, other}, op, opts...)
}

// Translate moves the curve by (dx, dy).
func (c *Curve) Translate(deltas ...decimal.Decimal) (*Curve, error) {
	if len(deltas) != 2 {
		return nil, &TransformError{ShapeCurve, "translate", errors.Wrapf(ErrIncompatibleDimensions, "got %d deltas, need 2", len(deltas))}
	}
	return c.Transform(Translate(Vec(deltas[0], deltas[1]))), nil
}

// Scale scales the curve by (sx, sy) around the origin.
func (c *Curve) Scale(factors ...decimal.Decimal) (*Curve, error) {
	if len(factors) != 2 {
		return nil, &TransformError{ShapeCurve, "scale", errors.Wrapf(ErrIncompatibleDimensions, "got %d factors, need 2", len(factors))}
	}
	return c.Transform(Scale(factors[0], factors[1])), nil
}

// Transform applies aff to every point.
func (c *Curve) Transform(aff Affine) *Curve {
	pts := make([]Point2D, len(c.points))
	for i, pt := range c.points {
		pts[i] = pt.Transform(aff)
	}
	return NewCurve(pts...)
}

// IntersectWith returns the points where both curves meet within their
// shared x range. The curves are aligned with linear interpolation first.
// Samples whose values differ by at most the tolerance count as
// intersections, as do crossings between samples.
func (c *Curve) IntersectWith(other *Curve, opts ...IntersectOption) ([]Point2D, error) {
	cfg, err := newIntersectConfig(opts)
	if err != nil {
		return nil, &TransformError{ShapeCurve, "intersect", err}
	}
	a, b, err := c.MergeAxisInterpolate(other, Linear)
	if err != nil {
		if errors.Is(err, ErrDisjointDomains) {
			return nil, nil
		}
		return nil, err
	}
	var out []Point2D
	sign := func(k int) int {
		d := a.points[k].Y.Sub(b.points[k].Y)
		if d.Abs().LessThanOrEqual(cfg.tolerance) {
			return 0
		}
		return d.Sign()
	}
	for k := range a.points {
		s := sign(k)
		if s == 0 {
			out = append(out, a.points[k])
			continue
		}
		if k+1 < len(a.points) && sign(k+1) == -s {
			la := Line{a.points[k], a.points[k+1]}
			lb := Line{b.points[k], b.points[k+1]}
			if _, ok := la.BoundingBox().Intersect(lb.BoundingBox()); !ok {
				continue
			}
			if pt, ok := la.Intersect(lb); ok {
				out = append(out, pt)
			}
		}
	}
	return normalize(out), nil
}

// DerivativeAt returns dy/dx at p.X. At interior samples the slopes of both
// adjacent segments are averaged.
func (c *Curve) DerivativeAt(p Point2D) ([]decimal.Decimal, error) {
	x := p.X
	i, j, err := c.FindBracketPoints(x)
	if err != nil {
		return nil, &TransformError{ShapeCurve, "derivative", err}
	}
	slope := func(a, b int) decimal.Decimal {
		s, _ := Line{c.points[a], c.points[b]}.Slope()
		return s
	}
	lo, ok := c.search(x)
	if !ok {
		return []decimal.Decimal{slope(i, j)}, nil
	}
	hi := lo
	for hi+1 < len(c.points) && c.points[hi+1].X.Equal(x) {
		hi++
	}
	switch {
	case lo == 0:
		return []decimal.Decimal{slope(hi, hi+1)}, nil
	case hi == len(c.points)-1:
		return []decimal.Decimal{slope(lo-1, lo)}, nil
	default:
		return []decimal.Decimal{div(slope(lo-1, lo).Add(slope(hi, hi+1)), two)}, nil
	}
}

// Extrema returns the samples with the smallest and largest y.
func (c *Curve) Extrema() (lo, hi Point2D, err error) {
	if len(c.points) == 0 {
		return Point2D{}, Point2D{}, &TransformError{ShapeCurve, "extrema", ErrNoPoints}
	}
	lo, hi = c.points[0], c.points[0]
	for _, pt := range c.points[1:] {
		if pt.Y.LessThan(lo.Y) {
			lo = pt
		}
		if pt.Y.GreaterThan(hi.Y) {
			hi = pt
		}
	}
	return lo, hi, nil
}

// MeasureUnder returns the absolute area between the curve and the
// horizontal line y = base, using the trapezoid rule. Curves with fewer than
// two samples have no area.
func (c *Curve) MeasureUnder(base decimal.Decimal) (decimal.Decimal, error) {
	area := decimal.Zero
	for k := 1; k < len(c.points); k++ {
		p0, p1 := c.points[k-1], c.points[k]
		h := p0.Y.Sub(base).Add(p1.Y.Sub(base))
		area = area.Add(p1.X.Sub(p0.X).Mul(h))
	}
	return area.Mul(half).Abs(), nil
}
