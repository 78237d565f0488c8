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
	_ GeometricObject[Point3D]                         = (*Surface)(nil)
	_ Interpolator[Point3D, Point2D]                   = (*Surface)(nil)
	_ MergeAxisInterpolate[*Surface, Point3D, Point2D] = (*Surface)(nil)
	_ Arithmetic[*Surface]                             = (*Surface)(nil)
	_ MetricsExtractor[Point3D]                        = (*Surface)(nil)
	_ GeometricTransformations[*Surface, Point3D]      = (*Surface)(nil)
)

// Axis names a coordinate axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", a)
	}
}

// Surface is an ordered set of 3D samples z = f(x, y). Points are kept
// sorted by x, y, then z, without duplicates. The samples need not lie on a
// regular grid.
//
// Surfaces are immutable. All operations return new values.
type Surface struct {
	points []Point3D
	// domain is the bounding box of the (x, y) coordinates.
	domain Rect
	multi  bool
}

// NewSurface returns a surface through the given points. The points are
// sorted and exact duplicates are dropped.
func NewSurface(points ...Point3D) *Surface {
	return newSurface(normalize(points))
}

// SurfaceFromVector builds a surface from any type convertible into points.
func SurfaceFromVector[T Point3DConverter](items []T) *Surface {
	pts := make([]Point3D, len(items))
	for i, it := range items {
		pts[i] = it.ToPoint3D()
	}
	return newSurface(normalize(pts))
}

// ConstructSurface builds a surface with the given construction method.
func ConstructSurface(method ConstructionMethod[Point3D]) (*Surface, error) {
	if method == nil {
		return nil, &ConstructionError{ShapeSurface, errors.Wrap(ErrInvalidParameters, "no construction method")}
	}
	pts, err := method.generate()
	if err != nil {
		return nil, &ConstructionError{ShapeSurface, err}
	}
	s := NewSurface(pts...)
	Logger().Debug("constructed surface", zap.Int("points", s.Len()), zap.Stringer("domain", s.domain))
	return s, nil
}

func newSurface(pts []Point3D) *Surface {
	s := &Surface{points: pts}
	for i, pt := range pts {
		if i == 0 {
			s.domain = NewRectFromPoints(pt.XY(), pt.XY())
			continue
		}
		s.domain = s.domain.UnionPoint(pt.XY())
		if pt.XY().Equal(pts[i-1].XY()) {
			s.multi = true
		}
	}
	return s
}

func (s *Surface) Points() iter.Seq[Point3D] {
	return func(yield func(Point3D) bool) {
		for _, pt := range s.points {
			if !yield(pt) {
				return
			}
		}
	}
}

func (s *Surface) Vector() []Point3D { return slices.Clone(s.points) }
func (s *Surface) Len() int          { return len(s.points) }
func (s *Surface) At(i int) Point3D  { return s.points[i] }

func (s *Surface) Clone() *Surface {
	return &Surface{points: slices.Clone(s.points), domain: s.domain, multi: s.multi}
}

// MultiValued reports whether the surface samples more than one z at some
// (x, y).
func (s *Surface) MultiValued() bool { return s.multi }

// Domain returns the bounding box of the (x, y) coordinates.
func (s *Surface) Domain() Rect { return s.domain }

func (s *Surface) XRange() (lo, hi decimal.Decimal) { return s.domain.X0, s.domain.X1 }
func (s *Surface) YRange() (lo, hi decimal.Decimal) { return s.domain.Y0, s.domain.Y1 }

// ZRange returns the smallest and largest z of the surface.
func (s *Surface) ZRange() (lo, hi decimal.Decimal) {
	return CalculateRange(func(yield func(decimal.Decimal) bool) {
		for _, pt := range s.points {
			if !yield(pt.Z) {
				return
			}
		}
	})
}

func (s *Surface) String() string {
	var sb strings.Builder
	sb.WriteString("Surface{")
	for i, pt := range s.points {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, pt)
	}
	sb.WriteString("}")
	return sb.String()
}

func (s *Surface) Equal(o *Surface) bool {
	return slices.EqualFunc(s.points, o.points, Point3D.Equal)
}

// Curve projects the surface onto the plane perpendicular to axis. Dropping
// [AxisX] yields the curve of (y, z), dropping [AxisY] the curve of (x, z),
// and dropping [AxisZ] the curve of (x, y).
func (s *Surface) Curve(axis Axis) (*Curve, error) {
	pts := make([]Point2D, len(s.points))
	for i, pt := range s.points {
		switch axis {
		case AxisX:
			pts[i] = Pt(pt.Y, pt.Z)
		case AxisY:
			pts[i] = Pt(pt.X, pt.Z)
		case AxisZ:
			pts[i] = Pt(pt.X, pt.Y)
		default:
			return nil, &TransformError{ShapeSurface, "projection", errors.Wrapf(ErrInvalidParameters, "axis %d", axis)}
		}
	}
	return NewCurve(pts...), nil
}

func (s *Surface) search(k Point2D) (int, bool) {
	return slices.BinarySearchFunc(s.points, k, func(pt Point3D, k Point2D) int {
		return pt.XY().Cmp(k)
	})
}

func (s *Surface) ContainsPoint(k Point2D) bool {
	_, ok := s.search(k)
	return ok
}

func (s *Surface) IndexValues() []Point2D {
	out := make([]Point2D, 0, len(s.points))
	for i, pt := range s.points {
		if i > 0 && pt.XY().Equal(s.points[i-1].XY()) {
			continue
		}
		out = append(out, pt.XY())
	}
	return out
}

func (s *Surface) Values(k Point2D) []decimal.Decimal {
	i, ok := s.search(k)
	if !ok {
		return nil
	}
	var out []decimal.Decimal
	for ; i < len(s.points) && s.points[i].XY().Equal(k); i++ {
		out = append(out, s.points[i].Z)
	}
	return out
}

func (s *Surface) Point(k Point2D) (Point3D, bool) {
	i, ok := s.search(k)
	if !ok {
		return Point3D{}, false
	}
	return s.points[i], true
}

// ClosestPoint returns the sample whose (x, y) is nearest to k by Euclidean
// distance. Ties resolve to the sample that sorts first.
func (s *Surface) ClosestPoint(k Point2D) (Point3D, error) {
	if len(s.points) == 0 {
		return Point3D{}, &AxisError{ShapeSurface, ErrNoPoints}
	}
	best := s.points[0]
	bestD := best.XY().DistanceSquared(k)
	for _, pt := range s.points[1:] {
		if d := pt.XY().DistanceSquared(k); d.LessThan(bestD) {
			best, bestD = pt, d
		}
	}
	return best, nil
}

func (s *Surface) MergeIndexes(keys []Point2D) []Point2D {
	return unionKeys(nil, s.IndexValues(), keys)
}

func (s *Surface) MergeAxisIndex(other *Surface) []Point2D {
	return s.MergeIndexes(other.IndexValues())
}

func (s *Surface) MergeAxisInterpolate(other *Surface, kind InterpolationType) (*Surface, *Surface, error) {
	if !kind.valid() {
		return nil, nil, &AxisError{ShapeSurface, errors.Wrapf(ErrInvalidParameters, "interpolation type %d", kind)}
	}
	return alignPair(surfaceOps, s, other, kind)
}

func (s *Surface) MergeWith(other *Surface, op MergeOperation, opts ...MergeOption) (*Surface, error) {
	return MergeSurfaces([]*Surface{s, other}, op, opts...)
}

// Translate moves the surface by (dx, dy, dz).
func (s *Surface) Translate(deltas ...decimal.Decimal) (*Surface, error) {
	if len(deltas) != 3 {
		return nil, &TransformError{ShapeSurface, "translate", errors.Wrapf(ErrIncompatibleDimensions, "got %d deltas, need 3", len(deltas))}
	}
	aff := Translate(Vec(deltas[0], deltas[1]))
	return s.mapPoints(func(pt Point3D) Point3D {
		xy := pt.XY().Transform(aff)
		return Point3D{X: xy.X, Y: xy.Y, Z: pt.Z.Add(deltas[2])}
	}), nil
}

// Scale scales the surface by (sx, sy, sz) around the origin.
func (s *Surface) Scale(factors ...decimal.Decimal) (*Surface, error) {
	if len(factors) != 3 {
		return nil, &TransformError{ShapeSurface, "scale", errors.Wrapf(ErrIncompatibleDimensions, "got %d factors, need 3", len(factors))}
	}
	aff := Scale(factors[0], factors[1])
	return s.mapPoints(func(pt Point3D) Point3D {
		xy := pt.XY().Transform(aff)
		return Point3D{X: xy.X, Y: xy.Y, Z: pt.Z.Mul(factors[2])}
	}), nil
}

func (s *Surface) mapPoints(fn func(Point3D) Point3D) *Surface {
	pts := make([]Point3D, len(s.points))
	for i, pt := range s.points {
		pts[i] = fn(pt)
	}
	return NewSurface(pts...)
}

// IntersectWith aligns both surfaces and returns the aligned points of s
// where the heights differ by at most the tolerance.
func (s *Surface) IntersectWith(other *Surface, opts ...IntersectOption) ([]Point3D, error) {
	cfg, err := newIntersectConfig(opts)
	if err != nil {
		return nil, &TransformError{ShapeSurface, "intersect", err}
	}
	a, b, err := s.MergeAxisInterpolate(other, Bilinear)
	if err != nil {
		if errors.Is(err, ErrDisjointDomains) {
			return nil, nil
		}
		return nil, err
	}
	var out []Point3D
	for k, pt := range a.points {
		if pt.Z.Sub(b.points[k].Z).Abs().LessThanOrEqual(cfg.tolerance) {
			out = append(out, pt)
		}
	}
	return out, nil
}

// DerivativeAt returns the partial derivatives (dz/dx, dz/dy) at p.XY(),
// taken from the plane through the three samples used by
// [Surface.BilinearInterpolate].
func (s *Surface) DerivativeAt(p Point3D) ([]decimal.Decimal, error) {
	tri, err := s.triangle(p.XY())
	if err != nil {
		return nil, &TransformError{ShapeSurface, "derivative", err}
	}
	dx, dy := tri.gradient()
	return []decimal.Decimal{dx, dy}, nil
}

// Extrema returns the samples with the smallest and largest z.
func (s *Surface) Extrema() (lo, hi Point3D, err error) {
	if len(s.points) == 0 {
		return Point3D{}, Point3D{}, &TransformError{ShapeSurface, "extrema", ErrNoPoints}
	}
	lo, hi = s.points[0], s.points[0]
	for _, pt := range s.points[1:] {
		if pt.Z.LessThan(lo.Z) {
			lo = pt
		}
		if pt.Z.GreaterThan(hi.Z) {
			hi = pt
		}
	}
	return lo, hi, nil
}

// MeasureUnder returns the absolute volume between the surface and the plane
// z = base. Each row of samples sharing a y is integrated over x with the
// trapezoid rule, and the row areas are then integrated over y.
func (s *Surface) MeasureUnder(base decimal.Decimal) (decimal.Decimal, error) {
	var ys, areas []decimal.Decimal
	for y, row := range s.rows() {
		rc := NewCurve(row...)
		a := decimal.Zero
		for k := 1; k < len(rc.points); k++ {
			p0, p1 := rc.points[k-1], rc.points[k]
			h := p0.Y.Sub(base).Add(p1.Y.Sub(base))
			a = a.Add(p1.X.Sub(p0.X).Mul(h))
		}
		ys = append(ys, y)
		areas = append(areas, a.Mul(half))
	}
	vol := decimal.Zero
	for k := 1; k < len(ys); k++ {
		vol = vol.Add(ys[k].Sub(ys[k-1]).Mul(areas[k-1].Add(areas[k])))
	}
	return vol.Mul(half).Abs(), nil
}

// rows yields the samples grouped by y in ascending order, each row as
// (x, z) points.
func (s *Surface) rows() iter.Seq2[decimal.Decimal, []Point2D] {
	return func(yield func(decimal.Decimal, []Point2D) bool) {
		byY := slices.Clone(s.points)
		slices.SortStableFunc(byY, func(a, b Point3D) int { return a.Y.Cmp(b.Y) })
		for len(byY) > 0 {
			n := 1
			for n < len(byY) && byY[n].Y.Equal(byY[0].Y) {
				n++
			}
			row := make([]Point2D, n)
			for k, pt := range byY[:n] {
				row[k] = Pt(pt.X, pt.Z)
			}
			if !yield(byY[0].Y, row) {
				return
			}
			byY = byY[n:]
		}
	}
}
