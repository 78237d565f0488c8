package geometrics

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// unionKeys returns the sorted union of all key sets, keeping only the keys
// for which keep reports true. A nil keep keeps everything.
func unionKeys[K Coordinate[K]](keep func(K) bool, sets ...[]K) []K {
	set := treeset.NewWith(func(a, b interface{}) int {
		return a.(K).Cmp(b.(K))
	})
	for _, keys := range sets {
		for _, k := range keys {
			if keep == nil || keep(k) {
				set.Add(k)
			}
		}
	}
	out := make([]K, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		out = append(out, it.Value().(K))
	}
	return out
}

// sampled is the subset of object behavior that alignment relies on.
type sampled[P any, K Coordinate[K]] interface {
	Len() int
	Vector() []P
	IndexValues() []K
	Point(k K) (P, bool)
	Interpolate(k K, kind InterpolationType) (P, error)
}

// shapeOps adapts alignment and merging to a concrete kind of object.
type shapeOps[T sampled[P, K], P any, K Coordinate[K]] struct {
	shape Shape
	// defaultKind is the interpolation used by merges unless overridden.
	defaultKind InterpolationType
	// domain returns the extent of the object's index coordinates. For
	// curves only the x interval is meaningful; y is collapsed to zero.
	domain func(T) Rect
	// covers reports whether a key lies within a domain.
	covers func(Rect, K) bool
	value  func(P) decimal.Decimal
	point  func(K, decimal.Decimal) P
	// build creates an object from points that are already sorted.
	build func([]P) T
}

var curveOps = shapeOps[*Curve, Point2D, decimal.Decimal]{
	shape:       ShapeCurve,
	defaultKind: Linear,
	domain:      func(c *Curve) Rect { return Rect{X0: c.bbox.X0, X1: c.bbox.X1} },
	covers:      func(r Rect, x decimal.Decimal) bool { return r.ContainsX(x) },
	value:       func(pt Point2D) decimal.Decimal { return pt.Y },
	point:       Pt,
	build:       newCurve,
}

var surfaceOps = shapeOps[*Surface, Point3D, Point2D]{
	shape:       ShapeSurface,
	defaultKind: Bilinear,
	domain:      func(s *Surface) Rect { return s.domain },
	covers:      Rect.Contains,
	value:       func(pt Point3D) decimal.Decimal { return pt.Z },
	point:       func(k Point2D, z decimal.Decimal) Point3D { return Point3D{X: k.X, Y: k.Y, Z: z} },
	build:       newSurface,
}

// align samples every object at the union of their coordinates within the
// shared domain. values[i][j] is the value of objs[i] at keys[j]. Domain
// failures are returned as bare reasons for the caller to wrap; interpolation
// failures are returned unchanged.
func align[T sampled[P, K], P any, K Coordinate[K]](ops shapeOps[T, P, K], objs []T, kind InterpolationType) (keys []K, values [][]decimal.Decimal, domainErr, err error) {
	var shared Rect
	for i, obj := range objs {
		if obj.Len() == 0 {
			return nil, nil, errors.Wrapf(ErrEmptyPoints, "operand %d", i), nil
		}
		r := ops.domain(obj)
		if i == 0 {
			shared = r
			continue
		}
		var ok bool
		if shared, ok = shared.Intersect(r); !ok {
			return nil, nil, errors.Wrapf(ErrDisjointDomains, "operand %d", i), nil
		}
	}

	sets := make([][]K, len(objs))
	for i, obj := range objs {
		sets[i] = obj.IndexValues()
	}
	keys = unionKeys(func(k K) bool { return ops.covers(shared, k) }, sets...)

	values = make([][]decimal.Decimal, len(objs))
	for i, obj := range objs {
		values[i] = make([]decimal.Decimal, len(keys))
		for j, k := range keys {
			if pt, ok := obj.Point(k); ok {
				values[i][j] = ops.value(pt)
				continue
			}
			pt, err := obj.Interpolate(k, kind)
			if err != nil {
				return nil, nil, nil, err
			}
			values[i][j] = ops.value(pt)
		}
	}
	Logger().Debug("aligned objects",
		zap.Stringer("shape", ops.shape),
		zap.Stringer("interpolation", kind),
		zap.Int("objects", len(objs)),
		zap.Int("keys", len(keys)))
	return keys, values, nil, nil
}

func alignPair[T sampled[P, K], P any, K Coordinate[K]](ops shapeOps[T, P, K], a, b T, kind InterpolationType) (T, T, error) {
	var zero T
	keys, values, domainErr, err := align(ops, []T{a, b}, kind)
	if domainErr != nil {
		return zero, zero, &AxisError{ops.shape, domainErr}
	}
	if err != nil {
		return zero, zero, err
	}
	out := make([]T, 2)
	for i := range out {
		pts := make([]P, len(keys))
		for j, k := range keys {
			pts[j] = ops.point(k, values[i][j])
		}
		out[i] = ops.build(pts)
	}
	return out[0], out[1], nil
}
