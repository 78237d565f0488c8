package geometrics

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Point2D is a sample of a curve. Points are ordered by x, then y.
type Point2D struct {
	X decimal.Decimal
	Y decimal.Decimal
}

// Pt returns the point (x, y).
func Pt(x, y decimal.Decimal) Point2D {
	return Point2D{X: x, Y: y}
}

// Pt2 converts x and y into a point. They may be decimals, integers, floats or
// numeric strings.
func Pt2(x, y any) (Point2D, error) {
	dx, err := toDecimal(x)
	if err != nil {
		return Point2D{}, err
	}
	dy, err := toDecimal(y)
	if err != nil {
		return Point2D{}, err
	}
	return Point2D{X: dx, Y: dy}, nil
}

// Point2DConverter is implemented by types that can be turned into a
// [Point2D], such as the points of a payoff table.
type Point2DConverter interface {
	ToPoint2D() Point2D
}

func (pt Point2D) ToPoint2D() Point2D { return pt }

func (pt Point2D) String() string {
	return fmt.Sprintf("(%s, %s)", pt.X, pt.Y)
}

// Cmp compares two points by x, then y. It returns -1, 0 or +1.
func (pt Point2D) Cmp(o Point2D) int {
	if c := pt.X.Cmp(o.X); c != 0 {
		return c
	}
	return pt.Y.Cmp(o.Y)
}

// Equal reports whether both coordinates are numerically equal.
func (pt Point2D) Equal(o Point2D) bool {
	return pt.Cmp(o) == 0
}

func (pt Point2D) Translate(v Vec2) Point2D {
	return Point2D{X: pt.X.Add(v.X), Y: pt.Y.Add(v.Y)}
}

func (pt Point2D) Transform(aff Affine) Point2D {
	return Point2D{
		X: aff.N0.Mul(pt.X).Add(aff.N2.Mul(pt.Y)).Add(aff.N4),
		Y: aff.N1.Mul(pt.X).Add(aff.N3.Mul(pt.Y)).Add(aff.N5),
	}
}

// Sub computes pt−o.
func (pt Point2D) Sub(o Point2D) Vec2 {
	return Vec2{X: pt.X.Sub(o.X), Y: pt.Y.Sub(o.Y)}
}

// Lerp linearly interpolates between two points.
func (pt Point2D) Lerp(o Point2D, t decimal.Decimal) Point2D {
	return pt.Translate(o.Sub(pt).Mul(t))
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point2D) DistanceSquared(o Point2D) decimal.Decimal {
	return pt.Sub(o).Hypot2()
}

// Point3D is a sample of a surface. Points are ordered by x, y, then z.
type Point3D struct {
	X decimal.Decimal
	Y decimal.Decimal
	Z decimal.Decimal
}

// Pt3 converts x, y and z into a point, accepting the same inputs as [Pt2].
func Pt3(x, y, z any) (Point3D, error) {
	xy, err := Pt2(x, y)
	if err != nil {
		return Point3D{}, err
	}
	dz, err := toDecimal(z)
	if err != nil {
		return Point3D{}, err
	}
	return Point3D{X: xy.X, Y: xy.Y, Z: dz}, nil
}

// Point3DConverter is implemented by types that can be turned into a
// [Point3D].
type Point3DConverter interface {
	ToPoint3D() Point3D
}

func (pt Point3D) ToPoint3D() Point3D { return pt }

func (pt Point3D) String() string {
	return fmt.Sprintf("(%s, %s, %s)", pt.X, pt.Y, pt.Z)
}

// Cmp compares two points by x, y, then z.
func (pt Point3D) Cmp(o Point3D) int {
	if c := pt.XY().Cmp(o.XY()); c != 0 {
		return c
	}
	return pt.Z.Cmp(o.Z)
}

func (pt Point3D) Equal(o Point3D) bool {
	return pt.Cmp(o) == 0
}

// XY returns the index coordinates of the point.
func (pt Point3D) XY() Point2D {
	return Point2D{X: pt.X, Y: pt.Y}
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch v := v.(type) {
	case decimal.Decimal:
		return v, nil
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, errors.New("nil decimal")
		}
		return *v, nil
	case float32, float64:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return decimal.Zero, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, errors.Wrapf(ErrInvalidParameters, "non-finite coordinate %v", f)
		}
		return decimal.NewFromFloat(f), nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(s)
}
