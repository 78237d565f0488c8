package geometrics

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares decimals and points up to eps. Points need their own
// comparers, as cmp prefers their Equal methods over field-wise comparison.
func approx(eps string) cmp.Options {
	e := d(eps)
	near := func(a, b decimal.Decimal) bool { return a.Sub(b).Abs().LessThanOrEqual(e) }
	return cmp.Options{
		cmp.Comparer(near),
		cmp.Comparer(func(a, b Point2D) bool { return near(a.X, b.X) && near(a.Y, b.Y) }),
		cmp.Comparer(func(a, b Point3D) bool { return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z) }),
	}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decs(vs ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vs))
	for i, v := range vs {
		out[i] = d(v)
	}
	return out
}

// curveOf builds a curve from x, y pairs.
func curveOf(t *testing.T, xy ...any) *Curve {
	t.Helper()
	return NewCurve(pointsOf(t, xy...)...)
}

func pointsOf(t *testing.T, xy ...any) []Point2D {
	t.Helper()
	require.Zero(t, len(xy)%2, "odd number of coordinates")
	pts := make([]Point2D, 0, len(xy)/2)
	for i := 0; i < len(xy); i += 2 {
		pt, err := Pt2(xy[i], xy[i+1])
		require.NoError(t, err)
		pts = append(pts, pt)
	}
	return pts
}

// surfaceOf builds a surface from x, y, z triples.
func surfaceOf(t *testing.T, xyz ...any) *Surface {
	t.Helper()
	require.Zero(t, len(xyz)%3, "coordinates must come in triples")
	pts := make([]Point3D, 0, len(xyz)/3)
	for i := 0; i < len(xyz); i += 3 {
		pt, err := Pt3(xyz[i], xyz[i+1], xyz[i+2])
		require.NoError(t, err)
		pts = append(pts, pt)
	}
	return NewSurface(pts...)
}

func pt(x, y string) Point2D { return Pt(d(x), d(y)) }

func pt3(x, y, z string) Point3D { return Point3D{X: d(x), Y: d(y), Z: d(z)} }
