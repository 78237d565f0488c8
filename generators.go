package geometrics

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// LinearCurve samples y = slope·x + intercept at steps+1 evenly spaced x in
// [start, end].
func LinearCurve(start, end, slope, intercept decimal.Decimal, steps int) (*Curve, error) {
	return ConstructCurve(CurveParametric{
		F: func(t decimal.Decimal) (Point2D, error) {
			return Pt(t, slope.Mul(t).Add(intercept)), nil
		},
		Start: start,
		End:   end,
		Steps: steps,
	})
}

// ConstantCurve samples y = value at steps+1 evenly spaced x in
// [start, end].
func ConstantCurve(start, end, value decimal.Decimal, steps int) (*Curve, error) {
	return LinearCurve(start, end, decimal.Zero, value, steps)
}

// Grid describes the sampling grid of the surface generators.
type Grid struct {
	XStart, XEnd decimal.Decimal
	YStart, YEnd decimal.Decimal
	// Steps is the number of intervals along each axis.
	Steps int
}

func (g Grid) sample(f func(x, y decimal.Decimal) decimal.Decimal) (*Surface, error) {
	return ConstructSurface(SurfaceParametric{
		F: func(x, y decimal.Decimal) (Point3D, error) {
			return Point3D{X: x, Y: y, Z: f(x, y)}, nil
		},
		XStart: g.XStart,
		XEnd:   g.XEnd,
		YStart: g.YStart,
		YEnd:   g.YEnd,
		XSteps: g.Steps,
		YSteps: g.Steps,
	})
}

// PlanarSurface samples the plane a·x + b·y + c·z + d = 0 on g, where
// (a, b, c) is normal. c must not be zero.
func PlanarSurface(g Grid, normal [3]decimal.Decimal, d decimal.Decimal) (*Surface, error) {
	a, b, c := normal[0], normal[1], normal[2]
	if c.IsZero() {
		return nil, &ConstructionError{ShapeSurface, errors.Wrap(ErrInvalidParameters, "plane is parallel to the z axis")}
	}
	return g.sample(func(x, y decimal.Decimal) decimal.Decimal {
		return div(a.Mul(x).Add(b.Mul(y)).Add(d), c).Neg()
	})
}

// ConstantSurface samples z = height on g.
func ConstantSurface(g Grid, height decimal.Decimal) (*Surface, error) {
	return g.sample(func(x, y decimal.Decimal) decimal.Decimal { return height })
}

// ParaboloidSurface samples z = a·x² + b·y² on g.
func ParaboloidSurface(g Grid, a, b decimal.Decimal) (*Surface, error) {
	return g.sample(func(x, y decimal.Decimal) decimal.Decimal {
		return a.Mul(x).Mul(x).Add(b.Mul(y).Mul(y))
	})
}
