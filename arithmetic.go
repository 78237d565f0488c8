package geometrics

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MergeCurves combines curves point-wise with op. The result is sampled at
// the union of all x coordinates within the x range shared by every curve.
// Values that a curve doesn't sample are interpolated, linearly unless
// overridden with [WithInterpolation].
//
// A single curve is returned as a copy. Subtract and Divide apply the
// operation left to right, starting with the first curve.
func MergeCurves(curves []*Curve, op MergeOperation, opts ...MergeOption) (*Curve, error) {
	return merge(curveOps, curves, op, opts)
}

// MergeSurfaces is like [MergeCurves] for surfaces. The result is sampled at
// the union of all (x, y) coordinates within the rectangle shared by every
// surface. Missing values are interpolated with [Bilinear] unless overridden.
func MergeSurfaces(surfaces []*Surface, op MergeOperation, opts ...MergeOption) (*Surface, error) {
	return merge(surfaceOps, surfaces, op, opts)
}

func merge[T sampled[P, K], P any, K Coordinate[K]](ops shapeOps[T, P, K], objs []T, op MergeOperation, opts []MergeOption) (T, error) {
	var zero T
	fail := func(err error) (T, error) {
		return zero, &ArithmeticError{Shape: ops.shape, Op: op, Err: err}
	}
	if op > Min {
		return fail(errors.Wrapf(ErrInvalidParameters, "operation %d", op))
	}
	cfg, err := newMergeConfig(ops.defaultKind, opts)
	if err != nil {
		return fail(err)
	}
	switch len(objs) {
	case 0:
		return fail(ErrEmptyMerge)
	case 1:
		return ops.build(objs[0].Vector()), nil
	}

	keys, values, domainErr, err := align(ops, objs, cfg.interpolation)
	if domainErr != nil {
		return fail(domainErr)
	}
	if err != nil {
		return zero, err
	}
	pts := make([]P, len(keys))
	operands := make([]decimal.Decimal, len(objs))
	for j, k := range keys {
		for i := range objs {
			operands[i] = values[i][j]
		}
		v, err := combine(op, operands)
		if err != nil {
			return fail(errors.WithMessagef(err, "at %v", k))
		}
		pts[j] = ops.point(k, v)
	}
	Logger().Debug("merged objects",
		zap.Stringer("shape", ops.shape),
		zap.Stringer("op", op),
		zap.Int("points", len(pts)))
	return ops.build(pts), nil
}

// combine folds operands with op from left to right.
func combine(op MergeOperation, operands []decimal.Decimal) (decimal.Decimal, error) {
	acc := operands[0]
	for _, v := range operands[1:] {
		switch op {
		case Add:
			acc = acc.Add(v)
		case Subtract:
			acc = acc.Sub(v)
		case Multiply:
			acc = acc.Mul(v)
		case Divide:
			if v.IsZero() {
				return decimal.Zero, ErrDivisionByZero
			}
			acc = div(acc, v)
		case Max:
			acc = decimal.Max(acc, v)
		case Min:
			acc = decimal.Min(acc, v)
		}
	}
	return acc, nil
}
