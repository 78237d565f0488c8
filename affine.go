package geometrics

import (
	"github.com/shopspring/decimal"
)

// Affine describes an affine transform of the plane via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 decimal.Decimal
}

// Identity is the identity transform.
var Identity = Affine{decimal.NewFromInt(1), decimal.Zero, decimal.Zero, decimal.NewFromInt(1), decimal.Zero, decimal.Zero}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y decimal.Decimal) Affine {
	return Affine{x, decimal.Zero, decimal.Zero, y, decimal.Zero, decimal.Zero}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{decimal.NewFromInt(1), decimal.Zero, decimal.Zero, decimal.NewFromInt(1), v.X, v.Y}
}

// Coefficients returns the the coefficients of the transform.
func (aff Affine) Coefficients() [6]decimal.Decimal {
	return [6]decimal.Decimal{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		N0: aff.N0.Mul(o.N0).Add(aff.N2.Mul(o.N1)),
		N1: aff.N1.Mul(o.N0).Add(aff.N3.Mul(o.N1)),
		N2: aff.N0.Mul(o.N2).Add(aff.N2.Mul(o.N3)),
		N3: aff.N1.Mul(o.N2).Add(aff.N3.Mul(o.N3)),
		N4: aff.N0.Mul(o.N4).Add(aff.N2.Mul(o.N5)).Add(aff.N4),
		N5: aff.N1.Mul(o.N4).Add(aff.N3.Mul(o.N5)).Add(aff.N5),
	}
}

// ThenTranslate returns a new transform that applies aff and then translates by v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 = aff.N4.Add(v.X)
	aff.N5 = aff.N5.Add(v.Y)
	return aff
}

// ThenScale returns a new transform that applies aff and then scales
// non-uniformly by x and y.
func (aff Affine) ThenScale(x, y decimal.Decimal) Affine {
	return Scale(x, y).Mul(aff)
}

// Determinant returns the determinant of the linear part of the transform.
func (aff Affine) Determinant() decimal.Decimal {
	return aff.N0.Mul(aff.N3).Sub(aff.N1.Mul(aff.N2))
}

// IsIdentity reports whether the transform leaves every point unchanged.
func (aff Affine) IsIdentity() bool {
	c := aff.Coefficients()
	id := Identity.Coefficients()
	for i := range c {
		if !c[i].Equal(id[i]) {
			return false
		}
	}
	return true
}
