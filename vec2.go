package geometrics

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Vec2 struct {
	X decimal.Decimal
	Y decimal.Decimal
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y decimal.Decimal) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%s, %s⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) decimal.Decimal {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y))
}

// Cross returns the cross product of v and o.
func (v Vec2) Cross(o Vec2) decimal.Decimal {
	return v.X.Mul(o.Y).Sub(v.Y.Mul(o.X))
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec2) Hypot2() decimal.Decimal {
	return v.Dot(v)
}

func (v Vec2) Mul(f decimal.Decimal) Vec2 {
	return Vec2{X: v.X.Mul(f), Y: v.Y.Mul(f)}
}
