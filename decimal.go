package geometrics

import (
	"iter"
	"math"

	"github.com/shopspring/decimal"
)

// DivisionPrecision is the number of fractional digits kept by divisions
// performed inside this package.
const DivisionPrecision = 28

var (
	two   = decimal.NewFromInt(2)
	three = decimal.NewFromInt(3)
	four  = decimal.NewFromInt(4)
	five  = decimal.NewFromInt(5)
	six   = decimal.NewFromInt(6)
	half  = decimal.New(5, -1)
)

// div divides a by b, rounding to DivisionPrecision digits. Callers must
// ensure b is not zero.
func div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, DivisionPrecision)
}

// sqrt computes the square root of a non-negative decimal with Newton's
// method, seeded from the float64 estimate. Values outside the float64 range
// are seeded from their decimal exponent instead.
func sqrt(d decimal.Decimal) decimal.Decimal {
	if d.Sign() <= 0 {
		return decimal.Zero
	}
	var x decimal.Decimal
	if f := math.Sqrt(d.InexactFloat64()); f > 0 && !math.IsInf(f, 0) {
		x = decimal.NewFromFloat(f)
	} else {
		digits := d.Exponent() + int32(len(d.Coefficient().String()))
		x = decimal.New(1, digits/2)
	}
	eps := decimal.New(1, -DivisionPrecision+4)
	for range 64 {
		next := div(x.Add(div(d, x)), two)
		if next.Sub(x).Abs().LessThanOrEqual(eps) {
			return next
		}
		x = next
	}
	return x
}

// CalculateRange returns the smallest and largest value of seq in a single
// pass. The result is undefined (both zero) for an empty sequence; callers
// must guard against that case.
func CalculateRange(seq iter.Seq[decimal.Decimal]) (lo, hi decimal.Decimal) {
	first := true
	for v := range seq {
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		if v.LessThan(lo) {
			lo = v
		}
		if v.GreaterThan(hi) {
			hi = v
		}
	}
	return lo, hi
}

func sum(values []decimal.Decimal) decimal.Decimal {
	s := decimal.Zero
	for _, v := range values {
		s = s.Add(v)
	}
	return s
}

func mean(values []decimal.Decimal) decimal.Decimal {
	return div(sum(values), decimal.NewFromInt(int64(len(values))))
}
