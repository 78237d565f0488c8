package geometrics

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSqrt(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"0", "0"},
		{"-4", "0"},
		{"4", "2"},
		{"2", "1.4142135623730950488016887242"},
		{"0.0001", "0.01"},
		{"1e20", "1e10"},
		{"4e400", "2e200"},
		{"1e-400", "1e-200"},
	} {
		diff(t, d(tc.want), sqrt(d(tc.in)), approx("1e-20"))
	}
}

func TestCalculateRange(t *testing.T) {
	lo, hi := CalculateRange(slices.Values(decs("3", "-1", "7.5", "2")))
	diff(t, d("-1"), lo)
	diff(t, d("7.5"), hi)

	lo, hi = CalculateRange(slices.Values([]decimal.Decimal(nil)))
	diff(t, decimal.Zero, lo)
	diff(t, decimal.Zero, hi)
}

func TestDiv(t *testing.T) {
	diff(t, d("0.3333333333333333333333333333"), div(d("1"), d("3")))
	diff(t, d("2.5"), div(d("5"), d("2")))
	diff(t, d("4"), mean(decs("2", "4", "6")))
}
