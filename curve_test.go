package geometrics

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type payoff struct {
	price, value decimal.Decimal
}

func (p payoff) ToPoint2D() Point2D { return Pt(p.price, p.value) }

func TestNewCurveNormalizes(t *testing.T) {
	c := curveOf(t, 2, 4, 0, 0, 1, 1, 0, 0)
	diff(t, pointsOf(t, 0, 0, 1, 1, 2, 4), c.Vector())
	if c.Len() != 3 {
		t.Errorf("got %d points, want 3", c.Len())
	}
	lo, hi := c.XRange()
	diff(t, []decimal.Decimal{d("0"), d("2")}, []decimal.Decimal{lo, hi})
	lo, hi = c.YRange()
	diff(t, []decimal.Decimal{d("0"), d("4")}, []decimal.Decimal{lo, hi})
	if c.MultiValued() {
		t.Error("curve is not multi-valued")
	}
	diff(t, "Curve{(0, 0), (1, 1), (2, 4)}", c.String())

	var got []Point2D
	for p := range c.Points() {
		got = append(got, p)
	}
	diff(t, c.Vector(), got)
}

func TestCurveFromVector(t *testing.T) {
	rows := []payoff{
		{d("110"), d("10")},
		{d("90"), d("-5")},
		{d("100"), d("0")},
	}
	c := CurveFromVector(rows)
	diff(t, pointsOf(t, 90, -5, 100, 0, 110, 10), c.Vector())

	// Round trip through the vector form.
	if !CurveFromVector(c.Vector()).Equal(c) {
		t.Error("round trip changed the curve")
	}

	clone := c.Clone()
	if !clone.Equal(c) || clone == c {
		t.Error("clone must be an equal, distinct curve")
	}
}

func TestConstructCurve(t *testing.T) {
	c, err := ConstructCurve(FromData[Point2D]{Points: pointsOf(t, 1, 1, 0, 0)})
	require.NoError(t, err)
	diff(t, pointsOf(t, 0, 0, 1, 1), c.Vector())

	_, err = ConstructCurve(FromData[Point2D]{})
	require.ErrorIs(t, err, ErrEmptyPoints)
	var ce *ConstructionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ShapeCurve, ce.Shape)

	c, err = ConstructCurve(CurveParametric{
		F:     func(t decimal.Decimal) (Point2D, error) { return Pt(t, t.Mul(t)), nil },
		Start: d("0"),
		End:   d("2"),
		Steps: 4,
	})
	require.NoError(t, err)
	diff(t, pointsOf(t, "0", "0", "0.5", "0.25", "1", "1", "1.5", "2.25", "2", "4"), c.Vector())

	for _, m := range []CurveParametric{
		{F: func(t decimal.Decimal) (Point2D, error) { return Pt(t, t), nil }, Start: d("0"), End: d("1"), Steps: 0},
		{F: func(t decimal.Decimal) (Point2D, error) { return Pt(t, t), nil }, Start: d("1"), End: d("1"), Steps: 3},
		{Start: d("0"), End: d("1"), Steps: 3},
	} {
		_, err := ConstructCurve(m)
		require.ErrorIs(t, err, ErrInvalidParameters)
	}

	boom := errors.New("boom")
	_, err = ConstructCurve(CurveParametric{
		F: func(t decimal.Decimal) (Point2D, error) {
			if t.GreaterThan(d("0.5")) {
				return Point2D{}, boom
			}
			return Pt(t, t), nil
		},
		Start: d("0"),
		End:   d("1"),
		Steps: 4,
	})
	require.ErrorIs(t, err, boom)
	require.ErrorAs(t, err, &ce)
}

func TestCurveFindBracketPoints(t *testing.T) {
	c := curveOf(t, 0, 0, 1, 1, 2, 4)
	for _, tc := range []struct {
		x    string
		i, j int
	}{
		{"0", 0, 1},
		{"0.5", 0, 1},
		{"1", 0, 1},
		{"1.5", 1, 2},
		{"2", 1, 2},
	} {
		i, j, err := c.FindBracketPoints(d(tc.x))
		require.NoError(t, err)
		if i != tc.i || j != tc.j {
			t.Errorf("bracket of %s: got (%d, %d), want (%d, %d)", tc.x, i, j, tc.i, tc.j)
		}
	}

	_, _, err := c.FindBracketPoints(d("2.1"))
	require.ErrorIs(t, err, ErrOutOfRange)
	_, _, err = curveOf(t, 0, 0).FindBracketPoints(d("0"))
	require.ErrorIs(t, err, ErrInsufficientPoints)
	_, _, err = curveOf(t, 0, 0, 0, 1).FindBracketPoints(d("0"))
	require.ErrorIs(t, err, ErrBracketNotFound)

	// The smallest x has two samples.
	i, j, err := curveOf(t, 0, 0, 0, 1, 1, 1).FindBracketPoints(d("0"))
	require.NoError(t, err)
	require.Equal(t, [2]int{0, 2}, [2]int{i, j})
}

func TestCurveAxis(t *testing.T) {
	c := curveOf(t, 0, 0, 1, 3, 1, 1, 2, 4)
	if !c.MultiValued() {
		t.Error("curve is multi-valued")
	}
	if !c.ContainsPoint(d("1.0")) || c.ContainsPoint(d("0.5")) {
		t.Error("ContainsPoint disagrees with the samples")
	}
	diff(t, decs("0", "1", "2"), c.IndexValues())
	diff(t, decs("1", "3"), c.Values(d("1")))
	if got := c.Values(d("0.5")); got != nil {
		t.Errorf("got values %v at an unsampled x", got)
	}
	p, ok := c.Point(d("1"))
	require.True(t, ok)
	diff(t, pt("1", "1"), p)

	for _, tc := range []struct {
		x    string
		want Point2D
	}{
		{"-1", pt("0", "0")},
		{"0.4", pt("0", "0")},
		{"0.5", pt("0", "0")},
		{"0.6", pt("1", "1")},
		{"1.5", pt("1", "1")},
		{"1.6", pt("2", "4")},
		{"5", pt("2", "4")},
	} {
		got, err := c.ClosestPoint(d(tc.x))
		require.NoError(t, err)
		diff(t, tc.want, got)
	}

	_, err := NewCurve().ClosestPoint(d("1"))
	require.ErrorIs(t, err, ErrNoPoints)
	var ae *AxisError
	require.ErrorAs(t, err, &ae)
}

func TestCurveMergeIndexes(t *testing.T) {
	a := curveOf(t, 0, 0, 1, 1, 2, 2)
	b := curveOf(t, 1, 0, "1.5", 0, 3, 0)

	got := a.MergeAxisIndex(b)
	diff(t, decs("0", "1", "1.5", "2", "3"), got)
	if n := len(got); n < max(a.Len(), b.Len()) || n > a.Len()+b.Len() {
		t.Errorf("union has %d keys", n)
	}
	diff(t, decs("-1", "0", "1", "2"), a.MergeIndexes(decs("2.0", "-1", "0")))
}

func TestCurveMergeAxisInterpolate(t *testing.T) {
	a := curveOf(t, 0, 0, 2, 2)
	b := curveOf(t, 1, 1, 3, 5)
	ra, rb, err := a.MergeAxisInterpolate(b, Linear)
	require.NoError(t, err)
	diff(t, pointsOf(t, 1, 1, 2, 2), ra.Vector())
	diff(t, pointsOf(t, 1, 1, 2, 3), rb.Vector())

	_, _, err = a.MergeAxisInterpolate(curveOf(t, 3, 0, 4, 0), Linear)
	require.ErrorIs(t, err, ErrDisjointDomains)
	var ae *AxisError
	require.ErrorAs(t, err, &ae)

	_, _, err = a.MergeAxisInterpolate(b, InterpolationType(9))
	require.ErrorIs(t, err, ErrInvalidParameters)
}

func TestCurveTransforms(t *testing.T) {
	c := curveOf(t, 0, 0, 1, 1, 2, 4)

	got, err := c.Translate(d("1"), d("2"))
	require.NoError(t, err)
	diff(t, pointsOf(t, 1, 2, 2, 3, 3, 6), got.Vector())

	got, err = c.Scale(d("-1"), d("0.5"))
	require.NoError(t, err)
	diff(t, pointsOf(t, -2, 2, -1, "0.5", 0, 0), got.Vector())

	_, err = c.Translate(d("1"))
	require.ErrorIs(t, err, ErrIncompatibleDimensions)
	_, err = c.Scale(d("1"), d("1"), d("1"))
	require.ErrorIs(t, err, ErrIncompatibleDimensions)
	var te *TransformError
	require.ErrorAs(t, err, &te)
	require.Equal(t, "scale", te.Op)

	// The receiver is unchanged.
	diff(t, pointsOf(t, 0, 0, 1, 1, 2, 4), c.Vector())
}

func TestCurveIntersectWith(t *testing.T) {
	a := curveOf(t, 0, 0, 2, 2)
	b := curveOf(t, 0, 2, 2, 0)
	got, err := a.IntersectWith(b)
	require.NoError(t, err)
	diff(t, []Point2D{pt("1", "1")}, got)

	// Touching at a sample.
	a = curveOf(t, 0, 0, 1, 1, 2, 0)
	b = curveOf(t, 0, 1, 1, 1, 2, 1)
	got, err = a.IntersectWith(b)
	require.NoError(t, err)
	diff(t, []Point2D{pt("1", "1")}, got)

	// Within tolerance.
	b = curveOf(t, 0, "1.5", 2, "1.5")
	got, err = a.IntersectWith(b, WithTolerance(d("0.5")))
	require.NoError(t, err)
	diff(t, []Point2D{pt("1", "1")}, got)

	got, err = a.IntersectWith(curveOf(t, 5, 0, 6, 1))
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = a.IntersectWith(b, WithTolerance(d("-1")))
	require.ErrorIs(t, err, ErrInvalidParameters)
}

func TestCurveDerivativeAt(t *testing.T) {
	c := curveOf(t, 0, 0, 1, 1, 2, 4, 3, 9)
	for _, tc := range []struct{ x, want string }{
		{"0", "1"},
		{"0.5", "1"},
		{"1", "2"},
		{"2.5", "5"},
		{"3", "5"},
	} {
		got, err := c.DerivativeAt(pt(tc.x, "0"))
		require.NoError(t, err)
		diff(t, decs(tc.want), got)
	}
	_, err := c.DerivativeAt(pt("4", "0"))
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestCurveExtremaAndArea(t *testing.T) {
	lo, hi, err := curveOf(t, 0, 3, 1, -1, 2, 5).Extrema()
	require.NoError(t, err)
	diff(t, pt("1", "-1"), lo)
	diff(t, pt("2", "5"), hi)

	_, _, err = NewCurve().Extrema()
	require.ErrorIs(t, err, ErrNoPoints)

	tent := curveOf(t, 0, 0, 1, 1, 2, 0)
	area, err := tent.MeasureUnder(d("0"))
	require.NoError(t, err)
	diff(t, d("1"), area)
	area, err = tent.MeasureUnder(d("1"))
	require.NoError(t, err)
	diff(t, d("1"), area)
	area, err = curveOf(t, 0, 5).MeasureUnder(d("0"))
	require.NoError(t, err)
	diff(t, d("0"), area)
}
