package geometrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var allKinds = []InterpolationType{Linear, Bilinear, Cubic, Spline}

func TestCurveInterpolationScenario(t *testing.T) {
	c := curveOf(t, 0, 0, 1, 1, 2, 4, 3, 9)

	got, err := c.LinearInterpolate(d("1.5"))
	require.NoError(t, err)
	diff(t, pt("1.5", "2.5"), got)

	got, err = c.CubicInterpolate(d("1.5"))
	require.NoError(t, err)
	diff(t, pt("1.5", "2.25"), got)

	got, err = c.BilinearInterpolate(d("1.5"))
	require.NoError(t, err)
	diff(t, pt("1.5", "2.5"), got)
}

func TestInterpolateExactSamples(t *testing.T) {
	c := curveOf(t, 0, 0, 1, 1, 2, 4, 3, 9, 4, 16)
	for _, kind := range allKinds {
		for p := range c.Points() {
			got, err := c.Interpolate(p.X, kind)
			require.NoError(t, err)
			diff(t, p, got)
		}
	}
}

func TestInterpolateOutOfRange(t *testing.T) {
	c := curveOf(t, 0, 0, 1, 1, 2, 4, 3, 9)
	for _, kind := range allKinds {
		for _, x := range []string{"-0.001", "3.5"} {
			_, err := c.Interpolate(d(x), kind)
			require.ErrorIs(t, err, ErrOutOfRange, "%s at %s", kind, x)
			var ie *InterpolationError
			require.ErrorAs(t, err, &ie)
			require.Equal(t, kind, ie.Method)
			require.Equal(t, ShapeCurve, ie.Shape)
		}
	}
}

func TestInterpolateInsufficientPoints(t *testing.T) {
	for _, tc := range []struct {
		kind InterpolationType
		c    *Curve
	}{
		{Linear, curveOf(t, 0, 0)},
		{Bilinear, curveOf(t, 0, 0)},
		{Cubic, curveOf(t, 0, 0, 1, 1, 2, 4)},
		{Spline, curveOf(t, 0, 0, 1, 1)},
	} {
		_, err := tc.c.Interpolate(d("0.5"), tc.kind)
		require.ErrorIs(t, err, ErrInsufficientPoints, "%s", tc.kind)
	}

	_, err := curveOf(t, 0, 0, 1, 1).Interpolate(d("0.5"), InterpolationType(7))
	require.ErrorIs(t, err, ErrInvalidParameters)
}

func TestInterpolateMultiValued(t *testing.T) {
	c := curveOf(t, 0, 0, 1, 2, 1, 1, 2, 3, 3, 4)

	// Linear interpolation uses the nearest samples on either side of x.
	got, err := c.LinearInterpolate(d("0.5"))
	require.NoError(t, err)
	diff(t, pt("0.5", "0.5"), got)
	got, err = c.LinearInterpolate(d("1.5"))
	require.NoError(t, err)
	diff(t, pt("1.5", "2.5"), got)
	got, err = c.LinearInterpolate(d("1"))
	require.NoError(t, err)
	diff(t, pt("1", "1"), got)

	for _, kind := range []InterpolationType{Cubic, Spline} {
		_, err := c.Interpolate(d("2.5"), kind)
		require.ErrorIs(t, err, ErrMultiValued, "%s", kind)
	}
}

func TestCubicReproducesLines(t *testing.T) {
	// y = 2x + 1
	c := curveOf(t, 0, 1, 1, 3, 2, 5, 3, 7, 4, 9)
	for _, x := range []string{"0.5", "1.25", "2.5", "3.75"} {
		got, err := c.CubicInterpolate(d(x))
		require.NoError(t, err)
		want := d(x).Mul(two).Add(d("1"))
		diff(t, Pt(d(x), want), got, approx("1e-20"))
	}
}

func TestCubicContinuity(t *testing.T) {
	c := curveOf(t, 0, 0, 1, 1, 2, 4, 3, 2, 4, 2, "5.5", 1, 7, 3)
	eps := d("1e-9")
	for i := 1; i < c.Len()-1; i++ {
		s := c.At(i)
		for _, x := range []Point2D{Pt(s.X.Sub(eps), s.Y), Pt(s.X.Add(eps), s.Y)} {
			got, err := c.CubicInterpolate(x.X)
			require.NoError(t, err)
			diff(t, s.Y, got.Y, approx("1e-6"))
		}
	}
}

func TestSplineInterpolate(t *testing.T) {
	c := curveOf(t, 0, 0, 1, 1, 2, 0)
	for _, tc := range []struct{ x, want string }{
		{"0.5", "0.6875"},
		{"1.5", "0.6875"},
	} {
		got, err := c.SplineInterpolate(d(tc.x))
		require.NoError(t, err)
		diff(t, pt(tc.x, tc.want), got, approx("1e-20"))
	}

	// A natural spline through collinear samples is the line itself.
	line := curveOf(t, 0, 1, 1, 3, 2, 5, 3, 7, 4, 9)
	got, err := line.SplineInterpolate(d("2.5"))
	require.NoError(t, err)
	diff(t, pt("2.5", "6"), got, approx("1e-20"))
}

func TestSplineMoments(t *testing.T) {
	m := splineMoments(pointsOf(t, 0, 0, 1, 1, 2, 0))
	diff(t, decs("0", "-3", "0"), m, approx("1e-20"))

	// Natural end conditions hold for uneven spacing too.
	m = splineMoments(pointsOf(t, 0, 0, "0.5", 2, 2, 1, 5, 4))
	diff(t, decs("0"), m[:1])
	diff(t, decs("0"), m[3:])
}
