package geometrics

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat/distuv"
)

// MetricsCategory identifies one of the computations of [MetricsExtractor].
type MetricsCategory uint8

const (
	CategoryBasic MetricsCategory = iota
	CategoryShape
	CategoryRange
	CategoryTrend
	CategoryRisk
)

func (c MetricsCategory) String() string {
	switch c {
	case CategoryBasic:
		return "basic"
	case CategoryShape:
		return "shape"
	case CategoryRange:
		return "range"
	case CategoryTrend:
		return "trend"
	case CategoryRisk:
		return "risk"
	default:
		return fmt.Sprintf("MetricsCategory(%d)", c)
	}
}

// BasicMetrics describes the central tendency of the dependent values.
type BasicMetrics struct {
	Mean   decimal.Decimal
	Median decimal.Decimal
	// Mode is the most frequent value. Ties resolve to the smallest value.
	Mode decimal.Decimal
	// StdDev is the population standard deviation.
	StdDev decimal.Decimal
}

// ShapeMetrics describes the distribution and the local features of the
// dependent values.
type ShapeMetrics[P any] struct {
	Skewness decimal.Decimal
	// Kurtosis is the excess kurtosis.
	Kurtosis decimal.Decimal
	// Peaks and Valleys are samples whose value is strictly greater
	// (smaller) than the values of both neighbors.
	Peaks   []P
	Valleys []P
	// InflectionPoints are samples where the second difference changes
	// sign.
	InflectionPoints []P
}

type RangeMetrics[P any] struct {
	Min   P
	Max   P
	Range decimal.Decimal
	// Quartiles are taken from the sorted values without interpolation.
	Quartiles          [3]decimal.Decimal
	InterquartileRange decimal.Decimal
}

// TrendMetrics describes the least-squares fit of the dependent value on x.
type TrendMetrics struct {
	Slope     decimal.Decimal
	Intercept decimal.Decimal
	RSquared  decimal.Decimal
	// MovingAverage holds the average (x, value) of every window of
	// consecutive samples.
	MovingAverage []Point2D
}

type RiskMetrics struct {
	Volatility        decimal.Decimal
	ValueAtRisk       decimal.Decimal
	ExpectedShortfall decimal.Decimal
	Beta              decimal.Decimal
	SharpeRatio       decimal.Decimal
}

// Metrics is the composite report of all categories.
type Metrics[P any] struct {
	Basic BasicMetrics
	Shape ShapeMetrics[P]
	Range RangeMetrics[P]
	Trend TrendMetrics
	Risk  RiskMetrics
}

// extractor computes metrics over samples ordered by their index
// coordinates.
type extractor[P any] struct {
	shape  Shape
	points []P
	// xs holds the abscissa and vs the dependent value of every point.
	xs []decimal.Decimal
	vs []decimal.Decimal
}

func (c *Curve) extractor() *extractor[Point2D] {
	e := &extractor[Point2D]{shape: ShapeCurve, points: c.points}
	for _, pt := range c.points {
		e.xs = append(e.xs, pt.X)
		e.vs = append(e.vs, pt.Y)
	}
	return e
}

func (s *Surface) extractor() *extractor[Point3D] {
	e := &extractor[Point3D]{shape: ShapeSurface, points: s.points}
	for _, pt := range s.points {
		e.xs = append(e.xs, pt.X)
		e.vs = append(e.vs, pt.Z)
	}
	return e
}

func (e *extractor[P]) fail(cat MetricsCategory, err error) error {
	return &MetricsError{Shape: e.shape, Category: cat, Err: err}
}

func (e *extractor[P]) insufficient(cat MetricsCategory, need int) error {
	return e.fail(cat, errors.Wrapf(ErrInsufficientSamples, "have %d, need %d", len(e.vs), need))
}

// moments returns the mean and the population variance of the values.
func (e *extractor[P]) moments() (m, variance decimal.Decimal) {
	m = mean(e.vs)
	ss := decimal.Zero
	for _, v := range e.vs {
		d := v.Sub(m)
		ss = ss.Add(d.Mul(d))
	}
	return m, div(ss, decimal.NewFromInt(int64(len(e.vs))))
}

func (e *extractor[P]) sorted() []decimal.Decimal {
	out := slices.Clone(e.vs)
	slices.SortFunc(out, decimal.Decimal.Cmp)
	return out
}

func (e *extractor[P]) basic() (BasicMetrics, error) {
	n := len(e.vs)
	if n == 0 {
		return BasicMetrics{}, e.insufficient(CategoryBasic, 1)
	}
	m, variance := e.moments()
	sorted := e.sorted()

	median := sorted[n/2]
	if n%2 == 0 {
		median = div(sorted[n/2-1].Add(sorted[n/2]), two)
	}

	// Equal values are adjacent once sorted, and the first run of the
	// longest length holds the smallest value.
	mode, best := sorted[0], 0
	for i := 0; i < n; {
		j := i + 1
		for j < n && sorted[j].Equal(sorted[i]) {
			j++
		}
		if j-i > best {
			mode, best = sorted[i], j-i
		}
		i = j
	}

	return BasicMetrics{
		Mean:   m,
		Median: median,
		Mode:   mode,
		StdDev: sqrt(variance),
	}, nil
}

func (e *extractor[P]) shapeMetrics() (ShapeMetrics[P], error) {
	n := len(e.vs)
	if n < 2 {
		return ShapeMetrics[P]{}, e.insufficient(CategoryShape, 2)
	}
	m, variance := e.moments()
	if variance.IsZero() {
		return ShapeMetrics[P]{}, e.fail(CategoryShape, ErrZeroVariance)
	}
	sd := sqrt(variance)
	m3, m4 := decimal.Zero, decimal.Zero
	for _, v := range e.vs {
		z := div(v.Sub(m), sd)
		z2 := z.Mul(z)
		m3 = m3.Add(z2.Mul(z))
		m4 = m4.Add(z2.Mul(z2))
	}
	count := decimal.NewFromInt(int64(n))
	out := ShapeMetrics[P]{
		Skewness: div(m3, count),
		Kurtosis: div(m4, count).Sub(three),
	}

	for k := 1; k < n-1; k++ {
		prev, cur, next := e.vs[k-1], e.vs[k], e.vs[k+1]
		switch {
		case cur.GreaterThan(prev) && cur.GreaterThan(next):
			out.Peaks = append(out.Peaks, e.points[k])
		case cur.LessThan(prev) && cur.LessThan(next):
			out.Valleys = append(out.Valleys, e.points[k])
		}
	}

	// d2[k] is the second difference centered on sample k+1.
	d2 := make([]int, 0, max(n-2, 0))
	for k := 1; k < n-1; k++ {
		d := e.vs[k+1].Sub(e.vs[k]).Sub(e.vs[k].Sub(e.vs[k-1]))
		d2 = append(d2, d.Sign())
	}
	for k := 1; k < len(d2); k++ {
		if d2[k-1]*d2[k] < 0 {
			out.InflectionPoints = append(out.InflectionPoints, e.points[k+1])
		}
	}
	return out, nil
}

func (e *extractor[P]) rangeMetrics() (RangeMetrics[P], error) {
	n := len(e.vs)
	if n == 0 {
		return RangeMetrics[P]{}, e.insufficient(CategoryRange, 1)
	}
	lo, hi := 0, 0
	for k, v := range e.vs {
		if v.LessThan(e.vs[lo]) {
			lo = k
		}
		if v.GreaterThan(e.vs[hi]) {
			hi = k
		}
	}
	sorted := e.sorted()
	q := [3]decimal.Decimal{sorted[n/4], sorted[n/2], sorted[3*n/4]}
	return RangeMetrics[P]{
		Min:                e.points[lo],
		Max:                e.points[hi],
		Range:              e.vs[hi].Sub(e.vs[lo]),
		Quartiles:          q,
		InterquartileRange: q[2].Sub(q[0]),
	}, nil
}

func (e *extractor[P]) trend(cfg *metricsConfig) (TrendMetrics, error) {
	n := len(e.vs)
	if n < 2 {
		return TrendMetrics{}, e.insufficient(CategoryTrend, 2)
	}
	count := decimal.NewFromInt(int64(n))
	sx, sy, sxx, sxy := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for k := range e.vs {
		x, y := e.xs[k], e.vs[k]
		sx = sx.Add(x)
		sy = sy.Add(y)
		sxx = sxx.Add(x.Mul(x))
		sxy = sxy.Add(x.Mul(y))
	}
	denom := count.Mul(sxx).Sub(sx.Mul(sx))
	if denom.IsZero() {
		return TrendMetrics{}, e.fail(CategoryTrend, errors.Wrap(ErrZeroVariance, "all samples share one x"))
	}
	slope := div(count.Mul(sxy).Sub(sx.Mul(sy)), denom)
	intercept := div(sy.Sub(slope.Mul(sx)), count)

	my := div(sy, count)
	sst, ssr := decimal.Zero, decimal.Zero
	for k, y := range e.vs {
		d := y.Sub(my)
		sst = sst.Add(d.Mul(d))
		r := y.Sub(slope.Mul(e.xs[k]).Add(intercept))
		ssr = ssr.Add(r.Mul(r))
	}
	r2 := decimal.NewFromInt(1)
	if !sst.IsZero() {
		r2 = r2.Sub(div(ssr, sst))
	}

	var ma []Point2D
	w := decimal.NewFromInt(int64(cfg.window))
	for k := 0; k+cfg.window <= n; k++ {
		ma = append(ma, Pt(
			div(sum(e.xs[k:k+cfg.window]), w),
			div(sum(e.vs[k:k+cfg.window]), w),
		))
	}

	return TrendMetrics{
		Slope:         slope,
		Intercept:     intercept,
		RSquared:      r2,
		MovingAverage: ma,
	}, nil
}

func (e *extractor[P]) risk(cfg *metricsConfig) (RiskMetrics, error) {
	if len(e.vs) == 0 {
		return RiskMetrics{}, e.insufficient(CategoryRisk, 1)
	}
	m, variance := e.moments()
	if variance.IsZero() {
		return RiskMetrics{}, nil
	}
	vol := sqrt(variance)
	z := decimal.NewFromFloat(distuv.UnitNormal.Quantile(cfg.confidence))
	valueAtRisk := m.Sub(z.Mul(vol))

	var tail []decimal.Decimal
	for _, v := range e.vs {
		if v.LessThan(valueAtRisk) {
			tail = append(tail, v)
		}
	}
	shortfall := valueAtRisk
	if len(tail) > 0 {
		shortfall = mean(tail)
	}

	beta := decimal.Zero
	if !m.IsZero() {
		beta = div(vol, m)
	}
	return RiskMetrics{
		Volatility:        vol,
		ValueAtRisk:       valueAtRisk,
		ExpectedShortfall: shortfall,
		Beta:              beta,
		SharpeRatio:       div(m.Sub(cfg.riskFree), vol),
	}, nil
}

func (e *extractor[P]) all(opts []MetricsOption) (Metrics[P], error) {
	var out Metrics[P]
	var err error
	if out.Basic, err = e.basic(); err != nil {
		return Metrics[P]{}, err
	}
	if out.Shape, err = e.shapeMetrics(); err != nil {
		return Metrics[P]{}, err
	}
	if out.Range, err = e.rangeMetrics(); err != nil {
		return Metrics[P]{}, err
	}
	cfg, err := newMetricsConfig(opts)
	if err != nil {
		return Metrics[P]{}, e.fail(CategoryTrend, err)
	}
	if out.Trend, err = e.trend(cfg); err != nil {
		return Metrics[P]{}, err
	}
	if out.Risk, err = e.risk(cfg); err != nil {
		return Metrics[P]{}, err
	}
	return out, nil
}

func (c *Curve) ComputeBasicMetrics() (BasicMetrics, error) { return c.extractor().basic() }

func (c *Curve) ComputeShapeMetrics() (ShapeMetrics[Point2D], error) {
	return c.extractor().shapeMetrics()
}

func (c *Curve) ComputeRangeMetrics() (RangeMetrics[Point2D], error) {
	return c.extractor().rangeMetrics()
}

func (c *Curve) ComputeTrendMetrics(opts ...MetricsOption) (TrendMetrics, error) {
	e := c.extractor()
	cfg, err := newMetricsConfig(opts)
	if err != nil {
		return TrendMetrics{}, e.fail(CategoryTrend, err)
	}
	return e.trend(cfg)
}

func (c *Curve) ComputeRiskMetrics(opts ...MetricsOption) (RiskMetrics, error) {
	e := c.extractor()
	cfg, err := newMetricsConfig(opts)
	if err != nil {
		return RiskMetrics{}, e.fail(CategoryRisk, err)
	}
	return e.risk(cfg)
}

func (c *Curve) ComputeMetrics(opts ...MetricsOption) (Metrics[Point2D], error) {
	return c.extractor().all(opts)
}

func (s *Surface) ComputeBasicMetrics() (BasicMetrics, error) { return s.extractor().basic() }

func (s *Surface) ComputeShapeMetrics() (ShapeMetrics[Point3D], error) {
	return s.extractor().shapeMetrics()
}

func (s *Surface) ComputeRangeMetrics() (RangeMetrics[Point3D], error) {
	return s.extractor().rangeMetrics()
}

func (s *Surface) ComputeTrendMetrics(opts ...MetricsOption) (TrendMetrics, error) {
	e := s.extractor()
	cfg, err := newMetricsConfig(opts)
	if err != nil {
		return TrendMetrics{}, e.fail(CategoryTrend, err)
	}
	return e.trend(cfg)
}

func (s *Surface) ComputeRiskMetrics(opts ...MetricsOption) (RiskMetrics, error) {
	e := s.extractor()
	cfg, err := newMetricsConfig(opts)
	if err != nil {
		return RiskMetrics{}, e.fail(CategoryRisk, err)
	}
	return e.risk(cfg)
}

func (s *Surface) ComputeMetrics(opts ...MetricsOption) (Metrics[Point3D], error) {
	return s.extractor().all(opts)
}
