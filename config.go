package geometrics

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"honnef.co/go/geometrics/internal/options"
)

// DefaultConfidenceLevel is the confidence level used for value-at-risk
// unless overridden with [WithConfidenceLevel].
const DefaultConfidenceLevel = 0.95

// DefaultMovingAverageWindow is the number of consecutive samples averaged by
// [TrendMetrics].
const DefaultMovingAverageWindow = 3

// DefaultTolerance is the default tolerance of [Surface.IntersectWith].
var DefaultTolerance = decimal.New(1, -6)

type metricsConfig struct {
	confidence float64
	riskFree   decimal.Decimal
	window     int
}

// MetricsOption configures the metrics extractor.
type MetricsOption = options.Option[*metricsConfig]

// WithConfidenceLevel sets the confidence level of value-at-risk. It must lie
// strictly between 0 and 1.
func WithConfidenceLevel(level float64) MetricsOption {
	return options.New(func(c *metricsConfig) error {
		if !(level > 0 && level < 1) {
			return errors.Wrapf(ErrInvalidParameters, "confidence level %g not in (0, 1)", level)
		}
		c.confidence = level
		return nil
	})
}

// WithRiskFreeRate sets the rate subtracted from the mean in the Sharpe ratio.
func WithRiskFreeRate(rate decimal.Decimal) MetricsOption {
	return options.NoError(func(c *metricsConfig) {
		c.riskFree = rate
	})
}

// WithMovingAverageWindow sets the window of the moving average.
func WithMovingAverageWindow(n int) MetricsOption {
	return options.New(func(c *metricsConfig) error {
		if n < 1 {
			return errors.Wrapf(ErrInvalidParameters, "moving average window %d", n)
		}
		c.window = n
		return nil
	})
}

func newMetricsConfig(opts []MetricsOption) (*metricsConfig, error) {
	cfg := &metricsConfig{
		confidence: DefaultConfidenceLevel,
		riskFree:   decimal.Zero,
		window:     DefaultMovingAverageWindow,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

type mergeConfig struct {
	interpolation InterpolationType
	set           bool
}

// MergeOption configures merges and axis alignment.
type MergeOption = options.Option[*mergeConfig]

// WithInterpolation selects the method used to fill in coordinates that an
// object doesn't sample. Curves default to [Linear], surfaces to [Bilinear].
func WithInterpolation(kind InterpolationType) MergeOption {
	return options.New(func(c *mergeConfig) error {
		if !kind.valid() {
			return errors.Wrapf(ErrInvalidParameters, "interpolation type %d", kind)
		}
		c.interpolation = kind
		c.set = true
		return nil
	})
}

func newMergeConfig(def InterpolationType, opts []MergeOption) (*mergeConfig, error) {
	cfg := &mergeConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if !cfg.set {
		cfg.interpolation = def
	}
	return cfg, nil
}

type intersectConfig struct {
	tolerance decimal.Decimal
}

// IntersectOption configures intersections.
type IntersectOption = options.Option[*intersectConfig]

// WithTolerance sets the largest difference between two dependent values
// that still counts as an intersection. It must not be negative.
func WithTolerance(tol decimal.Decimal) IntersectOption {
	return options.New(func(c *intersectConfig) error {
		if tol.Sign() < 0 {
			return errors.Wrapf(ErrInvalidParameters, "negative tolerance %s", tol)
		}
		c.tolerance = tol
		return nil
	})
}

func newIntersectConfig(opts []IntersectOption) (*intersectConfig, error) {
	cfg := &intersectConfig{tolerance: DefaultTolerance}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}
