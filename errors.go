package geometrics

import (
	"fmt"

	"github.com/pkg/errors"
)

// Reasons reported by the error families of this package. Use [errors.Is] to
// test for them.
var (
	// Construction.
	ErrEmptyPoints       = errors.New("empty point set")
	ErrInvalidParameters = errors.New("invalid parameters")

	// Interpolation.
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrOutOfRange         = errors.New("coordinate outside of the sampled range")
	ErrBracketNotFound    = errors.New("no bracketing points")
	ErrMultiValued        = errors.New("coordinate has more than one value")

	// Axis operations.
	ErrNoPoints = errors.New("no points to search")

	// Arithmetic.
	ErrEmptyMerge             = errors.New("nothing to merge")
	ErrDivisionByZero         = errors.New("division by zero")
	ErrDisjointDomains        = errors.New("domains do not overlap")
	ErrIncompatibleDimensions = errors.New("incompatible dimensions")

	// Metrics.
	ErrInsufficientSamples = errors.New("insufficient samples")
	ErrZeroVariance        = errors.New("zero variance")
)

// Shape identifies the kind of geometric object an error originates from.
type Shape uint8

const (
	ShapeCurve Shape = iota
	ShapeSurface
)

func (s Shape) String() string {
	switch s {
	case ShapeCurve:
		return "curve"
	case ShapeSurface:
		return "surface"
	default:
		return fmt.Sprintf("Shape(%d)", s)
	}
}

// ConstructionError is returned when a geometric object can't be built.
type ConstructionError struct {
	Shape Shape
	Err   error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s construction: %s", e.Shape, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// InterpolationError is returned by all interpolation methods.
type InterpolationError struct {
	Shape  Shape
	Method InterpolationType
	// Coordinate is the formatted query coordinate.
	Coordinate string
	Err        error
}

func (e *InterpolationError) Error() string {
	return fmt.Sprintf("%s %s interpolation at %s: %s", e.Shape, e.Method, e.Coordinate, e.Err)
}

func (e *InterpolationError) Unwrap() error { return e.Err }

// AxisError is returned by axis lookups.
type AxisError struct {
	Shape Shape
	Err   error
}

func (e *AxisError) Error() string {
	return fmt.Sprintf("%s axis: %s", e.Shape, e.Err)
}

func (e *AxisError) Unwrap() error { return e.Err }

// ArithmeticError is returned by merges.
type ArithmeticError struct {
	Shape Shape
	Op    MergeOperation
	Err   error
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s merge (%s): %s", e.Shape, e.Op, e.Err)
}

func (e *ArithmeticError) Unwrap() error { return e.Err }

// MetricsError is returned by the metrics extractor.
type MetricsError struct {
	Shape    Shape
	Category MetricsCategory
	Err      error
}

func (e *MetricsError) Error() string {
	return fmt.Sprintf("%s %s metrics: %s", e.Shape, e.Category, e.Err)
}

func (e *MetricsError) Unwrap() error { return e.Err }

// TransformError is returned by geometric transformations.
type TransformError struct {
	Shape Shape
	// Op names the failed transformation, such as "translate".
	Op  string
	Err error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Shape, e.Op, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }
