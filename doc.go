// Package geometrics provides curves and surfaces over decimal coordinates,
// along with interpolation, point-wise arithmetic and statistics over their
// samples. It was designed to model payoff and price curves, where binary
// floating point would silently lose cents, but it is intended to be general
// enough to be useful for other sampled functions.
//
// # Features
//
// We provide the following notable features:
//
//   - Linear, cubic (Catmull-Rom) and natural spline interpolation of curves
//   - Barycentric and separable interpolation of scattered surfaces
//   - Aligning objects onto a common set of coordinates (see [Curve.MergeAxisInterpolate])
//   - Merging any number of objects point-wise (see [MergeCurves] and [MergeSurfaces])
//   - Basic, shape, range, trend and risk metrics (see [MetricsExtractor])
//   - Affine transformations (see [Affine])
//
// # Curves and surfaces
//
// The two core types of this package are [Curve] and [Surface]. A curve is a
// set of [Point2D] samples of y = f(x), a surface a set of [Point3D] samples
// of z = f(x, y). Both keep their samples sorted and free of duplicates, and
// both are immutable: every operation returns a new object.
//
// Objects can be created from explicit points ([NewCurve], [NewSurface],
// [CurveFromVector], [SurfaceFromVector]) or from a [ConstructionMethod],
// which either wraps existing points ([FromData]) or samples a function
// ([CurveParametric], [SurfaceParametric]). [LinearCurve], [PlanarSurface]
// and friends build on the latter.
//
// The coordinate of a curve is its x value, the coordinate of a surface its
// (x, y) pair. Both satisfy [Coordinate]. Nothing in this package compares
// coordinates with ==, as two decimals with the same value may be
// represented differently.
//
// A curve may sample several y values at the same x, and a surface several z
// values at the same (x, y). Such objects are multi-valued. Lookups return
// the sample with the smallest dependent value, and cubic and spline
// interpolation refuse to operate on them.
//
// # Interpolation
//
// No interpolation method extrapolates. Querying a coordinate outside of the
// sampled domain fails with an [*InterpolationError] that wraps
// [ErrOutOfRange]. Querying an existing sample returns it unchanged.
//
// Linear interpolation needs two samples, spline interpolation three and
// cubic interpolation four. For curves, bilinear interpolation is the same as
// linear interpolation. For surfaces, it evaluates the plane through the
// three nearest samples that span a triangle, which works for scattered data.
// The remaining surface methods interpolate along rows of samples sharing a
// y, then across rows.
//
// # Errors
//
// Every operation reports failures through one of the error types
// [*ConstructionError], [*InterpolationError], [*AxisError],
// [*ArithmeticError], [*MetricsError] and [*TransformError]. Each wraps one
// of the Err* reasons, which can be tested with [errors.Is].
//
// # Decimals
//
// All coordinates are [decimal.Decimal] values. Divisions are rounded to
// [DivisionPrecision] fractional digits, which means that results involving
// division are exact only to that precision.
package geometrics
