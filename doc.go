// Package curve3 provides closed-form 3D geometric primitives for
// simulation and robotics code: line segments, control points carrying
// derivative data, and single-interval cubic Hermite spline segments.
//
// # Primitives
//
// [Line3] is a plain line segment between two points.
//
// [IntervalCubicSpline] is a single cubic curve piece parameterized by
// t ∈ [0, 1], defined by Hermite data — positions and tangents — at its
// two ends. A [ControlPoint] holds that data for one end; once
// [IntervalCubicSpline.SetPoints] has run, it additionally holds the
// second and third derivatives of the interval's polynomial at that
// end. The segment supports evaluating derivatives of arbitrary order
// ([IntervalCubicSpline.InterpolateMthDerivative]), computing arc
// length by fixed-order Gauss–Legendre quadrature
// ([IntervalCubicSpline.ArcLength]), and detecting self-intersection
// within the interval ([IntervalCubicSpline.HasLoop]).
//
// # Vectors and matrices
//
// Fixed-size vector and matrix arithmetic is not reimplemented here;
// the package operates on [mgl64.Vec3] and [mgl64.Mat4] values from
// [github.com/go-gl/mathgl/mgl64].
//
// # Error signaling
//
// The numerical operations in this package never panic and return no
// errors. Out-of-range queries are answered with sentinel values
// instead: [mgl64.InfPos] for scalar results, and a vector with every
// component set to positive infinity for vector results (see [IsInf]).
// Derivative orders beyond a cubic's support are not errors and yield
// the zero vector.
//
// # Concurrency
//
// All operations are pure, synchronous computations over in-memory
// values. [IntervalCubicSpline.SetPoints] replaces the segment's
// derived state as one unit; it must not run concurrently with other
// calls on the same segment. The read-only operations are safe to call
// from multiple goroutines once SetPoints has returned.
package curve3
