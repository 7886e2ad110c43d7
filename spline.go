package curve3

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// hermiteBasis maps Hermite control data rows (start position, end
// position, start tangent, end tangent) to power-basis coefficient
// rows (t³, t², t, 1).
var hermiteBasis = mgl64.Mat4FromRows(
	mgl64.Vec4{2, -2, 1, 1},
	mgl64.Vec4{-3, 3, -2, -1},
	mgl64.Vec4{0, 0, 1, 0},
	mgl64.Vec4{1, 0, 0, 0},
)

// bernsteinBasis maps Bézier control point rows to power-basis
// coefficient rows.
var bernsteinBasis = mgl64.Mat4FromRows(
	mgl64.Vec4{-1, 3, -3, 1},
	mgl64.Vec4{3, -6, 3, 0},
	mgl64.Vec4{-3, 3, 0, 0},
	mgl64.Vec4{1, 0, 0, 0},
)

// Weight/abscissa pairs of the 5-point Legendre-Gauss quadrature rule,
// mapped to the unit interval. Adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>
var gaussLegendreCoeffs5 = [...][2]float64{
	{0.28444444444444444, 0.5},
	{0.23931433524968326, 0.23076534494715845},
	{0.23931433524968326, 0.7692346550528415},
	{0.11846344252809456, 0.0469100770306680},
	{0.11846344252809456, 0.9530899229693319},
}

// polynomialPowers returns the row vector that, dotted against a
// column of power-basis coefficients, evaluates the order-th
// derivative of a cubic polynomial at t. A table lookup is much
// faster than going through factorials and power computations.
func polynomialPowers(order int, t float64) mgl64.Vec4 {
	t2 := t * t
	t3 := t2 * t
	switch order {
	case 0:
		return mgl64.Vec4{t3, t2, t, 1.0}
	case 1:
		return mgl64.Vec4{3 * t2, 2 * t, 1.0, 0.0}
	case 2:
		return mgl64.Vec4{6 * t, 2.0, 0.0, 0.0}
	case 3:
		return mgl64.Vec4{6.0, 0.0, 0.0, 0.0}
	default:
		return mgl64.Vec4{}
	}
}

// hermiteCoefficients returns the power-basis coefficient matrix of
// the cubic interpolating the two control points' positions and
// tangents. Each of the first three columns holds the coefficients
// for one spatial axis; the fourth column is the homogeneous
// coordinate that lets positions and tangents blend in a single
// matrix product.
func hermiteCoefficients(start, end ControlPoint) mgl64.Mat4 {
	point0 := start.MthDerivative(0)
	point1 := end.MthDerivative(0)
	tan0 := start.MthDerivative(1)
	tan1 := end.MthDerivative(1)

	control := mgl64.Mat4FromRows(
		point0.Vec4(1.0),
		point1.Vec4(1.0),
		tan0.Vec4(1.0),
		tan1.Vec4(1.0),
	)
	return hermiteBasis.Mul4(control)
}

// An IntervalCubicSpline is a single cubic curve piece parameterized
// by t ∈ [0, 1] and defined by Hermite data at its two ends: t = 0
// maps to the start point, t = 1 to the end point.
//
// The zero value evaluates to zero everywhere; a segment becomes
// meaningful once [IntervalCubicSpline.SetPoints] has run.
type IntervalCubicSpline struct {
	start     ControlPoint
	end       ControlPoint
	coeffs    mgl64.Mat4
	arcLength float64
}

// NewIntervalCubicSpline returns a segment interpolating the two
// control points' positions and tangents.
func NewIntervalCubicSpline(start, end ControlPoint) *IntervalCubicSpline {
	s := &IntervalCubicSpline{}
	s.SetPoints(start, end)
	return s
}

// SetPoints redefines the segment. It recomputes the polynomial
// coefficients from the control points' positions and tangents,
// writes the second and third derivatives of the polynomial back into
// the stored endpoints, and recomputes the cached full-segment arc
// length. The new state is assembled in full before it replaces the
// old, so a prior consistent state is never partially overwritten.
func (s *IntervalCubicSpline) SetPoints(start, end ControlPoint) {
	next := IntervalCubicSpline{
		start:  start,
		end:    end,
		coeffs: hermiteCoefficients(start, end),
	}
	next.start.SetMthDerivative(2, next.interpolateMthDerivative(2, 0.0))
	next.start.SetMthDerivative(3, next.interpolateMthDerivative(3, 0.0))
	next.end.SetMthDerivative(2, next.interpolateMthDerivative(2, 1.0))
	next.end.SetMthDerivative(3, next.interpolateMthDerivative(3, 1.0))
	next.arcLength = next.ArcLength(1.0)
	*s = next
}

// StartPoint returns the control point at t = 0.
func (s *IntervalCubicSpline) StartPoint() ControlPoint {
	return s.start
}

// EndPoint returns the control point at t = 1.
func (s *IntervalCubicSpline) EndPoint() ControlPoint {
	return s.end
}

// Length returns the cached arc length of the full segment.
func (s *IntervalCubicSpline) Length() float64 {
	return s.arcLength
}

// interpolateMthDerivative evaluates the order-th derivative of the
// polynomial at t, which is assumed to be in range.
func (s *IntervalCubicSpline) interpolateMthDerivative(order int, t float64) mgl64.Vec3 {
	powers := polynomialPowers(order, t)
	// powers is a row vector; multiply it against the coefficient
	// matrix from the left.
	return s.coeffs.Transpose().Mul4x1(powers).Vec3()
}

// InterpolateMthDerivative evaluates the order-th derivative of the
// segment at t. Order 0 is the position itself. For t outside [0, 1]
// it returns a vector with every component set to positive infinity
// (see [IsInf]); it does not clamp. Orders beyond the third yield the
// zero vector.
//
// At t numerically equal to 0 or 1 the stored endpoint derivative is
// returned directly, so endpoint queries reproduce the input data
// exactly rather than through the polynomial.
func (s *IntervalCubicSpline) InterpolateMthDerivative(order int, t float64) mgl64.Vec3 {
	const epsilon = 1e-9
	if t < 0.0 || t > 1.0 {
		return infVec3
	}
	if math.Abs(t) < epsilon {
		return s.start.MthDerivative(order)
	}
	if math.Abs(t-1.0) < epsilon {
		return s.end.MthDerivative(order)
	}
	return s.interpolateMthDerivative(order, t)
}

// ArcLength returns the arc length of the curve from 0 to t, using a
// fixed 5-point Legendre-Gauss quadrature of the first derivative's
// magnitude, rescaled to [0, t]. The rule's precision is fixed, not
// configurable. For t outside [0, 1] it returns [mgl64.InfPos].
func (s *IntervalCubicSpline) ArcLength(t float64) float64 {
	if t < 0.0 || t > 1.0 {
		return mgl64.InfPos
	}
	var length float64
	for _, coeff := range gaussLegendreCoeffs5 {
		wi, xi := coeff[0], coeff[1]
		length += wi * t * s.InterpolateMthDerivative(1, xi*t).Len()
	}
	return length
}

// HasLoop reports whether the curve self-intersects within [0, 1].
//
// This is a sufficient-condition test over the segment's Bézier
// control polygon, not an exact one: some exotic configurations that
// do self-intersect are reported as loop-free, and non-coplanar
// control points are conservatively reported as a loop.
func (s *IntervalCubicSpline) HasLoop() bool {
	const epsilon = 1e-12

	// Recover the Bézier representation, whose control points and
	// convex hull are defined as follows:
	//
	//     p2 o--------o p3
	//       /          \
	//    b /            \  c
	//     /      a       \
	// p1 o----------------o p4
	pmatrix := bernsteinBasis.Inv().Mul4(s.coeffs)

	p1 := pmatrix.Row(0).Vec3()
	p2 := pmatrix.Row(1).Vec3()
	p3 := pmatrix.Row(2).Vec3()
	p4 := pmatrix.Row(3).Vec3()

	a := p4.Sub(p1)
	b := p2.Sub(p1)
	c := p3.Sub(p4)

	axc := a.Cross(c)
	bxc := b.Cross(c)
	axb := a.Cross(b)

	if bxc.LenSqr() < epsilon {
		if axb.LenSqr() >= epsilon {
			// Tangents parallel to each other but not to the chord.
			return false
		}
		// All control points collinear. If the inner control points
		// go past each other, loops ensue.
		d := p3.Sub(p1)
		return d.Len() < b.Len()
	}

	if math.Abs(a.Dot(bxc)) > epsilon {
		// The control points are not coplanar. Non-planar
		// self-intersection is not solved here; report a loop.
		return true
	}

	hasLoop := false

	if axc.LenSqr() >= epsilon {
		// The end tangent is not collinear with the chord, so the
		// start tangent's projection meets it away from the start. A
		// scale factor below 1 means the tangent extends beyond that
		// intersection, which is sufficient (not necessary) for a
		// loop.
		hasLoop = hasLoop || math.Abs(axc.Dot(bxc)/bxc.LenSqr()) < 1.0
	}

	if axb.LenSqr() >= epsilon {
		// Same test with the roles of the tangents swapped.
		hasLoop = hasLoop || math.Abs(axb.Dot(bxc)/bxc.LenSqr()) < 1.0
	}

	return hasLoop
}
