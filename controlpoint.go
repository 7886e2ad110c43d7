package curve3

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// A ControlPoint describes a curve at one end of an interval: the
// position and the successive derivatives of the curve at that point.
// Order 0 is the position itself, order 1 the tangent. Orders 2 and 3
// are derived by [IntervalCubicSpline.SetPoints] once the interval's
// polynomial is known; until then they are zero.
type ControlPoint struct {
	derivatives [4]mgl64.Vec3
}

// NewControlPoint returns a control point with the given position and
// tangent (first derivative).
func NewControlPoint(position, tangent mgl64.Vec3) ControlPoint {
	var cp ControlPoint
	cp.derivatives[0] = position
	cp.derivatives[1] = tangent
	return cp
}

// Position returns the control point's position.
func (cp ControlPoint) Position() mgl64.Vec3 {
	return cp.derivatives[0]
}

// SetPosition sets the control point's position.
func (cp *ControlPoint) SetPosition(p mgl64.Vec3) {
	cp.derivatives[0] = p
}

// MthDerivative returns the order-th derivative of the curve at the
// control point. Orders outside [0, 3] yield the zero vector; a cubic
// has no nonzero derivatives past the third.
func (cp ControlPoint) MthDerivative(order int) mgl64.Vec3 {
	if order < 0 || order >= len(cp.derivatives) {
		return mgl64.Vec3{}
	}
	return cp.derivatives[order]
}

// SetMthDerivative sets the order-th derivative of the curve at the
// control point. It panics if order is outside [0, 3].
func (cp *ControlPoint) SetMthDerivative(order int, v mgl64.Vec3) {
	cp.derivatives[order] = v
}

func (cp ControlPoint) String() string {
	return fmt.Sprintf("%v %v %v %v",
		cp.derivatives[0], cp.derivatives[1], cp.derivatives[2], cp.derivatives[3])
}
