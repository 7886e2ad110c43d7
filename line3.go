package curve3

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Line3 represents a line segment in 3D space.
type Line3 struct {
	// The segment's start point.
	A mgl64.Vec3
	// The segment's end point.
	B mgl64.Vec3
}

// Length returns the length of the segment.
func (l Line3) Length() float64 {
	return l.B.Sub(l.A).Len()
}

// Direction returns the unit vector pointing from A to B. The result
// is a NaN vector if the segment has zero length.
func (l Line3) Direction() mgl64.Vec3 {
	return l.B.Sub(l.A).Normalize()
}

// Eval evaluates the segment at parameter t, a linear interpolation
// between its endpoints. t = 0 maps to A, t = 1 to B.
func (l Line3) Eval(t float64) mgl64.Vec3 {
	return l.A.Add(l.B.Sub(l.A).Mul(t))
}

// Midpoint returns the midpoint of the segment.
func (l Line3) Midpoint() mgl64.Vec3 {
	return l.A.Add(l.B).Mul(0.5)
}

// Nearest returns the point on the segment nearest to pt, as the
// squared distance to it and its parameter.
func (l Line3) Nearest(pt mgl64.Vec3) (distSq, t float64) {
	d := l.B.Sub(l.A)
	dotp := d.Dot(pt.Sub(l.A))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.A).LenSqr(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.B).LenSqr(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).LenSqr()
		return dist, t
	}
}

// Subsegment returns the portion of the segment between the
// parameters start and end.
func (l Line3) Subsegment(start, end float64) Line3 {
	return Line3{l.Eval(start), l.Eval(end)}
}

// Subdivide subdivides the segment into halves.
func (l Line3) Subdivide() (Line3, Line3) {
	return l.Subsegment(0.0, 0.5), l.Subsegment(0.5, 1.0)
}

// ApproxEqual reports whether the segments' endpoints are
// componentwise equal within the default tolerance.
func (l Line3) ApproxEqual(o Line3) bool {
	return l.A.ApproxEqual(o.A) && l.B.ApproxEqual(o.B)
}

func (l Line3) IsInf() bool {
	return IsInf(l.A) || IsInf(l.B)
}

func (l Line3) IsNaN() bool {
	return IsNaN(l.A) || IsNaN(l.B)
}

func (l Line3) String() string {
	return fmt.Sprintf("%g %g %g %g %g %g",
		l.A.X(), l.A.Y(), l.A.Z(), l.B.X(), l.B.Y(), l.B.Z())
}
