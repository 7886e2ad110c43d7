package curve3

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLine3Length(t *testing.T) {
	l := Line3{mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 10, 10}}
	if got, want := l.Length(), math.Sqrt(300); math.Abs(got-want) > 1e-10 {
		t.Errorf("got length %g, want %g", got, want)
	}
}

func TestLine3Direction(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	l := Line3{mgl64.Vec3{1, 1, 2}, mgl64.Vec3{1, 1, 10}}
	diff(t, mgl64.Vec3{0, 0, 1}, l.Direction(), approx)

	l = Line3{mgl64.Vec3{1, 5, 1}, mgl64.Vec3{1, 1, 1}}
	diff(t, mgl64.Vec3{0, -1, 0}, l.Direction(), approx)

	// Scaling a segment does not change its direction.
	a := Line3{mgl64.Vec3{1, 1, 1}, mgl64.Vec3{0, 0, 0}}
	b := Line3{mgl64.Vec3{2, 2, 2}, mgl64.Vec3{0, 0, 0}}
	diff(t, a.Direction(), b.Direction(), approx)
}

func TestLine3Eval(t *testing.T) {
	l := Line3{mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 4, 6}}
	diff(t, l.A, l.Eval(0.0))
	diff(t, l.B, l.Eval(1.0))
	diff(t, mgl64.Vec3{1, 2, 3}, l.Eval(0.5))
	diff(t, mgl64.Vec3{1, 2, 3}, l.Midpoint())
}

func TestLine3Nearest(t *testing.T) {
	verify := func(l Line3, pt mgl64.Vec3, wantDistSq, wantT float64) {
		t.Helper()
		distSq, ts := l.Nearest(pt)
		if math.Abs(distSq-wantDistSq) > 1e-12 || math.Abs(ts-wantT) > 1e-12 {
			t.Errorf("Nearest(%v) = (%g, %g), want (%g, %g)", pt, distSq, ts, wantDistSq, wantT)
		}
	}

	l := Line3{mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 0, 0}}
	verify(l, mgl64.Vec3{5, 3, 0}, 9.0, 0.5)
	// Beyond either endpoint the endpoint itself is nearest.
	verify(l, mgl64.Vec3{-2, 0, 0}, 4.0, 0.0)
	verify(l, mgl64.Vec3{13, 0, 4}, 25.0, 1.0)
}

func TestLine3Subsegment(t *testing.T) {
	l := Line3{mgl64.Vec3{0, 0, 0}, mgl64.Vec3{4, 0, 8}}
	diff(t, Line3{mgl64.Vec3{1, 0, 2}, mgl64.Vec3{3, 0, 6}}, l.Subsegment(0.25, 0.75))

	left, right := l.Subdivide()
	diff(t, l.A, left.A)
	diff(t, l.Midpoint(), left.B)
	diff(t, l.Midpoint(), right.A)
	diff(t, l.B, right.B)
}

func TestLine3ApproxEqual(t *testing.T) {
	a := Line3{mgl64.Vec3{1, 1, 1}, mgl64.Vec3{2, 1, 2}}
	if !a.ApproxEqual(a) {
		t.Error("segment not equal to itself")
	}
	b := Line3{mgl64.Vec3{1, 2, 3}, mgl64.Vec3{2, 2, 4}}
	if a.ApproxEqual(b) {
		t.Error("distinct segments compare equal")
	}
}

func TestLine3IsInf(t *testing.T) {
	if (Line3{mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}
	if !(Line3{mgl64.Vec3{0, 0, 0}, mgl64.Vec3{math.Inf(1), 1, 1}}).IsInf() {
		t.Error("line is finite but shouldn't be")
	}
	if !(Line3{mgl64.Vec3{0, math.NaN(), 0}, mgl64.Vec3{1, 1, 1}}).IsNaN() {
		t.Error("line has no NaN but should")
	}
}

func TestLine3String(t *testing.T) {
	l := Line3{mgl64.Vec3{0, 1, 4}, mgl64.Vec3{2, 3, 7}}
	if got, want := l.String(), "0 1 4 2 3 7"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
