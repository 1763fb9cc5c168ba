package engine

import (
	"math"
	"testing"
)

func TestSplineEndpointsMatchClampedKnotVector(t *testing.T) {
	degree := 3
	controlPoints := []Point{{0, 0}, {1, 2}, {3, 2}, {4, 0}, {5, -2}}
	knots := clampedUniformKnots(degree, len(controlPoints))
	sp, err := NewSpline(degree, controlPoints, nil, knots, false)
	if err != nil {
		t.Fatalf("NewSpline() error = %v", err)
	}
	if !sp.StartPoint().Near(controlPoints[0], 1e-9) {
		t.Errorf("expected a clamped spline to start at its first control point, got %+v", sp.StartPoint())
	}
	if !sp.EndPoint().Near(controlPoints[len(controlPoints)-1], 1e-9) {
		t.Errorf("expected a clamped spline to end at its last control point, got %+v", sp.EndPoint())
	}
}

func TestSplineReverseMirrorsEndpoints(t *testing.T) {
	degree := 2
	controlPoints := []Point{{0, 0}, {2, 4}, {4, 0}}
	knots := clampedUniformKnots(degree, len(controlPoints))
	sp, err := NewSpline(degree, controlPoints, nil, knots, false)
	if err != nil {
		t.Fatalf("NewSpline() error = %v", err)
	}
	rev := sp.Reverse().(Spline)
	if !rev.StartPoint().Near(sp.EndPoint(), 1e-9) {
		t.Error("expected reversed spline to start where the original ended")
	}
	if !rev.EndPoint().Near(sp.StartPoint(), 1e-9) {
		t.Error("expected reversed spline to end where the original started")
	}
}

func TestFitNURBSLowResidualOnSmoothInput(t *testing.T) {
	var pts []Point
	for i := 0; i <= 20; i++ {
		x := float64(i)
		pts = append(pts, Point{x, math.Sin(x / 3)})
	}
	_, rms := fitNURBS(pts, 3, 8)
	if rms > 0.5 {
		t.Errorf("expected a low-residual fit of a smooth curve, got rms=%v", rms)
	}
}

func TestFindSpanClampsAtDomainEnd(t *testing.T) {
	knots := clampedUniformKnots(3, 6)
	n := 6 - 1
	span := findSpan(n, 3, knots[len(knots)-1], knots)
	if span != n {
		t.Errorf("findSpan at the last knot value = %d, want %d", span, n)
	}
}
