package engine

import (
	"math"
	"testing"
)

func TestArcReverseFlipsClockwise(t *testing.T) {
	a, err := NewArc(Point{0, 0}, 5, 0, math.Pi/2, false)
	if err != nil {
		t.Fatalf("NewArc() error = %v", err)
	}
	rev := a.Reverse().(Arc)
	if !rev.Clockwise {
		t.Error("expected Reverse() to flip Clockwise to true")
	}
	if rev.StartAngle != a.EndAngle || rev.EndAngle != a.StartAngle {
		t.Errorf("expected angles swapped, got start=%v end=%v", rev.StartAngle, rev.EndAngle)
	}
	if !a.StartPoint().Near(rev.EndPoint(), 1e-9) {
		t.Error("expected reversed arc's end point to equal the original's start point")
	}
	if !a.EndPoint().Near(rev.StartPoint(), 1e-9) {
		t.Error("expected reversed arc's start point to equal the original's end point")
	}
}

func TestNormalizeAngleDiffFullRevolution(t *testing.T) {
	got := normalizeAngleDiff(2 * math.Pi)
	if math.Abs(got-2*math.Pi) > 1e-9 {
		t.Errorf("normalizeAngleDiff(2*pi) = %v, want 2*pi (a full revolution, not zero)", got)
	}
}

func TestArcBoundingBoxIncludesInteriorExtrema(t *testing.T) {
	// A quarter arc from angle -pi/4 to pi/4 sweeps through theta=0, so its
	// bounding box must include the rightmost point of the circle even
	// though neither endpoint is that point.
	a, err := NewArc(Point{0, 0}, 10, -math.Pi/4, math.Pi/4, false)
	if err != nil {
		t.Fatalf("NewArc() error = %v", err)
	}
	box := a.BoundingBox()
	if math.Abs(box.Max.X-10) > 1e-6 {
		t.Errorf("expected box.Max.X = 10 (interior extremum at theta=0), got %v", box.Max.X)
	}
}

func TestArcLength(t *testing.T) {
	a, err := NewArc(Point{0, 0}, 2, 0, math.Pi, false)
	if err != nil {
		t.Fatalf("NewArc() error = %v", err)
	}
	want := 2 * math.Pi // radius 2, half revolution
	if math.Abs(a.Length()-want) > 1e-9 {
		t.Errorf("Length() = %v, want %v", a.Length(), want)
	}
}

func TestCircleToArcIsFullSweep(t *testing.T) {
	c, err := NewCircle(Point{1, 1}, 3)
	if err != nil {
		t.Fatalf("NewCircle() error = %v", err)
	}
	a := c.ToArc()
	if math.Abs(a.sweep()-twoPi) > 1e-9 {
		t.Errorf("expected full circle to lift into a 2*pi sweep arc, got %v", a.sweep())
	}
}
