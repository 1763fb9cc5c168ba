package engine

import (
	"math"
	"testing"
)

func TestBulgeToArcRoundTrip(t *testing.T) {
	p1, p2 := Point{0, 0}, Point{10, 0}
	bulge := 1.0 // a semicircle bulge
	arc, ok := bulgeToArc(p1, p2, bulge)
	if !ok {
		t.Fatal("expected a valid arc")
	}
	if !validateBulgeArc(arc, p1, p2) {
		t.Error("expected the derived arc to validate against its own chord")
	}
	if math.Abs(arc.Radius-5) > 1e-6 {
		t.Errorf("expected radius 5 for a semicircle over a chord of length 10, got %v", arc.Radius)
	}
}

func TestBulgeToArcZeroBulgeIsNotAnArc(t *testing.T) {
	_, ok := bulgeToArc(Point{0, 0}, Point{1, 0}, 0)
	if ok {
		t.Error("expected a zero bulge to not produce an arc")
	}
}

func TestPolylineReverseOpenThreeVertex(t *testing.T) {
	pl, err := NewPolyline([]Vertex{
		{Point: Point{0, 0}, Bulge: 0.5},
		{Point: Point{10, 0}, Bulge: -0.25},
		{Point: Point{10, 10}, Bulge: 0},
	}, false)
	if err != nil {
		t.Fatalf("NewPolyline() error = %v", err)
	}
	rev := pl.Reverse().(Polyline)

	if !rev.StartPoint().Near(pl.EndPoint(), 1e-9) {
		t.Error("expected reversed polyline to start where the original ended")
	}
	if !rev.EndPoint().Near(pl.StartPoint(), 1e-9) {
		t.Error("expected reversed polyline to end where the original started")
	}
	// Segment 0 of the reversed polyline retraces original segment 1
	// (from vertex 1 to vertex 2), so its bulge must be the negation of
	// the original vertex 1's bulge.
	if got, want := rev.Vertices[0].Bulge, 0.25; math.Abs(got-want) > 1e-9 {
		t.Errorf("reversed segment 0 bulge = %v, want %v", got, want)
	}
}

func TestPolylineClosedSegmentCountIncludesWrapEdge(t *testing.T) {
	pl, err := NewPolyline([]Vertex{
		{Point: Point{0, 0}},
		{Point: Point{10, 0}},
		{Point: Point{10, 10}},
	}, true)
	if err != nil {
		t.Fatalf("NewPolyline() error = %v", err)
	}
	if got := pl.segmentCount(); got != 3 {
		t.Errorf("segmentCount() = %d, want 3 (closed triangle wraps back to vertex 0)", got)
	}
}

func TestPolylineLengthSumsSegments(t *testing.T) {
	pl, err := NewPolyline([]Vertex{
		{Point: Point{0, 0}},
		{Point: Point{3, 0}},
		{Point: Point{3, 4}},
	}, false)
	if err != nil {
		t.Fatalf("NewPolyline() error = %v", err)
	}
	if got, want := pl.Length(), 7.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("Length() = %v, want %v", got, want)
	}
}
