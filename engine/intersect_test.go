package engine

import (
	"math"
	"testing"
)

func TestIntersectLineLine(t *testing.T) {
	l1, _ := NewLine(Point{0, 0}, Point{10, 10})
	l2, _ := NewLine(Point{0, 10}, Point{10, 0})
	results := IntersectPrimitives(l1, l2, 1e-6)
	if len(results) != 1 {
		t.Fatalf("expected 1 intersection, got %d", len(results))
	}
	if !results[0].Point.Near(Point{5, 5}, 1e-9) {
		t.Errorf("got %+v, want (5,5)", results[0].Point)
	}
}

func TestIntersectLineLineParallelNoResult(t *testing.T) {
	l1, _ := NewLine(Point{0, 0}, Point{10, 0})
	l2, _ := NewLine(Point{0, 5}, Point{10, 5})
	if results := IntersectPrimitives(l1, l2, 1e-6); len(results) != 0 {
		t.Errorf("expected no intersections between parallel lines, got %d", len(results))
	}
}

func TestIntersectCircleCircleTwoPoints(t *testing.T) {
	c1, _ := NewCircle(Point{0, 0}, 5)
	c2, _ := NewCircle(Point{6, 0}, 5)
	results := IntersectPrimitives(c1, c2, 1e-6)
	if len(results) != 2 {
		t.Fatalf("expected 2 intersections, got %d", len(results))
	}
	for _, r := range results {
		if math.Abs(r.Point.X-3) > 1e-6 {
			t.Errorf("expected intersection x=3 by symmetry, got %v", r.Point.X)
		}
	}
}

func TestIntersectLineCircleTangent(t *testing.T) {
	l, _ := NewLine(Point{-10, 5}, Point{10, 5})
	c, _ := NewCircle(Point{0, 0}, 5)
	results := IntersectPrimitives(l, c, 1e-6)
	if len(results) != 1 {
		t.Fatalf("expected exactly 1 tangent intersection, got %d", len(results))
	}
	if !results[0].Point.Near(Point{0, 5}, 1e-6) {
		t.Errorf("got %+v, want (0,5)", results[0].Point)
	}
}

func TestIntersectWithVirtualExtensionFindsBeyondEndpoints(t *testing.T) {
	l1, _ := NewLine(Point{0, 0}, Point{1, 0})
	l2, _ := NewLine(Point{5, -5}, Point{5, -1})

	if results := IntersectPrimitives(l1, l2, 1e-6); len(results) != 0 {
		t.Fatalf("expected no unextended intersection, got %d", len(results))
	}

	results, diags := IntersectWithVirtualExtension(l1, l2, 100, 1e-6)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(results) == 0 {
		t.Fatal("expected the extension search to find the lines' meeting point")
	}
	if !results[0].OnExtension {
		t.Error("expected OnExtension to be true")
	}
	if !results[0].Point.Near(Point{5, 0}, 1e-6) {
		t.Errorf("got %+v, want (5,0)", results[0].Point)
	}
}

func TestIntersectWithVirtualExtensionReportsNoSolution(t *testing.T) {
	l1, _ := NewLine(Point{0, 0}, Point{1, 0})
	l2, _ := NewLine(Point{0, 1}, Point{1, 1}) // parallel, never meets
	_, diags := IntersectWithVirtualExtension(l1, l2, 1000, 1e-6)
	if len(diags) == 0 || diags[0].Kind != NoSolution {
		t.Errorf("expected a NoSolution diagnostic, got %v", diags)
	}
}

func TestIntersectAllPairsParallelFindsCrossingPair(t *testing.T) {
	l1, _ := NewLine(Point{0, 0}, Point{10, 10})
	l2, _ := NewLine(Point{0, 10}, Point{10, 0})
	l3, _ := NewLine(Point{100, 100}, Point{110, 110}) // meets neither
	shapes := []Shape{NewShape("", l1), NewShape("", l2), NewShape("", l3)}

	got := IntersectAllPairsParallel(shapes, 1e-6)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 intersecting pair, got %d: %v", len(got), got)
	}
	results, ok := got[[2]int{0, 1}]
	if !ok {
		t.Fatalf("expected the (0,1) pair to be the intersecting one, got %v", got)
	}
	if !results[0].Point.Near(Point{5, 5}, 1e-9) {
		t.Errorf("got %+v, want (5,5)", results[0].Point)
	}
}

func TestIntersectAllPairsParallelFewerThanTwoShapes(t *testing.T) {
	l1, _ := NewLine(Point{0, 0}, Point{1, 1})
	if got := IntersectAllPairsParallel([]Shape{NewShape("", l1)}, 1e-6); len(got) != 0 {
		t.Errorf("expected no pairs for a single shape, got %v", got)
	}
}
