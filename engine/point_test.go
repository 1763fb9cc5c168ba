package engine

import (
	"math"
	"testing"
)

func TestPointDistanceTo(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same point", Point{0, 0}, Point{0, 0}, 0},
		{"3-4-5 triangle", Point{0, 0}, Point{3, 4}, 5},
		{"negative coords", Point{-1, -1}, Point{2, 3}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.DistanceTo(tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DistanceTo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	r1 := Rect{Min: Point{0, 0}, Max: Point{1, 1}}
	r2 := Rect{Min: Point{-1, 0.5}, Max: Point{2, 3}}
	u := r1.Union(r2)
	want := Rect{Min: Point{-1, 0}, Max: Point{2, 3}}
	if u != want {
		t.Errorf("Union() = %+v, want %+v", u, want)
	}
}

func TestRectStrictlyInside(t *testing.T) {
	outer := Rect{Min: Point{0, 0}, Max: Point{10, 10}}
	inner := Rect{Min: Point{1, 1}, Max: Point{9, 9}}
	touching := Rect{Min: Point{0, 1}, Max: Point{5, 5}}
	if !inner.StrictlyInside(outer) {
		t.Error("expected inner to be strictly inside outer")
	}
	if touching.StrictlyInside(outer) {
		t.Error("expected touching rect to not be strictly inside outer")
	}
}

func TestSegmentIntersect(t *testing.T) {
	pt, ok := segmentIntersect(Point{0, 0}, Point{10, 10}, Point{0, 10}, Point{10, 0})
	if !ok {
		t.Fatal("expected an intersection")
	}
	if math.Abs(pt.X-5) > 1e-9 || math.Abs(pt.Y-5) > 1e-9 {
		t.Errorf("got %+v, want (5, 5)", pt)
	}

	_, ok = segmentIntersect(Point{0, 0}, Point{10, 0}, Point{0, 1}, Point{10, 1})
	if ok {
		t.Error("expected parallel lines to report no intersection")
	}
}
