package engine

import "testing"

func TestTranslateToPositiveShiftsEverythingToOrigin(t *testing.T) {
	l1, _ := NewLine(Point{-5, -5}, Point{5, 5})
	c, _ := NewCircle(Point{-10, 0}, 2)
	shapes := []Shape{NewShape("", l1), NewShape("", c)}

	out, err := TranslateToPositive(shapes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	box := out[0].Primitive.BoundingBox().Union(out[1].Primitive.BoundingBox())
	if box.Min.X != 0 || box.Min.Y != 0 {
		t.Errorf("expected the overall bounding box minimum at origin, got %+v", box.Min)
	}
}

func TestTranslateToPositiveEllipseMajorAxisVectorUnchanged(t *testing.T) {
	e, _ := NewEllipse(Point{-5, -5}, Point{3, 0}, 0.5)
	out, _ := TranslateToPositive([]Shape{NewShape("", e)})
	got := out[0].Primitive.(Ellipse)
	if got.MajorAxisEndpoint != (Point{3, 0}) {
		t.Errorf("expected MajorAxisEndpoint (a vector from center) to be unaffected by translation, got %+v", got.MajorAxisEndpoint)
	}
}

func TestTranslateToPositiveEmptyInput(t *testing.T) {
	out, err := TranslateToPositive(nil)
	if err != nil || out != nil {
		t.Errorf("expected (nil, nil) for empty input, got (%v, %v)", out, err)
	}
}

func TestTranslateToPositiveAlreadyPositiveIsNoop(t *testing.T) {
	l1, _ := NewLine(Point{0, 0}, Point{5, 5})
	out, err := TranslateToPositive([]Shape{NewShape("", l1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].Primitive.(Line) != l1 {
		t.Errorf("expected an already-positive drawing to be returned unchanged, got %+v", out[0].Primitive)
	}
}
