package engine

import "testing"

func TestFillGapAlreadyClosed(t *testing.T) {
	l1, _ := NewLine(Point{0, 0}, Point{10, 0})
	l2, _ := NewLine(Point{10, 0}, Point{10, 10})
	result := FillGap(NewShape("", l1), NewShape("", l2), FillOptions{})
	if !result.Success || result.Extension != 0 {
		t.Errorf("expected a no-op success for an already-touching pair, got %+v", result)
	}
}

func TestFillGapExtendsLineToMeetAnother(t *testing.T) {
	l1, _ := NewLine(Point{0, 0}, Point{8, 0}) // short of the corner at (10,0)
	l2, _ := NewLine(Point{10, 0}, Point{10, 10})
	result := FillGap(NewShape("", l1), NewShape("", l2), FillOptions{Tolerance: 1e-6, MaxExtension: 100})
	if !result.Success {
		t.Fatalf("expected success, got errors %v", result.Errors)
	}
	if !result.ExtendedShape.Primitive.EndPoint().Near(Point{10, 0}, 1e-6) {
		t.Errorf("expected extended shape to end at (10,0), got %+v", result.ExtendedShape.Primitive.EndPoint())
	}
	if result.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0 for an exact line extension, got %v", result.Confidence)
	}
}

func TestFillGapTooLargeFails(t *testing.T) {
	l1, _ := NewLine(Point{0, 0}, Point{1, 0})
	l2, _ := NewLine(Point{1000, 1000}, Point{1001, 1000})
	result := FillGap(NewShape("", l1), NewShape("", l2), FillOptions{Tolerance: 1e-6, MaxExtension: 10})
	if result.Success {
		t.Error("expected failure when the gap exceeds MaxExtension")
	}
}
