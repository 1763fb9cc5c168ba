package engine

import "testing"

func closedSquareChain(id string, minX, minY, size float64) Chain {
	p := []Vertex{
		{Point: Point{minX, minY}},
		{Point: Point{minX + size, minY}},
		{Point: Point{minX + size, minY + size}},
		{Point: Point{minX, minY + size}},
	}
	pl, _ := NewPolyline(p, true)
	return Chain{ID: id, Shapes: []Shape{NewShape("", pl)}}
}

func TestDetectPartsShellWithHole(t *testing.T) {
	shell := closedSquareChain("shell", 0, 0, 100)
	hole := closedSquareChain("hole", 25, 25, 10)

	parts, diags := DetectParts([]Chain{shell, hole}, PartDetectionParameters{})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(parts))
	}
	if parts[0].Shell.ID != "shell" {
		t.Errorf("expected shell chain to be the outer square, got %s", parts[0].Shell.ID)
	}
	if len(parts[0].Holes) != 1 || parts[0].Holes[0].ID != "hole" {
		t.Errorf("expected one hole chain, got %+v", parts[0].Holes)
	}
}

func TestDetectPartsNestedHoleWithinHoleIsItsOwnShell(t *testing.T) {
	outer := closedSquareChain("outer", 0, 0, 100)
	hole := closedSquareChain("hole", 20, 20, 60)
	island := closedSquareChain("island", 40, 40, 10)

	parts, _ := DetectParts([]Chain{outer, hole, island}, PartDetectionParameters{})
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts (outer-with-hole, island), got %d", len(parts))
	}
}

func TestDetectPartsSeparateSquaresAreIndependentParts(t *testing.T) {
	a := closedSquareChain("a", 0, 0, 10)
	b := closedSquareChain("b", 100, 100, 10)
	parts, _ := DetectParts([]Chain{a, b}, PartDetectionParameters{})
	if len(parts) != 2 {
		t.Fatalf("expected 2 independent parts, got %d", len(parts))
	}
}
