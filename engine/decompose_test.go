package engine

import "testing"

func TestDecomposePolylinesProducesLineAndArcShapes(t *testing.T) {
	pl, _ := NewPolyline([]Vertex{
		{Point: Point{0, 0}, Bulge: 0},
		{Point: Point{10, 0}, Bulge: 1},
		{Point: Point{10, 10}, Bulge: 0},
	}, false)

	out, diags := DecomposePolylines([]Shape{NewShape("cut", pl)})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 exploded shapes, got %d", len(out))
	}
	if _, ok := out[0].Primitive.(Line); !ok {
		t.Errorf("expected segment 0 to be a Line, got %T", out[0].Primitive)
	}
	if _, ok := out[1].Primitive.(Arc); !ok {
		t.Errorf("expected segment 1 (bulge=1) to be an Arc, got %T", out[1].Primitive)
	}
}

func TestDecomposePolylinesLeavesOtherKindsUntouched(t *testing.T) {
	c, _ := NewCircle(Point{0, 0}, 5)
	shape := NewShape("", c)
	out, _ := DecomposePolylines([]Shape{shape})
	if len(out) != 1 || out[0].ID != shape.ID {
		t.Error("expected a non-polyline shape to pass through with its identity intact")
	}
}

func TestDecomposePolylinesGivesFreshIdentity(t *testing.T) {
	pl, _ := NewPolyline([]Vertex{{Point: Point{0, 0}}, {Point: Point{1, 0}}}, false)
	shape := NewShape("", pl)
	out, _ := DecomposePolylines([]Shape{shape})
	if out[0].ID == shape.ID {
		t.Error("expected exploded segments to get a fresh identity, not inherit the polyline's")
	}
}
