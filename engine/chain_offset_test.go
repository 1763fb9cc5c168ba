package engine

import "testing"

func TestOffsetChainByDistanceSnapsSmallGap(t *testing.T) {
	l1, _ := NewLine(Point{0, 0}, Point{10, 0})
	l2, _ := NewLine(Point{10, 0}, Point{10, 10})
	chain := Chain{ID: "c1", Shapes: []Shape{NewShape("", l1), NewShape("", l2)}}

	result, diags := OffsetChainByDistance(chain, 1, ChainOffsetOptions{Tolerance: 0.01, SnapThreshold: 5})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(result.Shapes) != 2 {
		t.Fatalf("expected 2 offset shapes, got %d", len(result.Shapes))
	}
	if len(result.GapFills) != 1 {
		t.Fatalf("expected 1 joint resolved, got %d", len(result.GapFills))
	}
	gap := result.Shapes[0].Primitive.EndPoint().DistanceTo(result.Shapes[1].Primitive.StartPoint())
	if gap > 0.01 {
		t.Errorf("expected the joint to be closed after offsetting, residual gap = %v", gap)
	}
}

func TestOffsetChainByDistanceCircleHasNoJoints(t *testing.T) {
	c, _ := NewCircle(Point{0, 0}, 10)
	chain := Chain{ID: "c1", Shapes: []Shape{NewShape("", c)}}
	result, diags := OffsetChainByDistance(chain, 2, ChainOffsetOptions{})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(result.GapFills) != 0 {
		t.Errorf("expected no joints for a single-shape closed circle chain, got %+v", result.GapFills)
	}
	out := result.Shapes[0].Primitive.(Circle)
	if out.Radius != 12 {
		t.Errorf("Radius = %v, want 12", out.Radius)
	}
}
