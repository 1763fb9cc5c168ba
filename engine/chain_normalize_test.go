package engine

import "testing"

func TestNormalizeChainWalksOutOfOrderReversedShapes(t *testing.T) {
	l1, _ := NewLine(Point{0, 0}, Point{10, 0})
	l2, _ := NewLine(Point{10, 10}, Point{10, 0}) // stored backward
	l3, _ := NewLine(Point{10, 10}, Point{0, 10}) // stored backward

	chain := Chain{ID: "c1", Shapes: []Shape{
		NewShape("", l1),
		NewShape("", l3),
		NewShape("", l2),
	}}

	normalized, diags := NormalizeChain(chain, NormalizationOptions{})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if !normalized.Walkable(defaultTraversalTolerance) {
		t.Fatal("expected a walkable result")
	}
	if len(normalized.Shapes) != 3 {
		t.Fatalf("expected 3 shapes, got %d", len(normalized.Shapes))
	}
	if !normalized.Shapes[0].Primitive.StartPoint().Near(Point{0, 0}, 1e-9) {
		t.Errorf("expected walk to start at (0,0), got %+v", normalized.Shapes[0].Primitive.StartPoint())
	}
}

func TestNormalizeChainSingleShapeIsNoop(t *testing.T) {
	l1, _ := NewLine(Point{0, 0}, Point{1, 1})
	chain := Chain{ID: "c1", Shapes: []Shape{NewShape("", l1)}}
	out, diags := NormalizeChain(chain, NormalizationOptions{})
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics for single-shape chain: %v", diags)
	}
	if out.Shapes[0].ID != chain.Shapes[0].ID {
		t.Error("expected single-shape chain to be returned unchanged")
	}
}

func TestFindNextShapePrefersFurthestOtherEndpoint(t *testing.T) {
	openEnd := Point{10, 0}
	near, _ := NewLine(Point{10, 0}, Point{10, 1})
	far, _ := NewLine(Point{10, 0}, Point{10, 5})
	shapes := []Shape{NewShape("", near), NewShape("", far)}
	used := make([]bool, len(shapes))

	idx, reversed, found := findNextShape(shapes, used, openEnd, 0.01)
	if !found {
		t.Fatal("expected a match")
	}
	if reversed {
		t.Error("expected no reversal: the candidate's start point already matches openEnd")
	}
	if idx != 1 {
		t.Errorf("expected the branch candidate with the furthest other endpoint (index 1) to win, got %d", idx)
	}
}

func TestNormalizeChainReportsBrokenTraversal(t *testing.T) {
	l1, _ := NewLine(Point{0, 0}, Point{10, 0})
	l2, _ := NewLine(Point{100, 100}, Point{200, 200}) // does not connect
	chain := Chain{ID: "c1", Shapes: []Shape{NewShape("", l1), NewShape("", l2)}}

	_, diags := NormalizeChain(chain, NormalizationOptions{})
	if len(diags) == 0 {
		t.Fatal("expected a BrokenTraversal diagnostic")
	}
	if diags[len(diags)-1].Kind != BrokenTraversal {
		t.Errorf("expected last diagnostic to be BrokenTraversal, got %v", diags[len(diags)-1].Kind)
	}
}
