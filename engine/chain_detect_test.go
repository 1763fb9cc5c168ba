package engine

import "testing"

func TestDetectChainsGroupsCoincidentEndpoints(t *testing.T) {
	l1, _ := NewLine(Point{0, 0}, Point{10, 0})
	l2, _ := NewLine(Point{10, 0}, Point{10, 10})
	l3, _ := NewLine(Point{100, 100}, Point{200, 200})

	shapes := []Shape{
		NewShape("cut", l1),
		NewShape("cut", l2),
		NewShape("cut", l3),
	}

	chains := DetectChains(shapes, ChainDetectionOptions{Tolerance: 0.01})
	if len(chains) != 2 {
		t.Fatalf("expected 2 chains, got %d", len(chains))
	}

	sizes := map[int]int{}
	for _, c := range chains {
		sizes[len(c.Shapes)]++
	}
	if sizes[2] != 1 || sizes[1] != 1 {
		t.Errorf("expected one 2-shape chain and one 1-shape chain, got sizes %v", sizes)
	}
}

func TestDetectChainsZeroToleranceRequiresExactMatch(t *testing.T) {
	l1, _ := NewLine(Point{0, 0}, Point{10, 0})
	l2, _ := NewLine(Point{10.001, 0}, Point{10, 10})

	chains := DetectChains([]Shape{NewShape("", l1), NewShape("", l2)}, ChainDetectionOptions{Tolerance: 0})
	if len(chains) != 2 {
		t.Errorf("expected zero tolerance to keep near-but-not-exact endpoints separate, got %d chains", len(chains))
	}
}

func TestDetectChainsEmptyInput(t *testing.T) {
	chains := DetectChains(nil, ChainDetectionOptions{})
	if chains != nil {
		t.Errorf("expected nil for empty input, got %v", chains)
	}
}
