package engine

import "testing"

func TestOptimizeCutOrderCutsHolesBeforeShell(t *testing.T) {
	shell := closedSquareChain("shell", 0, 0, 100)
	hole := closedSquareChain("hole", 40, 40, 10)
	part := Part{Shell: shell, Holes: []Chain{hole}}

	paths, _ := OptimizeCutOrder([]Part{part}, nil)
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	if paths[0].ChainID != "hole" {
		t.Errorf("expected the hole to be cut before the shell, got order %+v", paths)
	}
	if paths[1].ChainID != "shell" {
		t.Errorf("expected the shell last, got order %+v", paths)
	}
}

func TestOptimizeCutOrderNearestNeighborAcrossParts(t *testing.T) {
	near := closedSquareChain("near", 0, 0, 5)
	far := closedSquareChain("far", 500, 500, 5)
	closer := closedSquareChain("closer-to-near", 10, 0, 5)

	partNear := Part{Shell: near}
	partFar := Part{Shell: far}

	paths, moves := OptimizeCutOrder([]Part{partFar, partNear}, []Chain{closer})
	if len(paths) != 3 {
		t.Fatalf("expected 3 paths, got %d", len(paths))
	}
	if paths[0].ChainID != "near" {
		t.Errorf("expected the tour to start at whichever shape is nearest the origin, got %s", paths[0].ChainID)
	}
	if len(moves) != 2 {
		t.Errorf("expected 2 rapid moves between 3 paths, got %d", len(moves))
	}
}
