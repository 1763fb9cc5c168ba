package engine

import "sort"

// DetectParts classifies chains by closure, builds the containment forest
// among closed chains by nesting depth, and assigns shell/hole roles by
// depth parity: an even depth (0, 2, 4, ...) is a shell, odd is a hole
// nested one level inside its parent shell (C6, §4.6). Open chains never
// participate in containment; each open chain whose bounding box
// intersects a closed chain's bounding box produces an OverlappingBoundary
// diagnostic, since an open path crossing a closed boundary is usually
// unintended input.
func DetectParts(chains []Chain, params PartDetectionParameters) ([]Part, []Diagnostic) {
	params = params.withDefaults()
	var diags []Diagnostic

	var closed, open []Chain
	for _, c := range chains {
		if c.Closed(defaultClosureTolerance) {
			closed = append(closed, c)
		} else {
			open = append(open, c)
		}
	}

	boundaries := make([][]Point, len(closed))
	boxes := make([]Rect, len(closed))
	for i, c := range closed {
		boundaries[i] = c.tessellatedBoundary(params)
		boxes[i] = c.boundingBox()
	}

	// containers[i] lists the indices of every closed chain that contains
	// chain i (not just its immediate parent); depth is the count of such
	// containers.
	containers := make([][]int, len(closed))
	for i := range closed {
		if len(boundaries[i]) == 0 {
			continue
		}
		probe := boundaries[i][0]
		for j := range closed {
			if i == j || len(boundaries[j]) == 0 {
				continue
			}
			if !boxes[i].StrictlyInside(boxes[j]) {
				continue
			}
			if windingContains(probe, boundaries[j], defaultClosureTolerance) {
				containers[i] = append(containers[i], j)
			}
		}
	}

	depth := make([]int, len(closed))
	for i := range closed {
		depth[i] = len(containers[i])
	}

	parts := make(map[int]*Part)
	order := make([]int, 0, len(closed))
	for i, c := range closed {
		if depth[i]%2 == 0 {
			parts[i] = &Part{Shell: c}
			order = append(order, i)
		}
	}
	for i, c := range closed {
		if depth[i]%2 != 1 {
			continue
		}
		shellIdx := nearestEvenAncestor(i, containers, depth)
		if shellIdx < 0 {
			continue
		}
		if p, ok := parts[shellIdx]; ok {
			p.Holes = append(p.Holes, c)
		}
	}

	sort.Ints(order)
	out := make([]Part, 0, len(order))
	for _, idx := range order {
		out = append(out, *parts[idx])
	}

	for _, oc := range open {
		obox := oc.boundingBox()
		for i := range closed {
			if obox.Intersects(boxes[i]) {
				diags = append(diags, newDiagnostic(OverlappingBoundary, oc.ID,
					"open chain's bounding box overlaps a closed chain's boundary"))
				break
			}
		}
	}

	return out, diags
}

// nearestEvenAncestor walks up a chain's container set looking for the
// nearest (deepest) even-depth (shell) ancestor that directly contains it, i.e.
// the container whose own depth is exactly one less.
func nearestEvenAncestor(i int, containers [][]int, depth []int) int {
	for _, idx := range containers[i] {
		if depth[idx] == depth[i]-1 {
			return idx
		}
	}
	return -1
}
