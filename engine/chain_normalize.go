package engine

// NormalizeChain reorders and reverses chain.Shapes into a single walkable
// traversal (C5): starting from an arbitrary shape, it greedily extends
// the walk by finding, among the unplaced shapes, one whose start or end
// point meets the current walk's open end within opts.TraversalTolerance,
// reversing it if its end (not start) is the one that matches.
//
// If a greedy walk starting from shape i gets stuck before placing every
// shape, the walk restarts from shape i+1, for at most
// opts.MaxTraversalAttempts walks in total (and never more walks than
// shapes), starting from shape 0, per §4.5 — different starting shapes
// can escape a local dead end produced by coincident-but-wrong endpoint
// pairings.
func NormalizeChain(chain Chain, opts NormalizationOptions) (Chain, []Diagnostic) {
	opts = opts.withDefaults()
	n := len(chain.Shapes)
	if n <= 1 {
		return chain, nil
	}

	diags := detectCoincidencePairs(chain, opts.TraversalTolerance)
	attempts := opts.MaxTraversalAttempts
	if attempts > n {
		attempts = n
	}

	for start := 0; start < attempts; start++ {
		walked, ok := walkFrom(chain.Shapes, start, opts.TraversalTolerance)
		if ok {
			return Chain{ID: chain.ID, Shapes: walked}, diags
		}
	}

	diags = append(diags, newDiagnostic(BrokenTraversal, chain.ID,
		"could not order every shape into a walkable chain within the traversal attempt budget"))
	return chain, diags
}

// walkFrom attempts one greedy walk of shapes, starting from index
// startIdx, returning the ordered (possibly reversed) walk and whether
// every shape was placed.
func walkFrom(shapes []Shape, startIdx int, tol float64) ([]Shape, bool) {
	n := len(shapes)
	used := make([]bool, n)
	walk := make([]Shape, 0, n)

	walk = append(walk, shapes[startIdx])
	used[startIdx] = true
	openEnd := shapes[startIdx].Primitive.EndPoint()

	for len(walk) < n {
		nextIdx, reversed, found := findNextShape(shapes, used, openEnd, tol)
		if !found {
			return nil, false
		}
		next := shapes[nextIdx]
		if reversed {
			next = next.Reverse()
		}
		walk = append(walk, next)
		used[nextIdx] = true
		openEnd = next.Primitive.EndPoint()
	}
	return walk, true
}

// detectCoincidencePairs flags shapes whose start or end point coincides
// with more than one other shape's matching endpoint, a sign that the
// walk has an ambiguous branch point the greedy heuristic may resolve
// arbitrarily (§4.5).
func detectCoincidencePairs(chain Chain, tol float64) []Diagnostic {
	var diags []Diagnostic
	shapes := chain.Shapes
	for i := range shapes {
		endMatches, startMatches := 0, 0
		iEnd, iStart := shapes[i].Primitive.EndPoint(), shapes[i].Primitive.StartPoint()
		for j := range shapes {
			if i == j {
				continue
			}
			if boundsStrictlyWithinTolerance(iEnd, shapes[j].Primitive.StartPoint(), tol) ||
				boundsStrictlyWithinTolerance(iEnd, shapes[j].Primitive.EndPoint(), tol) {
				endMatches++
			}
			if boundsStrictlyWithinTolerance(iStart, shapes[j].Primitive.StartPoint(), tol) ||
				boundsStrictlyWithinTolerance(iStart, shapes[j].Primitive.EndPoint(), tol) {
				startMatches++
			}
		}
		if endMatches > 1 {
			diags = append(diags, newDiagnostic(CoincidentEndpoints, chain.ID,
				"shape endpoint coincides with more than one other shape's endpoint"))
		}
		if startMatches > 1 {
			diags = append(diags, newDiagnostic(CoincidentStartpoints, chain.ID,
				"shape start point coincides with more than one other shape's endpoint"))
		}
	}
	return diags
}

// findNextShape scans every unused shape for one whose start or end point
// meets openEnd within tol. When several candidates match, it prefers the
// one whose other (non-matching) endpoint is furthest from openEnd: that
// endpoint becomes the walk's new tail, and favoring distance keeps the
// walk making forward progress instead of doubling back into a branch
// point (§4.5).
func findNextShape(shapes []Shape, used []bool, openEnd Point, tol float64) (idx int, reversed, found bool) {
	bestDist := -1.0
	for i, s := range shapes {
		if used[i] {
			continue
		}
		if boundsStrictlyWithinTolerance(s.Primitive.StartPoint(), openEnd, tol) {
			if d := s.Primitive.EndPoint().DistanceTo(openEnd); d > bestDist {
				bestDist, idx, reversed, found = d, i, false, true
			}
		}
		if boundsStrictlyWithinTolerance(s.Primitive.EndPoint(), openEnd, tol) {
			if d := s.Primitive.StartPoint().DistanceTo(openEnd); d > bestDist {
				bestDist, idx, reversed, found = d, i, true, true
			}
		}
	}
	return idx, reversed, found
}
