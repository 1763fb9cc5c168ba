package engine

import "github.com/google/uuid"

// DetectChains groups shapes into Chains by unioning any two shapes that
// share an endpoint within opts.Tolerance (C4). Chain membership order
// within a group is input order; it is not a walkable traversal order —
// that is the job of chain normalization (C5).
//
// The pairwise endpoint comparison is O(n^2) in shape count; this mirrors
// the reference Kruskal implementation's all-pairs edge collection before
// handing off to the union-find, and is acceptable at the shape counts a
// single CAM drawing produces.
func DetectChains(shapes []Shape, opts ChainDetectionOptions) []Chain {
	opts = opts.withDefaults()
	tol := opts.Tolerance

	n := len(shapes)
	if n == 0 {
		return nil
	}
	ds := newDisjointSet(n)
	endpoints := make([][2]Point, n)
	for i, s := range shapes {
		endpoints[i] = [2]Point{s.Primitive.StartPoint(), s.Primitive.EndPoint()}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if endpointsCoincide(endpoints[i], endpoints[j], tol) {
				ds.union(i, j)
			}
		}
	}

	groups := ds.groups()
	chains := make([]Chain, len(groups))
	for i, members := range groups {
		shapeSet := make([]Shape, len(members))
		for j, idx := range members {
			shapeSet[j] = shapes[idx]
		}
		chains[i] = Chain{ID: uuid.NewString(), Shapes: shapeSet}
	}
	return chains
}

// endpointsCoincide reports whether any of the four start/end pairings
// between two shapes' endpoints fall within tol, using squared distance to
// avoid a sqrt per comparison (chain detection's tie-break rule, §4.4).
func endpointsCoincide(a, b [2]Point, tol float64) bool {
	tolSq := tol * tol
	for _, pa := range a {
		for _, pb := range b {
			if pa.DistanceSquaredTo(pb) <= tolSq {
				return true
			}
		}
	}
	return false
}
