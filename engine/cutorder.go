package engine

// Path names one chain to cut, with optional lead-in/lead-out points (§3,
// §4.12) — entry and exit points offset from the chain itself so the
// cutting tool pierces and retracts clear of the final part edge. Either
// may be nil when the chain needs none.
type Path struct {
	ChainID string
	LeadIn  *Point
	LeadOut *Point
}

// RapidMove is one non-cutting repositioning move the tool makes between
// the end of one path and the start of the next.
type RapidMove struct {
	From, To Point
	Distance float64
}

// cuttable pairs a chain with the part it belongs to (if any), used to
// enforce hole-before-shell ordering.
type cuttable struct {
	chain    Chain
	isHole   bool
	partIdx  int // index into the parts slice; -1 for a chain with no part
}

// OptimizeCutOrder orders every part's chains for cutting: within a part,
// every hole is cut before its shell (cutting the shell last keeps the
// workpiece anchored in the stock until its internal features are
// already free), and across parts/chains a greedy nearest-neighbor tour
// picks, at each step, whichever still-available chain's entry point is
// closest to the current tool position (§4.12). The tour starts at the
// origin (0, 0), matching the post-translate-to-positive convention that
// no geometry lies below or left of it.
func OptimizeCutOrder(parts []Part, looseChains []Chain) ([]Path, []RapidMove) {
	var items []cuttable
	for pi, part := range parts {
		for _, h := range part.Holes {
			items = append(items, cuttable{chain: h, isHole: true, partIdx: pi})
		}
		items = append(items, cuttable{chain: part.Shell, isHole: false, partIdx: pi})
	}
	for _, c := range looseChains {
		items = append(items, cuttable{chain: c, isHole: false, partIdx: -1})
	}

	used := make([]bool, len(items))

	var pathsOut []Path
	var moves []RapidMove
	current := Point{0, 0}

	for placed := 0; placed < len(items); placed++ {
		bestIdx := -1
		bestDist := 0.0
		for i, it := range items {
			if used[i] {
				continue
			}
			if !it.isHole && it.partIdx >= 0 && !allHolesDone(items, used, it.partIdx) {
				continue
			}
			entry := it.chain.Shapes[0].Primitive.StartPoint()
			d := current.DistanceTo(entry)
			if bestIdx < 0 || d < bestDist {
				bestIdx, bestDist = i, d
			}
		}
		if bestIdx < 0 {
			break
		}
		it := items[bestIdx]
		used[bestIdx] = true

		entry := it.chain.Shapes[0].Primitive.StartPoint()
		if len(pathsOut) > 0 {
			moves = append(moves, RapidMove{From: current, To: entry, Distance: current.DistanceTo(entry)})
		}
		pathsOut = append(pathsOut, Path{ChainID: it.chain.ID})
		current = it.chain.Shapes[len(it.chain.Shapes)-1].Primitive.EndPoint()
	}

	return pathsOut, moves
}

func allHolesDone(items []cuttable, used []bool, partIdx int) bool {
	for i, it := range items {
		if it.partIdx == partIdx && it.isHole && !used[i] {
			return false
		}
	}
	return true
}
