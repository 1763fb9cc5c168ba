package engine

import (
	"math"
	"sync"
)

// IntersectionResult is one intersection point between two primitives
// (C7). Param1/Param2 are each primitive's own [0, 1] parameterization at
// the intersection point (the polyline per-segment convention from §4.7
// applies when either primitive is a Polyline). OnExtension is true when
// the point only exists because one or both primitives were virtually
// extended to find it.
type IntersectionResult struct {
	Point       Point
	Param1      float64
	Param2      float64
	OnExtension bool
}

// intersectionHandler computes the raw (non-extension) intersections
// between two primitives of known concrete kinds.
type intersectionHandler func(a, b Primitive, tol float64) []IntersectionResult

// dispatch table keyed by (Kind, Kind); symmetric pairs are registered
// once and IntersectPrimitives swaps the result's Param1/Param2 when the
// call arrives in the opposite order.
var intersectionTable = map[[2]PrimitiveKind]intersectionHandler{
	{KindLine, KindLine}:     intersectLineLine,
	{KindLine, KindArc}:      intersectLineArc,
	{KindLine, KindCircle}:   intersectLineCircle,
	{KindArc, KindArc}:       intersectArcArc,
	{KindArc, KindCircle}:    intersectArcCircle,
	{KindCircle, KindCircle}: intersectCircleCircle,
}

// IntersectPrimitives computes every intersection between a and b without
// any virtual extension, dispatching to a closed-form handler for
// line/arc/circle pairs, to a per-segment search for any pair involving a
// Polyline, and to the sampling-based numeric solver for any other pair
// involving an Ellipse or Spline (§4.7).
func IntersectPrimitives(a, b Primitive, tol float64) []IntersectionResult {
	if pa, ok := a.(Polyline); ok {
		return intersectPolylineWith(pa, b, tol, false)
	}
	if pb, ok := b.(Polyline); ok {
		results := intersectPolylineWith(pb, a, tol, false)
		return swapParams(results)
	}

	key := [2]PrimitiveKind{a.Kind(), b.Kind()}
	if handler, ok := intersectionTable[key]; ok {
		return handler(a, b, tol)
	}
	swapped := [2]PrimitiveKind{b.Kind(), a.Kind()}
	if handler, ok := intersectionTable[swapped]; ok {
		return swapParams(handler(b, a, tol))
	}

	// Ellipse/Spline pairs (and any future curve kind) fall back to the
	// generic sampling-based numeric solver, since no closed form exists
	// for a general rational curve intersection.
	return intersectNumeric(a, b, tol)
}

func swapParams(results []IntersectionResult) []IntersectionResult {
	out := make([]IntersectionResult, len(results))
	for i, r := range results {
		out[i] = IntersectionResult{Point: r.Point, Param1: r.Param2, Param2: r.Param1, OnExtension: r.OnExtension}
	}
	return out
}

// intersectPolylineWith intersects every segment of pl against other,
// remapping each segment-local result into the whole-polyline parameter
// convention (segmentIndex + localT) / segmentCount (§4.7). When other is
// itself a Polyline, every pair of segments is intersected directly and
// both parameters are remapped. The swapped argument is not used; callers
// that pass pl second swap the parameters themselves.
func intersectPolylineWith(pl Polyline, other Primitive, tol float64, swapped bool) []IntersectionResult {
	var out []IntersectionResult
	segCount := pl.segmentCount()
	if otherPl, ok := other.(Polyline); ok {
		otherSegCount := otherPl.segmentCount()
		for i := 0; i < segCount; i++ {
			segA := pl.segmentPrimitive(i)
			for j := 0; j < otherSegCount; j++ {
				segB := otherPl.segmentPrimitive(j)
				for _, r := range IntersectPrimitives(segA, segB, tol) {
					out = append(out, IntersectionResult{
						Point:       r.Point,
						Param1:      (float64(i) + r.Param1) / float64(segCount),
						Param2:      (float64(j) + r.Param2) / float64(otherSegCount),
						OnExtension: r.OnExtension,
					})
				}
			}
		}
		return out
	}
	for i := 0; i < segCount; i++ {
		seg := pl.segmentPrimitive(i)
		for _, r := range IntersectPrimitives(seg, other, tol) {
			out = append(out, IntersectionResult{
				Point:       r.Point,
				Param1:      (float64(i) + r.Param1) / float64(segCount),
				Param2:      r.Param2,
				OnExtension: r.OnExtension,
			})
		}
	}
	return out
}

// IntersectWithVirtualExtension runs the three-way extension search of
// §4.7: if the unextended primitives do not meet, try extending a alone,
// then b alone, then both, up to maxExtension in each direction, returning
// the first search tier that produces a result. Because later tiers only
// run when earlier ones are empty, a single physical intersection never
// appears twice; the open question of a point found independently by both
// the "extend a" and "extend b" tiers (possible when the true intersection
// lies beyond both curves) is resolved by preferring the lower-extension
// tier and deduplicating by point proximity within tol.
func IntersectWithVirtualExtension(a, b Primitive, maxExtension, tol float64) ([]IntersectionResult, []Diagnostic) {
	if results := IntersectPrimitives(a, b, tol); len(results) > 0 {
		return results, nil
	}

	extA, okA := createExtended(a, maxExtension)
	if okA {
		if results := IntersectPrimitives(extA, b, tol); len(results) > 0 {
			return markOnExtension(results), nil
		}
	}
	extB, okB := createExtended(b, maxExtension)
	if okB {
		if results := IntersectPrimitives(a, extB, tol); len(results) > 0 {
			return markOnExtension(results), nil
		}
	}
	if okA && okB {
		results := IntersectPrimitives(extA, extB, tol)
		results = dedupResults(results, tol)
		if len(results) > 0 {
			return markOnExtension(results), nil
		}
	}

	return nil, []Diagnostic{newDiagnostic(NoSolution, "",
		"no intersection found within the configured search space, including virtual extensions")}
}

func markOnExtension(results []IntersectionResult) []IntersectionResult {
	out := make([]IntersectionResult, len(results))
	for i, r := range results {
		r.OnExtension = true
		out[i] = r
	}
	return out
}

func dedupResults(results []IntersectionResult, tol float64) []IntersectionResult {
	var out []IntersectionResult
	for _, r := range results {
		duplicate := false
		for _, seen := range out {
			if r.Point.DistanceTo(seen.Point) <= tol {
				duplicate = true
				break
			}
		}
		if !duplicate {
			out = append(out, r)
		}
	}
	return out
}

// clamp01 clamps t into [0, 1]; used when converting a raw line/circle
// parametric root or a refined curve parameter into the parameter a
// result reports.
func clamp01(t float64) float64 { return math.Min(1, math.Max(0, t)) }

// intersectParallelConcurrency bounds in-flight goroutines in
// IntersectAllPairsParallel; each pair's search touches no shared state
// beyond its own result slot.
const intersectParallelConcurrency = 8

// IntersectAllPairsParallel searches every unordered pair of shapes for
// intersections, fanning the O(n^2) pairwise search out across goroutines
// (C7, §5: "parallel pairwise intersection search"). The result is keyed
// by the pair's shape indices (i < j); pairs with no intersection are
// omitted from the map.
func IntersectAllPairsParallel(shapes []Shape, tol float64) map[[2]int][]IntersectionResult {
	n := len(shapes)
	out := make(map[[2]int][]IntersectionResult)
	if n < 2 {
		return out
	}

	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	results := make([][]IntersectionResult, len(pairs))
	sem := make(chan struct{}, intersectParallelConcurrency)
	var wg sync.WaitGroup
	for idx, pair := range pairs {
		wg.Add(1)
		go func(idx int, pair [2]int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[idx] = IntersectPrimitives(shapes[pair[0]].Primitive, shapes[pair[1]].Primitive, tol)
		}(idx, pair)
	}
	wg.Wait()

	for idx, pair := range pairs {
		if len(results[idx]) > 0 {
			out[pair] = results[idx]
		}
	}
	return out
}
