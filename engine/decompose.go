package engine

// DecomposePolylines explodes every Polyline shape in shapes into its
// constituent Line/Arc shapes (C3), leaving non-polyline shapes untouched.
// Exploded shapes get fresh identities (they no longer represent the
// source polyline) and inherit the source shape's layer. A two-vertex
// closed polyline explodes into a forward segment and a return segment
// from the second vertex back to the first, using the bulge stored at the
// second vertex (two antiparallel lines when both bulges are zero; §4.3's
// degenerate closed case);
// that return segment is retained rather than dropped, since chain
// detection relies on every shape contributing both endpoints.
func DecomposePolylines(shapes []Shape) ([]Shape, []Diagnostic) {
	var out []Shape
	var diags []Diagnostic
	for _, s := range shapes {
		pl, ok := s.Primitive.(Polyline)
		if !ok {
			out = append(out, s)
			continue
		}
		for i := 0; i < pl.segmentCount(); i++ {
			seg := pl.segmentPrimitive(i)
			a, _ := pl.segmentEndpointIndices(i)
			bulge := pl.Vertices[a].Bulge
			if _, isLine := seg.(Line); isLine && !isEffectivelyZero(bulge, epsilonBulge) {
				diags = append(diags, newDiagnostic(SegmentDropped, s.ID,
					"invalid bulge-derived arc fell back to a straight segment"))
			}
			out = append(out, derivedShape(s.Layer, seg))
		}
	}
	return out, diags
}
