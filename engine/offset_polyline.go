package engine

// offsetPolylineSingle offsets every segment of a Polyline independently
// and then reconciles each shared vertex into a single joint point,
// rebuilding a Polyline of the same vertex/segment topology (§4.10). Since
// an arc segment's offset (offsetArc) changes only its radius and keeps
// StartAngle/EndAngle fixed, the segment's swept angle — and therefore its
// bulge, which depends only on that angle — is unchanged by offsetting; a
// new vertex's bulge is simply copied from the source vertex at the same
// index.
//
// Joint reconciliation between two offset Line segments uses the
// intersection of their (virtually extended) infinite lines, the
// standard mitered-corner construction. A joint touching an offset Arc
// segment instead takes that segment's own endpoint directly: computing
// an exact line/arc or arc/arc mitered corner here would duplicate the
// general intersection kernel (C7) for a case the chain-level offset
// orchestrator (C11) already has to solve for joints between distinct
// shapes, so a standalone polyline primitive's internal joints accept the
// small residual gap an arc endpoint leaves, same as that orchestrator's
// snap-threshold path.
func offsetPolylineSingle(p Polyline, distance float64) (Primitive, []Diagnostic) {
	segCount := p.segmentCount()
	n := len(p.Vertices)
	var diags []Diagnostic

	offsetSegs := make([]Primitive, segCount)
	for i := 0; i < segCount; i++ {
		seg := p.segmentPrimitive(i)
		switch s := seg.(type) {
		case Line:
			offsetSegs[i] = offsetLine(s, distance)
		case Arc:
			oa, d := offsetArc(s, distance)
			diags = append(diags, d...)
			offsetSegs[i] = oa
		}
	}

	newPoints := make([]Point, n)
	for v := 0; v < n; v++ {
		hasPrev := p.Closed || v > 0
		hasNext := p.Closed || v < segCount
		prevIdx := (v - 1 + segCount) % segCount
		nextIdx := v % segCount

		switch {
		case hasPrev && hasNext:
			newPoints[v] = jointPoint(offsetSegs[prevIdx], offsetSegs[nextIdx], segmentEndPoint(offsetSegs[prevIdx]))
		case hasNext:
			newPoints[v] = segmentStartPoint(offsetSegs[nextIdx])
		case hasPrev:
			newPoints[v] = segmentEndPoint(offsetSegs[prevIdx])
		default:
			newPoints[v] = p.Vertices[v].Point
		}
	}

	out := make([]Vertex, n)
	for i := range out {
		out[i] = Vertex{Point: newPoints[i], Bulge: p.Vertices[i].Bulge}
	}

	result := Polyline{Vertices: out, Closed: p.Closed}
	if p.Closed && polylineSelfCollapsed(result) {
		diags = append(diags, newDiagnostic(OffsetCollapse, "", "closed polyline offset collapsed its enclosed area"))
	}
	return result, diags
}

func segmentStartPoint(p Primitive) Point {
	switch v := p.(type) {
	case Line:
		return v.Start
	case Arc:
		return v.StartPoint()
	default:
		return p.StartPoint()
	}
}

func segmentEndPoint(p Primitive) Point {
	switch v := p.(type) {
	case Line:
		return v.End
	case Arc:
		return v.EndPoint()
	default:
		return p.EndPoint()
	}
}

// jointPoint reconciles the shared vertex between prevSeg and nextSeg,
// mitering two lines and falling back to fallback (an endpoint) whenever
// either segment is an Arc or the two lines are parallel.
func jointPoint(prevSeg, nextSeg Primitive, fallback Point) Point {
	prevLine, prevOK := prevSeg.(Line)
	nextLine, nextOK := nextSeg.(Line)
	if !prevOK || !nextOK {
		return fallback
	}
	if pt, ok := segmentIntersect(prevLine.Start, prevLine.End, nextLine.Start, nextLine.End); ok {
		return pt
	}
	return fallback
}

// polylineSelfCollapsed is a coarse degeneracy check: a closed polyline
// whose offset vertices now enclose a near-zero area has collapsed.
func polylineSelfCollapsed(p Polyline) bool {
	pts := p.tessellate(8)
	area := 0.0
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return area < 1e-9 && area > -1e-9
}
