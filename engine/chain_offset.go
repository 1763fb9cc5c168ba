package engine

import "math"

// GapFill records how one joint between two consecutively offset shapes
// was resolved.
type GapFill struct {
	JointIndex int
	GapSize    float64
	Method     string // "snap", "intersect", "extend", "drop_shorter"
}

// OffsetChain is the result of offsetting every shape in a source chain by
// a constant distance and reconciling the joints between them (C11).
type OffsetChain struct {
	OriginalChainID string
	Distance        float64
	Shapes          []Shape
	GapFills        []GapFill
}

// OffsetChainByDistance offsets every shape in chain by distance and
// resolves each joint in order: a gap already within opts.SnapThreshold is
// simply closed by moving both endpoints to their midpoint; otherwise the
// intersection kernel (with virtual extension) is tried; failing that, the
// fill kernel's extend-or-bridge fallback; and if even that fails, the
// shorter of the two neighboring shapes is dropped and the joint skipped
// (§4.11).
func OffsetChainByDistance(chain Chain, distance float64, opts ChainOffsetOptions) (OffsetChain, []Diagnostic) {
	opts = opts.withDefaults()
	var diags []Diagnostic

	shapes := make([]Shape, len(chain.Shapes))
	for i, s := range chain.Shapes {
		offsetPrim, d := OffsetPrimitive(s.Primitive, distance)
		diags = append(diags, d...)
		shapes[i] = derivedShape(s.Layer, offsetPrim)
	}

	closed := chain.Closed(opts.Tolerance)
	jointCount := len(shapes) - 1
	if closed {
		jointCount = len(shapes)
	}

	var fills []GapFill
	for i := 0; i < jointCount; i++ {
		a := i
		b := (i + 1) % len(shapes)
		gap := shapes[a].Primitive.EndPoint().DistanceTo(shapes[b].Primitive.StartPoint())
		if gap <= opts.Tolerance {
			continue
		}

		if gap <= opts.SnapThreshold {
			mid := shapes[a].Primitive.EndPoint().Lerp(shapes[b].Primitive.StartPoint(), 0.5)
			shapes[a] = shapes[a].withPrimitive(trimToPoint(shapes[a].Primitive, mid, false))
			shapes[b] = shapes[b].withPrimitive(trimToPoint(shapes[b].Primitive, mid, true))
			fills = append(fills, GapFill{JointIndex: i, GapSize: gap, Method: "snap"})
			continue
		}

		if results, _ := IntersectWithVirtualExtension(shapes[a].Primitive, shapes[b].Primitive, opts.MaxExtension, opts.Tolerance); len(results) > 0 {
			pt := nearestResultTo(results, shapes[a].Primitive.EndPoint())
			shapes[a] = shapes[a].withPrimitive(trimToPoint(shapes[a].Primitive, pt.Point, false))
			shapes[b] = shapes[b].withPrimitive(trimToPoint(shapes[b].Primitive, pt.Point, true))
			fills = append(fills, GapFill{JointIndex: i, GapSize: gap, Method: "intersect"})
			continue
		}

		fillResult := FillGap(shapes[a], shapes[b], FillOptions{Tolerance: opts.Tolerance, MaxExtension: opts.MaxExtension})
		if fillResult.Success {
			shapes[a] = fillResult.ExtendedShape
			fills = append(fills, GapFill{JointIndex: i, GapSize: gap, Method: "extend"})
			continue
		}

		if shapes[a].Primitive.Length() <= shapes[b].Primitive.Length() {
			shapes[a] = Shape{}
		} else {
			shapes[b] = Shape{}
		}
		diags = append(diags, newDiagnostic(SegmentDropped, chain.ID,
			"no joint solution found; dropped the shorter neighboring offset shape"))
		fills = append(fills, GapFill{JointIndex: i, GapSize: gap, Method: "drop_shorter"})
	}

	out := make([]Shape, 0, len(shapes))
	for _, s := range shapes {
		if s.ID != "" {
			out = append(out, s)
		}
	}

	return OffsetChain{OriginalChainID: chain.ID, Distance: distance, Shapes: out, GapFills: fills}, diags
}

func nearestResultTo(results []IntersectionResult, target Point) IntersectionResult {
	best := results[0]
	bestDist := target.DistanceTo(best.Point)
	for _, r := range results[1:] {
		if d := target.DistanceTo(r.Point); d < bestDist {
			best, bestDist = r, d
		}
	}
	return best
}

// trimToPoint adjusts one end of p to newPoint: atStart trims the start,
// otherwise the end. Line and Arc get an exact trim; Polyline moves its
// boundary vertex; Ellipse recomputes its local angle; Circle is lifted to
// a full Arc first (a bare circle never needs internal trimming in a
// single-shape chain, but a chain can still offset a circle shape
// adjacent to others after C3 decomposition). Spline trimming is not
// supported (no inverse-projection solver is implemented for NURBS in
// this kernel) and returns its input unchanged.
func trimToPoint(p Primitive, newPoint Point, atStart bool) Primitive {
	switch v := p.(type) {
	case Line:
		if atStart {
			return Line{Start: newPoint, End: v.End}
		}
		return Line{Start: v.Start, End: newPoint}
	case Arc:
		theta := math.Atan2(newPoint.Y-v.Center.Y, newPoint.X-v.Center.X)
		out := v
		if atStart {
			out.StartAngle = theta
		} else {
			out.EndAngle = theta
		}
		return out
	case Circle:
		return trimToPoint(v.ToArc(), newPoint, atStart)
	case Ellipse:
		if v.IsFull() {
			return v
		}
		theta := ellipseLocalAngle(v, newPoint)
		out := v
		if atStart {
			out.StartParam = &theta
		} else {
			out.EndParam = &theta
		}
		return out
	case Polyline:
		out := v.Clone().(Polyline)
		if atStart {
			out.Vertices[0].Point = newPoint
		} else {
			out.Vertices[len(out.Vertices)-1].Point = newPoint
		}
		return out
	default:
		return p
	}
}
