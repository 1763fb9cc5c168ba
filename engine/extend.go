package engine

import "math"

// createExtended returns a virtually-lengthened copy of p, used by the
// extension-aware intersection search (C7) to look for a meeting point
// beyond a primitive's actual endpoints. ok is false for primitives with
// no open end to grow: a full Circle, a full Ellipse, a closed Polyline,
// and a Spline (NURBS extrapolation beyond a clamped knot vector's domain
// is not a textbook-defined operation, so splines are excluded from the
// virtual-extension search entirely and only ever participate in
// unextended or fill-by-bridging-segment intersections).
func createExtended(p Primitive, length float64) (Primitive, bool) {
	switch v := p.(type) {
	case Line:
		dir := v.Direction().Normalize()
		return Line{Start: v.Start.Sub(dir.Scale(length)), End: v.End.Add(dir.Scale(length))}, true
	case Arc:
		return extendArcBothEnds(v, length), true
	case Circle:
		return p, false
	case Ellipse:
		if v.IsFull() {
			return p, false
		}
		return extendEllipseBothEnds(v, length), true
	case Polyline:
		return extendPolylineBothEnds(v, length)
	case Spline:
		return p, false
	default:
		return p, false
	}
}

// extendArcBothEnds grows an arc's sweep by the angle subtended by length
// at its radius, on both ends, capping the total sweep at a full
// revolution (beyond which it is no longer meaningfully "more extended";
// callers needing a full circle should use Circle directly).
func extendArcBothEnds(a Arc, length float64) Arc {
	if a.Radius < 1e-9 {
		return a
	}
	deltaAngle := length / a.Radius
	grown := a.withSweep(math.Min(a.sweep()+deltaAngle, twoPi), true)
	return grown.withSweep(math.Min(grown.sweep()+deltaAngle, twoPi), false)
}

func extendEllipseBothEnds(e Ellipse, length float64) Ellipse {
	r := (e.majorLength() + e.minorLength()) / 2
	if r < 1e-9 {
		return e
	}
	deltaAngle := length / r
	newSweep := math.Min(e.sweep()+2*deltaAngle, twoPi)
	growth := (newSweep - e.sweep()) / 2
	out := e
	start, end := *e.StartParam, *e.EndParam
	if e.Clockwise {
		start += growth
		end -= growth
	} else {
		start -= growth
		end += growth
	}
	out.StartParam, out.EndParam = &start, &end
	return out
}

// extendPolylineBothEnds extends a Polyline by lengthening its first and
// last segments in place when they are straight (Line) segments; an open
// polyline whose first or last segment is an arc is left as-is at that
// end (extending an arc segment embedded in a polyline would also need to
// re-derive the bulge, which §4.8 does not specify), so ok reflects
// whether at least one end was actually extended.
func extendPolylineBothEnds(p Polyline, length float64) (Polyline, bool) {
	if p.Closed || len(p.Vertices) < 2 {
		return p, false
	}
	out := p.Clone().(Polyline)
	extendedAny := false

	if isEffectivelyZero(out.Vertices[0].Bulge, epsilonBulge) {
		dir := out.Vertices[1].Point.Sub(out.Vertices[0].Point).Normalize()
		out.Vertices[0].Point = out.Vertices[0].Point.Sub(dir.Scale(length))
		extendedAny = true
	}
	n := len(out.Vertices)
	if isEffectivelyZero(out.Vertices[n-2].Bulge, epsilonBulge) {
		dir := out.Vertices[n-1].Point.Sub(out.Vertices[n-2].Point).Normalize()
		out.Vertices[n-1].Point = out.Vertices[n-1].Point.Add(dir.Scale(length))
		extendedAny = true
	}
	return out, extendedAny
}

// extendToPoint grows shape's geometry so that one of its ends reaches
// target (§4.8): direction selects which end grows, or, for ExtendAuto,
// whichever end is closer to target. Returns the extended shape (a new
// identity; see Shape's lifecycle note) and the extension applied: a
// length for Line and Arc, a change in parameter angle for Ellipse.
//
// The target is not checked against the shape's underlying curve: a
// Line's moving end is set to target wherever target lies (the line turns
// if target is off its extension), and an Arc's or Ellipse's moving end
// is set to target's angle about the center, so that end reaches target
// only when target is on the curve. ErrNotOnCurve is never returned.
func extendToPoint(shape Shape, target Point, direction ExtendDirection) (Shape, float64, error) {
	growStart := direction == ExtendStart
	if direction == ExtendAuto {
		startDist := shape.Primitive.StartPoint().DistanceTo(target)
		endDist := shape.Primitive.EndPoint().DistanceTo(target)
		growStart = startDist < endDist
	}

	switch v := shape.Primitive.(type) {
	case Line:
		anchor := v.Start
		if !growStart {
			anchor = v.End
		}
		newLen := anchor.DistanceTo(target)
		extended := v
		if growStart {
			extended = Line{Start: target, End: v.End}
		} else {
			extended = Line{Start: v.Start, End: target}
		}
		return derivedShape(shape.Layer, extended), newLen, nil

	case Arc:
		theta := math.Atan2(target.Y-v.Center.Y, target.X-v.Center.X)
		var newSweep float64
		if growStart {
			if v.Clockwise {
				newSweep = normalizeAngleDiff(theta - v.EndAngle)
			} else {
				newSweep = normalizeAngleDiff(v.EndAngle - theta)
			}
		} else {
			if v.Clockwise {
				newSweep = normalizeAngleDiff(v.StartAngle - theta)
			} else {
				newSweep = normalizeAngleDiff(theta - v.StartAngle)
			}
		}
		extension := v.Radius * (newSweep - v.sweep())
		extended := v.withSweep(newSweep, growStart)
		return derivedShape(shape.Layer, extended), math.Abs(extension), nil

	case Circle:
		// A Circle has no open end; lifting to a full Arc is the only
		// sense in which it can be "extended" (§4.8's Circle special case).
		return derivedShape(shape.Layer, v.ToArc()), 0, nil

	case Ellipse:
		if v.IsFull() {
			// Like a Circle, a full ellipse is lifted to an elliptical arc
			// spanning one full counter-clockwise turn from local angle 0.
			start, end := 0.0, twoPi
			out := v
			out.StartParam, out.EndParam = &start, &end
			out.Clockwise = false
			return derivedShape(shape.Layer, out), 0, nil
		}
		theta := ellipseLocalAngle(v, target)
		start, end := *v.StartParam, *v.EndParam
		if growStart {
			start = theta
		} else {
			end = theta
		}
		out := v
		out.StartParam, out.EndParam = &start, &end
		return derivedShape(shape.Layer, out), out.sweep() - v.sweep(), nil

	default:
		return shape, 0, ErrInvalidGeometry
	}
}

// ellipseLocalAngle returns the eccentric-anomaly angle of target in the
// ellipse's local, unrotated frame, the inverse of Ellipse.pointAtAngle.
func ellipseLocalAngle(e Ellipse, target Point) float64 {
	local := target.Sub(e.Center).Rotate(-e.rotation())
	a, b := e.majorLength(), e.minorLength()
	if a < 1e-12 || b < 1e-12 {
		return 0
	}
	return math.Atan2(local.Y/b, local.X/a)
}
