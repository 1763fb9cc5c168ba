package engine

import "sync"

// OffsetPrimitive computes a single primitive's constant-distance parallel
// curve (C10). distance is signed and, for Line, Arc, Polyline, Ellipse
// and Spline, measured along the normal 90 degrees counter-clockwise of
// the direction of travel: +distance moves a counter-clockwise closed
// curve inward (a counter-clockwise arc's radius shrinks) and a clockwise
// one outward (a clockwise arc's radius grows). A Circle carries no
// direction and its radius always grows by distance. Arc, Circle and
// Polyline offsets report OffsetCollapse when the result degenerates
// (radius <= 0, or a closed polyline's enclosed area vanishes); Ellipse
// and Spline refits report NoSolution when the fit stays above tolerance.
func OffsetPrimitive(p Primitive, distance float64) (Primitive, []Diagnostic) {
	switch v := p.(type) {
	case Line:
		return offsetLine(v, distance), nil
	case Arc:
		return offsetArc(v, distance)
	case Circle:
		return offsetCircle(v, distance)
	case Polyline:
		return offsetPolylineSingle(v, distance)
	case Ellipse, Spline:
		return offsetCurveByRefit(v, distance)
	default:
		return p, []Diagnostic{newDiagnostic(NoSolution, "", "no offset handler registered for this primitive kind")}
	}
}

func offsetLine(l Line, distance float64) Line {
	shift := l.UnitNormal().Scale(distance)
	return Line{Start: l.Start.Add(shift), End: l.End.Add(shift)}
}

func offsetArc(a Arc, distance float64) (Arc, []Diagnostic) {
	// Match the convention offsetLine uses (UnitNormal: 90 degrees CCW of
	// the direction of travel, §4.10). Rotating a clockwise arc's tangent
	// 90 degrees CCW points away from the center, so +distance grows the
	// radius; rotating a counter-clockwise arc's tangent the same way
	// points toward the center, so the sign flips. Without this, a mixed
	// line+arc chain offset by a single signed distance would move lines
	// and arcs in opposite senses.
	delta := distance
	if !a.Clockwise {
		delta = -distance
	}
	newRadius := a.Radius + delta
	if newRadius <= 0 {
		return a, []Diagnostic{newDiagnostic(OffsetCollapse, "", "arc offset collapsed to a non-positive radius")}
	}
	out := a
	out.Radius = newRadius
	return out, nil
}

// offsetParallelConcurrency bounds the number of in-flight goroutines in
// the *Parallel helpers; each primitive's offset is independent, so a
// plain worker-count semaphore is enough to keep this from spawning one
// goroutine per input on large drawings.
const offsetParallelConcurrency = 8

// OffsetPrimitivesParallel offsets every primitive in primitives
// independently and concurrently (C10, §5: per-primitive offset is
// data-parallel since no primitive's offset reads another's result).
// Results and diagnostics land at the same index as their input.
func OffsetPrimitivesParallel(primitives []Primitive, distance float64) ([]Primitive, [][]Diagnostic) {
	out := make([]Primitive, len(primitives))
	diags := make([][]Diagnostic, len(primitives))
	if len(primitives) == 0 {
		return out, diags
	}

	sem := make(chan struct{}, offsetParallelConcurrency)
	var wg sync.WaitGroup
	for i, p := range primitives {
		wg.Add(1)
		go func(i int, p Primitive) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			out[i], diags[i] = OffsetPrimitive(p, distance)
		}(i, p)
	}
	wg.Wait()
	return out, diags
}

func offsetCircle(c Circle, distance float64) (Circle, []Diagnostic) {
	newRadius := c.Radius + distance
	if newRadius <= 0 {
		return c, []Diagnostic{newDiagnostic(OffsetCollapse, "", "circle offset collapsed to a non-positive radius")}
	}
	return Circle{Center: c.Center, Radius: newRadius}, nil
}
