package engine

import "math"

// intersectNumeric is the general-purpose fallback used whenever at least
// one side of a pair is an Ellipse or Spline (no closed form exists for an
// arbitrary rational-curve intersection): both curves are densely
// tessellated, every pair of tessellation segments is tested for a
// straight-line crossing, and each crossing is then refined by a short
// Newton iteration on the true curve functions so the result is accurate
// to within tol rather than only to the tessellation's resolution.
func intersectNumeric(a, b Primitive, tol float64) []IntersectionResult {
	const samples = 200
	ptsA := a.Sample(samples)
	ptsB := b.Sample(samples)

	var out []IntersectionResult
	for i := 0; i < samples; i++ {
		a1, a2 := ptsA[i], ptsA[i+1]
		for j := 0; j < samples; j++ {
			b1, b2 := ptsB[j], ptsB[j+1]
			pt, ok := segmentIntersect(a1, a2, b1, b2)
			if !ok || !onSegment(pt, a1, a2) || !onSegment(pt, b1, b2) {
				continue
			}
			t1 := (float64(i) + localFraction(pt, a1, a2)) / float64(samples)
			t2 := (float64(j) + localFraction(pt, b1, b2)) / float64(samples)
			t1, t2, refined := refineIntersection(a, b, t1, t2)
			if !refined {
				continue
			}
			out = append(out, IntersectionResult{Point: primitivePointAt(a, t1), Param1: clamp01(t1), Param2: clamp01(t2)})
		}
	}
	return dedupResults(out, math.Max(tol, 1e-6))
}

func onSegment(p, a, b Point) bool {
	const eps = 1e-6
	minX, maxX := math.Min(a.X, b.X)-eps, math.Max(a.X, b.X)+eps
	minY, maxY := math.Min(a.Y, b.Y)-eps, math.Max(a.Y, b.Y)+eps
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

func localFraction(p, a, b Point) float64 {
	d := b.Sub(a)
	l := d.Dot(d)
	if l < 1e-18 {
		return 0
	}
	return clamp01(p.Sub(a).Dot(d) / l)
}

// refineIntersection runs a few steps of 2D Newton's method to find t1, t2
// such that primitivePointAt(a, t1) == primitivePointAt(b, t2), starting
// from the tessellation-derived estimate.
func refineIntersection(a, b Primitive, t1, t2 float64) (float64, float64, bool) {
	for iter := 0; iter < 8; iter++ {
		pa := primitivePointAt(a, t1)
		pb := primitivePointAt(b, t2)
		residual := pa.Sub(pb)
		if residual.Length() < 1e-9 {
			return t1, t2, true
		}
		ta, errA := a.TangentAt(clamp01(t1))
		tb, errB := b.TangentAt(clamp01(t2))
		if errA != nil || errB != nil {
			return 0, 0, false
		}
		// Solve [ta, -tb] * [dt1, dt2]^T = -residual for the Newton step.
		det := ta.X*(-tb.Y) - (-tb.X)*ta.Y
		if math.Abs(det) < 1e-15 {
			return 0, 0, false
		}
		dt1 := (-residual.X*(-tb.Y) - (-tb.X)*(-residual.Y)) / det
		dt2 := (ta.X*(-residual.Y) - ta.Y*(-residual.X)) / det
		t1 += dt1
		t2 += dt2
		if t1 < -0.25 || t1 > 1.25 || t2 < -0.25 || t2 > 1.25 {
			return 0, 0, false
		}
	}
	pa := primitivePointAt(a, clamp01(t1))
	pb := primitivePointAt(b, clamp01(t2))
	return t1, t2, pa.DistanceTo(pb) < 1e-6
}

// primitivePointAt evaluates any concrete Primitive at normalized
// parameter t. Primitive itself does not expose PointAt (each concrete
// type defines its own), so this type switch lists every concrete kind.
func primitivePointAt(p Primitive, t float64) Point {
	switch v := p.(type) {
	case Line:
		return v.PointAt(t)
	case Arc:
		return v.PointAt(t)
	case Circle:
		return v.PointAt(t)
	case Polyline:
		return v.PointAt(t)
	case Ellipse:
		return v.PointAt(t)
	case Spline:
		return v.PointAt(t)
	default:
		return p.Sample(1)[0]
	}
}
