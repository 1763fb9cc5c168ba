package engine

import "math"

// This file implements the closed-form pairwise intersections between
// Line, Arc, and Circle: a line against a line is a 2x2 linear solve, a
// line against a circle is the standard quadratic root, and two circles
// intersect via the classic two-circle radical-line construction. Arc is
// handled by computing against the arc's underlying circle/line and then
// filtering roots to those within the arc's angular sweep (an out-of-sweep
// root is simply omitted here; finding it anyway is what the virtual
// extension search in intersect.go is for).

func intersectLineLine(a, b Primitive, tol float64) []IntersectionResult {
	l1, l2 := a.(Line), b.(Line)
	t, u, ok := lineIntersectParams(l1.Start, l1.End, l2.Start, l2.End)
	if !ok {
		return nil
	}
	if t < -1e-9 || t > 1+1e-9 || u < -1e-9 || u > 1+1e-9 {
		return nil
	}
	pt := l1.Start.Add(l1.End.Sub(l1.Start).Scale(t))
	return []IntersectionResult{{Point: pt, Param1: clamp01(t), Param2: clamp01(u)}}
}

// lineCircleRoots returns the up-to-two parametric t values (along the
// infinite line through p0 with direction dir) where the line meets the
// circle (center, radius).
func lineCircleRoots(p0, dir, center Point, radius float64) []float64 {
	f := p0.Sub(center)
	a := dir.Dot(dir)
	if a < 1e-18 {
		return nil
	}
	b := 2 * f.Dot(dir)
	c := f.Dot(f) - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	// Roots less than 1e-9 apart along the line are one tangent point.
	if sq/math.Sqrt(a) < 1e-9 {
		return []float64{-b / (2 * a)}
	}
	return []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)}
}

func intersectLineCircle(a, b Primitive, tol float64) []IntersectionResult {
	l, c := a.(Line), b.(Circle)
	dir := l.End.Sub(l.Start)
	var out []IntersectionResult
	for _, t := range lineCircleRoots(l.Start, dir, c.Center, c.Radius) {
		if t < -1e-9 || t > 1+1e-9 {
			continue
		}
		pt := l.Start.Add(dir.Scale(t))
		theta := math.Atan2(pt.Y-c.Center.Y, pt.X-c.Center.X)
		out = append(out, IntersectionResult{Point: pt, Param1: clamp01(t), Param2: circleParamAtAngle(theta)})
	}
	return out
}

func intersectLineArc(a, b Primitive, tol float64) []IntersectionResult {
	l, arc := a.(Line), b.(Arc)
	dir := l.End.Sub(l.Start)
	var out []IntersectionResult
	for _, t := range lineCircleRoots(l.Start, dir, arc.Center, arc.Radius) {
		if t < -1e-9 || t > 1+1e-9 {
			continue
		}
		pt := l.Start.Add(dir.Scale(t))
		theta := math.Atan2(pt.Y-arc.Center.Y, pt.X-arc.Center.X)
		if !arc.inSweep(theta) {
			continue
		}
		out = append(out, IntersectionResult{Point: pt, Param1: clamp01(t), Param2: arcParamAtAngle(arc, theta)})
	}
	return out
}

// intersectCircleCircle uses the classic two-circle construction: the
// radical line perpendicular to the center line at distance a from
// center1, where a solves the law-of-cosines relation for the two radii
// and the center separation.
func intersectCircleCircle(a, b Primitive, tol float64) []IntersectionResult {
	c1, c2 := a.(Circle), b.(Circle)
	return circleCircleRoots(c1.Center, c1.Radius, c2.Center, c2.Radius, func(pt Point) (float64, float64) {
		t1 := circleParamAtAngle(math.Atan2(pt.Y-c1.Center.Y, pt.X-c1.Center.X))
		t2 := circleParamAtAngle(math.Atan2(pt.Y-c2.Center.Y, pt.X-c2.Center.X))
		return t1, t2
	})
}

func intersectArcCircle(a, b Primitive, tol float64) []IntersectionResult {
	arc, c := a.(Arc), b.(Circle)
	results := circleCircleRoots(arc.Center, arc.Radius, c.Center, c.Radius, func(pt Point) (float64, float64) {
		t1 := arcParamAtAngle(arc, math.Atan2(pt.Y-arc.Center.Y, pt.X-arc.Center.X))
		t2 := circleParamAtAngle(math.Atan2(pt.Y-c.Center.Y, pt.X-c.Center.X))
		return t1, t2
	})
	var out []IntersectionResult
	for _, r := range results {
		theta := math.Atan2(r.Point.Y-arc.Center.Y, r.Point.X-arc.Center.X)
		if arc.inSweep(theta) {
			out = append(out, r)
		}
	}
	return out
}

func intersectArcArc(a, b Primitive, tol float64) []IntersectionResult {
	arc1, arc2 := a.(Arc), b.(Arc)
	results := circleCircleRoots(arc1.Center, arc1.Radius, arc2.Center, arc2.Radius, func(pt Point) (float64, float64) {
		t1 := arcParamAtAngle(arc1, math.Atan2(pt.Y-arc1.Center.Y, pt.X-arc1.Center.X))
		t2 := arcParamAtAngle(arc2, math.Atan2(pt.Y-arc2.Center.Y, pt.X-arc2.Center.X))
		return t1, t2
	})
	var out []IntersectionResult
	for _, r := range results {
		theta1 := math.Atan2(r.Point.Y-arc1.Center.Y, r.Point.X-arc1.Center.X)
		theta2 := math.Atan2(r.Point.Y-arc2.Center.Y, r.Point.X-arc2.Center.X)
		if arc1.inSweep(theta1) && arc2.inSweep(theta2) {
			out = append(out, r)
		}
	}
	return out
}

// circleCircleRoots finds the 0, 1 (tangent), or 2 intersection points of
// two full circles and applies paramFn to convert each into the pair of
// primitive parameters the caller needs.
func circleCircleRoots(c1 Point, r1 float64, c2 Point, r2 float64, paramFn func(Point) (float64, float64)) []IntersectionResult {
	d := c1.DistanceTo(c2)
	if d < 1e-12 || d > r1+r2+1e-9 || d < math.Abs(r1-r2)-1e-9 {
		return nil
	}
	aDist := (r1*r1 - r2*r2 + d*d) / (2 * d)
	hSq := r1*r1 - aDist*aDist
	if hSq < 0 {
		hSq = 0
	}
	h := math.Sqrt(hSq)
	dir := c2.Sub(c1).Normalize()
	mid := c1.Add(dir.Scale(aDist))
	normal := dir.Rotate90CCW()

	if h < 1e-9 {
		t1, t2 := paramFn(mid)
		return []IntersectionResult{{Point: mid, Param1: t1, Param2: t2}}
	}
	p1 := mid.Add(normal.Scale(h))
	p2 := mid.Sub(normal.Scale(h))
	t1a, t2a := paramFn(p1)
	t1b, t2b := paramFn(p2)
	return []IntersectionResult{
		{Point: p1, Param1: t1a, Param2: t2a},
		{Point: p2, Param1: t1b, Param2: t2b},
	}
}

// circleParamAtAngle maps an absolute angle to a Circle's [0, 1]
// parameter, per Circle's PointAt(t) = angle t*2*pi convention.
func circleParamAtAngle(theta float64) float64 {
	n := math.Mod(theta, twoPi)
	if n < 0 {
		n += twoPi
	}
	return n / twoPi
}

// arcParamAtAngle maps an absolute angle known to lie within arc's sweep
// to its [0, 1] parameter.
func arcParamAtAngle(arc Arc, theta float64) float64 {
	sweep := arc.sweep()
	if sweep < 1e-12 {
		return 0
	}
	var pos float64
	if arc.Clockwise {
		pos = normalizeAngleDiff(arc.StartAngle - theta)
	} else {
		pos = normalizeAngleDiff(theta - arc.StartAngle)
	}
	// normalizeAngleDiff maps theta == StartAngle to a full turn, not 0.
	if pos >= twoPi-1e-9 {
		pos = 0
	} else if pos > sweep {
		pos = sweep
	}
	return pos / sweep
}
