package engine

import "math"

// windingContains reports whether point lies in the closed region bounded
// by the tessellated polygon boundary, using a winding-number test
// (§4.1's contains() contract, and the exact-test half of §4.6's
// containment test). A point within tol of any boundary edge counts as
// contained.
func windingContains(point Point, boundary []Point, tol float64) bool {
	n := len(boundary)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a, b := boundary[i], boundary[(i+1)%n]
		if pointNearSegment(point, a, b, tol) {
			return true
		}
	}
	return windingNumber(point, boundary) != 0
}

// windingNumber computes the winding number of boundary around point,
// positive for counter-clockwise loops, negative for clockwise.
func windingNumber(point Point, boundary []Point) int {
	wn := 0
	n := len(boundary)
	for i := 0; i < n; i++ {
		a, b := boundary[i], boundary[(i+1)%n]
		if a.Y <= point.Y {
			if b.Y > point.Y && isLeft(a, b, point) > 0 {
				wn++
			}
		} else {
			if b.Y <= point.Y && isLeft(a, b, point) < 0 {
				wn--
			}
		}
	}
	return wn
}

// isLeft returns > 0 if point is left of the line a->b, < 0 if right, 0
// if collinear.
func isLeft(a, b, point Point) float64 {
	return (b.X-a.X)*(point.Y-a.Y) - (point.X-a.X)*(b.Y-a.Y)
}

func pointNearSegment(point, a, b Point, tol float64) bool {
	d := b.Sub(a)
	length := d.Length()
	if length < 1e-12 {
		return point.DistanceTo(a) <= tol
	}
	t := point.Sub(a).Dot(d) / (length * length)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	closest := a.Add(d.Scale(t))
	return point.DistanceTo(closest) <= tol
}

// boundsStrictlyWithinTolerance reports whether a is within tol of b,
// used by the closure check for chains (§3: "start point of shapes[0]
// equals the end point of shapes[last] within closureTolerance").
func boundsStrictlyWithinTolerance(a, b Point, tol float64) bool {
	return a.DistanceTo(b) <= tol
}

// circularTessellationPoints returns the number of samples to use for an
// arc spanning `sweep` radians at a configured density (radians per
// sample), rounding up and never returning fewer than minPoints.
func circularTessellationPoints(sweep, densityPerRadian float64, minPoints int) int {
	n := int(math.Ceil(sweep / densityPerRadian))
	if n < minPoints {
		n = minPoints
	}
	return n
}
