package engine

import "math"

// Line is a straight primitive from Start to End. Parameterization t in
// [0, 1] maps to Start + t*(End-Start).
type Line struct {
	Start, End Point
}

// NewLine constructs a Line, rejecting non-finite endpoints and
// zero-length segments per the primitive invariants (§3).
func NewLine(start, end Point) (Line, error) {
	if !start.IsFinite() || !end.IsFinite() {
		return Line{}, ErrInvalidGeometry
	}
	if start.Near(end, 0) {
		return Line{}, ErrInvalidGeometry
	}
	return Line{Start: start, End: end}, nil
}

func (l Line) Kind() PrimitiveKind { return KindLine }

func (l Line) StartPoint() Point { return l.Start }
func (l Line) EndPoint() Point   { return l.End }

func (l Line) PointAt(t float64) Point { return l.Start.Lerp(l.End, t) }

func (l Line) TangentAt(t float64) (Point, error) {
	dir := l.End.Sub(l.Start)
	if dir.Length() < 1e-12 {
		return Point{}, ErrDegenerate
	}
	return dir.Normalize(), nil
}

func (l Line) BoundingBox() Rect {
	return rectFromPoint(l.Start).ExpandPoint(l.End)
}

// Reverse swaps Start and End; no other state exists to flip.
func (l Line) Reverse() Primitive {
	return Line{Start: l.End, End: l.Start}
}

func (l Line) Sample(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = l.PointAt(float64(i) / float64(n))
	}
	return pts
}

// Contains is unsupported for a Line: a line segment is never a closed
// region.
func (l Line) Contains(point Point, tol float64) (bool, bool) { return false, false }

func (l Line) Length() float64 { return l.Start.DistanceTo(l.End) }

func (l Line) Clone() Primitive { return Line{Start: l.Start, End: l.End} }

// Direction returns the (non-unit) vector from Start to End.
func (l Line) Direction() Point { return l.End.Sub(l.Start) }

// UnitNormal returns the unit normal 90 degrees counter-clockwise of the
// line's direction of travel, used by the offset kernel.
func (l Line) UnitNormal() Point { return unitNormalCCW(l.Start, l.End) }

// translated returns a copy of l shifted by (dx, dy). Angles are
// irrelevant for a line; both endpoints move.
func (l Line) translated(dx, dy float64) Line {
	shift := Point{dx, dy}
	return Line{Start: l.Start.Add(shift), End: l.End.Add(shift)}
}

var _ Primitive = Line{}

// nearlyEqualLength reports whether a and b differ by less than eps. No
// code in the package calls it.
func nearlyEqualLength(a, b, eps float64) bool { return math.Abs(a-b) < eps }
