package engine

import "math"

// Point is an ordered pair of finite reals (x, y). All primitives and
// derived geometry are expressed in terms of Point.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q treated as vectors.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the 2D cross product (z-component) of p and q treated as
// vectors from the origin.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Length returns the Euclidean norm of p treated as a vector.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// DistanceSquaredTo returns the squared Euclidean distance between p and q,
// used where only a comparison against a squared tolerance is needed (see
// chain detection's tie-break rule).
func (p Point) DistanceSquaredTo(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Near reports whether p and q are within tol of each other. tol == 0 is
// legal and requires bit-exact equality.
func (p Point) Near(q Point, tol float64) bool {
	return p.DistanceSquaredTo(q) <= tol*tol
}

// Normalize returns p scaled to unit length, or the zero vector if p is
// (numerically) the zero vector.
func (p Point) Normalize() Point {
	l := p.Length()
	if l < 1e-12 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// Rotate90CCW returns p rotated 90 degrees counter-clockwise about the
// origin: (x, y) -> (-y, x).
func (p Point) Rotate90CCW() Point { return Point{-p.Y, p.X} }

// Rotate90CW returns p rotated 90 degrees clockwise about the origin:
// (x, y) -> (y, -x).
func (p Point) Rotate90CW() Point { return Point{p.Y, -p.X} }

// Rotate returns p rotated by theta radians about the origin.
func (p Point) Rotate(theta float64) Point {
	s, c := math.Sincos(theta)
	return Point{p.X*c - p.Y*s, p.X*s + p.Y*c}
}

// IsFinite reports whether both coordinates of p are finite (no NaN, no
// +/-Inf). Primitive constructors use this to enforce their invariants.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Lerp returns the point a fraction t of the way from p to q; t is not
// clamped to [0, 1], so callers may use it to sample virtual extensions.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + t*(q.X-p.X), p.Y + t*(q.Y-p.Y)}
}

// Rect is an axis-aligned bounding box. An empty/degenerate Rect has
// Min == Max (legal: see translate-to-positive's zero-size bounding box
// edge case).
type Rect struct {
	Min, Max Point
}

// Width returns the extent of r along X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the extent of r along Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Union returns the smallest Rect enclosing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Point{math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)},
		Max: Point{math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)},
	}
}

// ExpandPoint grows r, if necessary, to enclose p.
func (r Rect) ExpandPoint(p Point) Rect {
	return Rect{
		Min: Point{math.Min(r.Min.X, p.X), math.Min(r.Min.Y, p.Y)},
		Max: Point{math.Max(r.Max.X, p.X), math.Max(r.Max.Y, p.Y)},
	}
}

// StrictlyInside reports whether r lies strictly inside o — the fast
// bounding-box reject used by part detection's containment test (§4.6).
func (r Rect) StrictlyInside(o Rect) bool {
	return r.Min.X > o.Min.X && r.Min.Y > o.Min.Y && r.Max.X < o.Max.X && r.Max.Y < o.Max.Y
}

// Intersects reports whether r and o overlap, including edge contact.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && r.Max.X >= o.Min.X && r.Min.Y <= o.Max.Y && r.Max.Y >= o.Min.Y
}

// rectFromPoint returns the degenerate Rect containing only p.
func rectFromPoint(p Point) Rect { return Rect{Min: p, Max: p} }

// unitNormalCCW returns the unit vector perpendicular to the directed
// segment pt1->pt2, rotated 90 degrees counter-clockwise of the direction
// of travel. Used by the offset kernel (C10): a positive signed distance
// along this normal is the "inset" direction for a counter-clockwise
// closed curve, whose interior lies to the left of travel.
func unitNormalCCW(pt1, pt2 Point) Point {
	d := pt2.Sub(pt1)
	n := d.Normalize()
	return n.Rotate90CCW()
}

// segmentIntersect finds the intersection point of the infinite lines
// through segments a1->a2 and b1->b2 using the determinant form; ok is
// false only for parallel lines. The segments' own bounds are not
// checked; callers that need them check separately. Adapted from the
// perpendicular-form segment intersection used throughout the offset
// kernel's joint handling.
func segmentIntersect(a1, a2, b1, b2 Point) (Point, bool) {
	d1 := a2.Sub(a1)
	d2 := b2.Sub(b1)
	denom := d1.Cross(d2)
	if math.Abs(denom) < 1e-12 {
		return Point{}, false
	}
	diff := b1.Sub(a1)
	t := diff.Cross(d2) / denom
	return a1.Add(d1.Scale(t)), true
}

// lineIntersectParams returns the parametric positions t (on a1->a2) and u
// (on b1->b2) at which the two infinite lines through those segments meet.
// ok is false only for parallel lines. intersectLineLine uses t and u to
// reject meeting points that fall outside either segment.
func lineIntersectParams(a1, a2, b1, b2 Point) (t, u float64, ok bool) {
	d1 := a2.Sub(a1)
	d2 := b2.Sub(b1)
	denom := d1.Cross(d2)
	if math.Abs(denom) < 1e-12 {
		return 0, 0, false
	}
	diff := b1.Sub(a1)
	t = diff.Cross(d2) / denom
	u = diff.Cross(d1) / denom
	return t, u, true
}
