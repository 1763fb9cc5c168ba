package engine

import "math"

// Circle is a closed curve of constant radius about Center. It carries no
// direction flag: Sample, TangentAt and ToArc all traverse it
// counter-clockwise by convention, matching Arc{Clockwise: false}.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle constructs a Circle, rejecting a non-positive radius.
func NewCircle(center Point, radius float64) (Circle, error) {
	if !center.IsFinite() || radius <= 0 {
		return Circle{}, ErrInvalidGeometry
	}
	return Circle{Center: center, Radius: radius}, nil
}

func (c Circle) Kind() PrimitiveKind { return KindCircle }

// StartPoint and EndPoint both return the point at parameter 0, the
// rightmost point of the circle (§4.1).
func (c Circle) StartPoint() Point { return Point{c.Center.X + c.Radius, c.Center.Y} }
func (c Circle) EndPoint() Point   { return c.StartPoint() }

func (c Circle) PointAt(t float64) Point {
	theta := t * twoPi
	s, cs := math.Sincos(theta)
	return Point{c.Center.X + c.Radius*cs, c.Center.Y + c.Radius*s}
}

func (c Circle) TangentAt(t float64) (Point, error) {
	if c.Radius <= 0 {
		return Point{}, ErrDegenerate
	}
	theta := t * twoPi
	s, cs := math.Sincos(theta)
	return Point{-s, cs}, nil
}

func (c Circle) BoundingBox() Rect {
	return Rect{
		Min: Point{c.Center.X - c.Radius, c.Center.Y - c.Radius},
		Max: Point{c.Center.X + c.Radius, c.Center.Y + c.Radius},
	}
}

// Reverse is the identity: a Circle carries no direction flag, so there is
// no state to flip and its point set is unchanged under reversal.
func (c Circle) Reverse() Primitive { return c }

func (c Circle) Sample(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = c.PointAt(float64(i) / float64(n))
	}
	return pts
}

// Contains reports whether point lies within tol of the disk bounded by c.
func (c Circle) Contains(point Point, tol float64) (bool, bool) {
	return point.DistanceTo(c.Center) <= c.Radius+tol, true
}

func (c Circle) Length() float64 { return twoPi * c.Radius }

func (c Circle) Clone() Primitive { return c }

// ToArc lifts the circle into a full Arc spanning 2*pi, as required by
// intersection (C7) and extension (C8) operations that only know how to
// operate on Arc/Line curves.
func (c Circle) ToArc() Arc {
	return Arc{Center: c.Center, Radius: c.Radius, StartAngle: 0, EndAngle: twoPi, Clockwise: false}
}

func (c Circle) translated(dx, dy float64) Circle {
	out := c
	out.Center = c.Center.Add(Point{dx, dy})
	return out
}

var _ Primitive = Circle{}
