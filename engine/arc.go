package engine

import "math"

const twoPi = 2 * math.Pi

// Arc is a circular arc primitive. The swept region is determined by
// Clockwise together with (StartAngle, EndAngle); the angular span always
// resolves wraparound to a non-empty sweep in (0, 2*pi].
type Arc struct {
	Center               Point
	Radius               float64
	StartAngle, EndAngle float64
	Clockwise            bool
}

// NewArc constructs an Arc, rejecting a non-positive radius or non-finite
// inputs.
func NewArc(center Point, radius, startAngle, endAngle float64, clockwise bool) (Arc, error) {
	if !center.IsFinite() || math.IsNaN(startAngle) || math.IsNaN(endAngle) || radius <= 0 {
		return Arc{}, ErrInvalidGeometry
	}
	return Arc{Center: center, Radius: radius, StartAngle: startAngle, EndAngle: endAngle, Clockwise: clockwise}, nil
}

// normalizeAngleDiff maps delta into (0, 2*pi], treating an exact multiple
// of 2*pi as a full revolution rather than a zero sweep — this is what
// lets a Circle lift into a full Arc (§3, §4.8 Circle extension).
func normalizeAngleDiff(delta float64) float64 {
	d := math.Mod(delta, twoPi)
	if d <= 0 {
		d += twoPi
	}
	return d
}

// sweep returns the non-negative angular magnitude of the arc's span.
func (a Arc) sweep() float64 {
	if a.Clockwise {
		return normalizeAngleDiff(a.StartAngle - a.EndAngle)
	}
	return normalizeAngleDiff(a.EndAngle - a.StartAngle)
}

// angleAt returns the angle swept to reach parameter t in [0, 1].
func (a Arc) angleAt(t float64) float64 {
	sweep := a.sweep()
	if a.Clockwise {
		return a.StartAngle - t*sweep
	}
	return a.StartAngle + t*sweep
}

// pointAtAngle returns the point on the arc's circle at absolute angle
// theta.
func (a Arc) pointAtAngle(theta float64) Point {
	s, c := math.Sincos(theta)
	return Point{a.Center.X + a.Radius*c, a.Center.Y + a.Radius*s}
}

// inSweep reports whether absolute angle theta lies within the arc's span
// (inclusive of endpoints).
func (a Arc) inSweep(theta float64) bool {
	sweep := a.sweep()
	var pos float64
	if a.Clockwise {
		pos = normalizeAngleDiff(a.StartAngle - theta)
	} else {
		pos = normalizeAngleDiff(theta - a.StartAngle)
	}
	// normalizeAngleDiff maps theta == StartAngle to a full turn, not 0.
	return pos <= sweep+1e-9 || pos >= twoPi-1e-9
}

func (a Arc) Kind() PrimitiveKind { return KindArc }

func (a Arc) StartPoint() Point { return a.pointAtAngle(a.StartAngle) }
func (a Arc) EndPoint() Point   { return a.pointAtAngle(a.EndAngle) }

func (a Arc) PointAt(t float64) Point { return a.pointAtAngle(a.angleAt(t)) }

func (a Arc) TangentAt(t float64) (Point, error) {
	if a.Radius <= 0 {
		return Point{}, ErrDegenerate
	}
	theta := a.angleAt(t)
	s, c := math.Sincos(theta)
	tangent := Point{-s, c}
	if a.Clockwise {
		tangent = Point{s, -c}
	}
	return tangent, nil
}

// BoundingBox includes any axis extrema (theta = 0, pi/2, pi, 3*pi/2)
// interior to the sweep, not only the endpoints (§4.1).
func (a Arc) BoundingBox() Rect {
	box := rectFromPoint(a.StartPoint()).ExpandPoint(a.EndPoint())
	for _, theta := range [4]float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		if a.inSweep(theta) {
			box = box.ExpandPoint(a.pointAtAngle(theta))
		}
	}
	return box
}

// Reverse swaps the start/end angles AND flips Clockwise (§4.1, §4.5):
// omitting either half of this operation changes the swept region.
func (a Arc) Reverse() Primitive {
	return Arc{
		Center:     a.Center,
		Radius:     a.Radius,
		StartAngle: a.EndAngle,
		EndAngle:   a.StartAngle,
		Clockwise:  !a.Clockwise,
	}
}

func (a Arc) Sample(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = a.PointAt(float64(i) / float64(n))
	}
	return pts
}

// Contains is unsupported for a bare Arc (only a full circle is a closed
// region); a Circle should be used instead.
func (a Arc) Contains(point Point, tol float64) (bool, bool) { return false, false }

func (a Arc) Length() float64 { return a.Radius * a.sweep() }

func (a Arc) Clone() Primitive { return a }

// withSweep returns a copy of a with a new total sweep magnitude,
// preserving which end is the "start" and the rotation direction. Used by
// the extend/trim kernel (C8) to widen an arc's angular span.
func (a Arc) withSweep(newSweep float64, growStart bool) Arc {
	if newSweep > twoPi {
		newSweep = twoPi
	}
	out := a
	delta := newSweep - a.sweep()
	if a.Clockwise {
		if growStart {
			out.StartAngle = a.StartAngle + delta
		} else {
			out.EndAngle = a.EndAngle - delta
		}
	} else {
		if growStart {
			out.StartAngle = a.StartAngle - delta
		} else {
			out.EndAngle = a.EndAngle + delta
		}
	}
	return out
}

// translated returns a copy of a shifted by (dx, dy): only the center
// moves, angles/radius are preserved (§4.2).
func (a Arc) translated(dx, dy float64) Arc {
	out := a
	out.Center = a.Center.Add(Point{dx, dy})
	return out
}

var _ Primitive = Arc{}
