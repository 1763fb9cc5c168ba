package engine

import "math"

// Spline is a NURBS curve: degree >= 1, a clamped non-decreasing knot
// vector, control points, optional per-control-point weights (nil means a
// non-rational B-spline, i.e. all weights 1), and optional fit points
// retained only as metadata (§3).
type Spline struct {
	Degree        int
	ControlPoints []Point
	Weights       []float64
	Knots         []float64
	FitPoints     []Point
	Closed        bool
}

// NewSpline constructs a Spline, validating the textbook NURBS invariants:
// degree >= 1, a clamped non-decreasing knot vector of the right length,
// and (if present) one weight per control point.
func NewSpline(degree int, controlPoints []Point, weights, knots []float64, closed bool) (Spline, error) {
	if degree < 1 || len(controlPoints) < degree+1 {
		return Spline{}, ErrInvalidGeometry
	}
	expectedKnots := len(controlPoints) + degree + 1
	if len(knots) != expectedKnots {
		return Spline{}, ErrInvalidGeometry
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] || math.IsNaN(knots[i]) {
			return Spline{}, ErrInvalidGeometry
		}
	}
	// Clamped: the first and last degree+1 knots are each repeated.
	last := len(knots) - 1
	for i := 1; i <= degree; i++ {
		if knots[i] != knots[0] || knots[last-i] != knots[last] {
			return Spline{}, ErrInvalidGeometry
		}
	}
	for _, cp := range controlPoints {
		if !cp.IsFinite() {
			return Spline{}, ErrInvalidGeometry
		}
	}
	if weights != nil {
		if len(weights) != len(controlPoints) {
			return Spline{}, ErrInvalidGeometry
		}
		for _, w := range weights {
			if w <= 0 || math.IsNaN(w) {
				return Spline{}, ErrInvalidGeometry
			}
		}
	}
	return Spline{
		Degree:        degree,
		ControlPoints: append([]Point(nil), controlPoints...),
		Weights:       append([]float64(nil), weights...),
		Knots:         append([]float64(nil), knots...),
		Closed:        closed,
	}, nil
}

func (s Spline) Kind() PrimitiveKind { return KindSpline }

func (s Spline) n() int      { return len(s.ControlPoints) - 1 }
func (s Spline) domainLo() float64 { return s.Knots[s.Degree] }
func (s Spline) domainHi() float64 { return s.Knots[s.n()+1] }

// toDomain maps a normalized parameter t in [0, 1] to the curve's raw
// knot-domain value.
func (s Spline) toDomain(t float64) float64 {
	lo, hi := s.domainLo(), s.domainHi()
	return lo + t*(hi-lo)
}

func (s Spline) PointAt(t float64) Point {
	return evalNURBS(s.toDomain(t), s.Degree, s.ControlPoints, s.Weights, s.Knots)
}

func (s Spline) StartPoint() Point { return s.PointAt(0) }
func (s Spline) EndPoint() Point   { return s.PointAt(1) }

func (s Spline) TangentAt(t float64) (Point, error) {
	d := derivNURBS(s.toDomain(t), s.Degree, s.ControlPoints, s.Weights, s.Knots)
	if d.Length() < 1e-12 {
		return Point{}, ErrDegenerate
	}
	return d.Normalize(), nil
}

// BoundingBox relies on the convex-hull property of (rational) B-splines:
// the curve always lies within the convex hull of its control polygon, so
// the control points' axis-aligned box is always a valid (if sometimes
// loose) enclosing box.
func (s Spline) BoundingBox() Rect {
	box := rectFromPoint(s.ControlPoints[0])
	for _, cp := range s.ControlPoints[1:] {
		box = box.ExpandPoint(cp)
	}
	return box
}

// Reverse reverses control points, reverses weights, and mirrors the knot
// vector around its midpoint (§4.1) — all three must happen together or
// the reversed curve does not retrace the same point set.
func (s Spline) Reverse() Primitive {
	n := len(s.ControlPoints)
	cps := make([]Point, n)
	for i, cp := range s.ControlPoints {
		cps[n-1-i] = cp
	}
	var weights []float64
	if s.Weights != nil {
		weights = make([]float64, n)
		for i, w := range s.Weights {
			weights[n-1-i] = w
		}
	}
	knots := make([]float64, len(s.Knots))
	lo, hi := s.Knots[0], s.Knots[len(s.Knots)-1]
	for i, k := range s.Knots {
		knots[len(s.Knots)-1-i] = lo + hi - k
	}
	return Spline{Degree: s.Degree, ControlPoints: cps, Weights: weights, Knots: knots, Closed: s.Closed}
}

func (s Spline) Sample(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = s.PointAt(float64(i) / float64(n))
	}
	return pts
}

// Contains is supported only for a closed spline, via a tessellated
// winding-number test.
func (s Spline) Contains(point Point, tol float64) (bool, bool) {
	if !s.Closed {
		return false, false
	}
	return windingContains(point, s.Sample(128)[:128], tol), true
}

func (s Spline) Length() float64 {
	total := 0.0
	pts := s.Sample(256)
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].DistanceTo(pts[i])
	}
	return total
}

func (s Spline) Clone() Primitive {
	return Spline{
		Degree:        s.Degree,
		ControlPoints: append([]Point(nil), s.ControlPoints...),
		Weights:       append([]float64(nil), s.Weights...),
		Knots:         append([]float64(nil), s.Knots...),
		FitPoints:     append([]Point(nil), s.FitPoints...),
		Closed:        s.Closed,
	}
}

func (s Spline) translated(dx, dy float64) Spline {
	shift := Point{dx, dy}
	out := s.Clone().(Spline)
	for i, cp := range out.ControlPoints {
		out.ControlPoints[i] = cp.Add(shift)
	}
	for i, fp := range out.FitPoints {
		out.FitPoints[i] = fp.Add(shift)
	}
	return out
}

var _ Primitive = Spline{}
