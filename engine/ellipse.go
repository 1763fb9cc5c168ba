package engine

import "math"

// Ellipse represents a (possibly partial) ellipse or elliptical arc.
// MajorAxisEndpoint is a vector from Center defining the major radius and
// rotation; MinorToMajorRatio is in (0, 1]. StartParam/EndParam are
// eccentric-anomaly-style angles in the ellipse's local (unrotated) frame;
// both nil means a full ellipse (§3).
type Ellipse struct {
	Center            Point
	MajorAxisEndpoint Point
	MinorToMajorRatio float64
	StartParam        *float64
	EndParam          *float64
	Clockwise         bool // meaningful only when partial; see Reverse
}

// NewEllipse constructs a full Ellipse.
func NewEllipse(center, majorAxisEndpoint Point, ratio float64) (Ellipse, error) {
	if !center.IsFinite() || !majorAxisEndpoint.IsFinite() || majorAxisEndpoint.Length() < 1e-12 {
		return Ellipse{}, ErrInvalidGeometry
	}
	if ratio <= 0 || ratio > 1 {
		return Ellipse{}, ErrInvalidGeometry
	}
	return Ellipse{Center: center, MajorAxisEndpoint: majorAxisEndpoint, MinorToMajorRatio: ratio}, nil
}

// NewEllipticalArc constructs a partial Ellipse (an elliptical arc).
func NewEllipticalArc(center, majorAxisEndpoint Point, ratio, startParam, endParam float64, clockwise bool) (Ellipse, error) {
	e, err := NewEllipse(center, majorAxisEndpoint, ratio)
	if err != nil {
		return Ellipse{}, err
	}
	if math.IsNaN(startParam) || math.IsNaN(endParam) {
		return Ellipse{}, ErrInvalidGeometry
	}
	e.StartParam = &startParam
	e.EndParam = &endParam
	e.Clockwise = clockwise
	return e, nil
}

func (e Ellipse) Kind() PrimitiveKind { return KindEllipse }

// IsFull reports whether e is a complete ellipse (no param interval).
func (e Ellipse) IsFull() bool { return e.StartParam == nil || e.EndParam == nil }

func (e Ellipse) majorLength() float64 { return e.MajorAxisEndpoint.Length() }
func (e Ellipse) minorLength() float64 { return e.majorLength() * e.MinorToMajorRatio }
func (e Ellipse) rotation() float64 {
	return math.Atan2(e.MajorAxisEndpoint.Y, e.MajorAxisEndpoint.X)
}

// localPointAt returns the point at local angle u (before rotation and
// translation).
func (e Ellipse) localPointAt(u float64) Point {
	s, c := math.Sincos(u)
	return Point{e.majorLength() * c, e.minorLength() * s}
}

func (e Ellipse) pointAtAngle(u float64) Point {
	p := e.localPointAt(u).Rotate(e.rotation())
	return p.Add(e.Center)
}

func (e Ellipse) sweep() float64 {
	if e.IsFull() {
		return twoPi
	}
	if e.Clockwise {
		return normalizeAngleDiff(*e.StartParam - *e.EndParam)
	}
	return normalizeAngleDiff(*e.EndParam - *e.StartParam)
}

func (e Ellipse) angleAt(t float64) float64 {
	if e.IsFull() {
		return t * twoPi
	}
	sweep := e.sweep()
	if e.Clockwise {
		return *e.StartParam - t*sweep
	}
	return *e.StartParam + t*sweep
}

func (e Ellipse) StartPoint() Point {
	if e.IsFull() {
		return e.pointAtAngle(0)
	}
	return e.pointAtAngle(*e.StartParam)
}

func (e Ellipse) EndPoint() Point {
	if e.IsFull() {
		return e.pointAtAngle(0)
	}
	return e.pointAtAngle(*e.EndParam)
}

func (e Ellipse) PointAt(t float64) Point { return e.pointAtAngle(e.angleAt(t)) }

func (e Ellipse) TangentAt(t float64) (Point, error) {
	if e.majorLength() < 1e-12 {
		return Point{}, ErrDegenerate
	}
	u := e.angleAt(t)
	s, c := math.Sincos(u)
	// derivative of the local parametric form w.r.t. u
	dx, dy := -e.majorLength()*s, e.minorLength()*c
	if !e.IsFull() && e.Clockwise {
		dx, dy = -dx, -dy
	}
	return Point{dx, dy}.Rotate(e.rotation()).Normalize(), nil
}

// BoundingBox uses the closed-form rotated-ellipse bound for a full
// ellipse, and a dense sampled bound for a partial arc (finding the exact
// interior extrema of a rotated elliptical arc is not worth the
// complexity budget here; the bound is taken over 128 on-curve samples,
// so it can fall slightly inside the true extrema).
func (e Ellipse) BoundingBox() Rect {
	if e.IsFull() {
		phi := e.rotation()
		a, b := e.majorLength(), e.minorLength()
		sp, cp := math.Sincos(phi)
		halfW := math.Hypot(a*cp, b*sp)
		halfH := math.Hypot(a*sp, b*cp)
		return Rect{
			Min: Point{e.Center.X - halfW, e.Center.Y - halfH},
			Max: Point{e.Center.X + halfW, e.Center.Y + halfH},
		}
	}
	box := rectFromPoint(e.StartPoint()).ExpandPoint(e.EndPoint())
	for _, p := range e.Sample(128) {
		box = box.ExpandPoint(p)
	}
	return box
}

// Reverse mirrors Arc.Reverse: for a partial ellipse, swap the param
// interval and flip Clockwise. A full ellipse has no direction flag that
// affects its point set, so reversal is the identity (as with Circle).
func (e Ellipse) Reverse() Primitive {
	if e.IsFull() {
		return e
	}
	start, end := *e.EndParam, *e.StartParam
	out := e
	out.StartParam = &start
	out.EndParam = &end
	out.Clockwise = !e.Clockwise
	return out
}

func (e Ellipse) Sample(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = e.PointAt(float64(i) / float64(n))
	}
	return pts
}

// Contains is supported only for a full ellipse.
func (e Ellipse) Contains(point Point, tol float64) (bool, bool) {
	if !e.IsFull() {
		return false, false
	}
	// transform point into the ellipse's unrotated local frame and apply
	// the standard normalized-radius test.
	local := point.Sub(e.Center).Rotate(-e.rotation())
	a, b := e.majorLength(), e.minorLength()
	if a < 1e-12 || b < 1e-12 {
		return false, true
	}
	normalized := (local.X*local.X)/(a*a) + (local.Y*local.Y)/(b*b)
	return normalized <= 1+tol/math.Min(a, b), true
}

func (e Ellipse) Length() float64 {
	total := 0.0
	pts := e.Sample(256)
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].DistanceTo(pts[i])
	}
	return total
}

func (e Ellipse) Clone() Primitive {
	out := e
	if e.StartParam != nil {
		v := *e.StartParam
		out.StartParam = &v
	}
	if e.EndParam != nil {
		v := *e.EndParam
		out.EndParam = &v
	}
	return out
}

func (e Ellipse) translated(dx, dy float64) Ellipse {
	out := e
	out.Center = e.Center.Add(Point{dx, dy})
	// MajorAxisEndpoint is a vector from Center; it is NOT translated.
	return out
}

var _ Primitive = Ellipse{}
