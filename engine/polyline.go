package engine

import "math"

// Vertex is one point of a Polyline, optionally carrying the bulge of the
// segment to the next vertex. Bulge is tan(theta/4) of the included arc
// angle; zero means the segment to the next vertex is a straight line.
type Vertex struct {
	Point Point
	Bulge float64
}

// Polyline is an ordered sequence of vertices, each optionally carrying a
// bulge for the segment to the next vertex (§3).
type Polyline struct {
	Vertices []Vertex
	Closed   bool
}

// NewPolyline constructs a Polyline, rejecting fewer than two vertices or
// non-finite points.
func NewPolyline(vertices []Vertex, closed bool) (Polyline, error) {
	if len(vertices) < 2 {
		return Polyline{}, ErrInvalidGeometry
	}
	for _, v := range vertices {
		if !v.Point.IsFinite() || math.IsNaN(v.Bulge) || math.Abs(v.Bulge) > 1 {
			return Polyline{}, ErrInvalidGeometry
		}
	}
	return Polyline{Vertices: append([]Vertex(nil), vertices...), Closed: closed}, nil
}

func (p Polyline) Kind() PrimitiveKind { return KindPolyline }

// segmentCount returns the number of edges: n-1 for an open polyline (the
// last vertex has no outgoing bulge), n for a closed one (wrapping back
// to the first vertex), per §4.3's "closed polyline ... also emit the
// segment from last vertex back to first".
func (p Polyline) segmentCount() int {
	n := len(p.Vertices)
	if p.Closed {
		return n
	}
	return n - 1
}

func (p Polyline) segmentEndpointIndices(i int) (int, int) {
	n := len(p.Vertices)
	return i, (i + 1) % n
}

// segmentPrimitive returns the Line or Arc for edge i, derived from the
// bulge stored at its start vertex (§3, §4.3). A bulge whose derived arc
// fails validation falls back to a Line.
func (p Polyline) segmentPrimitive(i int) Primitive {
	a, b := p.segmentEndpointIndices(i)
	p1, p2 := p.Vertices[a].Point, p.Vertices[b].Point
	bulge := p.Vertices[a].Bulge
	if isEffectivelyZero(bulge, epsilonBulge) {
		return Line{Start: p1, End: p2}
	}
	arc, ok := bulgeToArc(p1, p2, bulge)
	if !ok || !validateBulgeArc(arc, p1, p2) {
		return Line{Start: p1, End: p2}
	}
	return arc
}

func (p Polyline) StartPoint() Point { return p.Vertices[0].Point }
func (p Polyline) EndPoint() Point   { return p.Vertices[len(p.Vertices)-1].Point }

// segmentParam splits a whole-polyline parameter t in [0, 1] into a
// segment index and a segment-local parameter, per the polyline
// parameterization convention used by the intersection kernel (§4.7):
// param = (segmentIndex + localT) / segmentCount.
func (p Polyline) segmentParam(t float64) (int, float64) {
	segCount := p.segmentCount()
	scaled := t * float64(segCount)
	idx := int(math.Floor(scaled))
	if idx >= segCount {
		idx = segCount - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx, scaled - float64(idx)
}

func (p Polyline) PointAt(t float64) Point {
	idx, local := p.segmentParam(t)
	seg := p.segmentPrimitive(idx)
	switch s := seg.(type) {
	case Line:
		return s.PointAt(local)
	case Arc:
		return s.PointAt(local)
	default:
		return Point{}
	}
}

func (p Polyline) TangentAt(t float64) (Point, error) {
	idx, local := p.segmentParam(t)
	seg := p.segmentPrimitive(idx)
	return seg.TangentAt(local)
}

func (p Polyline) BoundingBox() Rect {
	box := rectFromPoint(p.Vertices[0].Point)
	for i := 0; i < p.segmentCount(); i++ {
		box = box.Union(p.segmentPrimitive(i).BoundingBox())
	}
	return box
}

// Reverse reverses vertex order AND negates bulges AND shifts them by one
// position so each bulge still belongs to the segment following its
// vertex (§4.1, §4.5) — both halves of this operation are required or the
// reversed polyline traces the wrong arcs.
func (p Polyline) Reverse() Primitive {
	n := len(p.Vertices)
	segCount := p.segmentCount()
	out := make([]Vertex, n)
	for i := 0; i < n; i++ {
		out[i] = Vertex{Point: p.Vertices[n-1-i].Point}
	}
	for i := 0; i < segCount; i++ {
		srcIdx := (((n-2-i)%n)+n)%n
		out[i].Bulge = -p.Vertices[srcIdx].Bulge
	}
	return Polyline{Vertices: out, Closed: p.Closed}
}

func (p Polyline) Sample(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = p.PointAt(float64(i) / float64(n))
	}
	return pts
}

// Contains is supported only for a closed polyline, using a winding-number
// test over the tessellated boundary (each arc segment is tessellated at
// a fixed 32 samples; part detection tessellates chains itself, through
// Chain.tessellatedBoundary, with its configured parameters).
func (p Polyline) Contains(point Point, tol float64) (bool, bool) {
	if !p.Closed {
		return false, false
	}
	return windingContains(point, p.tessellate(32), tol), true
}

// tessellate flattens every segment into a flat boundary polygon used by
// containment tests.
func (p Polyline) tessellate(perArc int) []Point {
	var pts []Point
	for i := 0; i < p.segmentCount(); i++ {
		seg := p.segmentPrimitive(i)
		switch seg.(type) {
		case Line:
			pts = append(pts, seg.StartPoint())
		default:
			pts = append(pts, seg.Sample(perArc)[:perArc]...)
		}
	}
	return pts
}

func (p Polyline) Length() float64 {
	total := 0.0
	for i := 0; i < p.segmentCount(); i++ {
		total += p.segmentPrimitive(i).Length()
	}
	return total
}

func (p Polyline) Clone() Primitive {
	return Polyline{Vertices: append([]Vertex(nil), p.Vertices...), Closed: p.Closed}
}

func (p Polyline) translated(dx, dy float64) Polyline {
	shift := Point{dx, dy}
	out := make([]Vertex, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = Vertex{Point: v.Point.Add(shift), Bulge: v.Bulge}
	}
	return Polyline{Vertices: out, Closed: p.Closed}
}

var _ Primitive = Polyline{}

// bulgeToArc computes the Arc implied by a polyline segment's chord and
// bulge (§4.3). ok is false for a near-zero bulge (the segment is a
// Line).
func bulgeToArc(p1, p2 Point, bulge float64) (Arc, bool) {
	if isEffectivelyZero(bulge, epsilonBulge) {
		return Arc{}, false
	}
	chord := p1.DistanceTo(p2)
	if chord < 1e-12 {
		return Arc{}, false
	}
	theta := 4 * math.Atan(math.Abs(bulge))
	radius := chord / (2 * math.Sin(theta/2))
	half := chord / 2
	h := math.Sqrt(math.Max(radius*radius-half*half, 0))
	mid := p1.Lerp(p2, 0.5)
	dir := p2.Sub(p1).Normalize()

	var normal Point
	if bulge > 0 {
		normal = dir.Rotate90CCW() // center left of chord for positive bulge
	} else {
		normal = dir.Rotate90CW()
	}
	center := mid.Add(normal.Scale(h))

	startAngle := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	endAngle := math.Atan2(p2.Y-center.Y, p2.X-center.X)
	return Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Clockwise:  bulge < 0,
	}, true
}

// validateBulgeArc checks that the derived arc's center really is
// equidistant (within tolerance) from both chord endpoints, per §4.3's
// fallback rule.
func validateBulgeArc(arc Arc, p1, p2 Point) bool {
	tol := math.Max(1e-3, 1e-3*arc.Radius)
	return math.Abs(arc.Center.DistanceTo(p1)-arc.Radius) <= tol &&
		math.Abs(arc.Center.DistanceTo(p2)-arc.Radius) <= tol
}
