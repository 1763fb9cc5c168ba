package engine

// Chain is an ordered sequence of shapes believed to form a single
// traversable path (§3), the output of chain detection (C4) before
// normalization (C5) has established a definite walk order.
type Chain struct {
	ID     string
	Shapes []Shape
}

// Closed reports whether the chain's first shape's start point coincides,
// within tol, with its last shape's end point. A single-shape chain whose
// shape is inherently closed (see isInherentlyClosed) is closed whatever
// its endpoints are.
func (c Chain) Closed(tol float64) bool {
	if len(c.Shapes) == 0 {
		return false
	}
	if len(c.Shapes) == 1 && isInherentlyClosed(c.Shapes[0].Primitive) {
		return true
	}
	first := c.Shapes[0].Primitive.StartPoint()
	last := c.Shapes[len(c.Shapes)-1].Primitive.EndPoint()
	return boundsStrictlyWithinTolerance(first, last, tol)
}

// isInherentlyClosed reports whether p is already a closed region on its
// own terms (a Circle, a full Ellipse, or a Polyline/Spline explicitly
// marked Closed). A closed Polyline's or Spline's StartPoint and EndPoint
// need not coincide even though the shape traces a closed loop; a
// Circle's and a full Ellipse's do.
func isInherentlyClosed(p Primitive) bool {
	switch v := p.(type) {
	case Circle:
		return true
	case Ellipse:
		return v.IsFull()
	case Polyline:
		return v.Closed
	case Spline:
		return v.Closed
	default:
		return false
	}
}

// Walkable reports whether consecutive shapes connect end-to-start within
// tol, i.e. the chain is already in a consistent traversal order with no
// shape needing reversal.
func (c Chain) Walkable(tol float64) bool {
	for i := 1; i < len(c.Shapes); i++ {
		prevEnd := c.Shapes[i-1].Primitive.EndPoint()
		curStart := c.Shapes[i].Primitive.StartPoint()
		if !boundsStrictlyWithinTolerance(prevEnd, curStart, tol) {
			return false
		}
	}
	return true
}

// boundingBox returns the union of every member shape's bounding box.
func (c Chain) boundingBox() Rect {
	box := c.Shapes[0].Primitive.BoundingBox()
	for _, s := range c.Shapes[1:] {
		box = box.Union(s.Primitive.BoundingBox())
	}
	return box
}

// tessellatedBoundary flattens every shape in the chain into a single
// polygon boundary for containment testing (C6), honoring the configured
// tessellation density for arcs, circles and ellipses; a polyline's arc
// segments get MinArcTessellationPoints samples each and a spline a fixed
// 64.
func (c Chain) tessellatedBoundary(params PartDetectionParameters) []Point {
	var pts []Point
	for _, s := range c.Shapes {
		switch p := s.Primitive.(type) {
		case Line:
			pts = append(pts, p.Start)
		case Circle:
			n := params.CircleTessellationPoints
			pts = append(pts, p.Sample(n)[:n]...)
		case Arc:
			n := circularTessellationPoints(p.sweep(), params.ArcTessellationDensity, params.MinArcTessellationPoints)
			pts = append(pts, p.Sample(n)[:n]...)
		case Ellipse:
			n := circularTessellationPoints(p.sweep(), params.ArcTessellationDensity, params.MinArcTessellationPoints)
			pts = append(pts, p.Sample(n)[:n]...)
		case Polyline:
			pts = append(pts, p.tessellate(params.MinArcTessellationPoints)...)
		default:
			pts = append(pts, p.Sample(64)[:64]...)
		}
	}
	return pts
}
