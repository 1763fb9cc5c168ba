package engine

// TranslateToPositive computes the minimum X/Y across every shape's
// bounding box and shifts every shape so the overall drawing's bounding
// box has no negative coordinate (C2): an axis whose minimum is negative
// is shifted so that minimum lands at 0, and an axis whose minimum is
// already non-negative is not shifted, so a drawing already in the
// non-negative quadrant is returned unchanged. An empty input returns an
// empty slice with no error; a single degenerate (zero-size) bounding box
// still translates correctly since Rect.Union/ExpandPoint both handle a
// zero-area box.
func TranslateToPositive(shapes []Shape) ([]Shape, error) {
	if len(shapes) == 0 {
		return nil, nil
	}
	box := shapes[0].Primitive.BoundingBox()
	for _, s := range shapes[1:] {
		box = box.Union(s.Primitive.BoundingBox())
	}
	dx, dy := 0.0, 0.0
	if box.Min.X < 0 {
		dx = -box.Min.X
	}
	if box.Min.Y < 0 {
		dy = -box.Min.Y
	}
	if dx == 0 && dy == 0 {
		out := make([]Shape, len(shapes))
		copy(out, shapes)
		return out, nil
	}
	out := make([]Shape, len(shapes))
	for i, s := range shapes {
		out[i] = s.withPrimitive(translatePrimitive(s.Primitive, dx, dy))
	}
	return out, nil
}

// translatePrimitive dispatches to each concrete type's translated method,
// which differs per kind (§4.2): an arc/ellipse/circle's center moves but
// its radius and rotation do not, an ellipse's MajorAxisEndpoint is a
// vector from center and is never translated, and a polyline/spline
// translates every control/vertex point.
func translatePrimitive(p Primitive, dx, dy float64) Primitive {
	switch v := p.(type) {
	case Line:
		return v.translated(dx, dy)
	case Arc:
		return v.translated(dx, dy)
	case Circle:
		return v.translated(dx, dy)
	case Polyline:
		return v.translated(dx, dy)
	case Ellipse:
		return v.translated(dx, dy)
	case Spline:
		return v.translated(dx, dy)
	default:
		return p
	}
}
