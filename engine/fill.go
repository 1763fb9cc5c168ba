package engine

// FillResult is the outcome of attempting to close a gap between two
// chain endpoints (C9). On success, ExtendedShape replaces one of the two
// original shapes in the chain; Confidence reflects how directly the
// result was derived (§4.9): 1.0 for an exact closed-form line/arc/circle
// extension, 0.95 when a spline or ellipse refit was involved, and
// roughly 0.8 for the straight-line bridging fallback.
type FillResult struct {
	Success       bool
	ExtendedShape Shape
	Extension     float64
	Confidence    float64
	Errors        []error
}

// FillGap attempts to close the gap between the end of `from` and the
// start of `to` by extending one of them to meet the other, trying both
// directions and falling back to a direct bridging line when neither
// shape can be extended far enough (§4.9). opts.Direction pins which
// shape grows; ExtendAuto tries `from` first, then `to`.
func FillGap(from, to Shape, opts FillOptions) FillResult {
	opts = opts.withDefaults()
	gap := from.Primitive.EndPoint().DistanceTo(to.Primitive.StartPoint())
	if gap <= opts.Tolerance {
		return FillResult{Success: true, ExtendedShape: from, Extension: 0, Confidence: 1.0}
	}
	if gap > opts.MaxExtension {
		return FillResult{Success: false, Errors: []error{ErrExtensionTooLarge}}
	}

	tryFrom := opts.Direction != ExtendStart
	tryTo := opts.Direction != ExtendEnd

	if tryFrom {
		if extended, extension, err := extendToPoint(from, to.Primitive.StartPoint(), ExtendEnd); err == nil {
			if closeEnough(extended, to, opts.Tolerance) {
				return FillResult{Success: true, ExtendedShape: extended, Extension: extension, Confidence: confidenceFor(from.Primitive)}
			}
		}
	}
	if tryTo {
		if extended, extension, err := extendToPoint(to, from.Primitive.EndPoint(), ExtendStart); err == nil {
			if closeEnoughReversed(from, extended, opts.Tolerance) {
				return FillResult{Success: true, ExtendedShape: extended, Extension: extension, Confidence: confidenceFor(to.Primitive)}
			}
		}
	}

	// Neither side's extension lands on the other's endpoint (e.g. an arc
	// whose circle does not pass through the target, or a Polyline or
	// Spline, which extendToPoint does not handle): fall back to a direct
	// bridging line between the two open endpoints, the lowest-confidence
	// but always-available solution.
	bridge, err := NewLine(from.Primitive.EndPoint(), to.Primitive.StartPoint())
	if err != nil {
		return FillResult{Success: false, Errors: []error{ErrNoFillSolution}}
	}
	return FillResult{Success: true, ExtendedShape: derivedShape(from.Layer, bridge), Extension: gap, Confidence: 0.8}
}

func closeEnough(extended, to Shape, tol float64) bool {
	return extended.Primitive.EndPoint().DistanceTo(to.Primitive.StartPoint()) <= tol
}

func closeEnoughReversed(from, extendedTo Shape, tol float64) bool {
	return from.Primitive.EndPoint().DistanceTo(extendedTo.Primitive.StartPoint()) <= tol
}

func confidenceFor(p Primitive) float64 {
	switch p.(type) {
	case Line, Arc, Circle:
		return 1.0
	case Ellipse, Spline:
		return 0.95
	default:
		return 0.9
	}
}
