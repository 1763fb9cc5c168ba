package engine

// PrimitiveKind tags the concrete type behind the Primitive interface, so
// dispatch tables (intersection, offset) can switch on a cheap value
// instead of a type assertion chain.
type PrimitiveKind uint8

const (
	KindLine PrimitiveKind = iota
	KindArc
	KindCircle
	KindPolyline
	KindEllipse
	KindSpline
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindArc:
		return "arc"
	case KindCircle:
		return "circle"
	case KindPolyline:
		return "polyline"
	case KindEllipse:
		return "ellipse"
	case KindSpline:
		return "spline"
	default:
		return "unknown"
	}
}

// Primitive is the common algebra every geometric element of the pipeline
// supports (§4.1). Adding a new primitive kind means implementing this
// interface, registering it in the intersection kernel's per-pair
// dispatch table, and adding a case to each per-kind type switch
// (translatePrimitive, createExtended, extendToPoint, trimToPoint,
// OffsetPrimitive, primitivePointAt, Chain.tessellatedBoundary).
type Primitive interface {
	// Kind reports the concrete variant behind this value.
	Kind() PrimitiveKind

	// StartPoint and EndPoint return the geometric endpoints. For a Circle
	// or full Ellipse both return the point at parameter 0 (the rightmost
	// point of the curve).
	StartPoint() Point
	EndPoint() Point

	// TangentAt returns the unit tangent at parameter t in [0, 1]. It
	// returns ErrDegenerate for a zero-length primitive.
	TangentAt(t float64) (Point, error)

	// BoundingBox returns the axis-aligned box enclosing the primitive,
	// including any axis extrema interior to an arc's sweep.
	BoundingBox() Rect

	// Reverse returns a primitive traversing the same point set in
	// reverse parameter order. See each concrete type for the kind-
	// specific invariant this must preserve (arc clockwise flip, polyline
	// bulge negate-and-shift, spline knot mirror).
	Reverse() Primitive

	// Sample returns n+1 points at evenly spaced parameters; this is the
	// tessellation primitive used by containment testing and offset
	// refit.
	Sample(n int) []Point

	// Contains reports whether point lies in the closed region bounded by
	// the primitive, within tol. ok is false for primitives that cannot
	// be closed regions on their own (Line, Arc, open Polyline, partial
	// Ellipse, open Spline) — such primitives never satisfy this
	// operation and callers must check ok before trusting the bool.
	Contains(point Point, tol float64) (contains, ok bool)

	// Length returns the arc length of the primitive (exact where a
	// closed form exists, else a tessellated approximation). Used by the
	// chain offset orchestrator's "drop the shorter neighbor" rule.
	Length() float64

	// Clone returns a deep, independent copy. Primitives are immutable
	// once emitted (§3 Lifecycles), but several stages build modified
	// copies (translation, reversal, extension) and must not alias the
	// original's backing slices (Polyline vertices, Spline control
	// points/knots/weights).
	Clone() Primitive
}

// defaultTolerance values used when a caller does not supply one
// explicitly; see EXTERNAL INTERFACES (§6) for the canonical defaults.
const (
	defaultChainDetectionTolerance = 0.05
	defaultTraversalTolerance      = 0.01
	defaultClosureTolerance        = 0.01
	defaultMaxTraversalAttempts    = 5
	epsilonBulge                   = 1e-9
)

// isEffectivelyZero reports whether v is within eps of zero; a small,
// named helper kept separate from raw `math.Abs(v) < eps` call sites so
// the epsilon convention reads consistently across the kernel.
func isEffectivelyZero(v, eps float64) bool {
	if eps <= 0 {
		return v == 0
	}
	return v > -eps && v < eps
}
