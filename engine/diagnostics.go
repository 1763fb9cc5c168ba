package engine

// DiagnosticKind enumerates the recoverable, non-fatal conditions the
// pipeline can encounter. Every diagnostic kind here corresponds to an
// abstract error kind named in the error handling taxonomy: construction
// failures are plain errors (see errors.go); everything a stage can work
// around and continue from is a DiagnosticKind value instead.
type DiagnosticKind uint8

const (
	// CoincidentEndpoints: a shape's end point coincides with an endpoint
	// (start or end) of more than one other shape in the chain, an
	// ambiguous branch point. An end-end coincidence between just two
	// shapes is not reported.
	CoincidentEndpoints DiagnosticKind = iota

	// CoincidentStartpoints: symmetric to CoincidentEndpoints for a
	// shape's start point.
	CoincidentStartpoints

	// BrokenTraversal: chain normalization could not place every shape
	// into a walkable order within MaxTraversalAttempts walks.
	BrokenTraversal

	// OverlappingBoundary: an open chain's bounding box intersects a
	// closed chain's bounding box.
	OverlappingBoundary

	// OffsetCollapse: an inset offset reduced a primitive to zero or
	// negative extent (radius <= 0, or a closed polyline loop vanished).
	OffsetCollapse

	// NoSolution: an intersection or extension search exhausted its
	// search space (including virtual extensions) without finding a
	// usable result.
	NoSolution

	// SegmentDropped: chain offset orchestration discarded the shorter of
	// two neighboring offset shapes because no joint solution existed, or
	// polyline decomposition replaced a bulge segment whose arc failed
	// validation with a straight line.
	SegmentDropped
)

// String renders a DiagnosticKind as a short machine-stable token, usable
// both in logs a caller may add and in the human-readable Message below.
func (k DiagnosticKind) String() string {
	switch k {
	case CoincidentEndpoints:
		return "coincident_endpoints"
	case CoincidentStartpoints:
		return "coincident_startpoints"
	case BrokenTraversal:
		return "broken_traversal"
	case OverlappingBoundary:
		return "overlapping_boundary"
	case OffsetCollapse:
		return "offset_collapse"
	case NoSolution:
		return "no_solution"
	case SegmentDropped:
		return "segment_dropped"
	default:
		return "unknown_diagnostic"
	}
}

// Diagnostic is a value-level, non-fatal warning attached to a pipeline
// result. Every diagnostic names the chain it concerns (empty if the
// diagnostic is not chain-scoped), a machine-readable Kind, and a short
// human-readable Message suitable for a preflight panel.
type Diagnostic struct {
	Kind    DiagnosticKind
	ChainID string
	Message string
}

func newDiagnostic(kind DiagnosticKind, chainID, message string) Diagnostic {
	return Diagnostic{Kind: kind, ChainID: chainID, Message: message}
}
