package engine

import "errors"

// Construction-time errors. These are returned by primitive constructors
// and by stages that reject malformed input outright; see diagnostics.go
// for the separate taxonomy of recoverable, value-level diagnostics.
var (
	// ErrInvalidGeometry indicates a primitive failed one of its invariants:
	// a non-positive radius, a zero-length line, a NaN/Inf coordinate, or a
	// degenerate (empty) knot vector.
	ErrInvalidGeometry = errors.New("engine: invalid geometry")

	// ErrDegenerate indicates an operation was attempted on a degenerate
	// primitive (e.g. tangentAt on a zero-length line) where no single
	// well-defined answer exists.
	ErrDegenerate = errors.New("engine: degenerate primitive")

	// ErrInvalidOptions indicates a stage option is out of its documented
	// range (non-positive tolerance, zero maxTraversalAttempts, etc.).
	ErrInvalidOptions = errors.New("engine: invalid options")

	// ErrEmptyInput indicates a stage received an empty shape/chain set
	// where at least one element is required.
	ErrEmptyInput = errors.New("engine: empty input")

	// ErrUnknownPrimitiveKind indicates a primitive kind not recognized by
	// a dispatch table (programmer error: a new Kind was added without
	// registering its handlers).
	ErrUnknownPrimitiveKind = errors.New("engine: unknown primitive kind")

	// ErrNotOnCurve indicates a target point does not lie on a primitive's
	// underlying curve within tolerance. extendToPoint does not check this
	// and never returns it.
	ErrNotOnCurve = errors.New("engine: target point not on curve")

	// ErrExtensionTooLarge indicates the magnitude required to reach a
	// target exceeds the caller's maxExtension.
	ErrExtensionTooLarge = errors.New("engine: required extension exceeds maximum")

	// ErrNoFillSolution indicates gap fill could not extend, intersect, or
	// bridge two chain endpoints into a closed joint.
	ErrNoFillSolution = errors.New("engine: no gap-fill solution found")
)
