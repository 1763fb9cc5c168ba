// Package engine implements the geometric reasoning engine for a 2D CAM
// preprocessing pipeline targeting planar cutting machines (plasma, laser,
// waterjet). It ingests vector drawings composed of elementary 2D
// primitives, reconstructs topological structure, and prepares tool paths.
//
// # Overview
//
// The package is organized as a pipeline of independently usable stages:
//   - Primitive algebra (Line, Arc, Circle, Polyline, Ellipse, Spline)
//   - Translate-to-positive normalization of a whole drawing
//   - Polyline decomposition into lines and arcs
//   - Chain detection: grouping loose primitives via endpoint proximity
//   - Chain normalization: ordering and orienting shapes for traversal
//   - Part detection: shell/hole hierarchy via planar containment
//   - Intersection kernel: pairwise primitive intersection, with optional
//     virtual extension
//   - Extend/trim kernel: per-primitive extension operations
//   - Fill kernel: gap repair at chain joints
//   - Offset kernel: constant-distance parallel curves
//   - Chain offset orchestration: full-chain offsetting with gap fill
//   - Cut-order optimization: nearest-neighbor tour over ordered paths
//
// # Error handling
//
// Functions that fail because a primitive violates its invariants (zero
// radius, NaN coordinate, empty knot vector) return an error at
// construction time. Operations that can fail for reasons intrinsic to the
// geometry (no intersection found, extension exceeds the configured
// maximum) do not return a Go error; they return a typed result with a
// Success/OK field, or attach a Diagnostic value to their output. See
// diagnostics.go for the full taxonomy.
//
// # Coordinate system
//
// All coordinates are float64. Angles are radians. Every comparison between
// points or scalars is modulo a caller-supplied tolerance; no stage relies
// on exact equality.
//
// # Concurrency
//
// The package holds no global state and is safe for concurrent read-only
// use of its pure functions. Stages that are documented as
// data-parallelizable (per-primitive offset, pairwise intersection search)
// expose a *Parallel variant (OffsetPrimitivesParallel,
// IntersectAllPairsParallel) built on stdlib sync.WaitGroup and a bounded
// worker semaphore; everything else is synchronous and must be driven
// from a single goroutine per pipeline invocation.
package engine
