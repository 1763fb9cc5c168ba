package engine

import "github.com/google/uuid"

// Shape pairs a Primitive with a stable identity and an optional layer tag
// (§3). A shape's ID survives chain detection, normalization reordering,
// and reversal; it does not survive offsetting, which always produces a
// fresh shape with a new ID and no reference to its source shape (§4.10).
type Shape struct {
	ID        string
	Layer     string
	Primitive Primitive
}

// NewShape wraps a primitive with a freshly generated identity.
func NewShape(layer string, primitive Primitive) Shape {
	return Shape{ID: uuid.NewString(), Layer: layer, Primitive: primitive}
}

// withPrimitive returns a copy of the shape with the same identity but a
// different primitive, used by stages (normalization's reversal) that
// transform a shape's geometry while preserving its identity.
func (s Shape) withPrimitive(p Primitive) Shape {
	return Shape{ID: s.ID, Layer: s.Layer, Primitive: p}
}

// Reverse returns a same-identity shape with its primitive reversed.
func (s Shape) Reverse() Shape {
	return s.withPrimitive(s.Primitive.Reverse())
}

// derivedShape builds a new shape with a fresh identity, for operations
// (offset, fill extension) that produce geometry no longer representing
// the same source shape.
func derivedShape(layer string, primitive Primitive) Shape {
	return NewShape(layer, primitive)
}
