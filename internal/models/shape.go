package models

import (
	"errors"
	"fmt"
)

// ShapeKind identifies which variant a Shape holds
type ShapeKind string

const (
	// ShapeKindCircle is a circle described by its anchor and radius
	ShapeKindCircle ShapeKind = "circle"

	// ShapeKindRectangle is a rectangle described by its anchor, width and height
	ShapeKindRectangle ShapeKind = "rectangle"
)

// ErrInvalidShape is returned by Validate for shapes that cannot be drawn
var ErrInvalidShape = errors.New("invalid shape")

// Shape is a circle or a rectangle placed on the canvas.
// Only the fields matching Kind are meaningful. Shapes are values: copying one
// never aliases another, so a Shape is immutable once created.
type Shape struct {
	// Kind selects the variant
	Kind ShapeKind

	// X is the horizontal anchor (left edge of the bounding box)
	X int

	// Y is the vertical anchor (top edge of the bounding box)
	Y int

	// Radius is set for circles
	Radius int

	// Width is set for rectangles
	Width int

	// Height is set for rectangles
	Height int
}

// NewCircle creates a circle anchored at (x, y)
func NewCircle(x, y, radius int) Shape {
	return Shape{Kind: ShapeKindCircle, X: x, Y: y, Radius: radius}
}

// NewRectangle creates a rectangle anchored at (x, y)
func NewRectangle(x, y, width, height int) Shape {
	return Shape{Kind: ShapeKindRectangle, X: x, Y: y, Width: width, Height: height}
}

// IsCircle reports whether the shape is a circle
func (s Shape) IsCircle() bool {
	return s.Kind == ShapeKindCircle
}

// IsRectangle reports whether the shape is a rectangle
func (s Shape) IsRectangle() bool {
	return s.Kind == ShapeKindRectangle
}

// SameKind reports whether both shapes are the same variant
func (s Shape) SameKind(other Shape) bool {
	return s.Kind == other.Kind
}

// Validate checks that the shape has a known kind and positive dimensions
func (s Shape) Validate() error {
	switch s.Kind {
	case ShapeKindCircle:
		if s.Radius <= 0 {
			return fmt.Errorf("%w: radius must be positive", ErrInvalidShape)
		}
	case ShapeKindRectangle:
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: width and height must be positive", ErrInvalidShape)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidShape, s.Kind)
	}
	return nil
}

// String renders the shape the way it is shown to players
func (s Shape) String() string {
	switch s.Kind {
	case ShapeKindCircle:
		return fmt.Sprintf("Circle(%d, %d, r=%d)", s.X, s.Y, s.Radius)
	case ShapeKindRectangle:
		return fmt.Sprintf("Rectangle(%d, %d, %dx%d)", s.X, s.Y, s.Width, s.Height)
	default:
		return fmt.Sprintf("Shape(%s)", s.Kind)
	}
}

// CopyShapes returns an independent copy of a shape sequence
func CopyShapes(shapes []Shape) []Shape {
	out := make([]Shape, len(shapes))
	copy(out, shapes)
	return out
}
