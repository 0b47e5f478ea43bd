// Package canvas holds the shapes currently drawn in a session together with
// their undo/redo history.
package canvas

import "github.com/KirkDiggler/recall/internal/models"

// ChangeFunc is notified with a copy of the shapes after every mutation
type ChangeFunc func(shapes []models.Shape)

// Canvas is the ordered shape container of a session. It is not safe for
// concurrent use; callers serialize access.
type Canvas struct {
	shapes   []models.Shape
	history  History
	onChange ChangeFunc
}

// New creates an empty canvas. onChange may be nil.
func New(onChange ChangeFunc) *Canvas {
	return &Canvas{onChange: onChange}
}

// Add appends a shape and records it in the history
func (c *Canvas) Add(shape models.Shape) {
	c.shapes = append(c.shapes, shape)
	c.history.Push(shape)
	c.changed()
}

// Clear empties the canvas and its history, returning what was on it
func (c *Canvas) Clear() []models.Shape {
	captured := models.CopyShapes(c.shapes)
	hadShapes := len(c.shapes) > 0
	c.shapes = c.shapes[:0]
	c.history.Reset()
	if hadShapes {
		c.changed()
	}
	return captured
}

// Undo removes the most recent addition. It is a no-op when nothing can be undone.
func (c *Canvas) Undo() bool {
	shape, ok := c.history.PopUndo()
	if !ok {
		return false
	}
	c.removeLast(shape)
	c.changed()
	return true
}

// Redo restores the most recently undone addition. It is a no-op when nothing can be redone.
func (c *Canvas) Redo() bool {
	shape, ok := c.history.PopRedo()
	if !ok {
		return false
	}
	c.shapes = append(c.shapes, shape)
	c.changed()
	return true
}

// Shapes returns a copy of the shapes in insertion order
func (c *Canvas) Shapes() []models.Shape {
	return models.CopyShapes(c.shapes)
}

// Len returns the number of shapes on the canvas
func (c *Canvas) Len() int {
	return len(c.shapes)
}

// CanUndo reports whether Undo would change the canvas
func (c *Canvas) CanUndo() bool {
	return c.history.CanUndo()
}

// CanRedo reports whether Redo would change the canvas
func (c *Canvas) CanRedo() bool {
	return c.history.CanRedo()
}

// removeLast drops the last occurrence of shape
func (c *Canvas) removeLast(shape models.Shape) {
	for i := len(c.shapes) - 1; i >= 0; i-- {
		if c.shapes[i] == shape {
			c.shapes = append(c.shapes[:i], c.shapes[i+1:]...)
			return
		}
	}
}

func (c *Canvas) changed() {
	if c.onChange != nil {
		c.onChange(c.Shapes())
	}
}
