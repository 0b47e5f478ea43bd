package canvas

import "github.com/KirkDiggler/recall/internal/models"

// History records shape additions so they can be undone and redone.
// Branching is not supported: a fresh addition discards the redo stack.
type History struct {
	undo []models.Shape
	redo []models.Shape
}

// Push records a new addition and drops anything that could be redone
func (h *History) Push(shape models.Shape) {
	h.undo = append(h.undo, shape)
	h.redo = h.redo[:0]
}

// PopUndo moves the latest addition onto the redo stack
func (h *History) PopUndo() (models.Shape, bool) {
	if len(h.undo) == 0 {
		return models.Shape{}, false
	}
	last := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, last)
	return last, true
}

// PopRedo moves the latest undone addition back onto the undo stack
func (h *History) PopRedo() (models.Shape, bool) {
	if len(h.redo) == 0 {
		return models.Shape{}, false
	}
	last := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, last)
	return last, true
}

// Reset empties both stacks
func (h *History) Reset() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// CanUndo reports whether an addition can be undone
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether an undone addition can be redone
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}
