package history

import "errors"

// DefaultCapacity is the number of edits kept when no capacity is given.
const DefaultCapacity = 50

// Errors returned when there is nothing to do. Neither leaves any state changed.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// History manages the undo and redo stacks for a buffer.
// It is not safe for concurrent use.
type History struct {
	undo *stack
	redo *stack
}

// New creates a history that keeps at most capacity edits on each stack.
// A capacity of zero or less uses DefaultCapacity.
func New(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{
		undo: newStack(capacity),
		redo: newStack(capacity),
	}
}

// Record pushes a new edit onto the undo stack and clears the redo stack.
// Returns true if the oldest edit was evicted to make room.
func (h *History) Record(kind Kind, position int, text string) bool {
	h.redo.clear()
	return h.undo.push(NewOperation(kind, position, text))
}

// Undo pops the most recent edit, applies its inverse to t and moves it onto
// the redo stack.
func (h *History) Undo(t Target) (Operation, error) {
	op, ok := h.undo.pop()
	if !ok {
		return Operation{}, ErrNothingToUndo
	}

	op.Invert().Apply(t)
	h.redo.push(op)
	return op, nil
}

// Redo pops the most recently undone edit, re-applies it to t and moves it
// back onto the undo stack.
func (h *History) Redo(t Target) (Operation, error) {
	op, ok := h.redo.pop()
	if !ok {
		return Operation{}, ErrNothingToRedo
	}

	op.Apply(t)
	h.undo.push(op)
	return op, nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return h.undo.len() > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return h.redo.len() > 0
}

// UndoCount returns the number of edits that can be undone.
func (h *History) UndoCount() int {
	return h.undo.len()
}

// RedoCount returns the number of edits that can be redone.
func (h *History) RedoCount() int {
	return h.redo.len()
}

// Capacity returns the maximum number of edits kept on each stack.
func (h *History) Capacity() int {
	return len(h.undo.ops)
}

// PeekUndo returns the next edit Undo would revert.
func (h *History) PeekUndo() (Operation, bool) {
	return h.undo.peek()
}

// PeekRedo returns the next edit Redo would re-apply.
func (h *History) PeekRedo() (Operation, bool) {
	return h.redo.peek()
}

// UndoEntries returns the undo stack, oldest first.
func (h *History) UndoEntries() []Operation {
	return h.undo.entries()
}

// Clear removes all undo and redo history.
func (h *History) Clear() {
	h.undo.clear()
	h.redo.clear()
}
