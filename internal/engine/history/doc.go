// Package history provides bounded, linear undo/redo for the text buffer.
//
// Every edit is recorded as an Operation: an insertion or a deletion at a
// character position, together with the text involved. That is enough to
// invert the edit without consulting the buffer:
//
//   - Undoing an Insert deletes the same text at the same position.
//   - Undoing a Delete re-inserts the removed text.
//
// # Stacks
//
// History keeps two fixed-capacity stacks, undo and redo. When a push would
// exceed the capacity the oldest entry is evicted, so the undo stack is a
// sliding window over the most recent edits:
//
//	h := history.New(50)
//	h.Record(history.Insert, 0, "a")
//	h.Undo(target) // target.DeleteText(0, 1)
//	h.Redo(target) // target.InsertText(0, "a")
//
// Recording a new edit clears the redo stack. History is linear; there is no
// branching.
//
// # Targets
//
// Undo and Redo apply operations through the Target interface, which the
// buffer implements over its rope.
package history
