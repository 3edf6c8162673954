// Package history provides undo/redo for an editing session.
//
// The history stores whole states rather than inverse operations. A state
// is whatever the owner needs to restore a session exactly, typically the
// committed text plus the selection. Key concepts:
//
// # Recording
//
// Push records the state that existed before a change:
//
//	h := history.New[State](100) // Max 100 undo entries
//	h.Push("replace", before)
//
// Pushing clears the redo stack.
//
// # Undo/Redo
//
// Undo and Redo exchange the current state for a recorded one:
//
//	prev, err := h.Undo(current)
//	next, err := h.Redo(prev)
//
// Both return ErrNothingToUndo/ErrNothingToRedo when their stack is empty.
//
// History is not safe for concurrent use.
package history
