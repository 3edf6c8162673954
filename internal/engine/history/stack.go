package history

import (
	"errors"
	"time"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries is used when a non-positive limit is given.
const DefaultMaxEntries = 1000

// entry wraps a recorded state with metadata.
type entry[T any] struct {
	state       T
	description string
	timestamp   time.Time
}

// OperationInfo describes a recorded change.
type OperationInfo struct {
	Description string
	Timestamp   time.Time
}

// History manages undo/redo stacks of states.
type History[T any] struct {
	undoStack []entry[T]
	redoStack []entry[T]

	maxEntries int
}

// New creates a new history holding at most maxEntries undo states.
func New[T any](maxEntries int) *History[T] {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History[T]{maxEntries: maxEntries}
}

// Push records the state before a change and clears the redo stack.
func (h *History[T]) Push(description string, before T) {
	h.undoStack = append(h.undoStack, entry[T]{
		state:       before,
		description: description,
		timestamp:   time.Now(),
	})
	h.redoStack = nil
	h.trim()
}

// Undo returns the most recently recorded state.
// The current state is moved onto the redo stack.
func (h *History[T]) Undo(current T) (T, error) {
	if len(h.undoStack) == 0 {
		var zero T
		return zero, ErrNothingToUndo
	}
	e := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, entry[T]{
		state:       current,
		description: e.description,
		timestamp:   time.Now(),
	})
	return e.state, nil
}

// Redo returns the most recently undone state.
// The current state is moved back onto the undo stack.
func (h *History[T]) Redo(current T) (T, error) {
	if len(h.redoStack) == 0 {
		var zero T
		return zero, ErrNothingToRedo
	}
	e := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, entry[T]{
		state:       current,
		description: e.description,
		timestamp:   time.Now(),
	})
	h.trim()
	return e.state, nil
}

// CanUndo returns true if undo is available.
func (h *History[T]) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History[T]) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo operations available.
func (h *History[T]) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo operations available.
func (h *History[T]) RedoCount() int {
	return len(h.redoStack)
}

// Clear removes all undo/redo history.
func (h *History[T]) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// PeekUndo returns info about the next undo operation without removing it.
func (h *History[T]) PeekUndo() (OperationInfo, bool) {
	if len(h.undoStack) == 0 {
		return OperationInfo{}, false
	}
	return h.undoStack[len(h.undoStack)-1].info(), true
}

// PeekRedo returns info about the next redo operation without removing it.
func (h *History[T]) PeekRedo() (OperationInfo, bool) {
	if len(h.redoStack) == 0 {
		return OperationInfo{}, false
	}
	return h.redoStack[len(h.redoStack)-1].info(), true
}

// SetMaxEntries changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (h *History[T]) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	h.maxEntries = max
	h.trim()
}

// MaxEntries returns the maximum number of undo entries.
func (h *History[T]) MaxEntries() int {
	return h.maxEntries
}

func (h *History[T]) trim() {
	if excess := len(h.undoStack) - h.maxEntries; excess > 0 {
		h.undoStack = append([]entry[T](nil), h.undoStack[excess:]...)
	}
}

func (e entry[T]) info() OperationInfo {
	return OperationInfo{Description: e.description, Timestamp: e.timestamp}
}
