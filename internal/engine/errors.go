package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrRangeInvalid indicates an invalid range (e.g., end < start).
	ErrRangeInvalid = errors.New("invalid range")

	// ErrCancelled indicates an edit that a style rejected.
	ErrCancelled = errors.New("edit cancelled")

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = errors.New("nothing to redo")
)
